package fares

import (
	"fmt"

	"github.com/KimLeno1/sky1/internal/models"
)

var hotelPhotos = []string{
	"https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&q=80&w=1200",
	"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?auto=format&fit=crop&q=80&w=1200",
	"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?auto=format&fit=crop&q=80&w=1200",
	"https://images.unsplash.com/photo-1571896349842-33c89424de2d?auto=format&fit=crop&q=80&w=1200",
	"https://images.unsplash.com/photo-1445019980597-93fa8acb246c?auto=format&fit=crop&q=80&w=1200",
}

var hotelTiers = []struct {
	Name  string
	Price int
	Desc  string
}{
	{Name: "Palace & Spa", Price: 450, Desc: "Ultra-luxury experience with panoramic views."},
	{Name: "Grand Continental", Price: 280, Desc: "Modern business comfort in the heart of the city."},
	{Name: "City Central Inn", Price: 150, Desc: "Reliable and comfortable stay for explorers."},
	{Name: "Travelers Lodge", Price: 85, Desc: "Basic essentials for budget-conscious trips."},
	{Name: "Roadside Budget", Price: 45, Desc: "Simple, clean, and extremely affordable."},
}

// GenerateHotels returns the fixed five-tier hotel list for a city, five
// stars down to one.
func GenerateHotels(city string) []models.Hotel {
	hotels := make([]models.Hotel, 0, len(hotelTiers))
	for i, tier := range hotelTiers {
		hotels = append(hotels, models.Hotel{
			ID:            fmt.Sprintf("%s-%d", city, 5-i),
			Name:          fmt.Sprintf("%s %s", city, tier.Name),
			City:          city,
			Stars:         5 - i,
			PricePerNight: int(float64(tier.Price) * priceMultiplier),
			Image:         hotelPhotos[i%len(hotelPhotos)],
			Description:   tier.Desc,
		})
	}
	return hotels
}
