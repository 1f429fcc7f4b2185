package fares

import "github.com/KimLeno1/sky1/internal/models"

type Airline struct {
	Name string
	Code string
	Logo string
}

var Airlines = []Airline{
	{Name: "American Airlines", Code: "AA", Logo: "https://logos-world.net/wp-content/uploads/2025/05/Logo-American-Airlines.jpg"},
	{Name: "Delta Air Lines", Code: "DL", Logo: "https://logos-world.net/wp-content/uploads/2021/08/Delta-Logo.png"},
	{Name: "United Airlines", Code: "UA", Logo: "https://logos-world.net/wp-content/uploads/2020/11/United-Airlines-Logo.png"},
	{Name: "Southwest Airlines", Code: "WN", Logo: "https://logos-world.net/wp-content/uploads/2020/10/Southwest-Airlines-Logo.png"},
	{Name: "Alaska Airlines", Code: "AS", Logo: "https://logos-world.net/wp-content/uploads/2021/02/Alaska-Airlines-Logo.png"},
	{Name: "Spirit Airlines", Code: "NK", Logo: "https://logos-world.net/wp-content/uploads/2025/05/Logo-Spirit-Airlines.jpg"},
	{Name: "Frontier Airlines", Code: "F9", Logo: "https://logos-world.net/wp-content/uploads/2025/05/Logo-Frontier-Airlines.jpg"},
	{Name: "JetBlue Airways", Code: "B6", Logo: "https://logos-world.net/wp-content/uploads/2025/05/Logo-JetBlue-Airways.jpg"},
	{Name: "Allegiant Air", Code: "G4", Logo: "https://logos-world.net/wp-content/uploads/2025/05/Logo-Allegiant-Air.jpg"},
	{Name: "Hawaiian Airlines", Code: "HA", Logo: "https://logos-world.net/wp-content/uploads/2025/05/Logo-Hawaiian-Airlines.jpg"},
}

// Only these carriers serve routes that cross regions.
var transatlanticCapable = map[string]bool{
	"AA": true,
	"DL": true,
	"UA": true,
	"B6": true,
}

// FindAirline matches by exact name.
func FindAirline(name string) (Airline, bool) {
	for _, a := range Airlines {
		if a.Name == name {
			return a, true
		}
	}
	return Airline{}, false
}

func candidateAirlines(origin, destination models.Airport) []Airline {
	if origin.Region == destination.Region {
		return Airlines
	}
	long := make([]Airline, 0, len(transatlanticCapable))
	for _, a := range Airlines {
		if transatlanticCapable[a.Code] {
			long = append(long, a)
		}
	}
	return long
}
