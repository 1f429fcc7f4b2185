package dto

import (
	"time"

	"github.com/KimLeno1/sky1/internal/models"
)

type SearchResponse struct {
	Legs    [][]models.Flight        `json:"legs"`
	Sources []models.GroundingSource `json:"sources,omitempty"`
}

type BookingResponse struct {
	ID             string                    `json:"id"`
	Itinerary      models.Itinerary          `json:"itinerary"`
	Seats          []string                  `json:"seats"`
	Passengers     []models.PassengerDetails `json:"passengers"`
	TotalPrice     int                       `json:"totalPrice"`
	Status         models.BookingStatus      `json:"status"`
	Type           models.BookingType        `json:"type"`
	InsuranceType  models.InsuranceType      `json:"insuranceType"`
	InsurancePrice int                       `json:"insurancePrice"`
	BookingDate    time.Time                 `json:"bookingDate"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		Itinerary:      b.Itinerary.Data(),
		Seats:          b.Seats,
		Passengers:     b.Passengers,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
		Type:           b.Type,
		InsuranceType:  b.InsuranceType,
		InsurancePrice: b.InsurancePrice,
		BookingDate:    b.CreatedAt,
	}
}

type SessionResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type AdminSummaryResponse struct {
	TotalRevenue     int `json:"totalRevenue"`
	TransactionCount int `json:"transactionCount"`
	UserCount        int `json:"userCount"`
	CardCount        int `json:"cardCount"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
