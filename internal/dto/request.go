package dto

import (
	"github.com/KimLeno1/sky1/internal/models"
)

type SearchRequest struct {
	Origin      string                `json:"origin"`
	Destination string                `json:"destination"`
	CabinClass  models.CabinClass     `json:"cabinClass"`
	Passengers  int                   `json:"passengers"`
	Date        string                `json:"date"`
	ReturnDate  string                `json:"returnDate"`
	TripType    models.TripType       `json:"tripType"`
	Legs        []models.MultiCityLeg `json:"multiCityLegs"`
}

func (r SearchRequest) ToParams() models.SearchParams {
	return models.SearchParams{
		Origin:      r.Origin,
		Destination: r.Destination,
		CabinClass:  r.CabinClass,
		Passengers:  r.Passengers,
		Date:        r.Date,
		ReturnDate:  r.ReturnDate,
		TripType:    r.TripType,
		Legs:        r.Legs,
	}
}

type StartWizardRequest struct {
	Search SearchRequest   `json:"search"`
	Legs   []models.Flight `json:"legs"`
}

type ChooseRequest struct {
	Type         models.BookingType `json:"type"`
	SessionToken string             `json:"sessionToken"`
}

type ToggleSeatRequest struct {
	Seat string `json:"seat"`
}

type PassengersRequest struct {
	Passengers []models.PassengerDetails `json:"passengers"`
	OwnerID    string                    `json:"ownerId"`
}

type InsuranceRequest struct {
	Type models.InsuranceType `json:"type"`
}

type PaymentRequest struct {
	CardholderName string `json:"cardholderName"`
	CardNumber     string `json:"cardNumber"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	SaveCard       bool   `json:"saveCard"`
}

type CreateAlertRequest struct {
	Origin       string            `json:"origin"`
	Destination  string            `json:"destination"`
	CabinClass   models.CabinClass `json:"cabinClass"`
	CurrentPrice int               `json:"currentPrice"`
}

type RegisterRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PassportNumber string `json:"passportNumber"`
	Password       string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
