package models

import (
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

type BookingType string

const (
	BookingQuick  BookingType = "QUICK"
	BookingNormal BookingType = "NORMAL"
)

type InsuranceType string

const (
	InsuranceNone    InsuranceType = "NONE"
	InsuranceBasic   InsuranceType = "BASIC"
	InsurancePremium InsuranceType = "PREMIUM"
)

// Itinerary is the tagged trip variant. Legs is ordered: one entry for
// ONE_WAY, outbound then inbound for ROUND_TRIP, and one per city pair for
// MULTI_CITY.
type Itinerary struct {
	Type TripType `json:"type"`
	Legs []Flight `json:"legs"`
}

func (i Itinerary) Outbound() Flight {
	if len(i.Legs) == 0 {
		return Flight{}
	}
	return i.Legs[0]
}

func (i Itinerary) Return() (Flight, bool) {
	if i.Type != TripRoundTrip || len(i.Legs) < 2 {
		return Flight{}, false
	}
	return i.Legs[1], true
}

type PassengerDetails struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PassportNumber string `json:"passportNumber"`
}

func (p PassengerDetails) Complete() bool {
	return p.FirstName != "" && p.LastName != "" && p.Email != "" && p.PassportNumber != ""
}

// Booking is created atomically at payment completion. The only mutation it
// ever sees is the status transition to cancelled, which is terminal.
type Booking struct {
	ID             string                                `gorm:"primaryKey" json:"id"`
	Itinerary      datatypes.JSONType[Itinerary]         `json:"itinerary"`
	Seats          datatypes.JSONSlice[string]           `json:"seats"`
	Passengers     datatypes.JSONSlice[PassengerDetails] `json:"passengers"`
	TotalPrice     int                                   `gorm:"not null" json:"totalPrice"`
	Status         BookingStatus                         `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	Type           BookingType                           `gorm:"type:varchar(10);not null" json:"type"`
	InsuranceType  InsuranceType                         `gorm:"type:varchar(10);not null;default:'NONE'" json:"insuranceType"`
	InsurancePrice int                                   `json:"insurancePrice"`
	UserID         string                                `gorm:"index" json:"bookingUserId,omitempty"`
	CreatedAt      time.Time                             `json:"bookingDate"`
	UpdatedAt      time.Time                             `json:"-"`
}

// PriceAlert is a static record: no background price-watching happens.
type PriceAlert struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Origin       string     `gorm:"not null" json:"origin"`
	Destination  string     `gorm:"not null" json:"destination"`
	TargetPrice  int        `json:"targetPrice"`
	CurrentPrice int        `json:"currentPrice"`
	CabinClass   CabinClass `gorm:"type:varchar(10)" json:"cabinClass"`
	CreatedAt    time.Time  `json:"createdAt"`
}
