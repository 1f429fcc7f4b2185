package models

import "time"

type MemberStatus string

const (
	MemberStandard MemberStatus = "Standard"
	MemberSilver   MemberStatus = "Silver"
	MemberGold     MemberStatus = "Gold"
	MemberPlatinum MemberStatus = "Platinum"
)

// User is a demo account record. The password is stored in cleartext on
// purpose: this mirrors the simulated vault contract, it is not a real
// credential store.
type User struct {
	ID             string       `gorm:"primaryKey" json:"id"`
	FirstName      string       `gorm:"not null" json:"firstName"`
	LastName       string       `gorm:"not null" json:"lastName"`
	Email          string       `gorm:"uniqueIndex;not null" json:"email"`
	PassportNumber string       `json:"passportNumber"`
	Password       string       `gorm:"not null" json:"-"`
	MemberStatus   MemberStatus `gorm:"type:varchar(10);not null;default:'Standard'" json:"memberStatus"`
	CreatedAt      time.Time    `json:"joinedDate"`
}

// SavedCard keeps the full card number and CVV — a demonstration artifact
// mirroring the original vault, never a pattern for production storage.
type SavedCard struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	CardholderName string    `gorm:"not null" json:"cardholderName"`
	CardNumber     string    `gorm:"not null" json:"cardNumber"`
	Expiry         string    `json:"expiry"`
	CVV            string    `json:"cvv"`
	CardType       string    `json:"cardType"`
	LastFour       string    `json:"lastFour"`
	CreatedAt      time.Time `json:"-"`
}

type TransactionRecord struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	FlightID       string    `json:"flightId"`
	Route          string    `json:"route"`
	Amount         int       `json:"amount"`
	CardholderName string    `json:"cardholderName"`
	CardType       string    `json:"cardType"`
	CardNumber     string    `json:"cardNumber"`
	Expiry         string    `json:"expiry"`
	CVV            string    `json:"cvv"`
	CreatedAt      time.Time `json:"timestamp"`
}
