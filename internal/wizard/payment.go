package wizard

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidCardNumber = errors.New("card number failed validation")
	ErrInvalidExpiry     = errors.New("expiry must be a future MM/YY date")
	ErrInvalidCVV        = errors.New("cvv has the wrong length")
	ErrInvalidName       = errors.New("cardholder name is too short")
)

// CardInput carries the raw payment form fields.
type CardInput struct {
	CardholderName string
	CardNumber     string
	Expiry         string
	CVV            string
	SaveCard       bool
}

// DetectCardType inspects the number prefix: 4 is VISA, 51-55 MASTERCARD,
// 34/37 AMEX, anything else the generic CARD.
func DetectCardType(number string) string {
	n := digitsOnly(number)
	switch {
	case strings.HasPrefix(n, "4"):
		return "VISA"
	case len(n) >= 2 && n[0] == '5' && n[1] >= '1' && n[1] <= '5':
		return "MASTERCARD"
	case strings.HasPrefix(n, "34") || strings.HasPrefix(n, "37"):
		return "AMEX"
	default:
		return "CARD"
	}
}

// Validate runs the full payment precondition check. now anchors the expiry
// comparison so tests can pin the clock.
func (c CardInput) Validate(now time.Time) error {
	if len(strings.TrimSpace(c.CardholderName)) <= 2 {
		return ErrInvalidName
	}
	if !luhnValid(c.CardNumber) {
		return ErrInvalidCardNumber
	}
	if !expiryValid(c.Expiry, now) {
		return ErrInvalidExpiry
	}
	wantCVV := 3
	if DetectCardType(c.CardNumber) == "AMEX" {
		wantCVV = 4
	}
	if len(c.CVV) != wantCVV {
		return ErrInvalidCVV
	}
	return nil
}

// luhnValid checks the Luhn checksum over the digits of num. Numbers shorter
// than 13 digits are rejected outright.
func luhnValid(num string) bool {
	n := digitsOnly(num)
	if len(n) < 13 {
		return false
	}
	sum := 0
	double := false
	for i := len(n) - 1; i >= 0; i-- {
		digit := int(n[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// expiryValid accepts MM/YY dates in the current month or later.
func expiryValid(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	return year > currentYear || (year == currentYear && month >= currentMonth)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
