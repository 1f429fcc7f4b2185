// Package wizard implements the multi-step booking flow as an explicit
// state machine: BOOKING_CHOICE -> SEATS -> PASSENGERS -> INSURANCE ->
// PAYMENT, strictly forward with no skipping, and backward one step at a
// time without losing confirmed input.
package wizard

import (
	"errors"
	"time"

	"github.com/KimLeno1/sky1/internal/models"
)

type Step string

const (
	StepChoice     Step = "BOOKING_CHOICE"
	StepSeats      Step = "SEATS"
	StepPassengers Step = "PASSENGERS"
	StepInsurance  Step = "INSURANCE"
	StepPayment    Step = "PAYMENT"
	StepCompleted  Step = "COMPLETED"
)

var (
	ErrWrongStep           = errors.New("action not valid in the current step")
	ErrAuthRequired        = errors.New("normal bookings require an authenticated session")
	ErrNoLegsSelected      = errors.New("no flight legs selected")
	ErrSeatTaken           = errors.New("seat is already occupied")
	ErrSeatRestricted      = errors.New("seat is outside the booked cabin section")
	ErrSeatInvalid         = errors.New("seat id is not on the map")
	ErrSeatLimit           = errors.New("seat limit for this booking reached")
	ErrSeatCount           = errors.New("selected seats must match the passenger count")
	ErrPassengerCount      = errors.New("one passenger record required per seat")
	ErrPassengerIncomplete = errors.New("all passenger fields must be populated")
	ErrCannotRetreat       = errors.New("no earlier step to return to")
)

var insurancePlans = map[models.InsuranceType]int{
	models.InsuranceNone:    0,
	models.InsuranceBasic:   45,
	models.InsurancePremium: 95,
}

// Wizard carries the accumulated state of one booking flow. Each step's
// input persists independently, so retreating and advancing again keeps
// prior entries unless explicitly edited.
type Wizard struct {
	step Step

	tripType   models.TripType
	cabinClass models.CabinClass
	passengers int
	legs       []models.Flight
	seatMap    *SeatMap

	bookingType    models.BookingType
	seats          []string
	details        []models.PassengerDetails
	ownerID        string
	insuranceType  models.InsuranceType
	insurancePrice int
}

// New starts a wizard at the booking-choice pseudo-step for the given
// selected legs.
func New(tripType models.TripType, cabinClass models.CabinClass, passengers int, legs []models.Flight, seatMap *SeatMap) (*Wizard, error) {
	if len(legs) == 0 {
		return nil, ErrNoLegsSelected
	}
	if passengers < 1 {
		passengers = 1
	}
	return &Wizard{
		step:          StepChoice,
		tripType:      tripType,
		cabinClass:    cabinClass,
		passengers:    passengers,
		legs:          legs,
		seatMap:       seatMap,
		insuranceType: models.InsuranceNone,
	}, nil
}

func (w *Wizard) Step() Step                  { return w.step }
func (w *Wizard) SelectedSeats() []string     { return append([]string(nil), w.seats...) }
func (w *Wizard) SeatMap() *SeatMap           { return w.seatMap }
func (w *Wizard) PassengerCount() int         { return w.passengers }
func (w *Wizard) InsurancePrice() int         { return w.insurancePrice }
func (w *Wizard) InsuranceType() models.InsuranceType { return w.insuranceType }

// TotalPrice is the running total: all selected legs plus insurance.
func (w *Wizard) TotalPrice() int {
	total := w.insurancePrice
	for _, leg := range w.legs {
		total += leg.Price
	}
	return total
}

// Choose picks quick or normal booking. Normal bookings without an
// authenticated session are bounced to authentication first.
func (w *Wizard) Choose(t models.BookingType, authenticated bool) error {
	if w.step != StepChoice {
		return ErrWrongStep
	}
	if t == models.BookingNormal && !authenticated {
		return ErrAuthRequired
	}
	w.bookingType = t
	w.step = StepSeats
	return nil
}

// ToggleSeat selects or deselects one seat. Rejections are advisory: the
// selection is never mutated on error.
func (w *Wizard) ToggleSeat(id string) error {
	if w.step != StepSeats {
		return ErrWrongStep
	}
	if !validSeat(id) {
		return ErrSeatInvalid
	}
	if w.seatMap.Taken(id) {
		return ErrSeatTaken
	}
	if sectionForSeat(id) != sectionName(w.cabinClass) {
		return ErrSeatRestricted
	}

	for i, s := range w.seats {
		if s == id {
			w.seats = append(w.seats[:i], w.seats[i+1:]...)
			return nil
		}
	}
	if len(w.seats) >= w.passengers {
		return ErrSeatLimit
	}
	w.seats = append(w.seats, id)
	return nil
}

// ConfirmSeats advances to passenger details once exactly one seat per
// passenger is selected.
func (w *Wizard) ConfirmSeats() error {
	if w.step != StepSeats {
		return ErrWrongStep
	}
	if len(w.seats) != w.passengers {
		return ErrSeatCount
	}
	w.step = StepPassengers
	return nil
}

// SubmitPassengers stores one complete record per seat plus the optional
// booking owner, then advances to insurance.
func (w *Wizard) SubmitPassengers(details []models.PassengerDetails, ownerID string) error {
	if w.step != StepPassengers {
		return ErrWrongStep
	}
	if len(details) != len(w.seats) {
		return ErrPassengerCount
	}
	for _, d := range details {
		if !d.Complete() {
			return ErrPassengerIncomplete
		}
	}
	w.details = append([]models.PassengerDetails(nil), details...)
	w.ownerID = ownerID
	w.step = StepInsurance
	return nil
}

// SelectInsurance can be called any number of times before advancing. Cost
// is the per-passenger plan price times the passenger count.
func (w *Wizard) SelectInsurance(t models.InsuranceType) error {
	if w.step != StepInsurance {
		return ErrWrongStep
	}
	price, ok := insurancePlans[t]
	if !ok {
		return ErrWrongStep
	}
	w.insuranceType = t
	w.insurancePrice = price * w.passengers
	return nil
}

// ConfirmInsurance advances to payment; no insurance is a valid choice.
func (w *Wizard) ConfirmInsurance() error {
	if w.step != StepInsurance {
		return ErrWrongStep
	}
	w.step = StepPayment
	return nil
}

// Draft is the completed wizard output from which the booking, transaction
// and optional saved card are persisted.
type Draft struct {
	Itinerary      models.Itinerary
	Seats          []string
	Passengers     []models.PassengerDetails
	OwnerID        string
	TotalPrice     int
	Type           models.BookingType
	InsuranceType  models.InsuranceType
	InsurancePrice int
	Card           CardInput
	CardType       string
}

// CompletePayment validates the card and finishes the wizard. The returned
// draft is what gets persisted atomically by the caller.
func (w *Wizard) CompletePayment(card CardInput, now time.Time) (*Draft, error) {
	if w.step != StepPayment {
		return nil, ErrWrongStep
	}
	if err := card.Validate(now); err != nil {
		return nil, err
	}

	w.step = StepCompleted
	return &Draft{
		Itinerary:      models.Itinerary{Type: w.tripType, Legs: append([]models.Flight(nil), w.legs...)},
		Seats:          w.SelectedSeats(),
		Passengers:     append([]models.PassengerDetails(nil), w.details...),
		OwnerID:        w.ownerID,
		TotalPrice:     w.TotalPrice(),
		Type:           w.bookingType,
		InsuranceType:  w.insuranceType,
		InsurancePrice: w.insurancePrice,
		Card:           card,
		CardType:       DetectCardType(card.CardNumber),
	}, nil
}

// Retreat steps back one stage, discarding nothing already entered.
func (w *Wizard) Retreat() error {
	switch w.step {
	case StepPassengers:
		w.step = StepSeats
	case StepInsurance:
		w.step = StepPassengers
	case StepPayment:
		w.step = StepInsurance
	default:
		return ErrCannotRetreat
	}
	return nil
}
