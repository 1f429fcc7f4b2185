package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KimLeno1/sky1/internal/models"
	"github.com/KimLeno1/sky1/internal/repository"
	"github.com/KimLeno1/sky1/internal/wizard"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrWizardNotFound  = errors.New("wizard session not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// EventPublisher decouples services from the broker; pkg/rabbitmq.Publisher
// satisfies it. A nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// WizardState is the serializable snapshot of one wizard session returned
// after every action.
type WizardState struct {
	WizardID       string               `json:"wizardId"`
	Step           wizard.Step          `json:"step"`
	Passengers     int                  `json:"passengers"`
	SelectedSeats  []string             `json:"selectedSeats"`
	TakenSeats     []string             `json:"takenSeats"`
	InsuranceType  models.InsuranceType `json:"insuranceType"`
	InsurancePrice int                  `json:"insurancePrice"`
	TotalPrice     int                  `json:"totalPrice"`
}

type BookingService interface {
	StartWizard(params models.SearchParams, legs []models.Flight) (*WizardState, error)
	GetWizard(id string) (*WizardState, error)
	Choose(id string, t models.BookingType, authenticated bool) (*WizardState, error)
	ToggleSeat(id, seat string) (*WizardState, error)
	ConfirmSeats(id string) (*WizardState, error)
	SubmitPassengers(id string, details []models.PassengerDetails, ownerID string) (*WizardState, error)
	SelectInsurance(id string, t models.InsuranceType) (*WizardState, error)
	ConfirmInsurance(id string) (*WizardState, error)
	Retreat(id string) (*WizardState, error)
	CompletePayment(ctx context.Context, id string, card wizard.CardInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)
}

type bookingService struct {
	bookings  repository.BookingRepository
	checkout  repository.CheckoutRepository
	publisher EventPublisher

	mu      sync.Mutex
	wizards map[string]*wizard.Wizard
	rng     *rand.Rand
	now     func() time.Time
}

func NewBookingService(
	bookings repository.BookingRepository,
	checkout repository.CheckoutRepository,
	publisher EventPublisher,
	rng *rand.Rand,
) BookingService {
	return &bookingService{
		bookings:  bookings,
		checkout:  checkout,
		publisher: publisher,
		wizards:   make(map[string]*wizard.Wizard),
		rng:       rng,
		now:       time.Now,
	}
}

func (s *bookingService) StartWizard(params models.SearchParams, legs []models.Flight) (*WizardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := wizard.New(params.TripType, params.CabinClass, params.Passengers, legs, wizard.NewSeatMap(s.rng))
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s.wizards[id] = w
	return snapshot(id, w), nil
}

func (s *bookingService) GetWizard(id string) (*WizardState, error) {
	return s.withWizard(id, func(w *wizard.Wizard) error { return nil })
}

func (s *bookingService) Choose(id string, t models.BookingType, authenticated bool) (*WizardState, error) {
	return s.withWizard(id, func(w *wizard.Wizard) error { return w.Choose(t, authenticated) })
}

func (s *bookingService) ToggleSeat(id, seat string) (*WizardState, error) {
	return s.withWizard(id, func(w *wizard.Wizard) error { return w.ToggleSeat(seat) })
}

func (s *bookingService) ConfirmSeats(id string) (*WizardState, error) {
	return s.withWizard(id, func(w *wizard.Wizard) error { return w.ConfirmSeats() })
}

func (s *bookingService) SubmitPassengers(id string, details []models.PassengerDetails, ownerID string) (*WizardState, error) {
	return s.withWizard(id, func(w *wizard.Wizard) error { return w.SubmitPassengers(details, ownerID) })
}

func (s *bookingService) SelectInsurance(id string, t models.InsuranceType) (*WizardState, error) {
	return s.withWizard(id, func(w *wizard.Wizard) error { return w.SelectInsurance(t) })
}

func (s *bookingService) ConfirmInsurance(id string) (*WizardState, error) {
	return s.withWizard(id, func(w *wizard.Wizard) error { return w.ConfirmInsurance() })
}

func (s *bookingService) Retreat(id string) (*WizardState, error) {
	return s.withWizard(id, func(w *wizard.Wizard) error { return w.Retreat() })
}

// CompletePayment finishes the wizard and persists its output in one
// transaction: the booking, the ledger record, and optionally the card. The
// wizard session is discarded afterwards.
func (s *bookingService) CompletePayment(ctx context.Context, id string, card wizard.CardInput) (*models.Booking, error) {
	// The step transition and session removal happen under the session
	// lock: two racing payment calls must not both observe PAYMENT and
	// each persist a booking. Only the repository write runs unlocked.
	s.mu.Lock()
	w, ok := s.wizards[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrWizardNotFound
	}

	draft, err := w.CompletePayment(card, s.now())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	bookingID := fmt.Sprintf("BK-%d", 10000+s.rng.Intn(90000))
	delete(s.wizards, id)
	s.mu.Unlock()

	booking := &models.Booking{
		ID:             bookingID,
		Itinerary:      datatypes.NewJSONType(draft.Itinerary),
		Seats:          datatypes.NewJSONSlice(draft.Seats),
		Passengers:     datatypes.NewJSONSlice(draft.Passengers),
		TotalPrice:     draft.TotalPrice,
		Status:         models.StatusConfirmed,
		Type:           draft.Type,
		InsuranceType:  draft.InsuranceType,
		InsurancePrice: draft.InsurancePrice,
		UserID:         draft.OwnerID,
	}

	var saved *models.SavedCard
	if draft.Card.SaveCard {
		saved = &models.SavedCard{
			ID:             "CARD-" + uuid.NewString(),
			CardholderName: draft.Card.CardholderName,
			CardNumber:     draft.Card.CardNumber,
			Expiry:         draft.Card.Expiry,
			CVV:            draft.Card.CVV,
			CardType:       draft.CardType,
		}
	}

	outbound := draft.Itinerary.Outbound()
	txn := &models.TransactionRecord{
		ID:             "TXN-" + uuid.NewString(),
		FlightID:       outbound.ID,
		Route:          fmt.Sprintf("%s -> %s", outbound.DepartureAirport, outbound.ArrivalAirport),
		Amount:         draft.TotalPrice,
		CardholderName: draft.Card.CardholderName,
		CardType:       draft.CardType,
		CardNumber:     draft.Card.CardNumber,
		Expiry:         draft.Card.Expiry,
		CVV:            draft.Card.CVV,
	}

	if err := s.checkout.Create(ctx, booking, txn, saved); err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookings.FindAll(ctx, userID)
}

// CancelBooking moves a booking to its terminal state. Cancelling an
// already-cancelled booking is a no-op: the record is returned unchanged.
func (s *bookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if booking.Status == models.StatusCancelled {
		return booking, nil
	}

	if err := s.bookings.UpdateStatus(ctx, id, models.StatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = models.StatusCancelled

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.cancelled", booking)
	}
	return booking, nil
}

func (s *bookingService) withWizard(id string, fn func(*wizard.Wizard) error) (*WizardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	if err := fn(w); err != nil {
		return nil, err
	}
	return snapshot(id, w), nil
}

func snapshot(id string, w *wizard.Wizard) *WizardState {
	return &WizardState{
		WizardID:       id,
		Step:           w.Step(),
		Passengers:     w.PassengerCount(),
		SelectedSeats:  w.SelectedSeats(),
		TakenSeats:     w.SeatMap().TakenSeats(),
		InsuranceType:  w.InsuranceType(),
		InsurancePrice: w.InsurancePrice(),
		TotalPrice:     w.TotalPrice(),
	}
}
