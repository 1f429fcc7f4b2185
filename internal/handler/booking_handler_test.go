package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KimLeno1/sky1/internal/dto"
	"github.com/KimLeno1/sky1/internal/models"
	"github.com/KimLeno1/sky1/internal/service"
	"github.com/KimLeno1/sky1/internal/wizard"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock BookingService ---

type mockBookingService struct {
	startFn    func(params models.SearchParams, legs []models.Flight) (*service.WizardState, error)
	chooseFn   func(id string, t models.BookingType, authenticated bool) (*service.WizardState, error)
	toggleFn   func(id, seat string) (*service.WizardState, error)
	paymentFn  func(ctx context.Context, id string, card wizard.CardInput) (*models.Booking, error)
	getFn      func(ctx context.Context, id string) (*models.Booking, error)
	listFn     func(ctx context.Context, userID string) ([]models.Booking, error)
	cancelFn   func(ctx context.Context, id string) (*models.Booking, error)
	stepResult *service.WizardState
}

func (m *mockBookingService) StartWizard(params models.SearchParams, legs []models.Flight) (*service.WizardState, error) {
	return m.startFn(params, legs)
}
func (m *mockBookingService) GetWizard(id string) (*service.WizardState, error) {
	return m.stepResult, nil
}
func (m *mockBookingService) Choose(id string, t models.BookingType, authenticated bool) (*service.WizardState, error) {
	return m.chooseFn(id, t, authenticated)
}
func (m *mockBookingService) ToggleSeat(id, seat string) (*service.WizardState, error) {
	return m.toggleFn(id, seat)
}
func (m *mockBookingService) ConfirmSeats(id string) (*service.WizardState, error) {
	return m.stepResult, nil
}
func (m *mockBookingService) SubmitPassengers(id string, details []models.PassengerDetails, ownerID string) (*service.WizardState, error) {
	return m.stepResult, nil
}
func (m *mockBookingService) SelectInsurance(id string, t models.InsuranceType) (*service.WizardState, error) {
	return m.stepResult, nil
}
func (m *mockBookingService) ConfirmInsurance(id string) (*service.WizardState, error) {
	return m.stepResult, nil
}
func (m *mockBookingService) Retreat(id string) (*service.WizardState, error) {
	return m.stepResult, nil
}
func (m *mockBookingService) CompletePayment(ctx context.Context, id string, card wizard.CardInput) (*models.Booking, error) {
	return m.paymentFn(ctx, id, card)
}
func (m *mockBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return m.listFn(ctx, userID)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	return m.cancelFn(ctx, id)
}

// --- Mock AuthService ---

type mockAuthService struct {
	currentFn func(ctx context.Context, token string) (*models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (*models.User, string, error) {
	return nil, "", nil
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return nil, "", nil
}
func (m *mockAuthService) Logout(ctx context.Context, token string) error { return nil }
func (m *mockAuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	return m.currentFn(ctx, token)
}

// --- Tests ---

func wizardContext(e *echo.Echo, method, path, body, wizardID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if wizardID != "" {
		c.SetParamNames("id")
		c.SetParamValues(wizardID)
	}
	return c, rec
}

func TestStartWizard_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		startFn: func(params models.SearchParams, legs []models.Flight) (*service.WizardState, error) {
			assert.Equal(t, 1, params.Passengers) // defaulted
			return &service.WizardState{WizardID: "wiz-1", Step: wizard.StepChoice}, nil
		},
	}

	e := echo.New()
	body := `{"search":{"origin":"SFO","destination":"JFK","tripType":"ONE_WAY"},"legs":[{"id":"DL1001","price":320}]}`
	c, rec := wizardContext(e, http.MethodPost, "/api/v1/bookings/wizard", body, "")

	h := NewBookingHandler(svc, &mockAuthService{})
	err := h.StartWizard(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp service.WizardState
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "wiz-1", resp.WizardID)
	assert.Equal(t, wizard.StepChoice, resp.Step)
}

func TestStartWizard_Handler_NoLegs(t *testing.T) {
	svc := &mockBookingService{
		startFn: func(params models.SearchParams, legs []models.Flight) (*service.WizardState, error) {
			return nil, wizard.ErrNoLegsSelected
		},
	}

	e := echo.New()
	c, _ := wizardContext(e, http.MethodPost, "/api/v1/bookings/wizard", `{"search":{},"legs":[]}`, "")

	h := NewBookingHandler(svc, &mockAuthService{})
	err := h.StartWizard(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestChoose_Handler_NormalWithValidSession(t *testing.T) {
	svc := &mockBookingService{
		chooseFn: func(id string, bt models.BookingType, authenticated bool) (*service.WizardState, error) {
			assert.True(t, authenticated)
			assert.Equal(t, models.BookingNormal, bt)
			return &service.WizardState{WizardID: id, Step: wizard.StepSeats}, nil
		},
	}
	auth := &mockAuthService{
		currentFn: func(ctx context.Context, token string) (*models.User, error) {
			assert.Equal(t, "tok-1", token)
			return &models.User{ID: "SN-ABCD1234"}, nil
		},
	}

	e := echo.New()
	body := `{"type":"NORMAL","sessionToken":"tok-1"}`
	c, rec := wizardContext(e, http.MethodPost, "/api/v1/bookings/wizard/wiz-1/choice", body, "wiz-1")

	h := NewBookingHandler(svc, auth)
	assert.NoError(t, h.Choose(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChoose_Handler_NormalUnauthenticated(t *testing.T) {
	svc := &mockBookingService{
		chooseFn: func(id string, bt models.BookingType, authenticated bool) (*service.WizardState, error) {
			assert.False(t, authenticated)
			return nil, wizard.ErrAuthRequired
		},
	}

	e := echo.New()
	c, _ := wizardContext(e, http.MethodPost, "/api/v1/bookings/wizard/wiz-1/choice", `{"type":"NORMAL"}`, "wiz-1")

	h := NewBookingHandler(svc, &mockAuthService{})
	err := h.Choose(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestToggleSeat_Handler_Taken(t *testing.T) {
	svc := &mockBookingService{
		toggleFn: func(id, seat string) (*service.WizardState, error) {
			return nil, wizard.ErrSeatTaken
		},
	}

	e := echo.New()
	c, _ := wizardContext(e, http.MethodPost, "/api/v1/bookings/wizard/wiz-1/seats/toggle", `{"seat":"12A"}`, "wiz-1")

	h := NewBookingHandler(svc, &mockAuthService{})
	err := h.ToggleSeat(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestToggleSeat_Handler_UnknownWizard(t *testing.T) {
	svc := &mockBookingService{
		toggleFn: func(id, seat string) (*service.WizardState, error) {
			return nil, service.ErrWizardNotFound
		},
	}

	e := echo.New()
	c, _ := wizardContext(e, http.MethodPost, "/api/v1/bookings/wizard/nope/seats/toggle", `{"seat":"12A"}`, "nope")

	h := NewBookingHandler(svc, &mockAuthService{})
	err := h.ToggleSeat(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCompletePayment_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		paymentFn: func(ctx context.Context, id string, card wizard.CardInput) (*models.Booking, error) {
			assert.Equal(t, "4111111111111111", card.CardNumber)
			assert.True(t, card.SaveCard)
			return &models.Booking{ID: "BK-12345", Status: models.StatusConfirmed, TotalPrice: 365}, nil
		},
	}

	e := echo.New()
	body := `{"cardholderName":"Ada Lovelace","cardNumber":"4111111111111111","expiry":"12/30","cvv":"123","saveCard":true}`
	c, rec := wizardContext(e, http.MethodPost, "/api/v1/bookings/wizard/wiz-1/payment", body, "wiz-1")

	h := NewBookingHandler(svc, &mockAuthService{})
	assert.NoError(t, h.CompletePayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BK-12345", resp.ID)
	assert.Equal(t, models.StatusConfirmed, resp.Status)
}

func TestCompletePayment_Handler_InvalidCard(t *testing.T) {
	svc := &mockBookingService{
		paymentFn: func(ctx context.Context, id string, card wizard.CardInput) (*models.Booking, error) {
			return nil, wizard.ErrInvalidCardNumber
		},
	}

	e := echo.New()
	body := `{"cardholderName":"Ada","cardNumber":"1234","expiry":"12/30","cvv":"123"}`
	c, _ := wizardContext(e, http.MethodPost, "/api/v1/bookings/wizard/wiz-1/payment", body, "wiz-1")

	h := NewBookingHandler(svc, &mockAuthService{})
	err := h.CompletePayment(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCancelBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, id string) (*models.Booking, error) {
			return nil, service.ErrBookingNotFound
		},
	}

	e := echo.New()
	c, _ := wizardContext(e, http.MethodDelete, "/api/v1/bookings/BK-00000", "", "BK-00000")

	h := NewBookingHandler(svc, &mockAuthService{})
	err := h.CancelBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListBookings_Handler_FiltersByUser(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context, userID string) ([]models.Booking, error) {
			assert.Equal(t, "SN-ABCD1234", userID)
			return []models.Booking{{ID: "BK-12345"}}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?userId=SN-ABCD1234", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewBookingHandler(svc, &mockAuthService{})
	assert.NoError(t, h.ListBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}
