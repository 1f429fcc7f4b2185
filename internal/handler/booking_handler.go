package handler

import (
	"errors"
	"net/http"

	"github.com/KimLeno1/sky1/internal/dto"
	"github.com/KimLeno1/sky1/internal/service"
	"github.com/KimLeno1/sky1/internal/wizard"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc  service.BookingService
	auth service.AuthService
}

func NewBookingHandler(svc service.BookingService, auth service.AuthService) *BookingHandler {
	return &BookingHandler{svc: svc, auth: auth}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	wiz := e.Group("/api/v1/bookings/wizard")
	wiz.POST("", h.StartWizard)
	wiz.GET("/:id", h.GetWizard)
	wiz.POST("/:id/choice", h.Choose)
	wiz.POST("/:id/seats/toggle", h.ToggleSeat)
	wiz.POST("/:id/seats/confirm", h.ConfirmSeats)
	wiz.POST("/:id/passengers", h.SubmitPassengers)
	wiz.POST("/:id/insurance", h.SelectInsurance)
	wiz.POST("/:id/insurance/confirm", h.ConfirmInsurance)
	wiz.POST("/:id/retreat", h.Retreat)
	wiz.POST("/:id/payment", h.CompletePayment)

	e.GET("/api/v1/bookings", h.ListBookings)
	e.GET("/api/v1/bookings/:id", h.GetBooking)
	e.DELETE("/api/v1/bookings/:id", h.CancelBooking)
}

func (h *BookingHandler) StartWizard(c echo.Context) error {
	var req dto.StartWizardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	params := req.Search.ToParams()
	if params.Passengers < 1 {
		params.Passengers = 1
	}

	state, err := h.svc.StartWizard(params, req.Legs)
	if err != nil {
		if errors.Is(err, wizard.ErrNoLegsSelected) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, state)
}

func (h *BookingHandler) GetWizard(c echo.Context) error {
	state, err := h.svc.GetWizard(c.Param("id"))
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *BookingHandler) Choose(c echo.Context) error {
	var req dto.ChooseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	authenticated := false
	if req.SessionToken != "" {
		if _, err := h.auth.CurrentUser(c.Request().Context(), req.SessionToken); err == nil {
			authenticated = true
		}
	}

	state, err := h.svc.Choose(c.Param("id"), req.Type, authenticated)
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	var req dto.ToggleSeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	state, err := h.svc.ToggleSeat(c.Param("id"), req.Seat)
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *BookingHandler) ConfirmSeats(c echo.Context) error {
	state, err := h.svc.ConfirmSeats(c.Param("id"))
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *BookingHandler) SubmitPassengers(c echo.Context) error {
	var req dto.PassengersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	state, err := h.svc.SubmitPassengers(c.Param("id"), req.Passengers, req.OwnerID)
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *BookingHandler) SelectInsurance(c echo.Context) error {
	var req dto.InsuranceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	state, err := h.svc.SelectInsurance(c.Param("id"), req.Type)
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *BookingHandler) ConfirmInsurance(c echo.Context) error {
	state, err := h.svc.ConfirmInsurance(c.Param("id"))
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *BookingHandler) Retreat(c echo.Context) error {
	state, err := h.svc.Retreat(c.Param("id"))
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *BookingHandler) CompletePayment(c echo.Context) error {
	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.CompletePayment(c.Request().Context(), c.Param("id"), wizard.CardInput{
		CardholderName: req.CardholderName,
		CardNumber:     req.CardNumber,
		Expiry:         req.Expiry,
		CVV:            req.CVV,
		SaveCard:       req.SaveCard,
	})
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.ToBookingResponse(&bookings[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	booking, err := h.svc.CancelBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// wizardError maps the wizard's sentinel errors onto HTTP codes. Seat
// conflicts are 409s, authentication 401, unknown sessions 404, everything
// else a plain 400.
func wizardError(err error) error {
	switch {
	case errors.Is(err, service.ErrWizardNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, wizard.ErrAuthRequired):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, wizard.ErrSeatTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
