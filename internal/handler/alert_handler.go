package handler

import (
	"errors"
	"net/http"

	"github.com/KimLeno1/sky1/internal/dto"
	"github.com/KimLeno1/sky1/internal/service"
	"github.com/labstack/echo/v4"
)

type AlertHandler struct {
	svc service.AlertService
}

func NewAlertHandler(svc service.AlertService) *AlertHandler {
	return &AlertHandler{svc: svc}
}

func (h *AlertHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/alerts", h.CreateAlert)
	e.GET("/api/v1/alerts", h.ListAlerts)
	e.DELETE("/api/v1/alerts/:id", h.RemoveAlert)
}

func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req dto.CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Origin == "" || req.Destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "origin and destination are required")
	}
	if req.CurrentPrice <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "currentPrice must be positive")
	}

	alert, err := h.svc.CreateAlert(c.Request().Context(), req.Origin, req.Destination, req.CabinClass, req.CurrentPrice)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) ListAlerts(c echo.Context) error {
	alerts, err := h.svc.ListAlerts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, alerts)
}

func (h *AlertHandler) RemoveAlert(c echo.Context) error {
	if err := h.svc.RemoveAlert(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
