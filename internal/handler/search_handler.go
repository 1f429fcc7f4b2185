package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/KimLeno1/sky1/internal/dto"
	"github.com/KimLeno1/sky1/internal/fares"
	"github.com/KimLeno1/sky1/internal/models"
	"github.com/KimLeno1/sky1/internal/search"
	"github.com/labstack/echo/v4"
)

// HotelSource mirrors the live client's hotel lookup; nil disables it.
type HotelSource interface {
	FetchHotels(ctx context.Context, city string) ([]models.Hotel, error)
}

type SearchHandler struct {
	orch   *search.Orchestrator
	hotels HotelSource
}

func NewSearchHandler(orch *search.Orchestrator, hotels HotelSource) *SearchHandler {
	return &SearchHandler{orch: orch, hotels: hotels}
}

func (h *SearchHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/search", h.Search)
	e.GET("/api/v1/airports", h.ListAirports)
	e.GET("/api/v1/hotels", h.ListHotels)
}

func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	params := req.ToParams()
	if params.Passengers < 1 {
		params.Passengers = 1
	}
	if params.TripType == "" {
		params.TripType = models.TripOneWay
	}

	result, err := h.orch.Search(c.Request().Context(), params)
	if err != nil {
		if errors.Is(err, search.ErrNoLegs) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{Legs: result.Legs, Sources: result.Sources})
}

func (h *SearchHandler) ListAirports(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Airports)
}

// ListHotels serves live rates when the collaborator answers and falls back
// to the generated tier list otherwise.
func (h *SearchHandler) ListHotels(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city is required")
	}

	if h.hotels != nil {
		hotels, err := h.hotels.FetchHotels(c.Request().Context(), city)
		if err == nil {
			return c.JSON(http.StatusOK, hotels)
		}
		log.Printf("live hotels for %s unavailable, using generated rates: %v", city, err)
	}

	return c.JSON(http.StatusOK, fares.GenerateHotels(city))
}
