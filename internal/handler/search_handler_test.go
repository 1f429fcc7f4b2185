package handler

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KimLeno1/sky1/internal/dto"
	"github.com/KimLeno1/sky1/internal/fares"
	"github.com/KimLeno1/sky1/internal/models"
	"github.com/KimLeno1/sky1/internal/search"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type mockHotelSource struct {
	fetchFn func(ctx context.Context, city string) ([]models.Hotel, error)
}

func (m *mockHotelSource) FetchHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	return m.fetchFn(ctx, city)
}

func newSearchHandler() *SearchHandler {
	orch := search.New(nil, fares.New(rand.New(rand.NewSource(42))))
	return NewSearchHandler(orch, nil)
}

func TestSearch_Handler_OneWay(t *testing.T) {
	e := echo.New()
	body := `{"origin":"SFO","destination":"JFK","cabinClass":"Economy","passengers":2,"date":"2026-09-15","tripType":"ONE_WAY"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, newSearchHandler().Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SearchResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Legs, 1)
	assert.Len(t, resp.Legs[0], 12)
}

func TestSearch_Handler_RoundTrip(t *testing.T) {
	e := echo.New()
	body := `{"origin":"SFO","destination":"JFK","cabinClass":"Economy","passengers":1,"date":"2026-09-15","returnDate":"2026-09-22","tripType":"ROUND_TRIP"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, newSearchHandler().Search(c))

	var resp dto.SearchResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Legs, 2)
	assert.Equal(t, "JFK", resp.Legs[1][0].DepartureAirport)
	assert.Equal(t, "SFO", resp.Legs[1][0].ArrivalAirport)
}

func TestSearch_Handler_MultiCityNoLegs(t *testing.T) {
	e := echo.New()
	body := `{"tripType":"MULTI_CITY","passengers":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := newSearchHandler().Search(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestListAirports_Handler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/airports", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, newSearchHandler().ListAirports(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Airport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, len(models.Airports))
}

func TestListHotels_Handler_LiveFallback(t *testing.T) {
	hotels := &mockHotelSource{
		fetchFn: func(ctx context.Context, city string) ([]models.Hotel, error) {
			return nil, assert.AnError
		},
	}
	orch := search.New(nil, fares.New(rand.New(rand.NewSource(42))))
	h := NewSearchHandler(orch, hotels)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels?city=Paris", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListHotels(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Hotel
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 5)
	assert.Equal(t, "Paris", resp[0].City)
}

func TestListHotels_Handler_MissingCity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := newSearchHandler().ListHotels(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
