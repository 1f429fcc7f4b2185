package live

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KimLeno1/sky1/internal/models"
	"github.com/stretchr/testify/assert"
)

const fencedAnswer = "Here are the flights:\n```json\n" +
	`[{"flightNumber":"DL1234","airline":"Delta Air Lines","departureTime":"08:00","arrivalTime":"11:30","duration":"5h 30m","price":420,"stops":0,"aircraftType":"A321neo"},` +
	`{"flightNumber":"","airline":"Mystery Air","departureTime":"10:00","arrivalTime":"13:30","duration":"5h 30m","price":0,"stops":1,"aircraftType":"737"}]` +
	"\n```"

func gatewayResponse(text string, withSources bool) string {
	sources := ""
	if withSources {
		sources = `,"groundingMetadata":{"groundingChunks":[{"web":{"uri":"https://flights.example.com","title":"Example Flights"}}]}`
	}
	body, _ := json.Marshal(text)
	return `{"candidates":[{"content":{"parts":[{"text":` + string(body) + `}]}` + sources + `}]}`
}

func TestFetchFlightsMapsRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(gatewayResponse(fencedAnswer, true)))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	resp, err := client.FetchFlights(context.Background(), models.SearchParams{
		Origin:      "SFO",
		Destination: "JFK",
		Date:        "2026-09-15",
		Passengers:  1,
		CabinClass:  models.CabinEconomy,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Flights, 2)

	first := resp.Flights[0]
	assert.Equal(t, "DL1234", first.ID)
	assert.Equal(t, 420, first.Price)
	assert.Equal(t, "SFO", first.DepartureAirport)
	assert.Equal(t, "JFK", first.ArrivalAirport)
	assert.True(t, first.VerifiedSchedule)
	assert.NotEmpty(t, first.Logo) // known airline resolves its logo

	second := resp.Flights[1]
	assert.Equal(t, "LIVE-2", second.ID)
	assert.Equal(t, 299, second.Price) // missing price defaulted
	assert.Empty(t, second.Logo)

	assert.Len(t, resp.Sources, 1)
	assert.Equal(t, "https://flights.example.com", resp.Sources[0].URI)
}

func TestFetchFlightsWithoutKey(t *testing.T) {
	client := NewClient("http://unused", "")
	_, err := client.FetchFlights(context.Background(), models.SearchParams{Origin: "SFO", Destination: "JFK"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestFetchFlightsEmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(gatewayResponse("[]", false)))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.FetchFlights(context.Background(), models.SearchParams{Origin: "SFO", Destination: "JFK"})
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestFetchFlightsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	_, err := client.FetchFlights(context.Background(), models.SearchParams{Origin: "SFO", Destination: "JFK"})
	assert.Error(t, err)
}

func TestFetchHotels(t *testing.T) {
	answer := `[{"name":"Grand Central","stars":5,"pricePerNight":410,"description":"Landmark stay"}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(gatewayResponse(answer, false)))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	hotels, err := client.FetchHotels(context.Background(), "New York")

	assert.NoError(t, err)
	assert.Len(t, hotels, 1)
	assert.Equal(t, "Grand Central", hotels[0].Name)
	assert.Equal(t, "New York", hotels[0].City)
	assert.Equal(t, 5, hotels[0].Stars)
}

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		"bare":       `[{"a":1}]`,
		"fenced":     "```json\n[{\"a\":1}]\n```",
		"with prose": "Sure, here you go:\n```\n[{\"a\":1}]\n```\nHope that helps.",
		"inline":     `The answer is [{"a":1}] as requested.`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			assert.JSONEq(t, `[{"a":1}]`, string(extractJSON(raw)))
		})
	}
}
