// Package live fetches real-route fares and hotel rates through an
// AI-gateway endpoint with search grounding. The transport is best-effort:
// every error here is masked upstream by the mock-fare fallback.
package live

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KimLeno1/sky1/internal/fares"
	"github.com/KimLeno1/sky1/internal/models"
)

var (
	ErrNoAPIKey    = errors.New("live fare source has no api key configured")
	ErrEmptyResult = errors.New("live fare source returned no offers")
)

const model = "gemini-2.5-flash"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Tools    []tool    `json:"tools,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch struct{} `json:"google_search"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// liveFlight is the record shape the prompt asks for. Fields the model
// omits get defaults during mapping.
type liveFlight struct {
	FlightNumber  string `json:"flightNumber"`
	Airline       string `json:"airline"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	Price         int    `json:"price"`
	Stops         int    `json:"stops"`
	AircraftType  string `json:"aircraftType"`
}

type liveHotel struct {
	Name          string `json:"name"`
	Stars         int    `json:"stars"`
	PricePerNight int    `json:"pricePerNight"`
	Description   string `json:"description"`
}

// FetchFlights queries the gateway for real schedules on one leg. Any
// failure, including an empty or unparseable answer, is returned as an
// error so the caller can fall back to generated fares.
func (c *Client) FetchFlights(ctx context.Context, params models.SearchParams) (*models.FlightSearchResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	prompt := fmt.Sprintf(
		"List real scheduled flights from %s to %s on %s for %d passenger(s) in %s class. "+
			"Respond with only a JSON array of objects with keys flightNumber, airline, "+
			"departureTime, arrivalTime, duration, price, stops, aircraftType. "+
			"Prices in whole USD for all passengers combined.",
		params.Origin, params.Destination, params.Date, params.Passengers, params.CabinClass,
	)

	raw, sources, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var records []liveFlight
	if err := json.Unmarshal(extractJSON(raw), &records); err != nil {
		return nil, fmt.Errorf("parse live flights: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyResult
	}

	flights := make([]models.Flight, 0, len(records))
	for i, r := range records {
		f := models.Flight{
			ID:               r.FlightNumber,
			Airline:          r.Airline,
			DepartureAirport: params.Origin,
			ArrivalAirport:   params.Destination,
			DepartureTime:    r.DepartureTime,
			ArrivalTime:      r.ArrivalTime,
			Duration:         r.Duration,
			Price:            r.Price,
			Class:            params.CabinClass,
			Stops:            r.Stops,
			AircraftType:     r.AircraftType,
			VerifiedSchedule: true,
		}
		if f.ID == "" {
			f.ID = fmt.Sprintf("LIVE-%d", i+1)
		}
		if f.Price <= 0 {
			f.Price = 299
		}
		if airline, ok := fares.FindAirline(r.Airline); ok {
			f.Logo = airline.Logo
		}
		flights = append(flights, f)
	}

	return &models.FlightSearchResponse{Flights: flights, Sources: sources}, nil
}

// FetchHotels queries current hotel rates for a city.
func (c *Client) FetchHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	prompt := fmt.Sprintf(
		"List 5 real hotels in %s across price tiers. Respond with only a JSON array of "+
			"objects with keys name, stars, pricePerNight, description. Prices in whole USD.",
		city,
	)

	raw, _, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var records []liveHotel
	if err := json.Unmarshal(extractJSON(raw), &records); err != nil {
		return nil, fmt.Errorf("parse live hotels: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyResult
	}

	hotels := make([]models.Hotel, 0, len(records))
	for i, r := range records {
		hotels = append(hotels, models.Hotel{
			ID:            fmt.Sprintf("LH-%s-%d", city, i+1),
			Name:          r.Name,
			City:          city,
			Stars:         r.Stars,
			PricePerNight: r.PricePerNight,
			Description:   r.Description,
		})
	}
	return hotels, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, []models.GroundingSource, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{}},
	})
	if err != nil {
		return "", nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("live gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("live gateway: unexpected status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", nil, fmt.Errorf("decode live response: %w", err)
	}
	if len(decoded.Candidates) == 0 {
		return "", nil, ErrEmptyResult
	}

	cand := decoded.Candidates[0]
	var text strings.Builder
	for _, p := range cand.Content.Parts {
		text.WriteString(p.Text)
	}

	var sources []models.GroundingSource
	for _, chunk := range cand.GroundingMetadata.GroundingChunks {
		if chunk.Web.URI == "" {
			continue
		}
		sources = append(sources, models.GroundingSource{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return text.String(), sources, nil
}

// extractJSON pulls the first JSON array out of a possibly markdown-fenced
// answer. The model sometimes wraps its output in ```json fences or prose.
func extractJSON(raw string) []byte {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end < start {
		return []byte(s)
	}
	return []byte(s[start : end+1])
}
