// Package search turns user search parameters into per-leg offer lists,
// preferring the live data source and falling back to generated fares.
package search

import (
	"context"
	"errors"
	"sync"

	"github.com/KimLeno1/sky1/internal/models"
)

var ErrNoLegs = errors.New("multi-city search requires at least one leg")

// LiveSource is the external fare collaborator. It may fail or return
// nothing; the orchestrator masks that per leg.
type LiveSource interface {
	FetchFlights(ctx context.Context, params models.SearchParams) (*models.FlightSearchResponse, error)
}

// FareGenerator is the local fallback (internal/fares.Generator in
// production).
type FareGenerator interface {
	Generate(params models.SearchParams) []models.Flight
}

// Result holds one offer list per leg, in leg order. Sources carry the
// grounding citations of the first leg's live response only.
type Result struct {
	Legs    [][]models.Flight        `json:"legs"`
	Sources []models.GroundingSource `json:"sources"`
}

type Orchestrator struct {
	live LiveSource
	gen  FareGenerator
}

// New builds an orchestrator. live may be nil, in which case every leg is
// generated locally.
func New(live LiveSource, gen FareGenerator) *Orchestrator {
	return &Orchestrator{live: live, gen: gen}
}

// Search resolves params into legs and fetches all of them concurrently.
// A failed live fetch is replaced by generated data for that leg only; a
// leg failure never aborts the overall search.
func (o *Orchestrator) Search(ctx context.Context, params models.SearchParams) (*Result, error) {
	legs, err := legParams(params)
	if err != nil {
		return nil, err
	}

	result := &Result{Legs: make([][]models.Flight, len(legs))}
	sources := make([][]models.GroundingSource, len(legs))

	var wg sync.WaitGroup
	for i, leg := range legs {
		wg.Add(1)
		go func(i int, leg models.SearchParams) {
			defer wg.Done()
			result.Legs[i], sources[i] = o.fetchLeg(ctx, leg)
		}(i, leg)
	}
	wg.Wait()

	result.Sources = sources[0]
	return result, nil
}

func (o *Orchestrator) fetchLeg(ctx context.Context, leg models.SearchParams) ([]models.Flight, []models.GroundingSource) {
	if o.live != nil {
		resp, err := o.live.FetchFlights(ctx, leg)
		if err == nil {
			return resp.Flights, resp.Sources
		}
	}
	return o.gen.Generate(leg), nil
}

// legParams expands the trip type into one search per leg. The inbound leg
// of a round trip swaps origin and destination.
func legParams(params models.SearchParams) ([]models.SearchParams, error) {
	switch params.TripType {
	case models.TripRoundTrip:
		inbound := params
		inbound.Origin = params.Destination
		inbound.Destination = params.Origin
		inbound.Date = params.ReturnDate
		if inbound.Date == "" {
			inbound.Date = params.Date
		}
		return []models.SearchParams{params, inbound}, nil

	case models.TripMultiCity:
		if len(params.Legs) == 0 {
			return nil, ErrNoLegs
		}
		legs := make([]models.SearchParams, 0, len(params.Legs))
		for _, l := range params.Legs {
			leg := params
			leg.Origin = l.Origin
			leg.Destination = l.Destination
			leg.Date = l.Date
			legs = append(legs, leg)
		}
		return legs, nil

	default:
		return []models.SearchParams{params}, nil
	}
}
