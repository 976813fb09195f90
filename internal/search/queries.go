package search

import (
	"fmt"

	"github.com/fivetwenty-io/rmcli/internal/filter"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
)

// CharacterQuery filters characters. Empty strings mean "no constraint".
type CharacterQuery struct {
	Name     string
	Status   string
	Species  string
	Type     string
	Gender   string
	Origin   string
	Location string
	ID       *int
}

// Plan implements Planner. Order: server filters, origin, location.
func (q CharacterQuery) Plan() (*Plan, error) {
	if q.ID != nil {
		return idPlan(rmapi.ResourceCharacter, q.ID)
	}

	params := rmapi.NewQueryParams().
		WithFilter("name", q.Name).
		WithFilter("status", q.Status).
		WithFilter("species", q.Species).
		WithFilter("type", q.Type).
		WithFilter("gender", q.Gender)

	pipeline := filter.NewPipeline().
		AddIf(q.Origin != "", "origin", filter.OriginNameEquals(q.Origin)).
		AddIf(q.Location != "", "location", filter.LocationNameEquals(q.Location))

	return &Plan{Resource: rmapi.ResourceCharacter, Params: params, Pipeline: pipeline}, nil
}

// LocationQuery filters locations.
type LocationQuery struct {
	Name      string
	Type      string
	Dimension string
	ID        *int
}

// Plan implements Planner. Locations have no client-side stages.
func (q LocationQuery) Plan() (*Plan, error) {
	if q.ID != nil {
		return idPlan(rmapi.ResourceLocation, q.ID)
	}

	params := rmapi.NewQueryParams().
		WithFilter("name", q.Name).
		WithFilter("type", q.Type).
		WithFilter("dimension", q.Dimension)

	return &Plan{Resource: rmapi.ResourceLocation, Params: params, Pipeline: filter.NewPipeline()}, nil
}

// EpisodeQuery filters episodes. Dates use the "January 2, 2006" form.
// Season and EpisodeNumber are ignored when nil.
type EpisodeQuery struct {
	Name          string
	Episode       string
	Before        string
	After         string
	Season        *int
	EpisodeNumber *int
	ID            *int
}

// Plan implements Planner. Order: server filters, before, after, season,
// episode number. User-supplied dates are validated here so a malformed one
// fails before any request.
func (q EpisodeQuery) Plan() (*Plan, error) {
	if q.ID != nil {
		return idPlan(rmapi.ResourceEpisode, q.ID)
	}

	params := rmapi.NewQueryParams().
		WithFilter("name", q.Name).
		WithFilter("episode", q.Episode)

	pipeline := filter.NewPipeline()

	if q.Before != "" {
		before, err := filter.ParseAirDate(q.Before)
		if err != nil {
			return nil, fmt.Errorf("parsing --before: %w", err)
		}

		pipeline.Add("before", filter.AiredBefore(before))
	}

	if q.After != "" {
		after, err := filter.ParseAirDate(q.After)
		if err != nil {
			return nil, fmt.Errorf("parsing --after: %w", err)
		}

		pipeline.Add("after", filter.AiredAfter(after))
	}

	if q.Season != nil {
		pipeline.Add("season", filter.SeasonEquals(*q.Season))
	}

	if q.EpisodeNumber != nil {
		pipeline.Add("episode number", filter.EpisodeNumberEquals(*q.EpisodeNumber))
	}

	return &Plan{Resource: rmapi.ResourceEpisode, Params: params, Pipeline: pipeline}, nil
}
