// Package search runs entity queries: server-side filters, then an ordered
// client-side pipeline, with identifier lookups short-circuiting both.
package search

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/rmcli/internal/filter"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
)

// Fetcher is the subset of rmapi.ResourceClient a query needs.
type Fetcher interface {
	ListAll(ctx context.Context, params *rmapi.QueryParams) ([]rmapi.Record, error)
	Get(ctx context.Context, id int) (rmapi.Record, error)
}

// Plan is a resolved query: either an identifier lookup or server params
// followed by a client-side pipeline.
type Plan struct {
	Resource rmapi.Resource
	ID       *int
	Params   *rmapi.QueryParams
	Pipeline *filter.Pipeline
}

// Planner builds a Plan from user input. Planning validates input before any
// request is made.
type Planner interface {
	Plan() (*Plan, error)
}

// Result is the outcome of a query.
type Result struct {
	Resource rmapi.Resource
	Records  []rmapi.Record
	// Single is set for identifier lookups, which render as one object.
	Single bool
}

// Run plans and executes a query against fetcher.
func Run(ctx context.Context, fetcher Fetcher, planner Planner) (*Result, error) {
	plan, err := planner.Plan()
	if err != nil {
		return nil, err
	}

	return Execute(ctx, fetcher, plan)
}

// Execute runs an already built plan.
func Execute(ctx context.Context, fetcher Fetcher, plan *Plan) (*Result, error) {
	if plan.ID != nil {
		record, err := fetcher.Get(ctx, *plan.ID)
		if err != nil {
			return nil, fmt.Errorf("looking up %s %d: %w", plan.Resource, *plan.ID, err)
		}

		return &Result{Resource: plan.Resource, Records: []rmapi.Record{record}, Single: true}, nil
	}

	records, err := fetcher.ListAll(ctx, plan.Params)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", plan.Resource, err)
	}

	filtered, err := plan.Pipeline.Apply(records)
	if err != nil {
		return nil, fmt.Errorf("filtering %s: %w", plan.Resource, err)
	}

	return &Result{Resource: plan.Resource, Records: filtered}, nil
}

// All fetches every record of the given resources, in the order given, into
// one result.
func All(ctx context.Context, client rmapi.Client, resources []rmapi.Resource) (*Result, error) {
	if len(resources) == 0 {
		resources = rmapi.Resources()
	}

	result := &Result{}

	for _, resource := range resources {
		records, err := client.Resource(resource).ListAll(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", resource, err)
		}

		result.Records = append(result.Records, records...)
	}

	if len(resources) == 1 {
		result.Resource = resources[0]
	}

	return result, nil
}

func idPlan(resource rmapi.Resource, id *int) (*Plan, error) {
	if *id <= 0 {
		return nil, fmt.Errorf("%w: %d", rmapi.ErrInvalidID, *id)
	}

	return &Plan{Resource: resource, ID: id}, nil
}
