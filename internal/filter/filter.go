// Package filter narrows in-memory record sequences with composable
// predicates applied in a fixed order.
package filter

import (
	"fmt"

	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
)

// Predicate reports whether a record is kept. An error aborts filtering.
type Predicate func(record rmapi.Record) (bool, error)

// Stage is a named predicate within a pipeline.
type Stage struct {
	Name      string
	Predicate Predicate
}

// Pipeline applies stages in insertion order; each stage sees the output of
// the previous one.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Add appends a stage.
func (p *Pipeline) Add(name string, predicate Predicate) *Pipeline {
	p.stages = append(p.stages, Stage{Name: name, Predicate: predicate})

	return p
}

// AddIf appends a stage only when cond holds.
func (p *Pipeline) AddIf(cond bool, name string, predicate Predicate) *Pipeline {
	if cond {
		p.Add(name, predicate)
	}

	return p
}

// Stages returns the stage names in application order.
func (p *Pipeline) Stages() []string {
	if p == nil {
		return nil
	}

	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name
	}

	return names
}

// Apply runs every stage over records. A nil or empty pipeline returns the
// input unchanged.
func (p *Pipeline) Apply(records []rmapi.Record) ([]rmapi.Record, error) {
	if p == nil {
		return records, nil
	}

	current := records

	for _, stage := range p.stages {
		filtered, err := Filter(current, stage.Predicate)
		if err != nil {
			return nil, fmt.Errorf("applying %s filter: %w", stage.Name, err)
		}

		current = filtered
	}

	return current, nil
}

// Filter returns the subsequence of records the predicate keeps, in order.
func Filter(records []rmapi.Record, predicate Predicate) ([]rmapi.Record, error) {
	kept := make([]rmapi.Record, 0, len(records))

	for _, record := range records {
		ok, err := predicate(record)
		if err != nil {
			return nil, err
		}

		if ok {
			kept = append(kept, record)
		}
	}

	return kept, nil
}
