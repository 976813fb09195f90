// Package metrics aggregates fetched records into rankings.
package metrics

import (
	"context"
	"fmt"
	"sort"

	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
)

// Lister fetches every record of a collection.
type Lister interface {
	ListAll(ctx context.Context, params *rmapi.QueryParams) ([]rmapi.Record, error)
}

// Field names of a rendered Entry.
const (
	FieldName     = rmapi.FieldName
	FieldEpisodes = "episodes"
)

// Entry is one ranked character.
type Entry struct {
	Name  string `json:"name"     yaml:"name"`
	Count int    `json:"episodes" yaml:"episodes"`
}

// Record converts the entry for rendering.
func (e Entry) Record() rmapi.Record {
	record := rmapi.NewRecord()
	record.Set(FieldName, e.Name).Set(FieldEpisodes, e.Count)

	return record
}

// TopCharactersByEpisodeCount fetches all characters and ranks them by the
// number of episodes they appear in. A limit of zero or less returns every
// character.
func TopCharactersByEpisodeCount(ctx context.Context, lister Lister, limit int) ([]Entry, error) {
	characters, err := lister.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching characters: %w", err)
	}

	return Rank(characters, limit), nil
}

// Rank orders records by episode count, highest first. Ties keep input
// order. Names come from the records themselves.
func Rank(records []rmapi.Record, limit int) []Entry {
	entries := make([]Entry, 0, len(records))

	for _, record := range records {
		name, _ := record.Name()
		refs, _ := record.EpisodeRefs()

		entries = append(entries, Entry{Name: name, Count: len(refs)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	return entries
}

// Records converts entries for rendering, preserving rank order.
func Records(entries []Entry) []rmapi.Record {
	records := make([]rmapi.Record, len(entries))
	for i, entry := range entries {
		records[i] = entry.Record()
	}

	return records
}
