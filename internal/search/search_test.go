package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/rmcli/internal/search"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher records calls and serves canned records.
type stubFetcher struct {
	records  []rmapi.Record
	listErr  error
	listed   []*rmapi.QueryParams
	gotIDs   []int
	byID     map[int]rmapi.Record
	getError error
}

func (s *stubFetcher) List(_ context.Context, _ *rmapi.QueryParams) (*rmapi.Page, error) {
	return &rmapi.Page{Results: s.records}, s.listErr
}

func (s *stubFetcher) ListAll(_ context.Context, params *rmapi.QueryParams) ([]rmapi.Record, error) {
	s.listed = append(s.listed, params)
	if s.listErr != nil {
		return nil, s.listErr
	}

	return s.records, nil
}

func (s *stubFetcher) Get(_ context.Context, id int) (rmapi.Record, error) {
	s.gotIDs = append(s.gotIDs, id)
	if s.getError != nil {
		return rmapi.Record{}, s.getError
	}

	return s.byID[id], nil
}

func (s *stubFetcher) GetMany(_ context.Context, _ []int) ([]rmapi.Record, error) {
	return nil, nil
}

type stubClient struct {
	resources map[rmapi.Resource]*stubFetcher
}

func (c *stubClient) Characters() rmapi.ResourceClient { return c.Resource(rmapi.ResourceCharacter) }
func (c *stubClient) Locations() rmapi.ResourceClient  { return c.Resource(rmapi.ResourceLocation) }
func (c *stubClient) Episodes() rmapi.ResourceClient   { return c.Resource(rmapi.ResourceEpisode) }

func (c *stubClient) Resource(resource rmapi.Resource) rmapi.ResourceClient {
	return c.resources[resource]
}

func character(id int, name, origin, location string) rmapi.Record {
	record := rmapi.NewRecord()
	record.Set(rmapi.FieldID, id).
		Set(rmapi.FieldName, name).
		Set(rmapi.FieldOrigin, named(origin)).
		Set(rmapi.FieldLocation, named(location))

	return record
}

func named(name string) rmapi.Record {
	record := rmapi.NewRecord()
	record.Set(rmapi.FieldName, name)

	return record
}

func episode(id int, code, airDate string) rmapi.Record {
	record := rmapi.NewRecord()
	record.Set(rmapi.FieldID, id).
		Set(rmapi.FieldEpisode, code).
		Set(rmapi.FieldAirDate, airDate)

	return record
}

func recordIDs(records []rmapi.Record) []int {
	out := make([]int, 0, len(records))

	for _, record := range records {
		id, _ := record.ID()
		out = append(out, id)
	}

	return out
}

func intPtr(v int) *int {
	return &v
}

func TestCharacterQuery(t *testing.T) {
	t.Parallel()

	t.Run("server params skip empty values", func(t *testing.T) {
		t.Parallel()

		plan, err := search.CharacterQuery{Name: "Rick", Species: "Human"}.Plan()
		require.NoError(t, err)

		assert.Equal(t, rmapi.ResourceCharacter, plan.Resource)
		assert.Equal(t, "name=Rick&species=Human", plan.Params.Encode())
		assert.Empty(t, plan.Pipeline.Stages())
	})

	t.Run("origin before location", func(t *testing.T) {
		t.Parallel()

		plan, err := search.CharacterQuery{Origin: "Earth (C-137)", Location: "Citadel of Ricks"}.Plan()
		require.NoError(t, err)

		assert.Equal(t, []string{"origin", "location"}, plan.Pipeline.Stages())
	})

	t.Run("origin exact match", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{records: []rmapi.Record{
			character(1, "Rick Sanchez", "Earth (C-137)", "Citadel of Ricks"),
			character(2, "Morty Smith", "unknown", "Citadel of Ricks"),
			character(3, "Summer Smith", "Earth (Replacement Dimension)", "Earth (Replacement Dimension)"),
			character(4, "Beth Smith", "earth (c-137)", "Earth (Replacement Dimension)"),
		}}

		result, err := search.Run(context.Background(), fetcher, search.CharacterQuery{Origin: "Earth (C-137)"})
		require.NoError(t, err)

		assert.False(t, result.Single)
		assert.Equal(t, []int{1}, recordIDs(result.Records))
		require.Len(t, fetcher.listed, 1)
		assert.True(t, fetcher.listed[0].IsEmpty())
	})

	t.Run("id short-circuits every other filter", func(t *testing.T) {
		t.Parallel()

		rick := character(1, "Rick Sanchez", "Earth (C-137)", "Citadel of Ricks")
		fetcher := &stubFetcher{byID: map[int]rmapi.Record{1: rick}}

		result, err := search.Run(context.Background(), fetcher, search.CharacterQuery{
			Name:   "Morty",
			Origin: "nowhere",
			ID:     intPtr(1),
		})
		require.NoError(t, err)

		assert.True(t, result.Single)
		assert.Equal(t, []int{1}, recordIDs(result.Records))
		assert.Equal(t, []int{1}, fetcher.gotIDs)
		assert.Empty(t, fetcher.listed)
	})

	t.Run("non-positive id", func(t *testing.T) {
		t.Parallel()

		_, err := search.CharacterQuery{ID: intPtr(0)}.Plan()
		require.ErrorIs(t, err, rmapi.ErrInvalidID)
	})
}

func TestLocationQuery(t *testing.T) {
	t.Parallel()

	plan, err := search.LocationQuery{Name: "Earth", Dimension: "C-137"}.Plan()
	require.NoError(t, err)

	assert.Equal(t, rmapi.ResourceLocation, plan.Resource)
	assert.Equal(t, "name=Earth&dimension=C-137", plan.Params.Encode())
	assert.Empty(t, plan.Pipeline.Stages())
}

func TestEpisodeQuery(t *testing.T) {
	t.Parallel()

	episodes := []rmapi.Record{
		episode(1, "S01E01", "December 2, 2013"),
		episode(2, "S01E02", "December 9, 2013"),
		episode(3, "S01E03", "December 16, 2013"),
		episode(12, "S02E01", "July 26, 2015"),
		episode(42, "S05E01", "June 20, 2021"),
	}

	t.Run("stage order", func(t *testing.T) {
		t.Parallel()

		plan, err := search.EpisodeQuery{
			Before:        "January 1, 2020",
			After:         "January 1, 2010",
			Season:        intPtr(1),
			EpisodeNumber: intPtr(3),
		}.Plan()
		require.NoError(t, err)

		assert.Equal(t, []string{"before", "after", "season", "episode number"}, plan.Pipeline.Stages())
	})

	t.Run("season and episode number", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{records: episodes}

		result, err := search.Run(context.Background(), fetcher, search.EpisodeQuery{
			Season:        intPtr(1),
			EpisodeNumber: intPtr(3),
		})
		require.NoError(t, err)

		assert.Equal(t, []int{3}, recordIDs(result.Records))
	})

	t.Run("date window", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{records: episodes}

		result, err := search.Run(context.Background(), fetcher, search.EpisodeQuery{
			After:  "December 9, 2013",
			Before: "June 20, 2021",
		})
		require.NoError(t, err)

		assert.Equal(t, []int{3, 12}, recordIDs(result.Records))
	})

	t.Run("malformed date fails before fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{records: episodes}

		_, err := search.Run(context.Background(), fetcher, search.EpisodeQuery{Before: "2013-12-02"})
		require.Error(t, err)

		var formatErr *rmapi.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "2013-12-02", formatErr.Value)
		assert.Empty(t, fetcher.listed)
	})

	t.Run("malformed server value aborts", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{records: []rmapi.Record{episode(1, "Pilot", "December 2, 2013")}}

		_, err := search.Run(context.Background(), fetcher, search.EpisodeQuery{Season: intPtr(1)})
		require.Error(t, err)
		assert.True(t, rmapi.IsFormat(err))
		assert.Contains(t, err.Error(), "filtering episode")
	})

	t.Run("id skips date validation", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{byID: map[int]rmapi.Record{42: episodes[4]}}

		result, err := search.Run(context.Background(), fetcher, search.EpisodeQuery{
			Before: "not a date",
			ID:     intPtr(42),
		})
		require.NoError(t, err)

		assert.True(t, result.Single)
		assert.Equal(t, []int{42}, recordIDs(result.Records))
	})
}

func TestRunPropagatesFetchErrors(t *testing.T) {
	t.Parallel()

	remote := &rmapi.RemoteError{StatusCode: 404, Message: rmapi.NotFoundMessage}
	fetcher := &stubFetcher{listErr: remote}

	_, err := search.Run(context.Background(), fetcher, search.LocationQuery{Name: "Nowhere"})
	require.Error(t, err)
	assert.True(t, rmapi.IsNotFound(err))
	assert.Contains(t, err.Error(), "fetching location")
}

func TestAll(t *testing.T) {
	t.Parallel()

	client := &stubClient{resources: map[rmapi.Resource]*stubFetcher{
		rmapi.ResourceCharacter: {records: []rmapi.Record{character(1, "Rick", "Earth", "Earth")}},
		rmapi.ResourceLocation:  {records: []rmapi.Record{character(2, "Earth", "", "")}},
		rmapi.ResourceEpisode:   {records: []rmapi.Record{episode(3, "S01E01", "December 2, 2013")}},
	}}

	t.Run("every resource in fixed order", func(t *testing.T) {
		t.Parallel()

		result, err := search.All(context.Background(), client, nil)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2, 3}, recordIDs(result.Records))
		assert.Empty(t, result.Resource)
	})

	t.Run("selected resource", func(t *testing.T) {
		t.Parallel()

		result, err := search.All(context.Background(), client, []rmapi.Resource{rmapi.ResourceEpisode})
		require.NoError(t, err)

		assert.Equal(t, []int{3}, recordIDs(result.Records))
		assert.Equal(t, rmapi.ResourceEpisode, result.Resource)
	})

	t.Run("failure aborts", func(t *testing.T) {
		t.Parallel()

		failing := &stubClient{resources: map[rmapi.Resource]*stubFetcher{
			rmapi.ResourceCharacter: {records: nil},
			rmapi.ResourceLocation:  {listErr: errors.New("boom")},
			rmapi.ResourceEpisode:   {},
		}}

		_, err := search.All(context.Background(), failing, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetching location")
	})
}
