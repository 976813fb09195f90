package filter_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/rmcli/internal/filter"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, data string) rmapi.Record {
	t.Helper()

	record, err := rmapi.ParseRecord([]byte(data))
	require.NoError(t, err)

	return record
}

func names(t *testing.T, records []rmapi.Record) []string {
	t.Helper()

	out := make([]string, 0, len(records))

	for _, record := range records {
		name, _ := record.Name()
		out = append(out, name)
	}

	return out
}

func TestParseEpisodeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code    string
		season  int
		episode int
		wantErr bool
	}{
		{code: "S01E03", season: 1, episode: 3},
		{code: "S10E01", season: 10, episode: 1},
		{code: "S1E3", season: 1, episode: 3},
		{code: "S001E0010", season: 1, episode: 10},
		{code: " S04E10 ", season: 4, episode: 10},
		{code: "01E03", wantErr: true},
		{code: "S0103", wantErr: true},
		{code: "S-1E03", wantErr: true},
		{code: "S01E+3", wantErr: true},
		{code: "S+1E-3", wantErr: true},
		{code: "SxxE03", wantErr: true},
		{code: "S01E", wantErr: true},
		{code: "", wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.code, func(t *testing.T) {
			t.Parallel()

			season, episode, err := filter.ParseEpisodeCode(testCase.code)
			if testCase.wantErr {
				require.Error(t, err)
				assert.True(t, rmapi.IsFormat(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.season, season)
			assert.Equal(t, testCase.episode, episode)
		})
	}
}

func TestSeasonAndEpisodeNumber(t *testing.T) {
	t.Parallel()

	pilot := mustRecord(t, `{"name": "Pilot", "episode": "S01E01"}`)
	anatomy := mustRecord(t, `{"name": "Anatomy Park", "episode": "S01E03"}`)
	tenth := mustRecord(t, `{"name": "Season Ten", "episode": "S10E01"}`)

	ok, err := filter.SeasonEquals(1)(anatomy)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = filter.EpisodeNumberEquals(3)(anatomy)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = filter.SeasonEquals(10)(tenth)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = filter.SeasonEquals(1)(tenth)
	require.NoError(t, err)
	assert.False(t, ok)

	kept, err := filter.Filter([]rmapi.Record{pilot, anatomy, tenth}, filter.EpisodeNumberEquals(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"Pilot", "Season Ten"}, names(t, kept))
}

func TestSeasonEquals_MalformedServerCode(t *testing.T) {
	t.Parallel()

	broken := mustRecord(t, `{"name": "Broken", "episode": "Episode 3"}`)

	_, err := filter.SeasonEquals(1)(broken)
	require.Error(t, err)
	assert.True(t, rmapi.IsFormat(err))

	// character records carry an episode list, which is not a code
	character := mustRecord(t, `{"name": "Rick", "episode": ["https://example.test/episode/1"]}`)

	ok, err := filter.SeasonEquals(1)(character)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAirDateFilters(t *testing.T) {
	t.Parallel()

	early := mustRecord(t, `{"name": "Pilot", "air_date": "December 2, 2013"}`)
	late := mustRecord(t, `{"name": "Raising Gazorpazorp", "air_date": "January 10, 2014"}`)
	records := []rmapi.Record{early, late}

	cutoff, err := filter.ParseAirDate("January 1, 2014")
	require.NoError(t, err)

	after, err := filter.Filter(records, filter.AiredAfter(cutoff))
	require.NoError(t, err)
	assert.Equal(t, []string{"Raising Gazorpazorp"}, names(t, after))

	before, err := filter.Filter(records, filter.AiredBefore(cutoff))
	require.NoError(t, err)
	assert.Equal(t, []string{"Pilot"}, names(t, before))

	// comparisons are strict
	sameDay, err := filter.ParseAirDate("December 2, 2013")
	require.NoError(t, err)

	kept, err := filter.Filter([]rmapi.Record{early}, filter.AiredBefore(sameDay))
	require.NoError(t, err)
	assert.Empty(t, kept)

	kept, err = filter.Filter([]rmapi.Record{early}, filter.AiredAfter(sameDay))
	require.NoError(t, err)
	assert.Empty(t, kept)
}

func TestParseAirDate(t *testing.T) {
	t.Parallel()

	parsed, err := filter.ParseAirDate("December 2, 2013")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2013, time.December, 2, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = filter.ParseAirDate("april 09, 2017")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2017, time.April, 9, 0, 0, 0, 0, time.UTC), parsed)

	for _, malformed := range []string{"2014-01-01", "01/01/2014", "Jan 1 2014", ""} {
		_, err := filter.ParseAirDate(malformed)
		require.Error(t, err, malformed)

		formatErr := &rmapi.FormatError{}
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "air date", formatErr.Kind)
		assert.Equal(t, malformed, formatErr.Value)
	}
}

func TestAirDate_MalformedServerValue(t *testing.T) {
	t.Parallel()

	broken := mustRecord(t, `{"name": "Broken", "air_date": "2014-01-01"}`)

	_, err := filter.Filter([]rmapi.Record{broken}, filter.AiredAfter(time.Now()))
	require.Error(t, err)
	assert.True(t, rmapi.IsFormat(err))
}

func TestOriginAndLocationFilters(t *testing.T) {
	t.Parallel()

	rick := mustRecord(t, `{"name": "Rick Sanchez", "origin": {"name": "Earth (C-137)"}, "location": {"name": "Citadel of Ricks"}}`)
	morty := mustRecord(t, `{"name": "Morty Smith", "origin": {"name": "unknown"}, "location": {"name": "Citadel of Ricks"}}`)
	replacement := mustRecord(t, `{"name": "Summer Smith", "origin": {"name": "Earth (Replacement Dimension)"}, "location": {"name": "Earth (Replacement Dimension)"}}`)
	lowercase := mustRecord(t, `{"name": "Lower", "origin": {"name": "earth (c-137)"}}`)
	noOrigin := mustRecord(t, `{"name": "Nobody"}`)

	records := []rmapi.Record{rick, morty, replacement, lowercase, noOrigin}

	kept, err := filter.Filter(records, filter.OriginNameEquals("Earth (C-137)"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Rick Sanchez"}, names(t, kept))

	// exact match, not substring
	kept, err = filter.Filter(records, filter.OriginNameEquals("Earth"))
	require.NoError(t, err)
	assert.Empty(t, kept)

	kept, err = filter.Filter(records, filter.LocationNameEquals("Citadel of Ricks"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Rick Sanchez", "Morty Smith"}, names(t, kept))
}
