package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
)

var errNotDecimal = errors.New("not a decimal number")

// NestedNameEquals keeps records whose field.name equals target exactly.
// Records lacking the nested name are dropped.
func NestedNameEquals(field, target string) Predicate {
	return func(record rmapi.Record) (bool, error) {
		name, ok := record.NestedName(field)

		return ok && name == target, nil
	}
}

// OriginNameEquals keeps characters whose origin.name equals target.
func OriginNameEquals(target string) Predicate {
	return NestedNameEquals(rmapi.FieldOrigin, target)
}

// LocationNameEquals keeps characters whose location.name equals target.
func LocationNameEquals(target string) Predicate {
	return NestedNameEquals(rmapi.FieldLocation, target)
}

// SeasonEquals keeps episodes of the given season.
func SeasonEquals(season int) Predicate {
	return func(record rmapi.Record) (bool, error) {
		code, ok := record.EpisodeCode()
		if !ok {
			return false, nil
		}

		got, _, err := ParseEpisodeCode(code)
		if err != nil {
			return false, err
		}

		return got == season, nil
	}
}

// EpisodeNumberEquals keeps episodes with the given number within their season.
func EpisodeNumberEquals(number int) Predicate {
	return func(record rmapi.Record) (bool, error) {
		code, ok := record.EpisodeCode()
		if !ok {
			return false, nil
		}

		_, got, err := ParseEpisodeCode(code)
		if err != nil {
			return false, err
		}

		return got == number, nil
	}
}

// AiredBefore keeps episodes that aired strictly before date.
func AiredBefore(date time.Time) Predicate {
	return airDateMatches(func(aired time.Time) bool { return aired.Before(date) })
}

// AiredAfter keeps episodes that aired strictly after date.
func AiredAfter(date time.Time) Predicate {
	return airDateMatches(func(aired time.Time) bool { return aired.After(date) })
}

func airDateMatches(compare func(aired time.Time) bool) Predicate {
	return func(record rmapi.Record) (bool, error) {
		raw, ok := record.AirDate()
		if !ok {
			return false, nil
		}

		aired, err := ParseAirDate(raw)
		if err != nil {
			return false, err
		}

		return compare(aired), nil
	}
}

// ParseAirDate parses a date in the API's "January 2, 2006" form.
func ParseAirDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constants.AirDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &rmapi.FormatError{
			Kind:     "air date",
			Value:    value,
			Expected: constants.AirDateHint,
			Err:      err,
		}
	}

	return parsed, nil
}

// ParseEpisodeCode splits a code of the form S<season>E<episode> into its
// integers. Zero padding and any digit width are accepted.
func ParseEpisodeCode(code string) (season, episode int, err error) {
	trimmed := strings.TrimSpace(code)

	seasonMarker := strings.IndexByte(trimmed, 'S')
	if seasonMarker < 0 {
		return 0, 0, episodeCodeError(code, nil)
	}

	episodeMarker := strings.IndexByte(trimmed[seasonMarker+1:], 'E')
	if episodeMarker < 0 {
		return 0, 0, episodeCodeError(code, nil)
	}

	episodeMarker += seasonMarker + 1

	season, err = parseCodeNumber(trimmed[seasonMarker+1 : episodeMarker])
	if err != nil {
		return 0, 0, episodeCodeError(code, err)
	}

	episode, err = parseCodeNumber(trimmed[episodeMarker+1:])
	if err != nil {
		return 0, 0, episodeCodeError(code, err)
	}

	return season, episode, nil
}

// parseCodeNumber accepts decimal digits only; Atoi alone would allow a sign.
func parseCodeNumber(digits string) (int, error) {
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", errNotDecimal, digits)
		}
	}

	return strconv.Atoi(digits)
}

func episodeCodeError(code string, err error) error {
	return &rmapi.FormatError{
		Kind:     "episode code",
		Value:    code,
		Expected: constants.EpisodeCodeHint,
		Err:      err,
	}
}
