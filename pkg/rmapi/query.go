package rmapi

import (
	"net/url"
	"strings"
)

// QueryParams is an ordered mapping of server-side filter fields to values.
//
// A field whose value is the empty string means "no constraint": it is kept
// in the mapping but never sent to the server.
type QueryParams struct {
	keys   []string
	values map[string]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{values: make(map[string]string)}
}

// WithFilter sets a field, keeping the original position of existing fields.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.values == nil {
		q.values = make(map[string]string)
	}

	if _, exists := q.values[key]; !exists {
		q.keys = append(q.keys, key)
	}

	q.values[key] = value

	return q
}

// Get returns the value set for a field.
func (q *QueryParams) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}

	value, ok := q.values[key]

	return value, ok
}

// Keys returns every field name in insertion order, including empty ones.
func (q *QueryParams) Keys() []string {
	if q == nil {
		return nil
	}

	keys := make([]string, len(q.keys))
	copy(keys, q.keys)

	return keys
}

// IsEmpty reports whether no field carries a constraint.
func (q *QueryParams) IsEmpty() bool {
	return len(q.ToValues()) == 0
}

// ToValues converts the parameters to url.Values, dropping empty values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	for _, key := range q.keys {
		if value := q.values[key]; value != "" {
			values.Set(key, value)
		}
	}

	return values
}

// Encode renders the query string in insertion order, dropping empty values.
func (q *QueryParams) Encode() string {
	if q == nil {
		return ""
	}

	parts := make([]string, 0, len(q.keys))

	for _, key := range q.keys {
		value := q.values[key]
		if value == "" {
			continue
		}

		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}

	return strings.Join(parts, "&")
}
