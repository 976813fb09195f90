package rmapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Well-known record fields consulted by filters and metrics.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldOrigin   = "origin"
	FieldLocation = "location"
	FieldEpisode  = "episode"
	FieldAirDate  = "air_date"
	FieldImage    = "image"
)

var errUnexpectedToken = errors.New("unexpected JSON token")

// Record is a single character, location or episode as returned by the API.
//
// Records are schema-light: the client never validates their shape. The
// top-level key order of the server response is preserved so that JSON, YAML
// and tabular output follow the API's own field order. Nested objects are
// decoded as Records as well; numbers are kept as json.Number.
type Record struct {
	keys   []string
	fields map[string]any
}

// NewRecord creates an empty record.
func NewRecord() Record {
	return Record{fields: make(map[string]any)}
}

// ParseRecord decodes a single JSON object into a Record.
func ParseRecord(data []byte) (Record, error) {
	var record Record

	err := json.Unmarshal(data, &record)
	if err != nil {
		return Record{}, fmt.Errorf("parsing record: %w", err)
	}

	return record, nil
}

// Set assigns a field, keeping the original position of existing keys.
func (r *Record) Set(key string, value any) *Record {
	if r.fields == nil {
		r.fields = make(map[string]any)
	}

	if _, exists := r.fields[key]; !exists {
		r.keys = append(r.keys, key)
	}

	r.fields[key] = value

	return r
}

// Keys returns the field names in server order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

// Len returns the number of top-level fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Get returns the raw value of a field.
func (r Record) Get(key string) (any, bool) {
	value, ok := r.fields[key]

	return value, ok
}

// String returns a field as a string. Absent or non-string fields report false.
func (r Record) String(key string) (string, bool) {
	value, ok := r.fields[key].(string)

	return value, ok
}

// Int returns a numeric field as an int.
func (r Record) Int(key string) (int, bool) {
	return toInt(r.fields[key])
}

// Nested returns a nested object field.
func (r Record) Nested(key string) (Record, bool) {
	nested, ok := r.fields[key].(Record)

	return nested, ok
}

// List returns an array field.
func (r Record) List(key string) ([]any, bool) {
	list, ok := r.fields[key].([]any)

	return list, ok
}

// ID returns the record identifier.
func (r Record) ID() (int, bool) {
	return r.Int(FieldID)
}

// Name returns the display name.
func (r Record) Name() (string, bool) {
	return r.String(FieldName)
}

// NestedName returns field.name for object fields such as origin and location.
func (r Record) NestedName(field string) (string, bool) {
	nested, ok := r.Nested(field)
	if !ok {
		return "", false
	}

	return nested.Name()
}

// OriginName returns origin.name on character records.
func (r Record) OriginName() (string, bool) {
	return r.NestedName(FieldOrigin)
}

// LocationName returns location.name on character records.
func (r Record) LocationName() (string, bool) {
	return r.NestedName(FieldLocation)
}

// EpisodeCode returns the episode code (e.g. "S01E03") on episode records.
func (r Record) EpisodeCode() (string, bool) {
	return r.String(FieldEpisode)
}

// EpisodeRefs returns the list of episode URLs on character records.
func (r Record) EpisodeRefs() ([]string, bool) {
	list, ok := r.List(FieldEpisode)
	if !ok {
		return nil, false
	}

	refs := make([]string, 0, len(list))

	for _, item := range list {
		if ref, isString := item.(string); isString {
			refs = append(refs, ref)
		}
	}

	return refs, true
}

// AirDate returns the air date string on episode records.
func (r Record) AirDate() (string, bool) {
	return r.String(FieldAirDate)
}

// Image returns the avatar URL on character records.
func (r Record) Image() (string, bool) {
	return r.String(FieldImage)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("reading record: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: record must be an object, got %v", errUnexpectedToken, tok)
	}

	record, err := decodeObject(decoder)
	if err != nil {
		return err
	}

	*r = record

	return nil
}

// MarshalJSON implements json.Marshaler, emitting fields in server order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", key, err)
		}

		valueJSON, err := json.Marshal(r.fields[key])
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", key, err)
		}

		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valueJSON)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, emitting fields in server order.
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, key := range r.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valueNode := &yaml.Node{}

		err := valueNode.Encode(yamlValue(r.fields[key]))
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", key, err)
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}

func decodeObject(decoder *json.Decoder) (Record, error) {
	record := NewRecord()

	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return Record{}, fmt.Errorf("reading key: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return Record{}, fmt.Errorf("%w: object key %v", errUnexpectedToken, tok)
		}

		value, err := decodeValue(decoder)
		if err != nil {
			return Record{}, err
		}

		record.Set(key, value)
	}

	// closing '}'
	_, err := decoder.Token()
	if err != nil {
		return Record{}, fmt.Errorf("reading object end: %w", err)
	}

	return record, nil
}

func decodeArray(decoder *json.Decoder) ([]any, error) {
	list := []any{}

	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}

		list = append(list, value)
	}

	// closing ']'
	_, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("reading array end: %w", err)
	}

	return list, nil
}

func decodeValue(decoder *json.Decoder) (any, error) {
	tok, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("reading value: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(decoder)
	case '[':
		return decodeArray(decoder)
	default:
		return nil, fmt.Errorf("%w: %v", errUnexpectedToken, delim)
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, false
		}

		return n, true
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}

		return int(v), true
	default:
		return 0, false
	}
}

// yamlValue converts json.Number into native numbers so YAML emits them
// unquoted.
func yamlValue(value any) any {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case []any:
		converted := make([]any, len(v))
		for i, item := range v {
			converted[i] = yamlValue(item)
		}

		return converted
	default:
		return v
	}
}
