package rmapi

import (
	"encoding/json"
	"fmt"
)

// Info is the pagination block of a list response.
type Info struct {
	Count int     `json:"count"          yaml:"count"`
	Pages int     `json:"pages"          yaml:"pages"`
	Next  *string `json:"next,omitempty" yaml:"next,omitempty"`
	Prev  *string `json:"prev,omitempty" yaml:"prev,omitempty"`
}

// HasNext reports whether another page follows.
func (i Info) HasNext() bool {
	return i.Next != nil && *i.Next != ""
}

// Page is a single list response envelope.
type Page struct {
	Info    Info     `json:"info"    yaml:"info"`
	Results []Record `json:"results" yaml:"results"`
}

// pageEnvelope carries both shapes a list endpoint may answer with.
type pageEnvelope struct {
	Info    Info     `json:"info"`
	Results []Record `json:"results"`
	Error   *string  `json:"error"`
}

// ParsePage decodes a list response. A body carrying an error payload, or
// lacking results altogether, is reported as an error rather than data.
func ParsePage(statusCode int, data []byte) (*Page, error) {
	var envelope pageEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	if envelope.Error != nil {
		return nil, &RemoteError{StatusCode: statusCode, Message: *envelope.Error}
	}

	if envelope.Results == nil {
		return nil, ErrMissingResults
	}

	return &Page{Info: envelope.Info, Results: envelope.Results}, nil
}

// ParseSingle decodes a single-entity response.
func ParseSingle(statusCode int, data []byte) (Record, error) {
	if remoteErr := ParseRemoteError(statusCode, data); remoteErr != nil {
		return Record{}, remoteErr
	}

	return ParseRecord(data)
}

// ParseList decodes a bare JSON array of records, as returned by multi-id lookups.
func ParseList(statusCode int, data []byte) ([]Record, error) {
	var records []Record

	err := json.Unmarshal(data, &records)
	if err == nil {
		return records, nil
	}

	if remoteErr := ParseRemoteError(statusCode, data); remoteErr != nil {
		return nil, remoteErr
	}

	return nil, fmt.Errorf("parsing record list: %w", err)
}
