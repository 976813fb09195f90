package rmapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// NotFoundMessage is the message the API returns when a lookup or a filtered
// listing matches nothing.
const NotFoundMessage = "There is nothing here"

// RemoteError represents an error payload returned by the API in place of data.
type RemoteError struct {
	StatusCode int    `json:"-"     yaml:"-"`
	Message    string `json:"error" yaml:"error"`
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error (status: %d)", e.StatusCode)
	}

	if e.StatusCode == 0 {
		return "remote error: " + e.Message
	}

	return fmt.Sprintf("remote error: %s (status: %d)", e.Message, e.StatusCode)
}

// NetworkError represents a transport failure while reaching the API.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error reaching %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// FormatError reports a value that does not match a fixed textual format,
// such as an air date or an episode code.
type FormatError struct {
	Kind     string
	Value    string
	Expected string
	Err      error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid %s %q: expected %s", e.Kind, e.Value, e.Expected)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying parse error, if any.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrMissingResults      = errors.New("response carries neither results nor error")
	ErrInvalidID           = errors.New("identifier must be a positive integer")
)

// IsNotFound checks if the error is the API's "nothing here" response.
func IsNotFound(err error) bool {
	remoteErr := &RemoteError{}
	if !errors.As(err, &remoteErr) {
		return false
	}

	if remoteErr.StatusCode == http.StatusNotFound {
		return true
	}

	return strings.EqualFold(remoteErr.Message, NotFoundMessage)
}

// IsRemote checks if the error originated from an API error payload.
func IsRemote(err error) bool {
	remoteErr := &RemoteError{}

	return errors.As(err, &remoteErr)
}

// IsNetwork checks if the error is a transport failure.
func IsNetwork(err error) bool {
	netErr := &NetworkError{}

	return errors.As(err, &netErr)
}

// IsFormat checks if the error is a date or episode code format failure.
func IsFormat(err error) bool {
	formatErr := &FormatError{}

	return errors.As(err, &formatErr)
}

// ParseRemoteError parses an error payload from JSON. It returns nil when the
// payload does not carry an error message.
func ParseRemoteError(statusCode int, data []byte) *RemoteError {
	var remoteErr RemoteError

	err := json.Unmarshal(data, &remoteErr)
	if err != nil || remoteErr.Message == "" {
		return nil
	}

	remoteErr.StatusCode = statusCode

	return &remoteErr
}
