package rmclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/rmcli/internal/client"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
)

// New creates a new API client. An empty endpoint selects the public API;
// endpoints without a scheme default to https.
func New(config *rmapi.Config) (rmapi.Client, error) {
	if config == nil {
		return nil, rmapi.ErrConfigRequired
	}

	config.APIEndpoint = NormalizeEndpoint(config.APIEndpoint)

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates a client for endpoint with default settings.
func NewWithEndpoint(endpoint string) (rmapi.Client, error) {
	return New(&rmapi.Config{APIEndpoint: endpoint})
}

// NormalizeEndpoint applies the default endpoint, an https scheme and a
// trailing slash.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return rmapi.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return strings.TrimSuffix(endpoint, "/") + "/"
}
