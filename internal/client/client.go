package client

import (
	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/internal/http"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
)

// Client implements the rmapi.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     rmapi.Logger

	// Resource clients
	characters *ResourceClient
	locations  *ResourceClient
	episodes   *ResourceClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rmapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client.
func New(config *rmapi.Config) (*Client, error) {
	if config == nil {
		return nil, rmapi.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, rmapi.ErrAPIEndpointRequired
	}

	httpClient := http.NewClient(config.APIEndpoint, createHTTPClientOptions(config)...)

	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// BaseURL returns the API base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Characters implements rmapi.Client.Characters.
func (c *Client) Characters() rmapi.ResourceClient {
	return c.characters
}

// Locations implements rmapi.Client.Locations.
func (c *Client) Locations() rmapi.ResourceClient {
	return c.locations
}

// Episodes implements rmapi.Client.Episodes.
func (c *Client) Episodes() rmapi.ResourceClient {
	return c.episodes
}

// Resource implements rmapi.Client.Resource.
func (c *Client) Resource(resource rmapi.Resource) rmapi.ResourceClient {
	switch resource {
	case rmapi.ResourceCharacter:
		return c.characters
	case rmapi.ResourceLocation:
		return c.locations
	case rmapi.ResourceEpisode:
		return c.episodes
	default:
		return NewResourceClient(c.httpClient, resource, c.logger)
	}
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.characters = NewResourceClient(c.httpClient, rmapi.ResourceCharacter, c.logger)
	c.locations = NewResourceClient(c.httpClient, rmapi.ResourceLocation, c.logger)
	c.episodes = NewResourceClient(c.httpClient, rmapi.ResourceEpisode, c.logger)
}

// loggerAdapter adapts rmapi.Logger to http.Logger.
type loggerAdapter struct {
	logger rmapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
