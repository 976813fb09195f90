package rmapi

import (
	"context"
	"time"
)

// DefaultAPIEndpoint is the public Rick and Morty API base URL.
const DefaultAPIEndpoint = "https://rickandmortyapi.com/api/"

// Resource names one of the API's entity collections.
type Resource string

// Supported resources.
const (
	ResourceCharacter Resource = "character"
	ResourceLocation  Resource = "location"
	ResourceEpisode   Resource = "episode"
)

// Resources lists every resource in the order the show command fetches them.
func Resources() []Resource {
	return []Resource{ResourceCharacter, ResourceLocation, ResourceEpisode}
}

// Path returns the collection path relative to the API base URL.
func (r Resource) Path() string {
	return string(r) + "/"
}

// String implements fmt.Stringer.
func (r Resource) String() string {
	return string(r)
}

// ResourceClient reads one entity collection.
type ResourceClient interface {
	// List fetches a single page.
	List(ctx context.Context, params *QueryParams) (*Page, error)
	// ListAll follows next links until the last page and returns every
	// result in server order.
	ListAll(ctx context.Context, params *QueryParams) ([]Record, error)
	// Get fetches a single entity by identifier, bypassing pagination.
	Get(ctx context.Context, id int) (Record, error)
	// GetMany fetches several entities in one request.
	GetMany(ctx context.Context, ids []int) ([]Record, error)
}

// Client provides access to every resource collection.
type Client interface {
	Characters() ResourceClient
	Locations() ResourceClient
	Episodes() ResourceClient
	Resource(resource Resource) ResourceClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
type Config struct {
	// APIEndpoint: base URL of the API. Defaults to DefaultAPIEndpoint when
	// built through rmclient.New.
	APIEndpoint string

	// HTTPTimeout: per-request timeout. Zero keeps the transport default.
	HTTPTimeout time.Duration
	// RetryMax: retries for transient failures (>=500, 429, connection
	// errors). Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and fetchers.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
