package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	internalhttp "github.com/fivetwenty-io/rmcli/internal/http"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
)

// ErrPaginationLoop is returned when a next link points back to a page
// already fetched.
var ErrPaginationLoop = errors.New("pagination loop detected")

// ResourceClient implements rmapi.ResourceClient for one collection.
type ResourceClient struct {
	httpClient *internalhttp.Client
	resource   rmapi.Resource
	logger     rmapi.Logger
}

// NewResourceClient creates a client for the given collection.
func NewResourceClient(httpClient *internalhttp.Client, resource rmapi.Resource, logger rmapi.Logger) *ResourceClient {
	if logger == nil {
		logger = nopLogger{}
	}

	return &ResourceClient{
		httpClient: httpClient,
		resource:   resource,
		logger:     logger,
	}
}

// Resource returns the collection this client reads.
func (c *ResourceClient) Resource() rmapi.Resource {
	return c.resource
}

// List implements rmapi.ResourceClient.List.
func (c *ResourceClient) List(ctx context.Context, params *rmapi.QueryParams) (*rmapi.Page, error) {
	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     c.resource.Path(),
		RawQuery: params.Encode(),
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.resource, err)
	}

	page, err := rmapi.ParsePage(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", c.resource, err)
	}

	return page, nil
}

// ListAll implements rmapi.ResourceClient.ListAll. The next links returned by
// the server are followed verbatim; params are only sent with the first
// request. A failure on any page aborts the whole listing.
func (c *ResourceClient) ListAll(ctx context.Context, params *rmapi.QueryParams) ([]rmapi.Record, error) {
	page, err := c.List(ctx, params)
	if err != nil {
		return nil, err
	}

	// info.count is not trusted for sizing
	records := append([]rmapi.Record(nil), page.Results...)

	c.logger.Debug("Fetched page", map[string]interface{}{
		"resource": c.resource.String(),
		"page":     1,
		"results":  len(page.Results),
	})

	visited := make(map[string]bool)

	for pageNumber := 2; page.Info.HasNext(); pageNumber++ {
		next := *page.Info.Next
		if visited[next] {
			return nil, fmt.Errorf("%w: %s", ErrPaginationLoop, next)
		}

		visited[next] = true

		resp, err := c.httpClient.GetURL(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("fetching %s page %d: %w", c.resource, pageNumber, err)
		}

		page, err = rmapi.ParsePage(resp.StatusCode, resp.Body)
		if err != nil {
			return nil, fmt.Errorf("parsing %s page %d: %w", c.resource, pageNumber, err)
		}

		records = append(records, page.Results...)

		c.logger.Debug("Fetched page", map[string]interface{}{
			"resource": c.resource.String(),
			"page":     pageNumber,
			"results":  len(page.Results),
		})
	}

	return records, nil
}

// Get implements rmapi.ResourceClient.Get.
func (c *ResourceClient) Get(ctx context.Context, id int) (rmapi.Record, error) {
	if id <= 0 {
		return rmapi.Record{}, fmt.Errorf("%w: %d", rmapi.ErrInvalidID, id)
	}

	resp, err := c.httpClient.Get(ctx, c.resource.Path()+strconv.Itoa(id), nil)
	if err != nil {
		return rmapi.Record{}, fmt.Errorf("getting %s %d: %w", c.resource, id, err)
	}

	record, err := rmapi.ParseSingle(resp.StatusCode, resp.Body)
	if err != nil {
		return rmapi.Record{}, fmt.Errorf("parsing %s %d: %w", c.resource, id, err)
	}

	return record, nil
}

// GetMany implements rmapi.ResourceClient.GetMany using the API's
// comma-separated multi-id endpoint.
func (c *ResourceClient) GetMany(ctx context.Context, ids []int) ([]rmapi.Record, error) {
	switch len(ids) {
	case 0:
		return []rmapi.Record{}, nil
	case 1:
		// a single id answers with an object rather than an array
		record, err := c.Get(ctx, ids[0])
		if err != nil {
			return nil, err
		}

		return []rmapi.Record{record}, nil
	}

	parts := make([]string, len(ids))

	for i, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: %d", rmapi.ErrInvalidID, id)
		}

		parts[i] = strconv.Itoa(id)
	}

	resp, err := c.httpClient.Get(ctx, c.resource.Path()+strings.Join(parts, ","), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %v: %w", c.resource, ids, err)
	}

	records, err := rmapi.ParseList(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", c.resource, err)
	}

	return records, nil
}
