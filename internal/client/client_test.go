package client_test

import (
	"testing"

	. "github.com/fivetwenty-io/rmcli/internal/client"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, rmapi.ErrConfigRequired)
	})

	t.Run("requires API endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := New(&rmapi.Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API endpoint is required")
	})

	t.Run("creates client with retries", func(t *testing.T) {
		t.Parallel()

		client, err := New(&rmapi.Config{
			APIEndpoint: rmapi.DefaultAPIEndpoint,
			RetryMax:    2,
			UserAgent:   "rmcli-test",
		})
		require.NoError(t, err)
		assert.Equal(t, rmapi.DefaultAPIEndpoint, client.BaseURL())
	})

	t.Run("exposes resource clients", func(t *testing.T) {
		t.Parallel()

		client, err := New(&rmapi.Config{APIEndpoint: rmapi.DefaultAPIEndpoint})
		require.NoError(t, err)

		assert.Same(t, client.Characters(), client.Resource(rmapi.ResourceCharacter))
		assert.Same(t, client.Locations(), client.Resource(rmapi.ResourceLocation))
		assert.Same(t, client.Episodes(), client.Resource(rmapi.ResourceEpisode))
	})
}
