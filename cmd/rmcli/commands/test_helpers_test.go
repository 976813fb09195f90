package commands_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fivetwenty-io/rmcli/cmd/rmcli/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// fakeAPI serves canned bodies keyed by request URI. Unknown URIs answer
// with the API's 404 payload.
type fakeAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	bodies   map[string]string
	requests []string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{bodies: make(map[string]string)}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.requests = append(api.requests, r.URL.RequestURI())
		body, ok := api.bodies[r.URL.RequestURI()]
		api.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "There is nothing here"}`))

			return
		}

		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{base}}", api.server.URL)))
	}))
	t.Cleanup(api.server.Close)

	return api
}

// serve registers body for uri. "{{base}}" in body expands to the server URL.
func (a *fakeAPI) serve(uri, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.bodies[uri] = body
}

func (a *fakeAPI) recorded() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]string(nil), a.requests...)
}

func (a *fakeAPI) endpoint() string {
	return a.server.URL + "/api/"
}

// page builds a listing body. next is a request URI or empty on the last page.
func page(next string, results ...string) string {
	nextJSON := "null"
	if next != "" {
		nextJSON = `"{{base}}` + next + `"`
	}

	return fmt.Sprintf(`{"info": {"count": %d, "pages": 1, "next": %s, "prev": null}, "results": [%s]}`,
		len(results), nextJSON, strings.Join(results, ","))
}

// run executes the CLI with args against a fresh viper and an isolated home.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RMCLI_API", "")
	t.Setenv("RMCLI_OUTPUT", "")

	root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-01")

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(home, "config.yml")}, args...))

	err := root.Execute()

	return out.String(), err
}
