package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/internal/render"
	"github.com/fivetwenty-io/rmcli/internal/search"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/fivetwenty-io/rmcli/pkg/rmclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const defaultFormat = render.FormatJSON

// Common static errors used throughout the commands package.
var (
	ErrNoMatches = errors.New("no records matched the given filters")
	ErrNotFound  = errors.New("not found")
)

func defaultAPI() string {
	return rmapi.DefaultAPIEndpoint
}

// createClient builds an API client from the effective configuration.
func createClient() (rmapi.Client, error) {
	config := &rmapi.Config{
		APIEndpoint:  viper.GetString("api"),
		HTTPTimeout:  constants.DefaultHTTPTimeout,
		RetryMax:     viper.GetInt("retry_max"),
		RetryWaitMin: constants.DefaultRetryWaitMin,
		RetryWaitMax: constants.DefaultRetryWaitMax,
		Debug:        viper.GetBool("verbose"),
		Logger:       logger,
		UserAgent:    constants.DefaultUserAgent,
	}

	client, err := rmclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// commandContext bounds a command, all pages included, by --timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

// outputFormat resolves --output, with --table taking precedence.
func outputFormat() (render.Format, error) {
	if viper.GetBool("table") {
		return render.FormatTable, nil
	}

	format, err := render.ParseFormat(viper.GetString("output"))
	if err != nil {
		return "", err
	}

	if format == render.FormatXLSX && viper.GetString("output_file") == "" {
		return "", constants.ErrOutputFileRequired
	}

	return format, nil
}

func newRenderer(cmd *cobra.Command) *render.Renderer {
	out := cmd.OutOrStdout()

	var opts []render.Option

	if file := viper.GetString("output_file"); file != "" {
		opts = append(opts, render.WithOutputFile(file))
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil {
			opts = append(opts, render.WithMaxCellWidth(render.CellWidthFor(width)))
		}
	}

	return render.New(out, opts...)
}

// renderRecords writes records in the configured output format.
func renderRecords(cmd *cobra.Command, records []rmapi.Record, single bool) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	return newRenderer(cmd).Render(format, records, single)
}

// runQuery plans, fetches, filters and renders one entity query.
func runQuery(cmd *cobra.Command, resource rmapi.Resource, planner search.Planner) (*search.Result, error) {
	// fail on a bad format before any request is sent
	_, err := outputFormat()
	if err != nil {
		return nil, err
	}

	plan, err := planner.Plan()
	if err != nil {
		return nil, err
	}

	client, err := createClient()
	if err != nil {
		return nil, err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	result, err := search.Execute(ctx, client.Resource(resource), plan)
	if err != nil {
		return nil, explain(plan, err)
	}

	err = renderRecords(cmd, result.Records, result.Single)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// explain turns the API's "nothing here" answer into a message that names
// what was searched for.
func explain(plan *search.Plan, err error) error {
	if !rmapi.IsNotFound(err) {
		return err
	}

	if plan.ID != nil {
		return fmt.Errorf("%s %d: %w", plan.Resource, *plan.ID, ErrNotFound)
	}

	return fmt.Errorf("%s: %w", plan.Resource, ErrNoMatches)
}

// optionalInt returns a pointer to value when the flag was given.
func optionalInt(cmd *cobra.Command, flag string, value int) *int {
	if !cmd.Flags().Changed(flag) {
		return nil
	}

	return &value
}
