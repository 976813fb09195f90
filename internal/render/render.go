// Package render writes records as JSON, YAML, a table or an XLSX workbook.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

// Supported formats.
const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
	FormatXLSX  Format = "xlsx"
)

const (
	jsonIndent = "    "
	yamlIndent = 2
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTable, FormatXLSX}
}

// ParseFormat resolves a user supplied format name. Matching ignores case.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if format == known {
			return format, nil
		}
	}

	return "", fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, name)
}

// Renderer writes results to an output stream or file.
type Renderer struct {
	out          io.Writer
	maxCellWidth int
	outputFile   string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMaxCellWidth truncates table cells to width runes. Zero or less
// disables truncation.
func WithMaxCellWidth(width int) Option {
	return func(r *Renderer) {
		r.maxCellWidth = width
	}
}

// WithOutputFile writes to path instead of the output stream. XLSX output
// requires it.
func WithOutputFile(path string) Option {
	return func(r *Renderer) {
		r.outputFile = path
	}
}

// New creates a renderer writing to out.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:          out,
		maxCellWidth: constants.DefaultMaxCellWidth,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// CellWidthFor derives a per-cell truncation width from the terminal width.
func CellWidthFor(terminalWidth int) int {
	if terminalWidth <= 0 {
		return constants.DefaultMaxCellWidth
	}

	return max(terminalWidth/constants.CellsPerScreen, constants.MinCellWidth)
}

// Render writes records in format. A single result is written as one object
// rather than a list; it must hold exactly one record.
func (r *Renderer) Render(format Format, records []rmapi.Record, single bool) error {
	if format == FormatXLSX {
		return r.renderXLSX(records)
	}

	if r.outputFile == "" {
		return r.write(r.out, format, records, single)
	}

	file, err := os.Create(r.outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	return writeAndClose(file, func(out io.Writer) error {
		return r.write(out, format, records, single)
	})
}

// writeAndClose runs write against file and reports a failed close.
func writeAndClose(file io.WriteCloser, write func(out io.Writer) error) error {
	err := write(file)
	closeErr := file.Close()

	if err != nil {
		return err
	}

	if closeErr != nil {
		return fmt.Errorf("closing output file: %w", closeErr)
	}

	return nil
}

func (r *Renderer) write(out io.Writer, format Format, records []rmapi.Record, single bool) error {
	switch format {
	case FormatJSON:
		return renderJSON(out, payload(records, single))
	case FormatYAML:
		return renderYAML(out, payload(records, single))
	case FormatTable:
		return r.renderTable(out, records)
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, format)
	}
}

func payload(records []rmapi.Record, single bool) any {
	if single && len(records) == 1 {
		return records[0]
	}

	if records == nil {
		return []rmapi.Record{}
	}

	return records
}

func renderJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", jsonIndent)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

func renderYAML(out io.Writer, value any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}
