package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/olekukonko/tablewriter"
)

func (r *Renderer) renderTable(out io.Writer, records []rmapi.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "No records found")

		return err
	}

	columns := Columns(records)

	table := tablewriter.NewWriter(out)
	table.Header(cells(columns)...)

	for _, row := range Rows(records, columns) {
		for i, cell := range row {
			row[i] = truncate(cell, r.maxCellWidth)
		}

		_ = table.Append(cells(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// Columns returns every top-level key across records in first-seen order.
func Columns(records []rmapi.Record) []string {
	seen := make(map[string]bool)

	var columns []string

	for _, record := range records {
		for _, key := range record.Keys() {
			if !seen[key] {
				seen[key] = true

				columns = append(columns, key)
			}
		}
	}

	return columns
}

// Rows flattens records into cells ordered by columns. Missing fields render
// as N/A and nested values as compact JSON.
func Rows(records []rmapi.Record, columns []string) [][]string {
	rows := make([][]string, 0, len(records))

	for _, record := range records {
		row := make([]string, len(columns))

		for i, column := range columns {
			value, ok := record.Get(column)
			if !ok {
				row[i] = constants.NotAvailable

				continue
			}

			row[i] = Cell(value)
		}

		rows = append(rows, row)
	}

	return rows
}

// Cell formats one value for display.
func Cell(value any) string {
	switch v := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		return v
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	}
}

func cells(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

func truncate(cell string, width int) string {
	runes := []rune(cell)
	if width <= 0 || len(runes) <= width {
		return cell
	}

	suffix := []rune(constants.TruncationSuffix)
	if width <= len(suffix) {
		return string(runes[:width])
	}

	return string(runes[:width-len(suffix)]) + constants.TruncationSuffix
}
