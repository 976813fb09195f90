package render

import (
	"fmt"

	"github.com/fivetwenty-io/rmcli/internal/constants"
	"github.com/fivetwenty-io/rmcli/pkg/rmapi"
	"github.com/xuri/excelize/v2"
)

const defaultExcelSheet = "Sheet1"

// renderXLSX writes a single-sheet workbook with a header row followed by
// one row per record. Cells are never truncated.
func (r *Renderer) renderXLSX(records []rmapi.Record) error {
	if r.outputFile == "" {
		return constants.ErrOutputFileRequired
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	err := workbook.SetSheetName(defaultExcelSheet, constants.DefaultSheetName)
	if err != nil {
		return fmt.Errorf("naming worksheet: %w", err)
	}

	columns := Columns(records)

	err = writeSheetRow(workbook, 1, columns)
	if err != nil {
		return err
	}

	for i, row := range Rows(records, columns) {
		err = writeSheetRow(workbook, i+2, row)
		if err != nil {
			return err
		}
	}

	err = workbook.SaveAs(r.outputFile)
	if err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	_, err = fmt.Fprintf(r.out, "Wrote %d records to %s\n", len(records), r.outputFile)

	return err
}

func writeSheetRow(workbook *excelize.File, rowNumber int, row []string) error {
	if len(row) == 0 {
		return nil
	}

	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", rowNumber, err)
	}

	values := cells(row)

	err = workbook.SetSheetRow(constants.DefaultSheetName, cell, &values)
	if err != nil {
		return fmt.Errorf("writing row %d: %w", rowNumber, err)
	}

	return nil
}
