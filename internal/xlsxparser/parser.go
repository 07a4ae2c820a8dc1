// =============================================================================
// Menu Files Generator - XLSX Table Parser
// =============================================================================
//
// This module reads the command table straight from the workbook it is
// authored in, so the TSV export step can be skipped. The sheet layout is the
// same as the TSV table (see tsvparser): one header row, then one command per
// row in columns A..G.
//
// WORKBOOK NOTES:
//   - Workbooks do not store trailing empty cells, so every row is padded
//     to the header width before the shared row rules are applied
//   - Formulas are read as their cached display value
//
// =============================================================================

package xlsxparser

import (
	"fmt"

	"github.com/ginjaninja78/menu-files-gen/internal/config"
	"github.com/ginjaninja78/menu-files-gen/internal/tsvparser"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads the command table from an XLSX workbook.
//
// PARAMETERS:
//   - workbookPath: The path to the XLSX file.
//   - settings: The table settings. settings.Sheet selects the sheet; an
//     empty value means the first sheet.
//
// RETURNS:
//   - A pointer to the parsed Table.
//   - An error if the workbook cannot be read or a row is malformed.
func Parse(workbookPath string, settings config.TableSettings) (*tsvparser.Table, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName, err := resolveSheet(f, settings.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet '%s': %w", sheetName, err)
	}

	table, err := tsvparser.FromRows(padRows(rows), settings)
	if err != nil {
		return nil, fmt.Errorf("sheet '%s': %w", sheetName, err)
	}
	table.SourceFile = workbookPath

	return table, nil
}

// resolveSheet returns the sheet to read.
func resolveSheet(f *excelize.File, requested string) (string, error) {
	if requested == "" {
		sheetName := f.GetSheetName(0)
		if sheetName == "" {
			return "", fmt.Errorf("workbook has no sheets")
		}
		return sheetName, nil
	}

	for _, sheetName := range f.GetSheetList() {
		if sheetName == requested {
			return sheetName, nil
		}
	}
	return "", fmt.Errorf("sheet '%s' not found in workbook", requested)
}

// padRows extends every data row with empty cells up to the header width.
// Rows with no cells at all are left empty so they are skipped as blank.
func padRows(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}

	width := len(rows[0])
	padded := make([][]string, len(rows))
	padded[0] = rows[0]

	for i, row := range rows[1:] {
		if len(row) == 0 || len(row) >= width {
			padded[i+1] = row
			continue
		}
		full := make([]string, width)
		copy(full, row)
		padded[i+1] = full
	}

	return padded
}
