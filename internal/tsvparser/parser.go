// =============================================================================
// Menu Files Generator - TSV Parser Module
// =============================================================================
//
// This module parses the tab-separated command table. The table is usually
// exported from a spreadsheet, one command per row:
//
//   | Col 1        | Col 2      | Col 3       | Col 4     | Col 5        | Col 6     | Col 7  |
//   |--------------|------------|-------------|-----------|--------------|-----------|--------|
//   | Display name | Command ID | Status text | Panel     | Button style | Split key | Hidden |
//   | Line         | MY_LINE    | Draws a ... | Draw      | LargeWithText|           |        |
//   | Circle R     | MY_CIRC_R  | Circle by r | Draw      | SmallWithText| Circle    | TRUE   |
//
// PARSING RULES:
//   - The first row is a header and is skipped
//   - Lines end in LF or CRLF; blank lines are ignored
//   - Fields are split on TAB only, no quoting
//   - A row with fewer than 6 fields is a hard error
//   - Column 7 equal to the hidden marker removes the row
//
// =============================================================================

package tsvparser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/menu-files-gen/internal/config"
	"github.com/ginjaninja78/menu-files-gen/internal/types"
)

// maxLineSize bounds a single table row.
const maxLineSize = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// TABLE DATA STRUCTURE
// =============================================================================

// Table represents the parsed command table.
type Table struct {
	// Header contains the column captions from the first row.
	Header []string

	// Records contains the visible command rows in source order.
	Records []types.CommandRecord

	// Hidden contains the rows removed by the hidden marker.
	// They are kept for reporting only and never reach the layout.
	Hidden []types.CommandRecord

	// SourceFile is the path to the source table.
	SourceFile string
}

// RowError reports a malformed data row.
type RowError struct {
	// Row is the 1-based row number in the source table.
	Row int

	// Fields is the number of fields found on the row.
	Fields int
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: expected at least %d tab-separated fields, got %d",
		e.Row, types.MinFields, e.Fields)
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a TSV file and returns the parsed table.
//
// PARAMETERS:
//   - filePath: The path to the TSV file.
//   - settings: The table settings from the configuration.
//
// RETURNS:
//   - A pointer to the Table struct containing the parsed rows.
//   - An error if the file cannot be read or a row is malformed.
func Parse(filePath string, settings config.TableSettings) (*Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := ParseReader(file, settings)
	if err != nil {
		return nil, err
	}
	table.SourceFile = filePath

	return table, nil
}

// ParseReader parses a TSV table from r.
func ParseReader(r io.Reader, settings config.TableSettings) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var rows [][]string
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := scanner.Bytes()
		if lineNumber == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})

		rows = append(rows, strings.Split(string(line), "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	return FromRows(rows, settings)
}

// FromRows converts raw rows (header first) into a Table. Both the TSV and
// the XLSX readers funnel through here so the row rules stay identical.
func FromRows(rows [][]string, settings config.TableSettings) (*Table, error) {
	table := &Table{}
	if len(rows) == 0 {
		return table, nil
	}

	table.Header = cleanFields(rows[0])

	for index, row := range rows[1:] {
		// Header is row 1.
		rowNumber := index + 2

		if isRowEmpty(row) {
			continue
		}

		record, err := parseRecord(row, rowNumber, settings)
		if err != nil {
			return nil, err
		}

		if record.Hidden {
			table.Hidden = append(table.Hidden, record)
			continue
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

// parseRecord builds a CommandRecord from one data row.
func parseRecord(row []string, rowNumber int, settings config.TableSettings) (types.CommandRecord, error) {
	if len(row) < types.MinFields {
		return types.CommandRecord{}, &RowError{Row: rowNumber, Fields: len(row)}
	}

	fields := cleanFields(row)

	record := types.CommandRecord{
		DisplayName:   fields[types.ColDisplayName],
		InternalID:    fields[types.ColInternalID],
		StatusText:    fields[types.ColStatusText],
		PanelName:     fields[types.ColPanelName],
		ButtonStyle:   fields[types.ColButtonStyle],
		SplitGroupKey: fields[types.ColSplitGroupKey],
		RowNumber:     rowNumber,
	}

	if settings.HiddenMarker != "" && len(fields) > types.ColHidden &&
		fields[types.ColHidden] == settings.HiddenMarker {
		record.Hidden = true
	}

	return record, nil
}

// cleanFields trims whitespace from every field.
func cleanFields(fields []string) []string {
	cleaned := make([]string, len(fields))
	for i, field := range fields {
		cleaned[i] = strings.TrimSpace(field)
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
