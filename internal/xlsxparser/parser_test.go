package xlsxparser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/menu-files-gen/internal/config"
	"github.com/ginjaninja78/menu-files-gen/internal/tsvparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to a new workbook on the given sheet.
func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "commands.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var header = []interface{}{"Name", "ID", "Status", "Panel", "Style", "Split", "Hidden"}

func TestParse_FirstSheetWithPadding(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		header,
		{"Line", "MY_LINE", "Draws a line", "Draw", "LargeWithText"},
		{"Arc", "MY_ARC", "Draws an arc", "Draw", "SmallWithText", "Arcs", "TRUE"},
		{"Circle", "MY_CIRCLE", "Draws a circle", "Draw", "SmallWithText", "Arcs"},
	})

	table, err := Parse(path, config.Default().Table)
	require.NoError(t, err)

	assert.Equal(t, path, table.SourceFile)
	require.Len(t, table.Records, 2)
	assert.Equal(t, "MY_LINE", table.Records[0].InternalID)
	assert.Equal(t, "", table.Records[0].SplitGroupKey)
	assert.Equal(t, "MY_CIRCLE", table.Records[1].InternalID)
	assert.Equal(t, 4, table.Records[1].RowNumber)

	require.Len(t, table.Hidden, 1)
	assert.Equal(t, "MY_ARC", table.Hidden[0].InternalID)
}

func TestParse_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Commands", [][]interface{}{
		header,
		{"Line", "MY_LINE", "s", "Draw", "Large", ""},
	})

	settings := config.Default().Table
	settings.Sheet = "Commands"

	table, err := Parse(path, settings)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)

	settings.Sheet = "Missing"
	_, err = Parse(path, settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestParse_NarrowHeaderStillRejectsShortRows(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Name", "ID", "Status", "Panel"},
		{"Line", "MY_LINE", "s", "Draw"},
	})

	_, err := Parse(path, config.Default().Table)
	require.Error(t, err)

	var rowErr *tsvparser.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Row)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.xlsx"), config.Default().Table)
	require.Error(t, err)
}
