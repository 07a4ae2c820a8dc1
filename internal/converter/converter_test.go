package converter

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/menu-files-gen/internal/config"
	"github.com/ginjaninja78/menu-files-gen/internal/ribbon"
	"github.com/ginjaninja78/menu-files-gen/internal/tsvparser"
	"github.com/ginjaninja78/menu-files-gen/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const header = "Name\tID\tStatus\tPanel\tStyle\tSplit\tHidden\n"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTable stores a TSV table under a fresh directory and returns its path.
func writeTable(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(header+body), 0o600))
	return path
}

func readArchiveEntry(t *testing.T, path, entry string) []byte {
	t.Helper()
	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()

	require.Len(t, reader.File, 1)
	require.Equal(t, entry, reader.File[0].Name)

	rc, err := reader.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return data
}

func TestRun_WritesAllArtifacts(t *testing.T) {
	// --- Arrange ---
	input := writeTable(t, "Tools.tsv",
		"Line\tMY_LINE\tDraws a line\tDraw\tLarge\t\t\n"+
			"Arc\tMY_ARC\tDraws an arc\tDraw\tSmallIcon\t\t\n")

	// --- Act ---
	result := New(input, config.Default(), quietLogger()).Run()

	// --- Assert ---
	require.NoError(t, result.Error)
	require.True(t, result.Success)
	assert.NotEmpty(t, result.RunID)

	dir := filepath.Dir(input)
	assert.Equal(t, []string{
		filepath.Join(dir, "Tools.cfg"),
		filepath.Join(dir, "RibbonRoot.cui"),
		filepath.Join(dir, "Tools.cuix"),
	}, result.Written)

	layout, err := os.ReadFile(filepath.Join(dir, "RibbonRoot.cui"))
	require.NoError(t, err)
	assert.Equal(t, layout, readArchiveEntry(t, filepath.Join(dir, "Tools.cuix"), "RibbonRoot.cui"))

	cfg, err := os.ReadFile(filepath.Join(dir, "Tools.cfg"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), `CUIX=s%CFG_PATH%\Tools.cuix`)

	assert.Equal(t, 2, result.Stats.RowsRead)
	assert.Equal(t, 1, result.Stats.Panels)
	assert.Equal(t, 2, result.Stats.Commands)
}

func TestBuild_TwoButtonScenario(t *testing.T) {
	table, err := tsvparser.ParseReader(strings.NewReader(header+
		"Line\tMY_LINE\ts\tDraw\tLarge\t\n"+
		"Arc\tMY_ARC\ts\tDraw\tSmallIcon\t\n"), config.Default().Table)
	require.NoError(t, err)

	artifacts, err := Build("Tools", table.Records, config.Default())
	require.NoError(t, err)

	panels := artifacts.Ribbon.Children[0].Children
	require.Len(t, panels, 1)
	panel := panels[0]
	uid, _ := panel.Attr(ribbon.AttrUID)
	assert.Equal(t, "Draw", uid)

	require.Len(t, panel.Children, 4)
	assert.Equal(t, ribbon.ElemCommandButton, panel.Children[0].Name())
	assert.Equal(t, ribbon.ElemRowPanel, panel.Children[1].Name())
	assert.Len(t, panel.Children[1].Children, 1)
	assert.Equal(t, ribbon.ElemPanelBreak, panel.Children[2].Name())

	dup := panel.Children[3]
	assert.Len(t, dup.ChildrenNamed(ribbon.ElemCommandButton), 2)
	assert.Len(t, dup.ChildrenNamed(ribbon.ElemSeparator), 1)
}

func TestRun_HiddenRowsVanishEverywhere(t *testing.T) {
	input := writeTable(t, "Tools.tsv",
		"Secret\tMY_SECRET\ts\tHiddenPanel\tLarge\t\tTRUE\n"+
			"Line\tMY_LINE\ts\tDraw\tLarge\t\t\n")

	result := New(input, config.Default(), quietLogger()).Run()
	require.NoError(t, result.Error)
	assert.Equal(t, 1, result.Stats.HiddenRows)

	dir := filepath.Dir(input)
	cfg, err := os.ReadFile(filepath.Join(dir, "Tools.cfg"))
	require.NoError(t, err)
	layout, err := os.ReadFile(filepath.Join(dir, "RibbonRoot.cui"))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(cfg), `[\configman\commands\`))
	assert.NotContains(t, string(cfg), "MY_SECRET")
	assert.NotContains(t, string(cfg), "HiddenPanel")
	assert.NotContains(t, string(layout), "MY_SECRET")
	assert.NotContains(t, string(layout), "HiddenPanel")

	assert.Equal(t, 1, strings.Count(string(layout), "<RibbonPanelSource "))
	assert.Equal(t, 1, strings.Count(string(layout), `<RibbonPanelSourceReference `))
}

func TestRun_EveryIDRegisteredOnce(t *testing.T) {
	input := writeTable(t, "Tools.tsv",
		"A\tA_ID\ts\tDraw\tLarge\tGrp\n"+
			"B\tB_ID\ts\tDraw\tLarge\tGrp\n"+
			"C\tC_ID\ts\tEdit\tSmallWithText\t\n"+
			"D\tD_ID\ts\tDraw\tSmallWithText\t\n")

	result := New(input, config.Default(), quietLogger()).Run()
	require.NoError(t, result.Error)
	assert.Equal(t, 1, result.Stats.SplitButtons)

	dir := filepath.Dir(input)
	cfg, err := os.ReadFile(filepath.Join(dir, "Tools.cfg"))
	require.NoError(t, err)
	layout, err := os.ReadFile(filepath.Join(dir, "RibbonRoot.cui"))
	require.NoError(t, err)

	for _, id := range []string{"A_ID", "B_ID", "C_ID", "D_ID"} {
		assert.Equal(t, 1, strings.Count(string(cfg), `[\configman\commands\`+id+`]`), id)
		assert.GreaterOrEqual(t, strings.Count(string(layout), `MenuMacroID="`+id+`"`), 1, id)
	}
}

func TestRun_MalformedRowWritesNothing(t *testing.T) {
	input := writeTable(t, "Tools.tsv",
		"Line\tMY_LINE\ts\tDraw\tLarge\t\n"+
			"Broken\tBROKEN\ts\n")

	result := New(input, config.Default(), quietLogger()).Run()
	require.Error(t, result.Error)
	assert.False(t, result.Success)
	assert.Empty(t, result.Written)

	var rowErr *tsvparser.RowError
	require.True(t, errors.As(result.Error, &rowErr))
	assert.Equal(t, 3, rowErr.Row)

	entries, err := os.ReadDir(filepath.Dir(input))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the input table remains")
}

func TestRun_DuplicateIDFails(t *testing.T) {
	input := writeTable(t, "Tools.tsv",
		"Line\tMY_LINE\ts\tDraw\tLarge\t\n"+
			"Line 2\tMY_LINE\ts\tModify\tLarge\t\n")

	result := New(input, config.Default(), quietLogger()).Run()
	require.Error(t, result.Error)

	var verrs validation.ValidationErrors
	require.True(t, errors.As(result.Error, &verrs))
	assert.Equal(t, validation.RuleDuplicateID, verrs[0].Rule)
	assert.Empty(t, result.Written)
}

func TestRun_ControlCharacterFails(t *testing.T) {
	input := writeTable(t, "Tools.tsv", "Line\x01Tool\tMY_LINE\ts\tDraw\tLarge\t\n")

	result := New(input, config.Default(), quietLogger()).Run()
	require.Error(t, result.Error)

	var verrs validation.ValidationErrors
	require.True(t, errors.As(result.Error, &verrs))
	assert.Equal(t, validation.RuleControlChar, verrs[0].Rule)
	assert.Empty(t, result.Written)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(input), "RibbonRoot.cui"))
}

func TestRun_HiddenDuplicateIsIgnored(t *testing.T) {
	input := writeTable(t, "Tools.tsv",
		"Line\tMY_LINE\ts\tDraw\tLarge\t\t\n"+
			"Old line\tMY_LINE\ts\tDraw\tLarge\t\tTRUE\n")

	result := New(input, config.Default(), quietLogger()).Run()
	require.NoError(t, result.Error)
}

func TestRun_ReplacesStaleArchive(t *testing.T) {
	input := writeTable(t, "Tools.tsv", "Line\tMY_LINE\ts\tDraw\tLarge\t\n")
	archive := filepath.Join(filepath.Dir(input), "Tools.cuix")
	require.NoError(t, os.WriteFile(archive, []byte("stale"), 0o644))

	result := New(input, config.Default(), quietLogger()).Run()
	require.NoError(t, result.Error)

	data := readArchiveEntry(t, archive, "RibbonRoot.cui")
	assert.Contains(t, string(data), `MenuMacroID="MY_LINE"`)
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	input := writeTable(t, "Tools.tsv", "Line\tMY_LINE\ts\tDraw\tLarge\t\n")

	conv := New(input, config.Default(), quietLogger())
	conv.DryRun = true
	result := conv.Run()

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Empty(t, result.Written)
	assert.Equal(t, 1, result.Stats.Panels)

	entries, err := os.ReadDir(filepath.Dir(input))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRun_EmptyTableIsValid(t *testing.T) {
	input := writeTable(t, "Empty.tsv", "")

	result := New(input, config.Default(), quietLogger()).Run()
	require.NoError(t, result.Error)
	assert.Equal(t, 0, result.Stats.Panels)

	layout, err := os.ReadFile(filepath.Join(filepath.Dir(input), "RibbonRoot.cui"))
	require.NoError(t, err)
	assert.Contains(t, string(layout), "<RibbonPanelSourceCollection/>")
}

func TestRun_XLSXInput(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"Name", "ID", "Status", "Panel", "Style", "Split", "Hidden"},
		{"Line", "MY_LINE", "s", "Draw", "Large"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	input := filepath.Join(t.TempDir(), "Book.xlsx")
	require.NoError(t, f.SaveAs(input))

	result := New(input, config.Default(), quietLogger()).Run()
	require.NoError(t, result.Error)
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "Book.cfg"))
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "Book.cuix"))
}

func TestRun_LogsRunID(t *testing.T) {
	input := writeTable(t, "Tools.tsv", "Line\tMY_LINE\ts\tDraw\tLarge\t\n")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	result := New(input, config.Default(), logger).Run()
	require.NoError(t, result.Error)
	assert.Contains(t, logs.String(), "run_id="+result.RunID)
}
