// =============================================================================
// Menu Files Generator - Converter Module
// =============================================================================
//
// This module contains the generation pipeline. It turns one command table
// into the three add-in artifacts written next to it.
//
// CONVERSION PIPELINE:
//   1. Parse the command table (TSV or XLSX)
//   2. Validate the visible records
//   3. Group records into panels and split clusters
//   4. Write <addin>.cfg
//   5. Assemble the ribbon tree and write RibbonRoot.cui
//   6. Package RibbonRoot.cui into <addin>.cuix
//
// Every step runs only after the previous one succeeded. Any error aborts the
// run, so the directory never holds a fresh layout beside a stale archive
// produced by the same run.
//
// =============================================================================

package converter

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/menu-files-gen/internal/cfgwriter"
	"github.com/ginjaninja78/menu-files-gen/internal/config"
	"github.com/ginjaninja78/menu-files-gen/internal/ribbon"
	"github.com/ginjaninja78/menu-files-gen/internal/tsvparser"
	"github.com/ginjaninja78/menu-files-gen/internal/types"
	"github.com/ginjaninja78/menu-files-gen/internal/validation"
	"github.com/ginjaninja78/menu-files-gen/internal/xlsxparser"
	"github.com/ginjaninja78/menu-files-gen/internal/xmlwriter"
	"github.com/ginjaninja78/menu-files-gen/pkg/utils"
	"github.com/google/uuid"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single table.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// InputPath is the path to the table that was processed.
	InputPath string

	// Outputs are the artifact paths derived from InputPath.
	Outputs utils.OutputPaths

	// Written lists the artifacts actually written, in write order.
	// Empty for dry runs and for runs that failed before the first write.
	Written []string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsRead is the number of data rows read, hidden rows included.
	RowsRead int

	// HiddenRows is the number of rows removed by the hidden marker.
	HiddenRows int

	// Panels is the number of ribbon panels (and toolbars) generated.
	Panels int

	// Commands is the number of visible commands registered.
	Commands int

	// SplitButtons is the number of split button controls generated.
	SplitButtons int

	// ProcessingTime is the time taken to process the table.
	ProcessingTime time.Duration
}

// =============================================================================
// ARTIFACTS
// =============================================================================

// Artifacts holds the generated file contents before they are written.
type Artifacts struct {
	// Panels are the grouped visible commands.
	Panels []ribbon.PanelGroup

	// Ribbon is the assembled layout tree.
	Ribbon ribbon.Element

	// Config is the <addin>.cfg contents.
	Config []byte

	// Layout is the RibbonRoot.cui contents.
	Layout []byte
}

// Build generates every artifact in memory. It performs no I/O.
func Build(addinName string, records []types.CommandRecord, cfg *config.Config) (*Artifacts, error) {
	panels := ribbon.Group(records)

	var configBuf bytes.Buffer
	settings := cfgwriter.Settings{
		IconDir:       cfg.IconDir,
		CommandWeight: cfg.Weight(),
		CommandType:   cfg.Type(),
		IncludeBOM:    cfg.BOM(),
	}
	if err := cfgwriter.Write(&configBuf, addinName, panels, settings); err != nil {
		return nil, err
	}

	root := ribbon.Assemble(addinName, panels)

	options := xmlwriter.DefaultGenerateOptions()
	options.IncludeBOM = cfg.BOM()
	layout, err := xmlwriter.GenerateWithOptions(root, options)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ribbon layout: %w", err)
	}

	return &Artifacts{
		Panels: panels,
		Ribbon: root,
		Config: configBuf.Bytes(),
		Layout: layout,
	}, nil
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the generation for a single command table.
type Converter struct {
	// DryRun generates everything but writes nothing.
	DryRun bool

	inputPath string
	config    *config.Config
	logger    *slog.Logger
	runID     string
}

// New creates a new Converter instance.
//
// PARAMETERS:
//   - inputPath: The path to the command table (.tsv or .xlsx).
//   - cfg: The generator configuration.
//   - logger: The logger; nil uses slog.Default().
func New(inputPath string, cfg *config.Config, logger *slog.Logger) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	runID := uuid.New().String()

	return &Converter{
		inputPath: inputPath,
		config:    cfg,
		logger:    logger.With("run_id", runID, "input", inputPath),
		runID:     runID,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Check parses and validates the table without generating anything.
func (c *Converter) Check() (*tsvparser.Table, error) {
	table, err := c.readTable()
	if err != nil {
		return nil, fmt.Errorf("failed to parse table: %w", err)
	}

	c.logger.Debug("Parsed table",
		"visible", len(table.Records),
		"hidden", len(table.Hidden))

	if err := validation.Check(table.Records); err != nil {
		return table, err
	}

	return table, nil
}

// Run executes the generation pipeline for the table.
func (c *Converter) Run() Result {
	startTime := time.Now()
	paths := utils.DeriveOutputPaths(c.inputPath, c.config.LayoutFileName)
	result := Result{
		RunID:     c.runID,
		InputPath: c.inputPath,
		Outputs:   paths,
	}

	c.logger.Info("Processing table")

	// =========================================================================
	// STEP 1-2: PARSE AND VALIDATE
	// =========================================================================

	table, err := c.Check()
	if err != nil {
		result.Error = err
		return result
	}

	result.Stats.RowsRead = len(table.Records) + len(table.Hidden)
	result.Stats.HiddenRows = len(table.Hidden)
	result.Stats.Commands = len(table.Records)

	// =========================================================================
	// STEP 3: GENERATE IN MEMORY
	// =========================================================================

	artifacts, err := Build(paths.AddinName, table.Records, c.config)
	if err != nil {
		result.Error = err
		return result
	}

	result.Stats.Panels = len(artifacts.Panels)
	for _, panel := range artifacts.Panels {
		for _, cluster := range panel.Clusters {
			if cluster.IsSplit() {
				result.Stats.SplitButtons++
			}
		}
	}

	c.logger.Debug("Generated artifacts",
		"panels", result.Stats.Panels,
		"commands", result.Stats.Commands,
		"split_buttons", result.Stats.SplitButtons)

	if c.DryRun {
		c.logger.Info("Dry run, nothing written")
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	// =========================================================================
	// STEP 4-6: WRITE ARTIFACTS
	// =========================================================================

	if err := utils.WriteFile(paths.Config, artifacts.Config); err != nil {
		result.Error = fmt.Errorf("failed to write config: %w", err)
		return result
	}
	result.Written = append(result.Written, paths.Config)

	if err := utils.WriteFile(paths.Layout, artifacts.Layout); err != nil {
		result.Error = fmt.Errorf("failed to write ribbon layout: %w", err)
		return result
	}
	result.Written = append(result.Written, paths.Layout)

	if err := utils.PackageArchive(paths.Archive, paths.Layout, c.config.ArchiveEntryName); err != nil {
		result.Error = fmt.Errorf("failed to package archive: %w", err)
		return result
	}
	result.Written = append(result.Written, paths.Archive)

	for _, path := range result.Written {
		c.logger.Info("Wrote artifact", "path", path)
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// readTable picks the parser from the input file extension.
func (c *Converter) readTable() (*tsvparser.Table, error) {
	switch strings.ToLower(filepath.Ext(c.inputPath)) {
	case ".xlsx", ".xlsm":
		return xlsxparser.Parse(c.inputPath, c.config.Table)
	default:
		return tsvparser.Parse(c.inputPath, c.config.Table)
	}
}
