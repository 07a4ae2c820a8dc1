// =============================================================================
// Menu Files Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, the main command of the tool. It
// runs the full pipeline for one command table.
//
// COMMAND USAGE:
//   menufilesgen generate <table.tsv|table.xlsx> [flags]
//
// FLAGS:
//   --dry-run : Build everything in memory without writing files
//   --sheet   : Workbook sheet to read for .xlsx input
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/menu-files-gen/internal/converter"
	"github.com/spf13/cobra"
)

// dryRun builds the artifacts without writing them.
var dryRun bool

// sheet overrides the configured workbook sheet.
var sheet string

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate <table>",
	Short: "Generate the .cfg and .cuix add-in files from a command table",
	Long: `The generate command reads the command table, validates it and writes
<name>.cfg, RibbonRoot.cui and <name>.cuix into the table's directory.

Rows whose 7th column equals the hidden marker (TRUE by default) are left out
of every output. A malformed row or a duplicate command id aborts the run
before anything is written. An existing <name>.cuix is replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Build the artifacts without writing any file",
	)

	generateCmd.Flags().StringVar(
		&sheet,
		"sheet",
		"",
		"Workbook sheet holding the table (.xlsx input, default first sheet)",
	)
}

// runGenerate runs the pipeline and prints a summary.
func runGenerate(cmd *cobra.Command, inputPath string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if sheet != "" {
		cfg.Table.Sheet = sheet
	}

	logger := newLogger(cmd.ErrOrStderr())

	conv := converter.New(inputPath, cfg, logger)
	conv.DryRun = dryRun

	result := conv.Run()
	if result.Error != nil {
		return result.Error
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintf(out, "Dry run: %d panel(s), %d command(s), %d hidden row(s); nothing written\n",
			result.Stats.Panels, result.Stats.Commands, result.Stats.HiddenRows)
		return nil
	}

	fmt.Fprintf(out, "Files %s.cfg and %s.cuix saved in %s\n",
		result.Outputs.AddinName, result.Outputs.AddinName, result.Outputs.Dir)
	fmt.Fprintf(out, "Panels: %d  Commands: %d  Hidden: %d  Time: %s\n",
		result.Stats.Panels, result.Stats.Commands, result.Stats.HiddenRows, result.Stats.ProcessingTime)

	return nil
}
