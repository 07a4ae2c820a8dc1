// =============================================================================
// Menu Files Generator - Validate Command
// =============================================================================
//
// COMMAND USAGE:
//   menufilesgen validate <table.tsv|table.xlsx>
//
// Parses and validates the table without generating or writing anything.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/menu-files-gen/internal/converter"
	"github.com/spf13/cobra"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <table>",
	Short: "Check a command table without writing any file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		table, err := converter.New(args[0], cfg, newLogger(cmd.ErrOrStderr())).Check()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d visible command(s), %d hidden row(s), OK\n",
			args[0], len(table.Records), len(table.Hidden))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
