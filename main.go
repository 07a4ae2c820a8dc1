// =============================================================================
// Menu Files Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Menu Files Generator CLI. It turns a
// command table (TSV or XLSX) into the add-in descriptor files a CAD host
// loads: a .cfg command registry and a .cuix ribbon archive.
//
// USAGE:
//   menufilesgen generate <table.tsv>   - Write the .cfg, RibbonRoot.cui and .cuix
//   menufilesgen validate <table.tsv>   - Check the table without writing anything
//   menufilesgen version                - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/menu-files-gen/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
