// =============================================================================
// Menu Files Generator - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration. Every setting has a
// default that reproduces the descriptor format the CAD host expects, so the
// tool runs without any configuration file at all.
//
// CONFIGURATION FILE (config.yaml):
//   hidden_marker: "TRUE"
//   layout_file_name: "RibbonRoot.cui"
//   archive_entry_name: "RibbonRoot.cui"
//   icon_dir: "icons"
//   command_weight: 10
//   command_type: 1
//   write_bom: true
//   sheet: ""
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file looked up when --config is not given.
const DefaultConfigFile = "config.yaml"

const (
	defaultCommandWeight = 10
	defaultCommandType   = 1
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the generator settings.
type Config struct {
	// =========================================================================
	// TABLE SETTINGS
	// =========================================================================

	// Table contains settings for reading the command table.
	Table TableSettings `yaml:",inline"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// LayoutFileName is the name of the serialized ribbon document written
	// next to the input table.
	// Default: "RibbonRoot.cui"
	LayoutFileName string `yaml:"layout_file_name"`

	// ArchiveEntryName is the entry name of the layout inside the .cuix
	// archive. The host only looks for this exact name.
	// Default: "RibbonRoot.cui"
	ArchiveEntryName string `yaml:"archive_entry_name"`

	// IconDir is the directory (relative to the .cfg) holding <id>.ico files.
	// Default: "icons"
	IconDir string `yaml:"icon_dir"`

	// CommandWeight is written as "weight=i<n>" for every command.
	// Default: 10
	CommandWeight *int `yaml:"command_weight"`

	// CommandType is written as "cmdtype=i<n>" for every command.
	// Default: 1
	CommandType *int `yaml:"command_type"`

	// WriteBOM prefixes the text artifacts with a UTF-8 byte order mark.
	// Default: true
	WriteBOM *bool `yaml:"write_bom"`
}

// TableSettings contains settings for parsing the command table.
type TableSettings struct {
	// HiddenMarker is the exact (case-sensitive) value of the 7th column that
	// hides a row.
	// Default: "TRUE"
	HiddenMarker string `yaml:"hidden_marker"`

	// Sheet is the workbook sheet that holds the table for .xlsx input.
	// Default: "" (first sheet)
	Sheet string `yaml:"sheet"`
}

// BOM reports whether text artifacts start with a byte order mark.
func (c *Config) BOM() bool {
	return c.WriteBOM == nil || *c.WriteBOM
}

// Weight returns the configured command weight. Zero is a valid setting.
func (c *Config) Weight() int {
	if c.CommandWeight == nil {
		return defaultCommandWeight
	}
	return *c.CommandWeight
}

// Type returns the configured command type. Zero is a valid setting.
func (c *Config) Type() int {
	if c.CommandType == nil {
		return defaultCommandType
	}
	return *c.CommandType
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - explicit: Whether the user named the file. A missing default file
//     falls back to Default(); a missing explicit file is an error.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses configuration YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.Table.HiddenMarker == "" {
		config.Table.HiddenMarker = "TRUE"
	}
	if config.LayoutFileName == "" {
		config.LayoutFileName = "RibbonRoot.cui"
	}
	if config.ArchiveEntryName == "" {
		config.ArchiveEntryName = "RibbonRoot.cui"
	}
	if config.IconDir == "" {
		config.IconDir = "icons"
	}
}

// validate rejects settings that would produce an unloadable add-in.
func validate(config *Config) error {
	for name, value := range map[string]string{
		"layout_file_name":   config.LayoutFileName,
		"archive_entry_name": config.ArchiveEntryName,
	} {
		if strings.ContainsAny(value, `/\`) {
			return fmt.Errorf("%s must be a bare file name, got %q", name, value)
		}
	}
	if config.Weight() < 0 {
		return fmt.Errorf("command_weight must not be negative")
	}
	if config.Type() < 0 {
		return fmt.Errorf("command_type must not be negative")
	}
	return nil
}
