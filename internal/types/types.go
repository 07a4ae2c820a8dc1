// =============================================================================
// Menu Files Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - tsvparser / xlsxparser
//   - validation
//   - ribbon
//   - cfgwriter
//
// =============================================================================

package types

// =============================================================================
// COMMAND RECORD
// =============================================================================

// Table column positions. A data row must carry at least MinFields values.
const (
	ColDisplayName = iota
	ColInternalID
	ColStatusText
	ColPanelName
	ColButtonStyle
	ColSplitGroupKey
	ColHidden
)

// MinFields is the number of columns every data row must carry.
// The hidden column is optional.
const MinFields = ColSplitGroupKey + 1

// CommandRecord represents one row of the command table.
type CommandRecord struct {
	// DisplayName is the caption shown on menus and ribbon buttons.
	DisplayName string

	// InternalID is the unique command name. It doubles as the icon file name
	// and as the macro reference of every ribbon button.
	InternalID string

	// StatusText is the text shown in the host status bar.
	StatusText string

	// PanelName is the grouping key. One ribbon panel, one submenu and one
	// toolbar are created per distinct value.
	PanelName string

	// ButtonStyle is the ribbon style token (e.g. "LargeWithText",
	// "SmallWithText"). Tokens containing "Small" are packed into rows.
	ButtonStyle string

	// SplitGroupKey groups buttons under one split button.
	// Empty means a standalone button.
	SplitGroupKey string

	// Hidden marks a row that must not appear in any output.
	Hidden bool

	// RowNumber is the 1-based row in the source table.
	// Useful for error reporting.
	RowNumber int
}

// Clone returns an independent copy of the record.
func (r CommandRecord) Clone() CommandRecord {
	return r
}

// IsStandalone reports whether the record renders as its own button rather
// than as a member of a split button.
func (r CommandRecord) IsStandalone() bool {
	return r.SplitGroupKey == ""
}
