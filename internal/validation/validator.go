// =============================================================================
// Menu Files Generator - Validation Engine
// =============================================================================
//
// This module validates the visible command records before any descriptor is
// generated. The command id is used as a registry key, a menu entry, a
// toolbar reference, a ribbon macro reference and an icon file name, so it
// must be present, unique and safe to use in a file name.
//
// ERROR HANDLING:
//   - Errors are collected, not returned on the first hit
//   - Each error includes the source row and the offending value
//   - ValidationErrors wraps the collection as a single error for callers
//
// =============================================================================

package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ginjaninja78/menu-files-gen/internal/types"
)

// unsafeIDChars cannot appear in an icon file name on the host platform.
const unsafeIDChars = `\/:*?"<>|`

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// Rule names reported in ValidationError.Rule.
const (
	RuleDuplicateID = "duplicate_id"
	RuleEmptyID     = "empty_id"
	RuleUnsafeID    = "unsafe_id"
	RuleEmptyPanel  = "empty_panel"
	RuleControlChar = "control_char"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	// Field is the name of the column that failed validation.
	Field string

	// Value is the actual value that failed validation.
	Value string

	// Rule is the validation rule that was violated.
	Rule string

	// Message is a human-readable error message.
	Message string

	// RowNumber is the source table row (for error reporting).
	RowNumber int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d, field '%s': %s (value: '%s')",
		e.RowNumber,
		e.Field,
		e.Message,
		e.Value,
	)
}

// ValidationErrors is the error returned when a table fails validation.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (errs ValidationErrors) Error() string {
	if len(errs) == 1 {
		return "validation failed: " + errs[0].Error()
	}
	return fmt.Sprintf("validation failed with %d errors:\n%s", len(errs), FormatErrors(errs))
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// Validate checks every visible record and returns all violations in row
// order. An empty result means the records are safe to generate from.
func Validate(records []types.CommandRecord) []*ValidationError {
	var errors []*ValidationError

	firstRow := make(map[string]int, len(records))

	for _, record := range records {
		errors = append(errors, validateRecord(record)...)

		if record.InternalID == "" {
			continue
		}
		if row, seen := firstRow[record.InternalID]; seen {
			errors = append(errors, &ValidationError{
				Field:     "internalId",
				Value:     record.InternalID,
				Rule:      RuleDuplicateID,
				Message:   fmt.Sprintf("command id already defined on row %d", row),
				RowNumber: record.RowNumber,
			})
			continue
		}
		firstRow[record.InternalID] = record.RowNumber
	}

	return errors
}

// Check runs Validate and folds the result into a single error.
func Check(records []types.CommandRecord) error {
	if errs := Validate(records); len(errs) > 0 {
		return ValidationErrors(errs)
	}
	return nil
}

// validateRecord applies the per-row rules.
func validateRecord(record types.CommandRecord) []*ValidationError {
	var errors []*ValidationError

	switch {
	case record.InternalID == "":
		errors = append(errors, &ValidationError{
			Field:     "internalId",
			Rule:      RuleEmptyID,
			Message:   "command id is required",
			RowNumber: record.RowNumber,
		})
	case !isFileNameSafe(record.InternalID):
		errors = append(errors, &ValidationError{
			Field:     "internalId",
			Value:     record.InternalID,
			Rule:      RuleUnsafeID,
			Message:   "command id must not contain whitespace or any of " + unsafeIDChars,
			RowNumber: record.RowNumber,
		})
	}

	for _, field := range []struct{ name, value string }{
		{"displayName", record.DisplayName},
		{"statusText", record.StatusText},
		{"panelName", record.PanelName},
		{"buttonStyle", record.ButtonStyle},
		{"splitGroupKey", record.SplitGroupKey},
	} {
		if hasControlChar(field.value) {
			errors = append(errors, &ValidationError{
				Field:     field.name,
				Value:     strconv.QuoteToASCII(field.value),
				Rule:      RuleControlChar,
				Message:   "value must not contain control characters",
				RowNumber: record.RowNumber,
			})
		}
	}

	if record.PanelName == "" {
		errors = append(errors, &ValidationError{
			Field:     "panelName",
			Value:     record.InternalID,
			Rule:      RuleEmptyPanel,
			Message:   "panel name is required",
			RowNumber: record.RowNumber,
		})
	}

	return errors
}

// hasControlChar reports whether value holds a rune the layout file cannot
// carry.
func hasControlChar(value string) bool {
	return strings.IndexFunc(value, unicode.IsControl) >= 0
}

// isFileNameSafe reports whether id can be used verbatim as a file name.
func isFileNameSafe(id string) bool {
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(unsafeIDChars, r) {
			return false
		}
	}
	return true
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats validation errors for display, one per line.
func FormatErrors(errors []*ValidationError) string {
	var sb strings.Builder
	for i, err := range errors {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}
