package ribbon

import (
	"unicode/utf8"

	"github.com/ginjaninja78/menu-files-gen/internal/types"
)

// =============================================================================
// DUPLICATE PANEL BUILDER
// =============================================================================

// Duplicate is the uniformly styled copy of a panel's buttons, rendered after
// the panel break.
type Duplicate struct {
	// RowPanel holds the buttons with separators strictly between them.
	RowPanel Element

	// ButtonCount is the number of buttons in RowPanel.
	ButtonCount int

	// SeparatorCount is max(0, ButtonCount-1).
	SeparatorCount int

	// MaxEvenNameLength is the longest display name, in characters, among
	// buttons at even flattened positions. Nothing renders from it.
	MaxEvenNameLength int
}

// BuildDuplicate flattens the panel and re-renders every button with
// DuplicateButtonStyle. Records are copied first, so the panel itself is
// never modified. An empty panel yields an empty row panel.
func BuildDuplicate(panel PanelGroup) Duplicate {
	flat := panel.Flatten()

	duplicate := Duplicate{
		RowPanel:          NewElement(ElemRowPanel),
		ButtonCount:       len(flat),
		MaxEvenNameLength: MaxEvenNameLength(flat),
	}

	for i, record := range flat {
		clone := record.Clone()
		clone.ButtonStyle = DuplicateButtonStyle
		duplicate.RowPanel.Add(NewButton(clone))

		if i < len(flat)-1 {
			duplicate.RowPanel.Add(NewElement(ElemSeparator))
			duplicate.SeparatorCount++
		}
	}

	return duplicate
}

// MaxEvenNameLength returns the longest display name among records at
// indices 0, 2, 4, ...
func MaxEvenNameLength(records []types.CommandRecord) int {
	longest := 0
	for i := 0; i < len(records); i += 2 {
		if n := utf8.RuneCountInString(records[i].DisplayName); n > longest {
			longest = n
		}
	}
	return longest
}
