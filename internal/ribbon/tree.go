package ribbon

import (
	"strings"

	"github.com/ginjaninja78/menu-files-gen/internal/types"
)

// =============================================================================
// RIBBON TREE ASSEMBLER
// =============================================================================

// NewButton renders one command as a ribbon command button.
func NewButton(record types.CommandRecord) Element {
	return NewElement(ElemCommandButton,
		AttrText, record.DisplayName,
		AttrButtonStyle, record.ButtonStyle,
		AttrMenuMacroID, record.InternalID,
	)
}

// NewSplitButton renders a split cluster. The control takes its caption from
// the split key and its style from the first member.
func NewSplitButton(cluster SplitCluster) Element {
	style := ""
	if len(cluster.Records) > 0 {
		style = cluster.Records[0].ButtonStyle
	}

	split := NewElement(ElemSplitButton,
		AttrText, cluster.Key,
		AttrBehavior, SplitBehaviorFollower,
		AttrButtonStyle, style,
	)
	for _, record := range cluster.Records {
		split.Add(NewButton(record))
	}
	return split
}

// PrimaryItems renders the panel's top-level items in encounter order.
func PrimaryItems(panel PanelGroup) []Element {
	items := make([]Element, 0, len(panel.Clusters))
	for _, cluster := range panel.Clusters {
		if cluster.IsSplit() {
			items = append(items, NewSplitButton(cluster))
			continue
		}
		for _, record := range cluster.Records {
			items = append(items, NewButton(record))
		}
	}
	return items
}

// BuildPanel renders one panel source: large items, the compact row panel
// (if any), a panel break, then the duplicate section.
func BuildPanel(panel PanelGroup) Element {
	source := NewElement(ElemPanelSource,
		AttrUID, panel.Name,
		AttrText, panel.Name,
	)

	var compact []Element
	for _, item := range PrimaryItems(panel) {
		if isCompactItem(item) {
			compact = append(compact, item)
			continue
		}
		source.Add(item)
	}

	if rowPanel, ok := PackRows(compact); ok {
		source.Add(rowPanel)
	}

	source.Add(NewElement(ElemPanelBreak))
	source.Add(BuildDuplicate(panel).RowPanel)

	return source
}

// Assemble builds the complete ribbon document for an add-in: every panel in
// the panel source registry and one tab referencing them in order.
func Assemble(addinName string, panels []PanelGroup) Element {
	panelSources := NewElement(ElemPanelSources)
	tab := NewElement(ElemTabSource,
		AttrText, addinName,
		AttrUID, TabUID(addinName),
	)

	for _, panel := range panels {
		panelSources.Add(BuildPanel(panel))
		tab.Add(NewElement(ElemPanelSourceRef, AttrPanelID, panel.Name))
	}

	tabSources := NewElement(ElemTabSources)
	tabSources.Add(tab)

	root := NewElement(ElemRoot)
	root.Add(panelSources, tabSources)
	return root
}

// TabUID derives the tab identifier from the add-in name.
func TabUID(addinName string) string {
	return strings.ReplaceAll(addinName, " ", "") + "_Tab"
}
