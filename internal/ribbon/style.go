package ribbon

import "strings"

// CompactStyleMarker marks a button style token as small/compact.
// The match is case-sensitive against the host's style vocabulary.
const CompactStyleMarker = "Small"

// DuplicateButtonStyle is forced onto every button of the duplicate section.
const DuplicateButtonStyle = "LargeWithHorizontalText"

// IsCompact reports whether a button style renders small and row-packed.
func IsCompact(buttonStyle string) bool {
	return strings.Contains(buttonStyle, CompactStyleMarker)
}

// isCompactItem classifies a top-level primary item by its declared style.
// A split button declares the style of its first member.
func isCompactItem(item Element) bool {
	style, _ := item.Attr(AttrButtonStyle)
	return IsCompact(style)
}
