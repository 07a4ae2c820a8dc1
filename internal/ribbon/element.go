// =============================================================================
// Menu Files Generator - Ribbon Layout Builder
// =============================================================================
//
// This package turns grouped command records into the ribbon layout tree the
// CAD host reads from RibbonRoot.cui:
//
//   <RibbonRoot>
//     <RibbonPanelSourceCollection>
//       <RibbonPanelSource UID="Draw" Text="Draw">
//         <RibbonCommandButton .../>            <!-- large buttons -->
//         <RibbonSplitButton ...>...</RibbonSplitButton>
//         <RibbonRowPanel>                      <!-- small buttons, 3 per row -->
//           <RibbonRow>...</RibbonRow>
//         </RibbonRowPanel>
//         <RibbonPanelBreak/>
//         <RibbonRowPanel>                      <!-- duplicate section -->
//           <RibbonCommandButton .../>
//           <RibbonSeparator/>
//           ...
//         </RibbonRowPanel>
//       </RibbonPanelSource>
//     </RibbonPanelSourceCollection>
//     <RibbonTabSourceCollection>
//       <RibbonTabSource Text="Tools" UID="Tools_Tab">
//         <RibbonPanelSourceReference PanelId="Draw"/>
//       </RibbonTabSource>
//     </RibbonTabSourceCollection>
//   </RibbonRoot>
//
// The tree is built in one pass over immutable inputs. Every element is a
// value; nothing in the primary layout is shared with the duplicate section.
//
// =============================================================================

package ribbon

import "encoding/xml"

// =============================================================================
// ELEMENT NAMES
// =============================================================================

const (
	ElemRoot              = "RibbonRoot"
	ElemPanelSources      = "RibbonPanelSourceCollection"
	ElemTabSources        = "RibbonTabSourceCollection"
	ElemPanelSource       = "RibbonPanelSource"
	ElemTabSource         = "RibbonTabSource"
	ElemPanelSourceRef    = "RibbonPanelSourceReference"
	ElemCommandButton     = "RibbonCommandButton"
	ElemSplitButton       = "RibbonSplitButton"
	ElemRowPanel          = "RibbonRowPanel"
	ElemRow               = "RibbonRow"
	ElemPanelBreak        = "RibbonPanelBreak"
	ElemSeparator         = "RibbonSeparator"
	AttrText              = "Text"
	AttrUID               = "UID"
	AttrButtonStyle       = "ButtonStyle"
	AttrMenuMacroID       = "MenuMacroID"
	AttrBehavior          = "Behavior"
	AttrPanelID           = "PanelId"
	SplitBehaviorFollower = "SplitFollowStaticText"
)

// =============================================================================
// ELEMENT
// =============================================================================

// Element is one node of the ribbon layout tree. Attribute order is kept as
// inserted, which is the order they are serialized in.
type Element struct {
	XMLName    xml.Name
	Attributes []xml.Attr
	Children   []Element
}

// NewElement creates an element with the given attribute name/value pairs.
func NewElement(name string, attrs ...string) Element {
	element := Element{XMLName: xml.Name{Local: name}}
	for i := 0; i+1 < len(attrs); i += 2 {
		element.Attributes = append(element.Attributes, xml.Attr{
			Name:  xml.Name{Local: attrs[i]},
			Value: attrs[i+1],
		})
	}
	return element
}

// Name returns the local element name.
func (e Element) Name() string {
	return e.XMLName.Local
}

// Attr returns the value of the named attribute.
func (e Element) Attr(name string) (string, bool) {
	for _, attr := range e.Attributes {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Add appends children to the element.
func (e *Element) Add(children ...Element) {
	e.Children = append(e.Children, children...)
}

// ChildrenNamed returns the direct children with the given name.
func (e Element) ChildrenNamed(name string) []Element {
	var matches []Element
	for _, child := range e.Children {
		if child.Name() == name {
			matches = append(matches, child)
		}
	}
	return matches
}

// Walk visits e and all its descendants depth-first, parents first.
func (e Element) Walk(visit func(Element)) {
	visit(e)
	for _, child := range e.Children {
		child.Walk(visit)
	}
}
