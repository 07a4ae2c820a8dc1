// =============================================================================
// Menu Files Generator - XML Writer Module
// =============================================================================
//
// This module serializes the ribbon layout tree into the RibbonRoot.cui
// document. The host loader is strict about a few details, so the writer
// controls the output byte for byte instead of relying on encoding/xml's
// marshaller:
//   - Attributes are written in insertion order
//   - Elements without children are self-closed
//   - The document starts with a UTF-8 BOM and an XML declaration
//
// OUTPUT:
//   <?xml version="1.0" encoding="utf-8"?>
//   <RibbonRoot>
//     <RibbonPanelSourceCollection>
//       <RibbonPanelSource UID="Draw" Text="Draw">
//         <RibbonCommandButton Text="Line" ButtonStyle="LargeWithText" MenuMacroID="MY_LINE"/>
//         ...
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"fmt"

	"github.com/ginjaninja78/menu-files-gen/internal/ribbon"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// XML GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for XML generation.
type GenerateOptions struct {
	// Indent is the string used for indentation.
	// Default: "  " (two spaces)
	Indent string

	// IncludeXMLDeclaration determines whether to include the XML declaration.
	// Default: true
	IncludeXMLDeclaration bool

	// IncludeBOM prefixes the document with a UTF-8 byte order mark.
	// Default: true
	IncludeBOM bool

	// XMLVersion is the XML version for the declaration.
	// Default: "1.0"
	XMLVersion string

	// Encoding is the encoding for the XML declaration.
	// Default: "utf-8"
	Encoding string
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
		IncludeBOM:            true,
		XMLVersion:            "1.0",
		Encoding:              "utf-8",
	}
}

// =============================================================================
// XML GENERATION FUNCTIONS
// =============================================================================

// Generate serializes a ribbon tree with the default options.
func Generate(root ribbon.Element) ([]byte, error) {
	return GenerateWithOptions(root, DefaultGenerateOptions())
}

// GenerateWithOptions serializes a ribbon tree with custom options.
//
// PARAMETERS:
//   - root: The document element, usually built by ribbon.Assemble.
//   - options: The generation options.
//
// RETURNS:
//   - The XML document as a byte slice.
//   - An error if the tree cannot be serialized.
func GenerateWithOptions(root ribbon.Element, options GenerateOptions) ([]byte, error) {
	if root.Name() == "" {
		return nil, fmt.Errorf("root element has no name")
	}

	var buffer bytes.Buffer

	if options.IncludeBOM {
		buffer.Write(utf8BOM)
	}

	if options.IncludeXMLDeclaration {
		buffer.WriteString(fmt.Sprintf("<?xml version=\"%s\" encoding=\"%s\"?>\n",
			options.XMLVersion, options.Encoding))
	}

	if err := writeElement(&buffer, root, options.Indent, 0); err != nil {
		return nil, fmt.Errorf("failed to marshal XML: %w", err)
	}

	return buffer.Bytes(), nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// writeElement writes an element and its subtree with indentation.
func writeElement(buffer *bytes.Buffer, element ribbon.Element, indent string, level int) error {
	name := element.Name()
	if name == "" {
		return fmt.Errorf("unnamed element at depth %d", level)
	}

	writeIndent(buffer, indent, level)

	buffer.WriteString("<")
	buffer.WriteString(name)

	for _, attr := range element.Attributes {
		value, err := escapeXML(attr.Value)
		if err != nil {
			return fmt.Errorf("%s attribute %s: %w", name, attr.Name.Local, err)
		}
		buffer.WriteString(fmt.Sprintf(" %s=\"%s\"", attr.Name.Local, value))
	}

	if len(element.Children) == 0 {
		buffer.WriteString("/>\n")
		return nil
	}

	buffer.WriteString(">\n")

	for _, child := range element.Children {
		if err := writeElement(buffer, child, indent, level+1); err != nil {
			return err
		}
	}

	writeIndent(buffer, indent, level)
	buffer.WriteString("</")
	buffer.WriteString(name)
	buffer.WriteString(">\n")

	return nil
}

func writeIndent(buffer *bytes.Buffer, indent string, level int) {
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}
}

// escapeXML escapes special characters for XML. Runes outside the XML 1.0
// Char production have no representation and are rejected.
func escapeXML(s string) (string, error) {
	var buffer bytes.Buffer

	for _, r := range s {
		if !isXMLChar(r) {
			return "", fmt.Errorf("character %U is not allowed in XML", r)
		}
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		case '\t':
			buffer.WriteString("&#x9;")
		case '\n':
			buffer.WriteString("&#xA;")
		case '\r':
			buffer.WriteString("&#xD;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String(), nil
}

// isXMLChar reports whether r matches the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
