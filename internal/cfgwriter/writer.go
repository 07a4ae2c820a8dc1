// =============================================================================
// Menu Files Generator - Config Writer Module
// =============================================================================
//
// This module emits the <addin>.cfg registry the CAD host reads on load. It
// performs no grouping of its own; it walks panels already grouped by the
// ribbon package, so menus and toolbars mirror the ribbon exactly.
//
// FILE STRUCTURE:
//   [\ribbon\<addin>]                  ribbon archive registration
//   [\configman\commands\<id>]         one block per command
//   [\menu\<addin>_Menu\<panel>]       classic menu, one submenu per panel
//   [\toolbars\<addin>_<panel>]        one toolbar per panel
//
// The file is UTF-8 with a BOM and CRLF line endings.
//
// =============================================================================

package cfgwriter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ginjaninja78/menu-files-gen/internal/ribbon"
)

const lineEnding = "\r\n"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Settings controls the per-command values written to the registry.
type Settings struct {
	// IconDir is the icon directory relative to the .cfg file.
	IconDir string

	// CommandWeight is written as weight=i<n>.
	CommandWeight int

	// CommandType is written as cmdtype=i<n>.
	CommandType int

	// IncludeBOM prefixes the file with a UTF-8 byte order mark.
	IncludeBOM bool
}

// DefaultSettings returns the values the host ships with.
func DefaultSettings() Settings {
	return Settings{
		IconDir:       "icons",
		CommandWeight: 10,
		CommandType:   1,
		IncludeBOM:    true,
	}
}

// =============================================================================
// WRITER
// =============================================================================

// lineWriter remembers the first write error so the emitters stay linear.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lineWriter) line(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	if len(args) == 0 {
		_, lw.err = lw.w.WriteString(format + lineEnding)
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format+lineEnding, args...)
}

// Write emits the complete config file for the add-in.
//
// PARAMETERS:
//   - w: The destination.
//   - addinName: The add-in name, usually the input file's base name.
//   - panels: The grouped visible commands.
//   - settings: The per-command values.
//
// RETURNS:
//   - An error if writing fails.
func Write(w io.Writer, addinName string, panels []ribbon.PanelGroup, settings Settings) error {
	lw := &lineWriter{w: bufio.NewWriter(w)}

	if settings.IncludeBOM {
		_, lw.err = lw.w.Write(utf8BOM)
	}

	writeCommands(lw, addinName, panels, settings)
	writeMenu(lw, addinName, panels)
	writeToolbars(lw, addinName, panels)

	if lw.err != nil {
		return fmt.Errorf("failed to write config: %w", lw.err)
	}
	if err := lw.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush config: %w", err)
	}
	return nil
}

// writeCommands registers the ribbon archive and every command.
func writeCommands(lw *lineWriter, addinName string, panels []ribbon.PanelGroup, settings Settings) {
	lw.line(`[\ribbon\%s]`, addinName)
	lw.line(`CUIX=s%%CFG_PATH%%\%s.cuix`, addinName)
	lw.line("")
	lw.line(`[\configman]`)
	lw.line(`[\configman\commands]`)

	for _, panel := range panels {
		for _, record := range panel.Records {
			lw.line(`[\configman\commands\%s]`, record.InternalID)
			lw.line("weight=i%d", settings.CommandWeight)
			lw.line("cmdtype=i%d", settings.CommandType)
			lw.line("intername=s%s", record.InternalID)
			lw.line("DispName=s%s", record.DisplayName)
			lw.line("StatusText=s%s", record.StatusText)
			lw.line(`BitmapDll=s%s\%s.ico`, settings.IconDir, record.InternalID)
		}
	}
}

// writeMenu emits the classic menu, one submenu per panel.
func writeMenu(lw *lineWriter, addinName string, panels []ribbon.PanelGroup) {
	menu := addinName + "_Menu"

	lw.line("")
	lw.line(`[\menu]`)
	lw.line(`[\menu\%s]`, menu)
	lw.line("Name=s%s", addinName)

	for _, panel := range panels {
		lw.line(`[\menu\%s\%s]`, menu, panel.Name)
		lw.line("name=s%s", panel.Name)

		for _, record := range panel.Records {
			lw.line(`[\menu\%s\%s\s%s]`, menu, panel.Name, record.InternalID)
			lw.line("name=s%s", record.DisplayName)
			lw.line("Intername=s%s", record.InternalID)
		}
	}
}

// writeToolbars emits one toolbar per panel.
func writeToolbars(lw *lineWriter, addinName string, panels []ribbon.PanelGroup) {
	lw.line("")
	lw.line(`[\toolbars]`)

	for _, panel := range panels {
		toolbar := ToolbarName(addinName, panel.Name)
		lw.line(`[\toolbars\%s]`, toolbar)
		lw.line("name=s%s", toolbar)
		lw.line("Intername=s%s", toolbar)

		for _, record := range panel.Records {
			lw.line(`[\toolbars\%s\%s]`, toolbar, record.InternalID)
			lw.line("Intername=s%s", record.InternalID)
		}
	}
}

// ToolbarName returns the toolbar identifier for a panel.
func ToolbarName(addinName, panelName string) string {
	return addinName + "_" + panelName
}
