// ABOUTME: xterm-dialect response formatters plugged into closure-carrying terminal events
// ABOUTME: Text area size, cell size, OSC 4 color and OSC 52 clipboard reports

package xterm

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mauromedda/rio-go/pkg/event"
)

// TextAreaSizeReport answers CSI 14 t with the text area in pixels.
var TextAreaSizeReport = event.SizeFormatterFunc(func(s event.WindowSize) string {
	return fmt.Sprintf("\x1b[4;%d;%dt", s.TextAreaHeight(), s.TextAreaWidth())
})

// CellSizeReport answers CSI 16 t with the cell size in pixels.
var CellSizeReport = event.SizeFormatterFunc(func(s event.WindowSize) string {
	return fmt.Sprintf("\x1b[6;%d;%dt", s.CellHeight, s.CellWidth)
})

// TextAreaCellsReport answers CSI 18 t with the text area in cells.
var TextAreaCellsReport = event.SizeFormatterFunc(func(s event.WindowSize) string {
	return fmt.Sprintf("\x1b[8;%d;%dt", s.Lines, s.Cols)
})

// ColorReport answers an OSC 4 query for palette entry index, terminating
// the reply the same way the query was terminated.
func ColorReport(index int, terminator string) event.ColorFormatter {
	return event.ColorFormatterFunc(func(c event.RGB) string {
		return fmt.Sprintf("\x1b]4;%d;rgb:%02x%02x/%02x%02x/%02x%02x%s",
			index, c.R, c.R, c.G, c.G, c.B, c.B, terminator)
	})
}

// ClipboardReport answers an OSC 52 query with the clipboard content.
func ClipboardReport(clipboard event.ClipboardType, terminator string) event.TextFormatter {
	return event.TextFormatterFunc(func(text string) string {
		seq := osc52.New(text).Clipboard(osc52Clipboard(clipboard)).String()
		return strings.TrimSuffix(seq, "\x07") + terminator
	})
}

// SetClipboard returns the OSC 52 sequence that stores text in the host
// terminal's clipboard.
func SetClipboard(clipboard event.ClipboardType, text string) string {
	return osc52.New(text).Clipboard(osc52Clipboard(clipboard)).String()
}

func osc52Clipboard(c event.ClipboardType) osc52.Clipboard {
	if c == event.ClipboardSelection {
		return osc52.PrimaryClipboard
	}
	return osc52.SystemClipboard
}
