// ABOUTME: Plain value types shared by the event vocabulary
// ABOUTME: WindowSize (cells + cell pixels), PhysicalSize, RGB and ClipboardType

package event

import "fmt"

// WindowSize describes the visible terminal area in cells and the pixel
// size of a single cell. It is copied by value and never mutated.
type WindowSize struct {
	Lines      uint16
	Cols       uint16
	CellWidth  uint16
	CellHeight uint16
}

// TextAreaWidth returns the width of the text area in pixels.
func (s WindowSize) TextAreaWidth() int {
	return int(s.Cols) * int(s.CellWidth)
}

// TextAreaHeight returns the height of the text area in pixels.
func (s WindowSize) TextAreaHeight() int {
	return int(s.Lines) * int(s.CellHeight)
}

// IsZero reports whether the size has no cells.
func (s WindowSize) IsZero() bool {
	return s.Lines == 0 || s.Cols == 0
}

func (s WindowSize) String() string {
	return fmt.Sprintf("WindowSize{lines: %d, cols: %d, cell: %dx%d}",
		s.Lines, s.Cols, s.CellWidth, s.CellHeight)
}

// PhysicalSize is a window size in physical pixels.
type PhysicalSize struct {
	Width  uint32
	Height uint32
}

func (p PhysicalSize) String() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ClipboardType selects which clipboard a request targets.
type ClipboardType int

const (
	// ClipboardSystem is the regular system clipboard.
	ClipboardSystem ClipboardType = iota
	// ClipboardSelection is the primary selection (X11).
	ClipboardSelection
)

func (c ClipboardType) String() string {
	switch c {
	case ClipboardSystem:
		return "Clipboard"
	case ClipboardSelection:
		return "Selection"
	default:
		return fmt.Sprintf("ClipboardType(%d)", int(c))
	}
}
