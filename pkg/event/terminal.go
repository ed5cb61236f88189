// ABOUTME: TerminalEvent vocabulary raised by terminal logic toward the UI
// ABOUTME: Closure-carrying variants hold shared formatter capabilities, rendered by tag only

package event

import "fmt"

// SizeFormatter turns the current window size into the escape sequence the
// running program expects. Implementations must be pure and safe to call
// from the UI goroutine.
type SizeFormatter interface {
	FormatSize(size WindowSize) string
}

// SizeFormatterFunc adapts a function to SizeFormatter.
type SizeFormatterFunc func(size WindowSize) string

// FormatSize calls f(size).
func (f SizeFormatterFunc) FormatSize(size WindowSize) string { return f(size) }

// TextFormatter turns clipboard content into a response escape sequence.
type TextFormatter interface {
	FormatText(text string) string
}

// TextFormatterFunc adapts a function to TextFormatter.
type TextFormatterFunc func(text string) string

// FormatText calls f(text).
func (f TextFormatterFunc) FormatText(text string) string { return f(text) }

// ColorFormatter turns an RGB value into a response escape sequence.
type ColorFormatter interface {
	FormatColor(c RGB) string
}

// ColorFormatterFunc adapts a function to ColorFormatter.
type ColorFormatterFunc func(c RGB) string

// FormatColor calls f(c).
func (f ColorFormatterFunc) FormatColor(c RGB) string { return f(c) }

// TerminalEvent is a notification raised by terminal logic. The set of
// implementations is closed; consumers switch over every variant.
type TerminalEvent interface {
	fmt.Stringer
	// Kind returns the variant tag.
	Kind() string
	isTerminalEvent()
}

// MouseCursorDirty reports that the grid changed in a way that may require
// a different mouse cursor shape.
type MouseCursorDirty struct{}

// Title sets the window title.
type Title struct {
	Text string
}

// ResetTitle restores the default window title.
type ResetTitle struct{}

// ClipboardStore asks the UI to store text in a clipboard.
type ClipboardStore struct {
	Clipboard ClipboardType
	Text      string
}

// ClipboardLoad asks the UI to write the clipboard content back to the PTY,
// formatted by Formatter.
type ClipboardLoad struct {
	Clipboard ClipboardType
	Formatter TextFormatter
}

// Format applies the formatter, returning "" when none is set.
func (e ClipboardLoad) Format(text string) string {
	if e.Formatter == nil {
		return ""
	}
	return e.Formatter.FormatText(text)
}

// ColorRequest asks the UI to write the value of palette entry Index back to
// the PTY, formatted by Formatter.
type ColorRequest struct {
	Index     int
	Formatter ColorFormatter
}

// Format applies the formatter, returning "" when none is set.
func (e ColorRequest) Format(c RGB) string {
	if e.Formatter == nil {
		return ""
	}
	return e.Formatter.FormatColor(c)
}

// PtyWrite asks the UI to write Text to the PTY.
type PtyWrite struct {
	Text string
}

// TextAreaSizeRequest asks the UI to report the text area size to the PTY,
// formatted by Formatter.
type TextAreaSizeRequest struct {
	Formatter SizeFormatter
}

// Format applies the formatter, returning "" when none is set.
func (e TextAreaSizeRequest) Format(size WindowSize) string {
	if e.Formatter == nil {
		return ""
	}
	return e.Formatter.FormatSize(size)
}

// CursorBlinkingChange reports that cursor blinking was toggled.
type CursorBlinkingChange struct{}

// Wakeup reports new terminal content. Duplicates are expected.
type Wakeup struct{}

// Bell rings the terminal bell.
type Bell struct{}

// Exit requests application shutdown.
type Exit struct{}

func (MouseCursorDirty) isTerminalEvent()     {}
func (Title) isTerminalEvent()                {}
func (ResetTitle) isTerminalEvent()           {}
func (ClipboardStore) isTerminalEvent()       {}
func (ClipboardLoad) isTerminalEvent()        {}
func (ColorRequest) isTerminalEvent()         {}
func (PtyWrite) isTerminalEvent()             {}
func (TextAreaSizeRequest) isTerminalEvent()  {}
func (CursorBlinkingChange) isTerminalEvent() {}
func (Wakeup) isTerminalEvent()               {}
func (Bell) isTerminalEvent()                 {}
func (Exit) isTerminalEvent()                 {}

func (MouseCursorDirty) Kind() string     { return "MouseCursorDirty" }
func (Title) Kind() string                { return "Title" }
func (ResetTitle) Kind() string           { return "ResetTitle" }
func (ClipboardStore) Kind() string       { return "ClipboardStore" }
func (ClipboardLoad) Kind() string        { return "ClipboardLoad" }
func (ColorRequest) Kind() string         { return "ColorRequest" }
func (PtyWrite) Kind() string             { return "PtyWrite" }
func (TextAreaSizeRequest) Kind() string  { return "TextAreaSizeRequest" }
func (CursorBlinkingChange) Kind() string { return "CursorBlinkingChange" }
func (Wakeup) Kind() string               { return "Wakeup" }
func (Bell) Kind() string                 { return "Bell" }
func (Exit) Kind() string                 { return "Exit" }

// Formatter payloads are never rendered.

func (MouseCursorDirty) String() string     { return "MouseCursorDirty" }
func (e Title) String() string              { return fmt.Sprintf("Title(%q)", e.Text) }
func (ResetTitle) String() string           { return "ResetTitle" }
func (e ClipboardStore) String() string     { return fmt.Sprintf("ClipboardStore(%s, %q)", e.Clipboard, e.Text) }
func (e ClipboardLoad) String() string      { return fmt.Sprintf("ClipboardLoad(%s)", e.Clipboard) }
func (e ColorRequest) String() string       { return fmt.Sprintf("ColorRequest(%d)", e.Index) }
func (e PtyWrite) String() string           { return fmt.Sprintf("PtyWrite(%q)", e.Text) }
func (TextAreaSizeRequest) String() string  { return "TextAreaSizeRequest" }
func (CursorBlinkingChange) String() string { return "CursorBlinkingChange" }
func (Wakeup) String() string               { return "Wakeup" }
func (Bell) String() string                 { return "Bell" }
func (Exit) String() string                 { return "Exit" }
