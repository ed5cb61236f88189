// ABOUTME: Tests for the debug rendering of every variant
// ABOUTME: Renderings are single-line, contain the tag, and never call formatter payloads

package event

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_TerminalEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ev   TerminalEvent
		want string
	}{
		{MouseCursorDirty{}, "MouseCursorDirty"},
		{Title{Text: "zsh"}, `Title("zsh")`},
		{Title{Text: "two\nlines"}, `Title("two\nlines")`},
		{ResetTitle{}, "ResetTitle"},
		{ClipboardStore{Clipboard: ClipboardSystem, Text: "hi"}, `ClipboardStore(Clipboard, "hi")`},
		{ClipboardLoad{Clipboard: ClipboardSelection}, "ClipboardLoad(Selection)"},
		{ColorRequest{Index: 4}, "ColorRequest(4)"},
		{PtyWrite{Text: "\x1b[c"}, `PtyWrite("\x1b[c")`},
		{TextAreaSizeRequest{}, "TextAreaSizeRequest"},
		{CursorBlinkingChange{}, "CursorBlinkingChange"},
		{Wakeup{}, "Wakeup"},
		{Bell{}, "Bell"},
		{Exit{}, "Exit"},
	}

	for _, tt := range tests {
		t.Run(tt.ev.Kind(), func(t *testing.T) {
			t.Parallel()

			got := fmt.Sprint(tt.ev)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, fmt.Sprint(tt.ev), "rendering must be deterministic")
			assert.Contains(t, got, tt.ev.Kind())
			assert.NotContains(t, got, "\n")
		})
	}
}

func TestString_ClosureVariantsNeverInvoke(t *testing.T) {
	t.Parallel()

	invoked := false
	events := []TerminalEvent{
		TextAreaSizeRequest{Formatter: SizeFormatterFunc(func(WindowSize) string {
			invoked = true
			return "boom"
		})},
		ClipboardLoad{Formatter: TextFormatterFunc(func(string) string {
			invoked = true
			return "boom"
		})},
		ColorRequest{Index: 1, Formatter: ColorFormatterFunc(func(RGB) string {
			invoked = true
			return "boom"
		})},
	}

	for _, ev := range events {
		for _, s := range []string{fmt.Sprint(ev), fmt.Sprintf("%v", ev), fmt.Sprintf("%s", FromTerminal(ev))} {
			assert.Contains(t, s, ev.Kind())
			assert.NotContains(t, s, "boom")
			assert.NotContains(t, s, "0x", "formatter address leaked")
		}
	}
	assert.False(t, invoked)
}

func TestString_ApplicationEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ev   ApplicationEvent
		want string
	}{
		{ScaleFactorChanged{Factor: 1.5, Size: PhysicalSize{Width: 800, Height: 600}}, "ScaleFactorChanged(1.5, 800x600)"},
		{Rio{Event: Bell{}}, "Rio(Bell)"},
		{Rio{}, "Rio(<nil>)"},
		{BlinkCursor{}, "BlinkCursor"},
		{BlinkCursorTimeout{}, "BlinkCursorTimeout"},
		{SearchNext{}, "SearchNext"},
		{Frame{}, "Frame"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ev.String())
		assert.True(t, strings.HasPrefix(tt.ev.String(), tt.ev.Kind()))
	}
}

func TestString_Msgs(t *testing.T) {
	t.Parallel()

	size := WindowSize{Lines: 24, Cols: 80, CellWidth: 8, CellHeight: 16}
	assert.Equal(t, `Input("ls\n")`, Input{Bytes: []byte("ls\n")}.String())
	assert.Equal(t, "Shutdown", Shutdown{}.String())
	assert.Equal(t, "Resize(WindowSize{lines: 24, cols: 80, cell: 8x16})", Resize{Size: size}.String())
}

func TestString_Envelope(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Envelope{Rio(Title("x"))}`, NewEnvelope(FromTerminal(Title{Text: "x"})).String())
	assert.Equal(t, "Envelope{<nil>}", Envelope{}.String())
}

func TestWindowSize_TextArea(t *testing.T) {
	t.Parallel()

	s := WindowSize{Lines: 24, Cols: 80, CellWidth: 9, CellHeight: 18}
	assert.Equal(t, 720, s.TextAreaWidth())
	assert.Equal(t, 432, s.TextAreaHeight())
	assert.False(t, s.IsZero())
	assert.True(t, WindowSize{Cols: 80}.IsZero())

	big := WindowSize{Lines: 65535, Cols: 65535, CellWidth: 65535, CellHeight: 65535}
	assert.Equal(t, 65535*65535, big.TextAreaWidth())
}

func TestFormatHelpers_NilFormatter(t *testing.T) {
	t.Parallel()

	assert.Empty(t, TextAreaSizeRequest{}.Format(WindowSize{}))
	assert.Empty(t, ClipboardLoad{}.Format("x"))
	assert.Empty(t, ColorRequest{}.Format(RGB{}))
	assert.Equal(t, "#0a0b0c", RGB{R: 10, G: 11, B: 12}.String())
	assert.Equal(t, "ClipboardType(9)", ClipboardType(9).String())
}
