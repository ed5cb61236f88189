// ABOUTME: Minimal output-stream scanner that raises TerminalEvents for the UI
// ABOUTME: Recognises BEL, OSC 0/2/4/52, a few CSI queries and mode toggles; keeps state across chunks

package vt

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/mauromedda/rio-go/internal/xterm"
	"github.com/mauromedda/rio-go/pkg/event"
)

const maxSequence = 64 * 1024

type state int

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEscape
)

// Scanner tracks escape sequences across Feed calls. It is not safe for
// concurrent use; the PTY reader owns it.
type Scanner struct {
	state state
	buf   []byte
}

// NewScanner returns a scanner in the ground state.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Feed scans p and returns the events it completes, in stream order.
func (s *Scanner) Feed(p []byte) []event.TerminalEvent {
	var out []event.TerminalEvent
	emit := func(ev event.TerminalEvent) {
		if ev != nil {
			out = append(out, ev)
		}
	}

	for _, b := range p {
		switch s.state {
		case stateGround:
			switch b {
			case 0x07:
				emit(event.Bell{})
			case 0x1b:
				s.state = stateEscape
			}
		case stateEscape:
			s.escape(b)
		case stateCSI:
			if b >= 0x40 && b <= 0x7e {
				emit(csiEvent(string(s.buf), b))
				s.state = stateGround
				continue
			}
			s.push(b)
		case stateOSC:
			switch b {
			case 0x07:
				emit(oscEvent(string(s.buf), "\x07"))
				s.state = stateGround
			case 0x1b:
				s.state = stateOSCEscape
			default:
				s.push(b)
			}
		case stateOSCEscape:
			if b == '\\' {
				emit(oscEvent(string(s.buf), "\x1b\\"))
				s.state = stateGround
				continue
			}
			// Any other byte aborts the OSC; the ESC starts a new sequence.
			s.escape(b)
		}
	}
	return out
}

func (s *Scanner) escape(b byte) {
	switch b {
	case '[':
		s.begin(stateCSI)
	case ']':
		s.begin(stateOSC)
	default:
		s.state = stateGround
	}
}

func (s *Scanner) begin(st state) {
	s.state = st
	s.buf = s.buf[:0]
}

func (s *Scanner) push(b byte) {
	if len(s.buf) >= maxSequence {
		// Oversized sequence: drop it.
		s.state = stateGround
		s.buf = s.buf[:0]
		return
	}
	s.buf = append(s.buf, b)
}

func csiEvent(params string, final byte) event.TerminalEvent {
	switch final {
	case 't':
		switch params {
		case "14":
			return event.TextAreaSizeRequest{Formatter: xterm.TextAreaSizeReport}
		case "16":
			return event.TextAreaSizeRequest{Formatter: xterm.CellSizeReport}
		case "18":
			return event.TextAreaSizeRequest{Formatter: xterm.TextAreaCellsReport}
		}
	case 'c':
		if params == "" || params == "0" {
			return event.PtyWrite{Text: "\x1b[?6c"}
		}
	case 'n':
		if params == "5" {
			return event.PtyWrite{Text: "\x1b[0n"}
		}
	case 'h', 'l':
		if !strings.HasPrefix(params, "?") {
			return nil
		}
		for _, mode := range strings.Split(params[1:], ";") {
			switch mode {
			case "12":
				return event.CursorBlinkingChange{}
			case "1000", "1002", "1003", "1006":
				return event.MouseCursorDirty{}
			}
		}
	}
	return nil
}

func oscEvent(body, terminator string) event.TerminalEvent {
	cmd, rest, _ := strings.Cut(body, ";")
	switch cmd {
	case "0", "2":
		if rest == "" {
			return event.ResetTitle{}
		}
		return event.Title{Text: rest}
	case "4":
		idx, spec, ok := strings.Cut(rest, ";")
		if !ok || spec != "?" {
			return nil
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || n > 255 {
			return nil
		}
		return event.ColorRequest{Index: n, Formatter: xterm.ColorReport(n, terminator)}
	case "52":
		sel, data, ok := strings.Cut(rest, ";")
		if !ok {
			return nil
		}
		clip := event.ClipboardSystem
		if strings.ContainsAny(sel, "ps") {
			clip = event.ClipboardSelection
		}
		if data == "?" {
			return event.ClipboardLoad{Clipboard: clip, Formatter: xterm.ClipboardReport(clip, terminator)}
		}
		text, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil
		}
		return event.ClipboardStore{Clipboard: clip, Text: string(text)}
	}
	return nil
}
