// ABOUTME: Screen is a bounded line buffer fed by PTY output
// ABOUTME: Escape sequences and control bytes are stripped; the UI redraws its tail on Wakeup

package ui

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// DefaultScrollback is the number of completed lines a Screen keeps.
const DefaultScrollback = 2000

// maxLineBytes bounds the unfinished line; longer runs wrap onto a new line.
const maxLineBytes = 4096

// Screen collects PTY output as plain text lines. It is safe for one
// writer and any number of readers.
type Screen struct {
	mu      sync.Mutex
	lines   []string
	partial []byte
	max     int
}

// NewScreen returns a Screen that keeps at most max completed lines.
func NewScreen(max int) *Screen {
	if max <= 0 {
		max = DefaultScrollback
	}
	return &Screen{max: max}
}

// Write implements io.Writer.
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range p {
		switch b {
		case '\n':
			s.lines = append(s.lines, clean(string(s.partial)))
			s.partial = s.partial[:0]
		case '\r':
		default:
			s.partial = append(s.partial, b)
			if len(s.partial) >= maxLineBytes {
				s.wrap()
			}
		}
	}
	if over := len(s.lines) - s.max; over > 0 {
		s.lines = append(s.lines[:0:0], s.lines[over:]...)
	}
	return len(p), nil
}

// wrap moves the unfinished line into lines, keeping a trailing incomplete
// UTF-8 sequence back for the next byte.
func (s *Screen) wrap() {
	cut := len(s.partial)
	for i := cut - 1; i >= 0 && i >= cut-utf8.UTFMax; i-- {
		if utf8.RuneStart(s.partial[i]) {
			if !utf8.FullRune(s.partial[i:]) {
				cut = i
			}
			break
		}
	}
	s.lines = append(s.lines, clean(string(s.partial[:cut])))
	s.partial = append(s.partial[:0], s.partial[cut:]...)
}

// Tail returns up to n trailing lines, including the unfinished one.
func (s *Screen) Tail(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.lines
	if len(s.partial) > 0 {
		all = append(all[:len(all):len(all)], clean(string(s.partial)))
	}
	if n <= 0 {
		return nil
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return append([]string(nil), all...)
}

// Len returns the number of completed lines.
func (s *Screen) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

func clean(line string) string {
	line = ansi.Strip(line)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case r < 0x20, r == 0x7f:
			return -1
		}
		return r
	}, line)
}
