// ABOUTME: Encodes Bubble Tea key messages into the byte sequences a shell expects
// ABOUTME: Control keys map to their C0 byte; cursor and function keys use xterm sequences

package ui

import tea "github.com/charmbracelet/bubbletea"

var keySequences = map[tea.KeyType]string{
	tea.KeyUp:       "\x1b[A",
	tea.KeyDown:     "\x1b[B",
	tea.KeyRight:    "\x1b[C",
	tea.KeyLeft:     "\x1b[D",
	tea.KeyShiftTab: "\x1b[Z",
	tea.KeyHome:     "\x1b[H",
	tea.KeyEnd:      "\x1b[F",
	tea.KeyPgUp:     "\x1b[5~",
	tea.KeyPgDown:   "\x1b[6~",
	tea.KeyInsert:   "\x1b[2~",
	tea.KeyDelete:   "\x1b[3~",
	tea.KeyF1:       "\x1bOP",
	tea.KeyF2:       "\x1bOQ",
	tea.KeyF3:       "\x1bOR",
	tea.KeyF4:       "\x1bOS",
	tea.KeyF5:       "\x1b[15~",
	tea.KeyF6:       "\x1b[17~",
	tea.KeyF7:       "\x1b[18~",
	tea.KeyF8:       "\x1b[19~",
	tea.KeyF9:       "\x1b[20~",
	tea.KeyF10:      "\x1b[21~",
	tea.KeyF11:      "\x1b[23~",
	tea.KeyF12:      "\x1b[24~",
}

// keyBytes returns the input bytes for k, or nil when k has no encoding.
func keyBytes(k tea.KeyMsg) []byte {
	var b []byte
	switch k.Type {
	case tea.KeyRunes:
		b = []byte(string(k.Runes))
	case tea.KeySpace:
		b = []byte{' '}
	default:
		if seq, ok := keySequences[k.Type]; ok {
			b = []byte(seq)
		} else if k.Type >= 0 && (k.Type < 0x20 || k.Type == 0x7f) {
			b = []byte{byte(k.Type)}
		}
	}
	if k.Alt && len(b) > 0 {
		b = append([]byte{0x1b}, b...)
	}
	return b
}
