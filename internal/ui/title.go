// ABOUTME: Window title cleanup: NFC normalisation, escape stripping and width truncation
// ABOUTME: Titles come from untrusted PTY output so control runes never reach the host

package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultTitle  = "rio-go"
	maxTitleWidth = 120
)

func sanitizeTitle(s string) string {
	s = norm.NFC.String(ansi.Strip(s))
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return runewidth.Truncate(strings.TrimSpace(s), maxTitleWidth, "…")
}
