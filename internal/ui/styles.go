// ABOUTME: Lipgloss styles for the status bar and visual bell
// ABOUTME: Colors come from the active palette so user overrides apply to the chrome too

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/rio-go/internal/xterm"
)

type styles struct {
	status lipgloss.Style
	size   lipgloss.Style
	flash  lipgloss.Style
	cursor lipgloss.Style
}

func paletteColor(p *xterm.Palette, index int) lipgloss.Color {
	c, ok := p.Color(index)
	if !ok {
		return lipgloss.Color("")
	}
	return lipgloss.Color(c.String())
}

func newStyles(p *xterm.Palette) styles {
	return styles{
		status: lipgloss.NewStyle().
			Foreground(paletteColor(p, 15)).
			Background(paletteColor(p, 4)).
			Bold(true),
		size: lipgloss.NewStyle().
			Foreground(paletteColor(p, 7)).
			Background(paletteColor(p, 4)),
		flash:  lipgloss.NewStyle().Reverse(true),
		cursor: lipgloss.NewStyle().Reverse(true),
	}
}
