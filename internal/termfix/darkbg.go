// ABOUTME: Fixes the lipgloss background to dark before BubbleTea's init() can query the host
// ABOUTME: Blank-import from main ahead of any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background, lipgloss skips its OSC 10/11 probe. The
	// host's reply would otherwise arrive on stdin and be relayed to the
	// shell as keystrokes.
	//
	// No bubbletea imports here, directly or transitively, so this init
	// runs first.
	lipgloss.SetHasDarkBackground(true)
}
