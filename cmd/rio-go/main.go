// ABOUTME: CLI entry point for rio-go
// ABOUTME: Builds the cobra command tree and exits non-zero on error

package main

import (
	"fmt"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// BubbleTea's init from sending OSC 10/11 queries whose replies would be
	// forwarded to the shell as input.
	_ "github.com/mauromedda/rio-go/internal/termfix"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
