// ABOUTME: Windows stub for ProcessTerminal resize handling.
// ABOUTME: Placeholder; Windows does not use SIGWINCH signals.

//go:build windows

package terminal

// startResizeListener is a no-op on Windows.
func (t *ProcessTerminal) startResizeListener() func() {
	return func() {}
}
