// ABOUTME: Defines the host Terminal interface for raw mode, size queries, output and resize.
// ABOUTME: Sizes are reported as event.WindowSize so resizes feed straight into OnResize capabilities.

package terminal

import "github.com/mauromedda/rio-go/pkg/event"

// Terminal abstracts the host terminal rio-go runs inside: raw mode,
// size queries, output writing, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (event.WindowSize, error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(size event.WindowSize))
}

// ForwardResizes routes every host resize to dst, typically a Notifier.
func ForwardResizes(t Terminal, dst event.OnResize) {
	t.OnResize(func(size event.WindowSize) {
		dst.OnResize(size)
	})
}
