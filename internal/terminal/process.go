// ABOUTME: ProcessTerminal implements Terminal using os.Stdout and golang.org/x/term.
// ABOUTME: Manages raw mode state and delegates platform-specific resize handling.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/mauromedda/rio-go/pkg/event"
)

// ProcessTerminal is the real host terminal backed by os.Stdin/os.Stdout.
type ProcessTerminal struct {
	mu         sync.Mutex
	oldState   *term.State
	resizeFn   func(size event.WindowSize)
	stopResize func()
	listen     func() func()
	cellWidth  uint16
	cellHeight uint16
}

// NewProcessTerminal returns a ProcessTerminal. x/term only reports cells,
// so the cell pixel size comes from configuration.
func NewProcessTerminal(cellWidth, cellHeight uint16) *ProcessTerminal {
	t := &ProcessTerminal{cellWidth: cellWidth, cellHeight: cellHeight}
	t.listen = t.startResizeListener
	return t
}

// IsTerminal reports whether stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(os.Stdin.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (event.WindowSize, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return event.WindowSize{}, fmt.Errorf("getting terminal size: %w", err)
	}
	return event.WindowSize{
		Lines:      clampU16(h),
		Cols:       clampU16(w),
		CellWidth:  t.cellWidth,
		CellHeight: t.cellHeight,
	}, nil
}

// Write sends bytes to os.Stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := os.Stdout.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
// Platform-specific signal handling is set up by startResizeListener.
func (t *ProcessTerminal) OnResize(fn func(size event.WindowSize)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeFn = fn
	if t.stopResize == nil {
		t.stopResize = t.listen()
	}
}

// Close stops resize notifications.
func (t *ProcessTerminal) Close() {
	t.mu.Lock()
	stop := t.stopResize
	t.stopResize = nil
	t.resizeFn = nil
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (t *ProcessTerminal) notifyResize() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()

	if fn == nil {
		return
	}
	size, err := t.Size()
	if err != nil {
		return
	}
	fn(size)
}

func clampU16(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > 0xffff:
		return 0xffff
	default:
		return uint16(v)
	}
}
