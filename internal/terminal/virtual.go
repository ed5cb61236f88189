// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output in a buffer, tracks raw-mode calls and simulates resizes.

package terminal

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/mauromedda/rio-go/pkg/event"
)

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	size       event.WindowSize
	rawMode    bool
	resizeFn   func(size event.WindowSize)
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given size.
func NewVirtualTerminal(size event.WindowSize) *VirtualTerminal {
	return &VirtualTerminal{size: size}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured size.
func (v *VirtualTerminal) Size() (event.WindowSize, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.size, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(size event.WindowSize)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the size and invokes the resize callback, if any.
func (v *VirtualTerminal) SetSize(size event.WindowSize) {
	v.mu.Lock()
	v.size = size
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(size)
	}
}
