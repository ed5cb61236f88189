// ABOUTME: Loop-to-Bubble Tea bridge that forwards envelopes as tea.Msg in posting order
// ABOUTME: Producers never touch the program; the single bridge goroutine absorbs Send backpressure

package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/rio-go/internal/loop"
	"github.com/mauromedda/rio-go/pkg/event"
)

// ProgramSender is the interface for sending messages to Bubble Tea.
// Matches *tea.Program's Send method.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// Bridge runs l and forwards every dispatched envelope to program. It
// returns when the loop stops: ctx done, l closed, or Exit forwarded.
func Bridge(ctx context.Context, program ProgramSender, l *loop.Loop) error {
	unsubscribe := l.Subscribe(func(env event.Envelope) {
		program.Send(env)
	})
	defer unsubscribe()

	return l.Run(ctx)
}
