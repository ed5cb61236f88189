// ABOUTME: Pass-through front end: host terminal bytes go straight to the PTY and back
// ABOUTME: No UI loop; the session reports terminal events to a VoidListener

package headless

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/cancelreader"
	"golang.org/x/sync/errgroup"

	riolog "github.com/mauromedda/rio-go/internal/log"
	"github.com/mauromedda/rio-go/internal/pty"
	"github.com/mauromedda/rio-go/internal/terminal"
	"github.com/mauromedda/rio-go/pkg/event"
)

const inputBufferSize = 4096

// Run puts term in raw mode and relays until the session ends. in is
// usually a cancelreader wrapping stdin so the input pump stops with the
// session; a plain reader is only released by EOF.
func Run(ctx context.Context, session *pty.Session, term terminal.Terminal, in io.Reader) error {
	if err := term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if err := term.ExitRawMode(); err != nil {
			riolog.Warn("headless: exit raw mode: %v", err)
		}
	}()

	n := session.Notifier()
	if size, err := term.Size(); err == nil && !size.IsZero() {
		n.OnResize(size)
	}
	terminal.ForwardResizes(term, n)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancelInput(in)
		return session.Run(gctx, term, event.VoidListener{})
	})
	g.Go(func() error {
		defer terminal.RecoverGoroutine(term)
		return pumpInput(in, n)
	})
	return g.Wait()
}

// pumpInput forwards host input to the PTY. EOF on the host asks the
// session to shut down.
func pumpInput(in io.Reader, n *event.Notifier) error {
	buf := make([]byte, inputBufferSize)
	for {
		k, err := in.Read(buf)
		if k > 0 {
			n.Notify(buf[:k])
		}
		if err == nil {
			continue
		}
		switch {
		case errors.Is(err, io.EOF):
			n.Shutdown()
			return nil
		case errors.Is(err, cancelreader.ErrCanceled):
			return nil
		default:
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

func cancelInput(in io.Reader) {
	if c, ok := in.(cancelreader.CancelReader); ok {
		c.Cancel()
	}
}
