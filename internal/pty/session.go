// ABOUTME: PTY actor: consumes Msg values from its inbox and streams output to the UI
// ABOUTME: Writer and reader run under an errgroup; Shutdown or child exit ends the session

package pty

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	riolog "github.com/mauromedda/rio-go/internal/log"
	"github.com/mauromedda/rio-go/internal/vt"
	"github.com/mauromedda/rio-go/pkg/event"
	"github.com/mauromedda/rio-go/pkg/mailbox"
)

const readBufferSize = 0x10000

// Session owns one PTY device and the receive side of its Msg channel.
type Session struct {
	dev       Device
	wait      func() error
	inbox     *mailbox.Mailbox[event.Msg]
	notifier  *event.Notifier
	scanner   *vt.Scanner
	closeOnce sync.Once
}

// NewSession wraps dev. wait, when non-nil, reaps the child process after
// the session ends.
func NewSession(dev Device, wait func() error) *Session {
	inbox := mailbox.New[event.Msg]()
	return &Session{
		dev:      dev,
		wait:     wait,
		inbox:    inbox,
		notifier: event.NewNotifier(inbox),
		scanner:  vt.NewScanner(),
	}
}

// Notifier returns the handle producers use to reach this session. It can
// be shared by any number of goroutines.
func (s *Session) Notifier() *event.Notifier {
	return s.notifier
}

// Run drives the session until Shutdown, child exit, or ctx is done. Output
// is copied to out (when non-nil) and terminal events go to listener. Exit
// is always sent to listener when Run returns.
func (s *Session) Run(ctx context.Context, out io.Writer, listener event.EventListener) error {
	if listener == nil {
		listener = event.VoidListener{}
	}
	defer listener.SendEvent(event.Exit{})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		return s.writeLoop(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return s.readLoop(out, listener)
	})
	g.Go(func() error {
		<-gctx.Done()
		s.release()
		return nil
	})

	err := g.Wait()
	if s.wait != nil {
		if werr := s.wait(); werr != nil {
			riolog.Debug("pty: child exited: %v", werr)
		}
	}
	return err
}

// release closes the device and the inbox. Later notifications are dropped.
func (s *Session) release() {
	s.closeOnce.Do(func() {
		s.inbox.Close()
		if err := s.dev.Close(); err != nil {
			riolog.Debug("pty: close: %v", err)
		}
	})
}

func (s *Session) writeLoop(ctx context.Context) error {
	for {
		msg, err := s.inbox.Recv(ctx)
		if err != nil {
			return nil
		}

		switch m := msg.(type) {
		case event.Input:
			if _, err := s.dev.Write(m.Bytes); err != nil {
				if isClosed(err) {
					return nil
				}
				return fmt.Errorf("writing to pty: %w", err)
			}
		case event.Resize:
			if err := s.dev.Resize(m.Size); err != nil {
				riolog.Warn("pty: resize to %s: %v", m.Size, err)
			}
		case event.Shutdown:
			riolog.Debug("pty: shutdown requested")
			return nil
		default:
			riolog.Warn("pty: unhandled message %s", msg)
		}
	}
}

func (s *Session) readLoop(out io.Writer, listener event.EventListener) error {
	buf := make([]byte, readBufferSize)
	for {
		n, err := s.dev.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if out != nil {
				if _, werr := out.Write(chunk); werr != nil {
					return fmt.Errorf("copying pty output: %w", werr)
				}
			}
			for _, ev := range s.scanner.Feed(chunk) {
				listener.SendEvent(ev)
			}
			listener.SendEvent(event.Wakeup{})
		}
		if err != nil {
			if isClosed(err) {
				return nil
			}
			return fmt.Errorf("reading from pty: %w", err)
		}
	}
}

// isClosed reports errors that mean the other side went away. Linux
// reports EIO on the master once the child exits.
func isClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed) ||
		errors.Is(err, syscall.EIO)
}
