// ABOUTME: Host UI event loop: a mailbox of Envelopes drained by one goroutine
// ABOUTME: Proxy is the clonable injection handle; Run publishes envelopes to subscribers in order

package loop

import (
	"context"
	"errors"
	"fmt"

	riolog "github.com/mauromedda/rio-go/internal/log"
	"github.com/mauromedda/rio-go/pkg/event"
	"github.com/mauromedda/rio-go/pkg/mailbox"
)

// Loop serialises envelopes posted from any goroutine and hands them to
// subscribers on the goroutine that calls Run.
type Loop struct {
	inbox *mailbox.Mailbox[event.Envelope]
	bus   *Bus[event.Envelope]
}

// New creates a loop ready to accept envelopes.
func New() *Loop {
	return &Loop{
		inbox: mailbox.New[event.Envelope](),
		bus:   NewBus[event.Envelope](),
	}
}

// Proxy returns an injection handle. Proxies are values and may be copied
// to any number of producers.
func (l *Loop) Proxy() Proxy {
	return Proxy{inbox: l.inbox}
}

// Listener returns an event.EventProxy bound to this loop.
func (l *Loop) Listener() event.EventProxy {
	return event.NewEventProxy(l.Proxy())
}

// Subscribe registers h for every envelope Run dispatches.
func (l *Loop) Subscribe(h Handler[event.Envelope]) func() {
	return l.bus.Subscribe(h)
}

// Pending returns the number of envelopes waiting to be dispatched.
func (l *Loop) Pending() int {
	return l.inbox.Len()
}

// Run dispatches envelopes until ctx is done, Close is called, or an Exit
// terminal event has been dispatched. The inbox is closed on return, so
// later posts are dropped by the proxies.
func (l *Loop) Run(ctx context.Context) error {
	defer l.inbox.Close()

	for {
		env, err := l.inbox.Recv(ctx)
		if err != nil {
			if errors.Is(err, mailbox.ErrClosed) {
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("event loop: %w", err)
		}

		riolog.Debug("loop: dispatch %s", env)
		l.bus.Publish(env)

		if ev, ok := env.Terminal(); ok {
			if _, exit := ev.(event.Exit); exit {
				return nil
			}
		}
	}
}

// Close stops accepting envelopes. Run returns after draining what is
// already queued.
func (l *Loop) Close() {
	l.inbox.Close()
}

// Proxy posts envelopes to a Loop without blocking.
type Proxy struct {
	inbox *mailbox.Mailbox[event.Envelope]
}

var _ event.LoopProxy = Proxy{}

// PostEnvelope queues env. It fails once the loop has stopped.
func (p Proxy) PostEnvelope(env event.Envelope) error {
	if p.inbox == nil {
		return mailbox.ErrClosed
	}
	return p.inbox.Send(env)
}
