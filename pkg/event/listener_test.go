// ABOUTME: Tests for EventProxy and VoidListener
// ABOUTME: Verifies Rio wrapping, per-sender FIFO, non-blocking sends after loop shutdown

package event

import (
	"testing"
	"time"

	"github.com/mauromedda/rio-go/pkg/mailbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueProxy posts envelopes onto a mailbox, standing in for a UI loop.
type queueProxy struct {
	mb *mailbox.Mailbox[Envelope]
}

func (q queueProxy) PostEnvelope(env Envelope) error { return q.mb.Send(env) }

func drainEnvelopes(mb *mailbox.Mailbox[Envelope]) []Envelope {
	var out []Envelope
	for {
		e, ok := mb.TryRecv()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestEventProxy_BellExample(t *testing.T) {
	t.Parallel()

	mb := mailbox.New[Envelope]()
	NewEventProxy(queueProxy{mb}).SendEvent(Bell{})

	got := drainEnvelopes(mb)
	require.Len(t, got, 1)
	assert.Equal(t, NewEnvelope(Rio{Event: Bell{}}), got[0])
}

func TestEventProxy_WrapsEveryComparableVariant(t *testing.T) {
	t.Parallel()

	events := []TerminalEvent{
		MouseCursorDirty{},
		Title{Text: "vim"},
		ResetTitle{},
		ClipboardStore{Clipboard: ClipboardSelection, Text: "copied"},
		PtyWrite{Text: "\x1b[0n"},
		CursorBlinkingChange{},
		Wakeup{},
		Bell{},
		Exit{},
	}

	mb := mailbox.New[Envelope]()
	p := NewEventProxy(queueProxy{mb})
	for _, ev := range events {
		p.SendEvent(ev)
	}

	got := drainEnvelopes(mb)
	require.Len(t, got, len(events))
	for i, ev := range events {
		assert.Equal(t, FromTerminal(ev), got[i].Payload)
		inner, ok := got[i].Terminal()
		require.True(t, ok)
		assert.Equal(t, ev.Kind(), inner.Kind())
	}
}

func TestEventProxy_ClosureVariant(t *testing.T) {
	t.Parallel()

	mb := mailbox.New[Envelope]()
	req := TextAreaSizeRequest{Formatter: SizeFormatterFunc(func(s WindowSize) string {
		return "size"
	})}
	NewEventProxy(queueProxy{mb}).SendEvent(req)

	got := drainEnvelopes(mb)
	require.Len(t, got, 1)
	rio, ok := got[0].Payload.(Rio)
	require.True(t, ok)
	inner, ok := rio.Event.(TextAreaSizeRequest)
	require.True(t, ok)
	assert.Equal(t, "size", inner.Format(WindowSize{}))
}

func TestEventProxy_DuplicatesNotCollapsed(t *testing.T) {
	t.Parallel()

	mb := mailbox.New[Envelope]()
	p := NewEventProxy(queueProxy{mb})
	p.SendEvent(Wakeup{})
	p.SendEvent(Wakeup{})
	p.SendEvent(Wakeup{})

	assert.Len(t, drainEnvelopes(mb), 3)
}

func TestEventProxy_SendApplicationEvent(t *testing.T) {
	t.Parallel()

	mb := mailbox.New[Envelope]()
	p := NewEventProxy(queueProxy{mb})
	p.SendApplicationEvent(BlinkCursor{})
	p.SendApplicationEvent(ScaleFactorChanged{Factor: 2, Size: PhysicalSize{Width: 1600, Height: 1200}})

	got := drainEnvelopes(mb)
	require.Len(t, got, 2)
	assert.Equal(t, NewEnvelope(BlinkCursor{}), got[0])
	assert.Equal(t, NewEnvelope(ScaleFactorChanged{Factor: 2, Size: PhysicalSize{Width: 1600, Height: 1200}}), got[1])
	_, ok := got[0].Terminal()
	assert.False(t, ok)
}

func TestEventProxy_LoopGone(t *testing.T) {
	t.Parallel()

	mb := mailbox.New[Envelope]()
	mb.Close()
	p := NewEventProxy(queueProxy{mb})

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.SendEvent(Exit{})
		p.SendApplicationEvent(Frame{})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SendEvent blocked after loop shutdown")
	}

	assert.NotPanics(t, func() {
		EventProxy{}.SendEvent(Bell{})
	})
}

func TestVoidListener(t *testing.T) {
	t.Parallel()

	var l EventListener = VoidListener{}
	called := false
	req := TextAreaSizeRequest{Formatter: SizeFormatterFunc(func(WindowSize) string {
		called = true
		return ""
	})}

	for _, ev := range []TerminalEvent{Bell{}, Wakeup{}, Exit{}, Title{Text: "x"}, req, nil} {
		assert.NotPanics(t, func() { l.SendEvent(ev) })
	}
	assert.False(t, called)
}

func TestCapabilitiesAreSubstitutable(t *testing.T) {
	t.Parallel()

	mb := mailbox.New[Envelope]()
	listeners := []EventListener{VoidListener{}, NewEventProxy(queueProxy{mb})}
	for _, l := range listeners {
		l.SendEvent(Wakeup{})
	}
	assert.Equal(t, 1, mb.Len())
}
