// ABOUTME: EventListener capability with the loop-backed EventProxy and the no-op VoidListener
// ABOUTME: EventProxy wraps TerminalEvents into Envelopes and posts them without blocking

package event

import riolog "github.com/mauromedda/rio-go/internal/log"

// EventListener accepts TerminalEvents raised by terminal logic.
type EventListener interface {
	SendEvent(ev TerminalEvent)
}

// LoopProxy is the injection handle of a UI event loop. PostEnvelope must
// not block; it returns an error once the loop has terminated.
type LoopProxy interface {
	PostEnvelope(env Envelope) error
}

// VoidListener discards every event. Use it where no UI is attached.
type VoidListener struct{}

var _ EventListener = VoidListener{}

// SendEvent does nothing.
func (VoidListener) SendEvent(TerminalEvent) {}

// EventProxy forwards events to a UI loop. It holds only the loop handle
// and can be copied freely.
type EventProxy struct {
	proxy LoopProxy
}

var _ EventListener = EventProxy{}

// NewEventProxy binds an EventProxy to the loop handle p.
func NewEventProxy(p LoopProxy) EventProxy {
	return EventProxy{proxy: p}
}

// SendEvent posts Rio(ev) to the loop.
func (p EventProxy) SendEvent(ev TerminalEvent) {
	p.SendApplicationEvent(FromTerminal(ev))
}

// SendApplicationEvent posts a loop-native event.
func (p EventProxy) SendApplicationEvent(ev ApplicationEvent) {
	if p.proxy == nil {
		return
	}
	if err := p.proxy.PostEnvelope(NewEnvelope(ev)); err != nil {
		riolog.Debug("event proxy: dropped %s: %v", ev, err)
	}
}
