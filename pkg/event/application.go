// ABOUTME: ApplicationEvent vocabulary delivered to the UI loop, plus the Envelope wrapper
// ABOUTME: TerminalEvents embed into ApplicationEvent through the total FromTerminal conversion

package event

import "fmt"

// ApplicationEvent is a notification delivered to the UI loop: either an
// embedded TerminalEvent (Rio) or a loop-native event. The set of
// implementations is closed.
type ApplicationEvent interface {
	fmt.Stringer
	// Kind returns the variant tag.
	Kind() string
	isApplicationEvent()
}

// ScaleFactorChanged reports a new display scale factor and the resulting
// physical window size.
type ScaleFactorChanged struct {
	Factor float64
	Size   PhysicalSize
}

// Rio wraps a TerminalEvent.
type Rio struct {
	Event TerminalEvent
}

// BlinkCursor toggles cursor visibility.
type BlinkCursor struct{}

// BlinkCursorTimeout stops cursor blinking after inactivity.
type BlinkCursorTimeout struct{}

// SearchNext moves to the next search match.
type SearchNext struct{}

// Frame requests a new frame.
type Frame struct{}

func (ScaleFactorChanged) isApplicationEvent() {}
func (Rio) isApplicationEvent()                {}
func (BlinkCursor) isApplicationEvent()        {}
func (BlinkCursorTimeout) isApplicationEvent() {}
func (SearchNext) isApplicationEvent()         {}
func (Frame) isApplicationEvent()              {}

func (ScaleFactorChanged) Kind() string { return "ScaleFactorChanged" }
func (Rio) Kind() string                { return "Rio" }
func (BlinkCursor) Kind() string        { return "BlinkCursor" }
func (BlinkCursorTimeout) Kind() string { return "BlinkCursorTimeout" }
func (SearchNext) Kind() string         { return "SearchNext" }
func (Frame) Kind() string              { return "Frame" }

func (e ScaleFactorChanged) String() string {
	return fmt.Sprintf("ScaleFactorChanged(%g, %s)", e.Factor, e.Size)
}

func (e Rio) String() string {
	if e.Event == nil {
		return "Rio(<nil>)"
	}
	return "Rio(" + e.Event.String() + ")"
}

func (BlinkCursor) String() string        { return "BlinkCursor" }
func (BlinkCursorTimeout) String() string { return "BlinkCursorTimeout" }
func (SearchNext) String() string         { return "SearchNext" }
func (Frame) String() string              { return "Frame" }

// FromTerminal embeds a TerminalEvent into an ApplicationEvent.
func FromTerminal(ev TerminalEvent) ApplicationEvent {
	return Rio{Event: ev}
}

// Envelope is the unit posted onto the UI loop's queue.
type Envelope struct {
	Payload ApplicationEvent
}

// NewEnvelope wraps payload for posting.
func NewEnvelope(payload ApplicationEvent) Envelope {
	return Envelope{Payload: payload}
}

// Terminal returns the embedded TerminalEvent when the payload is Rio.
func (e Envelope) Terminal() (TerminalEvent, bool) {
	r, ok := e.Payload.(Rio)
	if !ok || r.Event == nil {
		return nil, false
	}
	return r.Event, true
}

func (e Envelope) String() string {
	if e.Payload == nil {
		return "Envelope{<nil>}"
	}
	return "Envelope{" + e.Payload.String() + "}"
}
