// ABOUTME: Notify/OnResize capabilities and the Notifier bound to a PTY writer channel
// ABOUTME: Sends are fire-and-forget: empty input is dropped, receiver-gone errors are swallowed

package event

import (
	"bytes"

	riolog "github.com/mauromedda/rio-go/internal/log"
)

// Notify accepts bytes that should be written to the PTY.
type Notify interface {
	Notify(b []byte)
}

// OnResize accepts a new window size for the PTY.
type OnResize interface {
	OnResize(size WindowSize)
}

// MsgSender is the send half of a channel carrying Msg values.
// *mailbox.Mailbox[Msg] satisfies it.
type MsgSender interface {
	Send(m Msg) error
}

// NotifyString sends a string through n.
func NotifyString(n Notify, s string) {
	if n == nil {
		return
	}
	n.Notify([]byte(s))
}

// Notifier forwards PTY-bound messages to the channel it was built with.
// It never holds the receive side and is safe for concurrent use as long
// as the sender is.
type Notifier struct {
	sender MsgSender
}

var (
	_ Notify   = (*Notifier)(nil)
	_ OnResize = (*Notifier)(nil)
)

// NewNotifier binds a Notifier to sender.
func NewNotifier(sender MsgSender) *Notifier {
	return &Notifier{sender: sender}
}

// Notify enqueues b as Input. An empty b is dropped: an empty write hangs
// the PTY reader downstream. b is copied, so callers may reuse the buffer.
func (n *Notifier) Notify(b []byte) {
	if len(b) == 0 {
		return
	}
	n.send(Input{Bytes: bytes.Clone(b)})
}

// OnResize enqueues a Resize.
func (n *Notifier) OnResize(size WindowSize) {
	n.send(Resize{Size: size})
}

// Shutdown asks the PTY actor to stop.
func (n *Notifier) Shutdown() {
	n.send(Shutdown{})
}

// send delivers m, dropping it when the PTY actor is gone: at that point the
// session is tearing down and nobody is left to report to.
func (n *Notifier) send(m Msg) {
	if n == nil || n.sender == nil {
		return
	}
	if err := n.sender.Send(m); err != nil {
		riolog.Debug("notifier: dropped %s: %v", m.Kind(), err)
	}
}
