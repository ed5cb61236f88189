// ABOUTME: Unbounded multi-producer, single-consumer FIFO queue between actors
// ABOUTME: Send never blocks; Close models the consumer going away

package mailbox

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Send after the consumer closed the mailbox,
// and by Recv once a closed mailbox has been drained.
var ErrClosed = errors.New("mailbox closed")

// Mailbox is an unbounded FIFO queue. Any number of goroutines may Send;
// exactly one goroutine should Recv.
type Mailbox[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	ready  chan struct{} // capacity 1; signalled on every Send and on Close
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{
		ready: make(chan struct{}, 1),
	}
}

// Send appends v to the queue. It never blocks.
func (m *Mailbox[T]) Send(v T) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.items = append(m.items, v)
	m.mu.Unlock()

	m.signal()
	return nil
}

// Recv blocks until an item is available, the mailbox is closed and
// drained, or ctx is done.
func (m *Mailbox[T]) Recv(ctx context.Context) (T, error) {
	for {
		if v, ok, closed := m.pop(); ok {
			return v, nil
		} else if closed {
			var zero T
			return zero, ErrClosed
		}

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-m.ready:
		}
	}
}

// TryRecv returns the next item without blocking.
func (m *Mailbox[T]) TryRecv() (T, bool) {
	v, ok, _ := m.pop()
	return v, ok
}

// Len returns the number of queued items.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Closed reports whether Close has been called.
func (m *Mailbox[T]) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Close rejects further sends. Items already queued can still be received.
// Close is idempotent.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.signal()
}

func (m *Mailbox[T]) pop() (v T, ok, closed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) == 0 {
		return v, false, m.closed
	}
	v = m.items[0]
	var zero T
	m.items[0] = zero
	m.items = m.items[1:]
	return v, true, m.closed
}

func (m *Mailbox[T]) signal() {
	select {
	case m.ready <- struct{}{}:
	default:
	}
}
