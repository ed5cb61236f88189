// ABOUTME: Typed subscriber bus used by the loop to fan envelopes out to handlers
// ABOUTME: Subscribe/unsubscribe with goroutine-safe delivery in subscription order

package loop

import (
	"slices"
	"sync"
)

// Handler is a callback for published values.
type Handler[T any] func(T)

type subscription[T any] struct {
	id int
	fn Handler[T]
}

// Bus delivers published values to its subscribers in subscription order.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   []subscription[T]
	nextID int
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers fn and returns a function that removes it.
func (b *Bus[T]) Subscribe(fn Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription[T]{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		b.subs = slices.DeleteFunc(b.subs, func(s subscription[T]) bool { return s.id == id })
		b.mu.Unlock()
	}
}

// Publish calls every subscriber synchronously.
func (b *Bus[T]) Publish(v T) {
	b.mu.RLock()
	// Snapshot so handlers may unsubscribe while being called.
	snapshot := make([]Handler[T], len(b.subs))
	for i, s := range b.subs {
		snapshot[i] = s.fn
	}
	b.mu.RUnlock()

	for _, fn := range snapshot {
		fn(v)
	}
}

// Count returns the number of subscribers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
