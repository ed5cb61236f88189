// ABOUTME: Loop-native timers: cursor blink ticks and frame ticks
// ABOUTME: Each timer posts ApplicationEvents through an EventProxy until its context ends

package loop

import (
	"context"
	"time"

	"github.com/mauromedda/rio-go/pkg/event"
)

// StartCursorBlink posts BlinkCursor every interval. When timeout is
// positive it posts a single BlinkCursorTimeout after timeout elapses and
// stops ticking. The returned channel closes when the timer goroutine exits.
func StartCursorBlink(ctx context.Context, proxy event.EventProxy, interval, timeout time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if interval <= 0 {
		close(done)
		return done
	}

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var expire <-chan time.Time
		if timeout > 0 {
			t := time.NewTimer(timeout)
			defer t.Stop()
			expire = t.C
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				proxy.SendApplicationEvent(event.BlinkCursor{})
			case <-expire:
				proxy.SendApplicationEvent(event.BlinkCursorTimeout{})
				return
			}
		}
	}()
	return done
}

// StartFrameTicker posts Frame fps times per second.
func StartFrameTicker(ctx context.Context, proxy event.EventProxy, fps int) <-chan struct{} {
	done := make(chan struct{})
	if fps <= 0 {
		close(done)
		return done
	}

	go func() {
		defer close(done)

		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				proxy.SendApplicationEvent(event.Frame{})
			}
		}
	}()
	return done
}
