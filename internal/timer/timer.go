// Package timer provides the per-question countdown.
package timer

import (
	"context"
	"sync"
	"time"
)

// Timer counts down once per second from a fixed duration and invokes
// its callback exactly once when the remaining time reaches zero.
// A timer cannot be restarted; each question gets a fresh one.
type Timer struct {
	duration int
	onExpire func()

	mu        sync.Mutex
	remaining int
	fired     bool
	cancel    context.CancelFunc
}

// New creates a countdown of durationSeconds. Start must be called to
// begin ticking.
func New(durationSeconds int, onExpire func()) *Timer {
	return &Timer{
		duration:  durationSeconds,
		remaining: durationSeconds,
		onExpire:  onExpire,
	}
}

// Start begins the countdown. Cancelling ctx or calling Stop tears the
// timer down without firing the callback.
func (t *Timer) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()

	ticker := time.NewTicker(time.Second)
	go func() {
		defer ticker.Stop()
		t.run(ctx, ticker.C)
	}()
}

// Stop cancels the countdown. Safe to call more than once; a timer that
// already expired ignores it.
func (t *Timer) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Remaining returns the seconds left on the countdown.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// run consumes ticks until expiry or cancellation.
func (t *Timer) run(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			if t.tick() {
				return
			}
		}
	}
}

// tick decrements the countdown and reports whether it expired. The
// callback fires on the tick that reaches zero and never again.
func (t *Timer) tick() bool {
	t.mu.Lock()
	if t.fired || t.remaining <= 0 {
		t.mu.Unlock()
		return true
	}
	t.remaining--
	expired := t.remaining == 0
	if expired {
		t.fired = true
	}
	t.mu.Unlock()

	if expired {
		t.onExpire()
	}
	return expired
}

// StartCountdown runs a new timer and returns its stop function. It is
// the interview flow's TimerStarter.
func StartCountdown(durationSeconds int, onExpire func()) (stop func()) {
	t := New(durationSeconds, onExpire)
	t.Start(context.Background())
	return t.Stop
}
