package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickCountsDownAndFiresOnce(t *testing.T) {
	fired := 0
	tm := New(300, func() { fired++ })

	for i := 0; i < 299; i++ {
		expired := tm.tick()
		require.False(t, expired, "tick %d must not expire", i)
	}
	assert.Equal(t, 1, tm.Remaining())
	assert.Zero(t, fired, "callback must not fire before zero")

	assert.True(t, tm.tick())
	assert.Equal(t, 1, fired)
	assert.Zero(t, tm.Remaining())

	// Further ticks are no-ops.
	assert.True(t, tm.tick())
	assert.True(t, tm.tick())
	assert.Equal(t, 1, fired)
}

func TestRunConsumesTicksUntilExpiry(t *testing.T) {
	fired := make(chan struct{})
	tm := New(3, func() { close(fired) })

	ticks := make(chan time.Time)
	done := make(chan struct{})
	go func() {
		tm.run(context.Background(), ticks)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		ticks <- time.Time{}
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire after enough ticks")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after expiry")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	tm := New(10, func() { t.Error("callback fired after cancel") })

	ctx, cancel := context.WithCancel(context.Background())
	ticks := make(chan time.Time)
	done := make(chan struct{})
	go func() {
		tm.run(ctx, ticks)
		close(done)
	}()

	ticks <- time.Time{}
	ticks <- time.Time{}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancel")
	}
	assert.Equal(t, 8, tm.Remaining())
}

func TestStopPreventsCallback(t *testing.T) {
	tm := New(1, func() { t.Error("callback fired after Stop") })
	tm.Start(context.Background())
	tm.Stop()
	// Stop is idempotent.
	tm.Stop()

	// The first real tick would land after one second; by then the
	// countdown goroutine is gone.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, tm.Remaining())
}

func TestStartCountdownReturnsWorkingStop(t *testing.T) {
	stop := StartCountdown(60, func() { t.Error("callback fired unexpectedly") })
	require.NotNil(t, stop)
	stop()
}
