package resilience

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests advance breaker time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestBreaker(cfg BreakerConfig) (*Breaker, *fakeClock) {
	clock := newFakeClock()
	b := NewBreaker("serper", cfg)
	b.now = clock.Now
	return b, clock
}

func TestBreakerTripAndRecovery(t *testing.T) {
	b, clock := newTestBreaker(BreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Window:           time.Minute,
		Timeout:          time.Second,
	})

	// Three consecutive monitored failures open the breaker.
	for i := 0; i < 3; i++ {
		require.NoError(t, b.Allow())
		b.RecordFailure()
	}
	assert.Equal(t, BreakerOpen, b.State())

	// Rejected while the timeout has not elapsed.
	err := b.Allow()
	require.Error(t, err)
	assert.Equal(t, ClassCircuitOpen, ClassOf(err))
	assert.True(t, errors.Is(err, ErrBreakerOpen))

	// After the timeout one probe is admitted.
	clock.Advance(time.Second)
	require.NoError(t, b.Allow())
	assert.Equal(t, BreakerHalfOpen, b.State())

	// Concurrent second call is rejected while the probe is in flight.
	err = b.Allow()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProbeInFlight))

	// Two consecutive probe successes close the breaker.
	b.RecordSuccess()
	assert.Equal(t, BreakerHalfOpen, b.State())
	require.NoError(t, b.Allow())
	b.RecordSuccess()
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b, clock := newTestBreaker(BreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Window:           time.Minute,
		Timeout:          time.Second,
	})

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.Equal(t, BreakerOpen, b.State())

	clock.Advance(time.Second)
	require.NoError(t, b.Allow())
	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())

	// The reopen restarts the timeout clock.
	err := b.Allow()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBreakerOpen))
}

func TestBreakerSlidingWindowExpiresFailures(t *testing.T) {
	b, clock := newTestBreaker(BreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		Window:           10 * time.Second,
		Timeout:          time.Second,
	})

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.NoError(t, b.Allow())
	b.RecordFailure()

	// Old failures age out of the window before the third arrives.
	clock.Advance(11 * time.Second)
	require.NoError(t, b.Allow())
	b.RecordFailure()
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreakerSnapshotRestore(t *testing.T) {
	b, _ := newTestBreaker(BreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Window:           time.Minute,
		Timeout:          time.Minute,
	})

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.Equal(t, BreakerOpen, b.State())

	snap := b.Snapshot()
	assert.Equal(t, "serper", snap.ToolID)
	assert.Equal(t, BreakerOpen, snap.State)
	require.NotNil(t, snap.OpenedAt)

	restored, _ := newTestBreaker(BreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Window:           time.Minute,
		Timeout:          time.Minute,
	})
	restored.Restore(snap)
	assert.Equal(t, BreakerOpen, restored.State())

	err := restored.Allow()
	require.Error(t, err)
	assert.Equal(t, ClassCircuitOpen, ClassOf(err))
}

func TestBreakerRegistryPerToolConfig(t *testing.T) {
	reg := NewBreakerRegistry(DefaultBreakerConfig(), map[string]BreakerConfig{
		"hunter": {FailureThreshold: 1, SuccessThreshold: 1, Window: time.Minute, Timeout: time.Minute},
	})

	hunter := reg.Get("hunter")
	assert.Same(t, hunter, reg.Get("hunter"))

	require.NoError(t, hunter.Allow())
	hunter.RecordFailure()
	assert.Equal(t, BreakerOpen, hunter.State())

	// Default-config breaker is unaffected.
	assert.Equal(t, BreakerClosed, reg.Get("serper").State())

	snaps := reg.Snapshots()
	assert.Len(t, snaps, 2)
}
