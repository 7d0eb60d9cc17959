package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterBurstThenDeadline(t *testing.T) {
	l := NewLimiter("serper", LimiterConfig{
		Capacity:     3,
		RefillRPS:    0.001,
		WaitDeadline: 20 * time.Millisecond,
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Acquire(ctx))
	}

	// Bucket is empty and refill is effectively zero; the wait deadline
	// expires and the acquire classifies as rate_limited.
	err := l.Acquire(ctx)
	require.Error(t, err)
	assert.Equal(t, ClassRateLimited, ClassOf(err))
}

func TestLimiterCallerCancellation(t *testing.T) {
	// The refill rate must let the next token arrive inside the wait
	// deadline, otherwise Wait resolves as rate_limited up front and the
	// acquire never blocks. With the bucket drained the next token is
	// ~500ms out, so the 10ms cancel lands mid-wait.
	l := NewLimiter("hunter", LimiterConfig{
		Capacity:     1,
		RefillRPS:    2,
		WaitDeadline: time.Minute,
	})

	require.NoError(t, l.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := l.Acquire(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLimiterRestoreDrainsBucket(t *testing.T) {
	l := NewLimiter("serper", LimiterConfig{
		Capacity:     5,
		RefillRPS:    0.001,
		WaitDeadline: 10 * time.Millisecond,
	})

	l.Restore(1)
	assert.LessOrEqual(t, l.Tokens(), 1.5)

	// One acquire still succeeds, the next hits the deadline.
	require.NoError(t, l.Acquire(context.Background()))
	err := l.Acquire(context.Background())
	require.Error(t, err)
	assert.Equal(t, ClassRateLimited, ClassOf(err))
}

func TestLimiterRegistryOverrides(t *testing.T) {
	reg := NewLimiterRegistry(DefaultLimiterConfig(), map[string]LimiterConfig{
		"hunter": {Capacity: 1, RefillRPS: 0.001, WaitDeadline: 10 * time.Millisecond},
	})

	hunter := reg.Get("hunter")
	assert.Same(t, hunter, reg.Get("hunter"))

	require.NoError(t, hunter.Acquire(context.Background()))
	err := hunter.Acquire(context.Background())
	require.Error(t, err)
	assert.Equal(t, ClassRateLimited, ClassOf(err))

	snaps := reg.Snapshots()
	assert.Len(t, snaps, 1)
	assert.Equal(t, "hunter", snaps[0].ToolID)
}
