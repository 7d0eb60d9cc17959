package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherRunsJobs(t *testing.T) {
	d := NewDispatcher(Config{Kinds: map[string]int{"test": 4}, QueueBound: 16})
	require.NoError(t, d.Start(context.Background()))
	defer d.Stop()

	var done sync.WaitGroup
	var count atomic.Int64
	for i := 0; i < 10; i++ {
		done.Add(1)
		require.NoError(t, d.Submit(context.Background(), "test", func(ctx context.Context) {
			defer done.Done()
			count.Add(1)
		}))
	}
	done.Wait()
	assert.Equal(t, int64(10), count.Load())
}

func TestDispatcherEnforcesConcurrencyCap(t *testing.T) {
	d := NewDispatcher(Config{Kinds: map[string]int{"test": 2}, QueueBound: 16})
	require.NoError(t, d.Start(context.Background()))
	defer d.Stop()

	var inFlight, peak atomic.Int64
	var done sync.WaitGroup
	for i := 0; i < 8; i++ {
		done.Add(1)
		require.NoError(t, d.Submit(context.Background(), "test", func(ctx context.Context) {
			defer done.Done()
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
		}))
	}
	done.Wait()
	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestDispatcherQueueBound(t *testing.T) {
	d := NewDispatcher(Config{Kinds: map[string]int{"test": 1}, QueueBound: 2})
	require.NoError(t, d.Start(context.Background()))
	defer d.Stop()

	block := make(chan struct{})
	var done sync.WaitGroup
	done.Add(1)
	require.NoError(t, d.Submit(context.Background(), "test", func(ctx context.Context) {
		defer done.Done()
		<-block
	}))
	// Give the worker time to pick up the blocking job.
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, d.Submit(context.Background(), "test", func(ctx context.Context) {}))
	require.NoError(t, d.Submit(context.Background(), "test", func(ctx context.Context) {}))

	err := d.Submit(context.Background(), "test", func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(block)
	done.Wait()
}

func TestDispatcherUnknownKind(t *testing.T) {
	d := NewDispatcher(DefaultConfig())
	require.NoError(t, d.Start(context.Background()))
	defer d.Stop()

	err := d.Submit(context.Background(), "bogus", func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDispatcherSkipsCancelledQueuedJobs(t *testing.T) {
	d := NewDispatcher(Config{Kinds: map[string]int{"test": 1}, QueueBound: 8})
	require.NoError(t, d.Start(context.Background()))
	defer d.Stop()

	block := make(chan struct{})
	var blockDone sync.WaitGroup
	blockDone.Add(1)
	require.NoError(t, d.Submit(context.Background(), "test", func(ctx context.Context) {
		defer blockDone.Done()
		<-block
	}))
	time.Sleep(10 * time.Millisecond)

	cancelledCtx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	require.NoError(t, d.Submit(cancelledCtx, "test", func(ctx context.Context) {
		ran.Store(true)
	}))
	cancel()

	var sentinel sync.WaitGroup
	sentinel.Add(1)
	require.NoError(t, d.Submit(context.Background(), "test", func(ctx context.Context) {
		sentinel.Done()
	}))

	close(block)
	sentinel.Wait()
	blockDone.Wait()
	assert.False(t, ran.Load())
}

func TestDispatcherStopRejectsSubmissions(t *testing.T) {
	d := NewDispatcher(DefaultConfig())
	require.NoError(t, d.Start(context.Background()))
	d.Stop()

	err := d.Submit(context.Background(), KindAgentRuntime, func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestDefaultConfigLanes(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 16, cfg.Kinds[KindAgentRuntime])
	assert.Equal(t, 64, cfg.Kinds[KindToolDispatch])
}
