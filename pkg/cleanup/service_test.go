package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRetirer struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (f *fakeRetirer) SoftDeleteOldRuns(_ context.Context, days int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, days)
	return 2, f.err
}

func (f *fakeRetirer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakePruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (f *fakePruner) DeleteEventsBefore(_ context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return 1, f.err
}

func (f *fakePruner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestServiceRunsBothSweeps(t *testing.T) {
	runs := &fakeRetirer{}
	events := &fakePruner{}
	svc := NewService(Config{RunRetentionDays: 30, EventTTL: time.Hour, CleanupInterval: time.Hour}, runs, events)

	svc.runAll(context.Background())

	require.Equal(t, []int{30}, runs.calls)
	require.Equal(t, 1, events.callCount())

	// Cutoff is TTL in the past.
	events.mu.Lock()
	cutoff := events.cutoffs[0]
	events.mu.Unlock()
	assert.WithinDuration(t, time.Now().Add(-time.Hour), cutoff, 5*time.Second)
}

func TestServiceContinuesPastErrors(t *testing.T) {
	runs := &fakeRetirer{err: errors.New("db down")}
	events := &fakePruner{}
	svc := NewService(DefaultConfig(), runs, events)

	svc.runAll(context.Background())

	assert.Equal(t, 1, runs.callCount())
	assert.Equal(t, 1, events.callCount(), "event pruning runs even when run retirement fails")
}

func TestServiceStartStop(t *testing.T) {
	runs := &fakeRetirer{}
	events := &fakePruner{}
	svc := NewService(Config{CleanupInterval: time.Hour}, runs, events)

	svc.Start(context.Background())
	svc.Start(context.Background()) // second Start is a no-op

	// The loop sweeps once immediately on start.
	require.Eventually(t, func() bool {
		return runs.callCount() >= 1 && events.callCount() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	svc.Stop()
	svc.Stop() // second Stop is a no-op
}

func TestConfigDefaults(t *testing.T) {
	svc := NewService(Config{}, &fakeRetirer{}, &fakePruner{})
	assert.Equal(t, DefaultConfig().RunRetentionDays, svc.config.RunRetentionDays)
	assert.Equal(t, DefaultConfig().EventTTL, svc.config.EventTTL)
	assert.Equal(t, DefaultConfig().CleanupInterval, svc.config.CleanupInterval)
}
