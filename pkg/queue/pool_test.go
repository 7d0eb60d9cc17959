package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/outreachkit/prospector/ent/workflowrun"
)

func TestCancelRunRegistry(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, DefaultConfig(), nil, nil)

	cancelled := false
	pool.RegisterRun("run-1", func() { cancelled = true })

	assert.False(t, pool.CancelRun("run-2"), "unknown run is not cancellable here")
	assert.True(t, pool.CancelRun("run-1"))
	assert.True(t, cancelled)

	pool.UnregisterRun("run-1")
	assert.False(t, pool.CancelRun("run-1"))
}

func TestPoolConfigDefaults(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, Config{}, nil, nil)

	assert.Equal(t, DefaultConfig().WorkerCount, pool.config.WorkerCount)
	assert.Equal(t, DefaultConfig().OrphanThreshold, pool.config.OrphanThreshold)
	assert.Greater(t, pool.config.RunTimeout, 24*time.Hour, "runs span human review windows")
}

func TestPollIntervalJitterBounds(t *testing.T) {
	w := &Worker{config: Config{
		PollInterval:       2 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 1500*time.Millisecond)
		assert.LessOrEqual(t, d, 2500*time.Millisecond)
	}

	w.config.PollIntervalJitter = 0
	assert.Equal(t, 2*time.Second, w.pollInterval())
}

func TestIsTerminalRunStatus(t *testing.T) {
	assert.True(t, isTerminalRunStatus(workflowrun.StatusCompleted))
	assert.True(t, isTerminalRunStatus(workflowrun.StatusFailed))
	assert.True(t, isTerminalRunStatus(workflowrun.StatusCancelled))
	assert.False(t, isTerminalRunStatus(workflowrun.StatusRunning))
	assert.False(t, isTerminalRunStatus(workflowrun.StatusAwaitingApproval))
	assert.False(t, isTerminalRunStatus(workflowrun.StatusCompensating))
}

func TestWorkerHealthTracking(t *testing.T) {
	w := NewWorker("pod-1-worker-0", "pod-1", nil, DefaultConfig(), nil, nil, nil)

	health := w.Health()
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Empty(t, health.CurrentRunID)

	w.setStatus(WorkerStatusWorking, "run-1")
	health = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), health.Status)
	assert.Equal(t, "run-1", health.CurrentRunID)
}

// Compile-time check that the pool satisfies the worker's registry
// dependency.
var _ RunRegistry = (*WorkerPool)(nil)

// Stop with no workers must not hang.
func TestStopWithoutStart(t *testing.T) {
	pool := NewWorkerPool("pod-1", nil, DefaultConfig(), nil, nil)
	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop hung with no workers")
	}
}
