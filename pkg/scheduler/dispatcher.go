// Package scheduler is the in-process work dispatcher: named kinds with
// per-kind concurrency caps, FIFO order within a kind, and a bounded
// queue for backpressure.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Work kinds.
const (
	// KindAgentRuntime runs agent step loops.
	KindAgentRuntime = "agent_runtime"

	// KindToolDispatch runs tool invocations fanned out from a step.
	KindToolDispatch = "tool_dispatch"
)

// Submission errors.
var (
	// ErrQueueFull indicates the kind's queue is at its bound.
	ErrQueueFull = errors.New("scheduler queue full")

	// ErrUnknownKind indicates a kind with no configured lane.
	ErrUnknownKind = errors.New("unknown scheduler kind")

	// ErrStopped indicates the dispatcher is shutting down.
	ErrStopped = errors.New("scheduler stopped")
)

// Config holds per-kind concurrency caps and the shared queue bound.
type Config struct {
	// Kinds maps kind names to worker counts.
	Kinds map[string]int `yaml:"kinds"`

	// QueueBound is the per-kind pending-job limit.
	QueueBound int `yaml:"queue_bound"`
}

// DefaultConfig returns the built-in lanes.
func DefaultConfig() Config {
	return Config{
		Kinds: map[string]int{
			KindAgentRuntime: 16,
			KindToolDispatch: 64,
		},
		QueueBound: 256,
	}
}

// Job is a unit of scheduled work. The context passed in is the
// submission context; handlers must honor its cancellation.
type Job func(ctx context.Context)

type queuedJob struct {
	ctx context.Context
	fn  Job
}

type lane struct {
	kind    string
	workers int
	queue   chan queuedJob
}

// Dispatcher runs jobs on per-kind worker lanes.
type Dispatcher struct {
	lanes  map[string]*lane
	logger *slog.Logger

	mu      sync.Mutex
	started bool
	stopped bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher from config, filling unset values
// with defaults.
func NewDispatcher(cfg Config) *Dispatcher {
	def := DefaultConfig()
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = def.Kinds
	}
	if cfg.QueueBound <= 0 {
		cfg.QueueBound = def.QueueBound
	}

	lanes := make(map[string]*lane, len(cfg.Kinds))
	for kind, workers := range cfg.Kinds {
		if workers <= 0 {
			workers = 1
		}
		lanes[kind] = &lane{
			kind:    kind,
			workers: workers,
			queue:   make(chan queuedJob, cfg.QueueBound),
		}
	}
	return &Dispatcher{
		lanes:  lanes,
		logger: slog.Default().With("component", "scheduler"),
	}
}

// Start launches the worker lanes.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return fmt.Errorf("scheduler already started")
	}
	d.started = true

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for _, l := range d.lanes {
		for i := 0; i < l.workers; i++ {
			d.wg.Add(1)
			go d.worker(runCtx, l)
		}
		d.logger.Info("Scheduler lane started", "kind", l.kind, "workers", l.workers)
	}
	return nil
}

// Stop cancels the lanes and waits for in-flight jobs to return.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.started || d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	cancel := d.cancel
	d.mu.Unlock()

	cancel()
	d.wg.Wait()
	d.logger.Info("Scheduler stopped")
}

// Submit enqueues a job for its kind. Returns ErrQueueFull when the
// kind's queue is at its bound rather than blocking the caller.
func (d *Dispatcher) Submit(ctx context.Context, kind string, fn Job) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return ErrStopped
	}
	d.mu.Unlock()

	l, ok := d.lanes[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	select {
	case l.queue <- queuedJob{ctx: ctx, fn: fn}:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrQueueFull, kind)
	}
}

// Pending returns the queued-but-unstarted job count for a kind.
func (d *Dispatcher) Pending(kind string) int {
	l, ok := d.lanes[kind]
	if !ok {
		return 0
	}
	return len(l.queue)
}

func (d *Dispatcher) worker(ctx context.Context, l *lane) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job := <-l.queue:
			if job.ctx.Err() != nil {
				// Cancelled while queued; skip.
				continue
			}
			job.fn(job.ctx)
		}
	}
}
