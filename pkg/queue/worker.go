package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// activeStatuses are the non-terminal claimed statuses. Runs in one of
// them with a stale heartbeat are orphans and become claimable again.
var activeStatuses = []workflowrun.Status{
	workflowrun.StatusRunning,
	workflowrun.StatusAwaitingApproval,
	workflowrun.StatusCompensating,
}

// RunNotifier pushes run lifecycle notifications to the operator
// channel. A nil notifier disables them.
type RunNotifier interface {
	NotifyRunStarted(ctx context.Context, run *ent.WorkflowRun)
	NotifyRunTerminal(ctx context.Context, run *ent.WorkflowRun)
}

// RunRegistry is the subset of WorkerPool used by Worker for run
// registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// Worker is a single queue worker that claims and executes runs.
// One worker owns one run at a time for its whole lifetime, gate waits
// included.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   Config
	executor RunExecutor
	pool     RunRegistry
	notifier RunNotifier
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker. notifier may be nil.
func NewWorker(id, podID string, client *ent.Client, cfg Config, executor RunExecutor, pool RunRegistry, notifier RunNotifier) *Worker {
	return &Worker{
		id:       id,
		podID:    podID,
		client:   client,
		config:   cfg,
		executor: executor,
		pool:     pool,
		notifier: notifier,
		stopCh:   make(chan struct{}),
		status:   WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort global capacity check; racy with concurrent workers
	// but bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.WorkflowRun.Query().
		Where(workflowrun.StatusIn(activeStatuses...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed", "status", run.Status, "current_phase", run.CurrentPhase)

	if w.notifier != nil && run.Status == workflowrun.StatusPending {
		w.notifier.NotifyRunStarted(ctx, run)
	}

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	go w.runHeartbeat(heartbeatCtx, run.ID)

	execErr := w.executor.ExecuteRun(runCtx, run)
	cancelHeartbeat()

	if execErr != nil {
		// Infrastructure failure: the run stays non-terminal and the
		// stale heartbeat makes it claimable for resume elsewhere.
		log.Error("Run execution aborted", "error", execErr)
		return execErr
	}

	// The engine wrote the terminal status; reload for the notification.
	final, err := w.client.WorkflowRun.Get(context.Background(), run.ID)
	if err == nil && w.notifier != nil && isTerminalRunStatus(final.Status) {
		w.notifier.NotifyRunTerminal(context.Background(), final)
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete")
	return nil
}

// claimNextRun atomically claims the next claimable run using FOR UPDATE
// SKIP LOCKED: pending runs first-come-first-served, plus orphaned
// active runs whose owner stopped heartbeating.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.WorkflowRun, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	staleBefore := time.Now().Add(-w.config.OrphanThreshold)
	run, err := tx.WorkflowRun.Query().
		Where(
			workflowrun.DeletedAtIsNil(),
			workflowrun.Or(
				workflowrun.StatusEQ(workflowrun.StatusPending),
				workflowrun.And(
					workflowrun.StatusIn(activeStatuses...),
					workflowrun.LastHeartbeatAtNotNil(),
					workflowrun.LastHeartbeatAtLT(staleBefore),
				),
			),
		).
		Order(ent.Asc(workflowrun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query claimable run: %w", err)
	}

	run, err = run.Update().
		SetPodID(w.podID).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return run, nil
}

// runHeartbeat periodically refreshes the liveness marker other pods use
// for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.WorkflowRun.UpdateOneID(runID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}

func isTerminalRunStatus(status workflowrun.Status) bool {
	switch status {
	case workflowrun.StatusCompleted, workflowrun.StatusFailed, workflowrun.StatusCancelled:
		return true
	}
	return false
}
