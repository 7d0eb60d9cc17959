package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansReclaimed int
}

// runOrphanDetection periodically scans for orphaned runs. All pods run
// this independently; the scan only logs and counts, reclaiming happens
// through the claim query's stale-heartbeat arm so checkpoint resume is
// exactly the normal claim path.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.scanOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// scanOrphans surfaces runs whose owning pod stopped heartbeating.
func (p *WorkerPool) scanOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.WorkflowRun.Query().
		Where(
			workflowrun.StatusIn(activeStatuses...),
			workflowrun.LastHeartbeatAtNotNil(),
			workflowrun.LastHeartbeatAtLT(threshold),
			workflowrun.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansReclaimed += len(orphans)
	p.orphans.mu.Unlock()

	for _, run := range orphans {
		podID := "unknown"
		if run.PodID != nil {
			podID = *run.PodID
		}
		lastHeartbeat := "unknown"
		if run.LastHeartbeatAt != nil {
			lastHeartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
		}
		slog.Warn("Orphaned run awaiting reclaim",
			"run_id", run.ID,
			"old_pod_id", podID,
			"status", run.Status,
			"last_heartbeat", lastHeartbeat)
	}

	return nil
}

// ReleaseStartupOrphans backdates the heartbeat of runs this pod owned
// before a crash so any worker (this pod included) can reclaim them
// immediately instead of waiting out the orphan threshold. Called once
// during startup, before the pool begins processing.
func ReleaseStartupOrphans(ctx context.Context, client *ent.Client, podID string, threshold time.Duration) error {
	orphans, err := client.WorkflowRun.Query().
		Where(
			workflowrun.StatusIn(activeStatuses...),
			workflowrun.PodIDEQ(podID),
			workflowrun.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	staleMark := time.Now().Add(-2 * threshold)
	for _, run := range orphans {
		if err := run.Update().
			SetLastHeartbeatAt(staleMark).
			Exec(ctx); err != nil {
			slog.Error("Failed to release startup orphan",
				"run_id", run.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan released for reclaim",
			"run_id", run.ID,
			"status", run.Status,
			"current_phase", run.CurrentPhase)
	}

	return nil
}
