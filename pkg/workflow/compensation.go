package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/outreachkit/prospector/pkg/agent"
)

func newTaskID() string { return uuid.NewString() }

// compensationEntry is one completed agent with external side effects,
// recorded in completion order as the run progresses.
type compensationEntry struct {
	AgentName string
	TaskID    string
	Phase     int
	Output    map[string]any
	Logic     agent.CompensatingLogic
}

// compensateAll unwinds the ledger in reverse completion order. Hooks
// are idempotent, so a crash mid-unwind re-runs already-reversed hooks
// harmlessly on the next claim. A hook that exhausts its attempts emits
// a critical alert and the unwind continues: later entries must not be
// stranded behind one stuck provider.
func (e *Engine) compensateAll(runID string, ledger []compensationEntry) {
	if len(ledger) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	e.logger.Info("Compensating run side effects", "run_id", runID, "entries", len(ledger))
	e.emit(ctx, runID, "compensation_started", map[string]any{"entries": len(ledger)})

	for i := len(ledger) - 1; i >= 0; i-- {
		entry := ledger[i]
		if err := e.compensateEntry(ctx, runID, entry); err != nil {
			msg := fmt.Sprintf("compensation hook %s failed after %d attempts: %v",
				entry.AgentName, e.cfg.MaxCompensationAttempts, err)
			e.logger.Error("Compensation hook exhausted",
				"run_id", runID,
				"agent", entry.AgentName,
				"phase", entry.Phase,
				"error", err)
			e.alert(ctx, runID, msg)
			e.emit(ctx, runID, "compensation_failed", map[string]any{
				"agent": entry.AgentName, "error": err.Error(),
			})
			continue
		}
		e.emit(ctx, runID, "compensation_applied", map[string]any{"agent": entry.AgentName})
	}
}

func (e *Engine) compensateEntry(ctx context.Context, runID string, entry compensationEntry) error {
	comp := agent.CompensationContext{
		RunID:  runID,
		TaskID: entry.TaskID,
		Phase:  entry.Phase,
		Router: e.router,
	}

	var lastErr error
	for attempt := 1; attempt <= e.cfg.MaxCompensationAttempts; attempt++ {
		lastErr = entry.Logic.Compensate(ctx, comp, entry.Output)
		if lastErr == nil {
			return nil
		}
		e.logger.Warn("Compensation hook attempt failed",
			"run_id", runID,
			"agent", entry.AgentName,
			"attempt", attempt,
			"error", lastErr)

		if attempt < e.cfg.MaxCompensationAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(e.cfg.CompensationBackoff):
			}
		}
	}
	return lastErr
}
