// Package budget enforces run, phase, and tool spend caps around every
// tool invocation. The governor keeps in-memory per-run totals for fast
// synchronous authorization and writes actual charges through the
// append-only ledger, so totals survive restarts via rehydration.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/resilience"
)

// Ledger is the durable spend store the governor writes through.
// Implemented by services.BudgetService.
type Ledger interface {
	Charge(ctx context.Context, runID, toolID string, phase int, amountUSD float64, invocationID string) (bool, error)
	GetSnapshot(ctx context.Context, runID string) (*models.BudgetSnapshot, error)
}

// Notifier receives 80% cap warnings. A nil Notifier disables delivery.
type Notifier interface {
	NotifyBudgetWarning(ctx context.Context, runID, capLabel string, spentUSD, capUSD float64)
}

// warnFraction is the spend fraction at which a cap warning fires.
const warnFraction = 0.8

// runBudget is the in-memory spend state for one hydrated run.
type runBudget struct {
	runCapUSD    float64
	phaseCapsUSD map[int]float64
	toolCapsUSD  map[string]float64

	totalUSD   float64
	byPhaseUSD map[int]float64
	byToolUSD  map[string]float64

	warned      map[string]bool // cap label -> warning already sent
	denialCount int
}

// Governor authorizes estimated spend before dispatch and records actual
// spend after. Caps of zero are treated as unset.
type Governor struct {
	ledger   Ledger
	notifier Notifier
	logger   *slog.Logger

	mu   sync.Mutex
	runs map[string]*runBudget
}

// NewGovernor creates a governor writing through the given ledger.
func NewGovernor(ledger Ledger, notifier Notifier) *Governor {
	return &Governor{
		ledger:   ledger,
		notifier: notifier,
		logger:   slog.Default().With("component", "budget_governor"),
		runs:     make(map[string]*runBudget),
	}
}

// HydrateRun loads a run's caps and ledger-derived totals into memory.
// Called at run claim; safe to call again on resume, the ledger wins.
func (g *Governor) HydrateRun(ctx context.Context, runID string, runCapUSD float64, cfg *models.RunConfig) error {
	snap, err := g.ledger.GetSnapshot(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to hydrate budget for run %s: %w", runID, err)
	}

	rb := &runBudget{
		runCapUSD:    runCapUSD,
		phaseCapsUSD: make(map[int]float64),
		toolCapsUSD:  make(map[string]float64),
		totalUSD:     snap.SpendUSD,
		byPhaseUSD:   make(map[int]float64, len(snap.ByPhase)),
		byToolUSD:    make(map[string]float64, len(snap.ByTool)),
		warned:       make(map[string]bool),
	}
	if cfg != nil {
		for key, cap := range cfg.PhaseCapsUSD {
			phase, err := strconv.Atoi(key)
			if err != nil {
				return fmt.Errorf("invalid phase cap key %q for run %s: %w", key, runID, err)
			}
			rb.phaseCapsUSD[phase] = cap
		}
		for toolID, cap := range cfg.ToolCapsUSD {
			rb.toolCapsUSD[toolID] = cap
		}
	}
	for key, sum := range snap.ByPhase {
		phase, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("invalid ledger phase key %q for run %s: %w", key, runID, err)
		}
		rb.byPhaseUSD[phase] = sum
	}
	for toolID, sum := range snap.ByTool {
		rb.byToolUSD[toolID] = sum
	}

	g.mu.Lock()
	g.runs[runID] = rb
	g.mu.Unlock()

	g.logger.Info("Budget hydrated",
		"run_id", runID,
		"cap_usd", runCapUSD,
		"spend_usd", rb.totalUSD,
		"ledger_entries", snap.EntryCount)
	return nil
}

// ReleaseRun drops a run's in-memory state after it reaches a terminal
// status. The ledger remains the durable record.
func (g *Governor) ReleaseRun(runID string) {
	g.mu.Lock()
	delete(g.runs, runID)
	g.mu.Unlock()
}

// Authorize checks whether an estimated charge fits under every cap.
// Returns nil to allow, or a budget_denied error naming the exceeded cap.
func (g *Governor) Authorize(ctx context.Context, runID, toolID string, phase int, estimatedUSD float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rb, ok := g.runs[runID]
	if !ok {
		return resilience.Internal(fmt.Errorf("budget not hydrated for run %s", runID))
	}

	deny := func(label string, spent, cap float64) error {
		rb.denialCount++
		g.logger.Warn("Budget authorization denied",
			"run_id", runID,
			"tool_id", toolID,
			"phase", phase,
			"cap", label,
			"spent_usd", spent,
			"cap_usd", cap,
			"estimated_usd", estimatedUSD)
		return resilience.BudgetDenied(fmt.Errorf(
			"%s cap exceeded for run %s: spent %.4f + estimated %.4f > cap %.4f",
			label, runID, spent, estimatedUSD, cap))
	}

	if rb.runCapUSD > 0 && rb.totalUSD+estimatedUSD > rb.runCapUSD {
		return deny("run", rb.totalUSD, rb.runCapUSD)
	}
	if cap, ok := rb.phaseCapsUSD[phase]; ok && cap > 0 && rb.byPhaseUSD[phase]+estimatedUSD > cap {
		return deny(phaseCapLabel(phase), rb.byPhaseUSD[phase], cap)
	}
	if cap, ok := rb.toolCapsUSD[toolID]; ok && cap > 0 && rb.byToolUSD[toolID]+estimatedUSD > cap {
		return deny(toolCapLabel(toolID), rb.byToolUSD[toolID], cap)
	}
	return nil
}

// Charge records an actual billed amount: ledger append plus in-memory
// totals, then 80% warnings for any cap newly crossed. Idempotent per
// invocation id; a replayed charge leaves totals untouched.
func (g *Governor) Charge(ctx context.Context, runID, toolID string, phase int, actualUSD float64, invocationID string) error {
	if actualUSD <= 0 {
		return nil
	}

	applied, err := g.ledger.Charge(ctx, runID, toolID, phase, actualUSD, invocationID)
	if err != nil {
		return fmt.Errorf("failed to charge run %s: %w", runID, err)
	}
	if !applied {
		return nil
	}

	g.mu.Lock()
	rb, ok := g.runs[runID]
	if !ok {
		g.mu.Unlock()
		g.logger.Warn("Charge recorded for run without hydrated budget", "run_id", runID)
		return nil
	}
	rb.totalUSD += actualUSD
	rb.byPhaseUSD[phase] += actualUSD
	rb.byToolUSD[toolID] += actualUSD
	warnings := rb.pendingWarnings(phase, toolID)
	g.mu.Unlock()

	for _, w := range warnings {
		g.logger.Warn("Budget cap warning",
			"run_id", runID,
			"cap", w.label,
			"spent_usd", w.spentUSD,
			"cap_usd", w.capUSD)
		if g.notifier != nil {
			g.notifier.NotifyBudgetWarning(ctx, runID, w.label, w.spentUSD, w.capUSD)
		}
	}
	return nil
}

// Annotate fills a ledger snapshot's memory-only fields when the run is
// hydrated on this pod.
func (g *Governor) Annotate(snap *models.BudgetSnapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rb, ok := g.runs[snap.RunID]
	if !ok {
		return
	}
	snap.WarnedAt80 = len(rb.warned) > 0
	snap.DeniedHard = rb.denialCount > 0
	snap.DenialCount = rb.denialCount
}

type capWarning struct {
	label    string
	spentUSD float64
	capUSD   float64
}

// pendingWarnings returns caps newly past the warning fraction, marking
// each as warned so it fires once per run. Caller holds the lock.
func (rb *runBudget) pendingWarnings(phase int, toolID string) []capWarning {
	var warnings []capWarning

	check := func(label string, spent, cap float64) {
		if cap <= 0 || rb.warned[label] || spent < cap*warnFraction {
			return
		}
		rb.warned[label] = true
		warnings = append(warnings, capWarning{label: label, spentUSD: spent, capUSD: cap})
	}

	check("run", rb.totalUSD, rb.runCapUSD)
	check(phaseCapLabel(phase), rb.byPhaseUSD[phase], rb.phaseCapsUSD[phase])
	check(toolCapLabel(toolID), rb.byToolUSD[toolID], rb.toolCapsUSD[toolID])
	return warnings
}

func phaseCapLabel(phase int) string {
	return "phase:" + strconv.Itoa(phase)
}

func toolCapLabel(toolID string) string {
	return "tool:" + toolID
}
