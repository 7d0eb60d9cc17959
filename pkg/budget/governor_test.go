package budget

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/resilience"
)

// fakeLedger is an in-memory Ledger with the service's idempotency contract.
type fakeLedger struct {
	charged  map[string]bool // invocation id -> already applied
	snapshot *models.BudgetSnapshot
	entries  []float64
}

func newFakeLedger(snap *models.BudgetSnapshot) *fakeLedger {
	return &fakeLedger{charged: make(map[string]bool), snapshot: snap}
}

func (l *fakeLedger) Charge(ctx context.Context, runID, toolID string, phase int, amountUSD float64, invocationID string) (bool, error) {
	if invocationID != "" && l.charged[invocationID] {
		return false, nil
	}
	if invocationID != "" {
		l.charged[invocationID] = true
	}
	l.entries = append(l.entries, amountUSD)
	return true, nil
}

func (l *fakeLedger) GetSnapshot(ctx context.Context, runID string) (*models.BudgetSnapshot, error) {
	return l.snapshot, nil
}

type recordedWarning struct {
	capLabel string
	spentUSD float64
	capUSD   float64
}

type fakeNotifier struct {
	warnings []recordedWarning
}

func (n *fakeNotifier) NotifyBudgetWarning(ctx context.Context, runID, capLabel string, spentUSD, capUSD float64) {
	n.warnings = append(n.warnings, recordedWarning{capLabel: capLabel, spentUSD: spentUSD, capUSD: capUSD})
}

func emptySnapshot(runID string) *models.BudgetSnapshot {
	return &models.BudgetSnapshot{
		RunID:   runID,
		ByPhase: map[string]float64{},
		ByTool:  map[string]float64{},
	}
}

func hydratedGovernor(t *testing.T, ledger Ledger, notifier Notifier, runCapUSD float64, cfg *models.RunConfig) *Governor {
	t.Helper()
	g := NewGovernor(ledger, notifier)
	require.NoError(t, g.HydrateRun(context.Background(), "run-1", runCapUSD, cfg))
	return g
}

func TestAuthorizeDeniesRunCap(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger(emptySnapshot("run-1"))
	g := hydratedGovernor(t, ledger, nil, 10.0, nil)

	require.NoError(t, g.Authorize(ctx, "run-1", "serper", 1, 9.0))
	require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, 9.0, "inv-1"))

	err := g.Authorize(ctx, "run-1", "serper", 1, 2.0)
	require.Error(t, err)
	assert.Equal(t, resilience.ClassBudgetDenied, resilience.ClassOf(err))

	// A smaller estimate still fits.
	assert.NoError(t, g.Authorize(ctx, "run-1", "serper", 1, 0.5))
}

func TestAuthorizeDeniesPhaseAndToolCaps(t *testing.T) {
	ctx := context.Background()
	cfg := &models.RunConfig{
		PhaseCapsUSD: map[string]float64{"2": 1.0},
		ToolCapsUSD:  map[string]float64{"hunter": 0.5},
	}
	ledger := newFakeLedger(emptySnapshot("run-1"))
	g := hydratedGovernor(t, ledger, nil, 100.0, cfg)

	// Phase cap binds only in its phase.
	require.NoError(t, g.Authorize(ctx, "run-1", "serper", 1, 1.5))
	err := g.Authorize(ctx, "run-1", "serper", 2, 1.5)
	require.Error(t, err)
	assert.Equal(t, resilience.ClassBudgetDenied, resilience.ClassOf(err))

	// Tool cap binds regardless of phase.
	err = g.Authorize(ctx, "run-1", "hunter", 1, 0.6)
	require.Error(t, err)
	assert.Equal(t, resilience.ClassBudgetDenied, resilience.ClassOf(err))
	assert.NoError(t, g.Authorize(ctx, "run-1", "hunter", 1, 0.4))
}

func TestAuthorizeRequiresHydration(t *testing.T) {
	g := NewGovernor(newFakeLedger(emptySnapshot("run-1")), nil)

	err := g.Authorize(context.Background(), "run-unknown", "serper", 1, 0.1)
	require.Error(t, err)
	assert.Equal(t, resilience.ClassInternal, resilience.ClassOf(err))
}

func TestChargeIdempotentPerInvocation(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger(emptySnapshot("run-1"))
	g := hydratedGovernor(t, ledger, nil, 10.0, nil)

	require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, 4.0, "inv-1"))
	require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, 4.0, "inv-1"))

	// Replay changed neither the ledger nor the in-memory total: a charge
	// that would only exceed the cap if double-counted still authorizes.
	assert.Len(t, ledger.entries, 1)
	assert.NoError(t, g.Authorize(ctx, "run-1", "serper", 1, 5.0))
}

func TestWarningAt80PercentOncePerCap(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	ledger := newFakeLedger(emptySnapshot("run-1"))
	g := hydratedGovernor(t, ledger, notifier, 10.0, nil)

	require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, 7.0, "inv-1"))
	assert.Empty(t, notifier.warnings)

	require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, 1.5, "inv-2"))
	require.Len(t, notifier.warnings, 1)
	assert.Equal(t, "run", notifier.warnings[0].capLabel)
	assert.InDelta(t, 8.5, notifier.warnings[0].spentUSD, 0.0001)
	assert.InDelta(t, 10.0, notifier.warnings[0].capUSD, 0.0001)

	// Further spend past the threshold does not re-warn.
	require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, 1.0, "inv-3"))
	assert.Len(t, notifier.warnings, 1)
}

func TestWarningsPerCapKind(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	cfg := &models.RunConfig{
		PhaseCapsUSD: map[string]float64{"1": 1.0},
		ToolCapsUSD:  map[string]float64{"serper": 1.0},
	}
	ledger := newFakeLedger(emptySnapshot("run-1"))
	g := hydratedGovernor(t, ledger, notifier, 100.0, cfg)

	require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, 0.9, "inv-1"))

	// One spend crossed both the phase and the tool threshold.
	require.Len(t, notifier.warnings, 2)
	labels := []string{notifier.warnings[0].capLabel, notifier.warnings[1].capLabel}
	assert.Contains(t, labels, "phase:1")
	assert.Contains(t, labels, "tool:serper")
}

func TestHydrateFromLedgerSnapshot(t *testing.T) {
	ctx := context.Background()
	snap := &models.BudgetSnapshot{
		RunID:    "run-1",
		SpendUSD: 8.0,
		ByPhase:  map[string]float64{"1": 5.0, "2": 3.0},
		ByTool:   map[string]float64{"serper": 8.0},
	}
	ledger := newFakeLedger(snap)
	cfg := &models.RunConfig{PhaseCapsUSD: map[string]float64{"2": 4.0}}
	g := hydratedGovernor(t, ledger, nil, 10.0, cfg)

	// Prior spend from the ledger counts against every cap.
	err := g.Authorize(ctx, "run-1", "serper", 2, 1.5)
	require.Error(t, err)
	assert.Equal(t, resilience.ClassBudgetDenied, resilience.ClassOf(err))
	assert.NoError(t, g.Authorize(ctx, "run-1", "serper", 2, 0.5))
}

func TestAnnotateSnapshot(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	ledger := newFakeLedger(emptySnapshot("run-1"))
	g := hydratedGovernor(t, ledger, notifier, 1.0, nil)

	require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, 0.9, "inv-1"))
	require.Error(t, g.Authorize(ctx, "run-1", "serper", 1, 0.5))
	require.Error(t, g.Authorize(ctx, "run-1", "serper", 1, 0.5))

	snap := emptySnapshot("run-1")
	g.Annotate(snap)
	assert.True(t, snap.WarnedAt80)
	assert.True(t, snap.DeniedHard)
	assert.Equal(t, 2, snap.DenialCount)

	g.ReleaseRun("run-1")
	fresh := emptySnapshot("run-1")
	g.Annotate(fresh)
	assert.False(t, fresh.WarnedAt80)
}

func TestSpendNeverExceedsCap(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeLedger(emptySnapshot("run-1"))
	g := hydratedGovernor(t, ledger, nil, 5.0, nil)

	total := 0.0
	for i := 0; i < 20; i++ {
		cost := 0.7
		if err := g.Authorize(ctx, "run-1", "serper", 1, cost); err != nil {
			break
		}
		require.NoError(t, g.Charge(ctx, "run-1", "serper", 1, cost, fmt.Sprintf("inv-%d", i)))
		total += cost
	}
	assert.LessOrEqual(t, total, 5.0)
	assert.Greater(t, total, 4.0)
}
