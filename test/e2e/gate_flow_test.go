package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/models"
)

// TestManualGateApproval runs the pipeline with a human reviewer standing
// in: every gate is decided through the decision path rather than policy.
func TestManualGateApproval(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	run := app.SubmitRun(t, defaultRunConfig(), 10.0)
	app.ApproveAllGates(ctx, "reviewer-1")

	done := app.Execute(t, ctx, run)
	require.Equal(t, workflowrun.StatusCompleted, done.Status)

	decided, err := app.DB.HumanGate.Query().
		Where(humangate.RunID(run.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, decided, 4)
	for _, gate := range decided {
		assert.Equal(t, humangate.StatusApproved, gate.Status)
		require.NotNil(t, gate.ApproverID)
		assert.Equal(t, "reviewer-1", *gate.ApproverID)
	}
}

// TestGateRejectionFailsRun rejects the first gate and checks the run
// terminates without starting any later phase.
func TestGateRejectionFailsRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx := context.Background()

	run := app.SubmitRun(t, defaultRunConfig(), 10.0)

	errCh := make(chan error, 1)
	go func() { errCh <- app.Engine.ExecuteRun(ctx, run) }()

	gate := app.WaitForPendingGate(t, run.ID, 30*time.Second)
	_, err := app.Gates.Decide(ctx, gate.ID, models.GateDecisionRequest{
		Decision:   string(humangate.StatusRejected),
		ApproverID: "reviewer-1",
		Notes:      "wrong niche",
	})
	require.NoError(t, err)

	require.NoError(t, <-errCh)
	done := app.Reload(t, run.ID)
	require.Equal(t, workflowrun.StatusFailed, done.Status)

	// Nothing past phase 1 ever ran.
	count, err := app.DB.AgentTask.Query().
		Where(agenttask.RunID(run.ID), agenttask.PhaseGT(1)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// TestGateRevisionRerunsFinalizer requests a revision at the first gate
// and checks the finalizer runs a second attempt carrying the reviewer's
// notes before the re-opened gate is approved.
func TestGateRevisionRerunsFinalizer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	run := app.SubmitRun(t, defaultRunConfig(), 10.0)

	// First pending gate gets a revision request; everything after is
	// approved.
	var mu sync.Mutex
	revised := false
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			pending, err := app.GateStore.ListPendingGates(ctx, 0)
			if err != nil {
				continue
			}
			for _, gate := range pending {
				mu.Lock()
				decision := string(humangate.StatusApproved)
				notes := ""
				if !revised {
					decision = string(humangate.StatusRevisionRequested)
					notes = "tighten the persona list"
					revised = true
				}
				mu.Unlock()
				_, _ = app.Gates.Decide(ctx, gate.ID, models.GateDecisionRequest{
					Decision:   decision,
					ApproverID: "reviewer-1",
					Notes:      notes,
				})
			}
		}
	}()

	done := app.Execute(t, ctx, run)
	require.Equal(t, workflowrun.StatusCompleted, done.Status)

	// The phase-1 finalizer ran twice; the second attempt carried notes.
	attempts, err := app.DB.AgentTask.Query().
		Where(agenttask.RunID(run.ID), agenttask.AgentName("research_export")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	brief, err := app.Artifacts.GetLatestArtifactByName(ctx, run.ID, "research_export_output")
	require.NoError(t, err)
	assert.Equal(t, true, brief.Payload["revised"])
	assert.Equal(t, "tighten the persona list", brief.Payload["revision_notes"])

	// Phase 1 opened two gates: the revision verdict and the approval.
	phaseGates, err := app.DB.HumanGate.Query().
		Where(humangate.RunID(run.ID), humangate.Phase(1)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, phaseGates, 2)
	statuses := map[humangate.Status]int{}
	for _, gate := range phaseGates {
		statuses[gate.Status]++
	}
	assert.Equal(t, 1, statuses[humangate.StatusRevisionRequested])
	assert.Equal(t, 1, statuses[humangate.StatusApproved])
}

// TestGateExpiryFailsRun lets the first gate pass its deadline and checks
// the sweeper resolves it as expired, terminating the run.
func TestGateExpiryFailsRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := gates.NewSweeper(app.Gates, 50*time.Millisecond)
	sweeper.Start(ctx)
	t.Cleanup(func() {
		cancel()
		sweeper.Wait()
	})

	cfg := defaultRunConfig()
	cfg.GateTTLSecs = 1
	run := app.SubmitRun(t, cfg, 10.0)

	done := app.Execute(t, ctx, run)
	require.Equal(t, workflowrun.StatusFailed, done.Status)

	gate, err := app.DB.HumanGate.Query().
		Where(humangate.RunID(run.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, humangate.StatusExpired, gate.Status)
}

// TestCancellationDuringGateWait cancels the run context while the engine
// is suspended on a gate and checks the run resolves as cancelled.
func TestCancellationDuringGateWait(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	run := app.SubmitRun(t, defaultRunConfig(), 10.0)

	errCh := make(chan error, 1)
	go func() { errCh <- app.Engine.ExecuteRun(ctx, run) }()

	app.WaitForPendingGate(t, run.ID, 30*time.Second)
	cancel()

	require.NoError(t, <-errCh)
	done := app.Reload(t, run.ID)
	require.Equal(t, workflowrun.StatusCancelled, done.Status)

	// The gate itself is untouched; only the waiting run resolved.
	gate, err := app.DB.HumanGate.Query().
		Where(humangate.RunID(run.ID)).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, humangate.StatusPending, gate.Status)
}
