package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// TestToolCapDeniesSendingAndCompensates caps the sending provider so the
// campaign gets created but no email clears authorization, then checks
// the saga unwind: the run fails and the created campaign is archived
// through the compensation hook.
func TestToolCapDeniesSendingAndCompensates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx := context.Background()

	cfg := defaultRunConfig()
	cfg.AutoApprove = true
	// Enough for create_campaign (0.05) but not a single send on top.
	cfg.ToolCapsUSD = map[string]float64{ToolOutreachProvider: 0.06}
	run := app.SubmitRun(t, cfg, 10.0)

	done := app.Execute(t, ctx, run)
	require.Equal(t, workflowrun.StatusFailed, done.Status)

	// Campaign setup committed; sending sank the phase.
	setup, err := app.Tasks.GetLatestAttempt(ctx, run.ID, "campaign_setup")
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateCompleted, setup.State)
	sending, err := app.Tasks.GetLatestAttempt(ctx, run.ID, "sending")
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateFailed, sending.State)

	// Every send was denied at authorization, none reached the provider.
	denied, err := app.DB.ToolInvocation.Query().
		Where(
			toolinvocation.RunID(run.ID),
			toolinvocation.Op("send_email"),
			toolinvocation.OutcomeEQ(toolinvocation.OutcomeBudgetDenied),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.NotZero(t, denied)
	sent, err := app.DB.ToolInvocation.Query().
		Where(
			toolinvocation.RunID(run.ID),
			toolinvocation.Op("send_email"),
			toolinvocation.OutcomeEQ(toolinvocation.OutcomeSuccess),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)

	// The unwind archived the campaign through the free admin tool.
	archived, err := app.DB.ToolInvocation.Query().
		Where(
			toolinvocation.RunID(run.ID),
			toolinvocation.ToolID(ToolOutreachAdmin),
			toolinvocation.Op("archive_campaign"),
			toolinvocation.OutcomeEQ(toolinvocation.OutcomeSuccess),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, archived)

	// Spend on the capped tool never exceeded its cap.
	snap, err := app.Ledger.GetSnapshot(ctx, run.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, snap.ByTool[ToolOutreachProvider], 0.06)
}

// TestPhaseCapBlocksCampaignCreation caps phase-5 spend below the
// campaign creation estimate and checks the hard stop leaves nothing to
// unwind: no campaign, no compensation, run failed.
func TestPhaseCapBlocksCampaignCreation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx := context.Background()

	cfg := defaultRunConfig()
	cfg.AutoApprove = true
	cfg.PhaseCapsUSD = map[string]float64{"5": 0.04}
	run := app.SubmitRun(t, cfg, 10.0)

	done := app.Execute(t, ctx, run)
	require.Equal(t, workflowrun.StatusFailed, done.Status)
	assert.Equal(t, 5, done.CurrentPhase)

	denied, err := app.DB.ToolInvocation.Query().
		Where(
			toolinvocation.RunID(run.ID),
			toolinvocation.Op("create_campaign"),
			toolinvocation.OutcomeEQ(toolinvocation.OutcomeBudgetDenied),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.NotZero(t, denied)

	// No campaign was created, so no compensation ran.
	compensations, err := app.DB.ToolInvocation.Query().
		Where(
			toolinvocation.RunID(run.ID),
			toolinvocation.ToolID(ToolOutreachAdmin),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, compensations)

	snap, err := app.Ledger.GetSnapshot(ctx, run.ID)
	require.NoError(t, err)
	assert.Zero(t, snap.ByPhase["5"])
}
