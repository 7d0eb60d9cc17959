package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/checkpoint"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/services"
)

// TestPipelineCompletesWithAutoApprove drives a full run through all five
// phases with gate auto-approval and checks the durable record it leaves:
// terminal status, task states, gate decisions, checkpoints, the
// invocation cache, and the spend ledger.
func TestPipelineCompletesWithAutoApprove(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx := context.Background()

	cfg := defaultRunConfig()
	cfg.AutoApprove = true
	cfg.Sending = &models.SendingConfig{DailyLimit: 5}
	run := app.SubmitRun(t, cfg, 10.0)

	done := app.Execute(t, ctx, run)
	require.Equal(t, workflowrun.StatusCompleted, done.Status)
	assert.Equal(t, 5, done.CurrentPhase)

	// Every pipeline agent completed exactly once.
	tasks, err := app.DB.AgentTask.Query().
		Where(agenttask.RunID(run.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 20)
	for _, task := range tasks {
		assert.Equal(t, agenttask.StateCompleted, task.State,
			"agent %s ended in %s", task.AgentName, task.State)
		assert.Equal(t, 1, task.Attempt)
	}

	// All four phase gates were resolved by the policy approver.
	gates, err := app.DB.HumanGate.Query().
		Where(humangate.RunID(run.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, gates, 4)
	for _, gate := range gates {
		assert.Equal(t, humangate.StatusApproved, gate.Status)
		require.NotNil(t, gate.ApproverID)
		assert.Equal(t, services.SystemApproverID, *gate.ApproverID)
	}

	// Checkpoint versions are dense and strictly increasing per task.
	for _, task := range tasks {
		cps, err := app.DB.Checkpoint.Query().
			Where(checkpoint.TaskID(task.ID)).
			Order(ent.Asc(checkpoint.FieldVersion)).
			All(ctx)
		require.NoError(t, err)
		for i, cp := range cps {
			assert.Equal(t, i+1, cp.Version,
				"task %s has a version gap", task.AgentName)
		}
	}

	// The durable cache admits at most one success row per logical call.
	type cacheKey struct{ tool, op, hash string }
	successes, err := app.DB.ToolInvocation.Query().
		Where(
			toolinvocation.RunID(run.ID),
			toolinvocation.OutcomeEQ(toolinvocation.OutcomeSuccess),
		).
		All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, successes)
	seen := make(map[cacheKey]int)
	for _, inv := range successes {
		seen[cacheKey{inv.ToolID, inv.Op, inv.ParamsHash}]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count,
			"duplicate success rows for %s/%s/%s", key.tool, key.op, key.hash)
	}

	// Reply monitoring polled with distinct params each round.
	polls := 0
	for _, inv := range successes {
		if inv.Op == "fetch_replies" {
			polls++
		}
	}
	assert.Equal(t, 5, polls)

	// The ledger recorded real spend under the cap, attributed per tool.
	snap, err := app.Ledger.GetSnapshot(ctx, run.ID)
	require.NoError(t, err)
	assert.Greater(t, snap.SpendUSD, 0.0)
	assert.LessOrEqual(t, snap.SpendUSD, 10.0)
	assert.Greater(t, snap.ByTool[ToolCopywriter], 0.0)
	assert.Greater(t, snap.ByTool[ToolOutreachProvider], 0.0)
	assert.Zero(t, snap.ByTool[ToolSearchFree])

	final := app.Reload(t, run.ID)
	assert.InDelta(t, snap.SpendUSD, final.SpendUsd, 0.0001)
}

// TestPipelineSuppressionAndTrimming checks the lead-acquisition funnel:
// the suppressed domain never reaches verification and the finalizer
// trims the list to the configured target.
func TestPipelineSuppressionAndTrimming(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx := context.Background()

	cfg := defaultRunConfig()
	cfg.AutoApprove = true
	run := app.SubmitRun(t, cfg, 10.0)

	done := app.Execute(t, ctx, run)
	require.Equal(t, workflowrun.StatusCompleted, done.Status)

	imported, err := app.Artifacts.GetLatestArtifactByName(ctx, run.ID, "import_finalizer_output")
	require.NoError(t, err)
	leads, ok := imported.Payload["leads"].([]any)
	require.True(t, ok, "import finalizer output has no lead list")
	assert.Len(t, leads, 8)
	for _, raw := range leads {
		lead, ok := raw.(map[string]any)
		require.True(t, ok)
		assert.NotEqual(t, suppressedDomain, lead["domain"])
	}

	report, err := app.Artifacts.GetLatestArtifactByName(ctx, run.ID, "analytics_output")
	require.NoError(t, err)
	assert.EqualValues(t, 8, report.Payload["sent_count"])
}

// TestPipelineResumesFromCurrentPhase re-executes a completed run and
// checks phase resumption: completed attempts are skipped, no duplicate
// tasks are created, and the run completes again idempotently.
func TestPipelineResumesFromCurrentPhase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	app := NewApp(t, Options{})
	ctx := context.Background()

	cfg := defaultRunConfig()
	cfg.AutoApprove = true
	run := app.SubmitRun(t, cfg, 10.0)

	done := app.Execute(t, ctx, run)
	require.Equal(t, workflowrun.StatusCompleted, done.Status)

	firstCount, err := app.DB.AgentTask.Query().
		Where(agenttask.RunID(run.ID)).
		Count(ctx)
	require.NoError(t, err)

	spendBefore := done.SpendUsd

	// A second claim of the same run replays from its recorded phase and
	// skips every completed attempt.
	again := app.Execute(t, ctx, done)
	require.Equal(t, workflowrun.StatusCompleted, again.Status)

	secondCount, err := app.DB.AgentTask.Query().
		Where(agenttask.RunID(run.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, firstCount, secondCount, "resume created duplicate attempts")
	assert.InDelta(t, spendBefore, again.SpendUsd, 0.0001, "resume re-charged cached work")
}
