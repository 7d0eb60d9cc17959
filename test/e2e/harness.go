// Package e2e exercises the orchestrator end to end against a real
// PostgreSQL schema: services, gates, budget, router, runtime, and the
// workflow engine wired exactly as in production, with static tool
// adapters standing in for the external providers.
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/agent"
	"github.com/outreachkit/prospector/pkg/agent/logics"
	"github.com/outreachkit/prospector/pkg/budget"
	"github.com/outreachkit/prospector/pkg/database"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/scheduler"
	"github.com/outreachkit/prospector/pkg/services"
	"github.com/outreachkit/prospector/pkg/tools"
	"github.com/outreachkit/prospector/pkg/workflow"
	testdb "github.com/outreachkit/prospector/test/database"
)

// Options tunes one test app. Zero values take test-friendly defaults.
type Options struct {
	// Registry replaces the default static-fixture registry.
	Registry *tools.Registry

	// Gates overrides the gate policy (TTL, poll interval).
	Gates gates.Config

	// Engine overrides engine tuning.
	Engine workflow.Config
}

// App is a fully wired orchestrator over a per-test database schema.
type App struct {
	DB *database.Client

	Runs        *services.RunService
	Tasks       *services.TaskService
	Invocations *services.InvocationService
	Checkpoints *services.CheckpointService
	Artifacts   *services.ArtifactService
	GateStore   *services.GateService
	Ledger      *services.BudgetService

	Gates    *gates.Service
	Governor *budget.Governor
	Router   *tools.Router
	Engine   *workflow.Engine
}

// NewApp boots the orchestrator against a fresh test schema. All
// background goroutines stop via t.Cleanup.
func NewApp(t *testing.T, opts Options) *App {
	t.Helper()
	return NewAppWithClient(t, testdb.NewTestClient(t), opts)
}

// NewAppWithClient boots the orchestrator over an existing database
// client. Multi-replica tests use this to run several independent apps
// against one shared schema.
func NewAppWithClient(t *testing.T, client *database.Client, opts Options) *App {
	t.Helper()

	a := &App{
		DB:          client,
		Runs:        services.NewRunService(client.Client),
		Tasks:       services.NewTaskService(client.Client),
		Invocations: services.NewInvocationService(client.Client),
		Checkpoints: services.NewCheckpointService(client.Client),
		Artifacts:   services.NewArtifactService(client.Client),
		GateStore:   services.NewGateService(client.Client),
		Ledger:      services.NewBudgetService(client.Client),
	}

	registry := opts.Registry
	if registry == nil {
		registry = StaticRegistry(t, nil)
	}

	breakers := resilience.NewBreakerRegistry(resilience.DefaultBreakerConfig(), nil)
	limiters := resilience.NewLimiterRegistry(resilience.LimiterConfig{
		Capacity:     100,
		RefillRPS:    1000,
		WaitDeadline: time.Second,
	}, nil)

	a.Governor = budget.NewGovernor(a.Ledger, nil)
	a.Router = tools.NewRouter(
		registry, breakers, limiters, a.Governor, a.Invocations,
		resilience.RetryPolicy{
			MaxAttempts: 2,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		},
		nil,
	)

	dispatcher := scheduler.NewDispatcher(scheduler.Config{
		Kinds: map[string]int{
			scheduler.KindAgentRuntime: 8,
			scheduler.KindToolDispatch: 32,
		},
	})
	require.NoError(t, dispatcher.Start(context.Background()))
	t.Cleanup(dispatcher.Stop)

	agents := agent.NewRegistry()
	require.NoError(t, logics.RegisterAll(agents))

	runtime := agent.NewRuntime(
		a.Tasks, a.Checkpoints, a.Artifacts, a.Router, dispatcher,
		agent.RuntimeConfig{
			Retry: resilience.RetryPolicy{
				MaxAttempts: 2,
				BaseDelay:   time.Millisecond,
				MaxDelay:    5 * time.Millisecond,
			},
			CancelGrace: time.Second,
		},
	)

	gateCfg := opts.Gates
	if gateCfg.DefaultTTL == 0 {
		gateCfg.DefaultTTL = time.Minute
	}
	if gateCfg.PollInterval == 0 {
		gateCfg.PollInterval = 25 * time.Millisecond
	}
	a.Gates = gates.NewService(a.GateStore, nil, gateCfg)

	engCfg := opts.Engine
	if engCfg.WaveConcurrency == 0 {
		engCfg.WaveConcurrency = 4
	}
	if engCfg.CompensationBackoff == 0 {
		engCfg.CompensationBackoff = 5 * time.Millisecond
	}
	a.Engine = workflow.NewEngine(
		a.Runs, a.Tasks, a.Artifacts,
		a.Gates, agents, runtime,
		a.Governor, a.Router,
		nil, nil,
		engCfg,
	)

	return a
}

// defaultRunConfig is a small-but-complete campaign configuration.
func defaultRunConfig() models.RunConfig {
	return models.RunConfig{
		Niche: "dental practice software",
		ICP: map[string]any{
			"industry":      "saas",
			"min_employees": 10,
			"max_employees": 500,
		},
		LeadTarget: 8,
	}
}

// SubmitRun persists a new pending run.
func (a *App) SubmitRun(t *testing.T, cfg models.RunConfig, capUSD float64) *ent.WorkflowRun {
	t.Helper()
	run, err := a.Runs.CreateRun(context.Background(), models.CreateRunRequest{
		Campaign:     "e2e-" + t.Name(),
		BudgetCapUSD: capUSD,
		Config:       cfg,
	})
	require.NoError(t, err)
	return run
}

// Execute drives the run to a terminal status and returns the reloaded row.
func (a *App) Execute(t *testing.T, ctx context.Context, run *ent.WorkflowRun) *ent.WorkflowRun {
	t.Helper()
	require.NoError(t, a.Engine.ExecuteRun(ctx, run))
	return a.Reload(t, run.ID)
}

// Reload fetches the current run row.
func (a *App) Reload(t *testing.T, runID string) *ent.WorkflowRun {
	t.Helper()
	run, err := a.Runs.GetRunByID(context.Background(), runID)
	require.NoError(t, err)
	return run
}

// WaitForStatus polls until the run reaches the wanted status.
func (a *App) WaitForStatus(t *testing.T, runID string, status workflowrun.Status, timeout time.Duration) *ent.WorkflowRun {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		run := a.Reload(t, runID)
		if run.Status == status {
			return run
		}
		if time.Now().After(deadline) {
			t.Fatalf("run %s never reached %s (last: %s)", runID, status, run.Status)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// WaitForPendingGate polls until the run has a pending gate and returns it.
func (a *App) WaitForPendingGate(t *testing.T, runID string, timeout time.Duration) *ent.HumanGate {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		gate, err := a.DB.HumanGate.Query().
			Where(humangate.RunID(runID), humangate.StatusEQ(humangate.StatusPending)).
			First(context.Background())
		if err == nil {
			return gate
		}
		require.True(t, ent.IsNotFound(err), "unexpected gate query error: %v", err)
		if time.Now().After(deadline) {
			t.Fatalf("run %s never opened a pending gate", runID)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// ApproveAllGates approves every pending gate as it appears until ctx is
// cancelled. Used by flows that exercise the manual decision path.
func (a *App) ApproveAllGates(ctx context.Context, approverID string) {
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			pending, err := a.GateStore.ListPendingGates(ctx, 0)
			if err != nil {
				continue
			}
			for _, gate := range pending {
				_, _ = a.Gates.Decide(ctx, gate.ID, models.GateDecisionRequest{
					Decision:   string(humangate.StatusApproved),
					ApproverID: approverID,
				})
			}
		}
	}()
}
