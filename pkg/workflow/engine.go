package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/agent"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/services"
)

// RunStore is the run persistence surface. Implemented by
// services.RunService.
type RunStore interface {
	GetRunByID(ctx context.Context, runID string) (*ent.WorkflowRun, error)
	UpdateRunStatus(ctx context.Context, runID string, status workflowrun.Status, errorMsg string) error
	SetCurrentPhase(ctx context.Context, runID string, phase int) error
	GetRunConfig(run *ent.WorkflowRun) (models.RunConfig, error)
}

// TaskStore creates and looks up agent task attempts. Implemented by
// services.TaskService.
type TaskStore interface {
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.AgentTask, error)
	GetLatestAttempt(ctx context.Context, runID, agentName string) (*ent.AgentTask, error)
}

// ArtifactStore reads agent outputs for phase input assembly.
// Implemented by services.ArtifactService.
type ArtifactStore interface {
	GetArtifactsByRun(ctx context.Context, runID string) ([]*ent.Artifact, error)
}

// GateController opens gates and suspends until their decision.
// Implemented by gates.Service.
type GateController interface {
	Open(ctx context.Context, req gates.OpenRequest) (*ent.HumanGate, error)
	Await(ctx context.Context, gateID string) (*ent.HumanGate, error)
}

// TaskRuntime executes one agent task to a terminal state. Implemented
// by agent.Runtime.
type TaskRuntime interface {
	ExecuteTask(ctx context.Context, task *ent.AgentTask, logic agent.AgentLogic, input map[string]any) (*agent.TaskResult, error)
}

// BudgetController scopes the budget governor to a run's lifetime.
// Implemented by budget.Governor.
type BudgetController interface {
	HydrateRun(ctx context.Context, runID string, capUSD float64, cfg *models.RunConfig) error
	ReleaseRun(runID string)
}

// Emitter records run progress events. A nil emitter disables them.
type Emitter interface {
	EmitRunEvent(ctx context.Context, runID, event string, payload map[string]any)
}

// Alerter delivers critical alerts that need a human. A nil alerter
// degrades to logging.
type Alerter interface {
	NotifyCritical(ctx context.Context, runID, message string)
}

// Config tunes the engine.
type Config struct {
	// WaveConcurrency caps concurrent agents inside one wave.
	WaveConcurrency int `yaml:"wave_concurrency"`

	// MaxCompensationAttempts bounds retries of one compensation hook.
	MaxCompensationAttempts int `yaml:"max_compensation_attempts"`

	// CompensationBackoff separates hook retries.
	CompensationBackoff time.Duration `yaml:"compensation_backoff"`
}

// DefaultConfig returns production engine tuning.
func DefaultConfig() Config {
	return Config{
		WaveConcurrency:         4,
		MaxCompensationAttempts: 3,
		CompensationBackoff:     2 * time.Second,
	}
}

// Engine executes one claimed run at a time through the pipeline.
type Engine struct {
	runs      RunStore
	tasks     TaskStore
	artifacts ArtifactStore
	gates     GateController
	registry  *agent.Registry
	runtime   TaskRuntime
	budget    BudgetController
	router    agent.ToolRouter
	emitter   Emitter
	alerter   Alerter
	cfg       Config
	logger    *slog.Logger
}

// NewEngine wires an engine from its collaborators.
func NewEngine(
	runs RunStore,
	tasks TaskStore,
	artifacts ArtifactStore,
	gateCtl GateController,
	registry *agent.Registry,
	runtime TaskRuntime,
	budgetCtl BudgetController,
	router agent.ToolRouter,
	emitter Emitter,
	alerter Alerter,
	cfg Config,
) *Engine {
	def := DefaultConfig()
	if cfg.WaveConcurrency <= 0 {
		cfg.WaveConcurrency = def.WaveConcurrency
	}
	if cfg.MaxCompensationAttempts <= 0 {
		cfg.MaxCompensationAttempts = def.MaxCompensationAttempts
	}
	if cfg.CompensationBackoff <= 0 {
		cfg.CompensationBackoff = def.CompensationBackoff
	}
	return &Engine{
		runs:      runs,
		tasks:     tasks,
		artifacts: artifacts,
		gates:     gateCtl,
		registry:  registry,
		runtime:   runtime,
		budget:    budgetCtl,
		router:    router,
		emitter:   emitter,
		alerter:   alerter,
		cfg:       cfg,
		logger:    slog.Default().With("component", "workflow_engine"),
	}
}

// phaseFailure carries the agent failure that sank a phase.
type phaseFailure struct {
	Phase     int
	AgentName string
	Reason    string
	Cancelled bool
}

func (f *phaseFailure) Error() string {
	if f.Cancelled {
		return fmt.Sprintf("phase %d cancelled at agent %s", f.Phase, f.AgentName)
	}
	return fmt.Sprintf("phase %d failed at agent %s: %s", f.Phase, f.AgentName, f.Reason)
}

// gateRejection carries a terminal gate verdict.
type gateRejection struct {
	Phase  int
	Status humangate.Status
}

func (g *gateRejection) Error() string {
	return fmt.Sprintf("phase %d gate resolved %s", g.Phase, g.Status)
}

// ExecuteRun drives a claimed run to a terminal status. The error return
// is for infrastructure failures only; domain failures terminate through
// the run status.
func (e *Engine) ExecuteRun(ctx context.Context, run *ent.WorkflowRun) error {
	logger := e.logger.With("run_id", run.ID, "campaign", run.Campaign)

	cfg, err := e.runs.GetRunConfig(run)
	if err != nil {
		return e.failRun(ctx, run, nil, fmt.Sprintf("invalid config snapshot: %v", err))
	}
	if err := e.budget.HydrateRun(ctx, run.ID, run.BudgetCapUsd, &cfg); err != nil {
		return fmt.Errorf("failed to hydrate budget for run %s: %w", run.ID, err)
	}
	defer e.budget.ReleaseRun(run.ID)

	if err := e.runs.UpdateRunStatus(ctx, run.ID, workflowrun.StatusRunning, ""); err != nil {
		return err
	}
	e.emit(ctx, run.ID, "run_started", map[string]any{"campaign": run.Campaign})
	logger.Info("Run execution started", "current_phase", run.CurrentPhase)

	resumePhase := run.CurrentPhase
	if resumePhase < 1 {
		resumePhase = 1
	}

	for _, phase := range Pipeline() {
		if phase.Ordinal < resumePhase {
			continue
		}
		if err := e.runs.SetCurrentPhase(ctx, run.ID, phase.Ordinal); err != nil {
			return err
		}
		e.emit(ctx, run.ID, "phase_started", map[string]any{"phase": phase.Ordinal, "name": phase.Name})

		// The compensation ledger is scoped to the failing phase: earlier
		// phases' completed work survives a later phase's failure.
		var ledger []compensationEntry
		if err := e.runPhase(ctx, run, &cfg, phase, &ledger); err != nil {
			return e.resolveFailure(ctx, run, ledger, err)
		}
		e.emit(ctx, run.ID, "phase_completed", map[string]any{"phase": phase.Ordinal, "name": phase.Name})
	}

	if err := e.runs.UpdateRunStatus(ctx, run.ID, workflowrun.StatusCompleted, ""); err != nil {
		return err
	}
	e.emit(ctx, run.ID, "run_completed", nil)
	logger.Info("Run completed")
	return nil
}

// runPhase executes a phase's waves and, for gated phases, the review
// loop: revision_requested re-runs the finalizer with reviewer notes and
// opens a fresh gate.
func (e *Engine) runPhase(ctx context.Context, run *ent.WorkflowRun, cfg *models.RunConfig, phase Phase, ledger *[]compensationEntry) error {
	if err := e.runWaves(ctx, run, phase, "", ledger); err != nil {
		return err
	}
	if !phase.Gated {
		return nil
	}

	for {
		gate, err := e.reviewPhase(ctx, run, cfg, phase)
		if err != nil {
			return err
		}

		switch gate.Status {
		case humangate.StatusApproved:
			return nil
		case humangate.StatusRevisionRequested:
			notes := ""
			if gate.Notes != nil {
				notes = *gate.Notes
			}
			if err := e.rerunFinalizer(ctx, run, phase, notes, ledger); err != nil {
				return err
			}
		default:
			// Rejected; expiry resolves as a rejection.
			return &gateRejection{Phase: phase.Ordinal, Status: gate.Status}
		}
	}
}

// reviewPhase opens the phase gate on the finalizer artifact and blocks
// until its decision.
func (e *Engine) reviewPhase(ctx context.Context, run *ent.WorkflowRun, cfg *models.RunConfig, phase Phase) (*ent.HumanGate, error) {
	artifact, err := e.latestOutput(ctx, run.ID, phase.Finalizer)
	if err != nil {
		return nil, err
	}
	if artifact == nil {
		return nil, fmt.Errorf("phase %d finalizer %s produced no artifact", phase.Ordinal, phase.Finalizer)
	}

	gate, err := e.gates.Open(ctx, gates.OpenRequest{
		RunID:       run.ID,
		Phase:       phase.Ordinal,
		ArtifactRef: artifact.ID,
		Artifact:    artifact.Payload,
		RunConfig:   cfg,
	})
	if err != nil {
		return nil, err
	}
	e.emit(ctx, run.ID, "gate_opened", map[string]any{
		"gate_id": gate.ID, "phase": phase.Ordinal, "artifact_ref": artifact.ID,
	})

	if gate.Status == humangate.StatusPending {
		if err := e.runs.UpdateRunStatus(ctx, run.ID, workflowrun.StatusAwaitingApproval, ""); err != nil {
			return nil, err
		}
		gate, err = e.gates.Await(ctx, gate.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, &phaseFailure{Phase: phase.Ordinal, AgentName: phase.Finalizer, Cancelled: true}
			}
			return nil, err
		}
		if err := e.runs.UpdateRunStatus(ctx, run.ID, workflowrun.StatusRunning, ""); err != nil {
			return nil, err
		}
	}

	e.emit(ctx, run.ID, "gate_decided", map[string]any{
		"gate_id": gate.ID, "phase": phase.Ordinal, "decision": string(gate.Status),
	})
	return gate, nil
}

func (e *Engine) rerunFinalizer(ctx context.Context, run *ent.WorkflowRun, phase Phase, notes string, ledger *[]compensationEntry) error {
	e.logger.Info("Re-running phase finalizer with reviewer notes",
		"run_id", run.ID, "phase", phase.Ordinal, "agent", phase.Finalizer)
	return e.runWave(ctx, run, phase, Wave{Agents: []string{phase.Finalizer}}, waveOpts{
		gateNotes:       notes,
		forceNewAttempt: true,
	}, ledger)
}

func (e *Engine) runWaves(ctx context.Context, run *ent.WorkflowRun, phase Phase, gateNotes string, ledger *[]compensationEntry) error {
	for _, wave := range phase.Waves {
		if err := e.runWave(ctx, run, phase, wave, waveOpts{gateNotes: gateNotes}, ledger); err != nil {
			return err
		}
	}
	return nil
}

type waveOpts struct {
	gateNotes       string
	forceNewAttempt bool
}

type agentOutcome struct {
	agentName string
	taskID    string
	result    *agent.TaskResult
	err       error
	skipped   bool
}

// runWave runs one wave's agents concurrently up to the configured cap.
// All agents finish before the wave resolves; the first failure wins.
func (e *Engine) runWave(ctx context.Context, run *ent.WorkflowRun, phase Phase, wave Wave, opts waveOpts, ledger *[]compensationEntry) error {
	sem := make(chan struct{}, e.cfg.WaveConcurrency)
	outcomes := make([]agentOutcome, len(wave.Agents))

	var wg sync.WaitGroup
	for i, name := range wave.Agents {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			outcomes[i] = e.runAgent(ctx, run, phase, name, opts)
		}(i, name)
	}
	wg.Wait()

	// Ledger entries in wave order keep compensation deterministic.
	for _, out := range outcomes {
		if out.err != nil || out.result == nil || out.result.Status != agenttask.StateCompleted {
			continue
		}
		logic, err := e.registry.Get(out.agentName)
		if err != nil {
			continue
		}
		if comp, ok := logic.(agent.CompensatingLogic); ok {
			*ledger = append(*ledger, compensationEntry{
				AgentName: out.agentName,
				TaskID:    out.taskID,
				Phase:     phase.Ordinal,
				Output:    out.result.Output,
				Logic:     comp,
			})
		}
	}

	for _, out := range outcomes {
		if out.err != nil {
			return out.err
		}
		if out.result == nil || out.result.Status == agenttask.StateCompleted {
			continue
		}
		if out.result.Status == agenttask.StateCancelled {
			return &phaseFailure{Phase: phase.Ordinal, AgentName: out.agentName, Cancelled: true}
		}
		if wave.BestEffort {
			msg := fmt.Sprintf("long-running agent %s failed: %s", out.agentName, out.result.ErrorMessage)
			e.logger.Error("Best-effort agent failed", "run_id", run.ID, "agent", out.agentName, "error", out.result.ErrorMessage)
			e.alert(ctx, run.ID, msg)
			continue
		}
		return &phaseFailure{Phase: phase.Ordinal, AgentName: out.agentName, Reason: out.result.ErrorMessage}
	}
	return nil
}

// runAgent resolves the task attempt for one agent and executes it.
// Completed attempts are skipped on resume; live attempts resume from
// their checkpoint.
func (e *Engine) runAgent(ctx context.Context, run *ent.WorkflowRun, phase Phase, name string, opts waveOpts) agentOutcome {
	logic, err := e.registry.Get(name)
	if err != nil {
		return agentOutcome{agentName: name, err: err}
	}

	task, skipped, err := e.resolveAttempt(ctx, run, phase, name, opts.forceNewAttempt)
	if err != nil {
		return agentOutcome{agentName: name, err: err}
	}
	if skipped {
		out := agentOutcome{agentName: name, taskID: task.ID, skipped: true}
		// Recovered completion still joins the compensation ledger.
		if artifact, aerr := e.latestOutput(ctx, run.ID, name); aerr == nil && artifact != nil {
			out.result = &agent.TaskResult{
				Status:    agenttask.StateCompleted,
				Output:    artifact.Payload,
				OutputRef: artifact.ID,
			}
		}
		return out
	}

	input, err := e.buildInput(ctx, run, opts.gateNotes)
	if err != nil {
		return agentOutcome{agentName: name, err: err}
	}

	result, err := e.runtime.ExecuteTask(ctx, task, logic, input)
	if err != nil {
		return agentOutcome{agentName: name, taskID: task.ID, err: err}
	}
	e.emit(ctx, run.ID, "agent_finished", map[string]any{
		"agent": name, "phase": phase.Ordinal, "task_id": task.ID,
		"state": string(result.Status), "steps": result.Steps,
	})
	return agentOutcome{agentName: name, taskID: task.ID, result: result}
}

// resolveAttempt returns the task to execute, creating a fresh attempt
// when the latest one is terminal. A completed latest attempt is skipped
// unless forceNew (revision re-run) is set.
func (e *Engine) resolveAttempt(ctx context.Context, run *ent.WorkflowRun, phase Phase, name string, forceNew bool) (*ent.AgentTask, bool, error) {
	latest, err := e.tasks.GetLatestAttempt(ctx, run.ID, name)
	attempt := 1
	switch {
	case err == services.ErrNotFound:
	case err != nil:
		return nil, false, err
	case latest.State == agenttask.StateCompleted && !forceNew:
		return latest, true, nil
	case isTerminalTaskState(latest.State):
		attempt = latest.Attempt + 1
	default:
		// Live attempt from a previous claim; resume it in place.
		return latest, false, nil
	}

	task, err := e.tasks.CreateTask(ctx, models.CreateTaskRequest{
		TaskID:    newTaskID(),
		RunID:     run.ID,
		AgentName: name,
		Phase:     phase.Ordinal,
		Attempt:   attempt,
	})
	if err != nil {
		return nil, false, err
	}
	return task, false, nil
}

// buildInput assembles the phase input: the run config snapshot plus
// every prior agent output keyed by agent name.
func (e *Engine) buildInput(ctx context.Context, run *ent.WorkflowRun, gateNotes string) (map[string]any, error) {
	artifacts, err := e.artifacts.GetArtifactsByRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	byAgent := make(map[string]any)
	for _, artifact := range artifacts {
		if artifact.Kind != "agent_output" {
			continue
		}
		byAgent[strings.TrimSuffix(artifact.Name, "_output")] = artifact.Payload
	}

	input := map[string]any{
		"config":    run.Config,
		"artifacts": byAgent,
	}
	if gateNotes != "" {
		input["gate_notes"] = gateNotes
	}
	return input, nil
}

// latestOutput returns the newest agent_output artifact of an agent.
func (e *Engine) latestOutput(ctx context.Context, runID, agentName string) (*ent.Artifact, error) {
	artifacts, err := e.artifacts.GetArtifactsByRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	var latest *ent.Artifact
	for _, artifact := range artifacts {
		if artifact.Kind == "agent_output" && artifact.Name == agentName+"_output" {
			latest = artifact
		}
	}
	return latest, nil
}

// resolveFailure unwinds and terminally resolves a failed or cancelled
// run. Compensation runs on a fresh context: the run context is already
// dead on cancellation.
func (e *Engine) resolveFailure(ctx context.Context, run *ent.WorkflowRun, ledger []compensationEntry, cause error) error {
	cancelled := false
	if pf, ok := cause.(*phaseFailure); ok {
		cancelled = pf.Cancelled
	}
	if ctx.Err() != nil {
		cancelled = true
	}

	if len(ledger) > 0 {
		markCtx, markCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := e.runs.UpdateRunStatus(markCtx, run.ID, workflowrun.StatusCompensating, ""); err != nil {
			e.logger.Error("Failed to mark run compensating", "run_id", run.ID, "error", err)
		}
		markCancel()
	}
	e.compensateAll(run.ID, ledger)

	status := workflowrun.StatusFailed
	event := "run_failed"
	if cancelled {
		status = workflowrun.StatusCancelled
		event = "run_cancelled"
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.runs.UpdateRunStatus(writeCtx, run.ID, status, cause.Error()); err != nil {
		return err
	}
	e.emit(writeCtx, run.ID, event, map[string]any{"reason": cause.Error()})
	e.logger.Warn("Run resolved terminally", "run_id", run.ID, "status", status, "reason", cause.Error())
	return nil
}

func (e *Engine) failRun(ctx context.Context, run *ent.WorkflowRun, ledger []compensationEntry, reason string) error {
	return e.resolveFailure(ctx, run, ledger, fmt.Errorf("%s", reason))
}

func (e *Engine) emit(ctx context.Context, runID, event string, payload map[string]any) {
	if e.emitter != nil {
		e.emitter.EmitRunEvent(ctx, runID, event, payload)
	}
}

func (e *Engine) alert(ctx context.Context, runID, message string) {
	if e.alerter != nil {
		e.alerter.NotifyCritical(ctx, runID, message)
	}
}

func isTerminalTaskState(state agenttask.State) bool {
	switch state {
	case agenttask.StateCompleted, agenttask.StateFailed, agenttask.StateCancelled:
		return true
	}
	return false
}
