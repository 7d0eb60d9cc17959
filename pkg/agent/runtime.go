package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/scheduler"
	"github.com/outreachkit/prospector/pkg/tools"
)

// TaskStore persists task state transitions. Implemented by
// services.TaskService.
type TaskStore interface {
	UpdateTaskState(ctx context.Context, taskID string, state agenttask.State, errorMsg string) error
	CompleteTask(ctx context.Context, taskID, outputRef string, stepCount int) error
}

// CheckpointStore persists and reads step-loop checkpoints. Implemented
// by services.CheckpointService.
type CheckpointStore interface {
	SaveCheckpoint(ctx context.Context, runID, taskID string, version int, state map[string]any, stepCount int) (*ent.Checkpoint, error)
	GetLatestCheckpoint(ctx context.Context, taskID string) (*ent.Checkpoint, error)
}

// ArtifactStore persists task outputs. Implemented by
// services.ArtifactService.
type ArtifactStore interface {
	CreateArtifact(ctx context.Context, req models.CreateArtifactRequest) (*ent.Artifact, error)
}

// RuntimeConfig tunes the step loop.
type RuntimeConfig struct {
	// Retry is the step-round retry policy for transient failures.
	Retry resilience.RetryPolicy `yaml:"retry"`

	// RetryOverrides replaces the policy per agent name.
	RetryOverrides map[string]resilience.RetryPolicy `yaml:"retry_overrides"`

	// CancelGrace is how long in-flight tool calls are awaited after a
	// cancel before the task is marked cancelled.
	CancelGrace time.Duration `yaml:"cancel_grace"`

	// MaxSteps bounds the step loop against non-terminating logics.
	MaxSteps int `yaml:"max_steps"`
}

// DefaultRuntimeConfig returns the built-in runtime tuning.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Retry:       resilience.DefaultRetryPolicy(),
		CancelGrace: 10 * time.Second,
		MaxSteps:    100,
	}
}

// TaskResult is the terminal outcome of one ExecuteTask call.
type TaskResult struct {
	Status       agenttask.State
	Output       map[string]any
	OutputRef    string
	ErrorMessage string
	Steps        int
}

// Runtime executes agent tasks: state machine, concurrent tool rounds,
// checkpoint after every successful round, resume from the latest
// checkpoint.
type Runtime struct {
	tasks       TaskStore
	checkpoints CheckpointStore
	artifacts   ArtifactStore
	router      ToolRouter
	dispatcher  *scheduler.Dispatcher
	cfg         RuntimeConfig
	logger      *slog.Logger
}

// NewRuntime wires a runtime from its collaborators.
func NewRuntime(
	tasks TaskStore,
	checkpoints CheckpointStore,
	artifacts ArtifactStore,
	router ToolRouter,
	dispatcher *scheduler.Dispatcher,
	cfg RuntimeConfig,
) *Runtime {
	def := DefaultRuntimeConfig()
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = def.Retry
	}
	if cfg.CancelGrace <= 0 {
		cfg.CancelGrace = def.CancelGrace
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = def.MaxSteps
	}
	return &Runtime{
		tasks:       tasks,
		checkpoints: checkpoints,
		artifacts:   artifacts,
		router:      router,
		dispatcher:  dispatcher,
		cfg:         cfg,
		logger:      slog.Default().With("component", "agent_runtime"),
	}
}

// ExecuteTask drives one task to a terminal state. The error return is
// for infrastructure failures only; agent-level failures terminate via
// the returned TaskResult.
func (r *Runtime) ExecuteTask(ctx context.Context, task *ent.AgentTask, logic AgentLogic, input map[string]any) (*TaskResult, error) {
	logger := r.logger.With("run_id", task.RunID, "task_id", task.ID, "agent", task.AgentName)

	if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateValidating, ""); err != nil {
		return nil, fmt.Errorf("failed to enter validating: %w", err)
	}
	if logic == nil {
		return r.fail(task, 0, "no logic bound to agent "+task.AgentName)
	}
	if validator, ok := logic.(InputValidator); ok {
		if err := validator.ValidateInput(input); err != nil {
			return r.fail(task, 0, fmt.Sprintf("input validation failed: %v", err))
		}
	}
	if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateReady, ""); err != nil {
		return nil, fmt.Errorf("failed to enter ready: %w", err)
	}

	// Resume from the latest checkpoint when one exists.
	state := logic.InitialState(input)
	version := 0
	steps := 0
	if cp, err := r.checkpoints.GetLatestCheckpoint(ctx, task.ID); err == nil && cp != nil {
		state = cp.State
		version = cp.Version
		steps = cp.StepCount
		logger.Info("Resuming from checkpoint", "version", version, "steps", steps)
	}

	if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateRunning, ""); err != nil {
		return nil, fmt.Errorf("failed to enter running: %w", err)
	}

	policy := r.cfg.Retry
	if override, ok := r.cfg.RetryOverrides[task.AgentName]; ok {
		policy = override
	}

	var lastResults []ToolResponse
	attempt := 1
	deferrals := 0

	for steps < r.cfg.MaxSteps {
		if ctx.Err() != nil {
			return r.cancel(task, steps)
		}

		outcome := logic.Step(ctx, state, lastResults)
		lastResults = nil

		switch o := outcome.(type) {
		case Done:
			return r.complete(ctx, task, steps+1, o.Output)

		case Abort:
			logger.Warn("Agent aborted", "reason", o.Reason)
			return r.fail(task, steps, o.Reason)

		case CheckpointAndContinue:
			state = o.State
			version++
			steps++
			if _, err := r.checkpoints.SaveCheckpoint(ctx, task.RunID, task.ID, version, state, steps); err != nil {
				return nil, fmt.Errorf("failed to checkpoint: %w", err)
			}
			if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateCheckpointed, ""); err != nil {
				return nil, fmt.Errorf("failed to enter checkpointed: %w", err)
			}
			if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateRunning, ""); err != nil {
				return nil, fmt.Errorf("failed to re-enter running: %w", err)
			}

		case NeedsTools:
			if len(o.Requests) == 0 {
				return r.fail(task, steps, "step requested tools without any requests")
			}
			if o.State != nil {
				state = o.State
			}
			if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateSuspended, ""); err != nil {
				return nil, fmt.Errorf("failed to enter suspended: %w", err)
			}

			// Retry the round itself, not the step. Step already advanced
			// its state when it returned NeedsTools, so replaying Step here
			// would observe post-round state; the pending requests must be
			// re-dispatched as-is until they succeed or exhaust.
			var responses []ToolResponse
			for {
				var roundErr error
				responses, roundErr = r.runToolRound(ctx, task, o.Requests, o.Policy)
				if roundErr == nil {
					break
				}
				if ctx.Err() != nil {
					return r.cancel(task, steps)
				}

				class := resilience.ClassOf(roundErr)
				switch class {
				case resilience.ClassPermanent, resilience.ClassInput:
					logger.Warn("Tool round failed permanently", "error", roundErr)
					return r.fail(task, steps, roundErr.Error())
				case resilience.ClassBudgetDenied:
					logger.Warn("Tool round denied by budget", "error", roundErr)
					return r.fail(task, steps, roundErr.Error())
				case resilience.ClassInternal:
					return nil, roundErr
				}

				// Rate-limit deferrals do not consume an attempt.
				wait := policy.Delay(attempt)
				if class == resilience.ClassRateLimited {
					deferrals++
					if deferrals > 10 {
						return r.fail(task, steps, fmt.Sprintf("rate limited beyond deferral budget: %v", roundErr))
					}
					if hint := resilience.RetryAfterOf(roundErr); hint > 0 && hint < policy.MaxDelay {
						wait = hint
					}
				} else {
					if attempt >= policy.MaxAttempts {
						logger.Warn("Tool round attempts exhausted", "attempts", attempt, "error", roundErr)
						return r.fail(task, steps, fmt.Sprintf("retry exhausted after %d attempts: %v", attempt, roundErr))
					}
					attempt++
				}

				if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateRetrying, roundErr.Error()); err != nil {
					return nil, fmt.Errorf("failed to enter retrying: %w", err)
				}
				if err := sleepCtx(ctx, wait); err != nil {
					return r.cancel(task, steps)
				}
				if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateSuspended, ""); err != nil {
					return nil, fmt.Errorf("failed to re-enter suspended: %w", err)
				}
			}

			attempt = 1
			deferrals = 0
			lastResults = responses
			version++
			steps++
			if _, err := r.checkpoints.SaveCheckpoint(ctx, task.RunID, task.ID, version, state, steps); err != nil {
				return nil, fmt.Errorf("failed to checkpoint after round: %w", err)
			}
			if err := r.tasks.UpdateTaskState(ctx, task.ID, agenttask.StateRunning, ""); err != nil {
				return nil, fmt.Errorf("failed to resume running: %w", err)
			}

		default:
			return nil, fmt.Errorf("unknown step outcome %T from agent %s", outcome, task.AgentName)
		}
	}

	return r.fail(task, steps, fmt.Sprintf("step budget exceeded after %d steps", steps))
}

type indexedResponse struct {
	index  int
	result *tools.RouteResult
	err    error
}

// runToolRound dispatches a step's requests concurrently and gathers
// them per the wait policy. The returned slice is in request-index order.
func (r *Runtime) runToolRound(ctx context.Context, task *ent.AgentTask, requests []ToolRequest, policy WaitPolicy) ([]ToolResponse, error) {
	n := len(requests)
	need := n
	switch policy.Mode {
	case WaitAny:
		need = 1
	case WaitQuorum:
		need = policy.Quorum
		if need <= 0 || need > n {
			need = n
		}
	}

	ch := make(chan indexedResponse, n)
	for i, req := range requests {
		if err := r.dispatch(ctx, task, i, req, ch); err != nil {
			return nil, err
		}
	}

	responses := make([]ToolResponse, n)
	for i, req := range requests {
		responses[i] = ToolResponse{Request: req}
	}

	resolved := 0
	successes := 0
	var firstErr error

	collect := func(res indexedResponse) {
		responses[res.index].Resolved = true
		responses[res.index].Result = res.result
		responses[res.index].Err = res.err
		resolved++
		if res.err == nil {
			successes++
		} else if firstErr == nil || worseThan(res.err, firstErr) {
			firstErr = res.err
		}
	}

	for resolved < n && successes < need {
		select {
		case res := <-ch:
			collect(res)
		case <-ctx.Done():
			// Cancelled: await in-flight calls for the grace window, then
			// abandon them. The router still records their completion.
			grace := time.NewTimer(r.cfg.CancelGrace)
			defer grace.Stop()
			for resolved < n {
				select {
				case res := <-ch:
					collect(res)
				case <-grace.C:
					return nil, ctx.Err()
				}
			}
			return nil, ctx.Err()
		}
	}

	if successes >= need {
		return responses, nil
	}
	if firstErr == nil {
		firstErr = resilience.Internal(fmt.Errorf("tool round resolved without outcome"))
	}
	return nil, firstErr
}

// dispatch submits one request on the tool lane, waiting out transient
// queue pressure.
func (r *Runtime) dispatch(ctx context.Context, task *ent.AgentTask, index int, req ToolRequest, ch chan<- indexedResponse) error {
	job := func(jobCtx context.Context) {
		result, err := r.router.Execute(jobCtx, tools.InvokeRequest{
			RunID:  task.RunID,
			TaskID: task.ID,
			Phase:  task.Phase,
			Op:     req.Op,
			Params: req.Params,
		})
		ch <- indexedResponse{index: index, result: result, err: err}
	}

	for {
		err := r.dispatcher.Submit(ctx, scheduler.KindToolDispatch, job)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := sleepCtx(ctx, 50*time.Millisecond); err != nil {
			return err
		}
	}
}

// complete writes the output artifact and marks the task completed.
func (r *Runtime) complete(ctx context.Context, task *ent.AgentTask, steps int, output map[string]any) (*TaskResult, error) {
	if output == nil {
		output = map[string]any{}
	}

	artifactID := uuid.New().String()
	if _, err := r.artifacts.CreateArtifact(ctx, models.CreateArtifactRequest{
		ArtifactID: artifactID,
		RunID:      task.RunID,
		Phase:      task.Phase,
		Name:       task.AgentName + "_output",
		Kind:       "agent_output",
		Payload:    output,
		ProducedBy: &task.AgentName,
	}); err != nil {
		return nil, fmt.Errorf("failed to write output artifact: %w", err)
	}

	if err := r.tasks.CompleteTask(context.Background(), task.ID, artifactID, steps); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	return &TaskResult{
		Status:    agenttask.StateCompleted,
		Output:    output,
		OutputRef: artifactID,
		Steps:     steps,
	}, nil
}

// fail marks the task failed with a terminal write that survives caller
// cancellation.
func (r *Runtime) fail(task *ent.AgentTask, steps int, reason string) (*TaskResult, error) {
	if err := r.tasks.UpdateTaskState(context.Background(), task.ID, agenttask.StateFailed, reason); err != nil {
		return nil, fmt.Errorf("failed to mark task failed: %w", err)
	}
	return &TaskResult{Status: agenttask.StateFailed, ErrorMessage: reason, Steps: steps}, nil
}

// cancel marks the task cancelled with a terminal write that survives
// caller cancellation.
func (r *Runtime) cancel(task *ent.AgentTask, steps int) (*TaskResult, error) {
	if err := r.tasks.UpdateTaskState(context.Background(), task.ID, agenttask.StateCancelled, ""); err != nil {
		return nil, fmt.Errorf("failed to mark task cancelled: %w", err)
	}
	return &TaskResult{Status: agenttask.StateCancelled, Steps: steps}, nil
}

// worseThan orders failure classes for round-level reporting: budget and
// permanent failures dominate transient ones.
func worseThan(a, b error) bool {
	return classRank(resilience.ClassOf(a)) > classRank(resilience.ClassOf(b))
}

func classRank(c resilience.Class) int {
	switch c {
	case resilience.ClassBudgetDenied:
		return 5
	case resilience.ClassInternal:
		return 4
	case resilience.ClassPermanent, resilience.ClassInput:
		return 3
	case resilience.ClassCircuitOpen:
		return 2
	case resilience.ClassRateLimited:
		return 1
	default:
		return 0
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
