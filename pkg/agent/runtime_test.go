package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/scheduler"
	"github.com/outreachkit/prospector/pkg/tools"
)

type fakeTaskStore struct {
	mu        sync.Mutex
	states    []agenttask.State
	errorMsgs []string
	completed bool
	outputRef string
	stepCount int
}

func (s *fakeTaskStore) UpdateTaskState(ctx context.Context, taskID string, state agenttask.State, errorMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, state)
	if errorMsg != "" {
		s.errorMsgs = append(s.errorMsgs, errorMsg)
	}
	return nil
}

func (s *fakeTaskStore) CompleteTask(ctx context.Context, taskID, outputRef string, stepCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed = true
	s.outputRef = outputRef
	s.stepCount = stepCount
	return nil
}

func (s *fakeTaskStore) observedStates() []agenttask.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]agenttask.State(nil), s.states...)
}

type fakeCheckpointStore struct {
	mu          sync.Mutex
	checkpoints map[string][]*ent.Checkpoint
}

func newFakeCheckpointStore() *fakeCheckpointStore {
	return &fakeCheckpointStore{checkpoints: make(map[string][]*ent.Checkpoint)}
}

func (s *fakeCheckpointStore) SaveCheckpoint(ctx context.Context, runID, taskID string, version int, state map[string]any, stepCount int) (*ent.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest := 0
	if existing := s.checkpoints[taskID]; len(existing) > 0 {
		latest = existing[len(existing)-1].Version
	}
	if version != latest+1 {
		return nil, fmt.Errorf("stale checkpoint version %d, latest %d", version, latest)
	}
	cp := &ent.Checkpoint{Version: version, State: state, StepCount: stepCount}
	s.checkpoints[taskID] = append(s.checkpoints[taskID], cp)
	return cp, nil
}

func (s *fakeCheckpointStore) GetLatestCheckpoint(ctx context.Context, taskID string) (*ent.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.checkpoints[taskID]
	if len(existing) == 0 {
		return nil, errors.New("not found")
	}
	return existing[len(existing)-1], nil
}

type fakeArtifactStore struct {
	mu        sync.Mutex
	artifacts []models.CreateArtifactRequest
}

func (s *fakeArtifactStore) CreateArtifact(ctx context.Context, req models.CreateArtifactRequest) (*ent.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts = append(s.artifacts, req)
	return &ent.Artifact{ID: req.ArtifactID}, nil
}

// scriptedRouter answers per-op with a function, counting calls.
type scriptedRouter struct {
	mu    sync.Mutex
	calls map[string]int
	fns   map[string]func(call int) (*tools.RouteResult, error)
}

func newScriptedRouter() *scriptedRouter {
	return &scriptedRouter{calls: make(map[string]int), fns: make(map[string]func(int) (*tools.RouteResult, error))}
}

func (r *scriptedRouter) on(op string, fn func(call int) (*tools.RouteResult, error)) {
	r.fns[op] = fn
}

func (r *scriptedRouter) Execute(ctx context.Context, req tools.InvokeRequest) (*tools.RouteResult, error) {
	r.mu.Lock()
	r.calls[req.Op]++
	call := r.calls[req.Op]
	fn := r.fns[req.Op]
	r.mu.Unlock()

	if fn == nil {
		return nil, resilience.Permanent(fmt.Errorf("unscripted op %s", req.Op))
	}
	return fn(call)
}

func (r *scriptedRouter) callCount(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

// stagedLogic walks a scripted list of outcomes, recording the results it
// was handed.
type stagedLogic struct {
	mu       sync.Mutex
	name     string
	outcomes []StepOutcome
	step     int
	seen     [][]ToolResponse
}

func (l *stagedLogic) Name() string { return l.name }

func (l *stagedLogic) InitialState(input map[string]any) map[string]any {
	return map[string]any{"input": input, "progress": 0}
}

func (l *stagedLogic) Step(ctx context.Context, state map[string]any, results []ToolResponse) StepOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen = append(l.seen, results)
	if l.step >= len(l.outcomes) {
		return Abort{Reason: "script exhausted"}
	}
	out := l.outcomes[l.step]
	l.step++
	return out
}

func newTestRuntime(t *testing.T, taskStore *fakeTaskStore, cpStore *fakeCheckpointStore, artStore *fakeArtifactStore, router ToolRouter, cfg RuntimeConfig) *Runtime {
	t.Helper()
	d := scheduler.NewDispatcher(scheduler.Config{Kinds: map[string]int{scheduler.KindToolDispatch: 8}, QueueBound: 64})
	require.NoError(t, d.Start(context.Background()))
	t.Cleanup(d.Stop)
	return NewRuntime(taskStore, cpStore, artStore, router, d, cfg)
}

func testTask() *ent.AgentTask {
	return &ent.AgentTask{ID: "task-1", RunID: "run-1", AgentName: "niche_research", Phase: 1}
}

func fastRetry() resilience.RetryPolicy {
	return resilience.RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, ExponentialBase: 2.0}
}

func TestExecuteTaskHappyPath(t *testing.T) {
	router := newScriptedRouter()
	router.on("web_search", func(int) (*tools.RouteResult, error) {
		return &tools.RouteResult{Items: []map[string]any{{"url": "https://a.example"}}}, nil
	})

	logic := &stagedLogic{name: "niche_research", outcomes: []StepOutcome{
		NeedsTools{Requests: []ToolRequest{{Op: "web_search", Params: map[string]any{"query": "x"}}}},
		CheckpointAndContinue{State: map[string]any{"progress": 1}},
		Done{Output: map[string]any{"niches": []string{"fintech"}}},
	}}

	taskStore := &fakeTaskStore{}
	cpStore := newFakeCheckpointStore()
	artStore := &fakeArtifactStore{}
	rt := newTestRuntime(t, taskStore, cpStore, artStore, router, RuntimeConfig{Retry: fastRetry()})

	result, err := rt.ExecuteTask(context.Background(), testTask(), logic, map[string]any{"niche": "saas"})
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateCompleted, result.Status)
	assert.Equal(t, 3, result.Steps)

	// Round results were presented to the next step.
	require.Len(t, logic.seen, 3)
	assert.Nil(t, logic.seen[0])
	require.Len(t, logic.seen[1], 1)
	assert.True(t, logic.seen[1][0].Resolved)
	require.NoError(t, logic.seen[1][0].Err)
	assert.Len(t, logic.seen[1][0].Result.Items, 1)

	// One checkpoint per round plus one explicit checkpoint.
	assert.Len(t, cpStore.checkpoints["task-1"], 2)

	require.Len(t, artStore.artifacts, 1)
	assert.Equal(t, "niche_research_output", artStore.artifacts[0].Name)
	assert.True(t, taskStore.completed)
	assert.Equal(t, artStore.artifacts[0].ArtifactID, taskStore.outputRef)

	states := taskStore.observedStates()
	assert.Equal(t, agenttask.StateValidating, states[0])
	assert.Equal(t, agenttask.StateReady, states[1])
	assert.Equal(t, agenttask.StateRunning, states[2])
	assert.Contains(t, states, agenttask.StateSuspended)
	assert.Contains(t, states, agenttask.StateCheckpointed)
}

func TestExecuteTaskResultsInRequestIndexOrder(t *testing.T) {
	router := newScriptedRouter()
	router.on("slow_op", func(int) (*tools.RouteResult, error) {
		time.Sleep(30 * time.Millisecond)
		return &tools.RouteResult{Data: map[string]any{"which": "slow"}}, nil
	})
	router.on("fast_op", func(int) (*tools.RouteResult, error) {
		return &tools.RouteResult{Data: map[string]any{"which": "fast"}}, nil
	})

	logic := &stagedLogic{name: "niche_research", outcomes: []StepOutcome{
		NeedsTools{Requests: []ToolRequest{{Op: "slow_op"}, {Op: "fast_op"}}},
		Done{},
	}}

	rt := newTestRuntime(t, &fakeTaskStore{}, newFakeCheckpointStore(), &fakeArtifactStore{}, router, RuntimeConfig{Retry: fastRetry()})

	_, err := rt.ExecuteTask(context.Background(), testTask(), logic, nil)
	require.NoError(t, err)

	round := logic.seen[1]
	require.Len(t, round, 2)
	assert.Equal(t, "slow", round[0].Result.Data["which"])
	assert.Equal(t, "fast", round[1].Result.Data["which"])
}

func TestExecuteTaskResumesFromCheckpoint(t *testing.T) {
	cpStore := newFakeCheckpointStore()
	_, err := cpStore.SaveCheckpoint(context.Background(), "run-1", "task-1", 1, map[string]any{"progress": 7}, 4)
	require.NoError(t, err)

	var resumedState map[string]any
	logic := &stagedLogic{name: "niche_research", outcomes: []StepOutcome{Done{}}}
	wrapped := &stateSpyLogic{inner: logic, onStep: func(state map[string]any) { resumedState = state }}

	rt := newTestRuntime(t, &fakeTaskStore{}, cpStore, &fakeArtifactStore{}, newScriptedRouter(), RuntimeConfig{Retry: fastRetry()})

	result, err := rt.ExecuteTask(context.Background(), testTask(), wrapped, map[string]any{"fresh": true})
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateCompleted, result.Status)

	// The checkpointed state, not InitialState, reached the first step.
	assert.Equal(t, 7, resumedState["progress"])
	assert.Equal(t, 5, result.Steps)
}

type stateSpyLogic struct {
	inner  AgentLogic
	onStep func(state map[string]any)
}

func (l *stateSpyLogic) Name() string                                   { return l.inner.Name() }
func (l *stateSpyLogic) InitialState(input map[string]any) map[string]any { return l.inner.InitialState(input) }
func (l *stateSpyLogic) Step(ctx context.Context, state map[string]any, results []ToolResponse) StepOutcome {
	l.onStep(state)
	return l.inner.Step(ctx, state, results)
}

func TestExecuteTaskTransientExhaustionFails(t *testing.T) {
	router := newScriptedRouter()
	router.on("web_search", func(int) (*tools.RouteResult, error) {
		return nil, resilience.Transient(errors.New("upstream 503"))
	})

	logic := &stagedLogic{name: "niche_research", outcomes: []StepOutcome{
		NeedsTools{Requests: []ToolRequest{{Op: "web_search"}}},
	}}

	taskStore := &fakeTaskStore{}
	rt := newTestRuntime(t, taskStore, newFakeCheckpointStore(), &fakeArtifactStore{}, router, RuntimeConfig{Retry: fastRetry()})

	result, err := rt.ExecuteTask(context.Background(), testTask(), logic, nil)
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "retry exhausted")
	assert.Equal(t, 2, router.callCount("web_search"))
	assert.Contains(t, taskStore.observedStates(), agenttask.StateRetrying)
}

func TestExecuteTaskTransientBlipRedispatchesRound(t *testing.T) {
	router := newScriptedRouter()
	router.on("web_search", func(call int) (*tools.RouteResult, error) {
		if call == 1 {
			return nil, resilience.Transient(errors.New("upstream 503"))
		}
		return &tools.RouteResult{Items: []map[string]any{{"url": "https://a.example"}}}, nil
	})

	// Two-step script in the stage-advancing shape real logics use: the
	// first step mutates state and requests tools, the second consumes the
	// results. A retry that replayed Step would hand the second step nil
	// results and abort.
	logic := &stagedLogic{name: "niche_research", outcomes: []StepOutcome{
		NeedsTools{
			State:    map[string]any{"stage": "synthesize"},
			Requests: []ToolRequest{{Op: "web_search", Params: map[string]any{"query": "x"}}},
		},
		Done{Output: map[string]any{"ok": true}},
	}}

	taskStore := &fakeTaskStore{}
	rt := newTestRuntime(t, taskStore, newFakeCheckpointStore(), &fakeArtifactStore{}, router, RuntimeConfig{Retry: fastRetry()})

	result, err := rt.ExecuteTask(context.Background(), testTask(), logic, nil)
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateCompleted, result.Status)

	// The failed round was re-dispatched; Step ran exactly twice and the
	// second invocation received the successful round's results.
	assert.Equal(t, 2, router.callCount("web_search"))
	require.Len(t, logic.seen, 2)
	require.Len(t, logic.seen[1], 1)
	require.NoError(t, logic.seen[1][0].Err)
	assert.Len(t, logic.seen[1][0].Result.Items, 1)
	assert.Contains(t, taskStore.observedStates(), agenttask.StateRetrying)
}

func TestExecuteTaskPermanentFailureAborts(t *testing.T) {
	router := newScriptedRouter()
	router.on("web_search", func(int) (*tools.RouteResult, error) {
		return nil, resilience.Permanent(errors.New("invalid api key"))
	})

	logic := &stagedLogic{name: "niche_research", outcomes: []StepOutcome{
		NeedsTools{Requests: []ToolRequest{{Op: "web_search"}}},
	}}

	rt := newTestRuntime(t, &fakeTaskStore{}, newFakeCheckpointStore(), &fakeArtifactStore{}, router, RuntimeConfig{Retry: fastRetry()})

	result, err := rt.ExecuteTask(context.Background(), testTask(), logic, nil)
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateFailed, result.Status)
	assert.Equal(t, 1, router.callCount("web_search"))
}

func TestExecuteTaskBudgetDenialFails(t *testing.T) {
	router := newScriptedRouter()
	router.on("web_search", func(int) (*tools.RouteResult, error) {
		return nil, resilience.BudgetDenied(errors.New("run cap exceeded"))
	})

	logic := &stagedLogic{name: "niche_research", outcomes: []StepOutcome{
		NeedsTools{Requests: []ToolRequest{{Op: "web_search"}}},
	}}

	rt := newTestRuntime(t, &fakeTaskStore{}, newFakeCheckpointStore(), &fakeArtifactStore{}, router, RuntimeConfig{Retry: fastRetry()})

	result, err := rt.ExecuteTask(context.Background(), testTask(), logic, nil)
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "cap exceeded")
}

func TestExecuteTaskWaitAnyToleratesFailures(t *testing.T) {
	router := newScriptedRouter()
	router.on("hunter_find", func(int) (*tools.RouteResult, error) {
		return nil, resilience.Permanent(errors.New("not found"))
	})
	router.on("dropcontact_find", func(int) (*tools.RouteResult, error) {
		return &tools.RouteResult{Items: []map[string]any{{"email": "ceo@acme.com"}}}, nil
	})

	logic := &stagedLogic{name: "email_verification", outcomes: []StepOutcome{
		NeedsTools{
			Requests: []ToolRequest{{Op: "hunter_find"}, {Op: "dropcontact_find"}},
			Policy:   WaitPolicy{Mode: WaitAny},
		},
		Done{},
	}}

	rt := newTestRuntime(t, &fakeTaskStore{}, newFakeCheckpointStore(), &fakeArtifactStore{}, router, RuntimeConfig{Retry: fastRetry()})

	result, err := rt.ExecuteTask(context.Background(), testTask(), logic, nil)
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateCompleted, result.Status)
}

func TestExecuteTaskAbortOutcome(t *testing.T) {
	logic := &stagedLogic{name: "validation", outcomes: []StepOutcome{
		Abort{Reason: "lead list empty"},
	}}

	rt := newTestRuntime(t, &fakeTaskStore{}, newFakeCheckpointStore(), &fakeArtifactStore{}, newScriptedRouter(), RuntimeConfig{Retry: fastRetry()})

	result, err := rt.ExecuteTask(context.Background(), testTask(), logic, nil)
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateFailed, result.Status)
	assert.Equal(t, "lead list empty", result.ErrorMessage)
}

func TestExecuteTaskCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	router := newScriptedRouter()
	router.on("web_search", func(int) (*tools.RouteResult, error) {
		cancel()
		return nil, resilience.Transient(errors.New("interrupted"))
	})

	logic := &stagedLogic{name: "niche_research", outcomes: []StepOutcome{
		NeedsTools{Requests: []ToolRequest{{Op: "web_search"}}},
	}}

	taskStore := &fakeTaskStore{}
	rt := newTestRuntime(t, taskStore, newFakeCheckpointStore(), &fakeArtifactStore{}, router, RuntimeConfig{Retry: fastRetry(), CancelGrace: 50 * time.Millisecond})

	result, err := rt.ExecuteTask(ctx, testTask(), logic, nil)
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateCancelled, result.Status)
	assert.Contains(t, taskStore.observedStates(), agenttask.StateCancelled)
}

func TestExecuteTaskStepBudget(t *testing.T) {
	logic := &loopForever{}
	rt := newTestRuntime(t, &fakeTaskStore{}, newFakeCheckpointStore(), &fakeArtifactStore{}, newScriptedRouter(), RuntimeConfig{Retry: fastRetry(), MaxSteps: 5})

	result, err := rt.ExecuteTask(context.Background(), testTask(), logic, nil)
	require.NoError(t, err)
	assert.Equal(t, agenttask.StateFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "step budget")
}

type loopForever struct{}

func (loopForever) Name() string                                     { return "loop" }
func (loopForever) InitialState(input map[string]any) map[string]any { return map[string]any{} }
func (loopForever) Step(ctx context.Context, state map[string]any, results []ToolResponse) StepOutcome {
	return CheckpointAndContinue{State: map[string]any{}}
}
