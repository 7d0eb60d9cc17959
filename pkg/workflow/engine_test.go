package workflow

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/agent"
	"github.com/outreachkit/prospector/pkg/agent/logics"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/services"
	"github.com/outreachkit/prospector/pkg/tools"
)

type fakeRunStore struct {
	mu       sync.Mutex
	run      *ent.WorkflowRun
	statuses []workflowrun.Status
	phases   []int
}

func (f *fakeRunStore) GetRunByID(ctx context.Context, runID string) (*ent.WorkflowRun, error) {
	return f.run, nil
}

func (f *fakeRunStore) UpdateRunStatus(ctx context.Context, runID string, status workflowrun.Status, errorMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.run.Status = status
	if errorMsg != "" {
		f.run.ErrorMessage = &errorMsg
	}
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeRunStore) SetCurrentPhase(ctx context.Context, runID string, phase int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.run.CurrentPhase = phase
	f.phases = append(f.phases, phase)
	return nil
}

func (f *fakeRunStore) GetRunConfig(run *ent.WorkflowRun) (models.RunConfig, error) {
	return models.RunConfig{Niche: "dental clinics", LeadTarget: 10}, nil
}

type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[string][]*ent.AgentTask
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string][]*ent.AgentTask)}
}

func (f *fakeTaskStore) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.AgentTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := &ent.AgentTask{
		ID:        req.TaskID,
		RunID:     req.RunID,
		AgentName: req.AgentName,
		Phase:     req.Phase,
		Attempt:   req.Attempt,
		State:     agenttask.StateNew,
	}
	f.tasks[req.AgentName] = append(f.tasks[req.AgentName], task)
	return task, nil
}

func (f *fakeTaskStore) GetLatestAttempt(ctx context.Context, runID, agentName string) (*ent.AgentTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	attempts := f.tasks[agentName]
	if len(attempts) == 0 {
		return nil, services.ErrNotFound
	}
	return attempts[len(attempts)-1], nil
}

func (f *fakeTaskStore) attempts(agentName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks[agentName])
}

type fakeArtifactStore struct {
	mu        sync.Mutex
	artifacts []*ent.Artifact
}

func (f *fakeArtifactStore) GetArtifactsByRun(ctx context.Context, runID string) ([]*ent.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*ent.Artifact, len(f.artifacts))
	copy(out, f.artifacts)
	return out, nil
}

func (f *fakeArtifactStore) add(runID, agentName string, phase int, payload map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.artifacts = append(f.artifacts, &ent.Artifact{
		ID:      uuid.NewString(),
		RunID:   runID,
		Phase:   phase,
		Name:    agentName + "_output",
		Kind:    "agent_output",
		Payload: payload,
	})
}

// fakeRuntime completes every task with a canned output and writes the
// matching artifact, the way the real runtime does. Per-agent scripts
// override the result.
type fakeRuntime struct {
	mu        sync.Mutex
	artifacts *fakeArtifactStore
	scripts   map[string]func(attempt int) *agent.TaskResult
	executed  []string
	inputs    map[string][]map[string]any
}

func newFakeRuntime(artifacts *fakeArtifactStore) *fakeRuntime {
	return &fakeRuntime{
		artifacts: artifacts,
		scripts:   make(map[string]func(attempt int) *agent.TaskResult),
		inputs:    make(map[string][]map[string]any),
	}
}

func (f *fakeRuntime) ExecuteTask(ctx context.Context, task *ent.AgentTask, logic agent.AgentLogic, input map[string]any) (*agent.TaskResult, error) {
	f.mu.Lock()
	f.executed = append(f.executed, task.AgentName)
	f.inputs[task.AgentName] = append(f.inputs[task.AgentName], input)
	script := f.scripts[task.AgentName]
	f.mu.Unlock()

	result := &agent.TaskResult{
		Status: agenttask.StateCompleted,
		Output: map[string]any{"agent": task.AgentName, "attempt": task.Attempt},
	}
	if script != nil {
		result = script(task.Attempt)
	}
	task.State = result.Status
	if result.Status == agenttask.StateCompleted {
		f.artifacts.add(task.RunID, task.AgentName, task.Phase, result.Output)
	}
	return result, nil
}

func (f *fakeRuntime) executions(agentName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, name := range f.executed {
		if name == agentName {
			n++
		}
	}
	return n
}

// fakeGateCtl scripts gate decisions per phase. Open returns a pending
// gate; Await pops the next scripted decision.
type fakeGateCtl struct {
	mu        sync.Mutex
	decisions map[int][]humangate.Status
	notes     map[int]string
	opened    []int
	awaited   int
}

func newFakeGateCtl() *fakeGateCtl {
	return &fakeGateCtl{
		decisions: make(map[int][]humangate.Status),
		notes:     make(map[int]string),
	}
}

func (f *fakeGateCtl) Open(ctx context.Context, req gates.OpenRequest) (*ent.HumanGate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = append(f.opened, req.Phase)
	return &ent.HumanGate{
		ID:          uuid.NewString(),
		RunID:       req.RunID,
		Phase:       req.Phase,
		ArtifactRef: req.ArtifactRef,
		Status:      humangate.StatusPending,
		Deadline:    time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeGateCtl) Await(ctx context.Context, gateID string) (*ent.HumanGate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.awaited++

	// Gate ids are opaque here; the newest opened phase is the one
	// being awaited.
	phase := f.opened[len(f.opened)-1]
	queue := f.decisions[phase]
	status := humangate.StatusApproved
	if len(queue) > 0 {
		status = queue[0]
		f.decisions[phase] = queue[1:]
	}
	gate := &ent.HumanGate{ID: gateID, Phase: phase, Status: status}
	if notes, ok := f.notes[phase]; ok && status == humangate.StatusRevisionRequested {
		gate.Notes = &notes
	}
	return gate, nil
}

type fakeBudgetCtl struct {
	mu       sync.Mutex
	hydrated []string
	released []string
}

func (f *fakeBudgetCtl) HydrateRun(ctx context.Context, runID string, capUSD float64, cfg *models.RunConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hydrated = append(f.hydrated, runID)
	return nil
}

func (f *fakeBudgetCtl) ReleaseRun(runID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = append(f.released, runID)
}

type recordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingAlerter) NotifyCritical(ctx context.Context, runID, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingEmitter) EmitRunEvent(ctx context.Context, runID, event string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

type recordingEngineRouter struct {
	mu    sync.Mutex
	calls []tools.InvokeRequest
}

func (r *recordingEngineRouter) Execute(ctx context.Context, req tools.InvokeRequest) (*tools.RouteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, req)
	return &tools.RouteResult{}, nil
}

func (r *recordingEngineRouter) ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Op
	}
	return out
}

type engineFixture struct {
	engine    *Engine
	runs      *fakeRunStore
	tasks     *fakeTaskStore
	artifacts *fakeArtifactStore
	runtime   *fakeRuntime
	gates     *fakeGateCtl
	budget    *fakeBudgetCtl
	router    *recordingEngineRouter
	alerter   *recordingAlerter
	emitter   *recordingEmitter
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	registry := agent.NewRegistry()
	require.NoError(t, logics.RegisterAll(registry))
	return newEngineFixtureWith(t, registry)
}

func newEngineFixtureWith(t *testing.T, registry *agent.Registry) *engineFixture {
	t.Helper()

	artifacts := &fakeArtifactStore{}
	fix := &engineFixture{
		runs: &fakeRunStore{run: &ent.WorkflowRun{
			ID:           "run-1",
			Campaign:     "q3-dental",
			Status:       workflowrun.StatusPending,
			BudgetCapUsd: 100,
			Config:       map[string]any{"niche": "dental clinics", "lead_target": 10},
		}},
		tasks:     newFakeTaskStore(),
		artifacts: artifacts,
		runtime:   newFakeRuntime(artifacts),
		gates:     newFakeGateCtl(),
		budget:    &fakeBudgetCtl{},
		router:    &recordingEngineRouter{},
		alerter:   &recordingAlerter{},
		emitter:   &recordingEmitter{},
	}

	// Phase-5 side effects need realistic outputs for compensation.
	fix.runtime.scripts["campaign_setup"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{
			Status: agenttask.StateCompleted,
			Output: map[string]any{"campaign_id": "cmp-1", "lead_count": 2},
		}
	}
	fix.runtime.scripts["sending"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{
			Status: agenttask.StateCompleted,
			Output: map[string]any{"campaign_id": "cmp-1", "sent": []any{"a@a.io"}, "sent_count": 1},
		}
	}

	cfg := DefaultConfig()
	cfg.CompensationBackoff = time.Millisecond
	fix.engine = NewEngine(
		fix.runs, fix.tasks, fix.artifacts, fix.gates,
		registry, fix.runtime, fix.budget, fix.router,
		fix.emitter, fix.alerter, cfg,
	)
	return fix
}

func TestExecuteRunHappyPath(t *testing.T) {
	fix := newEngineFixture(t)

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusCompleted, fix.runs.run.Status)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, fix.runs.phases)
	assert.Equal(t, []int{1, 2, 3, 4}, fix.gates.opened, "phase 5 has no gate")
	assert.Equal(t, 20, len(fix.runtime.executed), "every pipeline agent runs once")
	assert.Empty(t, fix.router.calls, "no compensation on success")
	assert.Equal(t, []string{"run-1"}, fix.budget.hydrated)
	assert.Equal(t, []string{"run-1"}, fix.budget.released)
	assert.Contains(t, fix.emitter.events, "run_started")
	assert.Contains(t, fix.emitter.events, "run_completed")
}

func TestGateAwaitSuspendsRun(t *testing.T) {
	fix := newEngineFixture(t)

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, 4, fix.gates.awaited)
	assert.Contains(t, fix.runs.statuses, workflowrun.StatusAwaitingApproval)
	// The run goes back to running after each approval.
	assert.Equal(t, workflowrun.StatusCompleted, fix.runs.run.Status)
}

func TestRevisionRequestedRerunsFinalizer(t *testing.T) {
	fix := newEngineFixture(t)
	fix.gates.decisions[1] = []humangate.Status{humangate.StatusRevisionRequested, humangate.StatusApproved}
	fix.gates.notes[1] = "narrow the niche to pediatric dentistry"

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusCompleted, fix.runs.run.Status)
	assert.Equal(t, 2, fix.runtime.executions("research_export"))
	assert.Equal(t, 2, fix.tasks.attempts("research_export"), "revision re-run is a fresh attempt")
	assert.Equal(t, 1, fix.runtime.executions("niche_research"), "only the finalizer re-runs")

	reruns := fix.runtime.inputs["research_export"]
	require.Len(t, reruns, 2)
	assert.NotContains(t, reruns[0], "gate_notes")
	assert.Equal(t, "narrow the niche to pediatric dentistry", reruns[1]["gate_notes"])

	// A fresh gate reviews the revised artifact.
	assert.Equal(t, []int{1, 1, 2, 3, 4}, fix.gates.opened)
}

func TestGateRejectionFailsRun(t *testing.T) {
	fix := newEngineFixture(t)
	fix.gates.decisions[2] = []humangate.Status{humangate.StatusRejected}

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusFailed, fix.runs.run.Status)
	require.NotNil(t, fix.runs.run.ErrorMessage)
	assert.Contains(t, *fix.runs.run.ErrorMessage, "gate resolved rejected")
	assert.Equal(t, 0, fix.runtime.executions("email_verification"), "phase 3 never starts")
}

func TestGateExpiryTreatedAsRejection(t *testing.T) {
	fix := newEngineFixture(t)
	fix.gates.decisions[1] = []humangate.Status{humangate.StatusExpired}

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusFailed, fix.runs.run.Status)
	assert.Contains(t, *fix.runs.run.ErrorMessage, "gate resolved expired")
}

func TestAgentFailureCompensatesInReverseOrder(t *testing.T) {
	fix := newEngineFixture(t)
	fix.runtime.scripts["reply_monitoring"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{Status: agenttask.StateFailed, ErrorMessage: "provider gone"}
	}
	fix.runtime.scripts["analytics"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{Status: agenttask.StateFailed, ErrorMessage: "provider gone"}
	}

	// Best-effort failures alone never unwind; force a hard failure by
	// sinking the sending agent after campaign_setup committed.
	fix.runtime.scripts["sending"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{Status: agenttask.StateFailed, ErrorMessage: "smtp relay rejected batch"}
	}

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusFailed, fix.runs.run.Status)
	assert.Contains(t, fix.runs.statuses, workflowrun.StatusCompensating)
	assert.Equal(t, []string{"archive_campaign"}, fix.router.ops(),
		"only the committed campaign_setup unwinds")
	assert.Equal(t, 0, fix.runtime.executions("reply_monitoring"), "failure stops the phase")
}

func TestSendingFailureUnwindsSentEmails(t *testing.T) {
	fix := newEngineFixture(t)

	// analytics fails hard after sending completed: both phase-5
	// side-effect agents must unwind, newest first.
	fix.runtime.scripts["analytics"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{Status: agenttask.StateFailed, ErrorMessage: "stats api down"}
	}

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	// Best-effort wave: analytics failure alerts but the run completes
	// and nothing is compensated.
	assert.Equal(t, workflowrun.StatusCompleted, fix.runs.run.Status)
	assert.Empty(t, fix.router.calls)
	require.Len(t, fix.alerter.messages, 1)
	assert.Contains(t, fix.alerter.messages[0], "analytics")
}

// rollbackLogic gives an agent logic a compensation hook that issues a
// single rollback op through the router.
type rollbackLogic struct {
	agent.AgentLogic
	op string
}

func (l *rollbackLogic) Compensate(ctx context.Context, comp agent.CompensationContext, output map[string]any) error {
	_, err := comp.Router.Execute(ctx, tools.InvokeRequest{
		RunID:  comp.RunID,
		TaskID: comp.TaskID,
		Phase:  comp.Phase,
		Op:     l.op,
	})
	return err
}

func TestCompensationScopedToFailingPhase(t *testing.T) {
	// The phase-2 finalizer gets a rollback hook; when phase 5 fails
	// after campaign_setup committed, only the execution phase unwinds.
	base := agent.NewRegistry()
	require.NoError(t, logics.RegisterAll(base))
	registry := agent.NewRegistry()
	for _, name := range base.Names() {
		logic, err := base.Get(name)
		require.NoError(t, err)
		if name == "import_finalizer" {
			logic = &rollbackLogic{AgentLogic: logic, op: "rollback_import"}
		}
		require.NoError(t, registry.Register(logic))
	}

	fix := newEngineFixtureWith(t, registry)
	fix.runtime.scripts["sending"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{Status: agenttask.StateFailed, ErrorMessage: "smtp relay rejected batch"}
	}

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusFailed, fix.runs.run.Status)
	assert.Contains(t, fix.runs.statuses, workflowrun.StatusCompensating)
	assert.Equal(t, []string{"archive_campaign"}, fix.router.ops(),
		"earlier phases' completed work is left intact")
}

func TestCancellationUnwindsSideEffects(t *testing.T) {
	fix := newEngineFixture(t)
	fix.runtime.scripts["sending"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{Status: agenttask.StateCancelled, ErrorMessage: "cancelled"}
	}

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusCancelled, fix.runs.run.Status)
	assert.Contains(t, fix.runs.statuses, workflowrun.StatusCompensating)
	assert.Equal(t, []string{"archive_campaign"}, fix.router.ops())
}

func TestResumeSkipsCompletedAgents(t *testing.T) {
	fix := newEngineFixture(t)

	// Phase 1 completed on a previous claim.
	for _, name := range []string{"niche_research", "persona_research", "research_export"} {
		task := &ent.AgentTask{
			ID: uuid.NewString(), RunID: "run-1", AgentName: name,
			Phase: 1, Attempt: 1, State: agenttask.StateCompleted,
		}
		fix.tasks.tasks[name] = append(fix.tasks.tasks[name], task)
		fix.artifacts.add("run-1", name, 1, map[string]any{"agent": name})
	}
	fix.runs.run.CurrentPhase = 1

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusCompleted, fix.runs.run.Status)
	for _, name := range []string{"niche_research", "persona_research", "research_export"} {
		assert.Equal(t, 0, fix.runtime.executions(name), name)
		assert.Equal(t, 1, fix.tasks.attempts(name), name)
	}
	assert.Equal(t, 1, fix.runtime.executions("list_builder"))
}

func TestCompensationRetriesThenAlerts(t *testing.T) {
	fix := newEngineFixture(t)

	failing := &failingRouter{failures: 999}
	fix.engine.router = failing
	fix.runtime.scripts["sending"] = func(int) *agent.TaskResult {
		return &agent.TaskResult{Status: agenttask.StateFailed, ErrorMessage: "smtp relay rejected batch"}
	}

	require.NoError(t, fix.engine.ExecuteRun(context.Background(), fix.runs.run))

	assert.Equal(t, workflowrun.StatusFailed, fix.runs.run.Status)
	assert.Equal(t, 3, failing.calls, "hook retried up to the attempt cap")
	require.NotEmpty(t, fix.alerter.messages)
	assert.Contains(t, fix.alerter.messages[0], "compensation hook campaign_setup failed")
}

func TestPhaseGraphShape(t *testing.T) {
	pipeline := Pipeline()
	require.Len(t, pipeline, 5)

	total := 0
	for i, phase := range pipeline {
		assert.Equal(t, i+1, phase.Ordinal)
		for _, wave := range phase.Waves {
			total += len(wave.Agents)
		}
		if phase.Gated {
			assert.NotEmpty(t, phase.Finalizer)
			last := phase.Waves[len(phase.Waves)-1]
			assert.Equal(t, []string{phase.Finalizer}, last.Agents,
				"finalizer is the phase's last wave")
		}
	}
	assert.Equal(t, 20, total)
	assert.False(t, pipeline[4].Gated, "execution phase has no gate")
	assert.True(t, pipeline[4].Waves[2].BestEffort)
}

type failingRouter struct {
	mu       sync.Mutex
	calls    int
	failures int
}

func (r *failingRouter) Execute(ctx context.Context, req tools.InvokeRequest) (*tools.RouteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.calls <= r.failures {
		return nil, fmt.Errorf("provider unreachable")
	}
	return &tools.RouteResult{}, nil
}
