package gates

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/services"
)

// fakeGateStore is an in-memory GateStore with the same single-decision
// and lazy-expiry semantics as the database-backed service.
type fakeGateStore struct {
	mu    sync.Mutex
	gates map[string]*ent.HumanGate
}

func newFakeGateStore() *fakeGateStore {
	return &fakeGateStore{gates: make(map[string]*ent.HumanGate)}
}

func (f *fakeGateStore) CreateGate(ctx context.Context, req models.CreateGateRequest) (*ent.HumanGate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.gates[req.GateID]; ok {
		return existing, nil
	}
	gate := &ent.HumanGate{
		ID:          req.GateID,
		RunID:       req.RunID,
		Phase:       req.Phase,
		ArtifactRef: req.ArtifactRef,
		Status:      humangate.StatusPending,
		Deadline:    req.Deadline,
		CreatedAt:   time.Now(),
	}
	f.gates[req.GateID] = gate
	return gate, nil
}

func (f *fakeGateStore) PollGate(ctx context.Context, gateID string) (*ent.HumanGate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gate, ok := f.gates[gateID]
	if !ok {
		return nil, services.ErrNotFound
	}
	if gate.Status == humangate.StatusPending && time.Now().After(gate.Deadline) {
		f.expireLocked(gate)
	}
	return gate, nil
}

func (f *fakeGateStore) SubmitDecision(ctx context.Context, gateID string, req models.GateDecisionRequest) (*ent.HumanGate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gate, ok := f.gates[gateID]
	if !ok {
		return nil, services.ErrNotFound
	}
	if gate.Status != humangate.StatusPending || time.Now().After(gate.Deadline) {
		if gate.Status == humangate.Status(req.Decision) {
			return gate, nil
		}
		if gate.Status == humangate.StatusPending {
			f.expireLocked(gate)
		}
		return nil, services.ErrGateAlreadyDecided
	}

	now := time.Now()
	gate.Status = humangate.Status(req.Decision)
	gate.ApproverID = &req.ApproverID
	gate.DecidedAt = &now
	if req.Notes != "" {
		notes := req.Notes
		gate.Notes = &notes
	}
	return gate, nil
}

func (f *fakeGateStore) ExpireOverdueGates(ctx context.Context) ([]*ent.HumanGate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var expired []*ent.HumanGate
	now := time.Now()
	for _, gate := range f.gates {
		if gate.Status == humangate.StatusPending && now.After(gate.Deadline) {
			f.expireLocked(gate)
			expired = append(expired, gate)
		}
	}
	return expired, nil
}

func (f *fakeGateStore) expireLocked(gate *ent.HumanGate) {
	system := services.SystemApproverID
	now := time.Now()
	gate.Status = humangate.StatusExpired
	gate.ApproverID = &system
	gate.DecidedAt = &now
}

type fakeNotifier struct {
	mu      sync.Mutex
	created []string
	decided []string
}

func (f *fakeNotifier) NotifyGateCreated(ctx context.Context, gate *ent.HumanGate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, gate.ID)
}

func (f *fakeNotifier) NotifyGateDecided(ctx context.Context, gate *ent.HumanGate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decided = append(f.decided, gate.ID)
}

func TestOpenNotifiesApprover(t *testing.T) {
	store := newFakeGateStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, DefaultConfig())

	gate, err := svc.Open(context.Background(), OpenRequest{
		RunID:       "run-1",
		Phase:       1,
		ArtifactRef: "artifact-1",
	})
	require.NoError(t, err)
	assert.Equal(t, humangate.StatusPending, gate.Status)
	assert.Equal(t, []string{gate.ID}, notifier.created)
	assert.WithinDuration(t, time.Now().Add(72*time.Hour), gate.Deadline, time.Minute)
}

func TestOpenHonorsRunGateTTL(t *testing.T) {
	svc := NewService(newFakeGateStore(), nil, DefaultConfig())

	gate, err := svc.Open(context.Background(), OpenRequest{
		RunID:       "run-1",
		Phase:       2,
		ArtifactRef: "artifact-1",
		RunConfig:   &models.RunConfig{GateTTLSecs: 600},
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), gate.Deadline, time.Minute)
}

func TestOpenAutoApprovesStagingRuns(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(newFakeGateStore(), notifier, DefaultConfig())

	gate, err := svc.Open(context.Background(), OpenRequest{
		RunID:       "run-1",
		Phase:       1,
		ArtifactRef: "artifact-1",
		RunConfig:   &models.RunConfig{AutoApprove: true},
	})
	require.NoError(t, err)
	assert.Equal(t, humangate.StatusApproved, gate.Status)
	require.NotNil(t, gate.ApproverID)
	assert.Equal(t, services.SystemApproverID, *gate.ApproverID)
	assert.Empty(t, notifier.created, "auto-approved gates skip the approver channel")
	assert.Equal(t, []string{gate.ID}, notifier.decided)
}

func TestOpenQualityScorePredicate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Phases = map[int]PhaseConfig{
		4: {AutoApprove: true, MinQualityScore: 0.8},
	}
	svc := NewService(newFakeGateStore(), nil, cfg)

	gate, err := svc.Open(context.Background(), OpenRequest{
		RunID:       "run-1",
		Phase:       4,
		ArtifactRef: "artifact-1",
		Artifact:    map[string]any{"quality_score": 0.9},
	})
	require.NoError(t, err)
	assert.Equal(t, humangate.StatusApproved, gate.Status)

	gate, err = svc.Open(context.Background(), OpenRequest{
		RunID:       "run-1",
		Phase:       4,
		ArtifactRef: "artifact-2",
		Artifact:    map[string]any{"quality_score": 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, humangate.StatusPending, gate.Status, "below threshold stays with the human")
}

func TestDecideRejectsSecondVerdict(t *testing.T) {
	svc := NewService(newFakeGateStore(), nil, DefaultConfig())
	gate, err := svc.Open(context.Background(), OpenRequest{RunID: "run-1", Phase: 1, ArtifactRef: "a"})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), gate.ID, models.GateDecisionRequest{
		Decision: "approved", ApproverID: "alice",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), gate.ID, models.GateDecisionRequest{
		Decision: "rejected", ApproverID: "bob",
	})
	assert.ErrorIs(t, err, services.ErrGateAlreadyDecided)
}

func TestDecideSameVerdictIsIdempotent(t *testing.T) {
	svc := NewService(newFakeGateStore(), nil, DefaultConfig())
	gate, err := svc.Open(context.Background(), OpenRequest{RunID: "run-1", Phase: 1, ArtifactRef: "a"})
	require.NoError(t, err)

	first, err := svc.Decide(context.Background(), gate.ID, models.GateDecisionRequest{
		Decision: "approved", ApproverID: "alice",
	})
	require.NoError(t, err)

	// A retried delivery of the same verdict is a no-op, not a conflict.
	again, err := svc.Decide(context.Background(), gate.ID, models.GateDecisionRequest{
		Decision: "approved", ApproverID: "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, humangate.StatusApproved, again.Status)
	require.NotNil(t, again.ApproverID)
	assert.Equal(t, *first.ApproverID, *again.ApproverID)
	assert.Equal(t, first.DecidedAt, again.DecidedAt, "the recorded decision is unchanged")
}

func TestAwaitWakesOnLocalDecision(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PollInterval = time.Hour // force wake-driven resumption
	svc := NewService(newFakeGateStore(), nil, cfg)

	gate, err := svc.Open(context.Background(), OpenRequest{RunID: "run-1", Phase: 1, ArtifactRef: "a"})
	require.NoError(t, err)

	type outcome struct {
		gate *ent.HumanGate
		err  error
	}
	resultCh := make(chan outcome, 1)
	go func() {
		g, err := svc.Await(context.Background(), gate.ID)
		resultCh <- outcome{g, err}
	}()

	time.Sleep(50 * time.Millisecond)
	_, err = svc.Decide(context.Background(), gate.ID, models.GateDecisionRequest{
		Decision: "revision_requested", ApproverID: "alice", Notes: "tighten the ICP",
	})
	require.NoError(t, err)

	select {
	case res := <-resultCh:
		require.NoError(t, res.err)
		assert.Equal(t, humangate.StatusRevisionRequested, res.gate.Status)
		require.NotNil(t, res.gate.Notes)
		assert.Equal(t, "tighten the ICP", *res.gate.Notes)
	case <-time.After(2 * time.Second):
		t.Fatal("Await did not wake on decision")
	}
}

func TestAwaitWakesOnCrossPodNotification(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PollInterval = time.Hour
	store := newFakeGateStore()
	svc := NewService(store, nil, cfg)

	gate, err := svc.Open(context.Background(), OpenRequest{RunID: "run-1", Phase: 2, ArtifactRef: "a"})
	require.NoError(t, err)

	resultCh := make(chan *ent.HumanGate, 1)
	go func() {
		g, err := svc.Await(context.Background(), gate.ID)
		require.NoError(t, err)
		resultCh <- g
	}()

	time.Sleep(50 * time.Millisecond)
	// Another pod decided; only the NOTIFY payload reaches this one.
	_, err = store.SubmitDecision(context.Background(), gate.ID, models.GateDecisionRequest{
		Decision: "approved", ApproverID: "alice",
	})
	require.NoError(t, err)
	svc.NotifyDecision(gate.ID)

	select {
	case g := <-resultCh:
		assert.Equal(t, humangate.StatusApproved, g.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("Await did not wake on cross-pod notification")
	}
}

func TestAwaitReturnsOnContextCancel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PollInterval = time.Hour
	svc := NewService(newFakeGateStore(), nil, cfg)

	gate, err := svc.Open(context.Background(), OpenRequest{RunID: "run-1", Phase: 1, ArtifactRef: "a"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = svc.Await(ctx, gate.ID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSweeperExpiresAndWakes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PollInterval = time.Hour
	store := newFakeGateStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, cfg)

	gate, err := svc.Open(context.Background(), OpenRequest{
		RunID:       "run-1",
		Phase:       3,
		ArtifactRef: "a",
		RunConfig:   &models.RunConfig{GateTTLSecs: 1},
	})
	require.NoError(t, err)

	// Make the gate overdue without waiting out the TTL.
	store.mu.Lock()
	store.gates[gate.ID].Deadline = time.Now().Add(-time.Second)
	store.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	sweeper := NewSweeper(svc, 20*time.Millisecond)
	sweeper.Start(ctx)

	require.Eventually(t, func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		return len(notifier.decided) == 1
	}, 2*time.Second, 10*time.Millisecond, "sweeper did not expire the gate")

	cancel()
	sweeper.Wait()

	g, err := svc.Poll(context.Background(), gate.ID)
	require.NoError(t, err)
	assert.Equal(t, humangate.StatusExpired, g.Status)
	require.NotNil(t, g.ApproverID)
	assert.Equal(t, services.SystemApproverID, *g.ApproverID)
}
