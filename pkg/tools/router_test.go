package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/resilience"
)

// fakeStore is an in-memory InvocationStore with the success-cache contract.
type fakeStore struct {
	mu      sync.Mutex
	records []models.RecordInvocationRequest
	cache   map[string]*ent.ToolInvocation
}

func newFakeStore() *fakeStore {
	return &fakeStore{cache: make(map[string]*ent.ToolInvocation)}
}

func cacheKey(runID, toolID, op, paramsHash string) string {
	return strings.Join([]string{runID, toolID, op, paramsHash}, "|")
}

func (s *fakeStore) RecordInvocation(ctx context.Context, req models.RecordInvocationRequest) (*ent.ToolInvocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, req)
	inv := &ent.ToolInvocation{ID: req.InvocationID, Result: req.Result}
	if req.Outcome == string(toolinvocation.OutcomeSuccess) {
		s.cache[cacheKey(req.RunID, req.ToolID, req.Op, req.ParamsHash)] = inv
	}
	return inv, nil
}

func (s *fakeStore) GetCachedInvocation(ctx context.Context, runID, toolID, op, paramsHash string) (*ent.ToolInvocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inv, ok := s.cache[cacheKey(runID, toolID, op, paramsHash)]; ok {
		return inv, nil
	}
	return nil, errors.New("not found")
}

func (s *fakeStore) outcomes() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]string)
	for _, rec := range s.records {
		out[rec.ToolID] = append(out[rec.ToolID], rec.Outcome)
	}
	return out
}

// fakeGovernor allows everything unless a tool is listed in deny.
type fakeGovernor struct {
	mu      sync.Mutex
	deny    map[string]bool
	charges []float64
}

func (g *fakeGovernor) Authorize(ctx context.Context, runID, toolID string, phase int, estimatedUSD float64) error {
	if g.deny[toolID] {
		return resilience.BudgetDenied(fmt.Errorf("tool cap exceeded for %s", toolID))
	}
	return nil
}

func (g *fakeGovernor) Charge(ctx context.Context, runID, toolID string, phase int, actualUSD float64, invocationID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.charges = append(g.charges, actualUSD)
	return nil
}

// fnAdapter delegates to a function and counts calls.
type fnAdapter struct {
	calls      atomic.Int64
	idempotent bool
	fn         func(op string, params map[string]any) (*Result, error)
}

func (a *fnAdapter) Invoke(ctx context.Context, op string, params map[string]any) (*Result, error) {
	a.calls.Add(1)
	return a.fn(op, params)
}

func (a *fnAdapter) Idempotent() bool { return a.idempotent }

func succeedWith(items ...map[string]any) *fnAdapter {
	return &fnAdapter{idempotent: true, fn: func(op string, params map[string]any) (*Result, error) {
		return &Result{Items: items}, nil
	}}
}

func failWith(err error) *fnAdapter {
	return &fnAdapter{idempotent: true, fn: func(op string, params map[string]any) (*Result, error) {
		return nil, err
	}}
}

func newTestRouter(reg *Registry, store InvocationStore, governor CostGovernor) *Router {
	breakers := resilience.NewBreakerRegistry(resilience.DefaultBreakerConfig(), nil)
	limiters := resilience.NewLimiterRegistry(
		resilience.LimiterConfig{Capacity: 1000, RefillRPS: 1000, WaitDeadline: time.Second}, nil)
	policy := resilience.RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, ExponentialBase: 2.0}
	return NewRouter(reg, breakers, limiters, governor, store, policy, nil)
}

func request(op string) InvokeRequest {
	return InvokeRequest{
		RunID:  "run-1",
		TaskID: "task-1",
		Phase:  1,
		Op:     op,
		Params: map[string]any{"query": "golang"},
	}
}

func TestWaterfallEscalatesPastFailure(t *testing.T) {
	reg := NewRegistry()
	free := failWith(resilience.Permanent(errors.New("quota exhausted")))
	cheap := succeedWith(map[string]any{"url": "https://a.example"})
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "ddg", Tier: TierFree, Ops: []string{"web_search"}, Adapter: free}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, CostPerCallUSD: 0.001, Ops: []string{"web_search"}, Adapter: cheap}))

	store := newFakeStore()
	router := newTestRouter(reg, store, &fakeGovernor{})

	result, err := router.Execute(context.Background(), request("web_search"))
	require.NoError(t, err)
	assert.Equal(t, "serper", result.ToolID)
	assert.Equal(t, TierCheap, result.Tier)
	assert.Len(t, result.Items, 1)
	assert.InDelta(t, 0.001, result.CostUSD, 1e-9)

	outcomes := store.outcomes()
	assert.Equal(t, []string{"permanent_failure"}, outcomes["ddg"])
	assert.Equal(t, []string{"success"}, outcomes["serper"])
}

func TestWaterfallEscalatesOnInsufficiency(t *testing.T) {
	reg := NewRegistry()
	thin := succeedWith(map[string]any{"url": "https://only.example"})
	rich := succeedWith(
		map[string]any{"url": "https://a.example"},
		map[string]any{"url": "https://b.example"},
		map[string]any{"url": "https://c.example"},
	)
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "ddg", Tier: TierFree, Ops: []string{"web_search"}, Adapter: thin}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "exa", Tier: TierExpensive, CostPerCallUSD: 0.01, Ops: []string{"web_search"}, Adapter: rich}))
	require.NoError(t, reg.RegisterRoute(&OpRoute{Op: "web_search", Mode: ModeWaterfall, MinResults: 3}))

	router := newTestRouter(reg, newFakeStore(), &fakeGovernor{})

	result, err := router.Execute(context.Background(), request("web_search"))
	require.NoError(t, err)
	assert.Equal(t, "exa", result.ToolID)
	assert.Len(t, result.Items, 3)
}

func TestWaterfallCompositeErrorWhenExhausted(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "ddg", Tier: TierFree, Ops: []string{"web_search"},
		Adapter: failWith(resilience.Permanent(errors.New("blocked")))}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, Ops: []string{"web_search"},
		Adapter: failWith(resilience.Permanent(errors.New("invalid key")))}))

	router := newTestRouter(reg, newFakeStore(), &fakeGovernor{})

	_, err := router.Execute(context.Background(), request("web_search"))
	require.Error(t, err)
	assert.Equal(t, resilience.ClassPermanent, resilience.ClassOf(err))
	assert.Contains(t, err.Error(), "ddg")
	assert.Contains(t, err.Error(), "serper")
}

func TestWaterfallBudgetDenialAborts(t *testing.T) {
	reg := NewRegistry()
	fallback := succeedWith(map[string]any{"url": "https://a.example"})
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, CostPerCallUSD: 0.001, Ops: []string{"web_search"}, Adapter: fallback}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "exa", Tier: TierExpensive, CostPerCallUSD: 0.01, Ops: []string{"web_search"}, Adapter: fallback}))

	governor := &fakeGovernor{deny: map[string]bool{"serper": true}}
	router := newTestRouter(reg, newFakeStore(), governor)

	// Denial is not a provider failure: no tier escalation past it.
	_, err := router.Execute(context.Background(), request("web_search"))
	require.Error(t, err)
	assert.Equal(t, resilience.ClassBudgetDenied, resilience.ClassOf(err))
}

func TestFanoutMergesAndDedupes(t *testing.T) {
	reg := NewRegistry()
	a := succeedWith(
		map[string]any{"email": "ceo@acme.com", "source": "hunter"},
		map[string]any{"email": "vp@acme.com", "source": "hunter"},
	)
	b := succeedWith(
		map[string]any{"email": "ceo@acme.com", "source": "dropcontact"},
		map[string]any{"email": "cto@acme.com", "source": "dropcontact"},
	)
	broken := failWith(resilience.Transient(errors.New("upstream 503")))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "hunter", Tier: TierCheap, CostPerCallUSD: 0.001, Ops: []string{"find_email"}, Adapter: a}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "dropcontact", Tier: TierCheap, CostPerCallUSD: 0.002, Ops: []string{"find_email"}, Adapter: b}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "snov", Tier: TierCheap, CostPerCallUSD: 0.003, Ops: []string{"find_email"}, Adapter: broken}))
	require.NoError(t, reg.RegisterRoute(&OpRoute{Op: "find_email", Mode: ModeFanout, TopK: 3, DedupeKey: "email"}))

	router := newTestRouter(reg, newFakeStore(), &fakeGovernor{})

	result, err := router.Execute(context.Background(), request("find_email"))
	require.NoError(t, err)

	emails := make(map[string]bool)
	for _, item := range result.Items {
		emails[item["email"].(string)] = true
	}
	assert.Len(t, result.Items, 3)
	assert.True(t, emails["ceo@acme.com"])
	assert.True(t, emails["vp@acme.com"])
	assert.True(t, emails["cto@acme.com"])
	assert.Len(t, result.Sources, 2)
	assert.Contains(t, result.SourceErrors, "snov")
}

func TestFanoutAllFailuresComposite(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "hunter", Tier: TierCheap, Ops: []string{"find_email"},
		Adapter: failWith(resilience.Permanent(errors.New("invalid key")))}))
	require.NoError(t, reg.RegisterRoute(&OpRoute{Op: "find_email", Mode: ModeFanout, DedupeKey: "email"}))

	router := newTestRouter(reg, newFakeStore(), &fakeGovernor{})

	_, err := router.Execute(context.Background(), request("find_email"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hunter")
}

func TestCheapestFirstStopsAtCoverage(t *testing.T) {
	reg := NewRegistry()
	free := succeedWith(
		map[string]any{"url": "https://a.example"},
		map[string]any{"url": "https://b.example"},
	)
	cheap := succeedWith(
		map[string]any{"url": "https://b.example"},
		map[string]any{"url": "https://c.example"},
	)
	expensive := succeedWith(map[string]any{"url": "https://d.example"})
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "ddg", Tier: TierFree, Ops: []string{"web_search"}, Adapter: free}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, CostPerCallUSD: 0.001, Ops: []string{"web_search"}, Adapter: cheap}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "exa", Tier: TierExpensive, CostPerCallUSD: 0.01, Ops: []string{"web_search"}, Adapter: expensive}))
	require.NoError(t, reg.RegisterRoute(&OpRoute{Op: "web_search", Mode: ModeCheapestFirst, MinResults: 3, DedupeKey: "url"}))

	router := newTestRouter(reg, newFakeStore(), &fakeGovernor{})

	result, err := router.Execute(context.Background(), request("web_search"))
	require.NoError(t, err)

	// Coverage reached after the cheap tier; the expensive tool is never called.
	assert.Len(t, result.Items, 3)
	assert.Equal(t, []string{"ddg", "serper"}, result.Sources)
	assert.Equal(t, int64(0), expensive.calls.Load())
}

func TestSingleFlightDedupesConcurrentRequests(t *testing.T) {
	reg := NewRegistry()
	slow := &fnAdapter{idempotent: true, fn: func(op string, params map[string]any) (*Result, error) {
		time.Sleep(20 * time.Millisecond)
		return &Result{Items: []map[string]any{{"url": "https://a.example"}}}, nil
	}}
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, CostPerCallUSD: 0.001, Ops: []string{"web_search"}, Adapter: slow}))

	router := newTestRouter(reg, newFakeStore(), &fakeGovernor{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := router.Execute(context.Background(), request("web_search"))
			assert.NoError(t, err)
			assert.Len(t, result.Items, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), slow.calls.Load())
}

func TestDurableCacheServesRepeatRequests(t *testing.T) {
	reg := NewRegistry()
	adapter := succeedWith(map[string]any{"url": "https://a.example"})
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, CostPerCallUSD: 0.001, Ops: []string{"web_search"}, Adapter: adapter}))

	store := newFakeStore()
	governor := &fakeGovernor{}
	router := newTestRouter(reg, store, governor)

	first, err := router.Execute(context.Background(), request("web_search"))
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := router.Execute(context.Background(), request("web_search"))
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Len(t, second.Items, 1)

	// One provider call, one charge.
	assert.Equal(t, int64(1), adapter.calls.Load())
	assert.Len(t, governor.charges, 1)
}

func TestOpenBreakerEscalatesTier(t *testing.T) {
	reg := NewRegistry()
	flaky := failWith(resilience.Transient(errors.New("upstream 503")))
	healthy := succeedWith(map[string]any{"url": "https://a.example"})
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "ddg", Tier: TierFree, Ops: []string{"web_search"}, Adapter: flaky}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, CostPerCallUSD: 0.001, Ops: []string{"web_search"}, Adapter: healthy}))

	store := newFakeStore()
	router := newTestRouter(reg, store, &fakeGovernor{})
	// Open ddg's breaker directly.
	breaker := router.breakers.Get("ddg")
	for i := 0; i < resilience.DefaultBreakerConfig().FailureThreshold; i++ {
		breaker.RecordFailure()
	}
	require.Equal(t, resilience.BreakerOpen, breaker.State())

	result, err := router.Execute(context.Background(), request("web_search"))
	require.NoError(t, err)
	assert.Equal(t, "serper", result.ToolID)

	outcomes := store.outcomes()
	assert.Equal(t, []string{"circuit_open"}, outcomes["ddg"])
}

func TestNonIdempotentAdapterNotRetried(t *testing.T) {
	reg := NewRegistry()
	sender := &fnAdapter{idempotent: false, fn: func(op string, params map[string]any) (*Result, error) {
		return nil, resilience.Transient(errors.New("smtp handshake reset"))
	}}
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "instantly", Tier: TierModerate, CostPerCallUSD: 0.005, Ops: []string{"send_email"}, Adapter: sender}))

	router := newTestRouter(reg, newFakeStore(), &fakeGovernor{})

	_, err := router.Execute(context.Background(), request("send_email"))
	require.Error(t, err)
	assert.Equal(t, int64(1), sender.calls.Load())
}

func TestUnknownOpIsInputError(t *testing.T) {
	router := newTestRouter(NewRegistry(), newFakeStore(), &fakeGovernor{})

	_, err := router.Execute(context.Background(), request("nonexistent"))
	require.Error(t, err)
	assert.Equal(t, resilience.ClassInput, resilience.ClassOf(err))
}
