package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/pkg/metrics"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/resilience"
)

// InvocationStore persists the audit log and serves the run-scoped result
// cache. Implemented by services.InvocationService.
type InvocationStore interface {
	RecordInvocation(ctx context.Context, req models.RecordInvocationRequest) (*ent.ToolInvocation, error)
	GetCachedInvocation(ctx context.Context, runID, toolID, op, paramsHash string) (*ent.ToolInvocation, error)
}

// CostGovernor authorizes estimated spend and records actual charges.
// Implemented by budget.Governor.
type CostGovernor interface {
	Authorize(ctx context.Context, runID, toolID string, phase int, estimatedUSD float64) error
	Charge(ctx context.Context, runID, toolID string, phase int, actualUSD float64, invocationID string) error
}

// InvokeRequest is one abstract operation to route.
type InvokeRequest struct {
	RunID  string
	TaskID string
	Phase  int
	Op     string
	Params map[string]any
}

// RouteResult is the routed outcome: the satisfying tool's result for
// waterfall, or the merged set for fanout and coverage modes.
type RouteResult struct {
	ToolID  string
	Tier    Tier
	Sources []string
	Items   []map[string]any
	Data    map[string]any
	CostUSD float64
	Cached  bool

	// SourceErrors holds per-tool failures from fanout merges.
	SourceErrors map[string]string
}

// Router dispatches abstract operations to registered tools with the
// resilience guards, budget authorization, single-flight dedup, and the
// durable invocation cache wrapped around every call.
type Router struct {
	registry *Registry
	breakers *resilience.BreakerRegistry
	limiters *resilience.LimiterRegistry
	governor CostGovernor
	store    InvocationStore

	retryDefaults  resilience.RetryPolicy
	retryOverrides map[string]resilience.RetryPolicy

	group  singleflight.Group
	logger *slog.Logger
}

// NewRouter wires a router from its collaborators.
func NewRouter(
	registry *Registry,
	breakers *resilience.BreakerRegistry,
	limiters *resilience.LimiterRegistry,
	governor CostGovernor,
	store InvocationStore,
	retryDefaults resilience.RetryPolicy,
	retryOverrides map[string]resilience.RetryPolicy,
) *Router {
	return &Router{
		registry:       registry,
		breakers:       breakers,
		limiters:       limiters,
		governor:       governor,
		store:          store,
		retryDefaults:  retryDefaults,
		retryOverrides: retryOverrides,
		logger:         slog.Default().With("component", "tool_router"),
	}
}

// Execute routes one request per its op's configured mode.
func (r *Router) Execute(ctx context.Context, req InvokeRequest) (*RouteResult, error) {
	if req.RunID == "" || req.TaskID == "" || req.Op == "" {
		return nil, resilience.NewError(resilience.ClassInput,
			fmt.Errorf("invoke request missing run_id, task_id, or op"))
	}

	paramsHash, err := HashParams(req.Params)
	if err != nil {
		return nil, resilience.NewError(resilience.ClassInput, err)
	}

	route := r.registry.Route(req.Op)
	eligible := r.registry.ToolsForOp(req.Op, route.MaxTier)
	if len(eligible) == 0 {
		return nil, resilience.NewError(resilience.ClassInput,
			fmt.Errorf("no tools registered for op %s", req.Op))
	}

	switch route.Mode {
	case ModeFanout:
		return r.executeFanout(ctx, req, route, eligible, paramsHash)
	case ModeCheapestFirst:
		return r.executeCheapestFirst(ctx, req, route, eligible, paramsHash)
	default:
		return r.executeWaterfall(ctx, req, route, eligible, paramsHash)
	}
}

// executeWaterfall tries tools in tier order and returns the first
// sufficient result. Budget denial aborts immediately.
func (r *Router) executeWaterfall(ctx context.Context, req InvokeRequest, route *OpRoute, eligible []*ToolSpec, paramsHash string) (*RouteResult, error) {
	failures := make(map[string]error, len(eligible))

	for _, spec := range eligible {
		result, err := r.callTool(ctx, req, spec, paramsHash)
		if err != nil {
			if resilience.ClassOf(err) == resilience.ClassBudgetDenied {
				return nil, err
			}
			failures[spec.ID] = err
			continue
		}
		if !sufficient(route, result) {
			failures[spec.ID] = resilience.Permanent(fmt.Errorf(
				"insufficient result from %s: %d items", spec.ID, len(result.Items)))
			continue
		}
		return result, nil
	}

	return nil, compositeError(req.Op, failures)
}

// executeFanout invokes the top-K eligible tools in parallel and merges
// their results. Partial success wins; total failure is composite.
func (r *Router) executeFanout(ctx context.Context, req InvokeRequest, route *OpRoute, eligible []*ToolSpec, paramsHash string) (*RouteResult, error) {
	picked := eligible
	if route.TopK > 0 && route.TopK < len(picked) {
		picked = picked[:route.TopK]
	}

	type indexed struct {
		spec   *ToolSpec
		result *RouteResult
		err    error
	}
	results := make([]indexed, len(picked))

	var wg sync.WaitGroup
	for i, spec := range picked {
		wg.Add(1)
		go func(i int, spec *ToolSpec) {
			defer wg.Done()
			result, err := r.callTool(ctx, req, spec, paramsHash)
			results[i] = indexed{spec: spec, result: result, err: err}
		}(i, spec)
	}
	wg.Wait()

	merged := &RouteResult{
		Data:         make(map[string]any),
		SourceErrors: make(map[string]string),
	}
	failures := make(map[string]error)
	seen := make(map[string]bool)

	for _, res := range results {
		if res.err != nil {
			if resilience.ClassOf(res.err) == resilience.ClassBudgetDenied {
				return nil, res.err
			}
			failures[res.spec.ID] = res.err
			merged.SourceErrors[res.spec.ID] = res.err.Error()
			continue
		}
		merged.Sources = append(merged.Sources, res.spec.ID)
		if res.spec.Tier > merged.Tier {
			merged.Tier = res.spec.Tier
		}
		merged.CostUSD += res.result.CostUSD
		mergeItems(merged, res.result.Items, route.DedupeKey, seen)
		for k, v := range res.result.Data {
			merged.Data[k] = v
		}
	}

	if len(merged.Sources) == 0 {
		return nil, compositeError(req.Op, failures)
	}
	merged.ToolID = merged.Sources[0]
	return merged, nil
}

// executeCheapestFirst escalates tier by tier, accumulating deduped items
// until the coverage threshold is met.
func (r *Router) executeCheapestFirst(ctx context.Context, req InvokeRequest, route *OpRoute, eligible []*ToolSpec, paramsHash string) (*RouteResult, error) {
	merged := &RouteResult{
		Data:         make(map[string]any),
		SourceErrors: make(map[string]string),
	}
	failures := make(map[string]error)
	seen := make(map[string]bool)

	for _, spec := range eligible {
		result, err := r.callTool(ctx, req, spec, paramsHash)
		if err != nil {
			if resilience.ClassOf(err) == resilience.ClassBudgetDenied {
				return nil, err
			}
			failures[spec.ID] = err
			merged.SourceErrors[spec.ID] = err.Error()
			continue
		}
		merged.Sources = append(merged.Sources, spec.ID)
		if spec.Tier > merged.Tier {
			merged.Tier = spec.Tier
		}
		merged.CostUSD += result.CostUSD
		mergeItems(merged, result.Items, route.DedupeKey, seen)
		for k, v := range result.Data {
			merged.Data[k] = v
		}

		if route.MinResults > 0 && len(merged.Items) >= route.MinResults {
			break
		}
	}

	if len(merged.Sources) == 0 {
		return nil, compositeError(req.Op, failures)
	}
	merged.ToolID = merged.Sources[0]
	return merged, nil
}

// callTool runs one guarded invocation: durable cache, single-flight,
// breaker, budget, limiter, retry, audit row, charge.
func (r *Router) callTool(ctx context.Context, req InvokeRequest, spec *ToolSpec, paramsHash string) (*RouteResult, error) {
	if cached, err := r.store.GetCachedInvocation(ctx, req.RunID, spec.ID, req.Op, paramsHash); err == nil {
		result := decodeStoredResult(cached.Result)
		result.ToolID = spec.ID
		result.Tier = spec.Tier
		result.Cached = true
		return result, nil
	}

	key := strings.Join([]string{req.RunID, spec.ID, req.Op, paramsHash}, "|")
	v, err, _ := r.group.Do(key, func() (any, error) {
		return r.invokeOnce(ctx, req, spec, paramsHash)
	})
	if err != nil {
		return nil, err
	}
	return v.(*RouteResult), nil
}

// invokeOnce is the single-flight body: exactly one concurrent caller per
// logical request reaches the provider.
func (r *Router) invokeOnce(ctx context.Context, req InvokeRequest, spec *ToolSpec, paramsHash string) (*RouteResult, error) {
	invocationID := uuid.NewString()
	breaker := r.breakers.Get(spec.ID)
	limiter := r.limiters.Get(spec.ID)

	if err := r.governor.Authorize(ctx, req.RunID, spec.ID, req.Phase, spec.CostPerCallUSD); err != nil {
		r.recordFailure(req, spec, paramsHash, invocationID, err, 0)
		return nil, err
	}

	policy := r.retryDefaults
	if override, ok := r.retryOverrides[spec.ID]; ok {
		policy = override
	}
	if !spec.Adapter.Idempotent() {
		policy.MaxAttempts = 1
	}

	start := time.Now()
	var result *Result
	err := policy.Execute(ctx, func(ctx context.Context) error {
		if allowErr := breaker.Allow(); allowErr != nil {
			return allowErr
		}
		if acquireErr := limiter.Acquire(ctx); acquireErr != nil {
			breaker.RecordUnmonitoredFailure()
			return acquireErr
		}

		res, invokeErr := spec.Adapter.Invoke(ctx, req.Op, req.Params)
		if invokeErr != nil {
			if resilience.ClassOf(invokeErr) == resilience.ClassTransient {
				breaker.RecordFailure()
			} else {
				breaker.RecordUnmonitoredFailure()
			}
			return invokeErr
		}
		breaker.RecordSuccess()
		result = res
		return nil
	})
	latencyMs := int(time.Since(start).Milliseconds())

	if err != nil {
		r.recordFailure(req, spec, paramsHash, invocationID, err, latencyMs)
		return nil, err
	}

	costUSD := result.CostUSD
	if costUSD == 0 {
		costUSD = spec.CostPerCallUSD
	}

	stored := map[string]any{}
	if len(result.Items) > 0 {
		stored["items"] = result.Items
	}
	if len(result.Data) > 0 {
		stored["data"] = result.Data
	}

	if _, recErr := r.store.RecordInvocation(ctx, models.RecordInvocationRequest{
		InvocationID: invocationID,
		RunID:        req.RunID,
		TaskID:       req.TaskID,
		ToolID:       spec.ID,
		Op:           req.Op,
		ParamsHash:   paramsHash,
		Tier:         spec.Tier.String(),
		Outcome:      string(toolinvocation.OutcomeSuccess),
		Result:       stored,
		CostUSD:      costUSD,
		LatencyMs:    &latencyMs,
	}); recErr != nil {
		r.logger.Warn("Failed to record invocation",
			"invocation_id", invocationID,
			"tool_id", spec.ID,
			"error", recErr)
	}

	if chargeErr := r.governor.Charge(ctx, req.RunID, spec.ID, req.Phase, costUSD, invocationID); chargeErr != nil {
		r.logger.Error("Failed to charge invocation cost",
			"invocation_id", invocationID,
			"tool_id", spec.ID,
			"cost_usd", costUSD,
			"error", chargeErr)
	}

	metrics.ObserveInvocation(spec.ID, string(toolinvocation.OutcomeSuccess))

	return &RouteResult{
		ToolID:  spec.ID,
		Tier:    spec.Tier,
		Sources: []string{spec.ID},
		Items:   result.Items,
		Data:    result.Data,
		CostUSD: costUSD,
	}, nil
}

// recordFailure writes the audit row for a failed or rejected invocation.
func (r *Router) recordFailure(req InvokeRequest, spec *ToolSpec, paramsHash, invocationID string, cause error, latencyMs int) {
	metrics.ObserveInvocation(spec.ID, outcomeForError(cause))

	msg := cause.Error()
	// Audit writes survive caller cancellation.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.store.RecordInvocation(ctx, models.RecordInvocationRequest{
		InvocationID: invocationID,
		RunID:        req.RunID,
		TaskID:       req.TaskID,
		ToolID:       spec.ID,
		Op:           req.Op,
		ParamsHash:   paramsHash,
		Tier:         spec.Tier.String(),
		Outcome:      outcomeForError(cause),
		ErrorMessage: &msg,
		LatencyMs:    &latencyMs,
	}); err != nil {
		r.logger.Warn("Failed to record failed invocation",
			"invocation_id", invocationID,
			"tool_id", spec.ID,
			"error", err)
	}
}

// outcomeForError maps a failure class to the persisted outcome value.
func outcomeForError(err error) string {
	switch resilience.ClassOf(err) {
	case resilience.ClassRateLimited:
		return string(toolinvocation.OutcomeRateLimited)
	case resilience.ClassCircuitOpen:
		return string(toolinvocation.OutcomeCircuitOpen)
	case resilience.ClassBudgetDenied:
		return string(toolinvocation.OutcomeBudgetDenied)
	case resilience.ClassTransient:
		return string(toolinvocation.OutcomeRetryableFailure)
	default:
		return string(toolinvocation.OutcomePermanentFailure)
	}
}

// sufficient applies the route's insufficiency predicate.
func sufficient(route *OpRoute, result *RouteResult) bool {
	if route.MinResults > 0 && len(result.Items) < route.MinResults {
		return false
	}
	if route.MinConfidence > 0 {
		conf, ok := result.Data["confidence"].(float64)
		if !ok || conf < route.MinConfidence {
			return false
		}
	}
	return true
}

// mergeItems appends items deduplicated by the route's key field.
func mergeItems(merged *RouteResult, items []map[string]any, dedupeKey string, seen map[string]bool) {
	for _, item := range items {
		if dedupeKey != "" {
			key, ok := item[dedupeKey].(string)
			if ok && key != "" {
				if seen[key] {
					continue
				}
				seen[key] = true
			}
		}
		merged.Items = append(merged.Items, item)
	}
}

// decodeStoredResult rebuilds a RouteResult from an invocation row's JSON
// result column, tolerating the []any shape JSON round-trips produce.
func decodeStoredResult(stored map[string]any) *RouteResult {
	result := &RouteResult{}
	if stored == nil {
		return result
	}

	switch items := stored["items"].(type) {
	case []map[string]any:
		result.Items = items
	case []any:
		for _, raw := range items {
			if item, ok := raw.(map[string]any); ok {
				result.Items = append(result.Items, item)
			}
		}
	}
	if data, ok := stored["data"].(map[string]any); ok {
		result.Data = data
	}
	return result
}

// compositeError summarizes every tool's failure after a route exhausted
// its tiers. The composite's class is the least terminal member class, so
// a route blocked only by open breakers still reads as circuit_open.
func compositeError(op string, failures map[string]error) error {
	if len(failures) == 0 {
		return resilience.NewError(resilience.ClassInput,
			fmt.Errorf("no tools attempted for op %s", op))
	}

	parts := make([]string, 0, len(failures))
	allCircuitOpen := true
	anyTransient := false
	for toolID, err := range failures {
		parts = append(parts, fmt.Sprintf("%s: %v", toolID, err))
		switch resilience.ClassOf(err) {
		case resilience.ClassCircuitOpen:
		case resilience.ClassTransient:
			allCircuitOpen = false
			anyTransient = true
		default:
			allCircuitOpen = false
		}
	}

	class := resilience.ClassPermanent
	if allCircuitOpen {
		class = resilience.ClassCircuitOpen
	} else if anyTransient {
		class = resilience.ClassTransient
	}
	return resilience.NewError(class, fmt.Errorf(
		"all tiers exhausted for op %s: %s", op, strings.Join(parts, "; ")))
}
