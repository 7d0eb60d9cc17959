package tools

import (
	"fmt"
	"sort"
	"sync"
)

// Tier is a cost class. Lower tiers are tried first.
type Tier int

// Cost tiers, lowest first.
const (
	TierFree      Tier = 1
	TierCheap     Tier = 2
	TierModerate  Tier = 3
	TierExpensive Tier = 4
)

// String returns the tier's persisted name.
func (t Tier) String() string {
	switch t {
	case TierFree:
		return "free"
	case TierCheap:
		return "cheap"
	case TierModerate:
		return "moderate"
	case TierExpensive:
		return "expensive"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// RouteMode selects how a route picks tools across tiers.
type RouteMode string

// Route modes.
const (
	// ModeWaterfall tries each tier in order, escalating when every tool
	// in the tier fails or returns an insufficient result.
	ModeWaterfall RouteMode = "waterfall"

	// ModeFanout invokes the top-K tools in the lowest permitted tiers in
	// parallel and merges their results, deduped by the route's key.
	ModeFanout RouteMode = "fanout"

	// ModeCheapestFirst escalates tiers accumulating results until the
	// merged set reaches the route's coverage threshold.
	ModeCheapestFirst RouteMode = "cheapest_first_until_coverage"
)

// ToolSpec binds a tool id to its adapter, tier, and cost estimate.
type ToolSpec struct {
	// ID identifies the tool for breakers, limiters, caps, and audit rows.
	ID string

	// Tier is the tool's cost class.
	Tier Tier

	// CostPerCallUSD is the estimate used for budget authorization and as
	// the charge when the provider does not report cost.
	CostPerCallUSD float64

	// Ops are the abstract operations this tool serves.
	Ops []string

	// Adapter executes invocations.
	Adapter ToolAdapter
}

// OpRoute is the routing policy for one abstract operation.
type OpRoute struct {
	// Op is the abstract operation name, e.g. "web_search".
	Op string

	// Mode selects the routing strategy. Defaults to waterfall.
	Mode RouteMode

	// MaxTier bounds waterfall escalation. Zero means TierExpensive.
	MaxTier Tier

	// TopK bounds fanout parallelism. Zero means every eligible tool.
	TopK int

	// MinResults is the sufficiency threshold: a result with fewer items
	// is insufficient and triggers escalation. Zero disables the check.
	MinResults int

	// MinConfidence is a sufficiency threshold against the result's
	// "confidence" data field. Zero disables the check.
	MinConfidence float64

	// DedupeKey is the item field merged results are deduplicated by,
	// e.g. "url" or "email". Empty disables dedupe.
	DedupeKey string
}

// Registry holds the tool and route tables, immutable after startup.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]*ToolSpec
	routes map[string]*OpRoute
	byOp   map[string][]*ToolSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:  make(map[string]*ToolSpec),
		routes: make(map[string]*OpRoute),
		byOp:   make(map[string][]*ToolSpec),
	}
}

// RegisterTool adds a tool. Duplicate ids and missing adapters are
// configuration errors.
func (r *Registry) RegisterTool(spec *ToolSpec) error {
	if spec.ID == "" {
		return fmt.Errorf("tool spec missing id")
	}
	if spec.Adapter == nil {
		return fmt.Errorf("tool %s missing adapter", spec.ID)
	}
	if spec.Tier < TierFree || spec.Tier > TierExpensive {
		return fmt.Errorf("tool %s has invalid tier %d", spec.ID, spec.Tier)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[spec.ID]; exists {
		return fmt.Errorf("tool %s already registered", spec.ID)
	}
	r.tools[spec.ID] = spec
	for _, op := range spec.Ops {
		r.byOp[op] = append(r.byOp[op], spec)
		// Stable order: tier ascending, then cost, then id.
		sort.SliceStable(r.byOp[op], func(i, j int) bool {
			a, b := r.byOp[op][i], r.byOp[op][j]
			if a.Tier != b.Tier {
				return a.Tier < b.Tier
			}
			if a.CostPerCallUSD != b.CostPerCallUSD {
				return a.CostPerCallUSD < b.CostPerCallUSD
			}
			return a.ID < b.ID
		})
	}
	return nil
}

// RegisterRoute adds a routing policy for an operation.
func (r *Registry) RegisterRoute(route *OpRoute) error {
	if route.Op == "" {
		return fmt.Errorf("route missing op")
	}
	if route.Mode == "" {
		route.Mode = ModeWaterfall
	}
	switch route.Mode {
	case ModeWaterfall, ModeFanout, ModeCheapestFirst:
	default:
		return fmt.Errorf("route %s has unknown mode %q", route.Op, route.Mode)
	}
	if route.MaxTier == 0 {
		route.MaxTier = TierExpensive
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.routes[route.Op]; exists {
		return fmt.Errorf("route %s already registered", route.Op)
	}
	r.routes[route.Op] = route
	return nil
}

// Route returns the routing policy for an op, defaulting to waterfall up
// to the expensive tier when none is configured.
func (r *Registry) Route(op string) *OpRoute {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if route, ok := r.routes[op]; ok {
		return route
	}
	return &OpRoute{Op: op, Mode: ModeWaterfall, MaxTier: TierExpensive}
}

// Tool returns a tool spec by id.
func (r *Registry) Tool(id string) (*ToolSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.tools[id]
	return spec, ok
}

// ToolsForOp returns the tools serving op up to maxTier, ordered tier
// ascending then cost ascending.
func (r *Registry) ToolsForOp(op string, maxTier Tier) []*ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*ToolSpec
	for _, spec := range r.byOp[op] {
		if spec.Tier <= maxTier {
			out = append(out, spec)
		}
	}
	return out
}
