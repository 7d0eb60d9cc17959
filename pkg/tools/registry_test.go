package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopAdapter struct{}

func (noopAdapter) Invoke(ctx context.Context, op string, params map[string]any) (*Result, error) {
	return &Result{}, nil
}

func (noopAdapter) Idempotent() bool { return true }

func TestRegistryOrdersToolsByTierThenCost(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "exa", Tier: TierExpensive, CostPerCallUSD: 0.01, Ops: []string{"web_search"}, Adapter: noopAdapter{}}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, CostPerCallUSD: 0.001, Ops: []string{"web_search"}, Adapter: noopAdapter{}}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "ddg", Tier: TierFree, Ops: []string{"web_search"}, Adapter: noopAdapter{}}))
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "brave", Tier: TierCheap, CostPerCallUSD: 0.0005, Ops: []string{"web_search"}, Adapter: noopAdapter{}}))

	specs := reg.ToolsForOp("web_search", TierExpensive)
	ids := make([]string, len(specs))
	for i, s := range specs {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"ddg", "brave", "serper", "exa"}, ids)

	// MaxTier bounds the slice.
	specs = reg.ToolsForOp("web_search", TierCheap)
	assert.Len(t, specs, 3)
}

func TestRegistryRejectsDuplicatesAndBadSpecs(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, Ops: []string{"web_search"}, Adapter: noopAdapter{}}))

	assert.Error(t, reg.RegisterTool(&ToolSpec{ID: "serper", Tier: TierCheap, Adapter: noopAdapter{}}))
	assert.Error(t, reg.RegisterTool(&ToolSpec{ID: "", Tier: TierCheap, Adapter: noopAdapter{}}))
	assert.Error(t, reg.RegisterTool(&ToolSpec{ID: "x", Tier: TierCheap}))
	assert.Error(t, reg.RegisterTool(&ToolSpec{ID: "y", Tier: Tier(9), Adapter: noopAdapter{}}))
}

func TestRegistryRouteDefaults(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterRoute(&OpRoute{Op: "find_email", Mode: ModeFanout, TopK: 2, DedupeKey: "email"}))

	route := reg.Route("find_email")
	assert.Equal(t, ModeFanout, route.Mode)
	assert.Equal(t, TierExpensive, route.MaxTier)

	// Unconfigured ops fall back to waterfall across all tiers.
	fallback := reg.Route("unknown_op")
	assert.Equal(t, ModeWaterfall, fallback.Mode)
	assert.Equal(t, TierExpensive, fallback.MaxTier)

	assert.Error(t, reg.RegisterRoute(&OpRoute{Op: "find_email"}))
	assert.Error(t, reg.RegisterRoute(&OpRoute{Op: "z", Mode: RouteMode("bogus")}))
}

func TestTierNames(t *testing.T) {
	assert.Equal(t, "free", TierFree.String())
	assert.Equal(t, "cheap", TierCheap.String())
	assert.Equal(t, "moderate", TierModerate.String())
	assert.Equal(t, "expensive", TierExpensive.String())
}
