package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/tools"
	"github.com/outreachkit/prospector/pkg/tools/adapters"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		name string
		want tools.Tier
	}{
		{"free", tools.TierFree},
		{"cheap", tools.TierCheap},
		{"moderate", tools.TierModerate},
		{"expensive", tools.TierExpensive},
	}
	for _, tt := range tests {
		tier, err := parseTier(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tier)
	}

	_, err := parseTier("platinum")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestBuildToolRegistry(t *testing.T) {
	cfg := &ToolsYAMLConfig{
		Tools: map[string]ToolYAMLConfig{
			"hunter": {
				Tier:           "moderate",
				CostPerCallUSD: 0.01,
				Ops:            []string{"person_lookup", "verify_email"},
				Adapter: AdapterYAMLConfig{
					Type: AdapterTypeHTTPJSON,
					HTTP: &adapters.HTTPJSONConfig{
						BaseURL: "https://api.hunter.io/v2",
						OpPaths: map[string]string{
							"person_lookup": "/email-finder",
							"verify_email":  "/email-verifier",
						},
					},
				},
			},
			"fetch": {
				Tier:    "free",
				Ops:     []string{"fetch_url"},
				Adapter: AdapterYAMLConfig{Type: AdapterTypeFetch},
			},
		},
		Routes: map[string]RouteYAMLConfig{
			"person_lookup": {Mode: "fanout", MaxTier: "expensive", TopK: 3, DedupeKey: "email"},
		},
	}

	registry, err := BuildToolRegistry(cfg)
	require.NoError(t, err)

	spec, ok := registry.Tool("hunter")
	require.True(t, ok)
	assert.Equal(t, tools.TierModerate, spec.Tier)
	assert.InDelta(t, 0.01, spec.CostPerCallUSD, 1e-9)

	route := registry.Route("person_lookup")
	require.NotNil(t, route)
	assert.Equal(t, tools.ModeFanout, route.Mode)
	assert.Equal(t, tools.TierExpensive, route.MaxTier)
	assert.Equal(t, 3, route.TopK)
	assert.Equal(t, "email", route.DedupeKey)
}

func TestBuildToolRegistryErrors(t *testing.T) {
	t.Run("unknown tier", func(t *testing.T) {
		_, err := BuildToolRegistry(&ToolsYAMLConfig{
			Tools: map[string]ToolYAMLConfig{
				"x": {Tier: "platinum", Ops: []string{"op"}, Adapter: AdapterYAMLConfig{Type: AdapterTypeFetch}},
			},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("missing adapter type", func(t *testing.T) {
		_, err := BuildToolRegistry(&ToolsYAMLConfig{
			Tools: map[string]ToolYAMLConfig{
				"x": {Tier: "free", Ops: []string{"op"}},
			},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("unknown adapter type", func(t *testing.T) {
		_, err := BuildToolRegistry(&ToolsYAMLConfig{
			Tools: map[string]ToolYAMLConfig{
				"x": {Tier: "free", Ops: []string{"op"}, Adapter: AdapterYAMLConfig{Type: "soap"}},
			},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("http adapter without section", func(t *testing.T) {
		_, err := BuildToolRegistry(&ToolsYAMLConfig{
			Tools: map[string]ToolYAMLConfig{
				"x": {Tier: "free", Ops: []string{"op"}, Adapter: AdapterYAMLConfig{Type: AdapterTypeHTTPJSON}},
			},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("unknown route mode", func(t *testing.T) {
		_, err := BuildToolRegistry(&ToolsYAMLConfig{
			Routes: map[string]RouteYAMLConfig{
				"op": {Mode: "round_robin"},
			},
		})
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "route", verr.Component)
	})
}

func TestBuiltinToolsConfig(t *testing.T) {
	cfg := GetBuiltinToolsConfig()

	// Every route the builtin table declares must build cleanly.
	registry, err := BuildToolRegistry(cfg)
	require.NoError(t, err)
	assert.NotNil(t, registry.Route("web_search"))
	assert.NotNil(t, registry.Route("send_email"))

	_, ok := registry.Tool("fetch")
	assert.True(t, ok)
}

func TestMergeToolsConfig(t *testing.T) {
	builtin := GetBuiltinToolsConfig()
	user := &ToolsYAMLConfig{
		Tools: map[string]ToolYAMLConfig{
			"serper": {Tier: "cheap", Ops: []string{"web_search"}, Adapter: AdapterYAMLConfig{Type: AdapterTypeFetch}},
		},
		Routes: map[string]RouteYAMLConfig{
			"web_search": {Mode: "fanout", TopK: 2},
		},
	}

	merged := mergeToolsConfig(builtin, user)

	assert.Contains(t, merged.Tools, "fetch", "builtin tools survive")
	assert.Contains(t, merged.Tools, "serper")
	assert.Equal(t, "fanout", merged.Routes["web_search"].Mode, "user route wins")
	assert.Equal(t, "waterfall", merged.Routes["verify_email"].Mode, "builtin route kept")

	// Nil user config is fine.
	merged = mergeToolsConfig(builtin, nil)
	assert.Contains(t, merged.Routes, "web_search")
}
