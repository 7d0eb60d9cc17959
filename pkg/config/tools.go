package config

import (
	"fmt"

	"github.com/outreachkit/prospector/pkg/tools"
	"github.com/outreachkit/prospector/pkg/tools/adapters"
)

// Adapter type discriminators for tools.yaml.
const (
	AdapterTypeHTTPJSON = "http_json"
	AdapterTypeFetch    = "fetch"
	AdapterTypeGRPC     = "grpc"
)

// ToolsYAMLConfig represents the complete tools.yaml file structure
type ToolsYAMLConfig struct {
	Tools  map[string]ToolYAMLConfig  `yaml:"tools"`
	Routes map[string]RouteYAMLConfig `yaml:"routes"`
}

// ToolYAMLConfig declares one tool provider.
type ToolYAMLConfig struct {
	// Tier is the cost class: "free", "cheap", "moderate", or "expensive".
	Tier string `yaml:"tier"`

	// CostPerCallUSD is the estimate used for budget authorization.
	CostPerCallUSD float64 `yaml:"cost_per_call_usd"`

	// Ops are the abstract operations this tool serves.
	Ops []string `yaml:"ops"`

	// Adapter configures how invocations reach the provider.
	Adapter AdapterYAMLConfig `yaml:"adapter"`
}

// AdapterYAMLConfig selects and configures a tool adapter. Exactly one
// of the type-specific sections must match Type.
type AdapterYAMLConfig struct {
	Type  string                   `yaml:"type"`
	HTTP  *adapters.HTTPJSONConfig `yaml:"http"`
	Fetch *adapters.FetchConfig    `yaml:"fetch"`
	GRPC  *GRPCAdapterYAMLConfig   `yaml:"grpc"`
}

// GRPCAdapterYAMLConfig holds gRPC adapter settings from YAML.
type GRPCAdapterYAMLConfig struct {
	Addr       string `yaml:"addr"`
	Idempotent bool   `yaml:"idempotent"`
}

// RouteYAMLConfig is the routing policy for one abstract operation.
type RouteYAMLConfig struct {
	Mode          string  `yaml:"mode"`
	MaxTier       string  `yaml:"max_tier"`
	TopK          int     `yaml:"top_k"`
	MinResults    int     `yaml:"min_results"`
	MinConfidence float64 `yaml:"min_confidence"`
	DedupeKey     string  `yaml:"dedupe_key"`
}

// parseTier maps the YAML tier name to its cost class.
func parseTier(name string) (tools.Tier, error) {
	switch name {
	case "free":
		return tools.TierFree, nil
	case "cheap":
		return tools.TierCheap, nil
	case "moderate":
		return tools.TierModerate, nil
	case "expensive":
		return tools.TierExpensive, nil
	default:
		return 0, fmt.Errorf("%w: unknown tier %q", ErrInvalidValue, name)
	}
}

// buildAdapter constructs the adapter declared for a tool.
func buildAdapter(toolID string, cfg AdapterYAMLConfig) (tools.ToolAdapter, error) {
	switch cfg.Type {
	case AdapterTypeHTTPJSON:
		if cfg.HTTP == nil {
			return nil, NewValidationError("tool", toolID, "adapter.http", ErrMissingRequiredField)
		}
		adapter, err := adapters.NewHTTPJSONAdapter(*cfg.HTTP)
		if err != nil {
			return nil, NewValidationError("tool", toolID, "adapter.http", err)
		}
		return adapter, nil
	case AdapterTypeFetch:
		fetchCfg := adapters.FetchConfig{}
		if cfg.Fetch != nil {
			fetchCfg = *cfg.Fetch
		}
		return adapters.NewFetchAdapter(fetchCfg), nil
	case AdapterTypeGRPC:
		if cfg.GRPC == nil || cfg.GRPC.Addr == "" {
			return nil, NewValidationError("tool", toolID, "adapter.grpc.addr", ErrMissingRequiredField)
		}
		adapter, err := adapters.NewGRPCAdapter(cfg.GRPC.Addr, cfg.GRPC.Idempotent)
		if err != nil {
			return nil, NewValidationError("tool", toolID, "adapter.grpc", err)
		}
		return adapter, nil
	case "":
		return nil, NewValidationError("tool", toolID, "adapter.type", ErrMissingRequiredField)
	default:
		return nil, NewValidationError("tool", toolID, "adapter.type",
			fmt.Errorf("%w: unknown adapter type %q", ErrInvalidValue, cfg.Type))
	}
}

// BuildToolRegistry turns the merged tools configuration into the
// runtime registry used by the router.
func BuildToolRegistry(cfg *ToolsYAMLConfig) (*tools.Registry, error) {
	registry := tools.NewRegistry()

	for id, tc := range cfg.Tools {
		tier, err := parseTier(tc.Tier)
		if err != nil {
			return nil, NewValidationError("tool", id, "tier", err)
		}
		adapter, err := buildAdapter(id, tc.Adapter)
		if err != nil {
			return nil, err
		}
		spec := &tools.ToolSpec{
			ID:             id,
			Tier:           tier,
			CostPerCallUSD: tc.CostPerCallUSD,
			Ops:            tc.Ops,
			Adapter:        adapter,
		}
		if err := registry.RegisterTool(spec); err != nil {
			return nil, NewValidationError("tool", id, "", err)
		}
	}

	for op, rc := range cfg.Routes {
		route := &tools.OpRoute{
			Op:            op,
			Mode:          tools.RouteMode(rc.Mode),
			TopK:          rc.TopK,
			MinResults:    rc.MinResults,
			MinConfidence: rc.MinConfidence,
			DedupeKey:     rc.DedupeKey,
		}
		if rc.MaxTier != "" {
			tier, err := parseTier(rc.MaxTier)
			if err != nil {
				return nil, NewValidationError("route", op, "max_tier", err)
			}
			route.MaxTier = tier
		}
		if err := registry.RegisterRoute(route); err != nil {
			return nil, NewValidationError("route", op, "", err)
		}
	}

	return registry, nil
}
