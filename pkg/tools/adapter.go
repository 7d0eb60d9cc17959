// Package tools routes abstract operations to concrete provider adapters
// in cost-tier order, with single-flight deduplication, a run-scoped
// durable result cache, and the resilience guards around every call.
package tools

import "context"

// Result is the outcome of one successful adapter invocation.
type Result struct {
	// Items are list-shaped results (search hits, emails, leads), the unit
	// of dedupe and coverage counting.
	Items []map[string]any `json:"items,omitempty"`

	// Data holds scalar or document-shaped results keyed by field name.
	Data map[string]any `json:"data,omitempty"`

	// CostUSD is the provider-reported cost. Zero means the router falls
	// back to the tool's configured per-call estimate.
	CostUSD float64 `json:"cost_usd,omitempty"`
}

// ToolAdapter is a concrete provider binding. Implementations must be safe
// for concurrent use.
type ToolAdapter interface {
	// Invoke executes one operation. Errors should carry a resilience
	// class; unclassified errors are treated as permanent.
	Invoke(ctx context.Context, op string, params map[string]any) (*Result, error)

	// Idempotent reports whether a failed Invoke may be retried in place.
	Idempotent() bool
}
