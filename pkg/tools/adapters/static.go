// Package adapters ships the concrete ToolAdapter kinds: static fixtures,
// generic JSON-over-HTTP providers, the in-house gRPC provider service,
// and a free-tier public HTTP fetcher.
package adapters

import (
	"context"
	"fmt"

	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/tools"
)

// StaticAdapter serves configured fixture results, used in dev mode and
// tests where no provider credentials exist.
type StaticAdapter struct {
	fixtures map[string]*tools.Result
}

// NewStaticAdapter creates an adapter answering from fixtures keyed by op.
func NewStaticAdapter(fixtures map[string]*tools.Result) *StaticAdapter {
	if fixtures == nil {
		fixtures = make(map[string]*tools.Result)
	}
	return &StaticAdapter{fixtures: fixtures}
}

// Invoke returns the fixture for op, or a permanent failure when none is
// configured.
func (a *StaticAdapter) Invoke(ctx context.Context, op string, params map[string]any) (*tools.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fixture, ok := a.fixtures[op]
	if !ok {
		return nil, resilience.Permanent(fmt.Errorf("no fixture configured for op %s", op))
	}
	return fixture, nil
}

// Idempotent always holds for fixtures.
func (a *StaticAdapter) Idempotent() bool {
	return true
}
