package resilience

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LimiterConfig holds per-tool token bucket parameters, derived from
// provider-documented limits.
type LimiterConfig struct {
	// Capacity is the burst allowance.
	Capacity int `yaml:"capacity"`

	// RefillRPS is the steady-state refill rate in tokens per second.
	RefillRPS float64 `yaml:"refill_rps"`

	// WaitDeadline is the longest a caller blocks for a token before the
	// acquire resolves as rate_limited.
	WaitDeadline time.Duration `yaml:"wait_deadline"`
}

// DefaultLimiterConfig returns the built-in limiter defaults.
func DefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Capacity:     5,
		RefillRPS:    1,
		WaitDeadline: 10 * time.Second,
	}
}

// Limiter is a token bucket for one tool. Acquisition is non-preemptive
// with best-effort FIFO fairness (x/time/rate reservation order).
type Limiter struct {
	toolID       string
	limiter      *rate.Limiter
	waitDeadline time.Duration
}

// NewLimiter creates a full bucket for the given tool.
func NewLimiter(toolID string, cfg LimiterConfig) *Limiter {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultLimiterConfig().Capacity
	}
	if cfg.RefillRPS <= 0 {
		cfg.RefillRPS = DefaultLimiterConfig().RefillRPS
	}
	if cfg.WaitDeadline <= 0 {
		cfg.WaitDeadline = DefaultLimiterConfig().WaitDeadline
	}
	return &Limiter{
		toolID:       toolID,
		limiter:      rate.NewLimiter(rate.Limit(cfg.RefillRPS), cfg.Capacity),
		waitDeadline: cfg.WaitDeadline,
	}
}

// Acquire blocks for a token up to the wait deadline. Deadline expiry
// returns a rate_limited error; caller cancellation returns ctx.Err().
func (l *Limiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.waitDeadline)
	defer cancel()

	if err := l.limiter.Wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return RateLimited(fmt.Errorf("rate limiter wait deadline exceeded for %s", l.toolID), 0)
	}
	return nil
}

// Tokens returns the current token count for snapshotting.
func (l *Limiter) Tokens() float64 {
	return l.limiter.Tokens()
}

// Restore drains the bucket down to the persisted token count. The bucket
// starts full, so restoring can only remove tokens, never add.
func (l *Limiter) Restore(tokens float64) {
	excess := l.limiter.Tokens() - tokens
	if excess <= 0 {
		return
	}
	l.limiter.AllowN(time.Now(), int(excess))
}

// LimiterSnapshot is the persistable state of one limiter.
type LimiterSnapshot struct {
	ToolID string
	Tokens float64
}

// LimiterRegistry holds the process-wide limiters keyed by tool id.
type LimiterRegistry struct {
	mu        sync.Mutex
	limiters  map[string]*Limiter
	defaults  LimiterConfig
	overrides map[string]LimiterConfig
}

// NewLimiterRegistry creates a registry with per-tool config overrides.
func NewLimiterRegistry(defaults LimiterConfig, overrides map[string]LimiterConfig) *LimiterRegistry {
	return &LimiterRegistry{
		limiters:  make(map[string]*Limiter),
		defaults:  defaults,
		overrides: overrides,
	}
}

// Get returns the limiter for a tool, creating it on first use.
func (r *LimiterRegistry) Get(toolID string) *Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.limiters[toolID]; ok {
		return l
	}
	cfg := r.defaults
	if override, ok := r.overrides[toolID]; ok {
		cfg = override
	}
	l := NewLimiter(toolID, cfg)
	r.limiters[toolID] = l
	return l
}

// Snapshots captures every limiter's token count for persistence.
func (r *LimiterRegistry) Snapshots() []LimiterSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snaps := make([]LimiterSnapshot, 0, len(r.limiters))
	for id, l := range r.limiters {
		snaps = append(snaps, LimiterSnapshot{ToolID: id, Tokens: l.Tokens()})
	}
	return snaps
}

// RestoreAll rehydrates limiters from persisted snapshots.
func (r *LimiterRegistry) RestoreAll(snaps []LimiterSnapshot) {
	for _, snap := range snaps {
		r.Get(snap.ToolID).Restore(snap.Tokens)
	}
}
