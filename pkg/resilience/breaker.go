package resilience

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// BreakerState is the circuit breaker's current position.
type BreakerState string

// Breaker states.
const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

// Sentinel errors for breaker rejections. Both classify as circuit_open.
var (
	// ErrBreakerOpen indicates the breaker is open and the call was rejected.
	ErrBreakerOpen = errors.New("circuit breaker open")

	// ErrProbeInFlight indicates the breaker is half-open and its single
	// probe slot is taken.
	ErrProbeInFlight = errors.New("circuit breaker probe in flight")
)

// BreakerConfig holds per-tool circuit breaker thresholds.
type BreakerConfig struct {
	// FailureThreshold is the number of monitored failures within Window
	// that opens the breaker.
	FailureThreshold int `yaml:"failure_threshold"`

	// SuccessThreshold is the number of consecutive half-open probe
	// successes required to close the breaker.
	SuccessThreshold int `yaml:"success_threshold"`

	// Window is the sliding window over which failures are counted.
	Window time.Duration `yaml:"window"`

	// Timeout is how long the breaker stays open before admitting a probe.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultBreakerConfig returns the built-in breaker defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Window:           60 * time.Second,
		Timeout:          30 * time.Second,
	}
}

// Breaker is a three-state circuit breaker for one tool. Half-open admits
// at most one probe at a time; SuccessThreshold consecutive probe
// successes close it, any probe failure reopens it.
type Breaker struct {
	toolID string
	cfg    BreakerConfig
	logger *slog.Logger
	now    func() time.Time

	mu            sync.Mutex
	state         BreakerState
	failures      []time.Time // monitored failures within the sliding window
	successes     int         // consecutive half-open probe successes
	openedAt      time.Time
	probeInFlight bool
}

// NewBreaker creates a closed breaker for the given tool.
func NewBreaker(toolID string, cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = DefaultBreakerConfig().SuccessThreshold
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultBreakerConfig().Window
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultBreakerConfig().Timeout
	}
	return &Breaker{
		toolID: toolID,
		cfg:    cfg,
		logger: slog.Default().With("component", "breaker", "tool_id", toolID),
		now:    time.Now,
		state:  BreakerClosed,
	}
}

// Allow reports whether a call may proceed. Open breakers past their
// timeout flip to half-open and admit the caller as the single probe.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		return nil

	case BreakerOpen:
		if b.now().Sub(b.openedAt) < b.cfg.Timeout {
			return NewError(ClassCircuitOpen, fmt.Errorf("%w: %s", ErrBreakerOpen, b.toolID))
		}
		b.state = BreakerHalfOpen
		b.successes = 0
		b.probeInFlight = true
		b.logger.Info("Circuit breaker half-open, admitting probe")
		return nil

	case BreakerHalfOpen:
		if b.probeInFlight {
			return NewError(ClassCircuitOpen, fmt.Errorf("%w: %s", ErrProbeInFlight, b.toolID))
		}
		b.probeInFlight = true
		return nil
	}

	return nil
}

// RecordSuccess reports a successful call admitted by Allow.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		b.probeInFlight = false
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.state = BreakerClosed
			b.failures = nil
			b.successes = 0
			b.logger.Info("Circuit breaker closed after successful probes")
		}
	case BreakerClosed:
		// Success in closed state does not clear the window; only time does.
	case BreakerOpen:
		// Late completion of a pre-open call. Ignore.
	}
}

// RecordFailure reports a monitored failure of a call admitted by Allow.
// Non-monitored failures (e.g. 4xx validation) must not be reported.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()

	switch b.state {
	case BreakerClosed:
		b.failures = append(b.trimWindow(now), now)
		if len(b.failures) >= b.cfg.FailureThreshold {
			b.state = BreakerOpen
			b.openedAt = now
			b.logger.Warn("Circuit breaker opened",
				"failures", len(b.failures),
				"threshold", b.cfg.FailureThreshold)
		}
	case BreakerHalfOpen:
		b.probeInFlight = false
		b.successes = 0
		b.state = BreakerOpen
		b.openedAt = now
		b.logger.Warn("Circuit breaker re-opened after probe failure")
	case BreakerOpen:
		// Late completion. Ignore.
	}
}

// RecordUnmonitoredFailure reports a failure of a class that does not
// count toward the failure window (e.g. 4xx validation). A half-open
// probe still reopens on any failure; a closed breaker ignores it.
func (b *Breaker) RecordUnmonitoredFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != BreakerHalfOpen {
		return
	}
	b.probeInFlight = false
	b.successes = 0
	b.state = BreakerOpen
	b.openedAt = b.now()
	b.logger.Warn("Circuit breaker re-opened after unmonitored probe failure")
}

// State returns the breaker's current state without advancing it.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// trimWindow drops failures older than the sliding window. Caller holds the lock.
func (b *Breaker) trimWindow(now time.Time) []time.Time {
	cutoff := now.Add(-b.cfg.Window)
	trimmed := b.failures[:0]
	for _, t := range b.failures {
		if t.After(cutoff) {
			trimmed = append(trimmed, t)
		}
	}
	return trimmed
}

// BreakerSnapshot is the persistable state of one breaker, written on
// shutdown and restored on warm restart.
type BreakerSnapshot struct {
	ToolID       string
	State        BreakerState
	FailureCount int
	SuccessCount int
	OpenedAt     *time.Time
}

// Snapshot captures the breaker's current state.
func (b *Breaker) Snapshot() BreakerSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := BreakerSnapshot{
		ToolID:       b.toolID,
		State:        b.state,
		FailureCount: len(b.failures),
		SuccessCount: b.successes,
	}
	if b.state == BreakerOpen {
		openedAt := b.openedAt
		snap.OpenedAt = &openedAt
	}
	return snap
}

// Restore rehydrates the breaker from a snapshot. Half-open collapses to
// open: the in-flight probe did not survive the restart.
func (b *Breaker) Restore(snap BreakerSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch snap.State {
	case BreakerOpen, BreakerHalfOpen:
		b.state = BreakerOpen
		if snap.OpenedAt != nil {
			b.openedAt = *snap.OpenedAt
		} else {
			b.openedAt = b.now()
		}
		b.failures = nil
		b.successes = 0
		b.probeInFlight = false
	default:
		b.state = BreakerClosed
		b.failures = nil
		b.successes = 0
		b.probeInFlight = false
	}
}

// BreakerRegistry holds the process-wide breakers keyed by tool id.
type BreakerRegistry struct {
	mu        sync.Mutex
	breakers  map[string]*Breaker
	defaults  BreakerConfig
	overrides map[string]BreakerConfig
}

// NewBreakerRegistry creates a registry with per-tool config overrides.
func NewBreakerRegistry(defaults BreakerConfig, overrides map[string]BreakerConfig) *BreakerRegistry {
	return &BreakerRegistry{
		breakers:  make(map[string]*Breaker),
		defaults:  defaults,
		overrides: overrides,
	}
}

// Get returns the breaker for a tool, creating it on first use.
func (r *BreakerRegistry) Get(toolID string) *Breaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.breakers[toolID]; ok {
		return b
	}
	cfg := r.defaults
	if override, ok := r.overrides[toolID]; ok {
		cfg = override
	}
	b := NewBreaker(toolID, cfg)
	r.breakers[toolID] = b
	return b
}

// Snapshots captures every breaker's state for persistence.
func (r *BreakerRegistry) Snapshots() []BreakerSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snaps := make([]BreakerSnapshot, 0, len(r.breakers))
	for _, b := range r.breakers {
		snaps = append(snaps, b.Snapshot())
	}
	return snaps
}

// RestoreAll rehydrates breakers from persisted snapshots.
func (r *BreakerRegistry) RestoreAll(snaps []BreakerSnapshot) {
	for _, snap := range snaps {
		r.Get(snap.ToolID).Restore(snap)
	}
}
