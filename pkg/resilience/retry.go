package resilience

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicy defines exponential backoff with full jitter.
type RetryPolicy struct {
	// MaxAttempts is the maximum number of transient-failure attempts.
	MaxAttempts int `yaml:"max_attempts"`

	// BaseDelay is the backoff ceiling for the first attempt.
	BaseDelay time.Duration `yaml:"base_delay"`

	// MaxDelay caps the backoff ceiling and any Retry-After hint.
	MaxDelay time.Duration `yaml:"max_delay"`

	// ExponentialBase is the ceiling growth factor per attempt.
	ExponentialBase float64 `yaml:"exponential_base"`
}

// DefaultRetryPolicy returns the built-in retry defaults.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		BaseDelay:       500 * time.Millisecond,
		MaxDelay:        30 * time.Second,
		ExponentialBase: 2.0,
	}
}

// normalized fills zero fields with defaults.
func (p RetryPolicy) normalized() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = def.BaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = def.MaxDelay
	}
	if p.ExponentialBase <= 1 {
		p.ExponentialBase = def.ExponentialBase
	}
	return p
}

// Delay returns the full-jitter backoff for a 1-based attempt number:
// uniform random in [0, min(MaxDelay, BaseDelay × base^(attempt−1))].
func (p RetryPolicy) Delay(attempt int) time.Duration {
	p = p.normalized()
	if attempt < 1 {
		attempt = 1
	}
	ceiling := float64(p.BaseDelay) * math.Pow(p.ExponentialBase, float64(attempt-1))
	if ceiling > float64(p.MaxDelay) {
		ceiling = float64(p.MaxDelay)
	}
	return time.Duration(rand.Float64() * ceiling)
}

// DelayCeiling returns the jitter-free backoff ceiling for an attempt.
func (p RetryPolicy) DelayCeiling(attempt int) time.Duration {
	p = p.normalized()
	if attempt < 1 {
		attempt = 1
	}
	ceiling := float64(p.BaseDelay) * math.Pow(p.ExponentialBase, float64(attempt-1))
	if ceiling > float64(p.MaxDelay) {
		ceiling = float64(p.MaxDelay)
	}
	return time.Duration(ceiling)
}

// maxDeferrals bounds how many rate-limit deferrals one Execute absorbs.
// Deferrals do not consume attempts; without a bound a permanently
// throttled tool would spin forever.
const maxDeferrals = 10

// ExhaustedError indicates all transient-failure attempts were consumed.
type ExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry exhausted after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}

// IsExhausted checks if an error is an ExhaustedError.
func IsExhausted(err error) bool {
	var ee *ExhaustedError
	return errors.As(err, &ee)
}

// Execute runs fn with classified retry semantics:
//   - transient failures retry with full-jitter backoff, up to MaxAttempts
//   - rate-limited failures defer without consuming an attempt, honoring
//     the Retry-After hint capped at MaxDelay
//   - every other class returns immediately
func (p RetryPolicy) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	p = p.normalized()

	attempt := 1
	deferrals := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}

		switch ClassOf(err) {
		case ClassRateLimited:
			deferrals++
			if deferrals > maxDeferrals {
				return err
			}
			wait := p.Delay(attempt)
			if hint := RetryAfterOf(err); hint > 0 {
				wait = min(hint, p.MaxDelay)
			}
			if sleepErr := sleep(ctx, wait); sleepErr != nil {
				return sleepErr
			}

		case ClassTransient:
			if attempt >= p.MaxAttempts {
				return &ExhaustedError{Attempts: attempt, LastErr: err}
			}
			if sleepErr := sleep(ctx, p.Delay(attempt)); sleepErr != nil {
				return sleepErr
			}
			attempt++

		default:
			return err
		}
	}
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
