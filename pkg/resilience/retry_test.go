package resilience

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayWithinCeiling(t *testing.T) {
	p := RetryPolicy{
		MaxAttempts:     5,
		BaseDelay:       100 * time.Millisecond,
		MaxDelay:        time.Second,
		ExponentialBase: 2.0,
	}

	for attempt := 1; attempt <= 6; attempt++ {
		ceiling := p.DelayCeiling(attempt)
		for i := 0; i < 50; i++ {
			d := p.Delay(attempt)
			assert.GreaterOrEqual(t, d, time.Duration(0))
			assert.LessOrEqual(t, d, ceiling)
		}
	}

	// Ceiling doubles per attempt and saturates at MaxDelay.
	assert.Equal(t, 100*time.Millisecond, p.DelayCeiling(1))
	assert.Equal(t, 200*time.Millisecond, p.DelayCeiling(2))
	assert.Equal(t, 800*time.Millisecond, p.DelayCeiling(4))
	assert.Equal(t, time.Second, p.DelayCeiling(5))
	assert.Equal(t, time.Second, p.DelayCeiling(10))
}

func TestExecuteSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := DefaultRetryPolicy().Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecutePermanentReturnsImmediately(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond, ExponentialBase: 2.0}

	calls := 0
	err := p.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return Permanent(errors.New("invalid api key"))
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, ClassPermanent, ClassOf(err))
}

func TestExecuteBudgetDeniedReturnsImmediately(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond, ExponentialBase: 2.0}

	calls := 0
	err := p.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return BudgetDenied(errors.New("phase cap exceeded"))
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, ClassBudgetDenied, ClassOf(err))
}

func TestExecuteTransientExhaustsAttempts(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, ExponentialBase: 2.0}

	calls := 0
	err := p.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return Transient(fmt.Errorf("upstream 503 on call %d", calls))
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, IsExhausted(err))

	var ee *ExhaustedError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.Attempts)
	assert.Equal(t, ClassTransient, ClassOf(ee.LastErr))
}

func TestExecuteTransientRecoversMidway(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, ExponentialBase: 2.0}

	calls := 0
	err := p.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return Transient(errors.New("connection reset"))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteRateLimitedDoesNotConsumeAttempt(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 50 * time.Millisecond, ExponentialBase: 2.0}

	// Three rate-limit deferrals, then two transient failures, then success.
	// The deferrals must not count against the two transient attempts.
	calls := 0
	err := p.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		switch {
		case calls <= 3:
			return RateLimited(errors.New("429 too many requests"), time.Millisecond)
		case calls == 4:
			return Transient(errors.New("upstream 502"))
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 5, calls)
}

func TestExecuteRateLimitedHonorsRetryAfterCap(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 20 * time.Millisecond, ExponentialBase: 2.0}

	calls := 0
	start := time.Now()
	err := p.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			// The hint is far above MaxDelay and must be capped.
			return RateLimited(errors.New("429"), time.Hour)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestExecuteRateLimitedDeferralBound(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, ExponentialBase: 2.0}

	calls := 0
	err := p.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return RateLimited(errors.New("permanently throttled"), time.Millisecond)
	})
	require.Error(t, err)
	assert.Equal(t, ClassRateLimited, ClassOf(err))
	assert.Equal(t, maxDeferrals+1, calls)
}

func TestExecuteContextCancellation(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: time.Second, ExponentialBase: 2.0}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := p.Execute(ctx, func(ctx context.Context) error {
		calls++
		return Transient(errors.New("timeout"))
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestClassOfUnwrapsClassifiedErrors(t *testing.T) {
	wrapped := fmt.Errorf("invoking serper: %w", Transient(errors.New("dial timeout")))
	assert.Equal(t, ClassTransient, ClassOf(wrapped))
	assert.True(t, IsRetryable(wrapped))

	assert.Equal(t, ClassTransient, ClassOf(context.DeadlineExceeded))
	assert.Equal(t, ClassPermanent, ClassOf(errors.New("unrecognized")))
	assert.False(t, IsRetryable(Permanent(errors.New("bad request"))))
}

func TestFromStatusClassification(t *testing.T) {
	base := errors.New("provider error")

	assert.Equal(t, ClassRateLimited, FromStatus(429, base, 2*time.Second).Class)
	assert.Equal(t, 2*time.Second, RetryAfterOf(FromStatus(429, base, 2*time.Second)))
	assert.Equal(t, ClassTransient, FromStatus(503, base, 0).Class)
	assert.Equal(t, ClassTransient, FromStatus(408, base, 0).Class)
	assert.Equal(t, ClassPermanent, FromStatus(401, base, 0).Class)
	assert.Equal(t, ClassPermanent, FromStatus(404, base, 0).Class)
}
