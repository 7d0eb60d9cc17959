// Package resilience provides the guards wrapped around every outbound
// tool call: failure classification, circuit breakers, retry policies
// with full-jitter backoff, and per-tool token-bucket rate limiters.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"
)

// Class buckets a failure by how the caller must respond. Lower layers
// attach a Class to every error they surface; the agent runtime decides
// retry vs abort, the workflow engine decides compensation vs continuation.
type Class string

// Failure classes.
const (
	// ClassInput marks invalid config or schema mismatch. Never retried.
	ClassInput Class = "input"

	// ClassTransient marks timeouts, 5xx, and connection resets.
	// Retried per policy.
	ClassTransient Class = "transient"

	// ClassRateLimited marks 429 or limiter-rejected calls. Deferred;
	// does not consume a retry attempt.
	ClassRateLimited Class = "rate_limited"

	// ClassCircuitOpen marks breaker-rejected calls. The router tries the
	// next tier; with none left the agent defers.
	ClassCircuitOpen Class = "circuit_open"

	// ClassPermanent marks 4xx validation, auth, and not-found failures.
	// Fails the agent.
	ClassPermanent Class = "permanent"

	// ClassBudgetDenied marks calls refused by the cost governor.
	// Permanent for the agent; the run fails with compensation.
	ClassBudgetDenied Class = "budget_denied"

	// ClassInternal marks invariant violations. Logged and fails the run;
	// never silently recovered.
	ClassInternal Class = "internal"
)

// Error is a classified failure crossing a layer boundary. No raw error
// leaves the tool boundary without one.
type Error struct {
	Class      Class
	StatusCode int           // provider HTTP status, 0 when not applicable
	RetryAfter time.Duration // parsed Retry-After hint, 0 when absent
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Class, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with an explicit class.
func NewError(class Class, err error) *Error {
	return &Error{Class: class, Err: err}
}

// Transient wraps err as a retryable failure.
func Transient(err error) *Error {
	return &Error{Class: ClassTransient, Err: err}
}

// Permanent wraps err as a non-retryable failure.
func Permanent(err error) *Error {
	return &Error{Class: ClassPermanent, Err: err}
}

// RateLimited wraps err as a deferred failure, carrying the provider's
// Retry-After hint when present.
func RateLimited(err error, retryAfter time.Duration) *Error {
	return &Error{Class: ClassRateLimited, RetryAfter: retryAfter, Err: err}
}

// BudgetDenied wraps err as a cost-governor refusal.
func BudgetDenied(err error) *Error {
	return &Error{Class: ClassBudgetDenied, Err: err}
}

// Internal wraps err as an invariant violation.
func Internal(err error) *Error {
	return &Error{Class: ClassInternal, Err: err}
}

// FromStatus classifies a provider HTTP status code.
func FromStatus(code int, err error, retryAfter time.Duration) *Error {
	switch {
	case code == 429:
		return &Error{Class: ClassRateLimited, StatusCode: code, RetryAfter: retryAfter, Err: err}
	case code == 408 || code >= 500:
		return &Error{Class: ClassTransient, StatusCode: code, Err: err}
	case code >= 400:
		return &Error{Class: ClassPermanent, StatusCode: code, Err: err}
	default:
		return &Error{Class: ClassTransient, StatusCode: code, Err: err}
	}
}

// ClassOf returns the class of err. Classified errors report their own
// class; bare stdlib network and timeout errors classify as transient;
// anything unrecognized is permanent, the conservative default.
func ClassOf(err error) Class {
	if err == nil {
		return ""
	}

	var re *Error
	if errors.As(err, &re) {
		return re.Class
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTransient
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EPIPE) {
		return ClassTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassTransient
	}

	return ClassPermanent
}

// IsRetryable reports whether err should be retried in place.
func IsRetryable(err error) bool {
	return ClassOf(err) == ClassTransient
}

// RetryAfterOf extracts the Retry-After hint from a classified error,
// or 0 when absent.
func RetryAfterOf(err error) time.Duration {
	var re *Error
	if errors.As(err, &re) {
		return re.RetryAfter
	}
	return 0
}
