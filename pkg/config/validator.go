package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Validator performs cross-section validation on a loaded Config.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation pass and collects all errors, so a
// bad config reports everything wrong at once instead of one field per
// restart.
func (v *Validator) ValidateAll() error {
	var errs []error

	errs = append(errs, v.validateConcurrency()...)
	errs = append(errs, v.validateTools()...)
	errs = append(errs, v.validateGates()...)
	errs = append(errs, v.validateBudget()...)
	errs = append(errs, v.validateSlack()...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

func (v *Validator) validateConcurrency() []error {
	var errs []error
	for kind, workers := range v.cfg.Scheduler.Kinds {
		if workers <= 0 {
			errs = append(errs, NewValidationError("concurrency", kind, "workers",
				fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, workers)))
		}
	}
	if v.cfg.Scheduler.QueueBound <= 0 {
		errs = append(errs, NewValidationError("concurrency", "scheduler", "queue_bound",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, v.cfg.Scheduler.QueueBound)))
	}
	return errs
}

func (v *Validator) validateTools() []error {
	var errs []error
	if v.cfg.Tools == nil {
		return nil
	}

	for id, tc := range v.cfg.Tools.Tools {
		if len(tc.Ops) == 0 {
			errs = append(errs, NewValidationError("tool", id, "ops", ErrMissingRequiredField))
		}
		if tc.CostPerCallUSD < 0 {
			errs = append(errs, NewValidationError("tool", id, "cost_per_call_usd",
				fmt.Errorf("%w: must not be negative", ErrInvalidValue)))
		}
	}
	return errs
}

func (v *Validator) validateGates() []error {
	var errs []error
	if v.cfg.Gates.DefaultTTL <= 0 {
		errs = append(errs, NewValidationError("gates", "defaults", "default_ttl",
			fmt.Errorf("%w: must be positive", ErrInvalidValue)))
	}
	for phase, pc := range v.cfg.Gates.Phases {
		id := strconv.Itoa(phase)
		if phase < 1 || phase > 5 {
			errs = append(errs, NewValidationError("gates", id, "",
				fmt.Errorf("%w: phase must be 1..5", ErrInvalidValue)))
		}
		if pc.MinQualityScore < 0 || pc.MinQualityScore > 1 {
			errs = append(errs, NewValidationError("gates", id, "min_quality_score",
				fmt.Errorf("%w: must be within [0, 1]", ErrInvalidValue)))
		}
	}
	return errs
}

func (v *Validator) validateBudget() []error {
	var errs []error
	b := v.cfg.Budget
	if b == nil {
		return nil
	}
	if b.DefaultRunCapUSD < 0 {
		errs = append(errs, NewValidationError("budget", "defaults", "default_run_cap_usd",
			fmt.Errorf("%w: must not be negative", ErrInvalidValue)))
	}
	for phase, cap := range b.PhaseCapsUSD {
		if phase < 1 || phase > 5 {
			errs = append(errs, NewValidationError("budget", strconv.Itoa(phase), "phase_caps_usd",
				fmt.Errorf("%w: phase must be 1..5", ErrInvalidValue)))
		}
		if cap < 0 {
			errs = append(errs, NewValidationError("budget", strconv.Itoa(phase), "phase_caps_usd",
				fmt.Errorf("%w: must not be negative", ErrInvalidValue)))
		}
	}
	for toolID, cap := range b.ToolCapsUSD {
		if cap < 0 {
			errs = append(errs, NewValidationError("budget", toolID, "tool_caps_usd",
				fmt.Errorf("%w: must not be negative", ErrInvalidValue)))
		}
		if v.cfg.Tools != nil {
			if _, ok := v.cfg.Tools.Tools[toolID]; !ok {
				errs = append(errs, NewValidationError("budget", toolID, "tool_caps_usd",
					fmt.Errorf("%w: unknown tool %q", ErrInvalidReference, toolID)))
			}
		}
	}
	return errs
}

func (v *Validator) validateSlack() []error {
	s := v.cfg.Slack
	if s == nil || !s.Enabled {
		return nil
	}
	var errs []error
	if s.Channel == "" {
		errs = append(errs, NewValidationError("system", "slack", "channel", ErrMissingRequiredField))
	}
	if s.TokenEnv == "" {
		errs = append(errs, NewValidationError("system", "slack", "token_env", ErrMissingRequiredField))
	}
	return errs
}
