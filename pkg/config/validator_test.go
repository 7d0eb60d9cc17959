package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/scheduler"
)

func validConfig() *Config {
	return &Config{
		Scheduler: scheduler.DefaultConfig(),
		Gates:     gates.DefaultConfig(),
		Budget:    &BudgetConfig{},
		Slack:     &SlackConfig{},
		Tools:     GetBuiltinToolsConfig(),
	}
}

func TestValidateAllPasses(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateConcurrency(t *testing.T) {
	cfg := validConfig()
	cfg.Scheduler.Kinds[scheduler.KindAgentRuntime] = 0

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateToolWithoutOps(t *testing.T) {
	cfg := validConfig()
	cfg.Tools.Tools["idle"] = ToolYAMLConfig{Tier: "free"}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestValidateBudgetCapForUnknownTool(t *testing.T) {
	cfg := validConfig()
	cfg.Budget = &BudgetConfig{
		ToolCapsUSD: map[string]float64{"no-such-tool": 5},
	}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestValidateGatePhaseRange(t *testing.T) {
	cfg := validConfig()
	cfg.Gates.Phases = map[int]gates.PhaseConfig{
		7: {},
	}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateGateQualityScore(t *testing.T) {
	cfg := validConfig()
	cfg.Gates.Phases = map[int]gates.PhaseConfig{
		2: {MinQualityScore: 1.5},
	}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateBudgetCaps(t *testing.T) {
	cfg := validConfig()
	cfg.Budget = &BudgetConfig{
		PhaseCapsUSD: map[int]float64{4: -10},
		ToolCapsUSD:  map[string]float64{"serper": -1},
	}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateSlackDisabledSkipsChecks(t *testing.T) {
	cfg := validConfig()
	cfg.Slack = &SlackConfig{Enabled: false}
	require.NoError(t, NewValidator(cfg).ValidateAll())
}
