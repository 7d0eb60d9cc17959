package config

import (
	"time"

	"github.com/outreachkit/prospector/pkg/cleanup"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/queue"
	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/workflow"
)

// ProspectorYAMLConfig represents the complete prospector.yaml file structure
type ProspectorYAMLConfig struct {
	System      *SystemYAMLConfig  `yaml:"system"`
	Concurrency *ConcurrencyConfig `yaml:"concurrency"`
	Queue       *queue.Config      `yaml:"queue"`
	Engine      *workflow.Config   `yaml:"engine"`
	Gates       *gates.Config      `yaml:"gates"`
	Agents      *AgentsYAMLConfig  `yaml:"agents"`
	Retry       *RetrySection      `yaml:"retry"`
	Breakers    *BreakerSection    `yaml:"breakers"`
	Rate        *RateSection       `yaml:"rate"`
	Budget      *BudgetConfig      `yaml:"budget"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL string           `yaml:"dashboard_url"`
	Slack        *SlackYAMLConfig `yaml:"slack"`
	Retention    *cleanup.Config  `yaml:"retention"`
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// SlackConfig holds resolved Slack notification configuration.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Env var name for Slack bot token (default: "SLACK_BOT_TOKEN")
	Channel  string // Slack channel ID (e.g., "C12345678")
}

// ConcurrencyConfig sizes the two scheduler lanes. Agent workers run
// agent steps; tool workers run tool invocations, so a burst of slow
// provider calls cannot starve agent progress.
type ConcurrencyConfig struct {
	AgentWorkers int `yaml:"agent_workers"`
	ToolWorkers  int `yaml:"tool_workers"`

	// QueueBound is the per-lane submission queue capacity. Submit
	// blocks when the lane is full.
	QueueBound int `yaml:"queue_bound"`
}

// AgentsYAMLConfig tunes the agent runtime.
type AgentsYAMLConfig struct {
	// CancelGrace is how long a cancelled agent step may keep running
	// before its context is force-cancelled.
	CancelGrace time.Duration `yaml:"cancel_grace"`

	// MaxSteps bounds the number of steps a single agent task may take.
	MaxSteps int `yaml:"max_steps"`
}

// RetrySection holds retry policies: one default plus per-tool and
// per-agent overrides.
type RetrySection struct {
	Default *resilience.RetryPolicy           `yaml:"default"`
	Tools   map[string]resilience.RetryPolicy `yaml:"tools"`
	Agents  map[string]resilience.RetryPolicy `yaml:"agents"`
}

// BreakerSection holds circuit breaker tuning: one default plus
// per-tool overrides.
type BreakerSection struct {
	Default *resilience.BreakerConfig           `yaml:"default"`
	Tools   map[string]resilience.BreakerConfig `yaml:"tools"`
}

// RateSection holds rate limiter tuning: one default plus per-tool
// overrides.
type RateSection struct {
	Default *resilience.LimiterConfig           `yaml:"default"`
	Tools   map[string]resilience.LimiterConfig `yaml:"tools"`
}

// BudgetConfig holds default spend caps applied to runs that do not
// set their own. A zero cap means unset.
type BudgetConfig struct {
	// DefaultRunCapUSD is used when a run request omits budget_cap_usd.
	DefaultRunCapUSD float64 `yaml:"default_run_cap_usd"`

	// PhaseCapsUSD caps spend per phase ordinal (1..5).
	PhaseCapsUSD map[int]float64 `yaml:"phase_caps_usd"`

	// ToolCapsUSD caps spend per tool id across the whole run.
	ToolCapsUSD map[string]float64 `yaml:"tool_caps_usd"`
}
