package config

import (
	"github.com/outreachkit/prospector/pkg/agent"
	"github.com/outreachkit/prospector/pkg/cleanup"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/queue"
	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/scheduler"
	"github.com/outreachkit/prospector/pkg/tools"
	"github.com/outreachkit/prospector/pkg/workflow"
)

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. All sections are resolved:
// built-in defaults merged with user YAML, environment expanded, and
// validated.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Run claim queue and worker pool
	Queue queue.Config

	// Scheduler lane sizing
	Scheduler scheduler.Config

	// Workflow engine tuning
	Engine workflow.Config

	// Human gate policy per phase
	Gates gates.Config

	// Agent runtime tuning
	Runtime agent.RuntimeConfig

	// Data retention
	Retention cleanup.Config

	// Default spend caps
	Budget *BudgetConfig

	// Slack notifications
	Slack *SlackConfig

	// Dashboard base URL used in notification links
	DashboardURL string

	// Resilience tuning handed to the breaker and limiter registries
	// and the router
	RetryDefault    resilience.RetryPolicy
	ToolRetries     map[string]resilience.RetryPolicy
	BreakerDefault  resilience.BreakerConfig
	ToolBreakers    map[string]resilience.BreakerConfig
	LimiterDefault  resilience.LimiterConfig
	ToolLimiters    map[string]resilience.LimiterConfig

	// Tool providers and routing policies
	Tools        *ToolsYAMLConfig
	ToolRegistry *tools.Registry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Tools        int
	Routes       int
	AgentWorkers int
	ToolWorkers  int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Tools != nil {
		s.Tools = len(c.Tools.Tools)
		s.Routes = len(c.Tools.Routes)
	}
	s.AgentWorkers = c.Scheduler.Kinds[scheduler.KindAgentRuntime]
	s.ToolWorkers = c.Scheduler.Kinds[scheduler.KindToolDispatch]
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
