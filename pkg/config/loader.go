package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/outreachkit/prospector/pkg/agent"
	"github.com/outreachkit/prospector/pkg/cleanup"
	"github.com/outreachkit/prospector/pkg/gates"
	"github.com/outreachkit/prospector/pkg/queue"
	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/scheduler"
	"github.com/outreachkit/prospector/pkg/workflow"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build the tool registry
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"tools", stats.Tools,
		"routes", stats.Routes,
		"agent_workers", stats.AgentWorkers,
		"tool_workers", stats.ToolWorkers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load prospector.yaml (system, concurrency, queue, gates, budget, ...)
	prospectorConfig, err := loader.loadProspectorYAML()
	if err != nil {
		return nil, NewLoadError("prospector.yaml", err)
	}

	// 2. Load tools.yaml (providers and routing overrides)
	userTools, err := loader.loadToolsYAML()
	if err != nil {
		return nil, NewLoadError("tools.yaml", err)
	}

	// 3. Merge built-in + user-defined tools (user overrides built-in)
	toolsConfig := mergeToolsConfig(GetBuiltinToolsConfig(), userTools)

	// 4. Build the tool registry
	registry, err := BuildToolRegistry(toolsConfig)
	if err != nil {
		return nil, err
	}

	// 5. Resolve each section (merge user YAML with built-in defaults)
	queueConfig, err := resolveQueueConfig(prospectorConfig.Queue)
	if err != nil {
		return nil, err
	}
	engineConfig, err := resolveEngineConfig(prospectorConfig.Engine)
	if err != nil {
		return nil, err
	}
	gatesConfig := resolveGatesConfig(prospectorConfig.Gates)
	schedulerConfig := resolveSchedulerConfig(prospectorConfig.Concurrency)
	retryDefault, toolRetries, agentRetries := resolveRetrySection(prospectorConfig.Retry)
	runtimeConfig := resolveRuntimeConfig(prospectorConfig.Agents, retryDefault, agentRetries)
	breakerDefault, toolBreakers := resolveBreakerSection(prospectorConfig.Breakers)
	limiterDefault, toolLimiters := resolveRateSection(prospectorConfig.Rate)
	budgetConfig := resolveBudgetConfig(prospectorConfig.Budget)

	// 6. Resolve system config (Slack + Retention + DashboardURL)
	slackCfg := resolveSlackConfig(prospectorConfig.System)
	retentionCfg := resolveRetentionConfig(prospectorConfig.System)
	dashboardURL := resolveDashboardURL(prospectorConfig.System)

	return &Config{
		configDir:      configDir,
		Queue:          queueConfig,
		Scheduler:      schedulerConfig,
		Engine:         engineConfig,
		Gates:          gatesConfig,
		Runtime:        runtimeConfig,
		Retention:      retentionCfg,
		Budget:         budgetConfig,
		Slack:          slackCfg,
		DashboardURL:   dashboardURL,
		RetryDefault:   retryDefault,
		ToolRetries:    toolRetries,
		BreakerDefault: breakerDefault,
		ToolBreakers:   toolBreakers,
		LimiterDefault: limiterDefault,
		ToolLimiters:   toolLimiters,
		Tools:          toolsConfig,
		ToolRegistry:   registry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadProspectorYAML() (*ProspectorYAMLConfig, error) {
	var config ProspectorYAMLConfig

	if err := l.loadYAML("prospector.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadToolsYAML loads the tool provider file. A missing file is fine:
// the built-in config still covers the free tools and all routes.
func (l *configLoader) loadToolsYAML() (*ToolsYAMLConfig, error) {
	var config ToolsYAMLConfig
	config.Tools = make(map[string]ToolYAMLConfig)
	config.Routes = make(map[string]RouteYAMLConfig)

	if err := l.loadYAML("tools.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveQueueConfig merges user queue YAML with built-in defaults.
func resolveQueueConfig(user *queue.Config) (queue.Config, error) {
	cfg := queue.DefaultConfig()
	if user != nil {
		if err := mergo.Merge(&cfg, user, mergo.WithOverride); err != nil {
			return cfg, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	return cfg, nil
}

// resolveEngineConfig merges user engine YAML with built-in defaults.
func resolveEngineConfig(user *workflow.Config) (workflow.Config, error) {
	cfg := workflow.DefaultConfig()
	if user != nil {
		if err := mergo.Merge(&cfg, user, mergo.WithOverride); err != nil {
			return cfg, fmt.Errorf("failed to merge engine config: %w", err)
		}
	}
	return cfg, nil
}

// resolveGatesConfig merges user gate YAML with built-in defaults.
// Phase entries are taken wholesale from the user config.
func resolveGatesConfig(user *gates.Config) gates.Config {
	cfg := gates.DefaultConfig()
	if user == nil {
		return cfg
	}
	if user.DefaultTTL > 0 {
		cfg.DefaultTTL = user.DefaultTTL
	}
	if user.PollInterval > 0 {
		cfg.PollInterval = user.PollInterval
	}
	if len(user.Phases) > 0 {
		cfg.Phases = user.Phases
	}
	return cfg
}

// resolveSchedulerConfig maps the concurrency section onto scheduler lanes.
func resolveSchedulerConfig(user *ConcurrencyConfig) scheduler.Config {
	cfg := scheduler.DefaultConfig()
	if user == nil {
		return cfg
	}
	if user.AgentWorkers > 0 {
		cfg.Kinds[scheduler.KindAgentRuntime] = user.AgentWorkers
	}
	if user.ToolWorkers > 0 {
		cfg.Kinds[scheduler.KindToolDispatch] = user.ToolWorkers
	}
	if user.QueueBound > 0 {
		cfg.QueueBound = user.QueueBound
	}
	return cfg
}

// resolveRetrySection returns the default retry policy plus per-tool
// and per-agent override maps.
func resolveRetrySection(user *RetrySection) (resilience.RetryPolicy, map[string]resilience.RetryPolicy, map[string]resilience.RetryPolicy) {
	def := resilience.DefaultRetryPolicy()
	if user == nil {
		return def, nil, nil
	}
	if user.Default != nil {
		if err := mergo.Merge(&def, user.Default, mergo.WithOverride); err != nil {
			slog.Warn("Failed to merge retry defaults, using built-ins", "error", err)
		}
	}
	return def, user.Tools, user.Agents
}

// resolveRuntimeConfig builds the agent runtime tuning.
func resolveRuntimeConfig(user *AgentsYAMLConfig, retry resilience.RetryPolicy, overrides map[string]resilience.RetryPolicy) agent.RuntimeConfig {
	cfg := agent.DefaultRuntimeConfig()
	cfg.Retry = retry
	cfg.RetryOverrides = overrides
	if user == nil {
		return cfg
	}
	if user.CancelGrace > 0 {
		cfg.CancelGrace = user.CancelGrace
	}
	if user.MaxSteps > 0 {
		cfg.MaxSteps = user.MaxSteps
	}
	return cfg
}

// resolveBreakerSection returns the default breaker config plus
// per-tool overrides.
func resolveBreakerSection(user *BreakerSection) (resilience.BreakerConfig, map[string]resilience.BreakerConfig) {
	def := resilience.DefaultBreakerConfig()
	if user == nil {
		return def, nil
	}
	if user.Default != nil {
		if err := mergo.Merge(&def, user.Default, mergo.WithOverride); err != nil {
			slog.Warn("Failed to merge breaker defaults, using built-ins", "error", err)
		}
	}
	return def, user.Tools
}

// resolveRateSection returns the default limiter config plus per-tool
// overrides.
func resolveRateSection(user *RateSection) (resilience.LimiterConfig, map[string]resilience.LimiterConfig) {
	def := resilience.DefaultLimiterConfig()
	if user == nil {
		return def, nil
	}
	if user.Default != nil {
		if err := mergo.Merge(&def, user.Default, mergo.WithOverride); err != nil {
			slog.Warn("Failed to merge rate limit defaults, using built-ins", "error", err)
		}
	}
	return def, user.Tools
}

// resolveBudgetConfig returns the default cap section, never nil.
func resolveBudgetConfig(user *BudgetConfig) *BudgetConfig {
	if user == nil {
		return &BudgetConfig{}
	}
	return user
}

// resolveSlackConfig resolves Slack configuration from system YAML, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) cleanup.Config {
	cfg := cleanup.DefaultConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.RunRetentionDays > 0 {
		cfg.RunRetentionDays = r.RunRetentionDays
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}
