package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outreachkit/prospector/pkg/scheduler"
	"github.com/outreachkit/prospector/pkg/tools"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitialize(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_SERPER_KEY", "sk-12345")

	writeConfigFile(t, dir, "prospector.yaml", `
system:
  dashboard_url: https://prospector.example.com
  slack:
    enabled: true
    channel: C0123456
  retention:
    run_retention_days: 30
concurrency:
  agent_workers: 8
  tool_workers: 32
queue:
  worker_count: 2
gates:
  default_ttl: 48h
  phases:
    2:
      auto_approve: true
      min_quality_score: 0.7
budget:
  default_run_cap_usd: 150
  phase_caps_usd:
    4: 60
  tool_caps_usd:
    serper: 25
retry:
  default:
    max_attempts: 5
breakers:
  tools:
    serper:
      failure_threshold: 3
`)
	writeConfigFile(t, dir, "tools.yaml", `
tools:
  serper:
    tier: cheap
    cost_per_call_usd: 0.001
    ops: [web_search]
    adapter:
      type: http_json
      http:
        base_url: https://google.serper.dev
        auth_header: X-API-KEY
        auth_value: "{{.TEST_SERPER_KEY}}"
        op_paths:
          web_search: /search
routes:
  web_search:
    mode: fanout
    top_k: 2
    dedupe_key: url
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// System section resolved.
	assert.Equal(t, "https://prospector.example.com", cfg.DashboardURL)
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "C0123456", cfg.Slack.Channel)
	assert.Equal(t, "SLACK_BOT_TOKEN", cfg.Slack.TokenEnv, "token env defaults")
	assert.Equal(t, 30, cfg.Retention.RunRetentionDays)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.EventTTL, "unset retention fields keep defaults")

	// Concurrency maps onto scheduler lanes.
	assert.Equal(t, 8, cfg.Scheduler.Kinds[scheduler.KindAgentRuntime])
	assert.Equal(t, 32, cfg.Scheduler.Kinds[scheduler.KindToolDispatch])
	assert.Equal(t, 256, cfg.Scheduler.QueueBound, "unset bound keeps default")

	// Queue merge preserves unset defaults.
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 2*time.Second, cfg.Queue.PollInterval)

	// Gates.
	assert.Equal(t, 48*time.Hour, cfg.Gates.DefaultTTL)
	require.Contains(t, cfg.Gates.Phases, 2)
	assert.True(t, cfg.Gates.Phases[2].AutoApprove)
	assert.InDelta(t, 0.7, cfg.Gates.Phases[2].MinQualityScore, 1e-9)

	// Budget.
	assert.InDelta(t, 150, cfg.Budget.DefaultRunCapUSD, 1e-9)
	assert.InDelta(t, 60, cfg.Budget.PhaseCapsUSD[4], 1e-9)
	assert.InDelta(t, 25, cfg.Budget.ToolCapsUSD["serper"], 1e-9)

	// Resilience: user default merged over built-ins, per-tool map passed through.
	assert.Equal(t, 5, cfg.RetryDefault.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryDefault.BaseDelay)
	assert.Equal(t, 3, cfg.ToolBreakers["serper"].FailureThreshold)

	// Tool registry: user tool registered with expanded env, builtin route overridden.
	spec, ok := cfg.ToolRegistry.Tool("serper")
	require.True(t, ok)
	assert.Equal(t, tools.TierCheap, spec.Tier)
	route := cfg.ToolRegistry.Route("web_search")
	require.NotNil(t, route)
	assert.Equal(t, tools.ModeFanout, route.Mode)
	assert.Equal(t, 2, route.TopK)

	// Builtin fetch tool survives the merge.
	_, ok = cfg.ToolRegistry.Tool("fetch")
	assert.True(t, ok)
}

func TestInitializeMissingProspectorYAML(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "prospector.yaml", loadErr.File)
}

func TestInitializeMissingToolsYAMLUsesBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "prospector.yaml", "system:\n  dashboard_url: http://localhost:5173\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	_, ok := cfg.ToolRegistry.Tool("fetch")
	assert.True(t, ok)
	assert.NotNil(t, cfg.ToolRegistry.Route("web_search"))
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "prospector.yaml", "concurrency: [not a map\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "prospector.yaml", `
system:
  slack:
    enabled: true
budget:
  default_run_cap_usd: -1
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, err, ErrMissingRequiredField, "slack enabled without channel")
}

func TestResolveDashboardURLDefault(t *testing.T) {
	assert.Equal(t, "http://localhost:5173", resolveDashboardURL(nil))
}
