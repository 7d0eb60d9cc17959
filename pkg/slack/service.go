package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/outreachkit/prospector/ent"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service delivers operator notifications: run lifecycle, gate review
// requests, budget warnings, and critical alerts. Later messages for a
// run thread onto its start notification via the run fingerprint.
// Nil-safe: all methods are no-ops when service is nil, so callers
// need no Slack-configured conditionals.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// threadFor locates the run's start message for threading. Best
// effort: a miss posts to the channel top level instead.
func (s *Service) threadFor(ctx context.Context, runID string) string {
	threadTS, err := s.client.FindMessageByFingerprint(ctx, runFingerprint(runID))
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for run",
			"run_id", runID, "error", err)
	}
	return threadTS
}

// NotifyRunStarted announces a claimed run. Fail-open: errors are
// logged, never returned.
func (s *Service) NotifyRunStarted(ctx context.Context, run *ent.WorkflowRun) {
	if s == nil {
		return
	}
	blocks := BuildRunStartedMessage(run, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "", 5*time.Second); err != nil {
		s.logger.Error("Failed to send run start notification",
			"run_id", run.ID, "error", err)
	}
}

// NotifyRunTerminal announces a terminal run status.
func (s *Service) NotifyRunTerminal(ctx context.Context, run *ent.WorkflowRun) {
	if s == nil {
		return
	}
	blocks := BuildRunTerminalMessage(run, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, s.threadFor(ctx, run.ID), 10*time.Second); err != nil {
		s.logger.Error("Failed to send run terminal notification",
			"run_id", run.ID, "status", run.Status, "error", err)
	}
}

// NotifyGateCreated asks the review channel to decide a pending gate.
func (s *Service) NotifyGateCreated(ctx context.Context, gate *ent.HumanGate) {
	if s == nil {
		return
	}
	blocks := BuildGateOpenedMessage(gate, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, s.threadFor(ctx, gate.RunID), 5*time.Second); err != nil {
		s.logger.Error("Failed to send gate review notification",
			"gate_id", gate.ID, "run_id", gate.RunID, "error", err)
	}
}

// NotifyGateDecided records a gate verdict in the run's thread.
func (s *Service) NotifyGateDecided(ctx context.Context, gate *ent.HumanGate) {
	if s == nil {
		return
	}
	blocks := BuildGateDecidedMessage(gate)
	if err := s.client.PostMessage(ctx, blocks, s.threadFor(ctx, gate.RunID), 5*time.Second); err != nil {
		s.logger.Error("Failed to send gate decision notification",
			"gate_id", gate.ID, "run_id", gate.RunID, "error", err)
	}
}

// NotifyBudgetWarning warns that a cap crossed its warning fraction.
// The governor sends it at most once per cap per run.
func (s *Service) NotifyBudgetWarning(ctx context.Context, runID, capLabel string, spentUSD, capUSD float64) {
	if s == nil {
		return
	}
	blocks := BuildBudgetWarningMessage(runID, capLabel, spentUSD, capUSD, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, s.threadFor(ctx, runID), 5*time.Second); err != nil {
		s.logger.Error("Failed to send budget warning",
			"run_id", runID, "cap", capLabel, "error", err)
	}
}

// NotifyCritical escalates a failure that needs a human, such as a
// compensation hook that exhausted its retries.
func (s *Service) NotifyCritical(ctx context.Context, runID, message string) {
	if s == nil {
		return
	}
	blocks := BuildCriticalAlertMessage(runID, message, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, s.threadFor(ctx, runID), 10*time.Second); err != nil {
		s.logger.Error("Failed to send critical alert",
			"run_id", runID, "error", err)
	}
}
