// Package gates manages phase-boundary approval gates: opening them,
// resolving decisions, suspending engine goroutines until a verdict, and
// expiring overdue gates.
package gates

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/pkg/models"
	"github.com/outreachkit/prospector/pkg/services"
)

// GateStore is the persistence surface the gate service needs.
// Implemented by services.GateService.
type GateStore interface {
	CreateGate(ctx context.Context, req models.CreateGateRequest) (*ent.HumanGate, error)
	PollGate(ctx context.Context, gateID string) (*ent.HumanGate, error)
	SubmitDecision(ctx context.Context, gateID string, req models.GateDecisionRequest) (*ent.HumanGate, error)
	ExpireOverdueGates(ctx context.Context) ([]*ent.HumanGate, error)
}

// Notifier pushes gate lifecycle events to the approver channel. A nil
// notifier disables notifications.
type Notifier interface {
	NotifyGateCreated(ctx context.Context, gate *ent.HumanGate)
	NotifyGateDecided(ctx context.Context, gate *ent.HumanGate)
}

// PhaseConfig holds per-phase gate policy.
type PhaseConfig struct {
	// DeadlineTTL overrides the default review window.
	DeadlineTTL time.Duration `yaml:"deadline_ttl"`

	// AutoApprove resolves the gate immediately when its predicate holds.
	AutoApprove bool `yaml:"auto_approve"`

	// MinQualityScore guards auto-approval: the gate artifact's
	// quality_score must reach it. Zero disables the predicate.
	MinQualityScore float64 `yaml:"min_quality_score"`
}

// Config holds deployment gate policy.
type Config struct {
	DefaultTTL   time.Duration       `yaml:"default_ttl"`
	PollInterval time.Duration       `yaml:"poll_interval"`
	Phases       map[int]PhaseConfig `yaml:"phases"`
}

// DefaultConfig returns production gate policy: 72h review window,
// 5s await poll fallback, no auto-approval.
func DefaultConfig() Config {
	return Config{
		DefaultTTL:   72 * time.Hour,
		PollInterval: 5 * time.Second,
	}
}

// OpenRequest describes the gate a finished phase wants reviewed.
type OpenRequest struct {
	RunID       string
	Phase       int
	ArtifactRef string

	// Artifact is the finalizer output the auto-approve predicate reads.
	Artifact map[string]any

	// RunConfig carries the per-run gate overrides.
	RunConfig *models.RunConfig
}

// Service opens and resolves human gates and wakes local Await callers.
// Cross-pod wakeups arrive through NotifyDecision from the NOTIFY
// listener.
type Service struct {
	store    GateStore
	notifier Notifier
	config   Config
	logger   *slog.Logger

	mu      sync.Mutex
	waiters map[string][]chan struct{}
}

// NewService creates a gate service.
func NewService(store GateStore, notifier Notifier, config Config) *Service {
	if config.DefaultTTL <= 0 {
		config.DefaultTTL = 72 * time.Hour
	}
	if config.PollInterval <= 0 {
		config.PollInterval = 5 * time.Second
	}
	return &Service{
		store:    store,
		notifier: notifier,
		config:   config,
		logger:   slog.Default().With("component", "gates"),
		waiters:  make(map[string][]chan struct{}),
	}
}

// Open creates a pending gate for a phase boundary and either notifies
// the approver channel or auto-resolves it per policy.
func (s *Service) Open(ctx context.Context, req OpenRequest) (*ent.HumanGate, error) {
	deadline := time.Now().Add(s.deadlineTTL(req.Phase, req.RunConfig))

	// Deterministic gate id: a crashed engine replaying Open after the
	// write rejoins the existing gate instead of opening a duplicate.
	gateID := uuid.NewSHA1(uuid.NameSpaceOID,
		[]byte(fmt.Sprintf("gate:%s:%d:%s", req.RunID, req.Phase, req.ArtifactRef))).String()

	gate, err := s.store.CreateGate(ctx, models.CreateGateRequest{
		GateID:      gateID,
		RunID:       req.RunID,
		Phase:       req.Phase,
		ArtifactRef: req.ArtifactRef,
		Deadline:    deadline,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gate for phase %d: %w", req.Phase, err)
	}
	if gate.Status != humangate.StatusPending {
		// Replayed create returned an already-decided gate.
		return gate, nil
	}

	s.logger.Info("Gate opened",
		"gate_id", gate.ID,
		"run_id", req.RunID,
		"phase", req.Phase,
		"deadline", gate.Deadline)

	if s.shouldAutoApprove(req) {
		decided, err := s.Decide(ctx, gate.ID, models.GateDecisionRequest{
			Decision:   string(humangate.StatusApproved),
			ApproverID: services.SystemApproverID,
			Notes:      "auto-approved by gate policy",
		})
		if err == nil {
			return decided, nil
		}
		if err != services.ErrGateAlreadyDecided {
			return nil, err
		}
		return s.store.PollGate(ctx, gate.ID)
	}

	if s.notifier != nil {
		s.notifier.NotifyGateCreated(ctx, gate)
	}
	return gate, nil
}

// Decide records a reviewer verdict, wakes local waiters, and notifies
// the approver channel. Conflicting re-decision returns
// services.ErrGateAlreadyDecided.
func (s *Service) Decide(ctx context.Context, gateID string, req models.GateDecisionRequest) (*ent.HumanGate, error) {
	gate, err := s.store.SubmitDecision(ctx, gateID, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Gate decided",
		"gate_id", gateID,
		"run_id", gate.RunID,
		"phase", gate.Phase,
		"decision", gate.Status,
		"approver_id", req.ApproverID)

	s.wake(gateID)
	if s.notifier != nil {
		s.notifier.NotifyGateDecided(ctx, gate)
	}
	return gate, nil
}

// Poll returns the gate's effective state without blocking.
func (s *Service) Poll(ctx context.Context, gateID string) (*ent.HumanGate, error) {
	return s.store.PollGate(ctx, gateID)
}

// NotifyDecision wakes local waiters for a gate decided on another pod.
// Called by the NOTIFY listener with the gate id from the
// gate_decisions channel payload.
func (s *Service) NotifyDecision(gateID string) {
	s.wake(gateID)
}

func (s *Service) deadlineTTL(phase int, runCfg *models.RunConfig) time.Duration {
	if runCfg != nil && runCfg.GateTTLSecs > 0 {
		return time.Duration(runCfg.GateTTLSecs) * time.Second
	}
	if phaseCfg, ok := s.config.Phases[phase]; ok && phaseCfg.DeadlineTTL > 0 {
		return phaseCfg.DeadlineTTL
	}
	return s.config.DefaultTTL
}

// shouldAutoApprove applies gate policy: a run-level auto_approve flag
// (staging runs) or a per-phase predicate on the artifact quality score.
func (s *Service) shouldAutoApprove(req OpenRequest) bool {
	if req.RunConfig != nil && req.RunConfig.AutoApprove {
		return true
	}
	phaseCfg, ok := s.config.Phases[req.Phase]
	if !ok || !phaseCfg.AutoApprove {
		return false
	}
	if phaseCfg.MinQualityScore > 0 {
		score, _ := req.Artifact["quality_score"].(float64)
		return score >= phaseCfg.MinQualityScore
	}
	return true
}
