package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/workflowrun"
	"github.com/outreachkit/prospector/pkg/models"
)

// RunService manages workflow run lifecycle
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun creates a new workflow run in pending state
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.WorkflowRun, error) {
	// Validate input
	if req.Campaign == "" {
		return nil, NewValidationError("campaign", "required")
	}
	if req.BudgetCapUSD <= 0 {
		return nil, NewValidationError("budget_cap_usd", "must be positive")
	}
	if req.Config.Niche == "" {
		return nil, NewValidationError("config.niche", "required")
	}
	if req.Config.LeadTarget < 0 {
		return nil, NewValidationError("config.lead_target", "must not be negative")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Convert run config to JSON for the snapshot column
	configBytes, err := json.Marshal(req.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run config: %w", err)
	}
	var configJSON map[string]any
	if err := json.Unmarshal(configBytes, &configJSON); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run config: %w", err)
	}

	runID := uuid.New().String()
	builder := s.client.WorkflowRun.Create().
		SetID(runID).
		SetCampaign(req.Campaign).
		SetBudgetCapUsd(req.BudgetCapUSD).
		SetStatus(workflowrun.StatusPending).
		SetConfig(configJSON)

	if req.Author != "" {
		builder.SetAuthor(req.Author)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return run, nil
}

// GetRunByID retrieves a run by ID
func (s *RunService) GetRunByID(ctx context.Context, runID string) (*ent.WorkflowRun, error) {
	run, err := s.client.WorkflowRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRuns retrieves runs matching the given filters with pagination
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.client.WorkflowRun.Query()

	if !filters.IncludeDeleted {
		query = query.Where(workflowrun.DeletedAtIsNil())
	}
	if filters.Status != "" {
		query = query.Where(workflowrun.StatusEQ(workflowrun.Status(filters.Status)))
	}
	if filters.Campaign != "" {
		query = query.Where(workflowrun.CampaignEQ(filters.Campaign))
	}
	if filters.Author != "" {
		query = query.Where(workflowrun.AuthorEQ(filters.Author))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(workflowrun.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(workflowrun.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	runs, err := query.
		Order(ent.Desc(workflowrun.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &models.RunListResponse{
		Runs:       runs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// UpdateRunStatus updates a run's status with lifecycle timestamps
func (s *RunService) UpdateRunStatus(ctx context.Context, runID string, status workflowrun.Status, errorMsg string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	run, err := s.client.WorkflowRun.Get(writeCtx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	update := s.client.WorkflowRun.UpdateOneID(runID).
		SetStatus(status)

	if status == workflowrun.StatusRunning && run.StartedAt == nil {
		update = update.SetStartedAt(time.Now())
	}

	if status == workflowrun.StatusCompleted ||
		status == workflowrun.StatusFailed ||
		status == workflowrun.StatusCancelled {
		update = update.SetCompletedAt(time.Now())
	}

	if errorMsg != "" {
		update = update.SetErrorMessage(errorMsg)
	}

	err = update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update run status: %w", err)
	}

	return nil
}

// SetCurrentPhase records the phase the engine is executing
func (s *RunService) SetCurrentPhase(ctx context.Context, runID string, phase int) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.WorkflowRun.UpdateOneID(runID).
		SetCurrentPhase(phase).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current phase: %w", err)
	}

	return nil
}

// Heartbeat refreshes the claiming pod's liveness marker
func (s *RunService) Heartbeat(ctx context.Context, runID, podID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.WorkflowRun.UpdateOneID(runID).
		SetPodID(podID).
		SetLastHeartbeatAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}

	return nil
}

// RequestCancel handles a cancellation request. Pending runs flip straight
// to cancelled (no worker owns them yet); for claimed runs the caller must
// publish a control event so the owning pod stops the engine.
// Returns the run and whether the cancellation was applied directly.
func (s *RunService) RequestCancel(ctx context.Context, runID, reason string) (*ent.WorkflowRun, bool, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := tx.WorkflowRun.Query().
		Where(workflowrun.IDEQ(runID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to get run: %w", err)
	}

	switch run.Status {
	case workflowrun.StatusCompleted, workflowrun.StatusFailed, workflowrun.StatusCancelled:
		return nil, false, ErrRunNotActive
	case workflowrun.StatusPending:
		run, err = tx.WorkflowRun.UpdateOneID(runID).
			SetStatus(workflowrun.StatusCancelled).
			SetCompletedAt(time.Now()).
			SetErrorMessage(reason).
			Save(writeCtx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to cancel run: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return run, true, nil
	default:
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return run, false, nil
	}
}

// SoftDeleteOldRuns marks terminal runs older than the retention
// window as deleted. Cascading rows (tasks, events, artifacts) go when
// the row is eventually purged; until then the run stays queryable for
// audits via direct lookup. Returns the number of runs marked.
func (s *RunService) SoftDeleteOldRuns(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	n, err := s.client.WorkflowRun.Update().
		Where(
			workflowrun.StatusIn(
				workflowrun.StatusCompleted,
				workflowrun.StatusFailed,
				workflowrun.StatusCancelled,
			),
			workflowrun.CreatedAtLT(cutoff),
			workflowrun.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete old runs: %w", err)
	}
	return n, nil
}

// GetRunConfig unmarshals the config snapshot stored on the run row
func (s *RunService) GetRunConfig(run *ent.WorkflowRun) (models.RunConfig, error) {
	var cfg models.RunConfig
	if run.Config == nil {
		return cfg, nil
	}
	configBytes, err := json.Marshal(run.Config)
	if err != nil {
		return cfg, fmt.Errorf("failed to marshal config snapshot: %w", err)
	}
	if err := json.Unmarshal(configBytes, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config snapshot: %w", err)
	}
	return cfg, nil
}
