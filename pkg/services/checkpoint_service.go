package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/checkpoint"
)

// CheckpointService manages agent state snapshots
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{client: client}
}

// SaveCheckpoint persists an agent state snapshot at the given version.
// Versions must advance by exactly one; rewriting the latest version is an
// idempotent no-op, anything older returns ErrStaleCheckpoint.
func (s *CheckpointService) SaveCheckpoint(httpCtx context.Context, runID, taskID string, version int, state map[string]any, stepCount int) (*ent.Checkpoint, error) {
	// Validate input
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if taskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if version < 1 {
		return nil, NewValidationError("version", "must be positive")
	}
	if state == nil {
		return nil, NewValidationError("state", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	latest, err := s.GetLatestCheckpoint(ctx, taskID)
	if err != nil && err != ErrNotFound {
		return nil, err
	}

	if latest != nil {
		if version == latest.Version {
			return latest, nil
		}
		if version < latest.Version {
			return nil, ErrStaleCheckpoint
		}
		if version != latest.Version+1 {
			return nil, NewValidationError("version", fmt.Sprintf("must be %d, got %d", latest.Version+1, version))
		}
	} else if version != 1 {
		return nil, NewValidationError("version", fmt.Sprintf("must be 1 for the first checkpoint, got %d", version))
	}

	cp, err := s.client.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetTaskID(taskID).
		SetVersion(version).
		SetState(state).
		SetStepCount(stepCount).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with a concurrent writer for the same version.
			existing, getErr := s.GetCheckpoint(ctx, taskID, version)
			if getErr == nil {
				return existing, nil
			}
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("failed to save checkpoint: %w", err)
	}

	return cp, nil
}

// GetLatestCheckpoint returns the newest checkpoint for a task
func (s *CheckpointService) GetLatestCheckpoint(ctx context.Context, taskID string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.TaskIDEQ(taskID)).
		Order(ent.Desc(checkpoint.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest checkpoint: %w", err)
	}

	return cp, nil
}

// GetCheckpoint returns one specific version for a task
func (s *CheckpointService) GetCheckpoint(ctx context.Context, taskID string, version int) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(
			checkpoint.TaskIDEQ(taskID),
			checkpoint.VersionEQ(version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	return cp, nil
}

// ListCheckpoints returns all checkpoints of a task in version order
func (s *CheckpointService) ListCheckpoints(ctx context.Context, taskID string) ([]*ent.Checkpoint, error) {
	checkpoints, err := s.client.Checkpoint.Query().
		Where(checkpoint.TaskIDEQ(taskID)).
		Order(ent.Asc(checkpoint.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}

	return checkpoints, nil
}
