package services

import (
	"context"
	"fmt"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/artifact"
	"github.com/outreachkit/prospector/pkg/models"
)

// ArtifactService manages phase output artifacts
type ArtifactService struct {
	client *ent.Client
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(client *ent.Client) *ArtifactService {
	return &ArtifactService{client: client}
}

// CreateArtifact persists a phase output. Idempotent per artifact_id.
func (s *ArtifactService) CreateArtifact(httpCtx context.Context, req models.CreateArtifactRequest) (*ent.Artifact, error) {
	// Validate input
	if req.ArtifactID == "" {
		return nil, NewValidationError("artifact_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Kind == "" {
		return nil, NewValidationError("kind", "required")
	}
	if req.Payload == nil {
		return nil, NewValidationError("payload", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Artifact.Create().
		SetID(req.ArtifactID).
		SetRunID(req.RunID).
		SetPhase(req.Phase).
		SetName(req.Name).
		SetKind(req.Kind).
		SetPayload(req.Payload)

	if req.ProducedBy != nil {
		builder.SetProducedBy(*req.ProducedBy)
	}

	art, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, getErr := s.client.Artifact.Get(ctx, req.ArtifactID)
			if getErr == nil {
				return existing, nil
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create artifact: %w", err)
	}

	return art, nil
}

// GetArtifactByID retrieves an artifact by ID
func (s *ArtifactService) GetArtifactByID(ctx context.Context, artifactID string) (*ent.Artifact, error) {
	art, err := s.client.Artifact.Get(ctx, artifactID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}

	return art, nil
}

// GetArtifactsByRun returns a run's artifacts in phase order
func (s *ArtifactService) GetArtifactsByRun(ctx context.Context, runID string) ([]*ent.Artifact, error) {
	artifacts, err := s.client.Artifact.Query().
		Where(artifact.RunIDEQ(runID)).
		Order(ent.Asc(artifact.FieldPhase), ent.Asc(artifact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get artifacts: %w", err)
	}

	return artifacts, nil
}

// GetLatestArtifactByName returns the newest artifact with the given name,
// used to hand a phase's output to the next phase's agents.
func (s *ArtifactService) GetLatestArtifactByName(ctx context.Context, runID, name string) (*ent.Artifact, error) {
	art, err := s.client.Artifact.Query().
		Where(
			artifact.RunIDEQ(runID),
			artifact.NameEQ(name),
		).
		Order(ent.Desc(artifact.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact by name: %w", err)
	}

	return art, nil
}
