package models

import (
	"github.com/outreachkit/prospector/ent"
)

// CreateArtifactRequest contains fields for persisting a phase output
type CreateArtifactRequest struct {
	ArtifactID string         `json:"artifact_id"`
	RunID      string         `json:"run_id"`
	Phase      int            `json:"phase"`
	Name       string         `json:"name"`
	Kind       string         `json:"kind"`
	Payload    map[string]any `json:"payload"`
	ProducedBy *string        `json:"produced_by,omitempty"`
}

// ArtifactResponse wraps an Artifact
type ArtifactResponse struct {
	*ent.Artifact
}

// ArtifactListResponse contains the artifacts of one run
type ArtifactListResponse struct {
	Artifacts  []*ent.Artifact `json:"artifacts"`
	TotalCount int             `json:"total_count"`
}
