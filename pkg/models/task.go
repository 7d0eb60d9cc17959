package models

import (
	"github.com/outreachkit/prospector/ent"
)

// CreateTaskRequest contains fields for creating a new agent task
type CreateTaskRequest struct {
	TaskID    string  `json:"task_id"`
	RunID     string  `json:"run_id"`
	AgentName string  `json:"agent_name"`
	Phase     int     `json:"phase"`
	Attempt   int     `json:"attempt"`
	InputRef  *string `json:"input_ref,omitempty"`
}

// TaskResponse wraps an AgentTask with optional loaded edges
type TaskResponse struct {
	*ent.AgentTask
}

// TaskListResponse contains the tasks of one run grouped flat,
// ordered by phase then agent name.
type TaskListResponse struct {
	Tasks      []*ent.AgentTask `json:"tasks"`
	TotalCount int              `json:"total_count"`
}
