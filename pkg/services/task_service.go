package services

import (
	"context"
	"fmt"
	"time"

	"github.com/outreachkit/prospector/ent"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/pkg/models"
)

// TaskService manages agent task lifecycle
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask creates a new agent task. Idempotent per task_id: replayed
// writes return the existing row unchanged.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.AgentTask, error) {
	// Validate input
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.Phase < 1 || req.Phase > 5 {
		return nil, NewValidationError("phase", "must be between 1 and 5")
	}
	if req.Attempt < 1 {
		return nil, NewValidationError("attempt", "must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AgentTask.Create().
		SetID(req.TaskID).
		SetRunID(req.RunID).
		SetAgentName(req.AgentName).
		SetPhase(req.Phase).
		SetAttempt(req.Attempt).
		SetState(agenttask.StateNew)

	if req.InputRef != nil {
		builder.SetInputRef(*req.InputRef)
	}

	task, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, getErr := s.client.AgentTask.Get(ctx, req.TaskID)
			if getErr == nil {
				return existing, nil
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTaskByID retrieves a task by ID
func (s *TaskService) GetTaskByID(ctx context.Context, taskID string) (*ent.AgentTask, error) {
	task, err := s.client.AgentTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// GetTasksByRun retrieves all tasks of a run ordered by phase then agent name
func (s *TaskService) GetTasksByRun(ctx context.Context, runID string) ([]*ent.AgentTask, error) {
	tasks, err := s.client.AgentTask.Query().
		Where(agenttask.RunIDEQ(runID)).
		Order(ent.Asc(agenttask.FieldPhase), ent.Asc(agenttask.FieldAgentName), ent.Asc(agenttask.FieldAttempt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	return tasks, nil
}

// GetLatestAttempt returns the newest task row for (run, agent), or
// ErrNotFound when the agent has never been scheduled in this run.
func (s *TaskService) GetLatestAttempt(ctx context.Context, runID, agentName string) (*ent.AgentTask, error) {
	task, err := s.client.AgentTask.Query().
		Where(
			agenttask.RunIDEQ(runID),
			agenttask.AgentNameEQ(agentName),
		).
		Order(ent.Desc(agenttask.FieldAttempt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest attempt: %w", err)
	}

	return task, nil
}

// UpdateTaskState updates a task's lifecycle state with timestamps
func (s *TaskService) UpdateTaskState(ctx context.Context, taskID string, state agenttask.State, errorMsg string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	task, err := s.client.AgentTask.Get(writeCtx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get task: %w", err)
	}

	update := s.client.AgentTask.UpdateOneID(taskID).
		SetState(state)

	if state == agenttask.StateRunning && task.StartedAt == nil {
		update = update.SetStartedAt(time.Now())
	}

	if state == agenttask.StateCompleted ||
		state == agenttask.StateFailed ||
		state == agenttask.StateCancelled {
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
		return fmt.Errorf("failed to update task state: %w", err)
	}

	return nil
}

// CompleteTask marks a task completed and records its output artifact
func (s *TaskService) CompleteTask(ctx context.Context, taskID, outputRef string, stepCount int) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := s.client.AgentTask.UpdateOneID(taskID).
		SetState(agenttask.StateCompleted).
		SetStepCount(stepCount).
		SetCompletedAt(time.Now())

	if outputRef != "" {
		update = update.SetOutputRef(outputRef)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete task: %w", err)
	}

	return nil
}

// SetStepCount persists the number of steps executed so far
func (s *TaskService) SetStepCount(ctx context.Context, taskID string, stepCount int) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.AgentTask.UpdateOneID(taskID).
		SetStepCount(stepCount).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set step count: %w", err)
	}

	return nil
}

// GetNonTerminalTasks returns tasks of a run still in flight, used by
// cancellation and orphan recovery to know what needs stopping.
func (s *TaskService) GetNonTerminalTasks(ctx context.Context, runID string) ([]*ent.AgentTask, error) {
	tasks, err := s.client.AgentTask.Query().
		Where(
			agenttask.RunIDEQ(runID),
			agenttask.StateNotIn(agenttask.StateCompleted, agenttask.StateFailed, agenttask.StateCancelled),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get non-terminal tasks: %w", err)
	}

	return tasks, nil
}
