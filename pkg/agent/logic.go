// Package agent drives a single AgentTask through its state machine: the
// step loop, concurrent tool mediation, checkpointing, and resume.
package agent

import (
	"context"

	"github.com/outreachkit/prospector/pkg/tools"
)

// ToolRequest is one tool call an agent asks for inside a step.
type ToolRequest struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params"`
}

// WaitMode selects how many of a step's tool requests must resolve before
// the agent resumes.
type WaitMode string

// Wait modes.
const (
	WaitAll    WaitMode = "all"
	WaitAny    WaitMode = "any"
	WaitQuorum WaitMode = "quorum"
)

// WaitPolicy is a step's resolution policy. The zero value waits for all.
type WaitPolicy struct {
	Mode   WaitMode `json:"mode"`
	Quorum int      `json:"quorum,omitempty"`
}

// ToolResponse is one request's outcome, presented at the request's index
// regardless of completion order. Unresolved responses (wait policy
// satisfied early) have Resolved false.
type ToolResponse struct {
	Request  ToolRequest
	Resolved bool
	Result   *tools.RouteResult
	Err      error
}

// StepOutcome is what one Step call decides. Exactly one of the concrete
// outcome types below.
type StepOutcome interface {
	stepOutcome()
}

// NeedsTools suspends the task until the requests resolve per Policy.
// A non-nil State replaces the working state before the checkpoint that
// follows a successful round.
type NeedsTools struct {
	State    map[string]any
	Requests []ToolRequest
	Policy   WaitPolicy
}

// CheckpointAndContinue flushes the given state durably and re-enters the
// step loop.
type CheckpointAndContinue struct {
	State map[string]any
}

// Done completes the task with the given output document.
type Done struct {
	Output map[string]any
}

// Abort fails the task with a non-retryable reason.
type Abort struct {
	Reason string
}

func (NeedsTools) stepOutcome()            {}
func (CheckpointAndContinue) stepOutcome() {}
func (Done) stepOutcome()                  {}
func (Abort) stepOutcome()                 {}

// AgentLogic is the domain brain of one agent. Implementations must be
// stateless between calls: all working memory lives in the state map,
// which is the checkpoint payload.
type AgentLogic interface {
	// Name identifies the agent in the phase graph and the registry.
	Name() string

	// InitialState builds the working state for a fresh task from the
	// phase input document.
	InitialState(input map[string]any) map[string]any

	// Step advances the agent. results holds the previous NeedsTools
	// round in request-index order, nil on the first call and after a
	// checkpoint resume.
	Step(ctx context.Context, state map[string]any, results []ToolResponse) StepOutcome
}

// ToolRouter dispatches one abstract operation. Implemented by
// tools.Router.
type ToolRouter interface {
	Execute(ctx context.Context, req tools.InvokeRequest) (*tools.RouteResult, error)
}

// CompensationContext carries what a compensation hook needs to reverse
// an agent's side effects.
type CompensationContext struct {
	RunID  string
	TaskID string
	Phase  int
	Router ToolRouter
}

// CompensatingLogic is implemented by agents with external side effects
// that must be reversed when a later failure unwinds the run.
type CompensatingLogic interface {
	AgentLogic

	// Compensate reverses the agent's committed effects given its output
	// document. Must be idempotent: the engine retries failed hooks.
	Compensate(ctx context.Context, comp CompensationContext, output map[string]any) error
}

// InputValidator is optionally implemented by logics with structural
// requirements on their phase input. Validation failures fail the task
// without retry.
type InputValidator interface {
	ValidateInput(input map[string]any) error
}
