// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/artifact"
	"github.com/outreachkit/prospector/ent/breakerstate"
	"github.com/outreachkit/prospector/ent/budgetentry"
	"github.com/outreachkit/prospector/ent/checkpoint"
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/limiterstate"
	"github.com/outreachkit/prospector/ent/predicate"
	"github.com/outreachkit/prospector/ent/runevent"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentTask      = "AgentTask"
	TypeArtifact       = "Artifact"
	TypeBreakerState   = "BreakerState"
	TypeBudgetEntry    = "BudgetEntry"
	TypeCheckpoint     = "Checkpoint"
	TypeHumanGate      = "HumanGate"
	TypeLimiterState   = "LimiterState"
	TypeRunEvent       = "RunEvent"
	TypeToolInvocation = "ToolInvocation"
	TypeWorkflowRun    = "WorkflowRun"
)

// AgentTaskMutation represents an operation that mutates the AgentTask nodes in the graph.
type AgentTaskMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	agent_name         *string
	phase              *int
	addphase           *int
	attempt            *int
	addattempt         *int
	state              *agenttask.State
	step_count         *int
	addstep_count      *int
	input_ref          *string
	output_ref         *string
	error_message      *string
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	run                *string
	clearedrun         bool
	invocations        map[string]struct{}
	removedinvocations map[string]struct{}
	clearedinvocations bool
	checkpoints        map[string]struct{}
	removedcheckpoints map[string]struct{}
	clearedcheckpoints bool
	done               bool
	oldValue           func(context.Context) (*AgentTask, error)
	predicates         []predicate.AgentTask
}

var _ ent.Mutation = (*AgentTaskMutation)(nil)

// agenttaskOption allows management of the mutation configuration using functional options.
type agenttaskOption func(*AgentTaskMutation)

// newAgentTaskMutation creates new mutation for the AgentTask entity.
func newAgentTaskMutation(c config, op Op, opts ...agenttaskOption) *AgentTaskMutation {
	m := &AgentTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentTaskID sets the ID field of the mutation.
func withAgentTaskID(id string) agenttaskOption {
	return func(m *AgentTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentTask
		)
		m.oldValue = func(ctx context.Context) (*AgentTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentTask sets the old AgentTask of the mutation.
func withAgentTask(node *AgentTask) agenttaskOption {
	return func(m *AgentTaskMutation) {
		m.oldValue = func(context.Context) (*AgentTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentTask entities.
func (m *AgentTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentTaskMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentTaskMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentTaskMutation) ResetRunID() {
	m.run = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentTaskMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentTaskMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentTaskMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetPhase sets the "phase" field.
func (m *AgentTaskMutation) SetPhase(i int) {
	m.phase = &i
	m.addphase = nil
}

// Phase returns the value of the "phase" field in the mutation.
func (m *AgentTaskMutation) Phase() (r int, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldPhase(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// AddPhase adds i to the "phase" field.
func (m *AgentTaskMutation) AddPhase(i int) {
	if m.addphase != nil {
		*m.addphase += i
	} else {
		m.addphase = &i
	}
}

// AddedPhase returns the value that was added to the "phase" field in this mutation.
func (m *AgentTaskMutation) AddedPhase() (r int, exists bool) {
	v := m.addphase
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhase resets all changes to the "phase" field.
func (m *AgentTaskMutation) ResetPhase() {
	m.phase = nil
	m.addphase = nil
}

// SetAttempt sets the "attempt" field.
func (m *AgentTaskMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *AgentTaskMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *AgentTaskMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *AgentTaskMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *AgentTaskMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetState sets the "state" field.
func (m *AgentTaskMutation) SetState(a agenttask.State) {
	m.state = &a
}

// State returns the value of the "state" field in the mutation.
func (m *AgentTaskMutation) State() (r agenttask.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldState(ctx context.Context) (v agenttask.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *AgentTaskMutation) ResetState() {
	m.state = nil
}

// SetStepCount sets the "step_count" field.
func (m *AgentTaskMutation) SetStepCount(i int) {
	m.step_count = &i
	m.addstep_count = nil
}

// StepCount returns the value of the "step_count" field in the mutation.
func (m *AgentTaskMutation) StepCount() (r int, exists bool) {
	v := m.step_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStepCount returns the old "step_count" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldStepCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepCount: %w", err)
	}
	return oldValue.StepCount, nil
}

// AddStepCount adds i to the "step_count" field.
func (m *AgentTaskMutation) AddStepCount(i int) {
	if m.addstep_count != nil {
		*m.addstep_count += i
	} else {
		m.addstep_count = &i
	}
}

// AddedStepCount returns the value that was added to the "step_count" field in this mutation.
func (m *AgentTaskMutation) AddedStepCount() (r int, exists bool) {
	v := m.addstep_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepCount resets all changes to the "step_count" field.
func (m *AgentTaskMutation) ResetStepCount() {
	m.step_count = nil
	m.addstep_count = nil
}

// SetInputRef sets the "input_ref" field.
func (m *AgentTaskMutation) SetInputRef(s string) {
	m.input_ref = &s
}

// InputRef returns the value of the "input_ref" field in the mutation.
func (m *AgentTaskMutation) InputRef() (r string, exists bool) {
	v := m.input_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldInputRef returns the old "input_ref" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldInputRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputRef: %w", err)
	}
	return oldValue.InputRef, nil
}

// ClearInputRef clears the value of the "input_ref" field.
func (m *AgentTaskMutation) ClearInputRef() {
	m.input_ref = nil
	m.clearedFields[agenttask.FieldInputRef] = struct{}{}
}

// InputRefCleared returns if the "input_ref" field was cleared in this mutation.
func (m *AgentTaskMutation) InputRefCleared() bool {
	_, ok := m.clearedFields[agenttask.FieldInputRef]
	return ok
}

// ResetInputRef resets all changes to the "input_ref" field.
func (m *AgentTaskMutation) ResetInputRef() {
	m.input_ref = nil
	delete(m.clearedFields, agenttask.FieldInputRef)
}

// SetOutputRef sets the "output_ref" field.
func (m *AgentTaskMutation) SetOutputRef(s string) {
	m.output_ref = &s
}

// OutputRef returns the value of the "output_ref" field in the mutation.
func (m *AgentTaskMutation) OutputRef() (r string, exists bool) {
	v := m.output_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputRef returns the old "output_ref" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldOutputRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputRef: %w", err)
	}
	return oldValue.OutputRef, nil
}

// ClearOutputRef clears the value of the "output_ref" field.
func (m *AgentTaskMutation) ClearOutputRef() {
	m.output_ref = nil
	m.clearedFields[agenttask.FieldOutputRef] = struct{}{}
}

// OutputRefCleared returns if the "output_ref" field was cleared in this mutation.
func (m *AgentTaskMutation) OutputRefCleared() bool {
	_, ok := m.clearedFields[agenttask.FieldOutputRef]
	return ok
}

// ResetOutputRef resets all changes to the "output_ref" field.
func (m *AgentTaskMutation) ResetOutputRef() {
	m.output_ref = nil
	delete(m.clearedFields, agenttask.FieldOutputRef)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agenttask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agenttask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agenttask.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agenttask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agenttask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agenttask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentTask entity.
// If the AgentTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agenttask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agenttask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agenttask.FieldCompletedAt)
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *AgentTaskMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agenttask.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *AgentTaskMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentTaskMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentTaskMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddInvocationIDs adds the "invocations" edge to the ToolInvocation entity by ids.
func (m *AgentTaskMutation) AddInvocationIDs(ids ...string) {
	if m.invocations == nil {
		m.invocations = make(map[string]struct{})
	}
	for i := range ids {
		m.invocations[ids[i]] = struct{}{}
	}
}

// ClearInvocations clears the "invocations" edge to the ToolInvocation entity.
func (m *AgentTaskMutation) ClearInvocations() {
	m.clearedinvocations = true
}

// InvocationsCleared reports if the "invocations" edge to the ToolInvocation entity was cleared.
func (m *AgentTaskMutation) InvocationsCleared() bool {
	return m.clearedinvocations
}

// RemoveInvocationIDs removes the "invocations" edge to the ToolInvocation entity by IDs.
func (m *AgentTaskMutation) RemoveInvocationIDs(ids ...string) {
	if m.removedinvocations == nil {
		m.removedinvocations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.invocations, ids[i])
		m.removedinvocations[ids[i]] = struct{}{}
	}
}

// RemovedInvocations returns the removed IDs of the "invocations" edge to the ToolInvocation entity.
func (m *AgentTaskMutation) RemovedInvocationsIDs() (ids []string) {
	for id := range m.removedinvocations {
		ids = append(ids, id)
	}
	return
}

// InvocationsIDs returns the "invocations" edge IDs in the mutation.
func (m *AgentTaskMutation) InvocationsIDs() (ids []string) {
	for id := range m.invocations {
		ids = append(ids, id)
	}
	return
}

// ResetInvocations resets all changes to the "invocations" edge.
func (m *AgentTaskMutation) ResetInvocations() {
	m.invocations = nil
	m.clearedinvocations = false
	m.removedinvocations = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *AgentTaskMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *AgentTaskMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *AgentTaskMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *AgentTaskMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *AgentTaskMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *AgentTaskMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *AgentTaskMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the AgentTaskMutation builder.
func (m *AgentTaskMutation) Where(ps ...predicate.AgentTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentTask).
func (m *AgentTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentTaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run != nil {
		fields = append(fields, agenttask.FieldRunID)
	}
	if m.agent_name != nil {
		fields = append(fields, agenttask.FieldAgentName)
	}
	if m.phase != nil {
		fields = append(fields, agenttask.FieldPhase)
	}
	if m.attempt != nil {
		fields = append(fields, agenttask.FieldAttempt)
	}
	if m.state != nil {
		fields = append(fields, agenttask.FieldState)
	}
	if m.step_count != nil {
		fields = append(fields, agenttask.FieldStepCount)
	}
	if m.input_ref != nil {
		fields = append(fields, agenttask.FieldInputRef)
	}
	if m.output_ref != nil {
		fields = append(fields, agenttask.FieldOutputRef)
	}
	if m.error_message != nil {
		fields = append(fields, agenttask.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, agenttask.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, agenttask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agenttask.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenttask.FieldRunID:
		return m.RunID()
	case agenttask.FieldAgentName:
		return m.AgentName()
	case agenttask.FieldPhase:
		return m.Phase()
	case agenttask.FieldAttempt:
		return m.Attempt()
	case agenttask.FieldState:
		return m.State()
	case agenttask.FieldStepCount:
		return m.StepCount()
	case agenttask.FieldInputRef:
		return m.InputRef()
	case agenttask.FieldOutputRef:
		return m.OutputRef()
	case agenttask.FieldErrorMessage:
		return m.ErrorMessage()
	case agenttask.FieldCreatedAt:
		return m.CreatedAt()
	case agenttask.FieldStartedAt:
		return m.StartedAt()
	case agenttask.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenttask.FieldRunID:
		return m.OldRunID(ctx)
	case agenttask.FieldAgentName:
		return m.OldAgentName(ctx)
	case agenttask.FieldPhase:
		return m.OldPhase(ctx)
	case agenttask.FieldAttempt:
		return m.OldAttempt(ctx)
	case agenttask.FieldState:
		return m.OldState(ctx)
	case agenttask.FieldStepCount:
		return m.OldStepCount(ctx)
	case agenttask.FieldInputRef:
		return m.OldInputRef(ctx)
	case agenttask.FieldOutputRef:
		return m.OldOutputRef(ctx)
	case agenttask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agenttask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agenttask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agenttask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenttask.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agenttask.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agenttask.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case agenttask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case agenttask.FieldState:
		v, ok := value.(agenttask.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case agenttask.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepCount(v)
		return nil
	case agenttask.FieldInputRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputRef(v)
		return nil
	case agenttask.FieldOutputRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputRef(v)
		return nil
	case agenttask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agenttask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agenttask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agenttask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentTaskMutation) AddedFields() []string {
	var fields []string
	if m.addphase != nil {
		fields = append(fields, agenttask.FieldPhase)
	}
	if m.addattempt != nil {
		fields = append(fields, agenttask.FieldAttempt)
	}
	if m.addstep_count != nil {
		fields = append(fields, agenttask.FieldStepCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agenttask.FieldPhase:
		return m.AddedPhase()
	case agenttask.FieldAttempt:
		return m.AddedAttempt()
	case agenttask.FieldStepCount:
		return m.AddedStepCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agenttask.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhase(v)
		return nil
	case agenttask.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case agenttask.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepCount(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenttask.FieldInputRef) {
		fields = append(fields, agenttask.FieldInputRef)
	}
	if m.FieldCleared(agenttask.FieldOutputRef) {
		fields = append(fields, agenttask.FieldOutputRef)
	}
	if m.FieldCleared(agenttask.FieldErrorMessage) {
		fields = append(fields, agenttask.FieldErrorMessage)
	}
	if m.FieldCleared(agenttask.FieldStartedAt) {
		fields = append(fields, agenttask.FieldStartedAt)
	}
	if m.FieldCleared(agenttask.FieldCompletedAt) {
		fields = append(fields, agenttask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentTaskMutation) ClearField(name string) error {
	switch name {
	case agenttask.FieldInputRef:
		m.ClearInputRef()
		return nil
	case agenttask.FieldOutputRef:
		m.ClearOutputRef()
		return nil
	case agenttask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agenttask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agenttask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentTaskMutation) ResetField(name string) error {
	switch name {
	case agenttask.FieldRunID:
		m.ResetRunID()
		return nil
	case agenttask.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agenttask.FieldPhase:
		m.ResetPhase()
		return nil
	case agenttask.FieldAttempt:
		m.ResetAttempt()
		return nil
	case agenttask.FieldState:
		m.ResetState()
		return nil
	case agenttask.FieldStepCount:
		m.ResetStepCount()
		return nil
	case agenttask.FieldInputRef:
		m.ResetInputRef()
		return nil
	case agenttask.FieldOutputRef:
		m.ResetOutputRef()
		return nil
	case agenttask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agenttask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agenttask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agenttask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.run != nil {
		edges = append(edges, agenttask.EdgeRun)
	}
	if m.invocations != nil {
		edges = append(edges, agenttask.EdgeInvocations)
	}
	if m.checkpoints != nil {
		edges = append(edges, agenttask.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenttask.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case agenttask.EdgeInvocations:
		ids := make([]ent.Value, 0, len(m.invocations))
		for id := range m.invocations {
			ids = append(ids, id)
		}
		return ids
	case agenttask.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedinvocations != nil {
		edges = append(edges, agenttask.EdgeInvocations)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, agenttask.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentTaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agenttask.EdgeInvocations:
		ids := make([]ent.Value, 0, len(m.removedinvocations))
		for id := range m.removedinvocations {
			ids = append(ids, id)
		}
		return ids
	case agenttask.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedrun {
		edges = append(edges, agenttask.EdgeRun)
	}
	if m.clearedinvocations {
		edges = append(edges, agenttask.EdgeInvocations)
	}
	if m.clearedcheckpoints {
		edges = append(edges, agenttask.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case agenttask.EdgeRun:
		return m.clearedrun
	case agenttask.EdgeInvocations:
		return m.clearedinvocations
	case agenttask.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentTaskMutation) ClearEdge(name string) error {
	switch name {
	case agenttask.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown AgentTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentTaskMutation) ResetEdge(name string) error {
	switch name {
	case agenttask.EdgeRun:
		m.ResetRun()
		return nil
	case agenttask.EdgeInvocations:
		m.ResetInvocations()
		return nil
	case agenttask.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown AgentTask edge %s", name)
}

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	phase         *int
	addphase      *int
	name          *string
	kind          *string
	payload       *map[string]interface{}
	produced_by   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*Artifact, error)
	predicates    []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ArtifactMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ArtifactMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ArtifactMutation) ResetRunID() {
	m.run = nil
}

// SetPhase sets the "phase" field.
func (m *ArtifactMutation) SetPhase(i int) {
	m.phase = &i
	m.addphase = nil
}

// Phase returns the value of the "phase" field in the mutation.
func (m *ArtifactMutation) Phase() (r int, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldPhase(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// AddPhase adds i to the "phase" field.
func (m *ArtifactMutation) AddPhase(i int) {
	if m.addphase != nil {
		*m.addphase += i
	} else {
		m.addphase = &i
	}
}

// AddedPhase returns the value that was added to the "phase" field in this mutation.
func (m *ArtifactMutation) AddedPhase() (r int, exists bool) {
	v := m.addphase
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhase resets all changes to the "phase" field.
func (m *ArtifactMutation) ResetPhase() {
	m.phase = nil
	m.addphase = nil
}

// SetName sets the "name" field.
func (m *ArtifactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ArtifactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ArtifactMutation) ResetName() {
	m.name = nil
}

// SetKind sets the "kind" field.
func (m *ArtifactMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ArtifactMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ArtifactMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *ArtifactMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ArtifactMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ArtifactMutation) ResetPayload() {
	m.payload = nil
}

// SetProducedBy sets the "produced_by" field.
func (m *ArtifactMutation) SetProducedBy(s string) {
	m.produced_by = &s
}

// ProducedBy returns the value of the "produced_by" field in the mutation.
func (m *ArtifactMutation) ProducedBy() (r string, exists bool) {
	v := m.produced_by
	if v == nil {
		return
	}
	return *v, true
}

// OldProducedBy returns the old "produced_by" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldProducedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducedBy: %w", err)
	}
	return oldValue.ProducedBy, nil
}

// ClearProducedBy clears the value of the "produced_by" field.
func (m *ArtifactMutation) ClearProducedBy() {
	m.produced_by = nil
	m.clearedFields[artifact.FieldProducedBy] = struct{}{}
}

// ProducedByCleared returns if the "produced_by" field was cleared in this mutation.
func (m *ArtifactMutation) ProducedByCleared() bool {
	_, ok := m.clearedFields[artifact.FieldProducedBy]
	return ok
}

// ResetProducedBy resets all changes to the "produced_by" field.
func (m *ArtifactMutation) ResetProducedBy() {
	m.produced_by = nil
	delete(m.clearedFields, artifact.FieldProducedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *ArtifactMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[artifact.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *ArtifactMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ArtifactMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, artifact.FieldRunID)
	}
	if m.phase != nil {
		fields = append(fields, artifact.FieldPhase)
	}
	if m.name != nil {
		fields = append(fields, artifact.FieldName)
	}
	if m.kind != nil {
		fields = append(fields, artifact.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, artifact.FieldPayload)
	}
	if m.produced_by != nil {
		fields = append(fields, artifact.FieldProducedBy)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldRunID:
		return m.RunID()
	case artifact.FieldPhase:
		return m.Phase()
	case artifact.FieldName:
		return m.Name()
	case artifact.FieldKind:
		return m.Kind()
	case artifact.FieldPayload:
		return m.Payload()
	case artifact.FieldProducedBy:
		return m.ProducedBy()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldRunID:
		return m.OldRunID(ctx)
	case artifact.FieldPhase:
		return m.OldPhase(ctx)
	case artifact.FieldName:
		return m.OldName(ctx)
	case artifact.FieldKind:
		return m.OldKind(ctx)
	case artifact.FieldPayload:
		return m.OldPayload(ctx)
	case artifact.FieldProducedBy:
		return m.OldProducedBy(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case artifact.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case artifact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case artifact.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case artifact.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case artifact.FieldProducedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducedBy(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addphase != nil {
		fields = append(fields, artifact.FieldPhase)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldPhase:
		return m.AddedPhase()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhase(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifact.FieldProducedBy) {
		fields = append(fields, artifact.FieldProducedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	switch name {
	case artifact.FieldProducedBy:
		m.ClearProducedBy()
		return nil
	}
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldRunID:
		m.ResetRunID()
		return nil
	case artifact.FieldPhase:
		m.ResetPhase()
		return nil
	case artifact.FieldName:
		m.ResetName()
		return nil
	case artifact.FieldKind:
		m.ResetKind()
		return nil
	case artifact.FieldPayload:
		m.ResetPayload()
		return nil
	case artifact.FieldProducedBy:
		m.ResetProducedBy()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case artifact.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case artifact.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	switch name {
	case artifact.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	switch name {
	case artifact.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// BreakerStateMutation represents an operation that mutates the BreakerState nodes in the graph.
type BreakerStateMutation struct {
	config
	op               Op
	typ              string
	id               *int
	tool_id          *string
	state            *breakerstate.State
	failure_count    *int
	addfailure_count *int
	success_count    *int
	addsuccess_count *int
	opened_at        *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*BreakerState, error)
	predicates       []predicate.BreakerState
}

var _ ent.Mutation = (*BreakerStateMutation)(nil)

// breakerstateOption allows management of the mutation configuration using functional options.
type breakerstateOption func(*BreakerStateMutation)

// newBreakerStateMutation creates new mutation for the BreakerState entity.
func newBreakerStateMutation(c config, op Op, opts ...breakerstateOption) *BreakerStateMutation {
	m := &BreakerStateMutation{
		config:        c,
		op:            op,
		typ:           TypeBreakerState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBreakerStateID sets the ID field of the mutation.
func withBreakerStateID(id int) breakerstateOption {
	return func(m *BreakerStateMutation) {
		var (
			err   error
			once  sync.Once
			value *BreakerState
		)
		m.oldValue = func(ctx context.Context) (*BreakerState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BreakerState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBreakerState sets the old BreakerState of the mutation.
func withBreakerState(node *BreakerState) breakerstateOption {
	return func(m *BreakerStateMutation) {
		m.oldValue = func(context.Context) (*BreakerState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BreakerStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BreakerStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BreakerStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BreakerStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BreakerState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToolID sets the "tool_id" field.
func (m *BreakerStateMutation) SetToolID(s string) {
	m.tool_id = &s
}

// ToolID returns the value of the "tool_id" field in the mutation.
func (m *BreakerStateMutation) ToolID() (r string, exists bool) {
	v := m.tool_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolID returns the old "tool_id" field's value of the BreakerState entity.
// If the BreakerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BreakerStateMutation) OldToolID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolID: %w", err)
	}
	return oldValue.ToolID, nil
}

// ResetToolID resets all changes to the "tool_id" field.
func (m *BreakerStateMutation) ResetToolID() {
	m.tool_id = nil
}

// SetState sets the "state" field.
func (m *BreakerStateMutation) SetState(b breakerstate.State) {
	m.state = &b
}

// State returns the value of the "state" field in the mutation.
func (m *BreakerStateMutation) State() (r breakerstate.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the BreakerState entity.
// If the BreakerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BreakerStateMutation) OldState(ctx context.Context) (v breakerstate.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *BreakerStateMutation) ResetState() {
	m.state = nil
}

// SetFailureCount sets the "failure_count" field.
func (m *BreakerStateMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *BreakerStateMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the BreakerState entity.
// If the BreakerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BreakerStateMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *BreakerStateMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *BreakerStateMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *BreakerStateMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// SetSuccessCount sets the "success_count" field.
func (m *BreakerStateMutation) SetSuccessCount(i int) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *BreakerStateMutation) SuccessCount() (r int, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the BreakerState entity.
// If the BreakerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BreakerStateMutation) OldSuccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *BreakerStateMutation) AddSuccessCount(i int) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *BreakerStateMutation) AddedSuccessCount() (r int, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *BreakerStateMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetOpenedAt sets the "opened_at" field.
func (m *BreakerStateMutation) SetOpenedAt(t time.Time) {
	m.opened_at = &t
}

// OpenedAt returns the value of the "opened_at" field in the mutation.
func (m *BreakerStateMutation) OpenedAt() (r time.Time, exists bool) {
	v := m.opened_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenedAt returns the old "opened_at" field's value of the BreakerState entity.
// If the BreakerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BreakerStateMutation) OldOpenedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenedAt: %w", err)
	}
	return oldValue.OpenedAt, nil
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (m *BreakerStateMutation) ClearOpenedAt() {
	m.opened_at = nil
	m.clearedFields[breakerstate.FieldOpenedAt] = struct{}{}
}

// OpenedAtCleared returns if the "opened_at" field was cleared in this mutation.
func (m *BreakerStateMutation) OpenedAtCleared() bool {
	_, ok := m.clearedFields[breakerstate.FieldOpenedAt]
	return ok
}

// ResetOpenedAt resets all changes to the "opened_at" field.
func (m *BreakerStateMutation) ResetOpenedAt() {
	m.opened_at = nil
	delete(m.clearedFields, breakerstate.FieldOpenedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BreakerStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BreakerStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BreakerState entity.
// If the BreakerState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BreakerStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BreakerStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BreakerStateMutation builder.
func (m *BreakerStateMutation) Where(ps ...predicate.BreakerState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BreakerStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BreakerStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BreakerState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BreakerStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BreakerStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BreakerState).
func (m *BreakerStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BreakerStateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tool_id != nil {
		fields = append(fields, breakerstate.FieldToolID)
	}
	if m.state != nil {
		fields = append(fields, breakerstate.FieldState)
	}
	if m.failure_count != nil {
		fields = append(fields, breakerstate.FieldFailureCount)
	}
	if m.success_count != nil {
		fields = append(fields, breakerstate.FieldSuccessCount)
	}
	if m.opened_at != nil {
		fields = append(fields, breakerstate.FieldOpenedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, breakerstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BreakerStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case breakerstate.FieldToolID:
		return m.ToolID()
	case breakerstate.FieldState:
		return m.State()
	case breakerstate.FieldFailureCount:
		return m.FailureCount()
	case breakerstate.FieldSuccessCount:
		return m.SuccessCount()
	case breakerstate.FieldOpenedAt:
		return m.OpenedAt()
	case breakerstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BreakerStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case breakerstate.FieldToolID:
		return m.OldToolID(ctx)
	case breakerstate.FieldState:
		return m.OldState(ctx)
	case breakerstate.FieldFailureCount:
		return m.OldFailureCount(ctx)
	case breakerstate.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case breakerstate.FieldOpenedAt:
		return m.OldOpenedAt(ctx)
	case breakerstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BreakerState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BreakerStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case breakerstate.FieldToolID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolID(v)
		return nil
	case breakerstate.FieldState:
		v, ok := value.(breakerstate.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case breakerstate.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	case breakerstate.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case breakerstate.FieldOpenedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenedAt(v)
		return nil
	case breakerstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BreakerState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BreakerStateMutation) AddedFields() []string {
	var fields []string
	if m.addfailure_count != nil {
		fields = append(fields, breakerstate.FieldFailureCount)
	}
	if m.addsuccess_count != nil {
		fields = append(fields, breakerstate.FieldSuccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BreakerStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case breakerstate.FieldFailureCount:
		return m.AddedFailureCount()
	case breakerstate.FieldSuccessCount:
		return m.AddedSuccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BreakerStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case breakerstate.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	case breakerstate.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown BreakerState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BreakerStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(breakerstate.FieldOpenedAt) {
		fields = append(fields, breakerstate.FieldOpenedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BreakerStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BreakerStateMutation) ClearField(name string) error {
	switch name {
	case breakerstate.FieldOpenedAt:
		m.ClearOpenedAt()
		return nil
	}
	return fmt.Errorf("unknown BreakerState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BreakerStateMutation) ResetField(name string) error {
	switch name {
	case breakerstate.FieldToolID:
		m.ResetToolID()
		return nil
	case breakerstate.FieldState:
		m.ResetState()
		return nil
	case breakerstate.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	case breakerstate.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case breakerstate.FieldOpenedAt:
		m.ResetOpenedAt()
		return nil
	case breakerstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BreakerState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BreakerStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BreakerStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BreakerStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BreakerStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BreakerStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BreakerStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BreakerStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BreakerState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BreakerStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BreakerState edge %s", name)
}

// BudgetEntryMutation represents an operation that mutates the BudgetEntry nodes in the graph.
type BudgetEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	tool_id       *string
	phase         *int
	addphase      *int
	amount_usd    *float64
	addamount_usd *float64
	invocation_id *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*BudgetEntry, error)
	predicates    []predicate.BudgetEntry
}

var _ ent.Mutation = (*BudgetEntryMutation)(nil)

// budgetentryOption allows management of the mutation configuration using functional options.
type budgetentryOption func(*BudgetEntryMutation)

// newBudgetEntryMutation creates new mutation for the BudgetEntry entity.
func newBudgetEntryMutation(c config, op Op, opts ...budgetentryOption) *BudgetEntryMutation {
	m := &BudgetEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeBudgetEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBudgetEntryID sets the ID field of the mutation.
func withBudgetEntryID(id int) budgetentryOption {
	return func(m *BudgetEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *BudgetEntry
		)
		m.oldValue = func(ctx context.Context) (*BudgetEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BudgetEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBudgetEntry sets the old BudgetEntry of the mutation.
func withBudgetEntry(node *BudgetEntry) budgetentryOption {
	return func(m *BudgetEntryMutation) {
		m.oldValue = func(context.Context) (*BudgetEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BudgetEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BudgetEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BudgetEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BudgetEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BudgetEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *BudgetEntryMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *BudgetEntryMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the BudgetEntry entity.
// If the BudgetEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetEntryMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *BudgetEntryMutation) ResetRunID() {
	m.run = nil
}

// SetToolID sets the "tool_id" field.
func (m *BudgetEntryMutation) SetToolID(s string) {
	m.tool_id = &s
}

// ToolID returns the value of the "tool_id" field in the mutation.
func (m *BudgetEntryMutation) ToolID() (r string, exists bool) {
	v := m.tool_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolID returns the old "tool_id" field's value of the BudgetEntry entity.
// If the BudgetEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetEntryMutation) OldToolID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolID: %w", err)
	}
	return oldValue.ToolID, nil
}

// ResetToolID resets all changes to the "tool_id" field.
func (m *BudgetEntryMutation) ResetToolID() {
	m.tool_id = nil
}

// SetPhase sets the "phase" field.
func (m *BudgetEntryMutation) SetPhase(i int) {
	m.phase = &i
	m.addphase = nil
}

// Phase returns the value of the "phase" field in the mutation.
func (m *BudgetEntryMutation) Phase() (r int, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the BudgetEntry entity.
// If the BudgetEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetEntryMutation) OldPhase(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// AddPhase adds i to the "phase" field.
func (m *BudgetEntryMutation) AddPhase(i int) {
	if m.addphase != nil {
		*m.addphase += i
	} else {
		m.addphase = &i
	}
}

// AddedPhase returns the value that was added to the "phase" field in this mutation.
func (m *BudgetEntryMutation) AddedPhase() (r int, exists bool) {
	v := m.addphase
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhase resets all changes to the "phase" field.
func (m *BudgetEntryMutation) ResetPhase() {
	m.phase = nil
	m.addphase = nil
}

// SetAmountUsd sets the "amount_usd" field.
func (m *BudgetEntryMutation) SetAmountUsd(f float64) {
	m.amount_usd = &f
	m.addamount_usd = nil
}

// AmountUsd returns the value of the "amount_usd" field in the mutation.
func (m *BudgetEntryMutation) AmountUsd() (r float64, exists bool) {
	v := m.amount_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountUsd returns the old "amount_usd" field's value of the BudgetEntry entity.
// If the BudgetEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetEntryMutation) OldAmountUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountUsd: %w", err)
	}
	return oldValue.AmountUsd, nil
}

// AddAmountUsd adds f to the "amount_usd" field.
func (m *BudgetEntryMutation) AddAmountUsd(f float64) {
	if m.addamount_usd != nil {
		*m.addamount_usd += f
	} else {
		m.addamount_usd = &f
	}
}

// AddedAmountUsd returns the value that was added to the "amount_usd" field in this mutation.
func (m *BudgetEntryMutation) AddedAmountUsd() (r float64, exists bool) {
	v := m.addamount_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountUsd resets all changes to the "amount_usd" field.
func (m *BudgetEntryMutation) ResetAmountUsd() {
	m.amount_usd = nil
	m.addamount_usd = nil
}

// SetInvocationID sets the "invocation_id" field.
func (m *BudgetEntryMutation) SetInvocationID(s string) {
	m.invocation_id = &s
}

// InvocationID returns the value of the "invocation_id" field in the mutation.
func (m *BudgetEntryMutation) InvocationID() (r string, exists bool) {
	v := m.invocation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInvocationID returns the old "invocation_id" field's value of the BudgetEntry entity.
// If the BudgetEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetEntryMutation) OldInvocationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvocationID: %w", err)
	}
	return oldValue.InvocationID, nil
}

// ClearInvocationID clears the value of the "invocation_id" field.
func (m *BudgetEntryMutation) ClearInvocationID() {
	m.invocation_id = nil
	m.clearedFields[budgetentry.FieldInvocationID] = struct{}{}
}

// InvocationIDCleared returns if the "invocation_id" field was cleared in this mutation.
func (m *BudgetEntryMutation) InvocationIDCleared() bool {
	_, ok := m.clearedFields[budgetentry.FieldInvocationID]
	return ok
}

// ResetInvocationID resets all changes to the "invocation_id" field.
func (m *BudgetEntryMutation) ResetInvocationID() {
	m.invocation_id = nil
	delete(m.clearedFields, budgetentry.FieldInvocationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *BudgetEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BudgetEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BudgetEntry entity.
// If the BudgetEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BudgetEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BudgetEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *BudgetEntryMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[budgetentry.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *BudgetEntryMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *BudgetEntryMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *BudgetEntryMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the BudgetEntryMutation builder.
func (m *BudgetEntryMutation) Where(ps ...predicate.BudgetEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BudgetEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BudgetEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BudgetEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BudgetEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BudgetEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BudgetEntry).
func (m *BudgetEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BudgetEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, budgetentry.FieldRunID)
	}
	if m.tool_id != nil {
		fields = append(fields, budgetentry.FieldToolID)
	}
	if m.phase != nil {
		fields = append(fields, budgetentry.FieldPhase)
	}
	if m.amount_usd != nil {
		fields = append(fields, budgetentry.FieldAmountUsd)
	}
	if m.invocation_id != nil {
		fields = append(fields, budgetentry.FieldInvocationID)
	}
	if m.created_at != nil {
		fields = append(fields, budgetentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BudgetEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case budgetentry.FieldRunID:
		return m.RunID()
	case budgetentry.FieldToolID:
		return m.ToolID()
	case budgetentry.FieldPhase:
		return m.Phase()
	case budgetentry.FieldAmountUsd:
		return m.AmountUsd()
	case budgetentry.FieldInvocationID:
		return m.InvocationID()
	case budgetentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BudgetEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case budgetentry.FieldRunID:
		return m.OldRunID(ctx)
	case budgetentry.FieldToolID:
		return m.OldToolID(ctx)
	case budgetentry.FieldPhase:
		return m.OldPhase(ctx)
	case budgetentry.FieldAmountUsd:
		return m.OldAmountUsd(ctx)
	case budgetentry.FieldInvocationID:
		return m.OldInvocationID(ctx)
	case budgetentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BudgetEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case budgetentry.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case budgetentry.FieldToolID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolID(v)
		return nil
	case budgetentry.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case budgetentry.FieldAmountUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountUsd(v)
		return nil
	case budgetentry.FieldInvocationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvocationID(v)
		return nil
	case budgetentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BudgetEntryMutation) AddedFields() []string {
	var fields []string
	if m.addphase != nil {
		fields = append(fields, budgetentry.FieldPhase)
	}
	if m.addamount_usd != nil {
		fields = append(fields, budgetentry.FieldAmountUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BudgetEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case budgetentry.FieldPhase:
		return m.AddedPhase()
	case budgetentry.FieldAmountUsd:
		return m.AddedAmountUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BudgetEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case budgetentry.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhase(v)
		return nil
	case budgetentry.FieldAmountUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountUsd(v)
		return nil
	}
	return fmt.Errorf("unknown BudgetEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BudgetEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(budgetentry.FieldInvocationID) {
		fields = append(fields, budgetentry.FieldInvocationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BudgetEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BudgetEntryMutation) ClearField(name string) error {
	switch name {
	case budgetentry.FieldInvocationID:
		m.ClearInvocationID()
		return nil
	}
	return fmt.Errorf("unknown BudgetEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BudgetEntryMutation) ResetField(name string) error {
	switch name {
	case budgetentry.FieldRunID:
		m.ResetRunID()
		return nil
	case budgetentry.FieldToolID:
		m.ResetToolID()
		return nil
	case budgetentry.FieldPhase:
		m.ResetPhase()
		return nil
	case budgetentry.FieldAmountUsd:
		m.ResetAmountUsd()
		return nil
	case budgetentry.FieldInvocationID:
		m.ResetInvocationID()
		return nil
	case budgetentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BudgetEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BudgetEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, budgetentry.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BudgetEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case budgetentry.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BudgetEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BudgetEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BudgetEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, budgetentry.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BudgetEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case budgetentry.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BudgetEntryMutation) ClearEdge(name string) error {
	switch name {
	case budgetentry.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown BudgetEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BudgetEntryMutation) ResetEdge(name string) error {
	switch name {
	case budgetentry.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown BudgetEntry edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op            Op
	typ           string
	id            *string
	version       *int
	addversion    *int
	state         *map[string]interface{}
	step_count    *int
	addstep_count *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Checkpoint, error)
	predicates    []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *CheckpointMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *CheckpointMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *CheckpointMutation) ResetRunID() {
	m.run = nil
}

// SetTaskID sets the "task_id" field.
func (m *CheckpointMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CheckpointMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CheckpointMutation) ResetTaskID() {
	m.task = nil
}

// SetVersion sets the "version" field.
func (m *CheckpointMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CheckpointMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CheckpointMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CheckpointMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CheckpointMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
}

// SetStepCount sets the "step_count" field.
func (m *CheckpointMutation) SetStepCount(i int) {
	m.step_count = &i
	m.addstep_count = nil
}

// StepCount returns the value of the "step_count" field in the mutation.
func (m *CheckpointMutation) StepCount() (r int, exists bool) {
	v := m.step_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStepCount returns the old "step_count" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStepCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepCount: %w", err)
	}
	return oldValue.StepCount, nil
}

// AddStepCount adds i to the "step_count" field.
func (m *CheckpointMutation) AddStepCount(i int) {
	if m.addstep_count != nil {
		*m.addstep_count += i
	} else {
		m.addstep_count = &i
	}
}

// AddedStepCount returns the value that was added to the "step_count" field in this mutation.
func (m *CheckpointMutation) AddedStepCount() (r int, exists bool) {
	v := m.addstep_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepCount resets all changes to the "step_count" field.
func (m *CheckpointMutation) ResetStepCount() {
	m.step_count = nil
	m.addstep_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *CheckpointMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[checkpoint.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *CheckpointMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *CheckpointMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// ClearTask clears the "task" edge to the AgentTask entity.
func (m *CheckpointMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[checkpoint.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the AgentTask entity was cleared.
func (m *CheckpointMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CheckpointMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, checkpoint.FieldRunID)
	}
	if m.task != nil {
		fields = append(fields, checkpoint.FieldTaskID)
	}
	if m.version != nil {
		fields = append(fields, checkpoint.FieldVersion)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.step_count != nil {
		fields = append(fields, checkpoint.FieldStepCount)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldRunID:
		return m.RunID()
	case checkpoint.FieldTaskID:
		return m.TaskID()
	case checkpoint.FieldVersion:
		return m.Version()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldStepCount:
		return m.StepCount()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldRunID:
		return m.OldRunID(ctx)
	case checkpoint.FieldTaskID:
		return m.OldTaskID(ctx)
	case checkpoint.FieldVersion:
		return m.OldVersion(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldStepCount:
		return m.OldStepCount(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case checkpoint.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case checkpoint.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepCount(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, checkpoint.FieldVersion)
	}
	if m.addstep_count != nil {
		fields = append(fields, checkpoint.FieldStepCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldVersion:
		return m.AddedVersion()
	case checkpoint.FieldStepCount:
		return m.AddedStepCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case checkpoint.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepCount(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldRunID:
		m.ResetRunID()
		return nil
	case checkpoint.FieldTaskID:
		m.ResetTaskID()
		return nil
	case checkpoint.FieldVersion:
		m.ResetVersion()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldStepCount:
		m.ResetStepCount()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, checkpoint.EdgeRun)
	}
	if m.task != nil {
		edges = append(edges, checkpoint.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case checkpoint.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, checkpoint.EdgeRun)
	}
	if m.clearedtask {
		edges = append(edges, checkpoint.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeRun:
		return m.clearedrun
	case checkpoint.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeRun:
		m.ClearRun()
		return nil
	case checkpoint.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeRun:
		m.ResetRun()
		return nil
	case checkpoint.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// HumanGateMutation represents an operation that mutates the HumanGate nodes in the graph.
type HumanGateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	phase         *int
	addphase      *int
	artifact_ref  *string
	status        *humangate.Status
	deadline      *time.Time
	approver_id   *string
	notes         *string
	decided_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*HumanGate, error)
	predicates    []predicate.HumanGate
}

var _ ent.Mutation = (*HumanGateMutation)(nil)

// humangateOption allows management of the mutation configuration using functional options.
type humangateOption func(*HumanGateMutation)

// newHumanGateMutation creates new mutation for the HumanGate entity.
func newHumanGateMutation(c config, op Op, opts ...humangateOption) *HumanGateMutation {
	m := &HumanGateMutation{
		config:        c,
		op:            op,
		typ:           TypeHumanGate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHumanGateID sets the ID field of the mutation.
func withHumanGateID(id string) humangateOption {
	return func(m *HumanGateMutation) {
		var (
			err   error
			once  sync.Once
			value *HumanGate
		)
		m.oldValue = func(ctx context.Context) (*HumanGate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HumanGate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHumanGate sets the old HumanGate of the mutation.
func withHumanGate(node *HumanGate) humangateOption {
	return func(m *HumanGateMutation) {
		m.oldValue = func(context.Context) (*HumanGate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HumanGateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HumanGateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HumanGate entities.
func (m *HumanGateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HumanGateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HumanGateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HumanGate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *HumanGateMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *HumanGateMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *HumanGateMutation) ResetRunID() {
	m.run = nil
}

// SetPhase sets the "phase" field.
func (m *HumanGateMutation) SetPhase(i int) {
	m.phase = &i
	m.addphase = nil
}

// Phase returns the value of the "phase" field in the mutation.
func (m *HumanGateMutation) Phase() (r int, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldPhase(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// AddPhase adds i to the "phase" field.
func (m *HumanGateMutation) AddPhase(i int) {
	if m.addphase != nil {
		*m.addphase += i
	} else {
		m.addphase = &i
	}
}

// AddedPhase returns the value that was added to the "phase" field in this mutation.
func (m *HumanGateMutation) AddedPhase() (r int, exists bool) {
	v := m.addphase
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhase resets all changes to the "phase" field.
func (m *HumanGateMutation) ResetPhase() {
	m.phase = nil
	m.addphase = nil
}

// SetArtifactRef sets the "artifact_ref" field.
func (m *HumanGateMutation) SetArtifactRef(s string) {
	m.artifact_ref = &s
}

// ArtifactRef returns the value of the "artifact_ref" field in the mutation.
func (m *HumanGateMutation) ArtifactRef() (r string, exists bool) {
	v := m.artifact_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactRef returns the old "artifact_ref" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldArtifactRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactRef: %w", err)
	}
	return oldValue.ArtifactRef, nil
}

// ResetArtifactRef resets all changes to the "artifact_ref" field.
func (m *HumanGateMutation) ResetArtifactRef() {
	m.artifact_ref = nil
}

// SetStatus sets the "status" field.
func (m *HumanGateMutation) SetStatus(h humangate.Status) {
	m.status = &h
}

// Status returns the value of the "status" field in the mutation.
func (m *HumanGateMutation) Status() (r humangate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldStatus(ctx context.Context) (v humangate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *HumanGateMutation) ResetStatus() {
	m.status = nil
}

// SetDeadline sets the "deadline" field.
func (m *HumanGateMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *HumanGateMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldDeadline(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *HumanGateMutation) ResetDeadline() {
	m.deadline = nil
}

// SetApproverID sets the "approver_id" field.
func (m *HumanGateMutation) SetApproverID(s string) {
	m.approver_id = &s
}

// ApproverID returns the value of the "approver_id" field in the mutation.
func (m *HumanGateMutation) ApproverID() (r string, exists bool) {
	v := m.approver_id
	if v == nil {
		return
	}
	return *v, true
}

// OldApproverID returns the old "approver_id" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldApproverID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproverID: %w", err)
	}
	return oldValue.ApproverID, nil
}

// ClearApproverID clears the value of the "approver_id" field.
func (m *HumanGateMutation) ClearApproverID() {
	m.approver_id = nil
	m.clearedFields[humangate.FieldApproverID] = struct{}{}
}

// ApproverIDCleared returns if the "approver_id" field was cleared in this mutation.
func (m *HumanGateMutation) ApproverIDCleared() bool {
	_, ok := m.clearedFields[humangate.FieldApproverID]
	return ok
}

// ResetApproverID resets all changes to the "approver_id" field.
func (m *HumanGateMutation) ResetApproverID() {
	m.approver_id = nil
	delete(m.clearedFields, humangate.FieldApproverID)
}

// SetNotes sets the "notes" field.
func (m *HumanGateMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *HumanGateMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *HumanGateMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[humangate.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *HumanGateMutation) NotesCleared() bool {
	_, ok := m.clearedFields[humangate.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *HumanGateMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, humangate.FieldNotes)
}

// SetDecidedAt sets the "decided_at" field.
func (m *HumanGateMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *HumanGateMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *HumanGateMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[humangate.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *HumanGateMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[humangate.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *HumanGateMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, humangate.FieldDecidedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *HumanGateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HumanGateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HumanGate entity.
// If the HumanGate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanGateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HumanGateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *HumanGateMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[humangate.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *HumanGateMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *HumanGateMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *HumanGateMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the HumanGateMutation builder.
func (m *HumanGateMutation) Where(ps ...predicate.HumanGate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HumanGateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HumanGateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HumanGate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HumanGateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HumanGateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HumanGate).
func (m *HumanGateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HumanGateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run != nil {
		fields = append(fields, humangate.FieldRunID)
	}
	if m.phase != nil {
		fields = append(fields, humangate.FieldPhase)
	}
	if m.artifact_ref != nil {
		fields = append(fields, humangate.FieldArtifactRef)
	}
	if m.status != nil {
		fields = append(fields, humangate.FieldStatus)
	}
	if m.deadline != nil {
		fields = append(fields, humangate.FieldDeadline)
	}
	if m.approver_id != nil {
		fields = append(fields, humangate.FieldApproverID)
	}
	if m.notes != nil {
		fields = append(fields, humangate.FieldNotes)
	}
	if m.decided_at != nil {
		fields = append(fields, humangate.FieldDecidedAt)
	}
	if m.created_at != nil {
		fields = append(fields, humangate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HumanGateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case humangate.FieldRunID:
		return m.RunID()
	case humangate.FieldPhase:
		return m.Phase()
	case humangate.FieldArtifactRef:
		return m.ArtifactRef()
	case humangate.FieldStatus:
		return m.Status()
	case humangate.FieldDeadline:
		return m.Deadline()
	case humangate.FieldApproverID:
		return m.ApproverID()
	case humangate.FieldNotes:
		return m.Notes()
	case humangate.FieldDecidedAt:
		return m.DecidedAt()
	case humangate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HumanGateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case humangate.FieldRunID:
		return m.OldRunID(ctx)
	case humangate.FieldPhase:
		return m.OldPhase(ctx)
	case humangate.FieldArtifactRef:
		return m.OldArtifactRef(ctx)
	case humangate.FieldStatus:
		return m.OldStatus(ctx)
	case humangate.FieldDeadline:
		return m.OldDeadline(ctx)
	case humangate.FieldApproverID:
		return m.OldApproverID(ctx)
	case humangate.FieldNotes:
		return m.OldNotes(ctx)
	case humangate.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case humangate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HumanGate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HumanGateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case humangate.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case humangate.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case humangate.FieldArtifactRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactRef(v)
		return nil
	case humangate.FieldStatus:
		v, ok := value.(humangate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case humangate.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case humangate.FieldApproverID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproverID(v)
		return nil
	case humangate.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case humangate.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case humangate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HumanGate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HumanGateMutation) AddedFields() []string {
	var fields []string
	if m.addphase != nil {
		fields = append(fields, humangate.FieldPhase)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HumanGateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case humangate.FieldPhase:
		return m.AddedPhase()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HumanGateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case humangate.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhase(v)
		return nil
	}
	return fmt.Errorf("unknown HumanGate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HumanGateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(humangate.FieldApproverID) {
		fields = append(fields, humangate.FieldApproverID)
	}
	if m.FieldCleared(humangate.FieldNotes) {
		fields = append(fields, humangate.FieldNotes)
	}
	if m.FieldCleared(humangate.FieldDecidedAt) {
		fields = append(fields, humangate.FieldDecidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HumanGateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HumanGateMutation) ClearField(name string) error {
	switch name {
	case humangate.FieldApproverID:
		m.ClearApproverID()
		return nil
	case humangate.FieldNotes:
		m.ClearNotes()
		return nil
	case humangate.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown HumanGate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HumanGateMutation) ResetField(name string) error {
	switch name {
	case humangate.FieldRunID:
		m.ResetRunID()
		return nil
	case humangate.FieldPhase:
		m.ResetPhase()
		return nil
	case humangate.FieldArtifactRef:
		m.ResetArtifactRef()
		return nil
	case humangate.FieldStatus:
		m.ResetStatus()
		return nil
	case humangate.FieldDeadline:
		m.ResetDeadline()
		return nil
	case humangate.FieldApproverID:
		m.ResetApproverID()
		return nil
	case humangate.FieldNotes:
		m.ResetNotes()
		return nil
	case humangate.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case humangate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown HumanGate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HumanGateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, humangate.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HumanGateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case humangate.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HumanGateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HumanGateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HumanGateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, humangate.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HumanGateMutation) EdgeCleared(name string) bool {
	switch name {
	case humangate.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HumanGateMutation) ClearEdge(name string) error {
	switch name {
	case humangate.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown HumanGate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HumanGateMutation) ResetEdge(name string) error {
	switch name {
	case humangate.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown HumanGate edge %s", name)
}

// LimiterStateMutation represents an operation that mutates the LimiterState nodes in the graph.
type LimiterStateMutation struct {
	config
	op             Op
	typ            string
	id             *int
	tool_id        *string
	tokens         *float64
	addtokens      *float64
	last_refill_at *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*LimiterState, error)
	predicates     []predicate.LimiterState
}

var _ ent.Mutation = (*LimiterStateMutation)(nil)

// limiterstateOption allows management of the mutation configuration using functional options.
type limiterstateOption func(*LimiterStateMutation)

// newLimiterStateMutation creates new mutation for the LimiterState entity.
func newLimiterStateMutation(c config, op Op, opts ...limiterstateOption) *LimiterStateMutation {
	m := &LimiterStateMutation{
		config:        c,
		op:            op,
		typ:           TypeLimiterState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLimiterStateID sets the ID field of the mutation.
func withLimiterStateID(id int) limiterstateOption {
	return func(m *LimiterStateMutation) {
		var (
			err   error
			once  sync.Once
			value *LimiterState
		)
		m.oldValue = func(ctx context.Context) (*LimiterState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LimiterState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLimiterState sets the old LimiterState of the mutation.
func withLimiterState(node *LimiterState) limiterstateOption {
	return func(m *LimiterStateMutation) {
		m.oldValue = func(context.Context) (*LimiterState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LimiterStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LimiterStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LimiterStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LimiterStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LimiterState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToolID sets the "tool_id" field.
func (m *LimiterStateMutation) SetToolID(s string) {
	m.tool_id = &s
}

// ToolID returns the value of the "tool_id" field in the mutation.
func (m *LimiterStateMutation) ToolID() (r string, exists bool) {
	v := m.tool_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolID returns the old "tool_id" field's value of the LimiterState entity.
// If the LimiterState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LimiterStateMutation) OldToolID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolID: %w", err)
	}
	return oldValue.ToolID, nil
}

// ResetToolID resets all changes to the "tool_id" field.
func (m *LimiterStateMutation) ResetToolID() {
	m.tool_id = nil
}

// SetTokens sets the "tokens" field.
func (m *LimiterStateMutation) SetTokens(f float64) {
	m.tokens = &f
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *LimiterStateMutation) Tokens() (r float64, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the LimiterState entity.
// If the LimiterState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LimiterStateMutation) OldTokens(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds f to the "tokens" field.
func (m *LimiterStateMutation) AddTokens(f float64) {
	if m.addtokens != nil {
		*m.addtokens += f
	} else {
		m.addtokens = &f
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *LimiterStateMutation) AddedTokens() (r float64, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokens resets all changes to the "tokens" field.
func (m *LimiterStateMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
}

// SetLastRefillAt sets the "last_refill_at" field.
func (m *LimiterStateMutation) SetLastRefillAt(t time.Time) {
	m.last_refill_at = &t
}

// LastRefillAt returns the value of the "last_refill_at" field in the mutation.
func (m *LimiterStateMutation) LastRefillAt() (r time.Time, exists bool) {
	v := m.last_refill_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRefillAt returns the old "last_refill_at" field's value of the LimiterState entity.
// If the LimiterState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LimiterStateMutation) OldLastRefillAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRefillAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRefillAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRefillAt: %w", err)
	}
	return oldValue.LastRefillAt, nil
}

// ResetLastRefillAt resets all changes to the "last_refill_at" field.
func (m *LimiterStateMutation) ResetLastRefillAt() {
	m.last_refill_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LimiterStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LimiterStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LimiterState entity.
// If the LimiterState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LimiterStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LimiterStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LimiterStateMutation builder.
func (m *LimiterStateMutation) Where(ps ...predicate.LimiterState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LimiterStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LimiterStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LimiterState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LimiterStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LimiterStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LimiterState).
func (m *LimiterStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LimiterStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.tool_id != nil {
		fields = append(fields, limiterstate.FieldToolID)
	}
	if m.tokens != nil {
		fields = append(fields, limiterstate.FieldTokens)
	}
	if m.last_refill_at != nil {
		fields = append(fields, limiterstate.FieldLastRefillAt)
	}
	if m.updated_at != nil {
		fields = append(fields, limiterstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LimiterStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case limiterstate.FieldToolID:
		return m.ToolID()
	case limiterstate.FieldTokens:
		return m.Tokens()
	case limiterstate.FieldLastRefillAt:
		return m.LastRefillAt()
	case limiterstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LimiterStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case limiterstate.FieldToolID:
		return m.OldToolID(ctx)
	case limiterstate.FieldTokens:
		return m.OldTokens(ctx)
	case limiterstate.FieldLastRefillAt:
		return m.OldLastRefillAt(ctx)
	case limiterstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LimiterState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LimiterStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case limiterstate.FieldToolID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolID(v)
		return nil
	case limiterstate.FieldTokens:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case limiterstate.FieldLastRefillAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRefillAt(v)
		return nil
	case limiterstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LimiterState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LimiterStateMutation) AddedFields() []string {
	var fields []string
	if m.addtokens != nil {
		fields = append(fields, limiterstate.FieldTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LimiterStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case limiterstate.FieldTokens:
		return m.AddedTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LimiterStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case limiterstate.FieldTokens:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	}
	return fmt.Errorf("unknown LimiterState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LimiterStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LimiterStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LimiterStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LimiterState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LimiterStateMutation) ResetField(name string) error {
	switch name {
	case limiterstate.FieldToolID:
		m.ResetToolID()
		return nil
	case limiterstate.FieldTokens:
		m.ResetTokens()
		return nil
	case limiterstate.FieldLastRefillAt:
		m.ResetLastRefillAt()
		return nil
	case limiterstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LimiterState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LimiterStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LimiterStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LimiterStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LimiterStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LimiterStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LimiterStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LimiterStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LimiterState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LimiterStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LimiterState edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunEvent, error)
	predicates    []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id int) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetChannel sets the "channel" field.
func (m *RunEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *RunEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *RunEventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.channel != nil {
		fields = append(fields, runevent.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, runevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldChannel:
		return m.Channel()
	case runevent.FieldPayload:
		return m.Payload()
	case runevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldChannel:
		return m.OldChannel(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	case runevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldChannel:
		m.ResetChannel()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	case runevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// ToolInvocationMutation represents an operation that mutates the ToolInvocation nodes in the graph.
type ToolInvocationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tool_id       *string
	_op           *string
	params_hash   *string
	tier          *toolinvocation.Tier
	outcome       *toolinvocation.Outcome
	result        *map[string]interface{}
	error_message *string
	cost_usd      *float64
	addcost_usd   *float64
	latency_ms    *int
	addlatency_ms *int
	requested_at  *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*ToolInvocation, error)
	predicates    []predicate.ToolInvocation
}

var _ ent.Mutation = (*ToolInvocationMutation)(nil)

// toolinvocationOption allows management of the mutation configuration using functional options.
type toolinvocationOption func(*ToolInvocationMutation)

// newToolInvocationMutation creates new mutation for the ToolInvocation entity.
func newToolInvocationMutation(c config, op Op, opts ...toolinvocationOption) *ToolInvocationMutation {
	m := &ToolInvocationMutation{
		config:        c,
		op:            op,
		typ:           TypeToolInvocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolInvocationID sets the ID field of the mutation.
func withToolInvocationID(id string) toolinvocationOption {
	return func(m *ToolInvocationMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolInvocation
		)
		m.oldValue = func(ctx context.Context) (*ToolInvocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolInvocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolInvocation sets the old ToolInvocation of the mutation.
func withToolInvocation(node *ToolInvocation) toolinvocationOption {
	return func(m *ToolInvocationMutation) {
		m.oldValue = func(context.Context) (*ToolInvocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolInvocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolInvocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolInvocation entities.
func (m *ToolInvocationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolInvocationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolInvocationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolInvocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ToolInvocationMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ToolInvocationMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ToolInvocationMutation) ResetRunID() {
	m.run = nil
}

// SetTaskID sets the "task_id" field.
func (m *ToolInvocationMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ToolInvocationMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ToolInvocationMutation) ResetTaskID() {
	m.task = nil
}

// SetToolID sets the "tool_id" field.
func (m *ToolInvocationMutation) SetToolID(s string) {
	m.tool_id = &s
}

// ToolID returns the value of the "tool_id" field in the mutation.
func (m *ToolInvocationMutation) ToolID() (r string, exists bool) {
	v := m.tool_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToolID returns the old "tool_id" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldToolID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolID: %w", err)
	}
	return oldValue.ToolID, nil
}

// ResetToolID resets all changes to the "tool_id" field.
func (m *ToolInvocationMutation) ResetToolID() {
	m.tool_id = nil
}

// SetOpField sets the "op" field.
func (m *ToolInvocationMutation) SetOpField(s string) {
	m._op = &s
}

// GetOp returns the value of the "op" field in the mutation.
func (m *ToolInvocationMutation) GetOp() (r string, exists bool) {
	v := m._op
	if v == nil {
		return
	}
	return *v, true
}

// OldOp returns the old "op" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldOp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOp: %w", err)
	}
	return oldValue.Op, nil
}

// ResetOp resets all changes to the "op" field.
func (m *ToolInvocationMutation) ResetOp() {
	m._op = nil
}

// SetParamsHash sets the "params_hash" field.
func (m *ToolInvocationMutation) SetParamsHash(s string) {
	m.params_hash = &s
}

// ParamsHash returns the value of the "params_hash" field in the mutation.
func (m *ToolInvocationMutation) ParamsHash() (r string, exists bool) {
	v := m.params_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldParamsHash returns the old "params_hash" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldParamsHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParamsHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParamsHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParamsHash: %w", err)
	}
	return oldValue.ParamsHash, nil
}

// ResetParamsHash resets all changes to the "params_hash" field.
func (m *ToolInvocationMutation) ResetParamsHash() {
	m.params_hash = nil
}

// SetTier sets the "tier" field.
func (m *ToolInvocationMutation) SetTier(t toolinvocation.Tier) {
	m.tier = &t
}

// Tier returns the value of the "tier" field in the mutation.
func (m *ToolInvocationMutation) Tier() (r toolinvocation.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldTier(ctx context.Context) (v toolinvocation.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *ToolInvocationMutation) ResetTier() {
	m.tier = nil
}

// SetOutcome sets the "outcome" field.
func (m *ToolInvocationMutation) SetOutcome(t toolinvocation.Outcome) {
	m.outcome = &t
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ToolInvocationMutation) Outcome() (r toolinvocation.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldOutcome(ctx context.Context) (v toolinvocation.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ToolInvocationMutation) ResetOutcome() {
	m.outcome = nil
}

// SetResult sets the "result" field.
func (m *ToolInvocationMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *ToolInvocationMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ToolInvocationMutation) ClearResult() {
	m.result = nil
	m.clearedFields[toolinvocation.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ToolInvocationMutation) ResultCleared() bool {
	_, ok := m.clearedFields[toolinvocation.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ToolInvocationMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, toolinvocation.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *ToolInvocationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ToolInvocationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ToolInvocationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[toolinvocation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ToolInvocationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[toolinvocation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ToolInvocationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, toolinvocation.FieldErrorMessage)
}

// SetCostUsd sets the "cost_usd" field.
func (m *ToolInvocationMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *ToolInvocationMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *ToolInvocationMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *ToolInvocationMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *ToolInvocationMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ToolInvocationMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ToolInvocationMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldLatencyMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ToolInvocationMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ToolInvocationMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *ToolInvocationMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[toolinvocation.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *ToolInvocationMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[toolinvocation.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ToolInvocationMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, toolinvocation.FieldLatencyMs)
}

// SetRequestedAt sets the "requested_at" field.
func (m *ToolInvocationMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *ToolInvocationMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *ToolInvocationMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ToolInvocationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ToolInvocationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ToolInvocation entity.
// If the ToolInvocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolInvocationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ToolInvocationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[toolinvocation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ToolInvocationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[toolinvocation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ToolInvocationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, toolinvocation.FieldCompletedAt)
}

// ClearRun clears the "run" edge to the WorkflowRun entity.
func (m *ToolInvocationMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[toolinvocation.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the WorkflowRun entity was cleared.
func (m *ToolInvocationMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ToolInvocationMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ToolInvocationMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// ClearTask clears the "task" edge to the AgentTask entity.
func (m *ToolInvocationMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[toolinvocation.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the AgentTask entity was cleared.
func (m *ToolInvocationMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ToolInvocationMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ToolInvocationMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ToolInvocationMutation builder.
func (m *ToolInvocationMutation) Where(ps ...predicate.ToolInvocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolInvocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolInvocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolInvocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolInvocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolInvocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolInvocation).
func (m *ToolInvocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolInvocationMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.run != nil {
		fields = append(fields, toolinvocation.FieldRunID)
	}
	if m.task != nil {
		fields = append(fields, toolinvocation.FieldTaskID)
	}
	if m.tool_id != nil {
		fields = append(fields, toolinvocation.FieldToolID)
	}
	if m._op != nil {
		fields = append(fields, toolinvocation.FieldOp)
	}
	if m.params_hash != nil {
		fields = append(fields, toolinvocation.FieldParamsHash)
	}
	if m.tier != nil {
		fields = append(fields, toolinvocation.FieldTier)
	}
	if m.outcome != nil {
		fields = append(fields, toolinvocation.FieldOutcome)
	}
	if m.result != nil {
		fields = append(fields, toolinvocation.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, toolinvocation.FieldErrorMessage)
	}
	if m.cost_usd != nil {
		fields = append(fields, toolinvocation.FieldCostUsd)
	}
	if m.latency_ms != nil {
		fields = append(fields, toolinvocation.FieldLatencyMs)
	}
	if m.requested_at != nil {
		fields = append(fields, toolinvocation.FieldRequestedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, toolinvocation.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolInvocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolinvocation.FieldRunID:
		return m.RunID()
	case toolinvocation.FieldTaskID:
		return m.TaskID()
	case toolinvocation.FieldToolID:
		return m.ToolID()
	case toolinvocation.FieldOp:
		return m.GetOp()
	case toolinvocation.FieldParamsHash:
		return m.ParamsHash()
	case toolinvocation.FieldTier:
		return m.Tier()
	case toolinvocation.FieldOutcome:
		return m.Outcome()
	case toolinvocation.FieldResult:
		return m.Result()
	case toolinvocation.FieldErrorMessage:
		return m.ErrorMessage()
	case toolinvocation.FieldCostUsd:
		return m.CostUsd()
	case toolinvocation.FieldLatencyMs:
		return m.LatencyMs()
	case toolinvocation.FieldRequestedAt:
		return m.RequestedAt()
	case toolinvocation.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolInvocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolinvocation.FieldRunID:
		return m.OldRunID(ctx)
	case toolinvocation.FieldTaskID:
		return m.OldTaskID(ctx)
	case toolinvocation.FieldToolID:
		return m.OldToolID(ctx)
	case toolinvocation.FieldOp:
		return m.OldOp(ctx)
	case toolinvocation.FieldParamsHash:
		return m.OldParamsHash(ctx)
	case toolinvocation.FieldTier:
		return m.OldTier(ctx)
	case toolinvocation.FieldOutcome:
		return m.OldOutcome(ctx)
	case toolinvocation.FieldResult:
		return m.OldResult(ctx)
	case toolinvocation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case toolinvocation.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case toolinvocation.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case toolinvocation.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	case toolinvocation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolInvocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolInvocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolinvocation.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case toolinvocation.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case toolinvocation.FieldToolID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolID(v)
		return nil
	case toolinvocation.FieldOp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpField(v)
		return nil
	case toolinvocation.FieldParamsHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParamsHash(v)
		return nil
	case toolinvocation.FieldTier:
		v, ok := value.(toolinvocation.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case toolinvocation.FieldOutcome:
		v, ok := value.(toolinvocation.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case toolinvocation.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case toolinvocation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case toolinvocation.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case toolinvocation.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case toolinvocation.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	case toolinvocation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolInvocationMutation) AddedFields() []string {
	var fields []string
	if m.addcost_usd != nil {
		fields = append(fields, toolinvocation.FieldCostUsd)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, toolinvocation.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolInvocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolinvocation.FieldCostUsd:
		return m.AddedCostUsd()
	case toolinvocation.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolInvocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolinvocation.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case toolinvocation.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolInvocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolinvocation.FieldResult) {
		fields = append(fields, toolinvocation.FieldResult)
	}
	if m.FieldCleared(toolinvocation.FieldErrorMessage) {
		fields = append(fields, toolinvocation.FieldErrorMessage)
	}
	if m.FieldCleared(toolinvocation.FieldLatencyMs) {
		fields = append(fields, toolinvocation.FieldLatencyMs)
	}
	if m.FieldCleared(toolinvocation.FieldCompletedAt) {
		fields = append(fields, toolinvocation.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolInvocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolInvocationMutation) ClearField(name string) error {
	switch name {
	case toolinvocation.FieldResult:
		m.ClearResult()
		return nil
	case toolinvocation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case toolinvocation.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	case toolinvocation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolInvocationMutation) ResetField(name string) error {
	switch name {
	case toolinvocation.FieldRunID:
		m.ResetRunID()
		return nil
	case toolinvocation.FieldTaskID:
		m.ResetTaskID()
		return nil
	case toolinvocation.FieldToolID:
		m.ResetToolID()
		return nil
	case toolinvocation.FieldOp:
		m.ResetOp()
		return nil
	case toolinvocation.FieldParamsHash:
		m.ResetParamsHash()
		return nil
	case toolinvocation.FieldTier:
		m.ResetTier()
		return nil
	case toolinvocation.FieldOutcome:
		m.ResetOutcome()
		return nil
	case toolinvocation.FieldResult:
		m.ResetResult()
		return nil
	case toolinvocation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case toolinvocation.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case toolinvocation.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case toolinvocation.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	case toolinvocation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolInvocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, toolinvocation.EdgeRun)
	}
	if m.task != nil {
		edges = append(edges, toolinvocation.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolInvocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolinvocation.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case toolinvocation.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolInvocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolInvocationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolInvocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, toolinvocation.EdgeRun)
	}
	if m.clearedtask {
		edges = append(edges, toolinvocation.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolInvocationMutation) EdgeCleared(name string) bool {
	switch name {
	case toolinvocation.EdgeRun:
		return m.clearedrun
	case toolinvocation.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolInvocationMutation) ClearEdge(name string) error {
	switch name {
	case toolinvocation.EdgeRun:
		m.ClearRun()
		return nil
	case toolinvocation.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolInvocationMutation) ResetEdge(name string) error {
	switch name {
	case toolinvocation.EdgeRun:
		m.ResetRun()
		return nil
	case toolinvocation.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ToolInvocation edge %s", name)
}

// WorkflowRunMutation represents an operation that mutates the WorkflowRun nodes in the graph.
type WorkflowRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	campaign              *string
	status                *workflowrun.Status
	current_phase         *int
	addcurrent_phase      *int
	budget_cap_usd        *float64
	addbudget_cap_usd     *float64
	spend_usd             *float64
	addspend_usd          *float64
	_config               *map[string]interface{}
	error_message         *string
	author                *string
	pod_id                *string
	last_heartbeat_at     *time.Time
	created_at            *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	deleted_at            *time.Time
	clearedFields         map[string]struct{}
	tasks                 map[string]struct{}
	removedtasks          map[string]struct{}
	clearedtasks          bool
	invocations           map[string]struct{}
	removedinvocations    map[string]struct{}
	clearedinvocations    bool
	checkpoints           map[string]struct{}
	removedcheckpoints    map[string]struct{}
	clearedcheckpoints    bool
	gates                 map[string]struct{}
	removedgates          map[string]struct{}
	clearedgates          bool
	budget_entries        map[int]struct{}
	removedbudget_entries map[int]struct{}
	clearedbudget_entries bool
	artifacts             map[string]struct{}
	removedartifacts      map[string]struct{}
	clearedartifacts      bool
	events                map[int]struct{}
	removedevents         map[int]struct{}
	clearedevents         bool
	done                  bool
	oldValue              func(context.Context) (*WorkflowRun, error)
	predicates            []predicate.WorkflowRun
}

var _ ent.Mutation = (*WorkflowRunMutation)(nil)

// workflowrunOption allows management of the mutation configuration using functional options.
type workflowrunOption func(*WorkflowRunMutation)

// newWorkflowRunMutation creates new mutation for the WorkflowRun entity.
func newWorkflowRunMutation(c config, op Op, opts ...workflowrunOption) *WorkflowRunMutation {
	m := &WorkflowRunMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowRunID sets the ID field of the mutation.
func withWorkflowRunID(id string) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowRun
		)
		m.oldValue = func(ctx context.Context) (*WorkflowRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowRun sets the old WorkflowRun of the mutation.
func withWorkflowRun(node *WorkflowRun) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		m.oldValue = func(context.Context) (*WorkflowRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowRun entities.
func (m *WorkflowRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaign sets the "campaign" field.
func (m *WorkflowRunMutation) SetCampaign(s string) {
	m.campaign = &s
}

// Campaign returns the value of the "campaign" field in the mutation.
func (m *WorkflowRunMutation) Campaign() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaign returns the old "campaign" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCampaign(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaign is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaign requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaign: %w", err)
	}
	return oldValue.Campaign, nil
}

// ResetCampaign resets all changes to the "campaign" field.
func (m *WorkflowRunMutation) ResetCampaign() {
	m.campaign = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowRunMutation) SetStatus(w workflowrun.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowRunMutation) Status() (r workflowrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStatus(ctx context.Context) (v workflowrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowRunMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *WorkflowRunMutation) SetCurrentPhase(i int) {
	m.current_phase = &i
	m.addcurrent_phase = nil
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *WorkflowRunMutation) CurrentPhase() (r int, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCurrentPhase(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// AddCurrentPhase adds i to the "current_phase" field.
func (m *WorkflowRunMutation) AddCurrentPhase(i int) {
	if m.addcurrent_phase != nil {
		*m.addcurrent_phase += i
	} else {
		m.addcurrent_phase = &i
	}
}

// AddedCurrentPhase returns the value that was added to the "current_phase" field in this mutation.
func (m *WorkflowRunMutation) AddedCurrentPhase() (r int, exists bool) {
	v := m.addcurrent_phase
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *WorkflowRunMutation) ResetCurrentPhase() {
	m.current_phase = nil
	m.addcurrent_phase = nil
}

// SetBudgetCapUsd sets the "budget_cap_usd" field.
func (m *WorkflowRunMutation) SetBudgetCapUsd(f float64) {
	m.budget_cap_usd = &f
	m.addbudget_cap_usd = nil
}

// BudgetCapUsd returns the value of the "budget_cap_usd" field in the mutation.
func (m *WorkflowRunMutation) BudgetCapUsd() (r float64, exists bool) {
	v := m.budget_cap_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetCapUsd returns the old "budget_cap_usd" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldBudgetCapUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetCapUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetCapUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetCapUsd: %w", err)
	}
	return oldValue.BudgetCapUsd, nil
}

// AddBudgetCapUsd adds f to the "budget_cap_usd" field.
func (m *WorkflowRunMutation) AddBudgetCapUsd(f float64) {
	if m.addbudget_cap_usd != nil {
		*m.addbudget_cap_usd += f
	} else {
		m.addbudget_cap_usd = &f
	}
}

// AddedBudgetCapUsd returns the value that was added to the "budget_cap_usd" field in this mutation.
func (m *WorkflowRunMutation) AddedBudgetCapUsd() (r float64, exists bool) {
	v := m.addbudget_cap_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudgetCapUsd resets all changes to the "budget_cap_usd" field.
func (m *WorkflowRunMutation) ResetBudgetCapUsd() {
	m.budget_cap_usd = nil
	m.addbudget_cap_usd = nil
}

// SetSpendUsd sets the "spend_usd" field.
func (m *WorkflowRunMutation) SetSpendUsd(f float64) {
	m.spend_usd = &f
	m.addspend_usd = nil
}

// SpendUsd returns the value of the "spend_usd" field in the mutation.
func (m *WorkflowRunMutation) SpendUsd() (r float64, exists bool) {
	v := m.spend_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldSpendUsd returns the old "spend_usd" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldSpendUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpendUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpendUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpendUsd: %w", err)
	}
	return oldValue.SpendUsd, nil
}

// AddSpendUsd adds f to the "spend_usd" field.
func (m *WorkflowRunMutation) AddSpendUsd(f float64) {
	if m.addspend_usd != nil {
		*m.addspend_usd += f
	} else {
		m.addspend_usd = &f
	}
}

// AddedSpendUsd returns the value that was added to the "spend_usd" field in this mutation.
func (m *WorkflowRunMutation) AddedSpendUsd() (r float64, exists bool) {
	v := m.addspend_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpendUsd resets all changes to the "spend_usd" field.
func (m *WorkflowRunMutation) ResetSpendUsd() {
	m.spend_usd = nil
	m.addspend_usd = nil
}

// SetConfig sets the "config" field.
func (m *WorkflowRunMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *WorkflowRunMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *WorkflowRunMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[workflowrun.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *WorkflowRunMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *WorkflowRunMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, workflowrun.FieldConfig)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowrun.FieldErrorMessage)
}

// SetAuthor sets the "author" field.
func (m *WorkflowRunMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *WorkflowRunMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *WorkflowRunMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[workflowrun.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *WorkflowRunMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *WorkflowRunMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, workflowrun.FieldAuthor)
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflowrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflowrun.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *WorkflowRunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[workflowrun.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *WorkflowRunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, workflowrun.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowrun.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *WorkflowRunMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *WorkflowRunMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *WorkflowRunMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[workflowrun.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *WorkflowRunMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *WorkflowRunMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, workflowrun.FieldDeletedAt)
}

// AddTaskIDs adds the "tasks" edge to the AgentTask entity by ids.
func (m *WorkflowRunMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the AgentTask entity.
func (m *WorkflowRunMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the AgentTask entity was cleared.
func (m *WorkflowRunMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the AgentTask entity by IDs.
func (m *WorkflowRunMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the AgentTask entity.
func (m *WorkflowRunMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *WorkflowRunMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *WorkflowRunMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddInvocationIDs adds the "invocations" edge to the ToolInvocation entity by ids.
func (m *WorkflowRunMutation) AddInvocationIDs(ids ...string) {
	if m.invocations == nil {
		m.invocations = make(map[string]struct{})
	}
	for i := range ids {
		m.invocations[ids[i]] = struct{}{}
	}
}

// ClearInvocations clears the "invocations" edge to the ToolInvocation entity.
func (m *WorkflowRunMutation) ClearInvocations() {
	m.clearedinvocations = true
}

// InvocationsCleared reports if the "invocations" edge to the ToolInvocation entity was cleared.
func (m *WorkflowRunMutation) InvocationsCleared() bool {
	return m.clearedinvocations
}

// RemoveInvocationIDs removes the "invocations" edge to the ToolInvocation entity by IDs.
func (m *WorkflowRunMutation) RemoveInvocationIDs(ids ...string) {
	if m.removedinvocations == nil {
		m.removedinvocations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.invocations, ids[i])
		m.removedinvocations[ids[i]] = struct{}{}
	}
}

// RemovedInvocations returns the removed IDs of the "invocations" edge to the ToolInvocation entity.
func (m *WorkflowRunMutation) RemovedInvocationsIDs() (ids []string) {
	for id := range m.removedinvocations {
		ids = append(ids, id)
	}
	return
}

// InvocationsIDs returns the "invocations" edge IDs in the mutation.
func (m *WorkflowRunMutation) InvocationsIDs() (ids []string) {
	for id := range m.invocations {
		ids = append(ids, id)
	}
	return
}

// ResetInvocations resets all changes to the "invocations" edge.
func (m *WorkflowRunMutation) ResetInvocations() {
	m.invocations = nil
	m.clearedinvocations = false
	m.removedinvocations = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *WorkflowRunMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *WorkflowRunMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *WorkflowRunMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *WorkflowRunMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *WorkflowRunMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *WorkflowRunMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *WorkflowRunMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddGateIDs adds the "gates" edge to the HumanGate entity by ids.
func (m *WorkflowRunMutation) AddGateIDs(ids ...string) {
	if m.gates == nil {
		m.gates = make(map[string]struct{})
	}
	for i := range ids {
		m.gates[ids[i]] = struct{}{}
	}
}

// ClearGates clears the "gates" edge to the HumanGate entity.
func (m *WorkflowRunMutation) ClearGates() {
	m.clearedgates = true
}

// GatesCleared reports if the "gates" edge to the HumanGate entity was cleared.
func (m *WorkflowRunMutation) GatesCleared() bool {
	return m.clearedgates
}

// RemoveGateIDs removes the "gates" edge to the HumanGate entity by IDs.
func (m *WorkflowRunMutation) RemoveGateIDs(ids ...string) {
	if m.removedgates == nil {
		m.removedgates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.gates, ids[i])
		m.removedgates[ids[i]] = struct{}{}
	}
}

// RemovedGates returns the removed IDs of the "gates" edge to the HumanGate entity.
func (m *WorkflowRunMutation) RemovedGatesIDs() (ids []string) {
	for id := range m.removedgates {
		ids = append(ids, id)
	}
	return
}

// GatesIDs returns the "gates" edge IDs in the mutation.
func (m *WorkflowRunMutation) GatesIDs() (ids []string) {
	for id := range m.gates {
		ids = append(ids, id)
	}
	return
}

// ResetGates resets all changes to the "gates" edge.
func (m *WorkflowRunMutation) ResetGates() {
	m.gates = nil
	m.clearedgates = false
	m.removedgates = nil
}

// AddBudgetEntryIDs adds the "budget_entries" edge to the BudgetEntry entity by ids.
func (m *WorkflowRunMutation) AddBudgetEntryIDs(ids ...int) {
	if m.budget_entries == nil {
		m.budget_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.budget_entries[ids[i]] = struct{}{}
	}
}

// ClearBudgetEntries clears the "budget_entries" edge to the BudgetEntry entity.
func (m *WorkflowRunMutation) ClearBudgetEntries() {
	m.clearedbudget_entries = true
}

// BudgetEntriesCleared reports if the "budget_entries" edge to the BudgetEntry entity was cleared.
func (m *WorkflowRunMutation) BudgetEntriesCleared() bool {
	return m.clearedbudget_entries
}

// RemoveBudgetEntryIDs removes the "budget_entries" edge to the BudgetEntry entity by IDs.
func (m *WorkflowRunMutation) RemoveBudgetEntryIDs(ids ...int) {
	if m.removedbudget_entries == nil {
		m.removedbudget_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.budget_entries, ids[i])
		m.removedbudget_entries[ids[i]] = struct{}{}
	}
}

// RemovedBudgetEntries returns the removed IDs of the "budget_entries" edge to the BudgetEntry entity.
func (m *WorkflowRunMutation) RemovedBudgetEntriesIDs() (ids []int) {
	for id := range m.removedbudget_entries {
		ids = append(ids, id)
	}
	return
}

// BudgetEntriesIDs returns the "budget_entries" edge IDs in the mutation.
func (m *WorkflowRunMutation) BudgetEntriesIDs() (ids []int) {
	for id := range m.budget_entries {
		ids = append(ids, id)
	}
	return
}

// ResetBudgetEntries resets all changes to the "budget_entries" edge.
func (m *WorkflowRunMutation) ResetBudgetEntries() {
	m.budget_entries = nil
	m.clearedbudget_entries = false
	m.removedbudget_entries = nil
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *WorkflowRunMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *WorkflowRunMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *WorkflowRunMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *WorkflowRunMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *WorkflowRunMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *WorkflowRunMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *WorkflowRunMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *WorkflowRunMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *WorkflowRunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *WorkflowRunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *WorkflowRunMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *WorkflowRunMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *WorkflowRunMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *WorkflowRunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the WorkflowRunMutation builder.
func (m *WorkflowRunMutation) Where(ps ...predicate.WorkflowRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowRun).
func (m *WorkflowRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowRunMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.campaign != nil {
		fields = append(fields, workflowrun.FieldCampaign)
	}
	if m.status != nil {
		fields = append(fields, workflowrun.FieldStatus)
	}
	if m.current_phase != nil {
		fields = append(fields, workflowrun.FieldCurrentPhase)
	}
	if m.budget_cap_usd != nil {
		fields = append(fields, workflowrun.FieldBudgetCapUsd)
	}
	if m.spend_usd != nil {
		fields = append(fields, workflowrun.FieldSpendUsd)
	}
	if m._config != nil {
		fields = append(fields, workflowrun.FieldConfig)
	}
	if m.error_message != nil {
		fields = append(fields, workflowrun.FieldErrorMessage)
	}
	if m.author != nil {
		fields = append(fields, workflowrun.FieldAuthor)
	}
	if m.pod_id != nil {
		fields = append(fields, workflowrun.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, workflowrun.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, workflowrun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflowrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowrun.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, workflowrun.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldCampaign:
		return m.Campaign()
	case workflowrun.FieldStatus:
		return m.Status()
	case workflowrun.FieldCurrentPhase:
		return m.CurrentPhase()
	case workflowrun.FieldBudgetCapUsd:
		return m.BudgetCapUsd()
	case workflowrun.FieldSpendUsd:
		return m.SpendUsd()
	case workflowrun.FieldConfig:
		return m.Config()
	case workflowrun.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowrun.FieldAuthor:
		return m.Author()
	case workflowrun.FieldPodID:
		return m.PodID()
	case workflowrun.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case workflowrun.FieldCreatedAt:
		return m.CreatedAt()
	case workflowrun.FieldStartedAt:
		return m.StartedAt()
	case workflowrun.FieldCompletedAt:
		return m.CompletedAt()
	case workflowrun.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowrun.FieldCampaign:
		return m.OldCampaign(ctx)
	case workflowrun.FieldStatus:
		return m.OldStatus(ctx)
	case workflowrun.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case workflowrun.FieldBudgetCapUsd:
		return m.OldBudgetCapUsd(ctx)
	case workflowrun.FieldSpendUsd:
		return m.OldSpendUsd(ctx)
	case workflowrun.FieldConfig:
		return m.OldConfig(ctx)
	case workflowrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowrun.FieldAuthor:
		return m.OldAuthor(ctx)
	case workflowrun.FieldPodID:
		return m.OldPodID(ctx)
	case workflowrun.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case workflowrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowrun.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldCampaign:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaign(v)
		return nil
	case workflowrun.FieldStatus:
		v, ok := value.(workflowrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowrun.FieldCurrentPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case workflowrun.FieldBudgetCapUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetCapUsd(v)
		return nil
	case workflowrun.FieldSpendUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpendUsd(v)
		return nil
	case workflowrun.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case workflowrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowrun.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case workflowrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case workflowrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowrun.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowRunMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_phase != nil {
		fields = append(fields, workflowrun.FieldCurrentPhase)
	}
	if m.addbudget_cap_usd != nil {
		fields = append(fields, workflowrun.FieldBudgetCapUsd)
	}
	if m.addspend_usd != nil {
		fields = append(fields, workflowrun.FieldSpendUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldCurrentPhase:
		return m.AddedCurrentPhase()
	case workflowrun.FieldBudgetCapUsd:
		return m.AddedBudgetCapUsd()
	case workflowrun.FieldSpendUsd:
		return m.AddedSpendUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldCurrentPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentPhase(v)
		return nil
	case workflowrun.FieldBudgetCapUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudgetCapUsd(v)
		return nil
	case workflowrun.FieldSpendUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpendUsd(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowrun.FieldConfig) {
		fields = append(fields, workflowrun.FieldConfig)
	}
	if m.FieldCleared(workflowrun.FieldErrorMessage) {
		fields = append(fields, workflowrun.FieldErrorMessage)
	}
	if m.FieldCleared(workflowrun.FieldAuthor) {
		fields = append(fields, workflowrun.FieldAuthor)
	}
	if m.FieldCleared(workflowrun.FieldPodID) {
		fields = append(fields, workflowrun.FieldPodID)
	}
	if m.FieldCleared(workflowrun.FieldLastHeartbeatAt) {
		fields = append(fields, workflowrun.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(workflowrun.FieldStartedAt) {
		fields = append(fields, workflowrun.FieldStartedAt)
	}
	if m.FieldCleared(workflowrun.FieldCompletedAt) {
		fields = append(fields, workflowrun.FieldCompletedAt)
	}
	if m.FieldCleared(workflowrun.FieldDeletedAt) {
		fields = append(fields, workflowrun.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ClearField(name string) error {
	switch name {
	case workflowrun.FieldConfig:
		m.ClearConfig()
		return nil
	case workflowrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowrun.FieldAuthor:
		m.ClearAuthor()
		return nil
	case workflowrun.FieldPodID:
		m.ClearPodID()
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case workflowrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflowrun.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ResetField(name string) error {
	switch name {
	case workflowrun.FieldCampaign:
		m.ResetCampaign()
		return nil
	case workflowrun.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowrun.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case workflowrun.FieldBudgetCapUsd:
		m.ResetBudgetCapUsd()
		return nil
	case workflowrun.FieldSpendUsd:
		m.ResetSpendUsd()
		return nil
	case workflowrun.FieldConfig:
		m.ResetConfig()
		return nil
	case workflowrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowrun.FieldAuthor:
		m.ResetAuthor()
		return nil
	case workflowrun.FieldPodID:
		m.ResetPodID()
		return nil
	case workflowrun.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case workflowrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowrun.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.tasks != nil {
		edges = append(edges, workflowrun.EdgeTasks)
	}
	if m.invocations != nil {
		edges = append(edges, workflowrun.EdgeInvocations)
	}
	if m.checkpoints != nil {
		edges = append(edges, workflowrun.EdgeCheckpoints)
	}
	if m.gates != nil {
		edges = append(edges, workflowrun.EdgeGates)
	}
	if m.budget_entries != nil {
		edges = append(edges, workflowrun.EdgeBudgetEntries)
	}
	if m.artifacts != nil {
		edges = append(edges, workflowrun.EdgeArtifacts)
	}
	if m.events != nil {
		edges = append(edges, workflowrun.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowrun.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeInvocations:
		ids := make([]ent.Value, 0, len(m.invocations))
		for id := range m.invocations {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeGates:
		ids := make([]ent.Value, 0, len(m.gates))
		for id := range m.gates {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeBudgetEntries:
		ids := make([]ent.Value, 0, len(m.budget_entries))
		for id := range m.budget_entries {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedtasks != nil {
		edges = append(edges, workflowrun.EdgeTasks)
	}
	if m.removedinvocations != nil {
		edges = append(edges, workflowrun.EdgeInvocations)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, workflowrun.EdgeCheckpoints)
	}
	if m.removedgates != nil {
		edges = append(edges, workflowrun.EdgeGates)
	}
	if m.removedbudget_entries != nil {
		edges = append(edges, workflowrun.EdgeBudgetEntries)
	}
	if m.removedartifacts != nil {
		edges = append(edges, workflowrun.EdgeArtifacts)
	}
	if m.removedevents != nil {
		edges = append(edges, workflowrun.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowrun.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeInvocations:
		ids := make([]ent.Value, 0, len(m.removedinvocations))
		for id := range m.removedinvocations {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeGates:
		ids := make([]ent.Value, 0, len(m.removedgates))
		for id := range m.removedgates {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeBudgetEntries:
		ids := make([]ent.Value, 0, len(m.removedbudget_entries))
		for id := range m.removedbudget_entries {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	case workflowrun.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedtasks {
		edges = append(edges, workflowrun.EdgeTasks)
	}
	if m.clearedinvocations {
		edges = append(edges, workflowrun.EdgeInvocations)
	}
	if m.clearedcheckpoints {
		edges = append(edges, workflowrun.EdgeCheckpoints)
	}
	if m.clearedgates {
		edges = append(edges, workflowrun.EdgeGates)
	}
	if m.clearedbudget_entries {
		edges = append(edges, workflowrun.EdgeBudgetEntries)
	}
	if m.clearedartifacts {
		edges = append(edges, workflowrun.EdgeArtifacts)
	}
	if m.clearedevents {
		edges = append(edges, workflowrun.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowRunMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowrun.EdgeTasks:
		return m.clearedtasks
	case workflowrun.EdgeInvocations:
		return m.clearedinvocations
	case workflowrun.EdgeCheckpoints:
		return m.clearedcheckpoints
	case workflowrun.EdgeGates:
		return m.clearedgates
	case workflowrun.EdgeBudgetEntries:
		return m.clearedbudget_entries
	case workflowrun.EdgeArtifacts:
		return m.clearedartifacts
	case workflowrun.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowRunMutation) ResetEdge(name string) error {
	switch name {
	case workflowrun.EdgeTasks:
		m.ResetTasks()
		return nil
	case workflowrun.EdgeInvocations:
		m.ResetInvocations()
		return nil
	case workflowrun.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case workflowrun.EdgeGates:
		m.ResetGates()
		return nil
	case workflowrun.EdgeBudgetEntries:
		m.ResetBudgetEntries()
		return nil
	case workflowrun.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	case workflowrun.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun edge %s", name)
}
