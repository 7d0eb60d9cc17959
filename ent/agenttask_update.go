// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/checkpoint"
	"github.com/outreachkit/prospector/ent/predicate"
	"github.com/outreachkit/prospector/ent/toolinvocation"
)

// AgentTaskUpdate is the builder for updating AgentTask entities.
type AgentTaskUpdate struct {
	config
	hooks    []Hook
	mutation *AgentTaskMutation
}

// Where appends a list predicates to the AgentTaskUpdate builder.
func (_u *AgentTaskUpdate) Where(ps ...predicate.AgentTask) *AgentTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentTaskUpdate) SetAgentName(v string) *AgentTaskUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableAgentName(v *string) *AgentTaskUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AgentTaskUpdate) SetPhase(v int) *AgentTaskUpdate {
	_u.mutation.ResetPhase()
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillablePhase(v *int) *AgentTaskUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// AddPhase adds value to the "phase" field.
func (_u *AgentTaskUpdate) AddPhase(v int) *AgentTaskUpdate {
	_u.mutation.AddPhase(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AgentTaskUpdate) SetAttempt(v int) *AgentTaskUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableAttempt(v *int) *AgentTaskUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AgentTaskUpdate) AddAttempt(v int) *AgentTaskUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetState sets the "state" field.
func (_u *AgentTaskUpdate) SetState(v agenttask.State) *AgentTaskUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableState(v *agenttask.State) *AgentTaskUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *AgentTaskUpdate) SetStepCount(v int) *AgentTaskUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableStepCount(v *int) *AgentTaskUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *AgentTaskUpdate) AddStepCount(v int) *AgentTaskUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetInputRef sets the "input_ref" field.
func (_u *AgentTaskUpdate) SetInputRef(v string) *AgentTaskUpdate {
	_u.mutation.SetInputRef(v)
	return _u
}

// SetNillableInputRef sets the "input_ref" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableInputRef(v *string) *AgentTaskUpdate {
	if v != nil {
		_u.SetInputRef(*v)
	}
	return _u
}

// ClearInputRef clears the value of the "input_ref" field.
func (_u *AgentTaskUpdate) ClearInputRef() *AgentTaskUpdate {
	_u.mutation.ClearInputRef()
	return _u
}

// SetOutputRef sets the "output_ref" field.
func (_u *AgentTaskUpdate) SetOutputRef(v string) *AgentTaskUpdate {
	_u.mutation.SetOutputRef(v)
	return _u
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableOutputRef(v *string) *AgentTaskUpdate {
	if v != nil {
		_u.SetOutputRef(*v)
	}
	return _u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (_u *AgentTaskUpdate) ClearOutputRef() *AgentTaskUpdate {
	_u.mutation.ClearOutputRef()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentTaskUpdate) SetErrorMessage(v string) *AgentTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableErrorMessage(v *string) *AgentTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentTaskUpdate) ClearErrorMessage() *AgentTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentTaskUpdate) SetCreatedAt(v time.Time) *AgentTaskUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableCreatedAt(v *time.Time) *AgentTaskUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentTaskUpdate) SetStartedAt(v time.Time) *AgentTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableStartedAt(v *time.Time) *AgentTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentTaskUpdate) ClearStartedAt() *AgentTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentTaskUpdate) SetCompletedAt(v time.Time) *AgentTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentTaskUpdate) SetNillableCompletedAt(v *time.Time) *AgentTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentTaskUpdate) ClearCompletedAt() *AgentTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddInvocationIDs adds the "invocations" edge to the ToolInvocation entity by IDs.
func (_u *AgentTaskUpdate) AddInvocationIDs(ids ...string) *AgentTaskUpdate {
	_u.mutation.AddInvocationIDs(ids...)
	return _u
}

// AddInvocations adds the "invocations" edges to the ToolInvocation entity.
func (_u *AgentTaskUpdate) AddInvocations(v ...*ToolInvocation) *AgentTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvocationIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *AgentTaskUpdate) AddCheckpointIDs(ids ...string) *AgentTaskUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *AgentTaskUpdate) AddCheckpoints(v ...*Checkpoint) *AgentTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the AgentTaskMutation object of the builder.
func (_u *AgentTaskUpdate) Mutation() *AgentTaskMutation {
	return _u.mutation
}

// ClearInvocations clears all "invocations" edges to the ToolInvocation entity.
func (_u *AgentTaskUpdate) ClearInvocations() *AgentTaskUpdate {
	_u.mutation.ClearInvocations()
	return _u
}

// RemoveInvocationIDs removes the "invocations" edge to ToolInvocation entities by IDs.
func (_u *AgentTaskUpdate) RemoveInvocationIDs(ids ...string) *AgentTaskUpdate {
	_u.mutation.RemoveInvocationIDs(ids...)
	return _u
}

// RemoveInvocations removes "invocations" edges to ToolInvocation entities.
func (_u *AgentTaskUpdate) RemoveInvocations(v ...*ToolInvocation) *AgentTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvocationIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *AgentTaskUpdate) ClearCheckpoints() *AgentTaskUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *AgentTaskUpdate) RemoveCheckpointIDs(ids ...string) *AgentTaskUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *AgentTaskUpdate) RemoveCheckpoints(v ...*Checkpoint) *AgentTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTaskUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := agenttask.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AgentTask.state": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTask.run"`)
	}
	return nil
}

func (_u *AgentTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttask.Table, agenttask.Columns, sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agenttask.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(agenttask.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhase(); ok {
		_spec.AddField(agenttask.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(agenttask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(agenttask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agenttask.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(agenttask.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(agenttask.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputRef(); ok {
		_spec.SetField(agenttask.FieldInputRef, field.TypeString, value)
	}
	if _u.mutation.InputRefCleared() {
		_spec.ClearField(agenttask.FieldInputRef, field.TypeString)
	}
	if value, ok := _u.mutation.OutputRef(); ok {
		_spec.SetField(agenttask.FieldOutputRef, field.TypeString, value)
	}
	if _u.mutation.OutputRefCleared() {
		_spec.ClearField(agenttask.FieldOutputRef, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agenttask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agenttask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agenttask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agenttask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agenttask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agenttask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agenttask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.InvocationsTable,
			Columns: []string{agenttask.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvocationsIDs(); len(nodes) > 0 && !_u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.InvocationsTable,
			Columns: []string{agenttask.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.InvocationsTable,
			Columns: []string{agenttask.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.CheckpointsTable,
			Columns: []string{agenttask.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.CheckpointsTable,
			Columns: []string{agenttask.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.CheckpointsTable,
			Columns: []string{agenttask.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentTaskUpdateOne is the builder for updating a single AgentTask entity.
type AgentTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentTaskMutation
}

// SetAgentName sets the "agent_name" field.
func (_u *AgentTaskUpdateOne) SetAgentName(v string) *AgentTaskUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableAgentName(v *string) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AgentTaskUpdateOne) SetPhase(v int) *AgentTaskUpdateOne {
	_u.mutation.ResetPhase()
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillablePhase(v *int) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// AddPhase adds value to the "phase" field.
func (_u *AgentTaskUpdateOne) AddPhase(v int) *AgentTaskUpdateOne {
	_u.mutation.AddPhase(v)
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *AgentTaskUpdateOne) SetAttempt(v int) *AgentTaskUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableAttempt(v *int) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *AgentTaskUpdateOne) AddAttempt(v int) *AgentTaskUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetState sets the "state" field.
func (_u *AgentTaskUpdateOne) SetState(v agenttask.State) *AgentTaskUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableState(v *agenttask.State) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *AgentTaskUpdateOne) SetStepCount(v int) *AgentTaskUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableStepCount(v *int) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *AgentTaskUpdateOne) AddStepCount(v int) *AgentTaskUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetInputRef sets the "input_ref" field.
func (_u *AgentTaskUpdateOne) SetInputRef(v string) *AgentTaskUpdateOne {
	_u.mutation.SetInputRef(v)
	return _u
}

// SetNillableInputRef sets the "input_ref" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableInputRef(v *string) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetInputRef(*v)
	}
	return _u
}

// ClearInputRef clears the value of the "input_ref" field.
func (_u *AgentTaskUpdateOne) ClearInputRef() *AgentTaskUpdateOne {
	_u.mutation.ClearInputRef()
	return _u
}

// SetOutputRef sets the "output_ref" field.
func (_u *AgentTaskUpdateOne) SetOutputRef(v string) *AgentTaskUpdateOne {
	_u.mutation.SetOutputRef(v)
	return _u
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableOutputRef(v *string) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetOutputRef(*v)
	}
	return _u
}

// ClearOutputRef clears the value of the "output_ref" field.
func (_u *AgentTaskUpdateOne) ClearOutputRef() *AgentTaskUpdateOne {
	_u.mutation.ClearOutputRef()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentTaskUpdateOne) SetErrorMessage(v string) *AgentTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableErrorMessage(v *string) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentTaskUpdateOne) ClearErrorMessage() *AgentTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AgentTaskUpdateOne) SetCreatedAt(v time.Time) *AgentTaskUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableCreatedAt(v *time.Time) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentTaskUpdateOne) SetStartedAt(v time.Time) *AgentTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableStartedAt(v *time.Time) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentTaskUpdateOne) ClearStartedAt() *AgentTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentTaskUpdateOne) SetCompletedAt(v time.Time) *AgentTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentTaskUpdateOne) ClearCompletedAt() *AgentTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddInvocationIDs adds the "invocations" edge to the ToolInvocation entity by IDs.
func (_u *AgentTaskUpdateOne) AddInvocationIDs(ids ...string) *AgentTaskUpdateOne {
	_u.mutation.AddInvocationIDs(ids...)
	return _u
}

// AddInvocations adds the "invocations" edges to the ToolInvocation entity.
func (_u *AgentTaskUpdateOne) AddInvocations(v ...*ToolInvocation) *AgentTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvocationIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_u *AgentTaskUpdateOne) AddCheckpointIDs(ids ...string) *AgentTaskUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_u *AgentTaskUpdateOne) AddCheckpoints(v ...*Checkpoint) *AgentTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// Mutation returns the AgentTaskMutation object of the builder.
func (_u *AgentTaskUpdateOne) Mutation() *AgentTaskMutation {
	return _u.mutation
}

// ClearInvocations clears all "invocations" edges to the ToolInvocation entity.
func (_u *AgentTaskUpdateOne) ClearInvocations() *AgentTaskUpdateOne {
	_u.mutation.ClearInvocations()
	return _u
}

// RemoveInvocationIDs removes the "invocations" edge to ToolInvocation entities by IDs.
func (_u *AgentTaskUpdateOne) RemoveInvocationIDs(ids ...string) *AgentTaskUpdateOne {
	_u.mutation.RemoveInvocationIDs(ids...)
	return _u
}

// RemoveInvocations removes "invocations" edges to ToolInvocation entities.
func (_u *AgentTaskUpdateOne) RemoveInvocations(v ...*ToolInvocation) *AgentTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvocationIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the Checkpoint entity.
func (_u *AgentTaskUpdateOne) ClearCheckpoints() *AgentTaskUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to Checkpoint entities by IDs.
func (_u *AgentTaskUpdateOne) RemoveCheckpointIDs(ids ...string) *AgentTaskUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to Checkpoint entities.
func (_u *AgentTaskUpdateOne) RemoveCheckpoints(v ...*Checkpoint) *AgentTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// Where appends a list predicates to the AgentTaskUpdate builder.
func (_u *AgentTaskUpdateOne) Where(ps ...predicate.AgentTask) *AgentTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentTaskUpdateOne) Select(field string, fields ...string) *AgentTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentTask entity.
func (_u *AgentTaskUpdateOne) Save(ctx context.Context) (*AgentTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTaskUpdateOne) SaveX(ctx context.Context) *AgentTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTaskUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := agenttask.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AgentTask.state": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTask.run"`)
	}
	return nil
}

func (_u *AgentTaskUpdateOne) sqlSave(ctx context.Context) (_node *AgentTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttask.Table, agenttask.Columns, sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttask.FieldID)
		for _, f := range fields {
			if !agenttask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenttask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(agenttask.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(agenttask.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhase(); ok {
		_spec.AddField(agenttask.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(agenttask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(agenttask.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agenttask.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(agenttask.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(agenttask.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputRef(); ok {
		_spec.SetField(agenttask.FieldInputRef, field.TypeString, value)
	}
	if _u.mutation.InputRefCleared() {
		_spec.ClearField(agenttask.FieldInputRef, field.TypeString)
	}
	if value, ok := _u.mutation.OutputRef(); ok {
		_spec.SetField(agenttask.FieldOutputRef, field.TypeString, value)
	}
	if _u.mutation.OutputRefCleared() {
		_spec.ClearField(agenttask.FieldOutputRef, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agenttask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agenttask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(agenttask.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agenttask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agenttask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agenttask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agenttask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.InvocationsTable,
			Columns: []string{agenttask.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvocationsIDs(); len(nodes) > 0 && !_u.mutation.InvocationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.InvocationsTable,
			Columns: []string{agenttask.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvocationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.InvocationsTable,
			Columns: []string{agenttask.InvocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.CheckpointsTable,
			Columns: []string{agenttask.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.CheckpointsTable,
			Columns: []string{agenttask.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agenttask.CheckpointsTable,
			Columns: []string{agenttask.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
