// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outreachkit/prospector/ent/agenttask"
	"github.com/outreachkit/prospector/ent/checkpoint"
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// AgentTaskCreate is the builder for creating a AgentTask entity.
type AgentTaskCreate struct {
	config
	mutation *AgentTaskMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AgentTaskCreate) SetRunID(v string) *AgentTaskCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentTaskCreate) SetAgentName(v string) *AgentTaskCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *AgentTaskCreate) SetPhase(v int) *AgentTaskCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *AgentTaskCreate) SetAttempt(v int) *AgentTaskCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableAttempt(v *int) *AgentTaskCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *AgentTaskCreate) SetState(v agenttask.State) *AgentTaskCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableState(v *agenttask.State) *AgentTaskCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStepCount sets the "step_count" field.
func (_c *AgentTaskCreate) SetStepCount(v int) *AgentTaskCreate {
	_c.mutation.SetStepCount(v)
	return _c
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableStepCount(v *int) *AgentTaskCreate {
	if v != nil {
		_c.SetStepCount(*v)
	}
	return _c
}

// SetInputRef sets the "input_ref" field.
func (_c *AgentTaskCreate) SetInputRef(v string) *AgentTaskCreate {
	_c.mutation.SetInputRef(v)
	return _c
}

// SetNillableInputRef sets the "input_ref" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableInputRef(v *string) *AgentTaskCreate {
	if v != nil {
		_c.SetInputRef(*v)
	}
	return _c
}

// SetOutputRef sets the "output_ref" field.
func (_c *AgentTaskCreate) SetOutputRef(v string) *AgentTaskCreate {
	_c.mutation.SetOutputRef(v)
	return _c
}

// SetNillableOutputRef sets the "output_ref" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableOutputRef(v *string) *AgentTaskCreate {
	if v != nil {
		_c.SetOutputRef(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentTaskCreate) SetErrorMessage(v string) *AgentTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableErrorMessage(v *string) *AgentTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentTaskCreate) SetCreatedAt(v time.Time) *AgentTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableCreatedAt(v *time.Time) *AgentTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentTaskCreate) SetStartedAt(v time.Time) *AgentTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableStartedAt(v *time.Time) *AgentTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentTaskCreate) SetCompletedAt(v time.Time) *AgentTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentTaskCreate) SetNillableCompletedAt(v *time.Time) *AgentTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentTaskCreate) SetID(v string) *AgentTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *AgentTaskCreate) SetRun(v *WorkflowRun) *AgentTaskCreate {
	return _c.SetRunID(v.ID)
}

// AddInvocationIDs adds the "invocations" edge to the ToolInvocation entity by IDs.
func (_c *AgentTaskCreate) AddInvocationIDs(ids ...string) *AgentTaskCreate {
	_c.mutation.AddInvocationIDs(ids...)
	return _c
}

// AddInvocations adds the "invocations" edges to the ToolInvocation entity.
func (_c *AgentTaskCreate) AddInvocations(v ...*ToolInvocation) *AgentTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvocationIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by IDs.
func (_c *AgentTaskCreate) AddCheckpointIDs(ids ...string) *AgentTaskCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the Checkpoint entity.
func (_c *AgentTaskCreate) AddCheckpoints(v ...*Checkpoint) *AgentTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// Mutation returns the AgentTaskMutation object of the builder.
func (_c *AgentTaskCreate) Mutation() *AgentTaskMutation {
	return _c.mutation
}

// Save creates the AgentTask in the database.
func (_c *AgentTaskCreate) Save(ctx context.Context) (*AgentTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentTaskCreate) SaveX(ctx context.Context) *AgentTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentTaskCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := agenttask.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := agenttask.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		v := agenttask.DefaultStepCount
		_c.mutation.SetStepCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agenttask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentTaskCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentTask.run_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentTask.agent_name"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "AgentTask.phase"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "AgentTask.attempt"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "AgentTask.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := agenttask.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "AgentTask.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		return &ValidationError{Name: "step_count", err: errors.New(`ent: missing required field "AgentTask.step_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentTask.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentTask.run"`)}
	}
	return nil
}

func (_c *AgentTaskCreate) sqlSave(ctx context.Context) (*AgentTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentTaskCreate) createSpec() (*AgentTask, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agenttask.Table, sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agenttask.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(agenttask.FieldPhase, field.TypeInt, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(agenttask.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(agenttask.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StepCount(); ok {
		_spec.SetField(agenttask.FieldStepCount, field.TypeInt, value)
		_node.StepCount = value
	}
	if value, ok := _c.mutation.InputRef(); ok {
		_spec.SetField(agenttask.FieldInputRef, field.TypeString, value)
		_node.InputRef = &value
	}
	if value, ok := _c.mutation.OutputRef(); ok {
		_spec.SetField(agenttask.FieldOutputRef, field.TypeString, value)
		_node.OutputRef = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agenttask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agenttask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agenttask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agenttask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenttask.RunTable,
			Columns: []string{agenttask.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InvocationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentTaskCreateBulk is the builder for creating many AgentTask entities in bulk.
type AgentTaskCreateBulk struct {
	config
	err      error
	builders []*AgentTaskCreate
}

// Save creates the AgentTask entities in the database.
func (_c *AgentTaskCreateBulk) Save(ctx context.Context) ([]*AgentTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentTaskCreateBulk) SaveX(ctx context.Context) []*AgentTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
