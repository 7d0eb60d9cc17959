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
	"github.com/outreachkit/prospector/ent/toolinvocation"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// ToolInvocationCreate is the builder for creating a ToolInvocation entity.
type ToolInvocationCreate struct {
	config
	mutation *ToolInvocationMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ToolInvocationCreate) SetRunID(v string) *ToolInvocationCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ToolInvocationCreate) SetTaskID(v string) *ToolInvocationCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetToolID sets the "tool_id" field.
func (_c *ToolInvocationCreate) SetToolID(v string) *ToolInvocationCreate {
	_c.mutation.SetToolID(v)
	return _c
}

// SetOp sets the "op" field.
func (_c *ToolInvocationCreate) SetOp(v string) *ToolInvocationCreate {
	_c.mutation.SetOpField(v)
	return _c
}

// SetParamsHash sets the "params_hash" field.
func (_c *ToolInvocationCreate) SetParamsHash(v string) *ToolInvocationCreate {
	_c.mutation.SetParamsHash(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *ToolInvocationCreate) SetTier(v toolinvocation.Tier) *ToolInvocationCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *ToolInvocationCreate) SetOutcome(v toolinvocation.Outcome) *ToolInvocationCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ToolInvocationCreate) SetResult(v map[string]interface{}) *ToolInvocationCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ToolInvocationCreate) SetErrorMessage(v string) *ToolInvocationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableErrorMessage(v *string) *ToolInvocationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *ToolInvocationCreate) SetCostUsd(v float64) *ToolInvocationCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableCostUsd(v *float64) *ToolInvocationCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ToolInvocationCreate) SetLatencyMs(v int) *ToolInvocationCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableLatencyMs(v *int) *ToolInvocationCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *ToolInvocationCreate) SetRequestedAt(v time.Time) *ToolInvocationCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableRequestedAt(v *time.Time) *ToolInvocationCreate {
	if v != nil {
		_c.SetRequestedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ToolInvocationCreate) SetCompletedAt(v time.Time) *ToolInvocationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableCompletedAt(v *time.Time) *ToolInvocationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolInvocationCreate) SetID(v string) *ToolInvocationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *ToolInvocationCreate) SetRun(v *WorkflowRun) *ToolInvocationCreate {
	return _c.SetRunID(v.ID)
}

// SetTask sets the "task" edge to the AgentTask entity.
func (_c *ToolInvocationCreate) SetTask(v *AgentTask) *ToolInvocationCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_c *ToolInvocationCreate) Mutation() *ToolInvocationMutation {
	return _c.mutation
}

// Save creates the ToolInvocation in the database.
func (_c *ToolInvocationCreate) Save(ctx context.Context) (*ToolInvocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolInvocationCreate) SaveX(ctx context.Context) *ToolInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInvocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInvocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolInvocationCreate) defaults() {
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := toolinvocation.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := toolinvocation.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolInvocationCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ToolInvocation.run_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ToolInvocation.task_id"`)}
	}
	if _, ok := _c.mutation.ToolID(); !ok {
		return &ValidationError{Name: "tool_id", err: errors.New(`ent: missing required field "ToolInvocation.tool_id"`)}
	}
	if _, ok := _c.mutation.GetOp(); !ok {
		return &ValidationError{Name: "op", err: errors.New(`ent: missing required field "ToolInvocation.op"`)}
	}
	if _, ok := _c.mutation.ParamsHash(); !ok {
		return &ValidationError{Name: "params_hash", err: errors.New(`ent: missing required field "ToolInvocation.params_hash"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "ToolInvocation.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := toolinvocation.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "ToolInvocation.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := toolinvocation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "ToolInvocation.cost_usd"`)}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "ToolInvocation.requested_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "ToolInvocation.run"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ToolInvocation.task"`)}
	}
	return nil
}

func (_c *ToolInvocationCreate) sqlSave(ctx context.Context) (*ToolInvocation, error) {
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
			return nil, fmt.Errorf("unexpected ToolInvocation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolInvocationCreate) createSpec() (*ToolInvocation, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolInvocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolinvocation.Table, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolID(); ok {
		_spec.SetField(toolinvocation.FieldToolID, field.TypeString, value)
		_node.ToolID = value
	}
	if value, ok := _c.mutation.GetOp(); ok {
		_spec.SetField(toolinvocation.FieldOp, field.TypeString, value)
		_node.Op = value
	}
	if value, ok := _c.mutation.ParamsHash(); ok {
		_spec.SetField(toolinvocation.FieldParamsHash, field.TypeString, value)
		_node.ParamsHash = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(toolinvocation.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(toolinvocation.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(toolinvocation.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(toolinvocation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(toolinvocation.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = &value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(toolinvocation.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(toolinvocation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolinvocation.RunTable,
			Columns: []string{toolinvocation.RunColumn},
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
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolinvocation.TaskTable,
			Columns: []string{toolinvocation.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolInvocationCreateBulk is the builder for creating many ToolInvocation entities in bulk.
type ToolInvocationCreateBulk struct {
	config
	err      error
	builders []*ToolInvocationCreate
}

// Save creates the ToolInvocation entities in the database.
func (_c *ToolInvocationCreateBulk) Save(ctx context.Context) ([]*ToolInvocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolInvocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolInvocationMutation)
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
func (_c *ToolInvocationCreateBulk) SaveX(ctx context.Context) []*ToolInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInvocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInvocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
