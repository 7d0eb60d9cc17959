// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outreachkit/prospector/ent/breakerstate"
)

// BreakerStateCreate is the builder for creating a BreakerState entity.
type BreakerStateCreate struct {
	config
	mutation *BreakerStateMutation
	hooks    []Hook
}

// SetToolID sets the "tool_id" field.
func (_c *BreakerStateCreate) SetToolID(v string) *BreakerStateCreate {
	_c.mutation.SetToolID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *BreakerStateCreate) SetState(v breakerstate.State) *BreakerStateCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *BreakerStateCreate) SetNillableState(v *breakerstate.State) *BreakerStateCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *BreakerStateCreate) SetFailureCount(v int) *BreakerStateCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *BreakerStateCreate) SetNillableFailureCount(v *int) *BreakerStateCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *BreakerStateCreate) SetSuccessCount(v int) *BreakerStateCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *BreakerStateCreate) SetNillableSuccessCount(v *int) *BreakerStateCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetOpenedAt sets the "opened_at" field.
func (_c *BreakerStateCreate) SetOpenedAt(v time.Time) *BreakerStateCreate {
	_c.mutation.SetOpenedAt(v)
	return _c
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_c *BreakerStateCreate) SetNillableOpenedAt(v *time.Time) *BreakerStateCreate {
	if v != nil {
		_c.SetOpenedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BreakerStateCreate) SetUpdatedAt(v time.Time) *BreakerStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BreakerStateCreate) SetNillableUpdatedAt(v *time.Time) *BreakerStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the BreakerStateMutation object of the builder.
func (_c *BreakerStateCreate) Mutation() *BreakerStateMutation {
	return _c.mutation
}

// Save creates the BreakerState in the database.
func (_c *BreakerStateCreate) Save(ctx context.Context) (*BreakerState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BreakerStateCreate) SaveX(ctx context.Context) *BreakerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BreakerStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BreakerStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BreakerStateCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := breakerstate.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := breakerstate.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := breakerstate.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := breakerstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BreakerStateCreate) check() error {
	if _, ok := _c.mutation.ToolID(); !ok {
		return &ValidationError{Name: "tool_id", err: errors.New(`ent: missing required field "BreakerState.tool_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "BreakerState.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := breakerstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "BreakerState.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`ent: missing required field "BreakerState.failure_count"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "BreakerState.success_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BreakerState.updated_at"`)}
	}
	return nil
}

func (_c *BreakerStateCreate) sqlSave(ctx context.Context) (*BreakerState, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BreakerStateCreate) createSpec() (*BreakerState, *sqlgraph.CreateSpec) {
	var (
		_node = &BreakerState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(breakerstate.Table, sqlgraph.NewFieldSpec(breakerstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ToolID(); ok {
		_spec.SetField(breakerstate.FieldToolID, field.TypeString, value)
		_node.ToolID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(breakerstate.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(breakerstate.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(breakerstate.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.OpenedAt(); ok {
		_spec.SetField(breakerstate.FieldOpenedAt, field.TypeTime, value)
		_node.OpenedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(breakerstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BreakerStateCreateBulk is the builder for creating many BreakerState entities in bulk.
type BreakerStateCreateBulk struct {
	config
	err      error
	builders []*BreakerStateCreate
}

// Save creates the BreakerState entities in the database.
func (_c *BreakerStateCreateBulk) Save(ctx context.Context) ([]*BreakerState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BreakerState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BreakerStateMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *BreakerStateCreateBulk) SaveX(ctx context.Context) []*BreakerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BreakerStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BreakerStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
