// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outreachkit/prospector/ent/limiterstate"
)

// LimiterStateCreate is the builder for creating a LimiterState entity.
type LimiterStateCreate struct {
	config
	mutation *LimiterStateMutation
	hooks    []Hook
}

// SetToolID sets the "tool_id" field.
func (_c *LimiterStateCreate) SetToolID(v string) *LimiterStateCreate {
	_c.mutation.SetToolID(v)
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *LimiterStateCreate) SetTokens(v float64) *LimiterStateCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetLastRefillAt sets the "last_refill_at" field.
func (_c *LimiterStateCreate) SetLastRefillAt(v time.Time) *LimiterStateCreate {
	_c.mutation.SetLastRefillAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LimiterStateCreate) SetUpdatedAt(v time.Time) *LimiterStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LimiterStateCreate) SetNillableUpdatedAt(v *time.Time) *LimiterStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LimiterStateMutation object of the builder.
func (_c *LimiterStateCreate) Mutation() *LimiterStateMutation {
	return _c.mutation
}

// Save creates the LimiterState in the database.
func (_c *LimiterStateCreate) Save(ctx context.Context) (*LimiterState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LimiterStateCreate) SaveX(ctx context.Context) *LimiterState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LimiterStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LimiterStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LimiterStateCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := limiterstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LimiterStateCreate) check() error {
	if _, ok := _c.mutation.ToolID(); !ok {
		return &ValidationError{Name: "tool_id", err: errors.New(`ent: missing required field "LimiterState.tool_id"`)}
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		return &ValidationError{Name: "tokens", err: errors.New(`ent: missing required field "LimiterState.tokens"`)}
	}
	if _, ok := _c.mutation.LastRefillAt(); !ok {
		return &ValidationError{Name: "last_refill_at", err: errors.New(`ent: missing required field "LimiterState.last_refill_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LimiterState.updated_at"`)}
	}
	return nil
}

func (_c *LimiterStateCreate) sqlSave(ctx context.Context) (*LimiterState, error) {
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

func (_c *LimiterStateCreate) createSpec() (*LimiterState, *sqlgraph.CreateSpec) {
	var (
		_node = &LimiterState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(limiterstate.Table, sqlgraph.NewFieldSpec(limiterstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ToolID(); ok {
		_spec.SetField(limiterstate.FieldToolID, field.TypeString, value)
		_node.ToolID = value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(limiterstate.FieldTokens, field.TypeFloat64, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.LastRefillAt(); ok {
		_spec.SetField(limiterstate.FieldLastRefillAt, field.TypeTime, value)
		_node.LastRefillAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(limiterstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LimiterStateCreateBulk is the builder for creating many LimiterState entities in bulk.
type LimiterStateCreateBulk struct {
	config
	err      error
	builders []*LimiterStateCreate
}

// Save creates the LimiterState entities in the database.
func (_c *LimiterStateCreateBulk) Save(ctx context.Context) ([]*LimiterState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LimiterState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LimiterStateMutation)
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
func (_c *LimiterStateCreateBulk) SaveX(ctx context.Context) []*LimiterState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LimiterStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LimiterStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
