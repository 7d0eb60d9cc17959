// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outreachkit/prospector/ent/budgetentry"
	"github.com/outreachkit/prospector/ent/workflowrun"
)

// BudgetEntryCreate is the builder for creating a BudgetEntry entity.
type BudgetEntryCreate struct {
	config
	mutation *BudgetEntryMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *BudgetEntryCreate) SetRunID(v string) *BudgetEntryCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetToolID sets the "tool_id" field.
func (_c *BudgetEntryCreate) SetToolID(v string) *BudgetEntryCreate {
	_c.mutation.SetToolID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *BudgetEntryCreate) SetPhase(v int) *BudgetEntryCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetAmountUsd sets the "amount_usd" field.
func (_c *BudgetEntryCreate) SetAmountUsd(v float64) *BudgetEntryCreate {
	_c.mutation.SetAmountUsd(v)
	return _c
}

// SetInvocationID sets the "invocation_id" field.
func (_c *BudgetEntryCreate) SetInvocationID(v string) *BudgetEntryCreate {
	_c.mutation.SetInvocationID(v)
	return _c
}

// SetNillableInvocationID sets the "invocation_id" field if the given value is not nil.
func (_c *BudgetEntryCreate) SetNillableInvocationID(v *string) *BudgetEntryCreate {
	if v != nil {
		_c.SetInvocationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BudgetEntryCreate) SetCreatedAt(v time.Time) *BudgetEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BudgetEntryCreate) SetNillableCreatedAt(v *time.Time) *BudgetEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the WorkflowRun entity.
func (_c *BudgetEntryCreate) SetRun(v *WorkflowRun) *BudgetEntryCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the BudgetEntryMutation object of the builder.
func (_c *BudgetEntryCreate) Mutation() *BudgetEntryMutation {
	return _c.mutation
}

// Save creates the BudgetEntry in the database.
func (_c *BudgetEntryCreate) Save(ctx context.Context) (*BudgetEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BudgetEntryCreate) SaveX(ctx context.Context) *BudgetEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BudgetEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := budgetentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BudgetEntryCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "BudgetEntry.run_id"`)}
	}
	if _, ok := _c.mutation.ToolID(); !ok {
		return &ValidationError{Name: "tool_id", err: errors.New(`ent: missing required field "BudgetEntry.tool_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "BudgetEntry.phase"`)}
	}
	if _, ok := _c.mutation.AmountUsd(); !ok {
		return &ValidationError{Name: "amount_usd", err: errors.New(`ent: missing required field "BudgetEntry.amount_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BudgetEntry.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "BudgetEntry.run"`)}
	}
	return nil
}

func (_c *BudgetEntryCreate) sqlSave(ctx context.Context) (*BudgetEntry, error) {
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

func (_c *BudgetEntryCreate) createSpec() (*BudgetEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &BudgetEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(budgetentry.Table, sqlgraph.NewFieldSpec(budgetentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ToolID(); ok {
		_spec.SetField(budgetentry.FieldToolID, field.TypeString, value)
		_node.ToolID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(budgetentry.FieldPhase, field.TypeInt, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.AmountUsd(); ok {
		_spec.SetField(budgetentry.FieldAmountUsd, field.TypeFloat64, value)
		_node.AmountUsd = value
	}
	if value, ok := _c.mutation.InvocationID(); ok {
		_spec.SetField(budgetentry.FieldInvocationID, field.TypeString, value)
		_node.InvocationID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(budgetentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   budgetentry.RunTable,
			Columns: []string{budgetentry.RunColumn},
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
	return _node, _spec
}

// BudgetEntryCreateBulk is the builder for creating many BudgetEntry entities in bulk.
type BudgetEntryCreateBulk struct {
	config
	err      error
	builders []*BudgetEntryCreate
}

// Save creates the BudgetEntry entities in the database.
func (_c *BudgetEntryCreateBulk) Save(ctx context.Context) ([]*BudgetEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BudgetEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BudgetEntryMutation)
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
func (_c *BudgetEntryCreateBulk) SaveX(ctx context.Context) []*BudgetEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BudgetEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BudgetEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
