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
	"github.com/outreachkit/prospector/ent/limiterstate"
	"github.com/outreachkit/prospector/ent/predicate"
)

// LimiterStateUpdate is the builder for updating LimiterState entities.
type LimiterStateUpdate struct {
	config
	hooks    []Hook
	mutation *LimiterStateMutation
}

// Where appends a list predicates to the LimiterStateUpdate builder.
func (_u *LimiterStateUpdate) Where(ps ...predicate.LimiterState) *LimiterStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *LimiterStateUpdate) SetTokens(v float64) *LimiterStateUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *LimiterStateUpdate) SetNillableTokens(v *float64) *LimiterStateUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *LimiterStateUpdate) AddTokens(v float64) *LimiterStateUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// SetLastRefillAt sets the "last_refill_at" field.
func (_u *LimiterStateUpdate) SetLastRefillAt(v time.Time) *LimiterStateUpdate {
	_u.mutation.SetLastRefillAt(v)
	return _u
}

// SetNillableLastRefillAt sets the "last_refill_at" field if the given value is not nil.
func (_u *LimiterStateUpdate) SetNillableLastRefillAt(v *time.Time) *LimiterStateUpdate {
	if v != nil {
		_u.SetLastRefillAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LimiterStateUpdate) SetUpdatedAt(v time.Time) *LimiterStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LimiterStateMutation object of the builder.
func (_u *LimiterStateUpdate) Mutation() *LimiterStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LimiterStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LimiterStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LimiterStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LimiterStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LimiterStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := limiterstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LimiterStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(limiterstate.Table, limiterstate.Columns, sqlgraph.NewFieldSpec(limiterstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(limiterstate.FieldTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(limiterstate.FieldTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastRefillAt(); ok {
		_spec.SetField(limiterstate.FieldLastRefillAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(limiterstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{limiterstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LimiterStateUpdateOne is the builder for updating a single LimiterState entity.
type LimiterStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LimiterStateMutation
}

// SetTokens sets the "tokens" field.
func (_u *LimiterStateUpdateOne) SetTokens(v float64) *LimiterStateUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *LimiterStateUpdateOne) SetNillableTokens(v *float64) *LimiterStateUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *LimiterStateUpdateOne) AddTokens(v float64) *LimiterStateUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// SetLastRefillAt sets the "last_refill_at" field.
func (_u *LimiterStateUpdateOne) SetLastRefillAt(v time.Time) *LimiterStateUpdateOne {
	_u.mutation.SetLastRefillAt(v)
	return _u
}

// SetNillableLastRefillAt sets the "last_refill_at" field if the given value is not nil.
func (_u *LimiterStateUpdateOne) SetNillableLastRefillAt(v *time.Time) *LimiterStateUpdateOne {
	if v != nil {
		_u.SetLastRefillAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LimiterStateUpdateOne) SetUpdatedAt(v time.Time) *LimiterStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LimiterStateMutation object of the builder.
func (_u *LimiterStateUpdateOne) Mutation() *LimiterStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the LimiterStateUpdate builder.
func (_u *LimiterStateUpdateOne) Where(ps ...predicate.LimiterState) *LimiterStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LimiterStateUpdateOne) Select(field string, fields ...string) *LimiterStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LimiterState entity.
func (_u *LimiterStateUpdateOne) Save(ctx context.Context) (*LimiterState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LimiterStateUpdateOne) SaveX(ctx context.Context) *LimiterState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LimiterStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LimiterStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LimiterStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := limiterstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LimiterStateUpdateOne) sqlSave(ctx context.Context) (_node *LimiterState, err error) {
	_spec := sqlgraph.NewUpdateSpec(limiterstate.Table, limiterstate.Columns, sqlgraph.NewFieldSpec(limiterstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LimiterState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, limiterstate.FieldID)
		for _, f := range fields {
			if !limiterstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != limiterstate.FieldID {
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
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(limiterstate.FieldTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(limiterstate.FieldTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastRefillAt(); ok {
		_spec.SetField(limiterstate.FieldLastRefillAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(limiterstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LimiterState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{limiterstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
