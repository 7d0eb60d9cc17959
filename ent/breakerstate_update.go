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
	"github.com/outreachkit/prospector/ent/breakerstate"
	"github.com/outreachkit/prospector/ent/predicate"
)

// BreakerStateUpdate is the builder for updating BreakerState entities.
type BreakerStateUpdate struct {
	config
	hooks    []Hook
	mutation *BreakerStateMutation
}

// Where appends a list predicates to the BreakerStateUpdate builder.
func (_u *BreakerStateUpdate) Where(ps ...predicate.BreakerState) *BreakerStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *BreakerStateUpdate) SetState(v breakerstate.State) *BreakerStateUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BreakerStateUpdate) SetNillableState(v *breakerstate.State) *BreakerStateUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *BreakerStateUpdate) SetFailureCount(v int) *BreakerStateUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *BreakerStateUpdate) SetNillableFailureCount(v *int) *BreakerStateUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *BreakerStateUpdate) AddFailureCount(v int) *BreakerStateUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *BreakerStateUpdate) SetSuccessCount(v int) *BreakerStateUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *BreakerStateUpdate) SetNillableSuccessCount(v *int) *BreakerStateUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *BreakerStateUpdate) AddSuccessCount(v int) *BreakerStateUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *BreakerStateUpdate) SetOpenedAt(v time.Time) *BreakerStateUpdate {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *BreakerStateUpdate) SetNillableOpenedAt(v *time.Time) *BreakerStateUpdate {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *BreakerStateUpdate) ClearOpenedAt() *BreakerStateUpdate {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BreakerStateUpdate) SetUpdatedAt(v time.Time) *BreakerStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BreakerStateMutation object of the builder.
func (_u *BreakerStateUpdate) Mutation() *BreakerStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BreakerStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BreakerStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BreakerStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BreakerStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BreakerStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := breakerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BreakerStateUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := breakerstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "BreakerState.state": %w`, err)}
		}
	}
	return nil
}

func (_u *BreakerStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(breakerstate.Table, breakerstate.Columns, sqlgraph.NewFieldSpec(breakerstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(breakerstate.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(breakerstate.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(breakerstate.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(breakerstate.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(breakerstate.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(breakerstate.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(breakerstate.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(breakerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{breakerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BreakerStateUpdateOne is the builder for updating a single BreakerState entity.
type BreakerStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BreakerStateMutation
}

// SetState sets the "state" field.
func (_u *BreakerStateUpdateOne) SetState(v breakerstate.State) *BreakerStateUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BreakerStateUpdateOne) SetNillableState(v *breakerstate.State) *BreakerStateUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *BreakerStateUpdateOne) SetFailureCount(v int) *BreakerStateUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *BreakerStateUpdateOne) SetNillableFailureCount(v *int) *BreakerStateUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *BreakerStateUpdateOne) AddFailureCount(v int) *BreakerStateUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *BreakerStateUpdateOne) SetSuccessCount(v int) *BreakerStateUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *BreakerStateUpdateOne) SetNillableSuccessCount(v *int) *BreakerStateUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *BreakerStateUpdateOne) AddSuccessCount(v int) *BreakerStateUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *BreakerStateUpdateOne) SetOpenedAt(v time.Time) *BreakerStateUpdateOne {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *BreakerStateUpdateOne) SetNillableOpenedAt(v *time.Time) *BreakerStateUpdateOne {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *BreakerStateUpdateOne) ClearOpenedAt() *BreakerStateUpdateOne {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BreakerStateUpdateOne) SetUpdatedAt(v time.Time) *BreakerStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BreakerStateMutation object of the builder.
func (_u *BreakerStateUpdateOne) Mutation() *BreakerStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the BreakerStateUpdate builder.
func (_u *BreakerStateUpdateOne) Where(ps ...predicate.BreakerState) *BreakerStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BreakerStateUpdateOne) Select(field string, fields ...string) *BreakerStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BreakerState entity.
func (_u *BreakerStateUpdateOne) Save(ctx context.Context) (*BreakerState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BreakerStateUpdateOne) SaveX(ctx context.Context) *BreakerState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BreakerStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BreakerStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BreakerStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := breakerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BreakerStateUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := breakerstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "BreakerState.state": %w`, err)}
		}
	}
	return nil
}

func (_u *BreakerStateUpdateOne) sqlSave(ctx context.Context) (_node *BreakerState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(breakerstate.Table, breakerstate.Columns, sqlgraph.NewFieldSpec(breakerstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BreakerState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, breakerstate.FieldID)
		for _, f := range fields {
			if !breakerstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != breakerstate.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(breakerstate.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(breakerstate.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(breakerstate.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(breakerstate.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(breakerstate.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(breakerstate.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(breakerstate.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(breakerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BreakerState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{breakerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
