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
	"github.com/outreachkit/prospector/ent/predicate"
	"github.com/outreachkit/prospector/ent/toolinvocation"
)

// ToolInvocationUpdate is the builder for updating ToolInvocation entities.
type ToolInvocationUpdate struct {
	config
	hooks    []Hook
	mutation *ToolInvocationMutation
}

// Where appends a list predicates to the ToolInvocationUpdate builder.
func (_u *ToolInvocationUpdate) Where(ps ...predicate.ToolInvocation) *ToolInvocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToolID sets the "tool_id" field.
func (_u *ToolInvocationUpdate) SetToolID(v string) *ToolInvocationUpdate {
	_u.mutation.SetToolID(v)
	return _u
}

// SetNillableToolID sets the "tool_id" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableToolID(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetToolID(*v)
	}
	return _u
}

// SetOp sets the "op" field.
func (_u *ToolInvocationUpdate) SetOp(v string) *ToolInvocationUpdate {
	_u.mutation.SetOpField(v)
	return _u
}

// SetNillableOp sets the "op" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableOp(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetOp(*v)
	}
	return _u
}

// SetParamsHash sets the "params_hash" field.
func (_u *ToolInvocationUpdate) SetParamsHash(v string) *ToolInvocationUpdate {
	_u.mutation.SetParamsHash(v)
	return _u
}

// SetNillableParamsHash sets the "params_hash" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableParamsHash(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetParamsHash(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ToolInvocationUpdate) SetTier(v toolinvocation.Tier) *ToolInvocationUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableTier(v *toolinvocation.Tier) *ToolInvocationUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ToolInvocationUpdate) SetOutcome(v toolinvocation.Outcome) *ToolInvocationUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableOutcome(v *toolinvocation.Outcome) *ToolInvocationUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolInvocationUpdate) SetResult(v map[string]interface{}) *ToolInvocationUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ToolInvocationUpdate) ClearResult() *ToolInvocationUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolInvocationUpdate) SetErrorMessage(v string) *ToolInvocationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableErrorMessage(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolInvocationUpdate) ClearErrorMessage() *ToolInvocationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ToolInvocationUpdate) SetCostUsd(v float64) *ToolInvocationUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableCostUsd(v *float64) *ToolInvocationUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ToolInvocationUpdate) AddCostUsd(v float64) *ToolInvocationUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ToolInvocationUpdate) SetLatencyMs(v int) *ToolInvocationUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableLatencyMs(v *int) *ToolInvocationUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ToolInvocationUpdate) AddLatencyMs(v int) *ToolInvocationUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *ToolInvocationUpdate) ClearLatencyMs() *ToolInvocationUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetRequestedAt sets the "requested_at" field.
func (_u *ToolInvocationUpdate) SetRequestedAt(v time.Time) *ToolInvocationUpdate {
	_u.mutation.SetRequestedAt(v)
	return _u
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableRequestedAt(v *time.Time) *ToolInvocationUpdate {
	if v != nil {
		_u.SetRequestedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ToolInvocationUpdate) SetCompletedAt(v time.Time) *ToolInvocationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableCompletedAt(v *time.Time) *ToolInvocationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ToolInvocationUpdate) ClearCompletedAt() *ToolInvocationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_u *ToolInvocationUpdate) Mutation() *ToolInvocationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolInvocationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInvocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolInvocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInvocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolInvocationUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := toolinvocation.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := toolinvocation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.outcome": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolInvocation.run"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolInvocation.task"`)
	}
	return nil
}

func (_u *ToolInvocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolinvocation.Table, toolinvocation.Columns, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolID(); ok {
		_spec.SetField(toolinvocation.FieldToolID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetOp(); ok {
		_spec.SetField(toolinvocation.FieldOp, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParamsHash(); ok {
		_spec.SetField(toolinvocation.FieldParamsHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(toolinvocation.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(toolinvocation.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolinvocation.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolinvocation.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolinvocation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolinvocation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(toolinvocation.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(toolinvocation.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(toolinvocation.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.RequestedAt(); ok {
		_spec.SetField(toolinvocation.FieldRequestedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(toolinvocation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(toolinvocation.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolInvocationUpdateOne is the builder for updating a single ToolInvocation entity.
type ToolInvocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolInvocationMutation
}

// SetToolID sets the "tool_id" field.
func (_u *ToolInvocationUpdateOne) SetToolID(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetToolID(v)
	return _u
}

// SetNillableToolID sets the "tool_id" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableToolID(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetToolID(*v)
	}
	return _u
}

// SetOp sets the "op" field.
func (_u *ToolInvocationUpdateOne) SetOp(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetOpField(v)
	return _u
}

// SetNillableOp sets the "op" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableOp(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetOp(*v)
	}
	return _u
}

// SetParamsHash sets the "params_hash" field.
func (_u *ToolInvocationUpdateOne) SetParamsHash(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetParamsHash(v)
	return _u
}

// SetNillableParamsHash sets the "params_hash" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableParamsHash(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetParamsHash(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *ToolInvocationUpdateOne) SetTier(v toolinvocation.Tier) *ToolInvocationUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableTier(v *toolinvocation.Tier) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ToolInvocationUpdateOne) SetOutcome(v toolinvocation.Outcome) *ToolInvocationUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableOutcome(v *toolinvocation.Outcome) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *ToolInvocationUpdateOne) SetResult(v map[string]interface{}) *ToolInvocationUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ToolInvocationUpdateOne) ClearResult() *ToolInvocationUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ToolInvocationUpdateOne) SetErrorMessage(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableErrorMessage(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ToolInvocationUpdateOne) ClearErrorMessage() *ToolInvocationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ToolInvocationUpdateOne) SetCostUsd(v float64) *ToolInvocationUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableCostUsd(v *float64) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ToolInvocationUpdateOne) AddCostUsd(v float64) *ToolInvocationUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ToolInvocationUpdateOne) SetLatencyMs(v int) *ToolInvocationUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableLatencyMs(v *int) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ToolInvocationUpdateOne) AddLatencyMs(v int) *ToolInvocationUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *ToolInvocationUpdateOne) ClearLatencyMs() *ToolInvocationUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetRequestedAt sets the "requested_at" field.
func (_u *ToolInvocationUpdateOne) SetRequestedAt(v time.Time) *ToolInvocationUpdateOne {
	_u.mutation.SetRequestedAt(v)
	return _u
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableRequestedAt(v *time.Time) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetRequestedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ToolInvocationUpdateOne) SetCompletedAt(v time.Time) *ToolInvocationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableCompletedAt(v *time.Time) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ToolInvocationUpdateOne) ClearCompletedAt() *ToolInvocationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_u *ToolInvocationUpdateOne) Mutation() *ToolInvocationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolInvocationUpdate builder.
func (_u *ToolInvocationUpdateOne) Where(ps ...predicate.ToolInvocation) *ToolInvocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolInvocationUpdateOne) Select(field string, fields ...string) *ToolInvocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolInvocation entity.
func (_u *ToolInvocationUpdateOne) Save(ctx context.Context) (*ToolInvocation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInvocationUpdateOne) SaveX(ctx context.Context) *ToolInvocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolInvocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInvocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolInvocationUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := toolinvocation.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := toolinvocation.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.outcome": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolInvocation.run"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolInvocation.task"`)
	}
	return nil
}

func (_u *ToolInvocationUpdateOne) sqlSave(ctx context.Context) (_node *ToolInvocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolinvocation.Table, toolinvocation.Columns, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolInvocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolinvocation.FieldID)
		for _, f := range fields {
			if !toolinvocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolinvocation.FieldID {
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
	if value, ok := _u.mutation.ToolID(); ok {
		_spec.SetField(toolinvocation.FieldToolID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetOp(); ok {
		_spec.SetField(toolinvocation.FieldOp, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParamsHash(); ok {
		_spec.SetField(toolinvocation.FieldParamsHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(toolinvocation.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(toolinvocation.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(toolinvocation.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(toolinvocation.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(toolinvocation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolinvocation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(toolinvocation.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(toolinvocation.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(toolinvocation.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.RequestedAt(); ok {
		_spec.SetField(toolinvocation.FieldRequestedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(toolinvocation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(toolinvocation.FieldCompletedAt, field.TypeTime)
	}
	_node = &ToolInvocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
