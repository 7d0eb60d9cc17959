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
	"github.com/outreachkit/prospector/ent/humangate"
	"github.com/outreachkit/prospector/ent/predicate"
)

// HumanGateUpdate is the builder for updating HumanGate entities.
type HumanGateUpdate struct {
	config
	hooks    []Hook
	mutation *HumanGateMutation
}

// Where appends a list predicates to the HumanGateUpdate builder.
func (_u *HumanGateUpdate) Where(ps ...predicate.HumanGate) *HumanGateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *HumanGateUpdate) SetPhase(v int) *HumanGateUpdate {
	_u.mutation.ResetPhase()
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillablePhase(v *int) *HumanGateUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// AddPhase adds value to the "phase" field.
func (_u *HumanGateUpdate) AddPhase(v int) *HumanGateUpdate {
	_u.mutation.AddPhase(v)
	return _u
}

// SetArtifactRef sets the "artifact_ref" field.
func (_u *HumanGateUpdate) SetArtifactRef(v string) *HumanGateUpdate {
	_u.mutation.SetArtifactRef(v)
	return _u
}

// SetNillableArtifactRef sets the "artifact_ref" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableArtifactRef(v *string) *HumanGateUpdate {
	if v != nil {
		_u.SetArtifactRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HumanGateUpdate) SetStatus(v humangate.Status) *HumanGateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableStatus(v *humangate.Status) *HumanGateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *HumanGateUpdate) SetDeadline(v time.Time) *HumanGateUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableDeadline(v *time.Time) *HumanGateUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// SetApproverID sets the "approver_id" field.
func (_u *HumanGateUpdate) SetApproverID(v string) *HumanGateUpdate {
	_u.mutation.SetApproverID(v)
	return _u
}

// SetNillableApproverID sets the "approver_id" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableApproverID(v *string) *HumanGateUpdate {
	if v != nil {
		_u.SetApproverID(*v)
	}
	return _u
}

// ClearApproverID clears the value of the "approver_id" field.
func (_u *HumanGateUpdate) ClearApproverID() *HumanGateUpdate {
	_u.mutation.ClearApproverID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *HumanGateUpdate) SetNotes(v string) *HumanGateUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableNotes(v *string) *HumanGateUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *HumanGateUpdate) ClearNotes() *HumanGateUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *HumanGateUpdate) SetDecidedAt(v time.Time) *HumanGateUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableDecidedAt(v *time.Time) *HumanGateUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *HumanGateUpdate) ClearDecidedAt() *HumanGateUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HumanGateUpdate) SetCreatedAt(v time.Time) *HumanGateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HumanGateUpdate) SetNillableCreatedAt(v *time.Time) *HumanGateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the HumanGateMutation object of the builder.
func (_u *HumanGateUpdate) Mutation() *HumanGateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HumanGateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HumanGateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HumanGateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HumanGateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HumanGateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := humangate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HumanGate.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HumanGate.run"`)
	}
	return nil
}

func (_u *HumanGateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(humangate.Table, humangate.Columns, sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(humangate.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhase(); ok {
		_spec.AddField(humangate.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArtifactRef(); ok {
		_spec.SetField(humangate.FieldArtifactRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(humangate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(humangate.FieldDeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ApproverID(); ok {
		_spec.SetField(humangate.FieldApproverID, field.TypeString, value)
	}
	if _u.mutation.ApproverIDCleared() {
		_spec.ClearField(humangate.FieldApproverID, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(humangate.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(humangate.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(humangate.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(humangate.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(humangate.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{humangate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HumanGateUpdateOne is the builder for updating a single HumanGate entity.
type HumanGateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HumanGateMutation
}

// SetPhase sets the "phase" field.
func (_u *HumanGateUpdateOne) SetPhase(v int) *HumanGateUpdateOne {
	_u.mutation.ResetPhase()
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillablePhase(v *int) *HumanGateUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// AddPhase adds value to the "phase" field.
func (_u *HumanGateUpdateOne) AddPhase(v int) *HumanGateUpdateOne {
	_u.mutation.AddPhase(v)
	return _u
}

// SetArtifactRef sets the "artifact_ref" field.
func (_u *HumanGateUpdateOne) SetArtifactRef(v string) *HumanGateUpdateOne {
	_u.mutation.SetArtifactRef(v)
	return _u
}

// SetNillableArtifactRef sets the "artifact_ref" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableArtifactRef(v *string) *HumanGateUpdateOne {
	if v != nil {
		_u.SetArtifactRef(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HumanGateUpdateOne) SetStatus(v humangate.Status) *HumanGateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableStatus(v *humangate.Status) *HumanGateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *HumanGateUpdateOne) SetDeadline(v time.Time) *HumanGateUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableDeadline(v *time.Time) *HumanGateUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// SetApproverID sets the "approver_id" field.
func (_u *HumanGateUpdateOne) SetApproverID(v string) *HumanGateUpdateOne {
	_u.mutation.SetApproverID(v)
	return _u
}

// SetNillableApproverID sets the "approver_id" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableApproverID(v *string) *HumanGateUpdateOne {
	if v != nil {
		_u.SetApproverID(*v)
	}
	return _u
}

// ClearApproverID clears the value of the "approver_id" field.
func (_u *HumanGateUpdateOne) ClearApproverID() *HumanGateUpdateOne {
	_u.mutation.ClearApproverID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *HumanGateUpdateOne) SetNotes(v string) *HumanGateUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableNotes(v *string) *HumanGateUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *HumanGateUpdateOne) ClearNotes() *HumanGateUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *HumanGateUpdateOne) SetDecidedAt(v time.Time) *HumanGateUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableDecidedAt(v *time.Time) *HumanGateUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *HumanGateUpdateOne) ClearDecidedAt() *HumanGateUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HumanGateUpdateOne) SetCreatedAt(v time.Time) *HumanGateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HumanGateUpdateOne) SetNillableCreatedAt(v *time.Time) *HumanGateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the HumanGateMutation object of the builder.
func (_u *HumanGateUpdateOne) Mutation() *HumanGateMutation {
	return _u.mutation
}

// Where appends a list predicates to the HumanGateUpdate builder.
func (_u *HumanGateUpdateOne) Where(ps ...predicate.HumanGate) *HumanGateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HumanGateUpdateOne) Select(field string, fields ...string) *HumanGateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HumanGate entity.
func (_u *HumanGateUpdateOne) Save(ctx context.Context) (*HumanGate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HumanGateUpdateOne) SaveX(ctx context.Context) *HumanGate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HumanGateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HumanGateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HumanGateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := humangate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "HumanGate.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HumanGate.run"`)
	}
	return nil
}

func (_u *HumanGateUpdateOne) sqlSave(ctx context.Context) (_node *HumanGate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(humangate.Table, humangate.Columns, sqlgraph.NewFieldSpec(humangate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HumanGate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, humangate.FieldID)
		for _, f := range fields {
			if !humangate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != humangate.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(humangate.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhase(); ok {
		_spec.AddField(humangate.FieldPhase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ArtifactRef(); ok {
		_spec.SetField(humangate.FieldArtifactRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(humangate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(humangate.FieldDeadline, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ApproverID(); ok {
		_spec.SetField(humangate.FieldApproverID, field.TypeString, value)
	}
	if _u.mutation.ApproverIDCleared() {
		_spec.ClearField(humangate.FieldApproverID, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(humangate.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(humangate.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(humangate.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(humangate.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(humangate.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &HumanGate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{humangate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
