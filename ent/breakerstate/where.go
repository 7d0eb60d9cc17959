// Code generated by ent, DO NOT EDIT.

package breakerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLTE(FieldID, id))
}

// ToolID applies equality check predicate on the "tool_id" field. It's identical to ToolIDEQ.
func ToolID(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldToolID, v))
}

// FailureCount applies equality check predicate on the "failure_count" field. It's identical to FailureCountEQ.
func FailureCount(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldFailureCount, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldSuccessCount, v))
}

// OpenedAt applies equality check predicate on the "opened_at" field. It's identical to OpenedAtEQ.
func OpenedAt(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldOpenedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// ToolIDEQ applies the EQ predicate on the "tool_id" field.
func ToolIDEQ(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldToolID, v))
}

// ToolIDNEQ applies the NEQ predicate on the "tool_id" field.
func ToolIDNEQ(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNEQ(FieldToolID, v))
}

// ToolIDIn applies the In predicate on the "tool_id" field.
func ToolIDIn(vs ...string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldIn(FieldToolID, vs...))
}

// ToolIDNotIn applies the NotIn predicate on the "tool_id" field.
func ToolIDNotIn(vs ...string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNotIn(FieldToolID, vs...))
}

// ToolIDGT applies the GT predicate on the "tool_id" field.
func ToolIDGT(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGT(FieldToolID, v))
}

// ToolIDGTE applies the GTE predicate on the "tool_id" field.
func ToolIDGTE(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGTE(FieldToolID, v))
}

// ToolIDLT applies the LT predicate on the "tool_id" field.
func ToolIDLT(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLT(FieldToolID, v))
}

// ToolIDLTE applies the LTE predicate on the "tool_id" field.
func ToolIDLTE(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLTE(FieldToolID, v))
}

// ToolIDContains applies the Contains predicate on the "tool_id" field.
func ToolIDContains(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldContains(FieldToolID, v))
}

// ToolIDHasPrefix applies the HasPrefix predicate on the "tool_id" field.
func ToolIDHasPrefix(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldHasPrefix(FieldToolID, v))
}

// ToolIDHasSuffix applies the HasSuffix predicate on the "tool_id" field.
func ToolIDHasSuffix(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldHasSuffix(FieldToolID, v))
}

// ToolIDEqualFold applies the EqualFold predicate on the "tool_id" field.
func ToolIDEqualFold(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEqualFold(FieldToolID, v))
}

// ToolIDContainsFold applies the ContainsFold predicate on the "tool_id" field.
func ToolIDContainsFold(v string) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldContainsFold(FieldToolID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNotIn(FieldState, vs...))
}

// FailureCountEQ applies the EQ predicate on the "failure_count" field.
func FailureCountEQ(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldFailureCount, v))
}

// FailureCountNEQ applies the NEQ predicate on the "failure_count" field.
func FailureCountNEQ(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNEQ(FieldFailureCount, v))
}

// FailureCountIn applies the In predicate on the "failure_count" field.
func FailureCountIn(vs ...int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldIn(FieldFailureCount, vs...))
}

// FailureCountNotIn applies the NotIn predicate on the "failure_count" field.
func FailureCountNotIn(vs ...int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNotIn(FieldFailureCount, vs...))
}

// FailureCountGT applies the GT predicate on the "failure_count" field.
func FailureCountGT(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGT(FieldFailureCount, v))
}

// FailureCountGTE applies the GTE predicate on the "failure_count" field.
func FailureCountGTE(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGTE(FieldFailureCount, v))
}

// FailureCountLT applies the LT predicate on the "failure_count" field.
func FailureCountLT(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLT(FieldFailureCount, v))
}

// FailureCountLTE applies the LTE predicate on the "failure_count" field.
func FailureCountLTE(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLTE(FieldFailureCount, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLTE(FieldSuccessCount, v))
}

// OpenedAtEQ applies the EQ predicate on the "opened_at" field.
func OpenedAtEQ(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldOpenedAt, v))
}

// OpenedAtNEQ applies the NEQ predicate on the "opened_at" field.
func OpenedAtNEQ(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNEQ(FieldOpenedAt, v))
}

// OpenedAtIn applies the In predicate on the "opened_at" field.
func OpenedAtIn(vs ...time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldIn(FieldOpenedAt, vs...))
}

// OpenedAtNotIn applies the NotIn predicate on the "opened_at" field.
func OpenedAtNotIn(vs ...time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNotIn(FieldOpenedAt, vs...))
}

// OpenedAtGT applies the GT predicate on the "opened_at" field.
func OpenedAtGT(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGT(FieldOpenedAt, v))
}

// OpenedAtGTE applies the GTE predicate on the "opened_at" field.
func OpenedAtGTE(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGTE(FieldOpenedAt, v))
}

// OpenedAtLT applies the LT predicate on the "opened_at" field.
func OpenedAtLT(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLT(FieldOpenedAt, v))
}

// OpenedAtLTE applies the LTE predicate on the "opened_at" field.
func OpenedAtLTE(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLTE(FieldOpenedAt, v))
}

// OpenedAtIsNil applies the IsNil predicate on the "opened_at" field.
func OpenedAtIsNil() predicate.BreakerState {
	return predicate.BreakerState(sql.FieldIsNull(FieldOpenedAt))
}

// OpenedAtNotNil applies the NotNil predicate on the "opened_at" field.
func OpenedAtNotNil() predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNotNull(FieldOpenedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BreakerState {
	return predicate.BreakerState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BreakerState) predicate.BreakerState {
	return predicate.BreakerState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BreakerState) predicate.BreakerState {
	return predicate.BreakerState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BreakerState) predicate.BreakerState {
	return predicate.BreakerState(sql.NotPredicates(p))
}
