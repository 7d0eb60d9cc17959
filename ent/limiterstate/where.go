// Code generated by ent, DO NOT EDIT.

package limiterstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/outreachkit/prospector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLTE(FieldID, id))
}

// ToolID applies equality check predicate on the "tool_id" field. It's identical to ToolIDEQ.
func ToolID(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldToolID, v))
}

// Tokens applies equality check predicate on the "tokens" field. It's identical to TokensEQ.
func Tokens(v float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldTokens, v))
}

// LastRefillAt applies equality check predicate on the "last_refill_at" field. It's identical to LastRefillAtEQ.
func LastRefillAt(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldLastRefillAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldUpdatedAt, v))
}

// ToolIDEQ applies the EQ predicate on the "tool_id" field.
func ToolIDEQ(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldToolID, v))
}

// ToolIDNEQ applies the NEQ predicate on the "tool_id" field.
func ToolIDNEQ(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNEQ(FieldToolID, v))
}

// ToolIDIn applies the In predicate on the "tool_id" field.
func ToolIDIn(vs ...string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldIn(FieldToolID, vs...))
}

// ToolIDNotIn applies the NotIn predicate on the "tool_id" field.
func ToolIDNotIn(vs ...string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNotIn(FieldToolID, vs...))
}

// ToolIDGT applies the GT predicate on the "tool_id" field.
func ToolIDGT(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGT(FieldToolID, v))
}

// ToolIDGTE applies the GTE predicate on the "tool_id" field.
func ToolIDGTE(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGTE(FieldToolID, v))
}

// ToolIDLT applies the LT predicate on the "tool_id" field.
func ToolIDLT(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLT(FieldToolID, v))
}

// ToolIDLTE applies the LTE predicate on the "tool_id" field.
func ToolIDLTE(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLTE(FieldToolID, v))
}

// ToolIDContains applies the Contains predicate on the "tool_id" field.
func ToolIDContains(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldContains(FieldToolID, v))
}

// ToolIDHasPrefix applies the HasPrefix predicate on the "tool_id" field.
func ToolIDHasPrefix(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldHasPrefix(FieldToolID, v))
}

// ToolIDHasSuffix applies the HasSuffix predicate on the "tool_id" field.
func ToolIDHasSuffix(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldHasSuffix(FieldToolID, v))
}

// ToolIDEqualFold applies the EqualFold predicate on the "tool_id" field.
func ToolIDEqualFold(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEqualFold(FieldToolID, v))
}

// ToolIDContainsFold applies the ContainsFold predicate on the "tool_id" field.
func ToolIDContainsFold(v string) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldContainsFold(FieldToolID, v))
}

// TokensEQ applies the EQ predicate on the "tokens" field.
func TokensEQ(v float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldTokens, v))
}

// TokensNEQ applies the NEQ predicate on the "tokens" field.
func TokensNEQ(v float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNEQ(FieldTokens, v))
}

// TokensIn applies the In predicate on the "tokens" field.
func TokensIn(vs ...float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldIn(FieldTokens, vs...))
}

// TokensNotIn applies the NotIn predicate on the "tokens" field.
func TokensNotIn(vs ...float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNotIn(FieldTokens, vs...))
}

// TokensGT applies the GT predicate on the "tokens" field.
func TokensGT(v float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGT(FieldTokens, v))
}

// TokensGTE applies the GTE predicate on the "tokens" field.
func TokensGTE(v float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGTE(FieldTokens, v))
}

// TokensLT applies the LT predicate on the "tokens" field.
func TokensLT(v float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLT(FieldTokens, v))
}

// TokensLTE applies the LTE predicate on the "tokens" field.
func TokensLTE(v float64) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLTE(FieldTokens, v))
}

// LastRefillAtEQ applies the EQ predicate on the "last_refill_at" field.
func LastRefillAtEQ(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldLastRefillAt, v))
}

// LastRefillAtNEQ applies the NEQ predicate on the "last_refill_at" field.
func LastRefillAtNEQ(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNEQ(FieldLastRefillAt, v))
}

// LastRefillAtIn applies the In predicate on the "last_refill_at" field.
func LastRefillAtIn(vs ...time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldIn(FieldLastRefillAt, vs...))
}

// LastRefillAtNotIn applies the NotIn predicate on the "last_refill_at" field.
func LastRefillAtNotIn(vs ...time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNotIn(FieldLastRefillAt, vs...))
}

// LastRefillAtGT applies the GT predicate on the "last_refill_at" field.
func LastRefillAtGT(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGT(FieldLastRefillAt, v))
}

// LastRefillAtGTE applies the GTE predicate on the "last_refill_at" field.
func LastRefillAtGTE(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGTE(FieldLastRefillAt, v))
}

// LastRefillAtLT applies the LT predicate on the "last_refill_at" field.
func LastRefillAtLT(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLT(FieldLastRefillAt, v))
}

// LastRefillAtLTE applies the LTE predicate on the "last_refill_at" field.
func LastRefillAtLTE(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLTE(FieldLastRefillAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LimiterState {
	return predicate.LimiterState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LimiterState) predicate.LimiterState {
	return predicate.LimiterState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LimiterState) predicate.LimiterState {
	return predicate.LimiterState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LimiterState) predicate.LimiterState {
	return predicate.LimiterState(sql.NotPredicates(p))
}
