// Code generated by ent, DO NOT EDIT.

package budgetentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/outreachkit/prospector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldRunID, v))
}

// ToolID applies equality check predicate on the "tool_id" field. It's identical to ToolIDEQ.
func ToolID(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldToolID, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldPhase, v))
}

// AmountUsd applies equality check predicate on the "amount_usd" field. It's identical to AmountUsdEQ.
func AmountUsd(v float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldAmountUsd, v))
}

// InvocationID applies equality check predicate on the "invocation_id" field. It's identical to InvocationIDEQ.
func InvocationID(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldInvocationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldContainsFold(FieldRunID, v))
}

// ToolIDEQ applies the EQ predicate on the "tool_id" field.
func ToolIDEQ(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldToolID, v))
}

// ToolIDNEQ applies the NEQ predicate on the "tool_id" field.
func ToolIDNEQ(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNEQ(FieldToolID, v))
}

// ToolIDIn applies the In predicate on the "tool_id" field.
func ToolIDIn(vs ...string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldIn(FieldToolID, vs...))
}

// ToolIDNotIn applies the NotIn predicate on the "tool_id" field.
func ToolIDNotIn(vs ...string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNotIn(FieldToolID, vs...))
}

// ToolIDGT applies the GT predicate on the "tool_id" field.
func ToolIDGT(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGT(FieldToolID, v))
}

// ToolIDGTE applies the GTE predicate on the "tool_id" field.
func ToolIDGTE(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGTE(FieldToolID, v))
}

// ToolIDLT applies the LT predicate on the "tool_id" field.
func ToolIDLT(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLT(FieldToolID, v))
}

// ToolIDLTE applies the LTE predicate on the "tool_id" field.
func ToolIDLTE(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLTE(FieldToolID, v))
}

// ToolIDContains applies the Contains predicate on the "tool_id" field.
func ToolIDContains(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldContains(FieldToolID, v))
}

// ToolIDHasPrefix applies the HasPrefix predicate on the "tool_id" field.
func ToolIDHasPrefix(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldHasPrefix(FieldToolID, v))
}

// ToolIDHasSuffix applies the HasSuffix predicate on the "tool_id" field.
func ToolIDHasSuffix(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldHasSuffix(FieldToolID, v))
}

// ToolIDEqualFold applies the EqualFold predicate on the "tool_id" field.
func ToolIDEqualFold(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEqualFold(FieldToolID, v))
}

// ToolIDContainsFold applies the ContainsFold predicate on the "tool_id" field.
func ToolIDContainsFold(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldContainsFold(FieldToolID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v int) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLTE(FieldPhase, v))
}

// AmountUsdEQ applies the EQ predicate on the "amount_usd" field.
func AmountUsdEQ(v float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldAmountUsd, v))
}

// AmountUsdNEQ applies the NEQ predicate on the "amount_usd" field.
func AmountUsdNEQ(v float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNEQ(FieldAmountUsd, v))
}

// AmountUsdIn applies the In predicate on the "amount_usd" field.
func AmountUsdIn(vs ...float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldIn(FieldAmountUsd, vs...))
}

// AmountUsdNotIn applies the NotIn predicate on the "amount_usd" field.
func AmountUsdNotIn(vs ...float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNotIn(FieldAmountUsd, vs...))
}

// AmountUsdGT applies the GT predicate on the "amount_usd" field.
func AmountUsdGT(v float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGT(FieldAmountUsd, v))
}

// AmountUsdGTE applies the GTE predicate on the "amount_usd" field.
func AmountUsdGTE(v float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGTE(FieldAmountUsd, v))
}

// AmountUsdLT applies the LT predicate on the "amount_usd" field.
func AmountUsdLT(v float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLT(FieldAmountUsd, v))
}

// AmountUsdLTE applies the LTE predicate on the "amount_usd" field.
func AmountUsdLTE(v float64) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLTE(FieldAmountUsd, v))
}

// InvocationIDEQ applies the EQ predicate on the "invocation_id" field.
func InvocationIDEQ(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldInvocationID, v))
}

// InvocationIDNEQ applies the NEQ predicate on the "invocation_id" field.
func InvocationIDNEQ(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNEQ(FieldInvocationID, v))
}

// InvocationIDIn applies the In predicate on the "invocation_id" field.
func InvocationIDIn(vs ...string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldIn(FieldInvocationID, vs...))
}

// InvocationIDNotIn applies the NotIn predicate on the "invocation_id" field.
func InvocationIDNotIn(vs ...string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNotIn(FieldInvocationID, vs...))
}

// InvocationIDGT applies the GT predicate on the "invocation_id" field.
func InvocationIDGT(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGT(FieldInvocationID, v))
}

// InvocationIDGTE applies the GTE predicate on the "invocation_id" field.
func InvocationIDGTE(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGTE(FieldInvocationID, v))
}

// InvocationIDLT applies the LT predicate on the "invocation_id" field.
func InvocationIDLT(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLT(FieldInvocationID, v))
}

// InvocationIDLTE applies the LTE predicate on the "invocation_id" field.
func InvocationIDLTE(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLTE(FieldInvocationID, v))
}

// InvocationIDContains applies the Contains predicate on the "invocation_id" field.
func InvocationIDContains(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldContains(FieldInvocationID, v))
}

// InvocationIDHasPrefix applies the HasPrefix predicate on the "invocation_id" field.
func InvocationIDHasPrefix(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldHasPrefix(FieldInvocationID, v))
}

// InvocationIDHasSuffix applies the HasSuffix predicate on the "invocation_id" field.
func InvocationIDHasSuffix(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldHasSuffix(FieldInvocationID, v))
}

// InvocationIDIsNil applies the IsNil predicate on the "invocation_id" field.
func InvocationIDIsNil() predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldIsNull(FieldInvocationID))
}

// InvocationIDNotNil applies the NotNil predicate on the "invocation_id" field.
func InvocationIDNotNil() predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNotNull(FieldInvocationID))
}

// InvocationIDEqualFold applies the EqualFold predicate on the "invocation_id" field.
func InvocationIDEqualFold(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEqualFold(FieldInvocationID, v))
}

// InvocationIDContainsFold applies the ContainsFold predicate on the "invocation_id" field.
func InvocationIDContainsFold(v string) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldContainsFold(FieldInvocationID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.BudgetEntry {
	return predicate.BudgetEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.WorkflowRun) predicate.BudgetEntry {
	return predicate.BudgetEntry(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BudgetEntry) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BudgetEntry) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BudgetEntry) predicate.BudgetEntry {
	return predicate.BudgetEntry(sql.NotPredicates(p))
}
