// Code generated by ent, DO NOT EDIT.

package toolinvocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/outreachkit/prospector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldRunID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldTaskID, v))
}

// ToolID applies equality check predicate on the "tool_id" field. It's identical to ToolIDEQ.
func ToolID(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldToolID, v))
}

// Op applies equality check predicate on the "op" field. It's identical to OpEQ.
func Op(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldOp, v))
}

// ParamsHash applies equality check predicate on the "params_hash" field. It's identical to ParamsHashEQ.
func ParamsHash(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldParamsHash, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldErrorMessage, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCostUsd, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldLatencyMs, v))
}

// RequestedAt applies equality check predicate on the "requested_at" field. It's identical to RequestedAtEQ.
func RequestedAt(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldRequestedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCompletedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldRunID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldTaskID, v))
}

// ToolIDEQ applies the EQ predicate on the "tool_id" field.
func ToolIDEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldToolID, v))
}

// ToolIDNEQ applies the NEQ predicate on the "tool_id" field.
func ToolIDNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldToolID, v))
}

// ToolIDIn applies the In predicate on the "tool_id" field.
func ToolIDIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldToolID, vs...))
}

// ToolIDNotIn applies the NotIn predicate on the "tool_id" field.
func ToolIDNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldToolID, vs...))
}

// ToolIDGT applies the GT predicate on the "tool_id" field.
func ToolIDGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldToolID, v))
}

// ToolIDGTE applies the GTE predicate on the "tool_id" field.
func ToolIDGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldToolID, v))
}

// ToolIDLT applies the LT predicate on the "tool_id" field.
func ToolIDLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldToolID, v))
}

// ToolIDLTE applies the LTE predicate on the "tool_id" field.
func ToolIDLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldToolID, v))
}

// ToolIDContains applies the Contains predicate on the "tool_id" field.
func ToolIDContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldToolID, v))
}

// ToolIDHasPrefix applies the HasPrefix predicate on the "tool_id" field.
func ToolIDHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldToolID, v))
}

// ToolIDHasSuffix applies the HasSuffix predicate on the "tool_id" field.
func ToolIDHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldToolID, v))
}

// ToolIDEqualFold applies the EqualFold predicate on the "tool_id" field.
func ToolIDEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldToolID, v))
}

// ToolIDContainsFold applies the ContainsFold predicate on the "tool_id" field.
func ToolIDContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldToolID, v))
}

// OpEQ applies the EQ predicate on the "op" field.
func OpEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldOp, v))
}

// OpNEQ applies the NEQ predicate on the "op" field.
func OpNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldOp, v))
}

// OpIn applies the In predicate on the "op" field.
func OpIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldOp, vs...))
}

// OpNotIn applies the NotIn predicate on the "op" field.
func OpNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldOp, vs...))
}

// OpGT applies the GT predicate on the "op" field.
func OpGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldOp, v))
}

// OpGTE applies the GTE predicate on the "op" field.
func OpGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldOp, v))
}

// OpLT applies the LT predicate on the "op" field.
func OpLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldOp, v))
}

// OpLTE applies the LTE predicate on the "op" field.
func OpLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldOp, v))
}

// OpContains applies the Contains predicate on the "op" field.
func OpContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldOp, v))
}

// OpHasPrefix applies the HasPrefix predicate on the "op" field.
func OpHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldOp, v))
}

// OpHasSuffix applies the HasSuffix predicate on the "op" field.
func OpHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldOp, v))
}

// OpEqualFold applies the EqualFold predicate on the "op" field.
func OpEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldOp, v))
}

// OpContainsFold applies the ContainsFold predicate on the "op" field.
func OpContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldOp, v))
}

// ParamsHashEQ applies the EQ predicate on the "params_hash" field.
func ParamsHashEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldParamsHash, v))
}

// ParamsHashNEQ applies the NEQ predicate on the "params_hash" field.
func ParamsHashNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldParamsHash, v))
}

// ParamsHashIn applies the In predicate on the "params_hash" field.
func ParamsHashIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldParamsHash, vs...))
}

// ParamsHashNotIn applies the NotIn predicate on the "params_hash" field.
func ParamsHashNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldParamsHash, vs...))
}

// ParamsHashGT applies the GT predicate on the "params_hash" field.
func ParamsHashGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldParamsHash, v))
}

// ParamsHashGTE applies the GTE predicate on the "params_hash" field.
func ParamsHashGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldParamsHash, v))
}

// ParamsHashLT applies the LT predicate on the "params_hash" field.
func ParamsHashLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldParamsHash, v))
}

// ParamsHashLTE applies the LTE predicate on the "params_hash" field.
func ParamsHashLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldParamsHash, v))
}

// ParamsHashContains applies the Contains predicate on the "params_hash" field.
func ParamsHashContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldParamsHash, v))
}

// ParamsHashHasPrefix applies the HasPrefix predicate on the "params_hash" field.
func ParamsHashHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldParamsHash, v))
}

// ParamsHashHasSuffix applies the HasSuffix predicate on the "params_hash" field.
func ParamsHashHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldParamsHash, v))
}

// ParamsHashEqualFold applies the EqualFold predicate on the "params_hash" field.
func ParamsHashEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldParamsHash, v))
}

// ParamsHashContainsFold applies the ContainsFold predicate on the "params_hash" field.
func ParamsHashContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldParamsHash, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldTier, vs...))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldOutcome, vs...))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldResult))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldCostUsd, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldLatencyMs, v))
}

// LatencyMsIsNil applies the IsNil predicate on the "latency_ms" field.
func LatencyMsIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldLatencyMs))
}

// LatencyMsNotNil applies the NotNil predicate on the "latency_ms" field.
func LatencyMsNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldLatencyMs))
}

// RequestedAtEQ applies the EQ predicate on the "requested_at" field.
func RequestedAtEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldRequestedAt, v))
}

// RequestedAtNEQ applies the NEQ predicate on the "requested_at" field.
func RequestedAtNEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldRequestedAt, v))
}

// RequestedAtIn applies the In predicate on the "requested_at" field.
func RequestedAtIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldRequestedAt, vs...))
}

// RequestedAtNotIn applies the NotIn predicate on the "requested_at" field.
func RequestedAtNotIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldRequestedAt, vs...))
}

// RequestedAtGT applies the GT predicate on the "requested_at" field.
func RequestedAtGT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldRequestedAt, v))
}

// RequestedAtGTE applies the GTE predicate on the "requested_at" field.
func RequestedAtGTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldRequestedAt, v))
}

// RequestedAtLT applies the LT predicate on the "requested_at" field.
func RequestedAtLT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldRequestedAt, v))
}

// RequestedAtLTE applies the LTE predicate on the "requested_at" field.
func RequestedAtLTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldRequestedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldCompletedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.ToolInvocation {
	return predicate.ToolInvocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.WorkflowRun) predicate.ToolInvocation {
	return predicate.ToolInvocation(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.ToolInvocation {
	return predicate.ToolInvocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.AgentTask) predicate.ToolInvocation {
	return predicate.ToolInvocation(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.NotPredicates(p))
}
