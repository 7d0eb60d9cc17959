// Code generated by ent, DO NOT EDIT.

package agenttask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/outreachkit/prospector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldRunID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldAgentName, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldPhase, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldAttempt, v))
}

// StepCount applies equality check predicate on the "step_count" field. It's identical to StepCountEQ.
func StepCount(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldStepCount, v))
}

// InputRef applies equality check predicate on the "input_ref" field. It's identical to InputRefEQ.
func InputRef(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldInputRef, v))
}

// OutputRef applies equality check predicate on the "output_ref" field. It's identical to OutputRefEQ.
func OutputRef(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldOutputRef, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldCompletedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContainsFold(FieldRunID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContainsFold(FieldAgentName, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldPhase, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldAttempt, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldState, vs...))
}

// StepCountEQ applies the EQ predicate on the "step_count" field.
func StepCountEQ(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldStepCount, v))
}

// StepCountNEQ applies the NEQ predicate on the "step_count" field.
func StepCountNEQ(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldStepCount, v))
}

// StepCountIn applies the In predicate on the "step_count" field.
func StepCountIn(vs ...int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldStepCount, vs...))
}

// StepCountNotIn applies the NotIn predicate on the "step_count" field.
func StepCountNotIn(vs ...int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldStepCount, vs...))
}

// StepCountGT applies the GT predicate on the "step_count" field.
func StepCountGT(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldStepCount, v))
}

// StepCountGTE applies the GTE predicate on the "step_count" field.
func StepCountGTE(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldStepCount, v))
}

// StepCountLT applies the LT predicate on the "step_count" field.
func StepCountLT(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldStepCount, v))
}

// StepCountLTE applies the LTE predicate on the "step_count" field.
func StepCountLTE(v int) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldStepCount, v))
}

// InputRefEQ applies the EQ predicate on the "input_ref" field.
func InputRefEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldInputRef, v))
}

// InputRefNEQ applies the NEQ predicate on the "input_ref" field.
func InputRefNEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldInputRef, v))
}

// InputRefIn applies the In predicate on the "input_ref" field.
func InputRefIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldInputRef, vs...))
}

// InputRefNotIn applies the NotIn predicate on the "input_ref" field.
func InputRefNotIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldInputRef, vs...))
}

// InputRefGT applies the GT predicate on the "input_ref" field.
func InputRefGT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldInputRef, v))
}

// InputRefGTE applies the GTE predicate on the "input_ref" field.
func InputRefGTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldInputRef, v))
}

// InputRefLT applies the LT predicate on the "input_ref" field.
func InputRefLT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldInputRef, v))
}

// InputRefLTE applies the LTE predicate on the "input_ref" field.
func InputRefLTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldInputRef, v))
}

// InputRefContains applies the Contains predicate on the "input_ref" field.
func InputRefContains(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContains(FieldInputRef, v))
}

// InputRefHasPrefix applies the HasPrefix predicate on the "input_ref" field.
func InputRefHasPrefix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasPrefix(FieldInputRef, v))
}

// InputRefHasSuffix applies the HasSuffix predicate on the "input_ref" field.
func InputRefHasSuffix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasSuffix(FieldInputRef, v))
}

// InputRefIsNil applies the IsNil predicate on the "input_ref" field.
func InputRefIsNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIsNull(FieldInputRef))
}

// InputRefNotNil applies the NotNil predicate on the "input_ref" field.
func InputRefNotNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotNull(FieldInputRef))
}

// InputRefEqualFold applies the EqualFold predicate on the "input_ref" field.
func InputRefEqualFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEqualFold(FieldInputRef, v))
}

// InputRefContainsFold applies the ContainsFold predicate on the "input_ref" field.
func InputRefContainsFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContainsFold(FieldInputRef, v))
}

// OutputRefEQ applies the EQ predicate on the "output_ref" field.
func OutputRefEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldOutputRef, v))
}

// OutputRefNEQ applies the NEQ predicate on the "output_ref" field.
func OutputRefNEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldOutputRef, v))
}

// OutputRefIn applies the In predicate on the "output_ref" field.
func OutputRefIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldOutputRef, vs...))
}

// OutputRefNotIn applies the NotIn predicate on the "output_ref" field.
func OutputRefNotIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldOutputRef, vs...))
}

// OutputRefGT applies the GT predicate on the "output_ref" field.
func OutputRefGT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldOutputRef, v))
}

// OutputRefGTE applies the GTE predicate on the "output_ref" field.
func OutputRefGTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldOutputRef, v))
}

// OutputRefLT applies the LT predicate on the "output_ref" field.
func OutputRefLT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldOutputRef, v))
}

// OutputRefLTE applies the LTE predicate on the "output_ref" field.
func OutputRefLTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldOutputRef, v))
}

// OutputRefContains applies the Contains predicate on the "output_ref" field.
func OutputRefContains(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContains(FieldOutputRef, v))
}

// OutputRefHasPrefix applies the HasPrefix predicate on the "output_ref" field.
func OutputRefHasPrefix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasPrefix(FieldOutputRef, v))
}

// OutputRefHasSuffix applies the HasSuffix predicate on the "output_ref" field.
func OutputRefHasSuffix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasSuffix(FieldOutputRef, v))
}

// OutputRefIsNil applies the IsNil predicate on the "output_ref" field.
func OutputRefIsNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIsNull(FieldOutputRef))
}

// OutputRefNotNil applies the NotNil predicate on the "output_ref" field.
func OutputRefNotNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotNull(FieldOutputRef))
}

// OutputRefEqualFold applies the EqualFold predicate on the "output_ref" field.
func OutputRefEqualFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEqualFold(FieldOutputRef, v))
}

// OutputRefContainsFold applies the ContainsFold predicate on the "output_ref" field.
func OutputRefContainsFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContainsFold(FieldOutputRef, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AgentTask {
	return predicate.AgentTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AgentTask {
	return predicate.AgentTask(sql.FieldNotNull(FieldCompletedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.AgentTask {
	return predicate.AgentTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.WorkflowRun) predicate.AgentTask {
	return predicate.AgentTask(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvocations applies the HasEdge predicate on the "invocations" edge.
func HasInvocations() predicate.AgentTask {
	return predicate.AgentTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvocationsTable, InvocationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvocationsWith applies the HasEdge predicate on the "invocations" edge with a given conditions (other predicates).
func HasInvocationsWith(preds ...predicate.ToolInvocation) predicate.AgentTask {
	return predicate.AgentTask(func(s *sql.Selector) {
		step := newInvocationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.AgentTask {
	return predicate.AgentTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.AgentTask {
	return predicate.AgentTask(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentTask) predicate.AgentTask {
	return predicate.AgentTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentTask) predicate.AgentTask {
	return predicate.AgentTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentTask) predicate.AgentTask {
	return predicate.AgentTask(sql.NotPredicates(p))
}
