// Code generated by ent, DO NOT EDIT.

package humangate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/outreachkit/prospector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldRunID, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldPhase, v))
}

// ArtifactRef applies equality check predicate on the "artifact_ref" field. It's identical to ArtifactRefEQ.
func ArtifactRef(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldArtifactRef, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldDeadline, v))
}

// ApproverID applies equality check predicate on the "approver_id" field. It's identical to ApproverIDEQ.
func ApproverID(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldApproverID, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldNotes, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldDecidedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldRunID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v int) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldPhase, v))
}

// ArtifactRefEQ applies the EQ predicate on the "artifact_ref" field.
func ArtifactRefEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldArtifactRef, v))
}

// ArtifactRefNEQ applies the NEQ predicate on the "artifact_ref" field.
func ArtifactRefNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldArtifactRef, v))
}

// ArtifactRefIn applies the In predicate on the "artifact_ref" field.
func ArtifactRefIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldArtifactRef, vs...))
}

// ArtifactRefNotIn applies the NotIn predicate on the "artifact_ref" field.
func ArtifactRefNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldArtifactRef, vs...))
}

// ArtifactRefGT applies the GT predicate on the "artifact_ref" field.
func ArtifactRefGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldArtifactRef, v))
}

// ArtifactRefGTE applies the GTE predicate on the "artifact_ref" field.
func ArtifactRefGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldArtifactRef, v))
}

// ArtifactRefLT applies the LT predicate on the "artifact_ref" field.
func ArtifactRefLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldArtifactRef, v))
}

// ArtifactRefLTE applies the LTE predicate on the "artifact_ref" field.
func ArtifactRefLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldArtifactRef, v))
}

// ArtifactRefContains applies the Contains predicate on the "artifact_ref" field.
func ArtifactRefContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldArtifactRef, v))
}

// ArtifactRefHasPrefix applies the HasPrefix predicate on the "artifact_ref" field.
func ArtifactRefHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldArtifactRef, v))
}

// ArtifactRefHasSuffix applies the HasSuffix predicate on the "artifact_ref" field.
func ArtifactRefHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldArtifactRef, v))
}

// ArtifactRefEqualFold applies the EqualFold predicate on the "artifact_ref" field.
func ArtifactRefEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldArtifactRef, v))
}

// ArtifactRefContainsFold applies the ContainsFold predicate on the "artifact_ref" field.
func ArtifactRefContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldArtifactRef, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldStatus, vs...))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldDeadline, v))
}

// ApproverIDEQ applies the EQ predicate on the "approver_id" field.
func ApproverIDEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldApproverID, v))
}

// ApproverIDNEQ applies the NEQ predicate on the "approver_id" field.
func ApproverIDNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldApproverID, v))
}

// ApproverIDIn applies the In predicate on the "approver_id" field.
func ApproverIDIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldApproverID, vs...))
}

// ApproverIDNotIn applies the NotIn predicate on the "approver_id" field.
func ApproverIDNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldApproverID, vs...))
}

// ApproverIDGT applies the GT predicate on the "approver_id" field.
func ApproverIDGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldApproverID, v))
}

// ApproverIDGTE applies the GTE predicate on the "approver_id" field.
func ApproverIDGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldApproverID, v))
}

// ApproverIDLT applies the LT predicate on the "approver_id" field.
func ApproverIDLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldApproverID, v))
}

// ApproverIDLTE applies the LTE predicate on the "approver_id" field.
func ApproverIDLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldApproverID, v))
}

// ApproverIDContains applies the Contains predicate on the "approver_id" field.
func ApproverIDContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldApproverID, v))
}

// ApproverIDHasPrefix applies the HasPrefix predicate on the "approver_id" field.
func ApproverIDHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldApproverID, v))
}

// ApproverIDHasSuffix applies the HasSuffix predicate on the "approver_id" field.
func ApproverIDHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldApproverID, v))
}

// ApproverIDIsNil applies the IsNil predicate on the "approver_id" field.
func ApproverIDIsNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIsNull(FieldApproverID))
}

// ApproverIDNotNil applies the NotNil predicate on the "approver_id" field.
func ApproverIDNotNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotNull(FieldApproverID))
}

// ApproverIDEqualFold applies the EqualFold predicate on the "approver_id" field.
func ApproverIDEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldApproverID, v))
}

// ApproverIDContainsFold applies the ContainsFold predicate on the "approver_id" field.
func ApproverIDContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldApproverID, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldContainsFold(FieldNotes, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotNull(FieldDecidedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HumanGate {
	return predicate.HumanGate(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.HumanGate {
	return predicate.HumanGate(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.WorkflowRun) predicate.HumanGate {
	return predicate.HumanGate(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HumanGate) predicate.HumanGate {
	return predicate.HumanGate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HumanGate) predicate.HumanGate {
	return predicate.HumanGate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HumanGate) predicate.HumanGate {
	return predicate.HumanGate(sql.NotPredicates(p))
}
