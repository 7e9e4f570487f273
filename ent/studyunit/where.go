// Code generated by ent, DO NOT EDIT.

package studyunit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldID, id))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldUnitID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldSubjectID, v))
}

// RelatedSubjectID applies equality check predicate on the "related_subject_id" field. It's identical to RelatedSubjectIDEQ.
func RelatedSubjectID(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldRelatedSubjectID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldDate, v))
}

// StartMinute applies equality check predicate on the "start_minute" field. It's identical to StartMinuteEQ.
func StartMinute(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldStartMinute, v))
}

// EndMinute applies equality check predicate on the "end_minute" field. It's identical to EndMinuteEQ.
func EndMinute(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldEndMinute, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldDurationMinutes, v))
}

// IsBreak applies equality check predicate on the "is_break" field. It's identical to IsBreakEQ.
func IsBreak(v bool) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldIsBreak, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldKind, v))
}

// SessionType applies equality check predicate on the "session_type" field. It's identical to SessionTypeEQ.
func SessionType(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldSessionType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldStatus, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldPhase, v))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldTopicName, v))
}

// StageIndex applies equality check predicate on the "stage_index" field. It's identical to StageIndexEQ.
func StageIndex(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldStageIndex, v))
}

// StageTarget applies equality check predicate on the "stage_target" field. It's identical to StageTargetEQ.
func StageTarget(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldStageTarget, v))
}

// RescheduleCount applies equality check predicate on the "reschedule_count" field. It's identical to RescheduleCountEQ.
func RescheduleCount(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldRescheduleCount, v))
}

// OriginalDate applies equality check predicate on the "original_date" field. It's identical to OriginalDateEQ.
func OriginalDate(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldOriginalDate, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContainsFold(FieldUnitID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContainsFold(FieldSubjectID, v))
}

// RelatedSubjectIDEQ applies the EQ predicate on the "related_subject_id" field.
func RelatedSubjectIDEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDNEQ applies the NEQ predicate on the "related_subject_id" field.
func RelatedSubjectIDNEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDIn applies the In predicate on the "related_subject_id" field.
func RelatedSubjectIDIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldRelatedSubjectID, vs...))
}

// RelatedSubjectIDNotIn applies the NotIn predicate on the "related_subject_id" field.
func RelatedSubjectIDNotIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldRelatedSubjectID, vs...))
}

// RelatedSubjectIDGT applies the GT predicate on the "related_subject_id" field.
func RelatedSubjectIDGT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDGTE applies the GTE predicate on the "related_subject_id" field.
func RelatedSubjectIDGTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDLT applies the LT predicate on the "related_subject_id" field.
func RelatedSubjectIDLT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDLTE applies the LTE predicate on the "related_subject_id" field.
func RelatedSubjectIDLTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDContains applies the Contains predicate on the "related_subject_id" field.
func RelatedSubjectIDContains(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContains(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDHasPrefix applies the HasPrefix predicate on the "related_subject_id" field.
func RelatedSubjectIDHasPrefix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasPrefix(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDHasSuffix applies the HasSuffix predicate on the "related_subject_id" field.
func RelatedSubjectIDHasSuffix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasSuffix(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDEqualFold applies the EqualFold predicate on the "related_subject_id" field.
func RelatedSubjectIDEqualFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEqualFold(FieldRelatedSubjectID, v))
}

// RelatedSubjectIDContainsFold applies the ContainsFold predicate on the "related_subject_id" field.
func RelatedSubjectIDContainsFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContainsFold(FieldRelatedSubjectID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldDate, v))
}

// StartMinuteEQ applies the EQ predicate on the "start_minute" field.
func StartMinuteEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldStartMinute, v))
}

// StartMinuteNEQ applies the NEQ predicate on the "start_minute" field.
func StartMinuteNEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldStartMinute, v))
}

// StartMinuteIn applies the In predicate on the "start_minute" field.
func StartMinuteIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldStartMinute, vs...))
}

// StartMinuteNotIn applies the NotIn predicate on the "start_minute" field.
func StartMinuteNotIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldStartMinute, vs...))
}

// StartMinuteGT applies the GT predicate on the "start_minute" field.
func StartMinuteGT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldStartMinute, v))
}

// StartMinuteGTE applies the GTE predicate on the "start_minute" field.
func StartMinuteGTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldStartMinute, v))
}

// StartMinuteLT applies the LT predicate on the "start_minute" field.
func StartMinuteLT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldStartMinute, v))
}

// StartMinuteLTE applies the LTE predicate on the "start_minute" field.
func StartMinuteLTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldStartMinute, v))
}

// EndMinuteEQ applies the EQ predicate on the "end_minute" field.
func EndMinuteEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldEndMinute, v))
}

// EndMinuteNEQ applies the NEQ predicate on the "end_minute" field.
func EndMinuteNEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldEndMinute, v))
}

// EndMinuteIn applies the In predicate on the "end_minute" field.
func EndMinuteIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldEndMinute, vs...))
}

// EndMinuteNotIn applies the NotIn predicate on the "end_minute" field.
func EndMinuteNotIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldEndMinute, vs...))
}

// EndMinuteGT applies the GT predicate on the "end_minute" field.
func EndMinuteGT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldEndMinute, v))
}

// EndMinuteGTE applies the GTE predicate on the "end_minute" field.
func EndMinuteGTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldEndMinute, v))
}

// EndMinuteLT applies the LT predicate on the "end_minute" field.
func EndMinuteLT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldEndMinute, v))
}

// EndMinuteLTE applies the LTE predicate on the "end_minute" field.
func EndMinuteLTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldEndMinute, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldDurationMinutes, v))
}

// IsBreakEQ applies the EQ predicate on the "is_break" field.
func IsBreakEQ(v bool) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldIsBreak, v))
}

// IsBreakNEQ applies the NEQ predicate on the "is_break" field.
func IsBreakNEQ(v bool) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldIsBreak, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContainsFold(FieldKind, v))
}

// SessionTypeEQ applies the EQ predicate on the "session_type" field.
func SessionTypeEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldSessionType, v))
}

// SessionTypeNEQ applies the NEQ predicate on the "session_type" field.
func SessionTypeNEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldSessionType, v))
}

// SessionTypeIn applies the In predicate on the "session_type" field.
func SessionTypeIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldSessionType, vs...))
}

// SessionTypeNotIn applies the NotIn predicate on the "session_type" field.
func SessionTypeNotIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldSessionType, vs...))
}

// SessionTypeGT applies the GT predicate on the "session_type" field.
func SessionTypeGT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldSessionType, v))
}

// SessionTypeGTE applies the GTE predicate on the "session_type" field.
func SessionTypeGTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldSessionType, v))
}

// SessionTypeLT applies the LT predicate on the "session_type" field.
func SessionTypeLT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldSessionType, v))
}

// SessionTypeLTE applies the LTE predicate on the "session_type" field.
func SessionTypeLTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldSessionType, v))
}

// SessionTypeContains applies the Contains predicate on the "session_type" field.
func SessionTypeContains(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContains(FieldSessionType, v))
}

// SessionTypeHasPrefix applies the HasPrefix predicate on the "session_type" field.
func SessionTypeHasPrefix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasPrefix(FieldSessionType, v))
}

// SessionTypeHasSuffix applies the HasSuffix predicate on the "session_type" field.
func SessionTypeHasSuffix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasSuffix(FieldSessionType, v))
}

// SessionTypeEqualFold applies the EqualFold predicate on the "session_type" field.
func SessionTypeEqualFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEqualFold(FieldSessionType, v))
}

// SessionTypeContainsFold applies the ContainsFold predicate on the "session_type" field.
func SessionTypeContainsFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContainsFold(FieldSessionType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContainsFold(FieldStatus, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContainsFold(FieldPhase, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldContainsFold(FieldTopicName, v))
}

// StageIndexEQ applies the EQ predicate on the "stage_index" field.
func StageIndexEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldStageIndex, v))
}

// StageIndexNEQ applies the NEQ predicate on the "stage_index" field.
func StageIndexNEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldStageIndex, v))
}

// StageIndexIn applies the In predicate on the "stage_index" field.
func StageIndexIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldStageIndex, vs...))
}

// StageIndexNotIn applies the NotIn predicate on the "stage_index" field.
func StageIndexNotIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldStageIndex, vs...))
}

// StageIndexGT applies the GT predicate on the "stage_index" field.
func StageIndexGT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldStageIndex, v))
}

// StageIndexGTE applies the GTE predicate on the "stage_index" field.
func StageIndexGTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldStageIndex, v))
}

// StageIndexLT applies the LT predicate on the "stage_index" field.
func StageIndexLT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldStageIndex, v))
}

// StageIndexLTE applies the LTE predicate on the "stage_index" field.
func StageIndexLTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldStageIndex, v))
}

// StageTargetEQ applies the EQ predicate on the "stage_target" field.
func StageTargetEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldStageTarget, v))
}

// StageTargetNEQ applies the NEQ predicate on the "stage_target" field.
func StageTargetNEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldStageTarget, v))
}

// StageTargetIn applies the In predicate on the "stage_target" field.
func StageTargetIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldStageTarget, vs...))
}

// StageTargetNotIn applies the NotIn predicate on the "stage_target" field.
func StageTargetNotIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldStageTarget, vs...))
}

// StageTargetGT applies the GT predicate on the "stage_target" field.
func StageTargetGT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldStageTarget, v))
}

// StageTargetGTE applies the GTE predicate on the "stage_target" field.
func StageTargetGTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldStageTarget, v))
}

// StageTargetLT applies the LT predicate on the "stage_target" field.
func StageTargetLT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldStageTarget, v))
}

// StageTargetLTE applies the LTE predicate on the "stage_target" field.
func StageTargetLTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldStageTarget, v))
}

// RescheduleCountEQ applies the EQ predicate on the "reschedule_count" field.
func RescheduleCountEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldRescheduleCount, v))
}

// RescheduleCountNEQ applies the NEQ predicate on the "reschedule_count" field.
func RescheduleCountNEQ(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldRescheduleCount, v))
}

// RescheduleCountIn applies the In predicate on the "reschedule_count" field.
func RescheduleCountIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldRescheduleCount, vs...))
}

// RescheduleCountNotIn applies the NotIn predicate on the "reschedule_count" field.
func RescheduleCountNotIn(vs ...int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldRescheduleCount, vs...))
}

// RescheduleCountGT applies the GT predicate on the "reschedule_count" field.
func RescheduleCountGT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldRescheduleCount, v))
}

// RescheduleCountGTE applies the GTE predicate on the "reschedule_count" field.
func RescheduleCountGTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldRescheduleCount, v))
}

// RescheduleCountLT applies the LT predicate on the "reschedule_count" field.
func RescheduleCountLT(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldRescheduleCount, v))
}

// RescheduleCountLTE applies the LTE predicate on the "reschedule_count" field.
func RescheduleCountLTE(v int) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldRescheduleCount, v))
}

// OriginalDateEQ applies the EQ predicate on the "original_date" field.
func OriginalDateEQ(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldOriginalDate, v))
}

// OriginalDateNEQ applies the NEQ predicate on the "original_date" field.
func OriginalDateNEQ(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldOriginalDate, v))
}

// OriginalDateIn applies the In predicate on the "original_date" field.
func OriginalDateIn(vs ...time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldOriginalDate, vs...))
}

// OriginalDateNotIn applies the NotIn predicate on the "original_date" field.
func OriginalDateNotIn(vs ...time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldOriginalDate, vs...))
}

// OriginalDateGT applies the GT predicate on the "original_date" field.
func OriginalDateGT(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldOriginalDate, v))
}

// OriginalDateGTE applies the GTE predicate on the "original_date" field.
func OriginalDateGTE(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldOriginalDate, v))
}

// OriginalDateLT applies the LT predicate on the "original_date" field.
func OriginalDateLT(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldOriginalDate, v))
}

// OriginalDateLTE applies the LTE predicate on the "original_date" field.
func OriginalDateLTE(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldOriginalDate, v))
}

// OriginalDateIsNil applies the IsNil predicate on the "original_date" field.
func OriginalDateIsNil() predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIsNull(FieldOriginalDate))
}

// OriginalDateNotNil applies the NotNil predicate on the "original_date" field.
func OriginalDateNotNil() predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotNull(FieldOriginalDate))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StudyUnit {
	return predicate.StudyUnit(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyUnit) predicate.StudyUnit {
	return predicate.StudyUnit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyUnit) predicate.StudyUnit {
	return predicate.StudyUnit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyUnit) predicate.StudyUnit {
	return predicate.StudyUnit(sql.NotPredicates(p))
}
