// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldUnitID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldKind, v))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTopicName, v))
}

// PlannedMinutes applies equality check predicate on the "planned_minutes" field. It's identical to PlannedMinutesEQ.
func PlannedMinutes(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldPlannedMinutes, v))
}

// SpentMinutes applies equality check predicate on the "spent_minutes" field. It's identical to SpentMinutesEQ.
func SpentMinutes(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSpentMinutes, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldAccuracy, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v bool) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSkipped, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldUnitID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldKind, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldTopicName, v))
}

// PlannedMinutesEQ applies the EQ predicate on the "planned_minutes" field.
func PlannedMinutesEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldPlannedMinutes, v))
}

// PlannedMinutesNEQ applies the NEQ predicate on the "planned_minutes" field.
func PlannedMinutesNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldPlannedMinutes, v))
}

// PlannedMinutesIn applies the In predicate on the "planned_minutes" field.
func PlannedMinutesIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldPlannedMinutes, vs...))
}

// PlannedMinutesNotIn applies the NotIn predicate on the "planned_minutes" field.
func PlannedMinutesNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldPlannedMinutes, vs...))
}

// PlannedMinutesGT applies the GT predicate on the "planned_minutes" field.
func PlannedMinutesGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldPlannedMinutes, v))
}

// PlannedMinutesGTE applies the GTE predicate on the "planned_minutes" field.
func PlannedMinutesGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldPlannedMinutes, v))
}

// PlannedMinutesLT applies the LT predicate on the "planned_minutes" field.
func PlannedMinutesLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldPlannedMinutes, v))
}

// PlannedMinutesLTE applies the LTE predicate on the "planned_minutes" field.
func PlannedMinutesLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldPlannedMinutes, v))
}

// SpentMinutesEQ applies the EQ predicate on the "spent_minutes" field.
func SpentMinutesEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSpentMinutes, v))
}

// SpentMinutesNEQ applies the NEQ predicate on the "spent_minutes" field.
func SpentMinutesNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSpentMinutes, v))
}

// SpentMinutesIn applies the In predicate on the "spent_minutes" field.
func SpentMinutesIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldSpentMinutes, vs...))
}

// SpentMinutesNotIn applies the NotIn predicate on the "spent_minutes" field.
func SpentMinutesNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldSpentMinutes, vs...))
}

// SpentMinutesGT applies the GT predicate on the "spent_minutes" field.
func SpentMinutesGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldSpentMinutes, v))
}

// SpentMinutesGTE applies the GTE predicate on the "spent_minutes" field.
func SpentMinutesGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldSpentMinutes, v))
}

// SpentMinutesLT applies the LT predicate on the "spent_minutes" field.
func SpentMinutesLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldSpentMinutes, v))
}

// SpentMinutesLTE applies the LTE predicate on the "spent_minutes" field.
func SpentMinutesLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldSpentMinutes, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldAccuracy, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v bool) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v bool) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSkipped, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.NotPredicates(p))
}
