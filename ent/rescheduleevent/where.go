// Code generated by ent, DO NOT EDIT.

package rescheduleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldUnitID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldSubjectID, v))
}

// FromDate applies equality check predicate on the "from_date" field. It's identical to FromDateEQ.
func FromDate(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldFromDate, v))
}

// ToDate applies equality check predicate on the "to_date" field. It's identical to ToDateEQ.
func ToDate(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldToDate, v))
}

// DaysOverdue applies equality check predicate on the "days_overdue" field. It's identical to DaysOverdueEQ.
func DaysOverdue(v int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldDaysOverdue, v))
}

// PriorityScore applies equality check predicate on the "priority_score" field. It's identical to PriorityScoreEQ.
func PriorityScore(v float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldPriorityScore, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldContainsFold(FieldUnitID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// FromDateEQ applies the EQ predicate on the "from_date" field.
func FromDateEQ(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldFromDate, v))
}

// FromDateNEQ applies the NEQ predicate on the "from_date" field.
func FromDateNEQ(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldFromDate, v))
}

// FromDateIn applies the In predicate on the "from_date" field.
func FromDateIn(vs ...time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldFromDate, vs...))
}

// FromDateNotIn applies the NotIn predicate on the "from_date" field.
func FromDateNotIn(vs ...time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldFromDate, vs...))
}

// FromDateGT applies the GT predicate on the "from_date" field.
func FromDateGT(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldFromDate, v))
}

// FromDateGTE applies the GTE predicate on the "from_date" field.
func FromDateGTE(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldFromDate, v))
}

// FromDateLT applies the LT predicate on the "from_date" field.
func FromDateLT(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldFromDate, v))
}

// FromDateLTE applies the LTE predicate on the "from_date" field.
func FromDateLTE(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldFromDate, v))
}

// ToDateEQ applies the EQ predicate on the "to_date" field.
func ToDateEQ(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldToDate, v))
}

// ToDateNEQ applies the NEQ predicate on the "to_date" field.
func ToDateNEQ(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldToDate, v))
}

// ToDateIn applies the In predicate on the "to_date" field.
func ToDateIn(vs ...time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldToDate, vs...))
}

// ToDateNotIn applies the NotIn predicate on the "to_date" field.
func ToDateNotIn(vs ...time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldToDate, vs...))
}

// ToDateGT applies the GT predicate on the "to_date" field.
func ToDateGT(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldToDate, v))
}

// ToDateGTE applies the GTE predicate on the "to_date" field.
func ToDateGTE(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldToDate, v))
}

// ToDateLT applies the LT predicate on the "to_date" field.
func ToDateLT(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldToDate, v))
}

// ToDateLTE applies the LTE predicate on the "to_date" field.
func ToDateLTE(v time.Time) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldToDate, v))
}

// DaysOverdueEQ applies the EQ predicate on the "days_overdue" field.
func DaysOverdueEQ(v int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldDaysOverdue, v))
}

// DaysOverdueNEQ applies the NEQ predicate on the "days_overdue" field.
func DaysOverdueNEQ(v int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldDaysOverdue, v))
}

// DaysOverdueIn applies the In predicate on the "days_overdue" field.
func DaysOverdueIn(vs ...int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldDaysOverdue, vs...))
}

// DaysOverdueNotIn applies the NotIn predicate on the "days_overdue" field.
func DaysOverdueNotIn(vs ...int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldDaysOverdue, vs...))
}

// DaysOverdueGT applies the GT predicate on the "days_overdue" field.
func DaysOverdueGT(v int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldDaysOverdue, v))
}

// DaysOverdueGTE applies the GTE predicate on the "days_overdue" field.
func DaysOverdueGTE(v int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldDaysOverdue, v))
}

// DaysOverdueLT applies the LT predicate on the "days_overdue" field.
func DaysOverdueLT(v int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldDaysOverdue, v))
}

// DaysOverdueLTE applies the LTE predicate on the "days_overdue" field.
func DaysOverdueLTE(v int) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldDaysOverdue, v))
}

// PriorityScoreEQ applies the EQ predicate on the "priority_score" field.
func PriorityScoreEQ(v float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldPriorityScore, v))
}

// PriorityScoreNEQ applies the NEQ predicate on the "priority_score" field.
func PriorityScoreNEQ(v float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldPriorityScore, v))
}

// PriorityScoreIn applies the In predicate on the "priority_score" field.
func PriorityScoreIn(vs ...float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldPriorityScore, vs...))
}

// PriorityScoreNotIn applies the NotIn predicate on the "priority_score" field.
func PriorityScoreNotIn(vs ...float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldPriorityScore, vs...))
}

// PriorityScoreGT applies the GT predicate on the "priority_score" field.
func PriorityScoreGT(v float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldPriorityScore, v))
}

// PriorityScoreGTE applies the GTE predicate on the "priority_score" field.
func PriorityScoreGTE(v float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldPriorityScore, v))
}

// PriorityScoreLT applies the LT predicate on the "priority_score" field.
func PriorityScoreLT(v float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldPriorityScore, v))
}

// PriorityScoreLTE applies the LTE predicate on the "priority_score" field.
func PriorityScoreLTE(v float64) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldPriorityScore, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RescheduleEvent) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RescheduleEvent) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RescheduleEvent) predicate.RescheduleEvent {
	return predicate.RescheduleEvent(sql.NotPredicates(p))
}
