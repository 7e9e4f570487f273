// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldFingerprint, v))
}

// RangeStart applies equality check predicate on the "range_start" field. It's identical to RangeStartEQ.
func RangeStart(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldRangeStart, v))
}

// RangeEnd applies equality check predicate on the "range_end" field. It's identical to RangeEndEQ.
func RangeEnd(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldRangeEnd, v))
}

// UnitCount applies equality check predicate on the "unit_count" field. It's identical to UnitCountEQ.
func UnitCount(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldUnitCount, v))
}

// TotalHours applies equality check predicate on the "total_hours" field. It's identical to TotalHoursEQ.
func TotalHours(v float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTotalHours, v))
}

// CacheHit applies equality check predicate on the "cache_hit" field. It's identical to CacheHitEQ.
func CacheHit(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldCacheHit, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldTimestamp, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldFingerprint, v))
}

// RangeStartEQ applies the EQ predicate on the "range_start" field.
func RangeStartEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldRangeStart, v))
}

// RangeStartNEQ applies the NEQ predicate on the "range_start" field.
func RangeStartNEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldRangeStart, v))
}

// RangeStartIn applies the In predicate on the "range_start" field.
func RangeStartIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldRangeStart, vs...))
}

// RangeStartNotIn applies the NotIn predicate on the "range_start" field.
func RangeStartNotIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldRangeStart, vs...))
}

// RangeStartGT applies the GT predicate on the "range_start" field.
func RangeStartGT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldRangeStart, v))
}

// RangeStartGTE applies the GTE predicate on the "range_start" field.
func RangeStartGTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldRangeStart, v))
}

// RangeStartLT applies the LT predicate on the "range_start" field.
func RangeStartLT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldRangeStart, v))
}

// RangeStartLTE applies the LTE predicate on the "range_start" field.
func RangeStartLTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldRangeStart, v))
}

// RangeEndEQ applies the EQ predicate on the "range_end" field.
func RangeEndEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldRangeEnd, v))
}

// RangeEndNEQ applies the NEQ predicate on the "range_end" field.
func RangeEndNEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldRangeEnd, v))
}

// RangeEndIn applies the In predicate on the "range_end" field.
func RangeEndIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldRangeEnd, vs...))
}

// RangeEndNotIn applies the NotIn predicate on the "range_end" field.
func RangeEndNotIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldRangeEnd, vs...))
}

// RangeEndGT applies the GT predicate on the "range_end" field.
func RangeEndGT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldRangeEnd, v))
}

// RangeEndGTE applies the GTE predicate on the "range_end" field.
func RangeEndGTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldRangeEnd, v))
}

// RangeEndLT applies the LT predicate on the "range_end" field.
func RangeEndLT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldRangeEnd, v))
}

// RangeEndLTE applies the LTE predicate on the "range_end" field.
func RangeEndLTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldRangeEnd, v))
}

// UnitCountEQ applies the EQ predicate on the "unit_count" field.
func UnitCountEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldUnitCount, v))
}

// UnitCountNEQ applies the NEQ predicate on the "unit_count" field.
func UnitCountNEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldUnitCount, v))
}

// UnitCountIn applies the In predicate on the "unit_count" field.
func UnitCountIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldUnitCount, vs...))
}

// UnitCountNotIn applies the NotIn predicate on the "unit_count" field.
func UnitCountNotIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldUnitCount, vs...))
}

// UnitCountGT applies the GT predicate on the "unit_count" field.
func UnitCountGT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldUnitCount, v))
}

// UnitCountGTE applies the GTE predicate on the "unit_count" field.
func UnitCountGTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldUnitCount, v))
}

// UnitCountLT applies the LT predicate on the "unit_count" field.
func UnitCountLT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldUnitCount, v))
}

// UnitCountLTE applies the LTE predicate on the "unit_count" field.
func UnitCountLTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldUnitCount, v))
}

// TotalHoursEQ applies the EQ predicate on the "total_hours" field.
func TotalHoursEQ(v float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTotalHours, v))
}

// TotalHoursNEQ applies the NEQ predicate on the "total_hours" field.
func TotalHoursNEQ(v float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldTotalHours, v))
}

// TotalHoursIn applies the In predicate on the "total_hours" field.
func TotalHoursIn(vs ...float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldTotalHours, vs...))
}

// TotalHoursNotIn applies the NotIn predicate on the "total_hours" field.
func TotalHoursNotIn(vs ...float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldTotalHours, vs...))
}

// TotalHoursGT applies the GT predicate on the "total_hours" field.
func TotalHoursGT(v float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldTotalHours, v))
}

// TotalHoursGTE applies the GTE predicate on the "total_hours" field.
func TotalHoursGTE(v float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldTotalHours, v))
}

// TotalHoursLT applies the LT predicate on the "total_hours" field.
func TotalHoursLT(v float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldTotalHours, v))
}

// TotalHoursLTE applies the LTE predicate on the "total_hours" field.
func TotalHoursLTE(v float64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldTotalHours, v))
}

// CacheHitEQ applies the EQ predicate on the "cache_hit" field.
func CacheHitEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldCacheHit, v))
}

// CacheHitNEQ applies the NEQ predicate on the "cache_hit" field.
func CacheHitNEQ(v bool) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldCacheHit, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.NotPredicates(p))
}
