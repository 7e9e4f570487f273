// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsoarez/planista/ent/predicate"
	"github.com/rsoarez/planista/ent/studyunit"
)

// StudyUnitUpdate is the builder for updating StudyUnit entities.
type StudyUnitUpdate struct {
	config
	hooks    []Hook
	mutation *StudyUnitMutation
}

// Where appends a list predicates to the StudyUnitUpdate builder.
func (_u *StudyUnitUpdate) Where(ps ...predicate.StudyUnit) *StudyUnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *StudyUnitUpdate) SetUnitID(v string) *StudyUnitUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableUnitID(v *string) *StudyUnitUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *StudyUnitUpdate) SetSubjectID(v string) *StudyUnitUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableSubjectID(v *string) *StudyUnitUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetRelatedSubjectID sets the "related_subject_id" field.
func (_u *StudyUnitUpdate) SetRelatedSubjectID(v string) *StudyUnitUpdate {
	_u.mutation.SetRelatedSubjectID(v)
	return _u
}

// SetNillableRelatedSubjectID sets the "related_subject_id" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableRelatedSubjectID(v *string) *StudyUnitUpdate {
	if v != nil {
		_u.SetRelatedSubjectID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StudyUnitUpdate) SetDate(v time.Time) *StudyUnitUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableDate(v *time.Time) *StudyUnitUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *StudyUnitUpdate) SetStartMinute(v int) *StudyUnitUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableStartMinute(v *int) *StudyUnitUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *StudyUnitUpdate) AddStartMinute(v int) *StudyUnitUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *StudyUnitUpdate) SetEndMinute(v int) *StudyUnitUpdate {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableEndMinute(v *int) *StudyUnitUpdate {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *StudyUnitUpdate) AddEndMinute(v int) *StudyUnitUpdate {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *StudyUnitUpdate) SetDurationMinutes(v int) *StudyUnitUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableDurationMinutes(v *int) *StudyUnitUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *StudyUnitUpdate) AddDurationMinutes(v int) *StudyUnitUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetIsBreak sets the "is_break" field.
func (_u *StudyUnitUpdate) SetIsBreak(v bool) *StudyUnitUpdate {
	_u.mutation.SetIsBreak(v)
	return _u
}

// SetNillableIsBreak sets the "is_break" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableIsBreak(v *bool) *StudyUnitUpdate {
	if v != nil {
		_u.SetIsBreak(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *StudyUnitUpdate) SetKind(v string) *StudyUnitUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableKind(v *string) *StudyUnitUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *StudyUnitUpdate) SetSessionType(v string) *StudyUnitUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableSessionType(v *string) *StudyUnitUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyUnitUpdate) SetStatus(v string) *StudyUnitUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableStatus(v *string) *StudyUnitUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *StudyUnitUpdate) SetPhase(v string) *StudyUnitUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillablePhase(v *string) *StudyUnitUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *StudyUnitUpdate) SetTopicName(v string) *StudyUnitUpdate {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableTopicName(v *string) *StudyUnitUpdate {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StudyUnitUpdate) SetStageIndex(v int) *StudyUnitUpdate {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableStageIndex(v *int) *StudyUnitUpdate {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StudyUnitUpdate) AddStageIndex(v int) *StudyUnitUpdate {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetStageTarget sets the "stage_target" field.
func (_u *StudyUnitUpdate) SetStageTarget(v int) *StudyUnitUpdate {
	_u.mutation.ResetStageTarget()
	_u.mutation.SetStageTarget(v)
	return _u
}

// SetNillableStageTarget sets the "stage_target" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableStageTarget(v *int) *StudyUnitUpdate {
	if v != nil {
		_u.SetStageTarget(*v)
	}
	return _u
}

// AddStageTarget adds value to the "stage_target" field.
func (_u *StudyUnitUpdate) AddStageTarget(v int) *StudyUnitUpdate {
	_u.mutation.AddStageTarget(v)
	return _u
}

// SetRescheduleCount sets the "reschedule_count" field.
func (_u *StudyUnitUpdate) SetRescheduleCount(v int) *StudyUnitUpdate {
	_u.mutation.ResetRescheduleCount()
	_u.mutation.SetRescheduleCount(v)
	return _u
}

// SetNillableRescheduleCount sets the "reschedule_count" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableRescheduleCount(v *int) *StudyUnitUpdate {
	if v != nil {
		_u.SetRescheduleCount(*v)
	}
	return _u
}

// AddRescheduleCount adds value to the "reschedule_count" field.
func (_u *StudyUnitUpdate) AddRescheduleCount(v int) *StudyUnitUpdate {
	_u.mutation.AddRescheduleCount(v)
	return _u
}

// SetOriginalDate sets the "original_date" field.
func (_u *StudyUnitUpdate) SetOriginalDate(v time.Time) *StudyUnitUpdate {
	_u.mutation.SetOriginalDate(v)
	return _u
}

// SetNillableOriginalDate sets the "original_date" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableOriginalDate(v *time.Time) *StudyUnitUpdate {
	if v != nil {
		_u.SetOriginalDate(*v)
	}
	return _u
}

// ClearOriginalDate clears the value of the "original_date" field.
func (_u *StudyUnitUpdate) ClearOriginalDate() *StudyUnitUpdate {
	_u.mutation.ClearOriginalDate()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StudyUnitUpdate) SetCompletedAt(v time.Time) *StudyUnitUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StudyUnitUpdate) SetNillableCompletedAt(v *time.Time) *StudyUnitUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StudyUnitUpdate) ClearCompletedAt() *StudyUnitUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyUnitUpdate) SetUpdatedAt(v time.Time) *StudyUnitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudyUnitMutation object of the builder.
func (_u *StudyUnitUpdate) Mutation() *StudyUnitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyUnitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyUnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyUnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyUnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyUnitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studyunit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyUnitUpdate) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := studyunit.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := studyunit.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := studyunit.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyUnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyunit.Table, studyunit.Columns, sqlgraph.NewFieldSpec(studyunit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(studyunit.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(studyunit.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelatedSubjectID(); ok {
		_spec.SetField(studyunit.FieldRelatedSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(studyunit.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(studyunit.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(studyunit.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(studyunit.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(studyunit.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(studyunit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(studyunit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsBreak(); ok {
		_spec.SetField(studyunit.FieldIsBreak, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(studyunit.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(studyunit.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studyunit.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(studyunit.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(studyunit.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(studyunit.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(studyunit.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageTarget(); ok {
		_spec.SetField(studyunit.FieldStageTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageTarget(); ok {
		_spec.AddField(studyunit.FieldStageTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RescheduleCount(); ok {
		_spec.SetField(studyunit.FieldRescheduleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRescheduleCount(); ok {
		_spec.AddField(studyunit.FieldRescheduleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalDate(); ok {
		_spec.SetField(studyunit.FieldOriginalDate, field.TypeTime, value)
	}
	if _u.mutation.OriginalDateCleared() {
		_spec.ClearField(studyunit.FieldOriginalDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(studyunit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(studyunit.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studyunit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyUnitUpdateOne is the builder for updating a single StudyUnit entity.
type StudyUnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyUnitMutation
}

// SetUnitID sets the "unit_id" field.
func (_u *StudyUnitUpdateOne) SetUnitID(v string) *StudyUnitUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableUnitID(v *string) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *StudyUnitUpdateOne) SetSubjectID(v string) *StudyUnitUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableSubjectID(v *string) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetRelatedSubjectID sets the "related_subject_id" field.
func (_u *StudyUnitUpdateOne) SetRelatedSubjectID(v string) *StudyUnitUpdateOne {
	_u.mutation.SetRelatedSubjectID(v)
	return _u
}

// SetNillableRelatedSubjectID sets the "related_subject_id" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableRelatedSubjectID(v *string) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetRelatedSubjectID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StudyUnitUpdateOne) SetDate(v time.Time) *StudyUnitUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableDate(v *time.Time) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *StudyUnitUpdateOne) SetStartMinute(v int) *StudyUnitUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableStartMinute(v *int) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *StudyUnitUpdateOne) AddStartMinute(v int) *StudyUnitUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *StudyUnitUpdateOne) SetEndMinute(v int) *StudyUnitUpdateOne {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableEndMinute(v *int) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *StudyUnitUpdateOne) AddEndMinute(v int) *StudyUnitUpdateOne {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *StudyUnitUpdateOne) SetDurationMinutes(v int) *StudyUnitUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableDurationMinutes(v *int) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *StudyUnitUpdateOne) AddDurationMinutes(v int) *StudyUnitUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetIsBreak sets the "is_break" field.
func (_u *StudyUnitUpdateOne) SetIsBreak(v bool) *StudyUnitUpdateOne {
	_u.mutation.SetIsBreak(v)
	return _u
}

// SetNillableIsBreak sets the "is_break" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableIsBreak(v *bool) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetIsBreak(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *StudyUnitUpdateOne) SetKind(v string) *StudyUnitUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableKind(v *string) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *StudyUnitUpdateOne) SetSessionType(v string) *StudyUnitUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableSessionType(v *string) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyUnitUpdateOne) SetStatus(v string) *StudyUnitUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableStatus(v *string) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *StudyUnitUpdateOne) SetPhase(v string) *StudyUnitUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillablePhase(v *string) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetTopicName sets the "topic_name" field.
func (_u *StudyUnitUpdateOne) SetTopicName(v string) *StudyUnitUpdateOne {
	_u.mutation.SetTopicName(v)
	return _u
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableTopicName(v *string) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetTopicName(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StudyUnitUpdateOne) SetStageIndex(v int) *StudyUnitUpdateOne {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableStageIndex(v *int) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StudyUnitUpdateOne) AddStageIndex(v int) *StudyUnitUpdateOne {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetStageTarget sets the "stage_target" field.
func (_u *StudyUnitUpdateOne) SetStageTarget(v int) *StudyUnitUpdateOne {
	_u.mutation.ResetStageTarget()
	_u.mutation.SetStageTarget(v)
	return _u
}

// SetNillableStageTarget sets the "stage_target" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableStageTarget(v *int) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetStageTarget(*v)
	}
	return _u
}

// AddStageTarget adds value to the "stage_target" field.
func (_u *StudyUnitUpdateOne) AddStageTarget(v int) *StudyUnitUpdateOne {
	_u.mutation.AddStageTarget(v)
	return _u
}

// SetRescheduleCount sets the "reschedule_count" field.
func (_u *StudyUnitUpdateOne) SetRescheduleCount(v int) *StudyUnitUpdateOne {
	_u.mutation.ResetRescheduleCount()
	_u.mutation.SetRescheduleCount(v)
	return _u
}

// SetNillableRescheduleCount sets the "reschedule_count" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableRescheduleCount(v *int) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetRescheduleCount(*v)
	}
	return _u
}

// AddRescheduleCount adds value to the "reschedule_count" field.
func (_u *StudyUnitUpdateOne) AddRescheduleCount(v int) *StudyUnitUpdateOne {
	_u.mutation.AddRescheduleCount(v)
	return _u
}

// SetOriginalDate sets the "original_date" field.
func (_u *StudyUnitUpdateOne) SetOriginalDate(v time.Time) *StudyUnitUpdateOne {
	_u.mutation.SetOriginalDate(v)
	return _u
}

// SetNillableOriginalDate sets the "original_date" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableOriginalDate(v *time.Time) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetOriginalDate(*v)
	}
	return _u
}

// ClearOriginalDate clears the value of the "original_date" field.
func (_u *StudyUnitUpdateOne) ClearOriginalDate() *StudyUnitUpdateOne {
	_u.mutation.ClearOriginalDate()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StudyUnitUpdateOne) SetCompletedAt(v time.Time) *StudyUnitUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StudyUnitUpdateOne) SetNillableCompletedAt(v *time.Time) *StudyUnitUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StudyUnitUpdateOne) ClearCompletedAt() *StudyUnitUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyUnitUpdateOne) SetUpdatedAt(v time.Time) *StudyUnitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudyUnitMutation object of the builder.
func (_u *StudyUnitUpdateOne) Mutation() *StudyUnitMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyUnitUpdate builder.
func (_u *StudyUnitUpdateOne) Where(ps ...predicate.StudyUnit) *StudyUnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyUnitUpdateOne) Select(field string, fields ...string) *StudyUnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyUnit entity.
func (_u *StudyUnitUpdateOne) Save(ctx context.Context) (*StudyUnit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyUnitUpdateOne) SaveX(ctx context.Context) *StudyUnit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyUnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyUnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyUnitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studyunit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyUnitUpdateOne) check() error {
	if v, ok := _u.mutation.UnitID(); ok {
		if err := studyunit.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := studyunit.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := studyunit.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyUnitUpdateOne) sqlSave(ctx context.Context) (_node *StudyUnit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyunit.Table, studyunit.Columns, sqlgraph.NewFieldSpec(studyunit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyUnit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyunit.FieldID)
		for _, f := range fields {
			if !studyunit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyunit.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(studyunit.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(studyunit.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelatedSubjectID(); ok {
		_spec.SetField(studyunit.FieldRelatedSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(studyunit.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(studyunit.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(studyunit.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(studyunit.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(studyunit.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(studyunit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(studyunit.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsBreak(); ok {
		_spec.SetField(studyunit.FieldIsBreak, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(studyunit.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(studyunit.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studyunit.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(studyunit.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicName(); ok {
		_spec.SetField(studyunit.FieldTopicName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(studyunit.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(studyunit.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageTarget(); ok {
		_spec.SetField(studyunit.FieldStageTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageTarget(); ok {
		_spec.AddField(studyunit.FieldStageTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RescheduleCount(); ok {
		_spec.SetField(studyunit.FieldRescheduleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRescheduleCount(); ok {
		_spec.AddField(studyunit.FieldRescheduleCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalDate(); ok {
		_spec.SetField(studyunit.FieldOriginalDate, field.TypeTime, value)
	}
	if _u.mutation.OriginalDateCleared() {
		_spec.ClearField(studyunit.FieldOriginalDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(studyunit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(studyunit.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studyunit.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudyUnit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
