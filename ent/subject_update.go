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
	"github.com/rsoarez/planista/ent/subject"
)

// SubjectUpdate is the builder for updating Subject entities.
type SubjectUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectMutation
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdate) Where(ps ...predicate.Subject) *SubjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SubjectUpdate) SetSubjectID(v string) *SubjectUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableSubjectID(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SubjectUpdate) SetName(v string) *SubjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableName(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SubjectUpdate) SetPriority(v int) *SubjectUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillablePriority(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SubjectUpdate) AddPriority(v int) *SubjectUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SubjectUpdate) SetDifficulty(v int) *SubjectUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableDifficulty(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *SubjectUpdate) AddDifficulty(v int) *SubjectUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetWeeklyTargetHours sets the "weekly_target_hours" field.
func (_u *SubjectUpdate) SetWeeklyTargetHours(v float64) *SubjectUpdate {
	_u.mutation.ResetWeeklyTargetHours()
	_u.mutation.SetWeeklyTargetHours(v)
	return _u
}

// SetNillableWeeklyTargetHours sets the "weekly_target_hours" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableWeeklyTargetHours(v *float64) *SubjectUpdate {
	if v != nil {
		_u.SetWeeklyTargetHours(*v)
	}
	return _u
}

// AddWeeklyTargetHours adds value to the "weekly_target_hours" field.
func (_u *SubjectUpdate) AddWeeklyTargetHours(v float64) *SubjectUpdate {
	_u.mutation.AddWeeklyTargetHours(v)
	return _u
}

// SetArea sets the "area" field.
func (_u *SubjectUpdate) SetArea(v string) *SubjectUpdate {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableArea(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SubjectUpdate) SetLevel(v string) *SubjectUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableLevel(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetExamWeight sets the "exam_weight" field.
func (_u *SubjectUpdate) SetExamWeight(v float64) *SubjectUpdate {
	_u.mutation.ResetExamWeight()
	_u.mutation.SetExamWeight(v)
	return _u
}

// SetNillableExamWeight sets the "exam_weight" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableExamWeight(v *float64) *SubjectUpdate {
	if v != nil {
		_u.SetExamWeight(*v)
	}
	return _u
}

// AddExamWeight adds value to the "exam_weight" field.
func (_u *SubjectUpdate) AddExamWeight(v float64) *SubjectUpdate {
	_u.mutation.AddExamWeight(v)
	return _u
}

// SetCompletedHours sets the "completed_hours" field.
func (_u *SubjectUpdate) SetCompletedHours(v float64) *SubjectUpdate {
	_u.mutation.ResetCompletedHours()
	_u.mutation.SetCompletedHours(v)
	return _u
}

// SetNillableCompletedHours sets the "completed_hours" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableCompletedHours(v *float64) *SubjectUpdate {
	if v != nil {
		_u.SetCompletedHours(*v)
	}
	return _u
}

// AddCompletedHours adds value to the "completed_hours" field.
func (_u *SubjectUpdate) AddCompletedHours(v float64) *SubjectUpdate {
	_u.mutation.AddCompletedHours(v)
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *SubjectUpdate) SetSessionCount(v int) *SubjectUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableSessionCount(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *SubjectUpdate) AddSessionCount(v int) *SubjectUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *SubjectUpdate) SetAverageScore(v float64) *SubjectUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableAverageScore(v *float64) *SubjectUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *SubjectUpdate) AddAverageScore(v float64) *SubjectUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *SubjectUpdate) SetArchived(v bool) *SubjectUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableArchived(v *bool) *SubjectUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubjectUpdate) SetUpdatedAt(v time.Time) *SubjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdate) Mutation() *SubjectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdate) check() error {
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := subject.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Subject.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(subject.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(subject.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(subject.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(subject.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(subject.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyTargetHours(); ok {
		_spec.SetField(subject.FieldWeeklyTargetHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeeklyTargetHours(); ok {
		_spec.AddField(subject.FieldWeeklyTargetHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(subject.FieldArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(subject.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamWeight(); ok {
		_spec.SetField(subject.FieldExamWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExamWeight(); ok {
		_spec.AddField(subject.FieldExamWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedHours(); ok {
		_spec.SetField(subject.FieldCompletedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletedHours(); ok {
		_spec.AddField(subject.FieldCompletedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(subject.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(subject.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(subject.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(subject.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(subject.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectUpdateOne is the builder for updating a single Subject entity.
type SubjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *SubjectUpdateOne) SetSubjectID(v string) *SubjectUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableSubjectID(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SubjectUpdateOne) SetName(v string) *SubjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableName(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SubjectUpdateOne) SetPriority(v int) *SubjectUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillablePriority(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SubjectUpdateOne) AddPriority(v int) *SubjectUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SubjectUpdateOne) SetDifficulty(v int) *SubjectUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableDifficulty(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *SubjectUpdateOne) AddDifficulty(v int) *SubjectUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetWeeklyTargetHours sets the "weekly_target_hours" field.
func (_u *SubjectUpdateOne) SetWeeklyTargetHours(v float64) *SubjectUpdateOne {
	_u.mutation.ResetWeeklyTargetHours()
	_u.mutation.SetWeeklyTargetHours(v)
	return _u
}

// SetNillableWeeklyTargetHours sets the "weekly_target_hours" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableWeeklyTargetHours(v *float64) *SubjectUpdateOne {
	if v != nil {
		_u.SetWeeklyTargetHours(*v)
	}
	return _u
}

// AddWeeklyTargetHours adds value to the "weekly_target_hours" field.
func (_u *SubjectUpdateOne) AddWeeklyTargetHours(v float64) *SubjectUpdateOne {
	_u.mutation.AddWeeklyTargetHours(v)
	return _u
}

// SetArea sets the "area" field.
func (_u *SubjectUpdateOne) SetArea(v string) *SubjectUpdateOne {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableArea(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SubjectUpdateOne) SetLevel(v string) *SubjectUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableLevel(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetExamWeight sets the "exam_weight" field.
func (_u *SubjectUpdateOne) SetExamWeight(v float64) *SubjectUpdateOne {
	_u.mutation.ResetExamWeight()
	_u.mutation.SetExamWeight(v)
	return _u
}

// SetNillableExamWeight sets the "exam_weight" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableExamWeight(v *float64) *SubjectUpdateOne {
	if v != nil {
		_u.SetExamWeight(*v)
	}
	return _u
}

// AddExamWeight adds value to the "exam_weight" field.
func (_u *SubjectUpdateOne) AddExamWeight(v float64) *SubjectUpdateOne {
	_u.mutation.AddExamWeight(v)
	return _u
}

// SetCompletedHours sets the "completed_hours" field.
func (_u *SubjectUpdateOne) SetCompletedHours(v float64) *SubjectUpdateOne {
	_u.mutation.ResetCompletedHours()
	_u.mutation.SetCompletedHours(v)
	return _u
}

// SetNillableCompletedHours sets the "completed_hours" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableCompletedHours(v *float64) *SubjectUpdateOne {
	if v != nil {
		_u.SetCompletedHours(*v)
	}
	return _u
}

// AddCompletedHours adds value to the "completed_hours" field.
func (_u *SubjectUpdateOne) AddCompletedHours(v float64) *SubjectUpdateOne {
	_u.mutation.AddCompletedHours(v)
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *SubjectUpdateOne) SetSessionCount(v int) *SubjectUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableSessionCount(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *SubjectUpdateOne) AddSessionCount(v int) *SubjectUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *SubjectUpdateOne) SetAverageScore(v float64) *SubjectUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableAverageScore(v *float64) *SubjectUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *SubjectUpdateOne) AddAverageScore(v float64) *SubjectUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *SubjectUpdateOne) SetArchived(v bool) *SubjectUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableArchived(v *bool) *SubjectUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubjectUpdateOne) SetUpdatedAt(v time.Time) *SubjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdateOne) Mutation() *SubjectMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdateOne) Where(ps ...predicate.Subject) *SubjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectUpdateOne) Select(field string, fields ...string) *SubjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subject entity.
func (_u *SubjectUpdateOne) Save(ctx context.Context) (*Subject, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdateOne) SaveX(ctx context.Context) *Subject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdateOne) check() error {
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := subject.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Subject.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectUpdateOne) sqlSave(ctx context.Context) (_node *Subject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subject.FieldID)
		for _, f := range fields {
			if !subject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subject.FieldID {
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
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(subject.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(subject.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(subject.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(subject.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(subject.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyTargetHours(); ok {
		_spec.SetField(subject.FieldWeeklyTargetHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeeklyTargetHours(); ok {
		_spec.AddField(subject.FieldWeeklyTargetHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(subject.FieldArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(subject.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamWeight(); ok {
		_spec.SetField(subject.FieldExamWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExamWeight(); ok {
		_spec.AddField(subject.FieldExamWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedHours(); ok {
		_spec.SetField(subject.FieldCompletedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletedHours(); ok {
		_spec.AddField(subject.FieldCompletedHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(subject.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(subject.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(subject.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(subject.FieldAverageScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(subject.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Subject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
