// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsoarez/planista/ent/studyunit"
)

// StudyUnitCreate is the builder for creating a StudyUnit entity.
type StudyUnitCreate struct {
	config
	mutation *StudyUnitMutation
	hooks    []Hook
}

// SetUnitID sets the "unit_id" field.
func (_c *StudyUnitCreate) SetUnitID(v string) *StudyUnitCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *StudyUnitCreate) SetSubjectID(v string) *StudyUnitCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetRelatedSubjectID sets the "related_subject_id" field.
func (_c *StudyUnitCreate) SetRelatedSubjectID(v string) *StudyUnitCreate {
	_c.mutation.SetRelatedSubjectID(v)
	return _c
}

// SetNillableRelatedSubjectID sets the "related_subject_id" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableRelatedSubjectID(v *string) *StudyUnitCreate {
	if v != nil {
		_c.SetRelatedSubjectID(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *StudyUnitCreate) SetDate(v time.Time) *StudyUnitCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStartMinute sets the "start_minute" field.
func (_c *StudyUnitCreate) SetStartMinute(v int) *StudyUnitCreate {
	_c.mutation.SetStartMinute(v)
	return _c
}

// SetEndMinute sets the "end_minute" field.
func (_c *StudyUnitCreate) SetEndMinute(v int) *StudyUnitCreate {
	_c.mutation.SetEndMinute(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *StudyUnitCreate) SetDurationMinutes(v int) *StudyUnitCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetIsBreak sets the "is_break" field.
func (_c *StudyUnitCreate) SetIsBreak(v bool) *StudyUnitCreate {
	_c.mutation.SetIsBreak(v)
	return _c
}

// SetNillableIsBreak sets the "is_break" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableIsBreak(v *bool) *StudyUnitCreate {
	if v != nil {
		_c.SetIsBreak(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *StudyUnitCreate) SetKind(v string) *StudyUnitCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSessionType sets the "session_type" field.
func (_c *StudyUnitCreate) SetSessionType(v string) *StudyUnitCreate {
	_c.mutation.SetSessionType(v)
	return _c
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableSessionType(v *string) *StudyUnitCreate {
	if v != nil {
		_c.SetSessionType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudyUnitCreate) SetStatus(v string) *StudyUnitCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableStatus(v *string) *StudyUnitCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *StudyUnitCreate) SetPhase(v string) *StudyUnitCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillablePhase(v *string) *StudyUnitCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *StudyUnitCreate) SetTopicName(v string) *StudyUnitCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetNillableTopicName sets the "topic_name" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableTopicName(v *string) *StudyUnitCreate {
	if v != nil {
		_c.SetTopicName(*v)
	}
	return _c
}

// SetStageIndex sets the "stage_index" field.
func (_c *StudyUnitCreate) SetStageIndex(v int) *StudyUnitCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableStageIndex(v *int) *StudyUnitCreate {
	if v != nil {
		_c.SetStageIndex(*v)
	}
	return _c
}

// SetStageTarget sets the "stage_target" field.
func (_c *StudyUnitCreate) SetStageTarget(v int) *StudyUnitCreate {
	_c.mutation.SetStageTarget(v)
	return _c
}

// SetNillableStageTarget sets the "stage_target" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableStageTarget(v *int) *StudyUnitCreate {
	if v != nil {
		_c.SetStageTarget(*v)
	}
	return _c
}

// SetRescheduleCount sets the "reschedule_count" field.
func (_c *StudyUnitCreate) SetRescheduleCount(v int) *StudyUnitCreate {
	_c.mutation.SetRescheduleCount(v)
	return _c
}

// SetNillableRescheduleCount sets the "reschedule_count" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableRescheduleCount(v *int) *StudyUnitCreate {
	if v != nil {
		_c.SetRescheduleCount(*v)
	}
	return _c
}

// SetOriginalDate sets the "original_date" field.
func (_c *StudyUnitCreate) SetOriginalDate(v time.Time) *StudyUnitCreate {
	_c.mutation.SetOriginalDate(v)
	return _c
}

// SetNillableOriginalDate sets the "original_date" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableOriginalDate(v *time.Time) *StudyUnitCreate {
	if v != nil {
		_c.SetOriginalDate(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StudyUnitCreate) SetCompletedAt(v time.Time) *StudyUnitCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableCompletedAt(v *time.Time) *StudyUnitCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudyUnitCreate) SetUpdatedAt(v time.Time) *StudyUnitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudyUnitCreate) SetNillableUpdatedAt(v *time.Time) *StudyUnitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StudyUnitMutation object of the builder.
func (_c *StudyUnitCreate) Mutation() *StudyUnitMutation {
	return _c.mutation
}

// Save creates the StudyUnit in the database.
func (_c *StudyUnitCreate) Save(ctx context.Context) (*StudyUnit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyUnitCreate) SaveX(ctx context.Context) *StudyUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyUnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyUnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyUnitCreate) defaults() {
	if _, ok := _c.mutation.RelatedSubjectID(); !ok {
		v := studyunit.DefaultRelatedSubjectID
		_c.mutation.SetRelatedSubjectID(v)
	}
	if _, ok := _c.mutation.IsBreak(); !ok {
		v := studyunit.DefaultIsBreak
		_c.mutation.SetIsBreak(v)
	}
	if _, ok := _c.mutation.SessionType(); !ok {
		v := studyunit.DefaultSessionType
		_c.mutation.SetSessionType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := studyunit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := studyunit.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		v := studyunit.DefaultTopicName
		_c.mutation.SetTopicName(v)
	}
	if _, ok := _c.mutation.StageIndex(); !ok {
		v := studyunit.DefaultStageIndex
		_c.mutation.SetStageIndex(v)
	}
	if _, ok := _c.mutation.StageTarget(); !ok {
		v := studyunit.DefaultStageTarget
		_c.mutation.SetStageTarget(v)
	}
	if _, ok := _c.mutation.RescheduleCount(); !ok {
		v := studyunit.DefaultRescheduleCount
		_c.mutation.SetRescheduleCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studyunit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyUnitCreate) check() error {
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "StudyUnit.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := studyunit.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "StudyUnit.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := studyunit.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RelatedSubjectID(); !ok {
		return &ValidationError{Name: "related_subject_id", err: errors.New(`ent: missing required field "StudyUnit.related_subject_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "StudyUnit.date"`)}
	}
	if _, ok := _c.mutation.StartMinute(); !ok {
		return &ValidationError{Name: "start_minute", err: errors.New(`ent: missing required field "StudyUnit.start_minute"`)}
	}
	if _, ok := _c.mutation.EndMinute(); !ok {
		return &ValidationError{Name: "end_minute", err: errors.New(`ent: missing required field "StudyUnit.end_minute"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "StudyUnit.duration_minutes"`)}
	}
	if _, ok := _c.mutation.IsBreak(); !ok {
		return &ValidationError{Name: "is_break", err: errors.New(`ent: missing required field "StudyUnit.is_break"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "StudyUnit.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := studyunit.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "StudyUnit.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionType(); !ok {
		return &ValidationError{Name: "session_type", err: errors.New(`ent: missing required field "StudyUnit.session_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StudyUnit.status"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "StudyUnit.phase"`)}
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "StudyUnit.topic_name"`)}
	}
	if _, ok := _c.mutation.StageIndex(); !ok {
		return &ValidationError{Name: "stage_index", err: errors.New(`ent: missing required field "StudyUnit.stage_index"`)}
	}
	if _, ok := _c.mutation.StageTarget(); !ok {
		return &ValidationError{Name: "stage_target", err: errors.New(`ent: missing required field "StudyUnit.stage_target"`)}
	}
	if _, ok := _c.mutation.RescheduleCount(); !ok {
		return &ValidationError{Name: "reschedule_count", err: errors.New(`ent: missing required field "StudyUnit.reschedule_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudyUnit.updated_at"`)}
	}
	return nil
}

func (_c *StudyUnitCreate) sqlSave(ctx context.Context) (*StudyUnit, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudyUnitCreate) createSpec() (*StudyUnit, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyUnit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyunit.Table, sqlgraph.NewFieldSpec(studyunit.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(studyunit.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(studyunit.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.RelatedSubjectID(); ok {
		_spec.SetField(studyunit.FieldRelatedSubjectID, field.TypeString, value)
		_node.RelatedSubjectID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(studyunit.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.StartMinute(); ok {
		_spec.SetField(studyunit.FieldStartMinute, field.TypeInt, value)
		_node.StartMinute = value
	}
	if value, ok := _c.mutation.EndMinute(); ok {
		_spec.SetField(studyunit.FieldEndMinute, field.TypeInt, value)
		_node.EndMinute = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(studyunit.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.IsBreak(); ok {
		_spec.SetField(studyunit.FieldIsBreak, field.TypeBool, value)
		_node.IsBreak = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(studyunit.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.SessionType(); ok {
		_spec.SetField(studyunit.FieldSessionType, field.TypeString, value)
		_node.SessionType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(studyunit.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(studyunit.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(studyunit.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(studyunit.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = value
	}
	if value, ok := _c.mutation.StageTarget(); ok {
		_spec.SetField(studyunit.FieldStageTarget, field.TypeInt, value)
		_node.StageTarget = value
	}
	if value, ok := _c.mutation.RescheduleCount(); ok {
		_spec.SetField(studyunit.FieldRescheduleCount, field.TypeInt, value)
		_node.RescheduleCount = value
	}
	if value, ok := _c.mutation.OriginalDate(); ok {
		_spec.SetField(studyunit.FieldOriginalDate, field.TypeTime, value)
		_node.OriginalDate = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(studyunit.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studyunit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StudyUnitCreateBulk is the builder for creating many StudyUnit entities in bulk.
type StudyUnitCreateBulk struct {
	config
	err      error
	builders []*StudyUnitCreate
}

// Save creates the StudyUnit entities in the database.
func (_c *StudyUnitCreateBulk) Save(ctx context.Context) ([]*StudyUnit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyUnit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyUnitMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudyUnitCreateBulk) SaveX(ctx context.Context) []*StudyUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyUnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyUnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
