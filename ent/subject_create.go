// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsoarez/planista/ent/subject"
)

// SubjectCreate is the builder for creating a Subject entity.
type SubjectCreate struct {
	config
	mutation *SubjectMutation
	hooks    []Hook
}

// SetSubjectID sets the "subject_id" field.
func (_c *SubjectCreate) SetSubjectID(v string) *SubjectCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SubjectCreate) SetName(v string) *SubjectCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SubjectCreate) SetPriority(v int) *SubjectCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SubjectCreate) SetNillablePriority(v *int) *SubjectCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *SubjectCreate) SetDifficulty(v int) *SubjectCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableDifficulty(v *int) *SubjectCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetWeeklyTargetHours sets the "weekly_target_hours" field.
func (_c *SubjectCreate) SetWeeklyTargetHours(v float64) *SubjectCreate {
	_c.mutation.SetWeeklyTargetHours(v)
	return _c
}

// SetNillableWeeklyTargetHours sets the "weekly_target_hours" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableWeeklyTargetHours(v *float64) *SubjectCreate {
	if v != nil {
		_c.SetWeeklyTargetHours(*v)
	}
	return _c
}

// SetArea sets the "area" field.
func (_c *SubjectCreate) SetArea(v string) *SubjectCreate {
	_c.mutation.SetArea(v)
	return _c
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableArea(v *string) *SubjectCreate {
	if v != nil {
		_c.SetArea(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *SubjectCreate) SetLevel(v string) *SubjectCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableLevel(v *string) *SubjectCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetExamWeight sets the "exam_weight" field.
func (_c *SubjectCreate) SetExamWeight(v float64) *SubjectCreate {
	_c.mutation.SetExamWeight(v)
	return _c
}

// SetNillableExamWeight sets the "exam_weight" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableExamWeight(v *float64) *SubjectCreate {
	if v != nil {
		_c.SetExamWeight(*v)
	}
	return _c
}

// SetCompletedHours sets the "completed_hours" field.
func (_c *SubjectCreate) SetCompletedHours(v float64) *SubjectCreate {
	_c.mutation.SetCompletedHours(v)
	return _c
}

// SetNillableCompletedHours sets the "completed_hours" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableCompletedHours(v *float64) *SubjectCreate {
	if v != nil {
		_c.SetCompletedHours(*v)
	}
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *SubjectCreate) SetSessionCount(v int) *SubjectCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableSessionCount(v *int) *SubjectCreate {
	if v != nil {
		_c.SetSessionCount(*v)
	}
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *SubjectCreate) SetAverageScore(v float64) *SubjectCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableAverageScore(v *float64) *SubjectCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *SubjectCreate) SetArchived(v bool) *SubjectCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableArchived(v *bool) *SubjectCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubjectCreate) SetCreatedAt(v time.Time) *SubjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableCreatedAt(v *time.Time) *SubjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubjectCreate) SetUpdatedAt(v time.Time) *SubjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableUpdatedAt(v *time.Time) *SubjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SubjectMutation object of the builder.
func (_c *SubjectCreate) Mutation() *SubjectMutation {
	return _c.mutation
}

// Save creates the Subject in the database.
func (_c *SubjectCreate) Save(ctx context.Context) (*Subject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectCreate) SaveX(ctx context.Context) *Subject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubjectCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := subject.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := subject.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.WeeklyTargetHours(); !ok {
		v := subject.DefaultWeeklyTargetHours
		_c.mutation.SetWeeklyTargetHours(v)
	}
	if _, ok := _c.mutation.Area(); !ok {
		v := subject.DefaultArea
		_c.mutation.SetArea(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := subject.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.ExamWeight(); !ok {
		v := subject.DefaultExamWeight
		_c.mutation.SetExamWeight(v)
	}
	if _, ok := _c.mutation.CompletedHours(); !ok {
		v := subject.DefaultCompletedHours
		_c.mutation.SetCompletedHours(v)
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		v := subject.DefaultSessionCount
		_c.mutation.SetSessionCount(v)
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := subject.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := subject.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subject.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subject.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectCreate) check() error {
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Subject.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := subject.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "Subject.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Subject.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Subject.priority"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Subject.difficulty"`)}
	}
	if _, ok := _c.mutation.WeeklyTargetHours(); !ok {
		return &ValidationError{Name: "weekly_target_hours", err: errors.New(`ent: missing required field "Subject.weekly_target_hours"`)}
	}
	if _, ok := _c.mutation.Area(); !ok {
		return &ValidationError{Name: "area", err: errors.New(`ent: missing required field "Subject.area"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Subject.level"`)}
	}
	if _, ok := _c.mutation.ExamWeight(); !ok {
		return &ValidationError{Name: "exam_weight", err: errors.New(`ent: missing required field "Subject.exam_weight"`)}
	}
	if _, ok := _c.mutation.CompletedHours(); !ok {
		return &ValidationError{Name: "completed_hours", err: errors.New(`ent: missing required field "Subject.completed_hours"`)}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`ent: missing required field "Subject.session_count"`)}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "Subject.average_score"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Subject.archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subject.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subject.updated_at"`)}
	}
	return nil
}

func (_c *SubjectCreate) sqlSave(ctx context.Context) (*Subject, error) {
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

func (_c *SubjectCreate) createSpec() (*Subject, *sqlgraph.CreateSpec) {
	var (
		_node = &Subject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subject.Table, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(subject.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(subject.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(subject.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.WeeklyTargetHours(); ok {
		_spec.SetField(subject.FieldWeeklyTargetHours, field.TypeFloat64, value)
		_node.WeeklyTargetHours = value
	}
	if value, ok := _c.mutation.Area(); ok {
		_spec.SetField(subject.FieldArea, field.TypeString, value)
		_node.Area = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(subject.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.ExamWeight(); ok {
		_spec.SetField(subject.FieldExamWeight, field.TypeFloat64, value)
		_node.ExamWeight = value
	}
	if value, ok := _c.mutation.CompletedHours(); ok {
		_spec.SetField(subject.FieldCompletedHours, field.TypeFloat64, value)
		_node.CompletedHours = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(subject.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(subject.FieldAverageScore, field.TypeFloat64, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(subject.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subject.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SubjectCreateBulk is the builder for creating many Subject entities in bulk.
type SubjectCreateBulk struct {
	config
	err      error
	builders []*SubjectCreate
}

// Save creates the Subject entities in the database.
func (_c *SubjectCreateBulk) Save(ctx context.Context) ([]*Subject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectMutation)
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
func (_c *SubjectCreateBulk) SaveX(ctx context.Context) []*Subject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
