// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/completionevent"
	"github.com/rsoarez/planista/ent/llmrequestevent"
	"github.com/rsoarez/planista/ent/planevent"
	"github.com/rsoarez/planista/ent/predicate"
	"github.com/rsoarez/planista/ent/rescheduleevent"
	"github.com/rsoarez/planista/ent/snapshot"
	"github.com/rsoarez/planista/ent/studyunit"
	"github.com/rsoarez/planista/ent/subject"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompletionEvent = "CompletionEvent"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypePlanEvent       = "PlanEvent"
	TypeRescheduleEvent = "RescheduleEvent"
	TypeSnapshot        = "Snapshot"
	TypeStudyUnit       = "StudyUnit"
	TypeSubject         = "Subject"
)

// CompletionEventMutation represents an operation that mutates the CompletionEvent nodes in the graph.
type CompletionEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	unit_id            *string
	subject_id         *string
	kind               *string
	topic_name         *string
	planned_minutes    *int
	addplanned_minutes *int
	spent_minutes      *int
	addspent_minutes   *int
	accuracy           *float64
	addaccuracy        *float64
	skipped            *bool
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CompletionEvent, error)
	predicates         []predicate.CompletionEvent
}

var _ ent.Mutation = (*CompletionEventMutation)(nil)

// completioneventOption allows management of the mutation configuration using functional options.
type completioneventOption func(*CompletionEventMutation)

// newCompletionEventMutation creates new mutation for the CompletionEvent entity.
func newCompletionEventMutation(c config, op Op, opts ...completioneventOption) *CompletionEventMutation {
	m := &CompletionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCompletionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompletionEventID sets the ID field of the mutation.
func withCompletionEventID(id int) completioneventOption {
	return func(m *CompletionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CompletionEvent
		)
		m.oldValue = func(ctx context.Context) (*CompletionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompletionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompletionEvent sets the old CompletionEvent of the mutation.
func withCompletionEvent(node *CompletionEvent) completioneventOption {
	return func(m *CompletionEventMutation) {
		m.oldValue = func(context.Context) (*CompletionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompletionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompletionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompletionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompletionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompletionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *CompletionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *CompletionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *CompletionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *CompletionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *CompletionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CompletionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CompletionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CompletionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUnitID sets the "unit_id" field.
func (m *CompletionEventMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *CompletionEventMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *CompletionEventMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *CompletionEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *CompletionEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *CompletionEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetKind sets the "kind" field.
func (m *CompletionEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CompletionEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CompletionEventMutation) ResetKind() {
	m.kind = nil
}

// SetTopicName sets the "topic_name" field.
func (m *CompletionEventMutation) SetTopicName(s string) {
	m.topic_name = &s
}

// TopicName returns the value of the "topic_name" field in the mutation.
func (m *CompletionEventMutation) TopicName() (r string, exists bool) {
	v := m.topic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicName returns the old "topic_name" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldTopicName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicName: %w", err)
	}
	return oldValue.TopicName, nil
}

// ResetTopicName resets all changes to the "topic_name" field.
func (m *CompletionEventMutation) ResetTopicName() {
	m.topic_name = nil
}

// SetPlannedMinutes sets the "planned_minutes" field.
func (m *CompletionEventMutation) SetPlannedMinutes(i int) {
	m.planned_minutes = &i
	m.addplanned_minutes = nil
}

// PlannedMinutes returns the value of the "planned_minutes" field in the mutation.
func (m *CompletionEventMutation) PlannedMinutes() (r int, exists bool) {
	v := m.planned_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedMinutes returns the old "planned_minutes" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldPlannedMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedMinutes: %w", err)
	}
	return oldValue.PlannedMinutes, nil
}

// AddPlannedMinutes adds i to the "planned_minutes" field.
func (m *CompletionEventMutation) AddPlannedMinutes(i int) {
	if m.addplanned_minutes != nil {
		*m.addplanned_minutes += i
	} else {
		m.addplanned_minutes = &i
	}
}

// AddedPlannedMinutes returns the value that was added to the "planned_minutes" field in this mutation.
func (m *CompletionEventMutation) AddedPlannedMinutes() (r int, exists bool) {
	v := m.addplanned_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlannedMinutes resets all changes to the "planned_minutes" field.
func (m *CompletionEventMutation) ResetPlannedMinutes() {
	m.planned_minutes = nil
	m.addplanned_minutes = nil
}

// SetSpentMinutes sets the "spent_minutes" field.
func (m *CompletionEventMutation) SetSpentMinutes(i int) {
	m.spent_minutes = &i
	m.addspent_minutes = nil
}

// SpentMinutes returns the value of the "spent_minutes" field in the mutation.
func (m *CompletionEventMutation) SpentMinutes() (r int, exists bool) {
	v := m.spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldSpentMinutes returns the old "spent_minutes" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldSpentMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpentMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpentMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpentMinutes: %w", err)
	}
	return oldValue.SpentMinutes, nil
}

// AddSpentMinutes adds i to the "spent_minutes" field.
func (m *CompletionEventMutation) AddSpentMinutes(i int) {
	if m.addspent_minutes != nil {
		*m.addspent_minutes += i
	} else {
		m.addspent_minutes = &i
	}
}

// AddedSpentMinutes returns the value that was added to the "spent_minutes" field in this mutation.
func (m *CompletionEventMutation) AddedSpentMinutes() (r int, exists bool) {
	v := m.addspent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpentMinutes resets all changes to the "spent_minutes" field.
func (m *CompletionEventMutation) ResetSpentMinutes() {
	m.spent_minutes = nil
	m.addspent_minutes = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *CompletionEventMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *CompletionEventMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *CompletionEventMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *CompletionEventMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *CompletionEventMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetSkipped sets the "skipped" field.
func (m *CompletionEventMutation) SetSkipped(b bool) {
	m.skipped = &b
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *CompletionEventMutation) Skipped() (r bool, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the CompletionEvent entity.
// If the CompletionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionEventMutation) OldSkipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *CompletionEventMutation) ResetSkipped() {
	m.skipped = nil
}

// Where appends a list predicates to the CompletionEventMutation builder.
func (m *CompletionEventMutation) Where(ps ...predicate.CompletionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompletionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompletionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompletionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompletionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompletionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompletionEvent).
func (m *CompletionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompletionEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, completionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, completionevent.FieldTimestamp)
	}
	if m.unit_id != nil {
		fields = append(fields, completionevent.FieldUnitID)
	}
	if m.subject_id != nil {
		fields = append(fields, completionevent.FieldSubjectID)
	}
	if m.kind != nil {
		fields = append(fields, completionevent.FieldKind)
	}
	if m.topic_name != nil {
		fields = append(fields, completionevent.FieldTopicName)
	}
	if m.planned_minutes != nil {
		fields = append(fields, completionevent.FieldPlannedMinutes)
	}
	if m.spent_minutes != nil {
		fields = append(fields, completionevent.FieldSpentMinutes)
	}
	if m.accuracy != nil {
		fields = append(fields, completionevent.FieldAccuracy)
	}
	if m.skipped != nil {
		fields = append(fields, completionevent.FieldSkipped)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompletionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case completionevent.FieldSequence:
		return m.Sequence()
	case completionevent.FieldTimestamp:
		return m.Timestamp()
	case completionevent.FieldUnitID:
		return m.UnitID()
	case completionevent.FieldSubjectID:
		return m.SubjectID()
	case completionevent.FieldKind:
		return m.Kind()
	case completionevent.FieldTopicName:
		return m.TopicName()
	case completionevent.FieldPlannedMinutes:
		return m.PlannedMinutes()
	case completionevent.FieldSpentMinutes:
		return m.SpentMinutes()
	case completionevent.FieldAccuracy:
		return m.Accuracy()
	case completionevent.FieldSkipped:
		return m.Skipped()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompletionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case completionevent.FieldSequence:
		return m.OldSequence(ctx)
	case completionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case completionevent.FieldUnitID:
		return m.OldUnitID(ctx)
	case completionevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case completionevent.FieldKind:
		return m.OldKind(ctx)
	case completionevent.FieldTopicName:
		return m.OldTopicName(ctx)
	case completionevent.FieldPlannedMinutes:
		return m.OldPlannedMinutes(ctx)
	case completionevent.FieldSpentMinutes:
		return m.OldSpentMinutes(ctx)
	case completionevent.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case completionevent.FieldSkipped:
		return m.OldSkipped(ctx)
	}
	return nil, fmt.Errorf("unknown CompletionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case completionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case completionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case completionevent.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case completionevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case completionevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case completionevent.FieldTopicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicName(v)
		return nil
	case completionevent.FieldPlannedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedMinutes(v)
		return nil
	case completionevent.FieldSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpentMinutes(v)
		return nil
	case completionevent.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case completionevent.FieldSkipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	}
	return fmt.Errorf("unknown CompletionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompletionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, completionevent.FieldSequence)
	}
	if m.addplanned_minutes != nil {
		fields = append(fields, completionevent.FieldPlannedMinutes)
	}
	if m.addspent_minutes != nil {
		fields = append(fields, completionevent.FieldSpentMinutes)
	}
	if m.addaccuracy != nil {
		fields = append(fields, completionevent.FieldAccuracy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompletionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case completionevent.FieldSequence:
		return m.AddedSequence()
	case completionevent.FieldPlannedMinutes:
		return m.AddedPlannedMinutes()
	case completionevent.FieldSpentMinutes:
		return m.AddedSpentMinutes()
	case completionevent.FieldAccuracy:
		return m.AddedAccuracy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case completionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case completionevent.FieldPlannedMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlannedMinutes(v)
		return nil
	case completionevent.FieldSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpentMinutes(v)
		return nil
	case completionevent.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	}
	return fmt.Errorf("unknown CompletionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompletionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompletionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompletionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CompletionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompletionEventMutation) ResetField(name string) error {
	switch name {
	case completionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case completionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case completionevent.FieldUnitID:
		m.ResetUnitID()
		return nil
	case completionevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case completionevent.FieldKind:
		m.ResetKind()
		return nil
	case completionevent.FieldTopicName:
		m.ResetTopicName()
		return nil
	case completionevent.FieldPlannedMinutes:
		m.ResetPlannedMinutes()
		return nil
	case completionevent.FieldSpentMinutes:
		m.ResetSpentMinutes()
		return nil
	case completionevent.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case completionevent.FieldSkipped:
		m.ResetSkipped()
		return nil
	}
	return fmt.Errorf("unknown CompletionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompletionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompletionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompletionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompletionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompletionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompletionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompletionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CompletionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompletionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CompletionEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PlanEventMutation represents an operation that mutates the PlanEvent nodes in the graph.
type PlanEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	fingerprint    *string
	range_start    *time.Time
	range_end      *time.Time
	unit_count     *int
	addunit_count  *int
	total_hours    *float64
	addtotal_hours *float64
	cache_hit      *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PlanEvent, error)
	predicates     []predicate.PlanEvent
}

var _ ent.Mutation = (*PlanEventMutation)(nil)

// planeventOption allows management of the mutation configuration using functional options.
type planeventOption func(*PlanEventMutation)

// newPlanEventMutation creates new mutation for the PlanEvent entity.
func newPlanEventMutation(c config, op Op, opts ...planeventOption) *PlanEventMutation {
	m := &PlanEventMutation{
		config:        c,
		op:            op,
		typ:           TypePlanEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanEventID sets the ID field of the mutation.
func withPlanEventID(id int) planeventOption {
	return func(m *PlanEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanEvent
		)
		m.oldValue = func(ctx context.Context) (*PlanEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanEvent sets the old PlanEvent of the mutation.
func withPlanEvent(node *PlanEvent) planeventOption {
	return func(m *PlanEventMutation) {
		m.oldValue = func(context.Context) (*PlanEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PlanEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PlanEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PlanEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PlanEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PlanEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PlanEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PlanEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PlanEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *PlanEventMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *PlanEventMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *PlanEventMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetRangeStart sets the "range_start" field.
func (m *PlanEventMutation) SetRangeStart(t time.Time) {
	m.range_start = &t
}

// RangeStart returns the value of the "range_start" field in the mutation.
func (m *PlanEventMutation) RangeStart() (r time.Time, exists bool) {
	v := m.range_start
	if v == nil {
		return
	}
	return *v, true
}

// OldRangeStart returns the old "range_start" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldRangeStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRangeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRangeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRangeStart: %w", err)
	}
	return oldValue.RangeStart, nil
}

// ResetRangeStart resets all changes to the "range_start" field.
func (m *PlanEventMutation) ResetRangeStart() {
	m.range_start = nil
}

// SetRangeEnd sets the "range_end" field.
func (m *PlanEventMutation) SetRangeEnd(t time.Time) {
	m.range_end = &t
}

// RangeEnd returns the value of the "range_end" field in the mutation.
func (m *PlanEventMutation) RangeEnd() (r time.Time, exists bool) {
	v := m.range_end
	if v == nil {
		return
	}
	return *v, true
}

// OldRangeEnd returns the old "range_end" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldRangeEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRangeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRangeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRangeEnd: %w", err)
	}
	return oldValue.RangeEnd, nil
}

// ResetRangeEnd resets all changes to the "range_end" field.
func (m *PlanEventMutation) ResetRangeEnd() {
	m.range_end = nil
}

// SetUnitCount sets the "unit_count" field.
func (m *PlanEventMutation) SetUnitCount(i int) {
	m.unit_count = &i
	m.addunit_count = nil
}

// UnitCount returns the value of the "unit_count" field in the mutation.
func (m *PlanEventMutation) UnitCount() (r int, exists bool) {
	v := m.unit_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitCount returns the old "unit_count" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldUnitCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitCount: %w", err)
	}
	return oldValue.UnitCount, nil
}

// AddUnitCount adds i to the "unit_count" field.
func (m *PlanEventMutation) AddUnitCount(i int) {
	if m.addunit_count != nil {
		*m.addunit_count += i
	} else {
		m.addunit_count = &i
	}
}

// AddedUnitCount returns the value that was added to the "unit_count" field in this mutation.
func (m *PlanEventMutation) AddedUnitCount() (r int, exists bool) {
	v := m.addunit_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitCount resets all changes to the "unit_count" field.
func (m *PlanEventMutation) ResetUnitCount() {
	m.unit_count = nil
	m.addunit_count = nil
}

// SetTotalHours sets the "total_hours" field.
func (m *PlanEventMutation) SetTotalHours(f float64) {
	m.total_hours = &f
	m.addtotal_hours = nil
}

// TotalHours returns the value of the "total_hours" field in the mutation.
func (m *PlanEventMutation) TotalHours() (r float64, exists bool) {
	v := m.total_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalHours returns the old "total_hours" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldTotalHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalHours: %w", err)
	}
	return oldValue.TotalHours, nil
}

// AddTotalHours adds f to the "total_hours" field.
func (m *PlanEventMutation) AddTotalHours(f float64) {
	if m.addtotal_hours != nil {
		*m.addtotal_hours += f
	} else {
		m.addtotal_hours = &f
	}
}

// AddedTotalHours returns the value that was added to the "total_hours" field in this mutation.
func (m *PlanEventMutation) AddedTotalHours() (r float64, exists bool) {
	v := m.addtotal_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalHours resets all changes to the "total_hours" field.
func (m *PlanEventMutation) ResetTotalHours() {
	m.total_hours = nil
	m.addtotal_hours = nil
}

// SetCacheHit sets the "cache_hit" field.
func (m *PlanEventMutation) SetCacheHit(b bool) {
	m.cache_hit = &b
}

// CacheHit returns the value of the "cache_hit" field in the mutation.
func (m *PlanEventMutation) CacheHit() (r bool, exists bool) {
	v := m.cache_hit
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheHit returns the old "cache_hit" field's value of the PlanEvent entity.
// If the PlanEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanEventMutation) OldCacheHit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheHit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheHit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheHit: %w", err)
	}
	return oldValue.CacheHit, nil
}

// ResetCacheHit resets all changes to the "cache_hit" field.
func (m *PlanEventMutation) ResetCacheHit() {
	m.cache_hit = nil
}

// Where appends a list predicates to the PlanEventMutation builder.
func (m *PlanEventMutation) Where(ps ...predicate.PlanEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanEvent).
func (m *PlanEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, planevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, planevent.FieldTimestamp)
	}
	if m.fingerprint != nil {
		fields = append(fields, planevent.FieldFingerprint)
	}
	if m.range_start != nil {
		fields = append(fields, planevent.FieldRangeStart)
	}
	if m.range_end != nil {
		fields = append(fields, planevent.FieldRangeEnd)
	}
	if m.unit_count != nil {
		fields = append(fields, planevent.FieldUnitCount)
	}
	if m.total_hours != nil {
		fields = append(fields, planevent.FieldTotalHours)
	}
	if m.cache_hit != nil {
		fields = append(fields, planevent.FieldCacheHit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case planevent.FieldSequence:
		return m.Sequence()
	case planevent.FieldTimestamp:
		return m.Timestamp()
	case planevent.FieldFingerprint:
		return m.Fingerprint()
	case planevent.FieldRangeStart:
		return m.RangeStart()
	case planevent.FieldRangeEnd:
		return m.RangeEnd()
	case planevent.FieldUnitCount:
		return m.UnitCount()
	case planevent.FieldTotalHours:
		return m.TotalHours()
	case planevent.FieldCacheHit:
		return m.CacheHit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case planevent.FieldSequence:
		return m.OldSequence(ctx)
	case planevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case planevent.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case planevent.FieldRangeStart:
		return m.OldRangeStart(ctx)
	case planevent.FieldRangeEnd:
		return m.OldRangeEnd(ctx)
	case planevent.FieldUnitCount:
		return m.OldUnitCount(ctx)
	case planevent.FieldTotalHours:
		return m.OldTotalHours(ctx)
	case planevent.FieldCacheHit:
		return m.OldCacheHit(ctx)
	}
	return nil, fmt.Errorf("unknown PlanEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case planevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case planevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case planevent.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case planevent.FieldRangeStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRangeStart(v)
		return nil
	case planevent.FieldRangeEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRangeEnd(v)
		return nil
	case planevent.FieldUnitCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitCount(v)
		return nil
	case planevent.FieldTotalHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalHours(v)
		return nil
	case planevent.FieldCacheHit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheHit(v)
		return nil
	}
	return fmt.Errorf("unknown PlanEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, planevent.FieldSequence)
	}
	if m.addunit_count != nil {
		fields = append(fields, planevent.FieldUnitCount)
	}
	if m.addtotal_hours != nil {
		fields = append(fields, planevent.FieldTotalHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case planevent.FieldSequence:
		return m.AddedSequence()
	case planevent.FieldUnitCount:
		return m.AddedUnitCount()
	case planevent.FieldTotalHours:
		return m.AddedTotalHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case planevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case planevent.FieldUnitCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitCount(v)
		return nil
	case planevent.FieldTotalHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalHours(v)
		return nil
	}
	return fmt.Errorf("unknown PlanEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PlanEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanEventMutation) ResetField(name string) error {
	switch name {
	case planevent.FieldSequence:
		m.ResetSequence()
		return nil
	case planevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case planevent.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case planevent.FieldRangeStart:
		m.ResetRangeStart()
		return nil
	case planevent.FieldRangeEnd:
		m.ResetRangeEnd()
		return nil
	case planevent.FieldUnitCount:
		m.ResetUnitCount()
		return nil
	case planevent.FieldTotalHours:
		m.ResetTotalHours()
		return nil
	case planevent.FieldCacheHit:
		m.ResetCacheHit()
		return nil
	}
	return fmt.Errorf("unknown PlanEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlanEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlanEvent edge %s", name)
}

// RescheduleEventMutation represents an operation that mutates the RescheduleEvent nodes in the graph.
type RescheduleEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	unit_id           *string
	subject_id        *string
	from_date         *time.Time
	to_date           *time.Time
	days_overdue      *int
	adddays_overdue   *int
	priority_score    *float64
	addpriority_score *float64
	reason            *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*RescheduleEvent, error)
	predicates        []predicate.RescheduleEvent
}

var _ ent.Mutation = (*RescheduleEventMutation)(nil)

// rescheduleeventOption allows management of the mutation configuration using functional options.
type rescheduleeventOption func(*RescheduleEventMutation)

// newRescheduleEventMutation creates new mutation for the RescheduleEvent entity.
func newRescheduleEventMutation(c config, op Op, opts ...rescheduleeventOption) *RescheduleEventMutation {
	m := &RescheduleEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRescheduleEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRescheduleEventID sets the ID field of the mutation.
func withRescheduleEventID(id int) rescheduleeventOption {
	return func(m *RescheduleEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RescheduleEvent
		)
		m.oldValue = func(ctx context.Context) (*RescheduleEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RescheduleEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRescheduleEvent sets the old RescheduleEvent of the mutation.
func withRescheduleEvent(node *RescheduleEvent) rescheduleeventOption {
	return func(m *RescheduleEventMutation) {
		m.oldValue = func(context.Context) (*RescheduleEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RescheduleEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RescheduleEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RescheduleEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RescheduleEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RescheduleEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *RescheduleEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RescheduleEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RescheduleEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RescheduleEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RescheduleEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *RescheduleEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RescheduleEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RescheduleEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUnitID sets the "unit_id" field.
func (m *RescheduleEventMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *RescheduleEventMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *RescheduleEventMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *RescheduleEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *RescheduleEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *RescheduleEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetFromDate sets the "from_date" field.
func (m *RescheduleEventMutation) SetFromDate(t time.Time) {
	m.from_date = &t
}

// FromDate returns the value of the "from_date" field in the mutation.
func (m *RescheduleEventMutation) FromDate() (r time.Time, exists bool) {
	v := m.from_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFromDate returns the old "from_date" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldFromDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromDate: %w", err)
	}
	return oldValue.FromDate, nil
}

// ResetFromDate resets all changes to the "from_date" field.
func (m *RescheduleEventMutation) ResetFromDate() {
	m.from_date = nil
}

// SetToDate sets the "to_date" field.
func (m *RescheduleEventMutation) SetToDate(t time.Time) {
	m.to_date = &t
}

// ToDate returns the value of the "to_date" field in the mutation.
func (m *RescheduleEventMutation) ToDate() (r time.Time, exists bool) {
	v := m.to_date
	if v == nil {
		return
	}
	return *v, true
}

// OldToDate returns the old "to_date" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldToDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToDate: %w", err)
	}
	return oldValue.ToDate, nil
}

// ResetToDate resets all changes to the "to_date" field.
func (m *RescheduleEventMutation) ResetToDate() {
	m.to_date = nil
}

// SetDaysOverdue sets the "days_overdue" field.
func (m *RescheduleEventMutation) SetDaysOverdue(i int) {
	m.days_overdue = &i
	m.adddays_overdue = nil
}

// DaysOverdue returns the value of the "days_overdue" field in the mutation.
func (m *RescheduleEventMutation) DaysOverdue() (r int, exists bool) {
	v := m.days_overdue
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysOverdue returns the old "days_overdue" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldDaysOverdue(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysOverdue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysOverdue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysOverdue: %w", err)
	}
	return oldValue.DaysOverdue, nil
}

// AddDaysOverdue adds i to the "days_overdue" field.
func (m *RescheduleEventMutation) AddDaysOverdue(i int) {
	if m.adddays_overdue != nil {
		*m.adddays_overdue += i
	} else {
		m.adddays_overdue = &i
	}
}

// AddedDaysOverdue returns the value that was added to the "days_overdue" field in this mutation.
func (m *RescheduleEventMutation) AddedDaysOverdue() (r int, exists bool) {
	v := m.adddays_overdue
	if v == nil {
		return
	}
	return *v, true
}

// ResetDaysOverdue resets all changes to the "days_overdue" field.
func (m *RescheduleEventMutation) ResetDaysOverdue() {
	m.days_overdue = nil
	m.adddays_overdue = nil
}

// SetPriorityScore sets the "priority_score" field.
func (m *RescheduleEventMutation) SetPriorityScore(f float64) {
	m.priority_score = &f
	m.addpriority_score = nil
}

// PriorityScore returns the value of the "priority_score" field in the mutation.
func (m *RescheduleEventMutation) PriorityScore() (r float64, exists bool) {
	v := m.priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityScore returns the old "priority_score" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldPriorityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityScore: %w", err)
	}
	return oldValue.PriorityScore, nil
}

// AddPriorityScore adds f to the "priority_score" field.
func (m *RescheduleEventMutation) AddPriorityScore(f float64) {
	if m.addpriority_score != nil {
		*m.addpriority_score += f
	} else {
		m.addpriority_score = &f
	}
}

// AddedPriorityScore returns the value that was added to the "priority_score" field in this mutation.
func (m *RescheduleEventMutation) AddedPriorityScore() (r float64, exists bool) {
	v := m.addpriority_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityScore resets all changes to the "priority_score" field.
func (m *RescheduleEventMutation) ResetPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
}

// SetReason sets the "reason" field.
func (m *RescheduleEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *RescheduleEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the RescheduleEvent entity.
// If the RescheduleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *RescheduleEventMutation) ResetReason() {
	m.reason = nil
}

// Where appends a list predicates to the RescheduleEventMutation builder.
func (m *RescheduleEventMutation) Where(ps ...predicate.RescheduleEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RescheduleEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RescheduleEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RescheduleEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RescheduleEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RescheduleEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RescheduleEvent).
func (m *RescheduleEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RescheduleEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, rescheduleevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, rescheduleevent.FieldTimestamp)
	}
	if m.unit_id != nil {
		fields = append(fields, rescheduleevent.FieldUnitID)
	}
	if m.subject_id != nil {
		fields = append(fields, rescheduleevent.FieldSubjectID)
	}
	if m.from_date != nil {
		fields = append(fields, rescheduleevent.FieldFromDate)
	}
	if m.to_date != nil {
		fields = append(fields, rescheduleevent.FieldToDate)
	}
	if m.days_overdue != nil {
		fields = append(fields, rescheduleevent.FieldDaysOverdue)
	}
	if m.priority_score != nil {
		fields = append(fields, rescheduleevent.FieldPriorityScore)
	}
	if m.reason != nil {
		fields = append(fields, rescheduleevent.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RescheduleEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rescheduleevent.FieldSequence:
		return m.Sequence()
	case rescheduleevent.FieldTimestamp:
		return m.Timestamp()
	case rescheduleevent.FieldUnitID:
		return m.UnitID()
	case rescheduleevent.FieldSubjectID:
		return m.SubjectID()
	case rescheduleevent.FieldFromDate:
		return m.FromDate()
	case rescheduleevent.FieldToDate:
		return m.ToDate()
	case rescheduleevent.FieldDaysOverdue:
		return m.DaysOverdue()
	case rescheduleevent.FieldPriorityScore:
		return m.PriorityScore()
	case rescheduleevent.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RescheduleEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rescheduleevent.FieldSequence:
		return m.OldSequence(ctx)
	case rescheduleevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case rescheduleevent.FieldUnitID:
		return m.OldUnitID(ctx)
	case rescheduleevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case rescheduleevent.FieldFromDate:
		return m.OldFromDate(ctx)
	case rescheduleevent.FieldToDate:
		return m.OldToDate(ctx)
	case rescheduleevent.FieldDaysOverdue:
		return m.OldDaysOverdue(ctx)
	case rescheduleevent.FieldPriorityScore:
		return m.OldPriorityScore(ctx)
	case rescheduleevent.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown RescheduleEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RescheduleEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rescheduleevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case rescheduleevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case rescheduleevent.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case rescheduleevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case rescheduleevent.FieldFromDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromDate(v)
		return nil
	case rescheduleevent.FieldToDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToDate(v)
		return nil
	case rescheduleevent.FieldDaysOverdue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysOverdue(v)
		return nil
	case rescheduleevent.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityScore(v)
		return nil
	case rescheduleevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown RescheduleEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RescheduleEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, rescheduleevent.FieldSequence)
	}
	if m.adddays_overdue != nil {
		fields = append(fields, rescheduleevent.FieldDaysOverdue)
	}
	if m.addpriority_score != nil {
		fields = append(fields, rescheduleevent.FieldPriorityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RescheduleEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rescheduleevent.FieldSequence:
		return m.AddedSequence()
	case rescheduleevent.FieldDaysOverdue:
		return m.AddedDaysOverdue()
	case rescheduleevent.FieldPriorityScore:
		return m.AddedPriorityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RescheduleEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rescheduleevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case rescheduleevent.FieldDaysOverdue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDaysOverdue(v)
		return nil
	case rescheduleevent.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityScore(v)
		return nil
	}
	return fmt.Errorf("unknown RescheduleEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RescheduleEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RescheduleEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RescheduleEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RescheduleEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RescheduleEventMutation) ResetField(name string) error {
	switch name {
	case rescheduleevent.FieldSequence:
		m.ResetSequence()
		return nil
	case rescheduleevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case rescheduleevent.FieldUnitID:
		m.ResetUnitID()
		return nil
	case rescheduleevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case rescheduleevent.FieldFromDate:
		m.ResetFromDate()
		return nil
	case rescheduleevent.FieldToDate:
		m.ResetToDate()
		return nil
	case rescheduleevent.FieldDaysOverdue:
		m.ResetDaysOverdue()
		return nil
	case rescheduleevent.FieldPriorityScore:
		m.ResetPriorityScore()
		return nil
	case rescheduleevent.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown RescheduleEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RescheduleEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RescheduleEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RescheduleEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RescheduleEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RescheduleEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RescheduleEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RescheduleEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RescheduleEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RescheduleEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RescheduleEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// StudyUnitMutation represents an operation that mutates the StudyUnit nodes in the graph.
type StudyUnitMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	unit_id             *string
	subject_id          *string
	related_subject_id  *string
	date                *time.Time
	start_minute        *int
	addstart_minute     *int
	end_minute          *int
	addend_minute       *int
	duration_minutes    *int
	addduration_minutes *int
	is_break            *bool
	kind                *string
	session_type        *string
	status              *string
	phase               *string
	topic_name          *string
	stage_index         *int
	addstage_index      *int
	stage_target        *int
	addstage_target     *int
	reschedule_count    *int
	addreschedule_count *int
	original_date       *time.Time
	completed_at        *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StudyUnit, error)
	predicates          []predicate.StudyUnit
}

var _ ent.Mutation = (*StudyUnitMutation)(nil)

// studyunitOption allows management of the mutation configuration using functional options.
type studyunitOption func(*StudyUnitMutation)

// newStudyUnitMutation creates new mutation for the StudyUnit entity.
func newStudyUnitMutation(c config, op Op, opts ...studyunitOption) *StudyUnitMutation {
	m := &StudyUnitMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyUnit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyUnitID sets the ID field of the mutation.
func withStudyUnitID(id int) studyunitOption {
	return func(m *StudyUnitMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyUnit
		)
		m.oldValue = func(ctx context.Context) (*StudyUnit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyUnit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyUnit sets the old StudyUnit of the mutation.
func withStudyUnit(node *StudyUnit) studyunitOption {
	return func(m *StudyUnitMutation) {
		m.oldValue = func(context.Context) (*StudyUnit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyUnitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyUnitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyUnitMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyUnitMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyUnit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUnitID sets the "unit_id" field.
func (m *StudyUnitMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *StudyUnitMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *StudyUnitMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *StudyUnitMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *StudyUnitMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *StudyUnitMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetRelatedSubjectID sets the "related_subject_id" field.
func (m *StudyUnitMutation) SetRelatedSubjectID(s string) {
	m.related_subject_id = &s
}

// RelatedSubjectID returns the value of the "related_subject_id" field in the mutation.
func (m *StudyUnitMutation) RelatedSubjectID() (r string, exists bool) {
	v := m.related_subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedSubjectID returns the old "related_subject_id" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldRelatedSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedSubjectID: %w", err)
	}
	return oldValue.RelatedSubjectID, nil
}

// ResetRelatedSubjectID resets all changes to the "related_subject_id" field.
func (m *StudyUnitMutation) ResetRelatedSubjectID() {
	m.related_subject_id = nil
}

// SetDate sets the "date" field.
func (m *StudyUnitMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *StudyUnitMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *StudyUnitMutation) ResetDate() {
	m.date = nil
}

// SetStartMinute sets the "start_minute" field.
func (m *StudyUnitMutation) SetStartMinute(i int) {
	m.start_minute = &i
	m.addstart_minute = nil
}

// StartMinute returns the value of the "start_minute" field in the mutation.
func (m *StudyUnitMutation) StartMinute() (r int, exists bool) {
	v := m.start_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldStartMinute returns the old "start_minute" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldStartMinute(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartMinute: %w", err)
	}
	return oldValue.StartMinute, nil
}

// AddStartMinute adds i to the "start_minute" field.
func (m *StudyUnitMutation) AddStartMinute(i int) {
	if m.addstart_minute != nil {
		*m.addstart_minute += i
	} else {
		m.addstart_minute = &i
	}
}

// AddedStartMinute returns the value that was added to the "start_minute" field in this mutation.
func (m *StudyUnitMutation) AddedStartMinute() (r int, exists bool) {
	v := m.addstart_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartMinute resets all changes to the "start_minute" field.
func (m *StudyUnitMutation) ResetStartMinute() {
	m.start_minute = nil
	m.addstart_minute = nil
}

// SetEndMinute sets the "end_minute" field.
func (m *StudyUnitMutation) SetEndMinute(i int) {
	m.end_minute = &i
	m.addend_minute = nil
}

// EndMinute returns the value of the "end_minute" field in the mutation.
func (m *StudyUnitMutation) EndMinute() (r int, exists bool) {
	v := m.end_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldEndMinute returns the old "end_minute" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldEndMinute(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndMinute: %w", err)
	}
	return oldValue.EndMinute, nil
}

// AddEndMinute adds i to the "end_minute" field.
func (m *StudyUnitMutation) AddEndMinute(i int) {
	if m.addend_minute != nil {
		*m.addend_minute += i
	} else {
		m.addend_minute = &i
	}
}

// AddedEndMinute returns the value that was added to the "end_minute" field in this mutation.
func (m *StudyUnitMutation) AddedEndMinute() (r int, exists bool) {
	v := m.addend_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndMinute resets all changes to the "end_minute" field.
func (m *StudyUnitMutation) ResetEndMinute() {
	m.end_minute = nil
	m.addend_minute = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *StudyUnitMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *StudyUnitMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *StudyUnitMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *StudyUnitMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *StudyUnitMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetIsBreak sets the "is_break" field.
func (m *StudyUnitMutation) SetIsBreak(b bool) {
	m.is_break = &b
}

// IsBreak returns the value of the "is_break" field in the mutation.
func (m *StudyUnitMutation) IsBreak() (r bool, exists bool) {
	v := m.is_break
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBreak returns the old "is_break" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldIsBreak(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBreak: %w", err)
	}
	return oldValue.IsBreak, nil
}

// ResetIsBreak resets all changes to the "is_break" field.
func (m *StudyUnitMutation) ResetIsBreak() {
	m.is_break = nil
}

// SetKind sets the "kind" field.
func (m *StudyUnitMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *StudyUnitMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *StudyUnitMutation) ResetKind() {
	m.kind = nil
}

// SetSessionType sets the "session_type" field.
func (m *StudyUnitMutation) SetSessionType(s string) {
	m.session_type = &s
}

// SessionType returns the value of the "session_type" field in the mutation.
func (m *StudyUnitMutation) SessionType() (r string, exists bool) {
	v := m.session_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionType returns the old "session_type" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldSessionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionType: %w", err)
	}
	return oldValue.SessionType, nil
}

// ResetSessionType resets all changes to the "session_type" field.
func (m *StudyUnitMutation) ResetSessionType() {
	m.session_type = nil
}

// SetStatus sets the "status" field.
func (m *StudyUnitMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudyUnitMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StudyUnitMutation) ResetStatus() {
	m.status = nil
}

// SetPhase sets the "phase" field.
func (m *StudyUnitMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *StudyUnitMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *StudyUnitMutation) ResetPhase() {
	m.phase = nil
}

// SetTopicName sets the "topic_name" field.
func (m *StudyUnitMutation) SetTopicName(s string) {
	m.topic_name = &s
}

// TopicName returns the value of the "topic_name" field in the mutation.
func (m *StudyUnitMutation) TopicName() (r string, exists bool) {
	v := m.topic_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicName returns the old "topic_name" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldTopicName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicName: %w", err)
	}
	return oldValue.TopicName, nil
}

// ResetTopicName resets all changes to the "topic_name" field.
func (m *StudyUnitMutation) ResetTopicName() {
	m.topic_name = nil
}

// SetStageIndex sets the "stage_index" field.
func (m *StudyUnitMutation) SetStageIndex(i int) {
	m.stage_index = &i
	m.addstage_index = nil
}

// StageIndex returns the value of the "stage_index" field in the mutation.
func (m *StudyUnitMutation) StageIndex() (r int, exists bool) {
	v := m.stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStageIndex returns the old "stage_index" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldStageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageIndex: %w", err)
	}
	return oldValue.StageIndex, nil
}

// AddStageIndex adds i to the "stage_index" field.
func (m *StudyUnitMutation) AddStageIndex(i int) {
	if m.addstage_index != nil {
		*m.addstage_index += i
	} else {
		m.addstage_index = &i
	}
}

// AddedStageIndex returns the value that was added to the "stage_index" field in this mutation.
func (m *StudyUnitMutation) AddedStageIndex() (r int, exists bool) {
	v := m.addstage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageIndex resets all changes to the "stage_index" field.
func (m *StudyUnitMutation) ResetStageIndex() {
	m.stage_index = nil
	m.addstage_index = nil
}

// SetStageTarget sets the "stage_target" field.
func (m *StudyUnitMutation) SetStageTarget(i int) {
	m.stage_target = &i
	m.addstage_target = nil
}

// StageTarget returns the value of the "stage_target" field in the mutation.
func (m *StudyUnitMutation) StageTarget() (r int, exists bool) {
	v := m.stage_target
	if v == nil {
		return
	}
	return *v, true
}

// OldStageTarget returns the old "stage_target" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldStageTarget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageTarget: %w", err)
	}
	return oldValue.StageTarget, nil
}

// AddStageTarget adds i to the "stage_target" field.
func (m *StudyUnitMutation) AddStageTarget(i int) {
	if m.addstage_target != nil {
		*m.addstage_target += i
	} else {
		m.addstage_target = &i
	}
}

// AddedStageTarget returns the value that was added to the "stage_target" field in this mutation.
func (m *StudyUnitMutation) AddedStageTarget() (r int, exists bool) {
	v := m.addstage_target
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageTarget resets all changes to the "stage_target" field.
func (m *StudyUnitMutation) ResetStageTarget() {
	m.stage_target = nil
	m.addstage_target = nil
}

// SetRescheduleCount sets the "reschedule_count" field.
func (m *StudyUnitMutation) SetRescheduleCount(i int) {
	m.reschedule_count = &i
	m.addreschedule_count = nil
}

// RescheduleCount returns the value of the "reschedule_count" field in the mutation.
func (m *StudyUnitMutation) RescheduleCount() (r int, exists bool) {
	v := m.reschedule_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRescheduleCount returns the old "reschedule_count" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldRescheduleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRescheduleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRescheduleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRescheduleCount: %w", err)
	}
	return oldValue.RescheduleCount, nil
}

// AddRescheduleCount adds i to the "reschedule_count" field.
func (m *StudyUnitMutation) AddRescheduleCount(i int) {
	if m.addreschedule_count != nil {
		*m.addreschedule_count += i
	} else {
		m.addreschedule_count = &i
	}
}

// AddedRescheduleCount returns the value that was added to the "reschedule_count" field in this mutation.
func (m *StudyUnitMutation) AddedRescheduleCount() (r int, exists bool) {
	v := m.addreschedule_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRescheduleCount resets all changes to the "reschedule_count" field.
func (m *StudyUnitMutation) ResetRescheduleCount() {
	m.reschedule_count = nil
	m.addreschedule_count = nil
}

// SetOriginalDate sets the "original_date" field.
func (m *StudyUnitMutation) SetOriginalDate(t time.Time) {
	m.original_date = &t
}

// OriginalDate returns the value of the "original_date" field in the mutation.
func (m *StudyUnitMutation) OriginalDate() (r time.Time, exists bool) {
	v := m.original_date
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalDate returns the old "original_date" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldOriginalDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalDate: %w", err)
	}
	return oldValue.OriginalDate, nil
}

// ClearOriginalDate clears the value of the "original_date" field.
func (m *StudyUnitMutation) ClearOriginalDate() {
	m.original_date = nil
	m.clearedFields[studyunit.FieldOriginalDate] = struct{}{}
}

// OriginalDateCleared returns if the "original_date" field was cleared in this mutation.
func (m *StudyUnitMutation) OriginalDateCleared() bool {
	_, ok := m.clearedFields[studyunit.FieldOriginalDate]
	return ok
}

// ResetOriginalDate resets all changes to the "original_date" field.
func (m *StudyUnitMutation) ResetOriginalDate() {
	m.original_date = nil
	delete(m.clearedFields, studyunit.FieldOriginalDate)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StudyUnitMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StudyUnitMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StudyUnitMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[studyunit.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StudyUnitMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[studyunit.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StudyUnitMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, studyunit.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudyUnitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudyUnitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StudyUnit entity.
// If the StudyUnit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyUnitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudyUnitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StudyUnitMutation builder.
func (m *StudyUnitMutation) Where(ps ...predicate.StudyUnit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyUnitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyUnitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyUnit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyUnitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyUnitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyUnit).
func (m *StudyUnitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyUnitMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.unit_id != nil {
		fields = append(fields, studyunit.FieldUnitID)
	}
	if m.subject_id != nil {
		fields = append(fields, studyunit.FieldSubjectID)
	}
	if m.related_subject_id != nil {
		fields = append(fields, studyunit.FieldRelatedSubjectID)
	}
	if m.date != nil {
		fields = append(fields, studyunit.FieldDate)
	}
	if m.start_minute != nil {
		fields = append(fields, studyunit.FieldStartMinute)
	}
	if m.end_minute != nil {
		fields = append(fields, studyunit.FieldEndMinute)
	}
	if m.duration_minutes != nil {
		fields = append(fields, studyunit.FieldDurationMinutes)
	}
	if m.is_break != nil {
		fields = append(fields, studyunit.FieldIsBreak)
	}
	if m.kind != nil {
		fields = append(fields, studyunit.FieldKind)
	}
	if m.session_type != nil {
		fields = append(fields, studyunit.FieldSessionType)
	}
	if m.status != nil {
		fields = append(fields, studyunit.FieldStatus)
	}
	if m.phase != nil {
		fields = append(fields, studyunit.FieldPhase)
	}
	if m.topic_name != nil {
		fields = append(fields, studyunit.FieldTopicName)
	}
	if m.stage_index != nil {
		fields = append(fields, studyunit.FieldStageIndex)
	}
	if m.stage_target != nil {
		fields = append(fields, studyunit.FieldStageTarget)
	}
	if m.reschedule_count != nil {
		fields = append(fields, studyunit.FieldRescheduleCount)
	}
	if m.original_date != nil {
		fields = append(fields, studyunit.FieldOriginalDate)
	}
	if m.completed_at != nil {
		fields = append(fields, studyunit.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, studyunit.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyUnitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyunit.FieldUnitID:
		return m.UnitID()
	case studyunit.FieldSubjectID:
		return m.SubjectID()
	case studyunit.FieldRelatedSubjectID:
		return m.RelatedSubjectID()
	case studyunit.FieldDate:
		return m.Date()
	case studyunit.FieldStartMinute:
		return m.StartMinute()
	case studyunit.FieldEndMinute:
		return m.EndMinute()
	case studyunit.FieldDurationMinutes:
		return m.DurationMinutes()
	case studyunit.FieldIsBreak:
		return m.IsBreak()
	case studyunit.FieldKind:
		return m.Kind()
	case studyunit.FieldSessionType:
		return m.SessionType()
	case studyunit.FieldStatus:
		return m.Status()
	case studyunit.FieldPhase:
		return m.Phase()
	case studyunit.FieldTopicName:
		return m.TopicName()
	case studyunit.FieldStageIndex:
		return m.StageIndex()
	case studyunit.FieldStageTarget:
		return m.StageTarget()
	case studyunit.FieldRescheduleCount:
		return m.RescheduleCount()
	case studyunit.FieldOriginalDate:
		return m.OriginalDate()
	case studyunit.FieldCompletedAt:
		return m.CompletedAt()
	case studyunit.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyUnitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyunit.FieldUnitID:
		return m.OldUnitID(ctx)
	case studyunit.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case studyunit.FieldRelatedSubjectID:
		return m.OldRelatedSubjectID(ctx)
	case studyunit.FieldDate:
		return m.OldDate(ctx)
	case studyunit.FieldStartMinute:
		return m.OldStartMinute(ctx)
	case studyunit.FieldEndMinute:
		return m.OldEndMinute(ctx)
	case studyunit.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case studyunit.FieldIsBreak:
		return m.OldIsBreak(ctx)
	case studyunit.FieldKind:
		return m.OldKind(ctx)
	case studyunit.FieldSessionType:
		return m.OldSessionType(ctx)
	case studyunit.FieldStatus:
		return m.OldStatus(ctx)
	case studyunit.FieldPhase:
		return m.OldPhase(ctx)
	case studyunit.FieldTopicName:
		return m.OldTopicName(ctx)
	case studyunit.FieldStageIndex:
		return m.OldStageIndex(ctx)
	case studyunit.FieldStageTarget:
		return m.OldStageTarget(ctx)
	case studyunit.FieldRescheduleCount:
		return m.OldRescheduleCount(ctx)
	case studyunit.FieldOriginalDate:
		return m.OldOriginalDate(ctx)
	case studyunit.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case studyunit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudyUnit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyUnitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyunit.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case studyunit.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case studyunit.FieldRelatedSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedSubjectID(v)
		return nil
	case studyunit.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case studyunit.FieldStartMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartMinute(v)
		return nil
	case studyunit.FieldEndMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndMinute(v)
		return nil
	case studyunit.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case studyunit.FieldIsBreak:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBreak(v)
		return nil
	case studyunit.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case studyunit.FieldSessionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionType(v)
		return nil
	case studyunit.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case studyunit.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case studyunit.FieldTopicName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicName(v)
		return nil
	case studyunit.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageIndex(v)
		return nil
	case studyunit.FieldStageTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageTarget(v)
		return nil
	case studyunit.FieldRescheduleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRescheduleCount(v)
		return nil
	case studyunit.FieldOriginalDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalDate(v)
		return nil
	case studyunit.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case studyunit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudyUnit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyUnitMutation) AddedFields() []string {
	var fields []string
	if m.addstart_minute != nil {
		fields = append(fields, studyunit.FieldStartMinute)
	}
	if m.addend_minute != nil {
		fields = append(fields, studyunit.FieldEndMinute)
	}
	if m.addduration_minutes != nil {
		fields = append(fields, studyunit.FieldDurationMinutes)
	}
	if m.addstage_index != nil {
		fields = append(fields, studyunit.FieldStageIndex)
	}
	if m.addstage_target != nil {
		fields = append(fields, studyunit.FieldStageTarget)
	}
	if m.addreschedule_count != nil {
		fields = append(fields, studyunit.FieldRescheduleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyUnitMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studyunit.FieldStartMinute:
		return m.AddedStartMinute()
	case studyunit.FieldEndMinute:
		return m.AddedEndMinute()
	case studyunit.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case studyunit.FieldStageIndex:
		return m.AddedStageIndex()
	case studyunit.FieldStageTarget:
		return m.AddedStageTarget()
	case studyunit.FieldRescheduleCount:
		return m.AddedRescheduleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyUnitMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studyunit.FieldStartMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartMinute(v)
		return nil
	case studyunit.FieldEndMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndMinute(v)
		return nil
	case studyunit.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case studyunit.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageIndex(v)
		return nil
	case studyunit.FieldStageTarget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageTarget(v)
		return nil
	case studyunit.FieldRescheduleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRescheduleCount(v)
		return nil
	}
	return fmt.Errorf("unknown StudyUnit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyUnitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studyunit.FieldOriginalDate) {
		fields = append(fields, studyunit.FieldOriginalDate)
	}
	if m.FieldCleared(studyunit.FieldCompletedAt) {
		fields = append(fields, studyunit.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyUnitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyUnitMutation) ClearField(name string) error {
	switch name {
	case studyunit.FieldOriginalDate:
		m.ClearOriginalDate()
		return nil
	case studyunit.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StudyUnit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyUnitMutation) ResetField(name string) error {
	switch name {
	case studyunit.FieldUnitID:
		m.ResetUnitID()
		return nil
	case studyunit.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case studyunit.FieldRelatedSubjectID:
		m.ResetRelatedSubjectID()
		return nil
	case studyunit.FieldDate:
		m.ResetDate()
		return nil
	case studyunit.FieldStartMinute:
		m.ResetStartMinute()
		return nil
	case studyunit.FieldEndMinute:
		m.ResetEndMinute()
		return nil
	case studyunit.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case studyunit.FieldIsBreak:
		m.ResetIsBreak()
		return nil
	case studyunit.FieldKind:
		m.ResetKind()
		return nil
	case studyunit.FieldSessionType:
		m.ResetSessionType()
		return nil
	case studyunit.FieldStatus:
		m.ResetStatus()
		return nil
	case studyunit.FieldPhase:
		m.ResetPhase()
		return nil
	case studyunit.FieldTopicName:
		m.ResetTopicName()
		return nil
	case studyunit.FieldStageIndex:
		m.ResetStageIndex()
		return nil
	case studyunit.FieldStageTarget:
		m.ResetStageTarget()
		return nil
	case studyunit.FieldRescheduleCount:
		m.ResetRescheduleCount()
		return nil
	case studyunit.FieldOriginalDate:
		m.ResetOriginalDate()
		return nil
	case studyunit.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case studyunit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudyUnit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyUnitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyUnitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyUnitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyUnitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyUnitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyUnitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyUnitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudyUnit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyUnitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudyUnit edge %s", name)
}

// SubjectMutation represents an operation that mutates the Subject nodes in the graph.
type SubjectMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	subject_id             *string
	name                   *string
	priority               *int
	addpriority            *int
	difficulty             *int
	adddifficulty          *int
	weekly_target_hours    *float64
	addweekly_target_hours *float64
	area                   *string
	level                  *string
	exam_weight            *float64
	addexam_weight         *float64
	completed_hours        *float64
	addcompleted_hours     *float64
	session_count          *int
	addsession_count       *int
	average_score          *float64
	addaverage_score       *float64
	archived               *bool
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Subject, error)
	predicates             []predicate.Subject
}

var _ ent.Mutation = (*SubjectMutation)(nil)

// subjectOption allows management of the mutation configuration using functional options.
type subjectOption func(*SubjectMutation)

// newSubjectMutation creates new mutation for the Subject entity.
func newSubjectMutation(c config, op Op, opts ...subjectOption) *SubjectMutation {
	m := &SubjectMutation{
		config:        c,
		op:            op,
		typ:           TypeSubject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectID sets the ID field of the mutation.
func withSubjectID(id int) subjectOption {
	return func(m *SubjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Subject
		)
		m.oldValue = func(ctx context.Context) (*Subject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubject sets the old Subject of the mutation.
func withSubject(node *Subject) subjectOption {
	return func(m *SubjectMutation) {
		m.oldValue = func(context.Context) (*Subject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubjectID sets the "subject_id" field.
func (m *SubjectMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *SubjectMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *SubjectMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetName sets the "name" field.
func (m *SubjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubjectMutation) ResetName() {
	m.name = nil
}

// SetPriority sets the "priority" field.
func (m *SubjectMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *SubjectMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *SubjectMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *SubjectMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *SubjectMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *SubjectMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *SubjectMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *SubjectMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *SubjectMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *SubjectMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetWeeklyTargetHours sets the "weekly_target_hours" field.
func (m *SubjectMutation) SetWeeklyTargetHours(f float64) {
	m.weekly_target_hours = &f
	m.addweekly_target_hours = nil
}

// WeeklyTargetHours returns the value of the "weekly_target_hours" field in the mutation.
func (m *SubjectMutation) WeeklyTargetHours() (r float64, exists bool) {
	v := m.weekly_target_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeklyTargetHours returns the old "weekly_target_hours" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldWeeklyTargetHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeklyTargetHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeklyTargetHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeklyTargetHours: %w", err)
	}
	return oldValue.WeeklyTargetHours, nil
}

// AddWeeklyTargetHours adds f to the "weekly_target_hours" field.
func (m *SubjectMutation) AddWeeklyTargetHours(f float64) {
	if m.addweekly_target_hours != nil {
		*m.addweekly_target_hours += f
	} else {
		m.addweekly_target_hours = &f
	}
}

// AddedWeeklyTargetHours returns the value that was added to the "weekly_target_hours" field in this mutation.
func (m *SubjectMutation) AddedWeeklyTargetHours() (r float64, exists bool) {
	v := m.addweekly_target_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeeklyTargetHours resets all changes to the "weekly_target_hours" field.
func (m *SubjectMutation) ResetWeeklyTargetHours() {
	m.weekly_target_hours = nil
	m.addweekly_target_hours = nil
}

// SetArea sets the "area" field.
func (m *SubjectMutation) SetArea(s string) {
	m.area = &s
}

// Area returns the value of the "area" field in the mutation.
func (m *SubjectMutation) Area() (r string, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldArea returns the old "area" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldArea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArea: %w", err)
	}
	return oldValue.Area, nil
}

// ResetArea resets all changes to the "area" field.
func (m *SubjectMutation) ResetArea() {
	m.area = nil
}

// SetLevel sets the "level" field.
func (m *SubjectMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *SubjectMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *SubjectMutation) ResetLevel() {
	m.level = nil
}

// SetExamWeight sets the "exam_weight" field.
func (m *SubjectMutation) SetExamWeight(f float64) {
	m.exam_weight = &f
	m.addexam_weight = nil
}

// ExamWeight returns the value of the "exam_weight" field in the mutation.
func (m *SubjectMutation) ExamWeight() (r float64, exists bool) {
	v := m.exam_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldExamWeight returns the old "exam_weight" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldExamWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamWeight: %w", err)
	}
	return oldValue.ExamWeight, nil
}

// AddExamWeight adds f to the "exam_weight" field.
func (m *SubjectMutation) AddExamWeight(f float64) {
	if m.addexam_weight != nil {
		*m.addexam_weight += f
	} else {
		m.addexam_weight = &f
	}
}

// AddedExamWeight returns the value that was added to the "exam_weight" field in this mutation.
func (m *SubjectMutation) AddedExamWeight() (r float64, exists bool) {
	v := m.addexam_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetExamWeight resets all changes to the "exam_weight" field.
func (m *SubjectMutation) ResetExamWeight() {
	m.exam_weight = nil
	m.addexam_weight = nil
}

// SetCompletedHours sets the "completed_hours" field.
func (m *SubjectMutation) SetCompletedHours(f float64) {
	m.completed_hours = &f
	m.addcompleted_hours = nil
}

// CompletedHours returns the value of the "completed_hours" field in the mutation.
func (m *SubjectMutation) CompletedHours() (r float64, exists bool) {
	v := m.completed_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedHours returns the old "completed_hours" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldCompletedHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedHours: %w", err)
	}
	return oldValue.CompletedHours, nil
}

// AddCompletedHours adds f to the "completed_hours" field.
func (m *SubjectMutation) AddCompletedHours(f float64) {
	if m.addcompleted_hours != nil {
		*m.addcompleted_hours += f
	} else {
		m.addcompleted_hours = &f
	}
}

// AddedCompletedHours returns the value that was added to the "completed_hours" field in this mutation.
func (m *SubjectMutation) AddedCompletedHours() (r float64, exists bool) {
	v := m.addcompleted_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedHours resets all changes to the "completed_hours" field.
func (m *SubjectMutation) ResetCompletedHours() {
	m.completed_hours = nil
	m.addcompleted_hours = nil
}

// SetSessionCount sets the "session_count" field.
func (m *SubjectMutation) SetSessionCount(i int) {
	m.session_count = &i
	m.addsession_count = nil
}

// SessionCount returns the value of the "session_count" field in the mutation.
func (m *SubjectMutation) SessionCount() (r int, exists bool) {
	v := m.session_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCount returns the old "session_count" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldSessionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCount: %w", err)
	}
	return oldValue.SessionCount, nil
}

// AddSessionCount adds i to the "session_count" field.
func (m *SubjectMutation) AddSessionCount(i int) {
	if m.addsession_count != nil {
		*m.addsession_count += i
	} else {
		m.addsession_count = &i
	}
}

// AddedSessionCount returns the value that was added to the "session_count" field in this mutation.
func (m *SubjectMutation) AddedSessionCount() (r int, exists bool) {
	v := m.addsession_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionCount resets all changes to the "session_count" field.
func (m *SubjectMutation) ResetSessionCount() {
	m.session_count = nil
	m.addsession_count = nil
}

// SetAverageScore sets the "average_score" field.
func (m *SubjectMutation) SetAverageScore(f float64) {
	m.average_score = &f
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *SubjectMutation) AverageScore() (r float64, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldAverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds f to the "average_score" field.
func (m *SubjectMutation) AddAverageScore(f float64) {
	if m.addaverage_score != nil {
		*m.addaverage_score += f
	} else {
		m.addaverage_score = &f
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *SubjectMutation) AddedAverageScore() (r float64, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *SubjectMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
}

// SetArchived sets the "archived" field.
func (m *SubjectMutation) SetArchived(b bool) {
	m.archived = &b
}

// Archived returns the value of the "archived" field in the mutation.
func (m *SubjectMutation) Archived() (r bool, exists bool) {
	v := m.archived
	if v == nil {
		return
	}
	return *v, true
}

// OldArchived returns the old "archived" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldArchived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchived: %w", err)
	}
	return oldValue.Archived, nil
}

// ResetArchived resets all changes to the "archived" field.
func (m *SubjectMutation) ResetArchived() {
	m.archived = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SubjectMutation builder.
func (m *SubjectMutation) Where(ps ...predicate.Subject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subject).
func (m *SubjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.subject_id != nil {
		fields = append(fields, subject.FieldSubjectID)
	}
	if m.name != nil {
		fields = append(fields, subject.FieldName)
	}
	if m.priority != nil {
		fields = append(fields, subject.FieldPriority)
	}
	if m.difficulty != nil {
		fields = append(fields, subject.FieldDifficulty)
	}
	if m.weekly_target_hours != nil {
		fields = append(fields, subject.FieldWeeklyTargetHours)
	}
	if m.area != nil {
		fields = append(fields, subject.FieldArea)
	}
	if m.level != nil {
		fields = append(fields, subject.FieldLevel)
	}
	if m.exam_weight != nil {
		fields = append(fields, subject.FieldExamWeight)
	}
	if m.completed_hours != nil {
		fields = append(fields, subject.FieldCompletedHours)
	}
	if m.session_count != nil {
		fields = append(fields, subject.FieldSessionCount)
	}
	if m.average_score != nil {
		fields = append(fields, subject.FieldAverageScore)
	}
	if m.archived != nil {
		fields = append(fields, subject.FieldArchived)
	}
	if m.created_at != nil {
		fields = append(fields, subject.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subject.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldSubjectID:
		return m.SubjectID()
	case subject.FieldName:
		return m.Name()
	case subject.FieldPriority:
		return m.Priority()
	case subject.FieldDifficulty:
		return m.Difficulty()
	case subject.FieldWeeklyTargetHours:
		return m.WeeklyTargetHours()
	case subject.FieldArea:
		return m.Area()
	case subject.FieldLevel:
		return m.Level()
	case subject.FieldExamWeight:
		return m.ExamWeight()
	case subject.FieldCompletedHours:
		return m.CompletedHours()
	case subject.FieldSessionCount:
		return m.SessionCount()
	case subject.FieldAverageScore:
		return m.AverageScore()
	case subject.FieldArchived:
		return m.Archived()
	case subject.FieldCreatedAt:
		return m.CreatedAt()
	case subject.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subject.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case subject.FieldName:
		return m.OldName(ctx)
	case subject.FieldPriority:
		return m.OldPriority(ctx)
	case subject.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case subject.FieldWeeklyTargetHours:
		return m.OldWeeklyTargetHours(ctx)
	case subject.FieldArea:
		return m.OldArea(ctx)
	case subject.FieldLevel:
		return m.OldLevel(ctx)
	case subject.FieldExamWeight:
		return m.OldExamWeight(ctx)
	case subject.FieldCompletedHours:
		return m.OldCompletedHours(ctx)
	case subject.FieldSessionCount:
		return m.OldSessionCount(ctx)
	case subject.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case subject.FieldArchived:
		return m.OldArchived(ctx)
	case subject.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subject.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subject.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case subject.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subject.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case subject.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case subject.FieldWeeklyTargetHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeklyTargetHours(v)
		return nil
	case subject.FieldArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArea(v)
		return nil
	case subject.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case subject.FieldExamWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamWeight(v)
		return nil
	case subject.FieldCompletedHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedHours(v)
		return nil
	case subject.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCount(v)
		return nil
	case subject.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case subject.FieldArchived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchived(v)
		return nil
	case subject.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subject.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, subject.FieldPriority)
	}
	if m.adddifficulty != nil {
		fields = append(fields, subject.FieldDifficulty)
	}
	if m.addweekly_target_hours != nil {
		fields = append(fields, subject.FieldWeeklyTargetHours)
	}
	if m.addexam_weight != nil {
		fields = append(fields, subject.FieldExamWeight)
	}
	if m.addcompleted_hours != nil {
		fields = append(fields, subject.FieldCompletedHours)
	}
	if m.addsession_count != nil {
		fields = append(fields, subject.FieldSessionCount)
	}
	if m.addaverage_score != nil {
		fields = append(fields, subject.FieldAverageScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldPriority:
		return m.AddedPriority()
	case subject.FieldDifficulty:
		return m.AddedDifficulty()
	case subject.FieldWeeklyTargetHours:
		return m.AddedWeeklyTargetHours()
	case subject.FieldExamWeight:
		return m.AddedExamWeight()
	case subject.FieldCompletedHours:
		return m.AddedCompletedHours()
	case subject.FieldSessionCount:
		return m.AddedSessionCount()
	case subject.FieldAverageScore:
		return m.AddedAverageScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subject.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case subject.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case subject.FieldWeeklyTargetHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeeklyTargetHours(v)
		return nil
	case subject.FieldExamWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExamWeight(v)
		return nil
	case subject.FieldCompletedHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedHours(v)
		return nil
	case subject.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionCount(v)
		return nil
	case subject.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	}
	return fmt.Errorf("unknown Subject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Subject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectMutation) ResetField(name string) error {
	switch name {
	case subject.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case subject.FieldName:
		m.ResetName()
		return nil
	case subject.FieldPriority:
		m.ResetPriority()
		return nil
	case subject.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case subject.FieldWeeklyTargetHours:
		m.ResetWeeklyTargetHours()
		return nil
	case subject.FieldArea:
		m.ResetArea()
		return nil
	case subject.FieldLevel:
		m.ResetLevel()
		return nil
	case subject.FieldExamWeight:
		m.ResetExamWeight()
		return nil
	case subject.FieldCompletedHours:
		m.ResetCompletedHours()
		return nil
	case subject.FieldSessionCount:
		m.ResetSessionCount()
		return nil
	case subject.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case subject.FieldArchived:
		m.ResetArchived()
		return nil
	case subject.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subject.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Subject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Subject edge %s", name)
}
