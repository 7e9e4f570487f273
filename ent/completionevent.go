// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/completionevent"
)

// CompletionEvent is the model entity for the CompletionEvent schema.
type CompletionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global monotonically increasing sequence
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID string `json:"unit_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// TopicName holds the value of the "topic_name" field.
	TopicName string `json:"topic_name,omitempty"`
	// PlannedMinutes holds the value of the "planned_minutes" field.
	PlannedMinutes int `json:"planned_minutes,omitempty"`
	// SpentMinutes holds the value of the "spent_minutes" field.
	SpentMinutes int `json:"spent_minutes,omitempty"`
	// 0-1, reported or inferred from the unit kind
	Accuracy float64 `json:"accuracy,omitempty"`
	// True when the unit ended without being studied
	Skipped      bool `json:"skipped,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompletionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case completionevent.FieldSkipped:
			values[i] = new(sql.NullBool)
		case completionevent.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case completionevent.FieldID, completionevent.FieldSequence, completionevent.FieldPlannedMinutes, completionevent.FieldSpentMinutes:
			values[i] = new(sql.NullInt64)
		case completionevent.FieldUnitID, completionevent.FieldSubjectID, completionevent.FieldKind, completionevent.FieldTopicName:
			values[i] = new(sql.NullString)
		case completionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompletionEvent fields.
func (_m *CompletionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case completionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case completionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case completionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case completionevent.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case completionevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case completionevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case completionevent.FieldTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_name", values[i])
			} else if value.Valid {
				_m.TopicName = value.String
			}
		case completionevent.FieldPlannedMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field planned_minutes", values[i])
			} else if value.Valid {
				_m.PlannedMinutes = int(value.Int64)
			}
		case completionevent.FieldSpentMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field spent_minutes", values[i])
			} else if value.Valid {
				_m.SpentMinutes = int(value.Int64)
			}
		case completionevent.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case completionevent.FieldSkipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompletionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CompletionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CompletionEvent.
// Note that you need to call CompletionEvent.Unwrap() before calling this method if this CompletionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompletionEvent) Update() *CompletionEventUpdateOne {
	return NewCompletionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompletionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompletionEvent) Unwrap() *CompletionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompletionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompletionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CompletionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("topic_name=")
	builder.WriteString(_m.TopicName)
	builder.WriteString(", ")
	builder.WriteString("planned_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlannedMinutes))
	builder.WriteString(", ")
	builder.WriteString("spent_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpentMinutes))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteByte(')')
	return builder.String()
}

// CompletionEvents is a parsable slice of CompletionEvent.
type CompletionEvents []*CompletionEvent
