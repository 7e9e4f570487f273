// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/rescheduleevent"
)

// RescheduleEvent is the model entity for the RescheduleEvent schema.
type RescheduleEvent struct {
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
	// FromDate holds the value of the "from_date" field.
	FromDate time.Time `json:"from_date,omitempty"`
	// ToDate holds the value of the "to_date" field.
	ToDate time.Time `json:"to_date,omitempty"`
	// DaysOverdue holds the value of the "days_overdue" field.
	DaysOverdue int `json:"days_overdue,omitempty"`
	// Backlog score at the time of the move
	PriorityScore float64 `json:"priority_score,omitempty"`
	// overdue, skipped, displaced
	Reason       string `json:"reason,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RescheduleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rescheduleevent.FieldPriorityScore:
			values[i] = new(sql.NullFloat64)
		case rescheduleevent.FieldID, rescheduleevent.FieldSequence, rescheduleevent.FieldDaysOverdue:
			values[i] = new(sql.NullInt64)
		case rescheduleevent.FieldUnitID, rescheduleevent.FieldSubjectID, rescheduleevent.FieldReason:
			values[i] = new(sql.NullString)
		case rescheduleevent.FieldTimestamp, rescheduleevent.FieldFromDate, rescheduleevent.FieldToDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RescheduleEvent fields.
func (_m *RescheduleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rescheduleevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rescheduleevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case rescheduleevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case rescheduleevent.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case rescheduleevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case rescheduleevent.FieldFromDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field from_date", values[i])
			} else if value.Valid {
				_m.FromDate = value.Time
			}
		case rescheduleevent.FieldToDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field to_date", values[i])
			} else if value.Valid {
				_m.ToDate = value.Time
			}
		case rescheduleevent.FieldDaysOverdue:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field days_overdue", values[i])
			} else if value.Valid {
				_m.DaysOverdue = int(value.Int64)
			}
		case rescheduleevent.FieldPriorityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_score", values[i])
			} else if value.Valid {
				_m.PriorityScore = value.Float64
			}
		case rescheduleevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RescheduleEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RescheduleEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RescheduleEvent.
// Note that you need to call RescheduleEvent.Unwrap() before calling this method if this RescheduleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RescheduleEvent) Update() *RescheduleEventUpdateOne {
	return NewRescheduleEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RescheduleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RescheduleEvent) Unwrap() *RescheduleEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RescheduleEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RescheduleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RescheduleEvent(")
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
	builder.WriteString("from_date=")
	builder.WriteString(_m.FromDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("to_date=")
	builder.WriteString(_m.ToDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("days_overdue=")
	builder.WriteString(fmt.Sprintf("%v", _m.DaysOverdue))
	builder.WriteString(", ")
	builder.WriteString("priority_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityScore))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteByte(')')
	return builder.String()
}

// RescheduleEvents is a parsable slice of RescheduleEvent.
type RescheduleEvents []*RescheduleEvent
