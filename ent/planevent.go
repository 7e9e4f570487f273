// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/planevent"
)

// PlanEvent is the model entity for the PlanEvent schema.
type PlanEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global monotonically increasing sequence
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// sha256 of the canonical generation input
	Fingerprint string `json:"fingerprint,omitempty"`
	// RangeStart holds the value of the "range_start" field.
	RangeStart time.Time `json:"range_start,omitempty"`
	// RangeEnd holds the value of the "range_end" field.
	RangeEnd time.Time `json:"range_end,omitempty"`
	// UnitCount holds the value of the "unit_count" field.
	UnitCount int `json:"unit_count,omitempty"`
	// TotalHours holds the value of the "total_hours" field.
	TotalHours float64 `json:"total_hours,omitempty"`
	// CacheHit holds the value of the "cache_hit" field.
	CacheHit     bool `json:"cache_hit,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case planevent.FieldCacheHit:
			values[i] = new(sql.NullBool)
		case planevent.FieldTotalHours:
			values[i] = new(sql.NullFloat64)
		case planevent.FieldID, planevent.FieldSequence, planevent.FieldUnitCount:
			values[i] = new(sql.NullInt64)
		case planevent.FieldFingerprint:
			values[i] = new(sql.NullString)
		case planevent.FieldTimestamp, planevent.FieldRangeStart, planevent.FieldRangeEnd:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanEvent fields.
func (_m *PlanEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case planevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case planevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case planevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case planevent.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case planevent.FieldRangeStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field range_start", values[i])
			} else if value.Valid {
				_m.RangeStart = value.Time
			}
		case planevent.FieldRangeEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field range_end", values[i])
			} else if value.Valid {
				_m.RangeEnd = value.Time
			}
		case planevent.FieldUnitCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_count", values[i])
			} else if value.Valid {
				_m.UnitCount = int(value.Int64)
			}
		case planevent.FieldTotalHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_hours", values[i])
			} else if value.Valid {
				_m.TotalHours = value.Float64
			}
		case planevent.FieldCacheHit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cache_hit", values[i])
			} else if value.Valid {
				_m.CacheHit = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PlanEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlanEvent.
// Note that you need to call PlanEvent.Unwrap() before calling this method if this PlanEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanEvent) Update() *PlanEventUpdateOne {
	return NewPlanEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanEvent) Unwrap() *PlanEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PlanEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("range_start=")
	builder.WriteString(_m.RangeStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("range_end=")
	builder.WriteString(_m.RangeEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("unit_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitCount))
	builder.WriteString(", ")
	builder.WriteString("total_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalHours))
	builder.WriteString(", ")
	builder.WriteString("cache_hit=")
	builder.WriteString(fmt.Sprintf("%v", _m.CacheHit))
	builder.WriteByte(')')
	return builder.String()
}

// PlanEvents is a parsable slice of PlanEvent.
type PlanEvents []*PlanEvent
