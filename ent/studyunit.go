// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/studyunit"
)

// StudyUnit is the model entity for the StudyUnit schema.
type StudyUnit struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Deterministic UUID assigned at generation
	UnitID string `json:"unit_id,omitempty"`
	// Owning subject, or the mock-exam pseudo subject
	SubjectID string `json:"subject_id,omitempty"`
	// Real subject behind mock-exam and analysis units
	RelatedSubjectID string `json:"related_subject_id,omitempty"`
	// Calendar day, UTC midnight
	Date time.Time `json:"date,omitempty"`
	// Minutes since midnight
	StartMinute int `json:"start_minute,omitempty"`
	// EndMinute holds the value of the "end_minute" field.
	EndMinute int `json:"end_minute,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// IsBreak holds the value of the "is_break" field.
	IsBreak bool `json:"is_break,omitempty"`
	// lesson, exercise, review, area_mock_exam, full_mock_exam, analysis
	Kind string `json:"kind,omitempty"`
	// SessionType holds the value of the "session_type" field.
	SessionType string `json:"session_type,omitempty"`
	// scheduled, in_progress, completed, skipped, rescheduled
	Status string `json:"status,omitempty"`
	// base, deepening, consolidation
	Phase string `json:"phase,omitempty"`
	// TopicName holds the value of the "topic_name" field.
	TopicName string `json:"topic_name,omitempty"`
	// StageIndex holds the value of the "stage_index" field.
	StageIndex int `json:"stage_index,omitempty"`
	// StageTarget holds the value of the "stage_target" field.
	StageTarget int `json:"stage_target,omitempty"`
	// RescheduleCount holds the value of the "reschedule_count" field.
	RescheduleCount int `json:"reschedule_count,omitempty"`
	// First scheduled date, set on the first move
	OriginalDate *time.Time `json:"original_date,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyUnit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyunit.FieldIsBreak:
			values[i] = new(sql.NullBool)
		case studyunit.FieldID, studyunit.FieldStartMinute, studyunit.FieldEndMinute, studyunit.FieldDurationMinutes, studyunit.FieldStageIndex, studyunit.FieldStageTarget, studyunit.FieldRescheduleCount:
			values[i] = new(sql.NullInt64)
		case studyunit.FieldUnitID, studyunit.FieldSubjectID, studyunit.FieldRelatedSubjectID, studyunit.FieldKind, studyunit.FieldSessionType, studyunit.FieldStatus, studyunit.FieldPhase, studyunit.FieldTopicName:
			values[i] = new(sql.NullString)
		case studyunit.FieldDate, studyunit.FieldOriginalDate, studyunit.FieldCompletedAt, studyunit.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyUnit fields.
func (_m *StudyUnit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyunit.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studyunit.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case studyunit.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case studyunit.FieldRelatedSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field related_subject_id", values[i])
			} else if value.Valid {
				_m.RelatedSubjectID = value.String
			}
		case studyunit.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case studyunit.FieldStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_minute", values[i])
			} else if value.Valid {
				_m.StartMinute = int(value.Int64)
			}
		case studyunit.FieldEndMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_minute", values[i])
			} else if value.Valid {
				_m.EndMinute = int(value.Int64)
			}
		case studyunit.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case studyunit.FieldIsBreak:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_break", values[i])
			} else if value.Valid {
				_m.IsBreak = value.Bool
			}
		case studyunit.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case studyunit.FieldSessionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_type", values[i])
			} else if value.Valid {
				_m.SessionType = value.String
			}
		case studyunit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case studyunit.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case studyunit.FieldTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_name", values[i])
			} else if value.Valid {
				_m.TopicName = value.String
			}
		case studyunit.FieldStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_index", values[i])
			} else if value.Valid {
				_m.StageIndex = int(value.Int64)
			}
		case studyunit.FieldStageTarget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_target", values[i])
			} else if value.Valid {
				_m.StageTarget = int(value.Int64)
			}
		case studyunit.FieldRescheduleCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reschedule_count", values[i])
			} else if value.Valid {
				_m.RescheduleCount = int(value.Int64)
			}
		case studyunit.FieldOriginalDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field original_date", values[i])
			} else if value.Valid {
				_m.OriginalDate = new(time.Time)
				*_m.OriginalDate = value.Time
			}
		case studyunit.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case studyunit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudyUnit.
// This includes values selected through modifiers, order, etc.
func (_m *StudyUnit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudyUnit.
// Note that you need to call StudyUnit.Unwrap() before calling this method if this StudyUnit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudyUnit) Update() *StudyUnitUpdateOne {
	return NewStudyUnitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudyUnit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudyUnit) Unwrap() *StudyUnit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudyUnit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudyUnit) String() string {
	var builder strings.Builder
	builder.WriteString("StudyUnit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("related_subject_id=")
	builder.WriteString(_m.RelatedSubjectID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("start_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartMinute))
	builder.WriteString(", ")
	builder.WriteString("end_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndMinute))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("is_break=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBreak))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("session_type=")
	builder.WriteString(_m.SessionType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("topic_name=")
	builder.WriteString(_m.TopicName)
	builder.WriteString(", ")
	builder.WriteString("stage_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageIndex))
	builder.WriteString(", ")
	builder.WriteString("stage_target=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageTarget))
	builder.WriteString(", ")
	builder.WriteString("reschedule_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RescheduleCount))
	builder.WriteString(", ")
	if v := _m.OriginalDate; v != nil {
		builder.WriteString("original_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudyUnits is a parsable slice of StudyUnit.
type StudyUnits []*StudyUnit
