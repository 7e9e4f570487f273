// Code generated by ent, DO NOT EDIT.

package studyunit

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studyunit type in the database.
	Label = "study_unit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldRelatedSubjectID holds the string denoting the related_subject_id field in the database.
	FieldRelatedSubjectID = "related_subject_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldStartMinute holds the string denoting the start_minute field in the database.
	FieldStartMinute = "start_minute"
	// FieldEndMinute holds the string denoting the end_minute field in the database.
	FieldEndMinute = "end_minute"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldIsBreak holds the string denoting the is_break field in the database.
	FieldIsBreak = "is_break"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldSessionType holds the string denoting the session_type field in the database.
	FieldSessionType = "session_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldTopicName holds the string denoting the topic_name field in the database.
	FieldTopicName = "topic_name"
	// FieldStageIndex holds the string denoting the stage_index field in the database.
	FieldStageIndex = "stage_index"
	// FieldStageTarget holds the string denoting the stage_target field in the database.
	FieldStageTarget = "stage_target"
	// FieldRescheduleCount holds the string denoting the reschedule_count field in the database.
	FieldRescheduleCount = "reschedule_count"
	// FieldOriginalDate holds the string denoting the original_date field in the database.
	FieldOriginalDate = "original_date"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the studyunit in the database.
	Table = "study_units"
)

// Columns holds all SQL columns for studyunit fields.
var Columns = []string{
	FieldID,
	FieldUnitID,
	FieldSubjectID,
	FieldRelatedSubjectID,
	FieldDate,
	FieldStartMinute,
	FieldEndMinute,
	FieldDurationMinutes,
	FieldIsBreak,
	FieldKind,
	FieldSessionType,
	FieldStatus,
	FieldPhase,
	FieldTopicName,
	FieldStageIndex,
	FieldStageTarget,
	FieldRescheduleCount,
	FieldOriginalDate,
	FieldCompletedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	UnitIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// DefaultRelatedSubjectID holds the default value on creation for the "related_subject_id" field.
	DefaultRelatedSubjectID string
	// DefaultIsBreak holds the default value on creation for the "is_break" field.
	DefaultIsBreak bool
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultSessionType holds the default value on creation for the "session_type" field.
	DefaultSessionType string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultPhase holds the default value on creation for the "phase" field.
	DefaultPhase string
	// DefaultTopicName holds the default value on creation for the "topic_name" field.
	DefaultTopicName string
	// DefaultStageIndex holds the default value on creation for the "stage_index" field.
	DefaultStageIndex int
	// DefaultStageTarget holds the default value on creation for the "stage_target" field.
	DefaultStageTarget int
	// DefaultRescheduleCount holds the default value on creation for the "reschedule_count" field.
	DefaultRescheduleCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StudyUnit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByRelatedSubjectID orders the results by the related_subject_id field.
func ByRelatedSubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelatedSubjectID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByStartMinute orders the results by the start_minute field.
func ByStartMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartMinute, opts...).ToFunc()
}

// ByEndMinute orders the results by the end_minute field.
func ByEndMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndMinute, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByIsBreak orders the results by the is_break field.
func ByIsBreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBreak, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// BySessionType orders the results by the session_type field.
func BySessionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByTopicName orders the results by the topic_name field.
func ByTopicName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicName, opts...).ToFunc()
}

// ByStageIndex orders the results by the stage_index field.
func ByStageIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageIndex, opts...).ToFunc()
}

// ByStageTarget orders the results by the stage_target field.
func ByStageTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageTarget, opts...).ToFunc()
}

// ByRescheduleCount orders the results by the reschedule_count field.
func ByRescheduleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRescheduleCount, opts...).ToFunc()
}

// ByOriginalDate orders the results by the original_date field.
func ByOriginalDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalDate, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
