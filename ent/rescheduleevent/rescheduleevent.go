// Code generated by ent, DO NOT EDIT.

package rescheduleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rescheduleevent type in the database.
	Label = "reschedule_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldFromDate holds the string denoting the from_date field in the database.
	FieldFromDate = "from_date"
	// FieldToDate holds the string denoting the to_date field in the database.
	FieldToDate = "to_date"
	// FieldDaysOverdue holds the string denoting the days_overdue field in the database.
	FieldDaysOverdue = "days_overdue"
	// FieldPriorityScore holds the string denoting the priority_score field in the database.
	FieldPriorityScore = "priority_score"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// Table holds the table name of the rescheduleevent in the database.
	Table = "reschedule_events"
)

// Columns holds all SQL columns for rescheduleevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUnitID,
	FieldSubjectID,
	FieldFromDate,
	FieldToDate,
	FieldDaysOverdue,
	FieldPriorityScore,
	FieldReason,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	UnitIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// DefaultDaysOverdue holds the default value on creation for the "days_overdue" field.
	DefaultDaysOverdue int
	// DefaultPriorityScore holds the default value on creation for the "priority_score" field.
	DefaultPriorityScore float64
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
)

// OrderOption defines the ordering options for the RescheduleEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByFromDate orders the results by the from_date field.
func ByFromDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromDate, opts...).ToFunc()
}

// ByToDate orders the results by the to_date field.
func ByToDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToDate, opts...).ToFunc()
}

// ByDaysOverdue orders the results by the days_overdue field.
func ByDaysOverdue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDaysOverdue, opts...).ToFunc()
}

// ByPriorityScore orders the results by the priority_score field.
func ByPriorityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityScore, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}
