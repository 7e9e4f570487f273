// Code generated by ent, DO NOT EDIT.

package subject

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subject type in the database.
	Label = "subject"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldWeeklyTargetHours holds the string denoting the weekly_target_hours field in the database.
	FieldWeeklyTargetHours = "weekly_target_hours"
	// FieldArea holds the string denoting the area field in the database.
	FieldArea = "area"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldExamWeight holds the string denoting the exam_weight field in the database.
	FieldExamWeight = "exam_weight"
	// FieldCompletedHours holds the string denoting the completed_hours field in the database.
	FieldCompletedHours = "completed_hours"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldAverageScore holds the string denoting the average_score field in the database.
	FieldAverageScore = "average_score"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the subject in the database.
	Table = "subjects"
)

// Columns holds all SQL columns for subject fields.
var Columns = []string{
	FieldID,
	FieldSubjectID,
	FieldName,
	FieldPriority,
	FieldDifficulty,
	FieldWeeklyTargetHours,
	FieldArea,
	FieldLevel,
	FieldExamWeight,
	FieldCompletedHours,
	FieldSessionCount,
	FieldAverageScore,
	FieldArchived,
	FieldCreatedAt,
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
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty int
	// DefaultWeeklyTargetHours holds the default value on creation for the "weekly_target_hours" field.
	DefaultWeeklyTargetHours float64
	// DefaultArea holds the default value on creation for the "area" field.
	DefaultArea string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultExamWeight holds the default value on creation for the "exam_weight" field.
	DefaultExamWeight float64
	// DefaultCompletedHours holds the default value on creation for the "completed_hours" field.
	DefaultCompletedHours float64
	// DefaultSessionCount holds the default value on creation for the "session_count" field.
	DefaultSessionCount int
	// DefaultAverageScore holds the default value on creation for the "average_score" field.
	DefaultAverageScore float64
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Subject queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByWeeklyTargetHours orders the results by the weekly_target_hours field.
func ByWeeklyTargetHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyTargetHours, opts...).ToFunc()
}

// ByArea orders the results by the area field.
func ByArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArea, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByExamWeight orders the results by the exam_weight field.
func ByExamWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamWeight, opts...).ToFunc()
}

// ByCompletedHours orders the results by the completed_hours field.
func ByCompletedHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedHours, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// ByAverageScore orders the results by the average_score field.
func ByAverageScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageScore, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
