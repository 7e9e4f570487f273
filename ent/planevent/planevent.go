// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the planevent type in the database.
	Label = "plan_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldRangeStart holds the string denoting the range_start field in the database.
	FieldRangeStart = "range_start"
	// FieldRangeEnd holds the string denoting the range_end field in the database.
	FieldRangeEnd = "range_end"
	// FieldUnitCount holds the string denoting the unit_count field in the database.
	FieldUnitCount = "unit_count"
	// FieldTotalHours holds the string denoting the total_hours field in the database.
	FieldTotalHours = "total_hours"
	// FieldCacheHit holds the string denoting the cache_hit field in the database.
	FieldCacheHit = "cache_hit"
	// Table holds the table name of the planevent in the database.
	Table = "plan_events"
)

// Columns holds all SQL columns for planevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldFingerprint,
	FieldRangeStart,
	FieldRangeEnd,
	FieldUnitCount,
	FieldTotalHours,
	FieldCacheHit,
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
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// DefaultUnitCount holds the default value on creation for the "unit_count" field.
	DefaultUnitCount int
	// DefaultTotalHours holds the default value on creation for the "total_hours" field.
	DefaultTotalHours float64
	// DefaultCacheHit holds the default value on creation for the "cache_hit" field.
	DefaultCacheHit bool
)

// OrderOption defines the ordering options for the PlanEvent queries.
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

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByRangeStart orders the results by the range_start field.
func ByRangeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRangeStart, opts...).ToFunc()
}

// ByRangeEnd orders the results by the range_end field.
func ByRangeEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRangeEnd, opts...).ToFunc()
}

// ByUnitCount orders the results by the unit_count field.
func ByUnitCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitCount, opts...).ToFunc()
}

// ByTotalHours orders the results by the total_hours field.
func ByTotalHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalHours, opts...).ToFunc()
}

// ByCacheHit orders the results by the cache_hit field.
func ByCacheHit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheHit, opts...).ToFunc()
}
