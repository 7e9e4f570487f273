// Code generated by ent, DO NOT EDIT.

package subject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rsoarez/planista/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldID, id))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldSubjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldName, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldPriority, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldDifficulty, v))
}

// WeeklyTargetHours applies equality check predicate on the "weekly_target_hours" field. It's identical to WeeklyTargetHoursEQ.
func WeeklyTargetHours(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldWeeklyTargetHours, v))
}

// Area applies equality check predicate on the "area" field. It's identical to AreaEQ.
func Area(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldArea, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLevel, v))
}

// ExamWeight applies equality check predicate on the "exam_weight" field. It's identical to ExamWeightEQ.
func ExamWeight(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldExamWeight, v))
}

// CompletedHours applies equality check predicate on the "completed_hours" field. It's identical to CompletedHoursEQ.
func CompletedHours(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCompletedHours, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldSessionCount, v))
}

// AverageScore applies equality check predicate on the "average_score" field. It's identical to AverageScoreEQ.
func AverageScore(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldAverageScore, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldArchived, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldSubjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldName, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldPriority, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldDifficulty, v))
}

// WeeklyTargetHoursEQ applies the EQ predicate on the "weekly_target_hours" field.
func WeeklyTargetHoursEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldWeeklyTargetHours, v))
}

// WeeklyTargetHoursNEQ applies the NEQ predicate on the "weekly_target_hours" field.
func WeeklyTargetHoursNEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldWeeklyTargetHours, v))
}

// WeeklyTargetHoursIn applies the In predicate on the "weekly_target_hours" field.
func WeeklyTargetHoursIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldWeeklyTargetHours, vs...))
}

// WeeklyTargetHoursNotIn applies the NotIn predicate on the "weekly_target_hours" field.
func WeeklyTargetHoursNotIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldWeeklyTargetHours, vs...))
}

// WeeklyTargetHoursGT applies the GT predicate on the "weekly_target_hours" field.
func WeeklyTargetHoursGT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldWeeklyTargetHours, v))
}

// WeeklyTargetHoursGTE applies the GTE predicate on the "weekly_target_hours" field.
func WeeklyTargetHoursGTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldWeeklyTargetHours, v))
}

// WeeklyTargetHoursLT applies the LT predicate on the "weekly_target_hours" field.
func WeeklyTargetHoursLT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldWeeklyTargetHours, v))
}

// WeeklyTargetHoursLTE applies the LTE predicate on the "weekly_target_hours" field.
func WeeklyTargetHoursLTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldWeeklyTargetHours, v))
}

// AreaEQ applies the EQ predicate on the "area" field.
func AreaEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldArea, v))
}

// AreaNEQ applies the NEQ predicate on the "area" field.
func AreaNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldArea, v))
}

// AreaIn applies the In predicate on the "area" field.
func AreaIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldArea, vs...))
}

// AreaNotIn applies the NotIn predicate on the "area" field.
func AreaNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldArea, vs...))
}

// AreaGT applies the GT predicate on the "area" field.
func AreaGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldArea, v))
}

// AreaGTE applies the GTE predicate on the "area" field.
func AreaGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldArea, v))
}

// AreaLT applies the LT predicate on the "area" field.
func AreaLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldArea, v))
}

// AreaLTE applies the LTE predicate on the "area" field.
func AreaLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldArea, v))
}

// AreaContains applies the Contains predicate on the "area" field.
func AreaContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldArea, v))
}

// AreaHasPrefix applies the HasPrefix predicate on the "area" field.
func AreaHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldArea, v))
}

// AreaHasSuffix applies the HasSuffix predicate on the "area" field.
func AreaHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldArea, v))
}

// AreaEqualFold applies the EqualFold predicate on the "area" field.
func AreaEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldArea, v))
}

// AreaContainsFold applies the ContainsFold predicate on the "area" field.
func AreaContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldArea, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldLevel, v))
}

// ExamWeightEQ applies the EQ predicate on the "exam_weight" field.
func ExamWeightEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldExamWeight, v))
}

// ExamWeightNEQ applies the NEQ predicate on the "exam_weight" field.
func ExamWeightNEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldExamWeight, v))
}

// ExamWeightIn applies the In predicate on the "exam_weight" field.
func ExamWeightIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldExamWeight, vs...))
}

// ExamWeightNotIn applies the NotIn predicate on the "exam_weight" field.
func ExamWeightNotIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldExamWeight, vs...))
}

// ExamWeightGT applies the GT predicate on the "exam_weight" field.
func ExamWeightGT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldExamWeight, v))
}

// ExamWeightGTE applies the GTE predicate on the "exam_weight" field.
func ExamWeightGTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldExamWeight, v))
}

// ExamWeightLT applies the LT predicate on the "exam_weight" field.
func ExamWeightLT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldExamWeight, v))
}

// ExamWeightLTE applies the LTE predicate on the "exam_weight" field.
func ExamWeightLTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldExamWeight, v))
}

// CompletedHoursEQ applies the EQ predicate on the "completed_hours" field.
func CompletedHoursEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCompletedHours, v))
}

// CompletedHoursNEQ applies the NEQ predicate on the "completed_hours" field.
func CompletedHoursNEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldCompletedHours, v))
}

// CompletedHoursIn applies the In predicate on the "completed_hours" field.
func CompletedHoursIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldCompletedHours, vs...))
}

// CompletedHoursNotIn applies the NotIn predicate on the "completed_hours" field.
func CompletedHoursNotIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldCompletedHours, vs...))
}

// CompletedHoursGT applies the GT predicate on the "completed_hours" field.
func CompletedHoursGT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldCompletedHours, v))
}

// CompletedHoursGTE applies the GTE predicate on the "completed_hours" field.
func CompletedHoursGTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldCompletedHours, v))
}

// CompletedHoursLT applies the LT predicate on the "completed_hours" field.
func CompletedHoursLT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldCompletedHours, v))
}

// CompletedHoursLTE applies the LTE predicate on the "completed_hours" field.
func CompletedHoursLTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldCompletedHours, v))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldSessionCount, v))
}

// AverageScoreEQ applies the EQ predicate on the "average_score" field.
func AverageScoreEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldAverageScore, v))
}

// AverageScoreNEQ applies the NEQ predicate on the "average_score" field.
func AverageScoreNEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldAverageScore, v))
}

// AverageScoreIn applies the In predicate on the "average_score" field.
func AverageScoreIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldAverageScore, vs...))
}

// AverageScoreNotIn applies the NotIn predicate on the "average_score" field.
func AverageScoreNotIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldAverageScore, vs...))
}

// AverageScoreGT applies the GT predicate on the "average_score" field.
func AverageScoreGT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldAverageScore, v))
}

// AverageScoreGTE applies the GTE predicate on the "average_score" field.
func AverageScoreGTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldAverageScore, v))
}

// AverageScoreLT applies the LT predicate on the "average_score" field.
func AverageScoreLT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldAverageScore, v))
}

// AverageScoreLTE applies the LTE predicate on the "average_score" field.
func AverageScoreLTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldAverageScore, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldArchived, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.NotPredicates(p))
}
