package studyplan

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnitKind classifies what a study unit asks the learner to do.
type UnitKind string

const (
	KindLesson       UnitKind = "lesson"
	KindExercise     UnitKind = "exercise"
	KindReview       UnitKind = "review"
	KindAreaMockExam UnitKind = "area_mock_exam"
	KindFullMockExam UnitKind = "full_mock_exam"
	KindAnalysis     UnitKind = "analysis"
)

// IsMockExam reports whether the kind is one of the two exam variants.
func (k UnitKind) IsMockExam() bool {
	return k == KindAreaMockExam || k == KindFullMockExam
}

// SessionType is the coarse session classification carried on each unit.
type SessionType string

const (
	SessionTheory   SessionType = "theory"
	SessionPractice SessionType = "practice"
	SessionReview   SessionType = "review"
	SessionMockExam SessionType = "mock_exam"
)

// Status tracks a unit through its lifecycle. Units are never deleted by
// the planning engines; they only change status.
type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusSkipped     Status = "skipped"
	StatusRescheduled Status = "rescheduled"
)

// MockExamSubjectID is the reserved pseudo-subject carried by mock-exam
// and analysis units. Exam units point back at the real subject through
// RelatedSubjectID.
const MockExamSubjectID = "mock-exam"

// StudyUnit is one scheduled interval on the calendar, study or break.
type StudyUnit struct {
	ID               string
	SubjectID        string
	Date             time.Time // UTC midnight
	Start            Clock
	End              Clock
	DurationMinutes  int
	IsBreak          bool
	Kind             UnitKind
	SessionType      SessionType
	Status           Status
	Phase            string
	RescheduleCount  int
	OriginalDate     time.Time // first-ever date, preserved across moves
	RelatedSubjectID string
	CompletedAt      *time.Time
	TopicName        string
	UpdatedAt        time.Time

	// StageIndex and StageTarget record the pedagogical-cycle position
	// the unit was emitted from (stage number and its repeat target).
	StageIndex  int
	StageTarget int
}

// NewUnitID returns a fresh random unit identifier.
func NewUnitID() string {
	return uuid.NewString()
}

// unitNamespace seeds deterministic unit ids so that regenerating a
// plan from identical input yields byte-identical output.
var unitNamespace = uuid.MustParse("7a3f9d52-1c2e-4b8a-9f66-0d4e8c1b5a30")

// DeterministicUnitID derives a stable unit identifier from the given
// parts (typically day key and emission sequence).
func DeterministicUnitID(parts ...string) string {
	return uuid.NewSHA1(unitNamespace, []byte(strings.Join(parts, "/"))).String()
}

// DayKey returns the canonical calendar-day key for a time.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DateOnly truncates a time to UTC midnight.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day distance from a to b (b − a).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
