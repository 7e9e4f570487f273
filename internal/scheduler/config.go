package scheduler

import (
	"time"

	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/studyplan"
)

// GoalExam marks an exam-tracked study goal. Exam goals tighten the
// per-day repeat cap to one unit per subject.
const GoalExam = "exam"

// minUnitMinutes is the smallest interval worth scheduling. Day packing
// stops when the remaining window or capacity drops below it.
const minUnitMinutes = 25

// DateRange is the inclusive calendar span a plan covers.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days in the range, 0 when the
// range is inverted.
func (r DateRange) Days() int {
	d := studyplan.DaysBetween(r.Start, r.End) + 1
	if d < 0 {
		return 0
	}
	return d
}

// Preferences carries the learner's scheduling preferences.
type Preferences struct {
	HoursPerDay    float64
	ActiveWeekdays []time.Weekday
	Goal           string
	ExamDate       *time.Time
	LearnerLevel   studyplan.Level
}

func (p Preferences) weekdayActive(d time.Weekday) bool {
	for _, w := range p.ActiveWeekdays {
		if w == d {
			return true
		}
	}
	return false
}

// dailyRepeatCap is how many times one subject may appear in a day.
func (p Preferences) dailyRepeatCap() int {
	if p.Goal == GoalExam {
		return 1
	}
	return 2
}

// DayWindow is the daily time window units are packed into.
type DayWindow struct {
	Start          studyplan.Clock
	End            studyplan.Clock
	MaxUnitMinutes int
	BreakMinutes   int
}

// Minutes returns the window length, 0 when degenerate.
func (w DayWindow) Minutes() int {
	m := w.End.Minutes() - w.Start.Minutes()
	if m < 0 {
		return 0
	}
	return m
}

// Flags carries prior-progress and coverage switches.
type Flags struct {
	// FirstCycleAllSubjects narrows candidate selection to subjects
	// without a first lesson until every subject has one.
	FirstCycleAllSubjects bool

	// CompletedLessons and CompletedLessonsBySubject seed the lesson
	// counters with progress from earlier plans.
	CompletedLessons          int
	CompletedLessonsBySubject map[string]int

	// TopicCatalog maps subject id to its ordered topic list. Lessons
	// walk the catalog in order.
	TopicCatalog map[string][]string
}

// MockExamRules gates mock-exam insertion.
type MockExamRules struct {
	MinDaysBeforeFull    int
	MinLessonsBeforeFull int
	MinLessonsPerSubject int
	FrequencyDays        int
	MinDaysBeforeArea    int
	MinLessonsBeforeArea int
}

// DefaultMockExamRules mirrors the standard campaign thresholds.
func DefaultMockExamRules() MockExamRules {
	return MockExamRules{
		MinDaysBeforeFull:    14,
		MinLessonsBeforeFull: 18,
		MinLessonsPerSubject: 3,
		FrequencyDays:        7,
		MinDaysBeforeArea:    7,
		MinLessonsBeforeArea: 8,
	}
}

// Input is everything Generate consumes. Generation is a pure function
// of this value; callers may memoize by its fingerprint.
type Input struct {
	Subjects          []studyplan.Subject
	Preferences       Preferences
	Range             DateRange
	Window            DayWindow
	CapacityOverrides map[string]int // day key → minutes
	RestDays          []string       // day keys skipped entirely
	Flags             Flags
	MockExamRules     MockExamRules

	// Profiles optionally feed the adaptive factors into ranking.
	Profiles []*scoring.Profile
}

// Result is the synthesized plan.
type Result struct {
	Units               []studyplan.StudyUnit
	TotalHours          float64
	SubjectDistribution map[string]float64 // hours per subject
	PhaseByDate         map[string]string
}
