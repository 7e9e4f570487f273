package scheduler

import (
	"sort"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

// examGate evaluates mock-exam eligibility against the rules and the
// accumulated lesson counts.
type examGate struct {
	rules        MockExamRules
	start        time.Time
	topSubjects  []string // ids of the top-3-priority subjects
	lastFullExam *time.Time
}

func newExamGate(rules MockExamRules, start time.Time, subjects []studyplan.Subject) *examGate {
	ranked := make([]studyplan.Subject, len(subjects))
	copy(ranked, subjects)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})
	n := 3
	if len(ranked) < n {
		n = len(ranked)
	}
	top := make([]string, 0, n)
	for _, s := range ranked[:n] {
		top = append(top, s.ID)
	}
	return &examGate{rules: rules, start: start, topSubjects: top}
}

// fullEligible reports whether a full mock exam may be emitted on date.
func (g *examGate) fullEligible(date time.Time, totalLessons int, lessons map[string]int) bool {
	if studyplan.DaysBetween(g.start, date) < g.rules.MinDaysBeforeFull {
		return false
	}
	if totalLessons < g.rules.MinLessonsBeforeFull {
		return false
	}
	for _, id := range g.topSubjects {
		if lessons[id] < g.rules.MinLessonsPerSubject {
			return false
		}
	}
	if g.lastFullExam != nil && studyplan.DaysBetween(*g.lastFullExam, date) < g.rules.FrequencyDays {
		return false
	}
	return true
}

// areaEligible reports whether an area mock exam may be emitted on date.
func (g *examGate) areaEligible(date time.Time, totalLessons int) bool {
	return studyplan.DaysBetween(g.start, date) >= g.rules.MinDaysBeforeArea &&
		totalLessons >= g.rules.MinLessonsBeforeArea
}

// resolve picks the exam kind for a mock-exam stage, full preferred.
// The second return is false when neither exam is eligible.
func (g *examGate) resolve(date time.Time, totalLessons int, lessons map[string]int) (studyplan.UnitKind, bool) {
	if g.fullEligible(date, totalLessons, lessons) {
		return studyplan.KindFullMockExam, true
	}
	if g.areaEligible(date, totalLessons) {
		return studyplan.KindAreaMockExam, true
	}
	return "", false
}

// recordFull notes the date of an emitted full mock exam for the
// frequency gate.
func (g *examGate) recordFull(date time.Time) {
	d := date
	g.lastFullExam = &d
}
