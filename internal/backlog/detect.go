package backlog

import (
	"sort"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

// Priority weights for backlog scoring. Reviews decay fastest, so they
// outrank everything; skipped units get a fixed urgency boost.
const (
	reviewBonus       = 1000
	examBonus         = 700
	analysisBonus     = 500
	skippedBonus      = 120
	overdueDayStep    = 30
	reschedulePenalty = 15
)

// Entry is a derived backlog record: an overdue or skipped unit with
// its redistribution priority. Recomputed on demand, never stored.
type Entry struct {
	Unit          studyplan.StudyUnit
	DaysOverdue   int
	PriorityScore float64
}

// Detect selects the units that became overdue or were skipped and
// scores them by redistribution priority, highest first.
func Detect(units []studyplan.StudyUnit, subjects []studyplan.Subject, today time.Time) []Entry {
	weights := subjectWeights(subjects)
	day := studyplan.DateOnly(today)

	var entries []Entry
	for _, u := range units {
		if u.IsBreak || !overdue(u, day) {
			continue
		}
		daysOver := studyplan.DaysBetween(u.Date, day)
		if daysOver < 0 {
			daysOver = 0
		}
		entries = append(entries, Entry{
			Unit:          u,
			DaysOverdue:   daysOver,
			PriorityScore: priorityScore(u, daysOver, weights),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].PriorityScore != entries[j].PriorityScore {
			return entries[i].PriorityScore > entries[j].PriorityScore
		}
		return entries[i].Unit.Date.Before(entries[j].Unit.Date)
	})
	return entries
}

// overdue reports whether a unit belongs in the backlog relative to
// today: pending units dated strictly before today, plus skipped units
// dated today.
func overdue(u studyplan.StudyUnit, today time.Time) bool {
	switch u.Status {
	case studyplan.StatusScheduled, studyplan.StatusInProgress,
		studyplan.StatusSkipped, studyplan.StatusRescheduled:
	default:
		return false
	}
	if u.Date.Before(today) {
		return true
	}
	return u.Status == studyplan.StatusSkipped && u.Date.Equal(today)
}

func priorityScore(u studyplan.StudyUnit, daysOverdue int, weights map[string]float64) float64 {
	score := float64(daysOverdue * overdueDayStep)

	switch {
	case u.Kind == studyplan.KindReview:
		score += reviewBonus
	case u.Kind.IsMockExam():
		score += examBonus
	case u.Kind == studyplan.KindAnalysis:
		score += analysisBonus
	}
	if u.Status == studyplan.StatusSkipped {
		score += skippedBonus
	}

	score += weights[subjectKey(u)]
	score -= float64(u.RescheduleCount * reschedulePenalty)
	return score
}

// subjectWeights precomputes priority×4 + difficulty×3 + examWeight×2
// per subject.
func subjectWeights(subjects []studyplan.Subject) map[string]float64 {
	w := make(map[string]float64, len(subjects))
	for _, s := range subjects {
		w[s.ID] = float64(s.Priority)*4 + float64(s.Difficulty)*3 + s.ExamWeight*2
	}
	return w
}

func subjectKey(u studyplan.StudyUnit) string {
	if u.SubjectID == studyplan.MockExamSubjectID && u.RelatedSubjectID != "" {
		return u.RelatedSubjectID
	}
	return u.SubjectID
}
