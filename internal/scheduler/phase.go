package scheduler

import (
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

// Campaign phase labels, derived from the elapsed-week index since the
// range start.
const (
	PhaseBase          = "base"
	PhaseDeepening     = "deepening"
	PhaseConsolidation = "consolidation"
)

// phaseForDate labels a date by campaign phase: weeks 1-2 build the
// base, weeks 3-5 deepen, week 6 onward consolidates.
func phaseForDate(start, date time.Time) string {
	week := studyplan.DaysBetween(start, date) / 7
	switch {
	case week < 2:
		return PhaseBase
	case week < 5:
		return PhaseDeepening
	}
	return PhaseConsolidation
}
