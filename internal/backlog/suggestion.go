package backlog

import (
	"math"

	"github.com/rsoarez/planista/internal/studyplan"
)

// Thresholds for post-run recovery advice.
const (
	replanBacklogThreshold    = 6
	reduceNewThreshold        = 4
	recoveryRescheduleCount   = 3
	extraMinutesSpreadDaysCap = 5
)

// Suggestion is the structured recovery advice returned after a
// redistribution run. A non-zero PendingBacklogCount is a user-facing
// warning, not an error.
type Suggestion struct {
	ShouldSuggestReplan         bool
	ShouldSuggestRecoveryMode   bool
	SuggestedExtraMinutesPerDay int
	SuggestedReduceNewContent   bool
	PendingBacklogCount         int
}

func buildSuggestion(units []studyplan.StudyUnit, backlogAfter, totalBacklogMinutes, lookaheadDays int) Suggestion {
	recovery := false
	for _, u := range units {
		if u.RescheduleCount >= recoveryRescheduleCount {
			recovery = true
			break
		}
	}

	spread := lookaheadDays
	if spread > extraMinutesSpreadDaysCap {
		spread = extraMinutesSpreadDaysCap
	}
	extra := 0
	if spread > 0 && totalBacklogMinutes > 0 {
		extra = int(math.Ceil(float64(totalBacklogMinutes) / float64(spread)))
	}

	return Suggestion{
		ShouldSuggestReplan:         backlogAfter >= replanBacklogThreshold,
		ShouldSuggestRecoveryMode:   recovery,
		SuggestedExtraMinutesPerDay: extra,
		SuggestedReduceNewContent:   backlogAfter >= reduceNewThreshold || recovery,
		PendingBacklogCount:         backlogAfter,
	}
}
