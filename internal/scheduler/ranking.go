package scheduler

import (
	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/studyplan"
)

// rankContext is the day-local and run-global state candidate ranking
// reads. It is threaded explicitly so ranking stays a pure function.
type rankContext struct {
	rotationArea    studyplan.Area
	lastSubjectID   string          // subject of the immediately preceding unit today
	dayRecent       []string        // subject ids of the last 3 study units today
	globalRecent    []string        // subject ids of the last 5 study units overall
	prevDayFirst    string          // first subject of the previous scheduled day
	prevDaySubjects map[string]bool // all subjects of the previous scheduled day
	usedToday       map[string]int
	dailyCap        int
	cursor          studyplan.Clock
	lessons         map[string]int
	factors         map[string]scoring.Factors
}

// rankScore scores one candidate for the next slot. Higher wins.
func rankScore(s studyplan.Subject, ctx rankContext) float64 {
	score := s.ExamWeight * 10
	score += float64(ctx.dailyCap-ctx.usedToday[s.ID]) * 2

	area := studyplan.InferArea(s)
	if area == ctx.rotationArea {
		score += 12
	}
	if ctx.lastSubjectID != "" && s.ID != ctx.lastSubjectID {
		score += 8
	}
	if ctx.lessons[s.ID] == 0 {
		score += 18
	}

	switch area {
	case studyplan.AreaQuant:
		score += 14
	case studyplan.AreaLanguage:
		score += 12
	case studyplan.AreaWriting:
		score += 10
	}

	for _, id := range ctx.dayRecent {
		if id == s.ID {
			score -= 12
			break
		}
	}
	for _, id := range ctx.globalRecent {
		if id == s.ID {
			score -= 10
			break
		}
	}
	if s.ID == ctx.prevDayFirst {
		score -= 16
	} else if ctx.prevDaySubjects[s.ID] {
		score -= 6
	}

	// Time-of-day nudges: advanced material earlier, basic later.
	hour := ctx.cursor.Minutes() / 60
	if s.Level == studyplan.LevelAdvanced && hour < 12 {
		score += 3
	}
	if s.Level == studyplan.LevelBasic && hour >= 18 {
		score += 3
	}

	// Adaptive coupling: the scoring module's priority score tips
	// otherwise-close candidates.
	if f, ok := ctx.factors[s.ID]; ok {
		score += f.PriorityScore()
	}

	return score
}

// pickSubject returns the highest-scoring candidate. Ties resolve in
// declaration order, except a tie with the immediately preceding
// subject yields to any equal-scoring alternative.
func pickSubject(candidates []studyplan.Subject, ctx rankContext) (studyplan.Subject, bool) {
	if len(candidates) == 0 {
		return studyplan.Subject{}, false
	}

	best := candidates[0]
	bestScore := rankScore(best, ctx)
	for _, c := range candidates[1:] {
		if s := rankScore(c, ctx); s > bestScore {
			best, bestScore = c, s
		}
	}

	if best.ID == ctx.lastSubjectID {
		for _, c := range candidates {
			if c.ID != ctx.lastSubjectID && rankScore(c, ctx) == bestScore {
				return c, true
			}
		}
	}
	return best, true
}
