package advisor

import (
	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/studyplan"
)

// AdviceInput is everything the coach sees about the learner's state.
type AdviceInput struct {
	Subjects []studyplan.Subject
	Profiles []*scoring.Profile

	// Backlog pressure.
	BacklogCount   int
	BacklogMinutes int
	RecoveryMode   bool

	// Upcoming plan shape.
	DaysToExam    int // -1 when no exam date is set
	PlannedUnits  int
	PlannedHours  float64
	MockExamsNext int // mock exams scheduled in the visible range

	// Question is an optional free-text question from the learner; when
	// set the coach answers it in the summary.
	Question string
}

// Advice is the structured study-coach output.
type Advice struct {
	Summary       string
	FocusSubjects []string
	Adjustments   []string
	Encouragement string
}
