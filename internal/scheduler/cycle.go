package scheduler

import "github.com/rsoarez/planista/internal/studyplan"

// Stage is a position in the per-subject pedagogical cycle.
type Stage int

const (
	StageTheory Stage = iota
	StagePractice
	StageReview
	StageMockExam

	stageCount = 4
)

func (s Stage) String() string {
	switch s {
	case StageTheory:
		return "theory"
	case StagePractice:
		return "practice"
	case StageReview:
		return "review"
	case StageMockExam:
		return "mock_exam"
	}
	return "unknown"
}

// CycleState is a subject's position in the cycle within one planning
// run. It advances monotonically and is not persisted across runs.
type CycleState struct {
	Stage    Stage
	Progress int // repeats completed within the current stage
}

// repeatTarget returns how many times a stage repeats before advancing,
// keyed by (stage, subject level).
func repeatTarget(s Stage, level studyplan.Level) int {
	switch s {
	case StageTheory:
		if level == studyplan.LevelBasic {
			return 2
		}
		return 1
	case StagePractice:
		switch level {
		case studyplan.LevelAdvanced:
			return 3
		case studyplan.LevelIntermediate:
			return 2
		}
		return 1
	}
	// Review and mock-exam stages never repeat.
	return 1
}

// advance records one completed repeat and moves to the next stage when
// the repeat target is met. Pure: returns the new state.
func advance(cs CycleState, level studyplan.Level) CycleState {
	cs.Progress++
	if cs.Progress >= repeatTarget(cs.Stage, level) {
		cs.Stage = (cs.Stage + 1) % stageCount
		cs.Progress = 0
	}
	return cs
}

// stageKind maps a cycle stage to the unit kind and session type it
// emits. Mock-exam stages resolve their concrete kind during gating.
func stageKind(s Stage) (studyplan.UnitKind, studyplan.SessionType) {
	switch s {
	case StageTheory:
		return studyplan.KindLesson, studyplan.SessionTheory
	case StagePractice:
		return studyplan.KindExercise, studyplan.SessionPractice
	case StageReview:
		return studyplan.KindReview, studyplan.SessionReview
	}
	return studyplan.KindFullMockExam, studyplan.SessionMockExam
}
