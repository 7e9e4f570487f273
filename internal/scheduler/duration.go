package scheduler

import (
	"math"

	"github.com/rsoarez/planista/internal/studyplan"
)

// examMinMinutes is the duration floor for mock-exam units.
const examMinMinutes = 90

// unitDuration sizes a unit from the subject's difficulty, level and
// exam weight, scaled by kind and bounded by the block cap.
func unitDuration(subject studyplan.Subject, kind studyplan.UnitKind, blockCap int) int {
	if blockCap < minUnitMinutes {
		blockCap = minUnitMinutes
	}

	difficultyAdj := 0.6 + (1 - float64(studyplan.ClampScale(subject.Difficulty))/12)
	levelAdj := 1.0
	switch subject.Level {
	case studyplan.LevelBasic:
		levelAdj = 0.8
	case studyplan.LevelIntermediate:
		levelAdj = 0.9
	}
	weightAdj := 0.85 + (subject.ExamWeight*10-3)*0.05

	base := math.Round(float64(blockCap) * difficultyAdj * levelAdj * weightAdj)
	minutes := int(math.Max(float64(minUnitMinutes), math.Min(float64(blockCap), base)))

	switch {
	case kind == studyplan.KindReview:
		minutes = int(math.Round(float64(minutes) * 0.7))
	case kind.IsMockExam():
		minutes = int(math.Round(float64(minutes) * 1.1))
	}
	if minutes < minUnitMinutes {
		minutes = minUnitMinutes
	}
	if kind.IsMockExam() && minutes < examMinMinutes {
		minutes = examMinMinutes
	}
	return minutes
}

// capDuration bounds a duration by the remaining window and capacity.
func capDuration(minutes, remainingWindow, remainingCapacity int) int {
	if minutes > remainingWindow {
		minutes = remainingWindow
	}
	if minutes > remainingCapacity {
		minutes = remainingCapacity
	}
	return minutes
}
