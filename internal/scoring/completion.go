package scoring

import (
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

// Per-kind base accuracy assumed for a completed unit. The surrounding
// application does not grade most units, so completion quality is
// inferred from the unit kind and how the actual time compared to plan.
var baseAccuracyByKind = map[studyplan.UnitKind]float64{
	studyplan.KindLesson:       0.88,
	studyplan.KindExercise:     0.68,
	studyplan.KindReview:       0.78,
	studyplan.KindAreaMockExam: 0.60,
	studyplan.KindFullMockExam: 0.62,
	studyplan.KindAnalysis:     0.75,
}

const defaultBaseAccuracy = 0.70

// Mastery gain per completed unit, by kind. Accuracy-scaled kinds
// multiply by the inferred session accuracy.
const (
	masteryLesson   = 8.0
	masteryExercise = 14.0
	masteryReview   = 10.0
	masteryMockExam = 16.0
	masteryDefault  = 6.0
)

// ApplyCompletionUpdate folds one completed unit into the subject's
// rolling profile and returns the snapshot record for persistence.
// The profile is updated in place; no I/O happens here.
func ApplyCompletionUpdate(profile *Profile, unit studyplan.StudyUnit, subject studyplan.Subject, minutesSpent int, now time.Time) CompletionSnapshot {
	accuracy := inferAccuracy(unit, minutesSpent)
	focus := focusScore(unit.DurationMinutes, minutesSpent)
	productivity := clamp(accuracy*focus/0.8, 0, 1)
	difficulty := float64(studyplan.ClampScale(subject.Difficulty)) / 10

	n := float64(profile.SessionCount)
	profile.AccuracyRate = rollingMean(profile.AccuracyRate, n, accuracy)
	profile.ErrorRate = clamp(1-profile.AccuracyRate, 0, 1)
	profile.AverageFocus = rollingMean(profile.AverageFocus, n, focus)
	profile.AverageProductivity = rollingMean(profile.AverageProductivity, n, productivity)
	profile.AverageDifficulty = rollingMean(profile.AverageDifficulty, n, difficulty)
	profile.SessionCount++

	if profile.SessionsByKind == nil {
		profile.SessionsByKind = make(map[studyplan.UnitKind]int)
	}
	profile.SessionsByKind[unit.Kind]++

	t := now
	profile.LastStudiedAt = &t

	if unit.TopicName != "" {
		updateTopic(profile, unit, accuracy, now)
	}

	profile.RecentAccuracies = append(profile.RecentAccuracies, accuracy)
	if len(profile.RecentAccuracies) > trendWindow {
		profile.RecentAccuracies = profile.RecentAccuracies[len(profile.RecentAccuracies)-trendWindow:]
	}
	profile.Trend = trend(profile.RecentAccuracies)

	return CompletionSnapshot{
		SubjectID:      subject.ID,
		UnitID:         unit.ID,
		Kind:           unit.Kind,
		Accuracy:       accuracy,
		FocusScore:     focus,
		Productivity:   productivity,
		MinutesPlanned: unit.DurationMinutes,
		MinutesSpent:   minutesSpent,
		TopicName:      unit.TopicName,
		CompletedAt:    now,
	}
}

// inferAccuracy derives a session accuracy from the unit kind and the
// actual-vs-planned time ratio.
func inferAccuracy(unit studyplan.StudyUnit, minutesSpent int) float64 {
	base, ok := baseAccuracyByKind[unit.Kind]
	if !ok {
		base = defaultBaseAccuracy
	}
	if minutesSpent >= unit.DurationMinutes {
		base += 0.03
	} else {
		base -= 0.05
	}
	return clamp(base, 0.35, 0.98)
}

// focusScore is the fraction of the planned time actually spent, capped
// at 1. A zero-length plan yields a neutral score.
func focusScore(planned, spent int) float64 {
	if planned <= 0 {
		return 0.5
	}
	return clamp(float64(spent)/float64(planned), 0, 1)
}

func rollingMean(old float64, n, x float64) float64 {
	return (old*n + x) / (n + 1)
}

func updateTopic(profile *Profile, unit studyplan.StudyUnit, accuracy float64, now time.Time) {
	if profile.Topics == nil {
		profile.Topics = make(map[string]*TopicProgress)
	}
	tp, ok := profile.Topics[unit.TopicName]
	if !ok {
		tp = &TopicProgress{}
		profile.Topics[unit.TopicName] = tp
	}

	var delta float64
	switch unit.Kind {
	case studyplan.KindLesson:
		delta = masteryLesson
	case studyplan.KindExercise:
		delta = masteryExercise * accuracy
	case studyplan.KindReview:
		delta = masteryReview * accuracy
	case studyplan.KindAreaMockExam, studyplan.KindFullMockExam:
		delta = masteryMockExam * accuracy
	default:
		delta = masteryDefault
	}

	tp.Mastery = clamp(tp.Mastery+delta, 0, 100)
	tp.AccuracyRate = rollingMean(tp.AccuracyRate, float64(tp.SessionsCount), accuracy)
	tp.SessionsCount++
	tp.LastStudiedAt = now

	switch unit.Kind {
	case studyplan.KindLesson:
		tp.NextReviewDate = now.AddDate(0, 0, 1)
	case studyplan.KindReview:
		tp.NextReviewDate = now.AddDate(0, 0, 7)
	}
}

// trend compares the recent half of the stored accuracies against the
// older half. Positive means improving.
func trend(accuracies []float64) float64 {
	if len(accuracies) < 2 {
		return 0
	}
	mid := len(accuracies) / 2
	older := accuracies[:mid]
	recent := accuracies[mid:]
	return mean(recent) - mean(older)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
