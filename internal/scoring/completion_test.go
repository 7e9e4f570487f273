package scoring

import (
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

func lessonUnit(minutes int) studyplan.StudyUnit {
	return studyplan.StudyUnit{
		ID:              studyplan.NewUnitID(),
		SubjectID:       "s1",
		Kind:            studyplan.KindLesson,
		SessionType:     studyplan.SessionTheory,
		DurationMinutes: minutes,
		Status:          studyplan.StatusCompleted,
	}
}

func TestApplyCompletionUpdate_FullTimeLesson(t *testing.T) {
	p := NewProfile("s1")
	now := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)

	snap := ApplyCompletionUpdate(p, lessonUnit(50), testSubject(), 50, now)

	// Lesson base 0.88 + 0.03 on-time bonus.
	if !almostEqual(snap.Accuracy, 0.91) {
		t.Errorf("Accuracy = %f, want 0.91", snap.Accuracy)
	}
	if !almostEqual(p.AccuracyRate, 0.91) {
		t.Errorf("AccuracyRate = %f, want 0.91", p.AccuracyRate)
	}
	if !almostEqual(p.ErrorRate, 0.09) {
		t.Errorf("ErrorRate = %f, want 0.09", p.ErrorRate)
	}
	if p.SessionCount != 1 {
		t.Errorf("SessionCount = %d, want 1", p.SessionCount)
	}
	if p.SessionsByKind[studyplan.KindLesson] != 1 {
		t.Errorf("lesson count = %d, want 1", p.SessionsByKind[studyplan.KindLesson])
	}
	if p.LastStudiedAt == nil || !p.LastStudiedAt.Equal(now) {
		t.Errorf("LastStudiedAt = %v, want %v", p.LastStudiedAt, now)
	}
}

func TestApplyCompletionUpdate_UndercutPenalty(t *testing.T) {
	p := NewProfile("s1")
	unit := lessonUnit(60)
	unit.Kind = studyplan.KindExercise

	snap := ApplyCompletionUpdate(p, unit, testSubject(), 30, time.Now())

	// Exercise base 0.68 − 0.05 undercut penalty.
	if !almostEqual(snap.Accuracy, 0.63) {
		t.Errorf("Accuracy = %f, want 0.63", snap.Accuracy)
	}
	if !almostEqual(snap.FocusScore, 0.5) {
		t.Errorf("FocusScore = %f, want 0.5", snap.FocusScore)
	}
}

func TestApplyCompletionUpdate_AccuracyClamped(t *testing.T) {
	p := NewProfile("s1")
	unit := lessonUnit(30)
	unit.Kind = "unknown-kind"

	snap := ApplyCompletionUpdate(p, unit, testSubject(), 30, time.Now())
	if snap.Accuracy < 0.35 || snap.Accuracy > 0.98 {
		t.Errorf("Accuracy %f outside clamp band", snap.Accuracy)
	}
}

func TestApplyCompletionUpdate_RollingMeanConverges(t *testing.T) {
	p := NewProfile("s1")
	now := time.Now()

	// Repeated identical completions converge the rolling average on the
	// observed accuracy.
	var last float64
	for i := 0; i < 20; i++ {
		snap := ApplyCompletionUpdate(p, lessonUnit(50), testSubject(), 50, now)
		last = snap.Accuracy
	}
	if !almostEqual(p.AccuracyRate, last) {
		t.Errorf("AccuracyRate = %f, want convergence to %f", p.AccuracyRate, last)
	}
	if p.SessionCount != 20 {
		t.Errorf("SessionCount = %d, want 20", p.SessionCount)
	}
}

func TestApplyCompletionUpdate_TopicMastery(t *testing.T) {
	p := NewProfile("s1")
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	unit := lessonUnit(50)
	unit.TopicName = "fractions"
	ApplyCompletionUpdate(p, unit, testSubject(), 50, now)

	tp := p.Topics["fractions"]
	if tp == nil {
		t.Fatal("expected topic progress for fractions")
	}
	if !almostEqual(tp.Mastery, masteryLesson) {
		t.Errorf("Mastery = %f, want %f", tp.Mastery, masteryLesson)
	}
	if !tp.NextReviewDate.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("NextReviewDate = %v, want +1 day after lesson", tp.NextReviewDate)
	}

	review := lessonUnit(40)
	review.Kind = studyplan.KindReview
	review.TopicName = "fractions"
	ApplyCompletionUpdate(p, review, testSubject(), 40, now)

	if !tp.NextReviewDate.Equal(now.AddDate(0, 0, 7)) {
		t.Errorf("NextReviewDate = %v, want +7 days after review", tp.NextReviewDate)
	}
	if tp.SessionsCount != 2 {
		t.Errorf("SessionsCount = %d, want 2", tp.SessionsCount)
	}
}

func TestApplyCompletionUpdate_MasteryClampedAt100(t *testing.T) {
	p := NewProfile("s1")
	unit := lessonUnit(50)
	unit.TopicName = "geometry"
	for i := 0; i < 30; i++ {
		ApplyCompletionUpdate(p, unit, testSubject(), 50, time.Now())
	}
	if p.Topics["geometry"].Mastery != 100 {
		t.Errorf("Mastery = %f, want clamp at 100", p.Topics["geometry"].Mastery)
	}
}

func TestTrend_RecentVersusOlder(t *testing.T) {
	p := NewProfile("s1")
	now := time.Now()

	// Older completions undercut time (lower accuracy), recent ones meet
	// it: trend should come out positive.
	for i := 0; i < 5; i++ {
		ApplyCompletionUpdate(p, lessonUnit(60), testSubject(), 20, now)
	}
	for i := 0; i < 5; i++ {
		ApplyCompletionUpdate(p, lessonUnit(60), testSubject(), 60, now)
	}
	if p.Trend <= 0 {
		t.Errorf("Trend = %f, want positive", p.Trend)
	}
}

func TestTrend_WindowCapped(t *testing.T) {
	p := NewProfile("s1")
	for i := 0; i < 40; i++ {
		ApplyCompletionUpdate(p, lessonUnit(50), testSubject(), 50, time.Now())
	}
	if len(p.RecentAccuracies) != trendWindow {
		t.Errorf("stored accuracies = %d, want %d", len(p.RecentAccuracies), trendWindow)
	}
}

func TestTracker_LazyDefaultProfile(t *testing.T) {
	tr := NewTracker(nil)
	p := tr.Profile("new-subject")
	if p == nil || p.SubjectID != "new-subject" {
		t.Fatalf("expected lazily created profile, got %+v", p)
	}
	if p.SessionCount != 0 {
		t.Errorf("SessionCount = %d, want 0", p.SessionCount)
	}
	if tr.Profile("new-subject") != p {
		t.Error("expected same profile instance on second lookup")
	}
}

func TestTracker_RecordCompletion(t *testing.T) {
	tr := NewTracker(nil)
	snap := tr.RecordCompletion(lessonUnit(50), testSubject(), 50, time.Now())
	if snap.SubjectID != "s1" {
		t.Errorf("SubjectID = %s, want s1", snap.SubjectID)
	}
	if tr.Profile("s1").SessionCount != 1 {
		t.Errorf("SessionCount = %d, want 1", tr.Profile("s1").SessionCount)
	}
}
