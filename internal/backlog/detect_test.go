package backlog

import (
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

var today = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // a Monday

func backlogSubjects() []studyplan.Subject {
	return []studyplan.Subject{
		{ID: "math", Name: "Mathematics", Priority: 9, Difficulty: 7, ExamWeight: 0.9},
		{ID: "lang", Name: "Language", Priority: 7, Difficulty: 5, ExamWeight: 0.8},
	}
}

func unitOn(date time.Time, subject string, kind studyplan.UnitKind, status studyplan.Status) studyplan.StudyUnit {
	return studyplan.StudyUnit{
		ID:              studyplan.NewUnitID(),
		SubjectID:       subject,
		Date:            studyplan.DateOnly(date),
		Start:           studyplan.NewClock(9, 0),
		End:             studyplan.NewClock(9, 50),
		DurationMinutes: 50,
		Kind:            kind,
		SessionType:     studyplan.SessionPractice,
		Status:          status,
	}
}

func TestDetect_OverdueScheduledUnit(t *testing.T) {
	u := unitOn(today.AddDate(0, 0, -3), "math", studyplan.KindExercise, studyplan.StatusScheduled)
	entries := Detect([]studyplan.StudyUnit{u}, backlogSubjects(), today)

	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].DaysOverdue != 3 {
		t.Errorf("DaysOverdue = %d, want 3", entries[0].DaysOverdue)
	}
}

func TestDetect_SkippedTodayIncluded(t *testing.T) {
	u := unitOn(today, "math", studyplan.KindExercise, studyplan.StatusSkipped)
	entries := Detect([]studyplan.StudyUnit{u}, backlogSubjects(), today)
	if len(entries) != 1 {
		t.Fatalf("skipped-today unit not detected")
	}
	if entries[0].DaysOverdue != 0 {
		t.Errorf("DaysOverdue = %d, want 0", entries[0].DaysOverdue)
	}
}

func TestDetect_ExcludesFutureCompletedAndBreaks(t *testing.T) {
	units := []studyplan.StudyUnit{
		unitOn(today.AddDate(0, 0, 2), "math", studyplan.KindExercise, studyplan.StatusScheduled),
		unitOn(today.AddDate(0, 0, -2), "math", studyplan.KindExercise, studyplan.StatusCompleted),
	}
	brk := unitOn(today.AddDate(0, 0, -2), "", "", studyplan.StatusScheduled)
	brk.IsBreak = true
	units = append(units, brk)

	if entries := Detect(units, backlogSubjects(), today); len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}

func TestDetect_KindPriorityOrdering(t *testing.T) {
	d := today.AddDate(0, 0, -1)
	exercise := unitOn(d, "math", studyplan.KindExercise, studyplan.StatusScheduled)
	review := unitOn(d, "math", studyplan.KindReview, studyplan.StatusScheduled)
	analysis := unitOn(d, "math", studyplan.KindAnalysis, studyplan.StatusScheduled)
	exam := unitOn(d, studyplan.MockExamSubjectID, studyplan.KindFullMockExam, studyplan.StatusScheduled)
	exam.RelatedSubjectID = "math"

	entries := Detect([]studyplan.StudyUnit{exercise, review, analysis, exam}, backlogSubjects(), today)

	wantOrder := []studyplan.UnitKind{
		studyplan.KindReview,
		studyplan.KindFullMockExam,
		studyplan.KindAnalysis,
		studyplan.KindExercise,
	}
	for i, want := range wantOrder {
		if entries[i].Unit.Kind != want {
			t.Errorf("position %d: kind = %s, want %s", i, entries[i].Unit.Kind, want)
		}
	}
}

func TestDetect_SkippedBonusAndReschedulePenalty(t *testing.T) {
	d := today.AddDate(0, 0, -1)
	skipped := unitOn(d, "math", studyplan.KindExercise, studyplan.StatusSkipped)
	moved := unitOn(d, "math", studyplan.KindExercise, studyplan.StatusRescheduled)
	moved.RescheduleCount = 2

	entries := Detect([]studyplan.StudyUnit{moved, skipped}, backlogSubjects(), today)
	if entries[0].Unit.Status != studyplan.StatusSkipped {
		t.Error("skipped unit should outrank a twice-rescheduled one")
	}
	diff := entries[0].PriorityScore - entries[1].PriorityScore
	if diff != skippedBonus+2*reschedulePenalty {
		t.Errorf("score gap = %f, want %d", diff, skippedBonus+2*reschedulePenalty)
	}
}

func TestDetect_MoreOverdueScoresHigher(t *testing.T) {
	older := unitOn(today.AddDate(0, 0, -5), "lang", studyplan.KindExercise, studyplan.StatusScheduled)
	newer := unitOn(today.AddDate(0, 0, -1), "lang", studyplan.KindExercise, studyplan.StatusScheduled)
	entries := Detect([]studyplan.StudyUnit{newer, older}, backlogSubjects(), today)
	if entries[0].DaysOverdue != 5 {
		t.Errorf("most overdue first: got %d days", entries[0].DaysOverdue)
	}
}
