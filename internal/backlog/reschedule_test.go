package backlog

import (
	"math"
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

func rescheduleInput(units []studyplan.StudyUnit) Input {
	return Input{
		Units:             units,
		Subjects:          backlogSubjects(),
		Today:             today,
		DefaultDayMinutes: 240,
		QuotaRatio:        0.3,
		LookaheadDays:     7,
	}
}

func TestAutoReschedule_MovesOverdueUnit(t *testing.T) {
	u := unitOn(today.AddDate(0, 0, -2), "math", studyplan.KindExercise, studyplan.StatusScheduled)
	out := AutoReschedule(rescheduleInput([]studyplan.StudyUnit{u}))

	if out.MovedCount != 1 {
		t.Fatalf("MovedCount = %d, want 1", out.MovedCount)
	}
	moved := out.Units[0]
	if moved.Date.Before(studyplan.DateOnly(today)) {
		t.Errorf("moved date %s still before today", moved.Date)
	}
	if moved.Status != studyplan.StatusRescheduled {
		t.Errorf("status = %s, want rescheduled", moved.Status)
	}
	if moved.RescheduleCount != 1 {
		t.Errorf("RescheduleCount = %d, want 1", moved.RescheduleCount)
	}
	if !moved.OriginalDate.Equal(studyplan.DateOnly(today.AddDate(0, 0, -2))) {
		t.Errorf("OriginalDate = %s, want the first-ever date", moved.OriginalDate)
	}
	if out.BacklogBefore != 1 || out.BacklogAfter != 0 {
		t.Errorf("backlog before/after = %d/%d, want 1/0", out.BacklogBefore, out.BacklogAfter)
	}
}

func TestAutoReschedule_PreservesOriginalDateAcrossMoves(t *testing.T) {
	first := studyplan.DateOnly(today.AddDate(0, 0, -10))
	u := unitOn(today.AddDate(0, 0, -2), "math", studyplan.KindExercise, studyplan.StatusRescheduled)
	u.OriginalDate = first
	u.RescheduleCount = 1

	out := AutoReschedule(rescheduleInput([]studyplan.StudyUnit{u}))
	moved := out.Units[0]
	if !moved.OriginalDate.Equal(first) {
		t.Errorf("OriginalDate = %s, want preserved %s", moved.OriginalDate, first)
	}
	if moved.RescheduleCount != 2 {
		t.Errorf("RescheduleCount = %d, want 2", moved.RescheduleCount)
	}
}

func TestAutoReschedule_QuotaNeverExceeded(t *testing.T) {
	var units []studyplan.StudyUnit
	for i := 0; i < 8; i++ {
		units = append(units, unitOn(today.AddDate(0, 0, -1-i%3), "math", studyplan.KindExercise, studyplan.StatusScheduled))
	}
	in := rescheduleInput(units)
	out := AutoReschedule(in)

	quota := int(math.Floor(240 * in.QuotaRatio))
	perDay := make(map[string]int)
	for _, u := range out.Units {
		if u.Status == studyplan.StatusRescheduled && !u.UpdatedAt.IsZero() {
			perDay[studyplan.DayKey(u.Date)] += u.DurationMinutes
		}
	}
	for day, minutes := range perDay {
		if minutes > quota {
			t.Errorf("day %s: backlog minutes %d exceed quota %d", day, minutes, quota)
		}
	}
}

func TestAutoReschedule_SubjectDiversityCap(t *testing.T) {
	subjects := []studyplan.Subject{
		{ID: "a", Name: "A", Priority: 5, Difficulty: 5},
		{ID: "b", Name: "B", Priority: 5, Difficulty: 5},
		{ID: "c", Name: "C", Priority: 5, Difficulty: 5},
	}
	units := []studyplan.StudyUnit{
		unitOn(today.AddDate(0, 0, -1), "a", studyplan.KindExercise, studyplan.StatusScheduled),
		unitOn(today.AddDate(0, 0, -1), "b", studyplan.KindExercise, studyplan.StatusScheduled),
		unitOn(today.AddDate(0, 0, -1), "c", studyplan.KindExercise, studyplan.StatusScheduled),
	}
	in := rescheduleInput(units)
	in.Subjects = subjects
	in.MaxBacklogSubjectsPerDay = 1
	in.DefaultDayMinutes = 600
	in.QuotaRatio = 0.4

	out := AutoReschedule(in)
	bySubject := make(map[string]map[string]bool)
	for _, u := range out.Units {
		if u.Status != studyplan.StatusRescheduled {
			continue
		}
		day := studyplan.DayKey(u.Date)
		if bySubject[day] == nil {
			bySubject[day] = make(map[string]bool)
		}
		bySubject[day][u.SubjectID] = true
	}
	for day, subjects := range bySubject {
		if len(subjects) > 1 {
			t.Errorf("day %s: %d distinct backlog subjects, cap is 1", day, len(subjects))
		}
	}
}

func TestAutoReschedule_ExamPrefersWeekend(t *testing.T) {
	exam := unitOn(today.AddDate(0, 0, -1), studyplan.MockExamSubjectID, studyplan.KindFullMockExam, studyplan.StatusScheduled)
	exam.RelatedSubjectID = "math"
	exam.DurationMinutes = 90

	// Give every day identical room so the weekend bonus decides.
	in := rescheduleInput([]studyplan.StudyUnit{exam})
	in.DefaultDayMinutes = 600
	out := AutoReschedule(in)

	moved := out.Units[0]
	wd := moved.Date.Weekday()
	if wd != time.Saturday && wd != time.Sunday {
		t.Errorf("exam placed on %s, want a weekend day", wd)
	}
}

func TestAutoReschedule_AppendsAfterLastUnit(t *testing.T) {
	existing := unitOn(today, "lang", studyplan.KindLesson, studyplan.StatusScheduled)
	existing.Start = studyplan.NewClock(8, 0)
	existing.End = studyplan.NewClock(8, 50)
	overdueU := unitOn(today.AddDate(0, 0, -1), "math", studyplan.KindExercise, studyplan.StatusScheduled)

	in := rescheduleInput([]studyplan.StudyUnit{existing, overdueU})
	in.DefaultDayMinutes = 600
	in.LookaheadDays = 1
	out := AutoReschedule(in)

	for _, u := range out.Units {
		if u.Status != studyplan.StatusRescheduled {
			continue
		}
		if u.Start < existing.End {
			t.Errorf("rescheduled unit starts %s, before the day's last end %s", u.Start, existing.End)
		}
	}
}

func TestAutoReschedule_UnplaceableStaysPending(t *testing.T) {
	u := unitOn(today.AddDate(0, 0, -1), "math", studyplan.KindExercise, studyplan.StatusScheduled)
	u.DurationMinutes = 300 // larger than any quota

	out := AutoReschedule(rescheduleInput([]studyplan.StudyUnit{u}))
	if out.MovedCount != 0 {
		t.Errorf("MovedCount = %d, want 0", out.MovedCount)
	}
	if out.Suggestion.PendingBacklogCount != 1 {
		t.Errorf("PendingBacklogCount = %d, want 1", out.Suggestion.PendingBacklogCount)
	}
}

func TestAutoReschedule_SuggestionThresholds(t *testing.T) {
	var units []studyplan.StudyUnit
	for i := 0; i < 7; i++ {
		u := unitOn(today.AddDate(0, 0, -1), "math", studyplan.KindExercise, studyplan.StatusScheduled)
		u.DurationMinutes = 300 // unplaceable, stays in backlog
		units = append(units, u)
	}
	out := AutoReschedule(rescheduleInput(units))

	if !out.Suggestion.ShouldSuggestReplan {
		t.Error("expected replan suggestion with backlog >= 6")
	}
	if !out.Suggestion.SuggestedReduceNewContent {
		t.Error("expected reduce-new-content suggestion with backlog >= 4")
	}
	want := int(math.Ceil(float64(7*300) / 5))
	if out.Suggestion.SuggestedExtraMinutesPerDay != want {
		t.Errorf("SuggestedExtraMinutesPerDay = %d, want %d", out.Suggestion.SuggestedExtraMinutesPerDay, want)
	}
}

func TestAutoReschedule_RecoveryModeOnRepeatedMoves(t *testing.T) {
	u := unitOn(today.AddDate(0, 0, -1), "math", studyplan.KindExercise, studyplan.StatusRescheduled)
	u.RescheduleCount = 2
	out := AutoReschedule(rescheduleInput([]studyplan.StudyUnit{u}))

	if !out.Suggestion.ShouldSuggestRecoveryMode {
		t.Error("expected recovery-mode suggestion after the third move")
	}
}

func TestAutoReschedule_DisplacesLowPriorityTail(t *testing.T) {
	// Today is full of low-priority exercises; an overdue review must
	// displace one of them rather than wait.
	var units []studyplan.StudyUnit
	start := studyplan.NewClock(8, 0)
	for i := 0; i < 4; i++ {
		u := unitOn(today, "lang", studyplan.KindExercise, studyplan.StatusScheduled)
		u.Start = start
		u.End = start.Add(50)
		start = u.End
		units = append(units, u)
	}
	review := unitOn(today.AddDate(0, 0, -1), "math", studyplan.KindReview, studyplan.StatusScheduled)
	units = append(units, review)

	in := rescheduleInput(units)
	in.DefaultDayMinutes = 220 // 200 used, quota 66, free 20 < 50
	in.LookaheadDays = 3
	out := AutoReschedule(in)

	var movedReview *studyplan.StudyUnit
	displaced := 0
	for i, u := range out.Units {
		if u.Kind == studyplan.KindReview && u.Status == studyplan.StatusRescheduled {
			movedReview = &out.Units[i]
		}
		if u.Kind == studyplan.KindExercise && u.Status == studyplan.StatusRescheduled {
			displaced++
		}
	}
	if movedReview == nil {
		t.Fatal("review was not rescheduled")
	}
	if studyplan.DayKey(movedReview.Date) != studyplan.DayKey(today) {
		t.Errorf("review placed on %s, want today after displacement", movedReview.Date)
	}
	if displaced == 0 {
		t.Error("expected at least one displaced exercise")
	}
}

func TestAutoReschedule_ExamLargerThanQuotaStillPlaced(t *testing.T) {
	exam := unitOn(today.AddDate(0, 0, -1), studyplan.MockExamSubjectID, studyplan.KindFullMockExam, studyplan.StatusScheduled)
	exam.RelatedSubjectID = "math"
	exam.DurationMinutes = 90
	exam.End = exam.Start.Add(90)

	in := rescheduleInput([]studyplan.StudyUnit{exam})
	in.DefaultDayMinutes = 120 // quota floor(120×0.3)=36, well below the exam
	in.LookaheadDays = 14
	out := AutoReschedule(in)

	if out.MovedCount != 1 {
		t.Fatalf("MovedCount = %d, want 1", out.MovedCount)
	}
	moved := out.Units[0]
	if moved.Status != studyplan.StatusRescheduled {
		t.Errorf("status = %s, want rescheduled", moved.Status)
	}
	if out.BacklogAfter != 0 {
		t.Errorf("BacklogAfter = %d, want 0", out.BacklogAfter)
	}
}

func TestAutoReschedule_OversizedHeadDoesNotBlockQueue(t *testing.T) {
	big := unitOn(today.AddDate(0, 0, -2), "math", studyplan.KindReview, studyplan.StatusScheduled)
	big.DurationMinutes = 200
	big.End = big.Start.Add(200)
	small := unitOn(today.AddDate(0, 0, -1), "lang", studyplan.KindExercise, studyplan.StatusScheduled)
	small.DurationMinutes = 30
	small.End = small.Start.Add(30)

	in := rescheduleInput([]studyplan.StudyUnit{big, small})
	in.DefaultDayMinutes = 120 // quota 36: fits the exercise, never the review
	in.LookaheadDays = 14
	out := AutoReschedule(in)

	var gotSmall, gotBig studyplan.StudyUnit
	for _, u := range out.Units {
		switch u.DurationMinutes {
		case 30:
			gotSmall = u
		case 200:
			gotBig = u
		}
	}
	if gotSmall.Status != studyplan.StatusRescheduled {
		t.Errorf("small unit status = %s, want rescheduled despite the oversized queue head", gotSmall.Status)
	}
	if gotBig.Status != studyplan.StatusScheduled {
		t.Errorf("big unit status = %s, want left in the backlog", gotBig.Status)
	}
	if out.BacklogAfter != 1 {
		t.Errorf("BacklogAfter = %d, want 1 (only the oversized review remains)", out.BacklogAfter)
	}
}
