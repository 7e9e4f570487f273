package scheduler

import (
	"reflect"
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

func testSubjects() []studyplan.Subject {
	return []studyplan.Subject{
		{ID: "math", Name: "Mathematics", Area: studyplan.AreaQuant, Priority: 9, Difficulty: 7, ExamWeight: 0.95, Level: studyplan.LevelIntermediate},
		{ID: "lang", Name: "Language", Area: studyplan.AreaLanguage, Priority: 8, Difficulty: 5, ExamWeight: 0.9, Level: studyplan.LevelIntermediate},
		{ID: "phys", Name: "Physics", Area: studyplan.AreaScience, Priority: 7, Difficulty: 8, ExamWeight: 0.7, Level: studyplan.LevelAdvanced},
		{ID: "hist", Name: "History", Area: studyplan.AreaHumanities, Priority: 5, Difficulty: 4, ExamWeight: 0.6, Level: studyplan.LevelBasic},
	}
}

func allWeekdays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

func testInput(days int) Input {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	return Input{
		Subjects:    testSubjects(),
		Preferences: Preferences{HoursPerDay: 4, ActiveWeekdays: allWeekdays(), LearnerLevel: studyplan.LevelIntermediate},
		Range:       DateRange{Start: start, End: start.AddDate(0, 0, days-1)},
		Window: DayWindow{
			Start:          studyplan.NewClock(8, 0),
			End:            studyplan.NewClock(18, 0),
			MaxUnitMinutes: 50,
			BreakMinutes:   10,
		},
		MockExamRules: DefaultMockExamRules(),
	}
}

func studyUnits(res *Result) []studyplan.StudyUnit {
	var out []studyplan.StudyUnit
	for _, u := range res.Units {
		if !u.IsBreak {
			out = append(out, u)
		}
	}
	return out
}

func TestGenerate_NonDegenerateProducesUnits(t *testing.T) {
	res := Generate(testInput(7))
	units := studyUnits(res)
	if len(units) == 0 {
		t.Fatal("expected at least one study unit")
	}
	if res.TotalHours <= 0 {
		t.Errorf("TotalHours = %f, want > 0", res.TotalHours)
	}
	if len(res.SubjectDistribution) == 0 {
		t.Error("expected a non-empty subject distribution")
	}
}

func TestGenerate_DegenerateInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"inverted range", func(in *Input) {
			in.Range.End = in.Range.Start.AddDate(0, 0, -3)
		}},
		{"empty window", func(in *Input) {
			in.Window.End = in.Window.Start
		}},
		{"no active weekdays", func(in *Input) {
			in.Preferences.ActiveWeekdays = nil
		}},
		{"no subjects", func(in *Input) {
			in.Subjects = nil
		}},
		{"zero daily hours", func(in *Input) {
			in.Preferences.HoursPerDay = 0
		}},
	}
	for _, c := range cases {
		in := testInput(7)
		c.mutate(&in)
		res := Generate(in)
		if len(res.Units) != 0 || res.TotalHours != 0 {
			t.Errorf("%s: expected empty result, got %d units", c.name, len(res.Units))
		}
	}
}

func TestGenerate_ReviewAfterFirstLesson(t *testing.T) {
	res := Generate(testInput(21))
	units := studyUnits(res)

	firstLesson := make(map[string]int)
	for i, u := range units {
		if u.Kind == studyplan.KindLesson {
			if _, ok := firstLesson[u.SubjectID]; !ok {
				firstLesson[u.SubjectID] = i
			}
		}
	}
	for i, u := range units {
		if u.Kind != studyplan.KindReview {
			continue
		}
		sid := u.SubjectID
		if sid == studyplan.MockExamSubjectID {
			sid = u.RelatedSubjectID
		}
		at, ok := firstLesson[sid]
		if !ok {
			t.Errorf("review for %s has no lesson in the plan", sid)
			continue
		}
		if at >= i {
			t.Errorf("review for %s at index %d precedes its first lesson at %d", sid, i, at)
		}
	}
}

func TestGenerate_NoThreeConsecutiveSameSubject(t *testing.T) {
	res := Generate(testInput(28))
	units := studyUnits(res)
	for i := 2; i < len(units); i++ {
		a, b, c := units[i-2].SubjectID, units[i-1].SubjectID, units[i].SubjectID
		if a == b && b == c && a != studyplan.MockExamSubjectID {
			t.Fatalf("three consecutive units for %s around index %d", a, i)
		}
	}
}

func TestGenerate_DailyCapacityRespected(t *testing.T) {
	in := testInput(14)
	in.CapacityOverrides = map[string]int{"2026-03-04": 90}
	res := Generate(in)

	perDay := make(map[string]int)
	for _, u := range studyUnits(res) {
		perDay[studyplan.DayKey(u.Date)] += u.DurationMinutes
	}
	for day, minutes := range perDay {
		limit := 240
		if day == "2026-03-04" {
			limit = 90
		}
		if minutes > limit {
			t.Errorf("day %s: %d study minutes exceed capacity %d", day, minutes, limit)
		}
	}
}

func TestGenerate_RestDaysSkipped(t *testing.T) {
	in := testInput(7)
	in.RestDays = []string{"2026-03-03"}
	res := Generate(in)
	for _, u := range res.Units {
		if studyplan.DayKey(u.Date) == "2026-03-03" {
			t.Fatal("unit scheduled on a rest day")
		}
	}
}

func TestGenerate_WeekdayFilter(t *testing.T) {
	in := testInput(14)
	in.Preferences.ActiveWeekdays = []time.Weekday{time.Monday, time.Wednesday}
	res := Generate(in)
	for _, u := range res.Units {
		wd := u.Date.Weekday()
		if wd != time.Monday && wd != time.Wednesday {
			t.Fatalf("unit scheduled on inactive weekday %s", wd)
		}
	}
}

func TestGenerate_FullMockExamGatedByDays(t *testing.T) {
	in := testInput(35)
	in.Flags.CompletedLessons = 30
	in.Flags.CompletedLessonsBySubject = map[string]int{"math": 8, "lang": 8, "phys": 8, "hist": 6}
	res := Generate(in)

	for _, u := range studyUnits(res) {
		if u.Kind == studyplan.KindFullMockExam {
			days := studyplan.DaysBetween(in.Range.Start, u.Date)
			if days < in.MockExamRules.MinDaysBeforeFull {
				t.Fatalf("full mock exam on day %d, gate is %d", days, in.MockExamRules.MinDaysBeforeFull)
			}
			return
		}
	}
	t.Fatal("expected a full mock exam within 35 days of seeded progress")
}

func TestGenerate_AreaMockExamGatedByDays(t *testing.T) {
	in := testInput(21)
	in.Flags.CompletedLessons = 20
	in.Flags.CompletedLessonsBySubject = map[string]int{"math": 5, "lang": 5, "phys": 5, "hist": 5}
	// Push the full exam out of reach so area exams fire first.
	in.MockExamRules.MinLessonsBeforeFull = 10000

	res := Generate(in)
	for _, u := range studyUnits(res) {
		if u.Kind == studyplan.KindAreaMockExam {
			days := studyplan.DaysBetween(in.Range.Start, u.Date)
			if days < in.MockExamRules.MinDaysBeforeArea {
				t.Fatalf("area mock exam on day %d, gate is %d", days, in.MockExamRules.MinDaysBeforeArea)
			}
			return
		}
	}
	t.Fatal("expected an area mock exam")
}

func TestGenerate_AnalysisFollowsExam(t *testing.T) {
	in := testInput(35)
	in.Flags.CompletedLessons = 30
	in.Flags.CompletedLessonsBySubject = map[string]int{"math": 8, "lang": 8, "phys": 8, "hist": 6}
	res := Generate(in)

	units := studyUnits(res)
	sawExam := false
	for i, u := range units {
		if !u.Kind.IsMockExam() {
			continue
		}
		sawExam = true
		if i+1 >= len(units) {
			continue // exam at the end of the plan, no room for analysis
		}
		next := units[i+1]
		if next.Kind != studyplan.KindAnalysis {
			continue // analysis is skipped when the day is out of room
		}
		if !next.Date.Equal(u.Date) {
			t.Errorf("analysis on %s, exam on %s: must share the day", next.Date, u.Date)
		}
		if next.Start < u.End {
			t.Errorf("analysis starts %s before exam ends %s", next.Start, u.End)
		}
		if next.RelatedSubjectID != u.RelatedSubjectID {
			t.Errorf("analysis relates to %s, exam to %s", next.RelatedSubjectID, u.RelatedSubjectID)
		}
		if next.DurationMinutes < 45 || next.DurationMinutes > 90 {
			t.Errorf("analysis duration %d outside 45-90", next.DurationMinutes)
		}
		if next.StageIndex != int(StageMockExam) || next.StageTarget < 1 {
			t.Errorf("analysis stage metadata %d/%d, want %d/>=1",
				next.StageIndex, next.StageTarget, int(StageMockExam))
		}
	}
	if !sawExam {
		t.Fatal("expected at least one mock exam")
	}
}

func TestGenerate_ExamDurationFloor(t *testing.T) {
	in := testInput(35)
	in.Flags.CompletedLessons = 30
	in.Flags.CompletedLessonsBySubject = map[string]int{"math": 8, "lang": 8, "phys": 8, "hist": 6}
	res := Generate(in)

	perDay := make(map[string]int)
	for _, u := range studyUnits(res) {
		perDay[studyplan.DayKey(u.Date)] += u.DurationMinutes
	}
	for _, u := range studyUnits(res) {
		if !u.Kind.IsMockExam() || u.DurationMinutes >= 90 {
			continue
		}
		// A short exam is only acceptable when the day ran out of room:
		// either the window was nearly spent or the capacity filled up.
		windowBound := u.End.Minutes() >= in.Window.End.Minutes()-minUnitMinutes
		capacityBound := perDay[studyplan.DayKey(u.Date)] >= 240
		if !windowBound && !capacityBound {
			t.Errorf("exam of %d min with room left on %s", u.DurationMinutes, studyplan.DayKey(u.Date))
		}
	}
}

func TestGenerate_FirstCycleCoversAllSubjects(t *testing.T) {
	in := testInput(14)
	in.Flags.FirstCycleAllSubjects = true
	res := Generate(in)

	seen := make(map[string]bool)
	for _, u := range studyUnits(res) {
		if u.Kind != studyplan.KindLesson && !seen[u.SubjectID] && u.SubjectID != studyplan.MockExamSubjectID {
			t.Fatalf("subject %s got a %s before its first lesson", u.SubjectID, u.Kind)
		}
		if u.Kind == studyplan.KindLesson {
			seen[u.SubjectID] = true
		}
	}
	for _, s := range in.Subjects {
		if !seen[s.ID] {
			t.Errorf("subject %s never received a first lesson", s.ID)
		}
	}
}

func TestGenerate_StageMetadataWithPriorProgress(t *testing.T) {
	in := testInput(42)
	in.Flags.CompletedLessons = 24
	in.Flags.CompletedLessonsBySubject = map[string]int{"math": 6, "lang": 6, "phys": 6, "hist": 6}
	in.Flags.TopicCatalog = map[string][]string{
		"math": {"fractions", "geometry", "functions"},
	}
	res := Generate(in)

	stages := make(map[int]bool)
	topicSeen := false
	for _, u := range studyUnits(res) {
		stages[u.StageIndex] = true
		if u.StageTarget < 1 {
			t.Errorf("unit %s has stage target %d", u.ID, u.StageTarget)
		}
		if u.TopicName != "" {
			topicSeen = true
		}
	}
	if len(stages) < 4 {
		t.Errorf("observed %d distinct stage values, want >= 4", len(stages))
	}
	if !topicSeen {
		t.Error("expected at least one unit with a topic name")
	}
}

func TestGenerate_PhaseLabels(t *testing.T) {
	in := testInput(50)
	res := Generate(in)

	if res.PhaseByDate["2026-03-02"] != PhaseBase {
		t.Errorf("day 0 phase = %s, want %s", res.PhaseByDate["2026-03-02"], PhaseBase)
	}
	if res.PhaseByDate["2026-03-23"] != PhaseDeepening {
		t.Errorf("day 21 phase = %s, want %s", res.PhaseByDate["2026-03-23"], PhaseDeepening)
	}
	if res.PhaseByDate["2026-04-13"] != PhaseConsolidation {
		t.Errorf("day 42 phase = %s, want %s", res.PhaseByDate["2026-04-13"], PhaseConsolidation)
	}
}

func TestGenerate_BreaksInserted(t *testing.T) {
	res := Generate(testInput(7))
	breaks := 0
	for _, u := range res.Units {
		if u.IsBreak {
			breaks++
			if u.DurationMinutes != 10 {
				t.Errorf("break of %d min, want 10", u.DurationMinutes)
			}
		}
	}
	if breaks == 0 {
		t.Error("expected break units between study units")
	}
}

func TestGenerate_ChronologicalOrder(t *testing.T) {
	res := Generate(testInput(14))
	for i := 1; i < len(res.Units); i++ {
		prev, cur := res.Units[i-1], res.Units[i]
		if cur.Date.Before(prev.Date) {
			t.Fatalf("units out of date order at index %d", i)
		}
		if cur.Date.Equal(prev.Date) && cur.Start < prev.Start {
			t.Fatalf("units out of time order at index %d", i)
		}
	}
}

func TestGenerate_DeterministicRepeat(t *testing.T) {
	a := Generate(testInput(21))
	b := Generate(testInput(21))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two generations from identical input differ")
	}
}

func TestGenerate_DailyRepeatCapExamGoal(t *testing.T) {
	in := testInput(7)
	in.Preferences.Goal = GoalExam
	res := Generate(in)

	counts := make(map[string]map[string]int)
	for _, u := range studyUnits(res) {
		sid := u.SubjectID
		if sid == studyplan.MockExamSubjectID {
			sid = u.RelatedSubjectID
		}
		day := studyplan.DayKey(u.Date)
		if counts[day] == nil {
			counts[day] = make(map[string]int)
		}
		if u.Kind != studyplan.KindAnalysis {
			counts[day][sid]++
		}
	}
	for day, bySubject := range counts {
		for sid, n := range bySubject {
			if n > 1 {
				t.Errorf("day %s: subject %s used %d times under exam goal", day, sid, n)
			}
		}
	}
}
