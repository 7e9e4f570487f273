package scheduler

import (
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

func TestRepeatTarget(t *testing.T) {
	cases := []struct {
		stage Stage
		level studyplan.Level
		want  int
	}{
		{StageTheory, studyplan.LevelBasic, 2},
		{StageTheory, studyplan.LevelIntermediate, 1},
		{StageTheory, studyplan.LevelAdvanced, 1},
		{StagePractice, studyplan.LevelBasic, 1},
		{StagePractice, studyplan.LevelIntermediate, 2},
		{StagePractice, studyplan.LevelAdvanced, 3},
		{StageReview, studyplan.LevelAdvanced, 1},
		{StageMockExam, studyplan.LevelBasic, 1},
	}
	for _, c := range cases {
		if got := repeatTarget(c.stage, c.level); got != c.want {
			t.Errorf("repeatTarget(%s, %s) = %d, want %d", c.stage, c.level, got, c.want)
		}
	}
}

func TestAdvance_CyclesThroughStages(t *testing.T) {
	cs := CycleState{}
	level := studyplan.LevelIntermediate

	// theory×1 → practice×2 → review×1 → mock×1 → theory.
	cs = advance(cs, level)
	if cs.Stage != StagePractice {
		t.Fatalf("after theory: stage = %s, want practice", cs.Stage)
	}
	cs = advance(cs, level)
	if cs.Stage != StagePractice || cs.Progress != 1 {
		t.Fatalf("mid-practice: stage = %s progress = %d", cs.Stage, cs.Progress)
	}
	cs = advance(cs, level)
	if cs.Stage != StageReview {
		t.Fatalf("after practice: stage = %s, want review", cs.Stage)
	}
	cs = advance(cs, level)
	if cs.Stage != StageMockExam {
		t.Fatalf("after review: stage = %s, want mock exam", cs.Stage)
	}
	cs = advance(cs, level)
	if cs.Stage != StageTheory || cs.Progress != 0 {
		t.Fatalf("after mock: stage = %s, want wrap to theory", cs.Stage)
	}
}

func TestAdvance_BasicLevelRepeatsTheory(t *testing.T) {
	cs := CycleState{}
	cs = advance(cs, studyplan.LevelBasic)
	if cs.Stage != StageTheory || cs.Progress != 1 {
		t.Fatalf("basic after 1 theory: stage = %s progress = %d", cs.Stage, cs.Progress)
	}
	cs = advance(cs, studyplan.LevelBasic)
	if cs.Stage != StagePractice {
		t.Fatalf("basic after 2 theory: stage = %s, want practice", cs.Stage)
	}
}

func TestUnitDuration_Bounds(t *testing.T) {
	s := studyplan.Subject{ID: "x", Difficulty: 5, ExamWeight: 0.5, Level: studyplan.LevelIntermediate}

	d := unitDuration(s, studyplan.KindLesson, 50)
	if d < minUnitMinutes || d > 50 {
		t.Errorf("lesson duration %d outside [25, 50]", d)
	}

	r := unitDuration(s, studyplan.KindReview, 50)
	if r >= d {
		t.Errorf("review duration %d not shorter than lesson %d", r, d)
	}

	e := unitDuration(s, studyplan.KindFullMockExam, 50)
	if e < examMinMinutes {
		t.Errorf("exam duration %d below the %d floor", e, examMinMinutes)
	}
}

func TestReviewQueue_EnqueueDedupAndClip(t *testing.T) {
	q := make(reviewQueue)
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)

	q.enqueueReviews(start, end, "math")
	q.enqueueReviews(start, end, "math")

	if len(q.due("2026-03-04")) != 1 {
		t.Errorf("day +2 queue = %v, want single entry", q.due("2026-03-04"))
	}
	if len(q.due("2026-03-09")) != 1 {
		t.Errorf("day +7 queue = %v, want single entry", q.due("2026-03-09"))
	}
	// +21 is past the range end and must be clipped.
	if len(q.due("2026-03-23")) != 0 {
		t.Errorf("day +21 queue = %v, want clipped", q.due("2026-03-23"))
	}

	q.consume("2026-03-04", "math")
	if len(q.due("2026-03-04")) != 0 {
		t.Error("consume left the entry in place")
	}
}

func TestRotationArea_Cycles(t *testing.T) {
	if rotationArea(0) != studyplan.AreaQuant {
		t.Errorf("slot 0 = %s, want quant", rotationArea(0))
	}
	if rotationArea(8) != rotationArea(0) {
		t.Error("rotation must repeat every 8 slots")
	}
}
