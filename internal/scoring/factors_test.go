package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func testSubject() studyplan.Subject {
	return studyplan.Subject{
		ID:         "s1",
		Name:       "Mathematics",
		Priority:   8,
		Difficulty: 6,
		ExamWeight: 0.8,
		Level:      studyplan.LevelIntermediate,
	}
}

func TestWeightFactor_ExplicitWeight(t *testing.T) {
	f := ComputeFactors(testSubject(), nil, time.Now(), nil, studyplan.LevelIntermediate)
	if !almostEqual(f.Weight, 0.8) {
		t.Errorf("Weight = %f, want 0.8", f.Weight)
	}
}

func TestWeightFactor_ClampsLow(t *testing.T) {
	s := testSubject()
	s.ExamWeight = 0.01
	f := ComputeFactors(s, nil, time.Now(), nil, studyplan.LevelIntermediate)
	if !almostEqual(f.Weight, 0.1) {
		t.Errorf("Weight = %f, want clamp to 0.1", f.Weight)
	}
}

func TestWeightFactor_InferredFromName(t *testing.T) {
	cases := []struct {
		name string
		area studyplan.Area
		want float64
	}{
		{"Mathematics", "", 1.0},
		{"Language and Grammar", "", 0.95},
		{"Essay Writing", "", 0.9},
		{"Physics", studyplan.AreaScience, 0.75},
		{"History", studyplan.AreaHumanities, 0.7},
		{"Unknowable", studyplan.AreaOther, 0.5},
	}
	for _, c := range cases {
		s := studyplan.Subject{ID: "x", Name: c.name, Area: c.area, Difficulty: 5}
		f := ComputeFactors(s, nil, time.Now(), nil, studyplan.LevelIntermediate)
		if !almostEqual(f.Weight, c.want) {
			t.Errorf("%s: Weight = %f, want %f", c.name, f.Weight, c.want)
		}
	}
}

func TestDifficultyFactor_LevelModifier(t *testing.T) {
	s := testSubject() // difficulty 6 → base 0.7+0.6 = 1.3

	f := ComputeFactors(s, nil, time.Now(), nil, studyplan.LevelBasic)
	if !almostEqual(f.Difficulty, 1.3*1.08) {
		t.Errorf("basic Difficulty = %f, want %f", f.Difficulty, 1.3*1.08)
	}

	f = ComputeFactors(s, nil, time.Now(), nil, studyplan.LevelAdvanced)
	if !almostEqual(f.Difficulty, 1.3*0.95) {
		t.Errorf("advanced Difficulty = %f, want %f", f.Difficulty, 1.3*0.95)
	}

	f = ComputeFactors(s, nil, time.Now(), nil, studyplan.LevelIntermediate)
	if !almostEqual(f.Difficulty, 1.3) {
		t.Errorf("intermediate Difficulty = %f, want 1.3", f.Difficulty)
	}
}

func TestStalenessFactor(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Never studied.
	f := ComputeFactors(testSubject(), nil, now, nil, studyplan.LevelIntermediate)
	if !almostEqual(f.TimeWithoutStudy, 1.35) {
		t.Errorf("never studied = %f, want 1.35", f.TimeWithoutStudy)
	}

	// Studied 5 days ago.
	p := NewProfile("s1")
	last := now.AddDate(0, 0, -5)
	p.LastStudiedAt = &last
	f = ComputeFactors(testSubject(), p, now, nil, studyplan.LevelIntermediate)
	if !almostEqual(f.TimeWithoutStudy, 1.4) {
		t.Errorf("5 days = %f, want 1.4", f.TimeWithoutStudy)
	}

	// Saturates at 14 days.
	last = now.AddDate(0, 0, -40)
	p.LastStudiedAt = &last
	f = ComputeFactors(testSubject(), p, now, nil, studyplan.LevelIntermediate)
	if !almostEqual(f.TimeWithoutStudy, 1+14*0.08) {
		t.Errorf("40 days = %f, want %f", f.TimeWithoutStudy, 1+14*0.08)
	}
}

func TestErrorRateFactor_Default(t *testing.T) {
	f := ComputeFactors(testSubject(), nil, time.Now(), nil, studyplan.LevelIntermediate)
	want := 0.8 + 0.45*1.2
	if !almostEqual(f.ErrorRate, want) {
		t.Errorf("ErrorRate = %f, want %f", f.ErrorRate, want)
	}
}

func TestErrorRateFactor_FromProfile(t *testing.T) {
	p := NewProfile("s1")
	p.SessionCount = 3
	p.ErrorRate = 0.2
	f := ComputeFactors(testSubject(), p, time.Now(), nil, studyplan.LevelIntermediate)
	want := 0.8 + 0.2*1.2
	if !almostEqual(f.ErrorRate, want) {
		t.Errorf("ErrorRate = %f, want %f", f.ErrorRate, want)
	}
}

func TestExamProximityFactor(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		days int
		want float64
	}{
		{-5, 1.35},
		{0, 1.35},
		{20, 1.3},
		{45, 1.2},
		{75, 1.12},
		{120, 1.05},
		{300, 1.0},
	}
	for _, c := range cases {
		exam := now.AddDate(0, 0, c.days)
		f := ComputeFactors(testSubject(), nil, now, &exam, studyplan.LevelIntermediate)
		if !almostEqual(f.ExamProximity, c.want) {
			t.Errorf("days=%d: ExamProximity = %f, want %f", c.days, f.ExamProximity, c.want)
		}
	}

	f := ComputeFactors(testSubject(), nil, now, nil, studyplan.LevelIntermediate)
	if !almostEqual(f.ExamProximity, 1.0) {
		t.Errorf("no exam date: ExamProximity = %f, want 1.0", f.ExamProximity)
	}
}

func TestPriorityScore_ProductRounded(t *testing.T) {
	f := Factors{Weight: 0.8, Difficulty: 1.3, TimeWithoutStudy: 1.35, ErrorRate: 1.34, ExamProximity: 1.2}
	want := math.Round(0.8*1.3*1.35*1.34*1.2*10000) / 10000
	if got := f.PriorityScore(); got != want {
		t.Errorf("PriorityScore = %f, want %f", got, want)
	}
}
