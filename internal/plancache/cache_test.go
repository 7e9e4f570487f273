package plancache

import (
	"reflect"
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/scheduler"
	"github.com/rsoarez/planista/internal/studyplan"
)

func cacheInput(days int) scheduler.Input {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return scheduler.Input{
		Subjects: []studyplan.Subject{
			{ID: "s1", Name: "Mathematics", Area: studyplan.AreaQuant, Level: studyplan.LevelIntermediate, Priority: 8, Difficulty: 6, ExamWeight: 0.9},
			{ID: "s2", Name: "Portuguese", Area: studyplan.AreaLanguage, Level: studyplan.LevelBasic, Priority: 6, Difficulty: 4, ExamWeight: 0.7},
		},
		Preferences: scheduler.Preferences{
			HoursPerDay: 4,
			ActiveWeekdays: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday,
			},
		},
		Range: scheduler.DateRange{Start: start, End: start.AddDate(0, 0, days-1)},
		Window: scheduler.DayWindow{
			Start:          studyplan.NewClock(8, 0),
			End:            studyplan.NewClock(18, 0),
			MaxUnitMinutes: 50,
			BreakMinutes:   10,
		},
		MockExamRules: scheduler.DefaultMockExamRules(),
	}
}

func TestFingerprint_StableForEqualInputs(t *testing.T) {
	a, err := Fingerprint(cacheInput(5))
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	b, err := Fingerprint(cacheInput(5))
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if a != b {
		t.Errorf("equal inputs fingerprinted differently: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected sha256 hex digest, got %d chars", len(a))
	}
}

func TestFingerprint_ChangesWithInput(t *testing.T) {
	base, err := Fingerprint(cacheInput(5))
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}

	longer := cacheInput(6)
	other, err := Fingerprint(longer)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if base == other {
		t.Error("different ranges produced the same fingerprint")
	}

	reordered := cacheInput(5)
	reordered.Subjects[0].Priority = 3
	other, err = Fingerprint(reordered)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if base == other {
		t.Error("changed subject priority did not change the fingerprint")
	}
}

func TestFingerprint_TimezoneInsensitive(t *testing.T) {
	utc := cacheInput(5)

	zoned := cacheInput(5)
	loc := time.FixedZone("UTC+3", 3*60*60)
	zoned.Range.Start = zoned.Range.Start.In(loc)
	zoned.Range.End = zoned.Range.End.In(loc)

	a, err := Fingerprint(utc)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	b, err := Fingerprint(zoned)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if a != b {
		t.Error("same instants in different zones fingerprinted differently")
	}
}

func TestCache_HitOnRepeatedInput(t *testing.T) {
	c := New()

	first, hit, err := c.Generate(cacheInput(5))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if hit {
		t.Error("first generation reported a hit")
	}

	second, hit, err := c.Generate(cacheInput(5))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !hit {
		t.Error("repeated input missed the cache")
	}
	if first != second {
		t.Error("cache hit returned a different result value")
	}
	if !reflect.DeepEqual(first.Units, second.Units) {
		t.Error("cached units differ from original")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit / 1 miss, got %d / %d", hits, misses)
	}
}

func TestCache_MissOnDifferentInput(t *testing.T) {
	c := New()

	if _, hit, err := c.Generate(cacheInput(5)); err != nil || hit {
		t.Fatalf("first generate: hit=%v err=%v", hit, err)
	}
	if _, hit, err := c.Generate(cacheInput(7)); err != nil {
		t.Fatalf("second generate: %v", err)
	} else if hit {
		t.Error("different input reported a hit")
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := New()

	if _, _, err := c.Generate(cacheInput(5)); err != nil {
		t.Fatalf("generate: %v", err)
	}
	c.Invalidate()
	if _, hit, err := c.Generate(cacheInput(5)); err != nil {
		t.Fatalf("generate: %v", err)
	} else if hit {
		t.Error("hit after invalidation")
	}
}
