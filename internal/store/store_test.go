package store

import (
	"context"
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/studyplan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSubjectSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubjectRepo()
	ctx := context.Background()

	sub := studyplan.Subject{
		ID:         "sub-1",
		Name:       "Constitutional Law",
		Priority:   8,
		Difficulty: 7,
		Area:       studyplan.AreaHumanities,
		Level:      studyplan.LevelIntermediate,
		ExamWeight: 0.25,
	}
	if err := repo.Save(ctx, sub); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != sub.Name || got.Priority != 8 || got.ExamWeight != 0.25 {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	// Save again with changed fields acts as an update.
	sub.Priority = 9
	if err := repo.Save(ctx, sub); err != nil {
		t.Fatalf("update: %v", err)
	}
	subjects, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subjects) != 1 {
		t.Fatalf("expected 1 subject after upsert, got %d", len(subjects))
	}
	if subjects[0].Priority != 9 {
		t.Errorf("priority = %d, want 9", subjects[0].Priority)
	}
}

func TestSubjectArchiveHidesFromList(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubjectRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		err := repo.Save(ctx, studyplan.Subject{ID: id, Name: "Subject " + id, Priority: 5, Difficulty: 5})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	if err := repo.Archive(ctx, "a"); err != nil {
		t.Fatalf("archive: %v", err)
	}

	subjects, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subjects) != 1 || subjects[0].ID != "b" {
		t.Errorf("expected only subject b, got %+v", subjects)
	}

	if err := repo.Archive(ctx, "missing"); err == nil {
		t.Error("expected error archiving unknown subject")
	}
}

func testUnit(id string, date time.Time, start int) studyplan.StudyUnit {
	return studyplan.StudyUnit{
		ID:              id,
		SubjectID:       "sub-1",
		Date:            date,
		Start:           studyplan.Clock(start),
		End:             studyplan.Clock(start + 50),
		DurationMinutes: 50,
		Kind:            studyplan.KindLesson,
		SessionType:     studyplan.SessionTheory,
		Status:          studyplan.StatusScheduled,
		Phase:           "base",
	}
}

func TestUnitSaveAndListRange(t *testing.T) {
	s := openTestStore(t)
	repo := s.UnitRepo()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	units := []studyplan.StudyUnit{
		testUnit("u1", day, 480),
		testUnit("u2", day, 540),
		testUnit("u3", day.AddDate(0, 0, 1), 480),
	}
	if err := repo.SaveUnits(ctx, units); err != nil {
		t.Fatalf("save units: %v", err)
	}

	got, err := repo.ListRange(ctx, day, day)
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 units on first day, got %d", len(got))
	}
	if got[0].ID != "u1" || got[1].ID != "u2" {
		t.Errorf("expected start-time order, got %s then %s", got[0].ID, got[1].ID)
	}
	if got[0].Kind != studyplan.KindLesson || got[0].Start.Minutes() != 480 {
		t.Errorf("round-trip mismatch: %+v", got[0])
	}
}

func TestUnitSetStatus(t *testing.T) {
	s := openTestStore(t)
	repo := s.UnitRepo()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if err := repo.SaveUnits(ctx, []studyplan.StudyUnit{testUnit("u1", day, 480)}); err != nil {
		t.Fatalf("save: %v", err)
	}

	at := day.Add(10 * time.Hour)
	if err := repo.SetStatus(ctx, "u1", studyplan.StatusCompleted, at); err != nil {
		t.Fatalf("set status: %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != studyplan.StatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("expected CompletedAt to be set")
	}

	if err := repo.SetStatus(ctx, "missing", studyplan.StatusSkipped, at); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestUnitReplacePlanKeepsCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.UnitRepo()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if err := repo.SaveUnits(ctx, []studyplan.StudyUnit{
		testUnit("done", day, 480),
		testUnit("old", day, 540),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SetStatus(ctx, "done", studyplan.StatusCompleted, day); err != nil {
		t.Fatalf("set status: %v", err)
	}

	err := repo.ReplacePlan(ctx, day, day, []studyplan.StudyUnit{testUnit("new", day, 600)})
	if err != nil {
		t.Fatalf("replace plan: %v", err)
	}

	got, err := repo.ListRange(ctx, day, day)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	ids := make(map[string]bool)
	for _, u := range got {
		ids[u.ID] = true
	}
	if !ids["done"] || !ids["new"] || ids["old"] {
		t.Errorf("expected done+new, got %v", ids)
	}
}

func TestEventAppendAndListCompletions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendCompletion(ctx, CompletionEventData{
			UnitID:         "u1",
			SubjectID:      "sub-1",
			Kind:           string(studyplan.KindLesson),
			PlannedMinutes: 50,
			SpentMinutes:   50,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.ListCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("sequences not increasing: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}

	// After filter skips earlier events.
	later, err := repo.ListCompletions(ctx, QueryOpts{After: events[0].Sequence})
	if err != nil {
		t.Fatalf("list after: %v", err)
	}
	if len(later) != 2 {
		t.Errorf("expected 2 events after first, got %d", len(later))
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "coach", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "coach", InputTokens: 200, OutputTokens: 80, Success: false},
		{Provider: "openai", Model: "m2", Purpose: "plan-review", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for i, req := range reqs {
		if err := repo.AppendLLMRequest(ctx, req); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	if byPurpose[0].Label != "coach" || byPurpose[0].Requests != 2 || byPurpose[0].Failures != 1 {
		t.Errorf("coach usage = %+v", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 300 {
		t.Errorf("coach input tokens = %d, want 300", byPurpose[0].InputTokens)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Profiles: map[string]*scoring.Profile{
				"sub-1": {SubjectID: "sub-1", AccuracyRate: 0.8, SessionCount: 4},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	p := snap.Data.Profiles["sub-1"]
	if p == nil || p.AccuracyRate != 0.8 || p.SessionCount != 4 {
		t.Errorf("profile round-trip mismatch: %+v", p)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestLoadTrackerReplaysCompletions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sub := studyplan.Subject{ID: "sub-1", Name: "Mathematics", Priority: 8, Difficulty: 6}
	if err := s.SubjectRepo().Save(ctx, sub); err != nil {
		t.Fatalf("save subject: %v", err)
	}

	err := s.EventRepo().AppendCompletion(ctx, CompletionEventData{
		UnitID:         "u1",
		SubjectID:      "sub-1",
		Kind:           string(studyplan.KindLesson),
		PlannedMinutes: 50,
		SpentMinutes:   50,
	})
	if err != nil {
		t.Fatalf("append completion: %v", err)
	}

	tracker, err := LoadTracker(ctx, s, []studyplan.Subject{sub})
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	p := tracker.Profile("sub-1")
	if p.SessionCount != 1 {
		t.Errorf("session count = %d, want 1", p.SessionCount)
	}
	if p.AccuracyRate == 0 {
		t.Error("expected non-zero accuracy after replay")
	}
}

func TestLoadTrackerSkipsSkippedEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sub := studyplan.Subject{ID: "sub-1", Name: "Mathematics", Priority: 8, Difficulty: 6}
	err := s.EventRepo().AppendCompletion(ctx, CompletionEventData{
		UnitID:    "u1",
		SubjectID: "sub-1",
		Kind:      string(studyplan.KindLesson),
		Skipped:   true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	tracker, err := LoadTracker(ctx, s, []studyplan.Subject{sub})
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	if tracker.Profile("sub-1").SessionCount != 0 {
		t.Error("skipped completion should not advance the profile")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"subjects", "study_units", "completion_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
