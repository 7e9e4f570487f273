package backlogview

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
)

type fakeUnitRepo struct {
	pending []studyplan.StudyUnit
	moved   []studyplan.StudyUnit
}

func (f *fakeUnitRepo) SaveUnits(context.Context, []studyplan.StudyUnit) error { return nil }
func (f *fakeUnitRepo) ReplacePlan(context.Context, time.Time, time.Time, []studyplan.StudyUnit) error {
	return nil
}
func (f *fakeUnitRepo) Get(context.Context, string) (studyplan.StudyUnit, error) {
	return studyplan.StudyUnit{}, nil
}
func (f *fakeUnitRepo) ListRange(context.Context, time.Time, time.Time) ([]studyplan.StudyUnit, error) {
	return nil, nil
}
func (f *fakeUnitRepo) ListPending(context.Context) ([]studyplan.StudyUnit, error) {
	return f.pending, nil
}
func (f *fakeUnitRepo) SetStatus(context.Context, string, studyplan.Status, time.Time) error {
	return nil
}
func (f *fakeUnitRepo) ApplyMoves(_ context.Context, units []studyplan.StudyUnit) error {
	f.moved = append(f.moved, units...)
	return nil
}

type fakeSubjectRepo struct {
	subjects []studyplan.Subject
}

func (f *fakeSubjectRepo) Save(context.Context, studyplan.Subject) error { return nil }
func (f *fakeSubjectRepo) Get(context.Context, string) (studyplan.Subject, error) {
	return studyplan.Subject{}, nil
}
func (f *fakeSubjectRepo) List(context.Context) ([]studyplan.Subject, error) {
	return f.subjects, nil
}
func (f *fakeSubjectRepo) Archive(context.Context, string) error { return nil }

type fakeEventRepo struct {
	reschedules []store.RescheduleEventData
}

func (f *fakeEventRepo) AppendCompletion(context.Context, store.CompletionEventData) error {
	return nil
}
func (f *fakeEventRepo) AppendReschedule(_ context.Context, data store.RescheduleEventData) error {
	f.reschedules = append(f.reschedules, data)
	return nil
}
func (f *fakeEventRepo) AppendPlan(context.Context, store.PlanEventData) error { return nil }
func (f *fakeEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) ListCompletions(context.Context, store.QueryOpts) ([]store.CompletionEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) { return nil, nil }
func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.LLMUsage, error) { return nil, nil }

func overdueUnit(id string, daysAgo int) studyplan.StudyUnit {
	date := studyplan.DateOnly(time.Now()).AddDate(0, 0, -daysAgo)
	return studyplan.StudyUnit{
		ID:              id,
		SubjectID:       "s1",
		Date:            date,
		Start:           studyplan.NewClock(9, 0),
		End:             studyplan.NewClock(9, 30),
		DurationMinutes: 30,
		Kind:            studyplan.KindLesson,
		SessionType:     studyplan.SessionTheory,
		Status:          studyplan.StatusScheduled,
	}
}

func newTestScreen() (*BacklogScreen, *fakeUnitRepo, *fakeEventRepo) {
	units := &fakeUnitRepo{pending: []studyplan.StudyUnit{
		overdueUnit("u1", 3),
		overdueUnit("u2", 1),
	}}
	subjects := &fakeSubjectRepo{subjects: []studyplan.Subject{
		{ID: "s1", Name: "Mathematics", Priority: 8, Difficulty: 6},
	}}
	events := &fakeEventRepo{}
	return New(units, subjects, events), units, events
}

func TestLoadBuildsEntries(t *testing.T) {
	s, _, _ := newTestScreen()

	msg, ok := s.load().(backlogLoadedMsg)
	if !ok {
		t.Fatal("expected backlogLoadedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("load: %v", msg.Err)
	}
	if len(msg.Entries) != 2 {
		t.Fatalf("expected 2 backlog entries, got %d", len(msg.Entries))
	}
	// Most overdue unit first.
	if msg.Entries[0].Unit.ID != "u1" {
		t.Errorf("expected u1 first, got %s", msg.Entries[0].Unit.ID)
	}

	s.Update(msg)
	view := s.View(80, 24)
	if !strings.Contains(view, "Mathematics") {
		t.Error("view should name the subject")
	}
	if !strings.Contains(view, "3 days overdue") {
		t.Error("view should show days overdue")
	}
}

func TestFixMovesAndRecordsEvents(t *testing.T) {
	s, units, events := newTestScreen()
	s.Update(s.load())

	msg, ok := s.fix().(rescheduledMsg)
	if !ok {
		t.Fatal("expected rescheduledMsg")
	}
	if msg.Err != nil {
		t.Fatalf("fix: %v", msg.Err)
	}
	if msg.Outcome.MovedCount != 2 {
		t.Errorf("expected 2 moves, got %d", msg.Outcome.MovedCount)
	}
	if len(units.moved) != 2 {
		t.Errorf("expected 2 units written back, got %d", len(units.moved))
	}
	if len(events.reschedules) != 2 {
		t.Fatalf("expected 2 reschedule events, got %d", len(events.reschedules))
	}
	for _, e := range events.reschedules {
		if e.Reason != "overdue" {
			t.Errorf("reason = %q, want overdue", e.Reason)
		}
		if !e.ToDate.After(e.FromDate) {
			t.Errorf("unit %s moved backward: %s to %s", e.UnitID, e.FromDate, e.ToDate)
		}
	}
}

func TestEmptyBacklogView(t *testing.T) {
	units := &fakeUnitRepo{}
	subjects := &fakeSubjectRepo{}
	events := &fakeEventRepo{}
	s := New(units, subjects, events)

	s.Update(s.load())
	view := s.View(80, 24)
	if !strings.Contains(view, "on track") {
		t.Errorf("expected on-track message, got %q", view)
	}
}
