package planview

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rsoarez/planista/internal/studyplan"
)

type fakeUnitRepo struct {
	units []studyplan.StudyUnit
	err   error
}

func (f *fakeUnitRepo) SaveUnits(context.Context, []studyplan.StudyUnit) error { return nil }
func (f *fakeUnitRepo) ReplacePlan(context.Context, time.Time, time.Time, []studyplan.StudyUnit) error {
	return nil
}
func (f *fakeUnitRepo) Get(context.Context, string) (studyplan.StudyUnit, error) {
	return studyplan.StudyUnit{}, nil
}
func (f *fakeUnitRepo) ListRange(context.Context, time.Time, time.Time) ([]studyplan.StudyUnit, error) {
	return f.units, f.err
}
func (f *fakeUnitRepo) ListPending(context.Context) ([]studyplan.StudyUnit, error) {
	return nil, nil
}
func (f *fakeUnitRepo) SetStatus(context.Context, string, studyplan.Status, time.Time) error {
	return nil
}
func (f *fakeUnitRepo) ApplyMoves(context.Context, []studyplan.StudyUnit) error { return nil }

func unitOn(day time.Time, kind studyplan.UnitKind, topic string) studyplan.StudyUnit {
	return studyplan.StudyUnit{
		ID:        studyplan.NewUnitID(),
		SubjectID: "sub-1",
		Kind:      kind,
		TopicName: topic,
		Date:      day,
		Start:     studyplan.NewClock(9, 0),
		End:       studyplan.NewClock(9, 45),
		Status:    studyplan.StatusScheduled,
		Phase:     "foundation",
	}
}

// loaded drives the screen through its Init load against the fake repo.
func loaded(t *testing.T, repo *fakeUnitRepo) *PlanScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	if _, ok := msg.(planLoadedMsg); !ok {
		t.Fatalf("Init produced %T, want planLoadedMsg", msg)
	}
	s.Update(msg)
	return s
}

func TestGroupsUnitsByDay(t *testing.T) {
	today := studyplan.DateOnly(time.Now())
	repo := &fakeUnitRepo{units: []studyplan.StudyUnit{
		unitOn(today, studyplan.KindLesson, "Derivatives"),
		unitOn(today, studyplan.KindReview, "Limits"),
		unitOn(today.AddDate(0, 0, 1), studyplan.KindExercise, "Integrals"),
	}}
	s := loaded(t, repo)

	if len(s.days) != 2 {
		t.Fatalf("got %d days, want 2", len(s.days))
	}
	if got := len(s.byDay[studyplan.DayKey(today)]); got != 2 {
		t.Errorf("today has %d units, want 2", got)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Derivatives") {
		t.Errorf("selected day should list its units, got:\n%s", view)
	}
	if strings.Contains(view, "Integrals") {
		t.Errorf("collapsed day should not list unit titles, got:\n%s", view)
	}
}

func TestCursorMovesAcrossDays(t *testing.T) {
	today := studyplan.DateOnly(time.Now())
	repo := &fakeUnitRepo{units: []studyplan.StudyUnit{
		unitOn(today, studyplan.KindLesson, "A"),
		unitOn(today.AddDate(0, 0, 1), studyplan.KindLesson, "B"),
	}}
	s := loaded(t, repo)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", s.cursor)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.cursor != 1 {
		t.Errorf("cursor = %d, must not pass the last day", s.cursor)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", s.cursor)
	}
}

func TestEmptyPlanPrompt(t *testing.T) {
	s := loaded(t, &fakeUnitRepo{})
	if view := s.View(80, 24); !strings.Contains(view, "planista plan") {
		t.Errorf("empty plan should point at the plan command, got:\n%s", view)
	}
}

func TestLoadErrorShown(t *testing.T) {
	s := loaded(t, &fakeUnitRepo{err: errors.New("db locked")})
	if view := s.View(80, 24); !strings.Contains(view, "db locked") {
		t.Errorf("load error should surface in the view, got:\n%s", view)
	}
}

func TestBreaksHiddenFromDayDetail(t *testing.T) {
	today := studyplan.DateOnly(time.Now())
	br := unitOn(today, studyplan.KindLesson, "Pause")
	br.IsBreak = true
	repo := &fakeUnitRepo{units: []studyplan.StudyUnit{
		unitOn(today, studyplan.KindLesson, "Grammar"),
		br,
	}}
	s := loaded(t, repo)

	view := s.View(80, 24)
	if strings.Contains(view, "Pause") {
		t.Errorf("breaks should not render as rows, got:\n%s", view)
	}
	if !strings.Contains(view, "Grammar") {
		t.Errorf("study unit missing from view:\n%s", view)
	}
}
