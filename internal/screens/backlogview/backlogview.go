package backlogview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rsoarez/planista/internal/backlog"
	"github.com/rsoarez/planista/internal/screen"
	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/rsoarez/planista/internal/ui/layout"
	"github.com/rsoarez/planista/internal/ui/theme"
)

type backlogLoadedMsg struct {
	Entries  []backlog.Entry
	Subjects map[string]studyplan.Subject
	Err      error
}

type rescheduledMsg struct {
	Outcome backlog.Outcome
	Err     error
}

// BacklogScreen lists overdue units and can redistribute them.
type BacklogScreen struct {
	units    store.UnitRepo
	subjects store.SubjectRepo
	events   store.EventRepo

	entries []backlog.Entry
	names   map[string]studyplan.Subject
	outcome *backlog.Outcome
	loaded  bool
	fixing  bool
	errMsg  string
}

var _ screen.Screen = (*BacklogScreen)(nil)
var _ screen.KeyHintProvider = (*BacklogScreen)(nil)

// New creates a new BacklogScreen.
func New(units store.UnitRepo, subjects store.SubjectRepo, events store.EventRepo) *BacklogScreen {
	return &BacklogScreen{units: units, subjects: subjects, events: events}
}

func (s *BacklogScreen) Init() tea.Cmd {
	return s.load
}

func (s *BacklogScreen) load() tea.Msg {
	ctx := context.Background()
	pending, err := s.units.ListPending(ctx)
	if err != nil {
		return backlogLoadedMsg{Err: err}
	}
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return backlogLoadedMsg{Err: err}
	}
	byID := make(map[string]studyplan.Subject, len(subjects))
	for _, sub := range subjects {
		byID[sub.ID] = sub
	}
	today := studyplan.DateOnly(time.Now())
	return backlogLoadedMsg{Entries: backlog.Detect(pending, subjects, today), Subjects: byID}
}

func (s *BacklogScreen) fix() tea.Msg {
	ctx := context.Background()
	pending, err := s.units.ListPending(ctx)
	if err != nil {
		return rescheduledMsg{Err: err}
	}
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return rescheduledMsg{Err: err}
	}

	today := studyplan.DateOnly(time.Now())
	scores := make(map[string]float64)
	for _, e := range backlog.Detect(pending, subjects, today) {
		scores[e.Unit.ID] = e.PriorityScore
	}

	outcome := backlog.AutoReschedule(backlog.Input{
		Units:    pending,
		Subjects: subjects,
		Today:    today,
	})

	before := make(map[string]studyplan.StudyUnit, len(pending))
	for _, u := range pending {
		before[u.ID] = u
	}
	var moved []studyplan.StudyUnit
	for _, u := range outcome.Units {
		prev, ok := before[u.ID]
		if !ok || prev.Date.Equal(u.Date) && prev.Start == u.Start {
			continue
		}
		moved = append(moved, u)
	}

	if err := s.units.ApplyMoves(ctx, moved); err != nil {
		return rescheduledMsg{Err: err}
	}
	for _, u := range moved {
		prev := before[u.ID]
		over := studyplan.DaysBetween(prev.Date, today)
		if over < 0 {
			over = 0
		}
		reason := "overdue"
		if _, wasBacklog := scores[u.ID]; !wasBacklog {
			reason = "displaced"
		}
		_ = s.events.AppendReschedule(ctx, store.RescheduleEventData{
			UnitID:        u.ID,
			SubjectID:     u.SubjectID,
			FromDate:      prev.Date,
			ToDate:        u.Date,
			DaysOverdue:   over,
			PriorityScore: scores[u.ID],
			Reason:        reason,
		})
	}
	return rescheduledMsg{Outcome: outcome}
}

func (s *BacklogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case backlogLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.entries = msg.Entries
		s.names = msg.Subjects
		return s, nil

	case rescheduledMsg:
		s.fixing = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		out := msg.Outcome
		s.outcome = &out
		return s, s.load

	case tea.KeyMsg:
		if msg.String() == "f" && len(s.entries) > 0 && !s.fixing {
			s.fixing = true
			return s, s.fix
		}
	}
	return s, nil
}

func (s *BacklogScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("\n  Loading backlog...")
	}
	if s.errMsg != "" {
		return theme.Negative.Render("\n  Backlog error: " + s.errMsg)
	}

	var b strings.Builder

	if out := s.outcome; out != nil {
		b.WriteString(theme.Positive.Render(fmt.Sprintf(
			"\n  Rescheduled %d units (%d placed today), backlog %d → %d.",
			out.MovedCount, out.InsertedTodayCount, out.BacklogBefore, out.BacklogAfter)))
		b.WriteString("\n")
		for _, line := range suggestionLines(out.Suggestion) {
			b.WriteString(theme.Hint.Render("  " + line))
			b.WriteString("\n")
		}
	}

	if len(s.entries) == 0 {
		b.WriteString(theme.Hint.Render("\n  No overdue units. You are on track."))
		return b.String()
	}

	b.WriteString("\n")
	for _, e := range s.entries {
		name := e.Unit.SubjectID
		if sub, ok := s.names[subjectKey(e.Unit)]; ok {
			name = sub.Name
		}
		line := fmt.Sprintf("  %s  %-14s %-18s %d days overdue",
			e.Unit.Date.Format("02 Jan"), string(e.Unit.Kind), name, e.DaysOverdue)
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}

	if s.fixing {
		b.WriteString(theme.Hint.Render("\n  Redistributing..."))
	}
	return b.String()
}

func subjectKey(u studyplan.StudyUnit) string {
	if u.SubjectID == studyplan.MockExamSubjectID && u.RelatedSubjectID != "" {
		return u.RelatedSubjectID
	}
	return u.SubjectID
}

func suggestionLines(sug backlog.Suggestion) []string {
	var lines []string
	if sug.ShouldSuggestReplan {
		lines = append(lines, "Backlog is heavy: consider regenerating the plan.")
	}
	if sug.SuggestedReduceNewContent {
		lines = append(lines, "Consider pausing new lessons until the backlog clears.")
	}
	if sug.ShouldSuggestRecoveryMode {
		lines = append(lines, "Recovery mode: some units keep slipping.")
	}
	if sug.SuggestedExtraMinutesPerDay > 0 {
		lines = append(lines, fmt.Sprintf("Adding %d minutes per day would absorb the rest.", sug.SuggestedExtraMinutesPerDay))
	}
	return lines
}

func (s *BacklogScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if len(s.entries) > 0 {
		hints = append([]layout.KeyHint{{Key: "F", Description: "Redistribute"}}, hints...)
	}
	return hints
}

func (s *BacklogScreen) Title() string {
	return "Backlog"
}
