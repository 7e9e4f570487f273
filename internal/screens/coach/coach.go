package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rsoarez/planista/internal/advisor"
	"github.com/rsoarez/planista/internal/backlog"
	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/screen"
	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/rsoarez/planista/internal/ui/components"
	"github.com/rsoarez/planista/internal/ui/layout"
	"github.com/rsoarez/planista/internal/ui/theme"
)

const (
	pollInterval = 400 * time.Millisecond
	maxPolls     = 150 // give up after about a minute
)

type requestedMsg struct {
	Err error
}

type pollMsg time.Time

// CoachScreen requests study advice from the coach and renders it.
type CoachScreen struct {
	svc      *advisor.Service
	subjects store.SubjectRepo
	units    store.UnitRepo
	tracker  *scoring.Tracker
	examDate *time.Time

	advice   *advisor.Advice
	waiting  bool
	polls    int
	errMsg   string
	question string

	asking bool
	input  components.TextInput
}

var _ screen.Screen = (*CoachScreen)(nil)
var _ screen.KeyHintProvider = (*CoachScreen)(nil)

// New creates a new CoachScreen.
func New(svc *advisor.Service, subjects store.SubjectRepo, units store.UnitRepo, tracker *scoring.Tracker, examDate *time.Time) *CoachScreen {
	return &CoachScreen{
		svc:      svc,
		subjects: subjects,
		units:    units,
		tracker:  tracker,
		examDate: examDate,
		waiting:  true,
	}
}

func (s *CoachScreen) Init() tea.Cmd {
	return s.request
}

// request assembles the learner's current state and fires the async
// advice generation.
func (s *CoachScreen) request() tea.Msg {
	ctx := context.Background()

	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return requestedMsg{Err: err}
	}
	pending, err := s.units.ListPending(ctx)
	if err != nil {
		return requestedMsg{Err: err}
	}

	today := studyplan.DateOnly(time.Now())
	entries := backlog.Detect(pending, subjects, today)
	backlogMinutes := 0
	for _, e := range entries {
		backlogMinutes += e.Unit.DurationMinutes
	}

	week, err := s.units.ListRange(ctx, today, today.AddDate(0, 0, 6))
	if err != nil {
		return requestedMsg{Err: err}
	}
	plannedUnits, plannedMinutes, mockExams := 0, 0, 0
	for _, u := range week {
		if u.IsBreak {
			continue
		}
		plannedUnits++
		plannedMinutes += u.DurationMinutes
		if u.Kind.IsMockExam() {
			mockExams++
		}
	}

	daysToExam := -1
	if s.examDate != nil {
		daysToExam = studyplan.DaysBetween(today, *s.examDate)
	}

	var profiles []*scoring.Profile
	if s.tracker != nil {
		profiles = s.tracker.All()
	}

	recovery := false
	for _, e := range entries {
		if e.Unit.RescheduleCount >= 2 {
			recovery = true
			break
		}
	}

	s.svc.RequestAdvice(ctx, advisor.AdviceInput{
		Subjects:       subjects,
		Profiles:       profiles,
		BacklogCount:   len(entries),
		BacklogMinutes: backlogMinutes,
		RecoveryMode:   recovery,
		DaysToExam:     daysToExam,
		PlannedUnits:   plannedUnits,
		PlannedHours:   float64(plannedMinutes) / 60,
		MockExamsNext:  mockExams,
		Question:       s.question,
	})
	return requestedMsg{}
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (s *CoachScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case requestedMsg:
		if msg.Err != nil {
			s.waiting = false
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, pollCmd()

	case pollMsg:
		if !s.waiting {
			return s, nil
		}
		if advice, ok := s.svc.ConsumeAdvice(); ok {
			s.waiting = false
			s.advice = advice
			return s, nil
		}
		s.polls++
		if s.polls >= maxPolls {
			s.waiting = false
			s.errMsg = "the coach is not answering right now"
			return s, nil
		}
		return s, pollCmd()

	case tea.KeyMsg:
		if s.asking {
			switch msg.String() {
			case "enter":
				s.asking = false
				s.question = s.input.Value()
				return s, s.rerequest()
			default:
				var cmd tea.Cmd
				s.input, cmd = s.input.Update(msg)
				return s, cmd
			}
		}
		if s.waiting {
			return s, nil
		}
		switch msg.String() {
		case "r":
			s.question = ""
			return s, s.rerequest()
		case "a":
			s.asking = true
			s.input = components.NewTextInput("What should I change this week?", false, 120)
			return s, s.input.Init()
		}
	}
	return s, nil
}

// rerequest resets the polling state and fires a new advice request.
func (s *CoachScreen) rerequest() tea.Cmd {
	s.waiting = true
	s.polls = 0
	s.advice = nil
	s.errMsg = ""
	return s.request
}

func (s *CoachScreen) View(width, height int) string {
	if s.asking {
		var b strings.Builder
		b.WriteString(theme.Subtitle.Render("\n  Ask your coach"))
		b.WriteString("\n\n  ")
		b.WriteString(s.input.View())
		return b.String()
	}
	if s.waiting {
		dots := strings.Repeat(".", s.polls%4)
		return theme.Hint.Render("\n  Asking your coach" + dots)
	}
	if s.errMsg != "" {
		return theme.Negative.Render("\n  " + s.errMsg)
	}
	if s.advice == nil {
		return theme.Hint.Render("\n  No advice available.")
	}

	wrap := theme.Body.Width(min(width-4, 76)).PaddingLeft(2)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(wrap.Render(s.advice.Summary))
	b.WriteString("\n")

	if len(s.advice.FocusSubjects) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("  Focus on"))
		b.WriteString("\n")
		for _, f := range s.advice.FocusSubjects {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  • %s", f)))
			b.WriteString("\n")
		}
	}

	if len(s.advice.Adjustments) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("  Adjustments"))
		b.WriteString("\n")
		for _, a := range s.advice.Adjustments {
			b.WriteString(wrap.Render("• " + a))
			b.WriteString("\n")
		}
	}

	if s.advice.Encouragement != "" {
		b.WriteString("\n")
		b.WriteString(theme.Positive.Width(min(width-4, 76)).PaddingLeft(2).Render(s.advice.Encouragement))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (s *CoachScreen) KeyHints() []layout.KeyHint {
	if s.asking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if !s.waiting {
		hints = append([]layout.KeyHint{
			{Key: "A", Description: "Ask a question"},
			{Key: "R", Description: "Refresh"},
		}, hints...)
	}
	return hints
}

func (s *CoachScreen) Title() string {
	return "Study Coach"
}
