package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsoarez/planista/internal/advisor"
	"github.com/rsoarez/planista/internal/backlog"
	"github.com/rsoarez/planista/internal/router"
	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/screen"
	"github.com/rsoarez/planista/internal/screens/backlogview"
	"github.com/rsoarez/planista/internal/screens/coach"
	"github.com/rsoarez/planista/internal/screens/planview"
	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/rsoarez/planista/internal/ui/components"
	"github.com/rsoarez/planista/internal/ui/theme"
)

// Deps carries the stores and services the home screen hands to its
// child screens.
type Deps struct {
	Subjects store.SubjectRepo
	Units    store.UnitRepo
	Events   store.EventRepo
	Advisor  *advisor.Service
	Tracker  *scoring.Tracker
	ExamDate *time.Time
}

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	deps         Deps
	menu         components.Menu
	subjectCount int
	backlogCount int
	todayUnits   int
	todayDone    int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	s := &HomeScreen{deps: deps}
	s.loadCounts()

	items := []components.MenuItem{
		{Label: "STUDY PLAN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: planview.New(deps.Units)}
			}
		}},
		{Label: "BACKLOG", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: backlogview.New(deps.Units, deps.Subjects, deps.Events)}
			}
		}},
		{Label: "STUDY COACH", Action: func() tea.Cmd {
			if deps.Advisor == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: coach.New(deps.Advisor, deps.Subjects, deps.Units, deps.Tracker, deps.ExamDate)}
			}
		}, Disabled: deps.Advisor == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *HomeScreen) loadCounts() {
	ctx := context.Background()
	today := studyplan.DateOnly(time.Now())

	subjects, err := s.deps.Subjects.List(ctx)
	if err == nil {
		s.subjectCount = len(subjects)
	}
	if pending, err := s.deps.Units.ListPending(ctx); err == nil {
		s.backlogCount = len(backlog.Detect(pending, subjects, today))
	}
	if units, err := s.deps.Units.ListRange(ctx, today, today); err == nil {
		for _, u := range units {
			if u.IsBreak {
				continue
			}
			s.todayUnits++
			if u.Status == studyplan.StatusCompleted {
				s.todayDone++
			}
		}
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("P L A N I S T A")
	subtitle := theme.Subtitle.Render("Adaptive study planning for exam candidates")

	stats := theme.Hint.Render(fmt.Sprintf(
		"%d subjects · %d units today · %d overdue",
		s.subjectCount, s.todayUnits, s.backlogCount,
	))

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(subtitle)
	b.WriteString("\n\n")
	b.WriteString(stats)
	b.WriteString("\n\n")
	if s.todayUnits > 0 {
		pct := float64(s.todayDone) / float64(s.todayUnits)
		b.WriteString(components.NewProgressBar("Today", pct, true, 30).View())
		b.WriteString("\n\n")
	}
	b.WriteString(s.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(b.String())
}

func (s *HomeScreen) Title() string {
	return "Home"
}
