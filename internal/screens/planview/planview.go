package planview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsoarez/planista/internal/screen"
	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/rsoarez/planista/internal/ui/layout"
	"github.com/rsoarez/planista/internal/ui/theme"
)

// visibleDays is how many calendar days the plan view loads at once.
const visibleDays = 7

type planLoadedMsg struct {
	Units []studyplan.StudyUnit
	Err   error
}

// PlanScreen shows the scheduled units for the upcoming days.
type PlanScreen struct {
	units  store.UnitRepo
	byDay  map[string][]studyplan.StudyUnit
	days   []string
	cursor int
	loaded bool
	errMsg string
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

// New creates a new PlanScreen.
func New(units store.UnitRepo) *PlanScreen {
	return &PlanScreen{units: units}
}

func (s *PlanScreen) Init() tea.Cmd {
	return func() tea.Msg {
		today := studyplan.DateOnly(time.Now())
		units, err := s.units.ListRange(context.Background(), today, today.AddDate(0, 0, visibleDays-1))
		return planLoadedMsg{Units: units, Err: err}
	}
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.byDay = make(map[string][]studyplan.StudyUnit)
		for _, u := range msg.Units {
			key := studyplan.DayKey(u.Date)
			if _, ok := s.byDay[key]; !ok {
				s.days = append(s.days, key)
			}
			s.byDay[key] = append(s.byDay[key], u)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.days)-1 {
				s.cursor++
			}
		}
	}
	return s, nil
}

func (s *PlanScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("\n  Loading plan...")
	}
	if s.errMsg != "" {
		return theme.Negative.Render("\n  Failed to load plan: " + s.errMsg)
	}
	if len(s.days) == 0 {
		return theme.Hint.Render("\n  No units scheduled. Run `planista plan` to generate one.")
	}

	var b strings.Builder
	for i, day := range s.days {
		b.WriteString(s.renderDay(day, i == s.cursor, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *PlanScreen) renderDay(day string, selected bool, width int) string {
	units := s.byDay[day]
	date, _ := time.Parse("2006-01-02", day)

	header := fmt.Sprintf("%s  %s", date.Format("Mon 02 Jan"), phaseOf(units))
	headerStyle := theme.Body
	if selected {
		headerStyle = theme.Selected
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("  " + header))
	b.WriteString("\n")

	if !selected {
		study := 0
		for _, u := range units {
			if !u.IsBreak {
				study++
			}
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("    %d units", study)))
		b.WriteString("\n")
		return b.String()
	}

	for _, u := range units {
		if u.IsBreak {
			continue
		}
		line := fmt.Sprintf("    %s–%s  %-14s %s",
			u.Start, u.End, kindLabel(u.Kind), unitTitle(u))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch u.Status {
		case studyplan.StatusCompleted:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case studyplan.StatusSkipped:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		case studyplan.StatusRescheduled:
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func unitTitle(u studyplan.StudyUnit) string {
	if u.Kind.IsMockExam() {
		return "Mock exam"
	}
	if u.TopicName != "" {
		return u.TopicName
	}
	return u.SubjectID
}

func kindLabel(k studyplan.UnitKind) string {
	switch k {
	case studyplan.KindLesson:
		return "Lesson"
	case studyplan.KindExercise:
		return "Exercises"
	case studyplan.KindReview:
		return "Review"
	case studyplan.KindAreaMockExam:
		return "Area mock"
	case studyplan.KindFullMockExam:
		return "Full mock"
	case studyplan.KindAnalysis:
		return "Analysis"
	}
	return string(k)
}

func phaseOf(units []studyplan.StudyUnit) string {
	for _, u := range units {
		if u.Phase != "" {
			return u.Phase
		}
	}
	return ""
}

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Day"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PlanScreen) Title() string {
	return "Study Plan"
}
