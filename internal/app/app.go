package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsoarez/planista/internal/advisor"
	"github.com/rsoarez/planista/internal/backlog"
	"github.com/rsoarez/planista/internal/router"
	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/screen"
	"github.com/rsoarez/planista/internal/screens/home"
	"github.com/rsoarez/planista/internal/store"
	"github.com/rsoarez/planista/internal/studyplan"
	"github.com/rsoarez/planista/internal/ui/layout"
)

// Options wires the stores and services into the TUI.
type Options struct {
	Subjects store.SubjectRepo
	Units    store.UnitRepo
	Events   store.EventRepo
	Advisor  *advisor.Service
	Tracker  *scoring.Tracker
	ExamDate *time.Time
}

type headerCountsMsg struct {
	Backlog    int
	DaysToExam int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int

	backlogCount int
	daysToExam   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Subjects: opts.Subjects,
		Units:    opts.Units,
		Events:   opts.Events,
		Advisor:  opts.Advisor,
		Tracker:  opts.Tracker,
		ExamDate: opts.ExamDate,
	})
	return AppModel{
		router:     router.New(homeScreen),
		opts:       opts,
		daysToExam: -1,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.refreshCounts)
}

// refreshCounts recomputes the header's backlog and exam counters.
func (m AppModel) refreshCounts() tea.Msg {
	ctx := context.Background()
	today := studyplan.DateOnly(time.Now())

	counts := headerCountsMsg{DaysToExam: -1}
	if m.opts.ExamDate != nil {
		counts.DaysToExam = studyplan.DaysBetween(today, *m.opts.ExamDate)
	}

	pending, err := m.opts.Units.ListPending(ctx)
	if err != nil {
		return counts
	}
	subjects, err := m.opts.Subjects.List(ctx)
	if err != nil {
		return counts
	}
	counts.Backlog = len(backlog.Detect(pending, subjects, today))
	return counts
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerCountsMsg:
		m.backlogCount = msg.Backlog
		m.daysToExam = msg.DaysToExam
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PopScreenMsg:
		// A screen may have completed or rescheduled units; the header
		// counters need a fresh read.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshCounts)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.backlogCount, m.daysToExam, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
