package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rsoarez/planista/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushRunsInitAndActivates(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	pushed := &stubScreen{title: "plan"}
	r.Push(pushed)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if got := r.Active().Title(); got != "plan" {
		t.Errorf("active = %q, want plan", got)
	}
	if !pushed.initRan {
		t.Error("pushed screen Init did not run")
	}
}

func TestPopRestoresPrevious(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "plan"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if got := r.Active().Title(); got != "home" {
		t.Errorf("active = %q, want home", got)
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth after bottom pop = %d, want 1", r.Depth())
	}
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "plan"})

	swapped := &stubScreen{title: "backlog"}
	r.Replace(swapped)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if got := r.Active().Title(); got != "backlog" {
		t.Errorf("active = %q, want backlog", got)
	}
	if !swapped.initRan {
		t.Error("replacement screen Init did not run")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	pushed := &stubScreen{title: "plan"}
	r.Update(PushScreenMsg{Screen: pushed})
	if got := r.Active().Title(); got != "plan" {
		t.Fatalf("after push msg active = %q, want plan", got)
	}

	swapped := &stubScreen{title: "coach"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	if got := r.Active().Title(); got != "coach" {
		t.Fatalf("after replace msg active = %q, want coach", got)
	}
	if !swapped.initRan {
		t.Error("Init did not run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	if got := r.Active().Title(); got != "home" {
		t.Fatalf("after pop msg active = %q, want home", got)
	}
}
