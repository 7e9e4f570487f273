package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsoarez/planista/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the app's theme and an
// optional numeric filter.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		// Swallow single-rune keys outside 0-9; navigation keys pass
		// through to the inner model.
		if key, ok := msg.(tea.KeyMsg); ok {
			s := key.String()
			if len(s) == 1 && (s[0] < '0' || s[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, with a check or cross after submission.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	if t.valid {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records the validation outcome for rendering.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
