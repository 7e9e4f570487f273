package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/rsoarez/planista/internal/ui/layout"
)

// Screen is one full-content view managed by the router. The app shell
// owns the header and footer; View renders only the body.
type Screen interface {
	Init() tea.Cmd

	// Update returns the (possibly replaced) screen and a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen override the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
