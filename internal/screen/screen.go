// Package screen defines what the router stacks: welcome, home, quiz,
// result, and codex screens all implement Screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/yokai/internal/ui/layout"
)

// Screen is one full-page view below the header and above the footer.
type Screen interface {
	// Init runs when the screen becomes active through Push or Replace.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the stack.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area at the given size.
	View(width, height int) string

	// Title is shown in the middle of the header. Empty hides it.
	Title() string
}

// KeyHintProvider is implemented by screens that list their keys in the
// footer. The app appends the global quit key.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
