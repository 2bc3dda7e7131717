package components

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/ui/theme"
)

// ChoiceMadeMsg is emitted when an option is picked.
type ChoiceMadeMsg struct {
	Index int
}

// MultiChoice is an option selector. Once locked it ignores input and
// highlights the chosen option.
type MultiChoice struct {
	Options  []string
	Selected int
	Chosen   int
	Locked   bool
}

// NewMultiChoice creates a selector over options with the first one
// highlighted.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles arrow navigation, number shortcuts, and Enter.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, Keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, Keys.First):
		return m.choose(0)
	case key.Matches(kmsg, Keys.Second):
		return m.choose(1)
	case key.Matches(kmsg, Keys.Select):
		return m.choose(m.Selected)
	}

	return m, nil
}

func (m MultiChoice) choose(i int) (MultiChoice, tea.Cmd) {
	if i < 0 || i >= len(m.Options) {
		return m, nil
	}
	m.Selected = i
	m.Chosen = i
	m.Locked = true
	return m, func() tea.Msg { return ChoiceMadeMsg{Index: i} }
}

// View renders the options as a column of buttons at the given width.
func (m MultiChoice) View(width int) string {
	s := ""
	for i, opt := range m.Options {
		label := fmt.Sprintf("%d. %s", i+1, opt)

		var style lipgloss.Style
		switch {
		case m.Locked && i == m.Chosen:
			style = theme.Locked.Border(lipgloss.RoundedBorder()).BorderForeground(theme.ArcadeYellow)
			label = "✔ " + label
		case m.Locked:
			style = theme.Faded.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)
		case i == m.Selected:
			style = theme.Selected.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Primary)
			label = "▸ " + label
		default:
			style = theme.Unselected.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)
		}

		if i > 0 {
			s += "\n"
		}
		s += style.Width(width).Padding(0, 1).Render(label)
	}
	return s
}
