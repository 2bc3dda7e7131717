package app

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/yokai/internal/logging"
	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/screen"
	"github.com/abhisek/yokai/internal/screens/home"
	sessionscreen "github.com/abhisek/yokai/internal/screens/session"
	"github.com/abhisek/yokai/internal/screens/welcome"
	"github.com/abhisek/yokai/internal/ui/layout"
)

var quitKey = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("Ctrl+C", "終了"),
)

// Options configures the application.
type Options struct {
	Deps sessionscreen.Deps

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   sessionscreen.Deps
	width  int
	height int
}

// newAppModel creates an AppModel starting on the welcome or home screen.
func newAppModel(opts Options) AppModel {
	deps := opts.Deps
	homeFactory := func() screen.Screen { return home.New(deps) }

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}
	return AppModel{
		router: router.New(initial),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
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
	v.SetContent(m.render())
	return v
}

// render lays out the header, active screen, and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	soundOn := m.deps.Sound != nil && m.deps.Sound.Enabled()
	header := layout.RenderHeader(title, soundOn, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints returns the active screen's hints followed by the quit key.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints, layout.HintsFromBindings(quitKey)...)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	log := logging.OrNop(opts.Deps.Logger)

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run program: %w", err)
	}
	log.Info("program exited")
	return nil
}
