package result

import (
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/screen"
	"github.com/abhisek/yokai/internal/session"
	"github.com/abhisek/yokai/internal/ui/components"
	"github.com/abhisek/yokai/internal/ui/layout"
)

// ResultScreen shows the diagnosed yokai type.
type ResultScreen struct {
	result *session.Result
	retry  components.Button
	vp     viewport.Model
	width  int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. retry builds the screen that replaces this one
// when the quiz is taken again.
func New(res *session.Result, retry func() screen.Screen) *ResultScreen {
	var onPress func() tea.Cmd
	if retry != nil {
		onPress = func() tea.Cmd {
			next := retry()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return &ResultScreen{
		result: res,
		retry:  components.NewButton("もう一度診断する", retry != nil, onPress),
		vp:     viewport.New(),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "診断結果"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "スクロール"},
		{Key: "Enter", Description: "もう一度診断する"},
		{Key: "Esc", Description: "ホーム"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, components.Keys.Back):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case key.Matches(kmsg, components.Keys.Select):
		var cmd tea.Cmd
		s.retry, cmd = s.retry.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	if s.result == nil {
		return ""
	}
	if width != s.width {
		s.width = width
		s.vp.SetContent(s.render(width))
	}
	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	return s.vp.View()
}
