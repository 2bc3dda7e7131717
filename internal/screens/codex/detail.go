package codex

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/screen"
	"github.com/abhisek/yokai/internal/ui/components"
	"github.com/abhisek/yokai/internal/ui/layout"
	"github.com/abhisek/yokai/internal/ui/theme"
)

// DetailScreen shows one yokai type in full.
type DetailScreen struct {
	yokai quizdata.YokaiType
	vp    viewport.Model
	width int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

func newDetail(y quizdata.YokaiType) *DetailScreen {
	return &DetailScreen{yokai: y, vp: viewport.New()}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.yokai.Name }

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "スクロール"},
		{Key: "Esc", Description: "戻る"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Back) {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return d, cmd
}

func (d *DetailScreen) View(width, height int) string {
	if width != d.width {
		d.width = width
		d.vp.SetContent(d.render(width))
		d.vp.GotoTop()
	}
	d.vp.SetWidth(width)
	d.vp.SetHeight(height)
	return d.vp.View()
}

func (d *DetailScreen) render(width int) string {
	y := d.yokai
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(y.Name))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(string(y.Code)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("〜 " + y.Title + " 〜"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 4).Foreground(theme.Text).Render(y.Description))
	if y.ImageRef != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(y.ImageRef))
	}

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
