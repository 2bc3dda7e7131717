package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/typology"
	"github.com/abhisek/yokai/internal/ui/components"
	"github.com/abhisek/yokai/internal/ui/theme"
)

// render lays out the whole result page at the given width.
func (s *ResultScreen) render(width int) string {
	res := s.result
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var sections []string

	sections = append(sections, theme.Subtitle.Width(width).Render("あなたの深層妖怪タイプ"))
	sections = append(sections, center.Render(renderPrimary(res.Primary.Name, res.Primary.Title, string(res.Primary.Code), cw)))

	desc := theme.Body.Width(cw - 4).Render(res.Primary.Description)
	sections = append(sections, center.Render(desc))

	if res.Primary.ImageRef != "" {
		sections = append(sections, center.Foreground(theme.TextDim).Italic(true).Render(res.Primary.ImageRef))
	}

	if res.Secondary != nil {
		note := fmt.Sprintf("⚠️ 潜伏する別の影\n%s（%s）の性質も、あなたの中に潜んでいます。",
			res.Secondary.Name, res.Secondary.Code)
		sections = append(sections, center.Render(
			lipgloss.NewStyle().
				Width(cw).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Accent).
				Foreground(theme.Accent).
				Align(lipgloss.Center).
				Render(note)))
	}

	sections = append(sections, theme.Title.Width(width).Render("霊的パラメータ分析"))
	sections = append(sections, center.Render(renderStats(res.Classification, cw)))

	sections = append(sections, center.Render(s.retry.View()))

	return strings.Join(sections, "\n\n")
}

func renderPrimary(name, title, code string, cw int) string {
	nameLine := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(name)
	codeLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(code)
	titleLine := lipgloss.NewStyle().Foreground(theme.Primary).Render("〜 " + title + " 〜")

	return lipgloss.NewStyle().
		Width(cw).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeYellow).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(nameLine + "\n" + titleLine + "\n" + codeLine)
}

// renderStats draws one bar per axis in fixed order.
func renderStats(c typology.Classification, cw int) string {
	bars := make([]string, 0, typology.NumAxes)
	for _, sc := range c.Scores {
		first, second := sc.Axis.Labels()
		bars = append(bars, components.StatBar{
			FirstLabel:    first,
			SecondLabel:   second,
			FirstPercent:  sc.FirstPercent,
			SecondPercent: sc.SecondPercent,
			Width:         cw,
		}.View())
	}
	return strings.Join(bars, "\n\n")
}
