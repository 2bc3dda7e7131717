package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/ui/components"
	"github.com/abhisek/yokai/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.state == nil:
		return renderLoading(width, height)
	case s.quitConfirm:
		return renderQuitConfirm(width, height)
	case s.revealing:
		return renderReveal(width, height)
	}
	return s.renderQuestion(width, height)
}

// renderQuestion shows the progress bar, the prompt card, and the options.
func (s *SessionScreen) renderQuestion(width, height int) string {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return renderLoading(width, height)
	}
	cw := components.ContentWidth(width)
	number, total := s.state.Progress()

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("第 %d 問 / 全 %d 問", number, total))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counter))
	b.WriteString("\n")

	bar := components.NewProgressBar("", s.state.Fraction(), true, cw).View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(cw - 6).
		Foreground(theme.Text).
		Bold(true).
		Align(lipgloss.Center).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeCard(prompt, cw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View(cw)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderReveal(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Render("霊視中...")
	sub := theme.Hint.Render("あなたの魂を読み解いています")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, title+"\n\n"+sub)
}

func renderQuitConfirm(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 4).
		Align(lipgloss.Center)

	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("診断を中断しますか？") +
		"\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("回答はすべて失われます") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("[Y] やめる") +
		"    " +
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("[N] 続ける")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(content))
}

func renderLoading(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("準備中..."))
}

func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("エラー") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(msg) +
		"\n\n" +
		theme.Hint.Render("何かキーを押して戻る")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(content))
}
