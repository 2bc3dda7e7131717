package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := clampInt(int(float64(barWidth)*p.Percent), 0, barWidth)
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// StatBar shows how a trait pair split: the first letter's share fills from
// the left, the second's from the right.
type StatBar struct {
	FirstLabel    string
	SecondLabel   string
	FirstPercent  int
	SecondPercent int
	Width         int
}

// View renders the labels above a two-colour bar with the percentages at
// either end.
func (s StatBar) View() string {
	left := fmt.Sprintf("%s %d%%", s.FirstLabel, s.FirstPercent)
	right := fmt.Sprintf("%d%% %s", s.SecondPercent, s.SecondLabel)

	firstStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	secondStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.FirstPercent >= s.SecondPercent {
		firstStyle = firstStyle.Bold(true)
	} else {
		secondStyle = secondStyle.Bold(true)
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	labels := firstStyle.Render(left) + strings.Repeat(" ", gap) + secondStyle.Render(right)

	barWidth := s.Width
	if barWidth < 4 {
		barWidth = 4
	}
	first := clampInt(barWidth*s.FirstPercent/100, 0, barWidth)
	second := clampInt(barWidth*s.SecondPercent/100, 0, barWidth-first)
	empty := barWidth - first - second

	bar := theme.StatFirst.Render(strings.Repeat(" ", first)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		theme.StatSecond.Render(strings.Repeat(" ", second))

	return labels + "\n" + bar
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
