package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/ui/components"
	"github.com/abhisek/yokai/internal/ui/layout"
	"github.com/abhisek/yokai/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ██╗   ██╗ ██████╗ ██╗  ██╗ █████╗ ██╗
 ╚██╗ ██╔╝██╔═══██╗██║ ██╔╝██╔══██╗██║
  ╚████╔╝ ██║   ██║█████╔╝ ███████║██║
   ╚██╔╝  ██║   ██║██╔═██╗ ██╔══██║██║
    ██║   ╚██████╔╝██║  ██╗██║  ██║██║
    ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝`

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull + "\n\n" + layout.AppName
	if compact {
		title = layout.AppName
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the type count and sound state in a bordered box.
func renderStatsBar(types int, soundOn bool, cw int, compact bool) string {
	typeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	onStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	sound := dimStyle.Render("♪ OFF")
	if soundOn {
		sound = onStyle.Render("♪ ON")
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s", typeStyle.Render(fmt.Sprintf("👻%d", types)), sound)
	} else {
		stats = fmt.Sprintf("%s  %s", typeStyle.Render(fmt.Sprintf("👻 %d 体の妖怪", types)), sound)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for terminals
// where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
