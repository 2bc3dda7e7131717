package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/ui/layout"
	"github.com/abhisek/yokai/internal/ui/theme"
)

const bannerArt = `
 ██╗   ██╗ ██████╗ ██╗  ██╗ █████╗ ██╗
 ╚██╗ ██╔╝██╔═══██╗██║ ██╔╝██╔══██╗██║
  ╚████╔╝ ██║   ██║█████╔╝ ███████║██║
   ╚██╔╝  ██║   ██║██╔═██╗ ██╔══██║██║
    ██║   ╚██████╔╝██║  ██╗██║  ██║██║
    ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝`

const bannerCompact = "Y O K A I"

// RenderBanner returns the YOKAI banner with the app name beneath it.
// Uses a compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)
	name := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(layout.AppName)

	art := bannerArt
	if width < 44 {
		art = bannerCompact
	}
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(art), "", name)
}
