package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle   MascotVariant = iota // Pale ghost
	MascotHushed                      // Sleeping ghost, shown while sound is off
)

const mascotIdle = ` .-"""-.
/ ◉   ◉ \
|   ‿   |
\/\/ \/\/`

const mascotHushed = ` .-"""-.
/ ─   ─ \  z
|   ‿   | z
\/\/ \/\/`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	art := mascotIdle
	fg := theme.Text
	if v == MascotHushed {
		art = mascotHushed
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
