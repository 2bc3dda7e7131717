package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: night sky, ghost fire, paper lantern
var (
	Primary      = lipgloss.Color("#A78BFA") // Wisteria
	Secondary    = lipgloss.Color("#22D3EE") // Onibi cyan
	Accent       = lipgloss.Color("#F97316") // Lantern orange
	Success      = lipgloss.Color("#34D399") // Moss
	Error        = lipgloss.Color("#F43F5E") // Torii red
	Text         = lipgloss.Color("#F5F3FF") // Rice paper
	TextDim      = lipgloss.Color("#9CA3AF") // Mist
	BgDark       = lipgloss.Color("#0B0A1A") // Midnight
	BgCard       = lipgloss.Color("#1C1A33") // Dusk
	Border       = lipgloss.Color("#3B3660") // Shadow
	ArcadeYellow = lipgloss.Color("#FACC15") // Lantern glow
	ArcadeCyan   = lipgloss.Color("#67E8F9") // Will-o'-wisp
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	// Locked marks the chosen option while the answer is held.
	Locked = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(ArcadeYellow).
		Bold(true)

	Faded = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	// StatFirst and StatSecond fill the two sides of a trait bar.
	StatFirst = lipgloss.NewStyle().
			Background(Primary)

	StatSecond = lipgloss.NewStyle().
			Background(Accent)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
