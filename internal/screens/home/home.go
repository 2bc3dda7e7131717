package home

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/yokai/internal/logging"
	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/screen"
	"github.com/abhisek/yokai/internal/screens/codex"
	sessionscreen "github.com/abhisek/yokai/internal/screens/session"
	"github.com/abhisek/yokai/internal/sound"
	"github.com/abhisek/yokai/internal/ui/components"
	"github.com/abhisek/yokai/internal/ui/layout"
)

const (
	itemStart = iota
	itemCodex
	itemSound
	itemExit
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps sessionscreen.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps sessionscreen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		itemStart: {Label: "診断開始", Action: func() tea.Cmd {
			next := sessionscreen.New(h.deps)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}},
		itemCodex: {Label: "妖怪図鑑", Action: func() tea.Cmd {
			next := codex.New(h.deps.Table)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}},
		itemSound: {Label: soundLabel(h.soundOn()), Action: func() tea.Cmd {
			h.toggleSound()
			return nil
		}},
		itemExit: {Label: "終了", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, components.Keys.Sound) {
		h.toggleSound()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := MascotIdle
		if !h.soundOn() {
			variant = MascotHushed
		}
		sections = append(sections, renderMascotBox(variant, cw))
	}

	sections = append(sections, renderStatsBar(h.typeCount(), h.soundOn(), cw, compact))

	if layout.IsCompactHeight(termHeight) {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "ホーム"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(components.Keys.Up, components.Keys.Select, components.Keys.Sound)
}

func (h *HomeScreen) soundOn() bool {
	return h.deps.Sound != nil && h.deps.Sound.Enabled()
}

func (h *HomeScreen) typeCount() int {
	if h.deps.Table == nil {
		return 0
	}
	return h.deps.Table.Len()
}

// toggleSound flips the sound setting and relabels the menu item.
func (h *HomeScreen) toggleSound() {
	if h.deps.Sound == nil {
		return
	}
	on := !h.deps.Sound.Enabled()
	h.deps.Sound.SetEnabled(on)
	h.menu.Items[itemSound].Label = soundLabel(on)
	if on {
		h.deps.Sound.Play(sound.CueAnswer)
	}
	logging.OrNop(h.deps.Logger).Debug("sound toggled", zap.Bool("enabled", on))
}

func soundLabel(on bool) string {
	if on {
		return "効果音 ON"
	}
	return "効果音 OFF"
}
