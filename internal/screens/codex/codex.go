package codex

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/screen"
	"github.com/abhisek/yokai/internal/typology"
	"github.com/abhisek/yokai/internal/ui/components"
	"github.com/abhisek/yokai/internal/ui/layout"
	"github.com/abhisek/yokai/internal/ui/theme"
)

type rowKind int

const (
	rowGroupHeader rowKind = iota
	rowType
)

type row struct {
	kind  rowKind
	group typology.Letter
	yokai *quizdata.YokaiType
}

var nextGroup = key.NewBinding(
	key.WithKeys("tab"),
	key.WithHelp("Tab", "グループ"),
)

// CodexScreen lists every yokai type, grouped by the E/I letter.
type CodexScreen struct {
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CodexScreen)(nil)
var _ screen.KeyHintProvider = (*CodexScreen)(nil)

// New creates a CodexScreen over the table's types.
func New(table *quizdata.Table) *CodexScreen {
	var rows []row
	if table != nil {
		types := table.All()
		for _, g := range []typology.Letter{typology.E, typology.I} {
			rows = append(rows, row{kind: rowGroupHeader, group: g})
			for i := range types {
				if types[i].Code.Letter(typology.AxisEI) == g {
					rows = append(rows, row{kind: rowType, group: g, yokai: &types[i]})
				}
			}
		}
	}

	s := &CodexScreen{rows: rows}
	for i, r := range s.rows {
		if r.kind == rowType {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *CodexScreen) Init() tea.Cmd {
	return nil
}

func (s *CodexScreen) Title() string {
	return "妖怪図鑑"
}

func (s *CodexScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(
		components.Keys.Up,
		nextGroup,
		components.Keys.Select,
		components.Keys.Back,
	)
}

func (s *CodexScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, components.Keys.Up):
		s.moveCursor(-1)
	case key.Matches(kmsg, components.Keys.Down):
		s.moveCursor(1)
	case key.Matches(kmsg, nextGroup):
		s.nextGroup()
	case key.Matches(kmsg, components.Keys.Select):
		return s, s.selectType()
	case key.Matches(kmsg, components.Keys.Back):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *CodexScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("図鑑は空です"))
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowGroupHeader:
			lines = append(lines, renderGroupHeader(r.group, width))
		case rowType:
			lines = append(lines, renderTypeRow(*r.yokai, i == s.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

// Selected returns the type under the cursor.
func (s *CodexScreen) Selected() (quizdata.YokaiType, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowType {
		return quizdata.YokaiType{}, false
	}
	return *s.rows[s.cursor].yokai, true
}

// moveCursor moves the cursor by delta, skipping group headers.
func (s *CodexScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowType {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextGroup jumps to the first type of the next group, wrapping around.
func (s *CodexScreen) nextGroup() {
	if len(s.rows) == 0 {
		return
	}
	current := s.rows[s.cursor].group
	for i := 1; i <= len(s.rows); i++ {
		j := (s.cursor + i) % len(s.rows)
		if s.rows[j].kind == rowType && s.rows[j].group != current {
			s.cursor = j
			return
		}
	}
}

// adjustScroll keeps the cursor row, and its header when adjacent, on screen.
func (s *CodexScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := s.cursor
	for top > 0 && s.rows[top-1].kind == rowGroupHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *CodexScreen) selectType() tea.Cmd {
	y, ok := s.Selected()
	if !ok {
		return nil
	}
	detail := newDetail(y)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func renderGroupHeader(g typology.Letter, width int) string {
	first, second := typology.AxisEI.Labels()
	label := first
	if g == typology.I {
		label = second
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(label + "の妖怪")
}

func renderTypeRow(y quizdata.YokaiType, selected bool, width int) string {
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	codeStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	titleStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	cursor := "  "
	if selected {
		nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
		codeStyle = codeStyle.Foreground(theme.Primary)
		titleStyle = titleStyle.Foreground(theme.Primary)
		cursor = "▸ "
	}

	const nameWidth = 16
	name := y.Name
	if pad := nameWidth - lipgloss.Width(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}

	line := "  " + cursor +
		codeStyle.Render(string(y.Code)) + "  " +
		nameStyle.Render(name) + "  " +
		titleStyle.Render(y.Title)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
