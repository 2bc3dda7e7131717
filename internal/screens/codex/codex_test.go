package codex

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/typology"
)

func fullTable() *quizdata.Table {
	var types []quizdata.YokaiType
	for _, c := range typology.AllCodes() {
		types = append(types, quizdata.YokaiType{
			Code:        c,
			Name:        "name-" + string(c),
			Title:       "title-" + string(c),
			Description: "desc-" + string(c),
			ImageRef:    "/img/" + string(c) + ".png",
		})
	}
	return quizdata.NewTable(types, "ENTP")
}

func TestCodex_GroupsAllTypes(t *testing.T) {
	s := New(fullTable())

	// Two headers plus sixteen types.
	require.Len(t, s.rows, 18)
	assert.Equal(t, rowGroupHeader, s.rows[0].kind)
	assert.Equal(t, rowGroupHeader, s.rows[9].kind)
	for _, r := range s.rows {
		if r.kind == rowType {
			assert.Equal(t, r.group, r.yokai.Code.Letter(typology.AxisEI))
		}
	}

	y, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, typology.Code("ESTJ"), y.Code)
}

func TestCodex_CursorSkipsHeaders(t *testing.T) {
	s := New(fullTable())
	for i := 0; i < 7; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	y, _ := s.Selected()
	assert.Equal(t, typology.Code("ENFP"), y.Code)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	y, _ = s.Selected()
	assert.Equal(t, typology.Code("ISTJ"), y.Code)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	y, _ = s.Selected()
	assert.Equal(t, typology.Code("ENFP"), y.Code)
}

func TestCodex_TabJumpsGroups(t *testing.T) {
	s := New(fullTable())
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	y, _ := s.Selected()
	assert.Equal(t, typology.Code("ISTJ"), y.Code)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	y, _ = s.Selected()
	assert.Equal(t, typology.Code("ESTJ"), y.Code)
}

func TestCodex_EnterPushesDetail(t *testing.T) {
	s := New(fullTable())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	detail, ok := push.Screen.(*DetailScreen)
	require.True(t, ok)
	assert.Equal(t, "name-ESTJ", detail.Title())

	view := detail.View(80, 30)
	assert.Contains(t, view, "title-ESTJ")
	assert.Contains(t, view, "desc-ESTJ")
	assert.Contains(t, view, "/img/ESTJ.png")

	_, cmd = detail.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestCodex_EscPops(t *testing.T) {
	s := New(fullTable())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestCodex_ViewScrollsToCursor(t *testing.T) {
	s := New(fullTable())
	for i := 0; i < 15; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	y, _ := s.Selected()
	require.Equal(t, typology.Code("INFP"), y.Code)

	view := s.View(80, 5)
	assert.Contains(t, view, "name-INFP")
	assert.NotContains(t, view, "name-ESTJ")
}

func TestCodex_EmptyTable(t *testing.T) {
	s := New(nil)
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Contains(t, s.View(40, 10), "図鑑は空です")
}
