package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/screens/codex"
	sessionscreen "github.com/abhisek/yokai/internal/screens/session"
	"github.com/abhisek/yokai/internal/sound"
)

func newTestHome(soundOn bool) (*HomeScreen, *sound.Recorder) {
	rec := &sound.Recorder{}
	rec.SetEnabled(soundOn)
	table := quizdata.NewTable([]quizdata.YokaiType{{Code: "ENTP", Name: "河童"}}, "ENTP")
	return New(sessionscreen.Deps{Table: table, Sound: rec}), rec
}

func selectItem(h *HomeScreen, index int) tea.Cmd {
	for i := 0; i < index; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestHome_MenuLabels(t *testing.T) {
	h, _ := newTestHome(false)
	assert.Equal(t, []string{"診断開始", "妖怪図鑑", "効果音 OFF", "終了"}, h.menu.Labels())
}

func TestHome_StartPushesQuiz(t *testing.T) {
	h, _ := newTestHome(false)
	cmd := selectItem(h, itemStart)
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &sessionscreen.SessionScreen{}, push.Screen)
}

func TestHome_CodexPushesCodex(t *testing.T) {
	h, _ := newTestHome(false)
	cmd := selectItem(h, itemCodex)
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &codex.CodexScreen{}, push.Screen)
}

func TestHome_SoundToggle(t *testing.T) {
	h, rec := newTestHome(false)

	cmd := selectItem(h, itemSound)
	assert.Nil(t, cmd)
	assert.True(t, rec.Enabled())
	assert.Equal(t, "効果音 ON", h.menu.Items[itemSound].Label)
	assert.Equal(t, []sound.Cue{sound.CueAnswer}, rec.Played)

	h.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.False(t, rec.Enabled())
	assert.Equal(t, "効果音 OFF", h.menu.Items[itemSound].Label)
}

func TestHome_ExitQuits(t *testing.T) {
	h, _ := newTestHome(false)
	cmd := selectItem(h, itemExit)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_View(t *testing.T) {
	h, _ := newTestHome(true)

	full := h.View(120, 40)
	assert.Contains(t, full, "妖怪心理診断")
	assert.Contains(t, full, "1 体の妖怪")
	assert.Contains(t, full, "♪ ON")

	compact := h.View(60, 16)
	assert.Contains(t, compact, "診断開始")
}

func TestHome_NilSoundIsOff(t *testing.T) {
	h := New(sessionscreen.Deps{})
	assert.Equal(t, "効果音 OFF", h.menu.Items[itemSound].Label)
	h.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.Equal(t, "効果音 OFF", h.menu.Items[itemSound].Label)
}
