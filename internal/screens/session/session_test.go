package session

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/screens/result"
	sess "github.com/abhisek/yokai/internal/session"
	"github.com/abhisek/yokai/internal/sound"
	"github.com/abhisek/yokai/internal/typology"
	"github.com/abhisek/yokai/internal/ui/components"
)

type fixedPlanner struct {
	questions []quizdata.Question
	calls     int
}

func (p *fixedPlanner) Select() []quizdata.Question {
	p.calls++
	return p.questions
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func question(id string, first, second typology.Letter) quizdata.Question {
	return quizdata.Question{
		ID:     id,
		Prompt: "prompt " + id,
		Options: [2]quizdata.Option{
			{Text: id + "-a", Letter: first},
			{Text: id + "-b", Letter: second},
		},
	}
}

func testTable() *quizdata.Table {
	var types []quizdata.YokaiType
	for _, c := range typology.AllCodes() {
		types = append(types, quizdata.YokaiType{Code: c, Name: "yokai-" + string(c), Title: "t", Description: "d"})
	}
	return quizdata.NewTable(types, quizdata.FallbackCode)
}

func newTestScreen(t *testing.T, qs ...quizdata.Question) (*SessionScreen, *fixedPlanner, *sound.Recorder) {
	t.Helper()
	p := &fixedPlanner{questions: qs}
	rec := &sound.Recorder{}
	rec.SetEnabled(true)
	s := New(Deps{
		Planner: p,
		Table:   testTable(),
		Sound:   rec,
		Pacing:  Pacing{Lock: time.Millisecond, Reveal: time.Millisecond},
	})
	return s, p, rec
}

// answer picks option r on the current question and runs the lock window.
func answer(t *testing.T, s *SessionScreen, r rune) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(keyPress(r))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, components.ChoiceMadeMsg{}, msg)

	_, cmd = s.Update(msg)
	require.NotNil(t, cmd)
	require.Equal(t, sess.PhaseLocked, s.state.Phase)

	_, cmd = s.Update(lockDoneMsg{cursor: s.state.Cursor})
	return cmd
}

func TestSessionScreen_InitDrawsSelection(t *testing.T) {
	s, p, rec := newTestScreen(t, question("a", typology.E, typology.I), question("b", typology.S, typology.N))
	assert.Nil(t, s.Init())

	assert.Equal(t, 1, p.calls)
	assert.Equal(t, 2, s.state.Total())
	assert.Equal(t, []sound.Cue{sound.CueStart}, rec.Played)
	assert.Equal(t, []string{"a-a", "a-b"}, s.choice.Options)

	view := s.View(80, 24)
	assert.Contains(t, view, "第 1 問 / 全 2 問")
	assert.Contains(t, view, "prompt a")
}

func TestSessionScreen_AnswerLocksThenAdvances(t *testing.T) {
	s, _, rec := newTestScreen(t, question("a", typology.E, typology.I), question("b", typology.S, typology.N))
	s.Init()

	cmd := answer(t, s, '2')
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.state.Cursor)
	assert.Equal(t, sess.PhaseAnswering, s.state.Phase)
	assert.Equal(t, 1, s.state.Tally.Count(typology.I))
	assert.Equal(t, []string{"b-a", "b-b"}, s.choice.Options)
	assert.False(t, s.choice.Locked)
	assert.Equal(t, []sound.Cue{sound.CueStart, sound.CueAnswer}, rec.Played)
}

func TestSessionScreen_InputIgnoredWhileLocked(t *testing.T) {
	s, _, _ := newTestScreen(t, question("a", typology.E, typology.I), question("b", typology.S, typology.N))
	s.Init()

	_, cmd := s.Update(keyPress('1'))
	s.Update(cmd())
	require.Equal(t, sess.PhaseLocked, s.state.Phase)

	_, cmd = s.Update(keyPress('2'))
	assert.Nil(t, cmd)

	_, cmd = s.Update(components.ChoiceMadeMsg{Index: 1})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.state.Tally.Total())
	assert.Equal(t, 1, s.state.Tally.Count(typology.E))
}

func TestSessionScreen_StaleLockTickIgnored(t *testing.T) {
	s, _, _ := newTestScreen(t, question("a", typology.E, typology.I), question("b", typology.S, typology.N))
	s.Init()

	answer(t, s, '1')
	require.Equal(t, 1, s.state.Cursor)

	_, cmd := s.Update(lockDoneMsg{cursor: 0})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.state.Cursor)
	assert.Equal(t, sess.PhaseAnswering, s.state.Phase)
}

func TestSessionScreen_LastAnswerRevealsResult(t *testing.T) {
	s, _, rec := newTestScreen(t,
		question("a", typology.E, typology.I),
		question("b", typology.N, typology.S),
		question("c", typology.T, typology.F),
		question("d", typology.P, typology.J),
	)
	s.Init()

	for i := 0; i < 3; i++ {
		require.Nil(t, answer(t, s, '1'))
	}
	cmd := answer(t, s, '1')
	require.NotNil(t, cmd)
	assert.True(t, s.revealing)
	assert.Contains(t, s.View(80, 24), "霊視中...")

	// Keys do nothing during the reveal.
	_, keyCmd := s.Update(specialKey(tea.KeyEscape))
	assert.Nil(t, keyCmd)
	assert.False(t, s.quitConfirm)

	_, cmd = s.Update(revealDoneMsg{})
	require.NotNil(t, cmd)
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &result.ResultScreen{}, replace.Screen)
	assert.Contains(t, replace.Screen.View(80, 40), "yokai-ENTP")
	assert.Equal(t, sound.CueResult, rec.Played[len(rec.Played)-1])
}

func TestSessionScreen_EmptySelectionRevealsImmediately(t *testing.T) {
	s, _, _ := newTestScreen(t)
	cmd := s.Init()
	require.NotNil(t, cmd)
	assert.True(t, s.revealing)

	_, cmd = s.Update(revealDoneMsg{})
	require.NotNil(t, cmd)
	replace := cmd().(router.ReplaceScreenMsg)
	assert.Contains(t, replace.Screen.View(80, 40), "yokai-ESTJ")
}

func TestSessionScreen_RetryBuildsFreshQuiz(t *testing.T) {
	s, p, _ := newTestScreen(t)
	s.Init()
	_, cmd := s.Update(revealDoneMsg{})
	res := cmd().(router.ReplaceScreenMsg).Screen

	res.View(80, 40)
	_, cmd = res.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)

	next, ok := replace.Screen.(*SessionScreen)
	require.True(t, ok)
	assert.NotSame(t, s, next)
	next.Init()
	assert.Equal(t, 2, p.calls)
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _, _ := newTestScreen(t, question("a", typology.E, typology.I))
	s.Init()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	assert.Nil(t, cmd)
	require.True(t, s.quitConfirm)
	assert.Contains(t, s.View(80, 24), "診断を中断しますか？")

	// Answer keys are swallowed by the dialog.
	_, cmd = s.Update(keyPress('1'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.state.Tally.Total())

	_, cmd = s.Update(keyPress('n'))
	assert.Nil(t, cmd)
	assert.False(t, s.quitConfirm)

	s.Update(specialKey(tea.KeyEscape))
	_, cmd = s.Update(keyPress('y'))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestSessionScreen_QuitDuringLastLockWindow(t *testing.T) {
	s, _, rec := newTestScreen(t, question("a", typology.E, typology.I))
	s.Init()

	_, cmd := s.Update(keyPress('1'))
	require.NotNil(t, cmd)
	_, lock := s.Update(cmd())
	require.NotNil(t, lock)

	s.Update(specialKey(tea.KeyEscape))
	require.True(t, s.quitConfirm)

	_, cmd = s.Update(lockDoneMsg{cursor: 0})
	assert.Nil(t, cmd)
	assert.True(t, s.quitConfirm)
	assert.False(t, s.revealing)
	assert.Equal(t, sess.PhaseComplete, s.state.Phase)

	_, cmd = s.Update(keyPress('y'))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	assert.NotContains(t, rec.Played, sound.CueResult)
}

func TestSessionScreen_CancelQuitAfterLastLockWindowReveals(t *testing.T) {
	s, _, _ := newTestScreen(t, question("a", typology.E, typology.I))
	s.Init()

	_, cmd := s.Update(keyPress('2'))
	s.Update(cmd())
	s.Update(specialKey(tea.KeyEscape))
	s.Update(lockDoneMsg{cursor: 0})
	require.False(t, s.revealing)

	_, cmd = s.Update(keyPress('n'))
	require.NotNil(t, cmd)
	assert.True(t, s.revealing)
	assert.False(t, s.quitConfirm)

	_, cmd = s.Update(cmd())
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &result.ResultScreen{}, replace.Screen)
}

func TestSessionScreen_MissingDeps(t *testing.T) {
	s := New(Deps{})
	assert.Nil(t, s.Init())
	assert.True(t, strings.Contains(s.View(80, 24), "エラー"))

	_, cmd := s.Update(keyPress('x'))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _, _ := newTestScreen(t, question("a", typology.E, typology.I))
	assert.Empty(t, s.KeyHints())

	s.Init()
	assert.NotEmpty(t, s.KeyHints())

	s.Update(specialKey(tea.KeyEscape))
	hints := s.KeyHints()
	require.Len(t, hints, 2)
	assert.Equal(t, "Y", hints[0].Key)
}
