package session

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/yokai/internal/router"
	"github.com/abhisek/yokai/internal/screen"
	"github.com/abhisek/yokai/internal/screens/result"
	sess "github.com/abhisek/yokai/internal/session"
	"github.com/abhisek/yokai/internal/sound"
	"github.com/abhisek/yokai/internal/ui/components"
	"github.com/abhisek/yokai/internal/ui/layout"
)

// SessionScreen implements screen.Screen for one run of the quiz.
type SessionScreen struct {
	deps        Deps
	state       *sess.SessionState
	choice      components.MultiChoice
	revealing   bool
	quitConfirm bool
	// pendingReveal is set when the run completes while the quit dialog is open.
	pendingReveal bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen. The question selection is drawn in Init.
func New(deps Deps) *SessionScreen {
	if deps.Pacing == (Pacing{}) {
		deps.Pacing = DefaultPacing
	}
	return &SessionScreen{deps: deps}
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.deps.Planner == nil || s.deps.Table == nil {
		s.errMsg = "診断データを読み込めませんでした"
		return nil
	}

	s.state = sess.NewSessionState(s.deps.Planner.Select())
	s.quitConfirm = false
	s.revealing = false
	s.pendingReveal = false
	s.deps.play(sound.CueStart)
	s.deps.logger().Info("quiz started", zap.Int("questions", s.state.Total()))

	if s.state.Phase == sess.PhaseComplete {
		return s.startReveal()
	}
	s.resetChoice()
	return nil
}

func (s *SessionScreen) Title() string {
	return "診断中"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "戻る"}}
	case s.quitConfirm:
		return layout.HintsFromBindings(components.Keys.Confirm, components.Keys.Cancel)
	case s.revealing || s.state == nil:
		return nil
	}
	return layout.HintsFromBindings(
		components.Keys.First,
		components.Keys.Second,
		components.Keys.Up,
		components.Keys.Select,
		components.Keys.Back,
	)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMadeMsg:
		return s.handleChoice(msg)
	case lockDoneMsg:
		return s.handleLockDone(msg)
	case revealDoneMsg:
		return s.handleRevealDone()
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch {
		case key.Matches(msg, components.Keys.Confirm):
			s.quitConfirm = false
			s.deps.logger().Info("quiz abandoned", zap.Int("answered", s.state.Answered()))
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, components.Keys.Cancel):
			s.quitConfirm = false
			if s.pendingReveal {
				s.pendingReveal = false
				return s, s.startReveal()
			}
		}
		return s, nil
	}

	if s.revealing {
		return s, nil
	}

	if key.Matches(msg, components.Keys.Back) {
		s.quitConfirm = true
		return s, nil
	}

	if s.state.Phase != sess.PhaseAnswering {
		return s, nil
	}
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// handleChoice scores the picked option and starts the lock window.
func (s *SessionScreen) handleChoice(msg components.ChoiceMadeMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || s.quitConfirm {
		return s, nil
	}
	outcome, err := sess.RecordOption(s.state, msg.Index)
	if err != nil {
		s.deps.logger().Error("record answer", zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}
	if outcome != sess.OutcomeLocked {
		return s, nil
	}

	s.deps.play(sound.CueAnswer)
	cursor := s.state.Cursor
	return s, tea.Tick(s.deps.Pacing.Lock, func(time.Time) tea.Msg {
		return lockDoneMsg{cursor: cursor}
	})
}

func (s *SessionScreen) handleLockDone(msg lockDoneMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase != sess.PhaseLocked || msg.cursor != s.state.Cursor {
		return s, nil
	}

	switch sess.Advance(s.state) {
	case sess.OutcomeAdvanced:
		s.resetChoice()
		return s, nil
	case sess.OutcomeComplete:
		if s.quitConfirm {
			s.pendingReveal = true
			return s, nil
		}
		return s, s.startReveal()
	}
	return s, nil
}

func (s *SessionScreen) startReveal() tea.Cmd {
	s.revealing = true
	return tea.Tick(s.deps.Pacing.Reveal, func(time.Time) tea.Msg {
		return revealDoneMsg{}
	})
}

func (s *SessionScreen) handleRevealDone() (screen.Screen, tea.Cmd) {
	if s.state == nil || !s.revealing {
		return s, nil
	}

	res, err := sess.Finish(s.state, s.deps.Table)
	if err != nil {
		s.deps.logger().Error("finish quiz", zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}

	s.deps.play(sound.CueResult)
	s.deps.logger().Info("quiz finished",
		zap.String("code", string(res.Classification.Primary)),
		zap.String("yokai", res.Primary.Name),
		zap.Stringer("tally", s.state.Tally),
		zap.Bool("secondary", res.Secondary != nil),
	)

	deps := s.deps
	next := result.New(res, func() screen.Screen { return New(deps) })
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SessionScreen) resetChoice() {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return
	}
	s.choice = components.NewMultiChoice([]string{q.Options[0].Text, q.Options[1].Text})
}
