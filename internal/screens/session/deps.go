package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/yokai/internal/logging"
	"github.com/abhisek/yokai/internal/quizdata"
	sess "github.com/abhisek/yokai/internal/session"
	"github.com/abhisek/yokai/internal/sound"
)

// Pacing holds the quiz screen's timed transitions.
type Pacing struct {
	Lock   time.Duration
	Reveal time.Duration
}

// DefaultPacing matches the configured defaults.
var DefaultPacing = Pacing{
	Lock:   400 * time.Millisecond,
	Reveal: 1800 * time.Millisecond,
}

// Deps are the collaborators shared by the quiz flow's screens.
type Deps struct {
	Planner sess.Planner
	Table   *quizdata.Table
	Sound   sound.Player
	Pacing  Pacing
	Logger  *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	return logging.OrNop(d.Logger)
}

func (d Deps) play(c sound.Cue) {
	if d.Sound != nil {
		d.Sound.Play(c)
	}
}
