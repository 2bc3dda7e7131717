// Package sound plays the quiz's cue effects as terminal bells.
package sound

import (
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Cue names a sound effect.
type Cue int

const (
	CueStart  Cue = iota // quiz begins
	CueAnswer            // an option was chosen
	CueResult            // the result is revealed
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueAnswer:
		return "answer"
	case CueResult:
		return "result"
	default:
		return "unknown"
	}
}

// Player plays cues.
type Player interface {
	Play(c Cue)
	Enabled() bool
	SetEnabled(on bool)
}

// bells is the number of BEL characters written per cue.
var bells = map[Cue]int{
	CueStart:  1,
	CueAnswer: 1,
	CueResult: 2,
}

// Bell plays cues by writing BEL characters to a terminal. It starts
// disabled.
type Bell struct {
	mu  sync.Mutex
	w   io.Writer
	on  bool
	log *zap.Logger
}

var _ Player = (*Bell)(nil)

// NewBell returns a disabled bell player writing to w.
func NewBell(w io.Writer, log *zap.Logger) *Bell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bell{w: w, log: log}
}

// Play writes the cue's bells when enabled.
func (b *Bell) Play(c Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.on || b.w == nil {
		return
	}
	n, ok := bells[c]
	if !ok {
		return
	}
	if _, err := io.WriteString(b.w, strings.Repeat("\a", n)); err != nil {
		b.log.Debug("bell write failed", zap.Stringer("cue", c), zap.Error(err))
	}
}

// Enabled reports whether cues are audible.
func (b *Bell) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.on
}

// SetEnabled turns cues on or off.
func (b *Bell) SetEnabled(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.on = on
	b.log.Debug("sound toggled", zap.Bool("enabled", on))
}

// Recorder is a Player that remembers the cues it was asked to play.
type Recorder struct {
	mu     sync.Mutex
	on     bool
	Played []Cue
}

var _ Player = (*Recorder)(nil)

// Play records c when enabled.
func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.on {
		r.Played = append(r.Played, c)
	}
}

// Enabled reports whether cues are recorded.
func (r *Recorder) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.on
}

// SetEnabled turns recording on or off.
func (r *Recorder) SetEnabled(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.on = on
}
