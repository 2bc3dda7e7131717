package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/yokai/internal/logging"
	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/typology"
)

// DefaultPerAxis is the number of questions drawn from each axis.
const DefaultPerAxis = quizdata.DefaultPerAxis

// ErrPoolTooSmall is returned by NewSelector in strict mode when an axis
// has fewer questions than PerAxis.
var ErrPoolTooSmall = errors.New("question pool too small")

// Planner produces the question order for one run.
type Planner interface {
	Select() []quizdata.Question
}

// SelectorConfig configures a Selector.
type SelectorConfig struct {
	// PerAxis is how many questions to draw from each axis. Zero means
	// DefaultPerAxis.
	PerAxis int

	// Strict rejects pools with an under-filled axis instead of
	// under-filling the selection.
	Strict bool

	// Rand is the random source. Nil seeds one from the clock.
	Rand *rand.Rand

	Logger *zap.Logger
}

// Selector draws a balanced random subset of the pool.
type Selector struct {
	byAxis  [typology.NumAxes][]quizdata.Question
	perAxis int
	rng     *rand.Rand
	log     *zap.Logger
}

var _ Planner = (*Selector)(nil)

// NewSelector partitions pool by axis and prepares a selector over it.
func NewSelector(pool quizdata.Pool, cfg SelectorConfig) (*Selector, error) {
	if cfg.PerAxis <= 0 {
		cfg.PerAxis = DefaultPerAxis
	}
	cfg.Logger = logging.OrNop(cfg.Logger)
	if cfg.Rand == nil {
		cfg.Rand = NewRand(0)
	}

	s := &Selector{
		byAxis:  pool.ByAxis(),
		perAxis: cfg.PerAxis,
		rng:     cfg.Rand,
		log:     cfg.Logger,
	}

	for a, sub := range s.byAxis {
		if len(sub) >= s.perAxis {
			continue
		}
		if cfg.Strict {
			return nil, fmt.Errorf("%w: axis %s has %d questions, need %d",
				ErrPoolTooSmall, typology.Axis(a), len(sub), s.perAxis)
		}
		s.log.Warn("axis under-filled, selection will be short",
			zap.Stringer("axis", typology.Axis(a)),
			zap.Int("available", len(sub)),
			zap.Int("per_axis", s.perAxis),
		)
	}
	return s, nil
}

// Select returns a fresh selection: up to PerAxis questions from each axis,
// in random order. Every call re-randomises.
func (s *Selector) Select() []quizdata.Question {
	out := make([]quizdata.Question, 0, s.perAxis*typology.NumAxes)
	for _, sub := range s.byAxis {
		picked := shuffled(s.rng, sub)
		if len(picked) > s.perAxis {
			picked = picked[:s.perAxis]
		}
		out = append(out, picked...)
	}
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Size returns the number of questions Select will return.
func (s *Selector) Size() int {
	n := 0
	for _, sub := range s.byAxis {
		n += min(len(sub), s.perAxis)
	}
	return n
}

// NewRand returns a PCG-backed source. A zero seed uses the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// shuffled returns a Fisher-Yates shuffled copy of qs.
func shuffled(rng *rand.Rand, qs []quizdata.Question) []quizdata.Question {
	out := make([]quizdata.Question, len(qs))
	copy(out, qs)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
