package session

import (
	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/typology"
)

// SessionPhase represents the current phase of a run.
type SessionPhase int

const (
	PhaseAnswering SessionPhase = iota // Waiting for an answer to the current question
	PhaseLocked                        // Answer recorded, waiting to advance
	PhaseComplete                      // All questions answered
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseLocked:
		return "locked"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// SessionState tracks one run through a selection of questions.
type SessionState struct {
	// Questions is the selection being answered, in presentation order.
	Questions []quizdata.Question

	// Cursor is the index of the current question.
	Cursor int

	// Phase is the current phase.
	Phase SessionPhase

	// Tally accumulates one count per answered question.
	Tally typology.Tally

	// Answers holds the letter chosen for each answered question.
	Answers []typology.Letter

	result *Result
}

// NewSessionState starts a run over questions. An empty selection is
// complete immediately.
func NewSessionState(questions []quizdata.Question) *SessionState {
	s := &SessionState{
		Questions: questions,
		Answers:   make([]typology.Letter, 0, len(questions)),
	}
	if len(questions) == 0 {
		s.Phase = PhaseComplete
	}
	return s
}

// CurrentQuestion returns the question under the cursor.
func (s *SessionState) CurrentQuestion() (quizdata.Question, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Questions) {
		return quizdata.Question{}, false
	}
	return s.Questions[s.Cursor], true
}

// Total returns the number of questions in the run.
func (s *SessionState) Total() int {
	return len(s.Questions)
}

// Answered returns the number of answers recorded.
func (s *SessionState) Answered() int {
	return len(s.Answers)
}

// IsLastQuestion reports whether the cursor is on the final question.
func (s *SessionState) IsLastQuestion() bool {
	return s.Cursor == len(s.Questions)-1
}
