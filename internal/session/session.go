package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/typology"
)

var (
	// ErrInvalidLetter is returned when an answer is not one of the current
	// question's option letters.
	ErrInvalidLetter = typology.ErrInvalidLetter

	// ErrNotComplete is returned by Finish before the last answer.
	ErrNotComplete = errors.New("session not complete")
)

// RecordOutcome describes the effect of a state transition.
type RecordOutcome int

const (
	OutcomeIgnored  RecordOutcome = iota // Input arrived in a phase that does not accept it
	OutcomeLocked                        // Answer recorded, now locked
	OutcomeAdvanced                      // Moved to the next question
	OutcomeComplete                      // Last question answered
)

func (o RecordOutcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeLocked:
		return "locked"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// RecordAnswer records letter for the current question and locks the state.
// Input while locked or complete is ignored.
func RecordAnswer(state *SessionState, letter typology.Letter) (RecordOutcome, error) {
	if state.Phase != PhaseAnswering {
		return OutcomeIgnored, nil
	}

	q, ok := state.CurrentQuestion()
	if !ok {
		return OutcomeIgnored, nil
	}
	if letter != q.Options[0].Letter && letter != q.Options[1].Letter {
		return OutcomeIgnored, fmt.Errorf("%w: %q is not an option of question %s", ErrInvalidLetter, letter, q.ID)
	}
	if err := state.Tally.Add(letter); err != nil {
		return OutcomeIgnored, err
	}

	state.Answers = append(state.Answers, letter)
	state.Phase = PhaseLocked
	return OutcomeLocked, nil
}

// RecordOption records the letter of the current question's option at index.
func RecordOption(state *SessionState, index int) (RecordOutcome, error) {
	if state.Phase != PhaseAnswering {
		return OutcomeIgnored, nil
	}
	q, ok := state.CurrentQuestion()
	if !ok {
		return OutcomeIgnored, nil
	}
	if index < 0 || index >= len(q.Options) {
		return OutcomeIgnored, fmt.Errorf("option index %d out of range", index)
	}
	return RecordAnswer(state, q.Options[index].Letter)
}

// Advance moves a locked state to the next question, or to complete after
// the last one. Any other phase is ignored.
func Advance(state *SessionState) RecordOutcome {
	if state.Phase != PhaseLocked {
		return OutcomeIgnored
	}

	state.Cursor++
	if state.Cursor >= len(state.Questions) {
		state.Phase = PhaseComplete
		return OutcomeComplete
	}
	state.Phase = PhaseAnswering
	return OutcomeAdvanced
}

// Finish classifies a completed run. The first call classifies; later calls
// return the same result.
func Finish(state *SessionState, table *quizdata.Table) (*Result, error) {
	if state.Phase != PhaseComplete {
		return nil, ErrNotComplete
	}
	if state.result != nil {
		return state.result, nil
	}

	state.result = BuildResult(typology.Classify(state.Tally), table)
	state.result.Answered = state.Answered()
	return state.result, nil
}
