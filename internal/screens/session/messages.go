package session

// lockDoneMsg ends the lock window for the question at cursor.
type lockDoneMsg struct {
	cursor int
}

// revealDoneMsg ends the pause before the result is shown.
type revealDoneMsg struct{}
