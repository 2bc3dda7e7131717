package session

// Progress returns the 1-based number of the question on screen and the
// total. Once complete, the number stays at the total.
func (s *SessionState) Progress() (number, total int) {
	total = s.Total()
	number = s.Cursor + 1
	if number > total {
		number = total
	}
	return number, total
}

// Fraction returns the share of questions answered, in [0, 1].
func (s *SessionState) Fraction() float64 {
	if s.Total() == 0 {
		return 1
	}
	return float64(s.Answered()) / float64(s.Total())
}
