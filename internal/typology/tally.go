package typology

import (
	"fmt"
	"strconv"
	"strings"
)

// Tally counts answers per trait letter, in canonical letter order.
// The zero value is an empty tally.
type Tally [8]int

// Add increments the count for l by one.
func (t *Tally) Add(l Letter) error {
	i := l.index()
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidLetter, l.String())
	}
	t[i]++
	return nil
}

// Count returns the count for l, or 0 for an invalid letter.
func (t Tally) Count(l Letter) int {
	i := l.index()
	if i < 0 {
		return 0
	}
	return t[i]
}

// Pair returns the counts of the axis's first and second letters.
func (t Tally) Pair(a Axis) (first, second int) {
	return t.Count(a.First()), t.Count(a.Second())
}

// Total returns the number of recorded answers.
func (t Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// String renders the tally as "E=1,I=0,...".
func (t Tally) String() string {
	parts := make([]string, 0, len(letterOrder))
	for i, l := range letterOrder {
		parts = append(parts, fmt.Sprintf("%s=%d", l, t[i]))
	}
	return strings.Join(parts, ",")
}

// ParseTally parses "E=3,I=0,S=1" style input. Letters that are not
// mentioned stay at zero. A letter may appear only once.
func ParseTally(s string) (Tally, error) {
	var t Tally
	seen := make(map[Letter]bool)
	s = strings.TrimSpace(s)
	if s == "" {
		return t, nil
	}
	for _, field := range strings.Split(s, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			return Tally{}, fmt.Errorf("parse tally entry %q: expected LETTER=COUNT", field)
		}
		l, err := ParseLetter(strings.ToUpper(strings.TrimSpace(key)))
		if err != nil {
			return Tally{}, fmt.Errorf("parse tally entry %q: %w", field, err)
		}
		if seen[l] {
			return Tally{}, fmt.Errorf("parse tally entry %q: duplicate letter", field)
		}
		seen[l] = true
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return Tally{}, fmt.Errorf("parse tally entry %q: %w", field, err)
		}
		if n < 0 {
			return Tally{}, fmt.Errorf("parse tally entry %q: count must be >= 0", field)
		}
		t[l.index()] = n
	}
	return t, nil
}
