package typology

import "fmt"

// Letter is one of the eight trait letters.
type Letter byte

const (
	E Letter = 'E' // Extraversion
	I Letter = 'I' // Introversion
	S Letter = 'S' // Sensing
	N Letter = 'N' // Intuition
	T Letter = 'T' // Thinking
	F Letter = 'F' // Feeling
	J Letter = 'J' // Judging
	P Letter = 'P' // Perceiving
)

// letterOrder is the canonical tally order.
var letterOrder = [8]Letter{E, I, S, N, T, F, J, P}

// Letters returns all eight letters in canonical order.
func Letters() []Letter {
	out := make([]Letter, len(letterOrder))
	copy(out, letterOrder[:])
	return out
}

// ParseLetter converts a single-character string into a Letter.
func ParseLetter(s string) (Letter, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
	}
	l := Letter(s[0])
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
	}
	return l, nil
}

// Valid reports whether l is one of the eight trait letters.
func (l Letter) Valid() bool {
	return l.index() >= 0
}

func (l Letter) index() int {
	for i, x := range letterOrder {
		if x == l {
			return i
		}
	}
	return -1
}

// Axis returns the axis-pair the letter belongs to.
func (l Letter) Axis() (Axis, bool) {
	i := l.index()
	if i < 0 {
		return 0, false
	}
	return Axis(i / 2), true
}

func (l Letter) String() string {
	return string(rune(l))
}

// Axis is one of the four opposing trait dimensions.
type Axis int

const (
	AxisEI Axis = iota
	AxisSN
	AxisTF
	AxisJP
)

// NumAxes is the number of axis-pairs; also the length of a type code.
const NumAxes = 4

// Axes returns all axis-pairs in their fixed order.
func Axes() []Axis {
	return []Axis{AxisEI, AxisSN, AxisTF, AxisJP}
}

// First returns the axis's first-listed letter, which wins ties.
func (a Axis) First() Letter {
	return letterOrder[int(a)*2]
}

// Second returns the axis's second-listed letter.
func (a Axis) Second() Letter {
	return letterOrder[int(a)*2+1]
}

// Opposite returns the other letter of the pair. Letters outside the
// axis are returned unchanged.
func (a Axis) Opposite(l Letter) Letter {
	switch l {
	case a.First():
		return a.Second()
	case a.Second():
		return a.First()
	default:
		return l
	}
}

// Valid reports whether a is one of the four axis-pairs.
func (a Axis) Valid() bool {
	return a >= AxisEI && a <= AxisJP
}

func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return a.First().String() + "/" + a.Second().String()
}

// Labels returns the display labels for the first and second letters.
func (a Axis) Labels() (first, second string) {
	switch a {
	case AxisEI:
		return "外向性", "内向性"
	case AxisSN:
		return "感覚的", "直観的"
	case AxisTF:
		return "論理重視", "感情重視"
	case AxisJP:
		return "計画的", "柔軟的"
	default:
		return "", ""
	}
}
