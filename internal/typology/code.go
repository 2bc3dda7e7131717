package typology

import (
	"fmt"
	"strings"
)

// Code is a four-letter type code, one letter per axis in fixed order.
type Code string

// ParseCode normalises and validates a type code.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	return c, nil
}

// Valid reports whether c has exactly one letter from each axis, in order.
func (c Code) Valid() bool {
	if len(c) != NumAxes {
		return false
	}
	for i, a := range Axes() {
		l := Letter(c[i])
		if l != a.First() && l != a.Second() {
			return false
		}
	}
	return true
}

// Letter returns the code's letter for axis a.
func (c Code) Letter(a Axis) Letter {
	if !a.Valid() || int(a) >= len(c) {
		return 0
	}
	return Letter(c[a])
}

// Flip returns the code with the letter of axis a replaced by its opposite.
func (c Code) Flip(a Axis) Code {
	if !c.Valid() || !a.Valid() {
		return c
	}
	b := []byte(c)
	b[a] = byte(a.Opposite(Letter(b[a])))
	return Code(b)
}

func (c Code) String() string {
	return string(c)
}

// AllCodes returns the sixteen type codes in a stable order.
func AllCodes() []Code {
	codes := make([]Code, 0, 16)
	for _, ei := range []Letter{E, I} {
		for _, sn := range []Letter{S, N} {
			for _, tf := range []Letter{T, F} {
				for _, jp := range []Letter{J, P} {
					codes = append(codes, Code([]byte{byte(ei), byte(sn), byte(tf), byte(jp)}))
				}
			}
		}
	}
	return codes
}
