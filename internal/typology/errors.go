package typology

import "errors"

var (
	// ErrInvalidLetter is returned for anything outside {E,I,S,N,T,F,J,P}.
	ErrInvalidLetter = errors.New("invalid axis letter")

	// ErrInvalidCode is returned for strings that are not a four-letter type code.
	ErrInvalidCode = errors.New("invalid type code")
)
