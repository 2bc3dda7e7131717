package typology

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally_Add(t *testing.T) {
	var tl Tally
	require.NoError(t, tl.Add(E))
	require.NoError(t, tl.Add(E))
	require.NoError(t, tl.Add(P))

	assert.Equal(t, 2, tl.Count(E))
	assert.Equal(t, 1, tl.Count(P))
	assert.Equal(t, 0, tl.Count(I))
	assert.Equal(t, 3, tl.Total())
}

func TestTally_AddInvalid(t *testing.T) {
	var tl Tally
	err := tl.Add(Letter('X'))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLetter))
	assert.Equal(t, 0, tl.Total())
}

func TestParseTally(t *testing.T) {
	tl, err := ParseTally("e=3, I=0,S=1,N=2,T=2,F=1,J=0,P=3")
	require.NoError(t, err)
	assert.Equal(t, Tally{3, 0, 1, 2, 2, 1, 0, 3}, tl)
	assert.Equal(t, "E=3,I=0,S=1,N=2,T=2,F=1,J=0,P=3", tl.String())
}

func TestParseTally_Errors(t *testing.T) {
	for _, in := range []string{"E3", "X=1", "E=-1", "E=abc", "E=1,E=3"} {
		_, err := ParseTally(in)
		assert.Error(t, err, in)
	}
}

func TestParseTally_DuplicateLetter(t *testing.T) {
	_, err := ParseTally("E=1,I=0,e=3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse tally entry "e=3": duplicate letter`)
}

func TestParseTally_Empty(t *testing.T) {
	tl, err := ParseTally("  ")
	require.NoError(t, err)
	assert.Equal(t, Tally{}, tl)
}
