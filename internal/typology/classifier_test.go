package typology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tally(t *testing.T, s string) Tally {
	t.Helper()
	tl, err := ParseTally(s)
	require.NoError(t, err)
	return tl
}

func TestClassify_WorkedExample(t *testing.T) {
	c := Classify(tally(t, "E=3,I=0,S=1,N=2,T=2,F=1,J=0,P=3"))

	assert.Equal(t, Code("ENTP"), c.Primary)
	assert.Equal(t, AxisSN, c.ClosestAxis)
	assert.Equal(t, Code("ESTP"), c.Secondary)
}

func TestClassify_AllZeroResolvesToFirstLetters(t *testing.T) {
	c := Classify(Tally{})

	assert.Equal(t, Code("ESTJ"), c.Primary)
	// Every diff is zero, so the earliest axis is flipped.
	assert.Equal(t, AxisEI, c.ClosestAxis)
	assert.Equal(t, Code("ISTJ"), c.Secondary)
}

func TestClassify_TiesGoToFirstLetter(t *testing.T) {
	tests := []struct {
		name  string
		tally string
		want  Code
	}{
		{"EI tie", "E=2,I=2,S=0,N=3,T=0,F=3,J=0,P=3", "ENFP"},
		{"SN tie", "E=0,I=3,S=1,N=1,T=0,F=3,J=0,P=3", "ISFP"},
		{"TF tie", "E=0,I=3,S=0,N=3,T=2,F=2,J=0,P=3", "INTP"},
		{"JP tie", "E=0,I=3,S=0,N=3,T=0,F=3,J=1,P=1", "INFJ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tally(t, tt.tally)).Primary)
		})
	}
}

func TestClassify_SecondaryPicksSmallestDiff(t *testing.T) {
	tests := []struct {
		name    string
		tally   string
		axis    Axis
		primary Code
		second  Code
	}{
		{"JP closest", "E=3,I=0,S=3,N=0,T=0,F=3,J=1,P=2", AxisJP, "ESFP", "ESFJ"},
		{"TF closest", "E=0,I=3,S=3,N=0,T=2,F=1,J=3,P=0", AxisTF, "ISTJ", "ISFJ"},
		{"EI beats later tie", "E=1,I=2,S=2,N=1,T=3,F=0,J=0,P=3", AxisEI, "ISTP", "ESTP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tally(t, tt.tally))
			assert.Equal(t, tt.axis, c.ClosestAxis)
			assert.Equal(t, tt.primary, c.Primary)
			assert.Equal(t, tt.second, c.Secondary)
		})
	}
}

func TestClassify_SecondaryDiffersByOneLetter(t *testing.T) {
	// Every tally with 0..3 answers per axis-pair, 3 questions per pair.
	for ei := 0; ei <= 3; ei++ {
		for sn := 0; sn <= 3; sn++ {
			for tf := 0; tf <= 3; tf++ {
				for jp := 0; jp <= 3; jp++ {
					tl := Tally{ei, 3 - ei, sn, 3 - sn, tf, 3 - tf, jp, 3 - jp}
					c := Classify(tl)

					require.True(t, c.Primary.Valid(), "primary %q", c.Primary)
					require.True(t, c.Secondary.Valid(), "secondary %q", c.Secondary)

					differ := 0
					for _, a := range Axes() {
						if c.Primary.Letter(a) != c.Secondary.Letter(a) {
							differ++
							assert.Equal(t, c.ClosestAxis, a)
						}
					}
					require.Equal(t, 1, differ, "tally %s", tl)

					minDiff := c.Scores[0].Diff
					for _, s := range c.Scores {
						minDiff = min(minDiff, s.Diff)
					}
					assert.Equal(t, minDiff, c.Scores[c.ClosestAxis].Diff)
				}
			}
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	tl := tally(t, "E=1,I=2,S=3,N=0,T=1,F=2,J=2,P=1")
	assert.Equal(t, Classify(tl), Classify(tl))
}

func TestClassify_Percentages(t *testing.T) {
	c := Classify(tally(t, "E=1,I=2,S=3,N=0"))

	ei := c.Scores[AxisEI]
	assert.Equal(t, 33, ei.FirstPercent)
	assert.Equal(t, 67, ei.SecondPercent)

	sn := c.Scores[AxisSN]
	assert.Equal(t, 100, sn.FirstPercent)
	assert.Equal(t, 0, sn.SecondPercent)

	// Empty pair: both zero rather than a division by zero.
	tf := c.Scores[AxisTF]
	assert.Equal(t, 0, tf.FirstPercent)
	assert.Equal(t, 0, tf.SecondPercent)
}
