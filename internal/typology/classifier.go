package typology

// AxisScore is the outcome of one axis-pair comparison.
type AxisScore struct {
	Axis   Axis
	First  int // count for Axis.First()
	Second int // count for Axis.Second()
	Winner Letter
	Diff   int

	// Rounded shares of the pair total; both are 0 when the pair is empty.
	FirstPercent  int
	SecondPercent int
}

// Classification is the result of classifying a tally.
type Classification struct {
	Primary     Code
	Secondary   Code
	ClosestAxis Axis
	Scores      [NumAxes]AxisScore
}

// Classify derives the primary and secondary type codes from a tally.
//
// Each axis is won by the letter with the higher count, ties going to the
// axis's first letter. The secondary code flips the axis with the smallest
// count difference; among equal differences the earliest axis wins.
func Classify(t Tally) Classification {
	var c Classification
	primary := make([]byte, NumAxes)

	closest := -1
	for _, a := range Axes() {
		first, second := t.Pair(a)
		s := AxisScore{
			Axis:   a,
			First:  first,
			Second: second,
			Winner: a.First(),
			Diff:   absDiff(first, second),
		}
		if second > first {
			s.Winner = a.Second()
		}
		s.FirstPercent, s.SecondPercent = shares(first, second)

		c.Scores[a] = s
		primary[a] = byte(s.Winner)

		if closest < 0 || s.Diff < c.Scores[closest].Diff {
			closest = int(a)
		}
	}

	c.Primary = Code(primary)
	c.ClosestAxis = Axis(closest)
	c.Secondary = c.Primary.Flip(c.ClosestAxis)
	return c
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// shares rounds each count's share of the pair total to a whole percent,
// halves rounding up. An empty pair divides by one.
func shares(first, second int) (int, int) {
	total := first + second
	if total == 0 {
		total = 1
	}
	round := func(n int) int {
		return (200*n + total) / (2 * total)
	}
	return round(first), round(second)
}
