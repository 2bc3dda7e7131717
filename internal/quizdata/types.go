package quizdata

import "github.com/abhisek/yokai/internal/typology"

// Option is one of a question's two answers.
type Option struct {
	Text   string
	Letter typology.Letter
}

// Question is a forced-choice prompt scoring a single axis.
type Question struct {
	ID      string
	Prompt  string
	Options [2]Option
}

// Axis returns the axis scored by q, taken from its first option.
func (q Question) Axis() (typology.Axis, bool) {
	return q.Options[0].Letter.Axis()
}

// Pool is an ordered list of questions.
type Pool []Question

// ByAxis partitions the pool into one sub-pool per axis, preserving order.
// Questions whose first option carries an invalid letter are dropped.
func (p Pool) ByAxis() [typology.NumAxes][]Question {
	var out [typology.NumAxes][]Question
	for _, q := range p {
		a, ok := q.Axis()
		if !ok {
			continue
		}
		out[a] = append(out[a], q)
	}
	return out
}

// YokaiType is the result shown for one type code.
type YokaiType struct {
	Code        typology.Code
	Name        string
	Title       string
	Description string
	ImageRef    string
}

// Table maps type codes to yokai types.
type Table struct {
	types    map[typology.Code]YokaiType
	fallback typology.Code
}

// NewTable builds a table from types. Later entries replace earlier ones
// with the same code.
func NewTable(types []YokaiType, fallback typology.Code) *Table {
	t := &Table{
		types:    make(map[typology.Code]YokaiType, len(types)),
		fallback: fallback,
	}
	for _, y := range types {
		t.types[y.Code] = y
	}
	return t
}

// Lookup returns the yokai type for code, if present.
func (t *Table) Lookup(code typology.Code) (YokaiType, bool) {
	y, ok := t.types[code]
	return y, ok
}

// Resolve returns the yokai type for code, or the fallback type when code
// is unknown.
func (t *Table) Resolve(code typology.Code) YokaiType {
	if y, ok := t.types[code]; ok {
		return y
	}
	return t.types[t.fallback]
}

// Fallback returns the code used for unresolvable primaries.
func (t *Table) Fallback() typology.Code {
	return t.fallback
}

// Len returns the number of types in the table.
func (t *Table) Len() int {
	return len(t.types)
}

// All returns every type in canonical code order. Codes missing from the
// table are skipped.
func (t *Table) All() []YokaiType {
	out := make([]YokaiType, 0, len(t.types))
	for _, c := range typology.AllCodes() {
		if y, ok := t.types[c]; ok {
			out = append(out, y)
		}
	}
	return out
}
