package session

import (
	"github.com/abhisek/yokai/internal/quizdata"
	"github.com/abhisek/yokai/internal/typology"
)

// Result holds the data displayed on the result screen.
type Result struct {
	Classification typology.Classification

	// Primary is the resolved primary type, falling back when unknown.
	Primary quizdata.YokaiType

	// Secondary is nil when the secondary code has no entry.
	Secondary *quizdata.YokaiType

	// Answered is the number of answers the classification is based on.
	Answered int
}

// BuildResult resolves a classification against the yokai table.
func BuildResult(c typology.Classification, table *quizdata.Table) *Result {
	r := &Result{
		Classification: c,
		Primary:        table.Resolve(c.Primary),
	}
	if y, ok := table.Lookup(c.Secondary); ok {
		r.Secondary = &y
	}
	return r
}
