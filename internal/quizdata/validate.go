package quizdata

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/yokai/internal/typology"
)

// ValidationError lists every structural problem found in the quiz data.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quiz data validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validatePool performs all structural checks on a question pool. Sub-pools
// smaller than perAxis are problems when strict, otherwise they are returned
// as warnings.
func validatePool(pool Pool, perAxis int, strict bool) (problems, warnings []string) {
	seen := make(map[string]bool, len(pool))
	for i, q := range pool {
		label := q.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		if q.ID == "" {
			problems = append(problems, fmt.Sprintf("question %s: empty id", label))
		} else if seen[q.ID] {
			problems = append(problems, fmt.Sprintf("duplicate question id: %q", q.ID))
		}
		seen[q.ID] = true

		if strings.TrimSpace(q.Prompt) == "" {
			problems = append(problems, fmt.Sprintf("question %s: empty prompt", label))
		}
		for j, o := range q.Options {
			if strings.TrimSpace(o.Text) == "" {
				problems = append(problems, fmt.Sprintf("question %s option %d: empty text", label, j))
			}
		}

		a0, ok0 := q.Options[0].Letter.Axis()
		a1, ok1 := q.Options[1].Letter.Axis()
		switch {
		case !ok0 || !ok1:
			problems = append(problems, fmt.Sprintf("question %s: invalid option letter", label))
		case a0 != a1:
			problems = append(problems, fmt.Sprintf("question %s: options %s and %s are on different axes",
				label, q.Options[0].Letter, q.Options[1].Letter))
		case q.Options[0].Letter == q.Options[1].Letter:
			problems = append(problems, fmt.Sprintf("question %s: both options score %s", label, q.Options[0].Letter))
		}
	}

	for a, sub := range pool.ByAxis() {
		if len(sub) >= perAxis {
			continue
		}
		msg := fmt.Sprintf("axis %s has %d questions, need %d", typology.Axis(a), len(sub), perAxis)
		if strict {
			problems = append(problems, msg)
		} else {
			warnings = append(warnings, msg)
		}
	}
	return problems, warnings
}

// validateTable checks that every type code resolves and the fallback exists.
func validateTable(t *Table) []string {
	var problems []string
	for _, c := range typology.AllCodes() {
		y, ok := t.Lookup(c)
		if !ok {
			problems = append(problems, fmt.Sprintf("type %s is missing", c))
			continue
		}
		if strings.TrimSpace(y.Name) == "" {
			problems = append(problems, fmt.Sprintf("type %s: empty name", c))
		}
	}
	if !t.fallback.Valid() {
		problems = append(problems, fmt.Sprintf("fallback %q is not a type code", t.fallback))
	} else if _, ok := t.Lookup(t.fallback); !ok {
		problems = append(problems, fmt.Sprintf("fallback type %s is missing", t.fallback))
	}
	return problems
}

func validateVersion(asset, v string) []string {
	if !semver.IsValid(v) {
		return []string{fmt.Sprintf("%s: version %q is not valid semver", asset, v)}
	}
	return nil
}
