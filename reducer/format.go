package reducer

import (
	"fmt"
	"strings"

	"dccircuit/tree"
)

// presentSeries renders the LaTeX-friendly "a + b + … = R" formula for
// a series collapse.
func presentSeries(atoms []*tree.Atom, result float64) string {
	parts := make([]string, len(atoms))
	for i, a := range atoms {
		parts[i] = fmt.Sprintf("%g", atomOhms(a))
	}
	return fmt.Sprintf("%s = %g", strings.Join(parts, " + "), result)
}

// presentParallel renders the "(1/a + 1/b + …)⁻¹ = R" formula for a
// parallel collapse.
func presentParallel(atoms []*tree.Atom, result float64) string {
	parts := make([]string, len(atoms))
	for i, a := range atoms {
		parts[i] = fmt.Sprintf("1/%g", atomOhms(a))
	}
	return fmt.Sprintf("(%s)⁻¹ = %g", strings.Join(parts, " + "), result)
}
