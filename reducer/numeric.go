package reducer

import (
	"dccircuit/dcerr"
	"dccircuit/tree"
)

// atomOhms returns the resistance an atomic resistor/ammeter
// contributes to a series or parallel combination: the resistor's own
// value, or zero for an ideal ammeter.
func atomOhms(a *tree.Atom) float64 {
	if a.Kind == tree.AtomAmmeter {
		return 0
	}
	return a.Ohms
}

// isCollapsible reports whether n is an atomic resistor or ammeter —
// the only kinds a numeric series/parallel collapse may absorb.
func isCollapsible(n tree.Node) bool {
	a, ok := n.(*tree.Atom)
	return ok && (a.Kind == tree.AtomResistor || a.Kind == tree.AtomAmmeter)
}

// seriesEquivalent sums the ohms of a run of collapsible atoms. A sum
// of exactly zero is a short.
func seriesEquivalent(atoms []*tree.Atom) (float64, error) {
	sum := 0.0
	for _, a := range atoms {
		sum += atomOhms(a)
	}
	if sum == 0 {
		return 0, dcerr.ShortCircuitError("zero-ohm series run creates a short")
	}
	return sum, nil
}

// parallelEquivalent computes the harmonic-sum equivalent of a set of
// collapsible atoms. Any zero-ohm branch is a short; an ammeter-only
// branch is called out by name since it is the common case in practice.
func parallelEquivalent(atoms []*tree.Atom) (float64, error) {
	invSum := 0.0
	for _, a := range atoms {
		o := atomOhms(a)
		if o == 0 {
			if a.Kind == tree.AtomAmmeter {
				return 0, dcerr.ShortCircuitError("ammeter-only parallel branch creates a short")
			}
			return 0, dcerr.ShortCircuitError("zero-ohm parallel branch creates a short")
		}
		invSum += 1.0 / o
	}
	if invSum == 0 {
		return 0, dcerr.ShortCircuitError("empty parallel branch creates a short")
	}
	return 1.0 / invSum, nil
}
