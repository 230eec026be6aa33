// Package label assigns stable presentation indices to resistors and
// ammeters: an explicit label matching a recognized pattern claims its
// index, everything else is auto-numbered in visitation order. regexp
// is the idiomatic stdlib tool for the four recognized literal forms;
// no example repo in the pack ships a scanner or parser-combinator
// library that would better fit four fixed literal forms.
package label

import (
	"regexp"
	"strconv"

	"dccircuit/dcerr"
	"dccircuit/graph"
	"dccircuit/types"
)

var (
	resistorPattern = regexp.MustCompile(`^R(?:(\d+)|_(\d+)|\{(\d+)\}|_\{(\d+)\})$`)
	ammeterPattern  = regexp.MustCompile(`^A(?:(\d+)|_(\d+)|\{(\d+)\}|_\{(\d+)\})$`)
)

// Assignment maps an element id to its presentation index.
type Assignment struct {
	Resistors map[types.ID]int
	Ammeters  map[types.ID]int
}

// Assign walks elements in order and assigns resistor/ammeter indices:
// an explicit label matching R<d>/R_<d>/R{<d>}/R_{<d>} (A for
// ammeters) claims that index; duplicate claims or a label that
// starts with R/A but doesn't match any recognized pattern are errors;
// everything else takes the smallest unclaimed positive integer in
// visitation order. Generated equivalents (tree.Atom.Generated, not
// modeled here since this operates on the canonical graph) are
// excluded by the caller before invoking Assign, unless requested.
func Assign(elements []graph.Element) (*Assignment, error) {
	result := &Assignment{Resistors: map[types.ID]int{}, Ammeters: map[types.ID]int{}}

	resistorClaims := map[int]types.ID{}
	ammeterClaims := map[int]types.ID{}
	var unclaimedResistors, unclaimedAmmeters []types.ID

	for _, e := range elements {
		switch e.Kind {
		case types.KindResistor:
			n, claimed, err := claim(resistorPattern, e.Label, "R")
			if err != nil {
				return nil, dcerr.LabelingError("resistor %s: %s", e.ID, err)
			}
			if !claimed {
				unclaimedResistors = append(unclaimedResistors, e.ID)
				continue
			}
			if prior, dup := resistorClaims[n]; dup {
				return nil, dcerr.LabelingError("resistors %s and %s both claim index R%d", prior, e.ID, n)
			}
			resistorClaims[n] = e.ID
			result.Resistors[e.ID] = n
		case types.KindAmmeter:
			n, claimed, err := claim(ammeterPattern, e.Label, "A")
			if err != nil {
				return nil, dcerr.LabelingError("ammeter %s: %s", e.ID, err)
			}
			if !claimed {
				unclaimedAmmeters = append(unclaimedAmmeters, e.ID)
				continue
			}
			if prior, dup := ammeterClaims[n]; dup {
				return nil, dcerr.LabelingError("ammeters %s and %s both claim index A%d", prior, e.ID, n)
			}
			ammeterClaims[n] = e.ID
			result.Ammeters[e.ID] = n
		}
	}

	fillUnclaimed(result.Resistors, resistorClaims, unclaimedResistors)
	fillUnclaimed(result.Ammeters, ammeterClaims, unclaimedAmmeters)
	return result, nil
}

// claim reports the index a label claims under pattern, or
// claimed=false if label doesn't start with prefix at all (meaning:
// not an attempt to claim, fall back to auto-numbering). A label that
// starts with prefix but fails to match the pattern is an error.
func claim(pattern *regexp.Regexp, label, prefix string) (n int, claimed bool, err error) {
	if label == "" {
		return 0, false, nil
	}
	m := pattern.FindStringSubmatch(label)
	if m == nil {
		if len(label) > 0 && label[0] == prefix[0] {
			return 0, false, &invalidLabelError{label: label}
		}
		return 0, false, nil
	}
	var digits string
	for _, g := range m[1:] {
		if g != "" {
			digits = g
			break
		}
	}
	n, convErr := strconv.Atoi(digits)
	if convErr != nil {
		return 0, false, &invalidLabelError{label: label}
	}
	return n, true, nil
}

type invalidLabelError struct{ label string }

func (e *invalidLabelError) Error() string {
	return "invalid label " + strconv.Quote(e.label)
}

// fillUnclaimed assigns the smallest unclaimed positive integer, in
// visitation order, to each id in unclaimed.
func fillUnclaimed(assignments map[types.ID]int, claims map[int]types.ID, unclaimed []types.ID) {
	next := 1
	for _, id := range unclaimed {
		for {
			if _, taken := claims[next]; !taken {
				break
			}
			next++
		}
		assignments[id] = next
		claims[next] = id
		next++
	}
}
