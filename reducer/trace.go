package reducer

import (
	"dccircuit/config"
	"dccircuit/dcerr"
	"dccircuit/tree"
	"dccircuit/types"
)

// Reduction records one collapsed subtree within a level: its kind,
// nesting depth, the generated equivalent's display name, the
// resulting ohms, the ohms it was built from, and a presentation
// string suitable for a LaTeX solution export.
type Reduction struct {
	Kind         string // "series" | "parallel"
	Depth        int
	Name         types.ID
	ResultOhms   float64
	InputOhms    []float64
	Presentation string
}

// Level is one step of the reduction trace: the circuit's tree after
// applying this level's reductions, and the reductions that produced
// it from the previous level.
type Level struct {
	Index      int
	Tree       tree.Node
	Reductions []Reduction
}

// Trace builds the ordered list of reduction levels: level 0 is the
// untouched tree; each subsequent level collapses every reducible
// subtree whose nesting depth equals the current deepest candidate
// depth, synthesizing a generated equivalent resistor for each. It
// stops when no reducible subtree remains, or reports a
// short-circuit/ceiling error alongside the levels computed so far so
// callers still get the partial trace.
func Trace(root tree.Node) ([]Level, error) {
	levels := []Level{{Index: 0, Tree: tree.Flatten(root)}}
	current := levels[0].Tree
	counter := 0

	for idx := 1; idx <= config.MaxReductionLevels; idx++ {
		depth, found := maxCandidateDepth(current, 0)
		if !found {
			return levels, nil
		}
		next, reductions, err := collapseAtDepth(current, 0, depth, idx, &counter)
		if err != nil {
			return levels, err
		}
		next = tree.Flatten(next)
		levels = append(levels, Level{Index: idx, Tree: next, Reductions: reductions})
		current = next
	}
	if _, found := maxCandidateDepth(current, 0); found {
		return levels, dcerr.ReducibilityError("reduction limit reached")
	}
	return levels, nil
}

// hasRun reports whether children contains a run of ≥2 consecutive
// collapsible (resistor/ammeter) atoms.
func hasRun(children []tree.Node) bool {
	run := 0
	for _, c := range children {
		if isCollapsible(c) {
			run++
			if run >= 2 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// allCollapsible reports whether every branch is a collapsible
// (resistor/ammeter) atom.
func allCollapsible(branches []tree.Node) bool {
	for _, b := range branches {
		if !isCollapsible(b) {
			return false
		}
	}
	return true
}

// maxCandidateDepth returns the deepest nesting level at which a
// reducible subtree (series run or whole pure-atomic parallel block)
// exists.
func maxCandidateDepth(n tree.Node, depth int) (int, bool) {
	best, found := -1, false
	consider := func(d int, ok bool) {
		if ok && d > best {
			best, found = d, true
		}
	}
	switch v := n.(type) {
	case *tree.Series:
		consider(depth, hasRun(v.Children))
		for _, c := range v.Children {
			d, ok := maxCandidateDepth(c, depth+1)
			consider(d, ok)
		}
	case *tree.Parallel:
		consider(depth, len(v.Branches) >= 2 && allCollapsible(v.Branches))
		for _, b := range v.Branches {
			d, ok := maxCandidateDepth(b, depth+1)
			consider(d, ok)
		}
	}
	return best, found
}

// collapseAtDepth rewrites every reducible subtree at exactly target
// depth into a generated equivalent resistor atom, leaving everything
// else untouched, and records one Reduction per collapse.
func collapseAtDepth(n tree.Node, depth, target, level int, counter *int) (tree.Node, []Reduction, error) {
	if depth == target {
		switch v := n.(type) {
		case *tree.Series:
			return collapseSeriesRuns(v, depth, level, counter)
		case *tree.Parallel:
			if len(v.Branches) >= 2 && allCollapsible(v.Branches) {
				atoms := make([]*tree.Atom, len(v.Branches))
				inputs := make([]float64, len(v.Branches))
				for i, b := range v.Branches {
					atoms[i] = b.(*tree.Atom)
					inputs[i] = atomOhms(atoms[i])
				}
				result, err := parallelEquivalent(atoms)
				if err != nil {
					return nil, nil, err
				}
				*counter++
				name := types.EquivID(level, *counter)
				red := Reduction{
					Kind: "parallel", Depth: depth, Name: name,
					ResultOhms: result, InputOhms: inputs,
					Presentation: presentParallel(atoms, result),
				}
				return &tree.Atom{ID: name, Name: string(name), Kind: tree.AtomResistor, Ohms: result, Generated: true}, []Reduction{red}, nil
			}
		}
		return n, nil, nil
	}

	switch v := n.(type) {
	case *tree.Series:
		newChildren := make([]tree.Node, len(v.Children))
		var all []Reduction
		for i, c := range v.Children {
			nc, reds, err := collapseAtDepth(c, depth+1, target, level, counter)
			if err != nil {
				return nil, nil, err
			}
			newChildren[i] = nc
			all = append(all, reds...)
		}
		return &tree.Series{ID: v.ID, Children: newChildren}, all, nil
	case *tree.Parallel:
		newBranches := make([]tree.Node, len(v.Branches))
		var all []Reduction
		for i, b := range v.Branches {
			nb, reds, err := collapseAtDepth(b, depth+1, target, level, counter)
			if err != nil {
				return nil, nil, err
			}
			newBranches[i] = nb
			all = append(all, reds...)
		}
		return &tree.Parallel{ID: v.ID, Branches: newBranches}, all, nil
	default:
		return n, nil, nil
	}
}

// collapseSeriesRuns replaces every maximal run of ≥2 collapsible
// atoms within a Series's children with a single generated equivalent.
func collapseSeriesRuns(v *tree.Series, depth, level int, counter *int) (tree.Node, []Reduction, error) {
	var newChildren []tree.Node
	var reductions []Reduction
	i := 0
	for i < len(v.Children) {
		if !isCollapsible(v.Children[i]) {
			newChildren = append(newChildren, v.Children[i])
			i++
			continue
		}
		j := i
		for j < len(v.Children) && isCollapsible(v.Children[j]) {
			j++
		}
		if j-i < 2 {
			newChildren = append(newChildren, v.Children[i])
			i++
			continue
		}
		atoms := make([]*tree.Atom, 0, j-i)
		inputs := make([]float64, 0, j-i)
		for k := i; k < j; k++ {
			a := v.Children[k].(*tree.Atom)
			atoms = append(atoms, a)
			inputs = append(inputs, atomOhms(a))
		}
		result, err := seriesEquivalent(atoms)
		if err != nil {
			return nil, nil, err
		}
		*counter++
		name := types.EquivID(level, *counter)
		reductions = append(reductions, Reduction{
			Kind: "series", Depth: depth, Name: name,
			ResultOhms: result, InputOhms: inputs,
			Presentation: presentSeries(atoms, result),
		})
		newChildren = append(newChildren, &tree.Atom{ID: name, Name: string(name), Kind: tree.AtomResistor, Ohms: result, Generated: true})
		i = j
	}
	return &tree.Series{ID: v.ID, Children: newChildren}, reductions, nil
}
