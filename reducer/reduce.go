// Package reducer rewrites a canonicalized edge multigraph into a
// series/parallel tree expression, and separately drives a
// level-by-level reduction trace over an already-built tree for
// presentation purposes. Both are new relative to the teacher, which
// has no series/parallel collapsing; the iteration-by-index
// determinism discipline is grounded on the teacher's per-element
// dispatch loops in mna/solve.go (MnaStamp, MnaDoStep: always walk
// ElementList by ascending id).
package reducer

import (
	"dccircuit/config"
	"dccircuit/convert"
	"dccircuit/dcerr"
	"dccircuit/graph"
	"dccircuit/tree"
	"dccircuit/types"
)

type orientedEdge struct {
	id       types.ID
	label    string
	from, to graph.NodeIndex
	expr     tree.Node
}

// Reduce rewrites the canonical graph's elements into a single tree
// expression oriented +→−, or reports why it isn't series/parallel
// reducible with respect to those terminals.
func Reduce(g *graph.Graph) (tree.Node, error) {
	edges := make([]orientedEdge, 0, len(g.Elements))
	for _, e := range g.Elements {
		edges = append(edges, orientedEdge{
			id: e.ID, label: e.Label, from: e.A, to: e.B, expr: convert.ElementToAtom(e),
		})
	}

	seriesSeq := types.NewIDSeq("s")
	parallelSeq := types.NewIDSeq("p")

	iter := 0
	for {
		if iter >= config.MaxRewriteIterations {
			return nil, dcerr.ReducibilityError("reduction limit reached")
		}
		iter++
		if collapseParallel(&edges, parallelSeq) {
			continue
		}
		if collapseOneSeries(&edges, g.Plus, g.Minus, seriesSeq) {
			continue
		}
		break // fixpoint: neither rule applies
	}

	if len(edges) != 1 {
		return nil, dcerr.ReducibilityError("not reducible by series/parallel")
	}
	e := edges[0]
	switch {
	case e.from == g.Plus && e.to == g.Minus:
		return tree.Flatten(e.expr), nil
	case e.from == g.Minus && e.to == g.Plus:
		return tree.Flatten(tree.Reverse(e.expr)), nil
	default:
		return nil, dcerr.ReducibilityError("not reducible by series/parallel")
	}
}

// collapseParallel groups edges sharing an unordered endpoint pair, in
// first-occurrence order, and replaces each group of ≥2 with a single
// canonically-oriented parallel edge. Reports whether it changed anything.
func collapseParallel(edges *[]orientedEdge, seq *types.IDSeq) bool {
	type pairKey struct{ u, v graph.NodeIndex }
	keyOf := func(a, b graph.NodeIndex) pairKey {
		if a <= b {
			return pairKey{a, b}
		}
		return pairKey{b, a}
	}

	groups := map[pairKey][]int{}
	var order []pairKey
	for i, e := range *edges {
		k := keyOf(e.from, e.to)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	changed := false
	drop := make(map[int]bool)
	var additions []orientedEdge
	for _, k := range order {
		idxs := groups[k]
		if len(idxs) < 2 {
			continue
		}
		changed = true
		u, v := k.u, k.v
		branches := make([]tree.Node, 0, len(idxs))
		var label string
		for _, idx := range idxs {
			e := (*edges)[idx]
			if label == "" {
				label = e.label
			}
			switch {
			case e.from == u && e.to == v:
				branches = append(branches, e.expr)
			default: // e.from == v && e.to == u
				branches = append(branches, tree.Reverse(e.expr))
			}
			drop[idx] = true
		}
		additions = append(additions, orientedEdge{
			id: seq.Next(), label: label, from: u, to: v,
			expr: &tree.Parallel{Branches: branches},
		})
	}
	if !changed {
		return false
	}
	kept := make([]orientedEdge, 0, len(*edges))
	for i, e := range *edges {
		if !drop[i] {
			kept = append(kept, e)
		}
	}
	kept = append(kept, additions...)
	*edges = kept
	return true
}

// collapseOneSeries finds the lowest-indexed non-terminal node with
// degree exactly 2 whose neighbors are distinct, and collapses it into
// a single series edge between those neighbors. Reports whether it
// found and collapsed one.
func collapseOneSeries(edges *[]orientedEdge, plus, minus graph.NodeIndex, seq *types.IDSeq) bool {
	maxNode := 0
	for _, e := range *edges {
		if int(e.from) > maxNode {
			maxNode = int(e.from)
		}
		if int(e.to) > maxNode {
			maxNode = int(e.to)
		}
	}
	adjacency := map[graph.NodeIndex][]int{}
	for i, e := range *edges {
		adjacency[e.from] = append(adjacency[e.from], i)
		if e.to != e.from {
			adjacency[e.to] = append(adjacency[e.to], i)
		}
	}

	for n := 0; n <= maxNode; n++ {
		node := graph.NodeIndex(n)
		if node == plus || node == minus {
			continue
		}
		incident := adjacency[node]
		if len(incident) != 2 {
			continue
		}
		e1idx, e2idx := incident[0], incident[1]
		e1, e2 := (*edges)[e1idx], (*edges)[e2idx]
		other1 := otherEnd(e1, node)
		other2 := otherEnd(e2, node)
		if other1 == other2 {
			continue // a == b: left for the parallel rule
		}
		a, b := other1, other2
		expr1 := orientTo(e1, a, node)
		expr2 := orientTo(e2, node, b)

		kept := make([]orientedEdge, 0, len(*edges)-1)
		for i, e := range *edges {
			if i != e1idx && i != e2idx {
				kept = append(kept, e)
			}
		}
		kept = append(kept, orientedEdge{
			id: seq.Next(), from: a, to: b,
			expr: &tree.Series{Children: []tree.Node{expr1, expr2}},
		})
		*edges = kept
		return true
	}
	return false
}

func otherEnd(e orientedEdge, n graph.NodeIndex) graph.NodeIndex {
	if e.from == n {
		return e.to
	}
	return e.from
}

func orientTo(e orientedEdge, wantFrom, wantTo graph.NodeIndex) tree.Node {
	if e.from == wantFrom && e.to == wantTo {
		return e.expr
	}
	return tree.Reverse(e.expr)
}
