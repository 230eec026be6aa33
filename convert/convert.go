// Package convert translates between the canonicalized edge graph and
// the series/parallel tree form. ElementToAtom is the graph-to-tree
// direction the reducer builds on; ToGraph is the tree-to-graph
// direction the CLI uses to turn a decoded Circuit-JSON tree into an
// editor-form circuit. Grounded on the teacher's
// graph/graph.go Element/Vertex shapes, generalized to walk a tree
// instead of an edge list.
package convert

import (
	"dccircuit/graph"
	"dccircuit/tree"
	"dccircuit/types"
)

// ElementToAtom maps a canonicalized graph element to the tree atom it
// corresponds to.
func ElementToAtom(e graph.Element) *tree.Atom {
	a := &tree.Atom{ID: e.ID, Name: e.Label}
	switch e.Kind {
	case types.KindResistor:
		a.Kind = tree.AtomResistor
		a.Ohms = e.Ohms
	case types.KindAmmeter:
		a.Kind = tree.AtomAmmeter
	case types.KindVSource:
		a.Kind = tree.AtomVSource
		a.Volts = e.Volts
	case types.KindISource:
		a.Kind = tree.AtomISource
		a.Amps = e.Amps
	}
	return a
}

// ToGraph expands a series/parallel tree back into an editor-form
// circuit: a fresh pair of terminal vertices, one fresh intermediate
// vertex per series join, and one edge per atom. Parallel branches
// share their enclosing pair of endpoint vertices, and the two terminal
// vertices become the circuit's explicit + and − references.
func ToGraph(n tree.Node) *types.Circuit {
	seq := types.NewIDSeq("n")
	plus := seq.Next()
	minus := seq.Next()

	c := &types.Circuit{
		Vertices: []types.Vertex{{ID: plus}, {ID: minus}},
		PlusRef:  &plus,
		MinusRef: &minus,
	}
	emit(c, n, plus, minus, seq)
	return c
}

func emit(c *types.Circuit, n tree.Node, from, to types.ID, seq *types.IDSeq) {
	switch v := n.(type) {
	case *tree.Atom:
		c.Edges = append(c.Edges, atomEdge(v, from, to))
	case *tree.Series:
		cur := from
		for i, child := range v.Children {
			next := to
			if i != len(v.Children)-1 {
				next = seq.Next()
				c.Vertices = append(c.Vertices, types.Vertex{ID: next})
			}
			emit(c, child, cur, next, seq)
			cur = next
		}
	case *tree.Parallel:
		for _, b := range v.Branches {
			emit(c, b, from, to, seq)
		}
	}
}

func atomEdge(a *tree.Atom, from, to types.ID) types.Edge {
	e := types.Edge{ID: a.ID, Label: a.Name, A: from, B: to}
	switch a.Kind {
	case tree.AtomResistor:
		e.Kind = types.KindResistor
		e.Ohms = a.Ohms
	case tree.AtomAmmeter:
		e.Kind = types.KindAmmeter
	case tree.AtomVSource:
		e.Kind = types.KindVSource
		e.Volts = a.Volts
	case tree.AtomISource:
		e.Kind = types.KindISource
		e.Amps = a.Amps
	}
	return e
}
