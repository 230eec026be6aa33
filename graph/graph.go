// Package graph canonicalizes an editor-form circuit by contracting
// wire edges with a union-find, assigning compact super-node indices,
// and resolving the +/− reference terminals. It is grounded on the
// teacher's wire-group scan in graph/graph.go (RuiCat-circuit),
// simplified from that repo's GND/floating-pin special cases to a
// pure-DC model with no separate ground pin.
package graph

import (
	"dccircuit/dcerr"
	"dccircuit/types"
	"dccircuit/unionfind"
)

// NodeIndex is a compact, 0-based super-node index assigned in
// first-seen representative order.
type NodeIndex int

// Element is a non-wire edge translated to super-node indices. Kind
// selects which of Ohms/Volts/Amps is meaningful, mirroring
// types.Edge.
type Element struct {
	ID    types.ID
	Label string
	Kind  types.EdgeKind
	A, B  NodeIndex
	Ohms  float64
	Volts float64
	Amps  float64
}

// Graph is the canonical form: a compact node space, the resolved
// terminal pair, and the surviving non-wire elements in original edge
// order.
type Graph struct {
	NumNodes    int
	Plus, Minus NodeIndex
	Elements    []Element
	VertexIndex map[types.ID]NodeIndex
}

// Canonicalize contracts every wire edge via union-find, assigns
// super-node indices, resolves terminals, and translates all non-wire
// edges. It fails if fewer than two distinct nodes remain, if an edge
// references a node no longer present, if the + and − terminals end
// up on the same super-node, if a nonzero voltage source is shorted by
// wire, or if no non-wire components survive contraction.
func Canonicalize(c *types.Circuit) (*Graph, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dsu := unionfind.New[types.ID]()
	for _, v := range c.Vertices {
		dsu.Add(v.ID)
	}
	for _, e := range c.Edges {
		if e.Kind == types.KindWire {
			dsu.Union(e.A, e.B)
		}
	}
	partition := dsu.Partition()
	numNodes := 0
	for _, idx := range partition {
		if idx+1 > numNodes {
			numNodes = idx + 1
		}
	}
	if numNodes < 2 {
		return nil, dcerr.StructuralError("too few distinct nodes")
	}

	plusID, minusID, err := c.ResolveTerminals()
	if err != nil {
		return nil, err
	}
	plus, ok1 := partition[plusID]
	minus, ok2 := partition[minusID]
	if !ok1 || !ok2 {
		return nil, dcerr.StructuralError("edge references a missing node")
	}
	if plus == minus {
		return nil, dcerr.StructuralError("terminals are shorted by wire")
	}

	var elements []Element
	for _, e := range c.Edges {
		if e.Kind == types.KindWire {
			continue
		}
		a, b := NodeIndex(partition[e.A]), NodeIndex(partition[e.B])
		if a == b {
			if e.Kind == types.KindVSource && e.Volts != 0 {
				return nil, dcerr.StructuralError("voltage source %s shorted by wire", e.ID)
			}
			continue // dropped: coincident endpoints contribute nothing
		}
		elements = append(elements, Element{
			ID: e.ID, Label: e.Label, Kind: e.Kind,
			A: a, B: b, Ohms: e.Ohms, Volts: e.Volts, Amps: e.Amps,
		})
	}
	if len(elements) == 0 {
		return nil, dcerr.StructuralError("no components")
	}

	vertexIndex := make(map[types.ID]NodeIndex, len(partition))
	for id, idx := range partition {
		vertexIndex[id] = NodeIndex(idx)
	}

	return &Graph{
		NumNodes:    numNodes,
		Plus:        NodeIndex(plus),
		Minus:       NodeIndex(minus),
		Elements:    elements,
		VertexIndex: vertexIndex,
	}, nil
}
