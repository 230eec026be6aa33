package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dccircuit/graph"
	"dccircuit/tree"
	"dccircuit/types"
)

func TestElementToAtomMapsEachKind(t *testing.T) {
	cases := []struct {
		el   graph.Element
		kind tree.AtomKind
	}{
		{graph.Element{Kind: types.KindResistor, Ohms: 10}, tree.AtomResistor},
		{graph.Element{Kind: types.KindAmmeter}, tree.AtomAmmeter},
		{graph.Element{Kind: types.KindVSource, Volts: 5}, tree.AtomVSource},
		{graph.Element{Kind: types.KindISource, Amps: 2}, tree.AtomISource},
	}
	for _, c := range cases {
		a := ElementToAtom(c.el)
		assert.Equal(t, c.kind, a.Kind)
	}
}

// TestToGraphSeriesProducesChainedVertices checks that a series of two
// atoms expands into three vertices joined by two edges.
func TestToGraphSeriesProducesChainedVertices(t *testing.T) {
	n := &tree.Series{Children: []tree.Node{
		&tree.Atom{ID: "r1", Kind: tree.AtomResistor, Ohms: 10},
		&tree.Atom{ID: "r2", Kind: tree.AtomResistor, Ohms: 20},
	}}
	c := ToGraph(n)
	require.Len(t, c.Vertices, 3)
	require.Len(t, c.Edges, 2)
	assert.Equal(t, c.Edges[0].B, c.Edges[1].A, "series edges should share the intermediate vertex")
}

// TestToGraphParallelSharesEndpoints checks that parallel branches all
// terminate on the same two vertices.
func TestToGraphParallelSharesEndpoints(t *testing.T) {
	n := &tree.Parallel{Branches: []tree.Node{
		&tree.Atom{ID: "r1", Kind: tree.AtomResistor, Ohms: 10},
		&tree.Atom{ID: "r2", Kind: tree.AtomResistor, Ohms: 20},
	}}
	c := ToGraph(n)
	require.Len(t, c.Vertices, 2)
	for _, e := range c.Edges {
		assert.True(t, e.A == c.Vertices[0].ID && e.B == c.Vertices[1].ID, "parallel branch %s does not share endpoints", e.ID)
	}
}
