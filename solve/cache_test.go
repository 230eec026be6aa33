package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dccircuit/types"
)

func dividerCircuit() *types.Circuit {
	plus, minus := types.ID("n1"), types.ID("n2")
	return &types.Circuit{
		Vertices: []types.Vertex{vertex("n1"), vertex("n2")},
		Edges: []types.Edge{
			{ID: "V1", Kind: types.KindVSource, A: "n1", B: "n2", Volts: 10},
			{ID: "R1", Kind: types.KindResistor, A: "n1", B: "n2", Ohms: 100},
		},
		PlusRef: &plus, MinusRef: &minus,
	}
}

func TestCacheReturnsSameResultOnRepeatedSolve(t *testing.T) {
	cache := NewCache()
	c := dividerCircuit()

	first, err := cache.Solve(c, nil)
	require.NoError(t, err)
	second, err := cache.Solve(c, nil)
	require.NoError(t, err)
	assert.Same(t, first, second, "expected the cached call to return the identical *Result pointer")
}

func TestCacheDistinguishesOptions(t *testing.T) {
	cache := NewCache()
	c := dividerCircuit()

	volts := 5.0
	withExternal, err := cache.Solve(c, &Options{ExternalSupply: &volts})
	require.NoError(t, err)
	withoutExternal, err := cache.Solve(c, nil)
	require.NoError(t, err)
	assert.NotEqual(t, len(withExternal.Cases), len(withoutExternal.Cases), "expected different case counts for different options")
}

func TestNilCacheRecomputesWithoutPanicking(t *testing.T) {
	var cache *Cache
	_, err := cache.Solve(dividerCircuit(), nil)
	assert.NoError(t, err, "nil *Cache should behave like an always-miss cache")
}
