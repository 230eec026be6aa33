package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dccircuit/dcerr"
	"dccircuit/graph"
	"dccircuit/types"
)

func TestAssignClaimsExplicitLabels(t *testing.T) {
	elements := []graph.Element{
		{ID: "e1", Kind: types.KindResistor, Label: "R3"},
		{ID: "e2", Kind: types.KindResistor, Label: ""},
		{ID: "e3", Kind: types.KindResistor, Label: "R_5"},
		{ID: "e4", Kind: types.KindAmmeter, Label: "A{2}"},
	}
	a, err := Assign(elements)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Resistors["e1"])
	assert.Equal(t, 5, a.Resistors["e3"])
	// e2 is unclaimed, so it takes the smallest free index: 1
	assert.Equal(t, 1, a.Resistors["e2"])
	assert.Equal(t, 2, a.Ammeters["e4"])
}

func TestAssignAutoNumbersSkipClaimedIndices(t *testing.T) {
	elements := []graph.Element{
		{ID: "e1", Kind: types.KindResistor, Label: "R1"},
		{ID: "e2", Kind: types.KindResistor, Label: ""},
		{ID: "e3", Kind: types.KindResistor, Label: ""},
	}
	a, err := Assign(elements)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Resistors["e2"])
	assert.Equal(t, 3, a.Resistors["e3"])
}

func TestAssignDuplicateClaimFails(t *testing.T) {
	elements := []graph.Element{
		{ID: "e1", Kind: types.KindResistor, Label: "R1"},
		{ID: "e2", Kind: types.KindResistor, Label: "R_{1}"},
	}
	_, err := Assign(elements)
	assert.Error(t, err)
}

func TestAssignInvalidPatternFails(t *testing.T) {
	elements := []graph.Element{
		{ID: "e1", Kind: types.KindResistor, Label: "Rfoo"},
	}
	_, err := Assign(elements)
	require.Error(t, err)
	dcErr, ok := err.(*dcerr.Error)
	require.True(t, ok, "expected a *dcerr.Error, got %T", err)
	assert.Equal(t, dcerr.KindLabeling, dcErr.Kind)
}
