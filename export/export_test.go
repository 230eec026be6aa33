package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dccircuit/reducer"
	"dccircuit/superposition"
	"dccircuit/tree"
	"dccircuit/types"
)

func TestCircuitikZRendersResistorWithLabel(t *testing.T) {
	l := Lay(&tree.Atom{ID: "r1", Name: "R1", Kind: tree.AtomResistor, Ohms: 100})
	out, err := CircuitikZ(l)
	require.NoError(t, err)
	assert.Contains(t, out, `\begin{circuitikz}`)
	assert.Contains(t, out, `\end{circuitikz}`)
	assert.Contains(t, out, "to[R, l=$R1$]", "expected a labeled resistor draw statement")
}

func TestCircuitikZFallsBackToShortForUnknownKind(t *testing.T) {
	l := &Layout{Drawables: []Drawable{{Kind: "mystery", From: Point{0, 0}, To: Point{1, 0}}}}
	out, err := CircuitikZ(l)
	require.NoError(t, err)
	assert.Contains(t, out, "to[short]", "expected a fallback short macro")
}

func TestLaTeXIncludesReductionAndTotals(t *testing.T) {
	doc := SolutionDoc{
		Levels: []reducer.Level{
			{Index: 0},
			{Index: 1, Reductions: []reducer.Reduction{{Kind: "series", Presentation: "100 + 200 = 300"}}},
		},
		Cases: []superposition.Case{
			{Source: types.ID("V1"), Resistors: map[types.ID]superposition.ResistorQty{"R1": {Current: 0.04, Voltage: 4}}},
		},
		Total: &superposition.Total{
			Resistors: map[types.ID]superposition.ResistorQty{"R1": {Current: 0.04, Voltage: 4}},
		},
	}
	out, err := LaTeX(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "100 + 200 = 300", "expected the reduction formula in output")
	assert.Contains(t, out, "Source V1", "expected the superposition case section")
	assert.Contains(t, out, "Totals", "expected a totals section")
}
