package superposition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dccircuit/mna"
	"dccircuit/types"
)

func findResistor(elements []mna.Element, id types.ID) mna.Resistor {
	for _, e := range elements {
		if r, ok := e.(mna.Resistor); ok && r.ID == id {
			return r
		}
	}
	return mna.Resistor{}
}

// TestSolveSumsToSingleSolve checks that the superposed total of a
// two-independent-source circuit equals a single MNA solve of the
// fully-active circuit.
func TestSolveSumsToSingleSolve(t *testing.T) {
	elements := []mna.Element{
		mna.VSource{ID: "V1", NPlus: 1, NMinus: 0, Volts: 10, Independent: true},
		mna.ISource{ID: "I1", NFrom: 0, NTo: 2, Amps: 1, Independent: true},
		mna.Resistor{ID: "R1", N1: 1, N2: 2, Ohms: 100},
		mna.Resistor{ID: "R2", N1: 2, N2: 0, Ohms: 50},
	}

	total, cases, err := Solve(elements, 3, 0, 1, nil)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	full, err := mna.Solve(elements, 3, 0)
	require.NoError(t, err, "direct solve failed")
	for i := range full.NodeVoltage {
		assert.InDelta(t, full.NodeVoltage[i], total.Result.NodeVoltage[i], 1e-9, "node %d mismatch", i)
	}
	for id, c := range full.SourceCurrent {
		assert.InDelta(t, c, total.Result.SourceCurrent[id], 1e-9, "source %s mismatch", id)
	}
	for id, q := range total.Resistors {
		r := findResistor(elements, id)
		want := (full.NodeVoltage[r.N1] - full.NodeVoltage[r.N2]) / r.Ohms
		assert.InDelta(t, want, q.Current, 1e-9, "resistor %s mismatch", id)
	}
}

// TestSolveNoIndependentSources checks that a circuit with no
// independent source is rejected as a structural error.
func TestSolveNoIndependentSources(t *testing.T) {
	elements := []mna.Element{
		mna.Resistor{ID: "R1", N1: 0, N2: 1, Ohms: 10},
	}
	_, _, err := Solve(elements, 2, 0, 0, nil)
	assert.Error(t, err)
}

// TestSolveExternalSupply checks that an externally-supplied U_s is
// injected and contributes its own case.
func TestSolveExternalSupply(t *testing.T) {
	elements := []mna.Element{
		mna.Resistor{ID: "R1", N1: 1, N2: 0, Ohms: 10},
	}
	external := 5.0
	total, cases, err := Solve(elements, 2, 0, 1, &external)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, ExternalSupplyID, cases[0].Source)
	assert.InDelta(t, 5, total.Result.NodeVoltage[1], 1e-9)
}
