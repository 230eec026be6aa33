package mna

import (
	"math"
	"testing"

	"dccircuit/dcerr"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestSolveSingleLoop checks a single resistor driven by a 10V source
// across two nodes (ground at node 0): I = V/R, and the source current
// convention is from NPlus through the source to NMinus.
func TestSolveSingleLoop(t *testing.T) {
	elements := []Element{
		VSource{ID: "V1", NPlus: 1, NMinus: 0, Volts: 10, Independent: true},
		Resistor{N1: 1, N2: 0, Ohms: 5},
	}
	res, err := Solve(elements, 2, 0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !approxEqual(res.NodeVoltage[1], 10, 1e-9) {
		t.Errorf("node 1 voltage = %f, want 10", res.NodeVoltage[1])
	}
	if !approxEqual(res.NodeVoltage[0], 0, 1e-9) {
		t.Errorf("ground voltage = %f, want 0", res.NodeVoltage[0])
	}
	// current flows from + into the source and out at -, i.e. -2A here
	// since the resistor pulls 2A out of node 1 into ground.
	if !approxEqual(res.SourceCurrent["V1"], -2, 1e-9) {
		t.Errorf("source current = %f, want -2", res.SourceCurrent["V1"])
	}
}

// TestSolveVoltageDivider checks a two-resistor divider: V1 at node 1,
// equal resistors to node 2 and ground, so node 2 sits at half V1.
func TestSolveVoltageDivider(t *testing.T) {
	elements := []Element{
		VSource{ID: "V1", NPlus: 1, NMinus: 0, Volts: 10, Independent: true},
		Resistor{N1: 1, N2: 2, Ohms: 100},
		Resistor{N1: 2, N2: 0, Ohms: 100},
	}
	res, err := Solve(elements, 3, 0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !approxEqual(res.NodeVoltage[2], 5, 1e-9) {
		t.Errorf("node 2 voltage = %f, want 5", res.NodeVoltage[2])
	}
}

// TestSolveCurrentSource checks a current source driving a single
// resistor to ground: V = I*R.
func TestSolveCurrentSource(t *testing.T) {
	elements := []Element{
		ISource{ID: "I1", NFrom: 0, NTo: 1, Amps: 2, Independent: true},
		Resistor{N1: 1, N2: 0, Ohms: 10},
	}
	res, err := Solve(elements, 2, 0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !approxEqual(res.NodeVoltage[1], 20, 1e-9) {
		t.Errorf("node 1 voltage = %f, want 20", res.NodeVoltage[1])
	}
}

// TestSolveAmmeterBranchCurrent checks that an ammeter, modeled as a
// zero-volt VSource, reports the branch current flowing through it.
func TestSolveAmmeterBranchCurrent(t *testing.T) {
	elements := []Element{
		VSource{ID: "V1", NPlus: 1, NMinus: 0, Volts: 10, Independent: true},
		VSource{ID: "A1", NPlus: 1, NMinus: 2, Volts: 0, Independent: false},
		Resistor{N1: 2, N2: 0, Ohms: 5},
	}
	res, err := Solve(elements, 3, 0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !approxEqual(res.NodeVoltage[2], 10, 1e-9) {
		t.Errorf("node 2 voltage = %f, want 10", res.NodeVoltage[2])
	}
	// 2A flows from node 1 through the ammeter to node 2, i.e. from its
	// NPlus to its NMinus, so the reported current is +2A.
	if !approxEqual(res.SourceCurrent["A1"], 2, 1e-9) {
		t.Errorf("ammeter current = %f, want 2", res.SourceCurrent["A1"])
	}
}

// TestSolveSingularSystem checks that a floating node (no path to
// ground) is reported as a singular system rather than silently
// producing garbage.
func TestSolveSingularSystem(t *testing.T) {
	elements := []Element{
		Resistor{N1: 1, N2: 2, Ohms: 5},
	}
	_, err := Solve(elements, 3, 0)
	if err == nil {
		t.Fatalf("expected a singular-system error, got nil")
	}
	var dcErr *dcerr.Error
	if !ok(err, &dcErr) {
		t.Fatalf("expected *dcerr.Error, got %T", err)
	}
	if dcErr.Kind != dcerr.KindNumeric {
		t.Errorf("error kind = %s, want %s", dcErr.Kind, dcerr.KindNumeric)
	}
}

func ok(err error, target **dcerr.Error) bool {
	e, isOk := err.(*dcerr.Error)
	if isOk {
		*target = e
	}
	return isOk
}
