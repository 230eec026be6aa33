// Package superposition implements the per-independent-source
// decomposition: one MNA solve per independent source with every
// other independent source deactivated, summed back to the total
// solution. Grounded on the same per-element ascending-id iteration
// discipline as the teacher's mna/solve.go loops, since that repo's
// MnaDoStep always walks its element list in a fixed order; here the
// fixed order is "independent sources in first-occurrence order
// within the element list".
package superposition

import (
	"dccircuit/dcerr"
	"dccircuit/mna"
	"dccircuit/types"
)

// ExternalSupplyID is the stable reserved id for an optional
// externally-supplied voltage injected between the + and − terminals.
const ExternalSupplyID types.ID = "external_supply"

// ResistorQty is a resistor's derived current and voltage for one
// case or for the superposed total.
type ResistorQty struct {
	Current float64
	Voltage float64
}

// Case is one independent source's contribution: the MNA result with
// every other independent source deactivated, and the per-resistor
// current/voltage it alone produces.
type Case struct {
	Source    types.ID
	Result    *mna.Result
	Resistors map[types.ID]ResistorQty
}

// Total is the linear sum of every case: node potentials, source
// currents, and per-resistor current/voltage. This must equal a
// single MNA solve of the fully-active circuit.
type Total struct {
	Result    *mna.Result
	Resistors map[types.ID]ResistorQty
}

// Solve runs the superposition driver over elements (ground is the
// minus terminal's node index). If external is non-nil, it is
// injected as an additional independent voltage source with id
// ExternalSupplyID between nPlus and ground.
func Solve(elements []mna.Element, n, ground, nPlus int, external *float64) (*Total, []Case, error) {
	resistors := collectResistors(elements)

	work := elements
	if external != nil {
		work = append(append([]mna.Element{}, elements...), mna.VSource{
			ID: ExternalSupplyID, NPlus: nPlus, NMinus: ground, Volts: *external, Independent: true,
		})
	}

	var independents []types.ID
	for _, e := range work {
		switch el := e.(type) {
		case mna.VSource:
			if el.Independent {
				independents = append(independents, el.ID)
			}
		case mna.ISource:
			if el.Independent {
				independents = append(independents, el.ID)
			}
		}
	}
	if len(independents) == 0 {
		return nil, nil, dcerr.StructuralError("no independent sources")
	}

	total := &Total{
		Result:    &mna.Result{NodeVoltage: make([]float64, n), SourceCurrent: map[types.ID]float64{}},
		Resistors: map[types.ID]ResistorQty{},
	}
	cases := make([]Case, 0, len(independents))

	for _, active := range independents {
		caseElements := deactivateExcept(work, active)
		res, err := mna.Solve(caseElements, n, ground)
		if err != nil {
			if dcErr, ok := err.(*dcerr.Error); ok {
				return nil, cases, dcerr.Newf(dcErr.Kind, "source %s: %s", active, dcErr.Msg)
			}
			return nil, cases, err
		}

		caseResistors := resistorQuantities(resistors, res)
		for i := range total.Result.NodeVoltage {
			total.Result.NodeVoltage[i] += res.NodeVoltage[i]
		}
		for id, c := range res.SourceCurrent {
			total.Result.SourceCurrent[id] += c
		}
		for id, q := range caseResistors {
			prev := total.Resistors[id]
			total.Resistors[id] = ResistorQty{Current: prev.Current + q.Current, Voltage: prev.Voltage + q.Voltage}
		}

		cases = append(cases, Case{Source: active, Result: res, Resistors: caseResistors})
	}

	return total, cases, nil
}

// deactivateExcept returns a copy of elements with every independent
// source other than keep set inert: vsource → 0V, isource → 0A.
func deactivateExcept(elements []mna.Element, keep types.ID) []mna.Element {
	out := make([]mna.Element, len(elements))
	for i, e := range elements {
		switch el := e.(type) {
		case mna.VSource:
			if el.Independent && el.ID != keep {
				el.Volts = 0
			}
			out[i] = el
		case mna.ISource:
			if el.Independent && el.ID != keep {
				el.Amps = 0
			}
			out[i] = el
		default:
			out[i] = e
		}
	}
	return out
}

func collectResistors(elements []mna.Element) []mna.Resistor {
	var out []mna.Resistor
	for _, e := range elements {
		if r, ok := e.(mna.Resistor); ok {
			out = append(out, r)
		}
	}
	return out
}

func resistorQuantities(resistors []mna.Resistor, res *mna.Result) map[types.ID]ResistorQty {
	out := make(map[types.ID]ResistorQty, len(resistors))
	for _, r := range resistors {
		i := (res.NodeVoltage[r.N1] - res.NodeVoltage[r.N2]) / r.Ohms
		out[r.ID] = ResistorQty{Current: i, Voltage: i * r.Ohms}
	}
	return out
}
