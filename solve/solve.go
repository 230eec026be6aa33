// Package solve is the library's process-facing façade: the three
// entry points Canonicalize, Reduce, and Solve, each tying the lower
// packages (graph, reducer, mna, superposition, label) together the
// way the teacher's cmd/main.go ties its Load/Build/Run steps into one
// call, minus any file or process concerns — those live one layer up,
// in cmd/dccircuit.
package solve

import (
	"dccircuit/graph"
	"dccircuit/label"
	"dccircuit/mna"
	"dccircuit/reducer"
	"dccircuit/superposition"
	"dccircuit/types"
)

// Canonicalize exposes the canonicalizer directly.
func Canonicalize(c *types.Circuit) (*graph.Graph, error) {
	return graph.Canonicalize(c)
}

// Reduce canonicalizes c, rewrites it to a series/parallel tree, and
// builds the full level-by-level reduction trace.
func Reduce(c *types.Circuit) ([]reducer.Level, error) {
	g, err := graph.Canonicalize(c)
	if err != nil {
		return nil, err
	}
	expr, err := reducer.Reduce(g)
	if err != nil {
		return nil, err
	}
	return reducer.Trace(expr)
}

// Options configures Solve. ExternalSupply, when non-nil, injects an
// additional independent voltage source between the + and − terminals
// with id superposition.ExternalSupplyID.
type Options struct {
	ExternalSupply *float64
}

// ResistorResult is one resistor's final derived quantities and its
// presentation index.
type ResistorResult struct {
	Index   int
	Ohms    float64
	Current float64
	Voltage float64
}

// AmmeterResult is one ammeter's final derived current and
// presentation index.
type AmmeterResult struct {
	Index   int
	Current float64
}

// Result is the end-to-end Solve outcome: the canonical graph, the
// superposition total and per-source cases, and per-resistor/ammeter
// presentation results.
type Result struct {
	Graph     *graph.Graph
	Total     *superposition.Total
	Cases     []superposition.Case
	Resistors map[types.ID]ResistorResult
	Ammeters  map[types.ID]AmmeterResult
}

// Solve runs the full pipeline: canonicalize, build the MNA element
// list, run the superposition driver, and assign presentation indices.
func Solve(c *types.Circuit, opts *Options) (*Result, error) {
	g, err := graph.Canonicalize(c)
	if err != nil {
		return nil, err
	}

	elements := toMNAElements(g)

	labels, err := label.Assign(g.Elements)
	if err != nil {
		return nil, err
	}

	var external *float64
	if opts != nil {
		external = opts.ExternalSupply
	}

	total, cases, err := superposition.Solve(elements, g.NumNodes, int(g.Minus), int(g.Plus), external)
	if err != nil {
		return nil, err
	}

	resistors := make(map[types.ID]ResistorResult)
	ammeters := make(map[types.ID]AmmeterResult)
	for _, e := range g.Elements {
		switch e.Kind {
		case types.KindResistor:
			q := total.Resistors[e.ID]
			resistors[e.ID] = ResistorResult{
				Index: labels.Resistors[e.ID], Ohms: e.Ohms,
				Current: q.Current, Voltage: q.Voltage,
			}
		case types.KindAmmeter:
			ammeters[e.ID] = AmmeterResult{
				Index: labels.Ammeters[e.ID], Current: total.Result.SourceCurrent[e.ID],
			}
		}
	}

	return &Result{
		Graph: g, Total: total, Cases: cases,
		Resistors: resistors, Ammeters: ammeters,
	}, nil
}

// toMNAElements translates canonical graph elements into the MNA
// element list, modeling each ammeter as a non-independent zero-volt
// source.
func toMNAElements(g *graph.Graph) []mna.Element {
	elements := make([]mna.Element, 0, len(g.Elements))
	for _, e := range g.Elements {
		switch e.Kind {
		case types.KindResistor:
			elements = append(elements, mna.Resistor{ID: e.ID, N1: int(e.A), N2: int(e.B), Ohms: e.Ohms})
		case types.KindAmmeter:
			elements = append(elements, mna.VSource{ID: e.ID, NPlus: int(e.A), NMinus: int(e.B), Volts: 0, Independent: false})
		case types.KindVSource:
			elements = append(elements, mna.VSource{ID: e.ID, NPlus: int(e.A), NMinus: int(e.B), Volts: e.Volts, Independent: true})
		case types.KindISource:
			elements = append(elements, mna.ISource{ID: e.ID, NFrom: int(e.A), NTo: int(e.B), Amps: e.Amps, Independent: true})
		}
	}
	return elements
}
