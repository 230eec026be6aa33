// Package mna assembles and solves the modified-nodal-analysis linear
// system for a flattened element list. Stamp signs are adapted from
// the teacher's mna/matrix.go (RuiCat-circuit)
// StampConductance/StampCurrentSource/StampVoltageSource, dropping the
// nonlinear/time-stepping stamps that repo carries for transient
// simulation, which this pure-DC solver has no use for.
package mna

import "dccircuit/types"

// Element is implemented by exactly Resistor, VSource, and ISource, a
// tagged sum rather than a polymorphic dictionary.
type Element interface {
	isElement()
}

// Resistor is a linear conductance between two node indices.
type Resistor struct {
	ID     types.ID
	N1, N2 int
	Ohms   float64
}

func (Resistor) isElement() {}

// VSource is a branch held at a fixed voltage, contributing one
// auxiliary current unknown. Ammeters are modeled as VSource with
// Volts=0 and Independent=false, so their branch current is
// recoverable from the augmented unknowns.
type VSource struct {
	ID          types.ID
	NPlus, NMinus int
	Volts       float64
	Independent bool
}

func (VSource) isElement() {}

// ISource injects a fixed current from NFrom to NTo.
type ISource struct {
	ID          types.ID
	NFrom, NTo  int
	Amps        float64
	Independent bool
}

func (ISource) isElement() {}
