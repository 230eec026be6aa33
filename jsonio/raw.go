// Package jsonio (de)serializes the persisted Circuit-JSON tree form,
// using struct tags and encoding/json exactly as the teacher decodes
// its own ValueMap-tagged element parameters in types/element.go.
package jsonio

// RawNode is one node of the persisted tree: an atom (resistor,
// ammeter, vsource, isource), an explicit series grouping, or a
// parallel block. Which fields are meaningful depends on Kind.
type RawNode struct {
	Kind  string   `json:"kind"`
	ID    string   `json:"id,omitempty"`
	Name  string   `json:"name,omitempty"`
	Ohms  *float64 `json:"ohms,omitempty"`
	Volts *float64 `json:"volts,omitempty"`
	Amps  *float64 `json:"amps,omitempty"`

	// Items holds the child sequence of a "series" node.
	Items []RawNode `json:"items,omitempty"`
	// Branches holds the ≥2 branches of a "parallel" node.
	Branches []RawBranch `json:"branches,omitempty"`
}

// RawBranch is one parallel branch: a stable id and its own item
// sequence.
type RawBranch struct {
	ID    string    `json:"id,omitempty"`
	Items []RawNode `json:"items"`
}

// RawCircuit is the top-level persisted document: a "circuit"
// discriminant, an id, a display-only route, and either a straight
// item sequence or a u-shaped top/right/bottom sequence.
type RawCircuit struct {
	Kind  string `json:"kind"`
	ID    string `json:"id,omitempty"`
	Route string `json:"route,omitempty"`

	Items  []RawNode `json:"items,omitempty"`
	Top    []RawNode `json:"top,omitempty"`
	Right  []RawNode `json:"right,omitempty"`
	Bottom []RawNode `json:"bottom,omitempty"`
}
