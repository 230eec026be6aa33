package types

import (
	"hash/maphash"
	"math"

	"dccircuit/dcerr"
)

// EdgeKind tags the behavior of an edge in the editor-form multigraph.
// It is a closed, small set — never extended at runtime — so a plain
// string-backed enum is enough; no polymorphic dictionary.
type EdgeKind string

const (
	KindWire     EdgeKind = "wire"
	KindResistor EdgeKind = "resistor"
	KindAmmeter  EdgeKind = "ammeter"
	KindVSource  EdgeKind = "vsource"
	KindISource  EdgeKind = "isource"
)

// Vertex is a node in the editor-form circuit. Position is carried for
// the benefit of external renderers only; analysis never reads it.
type Vertex struct {
	ID       ID
	Label    string
	X, Y     float64
}

// Edge is a labeled, kind-tagged connection between two vertices. The
// meaning of the A/B direction depends on Kind: for a VSource A is the
// + terminal, for an ISource current flows from A to B, for a
// resistor or wire A/B are unordered.
type Edge struct {
	ID    ID
	Label string
	A, B  ID
	Kind  EdgeKind

	// Ohms is meaningful only for KindResistor; must be finite and > 0.
	Ohms float64
	// Volts is meaningful only for KindVSource; must be finite. A = +, B = -.
	Volts float64
	// Amps is meaningful only for KindISource; must be finite. Current
	// is injected from A to B.
	Amps float64
}

// Circuit is the sole mutable editor-form state. Every other structure
// in the pipeline (canonical graph, tree, MNA results, superposition
// results) is an immutable value re-derived from a Circuit.
type Circuit struct {
	Vertices []Vertex
	Edges    []Edge

	// PlusRef / MinusRef are optional explicit terminal references.
	// nil means "not specified"; ResolveTerminals implements the
	// fallback rules for when they're absent.
	PlusRef  *ID
	MinusRef *ID
}

// fingerprintSeed is fixed once per process. hash/maphash seeds are
// not stable across runs, so a Fingerprint is a within-process cache
// key only — never persist or compare one across program invocations.
var fingerprintSeed = maphash.MakeSeed()

// Fingerprint returns a structural hash of the circuit's declared
// vertex ids, edges (id, label, kind, endpoints, values), and terminal
// references, in declaration order. Two circuits with the same
// fingerprint are not guaranteed equal (it's a hash, not a canonical
// encoding); an edit that changes any field Fingerprint reads changes
// the value except on a 64-bit hash collision.
func (c *Circuit) Fingerprint() uint64 {
	var h maphash.Hash
	h.SetSeed(fingerprintSeed)
	var buf [8]byte
	putFloat := func(v float64) {
		bits := math.Float64bits(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	}
	for _, v := range c.Vertices {
		h.WriteString(string(v.ID))
		h.WriteByte(0)
	}
	h.WriteByte(0xFF)
	for _, e := range c.Edges {
		h.WriteString(string(e.ID))
		h.WriteByte(0)
		h.WriteString(e.Label)
		h.WriteByte(0)
		h.WriteString(string(e.Kind))
		h.WriteByte(0)
		h.WriteString(string(e.A))
		h.WriteByte(0)
		h.WriteString(string(e.B))
		h.WriteByte(0)
		putFloat(e.Ohms)
		putFloat(e.Volts)
		putFloat(e.Amps)
	}
	h.WriteByte(0xFF)
	if c.PlusRef != nil {
		h.WriteString(string(*c.PlusRef))
	}
	h.WriteByte(0)
	if c.MinusRef != nil {
		h.WriteString(string(*c.MinusRef))
	}
	return h.Sum64()
}

// VertexByID returns the vertex with the given id, or false if none exists.
func (c *Circuit) VertexByID(id ID) (Vertex, bool) {
	for _, v := range c.Vertices {
		if v.ID == id {
			return v, true
		}
	}
	return Vertex{}, false
}

// Validate enforces the structural and numeric invariants that hold
// independent of wire contraction: every edge endpoint resolves to a
// live vertex, and element parameters are finite and in-range for
// their kind.
func (c *Circuit) Validate() error {
	ids := make(map[ID]bool, len(c.Vertices))
	for _, v := range c.Vertices {
		ids[v.ID] = true
	}
	for _, e := range c.Edges {
		if !ids[e.A] || !ids[e.B] {
			return dcerr.StructuralError("edge %s references a missing node", e.ID)
		}
		switch e.Kind {
		case KindResistor:
			if math.IsNaN(e.Ohms) || math.IsInf(e.Ohms, 0) || e.Ohms <= 0 {
				return dcerr.NumericError("resistor %s: ohms must be finite and positive, got %v", e.ID, e.Ohms)
			}
		case KindVSource:
			if math.IsNaN(e.Volts) || math.IsInf(e.Volts, 0) {
				return dcerr.NumericError("vsource %s: volts must be finite, got %v", e.ID, e.Volts)
			}
		case KindISource:
			if math.IsNaN(e.Amps) || math.IsInf(e.Amps, 0) {
				return dcerr.NumericError("isource %s: amps must be finite, got %v", e.ID, e.Amps)
			}
		case KindWire, KindAmmeter:
			// no numeric parameters
		default:
			return dcerr.StructuralError("edge %s: unknown kind %q", e.ID, e.Kind)
		}
	}
	if c.PlusRef != nil && c.MinusRef != nil && *c.PlusRef == *c.MinusRef {
		return dcerr.StructuralError("terminals coincide: + and - both reference %s", *c.PlusRef)
	}
	return nil
}

// ResolveTerminals applies the default-terminal rule: explicit
// references win when both present and distinct; otherwise
// the first voltage source's endpoints; otherwise the first two
// vertices in declaration order.
func (c *Circuit) ResolveTerminals() (plus, minus ID, err error) {
	if c.PlusRef != nil && c.MinusRef != nil {
		if *c.PlusRef == *c.MinusRef {
			return "", "", dcerr.StructuralError("terminals coincide: + and - both reference %s", *c.PlusRef)
		}
		return *c.PlusRef, *c.MinusRef, nil
	}
	for _, e := range c.Edges {
		if e.Kind == KindVSource {
			return e.A, e.B, nil
		}
	}
	if len(c.Vertices) < 2 {
		return "", "", dcerr.StructuralError("too few distinct nodes to default terminals")
	}
	return c.Vertices[0].ID, c.Vertices[1].ID, nil
}
