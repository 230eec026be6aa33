// Package tree is the series/parallel canonical form: a recursive
// expression oriented +→−, built from exactly three node kinds. It is
// a tagged sum type, implemented as a sealed interface rather than a
// polymorphic dictionary, so the compiler enforces exhaustive
// switches over the three variants.
package tree

import "dccircuit/types"

// Node is implemented by exactly Atom, Series, and Parallel. The
// unexported marker method seals the set so no other package can
// introduce a fourth variant.
type Node interface {
	isNode()
}

// AtomKind tags the four leaf element variants a Node can wrap.
type AtomKind string

const (
	AtomResistor AtomKind = "resistor"
	AtomAmmeter  AtomKind = "ammeter"
	AtomVSource  AtomKind = "vsource"
	AtomISource  AtomKind = "isource"
)

// Atom is a leaf element: resistor, ammeter, vsource, or isource.
// Ohms/Volts/Amps is meaningful only for the matching Kind.
type Atom struct {
	ID        types.ID
	Name      string
	Kind      AtomKind
	Ohms      float64
	Volts     float64
	Amps      float64
	Generated bool // true for an equivalent synthesized by the reducer
}

func (*Atom) isNode() {}

// Series is an ordered chain of child expressions, oriented +→− along
// the slice (children[0] is nearest +).
type Series struct {
	ID       types.ID
	Children []Node
}

func (*Series) isNode() {}

// Parallel is an unordered-in-theory, ordered-in-practice set of ≥2
// branch expressions between the same pair of terminals. The slice
// order is preserved for deterministic presentation.
type Parallel struct {
	ID       types.ID
	Branches []Node
}

func (*Parallel) isNode() {}
