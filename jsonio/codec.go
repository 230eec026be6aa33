package jsonio

import (
	"encoding/json"
	"fmt"
	"math"

	"dccircuit/dcerr"
	"dccircuit/tree"
	"dccircuit/types"
)

// Marshal encodes a series/parallel tree as Circuit-JSON.
func Marshal(n tree.Node) ([]byte, error) {
	return json.Marshal(Encode(n))
}

// Unmarshal decodes Circuit-JSON into a series/parallel tree,
// validating it and applying legacy migration rules first.
func Unmarshal(data []byte) (tree.Node, error) {
	var raw RawCircuit
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, dcerr.StructuralError("malformed circuit JSON: %s", err)
	}
	return Decode(&raw)
}

// Encode converts a tree into its persisted form. A Parallel root — the
// one shape that cannot linearize into a single item sequence — is
// emitted with route "u", its content on the bottom segment (the
// legacy slot a "u"-routed document uses for top-level content); every
// other root collapses to a straight item sequence.
func Encode(n tree.Node) *RawCircuit {
	seq := types.NewIDSeq("j")
	if p, ok := n.(*tree.Parallel); ok {
		return &RawCircuit{Kind: "circuit", ID: string(seq.Next()), Route: "u", Bottom: []RawNode{encodeNode(p, seq)}}
	}
	return &RawCircuit{Kind: "circuit", ID: string(seq.Next()), Route: "straight", Items: encodeSequence(n, seq)}
}

func encodeSequence(n tree.Node, seq *types.IDSeq) []RawNode {
	if s, ok := n.(*tree.Series); ok {
		items := make([]RawNode, len(s.Children))
		for i, c := range s.Children {
			items[i] = encodeNode(c, seq)
		}
		return items
	}
	return []RawNode{encodeNode(n, seq)}
}

func encodeNode(n tree.Node, seq *types.IDSeq) RawNode {
	switch v := n.(type) {
	case *tree.Atom:
		r := RawNode{Kind: string(v.Kind), ID: string(v.ID), Name: v.Name}
		switch v.Kind {
		case tree.AtomResistor:
			r.Ohms = &v.Ohms
		case tree.AtomVSource:
			r.Volts = &v.Volts
		case tree.AtomISource:
			r.Amps = &v.Amps
		}
		return r
	case *tree.Series:
		return RawNode{Kind: "series", ID: string(v.ID), Items: encodeSequence(v, seq)}
	case *tree.Parallel:
		branches := make([]RawBranch, len(v.Branches))
		for i, b := range v.Branches {
			id := v.ID
			if id == "" {
				id = seq.Next()
			}
			branches[i] = RawBranch{ID: string(id) + fmt.Sprintf(".%d", i), Items: encodeSequence(b, seq)}
		}
		return RawNode{Kind: "parallel", ID: string(v.ID), Branches: branches}
	default:
		return RawNode{Kind: "unknown"}
	}
}

// Decode converts a persisted RawCircuit into a tree.Node, applying
// migration first and then validating every node. The first failure
// encountered is reported as "<path>: <message>".
func Decode(raw *RawCircuit) (tree.Node, error) {
	Migrate(raw)
	if raw.Kind != "circuit" {
		return nil, dcerr.StructuralError("kind: expected \"circuit\", got %q", raw.Kind)
	}

	var content []RawNode
	switch raw.Route {
	case "straight":
		content = raw.Items
	case "u":
		content = append(append(append([]RawNode{}, raw.Top...), raw.Right...), raw.Bottom...)
	default:
		return nil, dcerr.StructuralError("route: unrecognized value %q", raw.Route)
	}

	return decodeSequence(content, "items")
}

func decodeSequence(items []RawNode, path string) (tree.Node, error) {
	if len(items) == 0 {
		return nil, dcerr.StructuralError("%s: empty sequence", path)
	}
	if len(items) == 1 {
		return decodeNode(items[0], fmt.Sprintf("%s[0]", path))
	}
	children := make([]tree.Node, len(items))
	for i, it := range items {
		n, err := decodeNode(it, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children[i] = n
	}
	return &tree.Series{Children: children}, nil
}

func decodeNode(n RawNode, path string) (tree.Node, error) {
	switch n.Kind {
	case "resistor":
		if n.Ohms == nil {
			return nil, dcerr.StructuralError("%s: resistor missing ohms", path)
		}
		if !finite(*n.Ohms) || *n.Ohms <= 0 {
			return nil, dcerr.NumericError("%s: ohms must be finite and positive, got %v", path, *n.Ohms)
		}
		return &tree.Atom{ID: types.ID(n.ID), Name: n.Name, Kind: tree.AtomResistor, Ohms: *n.Ohms}, nil
	case "ammeter":
		return &tree.Atom{ID: types.ID(n.ID), Name: n.Name, Kind: tree.AtomAmmeter}, nil
	case "vsource":
		if n.Volts == nil {
			return nil, dcerr.StructuralError("%s: vsource missing volts", path)
		}
		if !finite(*n.Volts) {
			return nil, dcerr.NumericError("%s: volts must be finite, got %v", path, *n.Volts)
		}
		return &tree.Atom{ID: types.ID(n.ID), Name: n.Name, Kind: tree.AtomVSource, Volts: *n.Volts}, nil
	case "isource":
		if n.Amps == nil {
			return nil, dcerr.StructuralError("%s: isource missing amps", path)
		}
		if !finite(*n.Amps) {
			return nil, dcerr.NumericError("%s: amps must be finite, got %v", path, *n.Amps)
		}
		return &tree.Atom{ID: types.ID(n.ID), Name: n.Name, Kind: tree.AtomISource, Amps: *n.Amps}, nil
	case "series":
		child, err := decodeSequence(n.Items, path+".items")
		if err != nil {
			return nil, err
		}
		if s, ok := child.(*tree.Series); ok {
			s.ID = types.ID(n.ID)
			return s, nil
		}
		return &tree.Series{ID: types.ID(n.ID), Children: []tree.Node{child}}, nil
	case "parallel":
		if len(n.Branches) < 2 {
			return nil, dcerr.StructuralError("%s: parallel requires at least 2 branches, got %d", path, len(n.Branches))
		}
		branches := make([]tree.Node, len(n.Branches))
		for i, b := range n.Branches {
			bn, err := decodeSequence(b.Items, fmt.Sprintf("%s.branches[%d].items", path, i))
			if err != nil {
				return nil, err
			}
			branches[i] = bn
		}
		return &tree.Parallel{ID: types.ID(n.ID), Branches: branches}, nil
	case "":
		return nil, dcerr.StructuralError("%s: missing kind", path)
	default:
		return nil, dcerr.StructuralError("%s: unknown kind %q", path, n.Kind)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
