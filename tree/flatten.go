package tree

// Flatten applies the canonical-form flattening rule: a series
// directly inside a series is merged into its parent's child list,
// and a single-child series or parallel collapses to that child. It
// recurses so the rule applies at every depth.
func Flatten(n Node) Node {
	switch v := n.(type) {
	case *Series:
		var flat []Node
		for _, c := range v.Children {
			fc := Flatten(c)
			if inner, ok := fc.(*Series); ok {
				flat = append(flat, inner.Children...)
			} else {
				flat = append(flat, fc)
			}
		}
		if len(flat) == 1 {
			return flat[0]
		}
		return &Series{ID: v.ID, Children: flat}
	case *Parallel:
		var branches []Node
		for _, b := range v.Branches {
			branches = append(branches, Flatten(b))
		}
		if len(branches) == 1 {
			return branches[0]
		}
		return &Parallel{ID: v.ID, Branches: branches}
	default:
		return n
	}
}

// Reverse flips a node's orientation on a fresh copy: series children
// are reversed in order, parallel branches are each reversed
// individually (but keep their relative order), and atoms carrying a
// signed source value are negated to match the flipped + and −
// direction.
func Reverse(n Node) Node {
	switch v := n.(type) {
	case *Atom:
		out := *v
		switch out.Kind {
		case AtomVSource:
			out.Volts = -out.Volts
		case AtomISource:
			out.Amps = -out.Amps
		}
		return &out
	case *Series:
		rev := make([]Node, len(v.Children))
		for i, c := range v.Children {
			rev[len(v.Children)-1-i] = Reverse(c)
		}
		return &Series{ID: v.ID, Children: rev}
	case *Parallel:
		branches := make([]Node, len(v.Branches))
		for i, b := range v.Branches {
			branches[i] = Reverse(b)
		}
		return &Parallel{ID: v.ID, Branches: branches}
	default:
		return n
	}
}
