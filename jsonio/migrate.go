package jsonio

// Migrate applies backward-compatibility rules to a decoded
// RawCircuit before it is converted to a tree.Node: an absent route is
// inferred from whether any u-shaped segment is present, the legacy
// "two-bend" route value is aliased to "u", and legacy top-level items
// recorded alongside a "u" route are relocated to the bottom segment.
func Migrate(raw *RawCircuit) {
	if raw.Route == "" {
		if len(raw.Top) > 0 || len(raw.Right) > 0 || len(raw.Bottom) > 0 {
			raw.Route = "u"
		} else {
			raw.Route = "straight"
		}
	}
	if raw.Route == "two-bend" {
		raw.Route = "u"
	}
	if raw.Route == "u" && len(raw.Bottom) == 0 && len(raw.Items) > 0 {
		raw.Bottom = raw.Items
		raw.Items = nil
	}
}
