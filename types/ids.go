// Package types defines the editor-form circuit data model: vertices,
// edges, element kinds, and the stable identifiers that tie them to
// derived elements produced further down the pipeline.
package types

import "fmt"

// ID is a stable, globally unique identifier for a vertex, edge, or
// derived equivalent element. It is opaque to callers; only the
// sequence that minted it knows how to produce the next one.
type ID string

// IDSeq mints ids with a fixed prefix and a monotonically increasing
// counter, mirroring the teacher's per-circuit ElementID/WireID
// sequences (types/wireLink.go) but keyed by string so that generated
// equivalents can carry hierarchical display names without colliding
// with user ids.
type IDSeq struct {
	prefix string
	next   int
}

// NewIDSeq creates a sequence that mints "<prefix><n>" ids starting at 1.
func NewIDSeq(prefix string) *IDSeq {
	return &IDSeq{prefix: prefix, next: 1}
}

// Next returns the next id in the sequence.
func (s *IDSeq) Next() ID {
	id := ID(fmt.Sprintf("%s%d", s.prefix, s.next))
	s.next++
	return id
}

// EquivID builds the hierarchical display name for a reduction-trace
// generated equivalent: level-dot-counter, e.g. "eq2.3" for an
// equivalent produced at level 2 as the third equivalent of the whole
// trace (reducer.Trace keeps one running counter across all levels).
func EquivID(level, counter int) ID {
	return ID(fmt.Sprintf("eq%d.%d", level, counter))
}
