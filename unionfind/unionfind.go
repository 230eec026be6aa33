// Package unionfind is a generic disjoint-set structure used by the
// canonicalizer to contract wire edges. Grounded on the iterative
// find/union closures in katalvlaran/lvlath's prim_kruskal.Kruskal
// (path compression + union by rank), generalized into a reusable
// generic type keyed by any comparable id.
package unionfind

// DSU is a disjoint-set-union over elements of type T. The zero value
// is not usable; construct with New.
type DSU[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	order  []T // first-seen insertion order, for deterministic numbering
}

// New creates an empty disjoint-set structure.
func New[T comparable]() *DSU[T] {
	return &DSU[T]{parent: map[T]T{}, rank: map[T]int{}}
}

// Add registers x as its own singleton set if not already present.
func (d *DSU[T]) Add(x T) {
	if _, ok := d.parent[x]; ok {
		return
	}
	d.parent[x] = x
	d.rank[x] = 0
	d.order = append(d.order, x)
}

// Find returns the representative of x's set, path-compressing along
// the way. x must have been registered with Add.
func (d *DSU[T]) Find(x T) T {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing a and b, attaching the lower-rank
// root under the higher-rank one and breaking ties by incrementing
// the surviving root's rank.
func (d *DSU[T]) Union(a, b T) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}

// Connected reports whether a and b are in the same set.
func (d *DSU[T]) Connected(a, b T) bool {
	return d.Find(a) == d.Find(b)
}

// Partition assigns a compact 0-based index to each distinct
// representative, in first-seen order of the elements added via Add.
// The returned map covers every element ever added.
func (d *DSU[T]) Partition() map[T]int {
	index := map[T]int{}
	next := 0
	for _, x := range d.order {
		r := d.Find(x)
		if _, ok := index[r]; !ok {
			index[r] = next
			next++
		}
	}
	out := make(map[T]int, len(d.order))
	for _, x := range d.order {
		out[x] = index[d.Find(x)]
	}
	return out
}
