package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionMergesSets(t *testing.T) {
	d := New[string]()
	d.Add("a")
	d.Add("b")
	d.Add("c")
	assert.False(t, d.Connected("a", "b"))

	d.Union("a", "b")
	assert.True(t, d.Connected("a", "b"))
	assert.False(t, d.Connected("a", "c"))
}

func TestUnionIsIdempotentOnSameSet(t *testing.T) {
	d := New[string]()
	d.Add("a")
	d.Add("b")
	d.Union("a", "b")
	d.Union("a", "b")
	d.Union("b", "a")
	assert.True(t, d.Connected("a", "b"))
}

func TestPartitionAssignsCompactIndicesInFirstSeenOrder(t *testing.T) {
	d := New[string]()
	d.Add("a")
	d.Add("b")
	d.Add("c")
	d.Add("d")
	d.Union("b", "d")

	p := d.Partition()
	assert.Len(t, p, 4)
	assert.Equal(t, p["b"], p["d"])
	assert.NotEqual(t, p["a"], p["b"])
	assert.NotEqual(t, p["a"], p["c"])
	assert.NotEqual(t, p["b"], p["c"])
	assert.Equal(t, 0, p["a"])
	assert.Equal(t, 1, p["b"])
	assert.Equal(t, 2, p["c"])

	seen := map[int]bool{}
	for _, idx := range p {
		seen[idx] = true
	}
	for i := 0; i < 3; i++ {
		assert.True(t, seen[i], "expected index %d to be assigned", i)
	}
}

func TestPartitionCoversEveryAddedElement(t *testing.T) {
	d := New[int]()
	for i := 0; i < 5; i++ {
		d.Add(i)
	}
	d.Union(0, 1)
	d.Union(2, 3)

	p := d.Partition()
	assert.Len(t, p, 5)
}
