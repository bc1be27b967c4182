// Package disjointset implements a union-find structure with union by size
// and path compression.
package disjointset

// DisjointSet partitions the integers 0..Len()-1 into mergeable sets.
// Element indices must be in range; out-of-range access panics like any
// slice index.
type DisjointSet struct {
	parent []int // parent[i] == i for roots
	size   []int // valid for roots only
}

// New creates n singleton sets.
func New(n int) *DisjointSet {
	d := &DisjointSet{parent: make([]int, n), size: make([]int, n)}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Add appends a new singleton and returns its index.
func (d *DisjointSet) Add() int {
	i := len(d.parent)
	d.parent = append(d.parent, i)
	d.size = append(d.size, 1)
	return i
}

// Find returns the representative of x's set, compressing the path.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Same reports whether a and b are in the same set.
func (d *DisjointSet) Same(a, b int) bool { return d.Find(a) == d.Find(b) }

// Union merges the sets of a and b, attaching the smaller under the larger,
// and returns the surviving representative.
func (d *DisjointSet) Union(a, b int) int {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return ra
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	return ra
}
