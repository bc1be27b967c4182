package disjointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAdd(t *testing.T) {
	d := New(3)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.Add())
	assert.Equal(t, 4, d.Len())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, d.Find(i))
	}
}

func TestUnionAndFind(t *testing.T) {
	d := New(8)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(2, 3)
	d.Union(4, 5)
	d.Union(5, 6)

	root := d.Find(0)
	for i := 1; i <= 3; i++ {
		require.Equal(t, root, d.Find(i))
	}
	root = d.Find(4)
	for i := 5; i <= 6; i++ {
		require.Equal(t, root, d.Find(i))
	}
	assert.Equal(t, 7, d.Find(7))
}

func TestSame(t *testing.T) {
	d := New(8)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(2, 3)
	d.Union(4, 5)
	d.Union(5, 6)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			expected := i == j ||
				(i <= 3 && j <= 3) ||
				(i >= 4 && i <= 6 && j >= 4 && j <= 6)
			assert.Equal(t, expected, d.Same(i, j), "i=%d j=%d", i, j)
		}
	}
}

func TestUnionBySizeKeepsLargerRoot(t *testing.T) {
	d := New(5)
	d.Union(0, 1) // {0,1} rooted somewhere
	d.Union(2, 1) // {0,1,2}
	big := d.Find(0)
	d.Union(3, 4) // {3,4}
	got := d.Union(4, 2)
	assert.Equal(t, big, got, "the larger set's root survives")
}
