package dlx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// snapshot captures the complete adjacency of the structure with every node
// identified by its discovery index, so two snapshots compare equal only
// when every link points at the very same node as before.
type snapshot struct {
	links map[int][4]int // left, right, up, down
	sizes []int
	ring  []int // header ring ids in order from the root
}

func (m *Matrix) snap() snapshot {
	index := map[*node]int{}
	var order []*node
	add := func(n *node) {
		if _, ok := index[n]; !ok {
			index[n] = len(order)
			order = append(order, n)
		}
	}
	add(&m.root.node)
	for _, c := range m.cols {
		add(&c.node)
		for n := c.down; n != &c.node; n = n.down {
			add(n)
		}
	}

	s := snapshot{links: map[int][4]int{}}
	for _, n := range order {
		s.links[index[n]] = [4]int{index[n.left], index[n.right], index[n.up], index[n.down]}
	}
	for _, c := range m.cols {
		s.sizes = append(s.sizes, c.size)
	}
	for cur := m.root.right; cur != &m.root.node; cur = cur.right {
		s.ring = append(s.ring, cur.col.id)
	}
	return s
}

// smallMatrix is the four-element universe {1,2,3,4} with rows
// R1={1,2}, R2={3,4}, R3={1,3}, R4={2,4}; exactly the covers
// {R1,R2} and {R3,R4} exist.
func smallMatrix(t *testing.T) *Matrix {
	t.Helper()
	m := New(4)
	require.NoError(t, m.AddRow(1, []int{0, 1}))
	require.NoError(t, m.AddRow(2, []int{2, 3}))
	require.NoError(t, m.AddRow(3, []int{0, 2}))
	require.NoError(t, m.AddRow(4, []int{1, 3}))
	return m
}

func TestCoverUncoverRestoresExactAdjacency(t *testing.T) {
	m := smallMatrix(t)
	before := m.snap()

	for _, c := range m.cols {
		m.cover(c)
		m.uncover(c)
		require.Equal(t, before, m.snap(), "column %d", c.id)
	}

	// nested cover/uncover, undone in reverse order
	m.cover(m.cols[0])
	m.cover(m.cols[3])
	m.uncover(m.cols[3])
	m.uncover(m.cols[0])
	require.Equal(t, before, m.snap())
}

func TestSolveFindsAllCovers(t *testing.T) {
	m := smallMatrix(t)

	var all [][]int
	st, err := m.Solve(context.Background(), func(tags []int) bool {
		all = append(all, append([]int(nil), tags...))
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 2, st.Solutions)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, all)
}

func TestSolveFirstIsFirstUnderHeuristic(t *testing.T) {
	m := smallMatrix(t)
	tags, st, err := m.SolveFirst(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, st.Solutions)
	require.Equal(t, []int{1, 2}, tags)
}

func TestSolveIsDeterministicAndRestoring(t *testing.T) {
	m := smallMatrix(t)
	before := m.snap()

	first, _, err := m.SolveFirst(context.Background())
	require.NoError(t, err)
	require.Equal(t, before, m.snap())

	second, _, err := m.SolveFirst(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// The seven-column instance from the engine this package is modeled on:
// its only exact cover is rows {1, 3, 5}.
func TestSolveSevenColumns(t *testing.T) {
	m := New(7)
	rows := [][]int{
		{0, 3, 6},
		{0, 3},
		{3, 4, 6},
		{2, 4, 5},
		{1, 2, 5, 6},
		{1, 6},
	}
	for tag, cols := range rows {
		require.NoError(t, m.AddRow(tag, cols))
	}

	var all [][]int
	st, err := m.Solve(context.Background(), func(tags []int) bool {
		sorted := append([]int(nil), tags...)
		for i := range sorted {
			for j := i + 1; j < len(sorted); j++ {
				if sorted[j] < sorted[i] {
					sorted[i], sorted[j] = sorted[j], sorted[i]
				}
			}
		}
		all = append(all, sorted)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 1, st.Solutions)
	require.Equal(t, [][]int{{1, 3, 5}}, all)
}

func TestEmptyMatrixHasOneEmptyCover(t *testing.T) {
	m := New(0)
	tags, st, err := m.SolveFirst(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, st.Solutions)
	require.Empty(t, tags)
}

func TestUnsatisfiableColumnBacktracks(t *testing.T) {
	m := New(2)
	require.NoError(t, m.AddRow(1, []int{0}))
	tags, st, err := m.SolveFirst(context.Background())
	require.NoError(t, err)
	require.Nil(t, tags)
	require.Zero(t, st.Solutions)
}

func TestAddRowRejectsBadInput(t *testing.T) {
	m := New(2)
	require.Error(t, m.AddRow(1, nil))
	require.Error(t, m.AddRow(1, []int{2}))
	require.Error(t, m.AddRow(1, []int{-1}))
}

func TestCancelBetweenRowAttempts(t *testing.T) {
	m := smallMatrix(t)
	before := m.snap()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := m.SolveFirst(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// the interrupted search left the structure intact
	require.Equal(t, before, m.snap())
	tags, _, err := m.SolveFirst(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, tags)
}
