package maze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/puzzles/internal/disjointset"
	"svw.info/puzzles/internal/domain"
)

func carve(t *testing.T, width, height int, seed int64) *domain.Maze {
	t.Helper()
	m, _, err := NewCarver().Carve(context.Background(), width, height, seed)
	require.NoError(t, err)
	return m
}

// countOpenings unions cells across every missing wall and returns the
// number of carved walls, excluding the exit.
func countOpenings(m *domain.Maze, d *disjointset.DisjointSet) int {
	open := 0
	for i, w := range m.Walls {
		if !w.Right && i%m.Width < m.Width-1 {
			d.Union(i, i+1)
			open++
		}
		if !w.Down && i/m.Width < m.Height-1 {
			d.Union(i, i+m.Width)
			open++
		}
	}
	return open
}

func TestCarveIsPerfectMaze(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		m := carve(t, 12, 9, seed)
		require.Len(t, m.Walls, 12*9)

		// a spanning tree has exactly cells-1 openings and one component
		d := disjointset.New(12 * 9)
		assert.Equal(t, 12*9-1, countOpenings(m, d))
		root := d.Find(0)
		for i := 1; i < 12*9; i++ {
			require.Equal(t, root, d.Find(i), "cell %d unreachable (seed %d)", i, seed)
		}
	}
}

func TestCarveIsDeterministicPerSeed(t *testing.T) {
	a := carve(t, 10, 10, 99)
	b := carve(t, 10, 10, 99)
	c := carve(t, 10, 10, 100)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Walls, c.Walls)
}

func TestPathWalksToExit(t *testing.T) {
	m := carve(t, 15, 11, 3)

	x, y := 0, 0
	for _, step := range m.Path {
		cell := y*m.Width + x
		switch step {
		case domain.Right:
			require.False(t, m.Walls[cell].Right)
			x++
		case domain.Down:
			require.False(t, m.Walls[cell].Down)
			y++
		case domain.Left:
			require.False(t, m.Walls[cell-1].Right)
			x--
		case domain.Up:
			require.False(t, m.Walls[cell-m.Width].Down)
			y--
		}
		require.True(t, x >= 0 && x < m.Width && y >= 0 && y < m.Height)
	}
	assert.Equal(t, m.Height-1, y, "path must end on the bottom row")
	assert.Equal(t, m.Exit, x, "path must end at the exit column")
	assert.False(t, m.Walls[y*m.Width+x].Down, "exit wall must be carved")
}

func TestCarveSingleCell(t *testing.T) {
	m := carve(t, 1, 1, 0)
	assert.Equal(t, 0, m.Exit)
	assert.Empty(t, m.Path)
	assert.False(t, m.Walls[0].Down)
}

func TestCarveRejectsBadDimensions(t *testing.T) {
	_, _, err := NewCarver().Carve(context.Background(), 0, 5, 1)
	assert.ErrorIs(t, err, ErrDimension)
	_, _, err = NewCarver().Carve(context.Background(), 5, -1, 1)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestCarveHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewCarver().Carve(ctx, 5, 5, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
