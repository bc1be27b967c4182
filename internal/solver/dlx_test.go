package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/sudoku"
	"svw.info/puzzles/internal/validator"
)

const fixture = "415830090003009104002150006900783000200000381500012400004900063380500040009307500"

func TestDLXSolveFixture(t *testing.T) {
	b, err := sudoku.Parse(fixture)
	require.NoError(t, err)

	out, st, err := NewDLXSolver().Solve(context.Background(), b)
	require.NoError(t, err)
	require.NotZero(t, st.Nodes)

	ok, conf, err := validator.New().Validate(context.Background(), out)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conf)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.NotZero(t, out.Values[r][c])
			if b.Values[r][c] != 0 {
				require.Equal(t, b.Values[r][c], out.Values[r][c], "given changed at %d,%d", r, c)
			}
		}
	}
	// Fixed flags carry over from the input
	assert.Equal(t, b.Fixed, out.Fixed)
}

func TestDLXSolveIsDeterministic(t *testing.T) {
	b, err := sudoku.Parse(fixture)
	require.NoError(t, err)
	s := NewDLXSolver()

	first, _, err := s.Solve(context.Background(), b)
	require.NoError(t, err)
	second, _, err := s.Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, first.Values, second.Values)
}

func TestDLXConflictingGivensFailBeforeSearch(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[0][7] = 5
	_, st, err := NewDLXSolver().Solve(context.Background(), &b)
	require.ErrorIs(t, err, domain.ErrConflictingGivens)
	assert.Zero(t, st.Nodes, "no search step may run on invalid givens")
}

// overconstrained returns a board with valid givens and no completion:
// cell (0,8) needs 9 by its row, but its column already holds one.
func overconstrained() *domain.Board {
	var b domain.Board
	for c := 0; c < 8; c++ {
		b.Values[0][c] = uint8(c + 1)
	}
	b.Values[4][8] = 9
	return &b
}

func TestDLXExhaustedOnNoSolution(t *testing.T) {
	b := overconstrained()

	// the givens themselves are fine
	ok, conf, err := validator.New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok, "fixture givens must be conflict-free: %v", conf)

	_, _, err = NewDLXSolver().Solve(context.Background(), b)
	require.ErrorIs(t, err, domain.ErrExhausted)
}

func TestDLXUnique(t *testing.T) {
	b, err := sudoku.Parse(fixture)
	require.NoError(t, err)
	unique, _, err := NewDLXSolver().Unique(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, unique)

	// an empty board has a vast number of completions
	unique, _, err = NewDLXSolver().Unique(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.False(t, unique)
}

func TestDLXSolveAll(t *testing.T) {
	// near-empty board: many solutions, capped collection
	var b domain.Board
	b.Values[0][0] = 1
	boards, _, err := NewDLXSolver().SolveAll(context.Background(), &b, 5)
	require.NoError(t, err)
	assert.Len(t, boards, 5)

	// the unique fixture yields exactly one even uncapped
	fb, err := sudoku.Parse(fixture)
	require.NoError(t, err)
	boards, _, err = NewDLXSolver().SolveAll(context.Background(), fb, 0)
	require.NoError(t, err)
	assert.Len(t, boards, 1)

	_, _, err = NewDLXSolver().SolveAll(context.Background(), overconstrained(), 0)
	assert.ErrorIs(t, err, domain.ErrExhausted)
}

func TestDLXCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewDLXSolver().Solve(ctx, &domain.Board{})
	require.ErrorIs(t, err, context.Canceled)
}
