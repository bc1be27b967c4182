package solver

import (
	"context"
	"time"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/ports"
	"svw.info/puzzles/internal/sudoku"
)

// DLXSolver reduces the board to an exact cover instance and searches it
// with the dancing links engine. Each call builds its own matrix, so the
// solver value itself is stateless and safe to share.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

// Solve returns the first solution under the engine's deterministic
// ordering, domain.ErrConflictingGivens when the input is already invalid,
// or domain.ErrExhausted when no completion exists.
func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	m, err := sudoku.BuildMatrix(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	tags, st, err := m.SolveFirst(ctx)
	stats := ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	if st.Solutions == 0 {
		return nil, stats, domain.ErrExhausted
	}
	out, err := sudoku.Extract(tags)
	if err != nil {
		return nil, stats, err
	}
	out.Fixed = b.Fixed
	return out, stats, nil
}

// Unique reports whether the board has exactly one solution. The search
// stops as soon as a second cover is found.
func (s *DLXSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	m, err := sudoku.BuildMatrix(b)
	if err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	st, err := m.Solve(ctx, func([]int) bool {
		found++
		return found < 2
	})
	stats := ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}
	if err != nil {
		return false, stats, err
	}
	return found == 1, stats, nil
}

// SolveAll collects up to max solutions (0 means no limit). Useful for
// callers that need a uniqueness guarantee stronger than Unique, or all
// completions of a sparse board.
func (s *DLXSolver) SolveAll(ctx context.Context, b *domain.Board, max int) ([]*domain.Board, ports.Stats, error) {
	start := time.Now()
	m, err := sudoku.BuildMatrix(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	var boards []*domain.Board
	var extractErr error
	st, err := m.Solve(ctx, func(tags []int) bool {
		out, err := sudoku.Extract(tags)
		if err != nil {
			extractErr = err
			return false
		}
		out.Fixed = b.Fixed
		boards = append(boards, out)
		return max == 0 || len(boards) < max
	})
	stats := ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	if extractErr != nil {
		return nil, stats, extractErr
	}
	if len(boards) == 0 {
		return nil, stats, domain.ErrExhausted
	}
	return boards, stats, nil
}
