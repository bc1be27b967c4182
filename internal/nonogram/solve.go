package nonogram

import (
	"context"
	"errors"
	"strings"
	"time"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/ports"
)

type grid struct {
	width, height int
	cells         []domain.CellState
	rowRuns       [][]int
	colRuns       [][]int
	nodes         int
}

func (g *grid) row(r int) []domain.CellState {
	return g.cells[r*g.width : (r+1)*g.width]
}

func (g *grid) col(c int) []domain.CellState {
	out := make([]domain.CellState, g.height)
	for r := 0; r < g.height; r++ {
		out[r] = g.cells[r*g.width+c]
	}
	return out
}

func (g *grid) setCol(c int, line []domain.CellState) {
	for r := 0; r < g.height; r++ {
		g.cells[r*g.width+c] = line[r]
	}
}

// narrow runs line narrowing over all rows and columns to a fixpoint.
func (g *grid) narrow() error {
	for {
		changed := false
		for r := 0; r < g.height; r++ {
			ch, ok := narrowLine(g.row(r), g.rowRuns[r])
			if !ok {
				return ErrNoSolution
			}
			changed = changed || ch
		}
		for c := 0; c < g.width; c++ {
			line := g.col(c)
			ch, ok := narrowLine(line, g.colRuns[c])
			if !ok {
				return ErrNoSolution
			}
			if ch {
				g.setCol(c, line)
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}

func (g *grid) firstBlank() int {
	for i, s := range g.cells {
		if s == domain.Blank {
			return i
		}
	}
	return -1
}

// solve narrows, then guesses the first undecided cell both ways. Most
// puzzles are finished by narrowing alone.
func (g *grid) solve(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.narrow(); err != nil {
		return err
	}
	i := g.firstBlank()
	if i < 0 {
		return nil
	}
	for _, s := range []domain.CellState{domain.Filled, domain.Blocked} {
		g.nodes++
		clone := &grid{
			width:   g.width,
			height:  g.height,
			cells:   append([]domain.CellState(nil), g.cells...),
			rowRuns: g.rowRuns,
			colRuns: g.colRuns,
		}
		clone.cells[i] = s
		err := clone.solve(ctx)
		g.nodes += clone.nodes
		if err == nil {
			copy(g.cells, clone.cells)
			return nil
		}
		if !errors.Is(err, ErrNoSolution) {
			return err
		}
	}
	return ErrNoSolution
}

// Solve parses the column and row rule strings and solves the puzzle.
// Line counts define the grid: one column per ';'-separated column rule,
// one row per row rule.
func Solve(ctx context.Context, colRules, rowRules string) (*domain.Nonogram, int, error) {
	width := len(strings.Split(colRules, ";"))
	height := len(strings.Split(rowRules, ";"))
	if strings.TrimSpace(colRules) == "" || strings.TrimSpace(rowRules) == "" {
		return nil, 0, ErrEmptyPuzzle
	}

	cols, err := ParseRules(colRules, height)
	if err != nil {
		return nil, 0, err
	}
	rows, err := ParseRules(rowRules, width)
	if err != nil {
		return nil, 0, err
	}

	g := &grid{
		width:   width,
		height:  height,
		cells:   make([]domain.CellState, width*height),
		rowRuns: rows,
		colRuns: cols,
	}
	if err := g.solve(ctx); err != nil {
		return nil, g.nodes, err
	}
	return &domain.Nonogram{
		Width:    width,
		Height:   height,
		RowRules: rows,
		ColRules: cols,
		Cells:    g.cells,
	}, g.nodes, nil
}

// Service adapts the package to the ports.NonogramSolver interface.
type Service struct{}

func NewService() *Service { return &Service{} }

func (s *Service) SolveNonogram(ctx context.Context, colRules, rowRules string) (*domain.Nonogram, ports.Stats, error) {
	start := time.Now()
	n, nodes, err := Solve(ctx, colRules, rowRules)
	return n, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}
