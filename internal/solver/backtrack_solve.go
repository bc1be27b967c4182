package solver

import (
	"context"
	"time"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	mask, err := loadMask(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	grid := *b
	nodes := 0
	var stack []frame

	if f, ok := nextBlank(&grid, mask, 0); ok {
		stack = append(stack, f)
	} else {
		// already complete
		return &grid, ports.Stats{Duration: time.Since(start)}, nil
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		top := &stack[len(stack)-1]
		r, c := top.idx/9, top.idx%9

		// undo the previous attempt at this cell, if any
		if v := grid.Values[r][c]; v != 0 {
			grid.Values[r][c] = 0
			mask.Clear(r, c, v)
		}
		if len(top.candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		v := top.candidates[0]
		top.candidates = top.candidates[1:]
		nodes++
		grid.Values[r][c] = v
		mask.Set(r, c, v)

		f, ok := nextBlank(&grid, mask, top.idx+1)
		if !ok {
			return &grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		stack = append(stack, f)
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, domain.ErrExhausted
}
