package solver

import (
	"context"
	"time"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	mask, err := loadMask(b)
	if err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}

	grid := *b
	nodes := 0
	count := 0
	var stack []frame

	f, ok := nextBlank(&grid, mask, 0)
	if !ok {
		return true, ports.Stats{Duration: time.Since(start)}, nil
	}
	stack = append(stack, f)

	for len(stack) > 0 && count < 2 {
		if err := ctx.Err(); err != nil {
			return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		top := &stack[len(stack)-1]
		r, c := top.idx/9, top.idx%9

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

		if f, ok := nextBlank(&grid, mask, top.idx+1); ok {
			stack = append(stack, f)
		} else {
			count++ // full board; keep searching for a second one
		}
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
