package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/ports"
	"svw.info/puzzles/internal/sudoku"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution from seed at the target
// difficulty: fill a full random solution, then carve clues out while the
// remainder stays unique. Carving is time-boxed, so an easy target is always
// met while expert boards may end up slightly above target.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full domain.Board
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{}, ctx.Err()
	}

	puz := full
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			puz.Fixed[r][c] = true
		}
	}
	positions := rng.Perm(81)

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		if puz.Givens() <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz.Values[r][c]
		if old == 0 {
			continue
		}
		puz.Values[r][c] = 0
		puz.Fixed[r][c] = false
		unique, st, err := g.Solver.Unique(ctx, &domain.Board{Values: puz.Values})
		nodes += st.Nodes
		if err != nil || !unique {
			puz.Values[r][c] = old
			puz.Fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: diff,
		Board:      puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution, trying the
// digits of each cell in random order.
func fillRandom(ctx context.Context, rng *rand.Rand, b *domain.Board) bool {
	var mask sudoku.Mask
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(idx int) bool
	dfs = func(idx int) bool {
		if ctx.Err() != nil {
			return false
		}
		if idx == 81 {
			return true
		}
		r, c := idx/9, idx%9
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if mask.Conflicts(r, c, v) {
				continue
			}
			b.Values[r][c] = v
			mask.Set(r, c, v)
			if dfs(idx + 1) {
				return true
			}
			b.Values[r][c] = 0
			mask.Clear(r, c, v)
		}
		return false
	}
	return dfs(0)
}
