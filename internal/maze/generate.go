// Package maze generates perfect mazes with a randomized backtracker and
// solves them with a breadth-first search.
//
// Cells are indexed row-major. Every cell owns its right and bottom wall;
// the outer left and top borders are implicit. A maze enters at the
// top-left cell and leaves through a carved bottom wall chosen by the
// solver.
package maze

import (
	"errors"
	"math/rand"

	"svw.info/puzzles/internal/disjointset"
	"svw.info/puzzles/internal/domain"
)

// ErrDimension is returned for mazes smaller than one cell in either axis.
var ErrDimension = errors.New("maze dimensions must be at least 1x1")

// generate carves a spanning tree over the grid. It walks depth-first from
// the top-left cell, knocking down a wall whenever the neighbour belongs to
// a different component, and backtracks once a cell has no direction left
// to try.
func generate(width, height int, rng *rand.Rand) []domain.Wall {
	walls := make([]domain.Wall, width*height)
	for i := range walls {
		walls[i] = domain.Wall{Right: true, Down: true}
	}
	connected := disjointset.New(width * height)

	untried := make([][]domain.Direction, width*height)
	for i := range untried {
		untried[i] = []domain.Direction{
			domain.Right, domain.Down, domain.Left, domain.Up,
		}
	}

	stack := []int{0}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		next, ok := step(cell, width, height, walls, connected, &untried[cell], rng)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		stack = append(stack, next)
	}
	return walls
}

// step picks untried directions at random until one leads to a cell in a
// different component, carves through, and returns that cell. ok is false
// once every direction is exhausted.
func step(cell, width, height int, walls []domain.Wall, connected *disjointset.DisjointSet, untried *[]domain.Direction, rng *rand.Rand) (next int, ok bool) {
	for len(*untried) > 0 {
		i := rng.Intn(len(*untried))
		dir := (*untried)[i]
		(*untried)[i] = (*untried)[len(*untried)-1]
		*untried = (*untried)[:len(*untried)-1]

		var neighbour int
		switch dir {
		case domain.Right:
			if cell%width == width-1 {
				continue
			}
			neighbour = cell + 1
		case domain.Down:
			if cell >= width*(height-1) {
				continue
			}
			neighbour = cell + width
		case domain.Left:
			if cell%width == 0 {
				continue
			}
			neighbour = cell - 1
		case domain.Up:
			if cell < width {
				continue
			}
			neighbour = cell - width
		}
		if connected.Same(cell, neighbour) {
			continue
		}

		switch dir {
		case domain.Right:
			walls[cell].Right = false
		case domain.Down:
			walls[cell].Down = false
		case domain.Left:
			walls[neighbour].Right = false
		case domain.Up:
			walls[neighbour].Down = false
		}
		connected.Union(cell, neighbour)
		return neighbour, true
	}
	return 0, false
}
