package maze

import (
	"svw.info/puzzles/internal/domain"
)

// solve searches breadth-first from the top-left cell. The exit is the
// bottom-row cell reached width-th by the search, which places it roughly
// opposite the entrance on most mazes; its bottom wall is carved open.
// The returned path runs from the entrance to the exit.
func solve(width, height int, walls []domain.Wall) (exit int, path []domain.Direction) {
	const unvisited = -1
	parent := make([]int, width*height)
	for i := range parent {
		parent[i] = unvisited
	}
	parent[0] = 0

	queue := []int{0}
	bottomHits := 0
	for {
		cell := queue[0]
		queue = queue[1:]

		if cell/width == height-1 {
			bottomHits++
			if bottomHits == width {
				walls[cell].Down = false
				return cell % width, walkBack(cell, width, parent)
			}
		}

		if !walls[cell].Right && parent[cell+1] == unvisited {
			parent[cell+1] = cell
			queue = append(queue, cell+1)
		}
		if !walls[cell].Down && parent[cell+width] == unvisited {
			parent[cell+width] = cell
			queue = append(queue, cell+width)
		}
		if cell%width > 0 && !walls[cell-1].Right && parent[cell-1] == unvisited {
			parent[cell-1] = cell
			queue = append(queue, cell-1)
		}
		if cell >= width && !walls[cell-width].Down && parent[cell-width] == unvisited {
			parent[cell-width] = cell
			queue = append(queue, cell-width)
		}
	}
}

// walkBack follows parent links from the exit to the entrance and returns
// the step directions in walking order, entrance first.
func walkBack(cell, width int, parent []int) []domain.Direction {
	var rev []domain.Direction
	for cell != 0 {
		p := parent[cell]
		switch {
		case cell == p+1:
			rev = append(rev, domain.Right)
		case cell == p+width:
			rev = append(rev, domain.Down)
		case cell == p-1:
			rev = append(rev, domain.Left)
		default:
			rev = append(rev, domain.Up)
		}
		cell = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
