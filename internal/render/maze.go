package render

import (
	"image"

	"svw.info/puzzles/internal/domain"
)

// mazeCell is the pixel pitch of one maze cell; walls sit on the shared
// edge so the canvas is one pixel wider and taller than the grid.
const mazeCell = 10

// Maze draws the maze walls. The top border is left open above the
// top-left cell as the entrance; the exit gap comes from the carved
// bottom wall.
func Maze(m *domain.Maze) *image.RGBA {
	img := blank(m.Width*mazeCell+1, m.Height*mazeCell+1)

	fillRect(img, 0, 0, 1, m.Height*mazeCell+1, black)
	fillRect(img, mazeCell, 0, m.Width*mazeCell+1-mazeCell, 1, black)

	for i, w := range m.Walls {
		x := i % m.Width
		y := i / m.Width
		if w.Right {
			fillRect(img, (x+1)*mazeCell, y*mazeCell, 1, mazeCell+1, black)
		}
		if w.Down {
			fillRect(img, x*mazeCell, (y+1)*mazeCell, mazeCell+1, 1, black)
		}
	}
	return img
}

// MazeSolved draws the maze with its solution path in red, from the
// entrance down through the carved exit.
func MazeSolved(m *domain.Maze) *image.RGBA {
	img := Maze(m)

	x, y := 0, 0
	fillRect(img, 5, 0, 1, 6, red)
	for _, step := range m.Path {
		switch step {
		case domain.Right:
			fillRect(img, x*mazeCell+5, y*mazeCell+5, mazeCell+1, 1, red)
			x++
		case domain.Down:
			fillRect(img, x*mazeCell+5, y*mazeCell+5, 1, mazeCell+1, red)
			y++
		case domain.Left:
			fillRect(img, x*mazeCell-5, y*mazeCell+5, mazeCell+1, 1, red)
			x--
		case domain.Up:
			fillRect(img, x*mazeCell+5, y*mazeCell-5, 1, mazeCell+1, red)
			y--
		}
	}
	fillRect(img, x*mazeCell+5, y*mazeCell+6, 1, 5, red)
	return img
}
