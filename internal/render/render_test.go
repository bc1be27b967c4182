package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/puzzles/internal/domain"
)

// a 2x1 maze with the inner wall carved and the exit under the right cell
func tinyMaze() *domain.Maze {
	return &domain.Maze{
		Width:  2,
		Height: 1,
		Walls: []domain.Wall{
			{Right: false, Down: true},
			{Right: true, Down: false},
		},
		Exit: 1,
		Path: []domain.Direction{domain.Right},
	}
}

func TestMazeImage(t *testing.T) {
	img := Maze(tinyMaze())
	require.Equal(t, 21, img.Bounds().Dx())
	require.Equal(t, 11, img.Bounds().Dy())

	// left border closed, entrance open above the first cell
	assert.Equal(t, black, img.RGBAAt(0, 5))
	assert.Equal(t, white, img.RGBAAt(5, 0))
	assert.Equal(t, black, img.RGBAAt(15, 0))

	// carved inner wall open, right outer wall closed
	assert.Equal(t, white, img.RGBAAt(10, 5))
	assert.Equal(t, black, img.RGBAAt(20, 5))

	// bottom: wall under cell 0, exit under cell 1
	assert.Equal(t, black, img.RGBAAt(5, 10))
	assert.Equal(t, white, img.RGBAAt(15, 10))
}

func TestMazeSolvedPath(t *testing.T) {
	img := MazeSolved(tinyMaze())

	assert.Equal(t, red, img.RGBAAt(5, 0), "entrance marker")
	assert.Equal(t, red, img.RGBAAt(10, 5), "path through the carved wall")
	assert.Equal(t, red, img.RGBAAt(15, 10), "exit marker")
}

func TestNonogramImage(t *testing.T) {
	n := &domain.Nonogram{
		Width:    2,
		Height:   2,
		RowRules: [][]int{{2}, {1}},
		ColRules: [][]int{{2}, {1}},
		Cells: []domain.CellState{
			domain.Filled, domain.Filled,
			domain.Filled, domain.Blocked,
		},
	}
	img := Nonogram(n)
	require.Equal(t, 2*50+150, img.Bounds().Dx())
	require.Equal(t, 2*50+150, img.Bounds().Dy())
	assert.Equal(t, gray, img.RGBAAt(150, 40), "grid line")
	assert.Equal(t, white, img.RGBAAt(175, 175), "cells start blank")

	solved := NonogramSolved(n)
	assert.Equal(t, black, solved.RGBAAt(175, 175), "filled cell")
	assert.Equal(t, white, solved.RGBAAt(225, 225), "blocked cell stays open")
	// the unsolved image is untouched
	assert.Equal(t, white, img.RGBAAt(175, 175))
}

func TestSudokuImage(t *testing.T) {
	var puzzle, solved domain.Board
	puzzle.Values[0][0] = 5
	puzzle.Fixed[0][0] = true
	solved = puzzle
	solved.Values[0][1] = 3

	img := Sudoku(&puzzle)
	require.Equal(t, 9*50+1, img.Bounds().Dx())
	assert.Equal(t, black, img.RGBAAt(150, 75), "box border")

	pair := SudokuSolved(&puzzle, &solved)
	foundBlack, foundRed := false, false
	for y := 11; y < 39; y++ {
		for x := 15; x < 35; x++ {
			if pair.RGBAAt(x, y) == black {
				foundBlack = true
			}
			if pair.RGBAAt(x+50, y) == red {
				foundRed = true
			}
		}
	}
	assert.True(t, foundBlack, "given digit drawn in black")
	assert.True(t, foundRed, "solved digit drawn in red")
}

func TestPNGEncodes(t *testing.T) {
	data, err := PNG(Maze(tinyMaze()))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", string(data[:8]))
}

func TestBoardText(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Fixed[0][0] = true
	out := BoardText(&b)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 11, "9 rows plus 2 box dividers")
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "┼")
}
