package render

import (
	"image"
	"image/color"

	"svw.info/puzzles/internal/domain"
)

const sudokuCell = 50

// Sudoku draws the 9x9 grid with the given digits in black. Box borders
// are drawn heavier than cell borders.
func Sudoku(b *domain.Board) *image.RGBA {
	img := blank(9*sudokuCell+1, 9*sudokuCell+1)

	for i := 0; i <= 9; i++ {
		thick := 1
		if i%3 == 0 {
			thick = 3
		}
		fillRect(img, i*sudokuCell-thick/2, 0, thick, 9*sudokuCell+1, black)
		fillRect(img, 0, i*sudokuCell-thick/2, 9*sudokuCell+1, thick, black)
	}

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				drawCellDigit(img, r, c, int(v), black)
			}
		}
	}
	return img
}

// SudokuSolved draws the puzzle with the solver's digits overlaid in red.
// Cells filled in the puzzle stay black.
func SudokuSolved(puzzle, solved *domain.Board) *image.RGBA {
	img := Sudoku(puzzle)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if puzzle.Values[r][c] == 0 && solved.Values[r][c] != 0 {
				drawCellDigit(img, r, c, int(solved.Values[r][c]), red)
			}
		}
	}
	return img
}

func drawCellDigit(img *image.RGBA, row, col, v int, c color.Color) {
	// center a 20x28 digit in the 50px cell
	drawDigit(img, v, col*sudokuCell+15, row*sudokuCell+11, 4, c)
}
