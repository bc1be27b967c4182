package sudoku

import (
	"svw.info/puzzles/internal/domain"
)

// Extract maps the chosen row tags of a terminal search back onto a filled
// board. It fails with domain.ErrIncompleteSolution unless the tags cover
// every cell exactly once. Pure: calling it twice on the same tags yields
// identical boards.
func Extract(tags []int) (*domain.Board, error) {
	if len(tags) != cells {
		return nil, domain.ErrIncompleteSolution
	}
	var out domain.Board
	for _, tag := range tags {
		if tag < 0 || tag >= cells*Size {
			return nil, domain.ErrIncompleteSolution
		}
		r, c, v := SplitTag(tag)
		if out.Values[r][c] != 0 {
			return nil, domain.ErrIncompleteSolution
		}
		out.Values[r][c] = v
	}
	return &out, nil
}
