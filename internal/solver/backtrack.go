package solver

import (
	"svw.info/puzzles/internal/domain"
	"svw.info/puzzles/internal/sudoku"
)

// BacktrackingSolver is the non-exact-cover solver: candidate elimination
// over row/column/box bitmasks with an explicit frame stack. Kept as an
// independent cross-check for the dancing links engine.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// frame is one committed placement attempt: the cell index and the
// candidates not yet tried there.
type frame struct {
	idx        int
	candidates []uint8
}

// loadMask seeds a mask with the board's current values, failing on
// duplicate givens.
func loadMask(b *domain.Board) (*sudoku.Mask, error) {
	var m sudoku.Mask
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			if v > 9 || m.Conflicts(r, c, v) {
				return nil, domain.ErrConflictingGivens
			}
			m.Set(r, c, v)
		}
	}
	return &m, nil
}

// nextBlank returns the first empty cell at or after start along with its
// candidates, or ok=false when the board is full.
func nextBlank(b *domain.Board, m *sudoku.Mask, start int) (frame, bool) {
	for i := start; i < 81; i++ {
		r, c := i/9, i%9
		if b.Values[r][c] == 0 {
			return frame{idx: i, candidates: m.Candidates(r, c)}, true
		}
	}
	return frame{}, false
}
