package sudoku

import (
	"svw.info/puzzles/internal/dlx"
	"svw.info/puzzles/internal/domain"
)

// Tag encodes the candidate placement of digit v at (r, c) as a matrix row
// identity. Tags order rows cell-major, digits ascending.
func Tag(r, c int, v uint8) int { return (r*Size+c)*Size + int(v) - 1 }

// SplitTag is the inverse of Tag.
func SplitTag(tag int) (r, c int, v uint8) {
	cell := tag / Size
	return cell / Size, cell % Size, uint8(tag%Size) + 1
}

// rowColumns lists the four constraint columns satisfied by placing v at
// (r, c): the cell itself, plus the row, column, and box digit constraints.
func rowColumns(r, c int, v uint8) []int {
	d := int(v) - 1
	return []int{
		colCell + r*Size + c,
		colRow + r*Size + d,
		colCol + c*Size + d,
		colBox + boxOf(r, c)*Size + d,
	}
}

// BuildMatrix encodes the board as a 324-column exact cover instance with
// one row per candidate placement still consistent with the givens. A given
// cell contributes only its fixed value's row, which commits that placement
// by construction rather than by special-casing the search.
//
// Givens are validated first: a duplicate digit in any row, column, or box
// fails with domain.ErrConflictingGivens before any matrix exists.
func BuildMatrix(b *domain.Board) (*dlx.Matrix, error) {
	var seen Mask
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			if v > Size || seen.Conflicts(r, c, v) {
				return nil, domain.ErrConflictingGivens
			}
			seen.Set(r, c, v)
		}
	}

	m := dlx.New(columns)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := b.Values[r][c]; v != 0 {
				if err := m.AddRow(Tag(r, c, v), rowColumns(r, c, v)); err != nil {
					return nil, err
				}
				continue
			}
			for v := uint8(1); v <= Size; v++ {
				if seen.Conflicts(r, c, v) {
					continue
				}
				if err := m.AddRow(Tag(r, c, v), rowColumns(r, c, v)); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}
