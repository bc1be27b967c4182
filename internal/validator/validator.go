package validator

import (
	"context"

	"svw.info/puzzles/internal/domain"
)

// FastValidator checks row, column, and box uniqueness with digit bit sets.
// It reports the second occurrence of each duplicated digit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit yields the coordinates of one constraint unit: rows 0-8, columns
// 9-17, boxes 18-26.
func unit(u, i int) domain.CellCoord {
	switch {
	case u < 9:
		return domain.CellCoord{Row: u, Col: i}
	case u < 18:
		return domain.CellCoord{Row: i, Col: u - 9}
	default:
		b := u - 18
		return domain.CellCoord{Row: (b/3)*3 + i/3, Col: (b%3)*3 + i%3}
	}
}

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for u := 0; u < 27; u++ {
		seen := 0
		for i := 0; i < 9; i++ {
			cc := unit(u, i)
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, cc)
			}
			seen |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
