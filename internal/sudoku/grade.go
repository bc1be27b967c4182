package sudoku

import "svw.info/puzzles/internal/domain"

// Grade classifies a puzzle by its number of givens, aligned with the
// generator's carve targets.
func Grade(b *domain.Board) domain.Difficulty {
	switch g := b.Givens(); {
	case g >= 38:
		return domain.Easy
	case g >= 31:
		return domain.Medium
	case g >= 26:
		return domain.Hard
	default:
		return domain.Expert
	}
}
