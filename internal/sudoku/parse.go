package sudoku

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/puzzles/internal/domain"
)

var (
	// ErrPuzzleLength reports input with the wrong number of cells.
	ErrPuzzleLength = errors.New("puzzle must have 81 cells")

	// ErrPuzzleRune reports a character that is not a digit, '0', or '.'.
	ErrPuzzleRune = errors.New("invalid puzzle character")
)

// Parse decodes an 81-character puzzle string in row-major order. Digits
// 1-9 are givens; '0' and '.' are empty cells; whitespace is ignored.
// Givens are marked Fixed. Consistency of the givens is not checked here;
// the matrix builder re-validates before solving.
func Parse(s string) (*domain.Board, error) {
	var b domain.Board
	i := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == '\n' || r == '\t' || r == '\r':
			continue
		case r == '0' || r == '.':
			// empty cell
		case r >= '1' && r <= '9':
			if i < cells {
				b.Values[i/Size][i%Size] = uint8(r - '0')
				b.Fixed[i/Size][i%Size] = true
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrPuzzleRune, r)
		}
		i++
	}
	if i != cells {
		return nil, fmt.Errorf("%w: got %d", ErrPuzzleLength, i)
	}
	return &b, nil
}

// Format renders the board as a text grid with box separators, empty cells
// shown as spaces.
func Format(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('0' + v)
			}
			switch {
			case c == Size-1:
				sb.WriteByte('\n')
			case c%boxSize == boxSize-1:
				sb.WriteByte('|')
			default:
				sb.WriteByte(' ')
			}
		}
		if r%boxSize == boxSize-1 && r != Size-1 {
			sb.WriteString("-----+-----+-----\n")
		}
	}
	return sb.String()
}
