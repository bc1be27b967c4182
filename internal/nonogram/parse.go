// Package nonogram solves run-length (nonogram) puzzles by line narrowing
// plus backtracking. It is independent of the exact cover engine: the
// propagation step is what makes these puzzles tractable, and most lines are
// decided without any guessing.
package nonogram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyPuzzle reports blank rule input.
	ErrEmptyPuzzle = errors.New("puzzle cannot be empty")

	// ErrInvalidRule reports a run length that is not a number.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrRuleDimension reports a rule whose runs cannot fit in the line.
	ErrRuleDimension = errors.New("rule does not fit its line")

	// ErrNoSolution reports a well-formed puzzle with no consistent grid.
	ErrNoSolution = errors.New("puzzle has no solution")
)

// ParseRules decodes a rule string: lines separated by ';', run lengths
// within a line separated by ','. bound is the length of the line the runs
// must fit in, including one separator gap between adjacent runs. Zero-length
// runs are dropped, so "0" describes an empty line.
func ParseRules(s string, bound int) ([][]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyPuzzle
	}
	parts := strings.Split(s, ";")
	out := make([][]int, 0, len(parts))
	for _, part := range parts {
		size := 0
		var runs []int
		for _, tok := range strings.Split(part, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidRule, tok)
			}
			if v == 0 {
				continue
			}
			size += v
			runs = append(runs, v)
		}
		if len(runs) > 1 {
			size += len(runs) - 1
		}
		if size > bound {
			return nil, fmt.Errorf("%w: %q needs %d of %d cells", ErrRuleDimension, part, size, bound)
		}
		out = append(out, runs)
	}
	return out, nil
}
