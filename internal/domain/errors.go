package domain

import "errors"

var (
	// ErrConflictingGivens reports that the puzzle input already violates a
	// constraint (duplicate given in a row, column, or box). It is detected
	// before any search runs.
	ErrConflictingGivens = errors.New("conflicting givens")

	// ErrExhausted reports that a well-formed puzzle has no solution. It is
	// an expected outcome, not a failure of the solver.
	ErrExhausted = errors.New("search exhausted: no solution")

	// ErrIncompleteSolution reports that a solution was extracted from a
	// search that never reached a terminal state. Caller misuse.
	ErrIncompleteSolution = errors.New("incomplete solution")
)
