package generator

import "svw.info/puzzles/internal/ports"

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for the uniqueness checks while carving.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
