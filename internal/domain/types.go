package domain

// Board holds current values and which cells are fixed givens.
// Values are 1..9, 0 means empty.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Givens counts the filled cells of the board.
func (b *Board) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// Nonogram is a run-length puzzle grid in row-major order.
type Nonogram struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	RowRules [][]int     `json:"rowRules"`
	ColRules [][]int     `json:"colRules"`
	Cells    []CellState `json:"cells,omitempty"`
}

// At returns the cell at (row, col).
func (n *Nonogram) At(row, col int) CellState { return n.Cells[row*n.Width+col] }

// Maze is a rectangular maze. Walls is row-major, one entry per cell; the
// outer border is implicit except for the entrance (top-left, from above)
// and the exit carved into the bottom edge by the solver.
type Maze struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Walls  []Wall      `json:"walls"`
	Exit   int         `json:"exit,omitempty"` // column of the carved exit
	Path   []Direction `json:"path,omitempty"` // entrance to exit
}

// Wall records which of a cell's right and bottom walls are intact.
type Wall struct {
	Right bool `json:"right"`
	Down  bool `json:"down"`
}
