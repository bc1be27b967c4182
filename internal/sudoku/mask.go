// Package sudoku encodes 9x9 boards as exact cover instances for the dlx
// engine and maps solutions back onto boards. It also owns parsing,
// printing, and grading of puzzle input.
package sudoku

const (
	// Size is the grid dimension; boxSize the dimension of one box.
	Size    = 9
	boxSize = 3

	cells   = Size * Size // 81
	columns = 4 * cells   // 324 constraint columns

	// constraint column families, in matrix order
	colCell = 0   // cell (r,c) is filled
	colRow  = 81  // row r contains digit v
	colCol  = 162 // column c contains digit v
	colBox  = 243 // box b contains digit v
)

func boxOf(r, c int) int { return (r/boxSize)*boxSize + c/boxSize }

// Mask tracks which digits are present in each row, column, and box as bit
// sets, giving O(1) conflict checks.
type Mask struct {
	rows, cols, boxes [Size]uint16
}

// Set records digit v at (r, c).
func (m *Mask) Set(r, c int, v uint8) {
	bit := uint16(1) << v
	m.rows[r] |= bit
	m.cols[c] |= bit
	m.boxes[boxOf(r, c)] |= bit
}

// Clear removes digit v from (r, c).
func (m *Mask) Clear(r, c int, v uint8) {
	bit := ^(uint16(1) << v)
	m.rows[r] &= bit
	m.cols[c] &= bit
	m.boxes[boxOf(r, c)] &= bit
}

// Conflicts reports whether placing v at (r, c) would repeat the digit in
// the cell's row, column, or box.
func (m *Mask) Conflicts(r, c int, v uint8) bool {
	bit := uint16(1) << v
	return (m.rows[r]|m.cols[c]|m.boxes[boxOf(r, c)])&bit != 0
}

// Candidates returns the digits still placeable at (r, c), ascending.
func (m *Mask) Candidates(r, c int) []uint8 {
	used := m.rows[r] | m.cols[c] | m.boxes[boxOf(r, c)]
	out := make([]uint8, 0, Size)
	for v := uint8(1); v <= Size; v++ {
		if used&(1<<v) == 0 {
			out = append(out, v)
		}
	}
	return out
}
