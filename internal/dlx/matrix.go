// Package dlx implements Knuth's Dancing Links representation of an exact
// cover problem and the Algorithm X search over it.
//
// A Matrix is built once from its column count and a set of rows, searched
// with Solve, and left in its original state afterwards, so it can be
// searched again or discarded. A Matrix must not be shared between
// concurrent searches.
package dlx

import (
	"errors"
	"fmt"
)

// node is one 1-entry of the sparse matrix. Nodes are linked circularly in
// four directions: up/down inside a constraint column, left/right inside a
// candidate row. Nodes never move between rows or columns; only their
// neighbor links change while covering and uncovering.
type node struct {
	left, right, up, down *node
	col                   *column
	tag                   int
}

// column is a constraint header. It participates in the header ring through
// its embedded node and anchors the vertical ring of its live nodes.
type column struct {
	node
	size int // live nodes in the vertical ring
	id   int
}

// Matrix is the toroidal structure: a root header anchoring the ring of
// uncovered columns, each anchoring its ring of uncovered nodes.
type Matrix struct {
	root *column
	cols []*column
	rows int
}

// New creates a matrix with the given number of constraint columns and no
// rows. Column ids are 0..columns-1 in ring order.
func New(columns int) *Matrix {
	root := &column{id: -1}
	root.col = root
	root.left = &root.node
	root.right = &root.node
	root.up = &root.node
	root.down = &root.node

	m := &Matrix{root: root, cols: make([]*column, columns)}
	prev := &root.node
	for i := range m.cols {
		c := &column{id: i}
		c.col = c
		c.up = &c.node
		c.down = &c.node
		c.left = prev
		c.right = prev.right
		prev.right.left = &c.node
		prev.right = &c.node
		m.cols[i] = c
		prev = &c.node
	}
	return m
}

// Columns returns the number of constraint columns.
func (m *Matrix) Columns() int { return len(m.cols) }

// Rows returns the number of candidate rows added so far.
func (m *Matrix) Rows() int { return m.rows }

// AddRow links one candidate row with a node in each of the given columns,
// in the order provided. tag identifies the row in solutions; it is opaque
// to the matrix. Rows must not be added while a search is in progress.
func (m *Matrix) AddRow(tag int, columns []int) error {
	if len(columns) == 0 {
		return errors.New("dlx: row covers no columns")
	}
	var first, prev *node
	for _, id := range columns {
		if id < 0 || id >= len(m.cols) {
			return fmt.Errorf("dlx: column %d out of range", id)
		}
		c := m.cols[id]
		n := &node{col: c, tag: tag}
		// vertical insert at the bottom of the column
		n.down = &c.node
		n.up = c.node.up
		c.node.up.down = n
		c.node.up = n
		c.size++
		// horizontal ring in insertion order
		if first == nil {
			first = n
			n.left = n
			n.right = n
		} else {
			n.left = prev
			n.right = prev.right
			prev.right.left = n
			prev.right = n
		}
		prev = n
	}
	m.rows++
	return nil
}

// cover removes c from the header ring, then unlinks every row with a node
// in c from all of that row's other columns. Nothing is deallocated; the
// unlinked nodes keep their neighbor pointers so uncover can splice them
// back exactly where they were.
func (m *Matrix) cover(c *column) {
	c.right.left = c.left
	c.left.right = c.right
	for i := c.down; i != &c.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

// uncover is the exact inverse of cover: rows are replayed bottom-to-top
// and right-to-left so every node returns to its prior ring position, then
// c rejoins the header ring between its old neighbors.
func (m *Matrix) uncover(c *column) {
	for i := c.up; i != &c.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	c.right.left = &c.node
	c.left.right = &c.node
}

// chooseColumn returns the uncovered column with the fewest live nodes,
// first encountered winning ties (Knuth's S heuristic). It returns nil when
// only the root remains, meaning every constraint is satisfied.
func (m *Matrix) chooseColumn() *column {
	var best *column
	for cur := m.root.right; cur != &m.root.node; cur = cur.right {
		c := cur.col
		if best == nil || c.size < best.size {
			best = c
			if c.size == 0 {
				break
			}
		}
	}
	return best
}
