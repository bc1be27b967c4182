package dlx

import "context"

// Stats reports the work done by one search.
type Stats struct {
	Solutions int
	Nodes     int
}

// Visitor receives each complete cover as the tags of its chosen rows in
// selection order. Returning false stops the search. The slice is reused
// between calls; copy it if it needs to outlive the visit.
type Visitor func(tags []int) bool

// Solve runs Algorithm X over the matrix, calling visit for every exact
// cover found until the matrix is exhausted or visit returns false. The
// search is deterministic: columns are chosen by minimum size with ties
// broken by ring order, and rows are tried in ring order.
//
// Cancellation is observed between row attempts only, never inside a
// cover/uncover pair, so the matrix is always restored to its initial state
// before Solve returns, whatever the outcome.
func (m *Matrix) Solve(ctx context.Context, visit Visitor) (Stats, error) {
	s := &searcher{ctx: ctx, m: m, visit: visit}
	s.run()
	return Stats{Solutions: s.found, Nodes: s.nodes}, s.err
}

// SolveFirst returns the tags of the first solution in deterministic order,
// or nil when the matrix has no exact cover.
func (m *Matrix) SolveFirst(ctx context.Context) ([]int, Stats, error) {
	var out []int
	st, err := m.Solve(ctx, func(tags []int) bool {
		out = append([]int(nil), tags...)
		return false
	})
	return out, st, err
}

type searcher struct {
	ctx   context.Context
	m     *Matrix
	visit Visitor
	stack []int
	found int
	nodes int
	err   error
}

// run reports whether the search should stop unwinding. Each level uncovers
// whatever it covered before returning, in exact reverse order, so the
// structure is intact both on success and on backtrack.
func (s *searcher) run() bool {
	m := s.m
	if m.root.right == &m.root.node {
		s.found++
		return !s.visit(s.stack)
	}

	c := m.chooseColumn()
	if c.size == 0 {
		// an uncovered column no row can satisfy: dead branch
		return false
	}
	m.cover(c)
	for r := c.down; r != &c.node; r = r.down {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			break
		}
		s.nodes++
		s.stack = append(s.stack, r.tag)
		for j := r.right; j != r; j = j.right {
			m.cover(j.col)
		}
		stop := s.run()
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
		s.stack = s.stack[:len(s.stack)-1]
		if stop {
			m.uncover(c)
			return true
		}
	}
	m.uncover(c)
	return false
}
