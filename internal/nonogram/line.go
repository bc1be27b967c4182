package nonogram

import "svw.info/puzzles/internal/domain"

// narrowLine sets every Blank cell that takes the same state in all legal
// placements of runs on the line, mutating cells in place. It reports
// whether anything changed and whether any legal placement exists at all.
func narrowLine(cells []domain.CellState, runs []int) (changed, ok bool) {
	n := len(cells)
	k := len(runs)

	const (
		unknown int8 = iota
		yes
		no
	)
	memo := make([][]int8, n+1)
	for i := range memo {
		memo[i] = make([]int8, k+1)
	}

	// feasible reports whether cells[pos:] can realize runs[run:].
	var feasible func(pos, run int) bool
	// place reports whether runs[run] can start exactly at pos with a
	// feasible remainder.
	var place func(pos, run int) bool

	feasible = func(pos, run int) bool {
		if m := memo[pos][run]; m != unknown {
			return m == yes
		}
		res := false
		if run == k {
			res = true
			for i := pos; i < n; i++ {
				if cells[i] == domain.Filled {
					res = false
					break
				}
			}
		} else if pos < n {
			if cells[pos] != domain.Filled && feasible(pos+1, run) {
				res = true
			} else {
				res = place(pos, run)
			}
		}
		if res {
			memo[pos][run] = yes
		} else {
			memo[pos][run] = no
		}
		return res
	}

	place = func(pos, run int) bool {
		r := runs[run]
		if pos+r > n {
			return false
		}
		for i := pos; i < pos+r; i++ {
			if cells[i] == domain.Blocked {
				return false
			}
		}
		if pos+r == n {
			return feasible(n, run+1)
		}
		if cells[pos+r] == domain.Filled {
			return false
		}
		return feasible(pos+r+1, run+1)
	}

	if !feasible(0, 0) {
		return false, false
	}

	// walk every state reachable inside some legal placement, recording
	// which cells can be filled and which can be left empty
	canFill := make([]bool, n)
	canBlock := make([]bool, n)
	visited := make([][]bool, n+1)
	for i := range visited {
		visited[i] = make([]bool, k+1)
	}
	var mark func(pos, run int)
	mark = func(pos, run int) {
		if visited[pos][run] {
			return
		}
		visited[pos][run] = true
		if run == k {
			for i := pos; i < n; i++ {
				canBlock[i] = true
			}
			return
		}
		if pos >= n {
			return
		}
		if cells[pos] != domain.Filled && feasible(pos+1, run) {
			canBlock[pos] = true
			mark(pos+1, run)
		}
		if place(pos, run) {
			r := runs[run]
			for i := pos; i < pos+r; i++ {
				canFill[i] = true
			}
			if pos+r < n {
				canBlock[pos+r] = true
				mark(pos+r+1, run+1)
			} else {
				mark(n, run+1)
			}
		}
	}
	mark(0, 0)

	for i := range cells {
		if cells[i] != domain.Blank {
			continue
		}
		switch {
		case canFill[i] && !canBlock[i]:
			cells[i] = domain.Filled
			changed = true
		case canBlock[i] && !canFill[i]:
			cells[i] = domain.Blocked
			changed = true
		}
	}
	return changed, true
}
