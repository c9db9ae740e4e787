// Package nqueens provides constraint-based N-Queens solving.
// This file implements an exact backtracking solver with MRV, LCV, and
// AC-3 propagation on every assignment. Complete but exponential; use
// it for small boards or as an oracle, not for n approaching 1000.
package nqueens

import "sort"

// SolveBacktracking finds a solution by systematic CSP search over full
// column domains. Returns nil when no solution exists (n = 2, 3).
// Unlike the local-search path this solver assigns columns freely, so
// it enforces the full pairwise constraint including column uniqueness.
func SolveBacktracking(n int) []int {
	domains := make([]ColSet, n)
	rows := make([]int, n)
	for i := range domains {
		domains[i] = FullColSet(n)
		rows[i] = i
	}
	if !ac3AllPairs(domains, rows) {
		return nil
	}
	assigned := make([]bool, n)
	return backtrack(domains, assigned, 0, n)
}

// backtrack recursively assigns rows in MRV order, trying columns in
// LCV order and propagating each assignment with AC-3.
func backtrack(domains []ColSet, assigned []bool, numAssigned, n int) []int {
	if numAssigned == n {
		board := make([]int, n)
		for row := range board {
			board[row] = domains[row].ToSlice()[0]
		}
		return board
	}

	row := selectUnassignedRow(domains, assigned, n)

	for _, col := range lcvOrder(row, domains, assigned, n) {
		next := make([]ColSet, n)
		for i := range domains {
			next[i] = domains[i].Clone()
		}
		next[row] = NewColSetFromValues(n, []int{col})

		queue := make([]Arc, 0, n-1)
		for other := 0; other < n; other++ {
			if other != row {
				queue = append(queue, Arc{other, row})
			}
		}
		if !ac3FullConstraint(next, queue, n) {
			continue
		}

		assigned[row] = true
		if board := backtrack(next, assigned, numAssigned+1, n); board != nil {
			return board
		}
		assigned[row] = false
	}
	return nil
}

// selectUnassignedRow applies MRV: smallest domain, then smallest row
// index for reproducibility.
func selectUnassignedRow(domains []ColSet, assigned []bool, n int) int {
	best := -1
	bestCount := n + 1
	for row := 0; row < n; row++ {
		if assigned[row] {
			continue
		}
		if c := domains[row].Count(); c < bestCount {
			bestCount = c
			best = row
		}
	}
	return best
}

// lcvOrder sorts a row's candidate columns by how many values they
// would eliminate from unassigned neighbors' domains, fewest first,
// column index as tie-break.
func lcvOrder(row int, domains []ColSet, assigned []bool, n int) []int {
	var neighbors []int
	for other := 0; other < n; other++ {
		if other != row && !assigned[other] {
			neighbors = append(neighbors, other)
		}
	}

	cols := domains[row].ToSlice()
	type scored struct{ col, eliminated int }
	order := make([]scored, len(cols))
	for i, col := range cols {
		removed := 0
		for _, other := range neighbors {
			// For a fixed row pair a column rules out at most three
			// neighbor values: the same column and the two diagonals.
			dist := absInt(other - row)
			if domains[other].Has(col) {
				removed++
			}
			if domains[other].Has(col + dist) {
				removed++
			}
			if domains[other].Has(col - dist) {
				removed++
			}
		}
		order[i] = scored{col, removed}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].eliminated != order[j].eliminated {
			return order[i].eliminated < order[j].eliminated
		}
		return order[i].col < order[j].col
	})

	out := make([]int, len(order))
	for i, s := range order {
		out[i] = s.col
	}
	return out
}

// ac3AllPairs runs full-constraint AC-3 seeded with every ordered row
// pair.
func ac3AllPairs(domains []ColSet, rows []int) bool {
	queue := make([]Arc, 0, len(rows)*(len(rows)-1))
	for _, xi := range rows {
		for _, xj := range rows {
			if xi != xj {
				queue = append(queue, Arc{xi, xj})
			}
		}
	}
	return ac3FullConstraint(domains, queue, len(rows))
}

// ac3FullConstraint is the AC-3 worklist loop under the full pairwise
// constraint (column plus diagonals), as required when columns are
// assigned freely rather than swapped within a permutation.
func ac3FullConstraint(domains []ColSet, queue []Arc, n int) bool {
	for head := 0; head < len(queue); head++ {
		arc := queue[head]
		if !reviseFull(domains, arc.Xi, arc.Xj) {
			continue
		}
		if domains[arc.Xi].IsEmpty() {
			return false
		}
		for xk := 0; xk < n; xk++ {
			if xk != arc.Xi && xk != arc.Xj {
				queue = append(queue, Arc{xk, arc.Xi})
			}
		}
	}
	return true
}

// reviseFull removes values of domains[xi] with no fully compatible
// value in domains[xj]. At most three opposing values are incompatible
// with a candidate, so domains larger than three always support it.
func reviseFull(domains []ColSet, xi, xj int) bool {
	dist := absInt(xi - xj)
	dj := &domains[xj]

	support := func(v int) bool {
		switch cnt := dj.Count(); {
		case cnt == 0:
			return false
		case cnt > 3:
			return true
		default:
			found := false
			dj.IterateValues(func(w int) {
				if w != v && w != v-dist && w != v+dist {
					found = true
				}
			})
			return found
		}
	}

	var removed []int
	domains[xi].IterateValues(func(v int) {
		if !support(v) {
			removed = append(removed, v)
		}
	})
	if len(removed) == 0 {
		return false
	}
	for _, v := range removed {
		domains[xi].Remove(v)
	}
	return true
}
