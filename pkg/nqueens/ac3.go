// Package nqueens provides constraint-based N-Queens solving.
// This file implements AC-3 arc consistency restricted to the diagonal
// constraints between rows.
package nqueens

// Compatible reports whether queens at (rowA,colA) and (rowB,colB) in
// distinct rows do not attack each other: different columns and
// different diagonals. This is the full pairwise constraint, used by
// the validator and the backtracking solver.
func Compatible(rowA, colA, rowB, colB int) bool {
	if colA == colB {
		return false
	}
	return absInt(colA-colB) != absInt(rowA-rowB)
}

// Arc is an ordered pair of rows whose constraint is pending revision.
// Processing an Arc{Xi, Xj} may shrink the domain of Xi.
type Arc struct {
	Xi, Xj int
}

// hasSupport reports whether candidate column v for one row has at
// least one diagonally compatible column in the opposing domain dj,
// where dist is the row distance between the two rows.
//
// Constant-time support check: for a fixed dist, only v-dist and
// v+dist are incompatible with v, so any domain with more than two
// columns necessarily supplies support without being scanned.
func hasSupport(v int, dj *ColSet, dist int) bool {
	switch cnt := dj.Count(); {
	case cnt == 0:
		return false
	case cnt > 2:
		return true
	default:
		found := false
		dj.IterateValues(func(w int) {
			if w != v-dist && w != v+dist {
				found = true
			}
		})
		return found
	}
}

// Revise removes from domains[xi] every column with no diagonally
// compatible column in domains[xj]. Reports whether anything was
// removed. Column equality between the two rows is not pruned here:
// under swap-based moves the permutation makes column clashes
// structurally impossible, so only diagonal disjointness is enforced.
func Revise(domains []ColSet, xi, xj int) bool {
	dist := absInt(xi - xj)
	dj := &domains[xj]

	var removed []int
	domains[xi].IterateValues(func(v int) {
		if !hasSupport(v, dj, dist) {
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

// AC3 enforces arc consistency on the domains of the given active rows.
// When queue is nil, the worklist is seeded with every ordered pair of
// active rows; callers may instead seed specific arcs (e.g. after a
// single assignment). Whenever a revision shrinks a row's domain, the
// arcs pointing into that row from its other neighbors are re-enqueued.
//
// Returns false as soon as any active row's domain is wiped out; the
// caller treats that as a signal to abandon the current trajectory, not
// as an error.
func AC3(domains []ColSet, activeRows []int, queue []Arc) bool {
	if len(activeRows) < 2 {
		return true
	}

	active := make(map[int]bool, len(activeRows))
	for _, r := range activeRows {
		active[r] = true
	}

	if queue == nil {
		queue = make([]Arc, 0, len(activeRows)*(len(activeRows)-1))
		for _, xi := range activeRows {
			for _, xj := range activeRows {
				if xi != xj {
					queue = append(queue, Arc{xi, xj})
				}
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		arc := queue[head]
		if !active[arc.Xi] || !active[arc.Xj] {
			continue
		}
		if !Revise(domains, arc.Xi, arc.Xj) {
			continue
		}
		if domains[arc.Xi].IsEmpty() {
			return false
		}
		for _, xk := range activeRows {
			if xk != arc.Xi && xk != arc.Xj {
				queue = append(queue, Arc{xk, arc.Xi})
			}
		}
	}
	return true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
