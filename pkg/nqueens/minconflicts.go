// Package nqueens provides constraint-based N-Queens solving.
// This file implements the min-conflicts search loop: MRV row
// selection, LCV value selection, periodic AC-3 propagation, stagnation
// detection, and random restarts.
package nqueens

import (
	"context"
	"math/rand"
	"sort"
)

// ctxCheckInterval is how many steps pass between context polls in the
// search loop. Cancellation only matters to the portfolio runner, so
// the poll is kept off the per-step hot path.
const ctxCheckInterval = 256

// runMinConflicts drives the search from the given state until the
// board has zero conflicts, the step budget runs out, or ctx (which may
// be nil) is cancelled. The step counter is process-wide: restarts
// reinitialize the board but never the budget.
//
// Returns whether a solution was reached, the steps consumed, the
// restarts performed, and the final board (the solution when solved,
// otherwise the best board seen, for diagnostics).
func runMinConflicts(ctx context.Context, st *State, p Params, maxSteps int, rng *rand.Rand) (solved bool, steps, restarts int, board []int) {
	n := st.N()
	maxRestarts := restartBudget(maxSteps, p.StagnationLimit)

	bestConflicted := n + 1 // fewest conflicted rows seen since last restart
	stagnant := 0
	bestBoard := st.Board()
	bestTotal := st.TotalConflicts()

	restart := func() {
		st.Randomize(rng)
		restarts++
		bestConflicted = n + 1
		stagnant = 0
	}

	for step := 0; step < maxSteps; step++ {
		if ctx != nil && step%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return false, step, restarts, bestBoard
			default:
			}
		}

		if st.TotalConflicts() == 0 {
			return true, step, restarts, st.Board()
		}
		if st.TotalConflicts() < bestTotal {
			bestTotal = st.TotalConflicts()
			bestBoard = st.Board()
		}

		conflicted := conflictedRows(st)
		if len(conflicted) < bestConflicted {
			bestConflicted = len(conflicted)
			stagnant = 0
		} else {
			stagnant++
		}

		if stagnant >= p.StagnationLimit {
			if restarts < maxRestarts {
				restart()
				continue
			}
			// Restart budget spent: force a noisy move off the plateau.
			noisyMove(st, conflicted, rng)
			stagnant = 0
			continue
		}

		sampled := sampleRows(rng, conflicted, minInt(p.SampleSize, len(conflicted)))

		propagate := step%p.AC3Period == 0 || stagnant >= maxInt(8, 2*p.AC3Period)
		domains, ok := buildDomains(st, sampled, p, propagate)
		if !ok {
			// Domain wipeout: the current trajectory cannot extend to
			// a consistent assignment inside the sampled scope.
			if restarts < maxRestarts {
				restart()
			} else {
				noisyMove(st, conflicted, rng)
				stagnant = 0
			}
			continue
		}

		row := chooseRow(st, sampled, domains, rng)
		col := chooseColumn(st, row, domains[row], rng)
		st.MoveQueen(row, col)
	}

	if st.TotalConflicts() == 0 {
		return true, maxSteps, restarts, st.Board()
	}
	if st.TotalConflicts() < bestTotal {
		bestBoard = st.Board()
	}
	return false, maxSteps, restarts, bestBoard
}

// conflictedRows returns every row whose queen is attacked.
func conflictedRows(st *State) []int {
	rows := make([]int, 0, st.N())
	for row := 0; row < st.N(); row++ {
		if st.ConflictsOf(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// sampleRows draws k distinct rows uniformly without replacement via a
// partial Fisher-Yates shuffle. The input slice is not modified.
func sampleRows(rng *rand.Rand, rows []int, k int) []int {
	if k >= len(rows) {
		return append([]int(nil), rows...)
	}
	pool := append([]int(nil), rows...)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// bestColumns scans every column for a row and returns the minimum
// achievable conflict count together with all columns achieving it.
func bestColumns(st *State, row int) (minConf int, cols []int) {
	minConf = st.N() + 1
	for col := 0; col < st.N(); col++ {
		c := st.Conflicts(row, col)
		switch {
		case c < minConf:
			minConf = c
			cols = append(cols[:0], col)
		case c == minConf:
			cols = append(cols, col)
		}
	}
	return minConf, cols
}

// capDomain trims a candidate column list to at most maxSize values,
// preferring columns close to the row's current one (deterministic so a
// fixed seed reproduces domains exactly). The current column is always
// a member of the result: the domain must contain the row's committed
// value while domains are in use.
func capDomain(st *State, row int, cols []int, maxSize int) ColSet {
	cur := st.Col(row)
	if len(cols) > maxSize {
		trimmed := append([]int(nil), cols...)
		sort.Slice(trimmed, func(i, j int) bool {
			di, dj := absInt(trimmed[i]-cur), absInt(trimmed[j]-cur)
			if di != dj {
				return di < dj
			}
			return trimmed[i] < trimmed[j]
		})
		cols = trimmed[:maxSize]
	}
	dom := NewColSetFromValues(st.N(), cols)
	dom.Add(cur)
	return dom
}

// buildDomains rebuilds capped row domains for the sampled rows from
// the current board, seeding each with that row's minimum-conflict
// columns, and optionally runs AC-3 over them. Reports ok=false on a
// domain wipeout, telling the caller to abandon the trajectory.
func buildDomains(st *State, rows []int, p Params, propagate bool) (domains []ColSet, ok bool) {
	domains = make([]ColSet, st.N())
	for _, row := range rows {
		_, cols := bestColumns(st, row)
		domains[row] = capDomain(st, row, cols, p.DomainCap)
	}
	if propagate && len(rows) > 1 {
		if !AC3(domains, rows, nil) {
			return nil, false
		}
	}
	return domains, true
}

// chooseRow picks the next row to repair among the sampled rows (MRV):
// most conflicts first, then the smaller propagated domain, with a
// uniform random pick among exact ties. The stable pass over the
// sampled order keeps runs reproducible under a fixed seed while the
// random tie-break avoids deterministic cycling.
func chooseRow(st *State, sampled []int, domains []ColSet, rng *rand.Rand) int {
	bestConf := -1
	bestSize := st.N() + 1
	var ties []int
	for _, row := range sampled {
		conf := st.ConflictsOf(row)
		size := domains[row].Count()
		if conf > bestConf || (conf == bestConf && size < bestSize) {
			bestConf = conf
			bestSize = size
			ties = append(ties[:0], row)
		} else if conf == bestConf && size == bestSize {
			ties = append(ties, row)
		}
	}
	return ties[rng.Intn(len(ties))]
}

// chooseColumn picks a target column for the row from its domain (LCV):
// the column yielding the fewest resulting conflicts for the row,
// scored with O(1) counter deltas, random among exact ties. When the
// minimum is only achieved by the current column the move would be a
// no-op, so a full scan picks the least bad alternative instead; that
// sideways move is still taken to traverse plateaus.
func chooseColumn(st *State, row int, domain ColSet, rng *rand.Rand) int {
	cur := st.Col(row)

	bestConf := st.N() + 1
	var ties []int
	domain.IterateValues(func(col int) {
		c := st.Conflicts(row, col)
		switch {
		case c < bestConf:
			bestConf = c
			ties = append(ties[:0], col)
		case c == bestConf:
			ties = append(ties, col)
		}
	})

	// Prefer actual movement when an equally good alternative exists.
	if len(ties) > 1 {
		moving := ties[:0]
		for _, col := range ties {
			if col != cur {
				moving = append(moving, col)
			}
		}
		ties = moving
	}
	if len(ties) == 1 && ties[0] == cur {
		return sidewaysFallback(st, row)
	}
	return ties[rng.Intn(len(ties))]
}

// sidewaysFallback scans the whole board for the least-conflicting
// column other than the current one, breaking ties by closeness to the
// current column and then column order.
func sidewaysFallback(st *State, row int) int {
	cur := st.Col(row)
	bestConf := st.N() + 1
	best := cur
	for col := 0; col < st.N(); col++ {
		if col == cur {
			continue
		}
		c := st.Conflicts(row, col)
		if c < bestConf {
			bestConf = c
			best = col
			continue
		}
		if c == bestConf {
			if d, bd := absInt(col-cur), absInt(best-cur); d < bd || (d == bd && col < best) {
				best = col
			}
		}
	}
	return best
}

// noisyMove relocates a random conflicted queen to a random column
// among its minimum-conflict alternatives, falling back to any other
// column when the minimum set collapses to its current position.
func noisyMove(st *State, conflicted []int, rng *rand.Rand) {
	row := conflicted[rng.Intn(len(conflicted))]
	cur := st.Col(row)

	_, cols := bestColumns(st, row)
	choices := cols[:0]
	for _, col := range cols {
		if col != cur {
			choices = append(choices, col)
		}
	}
	if len(choices) == 0 {
		col := rng.Intn(st.N() - 1)
		if col >= cur {
			col++
		}
		st.MoveQueen(row, col)
		return
	}
	st.MoveQueen(row, choices[rng.Intn(len(choices))])
}
