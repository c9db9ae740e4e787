// Package nqueens provides constraint-based N-Queens solving.
// This file defines the solver orchestration entry points and the
// terminal Result value.
package nqueens

import (
	"context"
	"fmt"
	"math/rand"
)

// Result is the terminal outcome of a solver run. Running out of steps
// is reported as data (Solved == false), never as an error: callers
// check the result rather than recover from a fault.
type Result struct {
	// Board is the solution when Solved, otherwise the best board
	// observed during the run, kept for diagnostics.
	Board []int

	// Solved reports whether Board has zero conflicts.
	Solved bool

	// StepsUsed counts search iterations consumed across all restarts.
	StepsUsed int

	// Restarts counts how many times the search reinitialized from a
	// fresh random permutation.
	Restarts int
}

// String summarizes the outcome for diagnostics.
func (r Result) String() string {
	if r.Solved {
		return fmt.Sprintf("solved in %d steps (%d restarts)", r.StepsUsed, r.Restarts)
	}
	return fmt.Sprintf("unsolved after %d steps (%d restarts)", r.StepsUsed, r.Restarts)
}

// Solve runs min-conflicts search from the given initial permutation
// under a process-wide step budget. The initial board must be a
// permutation of 0..n-1; file input is validated by ReadBoard before it
// reaches the solver.
//
// All randomness derives from seed, so identical (initial, maxSteps,
// seed) inputs always produce an identical Result, restarts included.
func Solve(initial []int, maxSteps int, seed int64) Result {
	return SolveContext(context.Background(), initial, maxSteps, seed)
}

// SolveContext is Solve with cooperative cancellation. The context is
// polled between steps; a cancelled run returns an unsolved Result with
// the steps consumed so far. Used by the portfolio runner to stop
// losing attempts early.
func SolveContext(ctx context.Context, initial []int, maxSteps int, seed int64) Result {
	st := NewStateFromBoard(initial)
	p := DefaultParams(st.N())
	rng := rand.New(rand.NewSource(seed))

	solved, steps, restarts, board := runMinConflicts(ctx, st, p, maxSteps, rng)
	return Result{
		Board:     board,
		Solved:    solved,
		StepsUsed: steps,
		Restarts:  restarts,
	}
}

// SolveRandom solves from a random initial permutation of size n drawn
// from the same seeded source that drives the search.
func SolveRandom(n, maxSteps int, seed int64) Result {
	rng := rand.New(rand.NewSource(seed))
	st := NewState(n, rng)
	p := DefaultParams(n)

	solved, steps, restarts, board := runMinConflicts(context.Background(), st, p, maxSteps, rng)
	return Result{
		Board:     board,
		Solved:    solved,
		StepsUsed: steps,
		Restarts:  restarts,
	}
}
