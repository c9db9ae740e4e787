// Package nqueens provides constraint-based N-Queens solving.
// This file implements the parallel portfolio runner: independently
// seeded solver attempts raced on a worker pool, first solution wins.
// Each attempt is the ordinary single-threaded solver; no state is
// shared between attempts.
package nqueens

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/OmarImamverdiyev/N-Queens/internal/parallel"
)

// SolvePortfolio races attempts independently seeded solver runs, each
// with its own full step budget, on up to NumCPU workers. The first
// attempt to solve cancels the rest; if none solves, the failed result
// whose board has the fewest attacking pairs is returned.
//
// Attempt i uses seed+i, so the portfolio as a whole is reproducible up
// to which attempt finishes first.
func SolvePortfolio(n, maxSteps, attempts int, seed int64) Result {
	if attempts <= 1 {
		return SolveRandom(n, maxSteps, seed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := parallel.NewWorkerPool(minInt(attempts, runtime.NumCPU()))
	defer pool.Shutdown()

	results := make(chan Result, attempts)

	go func() {
		for i := 0; i < attempts; i++ {
			attemptSeed := seed + int64(i)
			err := pool.Submit(ctx, func() {
				results <- solveAttempt(ctx, n, maxSteps, attemptSeed)
			})
			if err != nil {
				// Pool rejected the attempt (cancelled after a win);
				// report it as an unstarted failure to keep the count.
				results <- Result{Solved: false}
			}
		}
	}()

	var best Result
	haveBest := false
	for i := 0; i < attempts; i++ {
		r := <-results
		if r.Solved {
			if !haveBest || !best.Solved {
				best = r
				haveBest = true
			}
			cancel()
			continue
		}
		if !haveBest || (!best.Solved && betterFailure(r, best)) {
			best = r
			haveBest = true
		}
	}
	return best
}

// solveAttempt runs one seeded attempt under the shared cancellation
// context.
func solveAttempt(ctx context.Context, n, maxSteps int, seed int64) Result {
	rng := rand.New(rand.NewSource(seed))
	st := NewState(n, rng)

	solved, steps, restarts, board := runMinConflicts(ctx, st, DefaultParams(n), maxSteps, rng)
	return Result{
		Board:     board,
		Solved:    solved,
		StepsUsed: steps,
		Restarts:  restarts,
	}
}

// betterFailure orders failed results by how close their board got to a
// solution. Results without a board (rejected attempts) never win.
func betterFailure(a, b Result) bool {
	if a.Board == nil {
		return false
	}
	if b.Board == nil {
		return true
	}
	return ConflictPairs(a.Board) < ConflictPairs(b.Board)
}
