// Package nqueens provides constraint-based N-Queens solving.
// This file defines the adaptive solver parameters derived from the
// board size.
package nqueens

// Params bounds the per-step work of the min-conflicts solver. The
// orchestrator computes Params once from n before a run starts and the
// struct is never mutated afterwards; it is passed by value into the
// search loop and the propagator.
//
//   - SampleSize: how many conflicted rows are sampled per step for
//     MRV selection.
//   - DomainCap: maximum size of a rebuilt row domain before
//     propagation.
//   - AC3Period: AC-3 runs on steps where step%AC3Period == 0.
//   - StagnationLimit: steps without improvement before a restart.
type Params struct {
	SampleSize      int
	DomainCap       int
	AC3Period       int
	StagnationLimit int
}

// DefaultParams derives solver parameters from the board size. Three
// bands keep per-step cost roughly flat as n grows to 1000: the sample
// and domain caps shrink while the propagation period stretches, so
// AC-3 amortizes to a small fraction of total steps. The stagnation
// limit scales with n because larger boards take longer plateaus to
// traverse.
func DefaultParams(n int) Params {
	switch {
	case n >= 400:
		return Params{
			SampleSize:      minInt(8, n),
			DomainCap:       minInt(6, n),
			AC3Period:       6,
			StagnationLimit: maxInt(80, n/2),
		}
	case n >= 100:
		return Params{
			SampleSize:      minInt(12, n),
			DomainCap:       minInt(8, n),
			AC3Period:       4,
			StagnationLimit: maxInt(100, n),
		}
	default:
		return Params{
			SampleSize:      minInt(30, n),
			DomainCap:       minInt(12, n),
			AC3Period:       1,
			StagnationLimit: maxInt(120, n*6),
		}
	}
}

// restartBudget bounds how many random restarts a run may spend. Tied
// to the step budget so short runs do not burn all their steps on
// reinitialization.
func restartBudget(maxSteps, stagnationLimit int) int {
	b := maxSteps / maxInt(1, stagnationLimit)
	return maxInt(4, minInt(60, b))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
