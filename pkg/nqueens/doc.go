// Package nqueens solves the N-Queens constraint satisfaction problem
// with iterative local search.
//
// The board is modeled as a permutation: index is the row, value is the
// column, so column conflicts are structurally impossible and only the
// two diagonal families need conflict accounting. The primary solver is
// min-conflicts with MRV row selection, LCV value selection, periodic
// AC-3 propagation over capped row domains, stagnation detection, and
// random restarts under a process-wide step budget.
//
// The package also provides an exact MRV/LCV/AC-3 backtracking solver
// for small boards, board generators under several difficulty policies,
// a board file reader/writer, and a parallel portfolio runner that
// races independently seeded solver attempts.
//
// All randomness flows through explicitly threaded *rand.Rand
// instances, so a fixed seed reproduces an entire run including
// restarts and tie-breaks.
package nqueens
