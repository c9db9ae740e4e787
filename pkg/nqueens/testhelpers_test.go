package nqueens

import "os"

// solvedBoard10 is a known-valid 10-queens solution (the staircase
// construction) used as a fixture across tests.
var solvedBoard10 = []int{1, 3, 5, 7, 9, 0, 2, 4, 6, 8}

// shouldRunHeavy returns true when heavy/long-running tests should run
// even in short mode. Set NQUEENS_FORCE_HEAVY=1 (or "true") to override
// short-mode skips.
func shouldRunHeavy() bool {
	v := os.Getenv("NQUEENS_FORCE_HEAVY")
	return v == "1" || v == "true" || v == "TRUE" || v == "True"
}

// isPermutation reports whether board holds each of 0..n-1 exactly once.
func isPermutation(board []int) bool {
	seen := make([]bool, len(board))
	for _, col := range board {
		if col < 0 || col >= len(board) || seen[col] {
			return false
		}
		seen[col] = true
	}
	return true
}

// bruteForcePairs counts attacking pairs by scanning all row pairs,
// independent of any incremental accounting.
func bruteForcePairs(board []int) int {
	pairs := 0
	for i := 0; i < len(board); i++ {
		for j := i + 1; j < len(board); j++ {
			if !Compatible(i, board[i], j, board[j]) {
				pairs++
			}
		}
	}
	return pairs
}
