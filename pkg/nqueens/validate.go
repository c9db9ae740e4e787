package nqueens

// IsValid reports whether a finished board is a solution: a permutation
// with no two queens sharing a column or diagonal. Plain O(n²) pairwise
// re-check, independent of the incremental counters, intended as the
// post-hoc verification step.
func IsValid(board []int) bool {
	n := len(board)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !Compatible(i, board[i], j, board[j]) {
				return false
			}
		}
	}
	return true
}
