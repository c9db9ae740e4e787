// Package nqueens provides constraint-based N-Queens solving.
// This file defines the board state with incremental conflict
// accounting, the single mutation primitive used by every solver.
package nqueens

import (
	"fmt"
	"math/rand"
	"strings"
)

// State represents an N-Queens board where index=row and value=column.
//
// The board is always a permutation of 0..n-1: one queen per row by
// construction, one queen per column because the only mutation is a
// column swap between two rows. Queens can therefore only attack along
// the two diagonal families, and State maintains one occupancy counter
// per diagonal so conflict queries are O(1) and moves update in O(1):
//   - diag1[row-col+n-1]: main diagonals (row-col constant)
//   - diag2[row+col]:     anti-diagonals (row+col constant)
//
// A running total of attacking pairs is kept in sync with the counters,
// so TotalConflicts never rescans the board.
type State struct {
	n     int
	board []int // board[row] = column
	rowOf []int // rowOf[col] = row, inverse permutation
	diag1 []int // indexed by row-col+n-1, length 2n-1
	diag2 []int // indexed by row+col, length 2n-1
	total int   // attacking pairs across both diagonal families
}

// NewState creates a board of size n holding a uniformly random
// permutation drawn from rng. n is assumed valid; range checking is the
// caller's concern.
func NewState(n int, rng *rand.Rand) *State {
	s := &State{
		n:     n,
		board: rng.Perm(n),
		rowOf: make([]int, n),
		diag1: make([]int, 2*n-1),
		diag2: make([]int, 2*n-1),
	}
	s.rebuild()
	return s
}

// NewStateFromBoard creates a board from a caller-supplied permutation.
// The slice is copied; the caller is responsible for having validated
// that it is a permutation of 0..len(board)-1.
func NewStateFromBoard(board []int) *State {
	n := len(board)
	s := &State{
		n:     n,
		board: append([]int(nil), board...),
		rowOf: make([]int, n),
		diag1: make([]int, 2*n-1),
		diag2: make([]int, 2*n-1),
	}
	s.rebuild()
	return s
}

// rebuild recomputes counters, the inverse permutation, and the running
// pair total from the board in O(n). Called once per (re)initialization;
// all later updates are incremental.
func (s *State) rebuild() {
	for i := range s.diag1 {
		s.diag1[i] = 0
		s.diag2[i] = 0
	}
	s.total = 0
	for row, col := range s.board {
		s.rowOf[col] = row
		s.addQueen(row, col)
	}
}

// addQueen records a queen on its two diagonals, counting the new
// attacking pairs it forms.
func (s *State) addQueen(row, col int) {
	d1 := row - col + s.n - 1
	d2 := row + col
	s.total += s.diag1[d1]
	s.diag1[d1]++
	s.total += s.diag2[d2]
	s.diag2[d2]++
}

// removeQueen removes a queen from its two diagonals, discounting the
// attacking pairs it participated in.
func (s *State) removeQueen(row, col int) {
	d1 := row - col + s.n - 1
	d2 := row + col
	s.diag1[d1]--
	s.total -= s.diag1[d1]
	s.diag2[d2]--
	s.total -= s.diag2[d2]
}

// N returns the board size.
func (s *State) N() int { return s.n }

// Col returns the column of the queen in the given row.
func (s *State) Col(row int) int { return s.board[row] }

// Board returns a copy of the current permutation.
func (s *State) Board() []int {
	return append([]int(nil), s.board...)
}

// Conflicts returns the number of queens the queen of the given row
// would attack if it sat at col. O(1): pure counter reads, minus the
// queen's own contribution when col is its current column.
func (s *State) Conflicts(row, col int) int {
	c := s.diag1[row-col+s.n-1] + s.diag2[row+col]
	if s.board[row] == col {
		c -= 2
	}
	return c
}

// ConflictsOf returns how many other queens attack the queen in row.
func (s *State) ConflictsOf(row int) int {
	return s.Conflicts(row, s.board[row])
}

// TotalConflicts returns the number of attacking pairs on the board,
// maintained incrementally. Zero means solved.
func (s *State) TotalConflicts() int { return s.total }

// MoveQueen moves the queen in row to newCol by swapping columns with
// the row that currently holds newCol. The swap preserves the
// permutation invariant and updates counters and the pair total by the
// exact delta in O(1). Moving a queen onto its own column is a no-op.
func (s *State) MoveQueen(row, newCol int) {
	oldCol := s.board[row]
	if newCol == oldCol {
		return
	}
	other := s.rowOf[newCol]

	s.removeQueen(row, oldCol)
	s.removeQueen(other, newCol)

	s.board[row] = newCol
	s.board[other] = oldCol
	s.rowOf[newCol] = row
	s.rowOf[oldCol] = other

	s.addQueen(row, newCol)
	s.addQueen(other, oldCol)
}

// Randomize replaces the board with a fresh random permutation and
// rebuilds counters. Used on solver restarts.
func (s *State) Randomize(rng *rand.Rand) {
	copy(s.board, rng.Perm(s.n))
	s.rebuild()
}

// String renders the permutation compactly, truncating large boards.
func (s *State) String() string {
	var b strings.Builder
	b.WriteString("[")
	for row, col := range s.board {
		if row > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", col)
		if row >= 19 && s.n > 20 {
			fmt.Fprintf(&b, " ...+%d more", s.n-20)
			break
		}
	}
	b.WriteString("]")
	return b.String()
}
