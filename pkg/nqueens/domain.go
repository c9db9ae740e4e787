// Package nqueens provides constraint-based N-Queens solving.
// This file defines ColSet, a bitset over candidate columns used as the
// row-domain representation for AC-3 propagation and backtracking.
package nqueens

import (
	"fmt"
	"math/bits"
	"strings"
)

// ColSet is a set of candidate columns in the range [0, n-1], backed by
// a uint64 bit array. Membership tests and single-value updates are
// O(1); Count uses hardware popcount.
//
// Unlike a persistent domain store, ColSets are pass-scoped scratch
// state: the solver rebuilds them from the current board before each
// propagation pass and mutates them in place while the pass runs.
type ColSet struct {
	n     int
	words []uint64
}

// NewColSet creates an empty set over columns 0..n-1.
func NewColSet(n int) ColSet {
	return ColSet{n: n, words: make([]uint64, (n+63)/64)}
}

// FullColSet creates a set containing every column 0..n-1.
func FullColSet(n int) ColSet {
	s := NewColSet(n)
	for c := 0; c < n; c++ {
		s.words[c/64] |= 1 << uint(c%64)
	}
	return s
}

// NewColSetFromValues creates a set containing the given columns.
// Values outside [0, n-1] are ignored.
func NewColSetFromValues(n int, cols []int) ColSet {
	s := NewColSet(n)
	for _, c := range cols {
		s.Add(c)
	}
	return s
}

// Has reports whether the set contains column c.
func (s ColSet) Has(c int) bool {
	if c < 0 || c >= s.n {
		return false
	}
	return (s.words[c/64]>>uint(c%64))&1 == 1
}

// Add inserts column c. Out-of-range values are ignored.
func (s *ColSet) Add(c int) {
	if c < 0 || c >= s.n {
		return
	}
	s.words[c/64] |= 1 << uint(c%64)
}

// Remove deletes column c. Out-of-range values are ignored.
func (s *ColSet) Remove(c int) {
	if c < 0 || c >= s.n {
		return
	}
	s.words[c/64] &^= 1 << uint(c%64)
}

// Count returns the number of columns in the set.
func (s ColSet) Count() int {
	cnt := 0
	for _, w := range s.words {
		cnt += bits.OnesCount64(w)
	}
	return cnt
}

// IsEmpty reports whether the set contains no columns. An empty row
// domain signals a wipeout during propagation.
func (s ColSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IterateValues calls f for each column in ascending order. f must not
// mutate the set during iteration.
func (s ColSet) IterateValues(f func(c int)) {
	for i, w := range s.words {
		for w != 0 {
			low := w & -w
			f(i*64 + bits.TrailingZeros64(w))
			w &^= low
		}
	}
}

// ToSlice returns the columns as a sorted slice.
func (s ColSet) ToSlice() []int {
	out := make([]int, 0, s.Count())
	s.IterateValues(func(c int) { out = append(out, c) })
	return out
}

// Clone returns an independent copy of the set.
func (s ColSet) Clone() ColSet {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return ColSet{n: s.n, words: words}
}

// String renders the set as "{0,3,7}".
func (s ColSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	s.IterateValues(func(c int) {
		if !first {
			b.WriteString(",")
		}
		first = false
		fmt.Fprintf(&b, "%d", c)
	})
	b.WriteString("}")
	return b.String()
}
