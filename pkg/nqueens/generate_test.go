package nqueens

import (
	"math/rand"
	"testing"
)

func TestGenerateSolved(t *testing.T) {
	t.Run("valid for supported sizes", func(t *testing.T) {
		for _, n := range []int{4, 10, 12, 24, 30, 1000} {
			board, err := GenerateSolved(n)
			if err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
			if !isPermutation(board) {
				t.Fatalf("n=%d: not a permutation: %v", n, board)
			}
			if !IsValid(board) {
				t.Fatalf("n=%d: construction produced an attacked board", n)
			}
		}
	})

	t.Run("rejects odd n", func(t *testing.T) {
		if _, err := GenerateSolved(11); err == nil {
			t.Error("expected an error for odd n")
		}
	})

	t.Run("rejects n = 2 mod 6", func(t *testing.T) {
		for _, n := range []int{8, 14, 20} {
			if _, err := GenerateSolved(n); err == nil {
				t.Errorf("expected an error for n=%d", n)
			}
		}
	})
}

func TestGenerateHardCases(t *testing.T) {
	n := 12
	diag := GenerateDiagonal(n)
	anti := GenerateAntiDiagonal(n)

	for _, board := range [][]int{diag, anti} {
		if !isPermutation(board) {
			t.Fatalf("hard case is not a permutation: %v", board)
		}
	}
	// All queens share one diagonal: every pair attacks.
	if got, want := ConflictPairs(diag), n*(n-1)/2; got != want {
		t.Errorf("diagonal ConflictPairs = %d, want %d", got, want)
	}
	if got, want := ConflictPairs(anti), n*(n-1)/2; got != want {
		t.Errorf("anti-diagonal ConflictPairs = %d, want %d", got, want)
	}
}

func TestGenerateEasy(t *testing.T) {
	const seed = 5
	n := 40

	// GenerateEasy's first sample is exactly the first permutation the
	// seeded source yields, and later samples only ever improve on it.
	firstPairs := ConflictPairs(rand.New(rand.NewSource(seed)).Perm(n))

	easy := GenerateEasy(n, 200, rand.New(rand.NewSource(seed)))
	if !isPermutation(easy) {
		t.Fatalf("not a permutation: %v", easy)
	}
	if got := ConflictPairs(easy); got > firstPairs {
		t.Errorf("easy board has %d pairs, worse than the first sample's %d", got, firstPairs)
	}
}

func TestConflictPairs(t *testing.T) {
	if got := ConflictPairs(solvedBoard10); got != 0 {
		t.Errorf("ConflictPairs(solved) = %d, want 0", got)
	}
	// Non-permutation boards count column clashes too.
	if got, want := ConflictPairs([]int{0, 0, 0}), 3; got != want {
		t.Errorf("ConflictPairs(all same column) = %d, want %d", got, want)
	}
	if got, want := ConflictPairs(GenerateRandom(25, rand.New(rand.NewSource(2)))), bruteForcePairs(GenerateRandom(25, rand.New(rand.NewSource(2)))); got != want {
		t.Errorf("ConflictPairs = %d, brute force = %d", got, want)
	}
}
