package nqueens

import (
	"reflect"
	"testing"
)

func TestSolvePortfolio(t *testing.T) {
	t.Run("races attempts to a valid solution", func(t *testing.T) {
		res := SolvePortfolio(30, 200_000, 4, 1)
		if !res.Solved {
			t.Fatalf("unsolved: %s", res)
		}
		if !IsValid(res.Board) {
			t.Errorf("invalid solution: %v", res.Board)
		}
	})

	t.Run("single attempt degenerates to the sequential solver", func(t *testing.T) {
		a := SolvePortfolio(20, 50_000, 1, 9)
		b := SolveRandom(20, 50_000, 9)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("portfolio(1) = %+v, sequential = %+v", a, b)
		}
	})

	t.Run("all attempts failing returns a diagnostic board", func(t *testing.T) {
		// A zero budget guarantees every attempt fails.
		res := SolvePortfolio(20, 0, 3, 1)
		if res.Solved {
			t.Fatal("Solved = true with a zero step budget")
		}
		if res.Board == nil || !isPermutation(res.Board) {
			t.Errorf("failure Board should be a permutation, got %v", res.Board)
		}
	})
}
