package nqueens

import (
	"reflect"
	"testing"
)

func TestColSet(t *testing.T) {
	t.Run("full set contains every column", func(t *testing.T) {
		s := FullColSet(70)
		if s.Count() != 70 {
			t.Fatalf("Count() = %d, want 70", s.Count())
		}
		for c := 0; c < 70; c++ {
			if !s.Has(c) {
				t.Fatalf("full set missing column %d", c)
			}
		}
		if s.Has(-1) || s.Has(70) {
			t.Error("out-of-range membership should be false")
		}
	})

	t.Run("add and remove", func(t *testing.T) {
		s := NewColSet(10)
		if !s.IsEmpty() {
			t.Fatal("new set should be empty")
		}
		s.Add(3)
		s.Add(7)
		s.Add(3) // idempotent
		if s.Count() != 2 || !s.Has(3) || !s.Has(7) {
			t.Fatalf("unexpected contents: %v", s)
		}
		s.Remove(3)
		if s.Has(3) || s.Count() != 1 {
			t.Fatalf("remove failed: %v", s)
		}
		s.Add(-1)
		s.Add(10)
		if s.Count() != 1 {
			t.Error("out-of-range Add should be ignored")
		}
	})

	t.Run("iteration is ascending", func(t *testing.T) {
		s := NewColSetFromValues(100, []int{65, 2, 64, 0, 99})
		if got, want := s.ToSlice(), []int{0, 2, 64, 65, 99}; !reflect.DeepEqual(got, want) {
			t.Errorf("ToSlice() = %v, want %v", got, want)
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		s := NewColSetFromValues(10, []int{1, 2})
		c := s.Clone()
		c.Remove(1)
		if !s.Has(1) {
			t.Error("mutating a clone changed the original")
		}
	})

	t.Run("string rendering", func(t *testing.T) {
		s := NewColSetFromValues(10, []int{5, 1, 9})
		if got, want := s.String(), "{1,5,9}"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
		if got, want := NewColSet(10).String(), "{}"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}
