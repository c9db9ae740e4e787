// Package main generates N-Queens starting boards under several
// difficulty policies and writes them in the solver's file format:
//
//	nqueens-gen -n 100 -o board.txt                  # random permutation
//	nqueens-gen -n 100 -o board.txt -mode easy       # best of k random samples
//	nqueens-gen -n 100 -o board.txt -mode solved     # known-valid staircase
//	nqueens-gen -n 100 -o board.txt -mode diagonal   # hard: all on main diagonal
//	nqueens-gen -n 100 -o board.txt -mode anti       # hard: all on anti-diagonal
//
// Exit code 2 on invalid arguments or write failure.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/OmarImamverdiyev/N-Queens/pkg/nqueens"
)

func main() {
	n := flag.Int("n", 0, "board size")
	out := flag.String("o", "", "output file path")
	mode := flag.String("mode", "random", "board policy: random, easy, solved, diagonal, anti")
	attempts := flag.Int("attempts", 200, "samples drawn by the easy policy")
	seed := flag.Int64("seed", 0, "random seed; 0 derives one from the clock")
	flag.Parse()

	if *n <= 0 || *out == "" {
		fmt.Fprintln(os.Stderr, "-n and -o are required")
		flag.Usage()
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var board []int
	switch *mode {
	case "random":
		board = nqueens.GenerateRandom(*n, rng)
	case "easy":
		board = nqueens.GenerateEasy(*n, *attempts, rng)
	case "solved":
		solved, err := nqueens.GenerateSolved(*n)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		board = solved
	case "diagonal":
		board = nqueens.GenerateDiagonal(*n)
	case "anti":
		board = nqueens.GenerateAntiDiagonal(*n)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	if err := nqueens.WriteBoard(board, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Wrote %s board of size %d to %s (%d attacking pairs)\n",
		*mode, *n, *out, nqueens.ConflictPairs(board))
}
