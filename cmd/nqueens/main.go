// Package main is the N-Queens solver command.
//
// It solves from either a random start of a given size or a board file,
// using min-conflicts search under a step budget:
//
//	nqueens -n 200
//	nqueens -input-file board.txt -max-steps 500000
//	nqueens -n 1000 -parallel 8 -seed 42
//
// Exit codes: 0 on success, 1 when no solution was found within the
// step budget, 2 on invalid input.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/OmarImamverdiyev/N-Queens/pkg/nqueens"
)

// Valid board sizes per the assignment constraint.
const (
	minBoardSize = 10
	maxBoardSize = 1000
)

func main() {
	n := flag.Int("n", 0, "board size for a random start (10 <= n <= 1000)")
	inputFile := flag.String("input-file", "", "path to a board file, one column index per row")
	maxSteps := flag.Int("max-steps", 100_000, "maximum search steps across all restarts")
	seed := flag.Int64("seed", 0, "random seed; 0 derives one from the clock")
	attempts := flag.Int("parallel", 0, "race this many seeded attempts (random starts only)")
	flag.Parse()

	if (*n != 0) == (*inputFile != "") {
		fmt.Fprintln(os.Stderr, "exactly one of -n or -input-file is required")
		flag.Usage()
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var initial []int
	size := *n
	if *inputFile != "" {
		board, err := nqueens.ReadBoard(*inputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		initial = board
		size = len(board)
	}

	if size < minBoardSize || size > maxBoardSize {
		fmt.Fprintf(os.Stderr, "n must be between %d and %d, got %d\n", minBoardSize, maxBoardSize, size)
		os.Exit(2)
	}

	var res nqueens.Result
	switch {
	case initial != nil:
		res = nqueens.Solve(initial, *maxSteps, *seed)
	case *attempts > 1:
		res = nqueens.SolvePortfolio(size, *maxSteps, *attempts, *seed)
	default:
		res = nqueens.SolveRandom(size, *maxSteps, *seed)
	}

	if !res.Solved {
		fmt.Fprintf(os.Stderr, "No solution found: %s\n", res)
		os.Exit(1)
	}

	fmt.Println("Solution found!")
	fmt.Println(formatBoard(res.Board))
	fmt.Printf("Valid: %v (%s)\n", nqueens.IsValid(res.Board), res)
}

// formatBoard renders the board as space-separated column indices.
func formatBoard(board []int) string {
	parts := make([]string, len(board))
	for i, col := range board {
		parts[i] = fmt.Sprintf("%d", col)
	}
	return strings.Join(parts, " ")
}
