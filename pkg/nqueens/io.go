// Package nqueens provides constraint-based N-Queens solving.
// This file reads and writes the textual board format: one column index
// per line, '#' comments and blank lines ignored, values forming a
// permutation of 0..n-1.
package nqueens

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned when a board file contains no queen
// positions after comment and blank-line stripping.
var ErrEmptyInput = errors.New("input contains no queen positions")

// ParseBoard reads a board from r and validates it. The board size is
// the number of position lines; every value must lie in 0..n-1 and the
// values must form a permutation (exactly one queen per column).
func ParseBoard(r io.Reader) ([]int, error) {
	var board []int

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		col, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid column %q: %w", lineNo, line, err)
		}
		board = append(board, col)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}

	n := len(board)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	seen := make([]bool, n)
	for row, col := range board {
		if col < 0 || col >= n {
			return nil, fmt.Errorf("row %d: column %d out of range [0, %d]", row, col, n-1)
		}
		if seen[col] {
			return nil, fmt.Errorf("row %d: column %d already occupied; board must be a permutation of 0..%d", row, col, n-1)
		}
		seen[col] = true
	}
	return board, nil
}

// ReadBoard loads and validates a board file.
func ReadBoard(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer f.Close()

	board, err := ParseBoard(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return board, nil
}

// WriteBoard writes a board in the textual format, one column per line.
func WriteBoard(board []int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating board file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, col := range board {
		fmt.Fprintln(w, col)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing board file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing board file: %w", err)
	}
	return nil
}
