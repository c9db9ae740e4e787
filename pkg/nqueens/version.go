// Package nqueens provides constraint-based N-Queens solving.
//
// Version: 1.0.0
package nqueens

// Version is the current version of the nqueens solver package.
const Version = "1.0.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
