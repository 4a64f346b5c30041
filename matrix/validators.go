// SPDX-License-Identifier: MIT
// Package matrix: distance-matrix validation.
//
// ValidateDistances enforces the numeric policy every hoptsp solver expects
// from a pairwise distance matrix:
//   - non-nil, square, order ≥ minOrder,
//   - every entry finite (no NaN, no ±Inf),
//   - every entry non-negative.
//
// The diagonal is conventionally zero but is NOT enforced here: a solver that
// sums d[i][i] terms multiplied by self-transitions simply picks up whatever
// the caller supplied, and rejecting nonzero diagonals would rule out inputs
// the algorithms handle fine.
//
// Design principles:
//   - Deterministic, side-effect free; only sentinel errors from errors.go.
//   - O(n²) worst case, no allocations.

package matrix

import "math"

// ValidateDistances verifies that m is a usable distance matrix of order at
// least minOrder and returns its order n.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooSmall, ErrNaNInf,
// ErrNegativeValue.
//
// Complexity: O(n²) time, O(1) space.
func ValidateDistances(m Matrix, minOrder int) (int, error) {
	// Stage 1: shape checks (non-nil, square, minimum order).
	if m == nil {
		return 0, ErrNilMatrix
	}
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr < minOrder {
		return 0, ErrTooSmall
	}
	n := nr // the matrix order

	// Stage 2: full numeric scan.
	var (
		i, j int     // loop indices
		v    float64 // current entry
		err  error
	)
	for i = 0; i < n; i++ { // rows
		for j = 0; j < n; j++ { // cols
			v, err = m.At(i, j)
			if err != nil {
				// At should only fail on OOB; map to the shape sentinel.
				return 0, ErrNonSquare
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrNaNInf
			}
			if v < 0 {
				return 0, ErrNegativeValue
			}
		}
	}

	return n, nil
}
