// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All functions in the
// package return these sentinels and tests check them via errors.Is. Panics
// are reserved for programmer errors in private helpers (there are none).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning them
// directly; wrap with fmt.Errorf("ctx: %w", ErrX) only at outer boundaries.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// valid range. Public indexers (At/Set) return this, never panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrRaggedRows indicates that a [][]float64 source has rows of unequal
	// length and cannot back a rectangular matrix.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrTooSmall signals that the matrix order is below the required minimum.
	ErrTooSmall = errors.New("matrix: order below required minimum")

	// ErrNegativeValue signals a negative entry where the numeric policy
	// requires non-negative values (distances).
	ErrNegativeValue = errors.New("matrix: negative value")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
