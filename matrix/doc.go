// Package matrix provides the dense float64 matrix primitive used by the
// hoptsp solvers, together with strict distance-matrix validation.
//
// What & Why:
//
//	Solvers in this module consume caller-owned pairwise distance data. The
//	Matrix interface gives them a uniform, bounds-checked view over any
//	two-dimensional float64 storage, while Dense is the canonical row-major
//	flat-slice implementation used everywhere internally.
//
// Design principles:
//   - Strict sentinels: every public entry point returns errors from
//     errors.go; callers match them with errors.Is. No panics on user input.
//   - No hidden allocations: Dense stores rows*cols float64 values in one
//     backing slice; At/Set are O(1) with explicit bounds checks.
//   - Validation is separate from storage: ValidateDistances checks the
//     numeric policy (square, finite, non-negative) without copying.
package matrix
