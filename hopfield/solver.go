// Package hopfield - solver construction and seeded initialization.
//
// New runs in three stages, mirroring the validation discipline used across
// hoptsp: validate everything first (weights, options, distance matrix; fail
// fast, no partial state), then copy inputs into private flat buffers, then
// seed the assignment grid.
//
// Initialization contract (by construction, not by penalty):
//   - V[0][0] = 1: point 1 is visited at step 0,
//   - every row i ≥ 1 gets exactly one 1 at a random column j ≥ 1,
//   - every column j ≥ 1 left empty by the row pass gets one 1 at a random
//     row i ≥ 1.
//
// Collisions are expected: a column may end up with more than one active row
// when several rows pick it, or when a backfill lands next to a row-pass
// assignment. Those violations are exactly what the energy terms penalize and
// the update dynamics reduce; they are not eliminated at init time.
package hopfield

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/hoptsp/matrix"
)

// Solver is a discrete Hopfield network over an N×N assignment grid.
// Construct with New; the distance matrix and weights are immutable for the
// solver's lifetime, the grid is the sole mutable state.
type Solver struct {
	n    int        // instance order (number of points / tour steps)
	d    []float64  // flat row-major copy of the distance matrix, read-only
	v    []float64  // flat row-major assignment grid, entries are 0 or 1
	w    Weights    // energy coefficients, fixed at construction
	opts Options    // normalized options (defaults applied)
	rng  *rand.Rand // private deterministic source for init and cell draws
}

// New validates the inputs, copies dist into a private buffer, and seeds the
// assignment grid.
//
// Errors (all wrap ErrInvalidInput):
//   - ErrNilDistances, ErrNotSquare, ErrTooFewPoints, ErrNegativeDistance,
//     ErrNonFiniteDistance for a malformed matrix,
//   - ErrBadWeights for a negative or non-finite weight,
//   - ErrBadOptions for out-of-domain option fields.
//
// Complexity: O(n²) time and space.
func New(dist matrix.Matrix, w Weights, opts Options) (*Solver, error) {
	// Stage 1: weights.
	if err := validateWeights(w); err != nil {
		return nil, err
	}

	// Stage 2: options (normalization applies the zero-value defaults).
	norm, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}

	// Stage 3: distance matrix shape and numeric policy.
	n, err := matrix.ValidateDistances(dist, 2)
	if err != nil {
		return nil, mapMatrixErr(err)
	}

	// Copy distances into a flat buffer; interface reads leave the hot loops.
	d := make([]float64, n*n)
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// ValidateDistances already proved every read is in range and finite.
			x, _ = dist.At(i, j)
			d[i*n+j] = x
		}
	}

	s := &Solver{
		n:    n,
		d:    d,
		v:    make([]float64, n*n),
		w:    w,
		opts: norm,
		rng:  rngFromSeed(norm.Seed),
	}
	s.initState()

	return s, nil
}

// N returns the instance order (number of points).
func (s *Solver) N() int { return s.n }

// initState seeds the assignment grid per the initialization contract.
// Complexity: O(n²).
func (s *Solver) initState() {
	n := s.n

	// Step 0 visits point 1; the rest of row 0 and column 0 stay zero.
	s.v[0] = 1

	// Row pass: every other point gets one tentative non-zero step.
	var i, j int
	for i = 1; i < n; i++ {
		j = 1 + s.rng.Intn(n-1)
		s.v[i*n+j] = 1
	}

	// Column backfill: every non-zero step left empty gets one point.
	var sum float64
	for j = 1; j < n; j++ {
		sum = 0
		for i = 1; i < n; i++ {
			sum += s.v[i*n+j]
		}
		if sum == 0 {
			i = 1 + s.rng.Intn(n-1)
			s.v[i*n+j] = 1
		}
	}
}

// validateWeights rejects negative or non-finite coefficients.
// Complexity: O(1).
func validateWeights(w Weights) error {
	for _, c := range [4]float64{w.A, w.B, w.C, w.D} {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return ErrBadWeights
		}
	}

	return nil
}

// normalizeOptions validates opts and applies the zero-value defaults
// documented on Options.
// Complexity: O(1).
func normalizeOptions(opts Options) (Options, error) {
	if opts.MaxIterations < 0 {
		return Options{}, ErrBadOptions
	}
	if math.IsNaN(opts.EnergyThreshold) || math.IsInf(opts.EnergyThreshold, 0) {
		return Options{}, ErrBadOptions
	}
	if math.IsNaN(opts.StartPenalty) || math.IsInf(opts.StartPenalty, 0) || opts.StartPenalty < 0 {
		return Options{}, ErrBadOptions
	}
	if opts.PlateauAfter < 0 {
		return Options{}, ErrBadOptions
	}
	if math.IsNaN(opts.PlateauDelta) || math.IsInf(opts.PlateauDelta, 0) || opts.PlateauDelta < 0 {
		return Options{}, ErrBadOptions
	}

	norm := opts
	if norm.StartPenalty == 0 {
		norm.StartPenalty = DefaultStartPenalty
	}
	if norm.PlateauAfter == 0 {
		norm.PlateauAfter = DefaultPlateauAfter
	}
	if norm.PlateauDelta == 0 {
		norm.PlateauDelta = DefaultPlateauDelta
	}

	return norm, nil
}

// mapMatrixErr translates matrix-package sentinels into the hopfield
// ErrInvalidInput family so callers only ever match this package's errors.
func mapMatrixErr(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNilMatrix):
		return ErrNilDistances
	case errors.Is(err, matrix.ErrNonSquare):
		return ErrNotSquare
	case errors.Is(err, matrix.ErrTooSmall):
		return ErrTooFewPoints
	case errors.Is(err, matrix.ErrNegativeValue):
		return ErrNegativeDistance
	case errors.Is(err, matrix.ErrNaNInf):
		return ErrNonFiniteDistance
	default:
		return ErrInvalidInput
	}
}
