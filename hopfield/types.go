// Package hopfield - public result types and the sentinel error set.
//
// Error policy (mirrors the matrix package): package-prefixed sentinels,
// matched by callers via errors.Is, never panics on user input. Construction
// failures all wrap ErrInvalidInput so callers can match either the umbrella
// or the specific cause.
package hopfield

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella sentinel for every construction failure:
	// malformed distance matrix, invalid weights, or invalid options. Each
	// specific sentinel below wraps it, so errors.Is(err, ErrInvalidInput)
	// holds for all of them.
	ErrInvalidInput = errors.New("hopfield: invalid input")

	// ErrNilDistances - the distance matrix is nil.
	ErrNilDistances = fmt.Errorf("%w: nil distance matrix", ErrInvalidInput)

	// ErrNotSquare - the distance matrix is not square.
	ErrNotSquare = fmt.Errorf("%w: distance matrix not square", ErrInvalidInput)

	// ErrTooFewPoints - the instance has fewer than 2 points.
	ErrTooFewPoints = fmt.Errorf("%w: need at least 2 points", ErrInvalidInput)

	// ErrNegativeDistance - a distance entry is negative.
	ErrNegativeDistance = fmt.Errorf("%w: negative distance entry", ErrInvalidInput)

	// ErrNonFiniteDistance - a distance entry is NaN or ±Inf.
	ErrNonFiniteDistance = fmt.Errorf("%w: non-finite distance entry", ErrInvalidInput)

	// ErrBadWeights - a weight is negative, NaN or ±Inf.
	ErrBadWeights = fmt.Errorf("%w: weights must be finite and non-negative", ErrInvalidInput)

	// ErrBadOptions - an Options field is outside its documented domain.
	ErrBadOptions = fmt.Errorf("%w: bad options", ErrInvalidInput)

	// ErrInvalidTour is returned by decoding when the final network state
	// yields a structurally nonsensical route: step 0 has no active point, so
	// the tour cannot be closed. Surfaced to the caller rather than silently
	// producing a wrong answer.
	ErrInvalidTour = errors.New("hopfield: invalid tour decoded")

	// ErrEmptyTrace is returned by Summarize for an empty energy trace.
	ErrEmptyTrace = errors.New("hopfield: empty energy trace")
)

// Weights are the four non-negative coefficients of the energy function,
// fixed for the solver's lifetime:
//   - A penalizes a point being visited more than (or less than) once,
//   - B penalizes a step visiting more than (or less than) one point,
//   - C penalizes the total activation count deviating from N,
//   - D scales the tour-length objective.
type Weights struct {
	A float64
	B float64
	C float64
	D float64
}

// Energy is the component breakdown of one evaluation of the energy function.
// Row, Col, Count and Distance are the RAW (unweighted) terms; Start is the
// already-weighted start-constraint penalty (violations × StartPenalty).
//
//	Total = A·Row + B·Col + C·Count + Start + D·Distance
//
// Every component is non-negative for any binary assignment state.
type Energy struct {
	Row      float64 // Σ_i (rowSum_i − 1)²
	Col      float64 // Σ_j (colSum_j − 1)²
	Count    float64 // (ΣΣ V − N)²
	Start    float64 // StartPenalty × number of violated start checks (0..3)
	Distance float64 // Σ_{i,k,j} d[i][k]·V[i][j]·V[k][next(j)]
	Total    float64
}

// Result holds the outcome of a training run.
type Result struct {
	// Route is the decoded visiting order as 1-based point ids, closed on its
	// first element. For a state with exactly one active point per step,
	// len(Route) == N+1 and Route[0] == Route[N] == 1; degenerate states may
	// yield extra stops (a step with several active points) or missing stops
	// (a later step with none) — see (*Solver).Decode for the exact policy.
	Route []int

	// Distance is the total length of Route over the caller's distance
	// matrix, stabilized to 1e-9.
	Distance float64

	// Trace records one total-energy value per training iteration, in order.
	// It is diagnostic output only: a final value above Options.EnergyThreshold
	// means the run exhausted its budget or plateaued without converging.
	Trace []float64
}
