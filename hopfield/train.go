// Package hopfield - training loop and convergence policy.
//
// Each iteration evaluates the energy, appends it to the trace, checks the
// stop conditions, and otherwise applies one stochastic update:
//
//	stop when  E < EnergyThreshold,
//	or when    iteration > PlateauAfter and |E_t − E_{t−1}| < PlateauDelta,
//	or when    MaxIterations is exhausted.
//
// Termination never implies feasibility: this is a best-effort anytime
// heuristic, and a run that exits on plateau or budget simply decodes the
// state it has. Callers detect low-quality runs from the trace (the last
// entry still above the threshold), not from an error.
package hopfield

import "math"

// Train runs the network until a stop condition fires, then decodes the final
// grid into a route.
//
// With MaxIterations == 0 the loop body never runs: Train decodes the
// untrained initial state and returns an empty (non-nil) trace.
//
// Train may be called again on the same solver; the grid is never reset, so a
// second call continues the anytime computation from where the first stopped.
//
// Errors: ErrInvalidTour when the final state cannot be decoded (see Decode).
//
// Complexity: O(MaxIterations · n³) worst case, dominated by the energy
// evaluation per iteration.
func (s *Solver) Train() (Result, error) {
	trace := make([]float64, 0, s.opts.MaxIterations)

	var (
		iter int
		e    Energy
		last float64 // previous iteration's total energy
	)
	for iter = 0; iter < s.opts.MaxIterations; iter++ {
		e = s.Energy()
		trace = append(trace, e.Total)

		// Absolute convergence: the state satisfies the constraints closely
		// enough that only a small objective remainder is left.
		if e.Total < s.opts.EnergyThreshold {
			break
		}
		// Plateau: the dynamics stopped making progress.
		if iter > s.opts.PlateauAfter && math.Abs(e.Total-last) < s.opts.PlateauDelta {
			break
		}
		last = e.Total

		s.Step()
	}

	route, total, err := s.Decode()
	if err != nil {
		return Result{}, err
	}

	return Result{Route: route, Distance: total, Trace: trace}, nil
}
