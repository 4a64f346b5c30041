// Package hopfield - route decoding.
//
// Decoding reads the assignment grid column by column (step 0 … N−1) and
// appends the 1-based id of every active point, then closes the tour on its
// first stop. Because convergence is not guaranteed, the grid may violate the
// one-active-point-per-step invariant; the policy for degenerate states is
// explicit and tested:
//
//   - a step with SEVERAL active points contributes all of them, in row-scan
//     order — the route grows beyond N+1 and the extra stops stay visible to
//     the caller rather than being silently dropped,
//   - a LATER step with no active point contributes nothing (one visit is
//     silently omitted),
//   - an EMPTY STEP 0 makes the tour unclosable and fails with ErrInvalidTour.
package hopfield

import "math"

// roundScale controls distance stabilization precision (1e-9). It removes
// tiny FP drift across platforms without affecting route selection.
const roundScale = 1e9

// Decode reads the current grid into an explicit closed route and its total
// length over the caller's distance matrix.
//
// Errors: ErrInvalidTour when step 0 has no active point.
//
// Complexity: O(n²) time, O(n) space for the route.
func (s *Solver) Decode() ([]int, float64, error) {
	n := s.n
	route := make([]int, 0, n+1)

	// Column scan: steps in order, active points within a step in row order.
	var i, j int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			if s.v[i*n+j] == 1 {
				route = append(route, i+1)
			}
		}
		if j == 0 && len(route) == 0 {
			// Nothing is visited at step 0; the tour has no start to close on.
			return nil, 0, ErrInvalidTour
		}
	}

	// Close the tour back to its first stop.
	route = append(route, route[0])

	// Total length over consecutive stops, stabilized to 1e-9.
	var total float64
	for i = 0; i+1 < len(route); i++ {
		total += s.d[(route[i]-1)*n+(route[i+1]-1)]
	}

	return route, round1e9(total), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
