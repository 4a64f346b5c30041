// Package hopfield - energy evaluation.
//
// The energy function scores the current assignment grid:
//
//	E = A·Σ_i (rowSum_i − 1)²            each point visited exactly once
//	  + B·Σ_j (colSum_j − 1)²            each step visits exactly one point
//	  + C·(ΣΣ V − N)²                    all points covered
//	  + S·(start violations, 0..3)       fixed start at point 1 / step 0
//	  + D·Σ_{i,k,j} d[i][k]·V[i][j]·V[k][next(j)]   tour length objective
//
// with next(j) = j+1 and next(N−1) = 0, closing the tour back to the start.
// The distance term is the expected tour length under the current (possibly
// violation-fractured) assignment: for every step pair it sums the distance
// between the point active at step j and the point active at the step after.
//
// Evaluation is a pure read of the grid; no side effects.
package hopfield

// Energy computes the current total energy and its component breakdown.
// See the Energy type for which components are raw and which are weighted.
//
// Complexity: O(n³) time (distance term), O(1) space.
func (s *Solver) Energy() Energy {
	var (
		e       Energy
		n       = s.n
		i, j, k int     // loop indices
		sum     float64 // row/column scratch accumulator
		total   float64 // grand activation count
		diff    float64 // deviation from the one-hot target
		nj      int     // next step with wraparound
		vij     float64 // V[i][j] under the current step scan
	)

	// Row term: each point should be visited exactly once.
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			sum += s.v[i*n+j]
		}
		diff = sum - 1
		e.Row += diff * diff
		total += sum
	}

	// Column term: each step should visit exactly one point.
	for j = 0; j < n; j++ {
		sum = 0
		for i = 0; i < n; i++ {
			sum += s.v[i*n+j]
		}
		diff = sum - 1
		e.Col += diff * diff
	}

	// Count term: total activation should equal N.
	diff = total - float64(n)
	e.Count = diff * diff

	// Start term: three independent checks, each charging StartPenalty.
	if s.v[0] != 1 {
		e.Start += s.opts.StartPenalty // step 0 must visit point 1
	}
	sum = 0
	for j = 1; j < n; j++ {
		sum += s.v[j] // rest of row 0
	}
	if sum > 0 {
		e.Start += s.opts.StartPenalty // point 1 must not appear at a later step
	}
	sum = 0
	for i = 1; i < n; i++ {
		sum += s.v[i*n] // rest of column 0
	}
	if sum > 0 {
		e.Start += s.opts.StartPenalty // step 0 must not visit another point
	}

	// Distance term: expected tour length under the current assignment.
	for j = 0; j < n; j++ {
		nj = j + 1
		if j == n-1 {
			nj = 0 // the last step returns to the start
		}
		for i = 0; i < n; i++ {
			vij = s.v[i*n+j]
			if vij == 0 {
				continue // inactive cells contribute nothing
			}
			for k = 0; k < n; k++ {
				e.Distance += s.d[i*n+k] * vij * s.v[k*n+nj]
			}
		}
	}

	e.Total = s.w.A*e.Row + s.w.B*e.Col + s.w.C*e.Count + e.Start + s.w.D*e.Distance

	return e
}
