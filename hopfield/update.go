// Package hopfield - stochastic asynchronous update rule.
//
// One call mutates exactly one cell, chosen uniformly at random over the full
// N×N grid. The local input combines, with the same arithmetic as the energy
// gradient's reference formulation:
//
//	in = A·(1 − rowSum_i)              row crowding
//	   − B·(colSum_j + 1)              column crowding
//	   − C·(total + N)                 global activation pressure
//	   − D·Σ_k (d[k][i]·V[k][prev(j)] + d[i][k]·V[k][next(j)])
//
// with prev(j) = j−1 (wrapping to N−1) and next(j) = (j+1) mod N; the cell is
// then binarized: V[i][j] = 1 iff in > 0. This is a greedy local rule, not a
// rigorous gradient step; it only tends toward lower energy over many draws.
//
// Start clamp: row 0 and column 0 encode the fixed start (point 1 at step 0)
// and are pinned after initialization — a draw landing there rewrites the
// seed value instead of recomputing it, so the start of the tour can never
// dissolve mid-run. The energy's start term stays as a diagnostic for states
// injected from outside the dynamics.
//
// Updates are inherently sequential: each one reads the grid the previous one
// wrote. No locking, no concurrency.
package hopfield

// Step performs one stochastic asynchronous update: draw a cell uniformly
// over the N×N grid, then apply the local rule to it.
// Complexity: O(n) time, O(1) space.
func (s *Solver) Step() {
	s.updateCell(s.rng.Intn(s.n), s.rng.Intn(s.n))
}

// updateCell applies the local rule to cell (i, j).
func (s *Solver) updateCell(i, j int) {
	n := s.n

	// Start clamp: the fixed-start cells are rewritten, never recomputed.
	if i == 0 || j == 0 {
		if i == 0 && j == 0 {
			s.v[0] = 1
		} else {
			s.v[i*n+j] = 0
		}

		return
	}

	var (
		in    float64 // local input signal for cell (i, j)
		sum   float64 // row/column scratch accumulator
		total float64 // grand activation count
		k     int     // loop index
		pj    int     // previous step with wraparound
		nj    int     // next step with wraparound
	)

	// Row crowding: discourage a second activation in row i.
	sum = 0
	for k = 0; k < n; k++ {
		sum += s.v[i*n+k]
	}
	in = s.w.A * (1 - sum)

	// Column crowding: discourage a second activation in column j.
	sum = 0
	for k = 0; k < n; k++ {
		sum += s.v[k*n+j]
	}
	in -= s.w.B * (sum + 1)

	// Global activation pressure relative to N.
	total = 0
	for k = 0; k < n*n; k++ {
		total += s.v[k]
	}
	in -= s.w.C * (total + float64(n))

	// Distance linkage: the cost this cell would add next to its step
	// neighbors — the point active at the previous step feeding into i, and i
	// feeding into the point active at the next step.
	pj = j - 1
	if j == 0 {
		pj = n - 1
	}
	nj = (j + 1) % n
	for k = 0; k < n; k++ {
		in -= s.w.D * s.d[k*n+i] * s.v[k*n+pj]
		in -= s.w.D * s.d[i*n+k] * s.v[k*n+nj]
	}

	// Binarize: strictly positive input activates the cell.
	if in > 0 {
		s.v[i*n+j] = 1
	} else {
		s.v[i*n+j] = 0
	}
}
