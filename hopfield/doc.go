// Package hopfield solves small Travelling Salesman instances with a
// discrete, energy-minimizing Hopfield network.
//
// 🚀 What is it?
//
//	An N×N grid of binary neurons encodes a candidate tour: cell (i,j) means
//	"point i is visited at step j". An energy function scores the grid —
//	penalty terms for constraint violations (each point once, each step one
//	point, fixed start) plus the tour length as the objective — and a
//	stochastic asynchronous update rule flips one cell at a time, statistically
//	drifting toward lower energy. Training stops on a low-energy threshold,
//	an energy plateau, or an iteration budget, and the final grid is decoded
//	into an explicit closed route with its real-world length.
//
// ✨ Key properties:
//   - best-effort anytime heuristic: no optimality or feasibility guarantee;
//     a finished run always yields a route, and callers judge its quality by
//     the recorded energy trace (Result.Trace, Summarize)
//   - deterministic: the random source is seeded via Options.Seed; identical
//     seeds reproduce identical trajectories
//   - toy scale by design: N ≈ 3–8; triple-nested O(N³) loops are written for
//     clarity, not throughput
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/hoptsp/hopfield"
//	    "github.com/katalvlaran/hoptsp/matrix"
//	)
//
//	dist, _ := matrix.NewDenseFromRows(d) // N×N non-negative distances
//	s, err := hopfield.New(dist, hopfield.Weights{A: 100, B: 100, C: 100, D: 1},
//	    hopfield.DefaultOptions())
//	if err != nil {
//	    // ErrInvalidInput family: non-square, negative entries, N < 2, …
//	}
//	res, err := s.Train()
//	// res.Route is 1-based and closed: res.Route[0] == res.Route[len-1] == 1.
//
// Concurrency:
//
//	A *Solver is NOT safe for concurrent use: every update mutates the shared
//	assignment grid and the next update depends on the previous one (classic
//	async Hopfield dynamics), and the private *rand.Rand is not goroutine-safe.
//	Run independent solvers for parallel experiments.
package hopfield
