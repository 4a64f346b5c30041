// Package hoptsp is a small toolkit for solving tiny Travelling Salesman
// instances with a discrete, energy-minimizing Hopfield network.
//
// 🚀 What is hoptsp?
//
//	A compact, deterministic-by-seed library that brings together:
//		• Matrix primitives: a dense distance matrix with strict validation
//		• The solver: an N×N binary assignment grid relaxed by stochastic updates
//		• Energy accounting: per-term breakdown of every constraint violation
//		• Route decoding: column-scan extraction of a closed 1-based tour
//		• Trace analytics: convergence statistics over the recorded energy curve
//
// ✨ Why choose hoptsp?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every run is fully determined by its seed
//   - Pure Go – no cgo, a handful of small, well-known deps
//   - Inspectable – the energy trace and per-term breakdown are first-class
//
// Under the hood, everything is organized under three packages:
//
//	matrix/     — dense float64 matrices & distance-matrix validation
//	hopfield/   — the network state, energy, update rule, training & decoding
//	cmd/hoptsp/ — a CLI wiring INI config and CSV matrices into the solver
//
// Quick example:
//
//	dist, _ := matrix.NewDenseFromRows([][]float64{
//		{0, 80, 150, 120, 200},
//		{80, 0, 130, 90, 180},
//		{150, 130, 0, 60, 250},
//		{120, 90, 60, 0, 220},
//		{200, 180, 250, 220, 0},
//	})
//	s, _ := hopfield.New(dist, hopfield.Weights{A: 100, B: 100, C: 100, D: 1}, hopfield.DefaultOptions())
//	res, _ := s.Train()
//	fmt.Println(res.Route, res.Distance)
//
// See each package's doc.go for the full contract.
package hoptsp
