// Command hoptsp runs the Hopfield-network TSP solver over a distance matrix
// and reports the decoded route, its total length, and an energy-trace
// summary. It is a thin presentation layer: all algorithmic content lives in
// the hopfield package.
//
// Usage:
//
//	hoptsp -example                    # built-in 5-point campus instance
//	hoptsp -matrix dist.csv -seed 42   # caller-supplied square CSV matrix
//	hoptsp -example -config run.ini    # weights/budgets from an ini file
//	hoptsp -example -wrong-data        # rerun with rows 1↔2 swapped and compare
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hoptsp/hopfield"
	"github.com/katalvlaran/hoptsp/matrix"
)

var (
	configPath = flag.String("config", "", "path to an ini run-config (weights and budgets)")
	matrixPath = flag.String("matrix", "", "path to a square CSV distance matrix")
	useExample = flag.Bool("example", false, "use the built-in 5-point campus instance")
	wrongData  = flag.Bool("wrong-data", false, "also rerun with rows 1 and 2 swapped and compare")
	seedFlag   = flag.Int64("seed", 0, "override the RNG seed (0 keeps the config value)")
	itersFlag  = flag.Int("iters", -1, "override max iterations (-1 keeps the config value)")
	threshFlag = flag.Float64("threshold", math.NaN(), "override the energy threshold (NaN keeps the config value)")
)

// exampleRows is the built-in 5-point campus delivery instance (distances in
// meters): teaching building, library, dorms, canteen, main gate.
func exampleRows() [][]float64 {
	return [][]float64{
		{0, 80, 150, 120, 200},
		{80, 0, 130, 90, 180},
		{150, 130, 0, 60, 250},
		{120, 90, 60, 0, 220},
		{200, 180, 250, 220, 0},
	}
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hoptsp:", err)
		os.Exit(1)
	}
}

func run() error {
	// Resolve configuration: defaults, then file, then flag overrides.
	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	}
	if *seedFlag != 0 {
		cfg.Run.Seed = *seedFlag
	}
	if *itersFlag >= 0 {
		cfg.Run.MaxIterations = *itersFlag
	}
	if !math.IsNaN(*threshFlag) {
		cfg.Run.EnergyThreshold = *threshFlag
	}

	// Resolve the instance.
	rows, err := resolveRows()
	if err != nil {
		return err
	}

	res, err := solve(rows, cfg)
	if err != nil {
		return err
	}
	report("route", rows, cfg, res)

	if !*wrongData {
		return nil
	}

	// The "wrong data" experiment: swap the first two rows and rerun with the
	// same configuration, then show how the priced route moves.
	wrong := swapFirstRows(rows)
	wrongRes, err := solve(wrong, cfg)
	if err != nil {
		return err
	}
	report("route (rows 1↔2 swapped)", wrong, cfg, wrongRes)
	fmt.Printf("distance delta vs original: %sm\n",
		humanize.Commaf(wrongRes.Distance-res.Distance))

	return nil
}

// resolveRows picks the instance source from the flags.
func resolveRows() ([][]float64, error) {
	switch {
	case *useExample && *matrixPath != "":
		return nil, fmt.Errorf("use either -example or -matrix, not both")
	case *matrixPath != "":
		m, err := readDistanceCSV(*matrixPath)
		if err != nil {
			return nil, err
		}

		return denseToRows(m), nil
	case *useExample:
		return exampleRows(), nil
	default:
		return nil, fmt.Errorf("no instance: pass -example or -matrix <file.csv>")
	}
}

// solve builds a solver over rows and trains it.
func solve(rows [][]float64, cfg Config) (hopfield.Result, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return hopfield.Result{}, err
	}
	s, err := hopfield.New(m, cfg.solverWeights(), cfg.solverOptions())
	if err != nil {
		return hopfield.Result{}, err
	}

	return s.Train()
}

// report prints one run's outcome: route, distance, and trace summary.
func report(label string, rows [][]float64, cfg Config, res hopfield.Result) {
	fmt.Printf("%s: %s\n", label, formatRoute(res.Route))
	fmt.Printf("total distance: %sm over %d point(s)\n",
		humanize.Commaf(res.Distance), len(rows))

	sum, err := hopfield.Summarize(res.Trace)
	if err != nil {
		// Zero-budget run: nothing to summarize.
		fmt.Println("energy trace: empty (untrained state decoded)")

		return
	}
	fmt.Printf("iterations: %s, energy %s → %s (min %s)\n",
		humanize.Comma(int64(sum.Len)),
		humanize.Commaf(sum.First), humanize.Commaf(sum.Last), humanize.Commaf(sum.Min))
	if sum.Last < cfg.Run.EnergyThreshold {
		fmt.Println("converged: energy below threshold")
	} else {
		fmt.Println("not converged: plateau or budget stop (inspect the trace)")
	}
}

// formatRoute renders a 1-based route as "1 → 3 → … → 1".
func formatRoute(route []int) string {
	parts := make([]string, len(route))
	for i, p := range route {
		parts[i] = strconv.Itoa(p)
	}

	return strings.Join(parts, " → ")
}

// swapFirstRows returns a copy of rows with rows 0 and 1 exchanged.
func swapFirstRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = append([]float64(nil), rows[i]...)
	}
	out[0], out[1] = out[1], out[0]

	return out
}

// denseToRows materializes a Dense matrix back into rows for reporting and
// the wrong-data transform.
func denseToRows(m *matrix.Dense) [][]float64 {
	n := m.Rows()
	rows := make([][]float64, n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			rows[i][j] = v
		}
	}

	return rows
}
