package hopfield_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hoptsp/hopfield"
	"github.com/katalvlaran/hoptsp/matrix"
)

// campusRows is the reference 5-point delivery instance (symmetric,
// distances in meters).
func campusRows() [][]float64 {
	return [][]float64{
		{0, 80, 150, 120, 200},
		{80, 0, 130, 90, 180},
		{150, 130, 0, 60, 250},
		{120, 90, 60, 0, 220},
		{200, 180, 250, 220, 0},
	}
}

// campusMatrix builds the reference instance as a matrix.Dense.
func campusMatrix(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(campusRows())
	require.NoError(t, err)

	return m
}

// defaultWeights is the reference weight profile A=B=C=100, D=1.
func defaultWeights() hopfield.Weights {
	return hopfield.Weights{A: 100, B: 100, C: 100, D: 1}
}

// TestNew_NilMatrix verifies the nil-input sentinel and its umbrella.
func TestNew_NilMatrix(t *testing.T) {
	_, err := hopfield.New(nil, defaultWeights(), hopfield.DefaultOptions())
	assert.ErrorIs(t, err, hopfield.ErrNilDistances)
	assert.ErrorIs(t, err, hopfield.ErrInvalidInput, "specific sentinels must wrap the umbrella")
}

// TestNew_NonSquare verifies shape rejection.
func TestNew_NonSquare(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1, 2}, {1, 0, 3}})
	require.NoError(t, err)

	_, err = hopfield.New(m, defaultWeights(), hopfield.DefaultOptions())
	assert.ErrorIs(t, err, hopfield.ErrNotSquare)
	assert.ErrorIs(t, err, hopfield.ErrInvalidInput)
}

// TestNew_TooFewPoints verifies the minimum-order gate (N ≥ 2).
func TestNew_TooFewPoints(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0}})
	require.NoError(t, err)

	_, err = hopfield.New(m, defaultWeights(), hopfield.DefaultOptions())
	assert.ErrorIs(t, err, hopfield.ErrTooFewPoints)
}

// TestNew_BadDistances verifies negative and non-finite entry rejection.
func TestNew_BadDistances(t *testing.T) {
	neg, err := matrix.NewDenseFromRows([][]float64{{0, -5}, {5, 0}})
	require.NoError(t, err)
	_, err = hopfield.New(neg, defaultWeights(), hopfield.DefaultOptions())
	assert.ErrorIs(t, err, hopfield.ErrNegativeDistance)

	bad, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, bad.Set(0, 1, math.NaN()))
	_, err = hopfield.New(bad, defaultWeights(), hopfield.DefaultOptions())
	assert.ErrorIs(t, err, hopfield.ErrNonFiniteDistance)
}

// TestNew_BadWeights verifies weight validation.
func TestNew_BadWeights(t *testing.T) {
	m := campusMatrix(t)

	_, err := hopfield.New(m, hopfield.Weights{A: -1, B: 100, C: 100, D: 1}, hopfield.DefaultOptions())
	assert.ErrorIs(t, err, hopfield.ErrBadWeights)

	_, err = hopfield.New(m, hopfield.Weights{A: 100, B: 100, C: 100, D: math.NaN()}, hopfield.DefaultOptions())
	assert.ErrorIs(t, err, hopfield.ErrBadWeights)
}

// TestNew_BadOptions verifies option validation.
func TestNew_BadOptions(t *testing.T) {
	m := campusMatrix(t)

	opts := hopfield.DefaultOptions()
	opts.MaxIterations = -1
	_, err := hopfield.New(m, defaultWeights(), opts)
	assert.ErrorIs(t, err, hopfield.ErrBadOptions)

	opts = hopfield.DefaultOptions()
	opts.EnergyThreshold = math.NaN()
	_, err = hopfield.New(m, defaultWeights(), opts)
	assert.ErrorIs(t, err, hopfield.ErrBadOptions)

	opts = hopfield.DefaultOptions()
	opts.StartPenalty = -3
	_, err = hopfield.New(m, defaultWeights(), opts)
	assert.ErrorIs(t, err, hopfield.ErrBadOptions)

	opts = hopfield.DefaultOptions()
	opts.PlateauDelta = -0.5
	_, err = hopfield.New(m, defaultWeights(), opts)
	assert.ErrorIs(t, err, hopfield.ErrBadOptions)
}

// TestNew_DoesNotAliasCaller verifies the solver copies the distance matrix:
// mutating the caller's matrix after construction must not change results.
func TestNew_DoesNotAliasCaller(t *testing.T) {
	m := campusMatrix(t)
	opts := hopfield.DefaultOptions()
	opts.Seed = 7

	s, err := hopfield.New(m, defaultWeights(), opts)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 9999)) // caller tampers after construction

	s2, err := hopfield.New(campusMatrix(t), defaultWeights(), opts)
	require.NoError(t, err)

	r1, err := s.Train()
	require.NoError(t, err)
	r2, err := s2.Train()
	require.NoError(t, err)
	assert.Equal(t, r2, r1, "solver must hold a private copy of the distances")
}

// TestConstructThenDecode_NeverFails verifies the untrained initial state
// always decodes cleanly (the row-0/column-0 seed invariant holds right after
// initialization) across many seeds.
func TestConstructThenDecode_NeverFails(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		opts := hopfield.DefaultOptions()
		opts.Seed = seed

		s, err := hopfield.New(campusMatrix(t), defaultWeights(), opts)
		require.NoError(t, err, "seed %d", seed)

		route, total, err := s.Decode()
		require.NoError(t, err, "seed %d: untrained decode must not fail", seed)
		assert.Equal(t, 1, route[0], "seed %d: route must start at point 1", seed)
		assert.Equal(t, 1, route[len(route)-1], "seed %d: route must close at point 1", seed)
		assert.GreaterOrEqual(t, total, 0.0, "seed %d", seed)
	}
}

// TestTrain_ZeroIterations verifies the boundary case: no training happens,
// the trace is empty, and the decoded route equals the untrained state's.
func TestTrain_ZeroIterations(t *testing.T) {
	opts := hopfield.DefaultOptions()
	opts.Seed = 11
	opts.MaxIterations = 0

	trained, err := hopfield.New(campusMatrix(t), defaultWeights(), opts)
	require.NoError(t, err)
	reference, err := hopfield.New(campusMatrix(t), defaultWeights(), opts)
	require.NoError(t, err)

	wantRoute, wantTotal, err := reference.Decode()
	require.NoError(t, err)

	res, err := trained.Train()
	require.NoError(t, err)
	assert.Empty(t, res.Trace, "zero-budget run records no energy")
	assert.Equal(t, wantRoute, res.Route)
	assert.Equal(t, wantTotal, res.Distance)
}

// TestTrain_TraceShape verifies that a default run records one energy per
// iteration, bounded by the budget, and that the trace is append-only ordered
// with the first entry being the initial state's energy.
func TestTrain_TraceShape(t *testing.T) {
	opts := hopfield.DefaultOptions()
	opts.Seed = 3

	s, err := hopfield.New(campusMatrix(t), defaultWeights(), opts)
	require.NoError(t, err)

	reference, err := hopfield.New(campusMatrix(t), defaultWeights(), opts)
	require.NoError(t, err)
	initial := reference.Energy()

	res, err := s.Train()
	require.NoError(t, err)
	require.NotEmpty(t, res.Trace)
	assert.LessOrEqual(t, len(res.Trace), opts.MaxIterations)
	assert.Equal(t, initial.Total, res.Trace[0], "first trace entry is the initial energy")
}
