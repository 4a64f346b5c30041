package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hoptsp/matrix"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are
// rejected with ErrInvalidDimensions before any allocation happens.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "rows=0 must be rejected")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "cols<0 must be rejected")
}

// TestNewDense_ZeroInitialized verifies shape accessors and zero fill.
func TestNewDense_ZeroInitialized(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			assert.Equal(t, 0.0, v, "fresh Dense must be zero at (%d,%d)", i, j)
		}
	}
}

// TestDense_AtSet_Bounds verifies that out-of-range indices surface
// ErrIndexOutOfBounds through errors.Is despite the method-context wrapping.
func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.Set(2, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	require.NoError(t, m.Set(1, 1, 4.5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
}

// TestNewDenseFromRows_CopiesSource verifies the copy semantics: mutating the
// source after construction must not change the matrix.
func TestNewDenseFromRows_CopiesSource(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)

	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "matrix must not alias the source rows")
}

// TestNewDenseFromRows_Ragged verifies rejection of non-rectangular input.
func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_Clone_Independent verifies deep-copy semantics of Clone.
func TestDense_Clone_Independent(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, m.Set(0, 0, 7))

	v, err := cp.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone must not observe writes to the original")
}
