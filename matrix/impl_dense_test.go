// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsvt/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// the source slice is copied
	src[0] = 42
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cp := m.Clone()
	MustSet(t, cp, 0, 0, 9)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 9.0, MustAt(t, cp, 0, 0))
}

func TestDoAndApply(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	var sum float64
	visited := 0
	m.Do(func(_, _ int, v float64) bool {
		sum += v
		visited++

		return visited < 3 // stop after three elements
	})
	require.Equal(t, 3, visited)
	require.Equal(t, 6.0, sum)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	require.Equal(t, []float64{10, 20, 30, 40}, m.Data())

	err := m.Apply(func(i, j int, v float64) float64 { return math.Sqrt(-v) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestString(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0.5, -2, 3})
	require.Equal(t, "[1, 0.5]\n[-2, 3]\n", m.String())
}
