// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvforecast/matrix"
)

func TestCenterColumns(t *testing.T) {
	X := MustFrom(t, [][]float64{{1, 10}, {2, 20}, {3, 30}})
	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 20}, means)
	CompareExact(t, [][]float64{{-1, -10}, {0, 0}, {1, 10}}, Xc)

	// Input untouched.
	CompareExact(t, [][]float64{{1, 10}, {2, 20}, {3, 30}}, X)

	_, _, err = matrix.CenterColumns(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCovariance(t *testing.T) {
	X := MustFrom(t, [][]float64{{1, 2}, {2, 4}, {3, 5}, {4, 4}})
	cov, _, err := matrix.Covariance(X)
	require.NoError(t, err)

	x0, _ := X.Col(0)
	x1, _ := X.Col(1)
	assert.InDelta(t, stat.Covariance(x0, x0, nil), MustAt(t, cov, 0, 0), 1e-12)
	assert.InDelta(t, stat.Covariance(x0, x1, nil), MustAt(t, cov, 0, 1), 1e-12)
	assert.InDelta(t, stat.Covariance(x1, x1, nil), MustAt(t, cov, 1, 1), 1e-12)
	assert.NoError(t, matrix.ValidateSymmetric(cov, 1e-12))

	_, _, err = matrix.Covariance(MustDense(t, 1, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
