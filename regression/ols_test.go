// SPDX-License-Identifier: MIT
package regression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvforecast/matrix"
	"github.com/katalvlaran/lvforecast/regression"
)

func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestOLS_ExactLine(t *testing.T) {
	// y = 2 + 3x, no noise.
	X := mustFrom(t, [][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	Y := mustFrom(t, [][]float64{{2}, {5}, {8}, {11}})

	beta, err := regression.OLS(X, Y)
	require.NoError(t, err)
	assert.Equal(t, 2, beta.Rows())
	assert.Equal(t, 1, beta.Cols())
	b, _ := beta.Col(0)
	assert.InDeltaSlice(t, []float64{2, 3}, b, 1e-12)
}

func TestOLS_Errors(t *testing.T) {
	X := mustFrom(t, [][]float64{{1, 0}, {1, 1}, {1, 2}})

	_, err := regression.OLS(X, mustFrom(t, [][]float64{{1}, {2}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = regression.OLS(mustFrom(t, [][]float64{{1, 2, 3}}), mustFrom(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, regression.ErrDataTooShort)

	// Square and invertible, but observations must outnumber predictors.
	square := mustFrom(t, [][]float64{{1, 0}, {1, 1}})
	_, err = regression.OLS(square, mustFrom(t, [][]float64{{2}, {5}}))
	assert.ErrorIs(t, err, regression.ErrDataTooShort)

	// Duplicate predictor column: XᵀX is singular.
	dup := mustFrom(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})
	_, err = regression.OLS(dup, mustFrom(t, [][]float64{{1}, {2}, {3}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = regression.OLS(nil, X)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestOLS_AgreesWithGonum compares against gonum's QR least-squares solve.
func TestOLS_AgreesWithGonum(t *testing.T) {
	rows := [][]float64{
		{1, 0.5, 1.2}, {1, 1.1, 0.7}, {1, 1.9, 2.5}, {1, 3.2, 1.1},
		{1, 4.0, 3.9}, {1, 5.5, 2.2}, {1, 6.1, 4.8}, {1, 7.3, 3.3},
	}
	ys := []float64{3.1, 3.0, 6.2, 5.4, 9.8, 8.1, 12.6, 11.0}

	X := mustFrom(t, rows)
	Y, err := matrix.NewColumn(ys)
	require.NoError(t, err)
	beta, err := regression.OLS(X, Y)
	require.NoError(t, err)

	flat := make([]float64, 0, len(rows)*3)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	var ref mat.Dense
	require.NoError(t, ref.Solve(mat.NewDense(len(rows), 3, flat), mat.NewDense(len(ys), 1, ys)))

	for i := 0; i < 3; i++ {
		got, _ := beta.At(i, 0)
		assert.InDelta(t, ref.At(i, 0), got, 1e-9, "beta[%d]", i)
	}
}
