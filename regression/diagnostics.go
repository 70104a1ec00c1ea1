// SPDX-License-Identifier: MIT
// Package: regression
//
// Purpose:
//   - In-sample residual diagnostics for fitted models.

package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvforecast/matrix"
)

const opResiduals = "Residuals"

// Summary describes a residual series.
type Summary struct {
	N      int     `json:"n"`       // number of residuals
	Mean   float64 `json:"mean"`    // ≈ 0 for OLS with an intercept
	StdDev float64 `json:"std_dev"` // sample standard deviation (n-1); 0 when N < 2
	MAE    float64 `json:"mae"`     // mean absolute error
	RMSE   float64 `json:"rmse"`    // root mean squared error
}

// Residuals returns Y − X·β.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residuals(X, Y, beta matrix.Matrix) (*matrix.Dense, error) {
	fitted, err := matrix.Mul(X, beta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResiduals, err)
	}
	res, err := matrix.Sub(Y, fitted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResiduals, err)
	}

	return matrix.AsDense(res)
}

// Summarize computes the Summary of res. An empty series yields the zero Summary.
func Summarize(res []float64) Summary {
	n := len(res)
	if n == 0 {
		return Summary{}
	}
	s := Summary{
		N:    n,
		Mean: stat.Mean(res, nil),
		MAE:  floats.Norm(res, 1) / float64(n),
		RMSE: math.Sqrt(floats.Dot(res, res) / float64(n)),
	}
	if n > 1 {
		s.StdDev = stat.StdDev(res, nil)
	}

	return s
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.6g sd=%.6g mae=%.6g rmse=%.6g", s.N, s.Mean, s.StdDev, s.MAE, s.RMSE)
}
