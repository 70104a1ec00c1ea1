// SPDX-License-Identifier: MIT

package accuracy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Score summarises how far a forecast landed from the observed values.
type Score struct {
	N    int     `json:"n"`
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
	Bias float64 `json:"bias"` // mean(forecast - actual)
	DTW  float64 `json:"dtw"`  // unconstrained, penalty-free
}

// Evaluate compares forecast against actual point by point and by DTW shape.
//
// Errors: ErrEmptySequence, ErrLengthMismatch.
func Evaluate(forecast, actual []float64) (Score, error) {
	if len(forecast) == 0 || len(actual) == 0 {
		return Score{}, ErrEmptySequence
	}
	if len(forecast) != len(actual) {
		return Score{}, fmt.Errorf("Evaluate: %d vs %d: %w", len(forecast), len(actual), ErrLengthMismatch)
	}

	n := len(forecast)
	errs := make([]float64, n)
	floats.SubTo(errs, forecast, actual)

	abs := make([]float64, n)
	for i, e := range errs {
		abs[i] = math.Abs(e)
	}

	dist, _, err := DTW(forecast, actual, nil)
	if err != nil {
		return Score{}, err
	}

	return Score{
		N:    n,
		MAE:  stat.Mean(abs, nil),
		RMSE: floats.Norm(errs, 2) / math.Sqrt(float64(n)),
		Bias: stat.Mean(errs, nil),
		DTW:  dist,
	}, nil
}

// String implements fmt.Stringer.
func (s Score) String() string {
	return fmt.Sprintf("Score(n=%d) mae=%.6g rmse=%.6g bias=%.6g dtw=%.6g", s.N, s.MAE, s.RMSE, s.Bias, s.DTW)
}
