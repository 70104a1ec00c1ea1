// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics on observation matrices (rows = observations,
//     cols = variables): centering and sample covariance.
//
// Determinism & Performance:
//   - Fixed accumulation order (row by row); stable output.
//   - Covariance reuses the canonical Transpose/Mul/Scale kernels.

package matrix

import "fmt"

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Returns:
//   - Matrix: centered copy (r×c); X is not mutated.
//   - []float64: the column means.
//
// Errors:
//   - ErrNilMatrix; At errors from non-Dense inputs.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := src.r, src.c
	means := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			means[j] += src.data[i*c+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}

	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.data[i*c+j] - means[j]
		}
	}

	return out, means, nil
}

// Covariance returns the sample covariance of the columns of X:
// Cov = (Xcᵀ Xc)/(r-1), with Xc the column-centered X.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r < 2.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, fmt.Errorf("%s: need at least 2 observations, have %d: %w",
			opCovariance, r, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}
