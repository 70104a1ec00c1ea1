// SPDX-License-Identifier: MIT
// Package regression: sentinel error set.
//
// Shape and singularity failures come from the matrix package unchanged
// (matrix.ErrDimensionMismatch, matrix.ErrSingular); match them with errors.Is.

package regression

import "errors"

var (
	// ErrBadLag indicates a lag order below 1.
	ErrBadLag = errors.New("regression: lag must be >= 1")

	// ErrBadDimension indicates a VAR with fewer than one variable.
	ErrBadDimension = errors.New("regression: number of variables must be >= 1")

	// ErrBadHorizon indicates a negative forecast horizon.
	ErrBadHorizon = errors.New("regression: horizon must be >= 0")

	// ErrDataTooShort indicates fewer observations than the model needs.
	ErrDataTooShort = errors.New("regression: not enough observations for the lag order")

	// ErrNotFitted indicates Predict was called before a successful Fit.
	ErrNotFitted = errors.New("regression: model is not fitted")
)
