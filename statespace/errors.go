// SPDX-License-Identifier: MIT
// Package statespace: sentinel error set.
//
// Shape and singularity failures are matrix sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrNonSquare, matrix.ErrSingular).

package statespace

import "errors"

var (
	// ErrNotImplemented is returned by Update, the unimplemented generic
	// correction hook. Use UpdateWithKalman for filtering.
	ErrNotImplemented = errors.New("statespace: update is not implemented; use UpdateWithKalman")

	// ErrNilModel indicates a Filter was built without a model.
	ErrNilModel = errors.New("statespace: nil model")
)
