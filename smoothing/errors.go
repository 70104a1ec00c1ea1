// SPDX-License-Identifier: MIT
// Package smoothing: sentinel error set.

package smoothing

import "errors"

var (
	// ErrEmptyData indicates an empty input series.
	ErrEmptyData = errors.New("smoothing: data is empty")

	// ErrBadWindow indicates a non-positive window size.
	ErrBadWindow = errors.New("smoothing: window must be > 0")

	// ErrBadHorizon indicates a horizon outside the accepted range.
	ErrBadHorizon = errors.New("smoothing: bad forecast horizon")

	// ErrBadSmoothing indicates a smoothing factor outside its interval.
	ErrBadSmoothing = errors.New("smoothing: smoothing factor out of range")

	// ErrBadPeriod indicates a seasonal period below 1.
	ErrBadPeriod = errors.New("smoothing: period must be >= 1")

	// ErrDataTooShort indicates fewer observations than the method needs.
	ErrDataTooShort = errors.New("smoothing: not enough observations")

	// ErrNonPositive indicates a zero or negative value where the
	// multiplicative model requires positive data.
	ErrNonPositive = errors.New("smoothing: data must be positive")

	// ErrNotInitialized indicates use of a Triple model before Initialize.
	ErrNotInitialized = errors.New("smoothing: model is not initialized")
)
