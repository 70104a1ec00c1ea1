// SPDX-License-Identifier: MIT

// Package statespace: functional configuration for the Kalman update.
package statespace

import (
	"math"

	"github.com/katalvlaran/lvforecast/matrix"
)

const (
	// DefaultCheckCovariance toggles symmetry validation of R, Q and P on
	// every Kalman update.
	DefaultCheckCovariance = false

	// DefaultCovarianceTolerance is the absolute symmetry tolerance used when
	// the covariance check is enabled.
	DefaultCovarianceTolerance = matrix.DefaultEpsilon
)

const panicToleranceInvalid = "statespace: WithCovarianceCheck: tol must be finite, non-negative"

// Option configures a Model.
type Option func(*Options)

// Options holds the resolved Model configuration.
type Options struct {
	checkCovariance bool
	tol             float64
}

// WithCovarianceCheck makes every Kalman update reject R, Q or P that are not
// symmetric within tol (matrix.ErrAsymmetry).
// Panics if tol is negative, NaN or Inf.
func WithCovarianceCheck(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.checkCovariance = true
		o.tol = tol
	}
}

// WithoutCovarianceCheck disables the symmetry check.
func WithoutCovarianceCheck() Option {
	return func(o *Options) { o.checkCovariance = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		checkCovariance: DefaultCheckCovariance,
		tol:             DefaultCovarianceTolerance,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
