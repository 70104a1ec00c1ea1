// SPDX-License-Identifier: MIT

package smoothing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MovingAverage returns the mean of every length-window slice of data,
// len(data)-window+1 values in order. A window outside [1, len(data)]
// yields an empty result.
func MovingAverage(data []float64, window int) []float64 {
	if window <= 0 || window > len(data) {
		return []float64{}
	}
	out := make([]float64, len(data)-window+1)
	w := float64(window)
	for i := range out {
		out[i] = floats.Sum(data[i:i+window]) / w
	}

	return out
}

// MovingAverageForecast repeats the mean of the last window observations
// horizon times.
//
// Errors: ErrEmptyData, ErrBadWindow, ErrBadHorizon (horizon <= 0),
// ErrDataTooShort (len(data) < window).
func MovingAverageForecast(data []float64, window, horizon int) ([]float64, error) {
	switch {
	case len(data) == 0:
		return nil, ErrEmptyData
	case window <= 0:
		return nil, fmt.Errorf("window %d: %w", window, ErrBadWindow)
	case horizon <= 0:
		return nil, fmt.Errorf("horizon %d: %w", horizon, ErrBadHorizon)
	case len(data) < window:
		return nil, fmt.Errorf("%d observations for window %d: %w", len(data), window, ErrDataTooShort)
	}

	mean := floats.Sum(data[len(data)-window:]) / float64(window)

	return repeat(mean, horizon), nil
}

// ExponentialMovingAverageForecast smooths data with factor ∈ (0, 1],
// starting from data[0], and repeats the final average horizon times.
//
// Errors: ErrEmptyData, ErrBadSmoothing, ErrBadHorizon (horizon <= 0).
func ExponentialMovingAverageForecast(data []float64, factor float64, horizon int) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if !(factor > 0 && factor <= 1) {
		return nil, fmt.Errorf("factor %v not in (0, 1]: %w", factor, ErrBadSmoothing)
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("horizon %d: %w", horizon, ErrBadHorizon)
	}

	ema := data[0]
	for _, v := range data[1:] {
		ema = blend(factor, v, ema)
	}

	return repeat(ema, horizon), nil
}

// blend returns a·v + (1−a)·prev with both products rounded before the sum.
func blend(a, v, prev float64) float64 {
	return float64(a*v) + float64((1-a)*prev)
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
