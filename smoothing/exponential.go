// SPDX-License-Identifier: MIT

package smoothing

import "fmt"

// DefaultSmoothingLevel is the level used by the CLI when a job leaves it unset.
const DefaultSmoothingLevel = 0.2

// ExponentialSmoothing returns s[0] = data[0], s[i] = α·data[i] + (1−α)·s[i−1].
// An empty series yields an empty result.
//
// Errors: ErrBadSmoothing when alpha ∉ (0, 1].
func ExponentialSmoothing(data []float64, alpha float64) ([]float64, error) {
	if !(alpha > 0 && alpha <= 1) {
		return nil, fmt.Errorf("alpha %v not in (0, 1]: %w", alpha, ErrBadSmoothing)
	}
	out := make([]float64, len(data))
	for i, v := range data {
		prev := v
		if i > 0 {
			prev = out[i-1]
		}
		out[i] = blend(alpha, v, prev)
	}

	return out, nil
}

// ExponentialSmoothingForecast folds the whole series into one level,
// seeded with data[0] (so data[0] is blended into itself first), and repeats
// it horizon times.
//
// Errors: ErrBadSmoothing when level ∉ (0, 1); ErrEmptyData;
// ErrBadHorizon when horizon < 0.
func ExponentialSmoothingForecast(data []float64, horizon int, level float64) ([]float64, error) {
	if !(level > 0 && level < 1) {
		return nil, fmt.Errorf("level %v not in (0, 1): %w", level, ErrBadSmoothing)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if horizon < 0 {
		return nil, fmt.Errorf("horizon %d: %w", horizon, ErrBadHorizon)
	}

	last := data[0]
	if len(data) > 1 {
		for _, v := range data {
			last = blend(level, v, last)
		}
	}

	return repeat(last, horizon), nil
}
