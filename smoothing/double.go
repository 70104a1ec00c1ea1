// SPDX-License-Identifier: MIT

package smoothing

import (
	"fmt"
	"math"
)

// TrendKind selects how a double-smoothing trend combines with the level.
type TrendKind int

const (
	// Additive trend: forecast = L + h·T.
	Additive TrendKind = iota
	// Multiplicative trend: forecast = L·T^h.
	Multiplicative
)

// String returns the kind name.
func (k TrendKind) String() string {
	if k == Multiplicative {
		return "multiplicative"
	}

	return "additive"
}

// DoubleResult holds the per-observation components of double exponential
// smoothing. Level, Trend and Smoothed all have len(data) entries;
// Smoothed[0] is data[0].
type DoubleResult struct {
	Kind     TrendKind
	Level    []float64
	Trend    []float64
	Smoothed []float64
}

// Forecast extrapolates steps values from the last level and trend.
// Errors: ErrBadHorizon when steps < 0.
func (r *DoubleResult) Forecast(steps int) ([]float64, error) {
	if steps < 0 {
		return nil, fmt.Errorf("steps %d: %w", steps, ErrBadHorizon)
	}
	L := r.Level[len(r.Level)-1]
	T := r.Trend[len(r.Trend)-1]
	out := make([]float64, steps)
	for i := range out {
		h := float64(i + 1)
		if r.Kind == Multiplicative {
			out[i] = L * math.Pow(T, h)
		} else {
			out[i] = L + float64(h*T)
		}
	}

	return out, nil
}

func checkAlphaBeta(alpha, beta float64) error {
	if !(alpha > 0 && alpha <= 1) || !(beta > 0 && beta <= 1) {
		return fmt.Errorf("alpha %v, beta %v not in (0, 1]: %w", alpha, beta, ErrBadSmoothing)
	}

	return nil
}

// DoubleAdditive runs Holt's linear-trend smoothing.
//
//	L[0] = d[0], T[0] = d[1] − d[0]
//	L[i] = α·d[i] + (1−α)·(L[i−1] + T[i−1])
//	T[i] = β·(L[i] − L[i−1]) + (1−β)·T[i−1]
//	S[i] = L[i] + T[i]
//
// Errors: ErrBadSmoothing when alpha or beta ∉ (0, 1]; ErrDataTooShort
// with fewer than two observations.
func DoubleAdditive(data []float64, alpha, beta float64) (*DoubleResult, error) {
	if err := checkAlphaBeta(alpha, beta); err != nil {
		return nil, err
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("%d observations: %w", len(data), ErrDataTooShort)
	}

	n := len(data)
	r := &DoubleResult{
		Kind:     Additive,
		Level:    make([]float64, n),
		Trend:    make([]float64, n),
		Smoothed: make([]float64, n),
	}
	r.Level[0], r.Trend[0], r.Smoothed[0] = data[0], data[1]-data[0], data[0]
	for i := 1; i < n; i++ {
		r.Level[i] = blend(alpha, data[i], r.Level[i-1]+r.Trend[i-1])
		r.Trend[i] = blend(beta, r.Level[i]-r.Level[i-1], r.Trend[i-1])
		r.Smoothed[i] = r.Level[i] + r.Trend[i]
	}

	return r, nil
}

// DoubleMultiplicative runs multiplicative-trend smoothing on positive data.
//
//	L[0] = d[0], T[0] = d[1] / d[0]
//	L[i] = α·d[i] + (1−α)·L[i−1]·T[i−1]
//	T[i] = β·(L[i] / L[i−1]) + (1−β)·T[i−1]
//	S[i] = L[i]·T[i]
//
// Errors: as DoubleAdditive, plus ErrNonPositive for any value <= 0.
func DoubleMultiplicative(data []float64, alpha, beta float64) (*DoubleResult, error) {
	if err := checkAlphaBeta(alpha, beta); err != nil {
		return nil, err
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("%d observations: %w", len(data), ErrDataTooShort)
	}
	for i, v := range data {
		if !(v > 0) {
			return nil, fmt.Errorf("data[%d]=%v: %w", i, v, ErrNonPositive)
		}
	}

	n := len(data)
	r := &DoubleResult{
		Kind:     Multiplicative,
		Level:    make([]float64, n),
		Trend:    make([]float64, n),
		Smoothed: make([]float64, n),
	}
	r.Level[0], r.Trend[0], r.Smoothed[0] = data[0], data[1]/data[0], data[0]
	for i := 1; i < n; i++ {
		r.Level[i] = float64(alpha*data[i]) + float64(float64((1-alpha)*r.Level[i-1])*r.Trend[i-1])
		r.Trend[i] = blend(beta, r.Level[i]/r.Level[i-1], r.Trend[i-1])
		r.Smoothed[i] = r.Level[i] * r.Trend[i]
	}

	return r, nil
}
