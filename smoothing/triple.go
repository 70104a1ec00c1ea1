// SPDX-License-Identifier: MIT

package smoothing

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Triple is additive Holt–Winters smoothing with a fixed seasonal period.
// The zero value is unusable; construct with NewTriple and call Initialize.
type Triple struct {
	alpha, beta, gamma float64
	period             int

	level, trend float64
	seasonal     []float64
	history      []float64
	ready        bool
}

// NewTriple returns an uninitialized model.
// Errors: ErrBadSmoothing when any factor ∉ (0, 1]; ErrBadPeriod when period < 1.
func NewTriple(alpha, beta, gamma float64, period int) (*Triple, error) {
	for _, f := range []float64{alpha, beta, gamma} {
		if !(f > 0 && f <= 1) {
			return nil, fmt.Errorf("NewTriple: factor %v not in (0, 1]: %w", f, ErrBadSmoothing)
		}
	}
	if period < 1 {
		return nil, fmt.Errorf("NewTriple: period %d: %w", period, ErrBadPeriod)
	}

	return &Triple{
		alpha:    alpha,
		beta:     beta,
		gamma:    gamma,
		period:   period,
		seasonal: make([]float64, period),
	}, nil
}

// Initialize seeds the components from the first two seasons of data and
// records all of data as history:
//
//	level       = mean(d[0:p])
//	trend       = Σ (d[p+i] − d[i]) / p²
//	seasonal[i] = d[i] − level
//
// Errors: ErrDataTooShort when len(data) < 2·period.
func (m *Triple) Initialize(data []float64) error {
	p := m.period
	if len(data) < 2*p {
		return fmt.Errorf("Triple.Initialize: %d observations for period %d: %w", len(data), p, ErrDataTooShort)
	}

	m.level = stat.Mean(data[:p], nil)
	var trend float64
	for i := 0; i < p; i++ {
		trend += data[p+i] - data[i]
	}
	m.trend = trend / float64(p*p)
	for i := 0; i < p; i++ {
		m.seasonal[i] = data[i] - m.level
	}
	m.history = append(m.history[:0], data...)
	m.ready = true

	return nil
}

// Forecast returns level + h·trend + seasonal[(h−1) mod p] for h = 1..steps.
// The seasonal index restarts at 0 regardless of where history ends.
//
// Errors: ErrNotInitialized; ErrBadHorizon when steps < 0.
func (m *Triple) Forecast(steps int) ([]float64, error) {
	if !m.ready {
		return nil, ErrNotInitialized
	}
	if steps < 0 {
		return nil, fmt.Errorf("Triple.Forecast: steps %d: %w", steps, ErrBadHorizon)
	}
	out := make([]float64, steps)
	for i := range out {
		out[i] = m.level + float64(float64(i+1)*m.trend) + m.seasonal[i%m.period]
	}

	return out, nil
}

// Update appends v to the history and folds it into the components using the
// seasonal slot len(history) mod period.
//
// Errors: ErrNotInitialized.
func (m *Triple) Update(v float64) error {
	if !m.ready {
		return ErrNotInitialized
	}
	m.history = append(m.history, v)
	s := len(m.history) % m.period
	lastLevel, lastTrend := m.level, m.trend

	m.level = blend(m.alpha, v-m.seasonal[s], lastLevel+lastTrend)
	m.trend = blend(m.beta, m.level-lastLevel, lastTrend)
	m.seasonal[s] = blend(m.gamma, v-m.level, m.seasonal[s])

	return nil
}

// Train feeds every value of data through Update.
func (m *Triple) Train(data []float64) error {
	for _, v := range data {
		if err := m.Update(v); err != nil {
			return err
		}
	}

	return nil
}

// Level returns the current level.
func (m *Triple) Level() float64 { return m.level }

// Trend returns the current trend.
func (m *Triple) Trend() float64 { return m.trend }

// Seasonal returns a copy of the seasonal components.
func (m *Triple) Seasonal() []float64 { return append([]float64(nil), m.seasonal...) }

// HistoryLen returns the number of observations seen.
func (m *Triple) HistoryLen() int { return len(m.history) }

// Period returns the seasonal period.
func (m *Triple) Period() int { return m.period }

// String dumps the current components.
func (m *Triple) String() string {
	return fmt.Sprintf("Triple(period=%d) level=%g trend=%g seasonal=%v", m.period, m.level, m.trend, m.seasonal)
}
