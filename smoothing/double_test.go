// SPDX-License-Identifier: MIT
package smoothing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforecast/smoothing"
)

var trending = []float64{10, 12, 14, 18, 24, 30}

func TestDoubleAdditive(t *testing.T) {
	r, err := smoothing.DoubleAdditive(trending, 0.5, 0.3)
	require.NoError(t, err)
	assert.Equal(t, smoothing.Additive, r.Kind)
	require.Len(t, r.Level, len(trending))
	require.Len(t, r.Trend, len(trending))
	require.Len(t, r.Smoothed, len(trending))

	assert.InDeltaSlice(t, []float64{10, 12, 14, 17, 21.65, 27.3275}, r.Level, 1e-12)
	assert.InDeltaSlice(t, []float64{2, 2, 2, 2.3, 3.005, 3.80675}, r.Trend, 1e-12)
	assert.InDeltaSlice(t, []float64{10, 14, 16, 19.3, 24.655, 31.13425}, r.Smoothed, 1e-12)

	f, err := r.Forecast(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{31.13425, 34.941, 38.74775}, f, 1e-12)

	_, err = r.Forecast(-1)
	assert.ErrorIs(t, err, smoothing.ErrBadHorizon)

	small, err := smoothing.DoubleAdditive([]float64{5, 7}, 0.5, 0.3)
	require.NoError(t, err)
	assert.Len(t, small.Level, 2)
}

func TestDoubleAdditive_Errors(t *testing.T) {
	for _, ab := range [][2]float64{{-0.1, 0.5}, {1.1, 0.5}, {0.5, -0.1}, {0.5, 1.1}} {
		_, err := smoothing.DoubleAdditive([]float64{10, 12}, ab[0], ab[1])
		assert.ErrorIs(t, err, smoothing.ErrBadSmoothing, "%v", ab)
	}
	_, err := smoothing.DoubleAdditive([]float64{10}, 0.5, 0.5)
	assert.ErrorIs(t, err, smoothing.ErrDataTooShort)
}

func TestDoubleMultiplicative(t *testing.T) {
	r, err := smoothing.DoubleMultiplicative(trending, 0.5, 0.3)
	require.NoError(t, err)
	assert.Equal(t, smoothing.Multiplicative, r.Kind)
	assert.Equal(t, "multiplicative", r.Kind.String())

	assert.InDeltaSlice(t,
		[]float64{10, 12, 14.2, 17.4845, 22.542199240316897, 28.87364013743374}, r.Level, 1e-12)
	assert.InDeltaSlice(t,
		[]float64{1.2, 1.2, 1.195, 1.2058908450704222, 1.230903869629599, 1.2458938870261949}, r.Trend, 1e-12)
	assert.Equal(t, 10.0, r.Smoothed[0])

	f, err := r.Forecast(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{35.973491743422876, 44.81915345811785, 55.839909315157975}, f, 1e-9)
}

func TestDoubleMultiplicative_Errors(t *testing.T) {
	_, err := smoothing.DoubleMultiplicative([]float64{10, 0, 3}, 0.5, 0.5)
	assert.ErrorIs(t, err, smoothing.ErrNonPositive)
	_, err = smoothing.DoubleMultiplicative([]float64{10, -2}, 0.5, 0.5)
	assert.ErrorIs(t, err, smoothing.ErrNonPositive)
	_, err = smoothing.DoubleMultiplicative([]float64{10}, 0.5, 0.5)
	assert.ErrorIs(t, err, smoothing.ErrDataTooShort)
	_, err = smoothing.DoubleMultiplicative(trending, 0, 0.5)
	assert.ErrorIs(t, err, smoothing.ErrBadSmoothing)
}
