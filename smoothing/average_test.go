// SPDX-License-Identifier: MIT
package smoothing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforecast/smoothing"
)

func TestMovingAverage(t *testing.T) {
	assert.Equal(t, []float64{2, 3, 4}, smoothing.MovingAverage([]float64{1, 2, 3, 4, 5}, 3))
	assert.Equal(t, []float64{3}, smoothing.MovingAverage([]float64{1, 2, 3, 4, 5}, 5))
	assert.Equal(t, []float64{1, 2}, smoothing.MovingAverage([]float64{1, 2}, 1))

	for _, w := range []int{0, -1, 6} {
		got := smoothing.MovingAverage([]float64{1, 2, 3, 4, 5}, w)
		assert.NotNil(t, got)
		assert.Empty(t, got, "window %d", w)
	}
	assert.Empty(t, smoothing.MovingAverage(nil, 1))
}

func TestMovingAverageForecast(t *testing.T) {
	got, err := smoothing.MovingAverageForecast([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, got)

	cases := []struct {
		name    string
		data    []float64
		window  int
		horizon int
		want    error
	}{
		{"empty", nil, 1, 1, smoothing.ErrEmptyData},
		{"zero window", []float64{1}, 0, 1, smoothing.ErrBadWindow},
		{"zero horizon", []float64{1}, 1, 0, smoothing.ErrBadHorizon},
		{"short", []float64{1, 2}, 3, 1, smoothing.ErrDataTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := smoothing.MovingAverageForecast(tc.data, tc.window, tc.horizon)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExponentialMovingAverageForecast(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got, err := smoothing.ExponentialMovingAverageForecast(data, 0.8, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{9.750000128, 9.750000128}, got)

	// factor 1 tracks the last value.
	got, err = smoothing.ExponentialMovingAverageForecast(data, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, got)

	_, err = smoothing.ExponentialMovingAverageForecast(nil, 0.5, 1)
	assert.ErrorIs(t, err, smoothing.ErrEmptyData)
	_, err = smoothing.ExponentialMovingAverageForecast(data, 0, 1)
	assert.ErrorIs(t, err, smoothing.ErrBadSmoothing)
	_, err = smoothing.ExponentialMovingAverageForecast(data, 1.1, 1)
	assert.ErrorIs(t, err, smoothing.ErrBadSmoothing)
	_, err = smoothing.ExponentialMovingAverageForecast(data, 0.5, 0)
	assert.ErrorIs(t, err, smoothing.ErrBadHorizon)
}
