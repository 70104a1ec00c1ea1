// SPDX-License-Identifier: MIT
package statespace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforecast/matrix"
	"github.com/katalvlaran/lvforecast/statespace"
)

func TestFilter_ThreadsCovariance(t *testing.T) {
	m := newFixture(t)
	P1, err := m.UpdateWithKalmanCov([][]float64{{1.2}}, fixR, fixQ, fixP)
	require.NoError(t, err)

	f, err := statespace.NewFilter(m, fixR, fixQ, P1.ToRows())
	require.NoError(t, err)
	x, err := f.Step([][]float64{{1}}, [][]float64{{1.5}})
	require.NoError(t, err)

	x0, _ := x.At(0, 0)
	x1, _ := x.At(1, 0)
	assert.InDelta(t, 1.3137677633676157, x0, 1e-12)
	assert.InDelta(t, 0.41020250658523905, x1, 1e-12)

	want := [][]float64{
		{0.05302249886750667, 0.05122225391339362},
		{0.05122225391339362, 0.9552208781437177},
	}
	P := f.Covariance()
	for i := range want {
		for j := range want[i] {
			got, _ := P.At(i, j)
			assert.InDelta(t, want[i][j], got, 1e-12, "P[%d][%d]", i, j)
		}
	}
	assert.Equal(t, 1, f.Steps())
	assert.Same(t, m, f.Model())
}

func TestFilter_RunConverges(t *testing.T) {
	// Constant-velocity target observed with noise-free position readings.
	m := newFixture(t)
	f, err := statespace.NewFilter(m, fixR, [][]float64{{1e-4, 0}, {0, 1e-4}}, fixP)
	require.NoError(t, err)

	const steps = 60
	us := make([][][]float64, steps)
	ys := make([][][]float64, steps)
	for i := 0; i < steps; i++ {
		us[i] = [][]float64{{0}}
		ys[i] = [][]float64{{0.1 * float64(i+1)}} // position grows by 0.1 per step
	}
	states, err := f.Run(us, ys)
	require.NoError(t, err)
	require.Len(t, states, steps)

	vel, _ := states[steps-1].At(1, 0)
	assert.InDelta(t, 1.0, vel, 0.05, "velocity estimate must approach 1 (0.1 per 0.1 time unit)")

	P := f.Covariance()
	assert.NoError(t, matrix.ValidateSymmetric(P, 0))
	for i := 0; i < 2; i++ {
		d, _ := P.At(i, i)
		assert.Greater(t, d, 0.0)
		assert.False(t, math.IsNaN(d))
	}
}

func TestFilter_Errors(t *testing.T) {
	_, err := statespace.NewFilter(nil, fixR, fixQ, fixP)
	assert.ErrorIs(t, err, statespace.ErrNilModel)

	m := newFixture(t)
	_, err = statespace.NewFilter(m, [][]float64{{1, 0}, {0, 1}}, fixQ, fixP)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	f, err := statespace.NewFilter(m, fixR, fixQ, fixP)
	require.NoError(t, err)
	_, err = f.Run([][][]float64{{{0}}}, nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = f.Step([][]float64{{0}}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, fixX0, f.State().ToRows(), "failed step must roll the prediction back")
	assert.Equal(t, fixP, f.Covariance().ToRows())
	assert.Equal(t, 0, f.Steps())
}
