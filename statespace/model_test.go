// SPDX-License-Identifier: MIT
package statespace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforecast/matrix"
	"github.com/katalvlaran/lvforecast/statespace"
)

var (
	fixA  = [][]float64{{1, 0.1}, {0, 1}}
	fixB  = [][]float64{{0}, {0.1}}
	fixC  = [][]float64{{1, 0}}
	fixD  = [][]float64{{0}}
	fixX0 = [][]float64{{0}, {0}}
	fixR  = [][]float64{{0.1}}
	fixQ  = [][]float64{{0.01, 0}, {0, 0.01}}
	fixP  = [][]float64{{1, 0}, {0, 1}}
)

func newFixture(t *testing.T, opts ...statespace.Option) *statespace.Model {
	t.Helper()
	m, err := statespace.New(fixA, fixB, fixC, fixD, fixX0, opts...)
	require.NoError(t, err)

	return m
}

func TestNew_Shapes(t *testing.T) {
	m := newFixture(t)
	n, in, p := m.Dims()
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, p)

	cases := map[string][5][][]float64{
		"B rows":  {fixA, {{0}}, fixC, fixD, fixX0},
		"C cols":  {fixA, fixB, {{1, 0, 0}}, fixD, fixX0},
		"D shape": {fixA, fixB, fixC, {{0, 0}}, fixX0},
		"x0 rows": {fixA, fixB, fixC, fixD, {{0}}},
		"x0 cols": {fixA, fixB, fixC, fixD, {{0, 0}, {0, 0}}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := statespace.New(in[0], in[1], in[2], in[3], in[4])
			assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}

	_, err := statespace.New([][]float64{{1, 2}}, fixB, fixC, fixD, fixX0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = statespace.New(fixA, nil, fixC, fixD, fixX0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = statespace.NewFromMatrices(nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNew_CopiesInputs(t *testing.T) {
	a := [][]float64{{1, 0.1}, {0, 1}}
	m, err := statespace.New(a, fixB, fixC, fixD, fixX0)
	require.NoError(t, err)
	a[0][1] = 5

	x, err := m.Predict([][]float64{{0}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}, {0}}, x.ToRows())
	assert.NotContains(t, m.String(), "5\t")
}

func TestPredict(t *testing.T) {
	m := newFixture(t)
	x, err := m.Predict([][]float64{{1}})
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 1, x.Cols())

	v0, _ := x.At(0, 0)
	v1, _ := x.At(1, 0)
	assert.InDelta(t, 0.0, v0, 1e-12)
	assert.InDelta(t, 0.1, v1, 1e-12)

	// The returned state is a copy.
	require.NoError(t, x.Set(0, 0, 99))
	s0, _ := m.State().At(0, 0)
	assert.InDelta(t, 0.0, s0, 1e-12)

	// Second step integrates velocity into position.
	x, err = m.Predict([][]float64{{1}})
	require.NoError(t, err)
	v0, _ = x.At(0, 0)
	assert.InDelta(t, 0.01, v0, 1e-12)
}

func TestPredict_BadInputKeepsState(t *testing.T) {
	m := newFixture(t)
	_, err := m.Predict([][]float64{{1}, {2}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, fixX0, m.State().ToRows())
}

func TestObserve_ReadOnlyAndIdempotent(t *testing.T) {
	m := newFixture(t)
	y1, err := m.Observe([][]float64{{1}})
	require.NoError(t, err)
	y2, err := m.Observe([][]float64{{1}})
	require.NoError(t, err)

	assert.Equal(t, 1, y1.Rows())
	assert.Equal(t, 1, y1.Cols())
	v, _ := y1.At(0, 0)
	assert.InDelta(t, 0.0, v, 1e-12)
	assert.Equal(t, y1.ToRows(), y2.ToRows())
	assert.Equal(t, fixX0, m.State().ToRows())

	_, err = m.Observe([][]float64{{1, 2}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestUpdate_NotImplemented(t *testing.T) {
	m := newFixture(t)
	err := m.Update([][]float64{{1.2}}, [][]float64{{1}})
	assert.ErrorIs(t, err, statespace.ErrNotImplemented)
	assert.Equal(t, fixX0, m.State().ToRows())
}

func TestModel_String(t *testing.T) {
	s := newFixture(t).String()
	assert.Contains(t, s, "StateSpaceModel(n=2, m=1, p=1)")
	assert.Contains(t, s, "A:\n1\t0.1\n0\t1")
	assert.Contains(t, s, "x:\n0\n0")
}
