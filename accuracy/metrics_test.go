package accuracy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvforecast/accuracy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Values(t *testing.T) {
	s, err := accuracy.Evaluate([]float64{1, 2, 3}, []float64{2, 2, 5})
	require.NoError(t, err)

	assert.Equal(t, 3, s.N)
	assert.InDelta(t, 1.0, s.MAE, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.RMSE, 1e-12)
	assert.InDelta(t, -1.0, s.Bias, 1e-12)
	assert.Equal(t, 3.0, s.DTW)
}

func TestEvaluate_PerfectForecast(t *testing.T) {
	s, err := accuracy.Evaluate([]float64{4, 5, 6}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Zero(t, s.MAE)
	assert.Zero(t, s.RMSE)
	assert.Zero(t, s.DTW)
}

func TestEvaluate_LaggedShapeScoresBetterUnderDTW(t *testing.T) {
	actual := []float64{0, 0, 5, 0, 0}
	late := []float64{0, 0, 0, 5, 0}

	s, err := accuracy.Evaluate(late, actual)
	require.NoError(t, err)
	assert.Less(t, s.DTW, s.MAE*float64(s.N))
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := accuracy.Evaluate(nil, []float64{1})
	assert.ErrorIs(t, err, accuracy.ErrEmptySequence)

	_, err = accuracy.Evaluate([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, accuracy.ErrLengthMismatch)
}

func TestScore_String(t *testing.T) {
	s := accuracy.Score{N: 2, MAE: 0.5, RMSE: 0.75, Bias: -0.25, DTW: 1}
	assert.Equal(t, "Score(n=2) mae=0.5 rmse=0.75 bias=-0.25 dtw=1", s.String())
}
