// SPDX-License-Identifier: MIT

package job

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvforecast/accuracy"
	"github.com/katalvlaran/lvforecast/internal/config"
	"github.com/katalvlaran/lvforecast/regression"
	"github.com/katalvlaran/lvforecast/smoothing"
	"github.com/katalvlaran/lvforecast/statespace"
)

// execute dispatches j to its estimator and scores the forecast against the
// holdout when one is given.
func execute(j config.Job) (Result, error) {
	var (
		res Result
		err error
	)
	switch j.Model {
	case config.ModelLinear:
		res, err = runLinear(j)
	case config.ModelVAR:
		res, err = runVAR(j)
	case config.ModelKalman:
		res, err = runKalman(j)
	default:
		res.Forecast, err = runScalar(j)
	}
	if err != nil {
		return Result{}, err
	}

	if len(j.Holdout) > 0 {
		if len(res.Forecast) < len(j.Holdout) {
			return Result{}, fmt.Errorf("holdout of %d needs %d forecast steps: %w",
				len(j.Holdout), len(res.Forecast), accuracy.ErrLengthMismatch)
		}
		score, err := accuracy.Evaluate(res.Forecast[:len(j.Holdout)], j.Holdout)
		if err != nil {
			return Result{}, err
		}
		res.Score = &score
	}
	if err = checkFinite(res); err != nil {
		return Result{}, err
	}

	return res, nil
}

// checkFinite rejects a result holding NaN or ±Inf anywhere the report
// would encode it.
func checkFinite(res Result) error {
	if i := firstNonFinite(res.Forecast); i >= 0 {
		return fmt.Errorf("forecast step %d is %v: %w", i, res.Forecast[i], ErrNonFinite)
	}
	for s, row := range res.MultiForecast {
		if i := firstNonFinite(row); i >= 0 {
			return fmt.Errorf("forecast step %d, series %d is %v: %w", s, i, row[i], ErrNonFinite)
		}
	}
	for s, row := range res.States {
		if i := firstNonFinite(row); i >= 0 {
			return fmt.Errorf("state after observation %d, component %d is %v: %w", s, i, row[i], ErrNonFinite)
		}
	}
	if f := res.Fitted; f != nil && firstNonFinite([]float64{f.Mean, f.StdDev, f.MAE, f.RMSE}) >= 0 {
		return fmt.Errorf("fit diagnostics: %w", ErrNonFinite)
	}
	if sc := res.Score; sc != nil && firstNonFinite([]float64{sc.MAE, sc.RMSE, sc.Bias, sc.DTW}) >= 0 {
		return fmt.Errorf("holdout score: %w", ErrNonFinite)
	}

	return nil
}

func firstNonFinite(v []float64) int {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}

	return -1
}

func runLinear(j config.Job) (Result, error) {
	lr, err := regression.NewLinearRegression(j.Params.Lag)
	if err != nil {
		return Result{}, err
	}
	if err = lr.Fit(j.Series); err != nil {
		return Result{}, err
	}
	forecast, err := lr.Predict(j.Series, j.Horizon)
	if err != nil {
		return Result{}, err
	}
	fitted, err := lr.Fitted()
	if err != nil {
		return Result{}, err
	}

	return Result{Forecast: forecast, Fitted: &fitted}, nil
}

func runVAR(j config.Job) (Result, error) {
	if len(j.MultiSeries) == 0 {
		return Result{}, fmt.Errorf("multi_series is empty: %w", regression.ErrDataTooShort)
	}
	v, err := regression.NewVAR(j.Params.Order, len(j.MultiSeries[0]))
	if err != nil {
		return Result{}, err
	}
	if err = v.Fit(j.MultiSeries); err != nil {
		return Result{}, err
	}
	forecast, err := v.Predict(j.MultiSeries, j.Horizon)
	if err != nil {
		return Result{}, err
	}

	return Result{MultiForecast: forecast}, nil
}

// runKalman filters the observations, then rolls the model forward Horizon
// steps with zero control and reports the predicted observations.
func runKalman(j config.Job) (Result, error) {
	k := j.Params.Kalman
	if k == nil {
		return Result{}, fmt.Errorf("params.kalman is missing: %w", config.ErrInvalidJob)
	}
	var opts []statespace.Option
	if k.CheckCovariance {
		opts = append(opts, statespace.WithCovarianceCheck(statespace.DefaultCovarianceTolerance))
	}
	model, err := statespace.New(k.A, k.B, k.C, k.D, k.X0, opts...)
	if err != nil {
		return Result{}, err
	}
	filter, err := statespace.NewFilter(model, k.R, k.Q, k.P0)
	if err != nil {
		return Result{}, err
	}

	_, m, _ := model.Dims()
	zero := column(make([]float64, m))
	us := make([][][]float64, len(k.Observations))
	ys := make([][][]float64, len(k.Observations))
	for i, obs := range k.Observations {
		us[i] = zero
		if len(k.Controls) > 0 {
			us[i] = column(k.Controls[i])
		}
		ys[i] = column(obs)
	}
	states, err := filter.Run(us, ys)
	if err != nil {
		return Result{}, err
	}

	res := Result{States: make([][]float64, len(states))}
	for i, x := range states {
		if res.States[i], err = x.Col(0); err != nil {
			return Result{}, err
		}
	}

	res.MultiForecast = make([][]float64, 0, j.Horizon)
	for h := 0; h < j.Horizon; h++ {
		if _, err = model.Predict(zero); err != nil {
			return Result{}, err
		}
		y, err := model.Observe(zero)
		if err != nil {
			return Result{}, err
		}
		row, err := y.Col(0)
		if err != nil {
			return Result{}, err
		}
		res.MultiForecast = append(res.MultiForecast, row)
	}

	return res, nil
}

func runScalar(j config.Job) ([]float64, error) {
	p := j.Params
	switch j.Model {
	case config.ModelMovingAverage:
		return smoothing.MovingAverageForecast(j.Series, p.Window, j.Horizon)
	case config.ModelEMA:
		return smoothing.ExponentialMovingAverageForecast(j.Series, p.Factor, j.Horizon)
	case config.ModelExponential:
		return smoothing.ExponentialSmoothingForecast(j.Series, j.Horizon, p.Level)
	case config.ModelDoubleAdditive:
		r, err := smoothing.DoubleAdditive(j.Series, p.Alpha, p.Beta)
		if err != nil {
			return nil, err
		}
		return r.Forecast(j.Horizon)
	case config.ModelDoubleMultiplicative:
		r, err := smoothing.DoubleMultiplicative(j.Series, p.Alpha, p.Beta)
		if err != nil {
			return nil, err
		}
		return r.Forecast(j.Horizon)
	case config.ModelTriple:
		return runTriple(j)
	default:
		return nil, fmt.Errorf("%q: %w", j.Model, config.ErrUnknownModel)
	}
}

// runTriple seeds the components from the first two seasons and trains on
// the rest of the series.
func runTriple(j config.Job) ([]float64, error) {
	p := j.Params
	m, err := smoothing.NewTriple(p.Alpha, p.Beta, p.Gamma, p.Period)
	if err != nil {
		return nil, err
	}
	seed := min(2*p.Period, len(j.Series))
	if err = m.Initialize(j.Series[:seed]); err != nil {
		return nil, err
	}
	if err = m.Train(j.Series[seed:]); err != nil {
		return nil, err
	}

	return m.Forecast(j.Horizon)
}

// column turns v into a len(v)×1 matrix literal.
func column(v []float64) [][]float64 {
	out := make([][]float64, len(v))
	for i, x := range v {
		out[i] = []float64{x}
	}

	return out
}
