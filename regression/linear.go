// SPDX-License-Identifier: MIT
// Package: regression
//
// Purpose:
//   - Single-series autoregression with a bias term:
//     y[t+lag] ≈ β0 + β1·y[t] + … + β_lag·y[t+lag-1].

package regression

import (
	"fmt"

	"github.com/katalvlaran/lvforecast/matrix"
)

const (
	opLinearFit     = "LinearRegression.Fit"
	opLinearPredict = "LinearRegression.Predict"

	// biasTerm is the constant predictor prepended to every window.
	biasTerm = 1.0
)

// LinearRegression is an AR(lag) model with intercept, fitted by OLS.
type LinearRegression struct {
	lag     int
	beta    []float64 // (lag+1) coefficients, bias first; nil until Fit
	summary Summary
}

// NewLinearRegression returns an unfitted model of the given lag order.
// Errors: ErrBadLag when lag < 1.
func NewLinearRegression(lag int) (*LinearRegression, error) {
	if lag < 1 {
		return nil, fmt.Errorf("NewLinearRegression(%d): %w", lag, ErrBadLag)
	}

	return &LinearRegression{lag: lag}, nil
}

// Lag returns the model order.
func (lr *LinearRegression) Lag() int { return lr.lag }

// Design builds the lagged design matrix and target column for data.
// Row t of X is [1, data[t], …, data[t+lag-1]]; row t of Y is data[t+lag].
//
// Errors: ErrDataTooShort when len(data) <= lag.
func (lr *LinearRegression) Design(data []float64) (X, Y *matrix.Dense, err error) {
	n := len(data)
	if n <= lr.lag {
		return nil, nil, fmt.Errorf("%d observations for lag %d: %w", n, lr.lag, ErrDataTooShort)
	}

	obs := n - lr.lag
	if X, err = matrix.NewDense(obs, lr.lag+1); err != nil {
		return nil, nil, err
	}
	if Y, err = matrix.NewDense(obs, 1); err != nil {
		return nil, nil, err
	}
	var t, j int
	for t = 0; t < obs; t++ {
		if err = X.Set(t, 0, biasTerm); err != nil {
			return nil, nil, err
		}
		for j = 0; j < lr.lag; j++ {
			if err = X.Set(t, j+1, data[t+j]); err != nil {
				return nil, nil, err
			}
		}
		if err = Y.Set(t, 0, data[t+lr.lag]); err != nil {
			return nil, nil, err
		}
	}

	return X, Y, nil
}

// Fit estimates the coefficients on data, replacing any previous fit.
// On error the previous fit (if any) is kept.
//
// Errors:
//   - ErrDataTooShort when len(data) <= lag, or when the lagged rows do
//     not outnumber the coefficients.
//   - matrix.ErrSingular when the lagged predictors are collinear.
//   - matrix.ErrNaNInf for non-finite observations.
func (lr *LinearRegression) Fit(data []float64) error {
	X, Y, err := lr.Design(data)
	if err != nil {
		return fmt.Errorf("%s: %w", opLinearFit, err)
	}
	beta, err := OLS(X, Y)
	if err != nil {
		return fmt.Errorf("%s: %w", opLinearFit, err)
	}
	res, err := Residuals(X, Y, beta)
	if err != nil {
		return fmt.Errorf("%s: %w", opLinearFit, err)
	}
	col, err := res.Col(0)
	if err != nil {
		return fmt.Errorf("%s: %w", opLinearFit, err)
	}
	coef, err := beta.Col(0)
	if err != nil {
		return fmt.Errorf("%s: %w", opLinearFit, err)
	}

	lr.beta = coef
	lr.summary = Summarize(col)

	return nil
}

// Predict forecasts horizon steps past the end of data.
//
// The window starts as the last lag observations. Each step computes
// β0 + Σ window[i]·β[i+1], appends the prediction and drops the oldest value,
// so later steps are built on earlier predictions.
//
// Errors: ErrNotFitted, ErrBadHorizon, ErrDataTooShort (len(data) < lag).
func (lr *LinearRegression) Predict(data []float64, horizon int) ([]float64, error) {
	if lr.beta == nil {
		return nil, fmt.Errorf("%s: %w", opLinearPredict, ErrNotFitted)
	}
	if horizon < 0 {
		return nil, fmt.Errorf("%s: horizon %d: %w", opLinearPredict, horizon, ErrBadHorizon)
	}
	if len(data) < lr.lag {
		return nil, fmt.Errorf("%s: %d observations for lag %d: %w",
			opLinearPredict, len(data), lr.lag, ErrDataTooShort)
	}

	window := make([]float64, lr.lag)
	copy(window, data[len(data)-lr.lag:])
	out := make([]float64, 0, horizon)

	var next float64
	for step := 0; step < horizon; step++ {
		next = matrix.ZeroSum
		next += float64(biasTerm * lr.beta[0])
		for i, v := range window {
			next += float64(v * lr.beta[i+1])
		}
		out = append(out, next)
		copy(window, window[1:])
		window[lr.lag-1] = next
	}

	return out, nil
}

// Coefficients returns a copy of β (bias first), or nil before Fit.
func (lr *LinearRegression) Coefficients() []float64 {
	if lr.beta == nil {
		return nil
	}
	out := make([]float64, len(lr.beta))
	copy(out, lr.beta)

	return out
}

// Fitted returns the in-sample residual summary of the last fit.
// Errors: ErrNotFitted.
func (lr *LinearRegression) Fitted() (Summary, error) {
	if lr.beta == nil {
		return Summary{}, ErrNotFitted
	}

	return lr.summary, nil
}

// String reports the lag order and coefficients.
func (lr *LinearRegression) String() string {
	if lr.beta == nil {
		return fmt.Sprintf("LinearRegression(lag=%d, unfitted)", lr.lag)
	}

	return fmt.Sprintf("LinearRegression(lag=%d, beta=%v)", lr.lag, lr.beta)
}

// Forecast fits an AR(lag) model on data and predicts horizon steps ahead.
//
// Errors: those of NewLinearRegression, Fit and Predict.
func Forecast(data []float64, horizon, lag int) ([]float64, error) {
	lr, err := NewLinearRegression(lag)
	if err != nil {
		return nil, err
	}
	if err = lr.Fit(data); err != nil {
		return nil, err
	}

	return lr.Predict(data, horizon)
}
