// Package lvforecast is a small, deterministic toolkit for forecasting
// numeric time series, from a dense matrix engine up to OLS, VAR and
// Kalman filtering.
//
// 🚀 What is in lvforecast?
//
//	• Matrix engine: dense row-major matrices, multiply, transpose,
//	  Gauss–Jordan inverse with exact-zero pivot detection
//	• Regression: OLS fit, lagged linear regression, vector autoregression
//	• State space: linear model x' = A·x + B·u, y = C·x + D·u with a
//	  Kalman correction cycle and a covariance-threading Filter
//	• Smoothing: moving averages, exponential, Holt (double) and
//	  Holt–Winters (triple) smoothing
//	• Accuracy: MAE, RMSE, bias and Dynamic Time Warping against holdout data
//
// ✨ Why lvforecast?
//
//   - Reproducible – every accumulation runs in a fixed order and each
//     product is rounded before it is summed, so results are bit-stable
//   - Explicit errors – sentinel errors matched with errors.Is, no panics on
//     user input
//   - Small surface – plain [][]float64 in, freshly allocated results out
//
// Packages:
//
//	matrix/      — Dense matrix, arithmetic, inverse, covariance
//	regression/  — OLS, LinearRegression, VAR, residual diagnostics
//	statespace/  — Model, Kalman update, Filter
//	smoothing/   — moving-average and exponential smoothing family
//	accuracy/    — forecast scoring and DTW
//	cmd/lvforecast — batch CLI running jobs from a YAML file
//
// Quick start:
//
//	next, err := regression.Forecast([]float64{10, 12, 15, 13, 18, 20, 22, 25}, 3, 2)
//	if err != nil {
//		// matrix.ErrSingular, regression.ErrDataTooShort, ...
//	}
//
//	go install github.com/katalvlaran/lvforecast/cmd/lvforecast@latest
package lvforecast
