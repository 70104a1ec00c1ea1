// Package regression fits linear autoregressive models by ordinary least
// squares and forecasts them forward.
//
// The regression package provides:
//
//   - OLS, the normal-equations estimator β = (XᵀX)⁻¹(XᵀY), built only from
//     the matrix package kernels (Transpose, Mul, Inverse). There is no QR or
//     SVD fallback: near-collinear predictors surface as matrix.ErrSingular.
//   - LinearRegression, a single-series AR(lag) model with a bias term.
//   - VAR, a k-variable vector autoregression of order p.
//   - Residual diagnostics (Residuals, Summarize) backed by gonum/stat.
//
// Forecasts feed forward: each predicted value is appended to the sliding
// window and used as input for the next step, so errors compound with the
// horizon.
//
// Models are not safe for concurrent mutation. Fit replaces the coefficient
// set wholesale; Predict only reads it.
package regression
