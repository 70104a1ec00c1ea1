// Package smoothing provides closed-form scalar smoothing recurrences and
// their flat or trend-following forecasts.
//
// Contents:
//   - MovingAverage and MovingAverageForecast (flat mean of the last window).
//   - ExponentialMovingAverageForecast, ExponentialSmoothing and
//     ExponentialSmoothingForecast (single exponential smoothing).
//   - DoubleAdditive and DoubleMultiplicative (Holt's linear and
//     multiplicative trend).
//   - Triple, additive Holt–Winters with a fixed seasonal period.
//
// Every function copies what it needs from its input; callers keep
// ownership of their slices.
package smoothing
