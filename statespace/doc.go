// Package statespace implements a discrete-time linear state-space model
// with a Kalman-filter correction step.
//
//	x(t+1) = A·x(t) + B·u(t)
//	y(t)   = C·x(t) + D·u(t)
//
// A Model owns A (n×n), B (n×m), C (p×n), D (p×m) and the state estimate x
// (n×1). Predict and the Kalman update replace x with a freshly computed
// matrix; Observe only reads it.
//
// The error covariance P is not stored on the Model. UpdateWithKalman takes
// the prior P on every call and discards the posterior, so callers that filter
// over many steps must thread P themselves. UpdateWithKalmanCov returns the
// posterior, and Filter packages the whole predict/correct recursion with P
// carried between steps.
//
// Matrix inverses use the no-pivoting Gauss–Jordan kernel of the matrix
// package: a zero pivot in the innovation covariance C·P·Cᵀ + R surfaces as
// matrix.ErrSingular.
//
// A Model is shared mutable state with no internal locking; serialize calls
// on one instance.
package statespace
