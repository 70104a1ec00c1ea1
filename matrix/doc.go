// Package matrix is the dense linear-algebra engine behind the forecasting
// estimators.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows/Cols/At/Set/Clone), and Dense, its
//     row-major float64 implementation with bounds-checked accessors.
//   - Allocate-fresh kernels: Add, Sub, Mul, Scale, Transpose, MatVec,
//     Symmetrize. No result ever shares storage with an operand.
//   - Inverse by Gauss–Jordan elimination without pivoting. A zero pivot on
//     the diagonal is reported as ErrSingular even if a row exchange would
//     have rescued it; ill-conditioned inputs are not detected.
//   - Column statistics (CenterColumns, Covariance) and comparisons
//     (AllClose, Equal).
//
// Matrices here are small (regression design matrices, state vectors,
// covariances), so every kernel is a plain O(n³)-or-better loop with a fixed
// order of operations. Results are bit-reproducible for a given input.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNonSquare,
// ErrSingular, ...) wrapped with an operation tag; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
