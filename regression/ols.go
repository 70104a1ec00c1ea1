// SPDX-License-Identifier: MIT
// Package: regression
//
// Purpose:
//   - Normal-equations least squares on top of the matrix kernels.

package regression

import (
	"fmt"

	"github.com/katalvlaran/lvforecast/matrix"
)

const opOLS = "OLS"

// OLS estimates β minimizing ‖Y − Xβ‖² via the normal equations.
//
// Implementation:
//   - Stage 1: validate X, Y non-nil, X.Rows == Y.Rows, X.Rows >= X.Cols.
//   - Stage 2: Xᵀ; G = XᵀX; G⁻¹ by Gauss–Jordan; b = XᵀY.
//   - Stage 3: β = G⁻¹·b (X.Cols × Y.Cols).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - ErrDataTooShort unless observations outnumber predictors.
//   - matrix.ErrSingular when XᵀX meets a zero pivot.
//
// Complexity:
//   - Time O(r·c² + c³), Space O(c² + c·k).
func OLS(X, Y matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: X: %w", opOLS, err)
	}
	if err := matrix.ValidateNotNil(Y); err != nil {
		return nil, fmt.Errorf("%s: Y: %w", opOLS, err)
	}
	if X.Rows() != Y.Rows() {
		return nil, fmt.Errorf("%s: X has %d rows, Y has %d: %w",
			opOLS, X.Rows(), Y.Rows(), matrix.ErrDimensionMismatch)
	}
	if X.Rows() <= X.Cols() {
		return nil, fmt.Errorf("%s: %d observations for %d predictors: %w",
			opOLS, X.Rows(), X.Cols(), ErrDataTooShort)
	}

	Xt, err := matrix.Transpose(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOLS, err)
	}
	G, err := matrix.Mul(Xt, X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOLS, err)
	}
	Ginv, err := matrix.Inverse(G)
	if err != nil {
		return nil, fmt.Errorf("%s: normal matrix: %w", opOLS, err)
	}
	XtY, err := matrix.Mul(Xt, Y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOLS, err)
	}
	beta, err := matrix.Mul(Ginv, XtY)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOLS, err)
	}

	return matrix.AsDense(beta)
}
