// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and Gauss–Jordan inversion. All functions perform
// strict fail-fast validation and return fresh Dense results.
//
// Notes:
//   - Fast paths operate on *Dense flat slices; any other Matrix goes through At/Set
//     with the same loop order, so both paths produce identical bits.
//   - Products are rounded to float64 before accumulation. Go may otherwise fuse
//     x*y+z into one FMA instruction on some targets and change the last bit.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in Inverse.
const ZeroPivot = 0.0

// symmetrizeFactor halves (P + Pᵀ).
const symmetrizeFactor = 0.5

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opInverse    = "Inverse"
	opIdentity   = "Identity"
	opMatVec     = "MatVec"
	opSymmetrize = "Symmetrize"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols == b.Rows).
//   - Stage 2: for each (i, j) accumulate ZeroSum + Σ_k a[i,k]·b[k,j] in k order.
//
// Behavior highlights:
//   - No zero-skipping and no blocked/Strassen variants: the result of every cell is
//     the plain left-to-right dot product, which keeps 0·Inf = NaN visible.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		av, bv     float64
		sum        float64
		rowOffsetA int
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < aCols; k++ {
						sum += float64(da.data[rowOffsetA+k] * db.data[k*bCols+j])
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += float64(av * bv)
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with result[j][i] = m[i][j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions together with ErrDimensionMismatch when
// n <= 0. Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: n=%d: %w: %w", opIdentity, n, err, ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Inverse computes A⁻¹ by Gauss–Jordan elimination on the augmented matrix [A | I].
//
// Implementation:
//   - Stage 1: ValidateSquare; copy A into the left half of an n×2n buffer, I into the right.
//   - Stage 2: for each pivot row i = 0..n-1 in order:
//     pivot = aug[i][i]; exact zero → ErrSingular (no row exchange);
//     divide row i by pivot;
//     for every row k ≠ i: row_k -= aug[k][i] · row_i.
//   - Stage 3: copy the right half out as the result.
//
// Behavior highlights:
//   - Pivots are taken on the diagonal as they come. An invertible matrix with a
//     zero leading entry (e.g. [[0,1],[1,0]]) is reported singular, and nearly
//     singular inputs are not detected. Both are part of the contract.
//   - The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (also matches ErrDimensionMismatch), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	w := 2 * n
	aug := make([]float64, n*w)

	// Stage 1: build [A | I].
	var (
		i, j, k int
		v       float64
		err     error
	)
	src, isDense := m.(*Dense)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if isDense {
				v = src.data[i*n+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			aug[i*w+j] = v
		}
		aug[i*w+n+i] = 1.0
	}

	// Stage 2: eliminate column by column.
	var pivot, factor float64
	var rowI, rowK int
	for i = 0; i < n; i++ {
		rowI = i * w
		pivot = aug[rowI+i]
		if pivot == ZeroPivot {
			return nil, fmt.Errorf("%s: zero pivot at row %d: %w", opInverse, i, ErrSingular)
		}
		for j = 0; j < w; j++ {
			aug[rowI+j] /= pivot
		}
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			rowK = k * w
			factor = aug[rowK+i]
			for j = 0; j < w; j++ {
				aug[rowK+j] -= float64(factor * aug[rowI+j])
			}
		}
	}

	// Stage 3: extract the right half.
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(res.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return res, nil
}

// MatVec computes y = m·x for a plain slice x of length Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var (
		sum, v float64
		err    error
	)
	dm, isDense := m.(*Dense)
	for i := 0; i < rows; i++ {
		sum = ZeroSum
		for j := 0; j < cols; j++ {
			if isDense {
				v = dm.data[i*cols+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += float64(v * x[j])
		}
		y[i] = sum
	}

	return y, nil
}

// Symmetrize returns (m + mᵀ)·0.5, the symmetric part of a square matrix.
// Used to scrub round-off asymmetry from covariance updates.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func Symmetrize(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	res, err := Scale(sum, symmetrizeFactor)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return res, nil
}
