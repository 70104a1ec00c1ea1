// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid any logic duplication — each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// MulChain multiplies left to right: ((m0·m1)·m2)… . Useful for the
// A·P·Aᵀ style products of filtering code.
// Errors: those of Mul; ErrNilMatrix for an empty chain.
func MulChain(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	acc := ms[0]
	if err := ValidateNotNil(acc); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if len(ms) == 1 {
		return acc.Clone(), nil
	}
	var err error
	for _, next := range ms[1:] {
		if acc, err = Mul(acc, next); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
