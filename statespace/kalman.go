// SPDX-License-Identifier: MIT
// Package: statespace
//
// Purpose:
//   - One Kalman correction cycle against the model's current state.
//
// Cycle (all products left to right):
//  1. P⁻ = A·P·Aᵀ + Q
//  2. K  = P⁻·Cᵀ·(C·P⁻·Cᵀ + R)⁻¹
//  3. e  = y − C·x
//  4. x  ← x + K·e
//  5. P⁺ = (I − K·C)·P⁻, then P⁺ ← (P⁺ + P⁺ᵀ)·0.5
//
// Step 5's symmetrization scrubs round-off asymmetry; without it P drifts
// away from symmetric over repeated cycles.

package statespace

import (
	"fmt"

	"github.com/katalvlaran/lvforecast/matrix"
)

const opKalman = "Model.UpdateWithKalman"

// UpdateWithKalman runs one Kalman cycle with observation y (p×1),
// observation noise R (p×p), process noise Q (n×n) and prior covariance
// P (n×n). It replaces x with the corrected estimate. The posterior
// covariance is discarded; use UpdateWithKalmanCov or Filter to keep it.
// On error x is unchanged.
//
// Errors:
//   - matrix.ErrDimensionMismatch for mis-shaped y, R, Q or P.
//   - matrix.ErrSingular when C·P⁻·Cᵀ + R meets a zero pivot.
//   - matrix.ErrAsymmetry when the covariance check option is on.
func (s *Model) UpdateWithKalman(y, R, Q, P [][]float64) error {
	_, err := s.UpdateWithKalmanCov(y, R, Q, P)

	return err
}

// UpdateWithKalmanCov is UpdateWithKalman that also returns the symmetrized
// posterior covariance P⁺.
func (s *Model) UpdateWithKalmanCov(y, R, Q, P [][]float64) (*matrix.Dense, error) {
	names := [...]string{"y", "R", "Q", "P"}
	var ms [4]*matrix.Dense
	var err error
	for i, rows := range [][][]float64{y, R, Q, P} {
		if ms[i], err = matrix.NewDenseFrom(rows); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", opKalman, names[i], err)
		}
	}

	return s.correct(ms[0], ms[1], ms[2], ms[3])
}

// correct validates shapes and runs the cycle on parsed matrices.
func (s *Model) correct(y, R, Q, P *matrix.Dense) (*matrix.Dense, error) {
	if err := s.checkKalmanShapes(y, R, Q, P); err != nil {
		return nil, fmt.Errorf("%s: %w", opKalman, err)
	}
	if s.opts.checkCovariance {
		for i, m := range []*matrix.Dense{R, Q, P} {
			if err := matrix.ValidateSymmetricWith(m, matrix.WithEpsilon(s.opts.tol)); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", opKalman, [...]string{"R", "Q", "P"}[i], err)
			}
		}
	}

	xNew, pNew, err := s.kalmanCycle(y, R, Q, P)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opKalman, err)
	}
	s.x = xNew

	return pNew, nil
}

func (s *Model) checkKalmanShapes(y, R, Q, P matrix.Matrix) error {
	n, _, p := s.Dims()
	for _, c := range []struct {
		name       string
		m          matrix.Matrix
		rows, cols int
	}{
		{"y", y, p, 1},
		{"R", R, p, p},
		{"Q", Q, n, n},
		{"P", P, n, n},
	} {
		if c.m.Rows() != c.rows || c.m.Cols() != c.cols {
			return fmt.Errorf("%s is %dx%d, want %dx%d: %w",
				c.name, c.m.Rows(), c.m.Cols(), c.rows, c.cols, matrix.ErrDimensionMismatch)
		}
	}

	return nil
}

// gain computes the propagated covariance P⁻ = A·P·Aᵀ + Q and the Kalman
// gain K = P⁻·Cᵀ·(C·P⁻·Cᵀ + R)⁻¹.
func (s *Model) gain(R, Q, P matrix.Matrix) (K, pPrior matrix.Matrix, err error) {
	apa, err := matrix.MulChain(s.a, P, s.at)
	if err != nil {
		return nil, nil, err
	}
	if pPrior, err = matrix.Add(apa, Q); err != nil {
		return nil, nil, err
	}
	pct, err := matrix.Mul(pPrior, s.ct)
	if err != nil {
		return nil, nil, err
	}
	cpc, err := matrix.MulChain(s.c, pPrior, s.ct)
	if err != nil {
		return nil, nil, err
	}
	innovCov, err := matrix.Add(cpc, R)
	if err != nil {
		return nil, nil, err
	}
	innovInv, err := matrix.Inverse(innovCov)
	if err != nil {
		return nil, nil, fmt.Errorf("innovation covariance: %w", err)
	}
	if K, err = matrix.Mul(pct, innovInv); err != nil {
		return nil, nil, err
	}

	return K, pPrior, nil
}

// kalmanCycle computes (x⁺, P⁺) without mutating the model.
func (s *Model) kalmanCycle(y, R, Q, P matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	// 1–2. Propagate covariance, compute gain.
	K, pPrior, err := s.gain(R, Q, P)
	if err != nil {
		return nil, nil, err
	}

	// 3. Innovation.
	cx, err := matrix.Mul(s.c, s.x)
	if err != nil {
		return nil, nil, err
	}
	e, err := matrix.Sub(y, cx)
	if err != nil {
		return nil, nil, err
	}

	// 4. State correction.
	ke, err := matrix.Mul(K, e)
	if err != nil {
		return nil, nil, err
	}
	xNew, err := matrix.Add(s.x, ke)
	if err != nil {
		return nil, nil, err
	}

	// 5. Covariance correction.
	I, err := matrix.IdentityLike(s.a)
	if err != nil {
		return nil, nil, err
	}
	kc, err := matrix.Mul(K, s.c)
	if err != nil {
		return nil, nil, err
	}
	ikc, err := matrix.Sub(I, kc)
	if err != nil {
		return nil, nil, err
	}
	pPost, err := matrix.Mul(ikc, pPrior)
	if err != nil {
		return nil, nil, err
	}
	pSym, err := matrix.Symmetrize(pPost)
	if err != nil {
		return nil, nil, err
	}

	xd, err := matrix.AsDense(xNew)
	if err != nil {
		return nil, nil, err
	}
	pd, err := matrix.AsDense(pSym)
	if err != nil {
		return nil, nil, err
	}

	return xd, pd, nil
}

// Gain returns the Kalman gain for prior covariance P and noise R, Q without
// touching the state.
//
// Errors: as UpdateWithKalman.
func (s *Model) Gain(R, Q, P [][]float64) (*matrix.Dense, error) {
	names := [...]string{"R", "Q", "P"}
	var ms [3]*matrix.Dense
	var err error
	for i, rows := range [][][]float64{R, Q, P} {
		if ms[i], err = matrix.NewDenseFrom(rows); err != nil {
			return nil, fmt.Errorf("Model.Gain: %s: %w", names[i], err)
		}
	}
	_, _, p := s.Dims()
	yShape, err := matrix.NewDense(p, 1)
	if err != nil {
		return nil, fmt.Errorf("Model.Gain: %w", err)
	}
	if err = s.checkKalmanShapes(yShape, ms[0], ms[1], ms[2]); err != nil {
		return nil, fmt.Errorf("Model.Gain: %w", err)
	}
	K, _, err := s.gain(ms[0], ms[1], ms[2])
	if err != nil {
		return nil, fmt.Errorf("Model.Gain: %w", err)
	}

	return matrix.AsDense(K)
}
