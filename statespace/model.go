// SPDX-License-Identifier: MIT
// Package: statespace
//
// Purpose:
//   - Model construction, state transition and observation.

package statespace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvforecast/matrix"
)

const (
	opNew     = "statespace.New"
	opPredict = "Model.Predict"
	opObserve = "Model.Observe"
)

// Model is a linear state-space system with a point state estimate.
type Model struct {
	a, b, c, d *matrix.Dense // fixed for the model lifetime
	at, ct     *matrix.Dense // cached transposes of a and c
	x          *matrix.Dense // current state, n×1; replaced on every update
	opts       Options
}

// New builds a Model from raw row-major data. All inputs are copied.
//
// Errors: see NewFromMatrices; plus matrix.ErrInvalidDimensions,
// matrix.ErrDimensionMismatch (ragged rows) and matrix.ErrNaNInf from parsing.
func New(A, B, C, D, x0 [][]float64, opts ...Option) (*Model, error) {
	names := [...]string{"A", "B", "C", "D", "x0"}
	var ms [5]*matrix.Dense
	var err error
	for i, rows := range [][][]float64{A, B, C, D, x0} {
		if ms[i], err = matrix.NewDenseFrom(rows); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", opNew, names[i], err)
		}
	}

	return NewFromMatrices(ms[0], ms[1], ms[2], ms[3], ms[4], opts...)
}

// NewFromMatrices builds a Model from existing matrices. All inputs are copied.
//
// Shape contract: A n×n, B n×m, C p×n, D p×m, x0 n×1.
//
// Errors:
//   - matrix.ErrNilMatrix for any nil input.
//   - matrix.ErrNonSquare (also ErrDimensionMismatch) for a non-square A.
//   - matrix.ErrDimensionMismatch for any other shape violation.
func NewFromMatrices(A, B, C, D, x0 matrix.Matrix, opts ...Option) (*Model, error) {
	for _, m := range []matrix.Matrix{A, B, C, D, x0} {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("%s: %w", opNew, err)
		}
	}
	if err := matrix.ValidateSquare(A); err != nil {
		return nil, fmt.Errorf("%s: A: %w", opNew, err)
	}
	n := A.Rows()
	switch {
	case B.Rows() != n:
		return nil, shapeErr("B", B, "n", n)
	case C.Cols() != n:
		return nil, shapeErr("C", C, "n", n)
	case D.Rows() != C.Rows() || D.Cols() != B.Cols():
		return nil, fmt.Errorf("%s: D is %dx%d, want %dx%d: %w",
			opNew, D.Rows(), D.Cols(), C.Rows(), B.Cols(), matrix.ErrDimensionMismatch)
	case x0.Rows() != n || x0.Cols() != 1:
		return nil, fmt.Errorf("%s: x0 is %dx%d, want %dx1: %w",
			opNew, x0.Rows(), x0.Cols(), n, matrix.ErrDimensionMismatch)
	}

	m := &Model{opts: gatherOptions(opts...)}
	var err error
	for _, dst := range []struct {
		to  **matrix.Dense
		src matrix.Matrix
	}{{&m.a, A}, {&m.b, B}, {&m.c, C}, {&m.d, D}, {&m.x, x0}} {
		if *dst.to, err = matrix.AsDense(dst.src.Clone()); err != nil {
			return nil, fmt.Errorf("%s: %w", opNew, err)
		}
	}
	if m.at, err = transposeDense(m.a); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if m.ct, err = transposeDense(m.c); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return m, nil
}

func shapeErr(name string, m matrix.Matrix, dim string, n int) error {
	return fmt.Errorf("%s: %s is %dx%d, incompatible with %s=%d: %w",
		opNew, name, m.Rows(), m.Cols(), dim, n, matrix.ErrDimensionMismatch)
}

func transposeDense(m matrix.Matrix) (*matrix.Dense, error) {
	t, err := matrix.Transpose(m)
	if err != nil {
		return nil, err
	}

	return matrix.AsDense(t)
}

// Dims returns the state (n), input (m) and observation (p) dimensions.
func (s *Model) Dims() (n, m, p int) {
	return s.a.Rows(), s.b.Cols(), s.c.Rows()
}

// Predict advances the state: x ← A·x + B·u, and returns a copy of the new x.
// On error x is unchanged.
//
// Errors: matrix errors from parsing u; matrix.ErrDimensionMismatch when u is
// not m×1.
func (s *Model) Predict(u [][]float64) (*matrix.Dense, error) {
	uM, err := matrix.NewDenseFrom(u)
	if err != nil {
		return nil, fmt.Errorf("%s: u: %w", opPredict, err)
	}
	next, err := s.transition(uM)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPredict, err)
	}
	s.x = next

	return s.State(), nil
}

// transition computes A·x + B·u without touching s.x.
func (s *Model) transition(u matrix.Matrix) (*matrix.Dense, error) {
	if err := s.checkInput(u); err != nil {
		return nil, err
	}
	ax, err := matrix.Mul(s.a, s.x)
	if err != nil {
		return nil, err
	}
	bu, err := matrix.Mul(s.b, u)
	if err != nil {
		return nil, err
	}
	next, err := matrix.Add(ax, bu)
	if err != nil {
		return nil, err
	}

	return matrix.AsDense(next)
}

func (s *Model) checkInput(u matrix.Matrix) error {
	if u.Rows() != s.b.Cols() || u.Cols() != 1 {
		return fmt.Errorf("u is %dx%d, want %dx1: %w", u.Rows(), u.Cols(), s.b.Cols(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// Observe projects the current state into observation space: C·x + D·u.
// It never mutates the model; repeated calls return equal results.
//
// Errors: as Predict.
func (s *Model) Observe(u [][]float64) (*matrix.Dense, error) {
	uM, err := matrix.NewDenseFrom(u)
	if err != nil {
		return nil, fmt.Errorf("%s: u: %w", opObserve, err)
	}
	if err = s.checkInput(uM); err != nil {
		return nil, fmt.Errorf("%s: %w", opObserve, err)
	}
	cx, err := matrix.Mul(s.c, s.x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opObserve, err)
	}
	du, err := matrix.Mul(s.d, uM)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opObserve, err)
	}
	y, err := matrix.Add(cx, du)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opObserve, err)
	}

	return matrix.AsDense(y)
}

// Update is the generic correction hook. It is not implemented and always
// returns ErrNotImplemented without touching the state.
func (s *Model) Update(y, u [][]float64) error {
	return ErrNotImplemented
}

// State returns a copy of the current state estimate.
func (s *Model) State() *matrix.Dense {
	x, _ := matrix.AsDense(s.x.Clone())

	return x
}

// String dumps the system matrices and the current state.
func (s *Model) String() string {
	var b strings.Builder
	n, m, p := s.Dims()
	fmt.Fprintf(&b, "StateSpaceModel(n=%d, m=%d, p=%d)", n, m, p)
	for _, part := range []struct {
		name string
		m    *matrix.Dense
	}{{"A", s.a}, {"B", s.b}, {"C", s.c}, {"D", s.d}, {"x", s.x}} {
		fmt.Fprintf(&b, "\n%s:\n%s", part.name, part.m.String())
	}

	return b.String()
}
