// SPDX-License-Identifier: MIT
// Package: statespace
//
// Purpose:
//   - Recursive filtering with the error covariance carried between steps.

package statespace

import (
	"fmt"

	"github.com/katalvlaran/lvforecast/matrix"
)

const opFilter = "Filter.Step"

// Filter runs predict/correct cycles on a Model and keeps the posterior
// covariance for the next step.
type Filter struct {
	model *Model
	r, q  *matrix.Dense
	p     *matrix.Dense
	steps int
}

// NewFilter wraps model with fixed noise covariances R (p×p) and Q (n×n) and
// the initial covariance P0 (n×n). The model is used, not copied: the filter
// advances its state.
//
// Errors: ErrNilModel; matrix errors from parsing; matrix.ErrDimensionMismatch.
func NewFilter(model *Model, R, Q, P0 [][]float64) (*Filter, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	f := &Filter{model: model}
	var err error
	if f.r, err = matrix.NewDenseFrom(R); err != nil {
		return nil, fmt.Errorf("NewFilter: R: %w", err)
	}
	if f.q, err = matrix.NewDenseFrom(Q); err != nil {
		return nil, fmt.Errorf("NewFilter: Q: %w", err)
	}
	if f.p, err = matrix.NewDenseFrom(P0); err != nil {
		return nil, fmt.Errorf("NewFilter: P0: %w", err)
	}
	_, _, p := model.Dims()
	yShape, err := matrix.NewDense(p, 1)
	if err != nil {
		return nil, fmt.Errorf("NewFilter: %w", err)
	}
	if err = model.checkKalmanShapes(yShape, f.r, f.q, f.p); err != nil {
		return nil, fmt.Errorf("NewFilter: %w", err)
	}

	return f, nil
}

// Step predicts with control u, then corrects with observation y, storing
// the posterior covariance. It returns a copy of the corrected state.
// On error neither the state nor the covariance changes.
func (f *Filter) Step(u, y [][]float64) (*matrix.Dense, error) {
	uM, err := matrix.NewDenseFrom(u)
	if err != nil {
		return nil, fmt.Errorf("%s: u: %w", opFilter, err)
	}
	yM, err := matrix.NewDenseFrom(y)
	if err != nil {
		return nil, fmt.Errorf("%s: y: %w", opFilter, err)
	}

	prev := f.model.x
	next, err := f.model.transition(uM)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFilter, err)
	}
	f.model.x = next
	pNew, err := f.model.correct(yM, f.r, f.q, f.p)
	if err != nil {
		f.model.x = prev
		return nil, fmt.Errorf("%s: %w", opFilter, err)
	}
	f.p = pNew
	f.steps++

	return f.model.State(), nil
}

// Run feeds paired controls and observations through Step and returns the
// state after each step.
//
// Errors: matrix.ErrDimensionMismatch when the sequences differ in length;
// the first Step error, with the states accumulated so far discarded.
func (f *Filter) Run(us, ys [][][]float64) ([]*matrix.Dense, error) {
	if len(us) != len(ys) {
		return nil, fmt.Errorf("Filter.Run: %d controls, %d observations: %w",
			len(us), len(ys), matrix.ErrDimensionMismatch)
	}
	out := make([]*matrix.Dense, 0, len(us))
	for i := range us {
		x, err := f.Step(us[i], ys[i])
		if err != nil {
			return nil, fmt.Errorf("Filter.Run: step %d: %w", i, err)
		}
		out = append(out, x)
	}

	return out, nil
}

// Covariance returns a copy of the current error covariance.
func (f *Filter) Covariance() *matrix.Dense {
	p, _ := matrix.AsDense(f.p.Clone())

	return p
}

// State returns a copy of the model state.
func (f *Filter) State() *matrix.Dense { return f.model.State() }

// Steps returns the number of completed steps.
func (f *Filter) Steps() int { return f.steps }

// Model returns the underlying model.
func (f *Filter) Model() *Model { return f.model }
