// SPDX-License-Identifier: MIT
// Package: regression
//
// Purpose:
//   - Vector autoregression VAR(p) over k variables:
//     y_t = A_1·y_{t-1} + … + A_p·y_{t-p}, each A_i k×k, no intercept.
//
// Layout:
//   - Design row for time t is y_{t-1} ++ y_{t-2} ++ … ++ y_{t-p} (width p·k).
//   - OLS yields β (p·k × k). The coefficient matrix is βᵀ (k × p·k); A_i is
//     the column block [i·k, (i+1)·k) of βᵀ, so A_i[r][c] weights variable c
//     at lag i+1 in equation r.

package regression

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvforecast/matrix"
)

const (
	opVARPrepare = "VAR.PrepareData"
	opVARFit     = "VAR.Fit"
	opVARPredict = "VAR.Predict"
)

// VAR is a vector autoregression of order p over k variables.
type VAR struct {
	p, k      int
	coef      []*matrix.Dense // p matrices, k×k; nil until Fit
	residuals *matrix.Dense   // (T-p)×k in-sample residuals of the last fit
}

// NewVAR returns an unfitted VAR(p) over k variables.
// Errors: ErrBadLag when p < 1, ErrBadDimension when k < 1.
func NewVAR(p, k int) (*VAR, error) {
	if p < 1 {
		return nil, fmt.Errorf("NewVAR(p=%d): %w", p, ErrBadLag)
	}
	if k < 1 {
		return nil, fmt.Errorf("NewVAR(k=%d): %w", k, ErrBadDimension)
	}

	return &VAR{p: p, k: k}, nil
}

// Order returns p.
func (v *VAR) Order() int { return v.p }

// Vars returns k.
func (v *VAR) Vars() int { return v.k }

// checkRows validates that every observation has exactly k values.
func (v *VAR) checkRows(data [][]float64) error {
	for t, row := range data {
		if len(row) != v.k {
			return fmt.Errorf("observation %d has %d values, want %d: %w",
				t, len(row), v.k, matrix.ErrDimensionMismatch)
		}
	}

	return nil
}

// PrepareData builds the targets Y ((T-p)×k) and lagged design X ((T-p)×p·k).
//
// Errors:
//   - ErrDataTooShort when T <= p.
//   - matrix.ErrDimensionMismatch for an observation of the wrong width.
func (v *VAR) PrepareData(data [][]float64) (Y, X *matrix.Dense, err error) {
	T := len(data)
	if T <= v.p {
		return nil, nil, fmt.Errorf("%s: %d observations for p=%d: %w", opVARPrepare, T, v.p, ErrDataTooShort)
	}
	if err = v.checkRows(data); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opVARPrepare, err)
	}

	rows := T - v.p
	yRows := make([][]float64, 0, rows)
	xRows := make([][]float64, 0, rows)
	for t := v.p; t < T; t++ {
		yRows = append(yRows, data[t])
		row := make([]float64, 0, v.p*v.k)
		for i := 1; i <= v.p; i++ {
			row = append(row, data[t-i]...)
		}
		xRows = append(xRows, row)
	}

	if Y, err = matrix.NewDenseFrom(yRows); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opVARPrepare, err)
	}
	if X, err = matrix.NewDenseFrom(xRows); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opVARPrepare, err)
	}

	return Y, X, nil
}

// Fit estimates A_1..A_p by OLS, replacing any previous fit.
// On error the previous fit (if any) is kept.
//
// Errors: those of PrepareData and OLS (ErrDataTooShort, matrix.ErrSingular).
func (v *VAR) Fit(data [][]float64) error {
	Y, X, err := v.PrepareData(data)
	if err != nil {
		return fmt.Errorf("%s: %w", opVARFit, err)
	}
	beta, err := OLS(X, Y)
	if err != nil {
		return fmt.Errorf("%s: %w", opVARFit, err)
	}
	bt, err := matrix.Transpose(beta)
	if err != nil {
		return fmt.Errorf("%s: %w", opVARFit, err)
	}
	full, err := matrix.AsDense(bt)
	if err != nil {
		return fmt.Errorf("%s: %w", opVARFit, err)
	}

	coef := make([]*matrix.Dense, v.p)
	for i := 0; i < v.p; i++ {
		if coef[i], err = full.SubMatrix(0, i*v.k, v.k, v.k); err != nil {
			return fmt.Errorf("%s: lag %d: %w", opVARFit, i+1, err)
		}
	}
	res, err := Residuals(X, Y, beta)
	if err != nil {
		return fmt.Errorf("%s: %w", opVARFit, err)
	}

	v.coef = coef
	v.residuals = res

	return nil
}

// Predict forecasts steps observations past the end of data.
//
// The window starts as the last p observations. Each step computes
// next[r] = Σ_i Σ_c A_i[r][c]·window[p-1-i][c], appends it and drops the
// oldest row; later steps consume earlier predictions.
//
// Errors: ErrNotFitted, ErrBadHorizon, ErrDataTooShort (T < p),
// matrix.ErrDimensionMismatch for rows of the wrong width.
func (v *VAR) Predict(data [][]float64, steps int) ([][]float64, error) {
	if v.coef == nil {
		return nil, fmt.Errorf("%s: %w", opVARPredict, ErrNotFitted)
	}
	if steps < 0 {
		return nil, fmt.Errorf("%s: steps %d: %w", opVARPredict, steps, ErrBadHorizon)
	}
	if len(data) < v.p {
		return nil, fmt.Errorf("%s: %d observations for p=%d: %w", opVARPredict, len(data), v.p, ErrDataTooShort)
	}
	tail := data[len(data)-v.p:]
	if err := v.checkRows(tail); err != nil {
		return nil, fmt.Errorf("%s: %w", opVARPredict, err)
	}

	A := make([][][]float64, v.p)
	for i, c := range v.coef {
		A[i] = c.ToRows()
	}
	window := make([][]float64, v.p)
	for i, row := range tail {
		window[i] = append([]float64(nil), row...)
	}

	out := make([][]float64, 0, steps)
	for step := 0; step < steps; step++ {
		next := v.predictNext(A, window)
		out = append(out, next)
		window = append(window[1:], append([]float64(nil), next...))
	}

	return out, nil
}

// predictNext evaluates one VAR step over a window of exactly p rows,
// oldest first.
func (v *VAR) predictNext(A [][][]float64, window [][]float64) []float64 {
	next := make([]float64, v.k)
	var i, r, c int
	for i = 0; i < v.p; i++ {
		lagged := window[v.p-1-i]
		for r = 0; r < v.k; r++ {
			for c = 0; c < v.k; c++ {
				next[r] += float64(A[i][r][c] * lagged[c])
			}
		}
	}

	return next
}

// Coefficients returns copies of A_1..A_p, or nil before Fit.
func (v *VAR) Coefficients() []*matrix.Dense {
	if v.coef == nil {
		return nil
	}
	out := make([]*matrix.Dense, len(v.coef))
	for i, c := range v.coef {
		cp, _ := matrix.AsDense(c.Clone())
		out[i] = cp
	}

	return out
}

// ResidualCovariance returns the k×k sample covariance of the in-sample
// residuals of the last fit.
//
// Errors: ErrNotFitted; matrix.ErrDimensionMismatch with fewer than two
// residual rows.
func (v *VAR) ResidualCovariance() (*matrix.Dense, error) {
	if v.residuals == nil {
		return nil, ErrNotFitted
	}
	cov, _, err := matrix.Covariance(v.residuals)
	if err != nil {
		return nil, fmt.Errorf("VAR.ResidualCovariance: %w", err)
	}

	return matrix.AsDense(cov)
}

// String dumps the order, dimension and every lag matrix.
func (v *VAR) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "VAR(p=%d, k=%d)", v.p, v.k)
	if v.coef == nil {
		b.WriteString(" unfitted")
		return b.String()
	}
	for i, c := range v.coef {
		fmt.Fprintf(&b, "\nA%d:\n%s", i+1, c.String())
	}

	return b.String()
}
