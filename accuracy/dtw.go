// SPDX-License-Identifier: MIT

package accuracy

import (
	"math"
)

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Implementation:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+pen, D[i][j-1]+pen, D[i-1][j-1])
//
// Cells outside the band |i-j| <= Window stay +Inf, so a band narrower than
// the length difference yields +Inf without error. When ReturnPath is set the
// path is rebuilt from (n-1, m-1) back to (0, 0), preferring the diagonal on
// ties.
//
// A nil opts means DefaultOptions().
//
// Errors: ErrEmptySequence, ErrBadWindow, ErrBadPenalty, ErrPathNeedsMatrix.
//
// Complexity: O(n·m) time; memory O(n·m) (FullMatrix) or O(m) (TwoRows).
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(a, b, o); err != nil {
		return 0, nil, err
	}

	n, m := len(a), len(b)
	window := o.Window
	if window < 0 {
		window = max(n, m)
	}
	inf := math.Inf(1)

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				curr[j] = inf
				continue
			}
			best := min(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}

	distance := row(n)[m]
	if !o.ReturnPath || math.IsInf(distance, 1) {
		return distance, nil, nil
	}

	return distance, backtrack(dp, n, m, o.SlopePenalty), nil
}

// validate applies the error priority: empty input, then option checks.
func validate(a, b []float64, o Options) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptySequence
	}
	if o.Window < -1 {
		return ErrBadWindow
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) || math.IsInf(o.SlopePenalty, 0) {
		return ErrBadPenalty
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}

// backtrack walks the full DP table from (n, m) to (1, 1) and returns the
// zero-based path in forward order.
func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			diag := dp[i-1][j-1]
			up := dp[i-1][j] + penalty
			left := dp[i][j-1] + penalty
			switch {
			case diag <= up && diag <= left:
				i, j = i-1, j-1
			case up <= left:
				i--
			default:
				j--
			}
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
