// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvforecast/matrix"
)

// ExampleInverse inverts a 2×2 matrix by Gauss–Jordan elimination.
func ExampleInverse() {
	m, _ := matrix.NewDenseFrom([][]float64{{2, 3}, {2, 5}})
	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(inv)
	// Output:
	// 1.25	-0.75
	// -0.5	0.5
}

// ExampleInverse_singular shows the sentinel returned for a zero pivot.
func ExampleInverse_singular() {
	m, _ := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 1}})
	_, err := matrix.Inverse(m)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output: true
}

// ExampleMul multiplies a design matrix by a coefficient column.
func ExampleMul() {
	X, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {1, 3}, {1, 4}})
	beta, _ := matrix.NewColumn([]float64{0.5, 2})
	y, _ := matrix.Mul(X, beta)
	fmt.Println(y)
	// Output:
	// 4.5
	// 6.5
	// 8.5
}

// ExampleTranspose shows the shape swap.
func ExampleTranspose() {
	m, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}})
	tr, _ := matrix.Transpose(m)
	fmt.Println(tr.Rows(), tr.Cols())
	// Output: 3 1
}
