// SPDX-License-Identifier: MIT
package statespace_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvforecast/statespace"
)

// ExampleModel_Predict advances a position/velocity model by one step.
func ExampleModel_Predict() {
	m, _ := statespace.New(
		[][]float64{{1, 0.1}, {0, 1}},
		[][]float64{{0}, {0.1}},
		[][]float64{{1, 0}},
		[][]float64{{0}},
		[][]float64{{0}, {0}},
	)
	x, _ := m.Predict([][]float64{{1}})
	fmt.Println(x)
	// Output:
	// 0
	// 0.1
}

// ExampleModel_UpdateWithKalmanCov corrects the state with one observation
// and keeps the posterior covariance for the next call.
func ExampleModel_UpdateWithKalmanCov() {
	m, _ := statespace.New(
		[][]float64{{1, 0.1}, {0, 1}},
		[][]float64{{0}, {0.1}},
		[][]float64{{1, 0}},
		[][]float64{{0}},
		[][]float64{{0}, {0}},
	)
	P, err := m.UpdateWithKalmanCov(
		[][]float64{{1.2}},
		[][]float64{{0.1}},
		[][]float64{{0.01, 0}, {0, 0.01}},
		[][]float64{{1, 0}, {0, 1}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	x := m.State()
	x0, _ := x.At(0, 0)
	p00, _ := P.At(0, 0)
	fmt.Printf("x0=%.4f P00=%.4f\n", x0, p00)
	// Output: x0=1.0929 P00=0.0911
}

// ExampleModel_Update shows the unimplemented generic hook.
func ExampleModel_Update() {
	m, _ := statespace.New([][]float64{{1}}, [][]float64{{1}}, [][]float64{{1}}, [][]float64{{0}}, [][]float64{{0}})
	err := m.Update([][]float64{{1}}, [][]float64{{0}})
	fmt.Println(errors.Is(err, statespace.ErrNotImplemented))
	// Output: true
}
