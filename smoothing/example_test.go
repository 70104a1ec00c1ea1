// SPDX-License-Identifier: MIT
package smoothing_test

import (
	"fmt"

	"github.com/katalvlaran/lvforecast/smoothing"
)

// ExampleMovingAverage computes a three-point rolling mean.
func ExampleMovingAverage() {
	fmt.Println(smoothing.MovingAverage([]float64{1, 2, 3, 4, 5}, 3))
	// Output: [2 3 4]
}

// ExampleTriple seeds Holt–Winters from two seasons and forecasts one season.
func ExampleTriple() {
	m, _ := smoothing.NewTriple(0.5, 0.3, 0.2, 4)
	_ = m.Initialize([]float64{10, 20, 15, 25, 12, 22, 18, 28})
	f, _ := m.Forecast(4)
	fmt.Println(f)
	// Output: [10.625 21.25 16.875 27.5]
}
