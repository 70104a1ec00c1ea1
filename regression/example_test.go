// SPDX-License-Identifier: MIT
package regression_test

import (
	"fmt"

	"github.com/katalvlaran/lvforecast/regression"
)

// ExampleForecast fits an AR(2) model with intercept and forecasts three steps.
func ExampleForecast() {
	data := []float64{10, 12, 15, 13, 18, 20, 22, 25}
	out, err := regression.Forecast(data, 3, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: [27.316199962413137 30.328439375339528 33.16705128188415]
}

// ExampleVAR fits a bivariate VAR(2) and reports the shape of the forecast.
func ExampleVAR() {
	data := [][]float64{
		{1.0, 2.0}, {1.5, 2.5}, {1.3, 2.7}, {1.8, 3.1}, {2.0, 3.0},
		{2.2, 3.4}, {2.5, 3.7}, {2.3, 3.5}, {2.8, 4.0}, {3.0, 4.2},
	}
	v, _ := regression.NewVAR(2, 2)
	if err := v.Fit(data); err != nil {
		fmt.Println(err)
		return
	}
	out, _ := v.Predict(data, 3)
	fmt.Println(len(v.Coefficients()), len(out), len(out[0]))
	fmt.Printf("%.4f %.4f\n", out[0][0], out[0][1])
	// Output:
	// 2 3 2
	// 3.2027 4.4647
}
