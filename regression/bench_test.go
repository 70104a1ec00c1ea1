// SPDX-License-Identifier: MIT
package regression_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvforecast/regression"
)

func benchSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i)
		out[i] = 10 + 0.3*x + 2*math.Sin(x/5) + 0.5*math.Cos(x*1.7)
	}

	return out
}

func BenchmarkLinearRegression_Fit(b *testing.B) {
	data := benchSeries(500)
	lr, _ := regression.NewLinearRegression(4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := lr.Fit(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVAR_Fit(b *testing.B) {
	s := benchSeries(300)
	data := make([][]float64, len(s)-1)
	for i := range data {
		data[i] = []float64{s[i], 3 * math.Cos(float64(i)/7)}
	}
	v, _ := regression.NewVAR(3, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := v.Fit(data); err != nil {
			b.Fatal(err)
		}
	}
}
