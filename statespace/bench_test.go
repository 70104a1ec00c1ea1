// SPDX-License-Identifier: MIT
package statespace_test

import (
	"testing"

	"github.com/katalvlaran/lvforecast/statespace"
)

func BenchmarkFilter_Step(b *testing.B) {
	m, err := statespace.New(fixA, fixB, fixC, fixD, fixX0)
	if err != nil {
		b.Fatal(err)
	}
	f, err := statespace.NewFilter(m, fixR, fixQ, fixP)
	if err != nil {
		b.Fatal(err)
	}
	u := [][]float64{{0}}
	y := [][]float64{{1}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err = f.Step(u, y); err != nil {
			b.Fatal(err)
		}
	}
}
