package accuracy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvforecast/accuracy"
)

func benchmarkDTW(b *testing.B, n int, opts accuracy.Options) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(float64(i) / 10)
		y[i] = math.Sin(float64(i+3) / 10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := accuracy.DTW(x, y, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

func BenchmarkDTW_FullMatrix(b *testing.B) {
	opts := accuracy.DefaultOptions()
	opts.MemoryMode = accuracy.FullMatrix
	opts.ReturnPath = true
	benchmarkDTW(b, 300, opts)
}

func BenchmarkDTW_TwoRows(b *testing.B) {
	benchmarkDTW(b, 300, accuracy.DefaultOptions())
}

func BenchmarkDTW_Window(b *testing.B) {
	opts := accuracy.DefaultOptions()
	opts.Window = 10
	benchmarkDTW(b, 300, opts)
}
