// Package matrix_test provides benchmarks for Dense structural operations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algokit/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

func mustFloat(b *testing.B, n int) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.FromProducer(n, n, matrix.Count(0.0))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFloat(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = m.Transpose()
			}
		})
	}
}

func BenchmarkSwapCols(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFloat(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.SwapCols(0, n-1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkColumnView(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFloat(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.Col(i % n)
				if err != nil {
					b.Fatal(err)
				}
				for x, ok := v.Next(); ok; x, ok = v.Next() {
					sinkF += x
				}
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFloat(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = matrix.Sum(m)
			}
		})
	}
}
