// Package matrix_test provides benchmarks for the product kernel,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cellfix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkR [][]float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 1337)
			B := randDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul_Fallback(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := hide{randDense(b, n, n, 1)}
			B := hide{randDense(b, n, n, 2)}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 7).ToRows()
			B := randDense(b, n, n, 8).ToRows()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.MultiplyRows(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
	}
}
