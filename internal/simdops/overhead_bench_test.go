package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

// Bernstein rows are short; 8 matches a degree-7 curve.
const benchRowLen = 8

func benchRows() (a, c []float64) {
	a = make([]float64, benchRowLen)
	c = make([]float64, benchRowLen)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}
	return a, c
}

// BenchmarkDirectF64DotProduct measures direct SIMD call overhead.
func BenchmarkDirectF64DotProduct(b *testing.B) {
	a, c := benchRows()

	b.ReportAllocs()
	for b.Loop() {
		_ = f64.DotProductUnsafe(a, c)
	}
}

// BenchmarkIndirectF64DotProduct measures indirect call through Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := For[float64]()
	a, c := benchRows()

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}

// BenchmarkScalarF64DotProduct measures the pure Go kernel.
func BenchmarkScalarF64DotProduct(b *testing.B) {
	ops := Scalar[float64]()
	a, c := benchRows()

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}
