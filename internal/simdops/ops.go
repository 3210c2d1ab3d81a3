// Package simdops provides the weighted-sum kernels used by the Bézier
// evaluators for float32 and float64.
//
// Two tables exist per type: one delegating to github.com/tphakala/simd and
// one written in plain Go. Both accumulate left to right over equal-length
// slices; the SIMD table may reorder partial sums, so results can differ in
// the last few ULPs.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops bundles the reduction kernels for type F.
type Ops[F Float] struct {
	// DotProductUnsafe computes Σ a[i]*b[i] without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Mul computes dst[i] = a[i] * b[i].
	Mul func(dst, a, b []F)
}

var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Sum:              f32.Sum,
		Mul:              f32.Mul,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Sum:              f64.Sum,
		Mul:              f64.Mul,
	}

	scalar32 = Ops[float32]{
		DotProductUnsafe: dot[float32],
		Sum:              sum[float32],
		Mul:              mul[float32],
	}
	scalar64 = Ops[float64]{
		DotProductUnsafe: dot[float64],
		Sum:              sum[float64],
		Mul:              mul[float64],
	}
)

// For returns the SIMD-backed Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Scalar returns the pure Go Ops instance for type F.
func Scalar[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&scalar32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&scalar64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Select returns For[F]() when simd is true, Scalar[F]() otherwise.
func Select[F Float](simd bool) *Ops[F] {
	if simd {
		return For[F]()
	}
	return Scalar[F]()
}

func dot[F Float](a, b []F) F {
	var s F
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func sum[F Float](a []F) F {
	var s F
	for _, v := range a {
		s += v
	}
	return s
}

func mul[F Float](dst, a, b []F) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}
