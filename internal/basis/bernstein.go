// Package basis evaluates Bernstein polynomial bases.
package basis

import "github.com/tphakala/go-bezier/internal/simdops"

// Powers fills dst with u^0..u^(len(dst)-1), built incrementally.
func Powers[F simdops.Float](dst []F, u F) []F {
	p := F(1)
	for i := range dst {
		dst[i] = p
		p *= u
	}
	return dst
}

// ComplementPowers fills dst in reversed order so that dst[k] = (1-u)^(N-k),
// where N = len(dst)-1.
func ComplementPowers[F simdops.Float](dst []F, u F) []F {
	n := len(dst) - 1
	w := 1 - u
	p := F(1)
	for i := 0; i <= n; i++ {
		dst[n-i] = p
		p *= w
	}
	return dst
}

// Workspace holds scratch buffers for repeated Bernstein evaluation.
// A Workspace is not safe for concurrent use.
type Workspace[F simdops.Float] struct {
	pow, comp, out []F
}

// Evaluate computes the Bernstein basis of degree N = len(coeffs)-1 at u:
//
//	basis[i] = C(N, i) * u^i * (1-u)^(N-i)
//
// coeffs is the binomial row for N and u is expected to be in [0, 1]
// already. The returned slice is owned by w and overwritten by the next call.
func (w *Workspace[F]) Evaluate(coeffs []F, u F) []F {
	n := len(coeffs)
	w.pow = Powers(grow(w.pow, n), u)
	w.comp = ComplementPowers(grow(w.comp, n), u)
	w.out = grow(w.out, n)
	for i := range w.out {
		w.out[i] = coeffs[i] * w.pow[i] * w.comp[i]
	}
	return w.out
}

func grow[F simdops.Float](s []F, n int) []F {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]F, n)
}
