package bezier

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/go-bezier/internal/basis"
	"github.com/tphakala/go-bezier/internal/binomial"
	"github.com/tphakala/go-bezier/internal/simdops"
)

// coords stores control points as separate coordinate columns so weighted
// sums map onto dot products.
type coords[F Float] struct {
	xs, ys, zs []F
}

func newCoords[F Float](points []Point[F]) coords[F] {
	c := coords[F]{
		xs: make([]F, len(points)),
		ys: make([]F, len(points)),
		zs: make([]F, len(points)),
	}
	for i, p := range points {
		c.xs[i] = p.X
		c.ys[i] = p.Y
		c.zs[i] = p.Z
	}
	return c
}

// slice returns the columns for points lo..hi-1.
func (c coords[F]) slice(lo, hi int) coords[F] {
	return coords[F]{xs: c.xs[lo:hi], ys: c.ys[lo:hi], zs: c.zs[lo:hi]}
}

// reduce computes Σ w[i] * point[i]. len(w) must equal the column length.
func (c coords[F]) reduce(ops *simdops.Ops[F], w []F) Point[F] {
	return Point[F]{
		X: ops.DotProductUnsafe(w, c.xs),
		Y: ops.DotProductUnsafe(w, c.ys),
		Z: ops.DotProductUnsafe(w, c.zs),
	}
}

// bernstein evaluates the basis of one fixed degree.
type bernstein[F Float] struct {
	coeffs []F
}

// newBernstein fetches the coefficient row for degree n from cfg's cache.
func newBernstein[F Float](cfg *Config, n int) (bernstein[F], error) {
	if err := cfg.checkDegree(n); err != nil {
		return bernstein[F]{}, err
	}

	row, err := binomial.Coefficients[F](cfg.Cache, n)
	if err != nil {
		if errors.Is(err, binomial.ErrDegreeOutOfRange) || errors.Is(err, binomial.ErrCoefficientOverflow) {
			return bernstein[F]{}, fmt.Errorf("%w: %w", ErrDegreeTooHigh, err)
		}
		return bernstein[F]{}, err
	}
	return bernstein[F]{coeffs: row}, nil
}

func (b bernstein[F]) degree() int {
	return len(b.coeffs) - 1
}

// eval returns the basis at u using w's buffers.
func (b bernstein[F]) eval(w *basis.Workspace[F], u F) []F {
	return w.Evaluate(b.coeffs, u)
}

// scratch holds per-evaluation buffers. Evaluators keep them in a
// sync.Pool so concurrent At calls never share buffers.
type scratch[F Float] struct {
	u, v     basis.Workspace[F]
	weighted []F
	inner    coords[F]
}

type scratchPool[F Float] struct {
	pool sync.Pool
}

func (p *scratchPool[F]) get() *scratch[F] {
	if s, ok := p.pool.Get().(*scratch[F]); ok {
		return s
	}
	return &scratch[F]{}
}

func (p *scratchPool[F]) put(s *scratch[F]) {
	p.pool.Put(s)
}

func resize[F Float](s []F, n int) []F {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]F, n)
}

func clamp01[F Float](v F) F {
	if v < paramMin {
		return paramMin
	}
	if v > paramMax {
		return paramMax
	}
	return v
}
