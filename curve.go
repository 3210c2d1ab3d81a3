package bezier

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-bezier/internal/simdops"
)

// BezierCurve is a polynomial Bézier curve of degree len(points)-1.
// It is immutable and safe for concurrent use.
type BezierCurve[F Float] struct {
	points []Point[F]
	coords coords[F]
	basis  bernstein[F]
	ops    *simdops.Ops[F]
	pool   scratchPool[F]
}

// NewCurve creates a curve from its control points. The points are copied.
// A nil cfg selects DefaultConfig.
func NewCurve[F Float](points []Point[F], cfg *Config) (*BezierCurve[F], error) {
	if len(points) == 0 {
		return nil, ErrEmptyControlPoints
	}

	c, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	b, err := newBernstein[F](&c, len(points)-1)
	if err != nil {
		return nil, fmt.Errorf("failed to build curve basis: %w", err)
	}

	pts := slices.Clone(points)
	return &BezierCurve[F]{
		points: pts,
		coords: newCoords(pts),
		basis:  b,
		ops:    simdops.Select[F](c.EnableSIMD),
	}, nil
}

// At returns Σ B(N,i)(u) * P[i].
//
// For u < 0 it returns the first control point and for u > 1 the last one,
// without evaluating. A curve not created by NewCurve returns NaNPoint.
func (c *BezierCurve[F]) At(u F) Point[F] {
	if c == nil || len(c.points) == 0 {
		return NaNPoint[F]()
	}
	if u < paramMin {
		return c.points[0]
	}
	if u > paramMax {
		return c.points[len(c.points)-1]
	}

	s := c.pool.get()
	defer c.pool.put(s)

	return c.coords.reduce(c.ops, c.basis.eval(&s.u, u))
}

// Degree returns the curve degree.
func (c *BezierCurve[F]) Degree() int {
	return c.basis.degree()
}

// ControlPoints returns a copy of the control points.
func (c *BezierCurve[F]) ControlPoints() []Point[F] {
	return slices.Clone(c.points)
}
