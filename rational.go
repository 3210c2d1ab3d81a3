package bezier

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-bezier/internal/simdops"
)

// RationalCurve is a rational Bézier curve with one weight per control
// point. It is immutable and safe for concurrent use.
type RationalCurve[F Float] struct {
	points  []Point[F]
	weights []F
	coords  coords[F]
	basis   bernstein[F]
	ops     *simdops.Ops[F]
	pool    scratchPool[F]
}

// NewRationalCurve creates a rational curve. points and weights must have
// the same length; both are copied. A nil cfg selects DefaultConfig.
func NewRationalCurve[F Float](points []Point[F], weights []F, cfg *Config) (*RationalCurve[F], error) {
	if len(points) == 0 {
		return nil, ErrEmptyControlPoints
	}
	if len(points) != len(weights) {
		return nil, fmt.Errorf("%w: %d control points, %d weights",
			ErrDimensionMismatch, len(points), len(weights))
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
	return &RationalCurve[F]{
		points:  pts,
		weights: slices.Clone(weights),
		coords:  newCoords(pts),
		basis:   b,
		ops:     simdops.Select[F](c.EnableSIMD),
	}, nil
}

// At returns Σ w[i] B(N,i)(u) P[i] / Σ w[i] B(N,i)(u).
//
// Clamping matches BezierCurve.At. When the weighted basis sums to zero the
// result has NaN or Inf coordinates.
func (c *RationalCurve[F]) At(u F) Point[F] {
	if c == nil || len(c.points) == 0 || len(c.points) != len(c.weights) {
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

	b := c.basis.eval(&s.u, u)
	s.weighted = resize(s.weighted, len(b))
	c.ops.Mul(s.weighted, b, c.weights)

	denom := c.ops.Sum(s.weighted)
	return c.coords.reduce(c.ops, s.weighted).Div(denom)
}

// Degree returns the curve degree.
func (c *RationalCurve[F]) Degree() int {
	return c.basis.degree()
}

// ControlPoints returns a copy of the control points.
func (c *RationalCurve[F]) ControlPoints() []Point[F] {
	return slices.Clone(c.points)
}

// Weights returns a copy of the weights.
func (c *RationalCurve[F]) Weights() []F {
	return slices.Clone(c.weights)
}
