package bezier

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-bezier/internal/simdops"
)

// BezierSurface is a tensor-product Bézier surface over a rows×cols control
// grid. Row i holds the points for the i-th u basis function; column j the
// points for the j-th v basis function. It is immutable and safe for
// concurrent use.
type BezierSurface[F Float] struct {
	points     []Point[F]
	rows, cols int
	coords     coords[F]
	basisU     bernstein[F]
	basisV     bernstein[F]
	ops        *simdops.Ops[F]
	pool       scratchPool[F]
}

// NewSurface creates a surface from a row-major grid of rows*cols points.
// The points are copied. A nil cfg selects DefaultConfig.
func NewSurface[F Float](points []Point[F], rows, cols int, cfg *Config) (*BezierSurface[F], error) {
	if len(points) == 0 {
		return nil, ErrEmptyControlGrid
	}
	if rows < 1 || cols < 1 || rows*cols != len(points) {
		return nil, fmt.Errorf("%w: grid %dx%d does not hold %d points",
			ErrDimensionMismatch, rows, cols, len(points))
	}

	c, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	m, n := rows-1, cols-1
	if err := c.checkDegree(max(m, n)); err != nil {
		return nil, err
	}
	// One extension covers both directions.
	if err := c.Cache.EnsureFactorials(max(m, n)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegreeTooHigh, err)
	}

	bu, err := newBernstein[F](&c, m)
	if err != nil {
		return nil, fmt.Errorf("failed to build u basis: %w", err)
	}
	bv, err := newBernstein[F](&c, n)
	if err != nil {
		return nil, fmt.Errorf("failed to build v basis: %w", err)
	}

	pts := slices.Clone(points)
	return &BezierSurface[F]{
		points: pts,
		rows:   rows,
		cols:   cols,
		coords: newCoords(pts),
		basisU: bu,
		basisV: bv,
		ops:    simdops.Select[F](c.EnableSIMD),
	}, nil
}

// At returns Σi Bu(M,i)(u) Σj Bv(N,j)(v) P[i][j].
//
// u and v are clamped into [0, 1] before evaluation. A surface not created
// by NewSurface returns NaNPoint.
func (s *BezierSurface[F]) At(u, v F) Point[F] {
	if s == nil || len(s.points) == 0 {
		return NaNPoint[F]()
	}
	u, v = clamp01(u), clamp01(v)

	sc := s.pool.get()
	defer s.pool.put(sc)

	bu := s.basisU.eval(&sc.u, u)
	bv := s.basisV.eval(&sc.v, v)

	// Reduce each row along v, then the row results along u.
	inner := &sc.inner
	inner.xs = resize(inner.xs, s.rows)
	inner.ys = resize(inner.ys, s.rows)
	inner.zs = resize(inner.zs, s.rows)
	for i := range s.rows {
		p := s.coords.slice(i*s.cols, (i+1)*s.cols).reduce(s.ops, bv)
		inner.xs[i], inner.ys[i], inner.zs[i] = p.X, p.Y, p.Z
	}

	return inner.reduce(s.ops, bu)
}

// Size returns the grid dimensions.
func (s *BezierSurface[F]) Size() (rows, cols int) {
	return s.rows, s.cols
}

// Degrees returns the degree along u and along v.
func (s *BezierSurface[F]) Degrees() (m, n int) {
	return s.rows - 1, s.cols - 1
}

// ControlPoint returns the grid point at row i, column j.
// It panics if i or j is outside the grid.
func (s *BezierSurface[F]) ControlPoint(i, j int) Point[F] {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		panic(fmt.Sprintf("bezier: control point (%d, %d) outside %dx%d grid", i, j, s.rows, s.cols))
	}
	return s.points[i*s.cols+j]
}

// ControlPoints returns a copy of the row-major grid.
func (s *BezierSurface[F]) ControlPoints() []Point[F] {
	return slices.Clone(s.points)
}
