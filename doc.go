// Package bezier evaluates Bézier curves, rational Bézier curves and
// tensor-product Bézier surfaces in three dimensions using the Bernstein
// polynomial basis.
//
// # Quick Start
//
// Evaluate a plain curve:
//
//	pts := []bezier.Point[float64]{
//	    bezier.Pt(0.0, 0.0, 0.0),
//	    bezier.Pt(1.0, 2.0, 0.0),
//	    bezier.Pt(2.0, 0.0, 1.0),
//	}
//	c, err := bezier.NewCurve(pts, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mid := c.At(0.5)
//
// Evaluate a rational curve with one weight per control point:
//
//	rc, err := bezier.NewRationalCurve(pts, []float64{1, 2, 1}, nil)
//
// Evaluate a surface over a 2x3 grid stored row by row:
//
//	s, err := bezier.NewSurface(grid, 2, 3, nil)
//	p := s.At(0.25, 0.75)
//
// # Parameter Clamping
//
// Curves and surfaces treat out-of-range parameters differently:
//
//   - [BezierCurve.At] and [RationalCurve.At] return the first control point
//     for u < 0 and the last control point for u > 1, without evaluating.
//   - [BezierSurface.At] clamps u and v into [0, 1] and then evaluates.
//
// # Binomial Coefficients
//
// Evaluators obtain their binomial coefficient row from a [BinomialCache].
// The cache stores factorials as exact big integers and only ever grows, so
// repeated construction of curves of similar degree costs O(1) factorial
// work. By default every evaluator shares one process-wide cache; pass a
// [Config] with a dedicated cache to isolate it.
//
// Supported degree is bounded by [MaxDegree] and by the float type. Each
// coefficient is computed exactly and rounded once, so float64 rows are
// correctly rounded and stay representable up to MaxDegree; float32 rows
// overflow above degree 131. Constructors report [ErrDegreeTooHigh] instead
// of producing Inf.
//
// # Numeric Boundaries
//
// A rational curve whose weighted basis sums to zero (for example, all
// weights zero) evaluates to a NaN or Inf point. This is not reported as an
// error; use [Point.IsFinite] to detect it.
//
// # Thread Safety
//
// Evaluators are immutable after construction and safe for concurrent use
// by multiple goroutines. The binomial cache is safe for concurrent use.
//
// # SIMD
//
// Weighted sums run on github.com/tphakala/simd when [Config.EnableSIMD] is
// set (the default). Disable it to force the pure Go kernels.
package bezier
