package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-bezier/internal/testutil"
	"gonum.org/v1/gonum/stat/combin"
)

var (
	_ Curve[float64]   = (*BezierCurve[float64])(nil)
	_ Curve[float32]   = (*BezierCurve[float32])(nil)
	_ Curve[float64]   = (*RationalCurve[float64])(nil)
	_ Surface[float64] = (*BezierSurface[float64])(nil)
)

// demoPoints is the 7-point example curve printed by the demo command.
func demoPoints() []Point[float64] {
	return []Point[float64]{
		Pt(1.0, 0.0, 0.0),
		Pt(2.0, 2.0, 1.0),
		Pt(3.0, 0.0, 2.0),
		Pt(4.0, -2.0, 1.0),
		Pt(5.0, 0.0, 0.0),
		Pt(6.0, 2.0, -1.0),
		Pt(7.0, 0.0, -2.0),
	}
}

// closedForm evaluates a Bézier curve with math.Pow, independent of the
// incremental power tables.
func closedForm(points []Point[float64], u float64) Point[float64] {
	n := len(points) - 1
	var out Point[float64]
	for i, p := range points {
		b := float64(combin.Binomial(n, i)) * math.Pow(u, float64(i)) * math.Pow(1-u, float64(n-i))
		out = out.Add(p.Scale(b))
	}
	return out
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestNewCurve_Empty(t *testing.T) {
	_, err := NewCurve[float64](nil, nil)
	require.ErrorIs(t, err, ErrEmptyControlPoints)
}

func TestNewCurve_CopiesInput(t *testing.T) {
	pts := demoPoints()
	c, err := NewCurve(pts, nil)
	require.NoError(t, err)

	pts[0] = Pt(100.0, 100.0, 100.0)
	assert.Equal(t, Pt(1.0, 0.0, 0.0), c.At(0))
	assert.Equal(t, Pt(1.0, 0.0, 0.0), c.ControlPoints()[0])

	got := c.ControlPoints()
	got[1] = Pt(9.0, 9.0, 9.0)
	assert.Equal(t, Pt(2.0, 2.0, 1.0), c.ControlPoints()[1])
}

func TestBezierCurve_Degree(t *testing.T) {
	c, err := NewCurve(demoPoints(), nil)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Degree())
}

func TestBezierCurve_Midpoint(t *testing.T) {
	c, err := NewCurve(demoPoints(), nil)
	require.NoError(t, err)

	// Coefficients 1,6,15,20,15,6,1 over 64 give dyadic sums.
	assert.Equal(t, Pt(4.0, -0.25, 0.75), c.At(0.5))
}

func TestBezierCurve_Quadratic(t *testing.T) {
	c, err := NewCurve([]Point[float64]{
		Pt(0.0, 0.0, 0.0),
		Pt(1.0, 2.0, 0.0),
		Pt(2.0, 0.0, 1.0),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, Pt(1.0, 1.0, 0.25), c.At(0.5))
}

func TestBezierCurve_Endpoints(t *testing.T) {
	for n := 1; n <= 12; n++ {
		pts := make([]Point[float64], n)
		for i := range pts {
			fi := float64(i)
			pts[i] = Pt(fi*1.5, math.Sin(fi), -fi*fi)
		}

		for _, simd := range []bool{true, false} {
			c, err := NewCurve(pts, &Config{EnableSIMD: simd})
			require.NoError(t, err)

			assert.Equal(t, pts[0], c.At(0), "n=%d simd=%v", n, simd)
			assert.Equal(t, pts[n-1], c.At(1), "n=%d simd=%v", n, simd)
		}
	}
}

func TestBezierCurve_Clamping(t *testing.T) {
	pts := demoPoints()
	c, err := NewCurve(pts, nil)
	require.NoError(t, err)

	for _, u := range []float64{-1e-9, -0.5, -1, -1000, math.Inf(-1)} {
		assert.Equal(t, pts[0], c.At(u), "u=%v", u)
	}
	for _, u := range []float64{1 + 1e-9, 1.5, 2, 1000, math.Inf(1)} {
		assert.Equal(t, pts[len(pts)-1], c.At(u), "u=%v", u)
	}
}

func TestBezierCurve_NaNParameter(t *testing.T) {
	c, err := NewCurve(demoPoints(), nil)
	require.NoError(t, err)
	testutil.AssertPointNaN(t, c.At(math.NaN()))
}

func TestBezierCurve_MatchesClosedForm(t *testing.T) {
	pts := demoPoints()
	c, err := NewCurve(pts, nil)
	require.NoError(t, err)

	for _, u := range []float64{0.01, 0.1, 0.25, 0.37, 0.5, 0.63, 0.9, 0.99} {
		testutil.AssertPointInDelta(t, closedForm(pts, u), c.At(u), 1e-12, "u=%v", u)
	}
}

func TestBezierCurve_SIMDMatchesScalar(t *testing.T) {
	pts := demoPoints()
	simd, err := NewCurve(pts, &Config{EnableSIMD: true})
	require.NoError(t, err)
	scalar, err := NewCurve(pts, &Config{EnableSIMD: false})
	require.NoError(t, err)

	a, err := Sample[float64](simd, 50)
	require.NoError(t, err)
	b, err := Sample[float64](scalar, 50)
	require.NoError(t, err)

	diff(t, b, a, cmpopts.EquateApprox(0, 1e-12))
}

func TestBezierCurve_SinglePoint(t *testing.T) {
	p := Pt(3.0, -1.0, 2.0)
	c, err := NewCurve([]Point[float64]{p}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, c.Degree())
	for _, u := range []float64{-1, 0, 0.3, 1, 2} {
		assert.Equal(t, p, c.At(u))
	}
}

func TestBezierCurve_Float32(t *testing.T) {
	pts := make([]Point[float32], 0, 7)
	for _, p := range demoPoints() {
		pts = append(pts, Pt(float32(p.X), float32(p.Y), float32(p.Z)))
	}
	c, err := NewCurve(pts, nil)
	require.NoError(t, err)

	testutil.AssertPointInDelta(t, Pt(4.0, -0.25, 0.75), c.At(0.5), testutil.Float32Tolerance)
	testutil.AssertPointInDelta(t, closedForm(demoPoints(), 0.37), c.At(0.37), testutil.RelativeTolerance)
}

func TestBezierCurve_ZeroValue(t *testing.T) {
	var c BezierCurve[float64]
	testutil.AssertPointNaN(t, c.At(0.5))

	var nilCurve *BezierCurve[float64]
	testutil.AssertPointNaN(t, nilCurve.At(0.5))
}

func TestBezierCurve_DegreeLimits(t *testing.T) {
	pts := make([]Point[float32], 141)
	_, err := NewCurve(pts, nil)
	require.ErrorIs(t, err, ErrDegreeTooHigh)

	pts64 := make([]Point[float64], 141)
	_, err = NewCurve(pts64, nil)
	require.NoError(t, err)

	_, err = NewCurve(make([]Point[float64], 5), &Config{MaxDegree: 3})
	require.ErrorIs(t, err, ErrDegreeTooHigh)

	_, err = NewCurve(make([]Point[float64], MaxDegree+2), nil)
	require.ErrorIs(t, err, ErrDegreeTooHigh)
}

func TestBezierCurve_HighDegreeStaysFinite(t *testing.T) {
	// 31 points: 30! no longer fits in an int64.
	pts := make([]Point[float64], 31)
	for i := range pts {
		pts[i] = Pt(float64(i), 1.0, float64(i%2))
	}
	c, err := NewCurve(pts, nil)
	require.NoError(t, err)

	for _, u := range []float64{0.2, 0.5, 0.8} {
		p := c.At(u)
		testutil.AssertNoNaNOrInf(t, []float64{p.X, p.Y, p.Z}, "u=%v", u)
		// Linear precision: x = 30u, y = 1.
		assert.InDelta(t, 30*u, p.X, 1e-9)
		assert.InDelta(t, 1.0, p.Y, 1e-12)
	}
}
