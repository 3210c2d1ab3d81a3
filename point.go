package bezier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a point in three-dimensional space.
type Point[F Float] struct {
	X F
	Y F
	Z F
}

// Pt returns the point (x, y, z).
func Pt[F Float](x, y, z F) Point[F] {
	return Point[F]{X: x, Y: y, Z: z}
}

// PointFromVec converts a gonum vector to a Point.
func PointFromVec[F Float](v r3.Vec) Point[F] {
	return Point[F]{X: F(v.X), Y: F(v.Y), Z: F(v.Z)}
}

// NaNPoint returns the point whose coordinates are all NaN.
func NaNPoint[F Float]() Point[F] {
	n := F(math.NaN())
	return Point[F]{X: n, Y: n, Z: n}
}

func (p Point[F]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Vec converts p to a gonum vector.
func (p Point[F]) Vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Add computes p+o.
func (p Point[F]) Add(o Point[F]) Point[F] {
	return Point[F]{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub computes p−o.
func (p Point[F]) Sub(o Point[F]) Point[F] {
	return Point[F]{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// Scale multiplies every coordinate by s.
func (p Point[F]) Scale(s F) Point[F] {
	return Point[F]{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Div divides every coordinate by s. Division by zero follows IEEE 754.
func (p Point[F]) Div(s F) Point[F] {
	return Point[F]{X: p.X / s, Y: p.Y / s, Z: p.Z / s}
}

// Distance returns the Euclidean distance between p and o.
func (p Point[F]) Distance(o Point[F]) float64 {
	return r3.Norm(r3.Sub(p.Vec(), o.Vec()))
}

// IsFinite reports whether no coordinate is NaN or infinite.
func (p Point[F]) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite[F Float](v F) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
