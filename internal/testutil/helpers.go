// Package testutil provides reusable test helper functions for the Bézier evaluators.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	Float32Tolerance  = 1e-5
	RelativeTolerance = 1e-4
)

// Vectorer is implemented by point types that convert to a gonum vector.
type Vectorer interface {
	Vec() r3.Vec
}

// AssertPointInDelta verifies that two points are within delta of each
// other in Euclidean distance.
func AssertPointInDelta(t *testing.T, expected, actual Vectorer, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	e, a := expected.Vec(), actual.Vec()
	d := r3.Norm(r3.Sub(e, a))
	if math.IsNaN(d) || d > delta {
		return assert.Fail(t, "points differ",
			"expected %v, got %v (distance %e > %e) %v", e, a, d, delta, msgAndArgs)
	}
	return true
}

// AssertPointRelative verifies that each coordinate of actual is within a
// relative tolerance of expected. Zero coordinates fall back to an absolute
// comparison with the same tolerance.
func AssertPointRelative(t *testing.T, expected, actual Vectorer, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	e, a := expected.Vec(), actual.Vec()
	ok := AssertRelativeError(t, e.X, a.X, tolerance, msgAndArgs...)
	ok = AssertRelativeError(t, e.Y, a.Y, tolerance, msgAndArgs...) && ok
	ok = AssertRelativeError(t, e.Z, a.Z, tolerance, msgAndArgs...) && ok
	return ok
}

// AssertPointNaN verifies that every coordinate of p is NaN.
func AssertPointNaN(t *testing.T, p Vectorer, msgAndArgs ...any) bool {
	t.Helper()
	v := p.Vec()
	if !math.IsNaN(v.X) || !math.IsNaN(v.Y) || !math.IsNaN(v.Z) {
		return assert.Fail(t, "expected NaN point", "got %v %v", v, msgAndArgs)
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertPartitionOfUnity verifies that basis values sum to one.
func AssertPartitionOfUnity(t *testing.T, basis []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	sum := floats.Sum(basis)
	return assert.InDelta(t, 1.0, sum, tolerance,
		"basis sums to %f, want 1", sum)
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
