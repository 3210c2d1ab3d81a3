package bezier

import "github.com/tphakala/go-bezier/internal/binomial"

// MaxDegree is the highest curve or surface degree supported in any
// direction.
const MaxDegree = binomial.MaxDegree

// Parameter domain bounds
const (
	paramMin = 0.0
	paramMax = 1.0
)

// Sampling limits
const (
	minSampleIntervals = 1
)
