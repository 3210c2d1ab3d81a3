package bezier

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-bezier/internal/binomial"
	"github.com/tphakala/go-bezier/internal/simdops"
	"github.com/tphakala/simd/cpu"
)

// Float is the type constraint for supported floating-point types.
type Float = simdops.Float

// Curve is a parametric curve evaluated at u.
type Curve[F Float] interface {
	// At returns the curve point at parameter u.
	At(u F) Point[F]

	// Degree returns the polynomial degree (control point count minus one).
	Degree() int
}

// Surface is a parametric surface evaluated at (u, v).
type Surface[F Float] interface {
	// At returns the surface point at parameters (u, v).
	At(u, v F) Point[F]

	// Size returns the control grid dimensions along u and v.
	Size() (rows, cols int)
}

// BinomialCache stores factorials shared by evaluators. It only grows and
// is safe for concurrent use.
type BinomialCache = binomial.Cache

// NewBinomialCache returns an empty cache, independent of the shared one.
func NewBinomialCache() *BinomialCache {
	return binomial.New()
}

// SharedBinomialCache returns the process-wide cache used by default.
func SharedBinomialCache() *BinomialCache {
	return binomial.Shared()
}

// Config holds evaluator configuration.
type Config struct {
	// Cache supplies factorials for binomial coefficients.
	// Nil selects the process-wide shared cache.
	Cache *BinomialCache

	// MaxDegree limits the degree accepted by constructors.
	// Zero means MaxDegree.
	MaxDegree int

	// EnableSIMD routes weighted sums through SIMD kernels when available.
	// Set to false to force pure Go implementation.
	EnableSIMD bool
}

// Common errors returned by constructors.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid bezier configuration")

	// ErrEmptyControlPoints indicates a curve with no control points.
	ErrEmptyControlPoints = errors.New("no control points")

	// ErrEmptyControlGrid indicates a surface with no control points.
	ErrEmptyControlGrid = errors.New("no control points in grid")

	// ErrDimensionMismatch indicates inconsistent input sizes, such as a
	// weight count different from the point count.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDegreeTooHigh indicates a degree whose binomial coefficients
	// cannot be represented.
	ErrDegreeTooHigh = errors.New("degree too high")
)

// DefaultConfig returns the configuration used when a nil Config is passed.
func DefaultConfig() *Config {
	return &Config{
		Cache:      binomial.Shared(),
		MaxDegree:  MaxDegree,
		EnableSIMD: true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxDegree < 0 || c.MaxDegree > MaxDegree {
		return fmt.Errorf("%w: max degree must be 0-%d", ErrInvalidConfig, MaxDegree)
	}
	return nil
}

// resolve validates c and fills in defaults. The caller's Config is not
// modified.
func (c *Config) resolve() (Config, error) {
	if c == nil {
		return *DefaultConfig(), nil
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	r := *c
	if r.Cache == nil {
		r.Cache = binomial.Shared()
	}
	if r.MaxDegree == 0 {
		r.MaxDegree = MaxDegree
	}
	return r, nil
}

func (c *Config) checkDegree(n int) error {
	if n > c.MaxDegree {
		return fmt.Errorf("%w: %d exceeds limit %d", ErrDegreeTooHigh, n, c.MaxDegree)
	}
	return nil
}

// SIMDInfo describes the SIMD instruction set detected on this CPU.
func SIMDInfo() string {
	return cpu.Info()
}
