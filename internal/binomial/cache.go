// Package binomial maintains a growing factorial table and derives rows of
// binomial coefficients C(n, i) from it.
//
// Factorials are stored as exact big integers, so the table itself never
// overflows. The usable degree is bounded by MaxDegree and by the range of
// the floating-point type a coefficient row is rounded to.
package binomial

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/tphakala/go-bezier/internal/simdops"
)

// MaxDegree is the highest degree the cache will extend to.
const MaxDegree = 1024

var (
	// ErrDegreeOutOfRange indicates a negative degree or one above MaxDegree.
	ErrDegreeOutOfRange = errors.New("degree out of range")

	// ErrCoefficientOverflow indicates a coefficient not representable in
	// the requested floating-point type.
	ErrCoefficientOverflow = errors.New("binomial coefficient overflows float type")
)

// Cache holds factorials 0!..(Len()-1)! in a contiguous table.
//
// The table only grows. Extension builds a new table under mu and publishes
// it atomically, so readers always observe either the old or the fully
// extended table. A Cache is safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	table atomic.Pointer[[]*big.Int]
}

var (
	sharedOnce  sync.Once
	sharedCache *Cache
)

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// Shared returns the process-wide cache used when callers do not supply one.
func Shared() *Cache {
	sharedOnce.Do(func() {
		sharedCache = New()
	})
	return sharedCache
}

func (c *Cache) snapshot() []*big.Int {
	if t := c.table.Load(); t != nil {
		return *t
	}
	return nil
}

// Len returns the number of factorials currently stored.
func (c *Cache) Len() int {
	return len(c.snapshot())
}

// EnsureFactorials guarantees the table holds n! for every index 0..n.
// Existing entries are never recomputed.
func (c *Cache) EnsureFactorials(n int) error {
	if n < 0 || n > MaxDegree {
		return fmt.Errorf("%w: %d (max %d)", ErrDegreeOutOfRange, n, MaxDegree)
	}
	if n < c.Len() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.snapshot()
	if n < len(old) {
		return nil
	}

	next := make([]*big.Int, n+1)
	copy(next, old)
	for i := len(old); i <= n; i++ {
		if i == 0 {
			next[i] = big.NewInt(1)
			continue
		}
		next[i] = new(big.Int).Mul(next[i-1], big.NewInt(int64(i)))
	}
	c.table.Store(&next)

	return nil
}

// Factorial returns a copy of n!, extending the table if needed.
func (c *Cache) Factorial(n int) (*big.Int, error) {
	if err := c.EnsureFactorials(n); err != nil {
		return nil, err
	}
	return new(big.Int).Set(c.snapshot()[n]), nil
}

// Coefficients returns the row C(n, 0..n) rounded to F.
//
// Each entry is n! / (i! (n-i)!) computed exactly and rounded once. Rows are
// not cached; callers with a fixed degree keep the row they receive.
func Coefficients[F simdops.Float](c *Cache, n int) ([]F, error) {
	num, err := c.Factorial(n)
	if err != nil {
		return nil, err
	}

	fact := c.snapshot()
	row := make([]F, n+1)
	limit := maxFloat[F]()
	var den, q big.Int
	for i := 0; i <= n/2; i++ {
		den.Mul(fact[i], fact[n-i])
		q.Quo(num, &den)

		v, _ := new(big.Float).SetInt(&q).Float64()
		if math.IsInf(v, 0) || v > limit {
			return nil, fmt.Errorf("%w: C(%d, %d)", ErrCoefficientOverflow, n, i)
		}
		row[i] = F(v)
		row[n-i] = F(v)
	}

	return row, nil
}

func maxFloat[F simdops.Float]() float64 {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return math.MaxFloat32
	}
	return math.MaxFloat64
}
