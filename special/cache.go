package special

import "sync"

// FactorialCache memoizes n! as float64 for 0 <= n <= limit.
//
// The cache is owned by the caller and never invalidates entries; limit is
// its size bound. Requests above the limit are computed and not stored.
// It is safe for concurrent use. Cached values are bit-identical to
// [FactorialFloat].
//
// Pass a cache to the Bessel evaluator with series.WithFactorials to reuse
// factorials across calls.
type FactorialCache struct {
	mu     sync.RWMutex
	limit  int
	values []float64
}

// NewFactorialCache returns an empty cache bounded at limit entries past 0!.
// A negative limit caches only 0!.
func NewFactorialCache(limit int) *FactorialCache {
	if limit < 0 {
		limit = 0
	}

	return &FactorialCache{limit: limit}
}

// Float returns n!, filling the table up to n on first use.
func (c *FactorialCache) Float(n int) (float64, error) {
	if n < 0 {
		return 0, &DomainError{Op: "factorial", Index: -1, Value: n}
	}

	if n > c.limit {
		return FactorialFloat(n)
	}

	c.mu.RLock()
	if n < len(c.values) {
		v := c.values[n]
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.values) == 0 {
		c.values = append(c.values, 1)
	}
	for k := len(c.values); k <= n; k++ {
		prev := c.values[k-1]
		if k >= 2 {
			prev *= float64(k)
		}
		c.values = append(c.values, prev)
	}

	return c.values[n], nil
}

// Len returns the number of cached entries.
func (c *FactorialCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.values)
}

// Limit returns the largest n the cache stores.
func (c *FactorialCache) Limit() int {
	return c.limit
}
