package geodesic

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type inverseKey struct {
	m      Method
	p1, p2 Point
}

// InverseCache memoizes inverse solutions on one ellipsoid, keeping the
// most recently used lines. It is safe for concurrent use.
type InverseCache struct {
	e     *Ellipsoid
	lines *lru.Cache[inverseKey, Line]
}

// NewInverseCache returns a cache of up to size lines solved on e.
func (e *Ellipsoid) NewInverseCache(size int) (*InverseCache, error) {
	lines, err := lru.New[inverseKey, Line](size)
	if err != nil {
		return nil, fmt.Errorf("inverse cache: %w", err)
	}
	return &InverseCache{e: e, lines: lines}, nil
}

// Inverse is like Ellipsoid.Inverse but returns a cached line when the
// same pair was solved recently.
func (c *InverseCache) Inverse(p1, p2 Point) Line {
	return c.InverseWith(Auto, p1, p2)
}

// InverseWith is like Ellipsoid.InverseWith, cached per method.
func (c *InverseCache) InverseWith(m Method, p1, p2 Point) Line {
	k := inverseKey{m: m, p1: p1, p2: p2}
	if l, ok := c.lines.Get(k); ok {
		return l
	}
	l := c.e.InverseWith(m, p1, p2)
	c.lines.Add(k, l)
	return l
}

// LineLength is like Ellipsoid.LineLength with every leg looked up in the
// cache.
func (c *InverseCache) LineLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += c.Inverse(pts[i-1], pts[i]).S
	}
	return total
}

// Len returns the number of cached lines.
func (c *InverseCache) Len() int {
	return c.lines.Len()
}
