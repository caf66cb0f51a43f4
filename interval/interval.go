// Package interval provides a 1-D bound implementing rtree.Bound, the way
// the original R-tree this package's sibling was modeled on tests
// exclusively against a 1-D int bound.
package interval

import "math"

// Interval is a closed 1-D range [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

// New returns the interval [lo, hi]. lo must be <= hi.
func New(lo, hi float64) Interval {
	return Interval{Lo: lo, Hi: hi}
}

// Merge returns the smallest interval containing both a and b.
func (a Interval) Merge(b Interval) Interval {
	return Interval{Lo: math.Min(a.Lo, b.Lo), Hi: math.Max(a.Hi, b.Hi)}
}

// Area returns the interval's length. It is zero for a degenerate
// (single-point) interval.
func (a Interval) Area() float64 {
	return a.Hi - a.Lo
}

// Intersects reports whether a and b share at least one point.
func (a Interval) Intersects(b Interval) bool {
	return a.Lo <= b.Hi && a.Hi >= b.Lo
}

// Contains reports whether b lies entirely within a.
func (a Interval) Contains(b Interval) bool {
	return a.Lo <= b.Lo && a.Hi >= b.Hi
}
