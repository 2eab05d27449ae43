// Package interval implements a tolerant interval-set algebra: finite unions
// of disjoint closed intervals of float64 values, with set operations that
// stay numerically robust under floating-point rounding. It is the primitive
// used to represent the windows of time during which a safety predicate
// holds, e.g. loss-of-separation windows in conflict detection.
package interval

import "math"

// Interval is a range of float64 values from a lower bound Low to an upper
// bound Up. Intervals are immutable values. Whether an interval is
// interpreted as open or closed is context-dependent; the membership tests
// cover the four interpretations.
type Interval struct {
	Low float64
	Up  float64
}

// Empty is the canonical empty interval. Any interval with Low > Up is
// treated as empty regardless of the exact bounds.
var Empty = Interval{Low: 0.0, Up: -1.0}

// Width returns Up - Low.
func (i Interval) Width() float64 {
	return i.Up - i.Low
}

// IsEmpty reports whether the interval is empty or otherwise ill-formed.
func (i Interval) IsEmpty() bool {
	return i.Low > i.Up
}

// IsSingle reports whether the interval is a single value.
func (i Interval) IsSingle() bool {
	return i.Low == i.Up
}

// IsSingleWithin reports whether the interval is a single value, with
// intervals of the indicated width or smaller counting. The slack is an
// absolute width, not a ULP distance.
func (i Interval) IsSingleWithin(width float64) bool {
	return i.Low+width >= i.Up
}

// Equal reports bit-exact equality of both bounds. No tolerance is applied;
// note that 0.0 and -0.0 compare unequal here.
func (i Interval) Equal(o Interval) bool {
	return math.Float64bits(i.Low) == math.Float64bits(o.Low) &&
		math.Float64bits(i.Up) == math.Float64bits(o.Up)
}

// In reports whether x is in the closed/closed interval.
func (i Interval) In(x float64) bool {
	return i.Low <= x && x <= i.Up
}

// InCC reports whether x is in the closed/closed interval.
func (i Interval) InCC(x float64) bool {
	return i.Low <= x && x <= i.Up
}

// InCO reports whether x is in the closed/open interval.
func (i Interval) InCO(x float64) bool {
	return i.Low <= x && x < i.Up
}

// InOC reports whether x is in the open/closed interval.
func (i Interval) InOC(x float64) bool {
	return i.Low < x && x <= i.Up
}

// InOO reports whether x is in the open/open interval.
func (i Interval) InOO(x float64) bool {
	return i.Low < x && x < i.Up
}

// AlmostIn reports whether x is (almost) in the interval, with the
// closed/open interpretation of each bound given by lbClose and ubClose. A
// bound within maxUlps of x is treated as closed, so membership does not
// flicker when rounding error pushes x across a bound.
func (i Interval) AlmostIn(x float64, lbClose, ubClose bool, maxUlps Precision) bool {
	var inLb, inUb bool
	if i.Low < x {
		inLb = lbClose || !AlmostEquals(i.Low, x, maxUlps)
	} else {
		inLb = lbClose && AlmostEquals(i.Low, x, maxUlps)
	}
	if x < i.Up {
		inUb = ubClose || !AlmostEquals(i.Up, x, maxUlps)
	} else {
		inUb = ubClose && AlmostEquals(i.Up, x, maxUlps)
	}
	return inLb && inUb
}

// Intersect returns the intersection of the two intervals, or Empty if they
// do not overlap.
func (i Interval) Intersect(r Interval) Interval {
	if i.Equal(r) {
		return i
	}
	if !i.Overlap(r) {
		return Empty
	}
	return Interval{Low: max(i.Low, r.Low), Up: min(i.Up, r.Up)}
}

// Overlap reports whether the two intervals overlap. Intervals that share
// only an endpoint do not overlap: (1.0,2.0) and (2.0,3.0) are disjoint.
// This is load-bearing for the set algebra; tolerant variants live on
// IntervalSet, not here.
func (i Interval) Overlap(r Interval) bool {
	if i.IsEmpty() || r.IsEmpty() {
		return false
	}
	if i.Low <= r.Low && r.Up <= i.Up {
		return true
	}
	if r.Low <= i.Low && i.Low < r.Up {
		return true
	}
	if r.Low <= i.Low && i.Up <= r.Up {
		return true
	}
	if r.Low < i.Up && i.Up <= r.Up {
		return true
	}
	return false
}

// Includes reports whether r is a subset of the interval.
func (i Interval) Includes(r Interval) bool {
	return i.Low <= r.Low && i.Up >= r.Up
}

// Shift returns the interval translated by d.
func (i Interval) Shift(d float64) Interval {
	return Interval{Low: i.Low + d, Up: i.Up + d}
}
