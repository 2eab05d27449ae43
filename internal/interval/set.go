package interval

import (
	"iter"
	"math"
	"slices"
)

// IntervalSet represents a set of float64 values as ordered, pairwise
// disjoint closed Intervals. The invariant, restored before every public
// mutator returns, is: intervals sorted ascending by Low, no stored interval
// empty, and no two intervals touching (r[i].Up < r[i+1].Low strictly).
//
// Within the set intervals are considered closed, and results of operations
// are closed intervals. Set difference is therefore taken against open
// intervals, which can leave boundary singletons behind; see Diff.
//
// An IntervalSet owns its backing storage exclusively; Copy performs a deep
// copy, and callers must serialize concurrent mutation themselves.
type IntervalSet struct {
	r []Interval
}

// NewIntervalSet returns an empty set.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFromSlice builds a set containing copies of the given
// intervals. The slice is trusted to already satisfy the set invariant.
func NewIntervalSetFromSlice(ar []Interval) *IntervalSet {
	return &IntervalSet{r: slices.Clone(ar)}
}

// Copy returns a deep copy sharing no storage with the receiver.
func (s *IntervalSet) Copy() *IntervalSet {
	return &IntervalSet{r: slices.Clone(s.r)}
}

// ToSlice returns the intervals in ascending order as a fresh slice.
func (s *IntervalSet) ToSlice() []Interval {
	return slices.Clone(s.r)
}

// Size returns the number of intervals in the set.
func (s *IntervalSet) Size() int {
	return len(s.r)
}

// IsEmpty reports whether the set holds no intervals.
func (s *IntervalSet) IsEmpty() bool {
	return len(s.r) == 0
}

// Clear empties the set.
func (s *IntervalSet) Clear() {
	s.r = s.r[:0]
}

// GetInterval returns interval i, with intervals numbered 0..Size()-1 in
// ascending order. An out-of-range index returns Empty.
func (s *IntervalSet) GetInterval(i int) Interval {
	if i < 0 || i >= len(s.r) {
		return Empty
	}
	return s.r[i]
}

// All returns an iterator over the intervals in ascending order. Each call
// is a fresh pass over the current contents; mutating the set during
// iteration is not supported.
func (s *IntervalSet) All() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for _, iv := range s.r {
			if !yield(iv) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold bit-identical intervals.
func (s *IntervalSet) Equal(o *IntervalSet) bool {
	if len(s.r) != len(o.r) {
		return false
	}
	for i := range s.r {
		if !s.r[i].Equal(o.r[i]) {
			return false
		}
	}
	return true
}

// In reports whether x is a member of the set.
func (s *IntervalSet) In(x float64) bool {
	return s.order(x) >= 0
}

// Includes reports whether iv is a subset of some interval in the set.
func (s *IntervalSet) Includes(iv Interval) bool {
	for _, r := range s.r {
		if r.Includes(iv) {
			return true
		}
	}
	return false
}

// IncludesSet reports whether every interval of n is included in the set.
func (s *IntervalSet) IncludesSet(n *IntervalSet) bool {
	for _, iv := range n.r {
		if !s.Includes(iv) {
			return false
		}
	}
	return true
}

// Overlap reports whether iv has a non-empty intersection with the set.
func (s *IntervalSet) Overlap(iv Interval) bool {
	for _, r := range s.r {
		if iv.Overlap(r) {
			return true
		}
	}
	return false
}

// OverlapSet reports whether the two sets have a non-empty intersection.
func (s *IntervalSet) OverlapSet(n *IntervalSet) bool {
	for _, r := range s.r {
		if n.Overlap(r) {
			return true
		}
	}
	return false
}

// IntervalContaining returns the interval containing v, or Empty.
func (s *IntervalSet) IntervalContaining(v float64) Interval {
	if i := s.order(v); i >= 0 {
		return s.r[i]
	}
	return Empty
}

// Union adds rn into the set. An interval that touches or overlaps existing
// intervals fuses them into one; a fully disjoint interval is inserted in
// sorted position. Adding an empty interval is a no-op.
func (s *IntervalSet) Union(rn Interval) {
	if rn.IsEmpty() {
		return // nothing to add
	}

	iLow := s.order(rn.Low)
	iHigh := s.order(rn.Up)

	var low, high float64
	var start, end int

	if iLow < 0 {
		low = rn.Low
		start = -(iLow + 1)
	} else {
		low = s.r[iLow].Low
		start = iLow
	}

	if iHigh < 0 {
		high = rn.Up
		end = -(iHigh + 1) - 1
	} else {
		high = s.r[iHigh].Up
		end = iHigh
	}

	s.removeRange(start, end-start+1) // start to end inclusive
	s.insert(start, Interval{Low: low, Up: high})
}

// UnionSet unions every interval of n into the set. n is unmodified.
func (s *IntervalSet) UnionSet(n *IntervalSet) {
	for _, iv := range n.r {
		s.Union(iv)
	}
}

// AlmostUnion unions every interval of n into the set using almost
// inequalities. n is unmodified.
func (s *IntervalSet) AlmostUnion(n *IntervalSet, maxUlps Precision) {
	for _, iv := range n.r {
		s.AlmostAdd(iv.Low, iv.Up, maxUlps)
	}
}

// AlmostAdd adds the interval (l,u) into the set, merging it with any
// interval it tolerantly overlaps or touches. An interval that is empty
// under the tolerance is a no-op.
//
// The rebuild is a single forward pass over the prior contents: intervals
// near the candidate are absorbed into an accumulating (l,u); the first
// interval strictly tolerant-beyond the candidate flushes the accumulated
// interval and switches to pass-through for the remainder. The pass relies
// on the set invariant for its ordering; tolerant adjacency cannot be
// located with the exact order scan.
func (s *IntervalSet) AlmostAdd(l, u float64, maxUlps Precision) {
	if !AlmostLess(l, u, maxUlps) {
		return
	}
	m := s.Copy()
	s.Clear()
	flushed := false
	for _, ii := range m.r {
		if flushed {
			s.Union(ii)
		} else if (AlmostLeq(ii.Low, l, maxUlps) && AlmostLeq(l, ii.Up, maxUlps)) ||
			(AlmostLeq(l, ii.Low, maxUlps) && AlmostLeq(ii.Low, u, maxUlps)) {
			l = min(ii.Low, l)
			u = max(ii.Up, u)
		} else if AlmostLess(u, ii.Low, maxUlps) {
			s.Union(Interval{Low: l, Up: u})
			s.Union(ii)
			flushed = true
		} else {
			s.Union(ii)
		}
	}
	if !flushed {
		s.Union(Interval{Low: l, Up: u})
	}
}

// AlmostIntersect intersects the set with n in place, using almost
// inequalities. n is unmodified. The merge walks both sorted disjoint lists
// with two cursors, advancing whichever interval ends first.
func (s *IntervalSet) AlmostIntersect(n *IntervalSet, maxUlps Precision) {
	m := s.Copy()
	s.Clear()
	if m.IsEmpty() || n.IsEmpty() {
		return
	}
	i, j := 0, 0
	for i < m.Size() && j < n.Size() {
		ii := m.r[i]
		jj := n.r[j]
		switch {
		case AlmostLeq(jj.Low, ii.Low, maxUlps) && AlmostLess(ii.Low, jj.Up, maxUlps):
			if AlmostLeq(ii.Up, jj.Up, maxUlps) {
				s.Union(ii)
				i++
			} else {
				s.Union(Interval{Low: ii.Low, Up: jj.Up})
				j++
			}
		case AlmostLeq(ii.Low, jj.Low, maxUlps) && AlmostLess(jj.Low, ii.Up, maxUlps):
			if AlmostLeq(jj.Up, ii.Up, maxUlps) {
				s.Union(jj)
				j++
			} else {
				s.Union(Interval{Low: jj.Low, Up: ii.Up})
				i++
			}
		case AlmostLeq(ii.Up, jj.Low, maxUlps):
			i++
		case AlmostLeq(jj.Up, ii.Low, maxUlps):
			j++
		}
	}
}

// Intersection returns the exact intersection of the set and n. The result
// may contain singletons.
func (s *IntervalSet) Intersection(n Interval) *IntervalSet {
	out := NewIntervalSet()
	for _, iv := range s.r {
		j := iv.Intersect(n)
		if !j.IsEmpty() {
			out.Union(j)
		}
	}
	return out
}

// IntersectionSet returns the exact intersection of the two sets. The
// result may contain singletons.
func (s *IntervalSet) IntersectionSet(n *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	for _, iv := range n.r {
		out.UnionSet(s.Intersection(iv))
	}
	return out
}

// Diff removes the open interval rn from this set of closed intervals. The
// open-interval semantics mean {[1,2]}.Diff(Interval{1,2}) leaves the
// singletons [1,1] and [2,2]; use RemoveSingle or SweepSingle to drop such
// artifacts. Empty and singleton arguments are no-ops (an open singleton
// has no interior).
func (s *IntervalSet) Diff(rn Interval) {
	if rn.IsEmpty() {
		return // nothing for set difference
	}
	if rn.IsSingle() {
		return
	}

	iLow := s.order(rn.Low)
	iHigh := s.order(rn.Up)

	if iLow >= 0 && iLow == iHigh {
		up := s.r[iHigh].Up
		s.r[iLow] = Interval{Low: s.r[iLow].Low, Up: rn.Low}
		s.insert(iLow+1, Interval{Low: rn.Up, Up: up})
		return
	}

	var start, end int

	if iLow < 0 {
		start = -(iLow + 1)
	} else {
		s.r[iLow] = Interval{Low: s.r[iLow].Low, Up: rn.Low}
		start = iLow + 1
	}

	if iHigh < 0 {
		end = -(iHigh + 1) - 1
	} else {
		s.r[iHigh] = Interval{Low: rn.Up, Up: s.r[iHigh].Up}
		end = iHigh - 1
	}

	s.removeRange(start, end-start+1) // start to end inclusive
}

// DiffSet performs the set difference with n, interpreted as a set of open
// intervals. n is unmodified.
func (s *IntervalSet) DiffSet(n *IntervalSet) {
	for _, iv := range n.r {
		s.Diff(iv)
	}
}

// RemoveSingle removes the interval located at x if it is a singleton of
// the given width or less; otherwise it does nothing.
func (s *IntervalSet) RemoveSingle(x, width float64) {
	i := s.order(x)
	if i >= 0 && s.r[i].IsSingleWithin(width) {
		s.removeAt(i)
	}
}

// RemoveLessThan removes every interval whose width is strictly less than
// width.
func (s *IntervalSet) RemoveLessThan(width float64) {
	if width == 0 {
		return
	}
	i := 0
	for i < len(s.r) {
		if s.r[i].Width() < width {
			s.removeAt(i)
		} else {
			i++
		}
	}
}

// SweepSingle removes every singleton interval of the given width or less.
func (s *IntervalSet) SweepSingle(width float64) {
	i := 0
	for i < len(s.r) {
		if s.r[i].IsSingleWithin(width) {
			s.removeAt(i)
		} else {
			i++
		}
	}
}

// SweepBreaks merges adjacent intervals separated by a gap smaller than
// width. A merge can bring the next interval within reach, so the scan
// re-tests the current index after each merge.
func (s *IntervalSet) SweepBreaks(width float64) {
	i := 0
	for i < len(s.r)-1 {
		if s.r[i].Up+width > s.r[i+1].Low {
			s.Union(Interval{Low: s.r[i].Low, Up: s.r[i+1].Up})
		} else {
			i++
		}
	}
}

// Negate returns (-infty,+infty) minus this set. Diff's open-interval
// semantics mean the endpoints of this set reappear as singletons in the
// result.
func (s *IntervalSet) Negate() *IntervalSet {
	out := NewIntervalSet()
	out.Union(Interval{Low: math.Inf(-1), Up: math.Inf(1)})
	out.DiffSet(s)
	return out
}

// Shift translates every interval by d. The iteration runs from the high
// end when d > 0 and from the low end when d < 0 so that a shifted interval
// never crosses an unshifted neighbor mid-scan.
func (s *IntervalSet) Shift(d float64) {
	if d > 0 {
		for i := len(s.r) - 1; i >= 0; i-- {
			s.r[i] = s.r[i].Shift(d)
		}
	} else if d < 0 {
		for i := 0; i < len(s.r); i++ {
			s.r[i] = s.r[i].Shift(d)
		}
	}
}

// FromInts builds a set from an ascending list of integers. Adjacent values
// (differing by exactly 1) belong to the same interval; the first and last
// value always seed singletons.
func FromInts(list []int) *IntervalSet {
	set := NewIntervalSet()
	if len(list) > 0 {
		first := float64(list[0])
		last := float64(list[len(list)-1])
		set.Union(Interval{Low: first, Up: first})
		set.Union(Interval{Low: last, Up: last})
	}
	for i := 1; i < len(list); i++ {
		if list[i-1]+1 == list[i] {
			set.Union(Interval{Low: float64(list[i-1]), Up: float64(list[i])})
		}
	}
	return set
}

// FromFloats builds a set from an ascending list of discretized values.
// Consecutive values within epsilon (inclusive) belong to the same
// interval; the first and last value always seed singletons.
func FromFloats(list []float64, epsilon float64) *IntervalSet {
	set := NewIntervalSet()
	if len(list) > 0 {
		set.Union(Interval{Low: list[0], Up: list[0]})
		set.Union(Interval{Low: list[len(list)-1], Up: list[len(list)-1]})
	}
	for i := 1; i < len(list); i++ {
		if list[i]-list[i-1] <= epsilon {
			set.Union(Interval{Low: list[i-1], Up: list[i]})
		}
	}
	return set
}

// order scans for the interval containing x. Because membership is closed,
// a value lying exactly on the bound between two candidate positions is
// attributed to the earlier interval, which is what fuses touching
// intervals during Union. Returns the index when x is a member, and
// -(i+1) when x would be inserted before interval i.
func (s *IntervalSet) order(x float64) int {
	for i, iv := range s.r {
		if iv.In(x) {
			return i
		}
		if x < iv.Low {
			return -i - 1
		}
	}
	return -len(s.r) - 1
}

// insert places region at index i, clamping i into range. Empty regions are
// dropped.
func (s *IntervalSet) insert(i int, region Interval) {
	if region.IsEmpty() {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(s.r) {
		i = len(s.r)
	}
	s.r = slices.Insert(s.r, i, region)
}

// removeAt removes and returns interval i, or Empty if i is out of range.
func (s *IntervalSet) removeAt(i int) Interval {
	if i < 0 || i >= len(s.r) {
		return Empty
	}
	t := s.r[i]
	s.r = slices.Delete(s.r, i, i+1)
	return t
}

// removeRange removes n intervals starting at i.
func (s *IntervalSet) removeRange(i, n int) {
	for j := 0; j < n; j++ {
		s.removeAt(i)
	}
}
