//go:generate go run github.com/dmarkham/enumer -type=Precision -trimprefix=Precision
package interval

import (
	"fmt"
	"math"
)

// Precision is a maxUlps tolerance for the Almost* comparisons: the maximum
// number of representable float64 values allowed between two numbers that
// still compare as equal. The named presets correspond to roughly 13, 9, 7
// and 5 decimal digits of agreement. A Precision must be positive and below
// 2^50.
type Precision int64

const (
	Precision13 Precision = 16348
	Precision9  Precision = 1 << 27
	Precision7  Precision = 1 << 34
	Precision5  Precision = 1 << 40
)

// PrecisionDefault is the preset used when callers have no sharper
// requirement.
const PrecisionDefault = Precision13

const maxUlpsCeiling = Precision(1) << 50

func checkUlps(maxUlps Precision) {
	if maxUlps <= 0 || maxUlps >= maxUlpsCeiling {
		panic(fmt.Sprintf("interval: maxUlps %d outside (0, 2^50)", int64(maxUlps)))
	}
}

// zeroThreshold is the absolute magnitude below which a value counts as zero
// when the other operand is exactly zero. ULP distance is meaningless across
// zero, so comparisons against zero fall back to these absolute cutoffs,
// keyed to the named presets.
func zeroThreshold(maxUlps Precision) float64 {
	switch maxUlps {
	case Precision5:
		return 1.0e-5
	case Precision7:
		return 1.0e-7
	case Precision9:
		return 1.0e-9
	default:
		return 1.0e-13
	}
}

// AlmostEquals reports whether a and b, relative to each other, are almost
// equal. The nearness metric is maxUlps: if two values compare equal at
// Precision13 (16348 ulps) there can be at most 16347 representable floats
// between them, which for values near 1 means an absolute difference around
// 1e-13.
//
// Consistent with IEEE-754, NaN never compares equal to anything, including
// itself. Infinite operands compare equal only when identical.
//
// The comparison reinterprets the IEEE-754 bit patterns as signed integers,
// remapping negative patterns so the integers are lexicographically ordered,
// and bounds the absolute integer difference by maxUlps. A plain epsilon is
// not an acceptable substitute: the merge decisions in IntervalSet depend on
// the boundary behavior of this exact formulation.
func AlmostEquals(a, b float64, maxUlps Precision) bool {
	checkUlps(maxUlps)
	if a == b {
		return true
	}

	// special case of comparing to zero
	if a == 0.0 || b == 0.0 {
		comp := zeroThreshold(maxUlps)
		if math.Abs(a) < comp && math.Abs(b) < comp {
			return true
		}
	}

	if !(a < b || b < a) { // filters out NaN
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	aInt := int64(math.Float64bits(a))
	if aInt < 0 {
		aInt = math.MinInt64 - aInt
	}
	bInt := int64(math.Float64bits(b))
	if bInt < 0 {
		bInt = math.MinInt64 - bInt
	}

	intDiff := aInt - bInt
	if intDiff < 0 {
		intDiff = -intDiff
	}
	return intDiff <= int64(maxUlps)
}

// AlmostLess reports a < b without the two being almost equal.
func AlmostLess(a, b float64, maxUlps Precision) bool {
	if AlmostEquals(a, b, maxUlps) {
		return false
	}
	return a < b
}

// AlmostGreater reports a > b without the two being almost equal.
func AlmostGreater(a, b float64, maxUlps Precision) bool {
	if AlmostEquals(a, b, maxUlps) {
		return false
	}
	return a > b
}

// AlmostLeq reports a <= b or a almost equal to b.
func AlmostLeq(a, b float64, maxUlps Precision) bool {
	return a <= b || AlmostEquals(a, b, maxUlps)
}

// AlmostGeq reports a >= b or a almost equal to b.
func AlmostGeq(a, b float64, maxUlps Precision) bool {
	return a >= b || AlmostEquals(a, b, maxUlps)
}

// WithinEpsilon reports whether a and b differ by strictly less than
// epsilon. The cutoff is absolute, not ULP-based; if epsilon is too small
// relative to a and b this is essentially ==. Epsilon must be positive.
func WithinEpsilon(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// WithinEpsilonOf reports whether the magnitude of a is strictly less than
// epsilon. Epsilon must be positive.
func WithinEpsilonOf(a, epsilon float64) bool {
	return math.Abs(a) < epsilon
}
