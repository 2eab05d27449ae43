package interval

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits used by String.
const DefaultPrecision = 6

// FmPrecision renders v with the given number of fractional digits,
// including trailing zeros. NaN renders as "NaN" and the infinities as
// "infty" and "-infty". A negative value that rounds to zero at the given
// precision is scrubbed to positive zero so "-0.000000" never appears.
// A precision outside 0..16 falls back to 0.
func FmPrecision(v float64, precision int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "infty"
	}
	if math.IsInf(v, -1) {
		return "-infty"
	}
	if precision < 0 || precision > 16 {
		precision = 0
	}
	if v == 0 {
		v = 0 // normalize -0.0
	}
	if v < 0 && math.Ceil(v*math.Pow(10, float64(precision+1))-0.5) == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Format renders the interval as "[low, up]" with the given precision, or
// "[]" when the interval is empty.
func (i Interval) Format(precision int) string {
	if i.IsEmpty() {
		return "[]"
	}
	return "[" + FmPrecision(i.Low, precision) + ", " + FmPrecision(i.Up, precision) + "]"
}

// String renders the interval with DefaultPrecision digits.
func (i Interval) String() string {
	return i.Format(DefaultPrecision)
}

// ToPVS renders the interval as a PVS record with the given precision.
func (i Interval) ToPVS(precision int) string {
	return "(# lb:= " + FmPrecision(i.Low, precision) + ", ub:= " + FmPrecision(i.Up, precision) + " #)"
}

// Format renders the set as "Interval [i]: [low, up]" entries joined by
// ", ". An empty set renders as the empty string.
func (s *IntervalSet) Format(precision int) string {
	var sb strings.Builder
	for i, iv := range s.r {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("Interval [")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("]: ")
		sb.WriteString(iv.Format(precision))
	}
	return sb.String()
}

// String renders the set with DefaultPrecision digits.
func (s *IntervalSet) String() string {
	return s.Format(DefaultPrecision)
}
