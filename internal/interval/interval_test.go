package interval

import (
	"math"
	"testing"
)

func TestInterval_Predicates(t *testing.T) {
	cases := []struct {
		name              string
		iv                Interval
		isEmpty, isSingle bool
		singleWidth       float64
		isSingleWithin    bool
	}{
		{"proper", Interval{Low: 1, Up: 3}, false, false, 0.5, false},
		{"singleton", Interval{Low: 2, Up: 2}, false, true, 0, true},
		{"empty_sentinel", Empty, true, false, 0, false},
		{"inverted", Interval{Low: 3, Up: 1}, true, false, 0, false},
		{"near_singleton", Interval{Low: 1, Up: 1.3}, false, false, 0.5, true},
	}

	for _, tc := range cases {
		if got := tc.iv.IsEmpty(); got != tc.isEmpty {
			t.Fatalf("%s: IsEmpty() = %v, want %v", tc.name, got, tc.isEmpty)
		}
		if got := tc.iv.IsSingle(); got != tc.isSingle {
			t.Fatalf("%s: IsSingle() = %v, want %v", tc.name, got, tc.isSingle)
		}
		if got := tc.iv.IsSingleWithin(tc.singleWidth); got != tc.isSingleWithin {
			t.Fatalf("%s: IsSingleWithin(%v) = %v, want %v", tc.name, tc.singleWidth, got, tc.isSingleWithin)
		}
	}
}

func TestInterval_Membership(t *testing.T) {
	iv := Interval{Low: 1, Up: 3}
	cases := []struct {
		name           string
		x              float64
		cc, co, oc, oo bool
	}{
		{"interior", 2, true, true, true, true},
		{"lower_bound", 1, true, true, false, false},
		{"upper_bound", 3, true, false, true, false},
		{"below", 0.5, false, false, false, false},
		{"above", 3.5, false, false, false, false},
	}

	for _, tc := range cases {
		if got := iv.In(tc.x); got != tc.cc {
			t.Fatalf("%s: In(%v) = %v, want %v", tc.name, tc.x, got, tc.cc)
		}
		if got := iv.InCC(tc.x); got != tc.cc {
			t.Fatalf("%s: InCC(%v) = %v, want %v", tc.name, tc.x, got, tc.cc)
		}
		if got := iv.InCO(tc.x); got != tc.co {
			t.Fatalf("%s: InCO(%v) = %v, want %v", tc.name, tc.x, got, tc.co)
		}
		if got := iv.InOC(tc.x); got != tc.oc {
			t.Fatalf("%s: InOC(%v) = %v, want %v", tc.name, tc.x, got, tc.oc)
		}
		if got := iv.InOO(tc.x); got != tc.oo {
			t.Fatalf("%s: InOO(%v) = %v, want %v", tc.name, tc.x, got, tc.oo)
		}
	}
}

func TestInterval_AlmostIn(t *testing.T) {
	iv := Interval{Low: 1, Up: 2}
	justAbove := 2.0 + 1.0e-14 // within Precision13 of the upper bound
	justBelowLow := 1.0 - 1.0e-14

	cases := []struct {
		name             string
		x                float64
		lbClose, ubClose bool
		exp              bool
	}{
		{"interior_any_bounds", 1.5, false, false, true},
		{"near_upper_closed", justAbove, true, true, true},
		{"near_upper_open", justAbove, true, false, false},
		{"near_lower_closed", justBelowLow, true, true, true},
		{"near_lower_open", justBelowLow, false, true, false},
		{"exact_upper_open", 2.0, true, false, false},
		{"interior_near_bound_open", 2.0 - 1.0e-14, true, false, false},
		{"far_outside", 3.0, true, true, false},
	}

	for _, tc := range cases {
		if got := iv.AlmostIn(tc.x, tc.lbClose, tc.ubClose, Precision13); got != tc.exp {
			t.Fatalf("%s: AlmostIn(%v, %v, %v) = %v, want %v", tc.name, tc.x, tc.lbClose, tc.ubClose, got, tc.exp)
		}
	}
}

func TestInterval_Overlap(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		exp  bool
	}{
		{"proper_overlap", Interval{Low: 1, Up: 3}, Interval{Low: 2, Up: 4}, true},
		{"containment", Interval{Low: 1, Up: 4}, Interval{Low: 2, Up: 3}, true},
		{"identical", Interval{Low: 1, Up: 2}, Interval{Low: 1, Up: 2}, true},
		{"shared_endpoint", Interval{Low: 1, Up: 2}, Interval{Low: 2, Up: 3}, false},
		{"disjoint", Interval{Low: 1, Up: 2}, Interval{Low: 3, Up: 4}, false},
		{"empty_operand", Interval{Low: 1, Up: 2}, Empty, false},
		{"singleton_inside", Interval{Low: 2, Up: 2}, Interval{Low: 1, Up: 3}, true},
	}

	for _, tc := range cases {
		if got := tc.a.Overlap(tc.b); got != tc.exp {
			t.Fatalf("%s: Overlap = %v, want %v", tc.name, got, tc.exp)
		}
		if got := tc.b.Overlap(tc.a); got != tc.exp {
			t.Fatalf("%s: Overlap = %v, want %v (swapped)", tc.name, got, tc.exp)
		}
	}
}

func TestInterval_Intersect(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		exp  Interval
	}{
		{"proper_overlap", Interval{Low: 1, Up: 3}, Interval{Low: 2, Up: 4}, Interval{Low: 2, Up: 3}},
		{"identical", Interval{Low: 1, Up: 2}, Interval{Low: 1, Up: 2}, Interval{Low: 1, Up: 2}},
		{"shared_endpoint_empty", Interval{Low: 1, Up: 2}, Interval{Low: 2, Up: 3}, Empty},
		{"disjoint_empty", Interval{Low: 1, Up: 2}, Interval{Low: 3, Up: 4}, Empty},
		{"containment", Interval{Low: 0, Up: 10}, Interval{Low: 4, Up: 5}, Interval{Low: 4, Up: 5}},
	}

	for _, tc := range cases {
		got := tc.a.Intersect(tc.b)
		if got.IsEmpty() != tc.exp.IsEmpty() || (!got.IsEmpty() && !got.Equal(tc.exp)) {
			t.Fatalf("%s: Intersect = %v, want %v", tc.name, got, tc.exp)
		}
	}
}

func TestInterval_IncludesShiftWidth(t *testing.T) {
	outer := Interval{Low: 0, Up: 10}
	inner := Interval{Low: 2, Up: 3}
	if !outer.Includes(inner) {
		t.Fatalf("Includes should hold for a nested interval")
	}
	if inner.Includes(outer) {
		t.Fatalf("Includes should not hold for an enclosing interval")
	}
	if got := inner.Shift(1.5); !got.Equal(Interval{Low: 3.5, Up: 4.5}) {
		t.Fatalf("Shift(1.5) = %v", got)
	}
	if got := inner.Width(); got != 1 {
		t.Fatalf("Width() = %v, want 1", got)
	}
	if got := (Interval{Low: math.Inf(-1), Up: math.Inf(1)}).Width(); !math.IsInf(got, 1) {
		t.Fatalf("Width of the full line = %v, want +Inf", got)
	}
}
