package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInterval parses value and returns an Interval.
//
// Supported formats:
//   - [low,up]
//   - N (shorthand for the singleton [N,N])
//   - [] (the empty interval)
//
// Spaces around the brackets, the comma, and the bounds are ignored. Bounds
// accept anything strconv.ParseFloat does, including "inf" and "-inf".
func ParseInterval(value string) (Interval, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return Empty, fmt.Errorf("empty interval")
	}
	if s == "[]" {
		return Empty, nil
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := s[1 : len(s)-1]
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return Empty, fmt.Errorf("invalid interval syntax: %s", value)
		}
		low, err := parseBound(parts[0])
		if err != nil {
			return Empty, fmt.Errorf("invalid lower bound in %q: %w", value, err)
		}
		up, err := parseBound(parts[1])
		if err != nil {
			return Empty, fmt.Errorf("invalid upper bound in %q: %w", value, err)
		}
		return Interval{Low: low, Up: up}, nil
	}

	// bare scalar
	x, err := parseBound(s)
	if err != nil {
		return Empty, fmt.Errorf("unrecognized interval format: %s", value)
	}
	return Interval{Low: x, Up: x}, nil
}

func parseBound(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty bound")
	}
	return strconv.ParseFloat(tok, 64)
}

// ParseSet parses a ";"-separated list of interval literals and unions them
// into a set. Empty elements (from a trailing or doubled separator) are
// skipped, so "[1,2];" and "[1,2]" parse alike.
func ParseSet(value string) (*IntervalSet, error) {
	set := NewIntervalSet()
	for _, elem := range strings.Split(value, ";") {
		if strings.TrimSpace(elem) == "" {
			continue
		}
		iv, err := ParseInterval(elem)
		if err != nil {
			return nil, err
		}
		set.Union(iv)
	}
	return set, nil
}
