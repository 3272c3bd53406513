package geometry

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParsePoint reads a point from text of the form "x, y". Whitespace around
// the input and around each component is ignored, and one level of enclosing
// parentheses is allowed so that the output of Point.String round-trips.
// Components may use anything strconv.ParseFloat understands, including
// scientific notation.
//
// This is the only layer that rejects non-finite values. Once a Point
// exists, everything downstream may assume both coordinates are finite.
func ParsePoint(input string) (Point, error) {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		trimmed = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	}
	if trimmed == "" {
		return Point{}, &FormatError{Got: "", Example: "1.0,2.0"}
	}

	parts := strings.Split(trimmed, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return Point{}, &TooFewPointsError{Got: len(parts), Expected: 2}
	}
	if len(parts) > 2 {
		return Point{}, &TooManyPointsError{Got: len(parts), Expected: 2}
	}

	x, err := parseCoord(parts[0], "x", "1.0")
	if err != nil {
		return Point{}, err
	}
	y, err := parseCoord(parts[1], "y", "2.0")
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// parseCoord parses one coordinate and insists the result is finite.
func parseCoord(raw, label, example string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &FormatError{Got: raw, Example: label + ": a valid decimal value e.g. " + example}
	}
	// A range error saturates to ±Inf rather than failing, so values like
	// "1e400" fall through to the infinity rejection below and get the more
	// useful message.
	if math.IsNaN(v) {
		return 0, &FormatError{Got: raw, Example: label + ": a finite decimal value (NaN is not allowed)"}
	}
	if math.IsInf(v, 0) {
		return 0, &FormatError{Got: raw, Example: label + ": a finite decimal value (infinity is not allowed)"}
	}
	return v, nil
}
