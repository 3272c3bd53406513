package geometry

import (
	"fmt"
	"math"
)

// Triangle is an ordered triple of vertices. NewTriangle runs the full
// validation pipeline before handing one out, and nothing downstream
// re-checks degeneracy. The fields are exported, so a struct literal can
// sidestep validation; the derivations still compute from the raw
// coordinates, which matters for slivers thinner than the validator
// accepts.
type Triangle struct {
	A, B, C Point
}

// NewTriangle validates three points and returns the triangle they form.
// The checks run in a fixed order so the reported error is deterministic:
// exact duplicates first, then collinearity, then the triangle inequality
// over the computed side lengths. The returned error is always one of the
// InputError variants.
func NewTriangle(a, b, c Point) (Triangle, error) {
	if err := CheckDuplicates(a, b, c); err != nil {
		return Triangle{}, err
	}
	if err := CheckCollinear(a, b, c); err != nil {
		return Triangle{}, err
	}
	sideA, sideB, sideC := sides(a, b, c)
	if err := CheckTriangleInequality(sideA, sideB, sideC); err != nil {
		return Triangle{}, err
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// CheckDuplicates rejects a triple in which any two points are exactly
// equal, comparing the pairs in the order AB, BC, AC and reporting the
// first hit. Exact equality is the right test here: a pair of points
// differing by 1e-18 is not the "entered the same point twice" mistake this
// check exists for, and such a pair still gets rejected downstream by the
// collinearity or inequality checks.
func CheckDuplicates(a, b, c Point) error {
	if a == b {
		return &DuplicatePointError{Point: a}
	}
	if b == c {
		return &DuplicatePointError{Point: b}
	}
	if a == c {
		return &DuplicatePointError{Point: a}
	}
	return nil
}

// CheckCollinear rejects three points whose spanned parallelogram area
// |cross(B−A, C−A)| falls below CollinearTolerance.
func CheckCollinear(a, b, c Point) error {
	ab := b.Sub(a)
	ac := c.Sub(a)
	if math.Abs(ab.Cross(ac)) < CollinearTolerance {
		return &CollinearError{A: a, B: b, C: c}
	}
	return nil
}

// CheckTriangleInequality rejects side lengths where any side reaches or
// exceeds the sum of the other two. The comparison is strict, so the flat
// triangle with a + b == c fails as well.
func CheckTriangleInequality(sideA, sideB, sideC float64) error {
	if sideA+sideB > sideC && sideA+sideC > sideB && sideB+sideC > sideA {
		return nil
	}
	return &InequalityError{SideA: sideA, SideB: sideB, SideC: sideC}
}

// Sides returns the three side lengths under the opposite-vertex
// convention: side a is the edge BC opposite vertex A, side b is AC, and
// side c is AB. Every derived quantity in this package (medians, altitudes,
// bisectors, angles) indexes sides the same way.
func (t Triangle) Sides() (sideA, sideB, sideC float64) {
	return sides(t.A, t.B, t.C)
}

func sides(a, b, c Point) (sideA, sideB, sideC float64) {
	return b.DistanceTo(c), a.DistanceTo(c), a.DistanceTo(b)
}

// String renders the triangle as "Triangle[(x, y), (x, y), (x, y)]".
func (t Triangle) String() string {
	return fmt.Sprintf("Triangle[%v, %v, %v]", t.A, t.B, t.C)
}
