package geometry

import "math"

const (
	// CollinearTolerance is the absolute cross-product magnitude below which
	// three points count as collinear. The threshold is absolute, not scaled
	// to the coordinates, so a huge nearly-flat triangle can still pass while
	// a tiny legitimate one (side lengths around 1e-5 and below) gets
	// rejected. Both edges of that trade-off are part of the tool's contract
	// now; don't make this relative without versioning the behavior.
	CollinearTolerance = 1e-10

	// absTolerance and relTolerance drive ApproxEqual. Side and angle
	// classification both hang off it, so these are the knobs that decide
	// when a nearly-isosceles triangle counts as isosceles.
	absTolerance = 1e-9
	relTolerance = 1e-9
)

// ApproxEqual reports whether two values match within a combined
// absolute/relative tolerance: either the difference is tiny outright, or it
// is tiny relative to the larger magnitude. The absolute arm handles values
// near zero, where a relative test would demand exact equality; the
// relative arm handles large values, where 1e-9 of slack is far below one
// ulp.
func ApproxEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	return diff <= absTolerance || diff <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// SideClassification groups triangles by how many side lengths match.
type SideClassification int

const (
	Equilateral SideClassification = iota
	Isosceles
	Scalene
)

func (c SideClassification) String() string {
	switch c {
	case Equilateral:
		return "Equilateral"
	case Isosceles:
		return "Isosceles"
	case Scalene:
		return "Scalene"
	}
	return "Unknown"
}

// AngleClassification groups triangles by their largest interior angle.
type AngleClassification int

const (
	Acute AngleClassification = iota
	Right
	Obtuse
)

func (c AngleClassification) String() string {
	switch c {
	case Acute:
		return "Acute"
	case Right:
		return "Right"
	case Obtuse:
		return "Obtuse"
	}
	return "Unknown"
}

// ClassifySides buckets a triangle by its side lengths, using ApproxEqual
// so that floating error in the distance computations can't demote an
// equilateral triangle to isosceles or isosceles to scalene.
func ClassifySides(sideA, sideB, sideC float64) SideClassification {
	ab := ApproxEqual(sideA, sideB)
	bc := ApproxEqual(sideB, sideC)
	ac := ApproxEqual(sideA, sideC)
	switch {
	case ab && bc && ac:
		return Equilateral
	case ab || bc || ac:
		return Isosceles
	default:
		return Scalene
	}
}

// ClassifyAngles buckets a triangle by its interior angles, given in
// radians. The right-angle test runs first: an angle that is π/2 up to
// tolerance classifies as Right even when round-off nudged it fractionally
// past π/2, where the plain comparison would call it obtuse.
func ClassifyAngles(angleA, angleB, angleC float64) AngleClassification {
	halfPi := math.Pi / 2
	if ApproxEqual(angleA, halfPi) || ApproxEqual(angleB, halfPi) || ApproxEqual(angleC, halfPi) {
		return Right
	}
	if angleA > halfPi || angleB > halfPi || angleC > halfPi {
		return Obtuse
	}
	return Acute
}
