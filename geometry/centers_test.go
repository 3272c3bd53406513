package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The 3-4-5 right triangle with the right angle at the origin. Every center
// has a clean closed form here, which makes it the workhorse fixture.
var (
	rightA = Pt(0, 0)
	rightB = Pt(4, 0)
	rightC = Pt(0, 3)
)

func TestCentroid(t *testing.T) {
	assertPointApproxEqual(t, Pt(4.0/3.0, 1), Centroid(rightA, rightB, rightC))
}

func TestCircumcenter(t *testing.T) {
	// For a right triangle the circumcenter is the hypotenuse midpoint.
	o := Circumcenter(rightA, rightB, rightC)
	assertPointApproxEqual(t, Pt(2, 1.5), o)

	t.Run("equidistant from all vertices", func(t *testing.T) {
		a, b, c := Pt(-1, 2), Pt(5, 0.5), Pt(2, 7)
		o := Circumcenter(a, b, c)
		ra := o.DistanceTo(a)
		assert.InDelta(t, ra, o.DistanceTo(b), 1e-9)
		assert.InDelta(t, ra, o.DistanceTo(c), 1e-9)
	})
}

func TestIncenter(t *testing.T) {
	// Side weights: a = BC = 5, b = AC = 3, c = AB = 4.
	i := Incenter(rightA, rightB, rightC, 5, 3, 4)
	assertPointApproxEqual(t, Pt(1, 1), i)

	t.Run("equidistant from all sides", func(t *testing.T) {
		a, b, c := Pt(-1, 2), Pt(5, 0.5), Pt(2, 7)
		sideA, sideB, sideC := sides(a, b, c)
		i := Incenter(a, b, c, sideA, sideB, sideC)
		da := distanceToLine(i, b, c)
		assert.InDelta(t, da, distanceToLine(i, a, c), 1e-9)
		assert.InDelta(t, da, distanceToLine(i, a, b), 1e-9)
	})
}

func TestOrthocenter(t *testing.T) {
	// For a right triangle the orthocenter is the right-angle vertex.
	o := Circumcenter(rightA, rightB, rightC)
	h := Orthocenter(rightA, rightB, rightC, o)
	assertPointApproxEqual(t, Pt(0, 0), h)

	t.Run("altitudes are perpendicular to opposite sides", func(t *testing.T) {
		// Validates the Euler relation against the defining property rather
		// than against itself: the segment from each vertex to the
		// orthocenter must be perpendicular to the opposite side.
		a, b, c := Pt(-1, 2), Pt(5, 0.5), Pt(2, 7)
		h := Orthocenter(a, b, c, Circumcenter(a, b, c))
		assert.InDelta(t, 0, h.Sub(a).Dot(c.Sub(b)), 1e-9)
		assert.InDelta(t, 0, h.Sub(b).Dot(c.Sub(a)), 1e-9)
		assert.InDelta(t, 0, h.Sub(c).Dot(b.Sub(a)), 1e-9)
	})
}

func TestNinePointCenter(t *testing.T) {
	o := Circumcenter(rightA, rightB, rightC)
	h := Orthocenter(rightA, rightB, rightC, o)
	n := NinePointCenter(o, h)
	assertPointApproxEqual(t, Pt(1, 0.75), n)

	t.Run("passes through the side midpoints", func(t *testing.T) {
		// The nine-point circle's radius is half the circumradius, and the
		// three side midpoints lie on it.
		a, b, c := Pt(-1, 2), Pt(5, 0.5), Pt(2, 7)
		o := Circumcenter(a, b, c)
		h := Orthocenter(a, b, c, o)
		n := NinePointCenter(o, h)
		r := o.DistanceTo(a) / 2
		assert.InDelta(t, r, n.DistanceTo(midpoint(a, b)), 1e-9)
		assert.InDelta(t, r, n.DistanceTo(midpoint(b, c)), 1e-9)
		assert.InDelta(t, r, n.DistanceTo(midpoint(a, c)), 1e-9)
	})
}

func TestEquilateralCentersCoincide(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(1, 0)
	c := Pt(0.5, math.Sqrt(3)/2)
	sideA, sideB, sideC := sides(a, b, c)

	g := Centroid(a, b, c)
	o := Circumcenter(a, b, c)
	i := Incenter(a, b, c, sideA, sideB, sideC)
	h := Orthocenter(a, b, c, o)
	n := NinePointCenter(o, h)

	assertPointApproxEqual(t, g, o, "circumcenter")
	assertPointApproxEqual(t, g, i, "incenter")
	assertPointApproxEqual(t, g, h, "orthocenter")
	assertPointApproxEqual(t, g, n, "nine-point center")
}

func TestAngleFromSides(t *testing.T) {
	// Angles of the 3-4-5 triangle.
	assert.InDelta(t, math.Pi/2, AngleFromSides(5, 3, 4), 1e-12)
	assert.InDelta(t, math.Acos(0.8), AngleFromSides(3, 5, 4), 1e-12)
	assert.InDelta(t, math.Acos(0.6), AngleFromSides(4, 5, 3), 1e-12)

	t.Run("clamped at the flat extremes", func(t *testing.T) {
		// Without clamping, round-off can push the cosine a hair outside
		// [-1, 1] and Acos returns NaN.
		assert.Equal(t, math.Pi, AngleFromSides(2, 1, 1))
		assert.Equal(t, 0.0, AngleFromSides(0, 1, 1))
		assert.False(t, math.IsNaN(AngleFromSides(1e-9, 1, 1)))
	})

	t.Run("angles sum to pi", func(t *testing.T) {
		a, b, c := Pt(-1, 2), Pt(5, 0.5), Pt(2, 7)
		sideA, sideB, sideC := sides(a, b, c)
		sum := AngleFromSides(sideA, sideB, sideC) +
			AngleFromSides(sideB, sideA, sideC) +
			AngleFromSides(sideC, sideA, sideB)
		assert.InDelta(t, math.Pi, sum, 1e-9)
	})
}

func TestMedianLength(t *testing.T) {
	// The median to the hypotenuse of a right triangle is half the
	// hypotenuse.
	assert.InDelta(t, 2.5, MedianLength(5, 3, 4), 1e-12)
	assert.InDelta(t, math.Sqrt(73)/2, MedianLength(3, 5, 4), 1e-12)
	assert.InDelta(t, math.Sqrt(52)/2, MedianLength(4, 5, 3), 1e-12)

	t.Run("flat input does not produce NaN", func(t *testing.T) {
		assert.Equal(t, 0.0, MedianLength(2, 1, 1))
	})
}

func TestAltitudeLength(t *testing.T) {
	// 3-4-5 triangle, area 6.
	assert.InDelta(t, 2.4, AltitudeLength(6, 5), 1e-12)
	assert.InDelta(t, 4.0, AltitudeLength(6, 3), 1e-12)
	assert.InDelta(t, 3.0, AltitudeLength(6, 4), 1e-12)
}

func TestBisectorLength(t *testing.T) {
	// Bisector from the right angle of the 3-4-5 triangle: adjacent sides
	// 3 and 4, angle π/2, known closed form 12√2/7.
	got := BisectorLength(3, 4, math.Pi/2)
	assert.InDelta(t, 12*math.Sqrt(2)/7, got, 1e-12)
}

func TestDegrees(t *testing.T) {
	assert.InDelta(t, 180, Degrees(math.Pi), 1e-12)
	assert.InDelta(t, 90, Degrees(math.Pi/2), 1e-12)
	assert.InDelta(t, 0, Degrees(0), 1e-12)
}

// Helpers

func midpoint(p, q Point) Point {
	return p.Add(q).Div(2)
}

func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	return math.Abs(ab.Cross(p.Sub(a))) / a.DistanceTo(b)
}
