package geometry

import "math"

// Closed-form derivations for the notable centers and the three families of
// cevian lengths. All of these take either vertices or side lengths from an
// already-validated triangle; none of them guard against degeneracy, because
// NewTriangle made that impossible. The fused multiply-adds mirror the
// hand-balanced evaluation order in Point: each a·b ± c·d determinant is
// computed as fma(a, b, ±(c·d)) to keep one rounding step out of the
// cancellation-prone terms.

// Centroid returns the arithmetic mean of the three vertices, which is also
// where the three medians meet.
func Centroid(a, b, c Point) Point {
	return a.Add(b).Add(c).Div(3)
}

// Circumcenter returns the point equidistant from all three vertices, by
// intersecting the perpendicular bisectors in determinant form. The divisor
// d is twice the signed parallelogram area, which the collinearity check
// has already bounded away from zero.
func Circumcenter(a, b, c Point) Point {
	d := 2 * math.FMA(c.X, a.Y-b.Y, math.FMA(a.X, b.Y-c.Y, b.X*(c.Y-a.Y)))
	aSq := a.LengthSq()
	bSq := b.LengthSq()
	cSq := c.LengthSq()

	ux := math.FMA(cSq, a.Y-b.Y, math.FMA(aSq, b.Y-c.Y, bSq*(c.Y-a.Y))) / d
	uy := math.FMA(cSq, b.X-a.X, math.FMA(aSq, c.X-b.X, bSq*(a.X-c.X))) / d
	return Point{X: ux, Y: uy}
}

// Incenter returns the center of the inscribed circle: each vertex weighted
// by the length of the side opposite it, normalized by the perimeter.
func Incenter(a, b, c Point, sideA, sideB, sideC float64) Point {
	perimeter := sideA + sideB + sideC
	x := math.FMA(sideC, c.X, math.FMA(sideA, a.X, sideB*b.X)) / perimeter
	y := math.FMA(sideC, c.Y, math.FMA(sideA, a.Y, sideB*b.Y)) / perimeter
	return Point{X: x, Y: y}
}

// Orthocenter returns the intersection of the three altitudes, using the
// Euler-line identity H = 3G − 2O instead of intersecting altitudes
// directly. The identity holds exactly for every triangle and reuses the
// circumcenter already in hand, so it is both cheaper and no less accurate
// than a second determinant solve.
func Orthocenter(a, b, c, circumcenter Point) Point {
	g := Centroid(a, b, c)
	return g.Scale(3).Sub(circumcenter.Scale(2))
}

// NinePointCenter returns the midpoint of the circumcenter and orthocenter,
// the center of the circle through the three side midpoints, the three
// altitude feet, and the three midpoints between each vertex and the
// orthocenter.
func NinePointCenter(circumcenter, orthocenter Point) Point {
	return circumcenter.Add(orthocenter).Div(2)
}

// AngleFromSides returns the interior angle (radians) opposite the given
// side, via the law of cosines. The cosine argument is clamped to [−1, 1]:
// for right and extremely obtuse triangles, round-off can push it a few ulp
// outside the legal range, and an unclamped acos would return NaN.
func AngleFromSides(opposite, adj1, adj2 float64) float64 {
	numerator := math.FMA(opposite, -opposite, math.FMA(adj1, adj1, adj2*adj2))
	denominator := 2 * adj1 * adj2
	cos := numerator / denominator
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// MedianLength returns the length of the median to the given side, from
// the standard relation 4m² = 2·adj1² + 2·adj2² − opposite². The radicand
// is floored at zero: for needle triangles it is a difference of nearly
// equal squares and can land fractionally negative.
func MedianLength(opposite, adj1, adj2 float64) float64 {
	radicand := 2*adj1*adj1 + 2*adj2*adj2 - opposite*opposite
	return 0.5 * math.Sqrt(math.Max(radicand, 0))
}

// AltitudeLength returns the length of the altitude to the given side,
// straight from area = side·height/2.
func AltitudeLength(area, opposite float64) float64 {
	return 2 * area / opposite
}

// BisectorLength returns the length of the internal bisector of the angle
// between the two adjacent sides, measured to the opposite side.
func BisectorLength(adj1, adj2, angle float64) float64 {
	return (2 * adj1 * adj2 * math.Cos(angle/2)) / (adj1 + adj2)
}

// Degrees converts radians to degrees. The report layer prints both.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
