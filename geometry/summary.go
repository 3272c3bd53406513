package geometry

import "math"

// Summary is an immutable snapshot of everything this package can derive
// from one triangle. It is produced in a single pass by Summarize and holds
// plain values only, so it can be copied, shared between goroutines, and
// re-derived at will. Side/angle/median/altitude/bisector A/B/C fields all
// follow the opposite-vertex convention described on Triangle.Sides.
type Summary struct {
	VertexA, VertexB, VertexC Point

	SideA, SideB, SideC float64

	// Interior angles at each vertex, in radians. They always sum to π
	// within floating tolerance for a validated triangle.
	AngleA, AngleB, AngleC float64

	Perimeter     float64
	SemiPerimeter float64
	Area          float64

	SideClass  SideClassification
	AngleClass AngleClassification

	Centroid        Point
	Incenter        Point
	Circumcenter    Point
	Orthocenter     Point
	NinePointCenter Point

	Inradius        float64
	Circumradius    float64
	NinePointRadius float64

	MedianA, MedianB, MedianC       float64
	AltitudeA, AltitudeB, AltitudeC float64
	BisectorA, BisectorB, BisectorC float64
}

// Summarize derives the full summary for the triangle.
func (t Triangle) Summarize() Summary {
	a, b, c := t.A, t.B, t.C

	sideA, sideB, sideC := t.Sides()
	perimeter := sideA + sideB + sideC
	semi := perimeter / 2

	// Half the cross product of two edge vectors, not Heron's formula.
	// Heron's loses most of its digits on needle triangles (the s − side
	// factors nearly cancel); the cross product form keeps the area
	// accurate down to the collinearity floor.
	area := 0.5 * math.Abs(b.Sub(a).Cross(c.Sub(a)))

	angleA := AngleFromSides(sideA, sideB, sideC)
	angleB := AngleFromSides(sideB, sideA, sideC)
	angleC := AngleFromSides(sideC, sideA, sideB)

	circumcenter := Circumcenter(a, b, c)
	orthocenter := Orthocenter(a, b, c, circumcenter)
	circumradius := (sideA * sideB * sideC) / (4 * area)

	return Summary{
		VertexA: a,
		VertexB: b,
		VertexC: c,

		SideA: sideA,
		SideB: sideB,
		SideC: sideC,

		AngleA: angleA,
		AngleB: angleB,
		AngleC: angleC,

		Perimeter:     perimeter,
		SemiPerimeter: semi,
		Area:          area,

		SideClass:  ClassifySides(sideA, sideB, sideC),
		AngleClass: ClassifyAngles(angleA, angleB, angleC),

		Centroid:        Centroid(a, b, c),
		Incenter:        Incenter(a, b, c, sideA, sideB, sideC),
		Circumcenter:    circumcenter,
		Orthocenter:     orthocenter,
		NinePointCenter: NinePointCenter(circumcenter, orthocenter),

		Inradius:        area / semi,
		Circumradius:    circumradius,
		NinePointRadius: circumradius / 2,

		MedianA: MedianLength(sideA, sideB, sideC),
		MedianB: MedianLength(sideB, sideA, sideC),
		MedianC: MedianLength(sideC, sideA, sideB),

		AltitudeA: AltitudeLength(area, sideA),
		AltitudeB: AltitudeLength(area, sideB),
		AltitudeC: AltitudeLength(area, sideC),

		BisectorA: BisectorLength(sideB, sideC, angleA),
		BisectorB: BisectorLength(sideA, sideC, angleB),
		BisectorC: BisectorLength(sideA, sideB, angleC),
	}
}
