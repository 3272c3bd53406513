// Package geometry validates triples of 2D points and derives the full
// geometry of the triangle they span: side lengths, interior angles,
// classifications, the five notable centers, radii, medians, altitudes and
// angle bisectors.
//
// Everything in this package is a pure function over small value types, so
// any of it can be called from multiple goroutines without locking. The only
// entry points that can fail are parsing and triangle construction, and both
// report failures through the closed error set in errors.go.
package geometry

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Point is a 2D point, or interchangeably a 2D vector. It is a plain
// comparable value; equality is exact float64 equality, which means two
// points a hair's width apart are distinct. That is deliberate: the
// duplicate check in NewTriangle wants to catch the "typed the same point
// twice" error class, and near-coincident points are left for the
// collinearity and inequality checks to reject.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p − q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddScalar adds s to both components.
func (p Point) AddScalar(s float64) Point {
	return Point{X: p.X + s, Y: p.Y + s}
}

// SubScalar subtracts s from both components.
func (p Point) SubScalar(s float64) Point {
	return Point{X: p.X - s, Y: p.Y - s}
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by s. Division by zero follows IEEE rules
// and produces infinities or NaN; it is not guarded here because parsing
// already refuses to construct non-finite points, and every divisor used by
// this package is nonzero for a validated triangle.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of p and q as 2D vectors.
//
// The fused multiply-add keeps the intermediate product at full precision,
// which matters once the triangle gets thin enough that the two terms nearly
// cancel. Dot, Cross and LengthSq all keep the same fma(a, b, c±d) shape for
// that reason.
func (p Point) Dot(q Point) float64 {
	return math.FMA(p.X, q.X, p.Y*q.Y)
}

// Cross returns the 2D cross product of p and q, i.e. the z component of
// the 3D cross product. Its sign encodes orientation and its magnitude is
// twice the area of the triangle spanned by the two vectors.
func (p Point) Cross(q Point) float64 {
	return math.FMA(p.X, q.Y, -(p.Y * q.X))
}

// LengthSq returns the squared Euclidean length of p as a vector.
func (p Point) LengthSq() float64 {
	return math.FMA(p.X, p.X, p.Y*p.Y)
}

// DistanceTo returns the Euclidean distance between p and q. math.Hypot
// avoids the overflow a naive sqrt(dx²+dy²) hits around 1e154.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Hash returns a 64-bit hash consistent with ==. Negative zero is
// normalized to positive zero first: IEEE says -0.0 == 0.0, so the two must
// hash alike even though their bit patterns differ. Go's built-in maps
// already treat a Point key this way; Hash exists for external hashed
// containers that take a user hash.
func (p Point) Hash() uint64 {
	x, y := p.X, p.Y
	if x == 0 {
		x = 0
	}
	if y == 0 {
		y = 0
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(x))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(y))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

// String renders the point as "(x, y)". ParsePoint accepts this form back,
// so String is also the point's serialization.
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
