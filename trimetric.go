// A triangle validation and measurement package for Go.
//
// This package takes three points in the plane, checks that they really
// form a triangle (no duplicate vertices, no collinear triples, no
// inequality violations), and derives the classical catalog of metrics
// from them: side lengths, angles, area, the five notable centers, the
// associated radii, and the cevian lengths.
//
// The root package is a thin facade. The full API, including the error
// union for rejected input, lives in the geometry subpackage; report and
// render turn a Summary into terminal text and PNG drawings.
package trimetric

import "trimetric/geometry"

type Point = geometry.Point
type Triangle = geometry.Triangle
type Summary = geometry.Summary

// InputError is the closed union of every rejection the pipeline can
// produce, from parsing through validation.
type InputError = geometry.InputError

// ParsePoint reads "x, y", with or without surrounding parentheses.
func ParsePoint(raw string) (Point, error) {
	return geometry.ParsePoint(raw)
}

// NewTriangle validates three points and returns the triangle they form.
func NewTriangle(a, b, c Point) (Triangle, error) {
	return geometry.NewTriangle(a, b, c)
}

// Analyze validates three points and derives the full summary in one call.
func Analyze(a, b, c Point) (Summary, error) {
	tri, err := geometry.NewTriangle(a, b, c)
	if err != nil {
		return Summary{}, err
	}
	return tri.Summarize(), nil
}
