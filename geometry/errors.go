package geometry

import "fmt"

// Every way this package can reject input is enumerated here. The variants
// are plain structs carrying the offending values, so callers can render an
// actionable message or match a specific kind with errors.As. Nothing in
// this package panics on bad input, and no partial Triangle or Summary is
// ever returned alongside an error.

// InputError is the union of all rejection kinds. It exists so the set is
// closed: a caller that has handled every type listed below has handled
// everything this package can return.
type InputError interface {
	error

	// This is a dummy method that keeps the union sealed. Only the error
	// types in this file implement it, so a type switch over them is
	// exhaustive and stays exhaustive.
	inputErrorTypeHint()
}

func (*FormatError) inputErrorTypeHint()         {}
func (*TooFewPointsError) inputErrorTypeHint()   {}
func (*TooManyPointsError) inputErrorTypeHint()  {}
func (*DuplicatePointError) inputErrorTypeHint() {}
func (*CollinearError) inputErrorTypeHint()      {}
func (*InequalityError) inputErrorTypeHint()     {}

// FormatError reports a token that could not be read as a coordinate:
// empty input, a non-numeric token, or a value that parsed to NaN or an
// infinity. Example describes what would have been accepted.
type FormatError struct {
	Got     string
	Example string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Invalid point format: got '%s', expected '%s'", e.Got, e.Example)
}

// TooFewPointsError reports an input with fewer comma-separated components
// than a point needs.
type TooFewPointsError struct {
	Got      int
	Expected int
}

func (e *TooFewPointsError) Error() string {
	return fmt.Sprintf("Too few points: got %d, expected %d", e.Got, e.Expected)
}

// TooManyPointsError reports an input with more comma-separated components
// than a point needs.
type TooManyPointsError struct {
	Got      int
	Expected int
}

func (e *TooManyPointsError) Error() string {
	return fmt.Sprintf("Too many points: got %d, expected %d", e.Got, e.Expected)
}

// DuplicatePointError reports that two of the three vertices are exactly
// equal. Point holds the repeated vertex.
type DuplicatePointError struct {
	Point Point
}

func (e *DuplicatePointError) Error() string {
	return fmt.Sprintf("Duplicate point: %v is used more than once", e.Point)
}

// CollinearError reports three vertices that lie on one line, within the
// absolute cross-product threshold CollinearTolerance.
type CollinearError struct {
	A, B, C Point
}

func (e *CollinearError) Error() string {
	return fmt.Sprintf("Points %v, %v, and %v are collinear", e.A, e.B, e.C)
}

// InequalityError reports side lengths that violate the strict triangle
// inequality, including the degenerate case where one side exactly equals
// the sum of the other two.
type InequalityError struct {
	SideA, SideB, SideC float64
}

func (e *InequalityError) Error() string {
	return fmt.Sprintf(
		"Triangle inequality violated: sides %.4f, %.4f, %.4f cannot form a triangle (one side ≥ sum of others)",
		e.SideA, e.SideB, e.SideC)
}
