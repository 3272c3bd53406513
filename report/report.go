// Package report renders a geometry.Summary as the boxed text block the
// command line tool prints. Layout is fixed width: a 22 column right
// aligned label gutter, box drawing characters down the left edge, and a
// 60 column rule above and below. Color is optional and rides on top of
// the same layout, so the report diffs cleanly with color on or off.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/logrusorgru/aurora"

	"trimetric/geometry"
)

const labelWidth = 22

// eulerResidualMax is the largest |cross(OG, OH)| the verification line
// accepts before calling the computed centers inconsistent. The three
// centers are collinear by construction, so anything above this means a
// real numeric problem, not ordinary round-off.
const eulerResidualMax = 1e-6

// Renderer formats summaries. The zero value is not usable; construct with
// New, which decides whether ANSI color is emitted.
type Renderer struct {
	au aurora.Aurora
}

func New(color bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(color)}
}

// Render returns the full summary block. The string starts and ends with a
// horizontal rule and carries no trailing newline.
func (r *Renderer) Render(s geometry.Summary) string {
	var b strings.Builder
	sep := strings.Repeat("─", 60)

	row := func(label, value string) {
		fmt.Fprintf(&b, "│  %*s  %s\n", labelWidth, label, value)
	}
	section := func(prefix, title string) {
		fmt.Fprintf(&b, "%s %s\n", prefix, r.au.Cyan(title))
	}
	gap := func() {
		b.WriteString("│\n")
	}

	fmt.Fprintf(&b, "\n%s\n", sep)
	fmt.Fprintf(&b, "           %s\n", r.au.Bold("▲  TRIANGLE SUMMARY  ▲"))
	fmt.Fprintf(&b, "%s\n", sep)

	b.WriteString("\n")
	section("┌─", "Vertices")
	row("Vertex A:", s.VertexA.String())
	row("Vertex B:", s.VertexB.String())
	row("Vertex C:", s.VertexC.String())

	gap()
	section("├─", "Side Lengths (opposite vertex)")
	row("Side a:", fmt.Sprintf("%.10f  (BC)", s.SideA))
	row("Side b:", fmt.Sprintf("%.10f  (AC)", s.SideB))
	row("Side c:", fmt.Sprintf("%.10f  (AB)", s.SideC))

	gap()
	section("├─", "Angles")
	row("Angle A:", fmt.Sprintf("%.10f rad  (%.6f°)", s.AngleA, geometry.Degrees(s.AngleA)))
	row("Angle B:", fmt.Sprintf("%.10f rad  (%.6f°)", s.AngleB, geometry.Degrees(s.AngleB)))
	row("Angle C:", fmt.Sprintf("%.10f rad  (%.6f°)", s.AngleC, geometry.Degrees(s.AngleC)))
	row("Sum of angles:", fmt.Sprintf("%.10f°", geometry.Degrees(s.AngleA+s.AngleB+s.AngleC)))

	gap()
	section("├─", "Classification")
	row("By sides:", r.au.Bold(s.SideClass.String()).String())
	row("By angles:", r.au.Bold(s.AngleClass.String()).String())

	gap()
	section("├─", "Core Metrics")
	row("Perimeter:", fmt.Sprintf("%.10f", s.Perimeter))
	row("Semi-perimeter:", fmt.Sprintf("%.10f", s.SemiPerimeter))
	row("Area:", fmt.Sprintf("%.10f", s.Area))

	gap()
	section("├─", "Notable Centres")
	row("Centroid:", formatCenter(s.Centroid))
	row("Incenter:", formatCenter(s.Incenter))
	row("Circumcenter:", formatCenter(s.Circumcenter))
	row("Orthocenter:", formatCenter(s.Orthocenter))
	row("Nine-point center:", formatCenter(s.NinePointCenter))

	gap()
	section("├─", "Radii")
	row("Inradius:", fmt.Sprintf("%.10f", s.Inradius))
	row("Circumradius:", fmt.Sprintf("%.10f", s.Circumradius))
	row("Nine-point radius:", fmt.Sprintf("%.10f", s.NinePointRadius))

	gap()
	section("├─", "Medians")
	row("m_A:", fmt.Sprintf("%.10f", s.MedianA))
	row("m_B:", fmt.Sprintf("%.10f", s.MedianB))
	row("m_C:", fmt.Sprintf("%.10f", s.MedianC))

	gap()
	section("├─", "Altitudes")
	row("h_A:", fmt.Sprintf("%.10f", s.AltitudeA))
	row("h_B:", fmt.Sprintf("%.10f", s.AltitudeB))
	row("h_C:", fmt.Sprintf("%.10f", s.AltitudeC))

	gap()
	section("├─", "Angle Bisectors")
	row("t_A:", fmt.Sprintf("%.10f", s.BisectorA))
	row("t_B:", fmt.Sprintf("%.10f", s.BisectorB))
	row("t_C:", fmt.Sprintf("%.10f", s.BisectorC))

	gap()
	section("└─", "Euler Line Verification")
	og := s.Centroid.Sub(s.Circumcenter)
	oh := s.Orthocenter.Sub(s.Circumcenter)
	if residual := math.Abs(og.Cross(oh)); residual < eulerResidualMax {
		fmt.Fprintf(&b, "│  %s\n", r.au.Green("Circumcenter, Centroid, and Orthocenter are collinear ✓"))
	} else {
		fmt.Fprintf(&b, "│  %s\n", r.au.Red(fmt.Sprintf("Error: Euler line residual is large: %.2e", residual)))
	}

	fmt.Fprintf(&b, "\n%s", sep)
	return b.String()
}

func formatCenter(p geometry.Point) string {
	return fmt.Sprintf("(%.8f, %.8f)", p.X, p.Y)
}
