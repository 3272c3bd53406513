// Package render draws a summarized triangle to a PNG: the triangle
// itself, its three notable circles, the Euler segment, and labeled
// markers for the vertices and centers. Output is sized to fit a fixed
// target dimension, so huge or tiny coordinates render identically.
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"trimetric/geometry"
)

// Padding around the figure so circle strokes and labels never clip.
const drawPadding = 40

// The long dimension of the drawn figure, before padding.
const targetSize = 720

type labeledPoint struct {
	name string
	p    geometry.Point
}

// Draw renders the summary to a new context. The caller owns the context
// and can composite on it or save it.
func Draw(s geometry.Summary) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	include := func(p geometry.Point, r float64) {
		minX = math.Min(minX, p.X-r)
		minY = math.Min(minY, p.Y-r)
		maxX = math.Max(maxX, p.X+r)
		maxY = math.Max(maxY, p.Y+r)
	}
	for _, p := range []geometry.Point{s.VertexA, s.VertexB, s.VertexC, s.Centroid, s.Orthocenter} {
		include(p, 0)
	}
	// The circles can poke far outside the triangle (the circumcircle of
	// an obtuse triangle in particular), so bound them explicitly.
	include(s.Circumcenter, s.Circumradius)
	include(s.Incenter, s.Inradius)
	include(s.NinePointCenter, s.NinePointRadius)

	// Anything Summarize produces spans a positive extent (the circumcircle
	// alone guarantees it), but a hand-assembled zero Summary would push
	// scale to infinity and the canvas size through int(NaN).
	extent := math.Max(maxX-minX, maxY-minY)
	if extent <= 0 {
		extent = 1
	}
	scale := targetSize / extent
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Triangle, filled then stroked
	c.SetLineWidth(2)
	c.MoveTo(s.VertexA.X, s.VertexA.Y)
	c.LineTo(s.VertexB.X, s.VertexB.Y)
	c.LineTo(s.VertexC.X, s.VertexC.Y)
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// The three notable circles
	c.SetLineWidth(1.5)
	c.SetRGBA(1, 1, 0, 0.8)
	c.DrawCircle(s.Circumcenter.X, s.Circumcenter.Y, s.Circumradius)
	c.Stroke()
	c.SetRGBA(0.3, 0.2, 1, 0.8)
	c.DrawCircle(s.Incenter.X, s.Incenter.Y, s.Inradius)
	c.Stroke()
	c.SetRGBA(0, 1, 0, 0.8)
	c.DrawCircle(s.NinePointCenter.X, s.NinePointCenter.Y, s.NinePointRadius)
	c.Stroke()

	// Euler segment from circumcenter to orthocenter
	c.SetDash(8, 6)
	c.SetRGBA(1, 1, 1, 0.7)
	c.DrawLine(s.Circumcenter.X, s.Circumcenter.Y, s.Orthocenter.X, s.Orthocenter.Y)
	c.Stroke()
	c.SetDash()

	// Markers and labels. Vertices in cyan, centers in white.
	c.SetRGB(0, 1, 1)
	for _, lp := range []labeledPoint{
		{"A", s.VertexA}, {"B", s.VertexB}, {"C", s.VertexC},
	} {
		c.DrawPoint(lp.p.X, lp.p.Y, 4)
		c.Fill()
	}
	c.SetRGB(1, 1, 1)
	for _, lp := range []labeledPoint{
		{"G", s.Centroid}, {"I", s.Incenter}, {"O", s.Circumcenter},
		{"H", s.Orthocenter}, {"N", s.NinePointCenter},
	} {
		c.DrawPoint(lp.p.X, lp.p.Y, 3)
		c.Fill()
	}
	for _, lp := range []labeledPoint{
		{"A", s.VertexA}, {"B", s.VertexB}, {"C", s.VertexC},
		{"G", s.Centroid}, {"I", s.Incenter}, {"O", s.Circumcenter},
		{"H", s.Orthocenter}, {"N", s.NinePointCenter},
	} {
		drawLabel(c, lp.name, lp.p)
	}

	return c
}

// drawLabel writes text next to a world coordinate. Text has to be drawn
// under the identity matrix or the flip above would mirror it, so the
// point is transformed to native coordinates first.
func drawLabel(c *gg.Context, name string, p geometry.Point) {
	x, y := c.TransformPoint(p.X, p.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(name, x+8, y-8, 0, 0.5)
	c.Pop()
}

// Save draws the summary and writes it to path as a PNG.
func Save(s geometry.Summary, path string) error {
	c := Draw(s)
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Show prints a previously saved image inline on terminals that support
// the iTerm2 image protocol.
func Show(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
