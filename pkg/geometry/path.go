package geometry

import (
	"fmt"
	"strings"
)

// ElementKind distinguishes path segments.
type ElementKind int

const (
	LineTo ElementKind = iota
	CubicTo
)

// Element is one segment of a Path, ending at To.
type Element struct {
	Kind   ElementKind
	C1, C2 Point // control points, CubicTo only
	To     Point
}

// Path is an open path made of line and cubic segments.
type Path struct {
	Start    Point
	Elements []Element
}

// NewPath starts a path at p.
func NewPath(p Point) *Path {
	return &Path{Start: p}
}

// NewCubic returns the single-segment cubic from p0 to p3.
func NewCubic(p0, c1, c2, p3 Point) *Path {
	return NewPath(p0).CubicTo(c1, c2, p3)
}

// LineTo appends a straight segment.
func (p *Path) LineTo(to Point) *Path {
	p.Elements = append(p.Elements, Element{Kind: LineTo, To: to})
	return p
}

// CubicTo appends a cubic Bezier segment.
func (p *Path) CubicTo(c1, c2, to Point) *Path {
	p.Elements = append(p.Elements, Element{Kind: CubicTo, C1: c1, C2: c2, To: to})
	return p
}

// End returns the last point of the path.
func (p *Path) End() Point {
	if len(p.Elements) == 0 {
		return p.Start
	}
	return p.Elements[len(p.Elements)-1].To
}

// PointAtPercent samples the path at parameter t in [0, 1]. Each segment
// covers an equal share of t; within a segment the Bezier parameter is used
// directly, not arc length. t outside [0, 1] is clamped.
func (p *Path) PointAtPercent(t float64) Point {
	n := len(p.Elements)
	if n == 0 {
		return p.Start
	}
	switch {
	case t <= 0:
		return p.Start
	case t >= 1:
		return p.End()
	}

	scaled := t * float64(n)
	i := int(scaled)
	if i >= n {
		i = n - 1
	}
	local := scaled - float64(i)

	from := p.Start
	if i > 0 {
		from = p.Elements[i-1].To
	}
	e := p.Elements[i]
	if e.Kind == LineTo {
		return from.Lerp(e.To, local)
	}
	return cubicPoint(from, e.C1, e.C2, e.To, local)
}

// Sample returns n+1 points at t = 0, 1/n, ..., 1. n < 1 yields the two
// end points.
func (p *Path) Sample(n int) []Point {
	if n < 1 {
		return []Point{p.Start, p.End()}
	}
	pts := make([]Point, n+1)
	for i := range pts {
		pts[i] = p.PointAtPercent(float64(i) / float64(n))
	}
	return pts
}

// Bounds returns the rectangle containing every point and control point.
func (p *Path) Bounds() Rect {
	pts := []Point{p.Start}
	for _, e := range p.Elements {
		if e.Kind == CubicTo {
			pts = append(pts, e.C1, e.C2)
		}
		pts = append(pts, e.To)
	}
	return RectFromPoints(pts...)
}

// SVG renders the path as an SVG path data string.
func (p *Path) SVG() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", p.Start.X, p.Start.Y)
	for _, e := range p.Elements {
		switch e.Kind {
		case LineTo:
			fmt.Fprintf(&b, " L%.2f,%.2f", e.To.X, e.To.Y)
		case CubicTo:
			fmt.Fprintf(&b, " C%.2f,%.2f %.2f,%.2f %.2f,%.2f",
				e.C1.X, e.C1.Y, e.C2.X, e.C2.Y, e.To.X, e.To.Y)
		}
	}
	return b.String()
}

func cubicPoint(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
