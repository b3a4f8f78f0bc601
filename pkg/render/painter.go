package render

import (
	"github.com/matzehuels/portwire/pkg/geometry"
	"github.com/matzehuels/portwire/pkg/style"
)

// Pen describes how outlines are stroked.
type Pen struct {
	Color style.Color
	Width float64
	Dash  bool
}

// Brush describes how closed shapes are filled.
type Brush struct {
	Color style.Color
	Fill  bool
}

// NoBrush leaves shapes unfilled.
var NoBrush = Brush{}

// SolidBrush fills with c.
func SolidBrush(c style.Color) Brush { return Brush{Color: c, Fill: true} }

// Painter is the drawing backend a connection is painted onto.
type Painter interface {
	SetPen(Pen)
	SetBrush(Brush)
	DrawPath(*geometry.Path)
	DrawLine(from, to geometry.Point)
	DrawEllipse(center geometry.Point, rx, ry float64)
}
