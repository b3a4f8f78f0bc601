package render

import (
	"github.com/matzehuels/portwire/pkg/connection"
	"github.com/matzehuels/portwire/pkg/geometry"
	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/observability"
	"github.com/matzehuels/portwire/pkg/style"
)

// Input is everything the painter needs to know about one connection.
type Input struct {
	Geometry     *geometry.Connection
	RequiresPort bool
	Selected     bool
	Out, In      nodes.DataType
}

// FromConnection snapshots a connection for painting.
func FromConnection(c *connection.Connection) Input {
	return Input{
		Geometry:     c.Geometry(),
		RequiresPort: c.State().RequiresPort(),
		Selected:     c.Selected(),
		Out:          c.DataType(nodes.PortOut),
		In:           c.DataType(nodes.PortIn),
	}
}

// Paint draws one connection. Passes run in a fixed order, each drawing over
// the previous one: halo, sketch or normal line, then the endpoint markers.
func Paint(p Painter, in Input, st style.ConnectionStyle) {
	drawHoveredOrSelected(p, in, st)
	drawSketchLine(p, in, st)
	drawNormalLine(p, in, st)
	drawEndpoints(p, in, st)
}

// Bounds returns the area a painted connection may touch.
func Bounds(in Input, st style.ConnectionStyle) geometry.Rect {
	return in.Geometry.BoundingRect().Expand(st.PointDiameter + st.LineWidth)
}

// drawn as a fat background
func drawHoveredOrSelected(p Painter, in Input, st style.ConnectionStyle) {
	if !in.Geometry.Hovered() && !in.Selected {
		return
	}
	observability.Render().OnPaint(observability.PassHalo)

	c := st.HoveredColor
	if in.Selected {
		c = st.SelectedHaloColor
	}
	p.SetPen(Pen{Color: c, Width: 2 * st.LineWidth})
	p.SetBrush(NoBrush)
	p.DrawPath(in.Geometry.Cubic())
}

func drawSketchLine(p Painter, in Input, st style.ConnectionStyle) {
	if !in.RequiresPort {
		return
	}
	observability.Render().OnPaint(observability.PassSketch)

	p.SetPen(Pen{Color: st.ConstructionColor, Width: st.ConstructionLineWidth, Dash: true})
	p.SetBrush(NoBrush)
	p.DrawPath(in.Geometry.Cubic())
}

func drawNormalLine(p Painter, in Input, st style.ConnectionStyle) {
	if in.RequiresPort {
		return
	}

	colorOut := st.NormalColor
	colorIn := st.NormalColor
	selected := st.SelectedColor
	gradient := false

	if st.UseDataDefinedColors {
		gradient = !in.Out.Equal(in.In)
		colorOut = st.TypeColor(in.Out.ID)
		colorIn = st.TypeColor(in.In.ID)
		selected = colorOut.Darker(st.SelectedDarken)
	}

	p.SetBrush(NoBrush)
	if gradient && st.GradientSegments > 0 {
		observability.Render().OnPaint(observability.PassGradient)
		drawGradient(p, in, st, colorOut, colorIn)
		return
	}

	observability.Render().OnPaint(observability.PassNormal)
	c := colorOut
	if in.Selected {
		c = selected
	}
	p.SetPen(Pen{Color: c, Width: st.LineWidth})
	p.DrawPath(in.Geometry.Cubic())
}

// drawGradient approximates a colour gradient along the cubic with flat
// straight segments.
func drawGradient(p Painter, in Input, st style.ConnectionStyle, from, to style.Color) {
	n := st.GradientSegments
	cubic := in.Geometry.Cubic()
	pts := cubic.Sample(n)
	colors := GradientColors(from, to, n)

	for i := range n {
		c := colors[i]
		if in.Selected {
			c = c.Darker(st.SelectedDarken)
		}
		p.SetPen(Pen{Color: c, Width: st.LineWidth})
		p.DrawLine(pts[i], pts[i+1])
	}
}

// GradientColors returns the colours of n gradient segments. The first is
// from and the last is to; n == 1 yields from alone and n < 1 nothing.
func GradientColors(from, to style.Color, n int) []style.Color {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []style.Color{from}
	}
	colors := make([]style.Color, n)
	for i := range colors {
		colors[i] = from.Lerp(to, float64(i)/float64(n-1))
	}
	return colors
}

func drawEndpoints(p Painter, in Input, st style.ConnectionStyle) {
	observability.Render().OnPaint(observability.PassMarkers)

	r := st.PointDiameter / 2
	p.SetPen(Pen{Color: st.ConstructionColor, Width: 1})
	p.SetBrush(SolidBrush(st.ConstructionColor))
	p.DrawEllipse(in.Geometry.Source(), r, r)
	p.DrawEllipse(in.Geometry.Sink(), r, r)
}
