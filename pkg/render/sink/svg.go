package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/portwire/pkg/geometry"
	"github.com/matzehuels/portwire/pkg/render"
	"github.com/matzehuels/portwire/pkg/style"
)

const dashPattern = "6,4"

// SVGPainter writes SVG elements for every draw call into a buffer.
type SVGPainter struct {
	buf    *bytes.Buffer
	origin geometry.Point
	pen    render.Pen
	brush  render.Brush
}

// NewSVGPainter paints into buf, translating scene coordinates so that
// origin lands at (0, 0).
func NewSVGPainter(buf *bytes.Buffer, origin geometry.Point) *SVGPainter {
	return &SVGPainter{buf: buf, origin: origin}
}

func (p *SVGPainter) SetPen(pen render.Pen)   { p.pen = pen }
func (p *SVGPainter) SetBrush(b render.Brush) { p.brush = b }

func (p *SVGPainter) DrawPath(path *geometry.Path) {
	shifted := geometry.NewPath(p.local(path.Start))
	for _, e := range path.Elements {
		switch e.Kind {
		case geometry.LineTo:
			shifted.LineTo(p.local(e.To))
		case geometry.CubicTo:
			shifted.CubicTo(p.local(e.C1), p.local(e.C2), p.local(e.To))
		}
	}
	fmt.Fprintf(p.buf, `  <path d="%s" %s %s/>`+"\n", shifted.SVG(), p.fillAttrs(), p.strokeAttrs())
}

func (p *SVGPainter) DrawLine(from, to geometry.Point) {
	a, b := p.local(from), p.local(to)
	fmt.Fprintf(p.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s stroke-linecap="round"/>`+"\n",
		a.X, a.Y, b.X, b.Y, p.strokeAttrs())
}

func (p *SVGPainter) DrawEllipse(c geometry.Point, rx, ry float64) {
	l := p.local(c)
	fmt.Fprintf(p.buf, `  <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" %s %s/>`+"\n",
		l.X, l.Y, rx, ry, p.fillAttrs(), p.strokeAttrs())
}

func (p *SVGPainter) local(pt geometry.Point) geometry.Point {
	return pt.Sub(p.origin)
}

func (p *SVGPainter) strokeAttrs() string {
	s := fmt.Sprintf(`stroke="%s" stroke-width="%.2f"`, p.pen.Color.Hex(), p.pen.Width)
	if p.pen.Dash {
		s += fmt.Sprintf(` stroke-dasharray="%s"`, dashPattern)
	}
	return s
}

func (p *SVGPainter) fillAttrs() string {
	if !p.brush.Fill {
		return `fill="none"`
	}
	return fmt.Sprintf(`fill="%s"`, p.brush.Color.Hex())
}

var _ render.Painter = (*SVGPainter)(nil)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background *style.Color
	title      string
}

// WithBackground fills the frame before painting.
func WithBackground(c style.Color) SVGOption {
	return func(r *svgRenderer) { r.background = &c }
}

// WithTitle adds a <title> element.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG paints every input, in order, into an SVG document covering frame.
func RenderSVG(frame geometry.Rect, inputs []render.Input, st style.ConnectionStyle, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	w, h := frame.Width(), frame.Height()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)

	if r.title != "" {
		buf.WriteString("  <title>")
		_ = xml.EscapeText(&buf, []byte(r.title))
		buf.WriteString("</title>\n")
	}
	if r.background != nil {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, r.background.Hex())
	}

	p := NewSVGPainter(&buf, frame.Min)
	for _, in := range inputs {
		render.Paint(p, in, st)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
