package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/geometry"
	"github.com/matzehuels/portwire/pkg/render"
	"github.com/matzehuels/portwire/pkg/style"
)

// PNGPainter paints onto a gg drawing context.
type PNGPainter struct {
	dc    *gg.Context
	pen   render.Pen
	brush render.Brush
}

// NewPNGPainter wraps dc. The caller owns any transform set on dc.
func NewPNGPainter(dc *gg.Context) *PNGPainter {
	return &PNGPainter{dc: dc}
}

func (p *PNGPainter) SetPen(pen render.Pen)   { p.pen = pen }
func (p *PNGPainter) SetBrush(b render.Brush) { p.brush = b }

func (p *PNGPainter) DrawPath(path *geometry.Path) {
	p.dc.NewSubPath()
	p.dc.MoveTo(path.Start.X, path.Start.Y)
	for _, e := range path.Elements {
		switch e.Kind {
		case geometry.LineTo:
			p.dc.LineTo(e.To.X, e.To.Y)
		case geometry.CubicTo:
			p.dc.CubicTo(e.C1.X, e.C1.Y, e.C2.X, e.C2.Y, e.To.X, e.To.Y)
		}
	}
	p.stroke()
}

func (p *PNGPainter) DrawLine(from, to geometry.Point) {
	p.dc.SetLineCap(gg.LineCapRound)
	p.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	p.stroke()
	p.dc.SetLineCap(gg.LineCapButt)
}

func (p *PNGPainter) DrawEllipse(c geometry.Point, rx, ry float64) {
	p.dc.DrawEllipse(c.X, c.Y, rx, ry)
	if p.brush.Fill {
		setColor(p.dc, p.brush.Color)
		p.dc.FillPreserve()
	}
	p.stroke()
}

func (p *PNGPainter) stroke() {
	setColor(p.dc, p.pen.Color)
	p.dc.SetLineWidth(p.pen.Width)
	if p.pen.Dash {
		p.dc.SetDash(6, 4)
	} else {
		p.dc.SetDash()
	}
	p.dc.Stroke()
}

func setColor(dc *gg.Context, c style.Color) {
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}

var _ render.Painter = (*PNGPainter)(nil)

// MaxPixels bounds the size of a rendered PNG (256 MiB of RGBA).
const MaxPixels = 64 << 20

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background *style.Color
}

// WithScale sets the pixel density (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground fills the image before painting. Without it the
// background is transparent.
func WithPNGBackground(c style.Color) PNGOption {
	return func(r *pngRenderer) { r.background = &c }
}

// RenderPNG paints every input into a PNG image covering frame. A scale that
// is not a positive finite number falls back to 2.0. Images above
// [MaxPixels] are refused with an INVALID_INPUT error.
func RenderPNG(frame geometry.Rect, inputs []render.Input, st style.ConnectionStyle, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if math.IsNaN(r.scale) || math.IsInf(r.scale, 0) || r.scale <= 0 {
		r.scale = 2.0
	}

	fw := math.Max(1, math.Round(frame.Width()*r.scale))
	fh := math.Max(1, math.Round(frame.Height()*r.scale))
	if math.IsNaN(fw) || math.IsNaN(fh) || fw*fh > MaxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"image of %.0fx%.0f pixels exceeds the limit of %d", fw, fh, MaxPixels)
	}

	dc := gg.NewContext(int(fw), int(fh))
	if r.background != nil {
		setColor(dc, *r.background)
		dc.Clear()
	}
	dc.Scale(r.scale, r.scale)
	dc.Translate(-frame.Min.X, -frame.Min.Y)

	p := NewPNGPainter(dc)
	for _, in := range inputs {
		render.Paint(p, in, st)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
