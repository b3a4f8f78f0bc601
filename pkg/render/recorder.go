package render

import (
	"fmt"

	"github.com/matzehuels/portwire/pkg/geometry"
)

// OpKind names a recorded draw call.
type OpKind string

const (
	OpPath    OpKind = "path"
	OpLine    OpKind = "line"
	OpEllipse OpKind = "ellipse"
)

// Op is one draw call with the pen and brush active when it was issued.
type Op struct {
	Kind   OpKind
	Pen    Pen
	Brush  Brush
	Path   *geometry.Path // OpPath
	From   geometry.Point // OpLine
	To     geometry.Point // OpLine
	Center geometry.Point // OpEllipse
	RX, RY float64        // OpEllipse
}

func (o Op) String() string {
	style := "solid"
	if o.Pen.Dash {
		style = "dash"
	}
	switch o.Kind {
	case OpPath:
		return fmt.Sprintf("path %s w=%g %s %s", o.Pen.Color, o.Pen.Width, style, o.Path.SVG())
	case OpLine:
		return fmt.Sprintf("line %s w=%g %s %v -> %v", o.Pen.Color, o.Pen.Width, style, o.From, o.To)
	default:
		fill := "none"
		if o.Brush.Fill {
			fill = o.Brush.Color.Hex()
		}
		return fmt.Sprintf("ellipse %s fill=%s at %v r=%gx%g", o.Pen.Color, fill, o.Center, o.RX, o.RY)
	}
}

// Recorder is a Painter that keeps every draw call.
type Recorder struct {
	Ops   []Op
	pen   Pen
	brush Brush
}

func (r *Recorder) SetPen(p Pen)     { r.pen = p }
func (r *Recorder) SetBrush(b Brush) { r.brush = b }

func (r *Recorder) DrawPath(p *geometry.Path) {
	r.Ops = append(r.Ops, Op{Kind: OpPath, Pen: r.pen, Brush: r.brush, Path: p})
}

func (r *Recorder) DrawLine(from, to geometry.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Pen: r.pen, Brush: r.brush, From: from, To: to})
}

func (r *Recorder) DrawEllipse(c geometry.Point, rx, ry float64) {
	r.Ops = append(r.Ops, Op{Kind: OpEllipse, Pen: r.pen, Brush: r.brush, Center: c, RX: rx, RY: ry})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

var _ Painter = (*Recorder)(nil)
