package geometry

import "math"

// Curve holds the control-arm heuristic for connection cubics.
type Curve struct {
	MinOffset   float64 `toml:"min_offset" json:"min_offset"`
	OffsetRatio float64 `toml:"offset_ratio" json:"offset_ratio"`
}

// DefaultCurve is used by NewConnection.
var DefaultCurve = Curve{MinOffset: 50, OffsetRatio: 0.5}

// offset returns the horizontal arm length for a horizontal distance dx.
func (c Curve) offset(dx float64) float64 {
	floor := c.MinOffset
	if !finite(floor) || floor <= 0 {
		floor = DefaultCurve.MinOffset
	}
	ratio := c.OffsetRatio
	if !finite(ratio) || ratio < 0 {
		ratio = 0
	}
	return math.Max(floor, math.Abs(dx)*ratio)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Connection is the geometry of one connection: the output-side source, the
// input-side sink and whether the pointer hovers it.
type Connection struct {
	source  Point
	sink    Point
	hovered bool
	curve   Curve
}

// NewConnection returns a geometry with both endpoints at the origin.
func NewConnection() *Connection {
	return &Connection{curve: DefaultCurve}
}

// NewConnectionWithCurve returns a geometry using the given arm heuristic.
func NewConnectionWithCurve(c Curve) *Connection {
	return &Connection{curve: c}
}

func (g *Connection) Source() Point { return g.source }
func (g *Connection) Sink() Point   { return g.sink }
func (g *Connection) Curve() Curve  { return g.curve }

// SetEndpoints moves both ends.
func (g *Connection) SetEndpoints(source, sink Point) {
	g.source = source
	g.sink = sink
}

func (g *Connection) SetSource(p Point) { g.source = p }
func (g *Connection) SetSink(p Point)   { g.sink = p }

// MoveSource translates the source by (dx, dy).
func (g *Connection) MoveSource(dx, dy float64) {
	g.source = g.source.Add(Point{dx, dy})
}

// MoveSink translates the sink by (dx, dy).
func (g *Connection) MoveSink(dx, dy float64) {
	g.sink = g.sink.Add(Point{dx, dy})
}

func (g *Connection) Hovered() bool    { return g.hovered }
func (g *Connection) SetHovered(h bool) { g.hovered = h }
func (g *Connection) SetCurve(c Curve)  { g.curve = c }

// ControlPoints derives the two cubic control points from the endpoints.
func (g *Connection) ControlPoints() (c1, c2 Point) {
	off := g.curve.offset(g.sink.X - g.source.X)
	c1 = Point{g.source.X + off, g.source.Y}
	c2 = Point{g.sink.X - off, g.sink.Y}
	return c1, c2
}

// BoundingRect returns the smallest rectangle containing the endpoints and
// both control points.
func (g *Connection) BoundingRect() Rect {
	c1, c2 := g.ControlPoints()
	return RectFromPoints(g.source, g.sink, c1, c2)
}

// Cubic returns the connection's curve as a path.
func (g *Connection) Cubic() *Path {
	c1, c2 := g.ControlPoints()
	return NewCubic(g.source, c1, c2, g.sink)
}
