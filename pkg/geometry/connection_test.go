package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestControlPointsMinOffset(t *testing.T) {
	tests := []struct {
		name         string
		source, sink Point
	}{
		{"coincident", Pt(10, 10), Pt(10, 10)},
		{"origin", Pt(0, 0), Pt(0, 0)},
		{"vertically stacked", Pt(100, 0), Pt(100, 300)},
		{"short forward", Pt(0, 0), Pt(20, 5)},
		{"short backward", Pt(20, 5), Pt(0, 0)},
		{"long forward", Pt(0, 0), Pt(600, 40)},
		{"long backward", Pt(600, 40), Pt(0, 0)},
		{"negative coordinates", Pt(-300, -10), Pt(-900, 80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewConnection()
			g.SetEndpoints(tt.source, tt.sink)
			c1, c2 := g.ControlPoints()

			if d := math.Abs(c1.X - tt.source.X); d < DefaultCurve.MinOffset-eps {
				t.Errorf("|c1.x - source.x| = %v, want >= %v", d, DefaultCurve.MinOffset)
			}
			if d := math.Abs(tt.sink.X - c2.X); d < DefaultCurve.MinOffset-eps {
				t.Errorf("|sink.x - c2.x| = %v, want >= %v", d, DefaultCurve.MinOffset)
			}
			if c1.Y != tt.source.Y || c2.Y != tt.sink.Y {
				t.Errorf("control arms must be horizontal: c1=%v c2=%v", c1, c2)
			}
		})
	}
}

func TestControlPointsRule(t *testing.T) {
	g := NewConnection()
	g.SetEndpoints(Pt(0, 0), Pt(400, 100))
	c1, c2 := g.ControlPoints()

	// off = max(50, 400 * 0.5) = 200
	if !near(c1.X, 200) || !near(c2.X, 200) {
		t.Errorf("ControlPoints() = %v, %v, want x=200 for both", c1, c2)
	}

	g.SetEndpoints(Pt(400, 0), Pt(0, 100))
	c1, c2 = g.ControlPoints()
	// Backward connections use the same sign: arms leave the source to the
	// right and enter the sink from the left.
	if !near(c1.X, 600) || !near(c2.X, -200) {
		t.Errorf("backward ControlPoints() = %v, %v, want x=600 and x=-200", c1, c2)
	}
}

func TestCurveFallback(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
	}{
		{"zero floor, negative ratio", Curve{MinOffset: 0, OffsetRatio: -1}},
		{"nan ratio", Curve{MinOffset: 0, OffsetRatio: math.NaN()}},
		{"infinite ratio", Curve{MinOffset: 0, OffsetRatio: math.Inf(1)}},
		{"nan floor", Curve{MinOffset: math.NaN(), OffsetRatio: 0}},
		{"infinite floor", Curve{MinOffset: math.Inf(1), OffsetRatio: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewConnectionWithCurve(tt.curve)
			g.SetEndpoints(Pt(0, 0), Pt(1000, 0))
			c1, c2 := g.ControlPoints()
			if !near(c1.X, DefaultCurve.MinOffset) {
				t.Errorf("c1.X = %v, want fallback floor %v", c1.X, DefaultCurve.MinOffset)
			}
			if !near(c2.X, 1000-DefaultCurve.MinOffset) {
				t.Errorf("c2.X = %v, want %v", c2.X, 1000-DefaultCurve.MinOffset)
			}
		})
	}
}

func TestBoundingRect(t *testing.T) {
	g := NewConnection()
	g.SetEndpoints(Pt(10, 20), Pt(30, 80))
	r := g.BoundingRect()
	c1, c2 := g.ControlPoints()

	for _, p := range []Point{g.Source(), g.Sink(), c1, c2} {
		if !r.Contains(p) {
			t.Errorf("BoundingRect %v does not contain %v", r, p)
		}
	}
	// smallest: c1 = (60, 20), c2 = (-20, 80)
	want := Rect{Min: Pt(-20, 20), Max: Pt(60, 80)}
	if r != want {
		t.Errorf("BoundingRect() = %v, want %v", r, want)
	}
}

func TestMoveEndpoints(t *testing.T) {
	g := NewConnection()
	g.SetEndpoints(Pt(0, 0), Pt(10, 10))
	g.MoveSink(5, -5)
	g.MoveSource(-1, 1)

	if g.Sink() != Pt(15, 5) {
		t.Errorf("Sink() = %v", g.Sink())
	}
	if g.Source() != Pt(-1, 1) {
		t.Errorf("Source() = %v", g.Source())
	}

	g.SetHovered(true)
	if !g.Hovered() {
		t.Error("SetHovered(true) not reflected")
	}
}

func TestCubicEndpoints(t *testing.T) {
	g := NewConnection()
	g.SetEndpoints(Pt(5, 5), Pt(300, 120))
	cubic := g.Cubic()

	if got := cubic.PointAtPercent(0); got != g.Source() {
		t.Errorf("PointAtPercent(0) = %v, want %v", got, g.Source())
	}
	if got := cubic.PointAtPercent(1); got != g.Sink() {
		t.Errorf("PointAtPercent(1) = %v, want %v", got, g.Sink())
	}
}
