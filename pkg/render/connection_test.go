package render

import (
	"testing"

	"github.com/matzehuels/portwire/pkg/connection"
	"github.com/matzehuels/portwire/pkg/geometry"
	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/nodes/builtin"
	"github.com/matzehuels/portwire/pkg/style"
)

func newInput(out, in nodes.DataType) Input {
	g := geometry.NewConnection()
	g.SetEndpoints(geometry.Pt(0, 0), geometry.Pt(300, 120))
	return Input{Geometry: g, Out: out, In: in}
}

func gradientStyle() style.ConnectionStyle {
	st := style.Default()
	st.UseDataDefinedColors = true
	return st
}

func TestPaintSketchOnly(t *testing.T) {
	// A draft still waiting for its input port.
	in := newInput(builtin.Integer, nodes.DataType{})
	in.RequiresPort = true
	st := style.Default()

	var rec Recorder
	Paint(&rec, in, st)

	if len(rec.Ops) != 3 {
		t.Fatalf("ops = %d, want sketch + 2 markers: %v", len(rec.Ops), rec.Ops)
	}
	sketch := rec.Ops[0]
	if sketch.Kind != OpPath || !sketch.Pen.Dash {
		t.Errorf("first op should be a dashed path, got %v", sketch)
	}
	if sketch.Pen.Color != st.ConstructionColor || sketch.Pen.Width != st.ConstructionLineWidth {
		t.Errorf("sketch pen = %+v", sketch.Pen)
	}
	if rec.Count(OpLine) != 0 {
		t.Error("gradient segments must not be drawn for a dangling connection")
	}
	for _, op := range rec.Ops[1:] {
		if op.Kind != OpEllipse {
			t.Errorf("expected endpoint marker, got %v", op)
		}
	}
}

func TestPaintSketchWithDataColorsStillSkipsNormal(t *testing.T) {
	in := newInput(builtin.Integer, builtin.Float)
	in.RequiresPort = true

	var rec Recorder
	Paint(&rec, in, gradientStyle())

	if rec.Count(OpLine) != 0 || rec.Count(OpPath) != 1 {
		t.Errorf("ops = %v", rec.Ops)
	}
}

func TestPaintHomogeneousSelected(t *testing.T) {
	// A selected connection between equal types.
	in := newInput(builtin.Float, builtin.Float)
	in.Selected = true
	st := style.Default()

	var rec Recorder
	Paint(&rec, in, st)

	if len(rec.Ops) != 4 {
		t.Fatalf("ops = %d, want halo + line + 2 markers: %v", len(rec.Ops), rec.Ops)
	}
	halo, line := rec.Ops[0], rec.Ops[1]
	if halo.Kind != OpPath || halo.Pen.Color != st.SelectedHaloColor || halo.Pen.Width != 2*st.LineWidth {
		t.Errorf("halo = %v", halo)
	}
	if line.Kind != OpPath || line.Pen.Color != st.SelectedColor || line.Pen.Width != st.LineWidth || line.Pen.Dash {
		t.Errorf("normal stroke = %v", line)
	}
	if line.Brush.Fill {
		t.Error("connection strokes must not be filled")
	}
}

func TestPaintHalo(t *testing.T) {
	st := style.Default()

	tests := []struct {
		name      string
		hovered   bool
		selected  bool
		wantHalo  bool
		wantColor style.Color
	}{
		{"idle", false, false, false, style.Color{}},
		{"hovered", true, false, true, st.HoveredColor},
		{"selected", false, true, true, st.SelectedHaloColor},
		{"both prefer selected", true, true, true, st.SelectedHaloColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newInput(builtin.Text, builtin.Text)
			in.Geometry.SetHovered(tt.hovered)
			in.Selected = tt.selected

			var rec Recorder
			Paint(&rec, in, st)

			gotHalo := rec.Count(OpPath) == 2
			if gotHalo != tt.wantHalo {
				t.Fatalf("halo drawn = %v, want %v", gotHalo, tt.wantHalo)
			}
			if tt.wantHalo && rec.Ops[0].Pen.Color != tt.wantColor {
				t.Errorf("halo colour = %v, want %v", rec.Ops[0].Pen.Color, tt.wantColor)
			}
		})
	}
}

func TestPaintNormalUnselected(t *testing.T) {
	st := style.Default()
	var rec Recorder
	Paint(&rec, newInput(builtin.Integer, builtin.Integer), st)

	if rec.Ops[0].Pen.Color != st.NormalColor {
		t.Errorf("normal colour = %v, want %v", rec.Ops[0].Pen.Color, st.NormalColor)
	}
}

func TestPaintDataDefinedHomogeneous(t *testing.T) {
	st := gradientStyle()
	in := newInput(builtin.Integer, builtin.Integer)
	in.Selected = true

	var rec Recorder
	Paint(&rec, in, st)

	if rec.Count(OpLine) != 0 {
		t.Fatal("same types must not use the gradient")
	}
	want := st.TypeColor("integer").Darker(200)
	if got := rec.Ops[1].Pen.Color; got != want {
		t.Errorf("selected colour = %v, want darker type colour %v", got, want)
	}
}

func TestPaintGradient(t *testing.T) {
	st := gradientStyle()
	in := newInput(builtin.Integer, builtin.Float)

	var rec Recorder
	Paint(&rec, in, st)

	var lines []Op
	for _, op := range rec.Ops {
		if op.Kind == OpLine {
			lines = append(lines, op)
		}
	}
	if len(lines) != 20 {
		t.Fatalf("segments = %d, want 20", len(lines))
	}

	outColor, inColor := st.TypeColor("integer"), st.TypeColor("float")
	if lines[0].Pen.Color != outColor {
		t.Errorf("first segment = %v, want out colour %v", lines[0].Pen.Color, outColor)
	}
	if lines[19].Pen.Color != inColor {
		t.Errorf("last segment = %v, want in colour %v", lines[19].Pen.Color, inColor)
	}

	// segments are contiguous and span the whole curve
	if lines[0].From != in.Geometry.Source() || lines[19].To != in.Geometry.Sink() {
		t.Errorf("segments do not span source to sink: %v .. %v", lines[0].From, lines[19].To)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i].From != lines[i-1].To {
			t.Errorf("segment %d does not start where %d ends", i, i-1)
		}
	}
}

func TestPaintGradientSelectedDarkensEverySegment(t *testing.T) {
	st := gradientStyle()
	in := newInput(builtin.Integer, builtin.Float)

	var plain, selected Recorder
	Paint(&plain, in, st)
	in.Selected = true
	Paint(&selected, in, st)

	var plainLines, selLines []Op
	for _, op := range plain.Ops {
		if op.Kind == OpLine {
			plainLines = append(plainLines, op)
		}
	}
	for _, op := range selected.Ops {
		if op.Kind == OpLine {
			selLines = append(selLines, op)
		}
	}
	if len(plainLines) != len(selLines) {
		t.Fatalf("segment counts differ: %d vs %d", len(plainLines), len(selLines))
	}
	for i := range plainLines {
		if want := plainLines[i].Pen.Color.Darker(200); selLines[i].Pen.Color != want {
			t.Errorf("segment %d = %v, want %v", i, selLines[i].Pen.Color, want)
		}
	}
}

func TestPaintGradientZeroSegmentsDegrades(t *testing.T) {
	st := gradientStyle()
	st.GradientSegments = 0

	var rec Recorder
	Paint(&rec, newInput(builtin.Integer, builtin.Float), st)

	if rec.Count(OpLine) != 0 {
		t.Error("no segments expected with N = 0")
	}
	if rec.Count(OpPath) != 1 || rec.Ops[0].Pen.Color != st.TypeColor("integer") {
		t.Errorf("expected one stroke in the out colour, got %v", rec.Ops)
	}
}

func TestPaintEndpointsAlwaysLast(t *testing.T) {
	st := style.Default()
	in := newInput(builtin.Text, builtin.Text)
	in.Selected = true

	var rec Recorder
	Paint(&rec, in, st)

	n := len(rec.Ops)
	src, snk := rec.Ops[n-2], rec.Ops[n-1]
	if src.Center != in.Geometry.Source() || snk.Center != in.Geometry.Sink() {
		t.Errorf("markers at %v, %v", src.Center, snk.Center)
	}
	if src.RX != st.PointDiameter/2 || !src.Brush.Fill || src.Brush.Color != st.ConstructionColor {
		t.Errorf("marker = %v", src)
	}
}

func TestGradientColors(t *testing.T) {
	from, to := style.RGB(0, 0, 0), style.RGB(190, 95, 19)

	if got := GradientColors(from, to, 0); got != nil {
		t.Errorf("n=0 = %v, want nil", got)
	}
	if got := GradientColors(from, to, 1); len(got) != 1 || got[0] != from {
		t.Errorf("n=1 = %v", got)
	}
	got := GradientColors(from, to, 20)
	if got[0] != from || got[19] != to {
		t.Errorf("endpoints = %v, %v", got[0], got[19])
	}
	for i := 1; i < len(got); i++ {
		if got[i].R < got[i-1].R {
			t.Errorf("red component not monotonic at %d", i)
		}
	}
}

func TestFromConnection(t *testing.T) {
	reg := builtin.NewRegistry()
	c, err := connection.Connect(
		connection.Port{Node: "a", Type: builtin.Integer},
		connection.Port{Node: "b", Type: builtin.Float},
		geometry.Pt(0, 0), geometry.Pt(10, 10), reg)
	if err != nil {
		t.Fatal(err)
	}
	c.SetSelected(true)

	in := FromConnection(c)
	if in.RequiresPort || !in.Selected || !in.Out.Equal(builtin.Integer) || !in.In.Equal(builtin.Float) {
		t.Errorf("FromConnection() = %+v", in)
	}
}

func TestBounds(t *testing.T) {
	st := style.Default()
	in := newInput(builtin.Text, builtin.Text)
	b := Bounds(in, st)
	inner := in.Geometry.BoundingRect()
	if b.Min.X >= inner.Min.X || b.Max.Y <= inner.Max.Y {
		t.Errorf("Bounds %v should strictly contain %v", b, inner)
	}
}
