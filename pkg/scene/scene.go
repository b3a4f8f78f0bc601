package scene

import (
	"github.com/matzehuels/portwire/pkg/connection"
	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/geometry"
	"github.com/matzehuels/portwire/pkg/nodes"
	"github.com/matzehuels/portwire/pkg/render"
	"github.com/matzehuels/portwire/pkg/style"
)

// Node box layout, in scene units.
const (
	NodeWidth   = 160.0
	HeaderSize  = 28.0
	PortSpacing = 24.0
)

// Node is a placed model instance.
type Node struct {
	ID     string
	Model  nodes.PortedModel
	Origin geometry.Point
}

// Anchor returns the scene position of port (pt, index). Input ports sit on
// the left edge, output ports on the right, stacked below the header.
func (n *Node) Anchor(pt nodes.PortType, index int) geometry.Point {
	y := n.Origin.Y + HeaderSize + PortSpacing*(float64(index)+0.5)
	if pt == nodes.PortOut {
		return geometry.Pt(n.Origin.X+NodeWidth, y)
	}
	return geometry.Pt(n.Origin.X, y)
}

// Height returns the height of the node box.
func (n *Node) Height() float64 {
	rows := max(n.Model.NumPorts(nodes.PortIn), n.Model.NumPorts(nodes.PortOut), 1)
	return HeaderSize + PortSpacing*float64(rows)
}

// Bounds returns the node box.
func (n *Node) Bounds() geometry.Rect {
	return geometry.Rect{Min: n.Origin, Max: n.Origin.Add(geometry.Pt(NodeWidth, n.Height()))}
}

// Rejected records a connection the compatibility check refused.
type Rejected struct {
	From, To PortRef
	Out, In  nodes.DataType
	Err      error
}

// Scene is a built scene: model instances and the connections between them.
type Scene struct {
	Nodes       []*Node
	Connections []*connection.Connection
	Drafts      []*connection.Connection
	Rejected    []Rejected

	byID map[string]*Node
}

// Node returns the node with the given id.
func (s *Scene) Node(id string) (*Node, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// Build instantiates f against reg. Structural problems such as unknown
// models, duplicate ids or dangling port references fail the build;
// incompatible connections are collected in Rejected.
func Build(f *File, reg *nodes.ModelRegistry) (*Scene, error) {
	s := &Scene{byID: make(map[string]*Node, len(f.Nodes))}

	for _, spec := range f.Nodes {
		n, err := buildNode(spec, reg)
		if err != nil {
			return nil, err
		}
		if _, dup := s.byID[n.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidScene, "duplicate node id %q", n.ID)
		}
		s.byID[n.ID] = n
		s.Nodes = append(s.Nodes, n)
	}

	for _, spec := range f.Connections {
		if err := s.connect(spec, reg); err != nil {
			return nil, err
		}
	}

	for _, spec := range f.Drafts {
		if err := s.draft(spec); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func buildNode(spec NodeSpec, reg *nodes.ModelRegistry) (*Node, error) {
	if err := errors.ValidateName("node id", spec.ID); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "node %q", spec.ID)
	}
	m, ok := reg.Create(spec.Model)
	if !ok {
		return nil, errors.New(errors.ErrCodeModelNotFound, "node %q: unknown model %q", spec.ID, spec.Model)
	}
	pm, ok := m.(nodes.PortedModel)
	if !ok {
		return nil, errors.New(errors.ErrCodePortNotFound, "node %q: model %q declares no ports", spec.ID, spec.Model)
	}
	return &Node{ID: spec.ID, Model: pm, Origin: geometry.Pt(spec.X, spec.Y)}, nil
}

// port resolves a reference on side pt.
func (s *Scene) port(raw string, pt nodes.PortType) (connection.Port, geometry.Point, PortRef, error) {
	ref, err := ParsePortRef(raw)
	if err != nil {
		return connection.Port{}, geometry.Point{}, ref, err
	}
	n, ok := s.byID[ref.Node]
	if !ok {
		return connection.Port{}, geometry.Point{}, ref,
			errors.New(errors.ErrCodeInvalidScene, "unknown node %q in %q", ref.Node, raw)
	}
	if ref.Index >= n.Model.NumPorts(pt) {
		return connection.Port{}, geometry.Point{}, ref,
			errors.New(errors.ErrCodePortNotFound, "%s has no %s port %d", n.ID, pt, ref.Index)
	}
	p := connection.Port{Node: n.ID, Index: ref.Index, Type: n.Model.PortDataType(pt, ref.Index)}
	return p, n.Anchor(pt, ref.Index), ref, nil
}

func (s *Scene) connect(spec ConnectionSpec, reg *nodes.ModelRegistry) error {
	out, source, fromRef, err := s.port(spec.From, nodes.PortOut)
	if err != nil {
		return err
	}
	in, sink, toRef, err := s.port(spec.To, nodes.PortIn)
	if err != nil {
		return err
	}

	c, err := connection.Connect(out, in, source, sink, reg)
	if errors.Is(err, errors.ErrCodeIncompatibleTypes) {
		s.Rejected = append(s.Rejected, Rejected{From: fromRef, To: toRef, Out: out.Type, In: in.Type, Err: err})
		return nil
	}
	if err != nil {
		return err
	}
	c.SetSelected(spec.Selected)
	c.SetHovered(spec.Hovered)
	s.Connections = append(s.Connections, c)
	return nil
}

func (s *Scene) draft(spec DraftSpec) error {
	var (
		anchor nodes.PortType
		raw    string
	)
	switch {
	case spec.From != "" && spec.To == "":
		anchor, raw = nodes.PortOut, spec.From
	case spec.To != "" && spec.From == "":
		anchor, raw = nodes.PortIn, spec.To
	default:
		return errors.New(errors.ErrCodeInvalidScene, "draft needs exactly one of from and to")
	}

	p, at, _, err := s.port(raw, anchor)
	if err != nil {
		return err
	}
	c, err := connection.NewDraft(anchor, p, at)
	if err != nil {
		return err
	}
	c.Drag(geometry.Pt(spec.End[0], spec.End[1]))
	c.SetHovered(spec.Hovered)
	s.Drafts = append(s.Drafts, c)
	return nil
}

// SetCurve applies c to every connection and draft.
func (s *Scene) SetCurve(c geometry.Curve) {
	for _, conn := range s.all() {
		conn.Geometry().SetCurve(c)
	}
}

func (s *Scene) all() []*connection.Connection {
	all := make([]*connection.Connection, 0, len(s.Connections)+len(s.Drafts))
	all = append(all, s.Connections...)
	return append(all, s.Drafts...)
}

// Inputs snapshots every connection for painting: complete connections
// first, then drafts so they draw on top.
func (s *Scene) Inputs() []render.Input {
	all := s.all()
	inputs := make([]render.Input, len(all))
	for i, c := range all {
		inputs[i] = render.FromConnection(c)
	}
	return inputs
}

// Frame returns the area covered by the nodes and the painted connections,
// expanded by margin on every side.
func (s *Scene) Frame(st style.ConnectionStyle, margin float64) geometry.Rect {
	var (
		f   geometry.Rect
		set bool
	)
	grow := func(r geometry.Rect) {
		if !set {
			f, set = r, true
			return
		}
		f = f.Union(r)
	}
	for _, n := range s.Nodes {
		grow(n.Bounds())
	}
	for _, in := range s.Inputs() {
		grow(render.Bounds(in, st))
	}
	if !set {
		return geometry.Rect{Max: geometry.Pt(1, 1)}
	}
	return f.Expand(margin)
}
