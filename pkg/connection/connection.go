// Package connection models a single user-drawn connection: its endpoint
// ports, its geometry and its interaction state.
//
// A connection starts as a draft when the user drags out of a port; one end
// is anchored, the other follows the pointer and is "required". Dropping on a
// port calls [Connection.Attach], which succeeds only when the data types are
// compatible. A refused attach leaves the connection untouched; the caller
// destroys it.
package connection

import (
	"github.com/google/uuid"

	"github.com/matzehuels/portwire/pkg/errors"
	"github.com/matzehuels/portwire/pkg/geometry"
	"github.com/matzehuels/portwire/pkg/nodes"
)

// Port references a typed port on a node.
type Port struct {
	Node  string
	Index int
	Type  nodes.DataType
}

// IsZero reports whether p references nothing.
func (p Port) IsZero() bool { return p.Node == "" && p.Type.IsZero() }

// Resolver finds the converter for an ordered pair of data types.
// Both nodes.ModelRegistry and nodes.ConverterRegistry satisfy it.
type Resolver interface {
	TypeConverter(out, in nodes.DataType) (nodes.Converter, bool)
}

// Connection joins an output port to an input port.
type Connection struct {
	id       uuid.UUID
	out      Port
	in       Port
	geom     *geometry.Connection
	state    State
	selected bool
	conv     nodes.Converter
}

// NewDraft starts a connection dragged out of port p, which sits on side
// anchor, with the free end at the same position. The anchor must be
// nodes.PortOut or nodes.PortIn.
func NewDraft(anchor nodes.PortType, p Port, at geometry.Point) (*Connection, error) {
	if anchor != nodes.PortOut && anchor != nodes.PortIn {
		return nil, errors.New(errors.ErrCodePortDirection, "draft anchor must be an in or out port, got %v", anchor)
	}
	c := &Connection{
		id:   uuid.New(),
		geom: geometry.NewConnection(),
	}
	c.geom.SetEndpoints(at, at)
	c.setPort(anchor, p)
	c.state.SetRequiredPort(anchor.Opposite())
	return c, nil
}

// Connect creates a complete connection between out and in, positioned at
// the two given points. It is refused when the types are incompatible.
func Connect(out, in Port, source, sink geometry.Point, r Resolver) (*Connection, error) {
	conv, err := resolve(out.Type, in.Type, r)
	if err != nil {
		return nil, err
	}
	c := &Connection{
		id:   uuid.New(),
		out:  out,
		in:   in,
		geom: geometry.NewConnection(),
		conv: conv,
	}
	c.geom.SetEndpoints(source, sink)
	return c, nil
}

// resolve applies the compatibility rule: equal IDs need no converter,
// otherwise one must be registered for exactly (out, in).
func resolve(out, in nodes.DataType, r Resolver) (nodes.Converter, error) {
	if out.Equal(in) {
		return nil, nil
	}
	if r != nil {
		if conv, ok := r.TypeConverter(out, in); ok {
			return conv, nil
		}
	}
	return nil, errors.New(errors.ErrCodeIncompatibleTypes, "no converter from %s to %s", out, in)
}

func (c *Connection) ID() uuid.UUID                  { return c.id }
func (c *Connection) Geometry() *geometry.Connection { return c.geom }
func (c *Connection) State() State                   { return c.state }
func (c *Connection) Selected() bool                 { return c.selected }
func (c *Connection) SetSelected(s bool)             { c.selected = s }
func (c *Connection) SetHovered(h bool)              { c.geom.SetHovered(h) }

// Converter returns the converter applied in flight; nil for homogeneous
// connections and drafts.
func (c *Connection) Converter() nodes.Converter { return c.conv }

// Port returns the port on side pt; the zero Port when that side is free.
func (c *Connection) Port(pt nodes.PortType) Port {
	switch pt {
	case nodes.PortOut:
		return c.out
	case nodes.PortIn:
		return c.in
	default:
		return Port{}
	}
}

// DataType returns the data type of the port on side pt.
func (c *Connection) DataType(pt nodes.PortType) nodes.DataType {
	return c.Port(pt).Type
}

// Endpoint returns the scene position of side pt.
func (c *Connection) Endpoint(pt nodes.PortType) geometry.Point {
	if pt == nodes.PortIn {
		return c.geom.Sink()
	}
	return c.geom.Source()
}

// Drag moves the free end of a draft to the pointer position.
// It does nothing once both ends are anchored.
func (c *Connection) Drag(to geometry.Point) {
	switch c.state.RequiredPort() {
	case nodes.PortIn:
		c.geom.SetSink(to)
	case nodes.PortOut:
		c.geom.SetSource(to)
	}
}

// Attach anchors the free end of a draft at port p, positioned at at.
// The connection is left unchanged when p sits on the wrong side or when
// the types are incompatible.
func (c *Connection) Attach(side nodes.PortType, p Port, at geometry.Point, r Resolver) error {
	required := c.state.RequiredPort()
	if required == nodes.PortNone {
		return errors.New(errors.ErrCodePortDirection, "connection is already anchored at both ends")
	}
	if side != required {
		return errors.New(errors.ErrCodePortDirection, "expected an %s port, got %s", required, side)
	}

	out, in := c.out, p
	if required == nodes.PortOut {
		out, in = p, c.in
	}
	conv, err := resolve(out.Type, in.Type, r)
	if err != nil {
		return err
	}

	c.setPort(required, p)
	c.conv = conv
	c.Drag(at)
	c.state.SetNoRequiredPort()
	return nil
}

// Transfer passes a value from the out port to the in port, converting it
// when the endpoint types differ.
func (c *Connection) Transfer(d nodes.NodeData) nodes.NodeData {
	if c.conv == nil || d == nil {
		return d
	}
	return c.conv(d)
}

func (c *Connection) setPort(pt nodes.PortType, p Port) {
	switch pt {
	case nodes.PortOut:
		c.out = p
	case nodes.PortIn:
		c.in = p
	}
}
