package nodes

// DataType identifies what kind of value a port produces or accepts.
type DataType struct {
	ID   string `json:"id" toml:"id"`
	Name string `json:"name" toml:"name"`
}

// Equal reports whether d and o are the same type. Only IDs are compared.
func (d DataType) Equal(o DataType) bool { return d.ID == o.ID }

// IsZero reports whether d has no ID.
func (d DataType) IsZero() bool { return d.ID == "" }

// String returns the display name, falling back to the ID.
func (d DataType) String() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// NodeData is a value travelling along a connection.
type NodeData interface {
	Type() DataType
}

// PortType tells which side of a node a port sits on.
type PortType int

const (
	PortNone PortType = iota
	PortIn
	PortOut
)

// Opposite returns the port type at the other end of a connection.
func (p PortType) Opposite() PortType {
	switch p {
	case PortIn:
		return PortOut
	case PortOut:
		return PortIn
	default:
		return PortNone
	}
}

func (p PortType) String() string {
	switch p {
	case PortIn:
		return "in"
	case PortOut:
		return "out"
	default:
		return "none"
	}
}
