// Package builtin provides a small catalogue of data types, converters and
// node models: enough to drive the CLI, the HTTP API and tests.
package builtin

import (
	"strconv"

	"github.com/matzehuels/portwire/pkg/nodes"
)

// Data types.
var (
	Integer = nodes.DataType{ID: "integer", Name: "Integer"}
	Float   = nodes.DataType{ID: "float", Name: "Float"}
	Text    = nodes.DataType{ID: "text", Name: "Text"}
	Boolean = nodes.DataType{ID: "boolean", Name: "Boolean"}
)

// Types lists every builtin data type.
func Types() []nodes.DataType {
	return []nodes.DataType{Boolean, Float, Integer, Text}
}

// TypeByID returns the builtin data type with the given id.
func TypeByID(id string) (nodes.DataType, bool) {
	for _, t := range Types() {
		if t.ID == id {
			return t, true
		}
	}
	return nodes.DataType{}, false
}

// IntegerData carries an Integer value.
type IntegerData struct{ Value int64 }

func (IntegerData) Type() nodes.DataType { return Integer }

// FloatData carries a Float value.
type FloatData struct{ Value float64 }

func (FloatData) Type() nodes.DataType { return Float }

// TextData carries a Text value.
type TextData struct{ Value string }

func (TextData) Type() nodes.DataType { return Text }

// BooleanData carries a Boolean value.
type BooleanData struct{ Value bool }

func (BooleanData) Type() nodes.DataType { return Boolean }

// IntegerToFloat widens an integer.
func IntegerToFloat(d nodes.NodeData) nodes.NodeData {
	if v, ok := d.(IntegerData); ok {
		return FloatData{Value: float64(v.Value)}
	}
	return nil
}

// FloatToInteger truncates towards zero.
func FloatToInteger(d nodes.NodeData) nodes.NodeData {
	if v, ok := d.(FloatData); ok {
		return IntegerData{Value: int64(v.Value)}
	}
	return nil
}

// IntegerToText formats in base 10.
func IntegerToText(d nodes.NodeData) nodes.NodeData {
	if v, ok := d.(IntegerData); ok {
		return TextData{Value: strconv.FormatInt(v.Value, 10)}
	}
	return nil
}

// FloatToText formats with the shortest representation.
func FloatToText(d nodes.NodeData) nodes.NodeData {
	if v, ok := d.(FloatData); ok {
		return TextData{Value: strconv.FormatFloat(v.Value, 'g', -1, 64)}
	}
	return nil
}

// BooleanToInteger maps true to 1 and false to 0.
func BooleanToInteger(d nodes.NodeData) nodes.NodeData {
	if v, ok := d.(BooleanData); ok {
		if v.Value {
			return IntegerData{Value: 1}
		}
		return IntegerData{Value: 0}
	}
	return nil
}

// Categories used by the catalogue.
const (
	CategorySources   = "Sources"
	CategoryOperators = "Operators"
	CategoryDisplays  = "Displays"
)

// Model is a node model declared by its port types.
type Model struct {
	name    string
	caption string
	in      []nodes.DataType
	out     []nodes.DataType
}

// NewModel creates a model with the given input and output port types.
func NewModel(name, caption string, in, out []nodes.DataType) *Model {
	return &Model{name: name, caption: caption, in: in, out: out}
}

func (m *Model) Name() string    { return m.name }
func (m *Model) Caption() string { return m.caption }

// Clone returns an independent copy of m.
func (m *Model) Clone() nodes.NodeModel {
	return &Model{
		name:    m.name,
		caption: m.caption,
		in:      append([]nodes.DataType(nil), m.in...),
		out:     append([]nodes.DataType(nil), m.out...),
	}
}

// NumPorts returns how many ports of the given side m declares.
func (m *Model) NumPorts(pt nodes.PortType) int {
	switch pt {
	case nodes.PortIn:
		return len(m.in)
	case nodes.PortOut:
		return len(m.out)
	default:
		return 0
	}
}

// PortDataType returns the type of a port, or the zero DataType when the
// port does not exist.
func (m *Model) PortDataType(pt nodes.PortType, index int) nodes.DataType {
	var ports []nodes.DataType
	switch pt {
	case nodes.PortIn:
		ports = m.in
	case nodes.PortOut:
		ports = m.out
	}
	if index < 0 || index >= len(ports) {
		return nodes.DataType{}
	}
	return ports[index]
}

var catalogue = []struct {
	model    *Model
	category string
}{
	{NewModel("IntegerSource", "Integer Source", nil, []nodes.DataType{Integer}), CategorySources},
	{NewModel("FloatSource", "Float Source", nil, []nodes.DataType{Float}), CategorySources},
	{NewModel("TextSource", "Text Source", nil, []nodes.DataType{Text}), CategorySources},
	{NewModel("BooleanSource", "Boolean Source", nil, []nodes.DataType{Boolean}), CategorySources},
	{NewModel("Addition", "Addition", []nodes.DataType{Float, Float}, []nodes.DataType{Float}), CategoryOperators},
	{NewModel("Modulo", "Modulo", []nodes.DataType{Integer, Integer}, []nodes.DataType{Integer}), CategoryOperators},
	{NewModel("Comparison", "Greater Than", []nodes.DataType{Float, Float}, []nodes.DataType{Boolean}), CategoryOperators},
	{NewModel("TextDisplay", "Text Display", []nodes.DataType{Text}, nil), CategoryDisplays},
	{NewModel("FloatDisplay", "Float Display", []nodes.DataType{Float}, nil), CategoryDisplays},
}

// Register installs the builtin models and converters into reg.
// Calling it twice is harmless: model registration is first-writer-wins and
// converters are overwritten with identical functions.
func Register(reg *nodes.ModelRegistry) {
	for _, e := range catalogue {
		reg.RegisterModel(e.model, e.category)
	}

	reg.RegisterTypeConverter(Integer, Float, IntegerToFloat)
	reg.RegisterTypeConverter(Float, Integer, FloatToInteger)
	reg.RegisterTypeConverter(Integer, Text, IntegerToText)
	reg.RegisterTypeConverter(Float, Text, FloatToText)
	reg.RegisterTypeConverter(Boolean, Integer, BooleanToInteger)
}

// NewRegistry returns a registry populated with the builtin catalogue.
func NewRegistry() *nodes.ModelRegistry {
	reg := nodes.NewModelRegistry()
	Register(reg)
	return reg
}
