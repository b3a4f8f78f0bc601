package nodes

import "testing"

var (
	intType   = DataType{ID: "integer", Name: "Integer"}
	floatType = DataType{ID: "float", Name: "Float"}
	textType  = DataType{ID: "text", Name: "Text"}
	numType   = DataType{ID: "number", Name: "Number"}
)

type intData struct{ v int }

func (intData) Type() DataType { return intType }

type floatData struct{ v float64 }

func (floatData) Type() DataType { return floatType }

func intToFloat(d NodeData) NodeData {
	i, ok := d.(intData)
	if !ok {
		return nil
	}
	return floatData{v: float64(i.v)}
}

func TestCompatibleSameIDIgnoresRegistry(t *testing.T) {
	reg := NewConverterRegistry()

	tests := []struct {
		name    string
		out, in DataType
	}{
		{"identical", intType, intType},
		{"same id different name", DataType{ID: "integer", Name: "Int"}, DataType{ID: "integer", Name: "Whole number"}},
		{"empty name", DataType{ID: "text"}, textType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reg.Compatible(tt.out, tt.in) {
				t.Errorf("Compatible(%v, %v) = false, want true", tt.out, tt.in)
			}
		})
	}
}

func TestConverterLookupIsDirectional(t *testing.T) {
	reg := NewConverterRegistry()
	reg.Register(intType, floatType, intToFloat)

	conv, ok := reg.Lookup(intType, floatType)
	if !ok || conv == nil {
		t.Fatal("Lookup(integer, float) should find the registered converter")
	}
	if got := conv(intData{v: 3}); got.(floatData).v != 3 {
		t.Errorf("converter produced %v, want 3", got)
	}

	if _, ok := reg.Lookup(floatType, intType); ok {
		t.Error("Lookup(float, integer) should be absent: registration is directional")
	}
	if reg.Compatible(floatType, intType) {
		t.Error("Compatible(float, integer) should be false")
	}
}

func TestConverterRegisteredAndMissingPairs(t *testing.T) {
	reg := NewConverterRegistry()
	reg.Register(intType, floatType, intToFloat)

	// Integer out port to Float in port.
	if !reg.Compatible(intType, floatType) {
		t.Error("integer -> float should be compatible")
	}

	// Nothing registered for Text -> Number.
	if reg.Compatible(textType, numType) {
		t.Error("text -> number should be incompatible")
	}
	if conv, ok := reg.Lookup(textType, numType); ok || conv != nil {
		t.Error("Lookup(text, number) should return an absent converter")
	}
}

func TestConverterRegisterOverwrites(t *testing.T) {
	reg := NewConverterRegistry()
	reg.Register(intType, floatType, intToFloat)
	reg.Register(intType, floatType, func(NodeData) NodeData { return floatData{v: -1} })

	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	conv, _ := reg.Lookup(intType, floatType)
	if got := conv(intData{v: 7}).(floatData).v; got != -1 {
		t.Errorf("second registration should win, got %v", got)
	}
}

func TestConverterRegisterNilRemoves(t *testing.T) {
	reg := NewConverterRegistry()
	reg.Register(intType, floatType, intToFloat)
	reg.Register(intType, floatType, nil)

	if _, ok := reg.Lookup(intType, floatType); ok {
		t.Error("registering nil should remove the pair")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestConverterRegistryZeroValue(t *testing.T) {
	var reg ConverterRegistry
	if _, ok := reg.Lookup(intType, floatType); ok {
		t.Error("empty registry should find nothing")
	}
	reg.Register(intType, floatType, nil)
	reg.Register(intType, floatType, intToFloat)
	if !reg.Compatible(intType, floatType) || reg.Len() != 1 {
		t.Errorf("zero-value registry did not store the converter, Len() = %d", reg.Len())
	}
}

func TestConverterLookupMatchesOnIDOnly(t *testing.T) {
	reg := NewConverterRegistry()
	reg.Register(intType, floatType, intToFloat)

	renamed := DataType{ID: "float", Name: "Real"}
	if _, ok := reg.Lookup(DataType{ID: "integer"}, renamed); !ok {
		t.Error("lookup should ignore display names")
	}
	if _, ok := reg.Lookup(DataType{ID: "Integer"}, floatType); ok {
		t.Error("lookup should not fold case")
	}
}

func TestConverterPairsSorted(t *testing.T) {
	reg := NewConverterRegistry()
	noop := func(d NodeData) NodeData { return d }
	reg.Register(textType, numType, noop)
	reg.Register(intType, textType, noop)
	reg.Register(intType, floatType, noop)
	reg.Register(floatType, intType, noop)

	want := []string{"float>integer", "integer>float", "integer>text", "text>number"}
	pairs := reg.Pairs()
	if len(pairs) != len(want) {
		t.Fatalf("Pairs() len = %d, want %d", len(pairs), len(want))
	}
	for i, p := range pairs {
		if got := p.Out.ID + ">" + p.In.ID; got != want[i] {
			t.Errorf("Pairs()[%d] = %s, want %s", i, got, want[i])
		}
	}
}
