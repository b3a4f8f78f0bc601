package nodes

import (
	"slices"
	"testing"
)

type addModel struct{ variant string }

func (m *addModel) Name() string     { return "Add" }
func (m *addModel) Clone() NodeModel { return &addModel{variant: m.variant} }

func factoryFor(variant string) Factory {
	return func() NodeModel { return &addModel{variant: variant} }
}

func TestRegisterFirstWriterWins(t *testing.T) {
	reg := NewModelRegistry()

	if !reg.Register("Add", "Math", factoryFor("first")) {
		t.Fatal("first registration should be stored")
	}
	if reg.Register("Add", "Math", factoryFor("second")) {
		t.Error("duplicate registration should report false")
	}

	// The kept factory serves every Create.
	if got := reg.Categories(); !slices.Equal(got, []string{"Math"}) {
		t.Errorf("Categories() = %v, want [Math]", got)
	}
	for range 3 {
		m, ok := reg.Create("Add")
		if !ok {
			t.Fatal("Create(Add) should succeed")
		}
		if v := m.(*addModel).variant; v != "first" {
			t.Errorf("Create(Add) used factory %q, want first", v)
		}
	}
}

func TestRegisterDuplicateDoesNotAddCategory(t *testing.T) {
	reg := NewModelRegistry()
	reg.Register("Add", "Math", factoryFor("a"))
	reg.Register("Add", "Arithmetic", factoryFor("b"))

	if got := reg.Categories(); !slices.Equal(got, []string{"Math"}) {
		t.Errorf("Categories() = %v, want [Math]", got)
	}
	if c, _ := reg.Category("Add"); c != "Math" {
		t.Errorf("Category(Add) = %q, want Math", c)
	}
}

func TestCreateUnknown(t *testing.T) {
	reg := NewModelRegistry()
	m, ok := reg.Create("Missing")
	if ok || m != nil {
		t.Errorf("Create(Missing) = (%v, %v), want (nil, false)", m, ok)
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	reg := NewModelRegistry()
	reg.RegisterModel(&addModel{variant: "proto"}, "Math")

	a, _ := reg.Create("Add")
	b, _ := reg.Create("Add")
	if a == b {
		t.Error("Create should clone, not share, the prototype")
	}
	if a.(*addModel).variant != "proto" {
		t.Errorf("clone lost state: %+v", a)
	}
}

func TestRegisterDefaults(t *testing.T) {
	reg := NewModelRegistry()
	if reg.Register("Nil", "x", nil) {
		t.Error("nil factory should be rejected")
	}
	reg.Register("Add", "", factoryFor("a"))
	if c, _ := reg.Category("Add"); c != DefaultCategory {
		t.Errorf("Category(Add) = %q, want %q", c, DefaultCategory)
	}
}

func TestNamesAndCategories(t *testing.T) {
	reg := NewModelRegistry()
	reg.Register("Sub", "Math", factoryFor("a"))
	reg.Register("Add", "Math", factoryFor("a"))
	reg.Register("Print", "Output", factoryFor("a"))

	if got := reg.Names(); !slices.Equal(got, []string{"Add", "Print", "Sub"}) {
		t.Errorf("Names() = %v", got)
	}
	if got := reg.NamesIn("Math"); !slices.Equal(got, []string{"Add", "Sub"}) {
		t.Errorf("NamesIn(Math) = %v", got)
	}
	if got := reg.Categories(); !slices.Equal(got, []string{"Math", "Output"}) {
		t.Errorf("Categories() = %v", got)
	}
	if _, ok := reg.Category("Nope"); ok {
		t.Error("Category(Nope) should be absent")
	}
}

func TestTypeConverterDelegates(t *testing.T) {
	reg := NewModelRegistry()
	reg.RegisterTypeConverter(intType, floatType, intToFloat)

	if _, ok := reg.TypeConverter(intType, floatType); !ok {
		t.Error("TypeConverter should find registered converter")
	}
	if _, ok := reg.Converters().Lookup(intType, floatType); !ok {
		t.Error("Converters() should expose the same registry")
	}
	if reg.Compatible(floatType, intType) {
		t.Error("reverse direction should be incompatible")
	}
	if !reg.Compatible(textType, textType) {
		t.Error("same type should be compatible")
	}
}

func TestModelRegistryZeroValue(t *testing.T) {
	var reg ModelRegistry
	if reg.Compatible(intType, floatType) || len(reg.Names()) != 0 {
		t.Error("empty registry should know nothing")
	}
	if !reg.Register("Add", "", factoryFor("zero")) {
		t.Fatal("Register on zero value failed")
	}
	reg.RegisterTypeConverter(intType, floatType, intToFloat)

	if _, ok := reg.Create("Add"); !ok {
		t.Error("Create should find the registered model")
	}
	if got := reg.Categories(); !slices.Equal(got, []string{DefaultCategory}) {
		t.Errorf("Categories() = %v", got)
	}
	if !reg.Compatible(intType, floatType) {
		t.Error("converter registered on zero value should be found")
	}
}

func TestPortTypeOpposite(t *testing.T) {
	if PortIn.Opposite() != PortOut || PortOut.Opposite() != PortIn || PortNone.Opposite() != PortNone {
		t.Error("Opposite() mismatch")
	}
	if PortOut.String() != "out" {
		t.Errorf("String() = %q", PortOut.String())
	}
}
