package nodes

import (
	"maps"
	"slices"

	"github.com/matzehuels/portwire/pkg/observability"
)

// DefaultCategory is used when a model is registered without a category.
const DefaultCategory = "Nodes"

// NodeModel is the capability every registered node variant provides.
// The registry interprets nothing beyond these two methods.
type NodeModel interface {
	Name() string
	Clone() NodeModel
}

// PortedModel is implemented by models that declare typed ports.
type PortedModel interface {
	NodeModel
	Caption() string
	NumPorts(PortType) int
	PortDataType(pt PortType, index int) DataType
}

// Factory creates a fresh model instance.
type Factory func() NodeModel

type modelEntry struct {
	category string
	factory  Factory
}

// ModelRegistry stores node-model factories by name, their categories, and
// the converters between the data types their ports exchange. The zero value
// is an empty registry ready to use.
type ModelRegistry struct {
	models     map[string]modelEntry
	categories map[string]struct{}
	converters *ConverterRegistry
}

// NewModelRegistry creates an empty registry with its own ConverterRegistry.
func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{
		models:     make(map[string]modelEntry),
		categories: make(map[string]struct{}),
		converters: NewConverterRegistry(),
	}
}

// Register adds a factory under name unless the name is already taken.
// Duplicates are ignored so repeated setup stays idempotent; the result
// reports whether the factory was stored.
func (r *ModelRegistry) Register(name, category string, f Factory) bool {
	if f == nil {
		return false
	}
	if _, ok := r.models[name]; ok {
		return false
	}
	if category == "" {
		category = DefaultCategory
	}
	if r.models == nil {
		r.models = make(map[string]modelEntry)
		r.categories = make(map[string]struct{})
	}
	r.models[name] = modelEntry{category: category, factory: f}
	r.categories[category] = struct{}{}
	return true
}

// RegisterModel registers m under m.Name(), cloning it for every Create.
func (r *ModelRegistry) RegisterModel(m NodeModel, category string) bool {
	return r.Register(m.Name(), category, m.Clone)
}

// Create instantiates the model registered under name.
func (r *ModelRegistry) Create(name string) (NodeModel, bool) {
	e, ok := r.models[name]
	observability.Registry().OnModelCreate(name, ok)
	if !ok {
		return nil, false
	}
	return e.factory(), true
}

// Categories returns every category used by a successful registration, sorted.
func (r *ModelRegistry) Categories() []string {
	return slices.Sorted(maps.Keys(r.categories))
}

// Category returns the category name was registered under.
func (r *ModelRegistry) Category(name string) (string, bool) {
	e, ok := r.models[name]
	return e.category, ok
}

// Names returns all registered model names, sorted.
func (r *ModelRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.models))
}

// NamesIn returns the sorted model names registered under category.
func (r *ModelRegistry) NamesIn(category string) []string {
	var names []string
	for name, e := range r.models {
		if e.category == category {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// RegisterTypeConverter stores c for (out, in) in the embedded converter registry.
func (r *ModelRegistry) RegisterTypeConverter(out, in DataType, c Converter) {
	r.Converters().Register(out, in, c)
}

// TypeConverter returns the converter registered for (out, in).
func (r *ModelRegistry) TypeConverter(out, in DataType) (Converter, bool) {
	return r.Converters().Lookup(out, in)
}

// Compatible applies the converter registry's compatibility rule.
func (r *ModelRegistry) Compatible(out, in DataType) bool {
	return r.Converters().Compatible(out, in)
}

// Converters exposes the embedded converter registry.
func (r *ModelRegistry) Converters() *ConverterRegistry {
	if r.converters == nil {
		r.converters = NewConverterRegistry()
	}
	return r.converters
}
