// Package nodes holds the type-compatibility resolver and the model registry.
//
// # Data types
//
// Every port declares a [DataType]. Two data types are the same type when
// their IDs match; the Name is only shown to users.
//
// # Converters
//
// A [ConverterRegistry] maps an ordered (out, in) pair of data types to a
// [Converter] that transforms a value in flight. Conversion is directional:
// registering Integer→Float says nothing about Float→Integer.
//
// The single compatibility rule used by the rest of portwire is
// [ConverterRegistry.Compatible]: a port of type A may feed a port of type B
// when A.ID == B.ID or a converter is registered for (A, B).
//
//	reg := nodes.NewConverterRegistry()
//	reg.Register(Integer, Float, intToFloat)
//	reg.Compatible(Integer, Float) // true
//	reg.Compatible(Float, Integer) // false
//
// # Models
//
// A [ModelRegistry] stores named node-model factories with their category and
// owns a ConverterRegistry. Registration is idempotent by name: the first
// registration wins and later ones are ignored.
//
// Lookups never fail. Unknown names and missing converters come back as
// absent values (a false second result), and callers treat a missing
// converter exactly like incompatible types.
package nodes
