package nodes

import (
	"cmp"
	"slices"

	"github.com/matzehuels/portwire/pkg/observability"
)

// Converter transforms a value tagged with a pair's out type into one tagged
// with its in type. A nil Converter means no conversion is registered.
type Converter func(NodeData) NodeData

// ConverterKey is an ordered (out, in) pair of data types.
type ConverterKey struct {
	Out DataType
	In  DataType
}

// pairKey is the map key: conversion is keyed by IDs only.
type pairKey struct {
	out, in string
}

type converterEntry struct {
	key  ConverterKey
	conv Converter
}

// ConverterRegistry maps ordered data type pairs to converters.
// It is populated before painting starts and only read afterwards.
// The zero value is an empty registry ready to use.
type ConverterRegistry struct {
	entries map[pairKey]converterEntry
}

// NewConverterRegistry creates an empty registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{entries: make(map[pairKey]converterEntry)}
}

// Register stores c for the pair (out, in), replacing any previous converter.
// Registering a nil converter removes the pair.
func (r *ConverterRegistry) Register(out, in DataType, c Converter) {
	k := pairKey{out.ID, in.ID}
	if c == nil {
		delete(r.entries, k)
		return
	}
	if r.entries == nil {
		r.entries = make(map[pairKey]converterEntry)
	}
	r.entries[k] = converterEntry{key: ConverterKey{Out: out, In: in}, conv: c}
}

// Lookup returns the converter registered for exactly (out, in).
// There is no coercion and no fallback to the reverse pair.
func (r *ConverterRegistry) Lookup(out, in DataType) (Converter, bool) {
	e, ok := r.entries[pairKey{out.ID, in.ID}]
	observability.Registry().OnConverterLookup(out.ID, in.ID, ok)
	if !ok {
		return nil, false
	}
	return e.conv, true
}

// TypeConverter is Lookup under the name connections resolve through.
func (r *ConverterRegistry) TypeConverter(out, in DataType) (Converter, bool) {
	return r.Lookup(out, in)
}

// Compatible reports whether a port of type out may feed a port of type in.
func (r *ConverterRegistry) Compatible(out, in DataType) bool {
	if out.Equal(in) {
		return true
	}
	_, ok := r.Lookup(out, in)
	return ok
}

// Pairs returns the registered pairs ordered by out ID, then in ID.
func (r *ConverterRegistry) Pairs() []ConverterKey {
	keys := make([]ConverterKey, 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.key)
	}
	slices.SortFunc(keys, func(a, b ConverterKey) int {
		return cmp.Or(cmp.Compare(a.Out.ID, b.Out.ID), cmp.Compare(a.In.ID, b.In.ID))
	})
	return keys
}

// Len returns the number of registered pairs.
func (r *ConverterRegistry) Len() int { return len(r.entries) }
