// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"fmt"
	"sort"
)

// TypeDefKind is the kind of a registry type definition.
type TypeDefKind uint8

// Type definition kinds, in their SCALE variant order.
const (
	KindComposite TypeDefKind = iota
	KindVariant
	KindSequence
	KindArray
	KindTuple
	KindPrimitive
	KindCompact
	KindBitSequence
)

func (k TypeDefKind) String() string {
	switch k {
	case KindComposite:
		return "composite"
	case KindVariant:
		return "variant"
	case KindSequence:
		return "sequence"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindPrimitive:
		return "primitive"
	case KindCompact:
		return "compact"
	case KindBitSequence:
		return "bitsequence"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Primitive is a primitive registry type.
type Primitive uint8

// Primitive types, in their SCALE variant order.
const (
	Bool Primitive = iota
	Char
	Str
	U8
	U16
	U32
	U64
	U128
	U256
	I8
	I16
	I32
	I64
	I128
	I256
)

var primitiveNames = [...]string{
	"bool", "char", "str", "u8", "u16", "u32", "u64", "u128", "u256",
	"i8", "i16", "i32", "i64", "i128", "i256",
}

func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("primitive(%d)", uint8(p))
}

// Size returns the encoded size in bytes of fixed width primitives,
// and 0 for bool-like or variable width primitives.
func (p Primitive) Size() int {
	switch p {
	case Bool, U8, I8:
		return 1
	case U16, I16:
		return 2
	case Char, U32, I32:
		return 4
	case U64, I64:
		return 8
	case U128, I128:
		return 16
	case U256, I256:
		return 32
	default:
		return 0
	}
}

// Field is a named or unnamed field of a composite or variant.
type Field struct {
	Name     string
	Type     uint32
	TypeName string
	Docs     []string
}

// Variant is one variant of a variant (enum) type.
type Variant struct {
	Name   string
	Fields []Field
	Index  uint8
	Docs   []string
}

// TypeParam is a generic parameter of a type. Type is nil when the
// parameter was erased.
type TypeParam struct {
	Name string
	Type *uint32
}

// TypeDef is the definition of a registry type. Which fields are set
// depends on Kind.
type TypeDef struct {
	Kind TypeDefKind

	// Composite
	Fields []Field
	// Variant
	Variants []Variant
	// Sequence, Array and Compact element type.
	Elem uint32
	// Array length.
	Len uint32
	// Tuple element types.
	Tuple []uint32
	// Primitive type.
	Primitive Primitive
	// BitSequence store and order types.
	BitStore uint32
	BitOrder uint32
}

// Type is a registry type.
type Type struct {
	ID     uint32
	Path   []string
	Params []TypeParam
	Def    TypeDef
	Docs   []string
}

// Registry is the portable type registry of the metadata.
type Registry struct {
	types map[uint32]*Type
}

// NewRegistry creates a registry from the given types.
func NewRegistry(types ...*Type) *Registry {
	r := &Registry{types: make(map[uint32]*Type, len(types))}
	for _, t := range types {
		r.types[t.ID] = t
	}
	return r
}

// Add inserts or replaces a type.
func (r *Registry) Add(t *Type) {
	r.types[t.ID] = t
}

// Len returns the number of types in the registry.
func (r *Registry) Len() int {
	return len(r.types)
}

// Type returns the type with the given id.
func (r *Registry) Type(id uint32) (*Type, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTypeNotFound, id)
	}
	return t, nil
}

// IDs returns the sorted type ids of the registry.
func (r *Registry) IDs() []uint32 {
	ids := make([]uint32, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Variants returns the variants of the variant type with the given id.
func (r *Registry) Variants(id uint32) ([]Variant, error) {
	t, err := r.Type(id)
	if err != nil {
		return nil, err
	}
	if t.Def.Kind != KindVariant {
		return nil, fmt.Errorf("%w: type %d is a %s", ErrNotVariant, id, t.Def.Kind)
	}
	return t.Def.Variants, nil
}

// PathString returns the rust style path of the type, or an empty string.
func (t *Type) PathString() string {
	s := ""
	for i, segment := range t.Path {
		if i > 0 {
			s += "::"
		}
		s += segment
	}
	return s
}

// Param returns the type of the named generic parameter.
func (t *Type) Param(name string) (id uint32, ok bool) {
	for _, param := range t.Params {
		if param.Name == name && param.Type != nil {
			return *param.Type, true
		}
	}
	return 0, false
}

// IsUnit returns true for the empty tuple and for composites without fields.
func (t *Type) IsUnit() bool {
	switch t.Def.Kind {
	case KindTuple:
		return len(t.Def.Tuple) == 0
	case KindComposite:
		return len(t.Def.Fields) == 0
	default:
		return false
	}
}

// forEachTypeRef calls fn with a pointer to every type id referenced by the
// type, so the references can be read or rewritten.
func (t *Type) forEachTypeRef(fn func(ref *uint32)) {
	for i := range t.Params {
		if t.Params[i].Type != nil {
			fn(t.Params[i].Type)
		}
	}

	switch t.Def.Kind {
	case KindComposite:
		for i := range t.Def.Fields {
			fn(&t.Def.Fields[i].Type)
		}
	case KindVariant:
		for i := range t.Def.Variants {
			for j := range t.Def.Variants[i].Fields {
				fn(&t.Def.Variants[i].Fields[j].Type)
			}
		}
	case KindSequence, KindArray, KindCompact:
		fn(&t.Def.Elem)
	case KindTuple:
		for i := range t.Def.Tuple {
			fn(&t.Def.Tuple[i])
		}
	case KindBitSequence:
		fn(&t.Def.BitStore)
		fn(&t.Def.BitOrder)
	}
}
