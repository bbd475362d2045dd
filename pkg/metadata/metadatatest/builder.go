// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metadatatest builds runtime metadata for tests.
package metadatatest

import (
	"github.com/ChainSafe/gosubxt/pkg/metadata"
)

// Builder assembles a type registry and pallets into metadata.
type Builder struct {
	types      []*metadata.Type
	primitives map[metadata.Primitive]uint32
	pallets    []*metadata.Pallet
	extrinsic  metadata.Extrinsic
	runtime    uint32
	apis       []metadata.RuntimeAPI
	outer      metadata.OuterEnums
	custom     map[string]metadata.CustomValue
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		primitives: make(map[metadata.Primitive]uint32),
	}
}

// Ref returns a pointer to a copy of id.
func Ref(id uint32) *uint32 {
	return &id
}

// F returns a named field.
func F(name string, ty uint32) metadata.Field {
	return metadata.Field{Name: name, Type: ty}
}

// V returns a variant.
func V(index uint8, name string, fields ...metadata.Field) metadata.Variant {
	return metadata.Variant{Name: name, Index: index, Fields: fields}
}

// P returns a type parameter.
func P(name string, ty uint32) metadata.TypeParam {
	return metadata.TypeParam{Name: name, Type: Ref(ty)}
}

func (b *Builder) add(path []string, def metadata.TypeDef) uint32 {
	id := uint32(len(b.types))
	b.types = append(b.types, &metadata.Type{ID: id, Path: path, Def: def})
	return id
}

// Params sets the generic parameters of a type and returns its id.
func (b *Builder) Params(id uint32, params ...metadata.TypeParam) uint32 {
	b.types[id].Params = params
	return id
}

// Docs sets the docs of a type and returns its id.
func (b *Builder) Docs(id uint32, docs ...string) uint32 {
	b.types[id].Docs = docs
	return id
}

// Primitive returns the id of a primitive type, adding it once.
func (b *Builder) Primitive(p metadata.Primitive) uint32 {
	if id, ok := b.primitives[p]; ok {
		return id
	}
	id := b.add(nil, metadata.TypeDef{Kind: metadata.KindPrimitive, Primitive: p})
	b.primitives[p] = id
	return id
}

// Composite adds a composite type.
func (b *Builder) Composite(path []string, fields ...metadata.Field) uint32 {
	return b.add(path, metadata.TypeDef{Kind: metadata.KindComposite, Fields: fields})
}

// Variant adds a variant type.
func (b *Builder) Variant(path []string, variants ...metadata.Variant) uint32 {
	return b.add(path, metadata.TypeDef{Kind: metadata.KindVariant, Variants: variants})
}

// Sequence adds a sequence type.
func (b *Builder) Sequence(elem uint32) uint32 {
	return b.add(nil, metadata.TypeDef{Kind: metadata.KindSequence, Elem: elem})
}

// Array adds a fixed length array type.
func (b *Builder) Array(length, elem uint32) uint32 {
	return b.add(nil, metadata.TypeDef{Kind: metadata.KindArray, Len: length, Elem: elem})
}

// Tuple adds a tuple type.
func (b *Builder) Tuple(elems ...uint32) uint32 {
	return b.add(nil, metadata.TypeDef{Kind: metadata.KindTuple, Tuple: elems})
}

// Compact adds a compact type.
func (b *Builder) Compact(elem uint32) uint32 {
	return b.add(nil, metadata.TypeDef{Kind: metadata.KindCompact, Elem: elem})
}

// BitSequence adds a bit sequence type.
func (b *Builder) BitSequence(store, order uint32) uint32 {
	return b.add(nil, metadata.TypeDef{Kind: metadata.KindBitSequence, BitStore: store, BitOrder: order})
}

// Pallet adds a pallet.
func (b *Builder) Pallet(pallet *metadata.Pallet) {
	b.pallets = append(b.pallets, pallet)
}

// Extrinsic sets the extrinsic metadata.
func (b *Builder) Extrinsic(extrinsic metadata.Extrinsic) {
	b.extrinsic = extrinsic
}

// Runtime sets the runtime type.
func (b *Builder) Runtime(id uint32) {
	b.runtime = id
}

// API adds a runtime API, only encoded in version 15.
func (b *Builder) API(api metadata.RuntimeAPI) {
	b.apis = append(b.apis, api)
}

// OuterEnums sets the outer enums, only encoded in version 15.
func (b *Builder) OuterEnums(outer metadata.OuterEnums) {
	b.outer = outer
}

// Custom adds a custom value, only encoded in version 15.
func (b *Builder) Custom(name string, value metadata.CustomValue) {
	if b.custom == nil {
		b.custom = make(map[string]metadata.CustomValue)
	}
	b.custom[name] = value
}

// Build returns the metadata in the given version, 14 or 15.
func (b *Builder) Build(version uint8) *metadata.Metadata {
	m := &metadata.Metadata{
		Version:     version,
		Types:       metadata.NewRegistry(b.types...),
		Pallets:     b.pallets,
		Extrinsic:   b.extrinsic,
		RuntimeType: b.runtime,
	}
	if version >= 15 {
		m.Extrinsic.Type = 0
		m.APIs = b.apis
		m.OuterEnums = b.outer
		m.Custom = b.custom
	} else {
		m.Extrinsic.AddressType = 0
		m.Extrinsic.CallType = 0
		m.Extrinsic.SignatureType = 0
		m.Extrinsic.ExtraType = 0
		for _, pallet := range m.Pallets {
			pallet.Docs = nil
		}
	}
	m.Init()
	return m
}
