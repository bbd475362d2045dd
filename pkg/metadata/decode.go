// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"fmt"
	"sort"

	"github.com/ChainSafe/gosubxt/lib/common"
)

// Magic is the little endian "meta" prefix of encoded metadata.
const Magic uint32 = 0x6174656d

// Decode decodes SCALE encoded RuntimeMetadataPrefixed bytes.
func Decode(data []byte) (*Metadata, error) {
	r := newReader(data)

	magic := r.u32()
	if r.err == nil && magic != Magic {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, magic)
	}

	version := r.u8()
	if r.err != nil {
		return nil, fmt.Errorf("decoding metadata prefix: %w", r.err)
	}
	if version != 14 && version != 15 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	m := &Metadata{Version: version}
	m.Types = r.registry()
	m.Pallets = r.pallets(version)
	if version == 14 {
		m.Extrinsic = r.extrinsicV14()
		m.RuntimeType = r.compact()
	} else {
		m.Extrinsic = r.extrinsicV15()
		m.RuntimeType = r.compact()
		m.APIs = r.runtimeAPIs()
		m.OuterEnums = OuterEnums{
			CallType:  r.compact(),
			EventType: r.compact(),
			ErrorType: r.compact(),
		}
		m.Custom = r.custom()
	}

	if r.err != nil {
		return nil, fmt.Errorf("decoding metadata v%d: %w", version, r.err)
	}
	if r.source.Len() > 0 {
		return nil, fmt.Errorf("%w: %d", ErrTrailingBytes, r.source.Len())
	}

	m.Init()
	return m, nil
}

// DecodeHex decodes 0x prefixed hex encoded metadata, as returned by
// the state_getMetadata RPC method.
func DecodeHex(s string) (*Metadata, error) {
	data, err := common.HexToBytes(s)
	if err != nil {
		return nil, fmt.Errorf("decoding metadata hex: %w", err)
	}
	return Decode(data)
}

func (r *reader) registry() *Registry {
	n := r.length()
	registry := NewRegistry()
	for i := 0; i < n && r.err == nil; i++ {
		t := &Type{ID: r.compact()}
		t.Path = r.strs()
		t.Params = r.typeParams()
		t.Def = r.typeDef()
		t.Docs = r.strs()
		registry.Add(t)
	}
	return registry
}

func (r *reader) typeParams() []TypeParam {
	n := r.length()
	params := make([]TypeParam, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		params = append(params, TypeParam{
			Name: r.str(),
			Type: r.optionalCompact(),
		})
	}
	return params
}

func (r *reader) fields() []Field {
	n := r.length()
	fields := make([]Field, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		fields = append(fields, Field{
			Name:     r.optionalStr(),
			Type:     r.compact(),
			TypeName: r.optionalStr(),
			Docs:     r.strs(),
		})
	}
	return fields
}

func (r *reader) typeDef() (def TypeDef) {
	def.Kind = TypeDefKind(r.u8())
	switch def.Kind {
	case KindComposite:
		def.Fields = r.fields()
	case KindVariant:
		n := r.length()
		def.Variants = make([]Variant, 0, n)
		for i := 0; i < n && r.err == nil; i++ {
			def.Variants = append(def.Variants, Variant{
				Name:   r.str(),
				Fields: r.fields(),
				Index:  r.u8(),
				Docs:   r.strs(),
			})
		}
	case KindSequence, KindCompact:
		def.Elem = r.compact()
	case KindArray:
		def.Len = r.u32()
		def.Elem = r.compact()
	case KindTuple:
		n := r.length()
		def.Tuple = make([]uint32, 0, n)
		for i := 0; i < n && r.err == nil; i++ {
			def.Tuple = append(def.Tuple, r.compact())
		}
	case KindPrimitive:
		def.Primitive = Primitive(r.u8())
		if r.err == nil && int(def.Primitive) >= len(primitiveNames) {
			r.fail(fmt.Errorf("unknown primitive %d", def.Primitive))
		}
	case KindBitSequence:
		def.BitStore = r.compact()
		def.BitOrder = r.compact()
	default:
		r.fail(fmt.Errorf("unknown type definition kind %d", def.Kind))
	}
	return def
}

func (r *reader) pallets(version uint8) []*Pallet {
	n := r.length()
	pallets := make([]*Pallet, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		pallet := &Pallet{Name: r.str()}
		if r.flag() {
			pallet.Storage = r.palletStorage()
		}
		pallet.CallType = r.optionalCompact()
		pallet.EventType = r.optionalCompact()
		pallet.Constants = r.constants()
		pallet.ErrorType = r.optionalCompact()
		pallet.Index = r.u8()
		if version >= 15 {
			pallet.Docs = r.strs()
		}
		pallets = append(pallets, pallet)
	}
	return pallets
}

func (r *reader) palletStorage() *PalletStorage {
	storage := &PalletStorage{Prefix: r.str()}
	n := r.length()
	storage.Entries = make([]StorageEntry, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		entry := StorageEntry{
			Name:     r.str(),
			Modifier: StorageModifier(r.u8()),
		}
		switch kind := r.u8(); kind {
		case 0:
			entry.ValueType = r.compact()
		case 1:
			count := r.length()
			entry.Hashers = make([]StorageHasher, 0, count)
			for j := 0; j < count && r.err == nil; j++ {
				hasher := StorageHasher(r.u8())
				if int(hasher) >= len(hasherNames) {
					r.fail(fmt.Errorf("unknown storage hasher %d", hasher))
				}
				entry.Hashers = append(entry.Hashers, hasher)
			}
			key := r.compact()
			entry.KeyType = &key
			entry.ValueType = r.compact()
		default:
			r.fail(fmt.Errorf("unknown storage entry type %d", kind))
		}
		entry.Default = r.bytes()
		entry.Docs = r.strs()
		storage.Entries = append(storage.Entries, entry)
	}
	return storage
}

func (r *reader) constants() []Constant {
	n := r.length()
	constants := make([]Constant, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		constants = append(constants, Constant{
			Name:  r.str(),
			Type:  r.compact(),
			Value: r.bytes(),
			Docs:  r.strs(),
		})
	}
	return constants
}

func (r *reader) signedExtensions() []SignedExtension {
	n := r.length()
	extensions := make([]SignedExtension, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		extensions = append(extensions, SignedExtension{
			Identifier:       r.str(),
			Type:             r.compact(),
			AdditionalSigned: r.compact(),
		})
	}
	return extensions
}

func (r *reader) extrinsicV14() Extrinsic {
	return Extrinsic{
		Type:             r.compact(),
		Version:          r.u8(),
		SignedExtensions: r.signedExtensions(),
	}
}

func (r *reader) extrinsicV15() Extrinsic {
	return Extrinsic{
		Version:          r.u8(),
		AddressType:      r.compact(),
		CallType:         r.compact(),
		SignatureType:    r.compact(),
		ExtraType:        r.compact(),
		SignedExtensions: r.signedExtensions(),
	}
}

func (r *reader) runtimeAPIs() []RuntimeAPI {
	n := r.length()
	apis := make([]RuntimeAPI, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		api := RuntimeAPI{Name: r.str()}
		count := r.length()
		api.Methods = make([]RuntimeAPIMethod, 0, count)
		for j := 0; j < count && r.err == nil; j++ {
			method := RuntimeAPIMethod{Name: r.str()}
			inputs := r.length()
			method.Inputs = make([]RuntimeAPIParam, 0, inputs)
			for k := 0; k < inputs && r.err == nil; k++ {
				method.Inputs = append(method.Inputs, RuntimeAPIParam{
					Name: r.str(),
					Type: r.compact(),
				})
			}
			method.Output = r.compact()
			method.Docs = r.strs()
			api.Methods = append(api.Methods, method)
		}
		api.Docs = r.strs()
		apis = append(apis, api)
	}
	return apis
}

func (r *reader) custom() map[string]CustomValue {
	n := r.length()
	custom := make(map[string]CustomValue, n)
	for i := 0; i < n && r.err == nil; i++ {
		key := r.str()
		custom[key] = CustomValue{
			Type:  r.compact(),
			Value: r.bytes(),
		}
	}
	return custom
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
