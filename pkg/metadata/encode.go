// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"fmt"
)

// Encode encodes the metadata as RuntimeMetadataPrefixed bytes, in the
// version it was decoded from.
func (m *Metadata) Encode() ([]byte, error) {
	if m.Version != 14 && m.Version != 15 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, m.Version)
	}

	w := newWriter()
	w.u32(Magic)
	w.u8(m.Version)
	w.registry(m.Types)
	w.pallets(m.Pallets, m.Version)
	if m.Version == 14 {
		w.compact(uint64(m.Extrinsic.Type))
		w.u8(m.Extrinsic.Version)
		w.signedExtensions(m.Extrinsic.SignedExtensions)
		w.compact(uint64(m.RuntimeType))
	} else {
		w.u8(m.Extrinsic.Version)
		w.compact(uint64(m.Extrinsic.AddressType))
		w.compact(uint64(m.Extrinsic.CallType))
		w.compact(uint64(m.Extrinsic.SignatureType))
		w.compact(uint64(m.Extrinsic.ExtraType))
		w.signedExtensions(m.Extrinsic.SignedExtensions)
		w.compact(uint64(m.RuntimeType))
		w.runtimeAPIs(m.APIs)
		w.compact(uint64(m.OuterEnums.CallType))
		w.compact(uint64(m.OuterEnums.EventType))
		w.compact(uint64(m.OuterEnums.ErrorType))
		w.custom(m.Custom)
	}

	if w.err != nil {
		return nil, fmt.Errorf("encoding metadata v%d: %w", m.Version, w.err)
	}
	return w.buffer.Bytes(), nil
}

func (w *writer) registry(registry *Registry) {
	ids := registry.IDs()
	w.compact(uint64(len(ids)))
	for _, id := range ids {
		t := registry.types[id]
		w.compact(uint64(t.ID))
		w.strs(t.Path)
		w.compact(uint64(len(t.Params)))
		for _, param := range t.Params {
			w.str(param.Name)
			w.optionalCompact(param.Type)
		}
		w.typeDef(t.Def)
		w.strs(t.Docs)
	}
}

func (w *writer) fields(fields []Field) {
	w.compact(uint64(len(fields)))
	for _, field := range fields {
		w.optionalStr(field.Name)
		w.compact(uint64(field.Type))
		w.optionalStr(field.TypeName)
		w.strs(field.Docs)
	}
}

func (w *writer) typeDef(def TypeDef) {
	w.u8(uint8(def.Kind))
	switch def.Kind {
	case KindComposite:
		w.fields(def.Fields)
	case KindVariant:
		w.compact(uint64(len(def.Variants)))
		for _, variant := range def.Variants {
			w.str(variant.Name)
			w.fields(variant.Fields)
			w.u8(variant.Index)
			w.strs(variant.Docs)
		}
	case KindSequence, KindCompact:
		w.compact(uint64(def.Elem))
	case KindArray:
		w.u32(def.Len)
		w.compact(uint64(def.Elem))
	case KindTuple:
		w.compact(uint64(len(def.Tuple)))
		for _, elem := range def.Tuple {
			w.compact(uint64(elem))
		}
	case KindPrimitive:
		w.u8(uint8(def.Primitive))
	case KindBitSequence:
		w.compact(uint64(def.BitStore))
		w.compact(uint64(def.BitOrder))
	default:
		w.fail(fmt.Errorf("unknown type definition kind %d", def.Kind))
	}
}

func (w *writer) pallets(pallets []*Pallet, version uint8) {
	w.compact(uint64(len(pallets)))
	for _, pallet := range pallets {
		w.str(pallet.Name)
		w.flag(pallet.Storage != nil)
		if pallet.Storage != nil {
			w.palletStorage(pallet.Storage)
		}
		w.optionalCompact(pallet.CallType)
		w.optionalCompact(pallet.EventType)
		w.constants(pallet.Constants)
		w.optionalCompact(pallet.ErrorType)
		w.u8(pallet.Index)
		if version >= 15 {
			w.strs(pallet.Docs)
		}
	}
}

func (w *writer) palletStorage(storage *PalletStorage) {
	w.str(storage.Prefix)
	w.compact(uint64(len(storage.Entries)))
	for _, entry := range storage.Entries {
		w.str(entry.Name)
		w.u8(uint8(entry.Modifier))
		if entry.KeyType == nil {
			w.u8(0)
			w.compact(uint64(entry.ValueType))
		} else {
			w.u8(1)
			w.compact(uint64(len(entry.Hashers)))
			for _, hasher := range entry.Hashers {
				w.u8(uint8(hasher))
			}
			w.compact(uint64(*entry.KeyType))
			w.compact(uint64(entry.ValueType))
		}
		w.bytes(entry.Default)
		w.strs(entry.Docs)
	}
}

func (w *writer) constants(constants []Constant) {
	w.compact(uint64(len(constants)))
	for _, constant := range constants {
		w.str(constant.Name)
		w.compact(uint64(constant.Type))
		w.bytes(constant.Value)
		w.strs(constant.Docs)
	}
}

func (w *writer) signedExtensions(extensions []SignedExtension) {
	w.compact(uint64(len(extensions)))
	for _, extension := range extensions {
		w.str(extension.Identifier)
		w.compact(uint64(extension.Type))
		w.compact(uint64(extension.AdditionalSigned))
	}
}

func (w *writer) runtimeAPIs(apis []RuntimeAPI) {
	w.compact(uint64(len(apis)))
	for _, api := range apis {
		w.str(api.Name)
		w.compact(uint64(len(api.Methods)))
		for _, method := range api.Methods {
			w.str(method.Name)
			w.compact(uint64(len(method.Inputs)))
			for _, input := range method.Inputs {
				w.str(input.Name)
				w.compact(uint64(input.Type))
			}
			w.compact(uint64(method.Output))
			w.strs(method.Docs)
		}
		w.strs(api.Docs)
	}
}

func (w *writer) custom(custom map[string]CustomValue) {
	w.compact(uint64(len(custom)))
	for _, key := range sortedKeys(custom) {
		w.str(key)
		w.compact(uint64(custom[key].Type))
		w.bytes(custom[key].Value)
	}
}
