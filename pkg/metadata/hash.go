// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"encoding/binary"
	"sort"

	"github.com/ChainSafe/gosubxt/lib/common"
)

// Hash tags, mixed into every node so that shapes of different kinds
// never collide.
const (
	tagComposite byte = iota
	tagVariant
	tagSequence
	tagArray
	tagTuple
	tagPrimitive
	tagCompact
	tagBitSequence
	tagRecursive
	tagMissing
	tagField
	tagStorage
	tagConstant
	tagPallet
	tagAPI
)

// hasher computes structural type hashes. Hashes of types whose subtree
// did not hit a recursion guard are cached.
type hasher struct {
	registry *Registry
	cache    map[uint32]common.Hash
	visiting map[uint32]bool
	hitCycle bool
}

func newHasher(registry *Registry) *hasher {
	return &hasher{
		registry: registry,
		cache:    make(map[uint32]common.Hash),
		visiting: make(map[uint32]bool),
	}
}

func hashOf(parts ...[]byte) []byte {
	h := common.Twox256(common.Concat(parts...))
	return h[:]
}

func u32Bytes(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func (h *hasher) typeHash(id uint32) []byte {
	if cached, ok := h.cache[id]; ok {
		return cached[:]
	}
	if h.visiting[id] {
		h.hitCycle = true
		return hashOf([]byte{tagRecursive})
	}

	t, err := h.registry.Type(id)
	if err != nil {
		return hashOf([]byte{tagMissing}, u32Bytes(id))
	}

	outerCycle := h.hitCycle
	h.hitCycle = false
	h.visiting[id] = true

	var out []byte
	switch def := t.Def; def.Kind {
	case KindComposite:
		out = hashOf([]byte{tagComposite}, h.fieldsHash(def.Fields))
	case KindVariant:
		parts := [][]byte{{tagVariant}}
		for _, variant := range def.Variants {
			parts = append(parts, h.variantHash(variant))
		}
		out = hashOf(parts...)
	case KindSequence:
		out = hashOf([]byte{tagSequence}, h.typeHash(def.Elem))
	case KindArray:
		out = hashOf([]byte{tagArray}, u32Bytes(def.Len), h.typeHash(def.Elem))
	case KindTuple:
		parts := [][]byte{{tagTuple}}
		for _, elem := range def.Tuple {
			parts = append(parts, h.typeHash(elem))
		}
		out = hashOf(parts...)
	case KindPrimitive:
		out = hashOf([]byte{tagPrimitive, byte(def.Primitive)})
	case KindCompact:
		out = hashOf([]byte{tagCompact}, h.typeHash(def.Elem))
	case KindBitSequence:
		out = hashOf([]byte{tagBitSequence}, h.typeHash(def.BitStore), h.typeHash(def.BitOrder))
	}

	delete(h.visiting, id)
	if !h.hitCycle {
		h.cache[id] = common.NewHash(out)
	}
	h.hitCycle = h.hitCycle || outerCycle
	return out
}

func (h *hasher) fieldsHash(fields []Field) []byte {
	parts := make([][]byte, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, hashOf([]byte{tagField}, []byte(field.Name), h.typeHash(field.Type)))
	}
	return hashOf(parts...)
}

func (h *hasher) variantHash(variant Variant) []byte {
	return hashOf([]byte{variant.Index}, []byte(variant.Name), h.fieldsHash(variant.Fields))
}

func (h *hasher) storageHash(entry *StorageEntry) []byte {
	parts := [][]byte{{tagStorage, byte(entry.Modifier)}, []byte(entry.Name)}
	for _, hasher := range entry.Hashers {
		parts = append(parts, []byte{byte(hasher)})
	}
	if entry.KeyType != nil {
		parts = append(parts, h.typeHash(*entry.KeyType))
	}
	parts = append(parts, h.typeHash(entry.ValueType), entry.Default)
	return hashOf(parts...)
}

// entryShapeHash hashes the modifier, hashers, key and value types of an
// entry, leaving out its name and default bytes.
func (h *hasher) entryShapeHash(entry *StorageEntry) []byte {
	parts := [][]byte{{tagStorage, byte(entry.Modifier)}}
	for _, hasher := range entry.Hashers {
		parts = append(parts, []byte{byte(hasher)})
	}
	if entry.KeyType != nil {
		parts = append(parts, h.typeHash(*entry.KeyType))
	}
	parts = append(parts, h.typeHash(entry.ValueType))
	return hashOf(parts...)
}

func (h *hasher) constantHash(constant *Constant) []byte {
	return hashOf([]byte{tagConstant}, []byte(constant.Name), h.typeHash(constant.Type), constant.Value)
}

func (h *hasher) optionalTypeHash(id *uint32) []byte {
	if id == nil {
		return []byte{0}
	}
	return h.typeHash(*id)
}

func (h *hasher) palletHash(pallet *Pallet) []byte {
	parts := [][]byte{
		{tagPallet},
		[]byte(pallet.Name),
		h.optionalTypeHash(pallet.CallType),
		h.optionalTypeHash(pallet.EventType),
		h.optionalTypeHash(pallet.ErrorType),
	}
	if pallet.Storage != nil {
		parts = append(parts, []byte(pallet.Storage.Prefix))
		for i := range pallet.Storage.Entries {
			parts = append(parts, h.storageHash(&pallet.Storage.Entries[i]))
		}
	}
	for i := range pallet.Constants {
		parts = append(parts, h.constantHash(&pallet.Constants[i]))
	}
	return hashOf(parts...)
}

func (h *hasher) apiHash(api *RuntimeAPI) []byte {
	parts := [][]byte{{tagAPI}, []byte(api.Name)}
	for _, method := range api.Methods {
		methodParts := [][]byte{[]byte(method.Name)}
		for _, input := range method.Inputs {
			methodParts = append(methodParts, []byte(input.Name), h.typeHash(input.Type))
		}
		methodParts = append(methodParts, h.typeHash(method.Output))
		parts = append(parts, hashOf(methodParts...))
	}
	return hashOf(parts...)
}

// TypeHash returns the structural hash of a registry type. Type ids and
// paths do not contribute, so equally shaped types hash equally across
// runtimes.
func (m *Metadata) TypeHash(id uint32) common.Hash {
	return common.NewHash(newHasher(m.Types).typeHash(id))
}

// CallHash returns the structural hash of a pallet call.
func (m *Metadata) CallHash(palletName, callName string) (common.Hash, error) {
	_, call, err := m.Call(palletName, callName)
	if err != nil {
		return common.Hash{}, err
	}
	return common.NewHash(newHasher(m.Types).variantHash(*call)), nil
}

// StorageHash returns the structural hash of a storage entry.
func (m *Metadata) StorageHash(palletName, entryName string) (common.Hash, error) {
	entry, err := m.StorageEntry(palletName, entryName)
	if err != nil {
		return common.Hash{}, err
	}
	return common.NewHash(newHasher(m.Types).storageHash(entry)), nil
}

// ConstantHash returns the structural hash of a constant, value included.
func (m *Metadata) ConstantHash(palletName, constantName string) (common.Hash, error) {
	constant, err := m.Constant(palletName, constantName)
	if err != nil {
		return common.Hash{}, err
	}
	return common.NewHash(newHasher(m.Types).constantHash(constant)), nil
}

// PalletHash returns the structural hash of a whole pallet.
func (m *Metadata) PalletHash(palletName string) (common.Hash, error) {
	pallet, err := m.Pallet(palletName)
	if err != nil {
		return common.Hash{}, err
	}
	return common.NewHash(newHasher(m.Types).palletHash(pallet)), nil
}

// Hash returns the structural hash of the given pallets, or of every
// pallet and runtime API when palletNames is empty. Pallets are hashed in
// name order and pallets missing from the metadata are skipped.
func (m *Metadata) Hash(palletNames ...string) common.Hash {
	h := newHasher(m.Types)

	names := palletNames
	if len(names) == 0 {
		names = m.PalletNames()
	}
	names = append([]string(nil), names...)
	sort.Strings(names)

	parts := make([][]byte, 0, len(names)+len(m.APIs)+1)
	for _, name := range names {
		pallet, ok := m.byName[name]
		if !ok {
			continue
		}
		parts = append(parts, h.palletHash(pallet))
	}

	if len(palletNames) == 0 {
		apis := make([]*RuntimeAPI, len(m.APIs))
		for i := range m.APIs {
			apis[i] = &m.APIs[i]
		}
		sort.Slice(apis, func(i, j int) bool { return apis[i].Name < apis[j].Name })
		for _, api := range apis {
			parts = append(parts, h.apiHash(api))
		}
		parts = append(parts, h.typeHash(m.extrinsicAnchor()))
	}

	return common.NewHash(hashOf(parts...))
}

func (m *Metadata) extrinsicAnchor() uint32 {
	if m.Version >= 15 {
		return m.Extrinsic.CallType
	}
	return m.Extrinsic.Type
}
