// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

// Retain trims the metadata in place to the given pallets and runtime APIs.
// A nil apis slice keeps every runtime API. Variants of the outer call,
// event and error enums that belong to dropped pallets are removed, then
// unreachable types are garbage collected and the remaining types are
// renumbered densely in their original order.
func (m *Metadata) Retain(pallets []string, apis []string) {
	outerEnums := m.outerEnumTypes()

	keepPallet := make(map[string]bool, len(pallets))
	for _, name := range pallets {
		keepPallet[name] = true
	}

	kept := m.Pallets[:0]
	for _, pallet := range m.Pallets {
		if keepPallet[pallet.Name] {
			kept = append(kept, pallet)
		}
	}
	m.Pallets = kept

	if apis != nil {
		keepAPI := make(map[string]bool, len(apis))
		for _, name := range apis {
			keepAPI[name] = true
		}
		keptAPIs := m.APIs[:0]
		for _, api := range m.APIs {
			if keepAPI[api.Name] {
				keptAPIs = append(keptAPIs, api)
			}
		}
		m.APIs = keptAPIs
	}

	for _, id := range outerEnums {
		t, err := m.Types.Type(id)
		if err != nil || t.Def.Kind != KindVariant {
			continue
		}
		variants := t.Def.Variants[:0]
		for _, variant := range t.Def.Variants {
			if keepPallet[variant.Name] {
				variants = append(variants, variant)
			}
		}
		t.Def.Variants = variants
	}

	m.Init()
	m.collectTypes()
}

func (m *Metadata) outerEnumTypes() []uint32 {
	var ids []uint32
	if id, ok := m.CallEnumType(); ok {
		ids = append(ids, id)
	}
	if id, ok := m.EventEnumType(); ok {
		ids = append(ids, id)
	}
	if m.Version >= 15 {
		ids = append(ids, m.OuterEnums.ErrorType)
	}
	return ids
}

// forEachTypeRef calls fn with every type reference held outside of the
// registry.
func (m *Metadata) forEachTypeRef(fn func(ref *uint32)) {
	for _, pallet := range m.Pallets {
		for _, ref := range []*uint32{pallet.CallType, pallet.EventType, pallet.ErrorType} {
			if ref != nil {
				fn(ref)
			}
		}
		if pallet.Storage != nil {
			for i := range pallet.Storage.Entries {
				entry := &pallet.Storage.Entries[i]
				if entry.KeyType != nil {
					fn(entry.KeyType)
				}
				fn(&entry.ValueType)
			}
		}
		for i := range pallet.Constants {
			fn(&pallet.Constants[i].Type)
		}
	}

	if m.Version >= 15 {
		fn(&m.Extrinsic.AddressType)
		fn(&m.Extrinsic.CallType)
		fn(&m.Extrinsic.SignatureType)
		fn(&m.Extrinsic.ExtraType)
		fn(&m.OuterEnums.CallType)
		fn(&m.OuterEnums.EventType)
		fn(&m.OuterEnums.ErrorType)
	} else {
		fn(&m.Extrinsic.Type)
	}
	for i := range m.Extrinsic.SignedExtensions {
		fn(&m.Extrinsic.SignedExtensions[i].Type)
		fn(&m.Extrinsic.SignedExtensions[i].AdditionalSigned)
	}
	fn(&m.RuntimeType)

	for i := range m.APIs {
		for j := range m.APIs[i].Methods {
			method := &m.APIs[i].Methods[j]
			for k := range method.Inputs {
				fn(&method.Inputs[k].Type)
			}
			fn(&method.Output)
		}
	}

	for key, value := range m.Custom {
		fn(&value.Type)
		m.Custom[key] = value
	}
}

func (m *Metadata) collectTypes() {
	reachable := make(map[uint32]bool, m.Types.Len())
	var stack []uint32
	push := func(ref *uint32) {
		if !reachable[*ref] {
			reachable[*ref] = true
			stack = append(stack, *ref)
		}
	}

	m.forEachTypeRef(push)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t, err := m.Types.Type(id)
		if err != nil {
			continue
		}
		t.forEachTypeRef(push)
	}

	remap := make(map[uint32]uint32, len(reachable))
	registry := NewRegistry()
	for _, id := range m.Types.IDs() {
		if !reachable[id] {
			continue
		}
		remap[id] = uint32(len(remap))
	}

	rewrite := func(ref *uint32) {
		if id, ok := remap[*ref]; ok {
			*ref = id
		}
	}
	for _, id := range m.Types.IDs() {
		newID, ok := remap[id]
		if !ok {
			continue
		}
		t := m.Types.types[id]
		t.ID = newID
		t.forEachTypeRef(rewrite)
		registry.Add(t)
	}
	m.forEachTypeRef(rewrite)

	m.Types = registry
	m.Init()
}
