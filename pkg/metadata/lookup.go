// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"fmt"
)

// Pallet returns the pallet with the given name.
func (m *Metadata) Pallet(name string) (*Pallet, error) {
	pallet, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPalletNotFound, name)
	}
	return pallet, nil
}

// PalletByIndex returns the pallet with the given index.
func (m *Metadata) PalletByIndex(index uint8) (*Pallet, error) {
	pallet, ok := m.byIndex[index]
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrPalletNotFound, index)
	}
	return pallet, nil
}

// Call returns the pallet and call variant for the given names.
func (m *Metadata) Call(palletName, callName string) (*Pallet, *Variant, error) {
	pallet, err := m.Pallet(palletName)
	if err != nil {
		return nil, nil, err
	}
	call, err := pallet.Call(callName)
	if err != nil {
		return nil, nil, err
	}
	return pallet, call, nil
}

// StorageEntry returns the storage entry for the given names.
func (m *Metadata) StorageEntry(palletName, entryName string) (*StorageEntry, error) {
	pallet, err := m.Pallet(palletName)
	if err != nil {
		return nil, err
	}
	return pallet.StorageEntry(entryName)
}

// Constant returns the constant for the given names.
func (m *Metadata) Constant(palletName, constantName string) (*Constant, error) {
	pallet, err := m.Pallet(palletName)
	if err != nil {
		return nil, err
	}
	return pallet.Constant(constantName)
}

// RuntimeAPI returns the runtime API with the given name.
func (m *Metadata) RuntimeAPI(name string) (*RuntimeAPI, error) {
	for i := range m.APIs {
		if m.APIs[i].Name == name {
			return &m.APIs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRuntimeAPINotFound, name)
}

// Calls returns the call variants of the pallet, or nil if it has no calls.
func (p *Pallet) Calls() ([]Variant, error) {
	return p.variants(p.CallType)
}

// Events returns the event variants of the pallet, or nil if it has no events.
func (p *Pallet) Events() ([]Variant, error) {
	return p.variants(p.EventType)
}

// Errors returns the error variants of the pallet, or nil if it has no errors.
func (p *Pallet) Errors() ([]Variant, error) {
	return p.variants(p.ErrorType)
}

// Call returns the call variant with the given name.
func (p *Pallet) Call(name string) (*Variant, error) {
	calls, err := p.Calls()
	if err != nil {
		return nil, err
	}
	for i := range calls {
		if calls[i].Name == name {
			return &calls[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrCallNotFound, p.Name, name)
}

// CallByIndex returns the call variant with the given index.
func (p *Pallet) CallByIndex(index uint8) (*Variant, error) {
	calls, err := p.Calls()
	if err != nil {
		return nil, err
	}
	if call := byIndex(calls, index); call != nil {
		return call, nil
	}
	return nil, fmt.Errorf("%w: %s index %d", ErrCallNotFound, p.Name, index)
}

// Event returns the event variant with the given index.
func (p *Pallet) Event(index uint8) (*Variant, error) {
	events, err := p.Events()
	if err != nil {
		return nil, err
	}
	if event := byIndex(events, index); event != nil {
		return event, nil
	}
	return nil, fmt.Errorf("%w: %s index %d", ErrEventNotFound, p.Name, index)
}

// EventByName returns the event variant with the given name.
func (p *Pallet) EventByName(name string) (*Variant, error) {
	events, err := p.Events()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].Name == name {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrEventNotFound, p.Name, name)
}

// Error returns the error variant with the given index.
func (p *Pallet) Error(index uint8) (*Variant, error) {
	errs, err := p.Errors()
	if err != nil {
		return nil, err
	}
	if variant := byIndex(errs, index); variant != nil {
		return variant, nil
	}
	return nil, fmt.Errorf("%w: %s index %d", ErrErrorNotFound, p.Name, index)
}

// StorageEntry returns the storage entry with the given name.
func (p *Pallet) StorageEntry(name string) (*StorageEntry, error) {
	if p.Storage != nil {
		for i := range p.Storage.Entries {
			if p.Storage.Entries[i].Name == name {
				return &p.Storage.Entries[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrStorageEntryNotFound, p.Name, name)
}

// StoragePrefix returns the storage prefix of the pallet, which defaults
// to the pallet name.
func (p *Pallet) StoragePrefix() string {
	if p.Storage != nil && p.Storage.Prefix != "" {
		return p.Storage.Prefix
	}
	return p.Name
}

// Constant returns the constant with the given name.
func (p *Pallet) Constant(name string) (*Constant, error) {
	for i := range p.Constants {
		if p.Constants[i].Name == name {
			return &p.Constants[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrConstantNotFound, p.Name, name)
}

func (p *Pallet) variants(id *uint32) ([]Variant, error) {
	if id == nil {
		return nil, nil
	}
	if p.types == nil {
		return nil, fmt.Errorf("pallet %s is not attached to a registry", p.Name)
	}
	return p.types.Variants(*id)
}

func byIndex(variants []Variant, index uint8) *Variant {
	for i := range variants {
		if variants[i].Index == index {
			return &variants[i]
		}
	}
	return nil
}

// KeyTypes returns the type ids of the individual keys of a map entry,
// one per hasher. A single hasher takes the key type as is, several
// hashers split a tuple key type.
func (e *StorageEntry) KeyTypes(registry *Registry) ([]uint32, error) {
	if e.KeyType == nil {
		return nil, nil
	}
	if len(e.Hashers) == 1 {
		return []uint32{*e.KeyType}, nil
	}

	t, err := registry.Type(*e.KeyType)
	if err != nil {
		return nil, err
	}
	if t.Def.Kind != KindTuple || len(t.Def.Tuple) != len(e.Hashers) {
		return nil, fmt.Errorf("storage entry %s has %d hashers but key type %d is a %s",
			e.Name, len(e.Hashers), *e.KeyType, t.Def.Kind)
	}
	return t.Def.Tuple, nil
}
