// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metadata decodes, queries, hashes and trims substrate runtime
// metadata in versions 14 and 15.
package metadata

// StorageModifier tells what a storage entry returns when its key is absent.
type StorageModifier uint8

const (
	// Optional entries return nothing when absent.
	Optional StorageModifier = iota
	// Default entries return their default bytes when absent.
	Default
)

func (m StorageModifier) String() string {
	if m == Default {
		return "Default"
	}
	return "Optional"
}

// StorageHasher is the hashing algorithm of a storage map key.
type StorageHasher uint8

// Storage hashers, in their SCALE variant order.
const (
	Blake2_128 StorageHasher = iota
	Blake2_256
	Blake2_128Concat
	Twox128
	Twox256
	Twox64Concat
	Identity
)

var hasherNames = [...]string{
	"Blake2_128", "Blake2_256", "Blake2_128Concat",
	"Twox128", "Twox256", "Twox64Concat", "Identity",
}

func (h StorageHasher) String() string {
	if int(h) < len(hasherNames) {
		return hasherNames[h]
	}
	return "Unknown"
}

// StorageEntry describes one storage item of a pallet.
// KeyType is nil for plain entries.
type StorageEntry struct {
	Name      string
	Modifier  StorageModifier
	Hashers   []StorageHasher
	KeyType   *uint32
	ValueType uint32
	Default   []byte
	Docs      []string
}

// IsMap returns true if the entry is keyed.
func (e *StorageEntry) IsMap() bool {
	return e.KeyType != nil
}

// PalletStorage is the storage section of a pallet.
type PalletStorage struct {
	Prefix  string
	Entries []StorageEntry
}

// Constant is a pallet constant with its SCALE encoded value.
type Constant struct {
	Name  string
	Type  uint32
	Value []byte
	Docs  []string
}

// Pallet is the metadata of one runtime pallet.
type Pallet struct {
	Name      string
	Index     uint8
	Storage   *PalletStorage
	CallType  *uint32
	EventType *uint32
	ErrorType *uint32
	Constants []Constant
	Docs      []string

	types *Registry
}

// SignedExtension is a transaction extension declared by the runtime.
type SignedExtension struct {
	Identifier       string
	Type             uint32
	AdditionalSigned uint32
}

// Extrinsic describes the extrinsic format of the runtime.
// Type is only set by version 14 metadata, the address, call, signature
// and extra types only by version 15.
type Extrinsic struct {
	Type             uint32
	Version          uint8
	AddressType      uint32
	CallType         uint32
	SignatureType    uint32
	ExtraType        uint32
	SignedExtensions []SignedExtension
}

// RuntimeAPIParam is an input of a runtime API method.
type RuntimeAPIParam struct {
	Name string
	Type uint32
}

// RuntimeAPIMethod is a method of a runtime API.
type RuntimeAPIMethod struct {
	Name   string
	Inputs []RuntimeAPIParam
	Output uint32
	Docs   []string
}

// RuntimeAPI is a runtime API trait exposed by the runtime.
type RuntimeAPI struct {
	Name    string
	Methods []RuntimeAPIMethod
	Docs    []string
}

// OuterEnums holds the type ids of the aggregated runtime enums.
type OuterEnums struct {
	CallType  uint32
	EventType uint32
	ErrorType uint32
}

// CustomValue is an entry of the custom metadata map.
type CustomValue struct {
	Type  uint32
	Value []byte
}

// Metadata is the normalised runtime metadata.
type Metadata struct {
	Version     uint8
	Types       *Registry
	Pallets     []*Pallet
	Extrinsic   Extrinsic
	RuntimeType uint32
	APIs        []RuntimeAPI
	OuterEnums  OuterEnums
	Custom      map[string]CustomValue

	byName  map[string]*Pallet
	byIndex map[uint8]*Pallet
}

// Init builds the lookup indexes. It must be called after the pallets
// or the registry are changed.
func (m *Metadata) Init() {
	if m.Types == nil {
		m.Types = NewRegistry()
	}
	m.byName = make(map[string]*Pallet, len(m.Pallets))
	m.byIndex = make(map[uint8]*Pallet, len(m.Pallets))
	for _, pallet := range m.Pallets {
		pallet.types = m.Types
		m.byName[pallet.Name] = pallet
		m.byIndex[pallet.Index] = pallet
	}
}

// PalletNames returns the pallet names in metadata order.
func (m *Metadata) PalletNames() []string {
	names := make([]string, len(m.Pallets))
	for i, pallet := range m.Pallets {
		names[i] = pallet.Name
	}
	return names
}

// CallEnumType returns the type id of the outer call enum. Version 14
// metadata does not record it, so it is read from the Call parameter of
// the extrinsic type.
func (m *Metadata) CallEnumType() (id uint32, ok bool) {
	if m.Version >= 15 {
		return m.OuterEnums.CallType, true
	}
	t, err := m.Types.Type(m.Extrinsic.Type)
	if err != nil {
		return 0, false
	}
	return t.Param("Call")
}

// EventEnumType returns the type id of the outer event enum. Version 14
// metadata does not record it, so it is read from the event record type of
// System.Events.
func (m *Metadata) EventEnumType() (id uint32, ok bool) {
	if m.Version >= 15 {
		return m.OuterEnums.EventType, true
	}
	entry, err := m.StorageEntry("System", "Events")
	if err != nil {
		return 0, false
	}
	t, err := m.Types.Type(entry.ValueType)
	if err != nil || t.Def.Kind != KindSequence {
		return 0, false
	}
	record, err := m.Types.Type(t.Def.Elem)
	if err != nil {
		return 0, false
	}
	return record.Param("E")
}
