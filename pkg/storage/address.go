// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"fmt"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/types"
)

// EncodedKey is a map key that is already SCALE encoded.
type EncodedKey []byte

// Address locates a storage entry, or a subset of a map entry when fewer
// keys than hashers are given.
type Address struct {
	Pallet string
	Entry  string
	// Hashers of the entry, one per map key. Empty for plain entries.
	Hashers []Hasher
	// Keys are the leading map keys. Each is SCALE encoded unless it is
	// an EncodedKey.
	Keys []interface{}
}

// NewAddress returns the address of the entry with the given keys.
func NewAddress(pallet, entry string, hashers []Hasher, keys ...interface{}) Address {
	return Address{
		Pallet:  pallet,
		Entry:   entry,
		Hashers: hashers,
		Keys:    keys,
	}
}

// Root returns the address of the whole entry, without keys.
func (a Address) Root() Address {
	return Address{Pallet: a.Pallet, Entry: a.Entry, Hashers: a.Hashers}
}

// IsComplete returns true when every map key is set.
func (a Address) IsComplete() bool {
	return len(a.Keys) == len(a.Hashers)
}

func (a Address) String() string {
	return a.Pallet + "." + a.Entry
}

// Prefix returns twox128(pallet) ++ twox128(entry).
func (a Address) Prefix() []byte {
	return common.Concat(
		common.Twox128Hash([]byte(a.Pallet)),
		common.Twox128Hash([]byte(a.Entry)),
	)
}

// Bytes returns the prefix followed by each hashed key.
func (a Address) Bytes() ([]byte, error) {
	if len(a.Keys) > len(a.Hashers) {
		return nil, fmt.Errorf("%w: %s has %d hashers but %d keys",
			ErrKeyCount, a, len(a.Hashers), len(a.Keys))
	}

	parts := make([][]byte, 0, 1+len(a.Keys))
	parts = append(parts, a.Prefix())
	for i, key := range a.Keys {
		encoded, err := encodeKey(key)
		if err != nil {
			return nil, fmt.Errorf("encoding key %d of %s: %w", i, a, err)
		}
		parts = append(parts, a.Hashers[i].Hash(encoded))
	}
	return common.Concat(parts...), nil
}

func encodeKey(key interface{}) ([]byte, error) {
	if encoded, ok := key.(EncodedKey); ok {
		return encoded, nil
	}
	return types.Encode(key)
}
