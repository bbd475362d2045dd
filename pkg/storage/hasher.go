// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"fmt"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
)

// Hasher is the hashing algorithm applied to a storage map key.
type Hasher uint8

// Storage hashers, in metadata order.
const (
	Blake2_128 Hasher = iota
	Blake2_256
	Blake2_128Concat
	Twox128
	Twox256
	Twox64Concat
	Identity
)

// HasherFromMetadata converts a metadata storage hasher.
func HasherFromMetadata(h metadata.StorageHasher) Hasher {
	return Hasher(h)
}

func (h Hasher) String() string {
	return metadata.StorageHasher(h).String()
}

// Hash hashes the SCALE encoded key.
func (h Hasher) Hash(key []byte) []byte {
	switch h {
	case Blake2_128:
		return common.Blake2b128(key)
	case Blake2_256:
		return common.Blake2bHash(key).ToBytes()
	case Blake2_128Concat:
		return common.Blake2b128Concat(key)
	case Twox128:
		return common.Twox128Hash(key)
	case Twox256:
		return common.Twox256(key).ToBytes()
	case Twox64Concat:
		return common.Twox64Concat(key)
	case Identity:
		return common.Concat(key)
	default:
		panic(fmt.Sprintf("unknown storage hasher %d", h))
	}
}

// Recoverable returns true when the key can be recovered from its hash.
func (h Hasher) Recoverable() bool {
	switch h {
	case Blake2_128Concat, Twox64Concat, Identity:
		return true
	default:
		return false
	}
}

// HashLen returns the length of the hash part of the hashed key, which is
// the whole hashed key for non recoverable hashers.
func (h Hasher) HashLen() int {
	switch h {
	case Blake2_128, Twox128, Blake2_128Concat:
		return 16
	case Blake2_256, Twox256:
		return 32
	case Twox64Concat:
		return 8
	default:
		return 0
	}
}
