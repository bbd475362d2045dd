// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2b128 returns the 128-bit blake2b hash of the input data
func Blake2b128(in []byte) []byte {
	h, err := blake2b.New(16, nil)
	if err != nil {
		// only fails for sizes over 64 or keys over 64 bytes
		panic(err)
	}

	_, _ = h.Write(in)
	return h.Sum(nil)
}

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) Hash {
	return blake2b.Sum256(in)
}

// Blake2b512 returns the 512-bit blake2b hash of the input data
func Blake2b512(in []byte) []byte {
	sum := blake2b.Sum512(in)
	return sum[:]
}

// Blake2b128Concat returns the 128-bit blake2b hash of the input
// followed by the input itself.
func Blake2b128Concat(in []byte) []byte {
	return Concat(Blake2b128(in), in)
}

// twox computes xxHash64 with seeds 0..n-1 and concatenates the
// little endian results.
func twox(in []byte, n int) []byte {
	out := make([]byte, 8*n)
	for seed := 0; seed < n; seed++ {
		h := xxhash.NewS64(uint64(seed))
		_, _ = h.Write(in)
		binary.LittleEndian.PutUint64(out[8*seed:], h.Sum64())
	}
	return out
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) []byte {
	return twox(in, 1)
}

// Twox64Concat returns the xx64 hash of the input followed by the input itself.
func Twox64Concat(in []byte) []byte {
	return Concat(Twox64(in), in)
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) []byte {
	return twox(msg, 2)
}

// Twox256 returns the twox256 hash of the input data
func Twox256(in []byte) Hash {
	return NewHash(twox(in, 4))
}
