// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"strings"
)

var (
	// ErrNoPrefix is returned when a hex string is not 0x prefixed.
	ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")
	// ErrHashTooLong is returned when decoding more than 32 bytes into a Hash.
	ErrHashTooLong = errors.New("hash is longer than 32 bytes")
)

// HexToBytes turns a 0x prefixed hex string into a byte slice.
// Odd length strings are left padded with a zero nibble.
func HexToBytes(in string) ([]byte, error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, ErrNoPrefix
	}

	in = in[2:]
	if len(in)%2 != 0 {
		in = "0" + in
	}

	return hex.DecodeString(in)
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice
// it panics if the input is not valid hex
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return out
}

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}

// Concat concatenates the byte slices into a newly allocated slice.
func Concat(parts ...[]byte) []byte {
	size := 0
	for _, part := range parts {
		size += len(part)
	}

	out := make([]byte, 0, size)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}
