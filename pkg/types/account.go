// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/mr-tron/base58"
)

// GenericSS58Prefix is the SS58 prefix of the generic substrate network.
const GenericSS58Prefix uint16 = 42

var ss58Preamble = []byte("SS58PRE")

// AccountID32 is a 32 byte account identifier, usually an sr25519 or
// ed25519 public key.
type AccountID32 [32]byte

// NewAccountID32 copies b into an AccountID32.
func NewAccountID32(b []byte) (id AccountID32, err error) {
	if len(b) != len(id) {
		return id, fmt.Errorf("account id must be 32 bytes, got %d", len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ToBytes returns the account id as a byte slice.
func (a AccountID32) ToBytes() []byte {
	return a[:]
}

// Hex returns the 0x prefixed hex encoding of the account id.
func (a AccountID32) Hex() string {
	return common.BytesToHex(a[:])
}

// String returns the generic SS58 address of the account.
func (a AccountID32) String() string {
	return a.ToSS58(GenericSS58Prefix)
}

// MarshalJSON encodes the account as a generic SS58 address.
func (a AccountID32) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// ToSS58 encodes the account id as an SS58 address with the given network prefix.
func (a AccountID32) ToSS58(prefix uint16) string {
	var payload []byte
	switch {
	case prefix < 64:
		payload = []byte{byte(prefix)}
	default:
		first := byte((prefix&0b1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte((prefix&0b11)<<6)
		payload = []byte{first, second}
	}
	payload = append(payload, a[:]...)

	checksum := common.Blake2b512(common.Concat(ss58Preamble, payload))
	return base58.Encode(append(payload, checksum[:2]...))
}

// AccountID32FromSS58 decodes an SS58 address, returning the account id and
// the network prefix it was encoded with.
func AccountID32FromSS58(address string) (id AccountID32, prefix uint16, err error) {
	data, err := base58.Decode(address)
	if err != nil {
		return id, 0, fmt.Errorf("%w: %s", ErrInvalidSS58, err)
	}

	if len(data) < 2 {
		return id, 0, fmt.Errorf("%w: too short", ErrInvalidSS58)
	}

	prefixLength := 1
	switch {
	case data[0] < 64:
		prefix = uint16(data[0])
	case data[0] < 128:
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0b0011_1111
		prefix = uint16(lower) | uint16(upper)<<8
		prefixLength = 2
	default:
		return id, 0, fmt.Errorf("%w: reserved prefix byte %d", ErrInvalidSS58, data[0])
	}

	const checksumLength = 2
	if len(data) != prefixLength+len(id)+checksumLength {
		return id, 0, fmt.Errorf("%w: unexpected length %d", ErrInvalidSS58, len(data))
	}

	payload := data[:prefixLength+len(id)]
	checksum := common.Blake2b512(common.Concat(ss58Preamble, payload))
	if !bytes.Equal(checksum[:checksumLength], data[len(payload):]) {
		return id, 0, fmt.Errorf("%w: checksum mismatch", ErrInvalidSS58)
	}

	copy(id[:], payload[prefixLength:])
	return id, prefix, nil
}

// ParseAccountID32 accepts either a 0x prefixed hex public key or an SS58 address.
func ParseAccountID32(s string) (AccountID32, error) {
	if strings.HasPrefix(s, "0x") {
		b, err := common.HexToBytes(s)
		if err != nil {
			return AccountID32{}, err
		}
		return NewAccountID32(b)
	}

	id, _, err := AccountID32FromSS58(s)
	return id, err
}
