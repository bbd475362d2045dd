// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package types holds the primitive types shared by the client packages and
// the generated runtime bindings, along with SCALE helpers over the
// go-substrate-rpc-client codec.
package types

import (
	"bytes"
	"math/big"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

type (
	// H256 is a 256 bit hash.
	H256 = common.Hash
	// U128 is an unsigned 128 bit integer.
	U128 = gsrpctypes.U128
	// U256 is an unsigned 256 bit integer.
	U256 = gsrpctypes.U256
	// I128 is a signed 128 bit integer.
	I128 = gsrpctypes.I128
	// I256 is a signed 256 bit integer.
	I256 = gsrpctypes.I256
	// UCompact is a compact encoded unsigned integer.
	UCompact = gsrpctypes.UCompact
	// Text is a SCALE encoded UTF-8 string.
	Text = gsrpctypes.Text
)

// NewU128 creates a U128 from a uint64.
func NewU128(v uint64) U128 {
	return gsrpctypes.NewU128(*new(big.Int).SetUint64(v))
}

// NewUCompact creates a UCompact from a uint64.
func NewUCompact(v uint64) UCompact {
	return gsrpctypes.NewUCompactFromUInt(v)
}

// Encode SCALE encodes the value.
func Encode(value interface{}) ([]byte, error) {
	var buffer bytes.Buffer
	err := scale.NewEncoder(&buffer).Encode(value)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Decode SCALE decodes data into target, which must be a pointer.
func Decode(data []byte, target interface{}) error {
	return scale.NewDecoder(bytes.NewReader(data)).Decode(target)
}
