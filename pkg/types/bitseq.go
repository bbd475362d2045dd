// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// BitSequence is a bitvec stored in u8 words with least significant bit
// first ordering, the layout used by runtime `BitVec<u8, Lsb0>` values.
type BitSequence []bool

// Encode implements scale.Encodeable.
func (b BitSequence) Encode(encoder scale.Encoder) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(b))))
	if err != nil {
		return err
	}
	return encoder.Write(PackBitsLsb0(b))
}

// Decode implements scale.Decodeable.
func (b *BitSequence) Decode(decoder scale.Decoder) error {
	length, err := DecodeCompact(decoder)
	if err != nil {
		return err
	}

	bitCount := int(length.Uint64())
	packed := make([]byte, (bitCount+7)/8)
	err = decoder.Read(packed)
	if err != nil {
		return err
	}

	*b = UnpackBitsLsb0(packed, bitCount)
	return nil
}

// PackBitsLsb0 packs bits into bytes, least significant bit first.
func PackBitsLsb0(bits []bool) []byte {
	packed := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return packed
}

// UnpackBitsLsb0 unpacks bitCount bits from bytes, least significant bit first.
func UnpackBitsLsb0(packed []byte, bitCount int) []bool {
	bits := make([]bool, bitCount)
	for i := range bits {
		bits[i] = packed[i/8]&(1<<(i%8)) != 0
	}
	return bits
}
