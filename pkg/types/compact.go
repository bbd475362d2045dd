// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// DecodeCompact decodes a compact encoded unsigned integer. Unlike the
// codec's own DecodeUintCompact, input ending before the integer is
// complete fails with io.ErrUnexpectedEOF instead of decoding as zero.
func DecodeCompact(decoder scale.Decoder) (*big.Int, error) {
	first, err := readCompact(decoder, 1)
	if err != nil {
		return nil, err
	}

	switch first[0] & 0b11 {
	case 0b00:
		return new(big.Int).SetUint64(uint64(first[0] >> 2)), nil
	case 0b01:
		rest, err := readCompact(decoder, 1)
		if err != nil {
			return nil, err
		}
		v := binary.LittleEndian.Uint16([]byte{first[0], rest[0]}) >> 2
		return new(big.Int).SetUint64(uint64(v)), nil
	case 0b10:
		rest, err := readCompact(decoder, 3)
		if err != nil {
			return nil, err
		}
		v := binary.LittleEndian.Uint32(append(first, rest...)) >> 2
		return new(big.Int).SetUint64(uint64(v)), nil
	default:
		// big integer mode: the upper six bits hold the byte count minus 4
		le, err := readCompact(decoder, int(first[0]>>2)+4)
		if err != nil {
			return nil, err
		}
		be := make([]byte, len(le))
		for i, b := range le {
			be[len(le)-1-i] = b
		}
		return new(big.Int).SetBytes(be), nil
	}
}

func readCompact(decoder scale.Decoder, n int) ([]byte, error) {
	buffer := make([]byte, n)
	if err := decoder.Read(buffer); err != nil {
		return nil, fmt.Errorf("%w: reading %d compact byte(s): %s", io.ErrUnexpectedEOF, n, err)
	}
	return buffer, nil
}
