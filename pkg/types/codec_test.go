// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"io"
	"math"
	"math/big"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Option(t *testing.T) {
	t.Parallel()

	encoded, err := Encode(Some(uint32(1)))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 1, 0, 0, 0}, encoded)

	var decoded Option[uint32]
	err = Decode(encoded, &decoded)
	require.NoError(t, err)
	value, ok := decoded.Unwrap()
	assert.True(t, ok)
	assert.Equal(t, uint32(1), value)

	encoded, err = Encode(None[uint32]())
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, encoded)

	decoded = Some(uint32(7))
	err = Decode(encoded, &decoded)
	require.NoError(t, err)
	assert.False(t, decoded.IsSome())
}

func Test_BitSequence(t *testing.T) {
	t.Parallel()

	bits := BitSequence{true, false, true, true, false, false, false, false, true}

	encoded, err := Encode(bits)
	require.NoError(t, err)
	// compact(9) = 9 << 2, then 0b0000_1101 and 0b0000_0001
	assert.Equal(t, []byte{36, 0x0d, 0x01}, encoded)

	var decoded BitSequence
	err = Decode(encoded, &decoded)
	require.NoError(t, err)
	assert.Equal(t, bits, decoded)
}

func Test_BitSequence_Truncated(t *testing.T) {
	t.Parallel()

	var decoded BitSequence
	err := Decode(nil, &decoded)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = Decode([]byte{36, 0x0d}, &decoded)
	assert.Error(t, err)
}

func Test_DecodeCompact(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		encoded  []byte
		expected uint64
		err      error
	}{
		"single byte":         {encoded: []byte{0xfc}, expected: 63},
		"two bytes":           {encoded: []byte{0x01, 0x01}, expected: 64},
		"four bytes":          {encoded: []byte{0x02, 0x00, 0x01, 0x00}, expected: 1 << 14},
		"big integer":         {encoded: []byte{0x03, 0x00, 0x00, 0x00, 0x40}, expected: 1 << 30},
		"big integer 5 bytes": {encoded: []byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x01}, expected: 1 << 32},
		"empty":               {encoded: nil, err: io.ErrUnexpectedEOF},
		"two bytes truncated": {encoded: []byte{0x01}, err: io.ErrUnexpectedEOF},
		"four bytes truncated": {
			encoded: []byte{0x02, 0x00, 0x01},
			err:     io.ErrUnexpectedEOF,
		},
		"big integer truncated": {
			encoded: []byte{0x07, 0x00, 0x00, 0x00, 0x00},
			err:     io.ErrUnexpectedEOF,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := DecodeCompact(*scale.NewDecoder(bytes.NewReader(testCase.encoded)))
			assert.ErrorIs(t, err, testCase.err)
			if testCase.err != nil {
				return
			}
			assert.Equal(t, new(big.Int).SetUint64(testCase.expected), v)
		})
	}
}

func Test_DecodeCompact_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []uint64{0, 1, 63, 64, 16383, 16384, 1<<30 - 1, 1 << 30, 1 << 32, math.MaxUint64} {
		encoded, err := Encode(NewUCompact(v))
		require.NoError(t, err)

		decoded, err := DecodeCompact(*scale.NewDecoder(bytes.NewReader(encoded)))
		require.NoError(t, err)
		assert.Equal(t, v, decoded.Uint64(), "value %d", v)
	}
}

func Test_StructEncoding(t *testing.T) {
	t.Parallel()

	type accountData struct {
		Free     U128
		Nonce    uint32
		Weight   UCompact
		Approved bool
	}

	value := accountData{
		Free:     NewU128(1),
		Nonce:    2,
		Weight:   NewUCompact(3),
		Approved: true,
	}

	encoded, err := Encode(value)
	require.NoError(t, err)

	expected := []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 12, 1}
	assert.Equal(t, expected, encoded)

	var decoded accountData
	err = Decode(encoded, &decoded)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), decoded.Free.Uint64())
	assert.Equal(t, uint32(2), decoded.Nonce)
	assert.True(t, decoded.Approved)
}

func Test_UnknownVariantError(t *testing.T) {
	t.Parallel()

	err := UnknownVariantError("Phase", 9)
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.EqualError(t, err, "decoding Phase: unknown variant: index 9")
}
