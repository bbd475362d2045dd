// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	randomHashString = "0x580d77a9136035a0bc3c3cd86286172f7f81291164c5914266073a30466fba21"
	emptyHash        = "0x0000000000000000000000000000000000000000000000000000000000000000"
)

func TestCustomUnmarshalJson(t *testing.T) {
	testCases := []struct {
		description string
		hash        string
		errMsg      string
		expected    string
	}{
		{description: "Test empty params", hash: "", errMsg: "invalid hash format"},
		{description: "Test valid params", hash: randomHashString, expected: randomHashString},
		{description: "Test zero hash value", hash: "0x", expected: emptyHash},
		{description: "Test invalid params", hash: "zz", errMsg: "could not byteify non 0x prefixed string"},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			h := Hash{}
			err := h.UnmarshalJSON([]byte(test.hash))
			if test.errMsg != "" {
				require.EqualError(t, err, test.errMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, h.String())
		})
	}
}

func TestCustomMarshalJson(t *testing.T) {
	randomHash := MustHexToHash(randomHashString)
	testCases := []struct {
		description string
		hash        Hash
		expected    string
	}{
		{description: "Test empty params", hash: Hash{}, expected: emptyHash},
		{description: "Test valid params", hash: randomHash, expected: randomHashString},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			byt, err := test.hash.MarshalJSON()
			require.NoError(t, err)
			require.Equal(t, `"`+test.expected+`"`, string(byt))
		})
	}
}

func Test_Hash_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Hash{}.IsEmpty())
	assert.False(t, Hash{1}.IsEmpty())
}

func Test_HexToHash_TooLong(t *testing.T) {
	_, err := HexToHash("0x" + randomHashString[2:] + "00")
	assert.ErrorIs(t, err, ErrHashTooLong)
}

func Test_HexToBytes(t *testing.T) {
	t.Parallel()

	b, err := HexToBytes("0x102")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)

	_, err = HexToBytes("1234")
	assert.ErrorIs(t, err, ErrNoPrefix)

	assert.Equal(t, "0x0102", BytesToHex([]byte{1, 2}))
}

func Test_Hash_Short(t *testing.T) {
	h := MustHexToHash(randomHashString)
	assert.Equal(t, "0x580d77a9...466fba21", h.Short())
}
