// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common_test

import (
	"testing"

	"github.com/ChainSafe/gosubxt/lib/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlake2b218_EmptyHash(t *testing.T) {
	// test case from https://github.com/noot/blake2b_test which uses the blake2-rfp rust crate
	// also see https://github.com/paritytech/substrate/blob/master/core/primitives/src/hashing.rs
	h := common.Blake2b128([]byte{})

	expected, err := common.HexToBytes("0xcae66941d9efbd404e4d88758ea67670")
	require.NoError(t, err)
	require.Equal(t, expected, h)
}

func TestBlake128(t *testing.T) {
	h := common.Blake2b128([]byte("static"))

	expected, err := common.HexToBytes("0x440973e4e50902f1d0ec97de357eb2fd")
	require.NoError(t, err)
	require.Equal(t, expected, h)
}

func TestBlake2bHash_EmptyHash(t *testing.T) {
	h := common.Blake2bHash([]byte{})

	expected, err := common.HexToHash("0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")
	require.NoError(t, err)
	require.Equal(t, expected, h)
}

func TestBlake2b128Concat(t *testing.T) {
	in := []byte("static")
	h := common.Blake2b128Concat(in)

	require.Len(t, h, 16+len(in))
	assert.Equal(t, common.Blake2b128(in), h[:16])
	assert.Equal(t, in, h[16:])
}

func TestTwox128(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		in       string
		expected string
	}{
		"system": {
			in:       "System",
			expected: "0x26aa394eea5630e07c48ae0c9558cef7",
		},
		"account": {
			in:       "Account",
			expected: "0xb99d880ec681799c0cf30e8886371da9",
		},
		"balances": {
			in:       "Balances",
			expected: "0xc2261276cc9d1f8598ea4b6a74b15c2f",
		},
		"events": {
			in:       "Events",
			expected: "0x80d41e5e16056765bc8461851072c9d7",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := common.Twox128Hash([]byte(testCase.in))
			assert.Equal(t, testCase.expected, common.BytesToHex(h))
		})
	}
}

func TestTwox64Concat(t *testing.T) {
	in := []byte{1, 2, 3, 4}
	h := common.Twox64Concat(in)

	require.Len(t, h, 12)
	assert.Equal(t, common.Twox64(in), h[:8])
	assert.Equal(t, in, h[8:])
}

func TestTwox256_PrefixIsTwox128(t *testing.T) {
	in := []byte("static")
	h := common.Twox256(in)

	assert.Equal(t, common.Twox128Hash(in), h[:16])
}
