// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata_test

import (
	"fmt"
	"testing"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/metadata/metadatatest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, version := range []uint8{14, 15} {
		version := version
		t.Run(fmt.Sprintf("v%d", version), func(t *testing.T) {
			t.Parallel()

			encoded := metadatatest.Encoded(version)
			assert.Equal(t, []byte("meta"), encoded[:4])
			assert.Equal(t, version, encoded[4])

			md, err := metadata.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, version, md.Version)
			assert.Equal(t, []string{"System", "Balances", "Multisig"}, md.PalletNames())

			reencoded, err := md.Encode()
			require.NoError(t, err)
			assert.Equal(t, encoded, reencoded)
		})
	}
}

func Test_Decode_V15Sections(t *testing.T) {
	t.Parallel()

	md, err := metadata.Decode(metadatatest.Encoded(15))
	require.NoError(t, err)

	require.Len(t, md.APIs, 2)
	assert.Equal(t, "AccountNonceApi", md.APIs[1].Name)
	require.Len(t, md.APIs[1].Methods[0].Inputs, 1)
	assert.Equal(t, "account", md.APIs[1].Methods[0].Inputs[0].Name)

	assert.Equal(t, metadata.CustomValue{
		Type:  md.Custom["ss58_format"].Type,
		Value: []byte{8, 'd', 'o', 't'},
	}, md.Custom["ss58_format"])

	pallet, err := md.Pallet("System")
	require.NoError(t, err)
	assert.Equal(t, []string{"System pallet"}, pallet.Docs)

	callType, ok := md.CallEnumType()
	require.True(t, ok)
	callEnum, err := md.Types.Type(callType)
	require.NoError(t, err)
	assert.Equal(t, "polkadot_runtime::RuntimeCall", callEnum.PathString())
}

func Test_Decode_Errors(t *testing.T) {
	t.Parallel()

	valid := metadatatest.Encoded(14)

	testCases := map[string]struct {
		data    []byte
		errWrap error
		errMsg  string
	}{
		"empty": {
			data: []byte{},
		},
		"invalid magic": {
			data:    []byte{'a', 't', 'e', 'm', 14},
			errWrap: metadata.ErrInvalidMagic,
			errMsg:  "invalid metadata magic number: 0x6d657461",
		},
		"version 13": {
			data:    []byte{'m', 'e', 't', 'a', 13},
			errWrap: metadata.ErrUnsupportedVersion,
			errMsg:  "unsupported metadata version: 13",
		},
		"trailing bytes": {
			data:    append(append([]byte{}, valid...), 0xff),
			errWrap: metadata.ErrTrailingBytes,
			errMsg:  "trailing bytes after metadata: 1",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			md, err := metadata.Decode(testCase.data)
			assert.Nil(t, md)
			if testCase.errWrap != nil {
				assert.ErrorIs(t, err, testCase.errWrap)
			}
			if testCase.errMsg != "" {
				assert.EqualError(t, err, testCase.errMsg)
				return
			}
			assert.Error(t, err)
		})
	}
}

func Test_Decode_Truncated(t *testing.T) {
	t.Parallel()

	valid := metadatatest.Encoded(15)
	for _, size := range []int{6, 100, len(valid) / 2, len(valid) - 1} {
		_, err := metadata.Decode(valid[:size])
		assert.Error(t, err, "size %d", size)
	}
}

func Test_DecodeHex(t *testing.T) {
	t.Parallel()

	md, err := metadata.DecodeHex(common.BytesToHex(metadatatest.Encoded(14)))
	require.NoError(t, err)
	assert.Equal(t, uint8(14), md.Version)

	_, err = metadata.DecodeHex("6d657461")
	assert.ErrorIs(t, err, common.ErrNoPrefix)
}
