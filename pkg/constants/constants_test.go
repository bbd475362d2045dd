// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package constants

import (
	"testing"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/metadata/metadatatest"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_At(t *testing.T) {
	t.Parallel()

	client := NewClient(metadatatest.New(15))

	var blockHashCount uint32
	err := client.At(NewAddress("System", "BlockHashCount"), &blockHashCount)
	require.NoError(t, err)
	assert.Equal(t, metadatatest.BlockHashCount, blockHashCount)

	var existentialDeposit types.U128
	err = client.At(NewAddress("Balances", "ExistentialDeposit"), &existentialDeposit)
	require.NoError(t, err)
	assert.Equal(t, metadatatest.ExistentialDeposit, existentialDeposit.Uint64())

	raw, err := client.Raw(NewAddress("System", "SS58Prefix"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, raw)
}

func Test_Client_Value(t *testing.T) {
	t.Parallel()

	client := NewClient(metadatatest.New(14))

	v, err := client.Value(NewAddress("Balances", "MaxLocks"))
	require.NoError(t, err)
	n, ok := v.AsUint()
	require.True(t, ok)
	assert.Equal(t, uint64(50), n)
}

func Test_Client_Errors(t *testing.T) {
	t.Parallel()

	client := NewClient(metadatatest.New(15))

	_, err := client.Raw(NewAddress("System", "Nope"))
	assert.ErrorIs(t, err, metadata.ErrConstantNotFound)

	_, err = client.Value(NewAddress("Nope", "BlockHashCount"))
	assert.ErrorIs(t, err, metadata.ErrPalletNotFound)

	var tooLarge [8]byte
	err = client.At(NewAddress("System", "BlockHashCount"), &tooLarge)
	assert.Error(t, err)
}
