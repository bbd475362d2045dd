// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata_test

import (
	"testing"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/metadata/metadatatest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Metadata_Pallet(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)

	pallet, err := md.Pallet("Balances")
	require.NoError(t, err)
	assert.Equal(t, metadatatest.BalancesIndex, pallet.Index)
	assert.Equal(t, "Balances", pallet.StoragePrefix())

	byIndex, err := md.PalletByIndex(metadatatest.BalancesIndex)
	require.NoError(t, err)
	assert.Same(t, pallet, byIndex)

	_, err = md.Pallet("Staking")
	assert.ErrorIs(t, err, metadata.ErrPalletNotFound)
	assert.EqualError(t, err, "pallet not found: Staking")

	_, err = md.PalletByIndex(99)
	assert.ErrorIs(t, err, metadata.ErrPalletNotFound)
}

func Test_Pallet_Calls(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)

	pallet, call, err := md.Call("Balances", "transfer_keep_alive")
	require.NoError(t, err)
	assert.Equal(t, "Balances", pallet.Name)
	assert.Equal(t, uint8(3), call.Index)
	require.Len(t, call.Fields, 2)
	assert.Equal(t, "dest", call.Fields[0].Name)

	byIndex, err := pallet.CallByIndex(3)
	require.NoError(t, err)
	assert.Equal(t, "transfer_keep_alive", byIndex.Name)

	_, _, err = md.Call("Balances", "transfer")
	assert.ErrorIs(t, err, metadata.ErrCallNotFound)
	assert.EqualError(t, err, "call not found: Balances.transfer")

	multisig, err := md.Pallet("Multisig")
	require.NoError(t, err)
	calls, err := multisig.Calls()
	require.NoError(t, err)
	assert.Nil(t, calls)
	_, err = multisig.Call("as_multi")
	assert.ErrorIs(t, err, metadata.ErrCallNotFound)
}

func Test_Pallet_EventsAndErrors(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)
	pallet, err := md.Pallet("Balances")
	require.NoError(t, err)

	event, err := pallet.Event(2)
	require.NoError(t, err)
	assert.Equal(t, "Transfer", event.Name)
	assert.Len(t, event.Fields, 3)

	event, err = pallet.EventByName("Withdraw")
	require.NoError(t, err)
	assert.Equal(t, uint8(8), event.Index)

	_, err = pallet.Event(3)
	assert.ErrorIs(t, err, metadata.ErrEventNotFound)

	variant, err := pallet.Error(2)
	require.NoError(t, err)
	assert.Equal(t, "InsufficientBalance", variant.Name)
	assert.Equal(t, []string{"Balance too low to send value."}, variant.Docs)

	_, err = pallet.Error(42)
	assert.ErrorIs(t, err, metadata.ErrErrorNotFound)
}

func Test_Metadata_StorageEntry(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)

	entry, err := md.StorageEntry("System", "Account")
	require.NoError(t, err)
	assert.True(t, entry.IsMap())
	assert.Equal(t, metadata.Default, entry.Modifier)
	assert.Equal(t, []metadata.StorageHasher{metadata.Blake2_128Concat}, entry.Hashers)

	keys, err := entry.KeyTypes(md.Types)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	key, err := md.Types.Type(keys[0])
	require.NoError(t, err)
	assert.Equal(t, "sp_core::crypto::AccountId32", key.PathString())

	entry, err = md.StorageEntry("Multisig", "Multisigs")
	require.NoError(t, err)
	keys, err = entry.KeyTypes(md.Types)
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	entry, err = md.StorageEntry("System", "Number")
	require.NoError(t, err)
	assert.False(t, entry.IsMap())
	keys, err = entry.KeyTypes(md.Types)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = md.StorageEntry("System", "Nope")
	assert.ErrorIs(t, err, metadata.ErrStorageEntryNotFound)
	assert.EqualError(t, err, "storage entry not found: System.Nope")

	_, err = md.StorageEntry("Nope", "Account")
	assert.ErrorIs(t, err, metadata.ErrPalletNotFound)
}

func Test_Metadata_Constant(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)

	constant, err := md.Constant("System", "BlockHashCount")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x10, 0x00, 0x00}, constant.Value)

	_, err = md.Constant("System", "Nope")
	assert.ErrorIs(t, err, metadata.ErrConstantNotFound)
}

func Test_Metadata_OuterEnums_V14MatchesV15(t *testing.T) {
	t.Parallel()

	v14 := metadatatest.New(14)
	v15 := metadatatest.New(15)

	call14, ok := v14.CallEnumType()
	require.True(t, ok)
	call15, ok := v15.CallEnumType()
	require.True(t, ok)
	assert.Equal(t, call15, call14)

	event14, ok := v14.EventEnumType()
	require.True(t, ok)
	event15, ok := v15.EventEnumType()
	require.True(t, ok)
	assert.Equal(t, event15, event14)
}

func Test_Metadata_RuntimeAPI(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)

	api, err := md.RuntimeAPI("Core")
	require.NoError(t, err)
	assert.Equal(t, "version", api.Methods[0].Name)

	_, err = md.RuntimeAPI("BabeApi")
	assert.ErrorIs(t, err, metadata.ErrRuntimeAPINotFound)
}

func Test_Registry_Variants(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)
	entry, err := md.StorageEntry("System", "Number")
	require.NoError(t, err)

	_, err = md.Types.Variants(entry.ValueType)
	assert.ErrorIs(t, err, metadata.ErrNotVariant)

	_, err = md.Types.Type(1 << 30)
	assert.ErrorIs(t, err, metadata.ErrTypeNotFound)
}
