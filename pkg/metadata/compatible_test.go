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

// addPrimitive adds a primitive type to the registry and returns its id.
func addPrimitive(md *metadata.Metadata, primitive metadata.Primitive) uint32 {
	id := uint32(md.Types.Len())
	md.Types.Add(&metadata.Type{
		ID:  id,
		Def: metadata.TypeDef{Kind: metadata.KindPrimitive, Primitive: primitive},
	})
	return id
}

func Test_Metadata_CheckCompatible(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		change  func(t *testing.T, md *metadata.Metadata)
		pallets []string
		errMsg  string
	}{
		"unchanged": {
			change: func(*testing.T, *metadata.Metadata) {},
		},
		"call field retyped": {
			change: func(t *testing.T, md *metadata.Metadata) {
				_, call, err := md.Call("Balances", "transfer_keep_alive")
				require.NoError(t, err)
				call.Fields[1].Type = addPrimitive(md, metadata.Bool)
			},
			errMsg: "metadata is incompatible: call Balances.transfer_keep_alive changed",
		},
		"call field renamed": {
			change: func(t *testing.T, md *metadata.Metadata) {
				_, call, err := md.Call("Balances", "transfer_all")
				require.NoError(t, err)
				call.Fields[1].Name = "keep"
			},
			errMsg: "metadata is incompatible: call Balances.transfer_all changed",
		},
		"shared type changed": {
			// AccountData is the value of Balances.Account and part of
			// the value of System.Account.
			change: func(t *testing.T, md *metadata.Metadata) {
				entry, err := md.StorageEntry("Balances", "Account")
				require.NoError(t, err)
				accountData, err := md.Types.Type(entry.ValueType)
				require.NoError(t, err)
				accountData.Def.Fields[0].Type = addPrimitive(md, metadata.U64)
			},
			errMsg: "metadata is incompatible: storage entry System.Account changed\n" +
				"metadata is incompatible: storage entry Balances.Account changed",
		},
		"storage hasher changed": {
			change: func(t *testing.T, md *metadata.Metadata) {
				entry, err := md.StorageEntry("System", "BlockHash")
				require.NoError(t, err)
				entry.Hashers[0] = metadata.Blake2_128Concat
			},
			pallets: []string{"System"},
			errMsg:  "metadata is incompatible: storage entry System.BlockHash changed",
		},
		"values and defaults differ": {
			change: func(t *testing.T, md *metadata.Metadata) {
				constant, err := md.Constant("Balances", "ExistentialDeposit")
				require.NoError(t, err)
				constant.Value = make([]byte, 16)
				entry, err := md.StorageEntry("System", "Number")
				require.NoError(t, err)
				entry.Default = []byte{1, 0, 0, 0}
			},
		},
		"constant retyped": {
			change: func(t *testing.T, md *metadata.Metadata) {
				constant, err := md.Constant("System", "SS58Prefix")
				require.NoError(t, err)
				constant.Type = addPrimitive(md, metadata.U8)
			},
			errMsg: "metadata is incompatible: constant System.SS58Prefix changed type",
		},
		"items removed": {
			change: func(t *testing.T, md *metadata.Metadata) {
				events, err := md.Types.Variants(*md.Pallets[0].EventType)
				require.NoError(t, err)
				eventType, err := md.Types.Type(*md.Pallets[0].EventType)
				require.NoError(t, err)
				eventType.Def.Variants = events[:len(events)-1]

				balances, err := md.Pallet("Balances")
				require.NoError(t, err)
				balances.Constants = balances.Constants[:1]
			},
			// System.Events holds the event enum, so it changes as well
			errMsg: "metadata is incompatible: event System.Remarked not found\n" +
				"metadata is incompatible: storage entry System.Events changed\n" +
				"metadata is incompatible: constant Balances.MaxLocks not found",
		},
		"pallet removed": {
			change: func(t *testing.T, md *metadata.Metadata) {
				md.Pallets = md.Pallets[:2]
				md.Init()
			},
			errMsg: "metadata is incompatible: pallet not found: Multisig",
		},
		"pallet removed but not checked": {
			change: func(t *testing.T, md *metadata.Metadata) {
				md.Pallets = md.Pallets[:2]
				md.Init()
			},
			pallets: []string{"Balances"},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			md := metadatatest.New(15)
			testCase.change(t, md)

			err := md.CheckCompatible(metadatatest.New(15), testCase.pallets...)
			if testCase.errMsg == "" {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, metadata.ErrIncompatible)
			assert.EqualError(t, err, testCase.errMsg)
		})
	}
}

func Test_Metadata_CheckCompatible_IgnoresTypeIDs(t *testing.T) {
	t.Parallel()

	reference := metadatatest.New(15)
	reference.Retain([]string{"Balances"}, nil)

	md := metadatatest.New(14)
	require.NoError(t, md.CheckCompatible(reference))

	_, call, err := md.Call("Balances", "transfer_keep_alive")
	require.NoError(t, err)
	call.Fields[1].Type = addPrimitive(md, metadata.Bool)
	assert.ErrorIs(t, md.CheckCompatible(reference), metadata.ErrIncompatible)
}

func Test_Metadata_CheckCompatible_UnknownReferencePallet(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	err := md.CheckCompatible(md, "Staking")
	assert.ErrorIs(t, err, metadata.ErrPalletNotFound)
	assert.NotErrorIs(t, err, metadata.ErrIncompatible)
}
