// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/constants"
	"github.com/ChainSafe/gosubxt/pkg/metadata/metadatatest"
	"github.com/ChainSafe/gosubxt/pkg/rpc"
	"github.com/ChainSafe/gosubxt/pkg/rpc/mocks"
	"github.com/ChainSafe/gosubxt/pkg/tx"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var genesisHash = common.MustHexToHash("0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3")

func runtimeVersion(spec uint32) rpc.RuntimeVersion {
	return rpc.RuntimeVersion{SpecName: "polkadot", SpecVersion: spec, TransactionVersion: 26}
}

func expectMetadata(t *testing.T, client *mocks.MockClient, version uint8) *gomock.Call {
	t.Helper()

	encoded, err := metadatatest.New(version).Encode()
	require.NoError(t, err)

	return client.EXPECT().Call(gomock.Any(), gomock.Any(), "state_getMetadata").
		DoAndReturn(func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
			*result.(*rpc.HexBytes) = encoded
			return nil
		})
}

func expectBootstrap(t *testing.T, client *mocks.MockClient, spec uint32) {
	t.Helper()

	client.EXPECT().Call(gomock.Any(), gomock.Any(), "chain_getBlockHash", uint32(0)).
		DoAndReturn(func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
			hash := genesisHash
			*result.(**common.Hash) = &hash
			return nil
		})
	client.EXPECT().Call(gomock.Any(), gomock.Any(), "state_getRuntimeVersion").
		DoAndReturn(func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
			*result.(*rpc.RuntimeVersion) = runtimeVersion(spec)
			return nil
		})
	expectMetadata(t, client, 15)
}

func Test_NewOnlineClient(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	rpcClient := mocks.NewMockClient(ctrl)
	expectBootstrap(t, rpcClient, 9430)

	c, err := NewOnlineClient(context.Background(), rpcClient, 0)
	require.NoError(t, err)

	assert.Equal(t, genesisHash, c.GenesisHash())
	assert.Equal(t, uint32(9430), c.RuntimeVersion().SpecVersion)
	assert.Equal(t, uint8(15), c.Metadata().Version)

	var deposit types.U128
	err = c.Constants().At(constants.NewAddress("Balances", "ExistentialDeposit"), &deposit)
	require.NoError(t, err)
	assert.Equal(t, metadatatest.ExistentialDeposit, deposit.Uint64())

	offline := c.Offline()
	assert.Equal(t, c.Metadata(), offline.Metadata())
	assert.Equal(t, genesisHash, offline.GenesisHash())
	assert.Equal(t, c.RuntimeVersion(), offline.RuntimeVersion())

	rpcClient.EXPECT().Close()
	c.Close()
}

func Test_NewOnlineClient_Error(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	errTest := errors.New("test error")
	rpcClient := mocks.NewMockClient(ctrl)
	rpcClient.EXPECT().Call(gomock.Any(), gomock.Any(), "chain_getBlockHash", uint32(0)).
		Return(errTest).AnyTimes()
	rpcClient.EXPECT().Call(gomock.Any(), gomock.Any(), "state_getRuntimeVersion").
		Return(nil).AnyTimes()
	rpcClient.EXPECT().Call(gomock.Any(), gomock.Any(), "state_getMetadata").
		Return(nil).AnyTimes()

	_, err := NewOnlineClient(context.Background(), rpcClient, 0)
	assert.Error(t, err)
}

func Test_OfflineClient(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)
	c := NewOfflineClient(md, genesisHash, runtimeVersion(1))

	var count uint32
	err := c.Constants().At(constants.NewAddress("System", "BlockHashCount"), &count)
	require.NoError(t, err)
	assert.Equal(t, uint32(metadatatest.BlockHashCount), count)

	call := tx.NewDynamicCall("System", "remark")
	_, err = c.Tx().Submittable(call).Unsigned()
	assert.ErrorIs(t, err, tx.ErrFieldCount)
}

func Test_Config_rpcOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DefaultConfig().rpcOptions())
	assert.Equal(t, DefaultURL, DefaultConfig().URL)

	config := Config{RetryAttempts: 5, RetryDelay: 1, PageSize: 10}
	assert.Len(t, config.rpcOptions(), 2)
}
