// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"testing"

	"github.com/ChainSafe/gosubxt/pkg/rpc"
	"github.com/ChainSafe/gosubxt/pkg/rpc/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Updater_Apply(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	rpcClient := mocks.NewMockClient(ctrl)
	expectBootstrap(t, rpcClient, 1)
	c, err := NewOnlineClient(context.Background(), rpcClient, 0)
	require.NoError(t, err)
	before := c.Metadata()

	updated, err := c.Updater().Apply(context.Background(), runtimeVersion(1))
	require.NoError(t, err)
	assert.False(t, updated)

	expectMetadata(t, rpcClient, 14)
	updated, err = c.Updater().Apply(context.Background(), runtimeVersion(2))
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, uint32(2), c.RuntimeVersion().SpecVersion)
	assert.Equal(t, uint8(14), c.Metadata().Version)
	assert.Equal(t, uint8(15), before.Version)
}

func Test_Updater_Run(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	rpcClient := mocks.NewMockClient(ctrl)
	expectBootstrap(t, rpcClient, 1)
	c, err := NewOnlineClient(context.Background(), rpcClient, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error)
	sub := mocks.NewMockSubscription(ctrl)
	sub.EXPECT().Err().Return((<-chan error)(errs)).AnyTimes()
	sub.EXPECT().Unsubscribe()

	rpcClient.EXPECT().Subscribe(gomock.Any(), "state", "subscribeRuntimeVersion", "unsubscribeRuntimeVersion",
		"runtimeVersion", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _ string, channel interface{},
			_ ...interface{}) (rpc.Subscription, error) {
			versions := channel.(chan rpc.RuntimeVersion)
			versions <- runtimeVersion(1)
			versions <- runtimeVersion(2)
			return sub, nil
		})

	encoded := expectMetadata(t, rpcClient, 14)
	encoded.Do(func(context.Context, interface{}, string, ...interface{}) {
		// no further notification follows the upgrade
		cancel()
	})

	err = c.Updater().Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint32(2), c.RuntimeVersion().SpecVersion)
	assert.Equal(t, uint8(14), c.Metadata().Version)
}
