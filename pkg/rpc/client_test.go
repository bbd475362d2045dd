// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	gethrpc "github.com/centrifuge/go-substrate-rpc-client/v4/gethrpc"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingCaller struct {
	release chan struct{}
}

func (b blockingCaller) Call(interface{}, string, ...interface{}) error {
	<-b.release
	return nil
}

func (blockingCaller) Close() {}

type failingSubscriber struct {
	err error
}

func (f failingSubscriber) Subscribe(context.Context, string, string, string, string,
	interface{}, ...interface{}) (*gethrpc.ClientSubscription, error) {
	return nil, f.err
}

type systemService struct{}

func (systemService) Chain() string { return "Development" }

func newTestNode(t *testing.T) (url string) {
	t.Helper()

	server := gethrpc.NewServer()
	require.NoError(t, server.RegisterName("system", systemService{}))
	t.Cleanup(server.Stop)

	httpServer := httptest.NewServer(server.WebsocketHandler([]string{"*"}))
	t.Cleanup(httpServer.Close)

	return "ws" + strings.TrimPrefix(httpServer.URL, "http")
}

func Test_Connect(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	client, err := Connect(context.Background(), newTestNode(t), Metrics(registry))
	require.NoError(t, err)
	t.Cleanup(client.Close)

	var chain string
	err = client.Call(context.Background(), &chain, "system_chain")
	require.NoError(t, err)
	assert.Equal(t, "Development", chain)

	err = client.Call(context.Background(), &chain, "system_unknown")
	assert.ErrorContains(t, err, "calling system_unknown")

	count, err := testutil.GatherAndCount(registry, "subxt_rpc_calls_total", "subxt_rpc_errors_total")
	require.NoError(t, err)
	// two call series and one error series
	assert.Equal(t, 3, count)
}

func Test_Connect_Error(t *testing.T) {
	t.Parallel()

	_, err := Connect(context.Background(), "ftp://127.0.0.1:9944", Attempts(2), Delay(1))
	assert.ErrorContains(t, err, "connecting to ftp://127.0.0.1:9944")
	assert.ErrorContains(t, err, `no known transport for URL scheme "ftp"`)
}

func Test_wsClient_Call(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	caller := NewMockcaller(ctrl)
	caller.EXPECT().Call(gomock.Any(), "system_chain").
		DoAndReturn(func(result interface{}, _ string, _ ...interface{}) error {
			raw := result.(*json.RawMessage)
			*raw = json.RawMessage(`"Development"`)
			return nil
		})

	registry := prometheus.NewRegistry()
	m, err := newMetrics(registry)
	require.NoError(t, err)

	client := newWSClient("ws://localhost:9944", caller, nil, m)

	var chain string
	err = client.Call(context.Background(), &chain, "system_chain")
	require.NoError(t, err)
	assert.Equal(t, "Development", chain)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.calls.WithLabelValues("system_chain")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.errors.WithLabelValues("system_chain")))
}

func Test_wsClient_Call_Error(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	errTest := errors.New("test error")
	caller := NewMockcaller(ctrl)
	caller.EXPECT().Call(gomock.Any(), "chain_getBlockHash", uint32(1)).Return(errTest)

	m, err := newMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	client := newWSClient("ws://localhost:9944", caller, nil, m)

	var hash string
	err = client.Call(context.Background(), &hash, "chain_getBlockHash", uint32(1))
	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "calling chain_getBlockHash: test error")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.errors.WithLabelValues("chain_getBlockHash")))
}

func Test_wsClient_Call_DecodeError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	caller := NewMockcaller(ctrl)
	caller.EXPECT().Call(gomock.Any(), "system_chain").
		DoAndReturn(func(result interface{}, _ string, _ ...interface{}) error {
			raw := result.(*json.RawMessage)
			*raw = json.RawMessage(`42`)
			return nil
		})

	client := newWSClient("ws://localhost:9944", caller, nil, nil)

	var chain string
	err := client.Call(context.Background(), &chain, "system_chain")
	assert.ErrorContains(t, err, "decoding system_chain result")
}

func Test_wsClient_Call_ContextCanceled(t *testing.T) {
	t.Parallel()

	caller := blockingCaller{release: make(chan struct{})}
	t.Cleanup(func() { close(caller.release) })

	client := newWSClient("ws://localhost:9944", caller, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Call(ctx, nil, "system_chain")
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_wsClient_Subscribe_Error(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")
	m, err := newMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	client := newWSClient("ws://localhost:9944", nil, failingSubscriber{err: errTest}, m)

	channel := make(chan Header)
	sub, err := client.Subscribe(context.Background(), "chain", "subscribeFinalizedHeads",
		"unsubscribeFinalizedHeads", "finalizedHead", channel)
	assert.Nil(t, sub)
	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.errors.WithLabelValues("chain_subscribeFinalizedHeads")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.subscriptions))
}

func Test_wsClient_Close(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	caller := NewMockcaller(ctrl)
	caller.EXPECT().Close()

	client := newWSClient("ws://localhost:9944", caller, nil, nil)
	client.Close()
}

func Test_newMetrics(t *testing.T) {
	t.Parallel()

	m, err := newMetrics(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	// a nil *metrics is usable
	m.subscribed()
	m.unsubscribed()

	registry := prometheus.NewRegistry()
	first, err := newMetrics(registry)
	require.NoError(t, err)
	second, err := newMetrics(registry)
	require.NoError(t, err)

	first.subscribed()
	assert.Equal(t, float64(1), testutil.ToFloat64(second.subscriptions))
}

func Test_newSettings(t *testing.T) {
	t.Parallel()

	s := newSettings(nil)
	assert.Equal(t, uint(3), s.attempts)
	assert.Nil(t, s.registerer)

	registry := prometheus.NewRegistry()
	s = newSettings([]Option{Attempts(5), Delay(1), Metrics(registry)})
	assert.Equal(t, uint(5), s.attempts)
	assert.Equal(t, registry, s.registerer)
}
