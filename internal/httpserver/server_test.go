// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:generate mockgen -destination=logger_mock_test.go -package $GOPACKAGE . Logger

func Test_New(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	const name = "name"
	const address = "test"
	handler := http.NewServeMux()
	logger := NewMockLogger(ctrl)

	expectedServer := &Server{
		name:    name,
		address: address,
		handler: handler,
		logger:  logger,
		optional: optionalSettings{
			shutdownTimeout: time.Second,
		},
	}

	server := New(name, address, handler, logger,
		ShutdownTimeout(time.Second))

	assert.NotNil(t, server.addressSet)
	server.addressSet = nil

	assert.Equal(t, expectedServer, server)
}

func Test_Server_Run(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	logger := NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any())
	logger.EXPECT().Warn("test http server shutting down: context canceled")

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	server := New("test", "127.0.0.1:0", handler, logger)

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	done := make(chan error)
	go server.Run(ctx, ready, done)
	<-ready

	response, err := http.Get("http://" + server.GetAddress() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.NoError(t, response.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	assert.NoError(t, <-done)
}

func Test_Server_Run_listenError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	server := New("test", "not an address", http.NewServeMux(), NewMockLogger(ctrl))

	ready := make(chan struct{})
	done := make(chan error)
	go server.Run(context.Background(), ready, done)

	assert.Error(t, <-done)
	assert.Equal(t, "not an address", server.GetAddress())
}
