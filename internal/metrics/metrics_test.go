// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Server(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "subxt",
		Name:      "test_total",
		Help:      "test counter",
	})
	registry.MustRegister(counter)
	counter.Add(3)

	server := NewServer("127.0.0.1:0", registry)
	require.NoError(t, server.Start())

	response, err := http.Get("http://" + server.Address() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.NoError(t, response.Body.Close())
	assert.Contains(t, string(body), "subxt_test_total 3")

	assert.NoError(t, server.Stop())
}

func Test_Server_Start_error(t *testing.T) {
	t.Parallel()

	server := NewServer("not an address", prometheus.NewRegistry())
	assert.Error(t, server.Start())
}
