// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"time"

	"github.com/ChainSafe/gosubxt/pkg/rpc"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultURL is the websocket endpoint of a local node.
const DefaultURL = "ws://127.0.0.1:9944"

// Config is the configuration of an online client.
type Config struct {
	// URL is the websocket endpoint of the node.
	URL string `mapstructure:"url"`
	// RetryAttempts is the number of dial attempts, rpc default when zero.
	RetryAttempts uint `mapstructure:"retry-attempts"`
	// RetryDelay is the base delay between dial attempts.
	RetryDelay time.Duration `mapstructure:"retry-delay"`
	// PageSize is the number of storage keys fetched per page.
	PageSize uint32 `mapstructure:"page-size"`
	// Registerer receives the rpc metrics, none are recorded when nil.
	Registerer prometheus.Registerer `mapstructure:"-"`
}

// DefaultConfig returns the configuration for a local node.
func DefaultConfig() Config {
	return Config{URL: DefaultURL}
}

func (c Config) rpcOptions() (options []rpc.Option) {
	if c.RetryAttempts > 0 {
		options = append(options, rpc.Attempts(c.RetryAttempts))
	}
	if c.RetryDelay > 0 {
		options = append(options, rpc.Delay(c.RetryDelay))
	}
	if c.Registerer != nil {
		options = append(options, rpc.Metrics(c.Registerer))
	}
	return options
}
