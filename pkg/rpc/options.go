// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option is a functional option for Connect.
type Option func(s *settings)

type settings struct {
	attempts   uint
	delay      time.Duration
	registerer prometheus.Registerer
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}

	if s.attempts == 0 {
		const defaultAttempts = 3
		s.attempts = defaultAttempts
	}

	if s.delay == 0 {
		const defaultDelay = 500 * time.Millisecond
		s.delay = defaultDelay
	}

	return s
}

// Attempts sets how many times dialing is tried. It defaults to 3.
func Attempts(attempts uint) Option {
	return func(s *settings) {
		s.attempts = attempts
	}
}

// Delay sets the base delay between dial attempts. It defaults to 500ms.
func Delay(delay time.Duration) Option {
	return func(s *settings) {
		s.delay = delay
	}
}

// Metrics registers per method call metrics with the registerer.
// Metrics are disabled by default.
func Metrics(registerer prometheus.Registerer) Option {
	return func(s *settings) {
		s.registerer = registerer
	}
}
