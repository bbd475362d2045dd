// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics records calls per method. A nil *metrics records nothing.
type metrics struct {
	calls         *prometheus.CounterVec
	errors        *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	subscriptions prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer) (m *metrics, err error) {
	if registerer == nil {
		return nil, nil
	}

	m = new(metrics)
	m.calls, err = register(registerer, "calls counter", prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "subxt",
		Subsystem: "rpc",
		Name:      "calls_total",
		Help:      "number of JSON-RPC calls per method",
	}, []string{"method"}))
	if err != nil {
		return nil, err
	}

	m.errors, err = register(registerer, "errors counter", prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "subxt",
		Subsystem: "rpc",
		Name:      "errors_total",
		Help:      "number of failed JSON-RPC calls per method",
	}, []string{"method"}))
	if err != nil {
		return nil, err
	}

	m.duration, err = register(registerer, "duration histogram", prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "subxt",
		Subsystem: "rpc",
		Name:      "call_duration_seconds",
		Help:      "JSON-RPC call latency per method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"}))
	if err != nil {
		return nil, err
	}

	m.subscriptions, err = register(registerer, "subscriptions gauge", prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "subxt",
		Subsystem: "rpc",
		Name:      "subscriptions_active",
		Help:      "number of active JSON-RPC subscriptions",
	}))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// register registers the collector, reusing the collector already
// registered under the same descriptor if any.
func register[C prometheus.Collector](registerer prometheus.Registerer, name string, collector C) (C, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return collector, fmt.Errorf("cannot register %s: %w", name, err)
}

func (m *metrics) observe(method string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(method).Inc()
	m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		m.errors.WithLabelValues(method).Inc()
	}
}

func (m *metrics) subscribed() {
	if m != nil {
		m.subscriptions.Inc()
	}
}

func (m *metrics) unsubscribed() {
	if m != nil {
		m.subscriptions.Dec()
	}
}
