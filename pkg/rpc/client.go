// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package rpc exposes the legacy substrate JSON-RPC methods over a
// websocket connection.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/gosubxt/internal/log"
	"github.com/avast/retry-go/v4"
	gethrpc "github.com/centrifuge/go-substrate-rpc-client/v4/gethrpc"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

// ErrClosed is returned by Stream.Next once the subscription has ended.
var ErrClosed = errors.New("rpc client closed")

// Subscription is an active JSON-RPC subscription.
type Subscription interface {
	Err() <-chan error
	Unsubscribe()
}

// Client is a JSON-RPC client able to call methods and subscribe to
// notifications.
type Client interface {
	Call(ctx context.Context, result interface{}, method string, args ...interface{}) error
	Subscribe(ctx context.Context, namespace, subscribeSuffix, unsubscribeSuffix, notificationSuffix string,
		channel interface{}, args ...interface{}) (Subscription, error)
	Close()
}

type caller interface {
	Call(result interface{}, method string, args ...interface{}) error
	Close()
}

type contextCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

type subscriber interface {
	Subscribe(ctx context.Context, namespace, subscribeMethodSuffix, unsubscribeMethodSuffix,
		notificationMethodSuffix string, channel interface{}, args ...interface{}) (*gethrpc.ClientSubscription, error)
}

var (
	_ caller       = (*gethrpc.Client)(nil)
	_ subscriber   = (*gethrpc.Client)(nil)
	_ Subscription = (*trackedSubscription)(nil)
)

type wsClient struct {
	url        string
	caller     caller
	subscriber subscriber
	metrics    *metrics
}

// Connect dials the node at url, retrying failed dials.
func Connect(ctx context.Context, url string, options ...Option) (Client, error) {
	settings := newSettings(options)

	m, err := newMetrics(settings.registerer)
	if err != nil {
		return nil, fmt.Errorf("creating rpc metrics: %w", err)
	}

	var connection *gethrpc.Client
	err = retry.Do(
		func() (err error) {
			connection, err = gethrpc.DialContext(ctx, url)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(settings.attempts),
		retry.Delay(settings.delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debugf("dial attempt %d to %s failed: %s", n+1, url, err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}

	logger.Debugf("connected to %s", url)
	return newWSClient(url, connection, connection, m), nil
}

func newWSClient(url string, c caller, s subscriber, m *metrics) *wsClient {
	return &wsClient{
		url:        url,
		caller:     c,
		subscriber: s,
		metrics:    m,
	}
}

// Call calls the method and decodes the JSON result into result, which
// may be nil to discard it.
func (c *wsClient) Call(ctx context.Context, result interface{}, method string, args ...interface{}) (err error) {
	start := time.Now()
	defer func() { c.metrics.observe(method, start, err) }()

	var raw json.RawMessage
	if cc, ok := c.caller.(contextCaller); ok {
		err = cc.CallContext(ctx, &raw, method, args...)
	} else {
		err = c.callAsync(ctx, &raw, method, args...)
	}
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}

	if result == nil || len(raw) == 0 {
		return nil
	}
	if err = json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}
	return nil
}

func (c *wsClient) callAsync(ctx context.Context, raw *json.RawMessage, method string, args ...interface{}) error {
	done := make(chan error, 1)
	go func() {
		done <- c.caller.Call(raw, method, args...)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func (c *wsClient) Subscribe(ctx context.Context, namespace, subscribeSuffix, unsubscribeSuffix,
	notificationSuffix string, channel interface{}, args ...interface{}) (Subscription, error) {
	method := namespace + "_" + subscribeSuffix
	start := time.Now()

	sub, err := c.subscriber.Subscribe(ctx, namespace, subscribeSuffix, unsubscribeSuffix,
		notificationSuffix, channel, args...)
	c.metrics.observe(method, start, err)
	if err != nil {
		return nil, fmt.Errorf("subscribing with %s: %w", method, err)
	}

	c.metrics.subscribed()
	return &trackedSubscription{ClientSubscription: sub, metrics: c.metrics}, nil
}

func (c *wsClient) Close() {
	logger.Debugf("closing connection to %s", c.url)
	c.caller.Close()
}

type trackedSubscription struct {
	*gethrpc.ClientSubscription
	metrics *metrics
	once    sync.Once
}

func (s *trackedSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.ClientSubscription.Unsubscribe()
		s.metrics.unsubscribed()
	})
}
