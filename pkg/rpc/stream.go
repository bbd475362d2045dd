// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
)

const streamBuffer = 16

// Stream is a typed subscription. Values arrive on C until the
// subscription fails or is unsubscribed.
type Stream[T any] struct {
	C   <-chan T
	sub Subscription
}

// NewStream wraps a subscription delivering values on channel.
func NewStream[T any](channel <-chan T, sub Subscription) *Stream[T] {
	return &Stream[T]{C: channel, sub: sub}
}

// Err returns the subscription error channel.
func (s *Stream[T]) Err() <-chan error {
	return s.sub.Err()
}

// Unsubscribe ends the subscription.
func (s *Stream[T]) Unsubscribe() {
	s.sub.Unsubscribe()
}

// Next waits for the next value.
func (s *Stream[T]) Next(ctx context.Context) (value T, err error) {
	select {
	case <-ctx.Done():
		return value, ctx.Err()
	case err, ok := <-s.sub.Err():
		if !ok || err == nil {
			err = ErrClosed
		}
		return value, err
	case value = <-s.C:
		return value, nil
	}
}

func subscribe[T any](ctx context.Context, client Client, namespace, subscribeSuffix, unsubscribeSuffix,
	notificationSuffix string, args ...interface{}) (*Stream[T], error) {
	channel := make(chan T, streamBuffer)
	sub, err := client.Subscribe(ctx, namespace, subscribeSuffix, unsubscribeSuffix, notificationSuffix,
		channel, args...)
	if err != nil {
		return nil, err
	}
	return NewStream[T](channel, sub), nil
}
