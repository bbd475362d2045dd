// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Option is a SCALE optional value: a 0x00 byte for none, or 0x01 followed
// by the encoded value.
type Option[T any] struct {
	hasValue bool
	value    T
}

// Some returns an option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{hasValue: true, value: value}
}

// None returns an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.hasValue
}

// Unwrap returns the value and whether it is set.
func (o Option[T]) Unwrap() (value T, ok bool) {
	return o.value, o.hasValue
}

// Encode implements scale.Encodeable.
func (o Option[T]) Encode(encoder scale.Encoder) error {
	return encoder.EncodeOption(o.hasValue, o.value)
}

// Decode implements scale.Decodeable.
func (o *Option[T]) Decode(decoder scale.Decoder) error {
	return decoder.DecodeOption(&o.hasValue, &o.value)
}
