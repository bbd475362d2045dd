// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package constants reads pallet constants from the runtime metadata.
package constants

import (
	"fmt"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/ChainSafe/gosubxt/pkg/value"
)

// Address names a pallet constant.
type Address struct {
	Pallet   string
	Constant string
}

// NewAddress returns the address of the constant.
func NewAddress(pallet, constant string) Address {
	return Address{Pallet: pallet, Constant: constant}
}

func (a Address) String() string {
	return a.Pallet + "." + a.Constant
}

// Getter reads constants. It is implemented by *Client and used by the
// generated runtime bindings.
type Getter interface {
	At(address Address, target interface{}) error
	Raw(address Address) ([]byte, error)
}

var _ Getter = (*Client)(nil)

// Client reads constants from a metadata snapshot.
type Client struct {
	metadata *metadata.Metadata
}

// NewClient returns a client reading constants from md.
func NewClient(md *metadata.Metadata) *Client {
	return &Client{metadata: md}
}

// Raw returns the SCALE encoded value of the constant.
func (c *Client) Raw(address Address) ([]byte, error) {
	constant, err := c.metadata.Constant(address.Pallet, address.Constant)
	if err != nil {
		return nil, err
	}
	return constant.Value, nil
}

// At decodes the constant into target, which must be a pointer.
func (c *Client) At(address Address, target interface{}) error {
	raw, err := c.Raw(address)
	if err != nil {
		return err
	}
	if err = types.Decode(raw, target); err != nil {
		return fmt.Errorf("decoding constant %s: %w", address, err)
	}
	return nil
}

// Value decodes the constant dynamically.
func (c *Client) Value(address Address) (value.Value, error) {
	constant, err := c.metadata.Constant(address.Pallet, address.Constant)
	if err != nil {
		return value.Value{}, err
	}
	v, err := value.DecodeAll(c.metadata.Types, constant.Type, constant.Value)
	if err != nil {
		return value.Value{}, fmt.Errorf("decoding constant %s: %w", address, err)
	}
	return v, nil
}
