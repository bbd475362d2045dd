// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package storage reads runtime storage entries, validated against the
// runtime metadata.
package storage

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gosubxt/internal/log"
	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/rpc"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/ChainSafe/gosubxt/pkg/value"
)

//go:generate mockgen -destination=mock_methods_test.go -package $GOPACKAGE . Methods

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "storage"))

// DefaultPageSize is the number of keys fetched per page when iterating.
const DefaultPageSize uint32 = 100

// Methods is the subset of the node RPC methods used to read storage.
type Methods interface {
	Storage(ctx context.Context, key []byte, at *common.Hash) (value []byte, found bool, err error)
	StorageKeysPaged(ctx context.Context, prefix []byte, count uint32,
		startKey []byte, at *common.Hash) ([][]byte, error)
	QueryStorageAt(ctx context.Context, keys [][]byte, at *common.Hash) ([]rpc.StorageChangeSet, error)
}

// Fetcher reads storage entries. It is implemented by *Client and used by
// the generated runtime bindings.
type Fetcher interface {
	Fetch(ctx context.Context, address Address, target interface{}) (found bool, err error)
	FetchOrDefault(ctx context.Context, address Address, target interface{}) error
	FetchRaw(ctx context.Context, address Address) (value []byte, found bool, err error)
	Iter(ctx context.Context, address Address) (*KeyIter, error)
}

var _ Fetcher = (*Client)(nil)

// Client reads storage at a given block, or at the best block.
type Client struct {
	metadata *metadata.Metadata
	methods  Methods
	at       *common.Hash
	pageSize uint32
}

// NewClient returns a storage client reading at the best block.
// A zero pageSize uses DefaultPageSize.
func NewClient(md *metadata.Metadata, methods Methods, pageSize uint32) *Client {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	return &Client{
		metadata: md,
		methods:  methods,
		pageSize: pageSize,
	}
}

// At returns a copy of the client reading at the given block.
func (c *Client) At(hash common.Hash) *Client {
	clone := *c
	clone.at = &hash
	return &clone
}

// Entry returns the metadata of the addressed entry after checking that
// the address hashers match it and that no more keys than hashers are set.
func (c *Client) Entry(address Address) (*metadata.StorageEntry, error) {
	entry, err := c.metadata.StorageEntry(address.Pallet, address.Entry)
	if err != nil {
		return nil, err
	}

	if len(address.Hashers) != len(entry.Hashers) {
		return nil, fmt.Errorf("%w: %s has %d hashers, address has %d",
			ErrHasherMismatch, address, len(entry.Hashers), len(address.Hashers))
	}
	for i, hasher := range entry.Hashers {
		if address.Hashers[i] != HasherFromMetadata(hasher) {
			return nil, fmt.Errorf("%w: %s key %d is hashed with %s, not %s",
				ErrHasherMismatch, address, i, hasher, address.Hashers[i])
		}
	}
	if len(address.Keys) > len(entry.Hashers) {
		return nil, fmt.Errorf("%w: %s takes %d keys, got %d",
			ErrKeyCount, address, len(entry.Hashers), len(address.Keys))
	}
	return entry, nil
}

func (c *Client) completeEntry(address Address) (*metadata.StorageEntry, error) {
	entry, err := c.Entry(address)
	if err != nil {
		return nil, err
	}
	if !address.IsComplete() {
		return nil, fmt.Errorf("%w: %s takes %d keys, got %d",
			ErrKeyCount, address, len(entry.Hashers), len(address.Keys))
	}
	return entry, nil
}

// FetchRaw returns the SCALE encoded value at the address, and false when
// no value is stored.
func (c *Client) FetchRaw(ctx context.Context, address Address) (value []byte, found bool, err error) {
	if _, err = c.completeEntry(address); err != nil {
		return nil, false, err
	}

	key, err := address.Bytes()
	if err != nil {
		return nil, false, err
	}

	value, found, err = c.methods.Storage(ctx, key, c.at)
	if err != nil {
		return nil, false, fmt.Errorf("fetching %s: %w", address, err)
	}
	return value, found, nil
}

// Fetch decodes the value at the address into target and returns false,
// leaving target untouched, when no value is stored.
func (c *Client) Fetch(ctx context.Context, address Address, target interface{}) (found bool, err error) {
	raw, found, err := c.FetchRaw(ctx, address)
	if err != nil || !found {
		return found, err
	}

	if err = types.Decode(raw, target); err != nil {
		return false, fmt.Errorf("decoding %s: %w", address, err)
	}
	return true, nil
}

// FetchOrDefault decodes the value at the address into target, or the
// metadata default when no value is stored. Entries with the Optional
// modifier have no default.
func (c *Client) FetchOrDefault(ctx context.Context, address Address, target interface{}) error {
	entry, err := c.completeEntry(address)
	if err != nil {
		return err
	}
	if entry.Modifier != metadata.Default {
		return fmt.Errorf("%w: %s", ErrNoDefault, address)
	}

	raw, found, err := c.FetchRaw(ctx, address)
	if err != nil {
		return err
	}
	if !found {
		raw = entry.Default
	}

	if err = types.Decode(raw, target); err != nil {
		return fmt.Errorf("decoding %s: %w", address, err)
	}
	return nil
}

// FetchValue decodes the value at the address dynamically. The metadata
// default is returned for absent values of entries with a default.
func (c *Client) FetchValue(ctx context.Context, address Address) (v value.Value, found bool, err error) {
	entry, err := c.completeEntry(address)
	if err != nil {
		return v, false, err
	}

	raw, found, err := c.FetchRaw(ctx, address)
	if err != nil {
		return v, false, err
	}
	if !found {
		if entry.Modifier != metadata.Default {
			return v, false, nil
		}
		raw = entry.Default
	}

	v, err = value.DecodeAll(c.metadata.Types, entry.ValueType, raw)
	if err != nil {
		return v, false, fmt.Errorf("decoding %s: %w", address, err)
	}
	return v, true, nil
}

// Iter iterates over the key value pairs under the address, which must
// leave at least one map key unset.
func (c *Client) Iter(ctx context.Context, address Address) (*KeyIter, error) {
	entry, err := c.Entry(address)
	if err != nil {
		return nil, err
	}
	if address.IsComplete() {
		return nil, fmt.Errorf("%w: %s takes %d keys and cannot be iterated with %d",
			ErrKeyCount, address, len(entry.Hashers), len(address.Keys))
	}

	prefix, err := address.Bytes()
	if err != nil {
		return nil, err
	}

	return &KeyIter{
		ctx:      ctx,
		methods:  c.methods,
		prefix:   prefix,
		at:       c.at,
		pageSize: c.pageSize,
		address:  address,
	}, nil
}

// DecodeKeyValues decodes dynamically the map keys of a raw storage key of
// the addressed entry. Keys hashed with a non recoverable hasher are
// returned as zero values.
func (c *Client) DecodeKeyValues(address Address, rawKey []byte) ([]value.Value, error) {
	entry, err := c.Entry(address)
	if err != nil {
		return nil, err
	}
	keyTypes, err := entry.KeyTypes(c.metadata.Types)
	if err != nil {
		return nil, err
	}

	rest, err := trimPrefix(address, rawKey)
	if err != nil {
		return nil, err
	}

	values := make([]value.Value, len(address.Hashers))
	for i, hasher := range address.Hashers {
		if len(rest) < hasher.HashLen() {
			return nil, fmt.Errorf("%w: key %d of %s", ErrKeyTooShort, i, address)
		}
		rest = rest[hasher.HashLen():]
		if !hasher.Recoverable() {
			continue
		}

		v, n, err := value.Decode(c.metadata.Types, keyTypes[i], rest)
		if err != nil {
			return nil, fmt.Errorf("decoding key %d of %s: %w", i, address, err)
		}
		values[i] = v
		rest = rest[n:]
	}
	return values, nil
}
