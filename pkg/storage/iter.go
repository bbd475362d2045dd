// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/types"
)

// KeyIter pages through the keys under a storage prefix and fetches their
// values. Use it like bufio.Scanner:
//
//	for it.Next() {
//		key, value := it.Key(), it.ValueBytes()
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type KeyIter struct {
	ctx      context.Context
	methods  Methods
	prefix   []byte
	at       *common.Hash
	pageSize uint32
	address  Address

	keys     [][]byte
	values   map[string][]byte
	position int
	startKey []byte
	drained  bool

	key   []byte
	value []byte
	err   error
}

// Address returns the address iterated over.
func (it *KeyIter) Address() Address {
	return it.address
}

// Next advances to the next key value pair and returns false when the
// iteration is over or failed.
func (it *KeyIter) Next() bool {
	if it.err != nil {
		return false
	}

	for {
		for it.position < len(it.keys) {
			key := it.keys[it.position]
			it.position++

			value, ok := it.values[string(key)]
			if !ok {
				// removed between the keys and values queries
				continue
			}
			it.key, it.value = key, value
			return true
		}

		if it.drained {
			return false
		}
		if err := it.fetchPage(); err != nil {
			it.err = err
			return false
		}
	}
}

func (it *KeyIter) fetchPage() error {
	keys, err := it.methods.StorageKeysPaged(it.ctx, it.prefix, it.pageSize, it.startKey, it.at)
	if err != nil {
		return fmt.Errorf("fetching keys of %s: %w", it.address, err)
	}
	logger.Tracef("fetched %d keys of %s", len(keys), it.address)

	it.keys, it.position = keys, 0
	it.values = make(map[string][]byte, len(keys))
	if uint32(len(keys)) < it.pageSize {
		it.drained = true
	}
	if len(keys) == 0 {
		return nil
	}
	it.startKey = keys[len(keys)-1]

	changeSets, err := it.methods.QueryStorageAt(it.ctx, keys, it.at)
	if err != nil {
		return fmt.Errorf("fetching values of %s: %w", it.address, err)
	}
	for _, changeSet := range changeSets {
		for _, change := range changeSet.Changes {
			if change.Value != nil {
				it.values[string(change.Key)] = *change.Value
			}
		}
	}
	return nil
}

// Key returns the full storage key of the current pair.
func (it *KeyIter) Key() []byte {
	return it.key
}

// ValueBytes returns the SCALE encoded value of the current pair.
func (it *KeyIter) ValueBytes() []byte {
	return it.value
}

// DecodeKey recovers the map keys of the current pair into targets.
func (it *KeyIter) DecodeKey(targets ...interface{}) error {
	return DecodeKey(it.address, it.key, targets...)
}

// Err returns the error that stopped the iteration, if any.
func (it *KeyIter) Err() error {
	return it.err
}

// Iterator decodes the values of a KeyIter into T.
type Iterator[T any] struct {
	*KeyIter
	value T
}

// NewIterator wraps the key iterator.
func NewIterator[T any](keys *KeyIter) *Iterator[T] {
	return &Iterator[T]{KeyIter: keys}
}

// Iterate starts iterating over the address and decodes values into T.
func Iterate[T any](ctx context.Context, fetcher Fetcher, address Address) (*Iterator[T], error) {
	keys, err := fetcher.Iter(ctx, address)
	if err != nil {
		return nil, err
	}
	return NewIterator[T](keys), nil
}

// Next advances to the next pair and decodes its value.
func (it *Iterator[T]) Next() bool {
	if !it.KeyIter.Next() {
		return false
	}

	var value T
	if err := types.Decode(it.ValueBytes(), &value); err != nil {
		it.KeyIter.err = fmt.Errorf("decoding value of %s: %w", it.address, err)
		return false
	}
	it.value = value
	return true
}

// Value returns the decoded value of the current pair.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Collect drains the iterator into a map keyed by the hex storage key.
func (it *Iterator[T]) Collect() (map[string]T, error) {
	values := make(map[string]T)
	for it.Next() {
		values[common.BytesToHex(it.Key())] = it.Value()
	}
	return values, it.Err()
}
