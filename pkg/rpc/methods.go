// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"errors"

	"github.com/ChainSafe/gosubxt/lib/common"
)

// ErrBlockNotFound is returned when the node does not know the block.
var ErrBlockNotFound = errors.New("block not found")

// Methods wraps the legacy JSON-RPC methods of a substrate node.
type Methods struct {
	client Client
}

// NewMethods returns the legacy methods over the client.
func NewMethods(client Client) *Methods {
	return &Methods{client: client}
}

// Client returns the underlying client.
func (m *Methods) Client() Client {
	return m.client
}

func withAt(args []interface{}, at *common.Hash) []interface{} {
	if at != nil {
		return append(args, at.String())
	}
	return args
}

// Metadata returns the SCALE encoded metadata at the given block, or at
// the best block when at is nil.
func (m *Methods) Metadata(ctx context.Context, at *common.Hash) ([]byte, error) {
	var result HexBytes
	err := m.client.Call(ctx, &result, "state_getMetadata", withAt(nil, at)...)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RuntimeVersion returns the runtime version at the given block.
func (m *Methods) RuntimeVersion(ctx context.Context, at *common.Hash) (version RuntimeVersion, err error) {
	err = m.client.Call(ctx, &version, "state_getRuntimeVersion", withAt(nil, at)...)
	return version, err
}

// Storage returns the value at key, and false if the key is absent.
func (m *Methods) Storage(ctx context.Context, key []byte, at *common.Hash) (value []byte, found bool, err error) {
	var result *HexBytes
	err = m.client.Call(ctx, &result, "state_getStorage", withAt([]interface{}{common.BytesToHex(key)}, at)...)
	if err != nil {
		return nil, false, err
	}
	if result == nil {
		return nil, false, nil
	}
	return *result, true, nil
}

// StorageKeysPaged returns up to count keys starting with prefix, strictly
// after startKey when it is not empty.
func (m *Methods) StorageKeysPaged(ctx context.Context, prefix []byte, count uint32,
	startKey []byte, at *common.Hash) ([][]byte, error) {
	args := []interface{}{common.BytesToHex(prefix), count}
	if len(startKey) > 0 || at != nil {
		var start interface{}
		if len(startKey) > 0 {
			start = common.BytesToHex(startKey)
		}
		args = append(args, start)
	}

	var result []HexBytes
	err := m.client.Call(ctx, &result, "state_getKeysPaged", withAt(args, at)...)
	if err != nil {
		return nil, err
	}

	keys := make([][]byte, len(result))
	for i, key := range result {
		keys[i] = key
	}
	return keys, nil
}

// QueryStorageAt returns the values of the keys at the given block.
func (m *Methods) QueryStorageAt(ctx context.Context, keys [][]byte, at *common.Hash) ([]StorageChangeSet, error) {
	hexKeys := make([]string, len(keys))
	for i, key := range keys {
		hexKeys[i] = common.BytesToHex(key)
	}

	var result []StorageChangeSet
	err := m.client.Call(ctx, &result, "state_queryStorageAt", withAt([]interface{}{hexKeys}, at)...)
	return result, err
}

// BlockHash returns the hash of the block with the given number, or of
// the best block when number is nil.
func (m *Methods) BlockHash(ctx context.Context, number *uint32) (hash common.Hash, err error) {
	var args []interface{}
	if number != nil {
		args = append(args, *number)
	}
	var result *common.Hash
	err = m.client.Call(ctx, &result, "chain_getBlockHash", args...)
	if err != nil {
		return hash, err
	}
	if result == nil {
		return hash, ErrBlockNotFound
	}
	return *result, nil
}

// GenesisHash returns the hash of block 0.
func (m *Methods) GenesisHash(ctx context.Context) (common.Hash, error) {
	var genesis uint32
	return m.BlockHash(ctx, &genesis)
}

// Header returns the header of the given block, or of the best block
// when hash is nil.
func (m *Methods) Header(ctx context.Context, hash *common.Hash) (*Header, error) {
	var header Header
	err := m.client.Call(ctx, &header, "chain_getHeader", withAt(nil, hash)...)
	if err != nil {
		return nil, err
	}
	return &header, nil
}

// Block returns the given block, or the best block when hash is nil.
func (m *Methods) Block(ctx context.Context, hash *common.Hash) (*SignedBlock, error) {
	var block SignedBlock
	err := m.client.Call(ctx, &block, "chain_getBlock", withAt(nil, hash)...)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// FinalizedHead returns the hash of the last finalized block.
func (m *Methods) FinalizedHead(ctx context.Context) (hash common.Hash, err error) {
	err = m.client.Call(ctx, &hash, "chain_getFinalizedHead")
	return hash, err
}

// AccountNextIndex returns the next nonce of the account, pending
// transactions included.
func (m *Methods) AccountNextIndex(ctx context.Context, ss58Address string) (nonce uint64, err error) {
	err = m.client.Call(ctx, &nonce, "system_accountNextIndex", ss58Address)
	return nonce, err
}

// Chain returns the chain name.
func (m *Methods) Chain(ctx context.Context) (name string, err error) {
	err = m.client.Call(ctx, &name, "system_chain")
	return name, err
}

// SubmitExtrinsic submits a SCALE encoded extrinsic and returns its hash.
func (m *Methods) SubmitExtrinsic(ctx context.Context, extrinsic []byte) (hash common.Hash, err error) {
	err = m.client.Call(ctx, &hash, "author_submitExtrinsic", common.BytesToHex(extrinsic))
	return hash, err
}

// SubmitAndWatchExtrinsic submits a SCALE encoded extrinsic and streams its
// transaction pool status.
func (m *Methods) SubmitAndWatchExtrinsic(ctx context.Context, extrinsic []byte) (*Stream[ExtrinsicStatus], error) {
	return subscribe[ExtrinsicStatus](ctx, m.client,
		"author", "submitAndWatchExtrinsic", "unwatchExtrinsic", "extrinsicUpdate",
		common.BytesToHex(extrinsic))
}

// SubscribeRuntimeVersion streams the runtime version, starting with the
// current one.
func (m *Methods) SubscribeRuntimeVersion(ctx context.Context) (*Stream[RuntimeVersion], error) {
	return subscribe[RuntimeVersion](ctx, m.client,
		"state", "subscribeRuntimeVersion", "unsubscribeRuntimeVersion", "runtimeVersion")
}

// SubscribeFinalizedHeads streams the finalized block headers.
func (m *Methods) SubscribeFinalizedHeads(ctx context.Context) (*Stream[Header], error) {
	return subscribe[Header](ctx, m.client,
		"chain", "subscribeFinalizedHeads", "unsubscribeFinalizedHeads", "finalizedHead")
}
