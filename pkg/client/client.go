// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package client ties the rpc, storage, constants, events and tx packages
// together over a single runtime.
package client

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ChainSafe/gosubxt/internal/log"
	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/constants"
	"github.com/ChainSafe/gosubxt/pkg/events"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/rpc"
	"github.com/ChainSafe/gosubxt/pkg/storage"
	"github.com/ChainSafe/gosubxt/pkg/tx"
	"golang.org/x/sync/errgroup"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "client"))

var (
	_ tx.OnlineClient = (*OnlineClient)(nil)
	_ tx.Client       = (*OfflineClient)(nil)
)

// runtimeState is the metadata and version of the runtime the client talks to.
type runtimeState struct {
	metadata *metadata.Metadata
	version  rpc.RuntimeVersion
}

// OnlineClient is a client connected to a node.
type OnlineClient struct {
	rpcClient   rpc.Client
	methods     *rpc.Methods
	genesisHash common.Hash
	pageSize    uint32
	runtime     atomic.Pointer[runtimeState]
}

// Connect dials the node and bootstraps a client from it.
func Connect(ctx context.Context, config Config) (*OnlineClient, error) {
	url := config.URL
	if url == "" {
		url = DefaultURL
	}

	rpcClient, err := rpc.Connect(ctx, url, config.rpcOptions()...)
	if err != nil {
		return nil, err
	}

	c, err := NewOnlineClient(ctx, rpcClient, config.PageSize)
	if err != nil {
		rpcClient.Close()
		return nil, err
	}
	return c, nil
}

// NewOnlineClient fetches the genesis hash, runtime version and metadata
// concurrently over the rpc client.
func NewOnlineClient(ctx context.Context, rpcClient rpc.Client, pageSize uint32) (*OnlineClient, error) {
	methods := rpc.NewMethods(rpcClient)

	var (
		genesisHash common.Hash
		version     rpc.RuntimeVersion
		md          *metadata.Metadata
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		genesisHash, err = methods.GenesisHash(gctx)
		if err != nil {
			return fmt.Errorf("fetching genesis hash: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		version, err = methods.RuntimeVersion(gctx, nil)
		if err != nil {
			return fmt.Errorf("fetching runtime version: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		md, err = fetchMetadata(gctx, methods)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &OnlineClient{
		rpcClient:   rpcClient,
		methods:     methods,
		genesisHash: genesisHash,
		pageSize:    pageSize,
	}
	c.runtime.Store(&runtimeState{metadata: md, version: version})

	logger.Infof("connected to %s runtime spec version %d, genesis %s",
		version.SpecName, version.SpecVersion, genesisHash.Short())
	return c, nil
}

func fetchMetadata(ctx context.Context, methods *rpc.Methods) (*metadata.Metadata, error) {
	raw, err := methods.Metadata(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}
	md, err := metadata.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}
	return md, nil
}

// Metadata returns the metadata of the current runtime.
func (c *OnlineClient) Metadata() *metadata.Metadata {
	return c.runtime.Load().metadata
}

// RuntimeVersion returns the version of the current runtime.
func (c *OnlineClient) RuntimeVersion() rpc.RuntimeVersion {
	return c.runtime.Load().version
}

// GenesisHash returns the hash of the genesis block.
func (c *OnlineClient) GenesisHash() common.Hash {
	return c.genesisHash
}

// Methods returns the legacy rpc methods.
func (c *OnlineClient) Methods() *rpc.Methods {
	return c.methods
}

// Storage returns a storage client for the current runtime, reading at the
// best block.
func (c *OnlineClient) Storage() *storage.Client {
	return storage.NewClient(c.Metadata(), c.methods, c.pageSize)
}

// Constants returns a constants client for the current runtime.
func (c *OnlineClient) Constants() *constants.Client {
	return constants.NewClient(c.Metadata())
}

// Events returns an events client for the current runtime.
func (c *OnlineClient) Events() *events.Client {
	return events.NewClient(c.Metadata(), c.Storage())
}

// Tx returns the transaction API.
func (c *OnlineClient) Tx() tx.TransactionAPI {
	return tx.NewTransactionAPI(c)
}

// Updater returns an updater following runtime upgrades for the client.
func (c *OnlineClient) Updater() *Updater {
	return &Updater{client: c}
}

// Offline returns an offline client over the current runtime.
func (c *OnlineClient) Offline() *OfflineClient {
	current := c.runtime.Load()
	return NewOfflineClient(current.metadata, c.genesisHash, current.version)
}

// Close closes the connection.
func (c *OnlineClient) Close() {
	c.rpcClient.Close()
}

func (c *OnlineClient) setRuntime(md *metadata.Metadata, version rpc.RuntimeVersion) {
	c.runtime.Store(&runtimeState{metadata: md, version: version})
}

// OfflineClient encodes and signs extrinsics and reads constants without a
// node connection.
type OfflineClient struct {
	metadata    *metadata.Metadata
	genesisHash common.Hash
	version     rpc.RuntimeVersion
}

// NewOfflineClient returns a client over the given runtime.
func NewOfflineClient(md *metadata.Metadata, genesisHash common.Hash, version rpc.RuntimeVersion) *OfflineClient {
	return &OfflineClient{metadata: md, genesisHash: genesisHash, version: version}
}

// Metadata returns the runtime metadata.
func (c *OfflineClient) Metadata() *metadata.Metadata {
	return c.metadata
}

// GenesisHash returns the hash of the genesis block.
func (c *OfflineClient) GenesisHash() common.Hash {
	return c.genesisHash
}

// RuntimeVersion returns the runtime version.
func (c *OfflineClient) RuntimeVersion() rpc.RuntimeVersion {
	return c.version
}

// Constants returns a constants client for the runtime.
func (c *OfflineClient) Constants() *constants.Client {
	return constants.NewClient(c.metadata)
}

// Tx returns the transaction API. Only offline operations succeed, the
// others return tx.ErrOffline.
func (c *OfflineClient) Tx() tx.TransactionAPI {
	return tx.NewTransactionAPI(c)
}
