// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gosubxt/internal/log"
	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/storage"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "events"))

// Address is the storage address of System.Events.
var Address = storage.NewAddress("System", "Events", nil)

// Client fetches the events of blocks.
type Client struct {
	metadata *metadata.Metadata
	storage  *storage.Client
}

// NewClient returns an events client reading storage with the client.
func NewClient(md *metadata.Metadata, storageClient *storage.Client) *Client {
	return &Client{metadata: md, storage: storageClient}
}

// At returns the events of the given block.
func (c *Client) At(ctx context.Context, blockHash common.Hash) (*Events, error) {
	raw, found, err := c.storage.At(blockHash).FetchRaw(ctx, Address)
	if err != nil {
		return nil, fmt.Errorf("fetching events of block %s: %w", blockHash.Short(), err)
	}
	if !found {
		return &Events{metadata: c.metadata}, nil
	}

	events, err := Decode(c.metadata, raw)
	if err != nil {
		return nil, fmt.Errorf("decoding events of block %s: %w", blockHash.Short(), err)
	}
	logger.Tracef("decoded %d events of block %s", events.Len(), blockHash.Short())
	return events, nil
}
