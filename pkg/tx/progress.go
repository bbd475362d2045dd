// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/events"
	"github.com/ChainSafe/gosubxt/pkg/rpc"
)

var (
	ErrDropped             = errors.New("transaction dropped from the pool")
	ErrInvalid             = errors.New("transaction invalid")
	ErrUsurped             = errors.New("transaction usurped")
	ErrFinalityTimeout     = errors.New("transaction finality timeout")
	ErrStreamEnded         = errors.New("transaction status stream ended")
	ErrExtrinsicNotInBlock = errors.New("extrinsic not found in block")
)

// statusError returns the error for a status after which the transaction
// will never be finalized.
func statusError(status rpc.ExtrinsicStatus) error {
	switch status.Kind {
	case rpc.StatusDropped:
		return ErrDropped
	case rpc.StatusInvalid:
		return ErrInvalid
	case rpc.StatusUsurped:
		return fmt.Errorf("%w by %s", ErrUsurped, status.Hash)
	case rpc.StatusFinalityTimeout:
		return fmt.Errorf("%w in block %s", ErrFinalityTimeout, status.Hash)
	default:
		return nil
	}
}

// Progress follows a submitted extrinsic through the transaction pool.
type Progress struct {
	client OnlineClient
	hash   common.Hash
	stream *rpc.Stream[rpc.ExtrinsicStatus]
	done   bool
}

// ExtrinsicHash returns the hash of the watched extrinsic.
func (p *Progress) ExtrinsicHash() common.Hash {
	return p.hash
}

// Next returns the next status. The subscription ends after a final
// status, after which Next returns ErrStreamEnded.
func (p *Progress) Next(ctx context.Context) (rpc.ExtrinsicStatus, error) {
	if p.done {
		return rpc.ExtrinsicStatus{}, ErrStreamEnded
	}

	status, err := p.stream.Next(ctx)
	if err != nil {
		if errors.Is(err, rpc.ErrClosed) {
			p.done = true
			return status, ErrStreamEnded
		}
		return status, err
	}

	logger.Debugf("extrinsic %s is %s", p.hash.Short(), status)
	if status.IsFinal() {
		p.done = true
		p.stream.Unsubscribe()
	}
	return status, nil
}

// Unsubscribe stops watching the extrinsic. It is only needed when
// abandoning the progress before a final status.
func (p *Progress) Unsubscribe() {
	if !p.done {
		p.done = true
		p.stream.Unsubscribe()
	}
}

func (p *Progress) waitFor(ctx context.Context, accept func(rpc.ExtrinsicStatus) bool) (*InBlock, error) {
	for {
		status, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if err := statusError(status); err != nil {
			return nil, err
		}
		if accept(status) {
			return &InBlock{client: p.client, BlockHash: status.Hash, ExtrinsicHash: p.hash}, nil
		}
	}
}

// WaitForInBlock waits until the extrinsic is included in a block, or
// finalized, without checking that it succeeded.
func (p *Progress) WaitForInBlock(ctx context.Context) (*InBlock, error) {
	return p.waitFor(ctx, func(status rpc.ExtrinsicStatus) bool {
		return status.Kind == rpc.StatusInBlock || status.Kind == rpc.StatusFinalized
	})
}

// WaitForFinalized waits until the block including the extrinsic is
// finalized, without checking that it succeeded.
func (p *Progress) WaitForFinalized(ctx context.Context) (*InBlock, error) {
	return p.waitFor(ctx, func(status rpc.ExtrinsicStatus) bool {
		return status.Kind == rpc.StatusFinalized
	})
}

// WaitForFinalizedSuccess waits for finalization and returns the events of
// the extrinsic, or a *events.DispatchError if it failed.
func (p *Progress) WaitForFinalizedSuccess(ctx context.Context) (*events.Events, error) {
	block, err := p.WaitForFinalized(ctx)
	if err != nil {
		return nil, err
	}
	return block.WaitForSuccess(ctx)
}

// InBlock is an extrinsic included in a block.
type InBlock struct {
	client        OnlineClient
	BlockHash     common.Hash
	ExtrinsicHash common.Hash
}

// ExtrinsicIndex returns the index of the extrinsic in the block.
func (b *InBlock) ExtrinsicIndex(ctx context.Context) (uint32, error) {
	block, err := b.client.Methods().Block(ctx, &b.BlockHash)
	if err != nil {
		return 0, fmt.Errorf("fetching block %s: %w", b.BlockHash.Short(), err)
	}

	for i, extrinsic := range block.Block.Extrinsics {
		if common.Blake2bHash(extrinsic) == b.ExtrinsicHash {
			return uint32(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s in %s", ErrExtrinsicNotInBlock, b.ExtrinsicHash.Short(), b.BlockHash.Short())
}

// FetchEvents returns the events emitted by the extrinsic.
func (b *InBlock) FetchEvents(ctx context.Context) (*events.Events, error) {
	index, err := b.ExtrinsicIndex(ctx)
	if err != nil {
		return nil, err
	}

	blockEvents, err := b.client.Events().At(ctx, b.BlockHash)
	if err != nil {
		return nil, err
	}
	return blockEvents.ForExtrinsic(index), nil
}

// WaitForSuccess returns the events emitted by the extrinsic, or the
// *events.DispatchError of System.ExtrinsicFailed.
func (b *InBlock) WaitForSuccess(ctx context.Context) (*events.Events, error) {
	extrinsicEvents, err := b.FetchEvents(ctx)
	if err != nil {
		return nil, err
	}
	if err := extrinsicEvents.DispatchResult(); err != nil {
		return nil, err
	}
	return extrinsicEvents, nil
}
