// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"math/big"

	"github.com/ChainSafe/gosubxt/lib/common"
)

// DefaultMortality is the number of blocks a transaction stays valid for
// when no mortality is given.
const DefaultMortality uint64 = 64

// Checkpoint is the block a mortal era starts at.
type Checkpoint struct {
	Number uint64
	Hash   common.Hash
}

// Params are the caller supplied transaction parameters. The zero value
// fetches the nonce from the node and makes the transaction valid for
// DefaultMortality blocks from the finalized head, with no tip.
type Params struct {
	// Nonce is fetched with system_accountNextIndex when nil.
	Nonce *uint64
	// Tip paid to the block author, nil for none.
	Tip *big.Int
	// Immortal makes the transaction valid forever.
	Immortal bool
	// Mortality is the era period in blocks, DefaultMortality when zero.
	Mortality uint64
	// Checkpoint is fetched from the finalized head when nil.
	Checkpoint *Checkpoint
}

// WithNonce returns a copy of the params with the nonce set.
func (p Params) WithNonce(nonce uint64) Params {
	p.Nonce = &nonce
	return p
}

// WithTip returns a copy of the params with the tip set.
func (p Params) WithTip(tip uint64) Params {
	p.Tip = new(big.Int).SetUint64(tip)
	return p
}

// WithImmortal returns a copy of the params for an immortal transaction.
func (p Params) WithImmortal() Params {
	p.Immortal = true
	return p
}

// WithMortality returns a copy of the params valid for period blocks from
// the checkpoint, or from the finalized head when checkpoint is nil.
func (p Params) WithMortality(period uint64, checkpoint *Checkpoint) Params {
	p.Immortal = false
	p.Mortality = period
	p.Checkpoint = checkpoint
	return p
}
