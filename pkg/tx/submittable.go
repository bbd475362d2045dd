// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/types"
)

const (
	signedBit       = 0x80
	extrinsicFormat = 4
)

// Submittable is a call ready to be signed and submitted.
type Submittable struct {
	client Client
	call   Call
}

// NewSubmittable returns a submittable extrinsic for the call.
func NewSubmittable(client Client, call Call) *Submittable {
	return &Submittable{client: client, call: call}
}

// Call returns the wrapped call.
func (s *Submittable) Call() Call {
	return s.call
}

// EncodedCall returns the encoded call with its pallet and call indices.
func (s *Submittable) EncodedCall() ([]byte, error) {
	return EncodeCall(s.client.Metadata(), s.call)
}

// Unsigned returns the encoded unsigned extrinsic.
func (s *Submittable) Unsigned() ([]byte, error) {
	call, err := s.EncodedCall()
	if err != nil {
		return nil, err
	}
	return withLength(common.Concat([]byte{extrinsicFormat}, call)), nil
}

func withLength(body []byte) []byte {
	return common.Concat(compact(big.NewInt(int64(len(body)))), body)
}

// CreateSigned encodes and signs the extrinsic. Online lookups happen only
// for the nonce and checkpoint left unset in params.
func (s *Submittable) CreateSigned(ctx context.Context, signer Signer, params Params) (*SignedExtrinsic, error) {
	md := s.client.Metadata()
	call, err := EncodeCall(md, s.call)
	if err != nil {
		return nil, err
	}

	nonce, err := s.nonce(ctx, signer, params)
	if err != nil {
		return nil, err
	}

	era, checkpoint, err := s.era(ctx, params)
	if err != nil {
		return nil, err
	}

	version := s.client.RuntimeVersion()
	signed, err := buildExtra(md, extensionInputs{
		specVersion: version.SpecVersion,
		txVersion:   version.TransactionVersion,
		genesisHash: s.client.GenesisHash(),
		era:         era,
		checkpoint:  checkpoint,
		nonce:       nonce,
		tip:         params.Tip,
	})
	if err != nil {
		return nil, err
	}

	signature, err := signer.Sign(signerPayload(call, signed))
	if err != nil {
		return nil, fmt.Errorf("signing %s.%s: %w", s.call.PalletName(), s.call.CallName(), err)
	}

	body := common.Concat(
		[]byte{signedBit | extrinsicFormat},
		signer.Address(),
		signature,
		signed.extra,
		call,
	)
	logger.Debugf("signed %s.%s with nonce %d and %s era", s.call.PalletName(), s.call.CallName(), nonce, era)

	return &SignedExtrinsic{client: s.client, encoded: withLength(body)}, nil
}

func (s *Submittable) nonce(ctx context.Context, signer Signer, params Params) (uint64, error) {
	if params.Nonce != nil {
		return *params.Nonce, nil
	}

	onlineClient, err := online(s.client)
	if err != nil {
		return 0, fmt.Errorf("fetching nonce: %w", err)
	}
	address := signer.AccountID().ToSS58(types.GenericSS58Prefix)
	nonce, err := onlineClient.Methods().AccountNextIndex(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("fetching nonce of %s: %w", address, err)
	}
	return nonce, nil
}

func (s *Submittable) era(ctx context.Context, params Params) (Era, common.Hash, error) {
	if params.Immortal {
		return ImmortalEra(), s.client.GenesisHash(), nil
	}

	period := params.Mortality
	if period == 0 {
		period = DefaultMortality
	}

	checkpoint := params.Checkpoint
	if checkpoint == nil {
		onlineClient, err := online(s.client)
		if err != nil {
			return Era{}, common.Hash{}, fmt.Errorf("fetching checkpoint: %w", err)
		}
		methods := onlineClient.Methods()
		hash, err := methods.FinalizedHead(ctx)
		if err != nil {
			return Era{}, common.Hash{}, fmt.Errorf("fetching finalized head: %w", err)
		}
		header, err := methods.Header(ctx, &hash)
		if err != nil {
			return Era{}, common.Hash{}, fmt.Errorf("fetching header of %s: %w", hash.Short(), err)
		}
		checkpoint = &Checkpoint{Number: uint64(header.Number), Hash: hash}
	}

	return MortalEra(checkpoint.Number, period), checkpoint.Hash, nil
}

// SignAndSubmit signs the extrinsic and submits it, returning its hash.
func (s *Submittable) SignAndSubmit(ctx context.Context, signer Signer, params Params) (common.Hash, error) {
	extrinsic, err := s.CreateSigned(ctx, signer, params)
	if err != nil {
		return common.Hash{}, err
	}
	return extrinsic.Submit(ctx)
}

// SignAndSubmitThenWatch signs the extrinsic, submits it and watches its
// progress through the transaction pool.
func (s *Submittable) SignAndSubmitThenWatch(ctx context.Context, signer Signer, params Params) (*Progress, error) {
	extrinsic, err := s.CreateSigned(ctx, signer, params)
	if err != nil {
		return nil, err
	}
	return extrinsic.SubmitAndWatch(ctx)
}

// SignedExtrinsic is an encoded signed extrinsic.
type SignedExtrinsic struct {
	client  Client
	encoded []byte
}

// Encoded returns the SCALE encoded extrinsic, length prefix included.
func (e *SignedExtrinsic) Encoded() []byte {
	return e.encoded
}

// Hash returns the blake2b-256 hash of the encoded extrinsic.
func (e *SignedExtrinsic) Hash() common.Hash {
	return common.Blake2bHash(e.encoded)
}

// Submit submits the extrinsic and returns its hash.
func (e *SignedExtrinsic) Submit(ctx context.Context) (common.Hash, error) {
	onlineClient, err := online(e.client)
	if err != nil {
		return common.Hash{}, err
	}
	hash, err := onlineClient.Methods().SubmitExtrinsic(ctx, e.encoded)
	if err != nil {
		return common.Hash{}, fmt.Errorf("submitting extrinsic: %w", err)
	}
	return hash, nil
}

// SubmitAndWatch submits the extrinsic and watches its progress.
func (e *SignedExtrinsic) SubmitAndWatch(ctx context.Context) (*Progress, error) {
	onlineClient, err := online(e.client)
	if err != nil {
		return nil, err
	}
	stream, err := onlineClient.Methods().SubmitAndWatchExtrinsic(ctx, e.encoded)
	if err != nil {
		return nil, fmt.Errorf("submitting extrinsic: %w", err)
	}
	return &Progress{client: onlineClient, hash: e.Hash(), stream: stream}, nil
}
