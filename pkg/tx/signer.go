// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/types"
)

//go:generate mockgen -destination=mock_signer_test.go -package $GOPACKAGE . Signer

// maxUnhashedPayload is the payload size above which the blake2b-256 hash
// of the payload is signed instead.
const maxUnhashedPayload = 256

// Signer signs extrinsics.
type Signer interface {
	// AccountID returns the account the nonce is fetched for.
	AccountID() types.AccountID32
	// Address returns the SCALE encoded address of the signer, usually a
	// MultiAddress.
	Address() []byte
	// Sign returns the SCALE encoded signature of the payload, usually a
	// MultiSignature.
	Sign(payload []byte) ([]byte, error)
}

// signerPayload returns the bytes signed over.
func signerPayload(call []byte, signed signedExtra) []byte {
	payload := common.Concat(call, signed.extra, signed.additional)
	if len(payload) > maxUnhashedPayload {
		return common.Blake2bHash(payload).ToBytes()
	}
	return payload
}
