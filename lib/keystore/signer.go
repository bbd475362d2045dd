// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package keystore provides transaction signers over sr25519 keys.
package keystore

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gosubxt/lib/crypto/sr25519"
	"github.com/ChainSafe/gosubxt/pkg/tx"
	"github.com/ChainSafe/gosubxt/pkg/types"
)

var ErrUnknownAccount = errors.New("unknown development account")

const (
	// multiAddressID is the MultiAddress::Id variant index.
	multiAddressID = 0
	// multiSignatureSr25519 is the MultiSignature::Sr25519 variant index.
	multiSignatureSr25519 = 1
)

// Signer signs transactions with an sr25519 key, addressing the account
// by its id.
type Signer struct {
	keypair *sr25519.Keypair
}

var _ tx.Signer = (*Signer)(nil)

// NewSigner returns a signer for the keypair.
func NewSigner(keypair *sr25519.Keypair) *Signer {
	return &Signer{keypair: keypair}
}

// NewSignerFromURI returns a signer for a secret uri, such as `//Alice`.
func NewSignerFromURI(uri string) (*Signer, error) {
	kp, err := sr25519.NewKeypairFromURI(uri)
	if err != nil {
		return nil, fmt.Errorf("cannot create signer: %w", err)
	}
	return NewSigner(kp), nil
}

// Keypair returns the underlying keypair.
func (s *Signer) Keypair() *sr25519.Keypair {
	return s.keypair
}

// AccountID implements tx.Signer.
func (s *Signer) AccountID() types.AccountID32 {
	return types.AccountID32(s.keypair.Public())
}

// Address returns the MultiAddress::Id encoding of the account.
func (s *Signer) Address() []byte {
	public := s.keypair.Public()
	return append([]byte{multiAddressID}, public[:]...)
}

// Sign returns the MultiSignature::Sr25519 encoding of the payload signature.
func (s *Signer) Sign(payload []byte) ([]byte, error) {
	signature, err := s.keypair.Sign(payload)
	if err != nil {
		return nil, err
	}
	return append([]byte{multiSignatureSr25519}, signature...), nil
}

// Verify checks a MultiSignature::Sr25519 encoded signature of the payload.
func (s *Signer) Verify(payload, signature []byte) (bool, error) {
	if len(signature) != 1+sr25519.SignatureLength || signature[0] != multiSignatureSr25519 {
		return false, fmt.Errorf("%w: expected a sr25519 multi signature", sr25519.ErrInvalidSignatureLength)
	}
	return s.keypair.Public().Verify(payload, signature[1:])
}

func (s *Signer) String() string {
	return s.AccountID().ToSS58(types.GenericSS58Prefix)
}
