// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package sr25519 implements the schnorrkel keys substrate accounts sign with.
package sr25519

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ChainSafe/gosubxt/lib/common"
	bip39 "github.com/cosmos/go-bip39"
	"github.com/gtank/merlin"
)

const (
	// PublicKeyLength is the length of a public key in bytes.
	PublicKeyLength = 32
	// SeedLength is the length of a mini secret key seed in bytes.
	SeedLength = 32
	// SignatureLength is the length of a signature in bytes.
	SignatureLength = 64
)

// SigningContext is the signing context substrate uses for transactions.
var SigningContext = []byte("substrate")

var (
	ErrInvalidSeedLength      = errors.New("seed is not 32 bytes long")
	ErrInvalidSignatureLength = errors.New("signature is not 64 bytes long")
	ErrInvalidPhrase          = errors.New("invalid mnemonic phrase")
)

// PublicKey is an sr25519 public key.
type PublicKey [PublicKeyLength]byte

// Hex returns the 0x prefixed hex public key.
func (p PublicKey) Hex() string {
	return common.BytesToHex(p[:])
}

// Verify returns true if sig is a valid signature of msg by the key.
func (p PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, fmt.Errorf("%w: %d bytes", ErrInvalidSignatureLength, len(sig))
	}

	key := new(schnorrkel.PublicKey)
	if err := key.Decode(p); err != nil {
		return false, fmt.Errorf("decoding public key: %w", err)
	}

	var b [SignatureLength]byte
	copy(b[:], sig)
	signature := new(schnorrkel.Signature)
	if err := signature.Decode(b); err != nil {
		return false, fmt.Errorf("decoding signature: %w", err)
	}

	return key.Verify(signature, signingTranscript(msg))
}

// signingTranscript binds msg to the substrate signing context.
func signingTranscript(msg []byte) *merlin.Transcript {
	return schnorrkel.NewSigningContext(SigningContext, msg)
}

// Keypair is an sr25519 secret key with its public key.
type Keypair struct {
	public PublicKey
	secret *schnorrkel.SecretKey
}

func newKeypair(secret *schnorrkel.SecretKey) (*Keypair, error) {
	public, err := secret.Public()
	if err != nil {
		return nil, fmt.Errorf("deriving public key: %w", err)
	}
	return &Keypair{public: public.Encode(), secret: secret}, nil
}

// NewKeypairFromSeed returns the keypair of a 32 byte mini secret key.
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot generate key from seed: %w", ErrInvalidSeedLength)
	}

	var raw [SeedLength]byte
	copy(raw[:], seed)
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot generate key from seed: %w", err)
	}
	return newKeypair(mini.ExpandEd25519())
}

// NewKeypairFromMnemonic returns the keypair of a BIP39 phrase, with an
// optional password.
func NewKeypairFromMnemonic(phrase, password string) (*Keypair, error) {
	if !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidPhrase
	}

	seed, err := schnorrkel.SeedFromMnemonic(phrase, password)
	if err != nil {
		return nil, fmt.Errorf("cannot generate seed from mnemonic: %w", err)
	}
	return NewKeypairFromSeed(seed[:SeedLength])
}

// GenerateMnemonic returns a random 12 word BIP39 phrase.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// Public returns the public key.
func (kp *Keypair) Public() PublicKey {
	return kp.public
}

// Sign signs msg in the substrate signing context.
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	signature, err := kp.secret.Sign(signingTranscript(msg))
	if err != nil {
		return nil, err
	}
	encoded := signature.Encode()
	return encoded[:], nil
}

// Derive returns the keypair at the junctions below the key.
func (kp *Keypair) Derive(junctions []Junction) (*Keypair, error) {
	secret := kp.secret
	for _, junction := range junctions {
		if junction.Hard {
			mini, _, err := secret.HardDeriveMiniSecretKey([]byte{}, junction.ChainCode)
			if err != nil {
				return nil, fmt.Errorf("hard deriving %s: %w", junction, err)
			}
			secret = mini.ExpandEd25519()
			continue
		}

		extended, err := schnorrkel.DeriveKeySimple(secret, []byte{}, junction.ChainCode)
		if err != nil {
			return nil, fmt.Errorf("soft deriving %s: %w", junction, err)
		}
		secret, err = extended.Secret()
		if err != nil {
			return nil, fmt.Errorf("soft deriving %s: %w", junction, err)
		}
	}
	return newKeypair(secret)
}
