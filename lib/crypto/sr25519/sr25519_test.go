// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"crypto/rand"
	"testing"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generated with `subkey inspect //Alice`
const (
	aliceSeed   = "0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a"
	alicePublic = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
)

func TestNewKeypairFromSeed(t *testing.T) {
	kp, err := NewKeypairFromSeed(common.MustHexToBytes(aliceSeed))
	require.NoError(t, err)
	require.Equal(t, alicePublic, kp.Public().Hex())

	seed := make([]byte, 20)
	_, err = rand.Read(seed)
	require.NoError(t, err)
	kp, err = NewKeypairFromSeed(seed)
	require.Nil(t, kp)
	require.ErrorIs(t, err, ErrInvalidSeedLength)
}

func TestSignAndVerify(t *testing.T) {
	kp, err := NewKeypairFromSeed(common.MustHexToBytes(aliceSeed))
	require.NoError(t, err)

	msg := []byte("helloworld")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)

	ok, err := kp.Public().Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = kp.Public().Verify([]byte("hello world"), sig)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = kp.Public().Verify(msg, sig[:10])
	require.ErrorIs(t, err, ErrInvalidSignatureLength)
}

func TestNewKeypairFromMnemonic(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	require.NoError(t, err)

	kp, err := NewKeypairFromMnemonic(mnemonic, "")
	require.NoError(t, err)
	same, err := NewKeypairFromMnemonic(mnemonic, "")
	require.NoError(t, err)
	assert.Equal(t, kp.Public(), same.Public())

	withPassword, err := NewKeypairFromMnemonic(mnemonic, "password")
	require.NoError(t, err)
	assert.NotEqual(t, kp.Public(), withPassword.Public())

	_, err = NewKeypairFromMnemonic("not a mnemonic", "")
	require.ErrorIs(t, err, ErrInvalidPhrase)
}

func TestNewJunction(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		element   string
		chainCode []byte
	}{
		"number": {
			element:   "1",
			chainCode: []byte{1},
		},
		"name": {
			element:   "Alice",
			chainCode: []byte{0x14, 'A', 'l', 'i', 'c', 'e'},
		},
		"long name": {
			element:   "0123456789abcdef0123456789abcdef",
			chainCode: common.Blake2bHash(append([]byte{0x80}, "0123456789abcdef0123456789abcdef"...)).ToBytes(),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			junction, err := NewJunction(testCase.element, true)
			require.NoError(t, err)

			var expected [32]byte
			copy(expected[:], testCase.chainCode)
			assert.Equal(t, expected, junction.ChainCode)
			assert.Equal(t, "//"+testCase.element, junction.String())
		})
	}
}

func TestParseSecretURI(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		uri       string
		phrase    string
		junctions []string
		password  string
	}{
		"dev account": {
			uri:       "//Alice",
			phrase:    DevPhrase,
			junctions: []string{"//Alice"},
		},
		"dev account with password": {
			uri:       "//Alice///secret",
			phrase:    DevPhrase,
			junctions: []string{"//Alice"},
			password:  "secret",
		},
		"phrase with path": {
			uri:       DevPhrase + "//polkadot/0//stash",
			phrase:    DevPhrase,
			junctions: []string{"//polkadot", "/0", "//stash"},
		},
		"seed": {
			uri:    aliceSeed,
			phrase: aliceSeed,
		},
		"password only": {
			uri:      DevPhrase + "///secret",
			phrase:   DevPhrase,
			password: "secret",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			parsed, err := ParseSecretURI(testCase.uri)
			require.NoError(t, err)
			assert.Equal(t, testCase.phrase, parsed.Phrase)
			assert.Equal(t, testCase.password, parsed.Password)

			junctions := make([]string, len(parsed.Junctions))
			for i, junction := range parsed.Junctions {
				junctions[i] = junction.String()
			}
			if testCase.junctions == nil {
				assert.Empty(t, junctions)
			} else {
				assert.Equal(t, testCase.junctions, junctions)
			}
		})
	}
}

func TestNewKeypairFromURI(t *testing.T) {
	fromSeed, err := NewKeypairFromURI(aliceSeed)
	require.NoError(t, err)
	assert.Equal(t, alicePublic, fromSeed.Public().Hex())

	alice, err := NewKeypairFromURI("//Alice")
	require.NoError(t, err)
	explicit, err := NewKeypairFromURI(DevPhrase + "//Alice")
	require.NoError(t, err)
	assert.Equal(t, alice.Public(), explicit.Public())

	bob, err := NewKeypairFromURI("//Bob")
	require.NoError(t, err)
	assert.NotEqual(t, alice.Public(), bob.Public())

	soft, err := NewKeypairFromURI("/Alice")
	require.NoError(t, err)
	assert.NotEqual(t, alice.Public(), soft.Public())

	withPassword, err := NewKeypairFromURI("//Alice///secret")
	require.NoError(t, err)
	assert.NotEqual(t, alice.Public(), withPassword.Public())

	msg := []byte("derived")
	sig, err := soft.Sign(msg)
	require.NoError(t, err)
	ok, err := soft.Public().Verify(msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = NewKeypairFromURI("0x1234")
	require.ErrorIs(t, err, ErrInvalidSeedLength)
}
