// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"testing"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner(t *testing.T) {
	kr, err := NewKeyring()
	require.NoError(t, err)
	alice := kr.Alice()

	assert.Equal(t, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", alice.String())
	assert.Equal(t,
		common.MustHexToBytes("0x00d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"),
		alice.Address())

	payload := []byte("payload")
	signature, err := alice.Sign(payload)
	require.NoError(t, err)
	require.Len(t, signature, 65)
	assert.Equal(t, byte(1), signature[0])

	ok, err := alice.Verify(payload, signature)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = kr.Bob().Verify(payload, signature)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = alice.Verify(payload, signature[1:])
	assert.Error(t, err)
}

func TestNewSignerFromURI(t *testing.T) {
	signer, err := NewSignerFromURI("0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a")
	require.NoError(t, err)
	assert.Equal(t, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", signer.String())

	_, err = NewSignerFromURI("0x12")
	assert.Error(t, err)
}
