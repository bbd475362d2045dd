// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/lib/crypto/sr25519"
)

// private keys generated using `subkey inspect //Name`
var sr25519PrivateKeys = []string{
	"0xe5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a",
	"0x398f0c28f98885e046333d4a41c19cee4c37368a9832c6502f6cfd182e2aef89",
	"0xbc1ede780f784bb6991a585e4f6e61522c14e1cae6ad0895fb57b9a205a8f938",
	"0x868020ae0687dda7d57565093a69090211449845a7e11453612800b663307246",
	"0x786ad0e2df456fe43dd1f91ebca22e235bc162e0bb8d53c633e8c85b2af68b7a",
	"0x42438b7883391c05512a938e36c2df0131e088b3756d6aa7a755fbff19d2f842",
	"0xcdb035129162df39b70e604ab75162084e176f48897cdafb7d72c4a542a86dda",
	"0x51079fc9e1817f8d4f245d66b325a94d9cafdb8691acbfe85415dce3ae7a62b9",
	"0x7c04eea9d31ce0d9ee256d7c561dc29f20d1119a125e95713c967dcd8d14f22d",
}

// Keyring holds the signers of the development accounts.
type Keyring struct {
	KeyAlice   *Signer
	KeyBob     *Signer
	KeyCharlie *Signer
	KeyDave    *Signer
	KeyEve     *Signer
	KeyFerdie  *Signer
	KeyGeorge  *Signer
	KeyHeather *Signer
	KeyIan     *Signer

	Keys []*Signer
}

// NewKeyring returns an initialised development keyring
func NewKeyring() (*Keyring, error) {
	kr := new(Keyring)
	v := reflect.ValueOf(kr).Elem()
	kr.Keys = make([]*Signer, v.NumField()-1)

	for i := 0; i < v.NumField()-1; i++ {
		who := v.Field(i)
		h, err := common.HexToBytes(sr25519PrivateKeys[i])
		if err != nil {
			return nil, err
		}

		kp, err := sr25519.NewKeypairFromSeed(h)
		if err != nil {
			return nil, err
		}

		signer := NewSigner(kp)
		who.Set(reflect.ValueOf(signer))

		kr.Keys[i] = signer
	}

	return kr, nil
}

// Alice returns Alice's key
func (kr *Keyring) Alice() *Signer {
	return kr.KeyAlice
}

// Bob returns Bob's key
func (kr *Keyring) Bob() *Signer {
	return kr.KeyBob
}

// Charlie returns Charlie's key
func (kr *Keyring) Charlie() *Signer {
	return kr.KeyCharlie
}

// Dave returns Dave's key
func (kr *Keyring) Dave() *Signer {
	return kr.KeyDave
}

// Eve returns Eve's key
func (kr *Keyring) Eve() *Signer {
	return kr.KeyEve
}

// Ferdie returns Ferdie's key
func (kr *Keyring) Ferdie() *Signer {
	return kr.KeyFerdie
}

// George returns George's key
func (kr *Keyring) George() *Signer {
	return kr.KeyGeorge
}

// Heather returns Heather's key
func (kr *Keyring) Heather() *Signer {
	return kr.KeyHeather
}

// Ian returns Ian's key
func (kr *Keyring) Ian() *Signer {
	return kr.KeyIan
}

// ByName returns the signer of a development account by its case
// insensitive name, such as "alice".
func (kr *Keyring) ByName(name string) (*Signer, error) {
	v := reflect.ValueOf(kr).Elem()
	field := v.FieldByNameFunc(func(field string) bool {
		return field != "Keys" && strings.EqualFold(field, "Key"+name)
	})
	if !field.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, name)
	}
	return field.Interface().(*Signer), nil
}
