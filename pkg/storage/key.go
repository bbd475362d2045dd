// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// DecodeKey recovers the map keys of a raw storage key of the addressed
// entry into targets, one per hasher in order. Fewer targets than hashers
// decode the leading keys only. A nil target skips a key hashed with a
// fixed length non recoverable hasher.
func DecodeKey(address Address, rawKey []byte, targets ...interface{}) error {
	if len(targets) > len(address.Hashers) {
		return fmt.Errorf("%w: %s has %d hashers, got %d targets",
			ErrKeyCount, address, len(address.Hashers), len(targets))
	}

	rest, err := trimPrefix(address, rawKey)
	if err != nil {
		return err
	}

	reader := bytes.NewReader(rest)
	decoder := scale.NewDecoder(reader)
	for i, target := range targets {
		hasher := address.Hashers[i]
		if reader.Len() < hasher.HashLen() {
			return fmt.Errorf("%w: key %d of %s", ErrKeyTooShort, i, address)
		}
		if _, err := reader.Seek(int64(hasher.HashLen()), io.SeekCurrent); err != nil {
			return err
		}

		if !hasher.Recoverable() {
			if target != nil {
				return fmt.Errorf("%w: key %d of %s is hashed with %s",
					ErrNotRecoverable, i, address, hasher)
			}
			continue
		}
		if target == nil {
			return fmt.Errorf("%w: key %d of %s has a variable length", ErrNotRecoverable, i, address)
		}

		if err := decoder.Decode(target); err != nil {
			return fmt.Errorf("decoding key %d of %s: %w", i, address, err)
		}
	}
	return nil
}

func trimPrefix(address Address, rawKey []byte) ([]byte, error) {
	prefix := address.Root().Prefix()
	if !bytes.HasPrefix(rawKey, prefix) {
		return nil, fmt.Errorf("%w: %s", ErrPrefixMismatch, address)
	}
	return rawKey[len(prefix):], nil
}
