// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import "errors"

var (
	ErrKeyCount       = errors.New("wrong number of storage keys")
	ErrHasherMismatch = errors.New("storage hasher mismatch")
	ErrNoDefault      = errors.New("storage entry has no default value")
	ErrNotRecoverable = errors.New("storage key cannot be recovered from its hash")
	ErrKeyTooShort    = errors.New("storage key too short")
	ErrPrefixMismatch = errors.New("storage key does not start with the entry prefix")
)
