// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import "errors"

var (
	ErrInvalidMagic         = errors.New("invalid metadata magic number")
	ErrUnsupportedVersion   = errors.New("unsupported metadata version")
	ErrTypeNotFound         = errors.New("type not found in registry")
	ErrNotVariant           = errors.New("type is not a variant")
	ErrPalletNotFound       = errors.New("pallet not found")
	ErrCallNotFound         = errors.New("call not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrErrorNotFound        = errors.New("error not found")
	ErrStorageEntryNotFound = errors.New("storage entry not found")
	ErrConstantNotFound     = errors.New("constant not found")
	ErrRuntimeAPINotFound   = errors.New("runtime api not found")
	ErrIncompatible         = errors.New("metadata is incompatible")
	ErrTrailingBytes        = errors.New("trailing bytes after metadata")
)
