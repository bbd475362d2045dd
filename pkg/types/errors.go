// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVariant is returned when encoding an enum with no variant set.
	ErrNoVariant = errors.New("no variant set")
	// ErrUnknownVariant is returned when decoding an unknown enum variant index.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrInvalidSS58 is returned for malformed SS58 addresses.
	ErrInvalidSS58 = errors.New("invalid ss58 address")
)

// NoVariantError wraps ErrNoVariant with the enum name.
func NoVariantError(enum string) error {
	return fmt.Errorf("encoding %s: %w", enum, ErrNoVariant)
}

// UnknownVariantError wraps ErrUnknownVariant with the enum name and index.
func UnknownVariantError(enum string, index byte) error {
	return fmt.Errorf("decoding %s: %w: index %d", enum, ErrUnknownVariant, index)
}
