// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"bytes"
	"errors"
	"fmt"
)

// CheckCompatible verifies that every call, event, storage entry and
// constant of the named pallets of reference exists in m with the same
// structural hash. Every pallet of reference is checked when no name is
// given. Constant values and storage defaults are not compared, and items
// only present in m are ignored. All mismatches are reported, each
// wrapping ErrIncompatible.
func (m *Metadata) CheckCompatible(reference *Metadata, palletNames ...string) error {
	if len(palletNames) == 0 {
		palletNames = reference.PalletNames()
	}

	c := &compatibility{
		ours:   newHasher(m.Types),
		theirs: newHasher(reference.Types),
	}
	for _, name := range palletNames {
		want, err := reference.Pallet(name)
		if err != nil {
			return fmt.Errorf("reference metadata: %w", err)
		}
		got, err := m.Pallet(name)
		if err != nil {
			c.mismatch("%s", err)
			continue
		}
		if err := c.pallet(want, got); err != nil {
			return err
		}
	}
	return errors.Join(c.errs...)
}

type compatibility struct {
	ours   *hasher
	theirs *hasher
	errs   []error
}

func (c *compatibility) mismatch(format string, args ...interface{}) {
	c.errs = append(c.errs, fmt.Errorf("%w: "+format, append([]interface{}{ErrIncompatible}, args...)...))
}

func (c *compatibility) pallet(want, got *Pallet) error {
	for _, kind := range []struct {
		name string
		want func() ([]Variant, error)
		got  func() ([]Variant, error)
	}{
		{"call", want.Calls, got.Calls},
		{"event", want.Events, got.Events},
	} {
		wantVariants, err := kind.want()
		if err != nil {
			return fmt.Errorf("reference metadata: %w", err)
		}
		gotVariants, err := kind.got()
		if err != nil {
			c.mismatch("%s", err)
			continue
		}
		c.variants(kind.name, want.Name, wantVariants, gotVariants)
	}

	if want.Storage != nil {
		for i := range want.Storage.Entries {
			entry := &want.Storage.Entries[i]
			other, err := got.StorageEntry(entry.Name)
			switch {
			case err != nil:
				c.mismatch("storage entry %s.%s not found", want.Name, entry.Name)
			case !bytes.Equal(c.theirs.entryShapeHash(entry), c.ours.entryShapeHash(other)):
				c.mismatch("storage entry %s.%s changed", want.Name, entry.Name)
			}
		}
	}

	for i := range want.Constants {
		constant := &want.Constants[i]
		other, err := got.Constant(constant.Name)
		switch {
		case err != nil:
			c.mismatch("constant %s.%s not found", want.Name, constant.Name)
		case !bytes.Equal(c.theirs.typeHash(constant.Type), c.ours.typeHash(other.Type)):
			c.mismatch("constant %s.%s changed type", want.Name, constant.Name)
		}
	}
	return nil
}

func (c *compatibility) variants(kind, pallet string, want, got []Variant) {
	byName := make(map[string]*Variant, len(got))
	for i := range got {
		byName[got[i].Name] = &got[i]
	}
	for i := range want {
		other, ok := byName[want[i].Name]
		switch {
		case !ok:
			c.mismatch("%s %s.%s not found", kind, pallet, want[i].Name)
		case !bytes.Equal(c.theirs.variantHash(want[i]), c.ours.variantHash(*other)):
			c.mismatch("%s %s.%s changed", kind, pallet, want[i].Name)
		}
	}
}
