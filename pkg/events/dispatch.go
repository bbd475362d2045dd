// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/value"
)

// DispatchError is the error of a failed extrinsic. Module errors are
// resolved to the pallet error variant.
type DispatchError struct {
	// Kind is the sp_runtime::DispatchError variant, for example Module,
	// BadOrigin or Token.
	Kind string
	// Pallet, Name and Docs are set for module errors that resolve.
	Pallet string
	Name   string
	Docs   []string
	// Value is the dynamically decoded error.
	Value value.Value
}

func (e *DispatchError) Error() string {
	if e.Kind == "Module" && e.Pallet != "" {
		message := "module error: " + e.Pallet + "." + e.Name
		if len(e.Docs) > 0 {
			message += ": " + strings.TrimSpace(strings.Join(e.Docs, " "))
		}
		return message
	}
	return "dispatch error: " + e.Value.String()
}

// Is allows errors.Is to match dispatch errors by kind, pallet and name,
// ignoring the fields left empty in target.
func (e *DispatchError) Is(target error) bool {
	t, ok := target.(*DispatchError)
	if !ok {
		return false
	}
	return (t.Kind == "" || t.Kind == e.Kind) &&
		(t.Pallet == "" || t.Pallet == e.Pallet) &&
		(t.Name == "" || t.Name == e.Name)
}

// NewDispatchError resolves a decoded sp_runtime::DispatchError.
func NewDispatchError(md *metadata.Metadata, v value.Value) *DispatchError {
	dispatchError := &DispatchError{Kind: v.Name, Value: v}
	if v.Name != "Module" || len(v.Fields) != 1 {
		return dispatchError
	}

	palletIndex, errorIndex, ok := moduleErrorIndices(v.Fields[0].Value)
	if !ok {
		return dispatchError
	}

	pallet, err := md.PalletByIndex(palletIndex)
	if err != nil {
		return dispatchError
	}
	variant, err := pallet.Error(errorIndex)
	if err != nil {
		return dispatchError
	}

	dispatchError.Pallet = pallet.Name
	dispatchError.Name = variant.Name
	dispatchError.Docs = variant.Docs
	return dispatchError
}

// moduleErrorIndices reads sp_runtime::ModuleError, whose error field is
// a u8 on older runtimes and [u8; 4] on newer ones.
func moduleErrorIndices(moduleError value.Value) (palletIndex, errorIndex uint8, ok bool) {
	index, found := moduleError.Field("index")
	if !found {
		return 0, 0, false
	}
	pallet, ok := index.AsUint()
	if !ok || pallet > 0xff {
		return 0, 0, false
	}

	errorField, found := moduleError.Field("error")
	if !found {
		return 0, 0, false
	}
	if b, isBytes := errorField.AsBytes(); isBytes && len(b) > 0 {
		return uint8(pallet), b[0], true
	}
	if n, isUint := errorField.AsUint(); isUint && n <= 0xff {
		return uint8(pallet), uint8(n), true
	}
	return 0, 0, false
}

// DispatchError decodes the error of a System.ExtrinsicFailed event.
func (d *Details) DispatchError(md *metadata.Metadata) (*DispatchError, error) {
	if !d.Is("System", "ExtrinsicFailed") {
		return nil, fmt.Errorf("%s is not System.ExtrinsicFailed", d)
	}

	fields, err := d.FieldValues()
	if err != nil {
		return nil, err
	}
	errorValue, ok := fields.Field("dispatch_error")
	if !ok {
		if len(fields.Fields) == 0 {
			return nil, fmt.Errorf("%w: %s has no fields", ErrRecordShape, d)
		}
		errorValue = fields.Fields[0].Value
	}
	return NewDispatchError(md, errorValue), nil
}
