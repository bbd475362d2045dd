// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package tx builds, signs and submits extrinsics.
package tx

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/ChainSafe/gosubxt/pkg/value"
)

// ErrFieldCount is returned when a call does not have the number of
// fields the metadata declares.
var ErrFieldCount = errors.New("wrong number of call fields")

// Call is a runtime call. The generated call structs implement it and
// SCALE encode to the call arguments.
type Call interface {
	PalletName() string
	CallName() string
}

// EncodeCall encodes the pallet index, the call index and the call
// arguments, after checking that the runtime declares the call with as
// many fields as the call has.
func EncodeCall(md *metadata.Metadata, call Call) ([]byte, error) {
	pallet, variant, err := md.Call(call.PalletName(), call.CallName())
	if err != nil {
		return nil, err
	}

	if dynamic, ok := call.(*DynamicCall); ok {
		fields, err := dynamic.encodeFields(md.Types, variant)
		if err != nil {
			return nil, err
		}
		return append([]byte{pallet.Index, variant.Index}, fields...), nil
	}

	if count := fieldCount(call); count != len(variant.Fields) {
		return nil, fmt.Errorf("%w: %s.%s has %d fields in metadata, %d in %T",
			ErrFieldCount, pallet.Name, variant.Name, len(variant.Fields), count, call)
	}

	fields, err := types.Encode(call)
	if err != nil {
		return nil, fmt.Errorf("encoding %s.%s: %w", pallet.Name, variant.Name, err)
	}
	return append([]byte{pallet.Index, variant.Index}, fields...), nil
}

func fieldCount(call Call) int {
	t := reflect.TypeOf(call)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return 1
	}

	count := 0
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			count++
		}
	}
	return count
}

// DynamicCall is a call built from dynamic values, checked and encoded
// against the metadata.
type DynamicCall struct {
	Pallet string
	Name   string
	// Fields are matched to the call fields by name when named, by
	// position otherwise.
	Fields []value.Field
}

var _ Call = (*DynamicCall)(nil)

// NewDynamicCall returns a dynamic call.
func NewDynamicCall(pallet, name string, fields ...value.Field) *DynamicCall {
	return &DynamicCall{Pallet: pallet, Name: name, Fields: fields}
}

// PalletName implements Call.
func (c *DynamicCall) PalletName() string { return c.Pallet }

// CallName implements Call.
func (c *DynamicCall) CallName() string { return c.Name }

func (c *DynamicCall) encodeFields(registry *metadata.Registry, variant *metadata.Variant) ([]byte, error) {
	if len(c.Fields) != len(variant.Fields) {
		return nil, fmt.Errorf("%w: %s.%s takes %d fields, got %d",
			ErrFieldCount, c.Pallet, c.Name, len(variant.Fields), len(c.Fields))
	}

	var encoded []byte
	for i, field := range variant.Fields {
		v := c.Fields[i].Value
		if c.Fields[i].Name != "" {
			named, ok := c.field(field.Name)
			if !ok {
				return nil, fmt.Errorf("%s.%s: missing field %q", c.Pallet, c.Name, field.Name)
			}
			v = named
		}

		b, err := value.Encode(registry, field.Type, v)
		if err != nil {
			return nil, fmt.Errorf("encoding field %q of %s.%s: %w", field.Name, c.Pallet, c.Name, err)
		}
		encoded = append(encoded, b...)
	}
	return encoded, nil
}

func (c *DynamicCall) field(name string) (value.Value, bool) {
	for _, field := range c.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return value.Value{}, false
}

// DynamicCallFromJSON builds a dynamic call from a JSON object keyed by
// field name, or a JSON array of the call arguments in order.
func DynamicCallFromJSON(md *metadata.Metadata, pallet, name string, args []byte) (*DynamicCall, error) {
	_, variant, err := md.Call(pallet, name)
	if err != nil {
		return nil, err
	}

	raws := make([]json.RawMessage, len(variant.Fields))
	var named map[string]json.RawMessage
	if err := json.Unmarshal(args, &named); err == nil {
		for i, field := range variant.Fields {
			raw, ok := named[field.Name]
			if !ok {
				return nil, fmt.Errorf("%s.%s: missing field %q", pallet, name, field.Name)
			}
			raws[i] = raw
		}
	} else {
		var positional []json.RawMessage
		if err := json.Unmarshal(args, &positional); err != nil {
			return nil, fmt.Errorf("arguments of %s.%s must be a JSON object or array: %w", pallet, name, err)
		}
		if len(positional) != len(variant.Fields) {
			return nil, fmt.Errorf("%w: %s.%s takes %d fields, got %d",
				ErrFieldCount, pallet, name, len(variant.Fields), len(positional))
		}
		copy(raws, positional)
	}

	fields := make([]value.Field, len(variant.Fields))
	for i, field := range variant.Fields {
		v, err := value.FromJSON(md.Types, field.Type, raws[i])
		if err != nil {
			return nil, fmt.Errorf("field %q of %s.%s: %w", field.Name, pallet, name, err)
		}
		fields[i] = value.Field{Name: field.Name, Value: v}
	}
	return NewDynamicCall(pallet, name, fields...), nil
}
