// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package value decodes and encodes SCALE data dynamically, driven by the
// type registry of the runtime metadata.
package value

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ChainSafe/gosubxt/lib/common"
)

// Kind is the shape of a dynamic value.
type Kind uint8

// Value kinds.
const (
	KindComposite Kind = iota
	KindVariant
	KindSequence
	KindBool
	KindString
	KindInt
	KindBits
)

// Value is a dynamically typed SCALE value.
//
// Composites and variants hold Fields, sequences, arrays and tuples hold
// Items. Every integer primitive, compact integer and char is held in Int.
type Value struct {
	Kind   Kind
	Fields []Field
	Items  []Value
	// Variant name and index.
	Name  string
	Index uint8
	Bool  bool
	Str   string
	Int   *big.Int
	Bits  []bool
}

// Field is a possibly named field of a composite or variant value.
type Field struct {
	Name  string
	Value Value
}

// Named returns a named field.
func Named(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// Unnamed returns an unnamed field.
func Unnamed(v Value) Field {
	return Field{Value: v}
}

// Composite returns a composite value.
func Composite(fields ...Field) Value {
	return Value{Kind: KindComposite, Fields: fields}
}

// Variant returns a variant value selected by name.
func Variant(name string, fields ...Field) Value {
	return Value{Kind: KindVariant, Name: name, Fields: fields}
}

// Sequence returns a sequence, array or tuple value.
func Sequence(items ...Value) Value {
	return Value{Kind: KindSequence, Items: items}
}

// Bytes returns a sequence of u8 values.
func Bytes(b []byte) Value {
	items := make([]Value, len(b))
	for i, x := range b {
		items[i] = Uint(uint64(x))
	}
	return Sequence(items...)
}

// Bool returns a bool value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// String returns a string value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Uint returns an integer value.
func Uint(v uint64) Value {
	return Value{Kind: KindInt, Int: new(big.Int).SetUint64(v)}
}

// Int returns a signed integer value.
func Int(v int64) Value {
	return Value{Kind: KindInt, Int: big.NewInt(v)}
}

// BigInt returns an integer value.
func BigInt(v *big.Int) Value {
	return Value{Kind: KindInt, Int: new(big.Int).Set(v)}
}

// Bits returns a bit sequence value.
func Bits(bits []bool) Value {
	return Value{Kind: KindBits, Bits: bits}
}

// Field returns the field with the given name.
func (v Value) Field(name string) (Value, bool) {
	for _, field := range v.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return Value{}, false
}

// AsBytes returns the bytes held by a sequence of integers, unwrapping
// single field composites such as AccountId32 or H256.
func (v Value) AsBytes() ([]byte, bool) {
	if v.Kind == KindComposite && len(v.Fields) == 1 {
		return v.Fields[0].Value.AsBytes()
	}
	if v.Kind != KindSequence {
		return nil, false
	}
	out := make([]byte, len(v.Items))
	for i, item := range v.Items {
		if item.Kind != KindInt || !item.Int.IsUint64() || item.Int.Uint64() > 0xff {
			return nil, false
		}
		out[i] = byte(item.Int.Uint64())
	}
	return out, true
}

// AsUint returns the value of an unsigned integer, unwrapping single field
// composites.
func (v Value) AsUint() (uint64, bool) {
	if v.Kind == KindComposite && len(v.Fields) == 1 {
		return v.Fields[0].Value.AsUint()
	}
	if v.Kind != KindInt || !v.Int.IsUint64() {
		return 0, false
	}
	return v.Int.Uint64(), true
}

// String renders the value in a compact human readable form.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.Kind {
	case KindComposite:
		if b, ok := v.AsBytes(); ok && len(v.Fields) == 1 && len(b) > 0 {
			sb.WriteString(common.BytesToHex(b))
			return
		}
		writeFields(sb, v.Fields)
	case KindVariant:
		sb.WriteString(v.Name)
		if len(v.Fields) > 0 {
			writeFields(sb, v.Fields)
		}
	case KindSequence:
		if b, ok := v.AsBytes(); ok && len(b) > 0 {
			sb.WriteString(common.BytesToHex(b))
			return
		}
		sb.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case KindBool:
		fmt.Fprintf(sb, "%t", v.Bool)
	case KindString:
		fmt.Fprintf(sb, "%q", v.Str)
	case KindInt:
		sb.WriteString(v.Int.String())
	case KindBits:
		sb.WriteString("0b")
		for _, bit := range v.Bits {
			if bit {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
}

func writeFields(sb *strings.Builder, fields []Field) {
	named := len(fields) > 0 && fields[0].Name != ""
	if named {
		sb.WriteString(" { ")
	} else {
		sb.WriteByte('(')
	}
	for i, field := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		if named {
			sb.WriteString(field.Name)
			sb.WriteString(": ")
		}
		field.Value.write(sb)
	}
	if named {
		sb.WriteString(" }")
	} else {
		sb.WriteByte(')')
	}
}

// MarshalJSON renders the value as JSON. Byte sequences become hex strings,
// named fields become objects and unit variants become strings.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.jsonValue())
}

func (v Value) jsonValue() interface{} {
	switch v.Kind {
	case KindComposite:
		if len(v.Fields) == 1 && v.Fields[0].Name == "" {
			return v.Fields[0].Value.jsonValue()
		}
		return fieldsJSON(v.Fields)
	case KindVariant:
		if len(v.Fields) == 0 {
			return v.Name
		}
		if len(v.Fields) == 1 && v.Fields[0].Name == "" {
			return map[string]interface{}{v.Name: v.Fields[0].Value.jsonValue()}
		}
		return map[string]interface{}{v.Name: fieldsJSON(v.Fields)}
	case KindSequence:
		if b, ok := v.AsBytes(); ok && len(b) > 0 {
			return common.BytesToHex(b)
		}
		items := make([]interface{}, len(v.Items))
		for i, item := range v.Items {
			items[i] = item.jsonValue()
		}
		return items
	case KindBool:
		return v.Bool
	case KindString:
		return v.Str
	case KindInt:
		return json.Number(v.Int.String())
	case KindBits:
		return Value{Kind: KindBits, Bits: v.Bits}.String()
	default:
		return nil
	}
}

func fieldsJSON(fields []Field) interface{} {
	if len(fields) == 0 || fields[0].Name == "" {
		items := make([]interface{}, len(fields))
		for i, field := range fields {
			items[i] = field.Value.jsonValue()
		}
		return items
	}
	object := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		object[field.Name] = field.Value.jsonValue()
	}
	return object
}
