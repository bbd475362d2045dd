// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package value

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	ErrKindMismatch   = errors.New("value kind does not match type")
	ErrFieldMismatch  = errors.New("fields do not match type")
	ErrLengthMismatch = errors.New("length does not match type")
	ErrOutOfRange     = errors.New("integer out of range")
)

// Encode encodes the value as the given type.
//
// Values for single field composites may be given unwrapped, so a byte
// sequence encodes as an AccountId32 or H256.
func Encode(registry *metadata.Registry, typeID uint32, v Value) ([]byte, error) {
	e := &encoder{registry: registry}
	e.scale = scale.NewEncoder(&e.buffer)
	if err := e.encode(typeID, v, 0); err != nil {
		return nil, fmt.Errorf("encoding type %d: %w", typeID, err)
	}
	return e.buffer.Bytes(), nil
}

type encoder struct {
	registry *metadata.Registry
	buffer   bytes.Buffer
	scale    *scale.Encoder
}

func (e *encoder) encode(typeID uint32, v Value, depth int) error {
	if depth > maxDepth {
		return ErrMaxDepthExceeded
	}
	t, err := e.registry.Type(typeID)
	if err != nil {
		return err
	}

	switch def := t.Def; def.Kind {
	case metadata.KindComposite:
		if v.Kind != KindComposite {
			if len(def.Fields) == 1 {
				return e.encode(def.Fields[0].Type, v, depth+1)
			}
			return fmt.Errorf("%w: %s for %s", ErrKindMismatch, kindName(v.Kind), t.PathString())
		}
		return e.fields(def.Fields, v.Fields, depth)
	case metadata.KindVariant:
		if v.Kind != KindVariant {
			return fmt.Errorf("%w: %s for variant %s", ErrKindMismatch, kindName(v.Kind), t.PathString())
		}
		for _, variant := range def.Variants {
			if v.Name != "" && variant.Name != v.Name || v.Name == "" && variant.Index != v.Index {
				continue
			}
			if err := e.scale.PushByte(variant.Index); err != nil {
				return err
			}
			if err := e.fields(variant.Fields, v.Fields, depth); err != nil {
				return fmt.Errorf("variant %s: %w", variant.Name, err)
			}
			return nil
		}
		return fmt.Errorf("%w: %q of %s", ErrUnknownVariant, v.Name, t.PathString())
	case metadata.KindSequence:
		if v.Kind != KindSequence {
			return fmt.Errorf("%w: %s for sequence", ErrKindMismatch, kindName(v.Kind))
		}
		if err := e.scale.EncodeUintCompact(*new(big.Int).SetInt64(int64(len(v.Items)))); err != nil {
			return err
		}
		return e.items(def.Elem, v.Items, depth)
	case metadata.KindArray:
		if v.Kind != KindSequence {
			return fmt.Errorf("%w: %s for array", ErrKindMismatch, kindName(v.Kind))
		}
		if len(v.Items) != int(def.Len) {
			return fmt.Errorf("%w: %d items for array of %d", ErrLengthMismatch, len(v.Items), def.Len)
		}
		return e.items(def.Elem, v.Items, depth)
	case metadata.KindTuple:
		if v.Kind != KindSequence {
			return fmt.Errorf("%w: %s for tuple", ErrKindMismatch, kindName(v.Kind))
		}
		if len(v.Items) != len(def.Tuple) {
			return fmt.Errorf("%w: %d items for tuple of %d", ErrLengthMismatch, len(v.Items), len(def.Tuple))
		}
		for i, elem := range def.Tuple {
			if err := e.encode(elem, v.Items[i], depth+1); err != nil {
				return err
			}
		}
		return nil
	case metadata.KindPrimitive:
		return e.primitive(def.Primitive, v)
	case metadata.KindCompact:
		n, ok := compactInt(v)
		if !ok || n.Sign() < 0 {
			return fmt.Errorf("%w: %s for compact", ErrKindMismatch, kindName(v.Kind))
		}
		return e.scale.EncodeUintCompact(*n)
	case metadata.KindBitSequence:
		if v.Kind != KindBits {
			return fmt.Errorf("%w: %s for bit sequence", ErrKindMismatch, kindName(v.Kind))
		}
		return e.bits(def.BitStore, def.BitOrder, v.Bits)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, def.Kind)
	}
}

func (e *encoder) fields(defs []metadata.Field, fields []Field, depth int) error {
	if len(defs) != len(fields) {
		return fmt.Errorf("%w: got %d fields, expected %d", ErrFieldMismatch, len(fields), len(defs))
	}
	named := len(fields) > 0 && fields[0].Name != ""
	for i, def := range defs {
		field := fields[i]
		if named {
			var ok bool
			field, ok = findField(fields, def.Name)
			if !ok {
				return fmt.Errorf("%w: missing field %s", ErrFieldMismatch, def.Name)
			}
		}
		if err := e.encode(def.Type, field.Value, depth+1); err != nil {
			if def.Name != "" {
				return fmt.Errorf("field %s: %w", def.Name, err)
			}
			return err
		}
	}
	return nil
}

func findField(fields []Field, name string) (Field, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

func (e *encoder) items(elem uint32, items []Value, depth int) error {
	for _, item := range items {
		if err := e.encode(elem, item, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func compactInt(v Value) (*big.Int, bool) {
	switch {
	case v.Kind == KindInt && v.Int != nil:
		return v.Int, true
	case v.Kind == KindComposite && len(v.Fields) == 1:
		return compactInt(v.Fields[0].Value)
	case v.Kind == KindComposite && len(v.Fields) == 0:
		return new(big.Int), true
	default:
		return nil, false
	}
}

func (e *encoder) primitive(p metadata.Primitive, v Value) error {
	switch p {
	case metadata.Bool:
		if v.Kind != KindBool {
			return fmt.Errorf("%w: %s for bool", ErrKindMismatch, kindName(v.Kind))
		}
		if v.Bool {
			return e.scale.PushByte(1)
		}
		return e.scale.PushByte(0)
	case metadata.Str:
		if v.Kind != KindString {
			return fmt.Errorf("%w: %s for str", ErrKindMismatch, kindName(v.Kind))
		}
		if err := e.scale.EncodeUintCompact(*big.NewInt(int64(len(v.Str)))); err != nil {
			return err
		}
		return e.write([]byte(v.Str))
	default:
		if v.Kind == KindComposite && len(v.Fields) == 1 {
			return e.primitive(p, v.Fields[0].Value)
		}
		if v.Kind != KindInt || v.Int == nil {
			return fmt.Errorf("%w: %s for %s", ErrKindMismatch, kindName(v.Kind), p)
		}
		size := p.Size()
		if p == metadata.Char {
			size = 4
		}
		b, err := intToLE(v.Int, size, isSigned(p))
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		return e.write(b)
	}
}

func (e *encoder) write(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return e.scale.Write(b)
}

// intToLE converts n to little endian bytes, two's complement when signed.
func intToLE(n *big.Int, size int, signed bool) ([]byte, error) {
	bits := uint(8 * size)
	limit := new(big.Int).Lsh(big.NewInt(1), bits)
	if signed {
		half := new(big.Int).Rsh(limit, 1)
		if n.Cmp(half) >= 0 || n.Cmp(new(big.Int).Neg(half)) < 0 {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRange, n)
		}
	} else if n.Sign() < 0 || n.Cmp(limit) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, n)
	}

	u := new(big.Int).Set(n)
	if u.Sign() < 0 {
		u.Add(u, limit)
	}
	be := u.FillBytes(make([]byte, size))
	le := make([]byte, size)
	for i := range be {
		le[size-1-i] = be[i]
	}
	return le, nil
}

func (e *encoder) bits(store, order uint32, bits []bool) error {
	d := &decoder{registry: e.registry}
	width, msb, err := d.bitOrder(store, order)
	if err != nil {
		return err
	}
	units := (len(bits) + width - 1) / width
	raw := make([]byte, units*width/8)
	for i, bit := range bits {
		if !bit {
			continue
		}
		unit := i / width
		offset := i % width
		if msb {
			offset = width - 1 - offset
		}
		raw[unit*width/8+offset/8] |= 1 << (offset % 8)
	}
	if err := e.scale.EncodeUintCompact(*big.NewInt(int64(len(bits)))); err != nil {
		return err
	}
	return e.write(raw)
}

func kindName(k Kind) string {
	switch k {
	case KindComposite:
		return "composite"
	case KindVariant:
		return "variant"
	case KindSequence:
		return "sequence"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBits:
		return "bits"
	default:
		return "unknown"
	}
}
