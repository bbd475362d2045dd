// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package value

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrInvalidBool      = errors.New("invalid bool byte")
	ErrInvalidChar      = errors.New("invalid char")
	ErrInvalidUTF8      = errors.New("invalid utf-8 string")
	ErrUnsupportedType  = errors.New("unsupported type")
	ErrLengthOverflow   = errors.New("length exceeds remaining bytes")
	ErrMaxDepthExceeded = errors.New("maximum type nesting depth exceeded")
)

// maxDepth bounds recursion on self referencing types.
const maxDepth = 256

// Decode decodes the value of the given type from the start of data and
// returns it with the number of bytes consumed.
func Decode(registry *metadata.Registry, typeID uint32, data []byte) (Value, int, error) {
	source := bytes.NewReader(data)
	d := &decoder{
		registry: registry,
		source:   source,
		scale:    scale.NewDecoder(source),
	}
	v, err := d.decode(typeID, 0)
	if err != nil {
		return Value{}, 0, fmt.Errorf("decoding type %d: %w", typeID, err)
	}
	return v, len(data) - source.Len(), nil
}

// DecodeAll decodes the value and fails if bytes remain.
func DecodeAll(registry *metadata.Registry, typeID uint32, data []byte) (Value, error) {
	v, n, err := Decode(registry, typeID, data)
	if err != nil {
		return Value{}, err
	}
	if n != len(data) {
		return Value{}, fmt.Errorf("decoding type %d: %d trailing bytes", typeID, len(data)-n)
	}
	return v, nil
}

// Skip returns the encoded length of the value of the given type at the
// start of data.
func Skip(registry *metadata.Registry, typeID uint32, data []byte) (int, error) {
	_, n, err := Decode(registry, typeID, data)
	return n, err
}

type decoder struct {
	registry *metadata.Registry
	source   *bytes.Reader
	scale    *scale.Decoder
}

func (d *decoder) read(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	if n > d.source.Len() {
		return nil, fmt.Errorf("%w: %d > %d", ErrLengthOverflow, n, d.source.Len())
	}
	buffer := make([]byte, n)
	if err := d.scale.Read(buffer); err != nil {
		return nil, err
	}
	return buffer, nil
}

func (d *decoder) compact() (*big.Int, error) {
	return types.DecodeCompact(*d.scale)
}

func (d *decoder) length() (int, error) {
	n, err := d.compact()
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() || n.Int64() > int64(d.source.Len()) {
		return 0, fmt.Errorf("%w: %s > %d", ErrLengthOverflow, n, d.source.Len())
	}
	return int(n.Int64()), nil
}

func (d *decoder) decode(typeID uint32, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, ErrMaxDepthExceeded
	}
	t, err := d.registry.Type(typeID)
	if err != nil {
		return Value{}, err
	}

	switch def := t.Def; def.Kind {
	case metadata.KindComposite:
		fields, err := d.fields(def.Fields, depth)
		if err != nil {
			return Value{}, err
		}
		return Composite(fields...), nil
	case metadata.KindVariant:
		index, err := d.scale.ReadOneByte()
		if err != nil {
			return Value{}, err
		}
		for _, variant := range def.Variants {
			if variant.Index != index {
				continue
			}
			fields, err := d.fields(variant.Fields, depth)
			if err != nil {
				return Value{}, fmt.Errorf("variant %s: %w", variant.Name, err)
			}
			v := Variant(variant.Name, fields...)
			v.Index = index
			return v, nil
		}
		return Value{}, fmt.Errorf("%w: index %d of %s", ErrUnknownVariant, index, t.PathString())
	case metadata.KindSequence:
		n, err := d.length()
		if err != nil {
			return Value{}, err
		}
		return d.items(def.Elem, n, depth)
	case metadata.KindArray:
		return d.items(def.Elem, int(def.Len), depth)
	case metadata.KindTuple:
		items := make([]Value, 0, len(def.Tuple))
		for _, elem := range def.Tuple {
			item, err := d.decode(elem, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Sequence(items...), nil
	case metadata.KindPrimitive:
		return d.primitive(def.Primitive)
	case metadata.KindCompact:
		n, err := d.compact()
		if err != nil {
			return Value{}, err
		}
		return d.wrapCompact(def.Elem, n, depth)
	case metadata.KindBitSequence:
		return d.bits(def.BitStore, def.BitOrder)
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, def.Kind)
	}
}

func (d *decoder) fields(defs []metadata.Field, depth int) ([]Field, error) {
	fields := make([]Field, 0, len(defs))
	for _, def := range defs {
		v, err := d.decode(def.Type, depth+1)
		if err != nil {
			if def.Name != "" {
				return nil, fmt.Errorf("field %s: %w", def.Name, err)
			}
			return nil, err
		}
		fields = append(fields, Field{Name: def.Name, Value: v})
	}
	return fields, nil
}

func (d *decoder) items(elem uint32, n, depth int) (Value, error) {
	items := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		item, err := d.decode(elem, depth+1)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	return Sequence(items...), nil
}

// wrapCompact rebuilds the single field composites a compact integer may
// be declared over, such as Compact<Perbill>.
func (d *decoder) wrapCompact(elem uint32, n *big.Int, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, ErrMaxDepthExceeded
	}
	t, err := d.registry.Type(elem)
	if err != nil {
		return Value{}, err
	}
	switch t.Def.Kind {
	case metadata.KindPrimitive:
		return BigInt(n), nil
	case metadata.KindComposite:
		if len(t.Def.Fields) == 1 {
			inner, err := d.wrapCompact(t.Def.Fields[0].Type, n, depth+1)
			if err != nil {
				return Value{}, err
			}
			return Composite(Field{Name: t.Def.Fields[0].Name, Value: inner}), nil
		}
		if len(t.Def.Fields) == 0 {
			return Composite(), nil
		}
	case metadata.KindTuple:
		if len(t.Def.Tuple) == 0 {
			return Sequence(), nil
		}
	}
	return Value{}, fmt.Errorf("%w: compact %s", ErrUnsupportedType, t.Def.Kind)
}

func (d *decoder) primitive(p metadata.Primitive) (Value, error) {
	switch p {
	case metadata.Bool:
		b, err := d.scale.ReadOneByte()
		if err != nil {
			return Value{}, err
		}
		if b > 1 {
			return Value{}, fmt.Errorf("%w: %d", ErrInvalidBool, b)
		}
		return Bool(b == 1), nil
	case metadata.Str:
		n, err := d.length()
		if err != nil {
			return Value{}, err
		}
		b, err := d.read(n)
		if err != nil {
			return Value{}, err
		}
		if !utf8.Valid(b) {
			return Value{}, ErrInvalidUTF8
		}
		return String(string(b)), nil
	case metadata.Char:
		b, err := d.read(4)
		if err != nil {
			return Value{}, err
		}
		r := rune(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
		if !utf8.ValidRune(r) {
			return Value{}, fmt.Errorf("%w: %d", ErrInvalidChar, r)
		}
		return Value{Kind: KindInt, Int: big.NewInt(int64(r))}, nil
	default:
		size := p.Size()
		if size == 0 {
			return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, p)
		}
		b, err := d.read(size)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInt, Int: leToInt(b, isSigned(p))}, nil
	}
}

func isSigned(p metadata.Primitive) bool {
	return p >= metadata.I8 && p <= metadata.I256
}

// leToInt converts little endian bytes, two's complement when signed.
func leToInt(b []byte, signed bool) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	n := new(big.Int).SetBytes(be)
	if signed && len(b) > 0 && b[len(b)-1]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(8*len(b))))
	}
	return n
}

func (d *decoder) bitOrder(store, order uint32) (width int, msb bool, err error) {
	storeType, err := d.registry.Type(store)
	if err != nil {
		return 0, false, err
	}
	if storeType.Def.Kind != metadata.KindPrimitive {
		return 0, false, fmt.Errorf("%w: bit store %s", ErrUnsupportedType, storeType.Def.Kind)
	}
	switch storeType.Def.Primitive {
	case metadata.U8, metadata.U16, metadata.U32, metadata.U64:
		width = storeType.Def.Primitive.Size() * 8
	default:
		return 0, false, fmt.Errorf("%w: bit store %s", ErrUnsupportedType, storeType.Def.Primitive)
	}

	orderType, err := d.registry.Type(order)
	if err != nil {
		return 0, false, err
	}
	msb = len(orderType.Path) > 0 && strings.HasSuffix(orderType.Path[len(orderType.Path)-1], "Msb0")
	return width, msb, nil
}

func (d *decoder) bits(store, order uint32) (Value, error) {
	width, msb, err := d.bitOrder(store, order)
	if err != nil {
		return Value{}, err
	}
	count, err := d.compact()
	if err != nil {
		return Value{}, err
	}
	if !count.IsInt64() || count.Int64() > int64(d.source.Len())*8 {
		return Value{}, fmt.Errorf("%w: %s bits", ErrLengthOverflow, count)
	}
	n := int(count.Int64())
	units := (n + width - 1) / width
	raw, err := d.read(units * width / 8)
	if err != nil {
		return Value{}, err
	}

	bits := make([]bool, n)
	for i := range bits {
		unit := i / width
		offset := i % width
		if msb {
			offset = width - 1 - offset
		}
		// units are little endian integers
		b := raw[unit*width/8+offset/8]
		bits[i] = b&(1<<(offset%8)) != 0
	}
	return Bits(bits), nil
}
