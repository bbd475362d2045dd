// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/types"
)

// ErrInvalidJSON is returned when JSON input does not fit the type.
var ErrInvalidJSON = errors.New("invalid json for type")

// FromJSON builds a value of the given type from JSON text.
//
// Objects map to named fields, arrays to unnamed fields and sequences,
// 0x prefixed strings to byte sequences, strings to unit variants and
// single key objects to variants with data. Integers may be JSON numbers
// or decimal strings. AccountId32 values also accept SS58 addresses.
func FromJSON(registry *metadata.Registry, typeID uint32, data []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var x interface{}
	if err := decoder.Decode(&x); err != nil {
		return Value{}, fmt.Errorf("parsing json: %w", err)
	}
	v, err := fromJSON(registry, typeID, x, 0)
	if err != nil {
		return Value{}, fmt.Errorf("converting json to type %d: %w", typeID, err)
	}
	return v, nil
}

func fromJSON(registry *metadata.Registry, typeID uint32, x interface{}, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, ErrMaxDepthExceeded
	}
	t, err := registry.Type(typeID)
	if err != nil {
		return Value{}, err
	}

	switch def := t.Def; def.Kind {
	case metadata.KindComposite:
		if len(def.Fields) == 0 {
			return Composite(), nil
		}
		if s, ok := x.(string); ok && isAccountID(t) && !strings.HasPrefix(s, "0x") {
			account, err := types.ParseAccountID32(s)
			if err != nil {
				return Value{}, err
			}
			return Composite(Unnamed(Bytes(account.ToBytes()))), nil
		}
		if len(def.Fields) == 1 {
			if _, isObject := x.(map[string]interface{}); !isObject || def.Fields[0].Name == "" {
				inner, err := fromJSON(registry, def.Fields[0].Type, x, depth+1)
				if err != nil {
					return Value{}, err
				}
				return Composite(Field{Name: def.Fields[0].Name, Value: inner}), nil
			}
		}
		fields, err := fieldsFromJSON(registry, def.Fields, x, depth)
		if err != nil {
			return Value{}, err
		}
		return Composite(fields...), nil
	case metadata.KindVariant:
		name, data, err := variantFromJSON(x)
		if err != nil {
			return Value{}, err
		}
		for _, variant := range def.Variants {
			if variant.Name != name {
				continue
			}
			if data == nil {
				data = []interface{}{}
			}
			if len(variant.Fields) == 1 && variant.Fields[0].Name == "" {
				data = []interface{}{data}
			}
			fields, err := fieldsFromJSON(registry, variant.Fields, data, depth)
			if err != nil {
				return Value{}, fmt.Errorf("variant %s: %w", name, err)
			}
			v := Variant(name, fields...)
			v.Index = variant.Index
			return v, nil
		}
		return Value{}, fmt.Errorf("%w: %q of %s", ErrUnknownVariant, name, t.PathString())
	case metadata.KindSequence, metadata.KindArray:
		if s, ok := x.(string); ok && strings.HasPrefix(s, "0x") {
			b, err := common.HexToBytes(s)
			if err != nil {
				return Value{}, err
			}
			return Bytes(b), nil
		}
		list, ok := x.([]interface{})
		if !ok {
			return Value{}, fmt.Errorf("%w: expected array for %s", ErrInvalidJSON, def.Kind)
		}
		items := make([]Value, 0, len(list))
		for _, item := range list {
			v, err := fromJSON(registry, def.Elem, item, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Sequence(items...), nil
	case metadata.KindTuple:
		list, ok := x.([]interface{})
		if !ok || len(list) != len(def.Tuple) {
			return Value{}, fmt.Errorf("%w: expected array of %d for tuple", ErrInvalidJSON, len(def.Tuple))
		}
		items := make([]Value, 0, len(list))
		for i, item := range list {
			v, err := fromJSON(registry, def.Tuple[i], item, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Sequence(items...), nil
	case metadata.KindPrimitive:
		return primitiveFromJSON(def.Primitive, x)
	case metadata.KindCompact:
		n, err := intFromJSON(x)
		if err != nil {
			return Value{}, err
		}
		return BigInt(n), nil
	case metadata.KindBitSequence:
		return bitsFromJSON(x)
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, def.Kind)
	}
}

func isAccountID(t *metadata.Type) bool {
	return len(t.Path) > 0 && t.Path[len(t.Path)-1] == "AccountId32"
}

func fieldsFromJSON(registry *metadata.Registry, defs []metadata.Field, x interface{}, depth int) ([]Field, error) {
	fields := make([]Field, 0, len(defs))
	switch data := x.(type) {
	case map[string]interface{}:
		if len(data) != len(defs) {
			return nil, fmt.Errorf("%w: got %d fields, expected %d", ErrFieldMismatch, len(data), len(defs))
		}
		for _, def := range defs {
			item, ok := data[def.Name]
			if !ok {
				return nil, fmt.Errorf("%w: missing field %s", ErrFieldMismatch, def.Name)
			}
			v, err := fromJSON(registry, def.Type, item, depth+1)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", def.Name, err)
			}
			fields = append(fields, Field{Name: def.Name, Value: v})
		}
	case []interface{}:
		if len(data) != len(defs) {
			return nil, fmt.Errorf("%w: got %d fields, expected %d", ErrFieldMismatch, len(data), len(defs))
		}
		for i, def := range defs {
			v, err := fromJSON(registry, def.Type, data[i], depth+1)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: def.Name, Value: v})
		}
	default:
		return nil, fmt.Errorf("%w: expected object or array for fields", ErrInvalidJSON)
	}
	return fields, nil
}

func variantFromJSON(x interface{}) (name string, data interface{}, err error) {
	switch v := x.(type) {
	case string:
		return v, nil, nil
	case map[string]interface{}:
		if len(v) != 1 {
			return "", nil, fmt.Errorf("%w: variant object must have a single key", ErrInvalidJSON)
		}
		for key, value := range v {
			return key, value, nil
		}
	}
	return "", nil, fmt.Errorf("%w: expected string or object for variant", ErrInvalidJSON)
}

func primitiveFromJSON(p metadata.Primitive, x interface{}) (Value, error) {
	switch p {
	case metadata.Bool:
		b, ok := x.(bool)
		if !ok {
			return Value{}, fmt.Errorf("%w: expected bool", ErrInvalidJSON)
		}
		return Bool(b), nil
	case metadata.Str:
		s, ok := x.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: expected string", ErrInvalidJSON)
		}
		return String(s), nil
	case metadata.Char:
		s, ok := x.(string)
		if !ok || len([]rune(s)) != 1 {
			return Value{}, fmt.Errorf("%w: expected single character string", ErrInvalidJSON)
		}
		return Value{Kind: KindInt, Int: big.NewInt(int64([]rune(s)[0]))}, nil
	default:
		n, err := intFromJSON(x)
		if err != nil {
			return Value{}, err
		}
		if _, err := intToLE(n, p.Size(), isSigned(p)); err != nil {
			return Value{}, fmt.Errorf("%s: %w", p, err)
		}
		return BigInt(n), nil
	}
}

func intFromJSON(x interface{}) (*big.Int, error) {
	var s string
	switch v := x.(type) {
	case json.Number:
		s = v.String()
	case string:
		s = v
	default:
		return nil, fmt.Errorf("%w: expected integer", ErrInvalidJSON)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidJSON, s)
	}
	return n, nil
}

func bitsFromJSON(x interface{}) (Value, error) {
	switch v := x.(type) {
	case string:
		if !strings.HasPrefix(v, "0b") {
			return Value{}, fmt.Errorf("%w: bit strings must be 0b prefixed", ErrInvalidJSON)
		}
		bits := make([]bool, 0, len(v)-2)
		for _, c := range v[2:] {
			switch c {
			case '0':
				bits = append(bits, false)
			case '1':
				bits = append(bits, true)
			default:
				return Value{}, fmt.Errorf("%w: invalid bit %q", ErrInvalidJSON, c)
			}
		}
		return Bits(bits), nil
	case []interface{}:
		bits := make([]bool, 0, len(v))
		for _, item := range v {
			b, ok := item.(bool)
			if !ok {
				return Value{}, fmt.Errorf("%w: expected bool in bit array", ErrInvalidJSON)
			}
			bits = append(bits, b)
		}
		return Bits(bits), nil
	default:
		return Value{}, fmt.Errorf("%w: expected bit string or array", ErrInvalidJSON)
	}
}
