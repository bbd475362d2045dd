// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package value_test

import (
	"io"
	"math/big"
	"testing"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/metadata/metadatatest"
	"github.com/ChainSafe/gosubxt/pkg/value"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = common.MustHexToBytes("0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")

func transferKeepAliveCall() []byte {
	encoded := []byte{metadatatest.BalancesIndex, 3, 0}
	encoded = append(encoded, alice...)
	// compact 12345
	return append(encoded, 0xe5, 0xc0)
}

func Test_Decode_AccountInfoDefault(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)
	entry, err := md.StorageEntry("System", "Account")
	require.NoError(t, err)

	v, n, err := value.Decode(md.Types, entry.ValueType, append(entry.Default, 0xff))
	require.NoError(t, err)
	assert.Equal(t, 80, n)

	nonce, ok := v.Field("nonce")
	require.True(t, ok)
	assert.Equal(t, "0", nonce.String())

	data, ok := v.Field("data")
	require.True(t, ok)
	free, ok := data.Field("free")
	require.True(t, ok)
	assert.Equal(t, 0, free.Int.Sign())
}

func Test_Decode_EventRecords(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	entry, err := md.StorageEntry("System", "Events")
	require.NoError(t, err)

	bob := make([]byte, 32)
	bob[0] = 0x8e
	encoded := []byte{4, 0, 1, 0, 0, 0, metadatatest.BalancesIndex, 2}
	encoded = append(encoded, alice...)
	encoded = append(encoded, bob...)
	encoded = append(encoded, 100, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	encoded = append(encoded, 0)

	v, err := value.DecodeAll(md.Types, entry.ValueType, encoded)
	require.NoError(t, err)
	require.Len(t, v.Items, 1)

	record := v.Items[0]
	phase, ok := record.Field("phase")
	require.True(t, ok)
	assert.Equal(t, "ApplyExtrinsic(1)", phase.String())

	event, ok := record.Field("event")
	require.True(t, ok)
	assert.Equal(t, "Balances", event.Name)
	assert.Equal(t, metadatatest.BalancesIndex, event.Index)

	transfer := event.Fields[0].Value
	assert.Equal(t, "Transfer", transfer.Name)
	amount, ok := transfer.Field("amount")
	require.True(t, ok)
	got, ok := amount.AsUint()
	require.True(t, ok)
	assert.Equal(t, uint64(100), got)

	from, ok := transfer.Field("from")
	require.True(t, ok)
	fromBytes, ok := from.AsBytes()
	require.True(t, ok)
	assert.Equal(t, alice, fromBytes)
}

func Test_EncodeDecode_Call(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)
	callType, ok := md.CallEnumType()
	require.True(t, ok)

	call := value.Variant("Balances", value.Unnamed(
		value.Variant("transfer_keep_alive",
			value.Named("dest", value.Variant("Id", value.Unnamed(value.Bytes(alice)))),
			value.Named("value", value.Uint(12345)),
		),
	))

	encoded, err := value.Encode(md.Types, callType, call)
	require.NoError(t, err)
	assert.Equal(t, transferKeepAliveCall(), encoded)

	decoded, err := value.DecodeAll(md.Types, callType, encoded)
	require.NoError(t, err)
	reencoded, err := value.Encode(md.Types, callType, decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}

func Test_FromJSON_Call(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	callType, ok := md.CallEnumType()
	require.True(t, ok)

	v, err := value.FromJSON(md.Types, callType, []byte(`{"Balances": {"transfer_keep_alive": {
		"dest": {"Id": "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"},
		"value": 12345
	}}}`))
	require.NoError(t, err)

	encoded, err := value.Encode(md.Types, callType, v)
	require.NoError(t, err)
	assert.Equal(t, transferKeepAliveCall(), encoded)

	hexDest, err := value.FromJSON(md.Types, callType, []byte(`{"Balances": {"transfer_keep_alive": {
		"dest": {"Id": "`+common.BytesToHex(alice)+`"},
		"value": "12345"
	}}}`))
	require.NoError(t, err)
	encoded, err = value.Encode(md.Types, callType, hexDest)
	require.NoError(t, err)
	assert.Equal(t, transferKeepAliveCall(), encoded)
}

func Test_FromJSON_Errors(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	callType, ok := md.CallEnumType()
	require.True(t, ok)

	testCases := map[string]struct {
		json    string
		errWrap error
	}{
		"unknown pallet": {
			json:    `{"Staking": {"bond": []}}`,
			errWrap: value.ErrUnknownVariant,
		},
		"two keys": {
			json:    `{"Balances": 1, "System": 2}`,
			errWrap: value.ErrInvalidJSON,
		},
		"missing field": {
			json:    `{"System": {"set_heap_pages": {}}}`,
			errWrap: value.ErrFieldMismatch,
		},
		"not an integer": {
			json:    `{"System": {"set_heap_pages": {"pages": "many"}}}`,
			errWrap: value.ErrInvalidJSON,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := value.FromJSON(md.Types, callType, []byte(testCase.json))
			assert.ErrorIs(t, err, testCase.errWrap)
		})
	}
}

func Test_Primitives(t *testing.T) {
	t.Parallel()

	b := metadatatest.NewBuilder()
	i8 := b.Primitive(metadata.I8)
	i128 := b.Primitive(metadata.I128)
	u8 := b.Primitive(metadata.U8)
	u256 := b.Primitive(metadata.U256)
	str := b.Primitive(metadata.Str)
	boolean := b.Primitive(metadata.Bool)
	char := b.Primitive(metadata.Char)
	md := b.Build(15)

	testCases := map[string]struct {
		typeID  uint32
		value   value.Value
		encoded []byte
	}{
		"negative i8": {
			typeID:  i8,
			value:   value.Int(-2),
			encoded: []byte{0xfe},
		},
		"negative i128": {
			typeID:  i128,
			value:   value.Int(-1),
			encoded: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
		"u256": {
			typeID:  u256,
			value:   value.BigInt(new(big.Int).Lsh(big.NewInt(1), 255)),
			encoded: append(make([]byte, 31), 0x80),
		},
		"str": {
			typeID:  str,
			value:   value.String("dot"),
			encoded: []byte{12, 'd', 'o', 't'},
		},
		"bool": {
			typeID:  boolean,
			value:   value.Bool(true),
			encoded: []byte{1},
		},
		"char": {
			typeID:  char,
			value:   value.Uint('a'),
			encoded: []byte{'a', 0, 0, 0},
		},
		"u8": {
			typeID:  u8,
			value:   value.Uint(255),
			encoded: []byte{255},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded, err := value.Encode(md.Types, testCase.typeID, testCase.value)
			require.NoError(t, err)
			assert.Equal(t, testCase.encoded, encoded)

			decoded, err := value.DecodeAll(md.Types, testCase.typeID, encoded)
			require.NoError(t, err)
			assert.Equal(t, testCase.value.String(), decoded.String())
		})
	}

	_, err := value.Encode(md.Types, u8, value.Uint(256))
	assert.ErrorIs(t, err, value.ErrOutOfRange)
	_, err = value.Encode(md.Types, i8, value.Int(-129))
	assert.ErrorIs(t, err, value.ErrOutOfRange)
	_, err = value.Encode(md.Types, boolean, value.Uint(1))
	assert.ErrorIs(t, err, value.ErrKindMismatch)
	_, err = value.DecodeAll(md.Types, boolean, []byte{2})
	assert.ErrorIs(t, err, value.ErrInvalidBool)
}

func Test_BitSequence(t *testing.T) {
	t.Parallel()

	b := metadatatest.NewBuilder()
	u8 := b.Primitive(metadata.U8)
	lsb := b.BitSequence(u8, b.Composite([]string{"bitvec", "order", "Lsb0"}))
	msb := b.BitSequence(u8, b.Composite([]string{"bitvec", "order", "Msb0"}))
	md := b.Build(14)

	bits := value.Bits([]bool{true, false, true, true, false, false, false, false, true})

	encoded, err := value.Encode(md.Types, lsb, bits)
	require.NoError(t, err)
	assert.Equal(t, []byte{36, 0x0d, 0x01}, encoded)

	encoded, err = value.Encode(md.Types, msb, bits)
	require.NoError(t, err)
	assert.Equal(t, []byte{36, 0xb0, 0x80}, encoded)

	decoded, err := value.DecodeAll(md.Types, msb, encoded)
	require.NoError(t, err)
	assert.Equal(t, "0b101100001", decoded.String())
}

func Test_Decode_Errors(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)
	callType, ok := md.CallEnumType()
	require.True(t, ok)

	_, _, err := value.Decode(md.Types, callType, []byte{42})
	assert.ErrorIs(t, err, value.ErrUnknownVariant)

	_, _, err = value.Decode(md.Types, callType, []byte{metadatatest.BalancesIndex, 3})
	assert.Error(t, err)

	_, err = value.DecodeAll(md.Types, callType, append(transferKeepAliveCall(), 0))
	assert.EqualError(t, err, "decoding type "+itoa(callType)+": 1 trailing bytes")

	n, err := value.Skip(md.Types, callType, append(transferKeepAliveCall(), 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, len(transferKeepAliveCall()), n)
}

func Test_Decode_TruncatedLength(t *testing.T) {
	t.Parallel()

	b := metadatatest.NewBuilder()
	bytesType := b.Sequence(b.Primitive(metadata.U8))
	md := b.Build(15)

	_, n, err := value.Decode(md.Types, bytesType, nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Zero(t, n)

	_, err = value.Skip(md.Types, bytesType, []byte{0x01})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, _, err = value.Decode(md.Types, bytesType, []byte{0x08, 1})
	assert.ErrorIs(t, err, value.ErrLengthOverflow)

	n, err = value.Skip(md.Types, bytesType, []byte{0x04, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func Test_Value_JSON(t *testing.T) {
	t.Parallel()

	v := value.Variant("Transfer",
		value.Named("from", value.Composite(value.Unnamed(value.Bytes([]byte{1, 2})))),
		value.Named("amount", value.Uint(7)),
	)
	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"Transfer": {"from": "0x0102", "amount": 7}}`, string(data))

	data, err = value.Variant("Normal").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"Normal"`, string(data))

	assert.Equal(t, "Transfer { from: 0x0102, amount: 7 }", v.String())
}

func itoa(v uint32) string {
	return big.NewInt(int64(v)).String()
}
