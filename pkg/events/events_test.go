// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package events_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/events"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/metadata/metadatatest"
	"github.com/ChainSafe/gosubxt/pkg/rpc"
	"github.com/ChainSafe/gosubxt/pkg/storage"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/ChainSafe/gosubxt/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.MustHexToBytes("0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")
	bob   = common.MustHexToBytes("0x8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48")
)

type transfer struct {
	From   types.AccountID32
	To     types.AccountID32
	Amount types.U128
}

func (transfer) PalletName() string { return "Balances" }
func (transfer) EventName() string  { return "Transfer" }

type codeUpdated struct{}

func (codeUpdated) PalletName() string { return "System" }
func (codeUpdated) EventName() string  { return "CodeUpdated" }

type remarked struct {
	Sender types.AccountID32
	Hash   types.H256
}

func (remarked) PalletName() string { return "System" }
func (remarked) EventName() string  { return "Remarked" }

func u128(v byte) []byte {
	b := make([]byte, 16)
	b[0] = v
	return b
}

// blockEvents encodes four records: a transfer and a success for
// extrinsic 1, a module error failure for extrinsic 2 and a code update
// at finalization.
func blockEvents() []byte {
	encoded := []byte{0x10}

	encoded = append(encoded, 0, 1, 0, 0, 0, metadatatest.BalancesIndex, 2)
	encoded = append(encoded, alice...)
	encoded = append(encoded, bob...)
	encoded = append(encoded, u128(100)...)
	encoded = append(encoded, 0)

	encoded = append(encoded, 0, 1, 0, 0, 0, metadatatest.SystemIndex, 0)
	encoded = append(encoded, 0, 0, 0, 0)
	encoded = append(encoded, 0)

	encoded = append(encoded, 0, 2, 0, 0, 0, metadatatest.SystemIndex, 1)
	encoded = append(encoded, 3, metadatatest.BalancesIndex, 2, 0, 0, 0)
	encoded = append(encoded, 0, 0, 0, 0)
	encoded = append(encoded, 4)
	for i := 0; i < 32; i++ {
		encoded = append(encoded, 0xaa)
	}

	encoded = append(encoded, 1, metadatatest.SystemIndex, 2)
	encoded = append(encoded, 0)
	return encoded
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	evs, err := events.Decode(metadatatest.New(15), blockEvents())
	require.NoError(t, err)
	require.Equal(t, 4, evs.Len())

	all := evs.All()
	expected := []struct {
		pallet, event string
		phase         events.Phase
	}{
		{"Balances", "Transfer", events.Phase{Kind: events.PhaseApplyExtrinsic, ExtrinsicIndex: 1}},
		{"System", "ExtrinsicSuccess", events.Phase{Kind: events.PhaseApplyExtrinsic, ExtrinsicIndex: 1}},
		{"System", "ExtrinsicFailed", events.Phase{Kind: events.PhaseApplyExtrinsic, ExtrinsicIndex: 2}},
		{"System", "CodeUpdated", events.Phase{Kind: events.PhaseFinalization}},
	}
	for i, e := range expected {
		assert.Equal(t, i, all[i].Index)
		assert.Equal(t, e.pallet, all[i].PalletName())
		assert.Equal(t, e.event, all[i].EventName())
		assert.Equal(t, e.phase, all[i].Phase)
	}

	assert.Len(t, all[0].FieldBytes(), 32+32+16)
	assert.Empty(t, all[3].FieldBytes())
	require.Len(t, all[2].Topics, 1)
	assert.Equal(t, byte(0xaa), all[2].Topics[0][31])
	assert.Equal(t, "System.CodeUpdated at Finalization", all[3].String())
}

func Test_Decode_Errors(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	encoded := blockEvents()

	_, err := events.Decode(md, encoded[:len(encoded)-1])
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = events.Decode(md, nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = events.Decode(md, append(encoded, 0))
	assert.ErrorContains(t, err, "trailing bytes")

	_, err = events.Decode(md, []byte{4, 0, 1, 0, 0, 0, 99, 0, 0})
	assert.ErrorIs(t, err, metadata.ErrPalletNotFound)

	_, err = events.Decode(md, []byte{4, 0, 1, 0, 0, 0, metadatatest.SystemIndex, 42, 0})
	assert.ErrorIs(t, err, metadata.ErrEventNotFound)

	_, err = events.Decode(md, []byte{0xfc})
	assert.ErrorContains(t, err, "exceeds")

	empty, err := events.Decode(md, []byte{0})
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func Test_Find(t *testing.T) {
	t.Parallel()

	evs, err := events.Decode(metadatatest.New(15), blockEvents())
	require.NoError(t, err)

	first, found, err := events.FindFirst[transfer](evs)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, alice, first.From.ToBytes())
	assert.Equal(t, bob, first.To.ToBytes())
	assert.Equal(t, uint64(100), first.Amount.Uint64())

	transfers, err := events.Find[transfer](evs)
	require.NoError(t, err)
	assert.Len(t, transfers, 1)

	updates, err := events.Find[codeUpdated](evs)
	require.NoError(t, err)
	assert.Len(t, updates, 1)

	assert.True(t, events.Has[transfer](evs))
	assert.False(t, events.Has[remarked](evs))
	_, found, err = events.FindFirst[remarked](evs)
	require.NoError(t, err)
	assert.False(t, found)

	details, ok := evs.FindFirstDetails("Balances", "Transfer")
	require.True(t, ok)
	fields, err := details.FieldValues()
	require.NoError(t, err)
	amount, ok := fields.Field("amount")
	require.True(t, ok)
	n, ok := amount.AsUint()
	require.True(t, ok)
	assert.Equal(t, uint64(100), n)
}

func Test_Events_DispatchResult(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	evs, err := events.Decode(md, blockEvents())
	require.NoError(t, err)

	first := evs.ForExtrinsic(1)
	assert.Equal(t, 2, first.Len())
	assert.NoError(t, first.DispatchResult())

	err = evs.ForExtrinsic(2).DispatchResult()
	var dispatchError *events.DispatchError
	require.ErrorAs(t, err, &dispatchError)
	assert.Equal(t, "Module", dispatchError.Kind)
	assert.Equal(t, "Balances", dispatchError.Pallet)
	assert.Equal(t, "InsufficientBalance", dispatchError.Name)
	assert.EqualError(t, err, "module error: Balances.InsufficientBalance: Balance too low to send value.")
	assert.ErrorIs(t, err, &events.DispatchError{Pallet: "Balances", Name: "InsufficientBalance"})
	assert.NotErrorIs(t, err, &events.DispatchError{Name: "VestingBalance"})

	assert.ErrorIs(t, evs.ForExtrinsic(3).DispatchResult(), events.ErrNoOutcome)

	details, ok := evs.FindFirstDetails("System", "CodeUpdated")
	require.True(t, ok)
	_, err = details.DispatchError(md)
	assert.Error(t, err)
}

func Test_NewDispatchError(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)

	badOrigin := events.NewDispatchError(md, value.Variant("BadOrigin"))
	assert.EqualError(t, badOrigin, "dispatch error: BadOrigin")

	token := events.NewDispatchError(md, value.Variant("Token", value.Unnamed(value.Variant("FundsUnavailable"))))
	assert.EqualError(t, token, "dispatch error: Token(FundsUnavailable)")
	assert.True(t, errors.Is(token, &events.DispatchError{Kind: "Token"}))

	legacy := events.NewDispatchError(md, value.Variant("Module", value.Unnamed(value.Composite(
		value.Named("index", value.Uint(uint64(metadatatest.SystemIndex))),
		value.Named("error", value.Uint(5)),
	))))
	assert.Equal(t, "System", legacy.Pallet)
	assert.Equal(t, "CallFiltered", legacy.Name)

	unknown := events.NewDispatchError(md, value.Variant("Module", value.Unnamed(value.Composite(
		value.Named("index", value.Uint(99)),
		value.Named("error", value.Bytes([]byte{0, 0, 0, 0})),
	))))
	assert.Empty(t, unknown.Pallet)
	assert.Contains(t, unknown.Error(), "dispatch error: Module")
}

type eventsStorage struct {
	events []byte
}

func (s eventsStorage) Storage(_ context.Context, key []byte, _ *common.Hash) ([]byte, bool, error) {
	expected, err := events.Address.Bytes()
	if err != nil || string(key) != string(expected) {
		return nil, false, errors.New("unexpected key")
	}
	return s.events, s.events != nil, nil
}

func (eventsStorage) StorageKeysPaged(context.Context, []byte, uint32, []byte, *common.Hash) ([][]byte, error) {
	return nil, nil
}

func (eventsStorage) QueryStorageAt(context.Context, [][]byte, *common.Hash) ([]rpc.StorageChangeSet, error) {
	return nil, nil
}

func Test_Client_At(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	block := common.Hash{1}

	client := events.NewClient(md, storage.NewClient(md, eventsStorage{events: blockEvents()}, 0))
	evs, err := client.At(context.Background(), block)
	require.NoError(t, err)
	assert.Equal(t, 4, evs.Len())

	client = events.NewClient(md, storage.NewClient(md, eventsStorage{}, 0))
	evs, err = client.At(context.Background(), block)
	require.NoError(t, err)
	assert.Zero(t, evs.Len())
}
