// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"context"
	"testing"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/events"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/metadata/metadatatest"
	"github.com/ChainSafe/gosubxt/pkg/rpc"
	"github.com/ChainSafe/gosubxt/pkg/rpc/mocks"
	"github.com/ChainSafe/gosubxt/pkg/storage"
	"github.com/ChainSafe/gosubxt/pkg/types"
	"github.com/ChainSafe/gosubxt/pkg/value"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice       = common.MustHexToBytes("0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")
	genesisHash = common.MustHexToHash("0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3")
)

const (
	specVersion = 9430
	txVersion   = 26
)

type remark struct {
	Remark []byte
}

func (remark) PalletName() string { return "System" }
func (remark) CallName() string   { return "remark" }

type badRemark struct {
	Remark []byte
	Extra  []byte
}

func (badRemark) PalletName() string { return "System" }
func (badRemark) CallName() string   { return "remark" }

type offlineClient struct {
	md *metadata.Metadata
}

func (c offlineClient) Metadata() *metadata.Metadata { return c.md }
func (offlineClient) GenesisHash() common.Hash       { return genesisHash }
func (offlineClient) RuntimeVersion() rpc.RuntimeVersion {
	return rpc.RuntimeVersion{SpecVersion: specVersion, TransactionVersion: txVersion}
}

type onlineClient struct {
	offlineClient
	methods *rpc.Methods
}

func (c onlineClient) Methods() *rpc.Methods { return c.methods }
func (c onlineClient) Events() *events.Client {
	return events.NewClient(c.md, storage.NewClient(c.md, c.methods, 0))
}

func aliceAddress() []byte {
	return append([]byte{0}, alice...)
}

func testSignature() []byte {
	signature := []byte{1}
	for i := 0; i < 64; i++ {
		signature = append(signature, 2)
	}
	return signature
}

func Test_EncodeCall(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)

	encoded, err := EncodeCall(md, remark{Remark: []byte{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []byte{metadatatest.SystemIndex, 0, 8, 1, 2}, encoded)

	encoded, err = EncodeCall(md, &remark{Remark: []byte{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []byte{metadatatest.SystemIndex, 0, 8, 1, 2}, encoded)

	_, err = EncodeCall(md, badRemark{})
	assert.ErrorIs(t, err, ErrFieldCount)

	_, err = EncodeCall(md, NewDynamicCall("System", "nope"))
	assert.ErrorIs(t, err, metadata.ErrCallNotFound)
}

func transferKeepAliveCall() []byte {
	encoded := []byte{metadatatest.BalancesIndex, 3, 0}
	encoded = append(encoded, alice...)
	return append(encoded, 0xe5, 0xc0)
}

func Test_DynamicCall(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(14)

	call := NewDynamicCall("Balances", "transfer_keep_alive",
		value.Named("value", value.Uint(12345)),
		value.Named("dest", value.Variant("Id", value.Unnamed(value.Bytes(alice)))),
	)
	encoded, err := EncodeCall(md, call)
	require.NoError(t, err)
	assert.Equal(t, transferKeepAliveCall(), encoded)

	positional := NewDynamicCall("Balances", "transfer_keep_alive",
		value.Unnamed(value.Variant("Id", value.Unnamed(value.Bytes(alice)))),
		value.Unnamed(value.Uint(12345)),
	)
	encoded, err = EncodeCall(md, positional)
	require.NoError(t, err)
	assert.Equal(t, transferKeepAliveCall(), encoded)

	_, err = EncodeCall(md, NewDynamicCall("Balances", "transfer_keep_alive", value.Named("value", value.Uint(1))))
	assert.ErrorIs(t, err, ErrFieldCount)
}

func Test_DynamicCallFromJSON(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)

	testCases := map[string]string{
		"object": `{"dest": {"Id": "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"}, "value": 12345}`,
		"array":  `[{"Id": "` + common.BytesToHex(alice) + `"}, "12345"]`,
	}

	for name, args := range testCases {
		args := args
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			call, err := DynamicCallFromJSON(md, "Balances", "transfer_keep_alive", []byte(args))
			require.NoError(t, err)
			encoded, err := EncodeCall(md, call)
			require.NoError(t, err)
			assert.Equal(t, transferKeepAliveCall(), encoded)
		})
	}

	_, err := DynamicCallFromJSON(md, "Balances", "transfer_keep_alive", []byte(`{"value": 1}`))
	assert.ErrorContains(t, err, `missing field "dest"`)

	_, err = DynamicCallFromJSON(md, "Balances", "transfer_keep_alive", []byte(`[1]`))
	assert.ErrorIs(t, err, ErrFieldCount)

	_, err = DynamicCallFromJSON(md, "Balances", "transfer_keep_alive", []byte(`1`))
	assert.Error(t, err)
}

func Test_Submittable_Unsigned(t *testing.T) {
	t.Parallel()

	submittable := NewTransactionAPI(offlineClient{md: metadatatest.New(15)}).
		Submittable(remark{Remark: []byte{1, 2}})

	encoded, err := submittable.Unsigned()
	require.NoError(t, err)
	assert.Equal(t, []byte{24, 4, metadatatest.SystemIndex, 0, 8, 1, 2}, encoded)
}

func Test_Submittable_CreateSigned(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	call := []byte{metadatatest.SystemIndex, 0, 8, 1, 2}
	extra := []byte{0, 0x14, 0, 0}
	additional := common.Concat(
		[]byte{0xd6, 0x24, 0, 0},
		[]byte{26, 0, 0, 0},
		genesisHash.ToBytes(),
		genesisHash.ToBytes(),
		[]byte{0},
	)

	signer := NewMockSigner(ctrl)
	signer.EXPECT().Sign(common.Concat(call, extra, additional)).Return(testSignature(), nil)
	signer.EXPECT().Address().Return(aliceAddress())

	submittable := NewSubmittable(offlineClient{md: metadatatest.New(15)}, remark{Remark: []byte{1, 2}})
	extrinsic, err := submittable.CreateSigned(context.Background(), signer,
		Params{}.WithNonce(5).WithImmortal())
	require.NoError(t, err)

	body := common.Concat([]byte{0x84}, aliceAddress(), testSignature(), extra, call)
	require.Len(t, body, 108)
	expected := common.Concat([]byte{0xb1, 0x01}, body)
	assert.Equal(t, expected, extrinsic.Encoded())
	assert.Equal(t, common.Blake2bHash(expected), extrinsic.Hash())

	_, err = extrinsic.Submit(context.Background())
	assert.ErrorIs(t, err, ErrOffline)
}

func Test_Submittable_CreateSigned_HashedPayload(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	long := make([]byte, 300)
	call, err := EncodeCall(metadatatest.New(15), remark{Remark: long})
	require.NoError(t, err)

	extra := []byte{0xa5, 0x02, 0x14, 0, 0}
	checkpoint := common.Hash{0xcc}
	additional := common.Concat(
		[]byte{0xd6, 0x24, 0, 0},
		[]byte{26, 0, 0, 0},
		genesisHash.ToBytes(),
		checkpoint.ToBytes(),
		[]byte{0},
	)
	payload := common.Blake2bHash(common.Concat(call, extra, additional)).ToBytes()

	signer := NewMockSigner(ctrl)
	signer.EXPECT().Sign(payload).Return(testSignature(), nil)
	signer.EXPECT().Address().Return(aliceAddress())

	submittable := NewSubmittable(offlineClient{md: metadatatest.New(15)}, remark{Remark: long})
	params := Params{}.WithNonce(5).WithMortality(64, &Checkpoint{Number: 42, Hash: checkpoint})
	_, err = submittable.CreateSigned(context.Background(), signer, params)
	require.NoError(t, err)
}

func Test_Submittable_CreateSigned_Offline(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	signer := NewMockSigner(ctrl)
	submittable := NewSubmittable(offlineClient{md: metadatatest.New(15)}, remark{})

	_, err := submittable.CreateSigned(context.Background(), signer, Params{})
	assert.ErrorIs(t, err, ErrOffline)

	_, err = submittable.CreateSigned(context.Background(), signer, Params{}.WithNonce(1))
	assert.ErrorIs(t, err, ErrOffline)
}

func Test_buildExtra_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	u32 := md.Extrinsic.SignedExtensions[1].AdditionalSigned
	unit := md.Extrinsic.SignedExtensions[0].AdditionalSigned
	md.Extrinsic.SignedExtensions = append(md.Extrinsic.SignedExtensions,
		metadata.SignedExtension{Identifier: "CheckNothing", Type: unit, AdditionalSigned: unit})

	_, err := buildExtra(md, extensionInputs{})
	require.NoError(t, err)

	md.Extrinsic.SignedExtensions = append(md.Extrinsic.SignedExtensions,
		metadata.SignedExtension{Identifier: "CheckSomething", Type: u32, AdditionalSigned: unit})
	_, err = buildExtra(md, extensionInputs{})
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
}

func Test_Submittable_SignAndSubmitThenWatch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	md := metadatatest.New(15)
	finalizedHead := common.Hash{0xf0}
	blockHash := common.Hash{0xb0}
	accountID, err := types.NewAccountID32(alice)
	require.NoError(t, err)

	signer := NewMockSigner(ctrl)
	signer.EXPECT().AccountID().Return(accountID)
	signer.EXPECT().Address().Return(aliceAddress())
	signer.EXPECT().Sign(gomock.Any()).Return(testSignature(), nil)

	errs := make(chan error)
	sub := mocks.NewMockSubscription(ctrl)
	sub.EXPECT().Err().Return((<-chan error)(errs)).AnyTimes()
	sub.EXPECT().Unsubscribe()

	eventsKey, err := events.Address.Bytes()
	require.NoError(t, err)
	blockEvents := []byte{4, 0, 1, 0, 0, 0, metadatatest.SystemIndex, 0, 0, 0, 0, 0, 0}

	var submitted string
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Call(gomock.Any(), gomock.Any(), "system_accountNextIndex", accountID.ToSS58(42)).
		DoAndReturn(func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
			*result.(*uint64) = 7
			return nil
		})
	client.EXPECT().Call(gomock.Any(), gomock.Any(), "chain_getFinalizedHead").
		DoAndReturn(func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
			*result.(*common.Hash) = finalizedHead
			return nil
		})
	client.EXPECT().Call(gomock.Any(), gomock.Any(), "chain_getHeader", finalizedHead.String()).
		DoAndReturn(func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
			*result.(*rpc.Header) = rpc.Header{Number: 100}
			return nil
		})
	client.EXPECT().Subscribe(gomock.Any(), "author", "submitAndWatchExtrinsic", "unwatchExtrinsic",
		"extrinsicUpdate", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _ string, channel interface{},
			args ...interface{}) (rpc.Subscription, error) {
			submitted = args[0].(string)
			statuses := channel.(chan rpc.ExtrinsicStatus)
			statuses <- rpc.ExtrinsicStatus{Kind: rpc.StatusReady}
			statuses <- rpc.ExtrinsicStatus{Kind: rpc.StatusInBlock, Hash: blockHash}
			statuses <- rpc.ExtrinsicStatus{Kind: rpc.StatusFinalized, Hash: blockHash}
			return sub, nil
		})
	client.EXPECT().Call(gomock.Any(), gomock.Any(), "chain_getBlock", blockHash.String()).
		DoAndReturn(func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
			extrinsic := rpc.HexBytes(common.MustHexToBytes(submitted))
			*result.(*rpc.SignedBlock) = rpc.SignedBlock{Block: rpc.Block{
				Extrinsics: []rpc.HexBytes{{0x10}, extrinsic},
			}}
			return nil
		})
	client.EXPECT().Call(gomock.Any(), gomock.Any(), "state_getStorage",
		common.BytesToHex(eventsKey), blockHash.String()).
		DoAndReturn(func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
			stored := rpc.HexBytes(blockEvents)
			*result.(**rpc.HexBytes) = &stored
			return nil
		})

	backend := onlineClient{offlineClient: offlineClient{md: md}, methods: rpc.NewMethods(client)}
	submittable := NewTransactionAPI(backend).Submittable(remark{Remark: []byte{1}})

	ctx := context.Background()
	progress, err := submittable.SignAndSubmitThenWatch(ctx, signer, Params{})
	require.NoError(t, err)

	extrinsicEvents, err := progress.WaitForFinalizedSuccess(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, extrinsicEvents.Len())
	assert.Equal(t, common.Blake2bHash(common.MustHexToBytes(submitted)), progress.ExtrinsicHash())

	_, err = progress.Next(ctx)
	assert.ErrorIs(t, err, ErrStreamEnded)
}

func Test_Progress_Dropped(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	errs := make(chan error)
	sub := mocks.NewMockSubscription(ctrl)
	sub.EXPECT().Err().Return((<-chan error)(errs)).AnyTimes()
	sub.EXPECT().Unsubscribe()

	statuses := make(chan rpc.ExtrinsicStatus, 2)
	statuses <- rpc.ExtrinsicStatus{Kind: rpc.StatusBroadcast, Peers: []string{"peer"}}
	statuses <- rpc.ExtrinsicStatus{Kind: rpc.StatusDropped}

	progress := &Progress{stream: rpc.NewStream[rpc.ExtrinsicStatus](statuses, sub)}
	_, err := progress.WaitForInBlock(context.Background())
	assert.ErrorIs(t, err, ErrDropped)

	progress.Unsubscribe()
}
