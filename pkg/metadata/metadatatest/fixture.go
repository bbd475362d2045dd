// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadatatest

import (
	"encoding/binary"
	"strconv"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
)

// Fixture pallet indexes, matching polkadot.
const (
	SystemIndex   uint8 = 0
	BalancesIndex uint8 = 5
	MultisigIndex uint8 = 30
)

// ExistentialDeposit is the Balances.ExistentialDeposit constant of the fixture.
const ExistentialDeposit uint64 = 10_000_000_000

// BlockHashCount is the System.BlockHashCount constant of the fixture.
const BlockHashCount uint32 = 4096

// New returns a small polkadot-like runtime metadata with the System,
// Balances and Multisig pallets, in version 14 or 15.
func New(version uint8) *metadata.Metadata {
	b := NewBuilder()

	boolean := b.Primitive(metadata.Bool)
	str := b.Primitive(metadata.Str)
	u8 := b.Primitive(metadata.U8)
	u16 := b.Primitive(metadata.U16)
	u32 := b.Primitive(metadata.U32)
	u64 := b.Primitive(metadata.U64)
	u128 := b.Primitive(metadata.U128)

	bytes32 := b.Array(32, u8)
	bytes4 := b.Array(4, u8)
	bytes64 := b.Array(64, u8)
	bytes65 := b.Array(65, u8)
	bytes20 := b.Array(20, u8)
	bytes := b.Sequence(u8)
	unit := b.Tuple()

	h256 := b.Composite([]string{"primitive_types", "H256"}, F("", bytes32))
	accountID := b.Composite([]string{"sp_core", "crypto", "AccountId32"}, F("", bytes32))
	compactU32 := b.Compact(u32)
	compactU64 := b.Compact(u64)
	compactU128 := b.Compact(u128)

	multiAddress := b.Params(b.Variant([]string{"sp_runtime", "multiaddress", "MultiAddress"},
		V(0, "Id", F("", accountID)),
		V(1, "Index", F("", compactU32)),
		V(2, "Raw", F("", bytes)),
		V(3, "Address32", F("", bytes32)),
		V(4, "Address20", F("", bytes20)),
	), P("AccountId", accountID), P("AccountIndex", unit))

	extraFlags := b.Composite([]string{"pallet_balances", "types", "ExtraFlags"}, F("", u128))
	accountData := b.Params(b.Composite([]string{"pallet_balances", "types", "AccountData"},
		F("free", u128),
		F("reserved", u128),
		F("frozen", u128),
		F("flags", extraFlags),
	), P("Balance", u128))
	accountInfo := b.Params(b.Composite([]string{"frame_system", "AccountInfo"},
		F("nonce", u32),
		F("consumers", u32),
		F("providers", u32),
		F("sufficients", u32),
		F("data", accountData),
	), P("Nonce", u32), P("AccountData", accountData))

	weight := b.Composite([]string{"sp_weights", "weight_v2", "Weight"},
		F("ref_time", compactU64),
		F("proof_size", compactU64),
	)
	dispatchClass := b.Variant([]string{"frame_support", "dispatch", "DispatchClass"},
		V(0, "Normal"), V(1, "Operational"), V(2, "Mandatory"))
	pays := b.Variant([]string{"frame_support", "dispatch", "Pays"}, V(0, "Yes"), V(1, "No"))
	dispatchInfo := b.Composite([]string{"frame_support", "dispatch", "DispatchInfo"},
		F("weight", weight),
		F("class", dispatchClass),
		F("pays_fee", pays),
	)

	moduleError := b.Composite([]string{"sp_runtime", "ModuleError"},
		F("index", u8),
		F("error", bytes4),
	)
	tokenError := b.Variant([]string{"sp_runtime", "TokenError"},
		V(0, "FundsUnavailable"), V(1, "OnlyProvider"), V(2, "BelowMinimum"), V(3, "CannotCreate"))
	arithmeticError := b.Variant([]string{"sp_arithmetic", "ArithmeticError"},
		V(0, "Underflow"), V(1, "Overflow"), V(2, "DivisionByZero"))
	dispatchError := b.Variant([]string{"sp_runtime", "DispatchError"},
		V(0, "Other"),
		V(1, "CannotLookup"),
		V(2, "BadOrigin"),
		V(3, "Module", F("", moduleError)),
		V(4, "ConsumerRemaining"),
		V(5, "NoProviders"),
		V(6, "TooManyConsumers"),
		V(7, "Token", F("", tokenError)),
		V(8, "Arithmetic", F("", arithmeticError)),
	)

	systemCall := b.Params(b.Variant([]string{"frame_system", "pallet", "Call"},
		V(0, "remark", F("remark", bytes)),
		V(1, "set_heap_pages", F("pages", u64)),
		V(7, "remark_with_event", F("remark", bytes)),
	), P("T", unit))
	systemEvent := b.Params(b.Variant([]string{"frame_system", "pallet", "Event"},
		V(0, "ExtrinsicSuccess", F("dispatch_info", dispatchInfo)),
		V(1, "ExtrinsicFailed", F("dispatch_error", dispatchError), F("dispatch_info", dispatchInfo)),
		V(2, "CodeUpdated"),
		V(3, "NewAccount", F("account", accountID)),
		V(4, "KilledAccount", F("account", accountID)),
		V(5, "Remarked", F("sender", accountID), F("hash", h256)),
	), P("T", unit))
	systemError := b.Params(b.Variant([]string{"frame_system", "pallet", "Error"},
		V(0, "InvalidSpecName"),
		V(1, "SpecVersionNeedsToIncrease"),
		V(2, "FailedToExtractRuntimeVersion"),
		V(3, "NonDefaultComposite"),
		V(4, "NonZeroRefCount"),
		V(5, "CallFiltered"),
	), P("T", unit))
	b.Docs(systemError, "Error for the System pallet")

	balancesCall := b.Params(b.Variant([]string{"pallet_balances", "pallet", "Call"},
		V(0, "transfer_allow_death", F("dest", multiAddress), F("value", compactU128)),
		V(2, "force_transfer", F("source", multiAddress), F("dest", multiAddress), F("value", compactU128)),
		V(3, "transfer_keep_alive", F("dest", multiAddress), F("value", compactU128)),
		V(4, "transfer_all", F("dest", multiAddress), F("keep_alive", boolean)),
	), P("T", unit), P("I", unit))
	balancesEvent := b.Params(b.Variant([]string{"pallet_balances", "pallet", "Event"},
		V(0, "Endowed", F("account", accountID), F("free_balance", u128)),
		V(1, "DustLost", F("account", accountID), F("amount", u128)),
		V(2, "Transfer", F("from", accountID), F("to", accountID), F("amount", u128)),
		V(8, "Withdraw", F("who", accountID), F("amount", u128)),
	), P("T", unit), P("I", unit))
	balancesError := b.Params(b.Variant([]string{"pallet_balances", "pallet", "Error"},
		V(0, "VestingBalance"),
		V(1, "LiquidityRestrictions"),
		V(2, "InsufficientBalance"),
		V(3, "ExistentialDeposit"),
		V(4, "Expendability"),
	), P("T", unit), P("I", unit))
	errorType := b.types[balancesError]
	errorType.Def.Variants[2].Docs = []string{"Balance too low to send value."}

	multisigTimepoint := b.Composite([]string{"pallet_multisig", "Timepoint"},
		F("height", u32),
		F("index", u32),
	)
	multisig := b.Composite([]string{"pallet_multisig", "Multisig"},
		F("when", multisigTimepoint),
		F("deposit", u128),
		F("depositor", accountID),
		F("approvals", b.Sequence(accountID)),
	)
	multisigKey := b.Tuple(accountID, bytes32)

	runtimeCall := b.Variant([]string{"polkadot_runtime", "RuntimeCall"},
		V(SystemIndex, "System", F("", systemCall)),
		V(BalancesIndex, "Balances", F("", balancesCall)),
	)
	runtimeEvent := b.Variant([]string{"polkadot_runtime", "RuntimeEvent"},
		V(SystemIndex, "System", F("", systemEvent)),
		V(BalancesIndex, "Balances", F("", balancesEvent)),
	)
	runtimeError := b.Variant([]string{"polkadot_runtime", "RuntimeError"},
		V(SystemIndex, "System", F("", systemError)),
		V(BalancesIndex, "Balances", F("", balancesError)),
	)

	phase := b.Variant([]string{"frame_system", "Phase"},
		V(0, "ApplyExtrinsic", F("", u32)),
		V(1, "Finalization"),
		V(2, "Initialization"),
	)
	eventRecord := b.Params(b.Composite([]string{"frame_system", "EventRecord"},
		F("phase", phase),
		F("event", runtimeEvent),
		F("topics", b.Sequence(h256)),
	), P("E", runtimeEvent), P("T", h256))
	eventRecords := b.Sequence(eventRecord)

	mortalVariants := []metadata.Variant{V(0, "Immortal")}
	for i := 1; i < 256; i++ {
		mortalVariants = append(mortalVariants, V(uint8(i), "Mortal"+strconv.Itoa(i), F("", u8)))
	}
	era := b.Variant([]string{"sp_runtime", "generic", "era", "Era"}, mortalVariants...)
	mode := b.Variant([]string{"frame_metadata_hash_extension", "Mode"}, V(0, "Disabled"), V(1, "Enabled"))
	optionHash := b.Params(b.Variant([]string{"Option"},
		V(0, "None"),
		V(1, "Some", F("", bytes32)),
	), P("T", bytes32))

	checkNonZeroSender := b.Composite([]string{"frame_system", "extensions", "check_non_zero_sender", "CheckNonZeroSender"})
	checkSpecVersion := b.Composite([]string{"frame_system", "extensions", "check_spec_version", "CheckSpecVersion"})
	checkTxVersion := b.Composite([]string{"frame_system", "extensions", "check_tx_version", "CheckTxVersion"})
	checkGenesis := b.Composite([]string{"frame_system", "extensions", "check_genesis", "CheckGenesis"})
	checkMortality := b.Composite([]string{"frame_system", "extensions", "check_mortality", "CheckMortality"}, F("", era))
	checkNonce := b.Composite([]string{"frame_system", "extensions", "check_nonce", "CheckNonce"}, F("", compactU32))
	checkWeight := b.Composite([]string{"frame_system", "extensions", "check_weight", "CheckWeight"})
	chargeTransactionPayment := b.Composite([]string{"pallet_transaction_payment", "ChargeTransactionPayment"},
		F("", compactU128))
	prevalidateAttests := b.Composite([]string{"polkadot_runtime_common", "claims", "PrevalidateAttests"})
	checkMetadataHash := b.Composite([]string{"frame_metadata_hash_extension", "CheckMetadataHash"},
		F("mode", mode))

	extensions := []metadata.SignedExtension{
		{Identifier: "CheckNonZeroSender", Type: checkNonZeroSender, AdditionalSigned: unit},
		{Identifier: "CheckSpecVersion", Type: checkSpecVersion, AdditionalSigned: u32},
		{Identifier: "CheckTxVersion", Type: checkTxVersion, AdditionalSigned: u32},
		{Identifier: "CheckGenesis", Type: checkGenesis, AdditionalSigned: h256},
		{Identifier: "CheckMortality", Type: checkMortality, AdditionalSigned: h256},
		{Identifier: "CheckNonce", Type: checkNonce, AdditionalSigned: unit},
		{Identifier: "CheckWeight", Type: checkWeight, AdditionalSigned: unit},
		{Identifier: "ChargeTransactionPayment", Type: chargeTransactionPayment, AdditionalSigned: unit},
		{Identifier: "PrevalidateAttests", Type: prevalidateAttests, AdditionalSigned: unit},
		{Identifier: "CheckMetadataHash", Type: checkMetadataHash, AdditionalSigned: optionHash},
	}
	extraTypes := make([]uint32, len(extensions))
	for i, extension := range extensions {
		extraTypes[i] = extension.Type
	}
	extra := b.Tuple(extraTypes...)

	multiSignature := b.Variant([]string{"sp_runtime", "MultiSignature"},
		V(0, "Ed25519", F("", bytes64)),
		V(1, "Sr25519", F("", bytes64)),
		V(2, "Ecdsa", F("", bytes65)),
	)
	uncheckedExtrinsic := b.Params(b.Composite(
		[]string{"sp_runtime", "generic", "unchecked_extrinsic", "UncheckedExtrinsic"}, F("", bytes)),
		P("Address", multiAddress), P("Call", runtimeCall), P("Signature", multiSignature), P("Extra", extra))

	runtime := b.Composite([]string{"polkadot_runtime", "Runtime"})

	b.Pallet(&metadata.Pallet{
		Name:  "System",
		Index: SystemIndex,
		Storage: &metadata.PalletStorage{
			Prefix: "System",
			Entries: []metadata.StorageEntry{
				{
					Name:      "Account",
					Modifier:  metadata.Default,
					Hashers:   []metadata.StorageHasher{metadata.Blake2_128Concat},
					KeyType:   Ref(accountID),
					ValueType: accountInfo,
					Default:   make([]byte, 80),
					Docs:      []string{" The full account information for a particular account ID."},
				},
				{
					Name:      "ExtrinsicCount",
					Modifier:  metadata.Optional,
					ValueType: u32,
					Default:   []byte{0},
				},
				{
					Name:      "BlockHash",
					Modifier:  metadata.Default,
					Hashers:   []metadata.StorageHasher{metadata.Twox64Concat},
					KeyType:   Ref(u32),
					ValueType: h256,
					Default:   make([]byte, 32),
				},
				{
					Name:      "Number",
					Modifier:  metadata.Default,
					ValueType: u32,
					Default:   make([]byte, 4),
				},
				{
					Name:      "Events",
					Modifier:  metadata.Default,
					ValueType: eventRecords,
					Default:   []byte{0},
				},
			},
		},
		CallType:  Ref(systemCall),
		EventType: Ref(systemEvent),
		ErrorType: Ref(systemError),
		Constants: []metadata.Constant{
			{Name: "BlockHashCount", Type: u32, Value: le32(BlockHashCount), Docs: []string{" Maximum number of block number to block hash mappings to keep."}},
			{Name: "SS58Prefix", Type: u16, Value: []byte{0, 0}},
		},
		Docs: []string{"System pallet"},
	})
	b.Pallet(&metadata.Pallet{
		Name:  "Balances",
		Index: BalancesIndex,
		Storage: &metadata.PalletStorage{
			Prefix: "Balances",
			Entries: []metadata.StorageEntry{
				{
					Name:      "TotalIssuance",
					Modifier:  metadata.Default,
					ValueType: u128,
					Default:   make([]byte, 16),
				},
				{
					Name:      "Account",
					Modifier:  metadata.Default,
					Hashers:   []metadata.StorageHasher{metadata.Blake2_128Concat},
					KeyType:   Ref(accountID),
					ValueType: accountData,
					Default:   make([]byte, 64),
				},
			},
		},
		CallType:  Ref(balancesCall),
		EventType: Ref(balancesEvent),
		ErrorType: Ref(balancesError),
		Constants: []metadata.Constant{
			{Name: "ExistentialDeposit", Type: u128, Value: le128(ExistentialDeposit)},
			{Name: "MaxLocks", Type: u32, Value: le32(50)},
		},
	})
	b.Pallet(&metadata.Pallet{
		Name:  "Multisig",
		Index: MultisigIndex,
		Storage: &metadata.PalletStorage{
			Prefix: "Multisig",
			Entries: []metadata.StorageEntry{
				{
					Name:      "Multisigs",
					Modifier:  metadata.Optional,
					Hashers:   []metadata.StorageHasher{metadata.Twox64Concat, metadata.Blake2_128Concat},
					KeyType:   Ref(multisigKey),
					ValueType: multisig,
					Default:   []byte{0},
				},
			},
		},
		Constants: []metadata.Constant{
			{Name: "MaxSignatories", Type: u32, Value: le32(100)},
		},
	})

	b.Extrinsic(metadata.Extrinsic{
		Type:             uncheckedExtrinsic,
		Version:          4,
		AddressType:      multiAddress,
		CallType:         runtimeCall,
		SignatureType:    multiSignature,
		ExtraType:        extra,
		SignedExtensions: extensions,
	})
	b.Runtime(runtime)
	b.OuterEnums(metadata.OuterEnums{
		CallType:  runtimeCall,
		EventType: runtimeEvent,
		ErrorType: runtimeError,
	})
	b.API(metadata.RuntimeAPI{
		Name: "Core",
		Methods: []metadata.RuntimeAPIMethod{
			{Name: "version", Output: bytes},
		},
	})
	b.API(metadata.RuntimeAPI{
		Name: "AccountNonceApi",
		Methods: []metadata.RuntimeAPIMethod{
			{
				Name:   "account_nonce",
				Inputs: []metadata.RuntimeAPIParam{{Name: "account", Type: accountID}},
				Output: u32,
			},
		},
	})
	b.Custom("ss58_format", metadata.CustomValue{Type: str, Value: []byte{8, 'd', 'o', 't'}})

	return b.Build(version)
}

// Encoded returns the encoded fixture metadata.
func Encoded(version uint8) []byte {
	encoded, err := New(version).Encode()
	if err != nil {
		panic(err)
	}
	return encoded
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le128(v uint64) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
