// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codegen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/metadata/metadatatest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureModule = "example.com/bindings/fixture"

func Test_Generate(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	files, err := Generate(md, Options{ModulePath: fixtureModule})
	require.NoError(t, err)

	expectedNames := []string{
		"api.go",
		"balances/calls.go",
		"balances/constants.go",
		"balances/events.go",
		"balances/storage.go",
		"metadata.scale",
		"multisig/constants.go",
		"multisig/storage.go",
		"runtimetypes/types.go",
		"system/calls.go",
		"system/constants.go",
		"system/events.go",
		"system/storage.go",
	}
	require.Equal(t, expectedNames, files.Names())

	fset := token.NewFileSet()
	for _, name := range files.Names() {
		if name == metadataFile {
			continue
		}
		content := files[name]
		assert.True(t, strings.HasPrefix(string(content), "// Code generated by subxt codegen. DO NOT EDIT.\n"),
			"%s has no generated header", name)

		file, err := parser.ParseFile(fset, name, content, parser.ParseComments)
		require.NoError(t, err, "parsing %s", name)

		expectedPackage := "fixture"
		if dir := filepath.Dir(filepath.FromSlash(name)); dir != "." {
			expectedPackage = dir
		}
		assert.Equal(t, expectedPackage, file.Name.Name, name)
	}

	contains := map[string][]string{
		"api.go": {
			`"example.com/bindings/fixture/balances"`,
			`case "System.ExtrinsicSuccess":`,
			`case "Balances.Transfer":`,
			"Balances balances.TransactionAPI",
			"Multisig multisig.StorageAPI",
			"//go:embed metadata.scale",
			"return md.CheckCompatible(source)",
		},
		"balances/calls.go": {
			"type TransferKeepAliveCall struct {",
			"func (TransferKeepAliveCall) CallName() string { return \"transfer_keep_alive\" }",
			"func (a TransactionAPI) TransferKeepAlive(dest runtimetypes.MultiAddress, value types.UCompact) *tx.Submittable {",
			"func (a TransactionAPI) TransferAll(dest runtimetypes.MultiAddress, keepAlive bool) *tx.Submittable {",
		},
		"balances/constants.go": {
			"func (a ConstantsAPI) ExistentialDeposit() (types.U128, error) {",
		},
		"system/storage.go": {
			"func AccountAddress(key types.AccountID32) storage.Address {",
			"func AccountRootAddress() storage.Address {",
			"func (a StorageAPI) Account(ctx context.Context, key types.AccountID32) (runtimetypes.AccountInfo, error) {",
			"func (a StorageAPI) ExtrinsicCount(ctx context.Context) (value uint32, found bool, err error) {",
			"func (a StorageAPI) BlockHashIter(ctx context.Context) (*storage.Iterator[types.H256], error) {",
			"// The full account information for a particular account ID.",
		},
		"system/events.go": {
			"type Remarked struct {",
			"Hash   types.H256",
		},
		"multisig/storage.go": {
			"func MultisigsAddress(key0 types.AccountID32, key1 [32]byte) storage.Address {",
			"[]storage.Hasher{storage.Twox64Concat, storage.Blake2_128Concat}",
		},
		"runtimetypes/types.go": {
			"type ExtraFlags = types.U128",
			"func (v *MultiAddress) Decode(decoder scale.Decoder) error {",
		},
	}
	for name, substrings := range contains {
		for _, substring := range substrings {
			assert.Contains(t, string(files[name]), substring, name)
		}
	}
}

func Test_Generate_metadata(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	opts := Options{ModulePath: fixtureModule, Pallets: []string{"Balances"}}
	files, err := Generate(md, opts)
	require.NoError(t, err)

	embedded, err := metadata.Decode(files[metadataFile])
	require.NoError(t, err)
	assert.Equal(t, []string{"Balances"}, embedded.PalletNames())
	assert.Less(t, embedded.Types.Len(), md.Types.Len())
	require.NoError(t, md.CheckCompatible(embedded))

	// the embedded metadata regenerates the same bindings
	again, err := Generate(embedded, opts)
	require.NoError(t, err)
	if diff := cmp.Diff(files, again); diff != "" {
		t.Errorf("regenerated bindings differ (-first +second):\n%s", diff)
	}
}

func Test_Generate_pallets(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)
	files, err := Generate(md, Options{
		ModulePath: fixtureModule + "/",
		Package:    "runtime",
		Pallets:    []string{"Multisig", "System"},
	})
	require.NoError(t, err)

	for _, name := range files.Names() {
		assert.False(t, strings.HasPrefix(name, "balances/"), name)
	}
	api := string(files["api.go"])
	assert.Contains(t, api, "package runtime")
	assert.Contains(t, api, `"example.com/bindings/fixture/system"`)
	assert.NotContains(t, api, "Balances")

	// the metadata itself is left untouched
	_, err = md.Pallet("Balances")
	assert.NoError(t, err)
}

func Test_Generate_errors(t *testing.T) {
	t.Parallel()

	md := metadatatest.New(15)

	_, err := Generate(md, Options{})
	assert.ErrorIs(t, err, ErrNoModulePath)

	_, err = Generate(md, Options{ModulePath: fixtureModule, Pallets: []string{"Staking"}})
	assert.ErrorIs(t, err, metadata.ErrPalletNotFound)

	_, err = Generate(&metadata.Metadata{Types: md.Types}, Options{ModulePath: fixtureModule})
	assert.ErrorIs(t, err, ErrNoPallets)
}

func Test_Files_Write(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := Files{
		"api.go":          []byte("package fixture\n"),
		"system/calls.go": []byte("package system\n"),
	}
	require.NoError(t, files.Write(dir))

	content, err := os.ReadFile(filepath.Join(dir, "system", "calls.go"))
	require.NoError(t, err)
	assert.Equal(t, "package system\n", string(content))

	content, err = os.ReadFile(filepath.Join(dir, "api.go"))
	require.NoError(t, err)
	assert.Equal(t, "package fixture\n", string(content))
}

func Test_comment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "// Remark is the System.remark call.", comment("Remark", "is the System.remark call.", nil))
	assert.Equal(t,
		"// Remark is the System.remark call.\n//\n// Make some on-chain remark.\n//\n// Can be executed by every origin.",
		comment("Remark", "is the System.remark call.",
			[]string{"Make some on-chain remark.", "", "Can be executed by every origin."}))
}
