// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package polkadot

//go:generate go run ../../cmd/subxt codegen --file metadata.scale --module github.com/ChainSafe/gosubxt/runtime/polkadot --output-dir .
