// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package polkadot_test

//go:generate mockgen -destination=mock_fetcher_test.go -package $GOPACKAGE github.com/ChainSafe/gosubxt/pkg/storage Fetcher
//go:generate mockgen -destination=mock_getter_test.go -package $GOPACKAGE github.com/ChainSafe/gosubxt/pkg/constants Getter
