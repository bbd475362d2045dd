// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

//go:generate mockgen -destination=mocks/mocks.go -package mocks . Client,Subscription
//go:generate mockgen -destination=mock_caller_test.go -package $GOPACKAGE . caller
