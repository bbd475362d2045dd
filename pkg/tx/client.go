// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package tx

import (
	"errors"

	"github.com/ChainSafe/gosubxt/internal/log"
	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/events"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/ChainSafe/gosubxt/pkg/rpc"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "tx"))

// ErrOffline is returned when an operation needs a node connection and
// the client has none.
var ErrOffline = errors.New("operation requires a connected client")

// Client holds what is needed to encode and sign extrinsics.
type Client interface {
	Metadata() *metadata.Metadata
	GenesisHash() common.Hash
	RuntimeVersion() rpc.RuntimeVersion
}

// OnlineClient is a Client connected to a node, able to fetch nonces,
// submit extrinsics and fetch their events.
type OnlineClient interface {
	Client
	Methods() *rpc.Methods
	Events() *events.Client
}

func online(client Client) (OnlineClient, error) {
	onlineClient, ok := client.(OnlineClient)
	if !ok {
		return nil, ErrOffline
	}
	return onlineClient, nil
}

// TransactionAPI creates submittable extrinsics. The generated runtime
// bindings embed it.
type TransactionAPI struct {
	client Client
}

// NewTransactionAPI returns a transaction API over the client.
func NewTransactionAPI(client Client) TransactionAPI {
	return TransactionAPI{client: client}
}

// Client returns the underlying client.
func (a TransactionAPI) Client() Client {
	return a.client
}

// Submittable wraps the call into a submittable extrinsic.
func (a TransactionAPI) Submittable(call Call) *Submittable {
	return NewSubmittable(a.client, call)
}
