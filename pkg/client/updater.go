// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"fmt"

	"github.com/ChainSafe/gosubxt/pkg/rpc"
)

// Updater swaps the metadata and runtime version of a client when the
// runtime is upgraded.
type Updater struct {
	client *OnlineClient
}

// Run follows runtime version notifications until the context is done or
// the subscription fails.
func (u *Updater) Run(ctx context.Context) error {
	stream, err := u.client.methods.SubscribeRuntimeVersion(ctx)
	if err != nil {
		return fmt.Errorf("subscribing to runtime versions: %w", err)
	}
	defer stream.Unsubscribe()

	for {
		version, err := stream.Next(ctx)
		if err != nil {
			return err
		}

		if _, err := u.Apply(ctx, version); err != nil {
			return err
		}
	}
}

// Apply fetches the metadata of version and swaps it in if the spec version
// differs from the client's. It returns true if the runtime was swapped.
func (u *Updater) Apply(ctx context.Context, version rpc.RuntimeVersion) (bool, error) {
	current := u.client.RuntimeVersion()
	if version.SpecVersion == current.SpecVersion {
		logger.Tracef("runtime spec version %d unchanged", version.SpecVersion)
		return false, nil
	}

	md, err := fetchMetadata(ctx, u.client.methods)
	if err != nil {
		return false, err
	}
	u.client.setRuntime(md, version)

	logger.Infof("runtime upgraded from spec version %d to %d", current.SpecVersion, version.SpecVersion)
	return true, nil
}
