// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ChainSafe/gosubxt/pkg/client"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
)

// loadMetadata reads the metadata from --file when set and fetches it
// from --url otherwise.
func (r *root) loadMetadata(ctx context.Context) (*metadata.Metadata, error) {
	if r.config.File != "" {
		return readMetadataFile(r.config.File)
	}
	return r.fetchMetadata(ctx, r.config.Client.URL)
}

// loadSource loads the metadata of a node URL or a metadata file.
func (r *root) loadSource(ctx context.Context, source string) (*metadata.Metadata, error) {
	if isNodeURL(source) {
		return r.fetchMetadata(ctx, source)
	}
	return readMetadataFile(source)
}

func (r *root) fetchMetadata(ctx context.Context, url string) (*metadata.Metadata, error) {
	config := r.config.Client
	config.URL = url
	c, err := client.Connect(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}
	defer c.Close()

	logger.Debugf("fetched metadata v%d from %s", c.Metadata().Version, url)
	return c.Metadata(), nil
}

// readMetadataFile decodes a SCALE encoded metadata file, or a 0x
// prefixed hex one.
func readMetadataFile(path string) (*metadata.Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var md *metadata.Metadata
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("0x")) {
		md, err = metadata.DecodeHex(string(trimmed))
	} else {
		md, err = metadata.Decode(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return md, nil
}

func isNodeURL(source string) bool {
	for _, scheme := range []string{"ws://", "wss://", "http://", "https://"} {
		if strings.HasPrefix(source, scheme) {
			return true
		}
	}
	return false
}

// retainPallets trims the metadata to the given pallets, which must all
// exist. It keeps every pallet when none is given.
func retainPallets(md *metadata.Metadata, pallets []string) error {
	if len(pallets) == 0 {
		return nil
	}
	for _, name := range pallets {
		if _, err := md.Pallet(name); err != nil {
			return err
		}
	}
	md.Retain(pallets, nil)
	return nil
}
