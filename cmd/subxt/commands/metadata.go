// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/spf13/cobra"
)

// Output formats of the metadata command.
const (
	formatBytes = "bytes"
	formatHex   = "hex"
	formatJSON  = "json"
)

// ErrUnknownFormat is returned for an unsupported --format.
var ErrUnknownFormat = errors.New("unknown output format")

func newMetadataCommand(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Download the runtime metadata of a node",
		Long: `Download the runtime metadata of a node, or re-encode a metadata file.
The bytes and hex formats can be read back with --file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.runMetadata(cmd)
		},
	}

	mustAdd(addStringFlagBindViper(r.viper, cmd.Flags(),
		"format", formatBytes,
		"Output format: bytes, hex or json",
		"metadata.format"))
	mustAdd(addStringSliceFlagBindViper(r.viper, cmd.Flags(),
		"pallets", nil,
		"Pallets to keep, every pallet when empty",
		"metadata.pallets"))
	return cmd
}

func (r *root) runMetadata(cmd *cobra.Command) error {
	format := r.viper.GetString("metadata.format")
	switch format {
	case formatBytes, formatHex, formatJSON:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	md, err := r.loadMetadata(cmd.Context())
	if err != nil {
		return err
	}
	if err := retainPallets(md, r.viper.GetStringSlice("metadata.pallets")); err != nil {
		return err
	}

	var output []byte
	switch format {
	case formatJSON:
		summary, err := summarize(md)
		if err != nil {
			return err
		}
		output, err = json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		output = append(output, '\n')
	default:
		output, err = md.Encode()
		if err != nil {
			return fmt.Errorf("encoding metadata: %w", err)
		}
		if format == formatHex {
			output = []byte(common.BytesToHex(output) + "\n")
		}
	}
	return writeOutput(cmd, output)
}

type metadataSummary struct {
	Version uint8           `json:"version"`
	Hash    string          `json:"hash"`
	Types   int             `json:"types"`
	Pallets []palletSummary `json:"pallets"`
	APIs    []string        `json:"apis,omitempty"`
}

type palletSummary struct {
	Name      string   `json:"name"`
	Index     uint8    `json:"index"`
	Hash      string   `json:"hash"`
	Calls     []string `json:"calls,omitempty"`
	Events    []string `json:"events,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Storage   []string `json:"storage,omitempty"`
	Constants []string `json:"constants,omitempty"`
}

func summarize(md *metadata.Metadata) (metadataSummary, error) {
	summary := metadataSummary{
		Version: md.Version,
		Hash:    md.Hash().String(),
		Types:   md.Types.Len(),
		Pallets: make([]palletSummary, 0, len(md.Pallets)),
	}
	for _, api := range md.APIs {
		summary.APIs = append(summary.APIs, api.Name)
	}

	for _, pallet := range md.Pallets {
		hash, err := md.PalletHash(pallet.Name)
		if err != nil {
			return summary, err
		}
		p := palletSummary{
			Name:  pallet.Name,
			Index: pallet.Index,
			Hash:  hash.String(),
		}

		calls, err := pallet.Calls()
		if err != nil {
			return summary, err
		}
		p.Calls = variantNames(calls)
		events, err := pallet.Events()
		if err != nil {
			return summary, err
		}
		p.Events = variantNames(events)
		palletErrors, err := pallet.Errors()
		if err != nil {
			return summary, err
		}
		p.Errors = variantNames(palletErrors)

		if pallet.Storage != nil {
			for _, entry := range pallet.Storage.Entries {
				p.Storage = append(p.Storage, entry.Name)
			}
		}
		for _, constant := range pallet.Constants {
			p.Constants = append(p.Constants, constant.Name)
		}
		summary.Pallets = append(summary.Pallets, p)
	}
	return summary, nil
}

func variantNames(variants []metadata.Variant) []string {
	if len(variants) == 0 {
		return nil
	}
	names := make([]string, len(variants))
	for i, variant := range variants {
		names[i] = variant.Name
	}
	return names
}
