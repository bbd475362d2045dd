// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/ChainSafe/gosubxt/lib/common"
	"github.com/ChainSafe/gosubxt/pkg/metadata"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCompatibilityCommand(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compatibility SOURCE SOURCE...",
		Short: "Check that nodes share the same pallet definitions",
		Long: `Compare the pallet hashes of the metadata of several sources.
A source is a node URL (ws://, wss://, http:// or https://) or a metadata file.
The command fails when a pallet differs or is missing from a source.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runCompatibility(cmd, args)
		},
	}

	mustAdd(addStringSliceFlagBindViper(r.viper, cmd.Flags(),
		"pallets", nil,
		"Pallets to compare, every pallet of every source when empty",
		"compatibility.pallets"))
	return cmd
}

func (r *root) runCompatibility(cmd *cobra.Command, sources []string) error {
	mds := make([]*metadata.Metadata, len(sources))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, source := range sources {
		i, source := i, source
		g.Go(func() (err error) {
			mds[i], err = r.loadSource(ctx, source)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	comparisons := comparePallets(mds, r.viper.GetStringSlice("compatibility.pallets"))
	if err := writeComparisons(cmd.OutOrStdout(), sources, comparisons); err != nil {
		return err
	}

	differing := 0
	for _, comparison := range comparisons {
		if !comparison.compatible() {
			differing++
		}
	}
	if differing > 0 {
		return fmt.Errorf("%w: %d of %d pallets differ",
			metadata.ErrIncompatible, differing, len(comparisons))
	}
	return nil
}

// palletComparison holds the hash of a pallet in each source, nil where
// the source has no such pallet.
type palletComparison struct {
	pallet string
	hashes []*common.Hash
}

func (c palletComparison) compatible() bool {
	for _, hash := range c.hashes {
		if hash == nil || *hash != *c.hashes[0] {
			return false
		}
	}
	return true
}

// comparePallets hashes the named pallets, or the union of the pallets of
// every metadata, in each metadata.
func comparePallets(mds []*metadata.Metadata, pallets []string) []palletComparison {
	names := pallets
	if len(names) == 0 {
		seen := make(map[string]struct{})
		for _, md := range mds {
			for _, name := range md.PalletNames() {
				if _, ok := seen[name]; !ok {
					seen[name] = struct{}{}
					names = append(names, name)
				}
			}
		}
	}
	names = append([]string(nil), names...)
	sort.Strings(names)

	comparisons := make([]palletComparison, len(names))
	for i, name := range names {
		comparisons[i] = palletComparison{pallet: name, hashes: make([]*common.Hash, len(mds))}
		for j, md := range mds {
			hash, err := md.PalletHash(name)
			if err != nil {
				continue
			}
			comparisons[i].hashes[j] = &hash
		}
	}
	return comparisons
}

func writeComparisons(w io.Writer, sources []string, comparisons []palletComparison) error {
	for _, comparison := range comparisons {
		if comparison.compatible() {
			_, err := fmt.Fprintf(w, "%s: compatible %s\n", comparison.pallet, comparison.hashes[0])
			if err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: incompatible\n", comparison.pallet); err != nil {
			return err
		}
		for i, hash := range comparison.hashes {
			state := "missing"
			if hash != nil {
				state = hash.String()
			}
			if _, err := fmt.Fprintf(w, "\t%s: %s\n", sources[i], state); err != nil {
				return err
			}
		}
	}
	return nil
}
