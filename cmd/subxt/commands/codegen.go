// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"fmt"

	"github.com/ChainSafe/gosubxt/internal/codegen"
	"github.com/spf13/cobra"
)

func newCodegenCommand(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codegen",
		Short: "Generate Go bindings for the runtime pallets",
		Long: `Generate a Go package tree with typed calls, events, storage entries
and constants for the pallets of the metadata. The root package of the tree
is imported as --module.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.runCodegen(cmd)
		},
	}

	flags := cmd.Flags()
	mustAdd(addStringFlagBindViper(r.viper, flags,
		"output-dir", ".",
		"Directory the bindings are written to",
		"codegen.output-dir"))
	mustAdd(addStringFlagBindViper(r.viper, flags,
		"module", "",
		"Import path of the output directory, for example github.com/org/project/runtime",
		"codegen.module"))
	mustAdd(addStringFlagBindViper(r.viper, flags,
		"package", "",
		"Name of the root package, the last element of --module by default",
		"codegen.package"))
	mustAdd(addStringSliceFlagBindViper(r.viper, flags,
		"pallets", nil,
		"Pallets to generate, every pallet when empty",
		"codegen.pallets"))
	return cmd
}

func (r *root) runCodegen(cmd *cobra.Command) error {
	md, err := r.loadMetadata(cmd.Context())
	if err != nil {
		return err
	}

	files, err := codegen.Generate(md, codegen.Options{
		ModulePath: r.viper.GetString("codegen.module"),
		Package:    r.viper.GetString("codegen.package"),
		Pallets:    r.viper.GetStringSlice("codegen.pallets"),
	})
	if err != nil {
		return fmt.Errorf("generating bindings: %w", err)
	}

	dir := r.viper.GetString("codegen.output-dir")
	if err := files.Write(dir); err != nil {
		return fmt.Errorf("writing bindings: %w", err)
	}

	logger.Infof("generated %d files in %s", len(files), dir)
	for _, name := range files.Names() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return err
		}
	}
	return nil
}
