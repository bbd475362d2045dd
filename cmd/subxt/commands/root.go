// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package commands implements the subxt command line interface.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/ChainSafe/gosubxt/internal/log"
	"github.com/ChainSafe/gosubxt/internal/metrics"
	"github.com/ChainSafe/gosubxt/pkg/client"
	"github.com/fatih/color" //nolint:misspell
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding flags,
// for example SUBXT_URL or SUBXT_CODEGEN_OUTPUT_DIR.
const EnvPrefix = "SUBXT"

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

// Config is the configuration shared by every command.
type Config struct {
	LogLevel       string `mapstructure:"log"`
	MetricsAddress string `mapstructure:"metrics-address"`
	// File is a metadata file read instead of fetching from the node.
	File string `mapstructure:"file"`

	Client client.Config `mapstructure:",squash"`
}

// root holds the state shared by the commands during one execution.
type root struct {
	viper   *viper.Viper
	config  Config
	metrics *metrics.Server
}

// NewRootCommand creates the subxt command tree.
func NewRootCommand() *cobra.Command {
	r := &root{viper: viper.New()}
	r.viper.SetEnvPrefix(EnvPrefix)
	r.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	r.viper.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "subxt",
		Short: "Substrate metadata tooling and typed binding generator",
		Long: `subxt fetches runtime metadata from a node and generates Go bindings from it.
Usage:
	subxt metadata --url ws://127.0.0.1:9944 --format hex > metadata.hex
	subxt codegen --file metadata.hex --module example.com/bindings --output-dir ./bindings
	subxt compatibility wss://rpc.polkadot.io metadata.hex --pallets Balances
	subxt explore --file metadata.hex Balances transfer_keep_alive`,
		SilenceUsage:       true,
		PersistentPreRunE:  r.setup,
		PersistentPostRunE: r.teardown,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Configuration file (toml, yaml or json)")
	mustAdd(addStringFlagBindViper(r.viper, flags,
		"log", log.Info.String(),
		"Log level. Supports levels critical, error, warn, info, debug and trace",
		"log"))
	mustAdd(addStringFlagBindViper(r.viper, flags,
		"metrics-address", "",
		"Listen address of the prometheus metrics server, disabled when empty",
		"metrics-address"))
	mustAdd(addStringFlagBindViper(r.viper, flags,
		"url", client.DefaultURL,
		"Websocket endpoint of the node",
		"url"))
	mustAdd(addStringFlagBindViper(r.viper, flags,
		"file", "",
		"Metadata file to read instead of fetching it from the node, SCALE or hex encoded",
		"file"))
	mustAdd(addUintFlagBindViper(r.viper, flags,
		"retry-attempts", 0,
		"Number of attempts to dial the node",
		"retry-attempts"))
	mustAdd(addDurationFlagBindViper(r.viper, flags,
		"retry-delay", time.Second,
		"Delay between attempts to dial the node",
		"retry-delay"))
	mustAdd(addUint32FlagBindViper(r.viper, flags,
		"page-size", 0,
		"Number of storage keys fetched per page",
		"page-size"))

	cmd.AddCommand(
		newMetadataCommand(r),
		newCodegenCommand(r),
		newCompatibilityCommand(r),
		newExploreCommand(r),
	)
	return cmd
}

func (r *root) setup(cmd *cobra.Command, _ []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get --config: %w", err)
	}
	if configFile != "" {
		r.viper.SetConfigFile(configFile)
		if err := r.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := r.viper.Unmarshal(&r.config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	level, err := log.ParseLevel(r.config.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing --log: %w", err)
	}
	format := log.FormatColoured
	if color.NoColor {
		format = log.FormatConsole
	}
	log.Patch(log.SetWriter(cmd.ErrOrStderr()), log.SetLevel(level), log.SetFormat(format))

	if r.config.MetricsAddress != "" {
		registry := prometheus.NewRegistry()
		r.config.Client.Registerer = registry
		r.metrics = metrics.NewServer(r.config.MetricsAddress, registry)
		if err := r.metrics.Start(); err != nil {
			return err
		}
	}

	logger.Debugf("running %s", cmd.CommandPath())
	return nil
}

func (r *root) teardown(*cobra.Command, []string) error {
	if r.metrics == nil {
		return nil
	}
	return r.metrics.Stop()
}
