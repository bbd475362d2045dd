// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// addStringFlagBindViper adds a string flag to the given flag set and binds it to the given viper name
func addStringFlagBindViper(v *viper.Viper, flags *pflag.FlagSet,
	name,
	defaultValue,
	usage,
	viperBindName string,
) error {
	flags.String(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, flags.Lookup(name))
}

// addStringSliceFlagBindViper adds a string slice flag to the given flag set and binds it to the given viper name
func addStringSliceFlagBindViper(v *viper.Viper, flags *pflag.FlagSet,
	name string,
	defaultValue []string,
	usage string,
	viperBindName string,
) error {
	flags.StringSlice(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, flags.Lookup(name))
}

// addUintFlagBindViper adds a uint flag to the given flag set and binds it to the given viper name
func addUintFlagBindViper(v *viper.Viper, flags *pflag.FlagSet,
	name string,
	defaultValue uint,
	usage string,
	viperBindName string,
) error {
	flags.Uint(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, flags.Lookup(name))
}

// addUint32FlagBindViper adds a uint32 flag to the given flag set and binds it to the given viper name
func addUint32FlagBindViper(v *viper.Viper, flags *pflag.FlagSet,
	name string,
	defaultValue uint32,
	usage string,
	viperBindName string,
) error {
	flags.Uint32(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, flags.Lookup(name))
}

// addDurationFlagBindViper adds a duration flag to the given flag set and binds it to the given viper name
func addDurationFlagBindViper(v *viper.Viper, flags *pflag.FlagSet,
	name string,
	defaultValue time.Duration,
	usage string,
	viperBindName string,
) error {
	flags.Duration(name, defaultValue, usage)
	return v.BindPFlag(viperBindName, flags.Lookup(name))
}

// mustAdd panics on flag binding errors, which only happen for flags
// that were not defined.
func mustAdd(err error) {
	if err != nil {
		panic(err)
	}
}

// writeOutput writes b to the command output.
func writeOutput(cmd *cobra.Command, b []byte) error {
	_, err := cmd.OutOrStdout().Write(b)
	return err
}
