// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Format is the format of the logs.
type Format uint8

const (
	// FormatConsole is the plain console format.
	FormatConsole Format = iota
	// FormatColoured is the console format with coloured levels.
	FormatColoured
)
