// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"sync"
)

// RFC3339 timestamp followed by a space
const timePrefixRegex = `^([0-9]+)-` +
	`(0[1-9]|1[012])-` +
	`(0[1-9]|[12][0-9]|3[01])[Tt]([01][0-9]|2[0-3])` +
	`:([0-5][0-9])` +
	`:([0-5][0-9]|60)(\.[0-9]+)?(([Zz])|([\+|\-]([01][0-9]|2[0-3])` +
	`:[0-5][0-9])) `

func levelPtr(l Level) *Level { return &l }

func formatPtr(f Format) *Format { return &f }

// newTestLogger returns a console logger writing to writer at level.
func newTestLogger(writer io.Writer, level Level, context ...contextKeyValues) *Logger {
	return &Logger{
		settings: settings{
			writer:  writer,
			level:   levelPtr(level),
			format:  formatPtr(FormatConsole),
			context: context,
		},
		mutex: new(sync.Mutex),
	}
}
