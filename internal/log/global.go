// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

var globalLogger = New()

// NewFromGlobal creates a child logger from the global logger.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global package logger.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}

// PatchLevel patches the global package logger level.
func PatchLevel(level Level) {
	globalLogger.PatchLevel(level)
}

// Debugf formats and logs with the global logger at the DEBUG level.
func Debugf(format string, args ...interface{}) {
	globalLogger.Debugf(format, args...)
}

// Infof formats and logs with the global logger at the INFO level.
func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

// Errorf formats and logs with the global logger at the ERROR level.
func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}
