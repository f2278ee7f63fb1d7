// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

// Logger defines the interface that is used to keep a record of all events that
// happen to the program
type Logger interface {
	// Log that a fatal error has occurred. The program should likely exit soon
	// after this is called
	Fatal(msg string, fields ...zap.Field)
	// Log that an error has occurred. The program should be able to recover
	// from this error
	Error(msg string, fields ...zap.Field)
	// Log that an event has occurred that may indicate a future error or
	// vulnerability
	Warn(msg string, fields ...zap.Field)
	// Log an event that may be useful for a user to see to measure the progress
	// of the program
	Info(msg string, fields ...zap.Field)
	// Log an event that may be useful for a programmer to see when debugging the
	// execution of the program
	Debug(msg string, fields ...zap.Field)

	// With returns a logger that adds [fields] to every entry.
	With(fields ...zap.Field) Logger

	// SetLevel changes the level of the logger and of every logger created
	// from it with With.
	SetLevel(level Level)
	// Enabled returns true if the given level is at or above this level.
	Enabled(level Level) bool

	// Stop flushes any buffered entries.
	Stop()
}
