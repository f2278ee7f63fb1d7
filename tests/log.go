// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tests

import (
	"os"

	"github.com/ava-labs/debugtrace/utils/logging"
)

func NewDefaultLogger(prefix string) logging.Logger {
	log, err := LoggerForFormat(prefix, logging.AutoString)
	if err != nil {
		// auto is always a valid format
		panic(err)
	}
	return log
}

// LoggerForFormat returns a debug level logger writing to stdout.
func LoggerForFormat(prefix string, rawLogFormat string) (logging.Logger, error) {
	writeCloser := os.Stdout
	logFormat, err := logging.ToFormat(rawLogFormat, writeCloser.Fd())
	if err != nil {
		return nil, err
	}
	return logging.NewLogger(prefix, logging.NewWrappedCore(logging.Debug, writeCloser, logFormat.Encoder())), nil
}
