// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

type RotatingWriterConfig struct {
	// Path of the active log file; rotated files are written next to it.
	Path string `json:"path"`
	// MaxSize in megabytes before the file is rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles to retain, 0 retains them all.
	MaxFiles int  `json:"maxFiles"`
	Compress bool `json:"compress"`
}

// NewRotatingWriter returns a writer that creates [config.Path] on first
// write and rotates it once it exceeds [config.MaxSize].
func NewRotatingWriter(config RotatingWriterConfig) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   config.Path,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxFiles,
		Compress:   config.Compress,
	}
}
