// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Format modes available
const (
	Plain Format = iota
	Colors
	JSON

	AutoString = "auto"
)

var (
	errUnknownFormat = errors.New("unknown format")

	defaultEncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	jsonEncoderConfig   zapcore.EncoderConfig
	colorsEncoderConfig zapcore.EncoderConfig
)

func init() {
	jsonEncoderConfig = defaultEncoderConfig
	jsonEncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	jsonEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	colorsEncoderConfig = defaultEncoderConfig
	colorsEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
}

// Format of the log output
type Format int

// ToFormat parses [f]. "auto" selects Colors only when [fd] is a terminal.
func ToFormat(f string, fd uintptr) (Format, error) {
	switch strings.ToLower(f) {
	case "plain":
		return Plain, nil
	case "colors":
		return Colors, nil
	case "json":
		return JSON, nil
	case AutoString:
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Colors:
		return "colors"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

func (f Format) Encoder() zapcore.Encoder {
	switch f {
	case Colors:
		return zapcore.NewConsoleEncoder(colorsEncoderConfig)
	case JSON:
		return zapcore.NewJSONEncoder(jsonEncoderConfig)
	default:
		return zapcore.NewConsoleEncoder(defaultEncoderConfig)
	}
}
