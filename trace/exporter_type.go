// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	NoOp ExporterType = iota
	GRPC
	HTTP
)

var ErrUnknownExporterType = errors.New("unknown exporter type")

// ExporterType selects the OTLP protocol spans are exported with. NoOp
// disables tracing.
type ExporterType byte

// ExporterTypeFromString parses the flag or config form of an exporter type.
// The empty string, "noop" and "null" all disable tracing.
func ExporterTypeFromString(s string) (ExporterType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", NoOp.String(), "null":
		return NoOp, nil
	case GRPC.String():
		return GRPC, nil
	case HTTP.String():
		return HTTP, nil
	default:
		return NoOp, fmt.Errorf("%w: %q", ErrUnknownExporterType, s)
	}
}

func (t ExporterType) String() string {
	switch t {
	case NoOp:
		return "noop"
	case GRPC:
		return "grpc"
	case HTTP:
		return "http"
	default:
		return "unknown"
	}
}

func (t ExporterType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ExporterType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	exporterType, err := ExporterTypeFromString(s)
	if err != nil {
		return err
	}
	*t = exporterType
	return nil
}
