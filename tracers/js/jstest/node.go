// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jstest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/ava-labs/debugtrace/tracers"
)

var errUnsupportedTracer = errors.New("tracer not supported")

// DebugAPI serves debug_traceTransaction for a fixed set of transactions.
// Each transaction executes the given number of steps in a single call frame.
type DebugAPI struct {
	steps map[common.Hash]int
}

func NewDebugAPI(steps map[common.Hash]int) *DebugAPI {
	return &DebugAPI{steps: steps}
}

// NewServer returns an rpc server exposing [api] under the debug namespace.
func NewServer(api *DebugAPI) (*rpc.Server, error) {
	server := rpc.NewServer()
	if err := server.RegisterName("debug", api); err != nil {
		return nil, err
	}
	return server, nil
}

func (api *DebugAPI) TraceTransaction(
	_ context.Context,
	hash common.Hash,
	opts *tracers.TracingOptions,
) (json.RawMessage, error) {
	steps, ok := api.steps[hash]
	if !ok {
		return nil, fmt.Errorf("transaction %#x not found", hash)
	}

	if opts == nil || opts.Tracer == nil {
		return json.Marshal(map[string]interface{}{
			"gas":         3 * steps,
			"failed":      false,
			"returnValue": "",
			"structLogs":  []interface{}{},
		})
	}

	source, ok := opts.Source()
	if !ok {
		if opts.Tracer.Name() == tracers.NoopTracer {
			return json.RawMessage(`{}`), nil
		}
		return nil, fmt.Errorf("%w: %s", errUnsupportedTracer, opts.Tracer.Name())
	}
	return Run(source, opts.TracerConfig, steps)
}
