// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package debugclient provides an RPC client for the debug namespace methods
// that the standard ethclient does not expose.
package debugclient

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/debugtrace/tracers"
	"github.com/ava-labs/debugtrace/utils/rpc"
)

const traceTransactionMethod = "debug_traceTransaction"

// Client is a wrapper around an rpc.Caller, usually a connected
// *github.com/ethereum/go-ethereum/rpc.Client, adding debug methods.
type Client struct {
	c rpc.Caller
}

// New creates a client that uses the given caller.
func New(c rpc.Caller) *Client {
	return &Client{c}
}

// TraceTransactionJSON runs the tracer selected by [opts] over the
// transaction [hash] and returns the raw result. The result is not decoded as
// its shape is defined by the tracer.
//
// Errors of the underlying caller are returned unchanged.
func (ec *Client) TraceTransactionJSON(
	ctx context.Context,
	hash common.Hash,
	opts *tracers.TracingOptions,
) (json.RawMessage, error) {
	var result json.RawMessage
	if err := ec.c.CallContext(ctx, &result, traceTransactionMethod, hash, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// ErrorCode returns the JSON-RPC error code carried by [err] and true if [err]
// is an error response of the peer. Transport and decoding failures return
// false.
func ErrorCode(err error) (int, bool) {
	var rpcErr interface {
		error
		ErrorCode() int
	}
	if !errors.As(err, &rpcErr) {
		return 0, false
	}
	return rpcErr.ErrorCode(), true
}
