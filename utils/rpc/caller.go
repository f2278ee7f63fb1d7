// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "context"

// Caller issues a single JSON-RPC call with positional parameters and decodes
// the result into [result].
//
// *github.com/ethereum/go-ethereum/rpc.Client implements Caller.
type Caller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}
