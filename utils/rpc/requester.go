// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"fmt"
	"net/url"
)

var _ Caller = (*HTTPCaller)(nil)

// HTTPCaller issues every call as a separate HTTP POST to a fixed endpoint.
type HTTPCaller struct {
	uri     string
	options []Option
}

// NewHTTPCaller returns a caller posting to [uri]. [options] are applied to
// every request.
func NewHTTPCaller(uri string, options ...Option) (*HTTPCaller, error) {
	if _, err := url.Parse(uri); err != nil {
		return nil, fmt.Errorf("invalid uri %q: %w", stripPassword(uri), err)
	}
	return &HTTPCaller{
		uri:     uri,
		options: options,
	}, nil
}

func (c *HTTPCaller) CallContext(
	ctx context.Context,
	result interface{},
	method string,
	args ...interface{},
) error {
	uri, err := url.Parse(c.uri)
	if err != nil {
		return err
	}
	return SendJSONRequest(ctx, uri, method, args, result, c.options...)
}

// String returns the endpoint with any password redacted.
func (c *HTTPCaller) String() string {
	return stripPassword(c.uri)
}
