// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "fmt"

var (
	_ error = (*Error)(nil)
	_ error = (*HTTPError)(nil)
)

// Error is a JSON-RPC error object returned by the peer. It exposes the same
// ErrorCode and ErrorData methods as the errors of go-ethereum's rpc client.
type Error struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("json-rpc error %d", e.Code)
	}
	return e.Message
}

func (e *Error) ErrorCode() int {
	return e.Code
}

func (e *Error) ErrorData() interface{} {
	return e.Data
}

// HTTPError is returned when the peer answers with a non 2xx status code.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Body)
}
