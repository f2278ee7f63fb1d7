// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/rpc/v2/json2"
)

// maxErrorBodySize bounds how much of a non 2xx response is kept in an
// HTTPError.
const maxErrorBodySize = 4 * 1024

// CleanlyCloseBody avoids sending unnecessary RST_STREAM and PING frames by
// ensuring the whole body is read before being closed.
// See https://blog.cloudflare.com/go-and-enhance-your-calm/#reading-bodies-in-go-can-be-unintuitive
func CleanlyCloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// SendJSONRequest posts a JSON-RPC 2.0 request for [method] with the
// positional [params] to [uri] and decodes the result into [reply].
//
// A JSON-RPC error object in the response is returned as *Error and a non 2xx
// status as *HTTPError.
func SendJSONRequest(
	ctx context.Context,
	uri *url.URL,
	method string,
	params []interface{},
	reply interface{},
	options ...Option,
) error {
	if params == nil {
		params = []interface{}{}
	}
	if reply == nil {
		reply = new(json.RawMessage)
	}
	requestBodyBytes, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}

	ops := NewOptions(options)
	if params := ops.QueryParams(); len(params) > 0 {
		// Options override matching keys, other keys of [uri] are kept.
		query := uri.Query()
		for key, values := range params {
			query[key] = values
		}
		uri.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		uri.String(),
		bytes.NewBuffer(requestBodyBytes),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header = ops.Headers().Clone()
	request.Header.Set("Content-Type", "application/json")

	//nolint:bodyclose // body is closed via CleanlyCloseBody
	resp, err := ops.HTTPClient().Do(request)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer CleanlyCloseBody(resp.Body)

	// Return an error for any non successful status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	err = json2.DecodeClientResponse(resp.Body, reply)
	var jsonErr *json2.Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, json2.ErrNullResult):
		return json.Unmarshal([]byte("null"), reply)
	case errors.As(err, &jsonErr):
		return &Error{
			Code:    int(jsonErr.Code),
			Message: jsonErr.Message,
			Data:    jsonErr.Data,
		}
	default:
		return fmt.Errorf("failed to decode client response: %w", err)
	}
}
