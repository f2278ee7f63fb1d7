// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ Caller = (*tracedCaller)(nil)

type tracedCaller struct {
	caller Caller
	tracer trace.Tracer
}

// NewTracedCaller returns a Caller that records a span around every call of
// [caller].
func NewTracedCaller(caller Caller, tracer trace.Tracer) Caller {
	return &tracedCaller{
		caller: caller,
		tracer: tracer,
	}
}

func (t *tracedCaller) CallContext(
	ctx context.Context,
	result interface{},
	method string,
	args ...interface{},
) error {
	ctx, span := t.tracer.Start(ctx, "rpc.CallContext", trace.WithAttributes(
		attribute.String("method", method),
		attribute.Int("numArgs", len(args)),
	))
	defer span.End()

	err := t.caller.CallContext(ctx, result, method, args...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
