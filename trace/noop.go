// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import "go.opentelemetry.io/otel/trace"

var Noop Tracer = noOpTracer{
	Tracer: trace.NewNoopTracerProvider().Tracer(""),
}

type noOpTracer struct {
	trace.Tracer
}

func (noOpTracer) Close() error {
	return nil
}
