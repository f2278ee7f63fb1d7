// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package js

import (
	_ "embed"

	"github.com/ava-labs/debugtrace/tracers"
)

//go:embed assets/noop-tracer.js
var noopTracer string

// Noop is a tracer whose hooks do nothing and whose result is an empty object.
type Noop struct{}

func (Noop) Code() string {
	return noopTracer
}

func (n Noop) TracingOptions() *tracers.TracingOptions {
	return TracingOptions(n)
}

func (n Noop) String() string {
	return n.Code()
}
