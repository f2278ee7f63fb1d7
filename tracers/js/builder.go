// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package js assembles JavaScript tracers for debug_traceTransaction.
//
// A tracer is an object literal exposing the hooks setup, fault, result, enter,
// step and exit. Builder fills the body of each hook of an embedded template:
//
//	code := js.Builder{}.
//		StepBody("this.steps++;").
//		ResultBody("return {steps: this.steps};").
//		Code()
package js

import (
	_ "embed"
	"slices"
	"strings"

	"github.com/ava-labs/debugtrace/tracers"
)

// Markers replaced by the hook bodies. Each appears exactly once in the
// embedded template.
const (
	SetupMarker  = "//<setup>"
	FaultMarker  = "//<fault>"
	ResultMarker = "//<result>"
	EnterMarker  = "//<enter>"
	StepMarker   = "//<step>"
	ExitMarker   = "//<exit>"

	// DefaultResultBody is used when no result body is set so that the tracer
	// always produces a JSON value.
	DefaultResultBody = "return {};"
)

var (
	_ Source = Builder{}
	_ Source = Noop{}

	//go:embed assets/tracer-template.js
	tracerTemplate string

	markers = []string{
		SetupMarker,
		FaultMarker,
		ResultMarker,
		EnterMarker,
		StepMarker,
		ExitMarker,
	}
)

// Source is implemented by values that produce tracer source code.
type Source interface {
	Code() string
}

// TracingOptions returns options running the code of [src] as an inline
// tracer with an empty tracer config.
func TracingOptions(src Source) *tracers.TracingOptions {
	return tracers.NewJSTracingOptions(src.Code())
}

// Template returns the tracer template the Builder fills in.
func Template() string {
	return tracerTemplate
}

// MissingMarkers returns the markers that do not appear in [template].
//
// Code does not fail on a missing marker, the body of that hook is dropped.
func MissingMarkers(template string) []string {
	var missing []string
	for _, marker := range markers {
		if !strings.Contains(template, marker) {
			missing = append(missing, marker)
		}
	}
	return missing
}

// Builder holds the bodies of the six tracer hooks. The zero value is ready to
// use. Setters return an updated copy and never modify the receiver, so
// intermediate builders can be reused.
type Builder struct {
	setup  *string
	fault  *string
	result *string
	enter  *string
	step   *string
	exit   *string
}

// SetupBody sets the body of setup. The body can access [cfg].
func (b Builder) SetupBody(body string) Builder {
	b.setup = &body
	return b
}

// FaultBody sets the body of fault. The body can access [log] and [db].
func (b Builder) FaultBody(body string) Builder {
	b.fault = &body
	return b
}

// ResultBody sets the body of result. The body can access [ctx] and [db] and
// must return the trace result.
func (b Builder) ResultBody(body string) Builder {
	b.result = &body
	return b
}

// EnterBody sets the body of enter. The body can access [frame].
func (b Builder) EnterBody(body string) Builder {
	b.enter = &body
	return b
}

// StepBody sets the body of step. The body can access [log] and [db].
func (b Builder) StepBody(body string) Builder {
	b.step = &body
	return b
}

// ExitBody sets the body of exit. The body can access [res].
func (b Builder) ExitBody(body string) Builder {
	b.exit = &body
	return b
}

// Code returns the tracer source. Unset hooks have an empty body, except
// result which defaults to DefaultResultBody.
func (b Builder) Code() string {
	return fill(tracerTemplate, map[string]string{
		SetupMarker:  valueOr(b.setup, ""),
		FaultMarker:  valueOr(b.fault, ""),
		ResultMarker: valueOr(b.result, DefaultResultBody),
		EnterMarker:  valueOr(b.enter, ""),
		StepMarker:   valueOr(b.step, ""),
		ExitMarker:   valueOr(b.exit, ""),
	})
}

// TracingOptions returns options running the generated tracer.
func (b Builder) TracingOptions() *tracers.TracingOptions {
	return TracingOptions(b)
}

func (b Builder) String() string {
	return b.Code()
}

type splice struct {
	start, end int
	body       string
}

// fill replaces the first occurrence of each marker in [template] with its
// body. Marker positions are resolved against the template only, so a body
// containing marker text is copied verbatim.
func fill(template string, bodies map[string]string) string {
	splices := make([]splice, 0, len(bodies))
	size := len(template)
	for marker, body := range bodies {
		i := strings.Index(template, marker)
		if i < 0 {
			continue
		}
		splices = append(splices, splice{
			start: i,
			end:   i + len(marker),
			body:  body,
		})
		size += len(body) - len(marker)
	}
	slices.SortFunc(splices, func(a, b splice) int {
		return a.start - b.start
	})

	var sb strings.Builder
	sb.Grow(size)
	last := 0
	for _, s := range splices {
		sb.WriteString(template[last:s.start])
		sb.WriteString(s.body)
		last = s.end
	}
	sb.WriteString(template[last:])
	return sb.String()
}

func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
