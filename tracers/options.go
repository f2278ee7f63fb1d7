// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tracers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Names of the tracers compiled into the node.
const (
	CallTracer     = "callTracer"
	FlatCallTracer = "flatCallTracer"
	PrestateTracer = "prestateTracer"
	FourByteTracer = "4byteTracer"
	NoopTracer     = "noopTracer"
	MuxTracer      = "muxTracer"
)

var (
	ErrInvalidTracer = errors.New("invalid tracer")

	builtins = map[string]struct{}{
		CallTracer:     {},
		FlatCallTracer: {},
		PrestateTracer: {},
		FourByteTracer: {},
		NoopTracer:     {},
		MuxTracer:      {},
	}

	emptyObject = json.RawMessage(`{}`)
)

// IsBuiltin returns true if [name] is one of the node's native tracers.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Tracer selects the tracer the node runs. It is either the name of a builtin
// tracer or the source of a JavaScript tracer. On the wire both are a plain
// JSON string.
type Tracer struct {
	name   string
	source string
	js     bool
}

// Builtin returns the tracer variant naming the native tracer [name].
func Builtin(name string) Tracer {
	return Tracer{name: name}
}

// JS returns the tracer variant carrying [source] verbatim.
func JS(source string) Tracer {
	return Tracer{source: source, js: true}
}

// IsJS returns true if the tracer carries inline JavaScript source.
func (t Tracer) IsJS() bool {
	return t.js
}

// Name returns the builtin tracer name, or the empty string for a JS tracer.
func (t Tracer) Name() string {
	return t.name
}

// Source returns the inline JavaScript source, or the empty string for a
// builtin tracer.
func (t Tracer) Source() string {
	return t.source
}

func (t Tracer) String() string {
	if t.js {
		return t.source
	}
	return t.name
}

func (t Tracer) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a known builtin name into the builtin variant and any
// other string into the JS variant.
func (t *Tracer) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTracer, err)
	}
	if IsBuiltin(s) {
		*t = Builtin(s)
	} else {
		*t = JS(s)
	}
	return nil
}

// TracingOptions are the options passed as the second parameter of
// debug_traceTransaction. Zero valued fields are left out of the request so
// that the node applies its own defaults.
type TracingOptions struct {
	// Options of the default struct logger.
	EnableMemory     bool `json:"enableMemory,omitempty"`
	DisableStack     bool `json:"disableStack,omitempty"`
	DisableStorage   bool `json:"disableStorage,omitempty"`
	EnableReturnData bool `json:"enableReturnData,omitempty"`
	Debug            bool `json:"debug,omitempty"`
	Limit            int  `json:"limit,omitempty"`

	Tracer       *Tracer         `json:"tracer,omitempty"`
	TracerConfig json.RawMessage `json:"tracerConfig,omitempty"`
	Timeout      string          `json:"timeout,omitempty"`
	Reexec       *uint64         `json:"reexec,omitempty"`
}

// NewJSTracingOptions returns options running [source] as an inline tracer
// with an empty tracer config.
func NewJSTracingOptions(source string) *TracingOptions {
	return newTracingOptions(JS(source))
}

// NewBuiltinTracingOptions returns options running the native tracer [name]
// with an empty tracer config.
func NewBuiltinTracingOptions(name string) *TracingOptions {
	return newTracingOptions(Builtin(name))
}

func newTracingOptions(tracer Tracer) *TracingOptions {
	return &TracingOptions{
		Tracer:       &tracer,
		TracerConfig: bytes.Clone(emptyObject),
	}
}

// Source returns the inline tracer source and true if the options run a JS
// tracer.
func (o *TracingOptions) Source() (string, bool) {
	if o == nil || o.Tracer == nil || !o.Tracer.IsJS() {
		return "", false
	}
	return o.Tracer.Source(), true
}
