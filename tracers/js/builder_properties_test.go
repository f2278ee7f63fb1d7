// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package js

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ava-labs/debugtrace/tracers"
)

// setters are ordered like markers.
var setters = []func(Builder, string) Builder{
	Builder.SetupBody,
	Builder.FaultBody,
	Builder.ResultBody,
	Builder.EnterBody,
	Builder.StepBody,
	Builder.ExitBody,
}

// bodyGen generates hook bodies that contain neither marker text nor block
// comment delimiters, so wrapped bodies stay unique.
func bodyGen() gopter.Gen {
	return gen.AnyString().SuchThat(func(s string) bool {
		return !strings.Contains(s, "//<") &&
			!strings.Contains(s, "/*") &&
			!strings.Contains(s, "*/")
	})
}

// wrapBody tags [body] with delimiters naming the slot at [index].
func wrapBody(index int, body string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(markers[index], "//<"), ">")
	return fmt.Sprintf("/*%s<*/%s/*>%s*/", name, body, name)
}

// buildWith sets the hooks selected by the bits of [mask].
func buildWith(mask uint8, bodies []string) Builder {
	var b Builder
	for i, set := range setters {
		if mask&(1<<i) != 0 {
			b = set(b, bodies[i])
		}
	}
	return b
}

func TestBuilderProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every body is placed once at its own marker", prop.ForAll(
		func(setup, fault, result, enter, step, exit string) string {
			bodies := []string{setup, fault, result, enter, step, exit}
			wrapped := make([]string, len(bodies))
			for i, body := range bodies {
				wrapped[i] = wrapBody(i, body)
			}

			code := buildWith(0xff, wrapped).Code()
			restored := code
			for i, body := range wrapped {
				if n := strings.Count(code, body); n != 1 {
					return fmt.Sprintf("%s body found %d times", markers[i], n)
				}
				restored = strings.Replace(restored, body, markers[i], 1)
			}
			if restored != Template() {
				return "bodies are not at their markers"
			}
			return ""
		},
		bodyGen(), bodyGen(), bodyGen(), bodyGen(), bodyGen(), bodyGen(),
	))

	properties.Property("code is deterministic and does not modify the builder", prop.ForAll(
		func(mask uint8, setup, fault, result, enter, step, exit string) string {
			b := buildWith(mask, []string{setup, fault, result, enter, step, exit})
			before := b

			first := b.Code()
			second := b.Code()
			if first != second {
				return "code changed between calls"
			}
			if !reflect.DeepEqual(before, b) {
				return "builder modified by code"
			}
			return ""
		},
		gen.UInt8(), bodyGen(), bodyGen(), bodyGen(), bodyGen(), bodyGen(), bodyGen(),
	))

	properties.Property("tracing options carry an empty config and the exact source", prop.ForAll(
		func(mask uint8, setup, fault, result, enter, step, exit string) string {
			b := buildWith(mask, []string{setup, fault, result, enter, step, exit})
			opts := b.TracingOptions()

			if string(opts.TracerConfig) != "{}" {
				return fmt.Sprintf("unexpected tracer config %s", opts.TracerConfig)
			}
			source, ok := opts.Source()
			if !ok || source != b.Code() {
				return "source does not match code"
			}

			encoded, err := json.Marshal(opts)
			if err != nil {
				return err.Error()
			}
			var decoded tracers.TracingOptions
			if err := json.Unmarshal(encoded, &decoded); err != nil {
				return err.Error()
			}
			source, ok = decoded.Source()
			if !ok || source != b.Code() {
				return "source changed by encoding"
			}
			return ""
		},
		gen.UInt8(), bodyGen(), bodyGen(), bodyGen(), bodyGen(), bodyGen(), bodyGen(),
	))

	properties.TestingRun(t)
}
