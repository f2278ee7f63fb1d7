// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package jstest runs JavaScript tracers against a fixed, fake execution so
// that tests can check generated tracer code without a node.
package jstest

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

var (
	ErrNotAnObject = errors.New("tracer is not an object")
	ErrMissingHook = errors.New("tracer hook is not a function")

	hooks = []string{"setup", "fault", "result", "enter", "step", "exit"}
)

// Run evaluates the tracer [code] and drives its hooks through one fake call
// frame containing [steps] steps: setup, enter, step (repeated), exit and
// finally result. The value returned by result is encoded as JSON.
func Run(code string, tracerConfig json.RawMessage, steps int) (json.RawMessage, error) {
	vm := goja.New()
	// Tracers are object literals, wrap them so they parse as an expression.
	v, err := vm.RunString("(" + code + ")")
	if err != nil {
		return nil, err
	}
	obj, ok := v.Export().(map[string]interface{})
	if !ok || obj == nil {
		return nil, ErrNotAnObject
	}
	tracer := v.ToObject(vm)

	fns := make(map[string]goja.Callable, len(hooks))
	for _, name := range hooks {
		fn, ok := goja.AssertFunction(tracer.Get(name))
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHook, name)
		}
		fns[name] = fn
	}

	var cfg interface{} = map[string]interface{}{}
	if len(tracerConfig) != 0 {
		if err := json.Unmarshal(tracerConfig, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode tracer config: %w", err)
		}
	}

	db := vm.ToValue(map[string]interface{}{})
	call := func(name string, args ...goja.Value) (goja.Value, error) {
		res, err := fns[name](tracer, args...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return res, nil
	}

	if _, err := call("setup", vm.ToValue(cfg)); err != nil {
		return nil, err
	}
	frame := vm.ToValue(map[string]interface{}{
		"type":  "CALL",
		"gas":   21000,
		"value": "0x0",
	})
	if _, err := call("enter", frame); err != nil {
		return nil, err
	}
	for pc := 0; pc < steps; pc++ {
		log := vm.ToValue(map[string]interface{}{
			"pc":    pc,
			"op":    "PUSH1",
			"gas":   21000 - 3*pc,
			"cost":  3,
			"depth": 1,
		})
		if _, err := call("step", log, db); err != nil {
			return nil, err
		}
	}
	res := vm.ToValue(map[string]interface{}{
		"gasUsed": 3 * steps,
		"output":  "0x",
	})
	if _, err := call("exit", res); err != nil {
		return nil, err
	}
	ctx := vm.ToValue(map[string]interface{}{
		"type":    "CALL",
		"gasUsed": 3 * steps,
	})
	result, err := call("result", ctx, db)
	if err != nil {
		return nil, err
	}
	return json.Marshal(result.Export())
}
