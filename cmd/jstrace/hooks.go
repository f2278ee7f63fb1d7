// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ava-labs/debugtrace/tracers/js"
)

const fileSuffix = "-file"

type hook struct {
	name  string
	usage string
	set   func(js.Builder, string) js.Builder
}

var hooks = []hook{
	{
		name:  "setup",
		usage: "Body of setup(cfg), run once before tracing",
		set:   js.Builder.SetupBody,
	},
	{
		name:  "fault",
		usage: "Body of fault(log, db), run when an opcode errors",
		set:   js.Builder.FaultBody,
	},
	{
		name:  "result",
		usage: "Body of result(ctx, db), whose return value is the trace result",
		set:   js.Builder.ResultBody,
	},
	{
		name:  "enter",
		usage: "Body of enter(frame), run when a call frame is entered",
		set:   js.Builder.EnterBody,
	},
	{
		name:  "step",
		usage: "Body of step(log, db), run for every executed opcode",
		set:   js.Builder.StepBody,
	},
	{
		name:  "exit",
		usage: "Body of exit(res), run when a call frame returns",
		set:   js.Builder.ExitBody,
	},
}

// addHookFlags registers a --<hook> and a --<hook>-file flag per tracer hook.
func addHookFlags(fs *pflag.FlagSet) {
	for _, h := range hooks {
		fs.String(h.name, "", h.usage)
		fs.String(h.name+fileSuffix, "", fmt.Sprintf("File containing the %s body", h.name))
	}
}

func hookFlagNames() []string {
	names := make([]string, 0, 2*len(hooks))
	for _, h := range hooks {
		names = append(names, h.name, h.name+fileSuffix)
	}
	return names
}

// builderFromFlags applies every hook flag that was explicitly set. An unset
// hook keeps the template default, so --result="" differs from no --result.
func builderFromFlags(fs *pflag.FlagSet) (js.Builder, error) {
	var b js.Builder
	for _, h := range hooks {
		fileFlag := h.name + fileSuffix
		switch {
		case fs.Changed(fileFlag):
			path, err := fs.GetString(fileFlag)
			if err != nil {
				return js.Builder{}, err
			}
			body, err := os.ReadFile(path)
			if err != nil {
				return js.Builder{}, fmt.Errorf("couldn't read %s body: %w", h.name, err)
			}
			b = h.set(b, string(body))
		case fs.Changed(h.name):
			body, err := fs.GetString(h.name)
			if err != nil {
				return js.Builder{}, err
			}
			b = h.set(b, body)
		}
	}
	return b, nil
}
