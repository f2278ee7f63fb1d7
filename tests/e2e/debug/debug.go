// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Implements debug_traceTransaction tests, requires a node with the debug
// namespace enabled.
package debug

import (
	"encoding/json"

	"github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/ava-labs/debugtrace/tests/fixture/e2e"
	"github.com/ava-labs/debugtrace/tracers"
	"github.com/ava-labs/debugtrace/tracers/js"

	ginkgo "github.com/onsi/ginkgo/v2"
)

var _ = ginkgo.Describe("[debug_traceTransaction]", ginkgo.Label("require-node"), func() {
	ginkgo.DescribeTable("returns the raw tracer result",
		func(opts *tracers.TracingOptions, expected string) {
			ctx, cancel := e2e.DefaultContext()
			defer cancel()

			client, closeClient, err := e2e.Env.NewClient(ctx)
			gomega.Expect(err).Should(gomega.BeNil())
			defer closeClient()

			res, err := client.TraceTransactionJSON(ctx, e2e.Env.TxHash, opts)
			gomega.Expect(err).Should(gomega.BeNil())
			e2e.Env.Log.Info("traced transaction",
				zap.Stringer("txHash", e2e.Env.TxHash),
				zap.ByteString("result", res),
			)
			gomega.Expect(string(res)).Should(gomega.MatchJSON(expected))
		},
		ginkgo.Entry("noop tracer", js.Noop{}.TracingOptions(), `{}`),
		ginkgo.Entry("default template", js.Builder{}.TracingOptions(), `{}`),
		ginkgo.Entry("result body", js.Builder{}.ResultBody("return {ok:true};").TracingOptions(), `{"ok": true}`),
	)

	ginkgo.It("counts at least one step", func() {
		ctx, cancel := e2e.DefaultContext()
		defer cancel()

		client, closeClient, err := e2e.Env.NewClient(ctx)
		gomega.Expect(err).Should(gomega.BeNil())
		defer closeClient()

		opts := js.Builder{}.
			SetupBody("this.steps = 0;").
			StepBody("this.steps++;").
			ResultBody("return {steps: this.steps};").
			TracingOptions()
		res, err := client.TraceTransactionJSON(ctx, e2e.Env.TxHash, opts)
		gomega.Expect(err).Should(gomega.BeNil())

		var result struct {
			Steps int `json:"steps"`
		}
		gomega.Expect(json.Unmarshal(res, &result)).Should(gomega.Succeed())
		gomega.Expect(result.Steps).Should(gomega.BeNumerically(">", 0))
	})
})
