// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/debugtrace/config"
	"github.com/ava-labs/debugtrace/ethclient/debugclient"
	"github.com/ava-labs/debugtrace/trace"
	"github.com/ava-labs/debugtrace/tracers"
	"github.com/ava-labs/debugtrace/tracers/js"
	"github.com/ava-labs/debugtrace/utils/logging"
	"github.com/ava-labs/debugtrace/utils/rpc"
	"github.com/ava-labs/debugtrace/version"

	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

const (
	optionsKey      = "options"
	noopKey         = "noop"
	builtinKey      = "builtin"
	tracerConfigKey = "tracer-config"
	prettyKey       = "pretty"

	metricsNamespace = "jstrace"
)

var (
	errInvalidTxHash       = errors.New("invalid transaction hash")
	errUnknownBuiltin      = errors.New("unknown builtin tracer")
	errInvalidTracerConfig = errors.New("tracer config must be valid JSON")
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jstrace",
		Short:         "Build JavaScript tracers and run them with debug_traceTransaction",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newCodeCmd(),
		newNoopCmd(),
		newTraceCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Print the tracer built from the hook bodies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := builderFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			return printSource(cmd, b)
		},
	}
	addHookFlags(cmd.Flags())
	markHookFlagsExclusive(cmd)
	cmd.Flags().Bool(optionsKey, false, "Print the debug_traceTransaction options instead of the tracer source")
	return cmd
}

func newNoopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "noop",
		Short: "Print the tracer that records nothing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSource(cmd, js.Noop{})
		},
	}
	cmd.Flags().Bool(optionsKey, false, "Print the debug_traceTransaction options instead of the tracer source")
	return cmd
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <tx-hash>",
		Short: "Trace a transaction and print the raw result",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	fs := cmd.Flags()
	addHookFlags(fs)
	fs.Bool(noopKey, false, "Trace with the noop JavaScript tracer")
	fs.String(builtinKey, "", "Trace with a tracer built into the node, e.g. callTracer")
	fs.String(tracerConfigKey, "", "JSON tracer config passed to setup(cfg)")
	fs.Bool(prettyKey, false, "Indent the result")

	markHookFlagsExclusive(cmd)
	cmd.MarkFlagsMutuallyExclusive(noopKey, builtinKey)
	for _, name := range hookFlagNames() {
		cmd.MarkFlagsMutuallyExclusive(noopKey, builtinKey, name)
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func markHookFlagsExclusive(cmd *cobra.Command) {
	for _, h := range hooks {
		cmd.MarkFlagsMutuallyExclusive(h.name, h.name+fileSuffix)
	}
}

func printSource(cmd *cobra.Command, src js.Source) error {
	printOptions, err := cmd.Flags().GetBool(optionsKey)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !printOptions {
		_, err := fmt.Fprintln(out, src.Code())
		return err
	}

	encoded, err := json.MarshalIndent(js.TracingOptions(src), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}

func runTrace(cmd *cobra.Command, args []string) error {
	v, err := config.BuildViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.GetConfig(v)
	if err != nil {
		return err
	}
	if cfg.RPCURL == "" {
		return config.ErrMissingRPCURL
	}

	txHash, err := parseTxHash(args[0])
	if err != nil {
		return err
	}
	opts, err := traceOptions(cmd.Flags())
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	caller, closeCaller, err := dial(ctx, cfg)
	if err != nil {
		return fmt.Errorf("couldn't connect to node: %w", err)
	}
	defer closeCaller()

	registry := prometheus.NewRegistry()
	caller, err = rpc.NewMeteredCaller(caller, metricsNamespace, registry)
	if err != nil {
		return err
	}

	tracer, err := trace.New(cfg.TraceConfig)
	if err != nil {
		return fmt.Errorf("couldn't initialize tracer: %w", err)
	}
	defer func() {
		if err := tracer.Close(); err != nil {
			log.Warn("failed to flush spans",
				zap.Error(err),
			)
		}
	}()
	caller = rpc.NewTracedCaller(caller, tracer)

	log.Info("tracing transaction",
		zap.Stringer("txHash", txHash),
		zap.String("transport", string(cfg.Transport)),
		zap.String("tracer", tracerName(opts.Tracer)),
	)
	start := time.Now()
	res, err := debugclient.New(caller).TraceTransactionJSON(ctx, txHash, opts)
	logCallMetrics(log, registry)
	if err != nil {
		if code, ok := debugclient.ErrorCode(err); ok {
			log.Error("node rejected trace",
				zap.Int("code", code),
				zap.Error(err),
			)
		}
		return err
	}
	log.Debug("traced transaction",
		zap.Duration("duration", time.Since(start)),
		zap.Int("resultSize", len(res)),
	)

	pretty, err := cmd.Flags().GetBool(prettyKey)
	if err != nil {
		return err
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, res, "", "  "); err != nil {
			return err
		}
		res = buf.Bytes()
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(res))
	return err
}

func parseTxHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w %q: %w", errInvalidTxHash, s, err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w %q: expected %d bytes but got %d", errInvalidTxHash, s, common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

func traceOptions(fs *pflag.FlagSet) (*tracers.TracingOptions, error) {
	var opts *tracers.TracingOptions
	switch {
	case fs.Changed(noopKey):
		opts = js.Noop{}.TracingOptions()
	case fs.Changed(builtinKey):
		name, err := fs.GetString(builtinKey)
		if err != nil {
			return nil, err
		}
		if !tracers.IsBuiltin(name) {
			return nil, fmt.Errorf("%w: %q", errUnknownBuiltin, name)
		}
		opts = tracers.NewBuiltinTracingOptions(name)
	default:
		b, err := builderFromFlags(fs)
		if err != nil {
			return nil, err
		}
		opts = b.TracingOptions()
	}

	if fs.Changed(tracerConfigKey) {
		tracerConfig, err := fs.GetString(tracerConfigKey)
		if err != nil {
			return nil, err
		}
		if !json.Valid([]byte(tracerConfig)) {
			return nil, fmt.Errorf("%w: %q", errInvalidTracerConfig, tracerConfig)
		}
		opts.TracerConfig = json.RawMessage(tracerConfig)
	}
	return opts, nil
}

func tracerName(t *tracers.Tracer) string {
	if t.IsJS() {
		return "js"
	}
	return t.Name()
}

// newLogger logs to [w] and, if configured, to a rotating JSON log file. The
// returned function flushes and closes both.
func newLogger(cfg config.Config, w io.Writer) (logging.Logger, func(), error) {
	format, err := logging.ToFormat(cfg.LogFormat, os.Stderr.Fd())
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogLevel == logging.Off && cfg.LogFile.Path == "" {
		return logging.NoLog{}, func() {}, nil
	}
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(cfg.LogLevel, w, format.Encoder()),
	}
	if cfg.LogFile.Path == "" {
		log := logging.NewLogger("", cores...)
		return log, log.Stop, nil
	}

	file := logging.NewRotatingWriter(cfg.LogFile)
	cores = append(cores, logging.NewWrappedCore(cfg.LogLevel, file, logging.JSON.Encoder()))
	log := logging.NewLogger("", cores...)
	return log, func() {
		log.Stop()
		_ = file.Close()
	}, nil
}

// dial connects with the configured transport. [cfg.RPCHeaders] are sent with
// every request.
func dial(ctx context.Context, cfg config.Config) (rpc.Caller, func(), error) {
	if cfg.Transport == config.HTTP {
		options := make([]rpc.Option, 0, len(cfg.RPCHeaders))
		for key, val := range cfg.RPCHeaders {
			options = append(options, rpc.WithHeader(key, val))
		}
		caller, err := rpc.NewHTTPCaller(cfg.RPCURL, options...)
		return caller, func() {}, err
	}

	client, err := ethrpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, nil, err
	}
	for key, val := range cfg.RPCHeaders {
		client.SetHeader(key, val)
	}
	return client, client.Close, nil
}

// logCallMetrics reports the counters collected for the calls issued.
func logCallMetrics(log logging.Logger, gatherer prometheus.Gatherer) {
	if !log.Enabled(logging.Debug) {
		return
	}
	families, err := gatherer.Gather()
	if err != nil {
		log.Warn("failed to gather call metrics",
			zap.Error(err),
		)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fields := []zap.Field{
				zap.Float64("value", metric.GetCounter().GetValue()),
			}
			for _, label := range metric.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			log.Debug(family.GetName(), fields...)
		}
	}
}
