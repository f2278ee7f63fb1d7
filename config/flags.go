// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/ava-labs/debugtrace/trace"
	"github.com/ava-labs/debugtrace/utils/logging"
)

const (
	DefaultTimeout        = 30 * time.Second
	DefaultTransport      = EthRPC
	DefaultLogFileMaxSize = 8 // MB
)

// AddFlags adds the connection and logging flags to [fs].
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a config file (json, yaml or toml)")
	fs.String(RPCURLKey, "", fmt.Sprintf("URL of the node's JSON-RPC endpoint. Also possible to configure via the %s env variable.", EnvName(RPCURLKey)))
	fs.StringToString(RPCHeadersKey, map[string]string{}, "Headers sent with every JSON-RPC request, as key=value pairs")
	fs.String(TransportKey, string(DefaultTransport), fmt.Sprintf("JSON-RPC client to use. Should be one of {%s, %s}", EthRPC, HTTP))
	fs.Duration(TimeoutKey, DefaultTimeout, "Timeout of a single call")
	fs.String(LogLevelKey, logging.Info.LowerString(), "The log level. Should be one of {debug, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, logging.AutoString, "The structure of log format. Should be one of {auto, plain, colors, json}")
	fs.String(LogFileKey, "", "[optional] JSON log file written alongside the console output")
	fs.Int(LogFileMaxSizeKey, DefaultLogFileMaxSize, "Size in megabytes at which the log file is rotated")
	fs.Int(LogFileMaxFilesKey, 0, "Number of rotated log files to retain. 0 retains all of them")

	// Tracing
	fs.String(TracingExporterTypeKey, trace.NoOp.String(), fmt.Sprintf("Type of exporter to use for tracing. Options are [%s, %s, %s]", trace.NoOp, trace.GRPC, trace.HTTP))
	fs.String(TracingEndpointKey, "localhost:4317", "The endpoint to send trace data to, as host:port")
	fs.Bool(TracingInsecureKey, true, "If true, don't use TLS when sending trace data")
	fs.Float64(TracingSampleRateKey, 1, "The fraction of traces to sample. If >= 1, always sample. If <= 0, never sample")
	fs.StringToString(TracingHeadersKey, map[string]string{}, "The headers to provide the trace indexer")
}

// EnvName returns the environment variable that sets [key].
func EnvName(key string) string {
	return strings.ToUpper(EnvPrefix + "_" + envReplacer.Replace(key))
}
